package domain

import personadomain "inkwell/backend/internal/features/persona/domain"

// StrategyRequest is the payload for creating a marketing strategy. Every
// field is optional; missing genre and tone fall back to defaults.
type StrategyRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Tone        string `json:"tone"`
}

// StrategyResponse wraps the strategy with the book it was built for and the
// agent persona that presented it.
type StrategyResponse struct {
	Book     BookInfo                        `json:"book"`
	Agent    *personadomain.AgentPersonality `json:"agent"`
	Strategy *MarketingStrategy              `json:"strategy"`
}
