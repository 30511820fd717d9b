package domain

import personadomain "inkwell/backend/internal/features/persona/domain"

// AppConfig represents the application configuration.
type AppConfig struct {
	// AgentPersonas overrides or extends the built-in persona roster,
	// keyed by agent role.
	AgentPersonas map[string]personadomain.AgentPersonality `json:"agent_personas"`
	// ExtraGenreChannels appends niche promotional channels to the
	// marketing knowledge base, keyed by genre. Applied at startup only.
	ExtraGenreChannels map[string][]string `json:"extra_genre_channels"`
	// AllowedOrigins restricts CORS; empty allows all origins.
	AllowedOrigins []string `json:"allowed_origins"`
}
