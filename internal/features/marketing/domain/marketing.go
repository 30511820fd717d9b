package domain

// BookInfo describes the book a strategy is built for. Genre and Tone drive
// the derivations; Title and Description are carried through untouched.
type BookInfo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Tone        string `json:"tone"`
}

// MarketingStrategy is the full promotional plan for one book.
type MarketingStrategy struct {
	TargetAudience      string             `json:"target_audience"`
	KeyMessaging        []string           `json:"key_messaging"`
	PromotionalChannels []string           `json:"promotional_channels"`
	LaunchTimeline      map[string]string  `json:"launch_timeline"`
	BudgetAllocation    map[string]float64 `json:"budget_allocation"`
}

// KnowledgeBase is the agency's marketing knowledge table. It is built once
// at startup and never mutated afterwards, so it is safe to share.
type KnowledgeBase struct {
	// AudienceSegments and MarketingChannels are descriptive reference
	// lists; channel selection only consults GenreMarketing.
	AudienceSegments  []string            `json:"audience_segments"`
	MarketingChannels []string            `json:"marketing_channels"`
	GenreMarketing    map[string][]string `json:"genre_marketing"`
}
