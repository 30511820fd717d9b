package infrastructure

import (
	"inkwell/backend/internal/features/marketing/domain"
)

// NewKnowledgeBase builds the agency's static marketing knowledge base.
func NewKnowledgeBase() *domain.KnowledgeBase {
	return &domain.KnowledgeBase{
		AudienceSegments: []string{
			"Young Adult (13-18)", "New Adult (18-25)", "Adult (25-45)",
			"Mature Adult (45+)", "Academic", "Professional",
		},
		MarketingChannels: []string{
			"Social Media (Instagram, TikTok, Twitter)", "Book Bloggers",
			"Influencer Partnerships", "Book Clubs", "Libraries",
			"Bookstores", "Online Ads", "Email Marketing",
		},
		GenreMarketing: map[string][]string{
			"Fantasy":  {"Fantasy conventions", "Gaming communities", "Cosplay groups"},
			"Romance":  {"Romance book clubs", "Dating apps", "Wedding blogs"},
			"Mystery":  {"True crime podcasts", "Detective forums", "Puzzle communities"},
			"Business": {"LinkedIn", "Professional associations", "Industry conferences"},
		},
	}
}

// MergeGenreChannels appends configured niche channels onto the knowledge
// base. Intended for startup only, before the table is shared.
func MergeGenreChannels(kb *domain.KnowledgeBase, extra map[string][]string) {
	for genre, channels := range extra {
		kb.GenreMarketing[genre] = append(kb.GenreMarketing[genre], channels...)
	}
}
