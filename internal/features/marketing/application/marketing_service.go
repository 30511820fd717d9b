package application

import (
	"fmt"
	"strings"

	"inkwell/backend/internal/features/marketing/domain"
	personaapp "inkwell/backend/internal/features/persona/application"
	"inkwell/backend/internal/metrics"

	"go.uber.org/zap"
)

const (
	defaultGenre = "General"
	defaultTone  = "Neutral"
)

// baseChannels always lead the promotional channel list, in this order.
var baseChannels = []string{"Social Media", "Book Bloggers", "Email Marketing"}

// MarketingService defines the interface for the marketing application service.
type MarketingService interface {
	CreateMarketingStrategy(book *domain.BookInfo) *domain.MarketingStrategy
}

// marketingService is the implementation of MarketingService.
type marketingService struct {
	personaService personaapp.PersonaService
	knowledge      *domain.KnowledgeBase
	logger         *zap.Logger
}

// NewMarketingService creates a new instance of marketingService.
func NewMarketingService(personaService personaapp.PersonaService, knowledge *domain.KnowledgeBase, logger *zap.Logger) MarketingService {
	return &marketingService{
		personaService: personaService,
		knowledge:      knowledge,
		logger:         logger,
	}
}

// CreateMarketingStrategy builds a complete marketing strategy for a book.
// All five derivations are total: missing genre or tone fall back to
// defaults and unknown genres get the generic treatment, so the call never
// fails and always returns the same output for the same input.
func (s *marketingService) CreateMarketingStrategy(book *domain.BookInfo) *domain.MarketingStrategy {
	persona := s.personaService.GetAgentPersonality("marketing")
	s.logger.Info("creating marketing strategy",
		zap.String("agent", persona.Name),
		zap.String("title", book.Title),
		zap.String("genre", book.Genre),
		zap.String("tone", book.Tone),
	)

	targetAudience := s.analyzeTargetAudience(book)
	keyMessaging := s.createKeyMessaging(book)
	promotionalChannels := s.selectPromotionalChannels(book)
	launchTimeline := s.createLaunchTimeline()
	budgetAllocation := s.allocateBudget(promotionalChannels)

	metrics.StrategiesCreatedTotal.WithLabelValues(genreOrDefault(book)).Inc()
	s.logger.Info("marketing strategy created",
		zap.String("agent", persona.Name),
		zap.String("target_audience", targetAudience),
		zap.Int("channels", len(promotionalChannels)),
	)

	return &domain.MarketingStrategy{
		TargetAudience:      targetAudience,
		KeyMessaging:        keyMessaging,
		PromotionalChannels: promotionalChannels,
		LaunchTimeline:      launchTimeline,
		BudgetAllocation:    budgetAllocation,
	}
}

func genreOrDefault(book *domain.BookInfo) string {
	if book.Genre == "" {
		return defaultGenre
	}
	return book.Genre
}

func toneOrDefault(book *domain.BookInfo) string {
	if book.Tone == "" {
		return defaultTone
	}
	return book.Tone
}

// analyzeTargetAudience maps the genre onto a target audience description.
func (s *marketingService) analyzeTargetAudience(book *domain.BookInfo) string {
	switch genreOrDefault(book) {
	case "Fantasy":
		return "Young Adult (13-18) and Adult (25-45) fantasy enthusiasts"
	case "Romance":
		return "Adult (25-45) romance readers, primarily female audience"
	case "Business":
		return "Professional (25-45) business professionals and entrepreneurs"
	default:
		return "General Adult (25-45) readers"
	}
}

// createKeyMessaging produces the three key marketing messages.
func (s *marketingService) createKeyMessaging(book *domain.BookInfo) []string {
	genre := strings.ToLower(genreOrDefault(book))
	tone := strings.ToLower(toneOrDefault(book))

	return []string{
		fmt.Sprintf("Discover a %s %s story that will keep you turning pages", tone, genre),
		fmt.Sprintf("Perfect for readers who love %s with %s elements", genre, tone),
		fmt.Sprintf("A must-read for %s enthusiasts", genre),
	}
}

// selectPromotionalChannels returns the base channels followed by the
// genre's niche channels. Unknown genres get no niches. The combined list is
// not deduplicated.
func (s *marketingService) selectPromotionalChannels(book *domain.BookInfo) []string {
	channels := make([]string, 0, len(baseChannels))
	channels = append(channels, baseChannels...)
	channels = append(channels, s.knowledge.GenreMarketing[genreOrDefault(book)]...)
	return channels
}

// createLaunchTimeline returns the fixed four-phase launch plan.
func (s *marketingService) createLaunchTimeline() map[string]string {
	return map[string]string{
		"Pre-launch (4 weeks)":  "Social media teasers, influencer outreach",
		"Launch week":           "Major promotional push, book blogger reviews",
		"Post-launch (2 weeks)": "Sustained social media, reader engagement",
		"Ongoing":               "Community building, reader feedback integration",
	}
}

// allocateBudget assigns each channel a percentage by substring match, in
// priority order. Percentages are per-channel and deliberately not
// normalized, so the total can land above or below 100.
func (s *marketingService) allocateBudget(channels []string) map[string]float64 {
	allocations := make(map[string]float64, len(channels))
	for _, channel := range channels {
		switch {
		case strings.Contains(channel, "Social Media"):
			allocations[channel] = 30.0
		case strings.Contains(channel, "Influencer"):
			allocations[channel] = 25.0
		case strings.Contains(channel, "Ads"):
			allocations[channel] = 20.0
		default:
			allocations[channel] = 15.0
		}
	}
	return allocations
}
