package http

import (
	"net/http"

	"inkwell/backend/internal/features/marketing/application"
	"inkwell/backend/internal/features/marketing/domain"
	personaapp "inkwell/backend/internal/features/persona/application"

	"github.com/gin-gonic/gin"
)

// MarketingHandler holds the marketing service and persona service.
type MarketingHandler struct {
	marketingService application.MarketingService
	personaService   personaapp.PersonaService
}

// NewMarketingHandler creates a new MarketingHandler.
func NewMarketingHandler(marketingService application.MarketingService, personaService personaapp.PersonaService) *MarketingHandler {
	return &MarketingHandler{
		marketingService: marketingService,
		personaService:   personaService,
	}
}

// CreateStrategyHandler handles the request to build a marketing strategy
// for a book. All request fields are optional; the service substitutes
// defaults for a missing genre or tone.
func (h *MarketingHandler) CreateStrategyHandler(c *gin.Context) {
	var req domain.StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := domain.BookInfo{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Tone:        req.Tone,
	}

	strategy := h.marketingService.CreateMarketingStrategy(&book)

	c.JSON(http.StatusOK, domain.StrategyResponse{
		Book:     book,
		Agent:    h.personaService.GetAgentPersonality("marketing"),
		Strategy: strategy,
	})
}

// GetKnowledgeBaseHandler is attached by main with the knowledge base bound
// in, exposing the static marketing knowledge for inspection.
func GetKnowledgeBaseHandler(kb *domain.KnowledgeBase) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, kb)
	}
}
