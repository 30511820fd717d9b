package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/backend/internal/features/marketing/application"
	"inkwell/backend/internal/features/marketing/domain"
	"inkwell/backend/internal/features/marketing/infrastructure"
	personaapp "inkwell/backend/internal/features/persona/application"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	personaService := personaapp.NewPersonaService(nil)
	marketingService := application.NewMarketingService(personaService, infrastructure.NewKnowledgeBase(), zap.NewNop())
	handler := NewMarketingHandler(marketingService, personaService)

	r := gin.New()
	r.POST("/api/marketing/strategy", handler.CreateStrategyHandler)
	r.GET("/api/marketing/knowledge", GetKnowledgeBaseHandler(infrastructure.NewKnowledgeBase()))
	return r
}

func TestCreateStrategyHandler(t *testing.T) {
	r := newTestRouter()

	body := `{"title":"The Dragon's Call","description":"A young wizard discovers their destiny","genre":"Fantasy","tone":"Epic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/marketing/strategy", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.StrategyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "The Dragon's Call", resp.Book.Title)
	require.NotNil(t, resp.Agent)
	assert.Equal(t, `David "Buzz" Martinez`, resp.Agent.Name)
	require.NotNil(t, resp.Strategy)
	assert.Equal(t, "Young Adult (13-18) and Adult (25-45) fantasy enthusiasts", resp.Strategy.TargetAudience)
	assert.Equal(t, []string{
		"Social Media", "Book Bloggers", "Email Marketing",
		"Fantasy conventions", "Gaming communities", "Cosplay groups",
	}, resp.Strategy.PromotionalChannels)
}

func TestCreateStrategyHandler_EmptyBookUsesDefaults(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/marketing/strategy", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.StrategyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "General Adult (25-45) readers", resp.Strategy.TargetAudience)
	assert.Equal(t, []string{"Social Media", "Book Bloggers", "Email Marketing"}, resp.Strategy.PromotionalChannels)
}

func TestCreateStrategyHandler_InvalidJSON(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/marketing/strategy", strings.NewReader(`{"genre":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKnowledgeBaseHandler(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/marketing/knowledge", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var kb domain.KnowledgeBase
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kb))
	assert.Contains(t, kb.GenreMarketing, "Romance")
	assert.Len(t, kb.AudienceSegments, 6)
}
