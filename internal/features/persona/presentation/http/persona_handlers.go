package http

import (
	"net/http"

	"inkwell/backend/internal/features/persona/application"

	"github.com/gin-gonic/gin"
)

// PersonaHandler holds the persona service.
type PersonaHandler struct {
	personaService application.PersonaService
}

// NewPersonaHandler creates a new PersonaHandler.
func NewPersonaHandler(personaService application.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

// GetPersonaHandler handles fetching the personality for a given agent role.
func (h *PersonaHandler) GetPersonaHandler(c *gin.Context) {
	role := c.Param("role")
	persona := h.personaService.GetAgentPersonality(role)
	c.JSON(http.StatusOK, persona)
}

// ListRolesHandler handles listing the registered agent roles.
func (h *PersonaHandler) ListRolesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": h.personaService.Roles()})
}
