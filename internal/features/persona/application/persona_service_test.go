package application

import (
	"testing"

	"inkwell/backend/internal/features/persona/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAgentPersonality_Marketing(t *testing.T) {
	svc := NewPersonaService(nil)

	persona := svc.GetAgentPersonality("marketing")
	require.NotNil(t, persona)
	assert.Equal(t, "marketing", persona.Role)
	assert.Equal(t, `David "Buzz" Martinez`, persona.Name)
	assert.NotEmpty(t, persona.Personality)
}

func TestGetAgentPersonality_UnknownRoleFallsBack(t *testing.T) {
	svc := NewPersonaService(nil)

	persona := svc.GetAgentPersonality("accounting")
	require.NotNil(t, persona)
	assert.Equal(t, "The InkWell Agent", persona.Name)
}

func TestNewPersonaService_Overrides(t *testing.T) {
	svc := NewPersonaService(map[string]domain.AgentPersonality{
		"marketing": {Name: "Override Name", Personality: "Calm and data-driven."},
		"audio":     {Role: "audio", Name: "Narrator Nine", Personality: "Smooth."},
	})

	marketing := svc.GetAgentPersonality("marketing")
	assert.Equal(t, "Override Name", marketing.Name)
	// Role is filled in from the map key when the override omits it.
	assert.Equal(t, "marketing", marketing.Role)

	audio := svc.GetAgentPersonality("audio")
	assert.Equal(t, "Narrator Nine", audio.Name)

	assert.Contains(t, svc.Roles(), "audio")
	assert.Contains(t, svc.Roles(), "writing")
}
