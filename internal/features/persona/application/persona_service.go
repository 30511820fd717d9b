package application

import (
	"inkwell/backend/internal/features/persona/domain"
)

// PersonaService defines the interface for agent personality lookups.
type PersonaService interface {
	GetAgentPersonality(role string) *domain.AgentPersonality
	Roles() []string
}

// personaService is the implementation of PersonaService.
type personaService struct {
	roster map[string]domain.AgentPersonality
}

// fallback is returned for roles without a registered persona. Lookups never
// fail; callers only use the persona for narration.
var fallback = domain.AgentPersonality{
	Role:        "generalist",
	Name:        "The InkWell Agent",
	Personality: "A dependable generalist from the InkWell AI Writing Agency, happy to step in wherever needed.",
}

// defaultRoster holds the agency's built-in personas.
var defaultRoster = map[string]domain.AgentPersonality{
	"marketing": {
		Role:        "marketing",
		Name:        `David "Buzz" Martinez`,
		Personality: "An energetic marketing strategist who lives for launch day. Always armed with an analytics dashboard and an opinion about your cover reveal.",
	},
	"writing": {
		Role:        "writing",
		Name:        `Elena "Quill" Okafor`,
		Personality: "A patient storyteller who drafts fast and revises faster. Believes every book has one true opening line.",
	},
	"editing": {
		Role:        "editing",
		Name:        `Marcus "Red Pen" Hale`,
		Personality: "A meticulous line editor with a soft spot for the Oxford comma and a hard rule against adverbs in chapter one.",
	},
}

// NewPersonaService creates a persona service from the built-in roster,
// with per-role overrides applied on top (typically from the app config).
func NewPersonaService(overrides map[string]domain.AgentPersonality) PersonaService {
	roster := make(map[string]domain.AgentPersonality, len(defaultRoster)+len(overrides))
	for role, p := range defaultRoster {
		roster[role] = p
	}
	for role, p := range overrides {
		if p.Role == "" {
			p.Role = role
		}
		roster[role] = p
	}
	return &personaService{roster: roster}
}

// GetAgentPersonality returns the persona registered for the role, or the
// generic fallback persona when the role is unknown.
func (s *personaService) GetAgentPersonality(role string) *domain.AgentPersonality {
	if p, ok := s.roster[role]; ok {
		return &p
	}
	generic := fallback
	return &generic
}

// Roles lists the registered persona roles.
func (s *personaService) Roles() []string {
	roles := make([]string, 0, len(s.roster))
	for role := range s.roster {
		roles = append(roles, role)
	}
	return roles
}
