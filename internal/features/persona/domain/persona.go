package domain

// AgentPersonality describes one of the InkWell agency's named agent personas.
type AgentPersonality struct {
	Role        string `json:"role"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
}
