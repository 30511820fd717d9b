package config

import (
	"os"
	"path/filepath"
	"testing"

	"inkwell/backend/internal/features/config/domain"
	personadomain "inkwell/backend/internal/features/persona/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_MissingFileReturnsEmptyConfig(t *testing.T) {
	svc := NewAppConfigService(filepath.Join(t.TempDir(), "nope.json"))

	cfg, err := svc.LoadAppConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.AgentPersonas)
	assert.Empty(t, cfg.ExtraGenreChannels)
}

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	svc := NewAppConfigService(path)

	in := &domain.AppConfig{
		AgentPersonas: map[string]personadomain.AgentPersonality{
			"marketing": {Role: "marketing", Name: "Test Agent", Personality: "Testy."},
		},
		ExtraGenreChannels: map[string][]string{
			"Horror": {"Horror fan forums"},
		},
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	require.NoError(t, svc.SaveAppConfig(in))

	out, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadAppConfig_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	svc := NewAppConfigService(path)
	_, err := svc.LoadAppConfig()
	assert.Error(t, err)
}
