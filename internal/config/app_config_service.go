package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"inkwell/backend/internal/features/config/domain"
)

// AppConfigService defines the interface for application configuration management.
type AppConfigService interface {
	LoadAppConfig() (*domain.AppConfig, error)
	SaveAppConfig(config *domain.AppConfig) error
}

// appConfigService is the implementation of AppConfigService.
type appConfigService struct {
	configPath string
}

// NewAppConfigService creates a new instance of appConfigService.
func NewAppConfigService(configPath string) AppConfigService {
	return &appConfigService{configPath: configPath}
}

// LoadAppConfig loads the application configuration from the configured JSON
// file. A missing file is not an error: the service runs entirely on its
// built-in defaults, so an absent config simply means no overrides.
func (s *appConfigService) LoadAppConfig() (*domain.AppConfig, error) {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := os.ReadFile(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.AppConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read app config file %s: %w", absPath, err)
	}

	var appConfig domain.AppConfig
	if err := json.Unmarshal(data, &appConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal app config from %s: %w", absPath, err)
	}

	return &appConfig, nil
}

// SaveAppConfig saves the application configuration to the configured JSON file.
func (s *appConfigService) SaveAppConfig(appConfig *domain.AppConfig) error {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := json.MarshalIndent(appConfig, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal app config: %w", err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write app config to file %s: %w", absPath, err)
	}

	return nil
}
