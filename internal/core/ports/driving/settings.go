package driving

import "github.com/jackisacoolryan/test-mcp/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: defaults, then the config file,
	// then environment overrides.
	Get() (*domain.AppSettings, error)

	// Set persists a single dotted config key (e.g. "server.port").
	Set(key, value string) error

	// Validate checks that settings can be served.
	Validate(settings *domain.AppSettings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns the backing config file path.
	ConfigPath() string
}
