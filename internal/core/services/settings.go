package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTransport     = "server.transport"
	keyHost          = "server.host"
	keyPort          = "server.port"
	keyRateLimit     = "server.rate_limit"
	keyRateBurst     = "server.rate_burst"
	keyCorpusSource  = "corpus.source"
	keyCorpusPath    = "corpus.path"
	keyCorpusPattern = "corpus.pattern"
	keyCorpusBaseURL = "corpus.base_url"
	keyCorpusTable   = "corpus.table"
	keyCorpusBucket  = "corpus.bucket"
	keyLogVerbose    = "log.verbose"
)

// envKeys maps config keys to the environment variables that override them.
// PORT and HOST follow the usual hosting-platform convention.
var envKeys = map[string]string{
	keyTransport:     "MCP_TRANSPORT",
	keyHost:          "HOST",
	keyPort:          "PORT",
	keyRateLimit:     "MCP_RATE_LIMIT",
	keyRateBurst:     "MCP_RATE_BURST",
	keyCorpusSource:  "MCP_CORPUS_SOURCE",
	keyCorpusPath:    "MCP_CORPUS_PATH",
	keyCorpusPattern: "MCP_CORPUS_PATTERN",
	keyCorpusBaseURL: "MCP_CORPUS_BASE_URL",
	keyCorpusTable:   "MCP_CORPUS_TABLE",
	keyCorpusBucket:  "MCP_CORPUS_BUCKET",
	keyLogVerbose:    "MCP_VERBOSE",
}

// valueKind describes how a key's string form is parsed.
type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindBool
)

var keyKinds = map[string]valueKind{
	keyTransport:     kindString,
	keyHost:          kindString,
	keyPort:          kindInt,
	keyRateLimit:     kindFloat,
	keyRateBurst:     kindInt,
	keyCorpusSource:  kindString,
	keyCorpusPath:    kindString,
	keyCorpusPattern: kindString,
	keyCorpusBaseURL: kindString,
	keyCorpusTable:   kindString,
	keyCorpusBucket:  kindString,
	keyLogVerbose:    kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service reading the process
// environment for overrides.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup (used by tests).
func (s *SettingsService) SetEnvLookup(lookup func(string) (string, bool)) {
	s.lookupEnv = lookup
}

// Get returns the effective settings.
// Precedence: defaults, then the config file, then environment variables.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	port, err := s.getInt(keyPort, defaults.Server.Port)
	if err != nil {
		return nil, err
	}
	burst, err := s.getInt(keyRateBurst, defaults.Server.RateBurst)
	if err != nil {
		return nil, err
	}
	rateLimit, err := s.getFloat(keyRateLimit, defaults.Server.RateLimit)
	if err != nil {
		return nil, err
	}
	verbose, err := s.getBool(keyLogVerbose, defaults.Log.Verbose)
	if err != nil {
		return nil, err
	}

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Transport: domain.Transport(s.getString(keyTransport, defaults.Server.Transport.String())),
			Host:      s.getString(keyHost, defaults.Server.Host),
			Port:      port,
			RateLimit: rateLimit,
			RateBurst: burst,
		},
		Corpus: domain.CorpusSettings{
			Source:  domain.CorpusSource(s.getString(keyCorpusSource, defaults.Corpus.Source.String())),
			Path:    s.getString(keyCorpusPath, defaults.Corpus.Path),
			Pattern: s.getString(keyCorpusPattern, defaults.Corpus.Pattern),
			BaseURL: s.getString(keyCorpusBaseURL, defaults.Corpus.BaseURL),
			Table:   s.getString(keyCorpusTable, defaults.Corpus.Table),
			Bucket:  s.getString(keyCorpusBucket, defaults.Corpus.Bucket),
		},
		Log: domain.LogSettings{
			Verbose: verbose,
		},
	}

	return settings, nil
}

// Set parses value according to key and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := keyKinds[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	parsed, err := parseValue(kind, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Validate checks that settings can be served.
func (s *SettingsService) Validate(settings *domain.AppSettings) error {
	if !settings.Server.Transport.IsValid() {
		return fmt.Errorf("invalid transport %q: %w", settings.Server.Transport, domain.ErrInvalidInput)
	}
	if settings.Server.Transport == domain.TransportHTTP {
		if settings.Server.Port < 1 || settings.Server.Port > 65535 {
			return fmt.Errorf("invalid port %d: %w", settings.Server.Port, domain.ErrInvalidInput)
		}
	}
	if settings.Server.RateLimit < 0 {
		return fmt.Errorf("invalid rate limit %v: %w", settings.Server.RateLimit, domain.ErrInvalidInput)
	}
	if settings.Server.RateLimit > 0 && settings.Server.RateBurst < 1 {
		return fmt.Errorf("invalid rate burst %d: %w", settings.Server.RateBurst, domain.ErrInvalidInput)
	}

	if !settings.Corpus.Source.IsValid() {
		return fmt.Errorf("corpus source %q: %w", settings.Corpus.Source, domain.ErrUnsupportedType)
	}
	if settings.Corpus.Source.RequiresPath() && settings.Corpus.Path == "" {
		return fmt.Errorf("corpus source %s requires corpus.path: %w", settings.Corpus.Source, domain.ErrInvalidInput)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns the backing config file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// env returns the override for key, if set and non-empty.
func (s *SettingsService) env(key string) (string, bool) {
	name, ok := envKeys[key]
	if !ok || s.lookupEnv == nil {
		return "", false
	}
	val, ok := s.lookupEnv(name)
	if !ok || strings.TrimSpace(val) == "" {
		return "", false
	}
	return strings.TrimSpace(val), true
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val, ok := s.env(key); ok {
		return val
	}
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) (int, error) {
	if val, ok := s.env(key); ok {
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("%s=%q: %w", envKeys[key], val, domain.ErrInvalidInput)
		}
		return n, nil
	}
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key), nil
	}
	return defaultVal, nil
}

func (s *SettingsService) getFloat(key string, defaultVal float64) (float64, error) {
	if val, ok := s.env(key); ok {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("%s=%q: %w", envKeys[key], val, domain.ErrInvalidInput)
		}
		return f, nil
	}
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key), nil
	}
	return defaultVal, nil
}

func (s *SettingsService) getBool(key string, defaultVal bool) (bool, error) {
	if val, ok := s.env(key); ok {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return false, fmt.Errorf("%s=%q: %w", envKeys[key], val, domain.ErrInvalidInput)
		}
		return b, nil
	}
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetBool(key), nil
	}
	return defaultVal, nil
}

// parseValue converts a command-line string into the type stored for kind.
func parseValue(kind valueKind, value string) (any, error) {
	switch kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer: %w", value, domain.ErrInvalidInput)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", value, domain.ErrInvalidInput)
		}
		return f, nil
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%q is not a boolean: %w", value, domain.ErrInvalidInput)
		}
		return b, nil
	default:
		return value, nil
	}
}
