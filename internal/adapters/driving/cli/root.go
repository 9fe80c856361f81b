// Package cli provides the command-line interface for the test-mcp server.
//
// The root command loads settings, while subcommands serve the MCP server
// or query the configured corpus directly from the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/config/file"
	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus"
	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driving"
	"github.com/jackisacoolryan/test-mcp/internal/core/services"
	"github.com/jackisacoolryan/test-mcp/internal/logger"
)

// version is stamped by the binary at startup.
var version = "dev"

// Services shared by all commands. Tests inject them directly.
var (
	settingsService  driving.SettingsService
	retrievalService driving.RetrievalService
	catalogService   driving.CatalogService
	corpusFactory    driven.CorpusLoaderFactory = corpus.NewDefaultFactory(nil)
)

var rootCmd = &cobra.Command{
	Use:   "test-mcp",
	Short: "Search and fetch documents over the Model Context Protocol",
	Long: `test-mcp serves a static document corpus to MCP clients through
two tools: search (substring match over titles and text) and fetch
(full document by id).

Settings are read from ~/.test-mcp/config.toml, then from the
environment (a .env file in the working directory is loaded first),
then from command flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: initSettings,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.test-mcp/config.toml)")
}

// Execute runs the root command. v overrides the reported version when set.
func Execute(ctx context.Context, v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.ExecuteContext(ctx)
}

// initSettings wires the settings service and applies logging settings.
func initSettings(cmd *cobra.Command, _ []string) error {
	// A missing .env is the common case.
	_ = godotenv.Load()

	if settingsService == nil {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return fmt.Errorf("getting config flag: %w", err)
		}
		store, err := openConfigStore(configPath)
		if err != nil {
			return fmt.Errorf("failed to open config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("getting verbose flag: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		// settings commands must still run so a bad value can be fixed.
		logger.SetVerbose(verbose)
		if isSettingsCommand(cmd) {
			logger.Warn("settings: %v", err)
			return nil
		}
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logger.SetVerbose(verbose || settings.Log.Verbose)
	return nil
}

func openConfigStore(path string) (*file.ConfigStore, error) {
	if path != "" {
		return file.NewConfigStoreAt(path)
	}
	return file.NewConfigStore("")
}

func isSettingsCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == settingsCmd {
			return true
		}
	}
	return false
}

// loadSettings returns validated settings.
func loadSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if err := settingsService.Validate(settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// ensureRetrieval loads the corpus described by settings unless
// retrieval services are already wired.
func ensureRetrieval(ctx context.Context, settings *domain.AppSettings) error {
	if retrievalService != nil {
		return nil
	}
	if corpusFactory == nil {
		return errors.New("corpus factory not configured")
	}

	loader, err := corpusFactory.Create(settings.Corpus)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCorpusUnavailable, err)
	}

	c, err := services.LoadCorpus(ctx, loader)
	if err != nil {
		return err
	}

	svc := services.NewRetrievalService(c)
	retrievalService = svc
	catalogService = svc
	return nil
}

// retrievalFromSettings loads settings and the corpus they describe.
func retrievalFromSettings(ctx context.Context) error {
	if retrievalService != nil {
		return nil
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	return ensureRetrieval(ctx, settings)
}
