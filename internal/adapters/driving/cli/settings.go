package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the transport, corpus source and logging options.

Use subcommands to change a single value or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a single setting",
	Long: `Set a single setting and save it to the config file.

Available keys:
  server.transport   http or stdio
  server.host        HTTP listen host
  server.port        HTTP listen port
  server.rate_limit  requests per second, 0 disables limiting
  server.rate_burst  rate limiter burst size
  corpus.source      builtin, file, directory, sqlite or bolt
  corpus.path        corpus file, directory or database path
  corpus.pattern     glob for the directory source
  corpus.base_url    URL prefix for the directory source
  corpus.table       SQLite table name
  corpus.bucket      bbolt bucket name
  log.verbose        true or false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the transport and corpus step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Transport: %s\n", settings.Server.Transport.Description())
	if settings.Server.Transport == domain.TransportHTTP {
		cmd.Printf("  Host: %s\n", settings.Server.Host)
		cmd.Printf("  Port: %d\n", settings.Server.Port)
		if settings.Server.RateLimit > 0 {
			cmd.Printf("  Rate Limit: %g req/s (burst %d)\n", settings.Server.RateLimit, settings.Server.RateBurst)
		} else {
			cmd.Printf("  Rate Limit: off\n")
		}
	}
	cmd.Println()

	cmd.Println("[Corpus]")
	cmd.Printf("  Source: %s\n", settings.Corpus.Source.Description())
	if settings.Corpus.Source.RequiresPath() {
		path := settings.Corpus.Path
		if path == "" {
			path = "(not set)"
		}
		cmd.Printf("  Path: %s\n", path)
	}
	switch settings.Corpus.Source {
	case domain.CorpusSourceDirectory:
		cmd.Printf("  Pattern: %s\n", settings.Corpus.Pattern)
		if settings.Corpus.BaseURL != "" {
			cmd.Printf("  Base URL: %s\n", settings.Corpus.BaseURL)
		}
	case domain.CorpusSourceSQLite:
		cmd.Printf("  Table: %s\n", settings.Corpus.Table)
	case domain.CorpusSourceBolt:
		cmd.Printf("  Bucket: %s\n", settings.Corpus.Bucket)
	}
	cmd.Println()

	cmd.Println("[Log]")
	cmd.Printf("  Verbose: %s\n", yesNo(settings.Log.Verbose))
	cmd.Println()

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}

	if err := settingsService.Validate(settings); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'test-mcp settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		// Start from defaults so a broken value can be replaced.
		defaults := settingsService.GetDefaults()
		current = &defaults
	}

	cmd.Println("Test MCP Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Transport
	cmd.Println("Step 1: Select Transport")
	cmd.Println("------------------------")
	transports := domain.AllTransports()
	for i, t := range transports {
		cmd.Printf("  %d. %s\n", i+1, t.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	transport := transports[parseChoice(readLine(reader), len(transports), 1)-1]
	if err := settingsService.Set("server.transport", transport.String()); err != nil {
		return fmt.Errorf("failed to set transport: %w", err)
	}
	cmd.Printf("Set transport to: %s\n\n", transport.Description())

	if transport == domain.TransportHTTP {
		cmd.Printf("Enter host [%s]: ", current.Server.Host)
		if host := readLine(reader); host != "" {
			if err := settingsService.Set("server.host", host); err != nil {
				return fmt.Errorf("failed to set host: %w", err)
			}
		}

		cmd.Printf("Enter port [%d]: ", current.Server.Port)
		if port := readLine(reader); port != "" {
			if err := settingsService.Set("server.port", port); err != nil {
				return fmt.Errorf("failed to set port: %w", err)
			}
		}
		cmd.Println()
	}

	// Step 2: Corpus
	cmd.Println("Step 2: Select Corpus Source")
	cmd.Println("----------------------------")
	sources := domain.AllCorpusSources()
	for i, s := range sources {
		cmd.Printf("  %d. %s\n", i+1, s.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	source := sources[parseChoice(readLine(reader), len(sources), 1)-1]
	if err := settingsService.Set("corpus.source", source.String()); err != nil {
		return fmt.Errorf("failed to set corpus source: %w", err)
	}

	if source.RequiresPath() {
		prompt := "Enter corpus path"
		if current.Corpus.Path != "" {
			prompt += " [" + current.Corpus.Path + "]"
		}
		cmd.Print(prompt + ": ")
		path := readLine(reader)
		if path == "" {
			path = current.Corpus.Path
		}
		if path == "" {
			return errors.New("corpus path is required for this source")
		}
		if err := settingsService.Set("corpus.path", path); err != nil {
			return fmt.Errorf("failed to set corpus path: %w", err)
		}
	}
	cmd.Printf("Set corpus source to: %s\n\n", source.Description())

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	settings, err := settingsService.Get()
	if err != nil {
		cmd.Printf("Warning: %v\n", err)
		return nil
	}
	if err := settingsService.Validate(settings); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
