package cli

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driving/mcp"
	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server over the configured corpus.

By default the server listens for streamable HTTP on 0.0.0.0:8000.
Use --stdio to talk JSON-RPC over stdin/stdout instead, which is what
desktop MCP clients expect when they launch the server themselves.

The corpus is loaded once before the server accepts connections. If it
cannot be loaded the command exits without serving.

Examples:
  # HTTP on the default port
  test-mcp serve

  # HTTP on a custom port
  test-mcp serve --port 9000

  # Stdio mode
  test-mcp serve --stdio

  # Serve a directory of markdown notes
  test-mcp serve --corpus-source directory --corpus-path ./notes`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (overrides server.port)")
	serveCmd.Flags().String("host", "", "HTTP host (overrides server.host)")
	serveCmd.Flags().Bool("stdio", false, "Serve over stdin/stdout instead of HTTP")
	serveCmd.Flags().String("corpus-source", "", "Corpus source: builtin, file, directory, sqlite, bolt")
	serveCmd.Flags().String("corpus-path", "", "Corpus file, directory or database path")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if err := applyServeFlags(cmd, settings); err != nil {
		return err
	}
	if err := settingsService.Validate(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := ensureRetrieval(cmd.Context(), settings); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Retrieval: retrievalService,
		Catalog:   catalogService,
	})
	if err != nil {
		return err
	}

	if settings.Server.Transport == domain.TransportStdio {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Warn("stdin is a terminal; the stdio transport expects an MCP client on the other end")
		}
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(settings.Server.Host, strconv.Itoa(settings.Server.Port))
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s/\n", addr)
	return server.RunHTTP(cmd.Context(), addr, mcp.HTTPOptions{
		RateLimit: settings.Server.RateLimit,
		RateBurst: settings.Server.RateBurst,
	})
}

// applyServeFlags overlays explicitly set flags onto settings.
func applyServeFlags(cmd *cobra.Command, settings *domain.AppSettings) error {
	flags := cmd.Flags()

	if flags.Changed("port") {
		port, err := flags.GetInt("port")
		if err != nil {
			return fmt.Errorf("getting port flag: %w", err)
		}
		settings.Server.Port = port
	}
	if flags.Changed("host") {
		host, err := flags.GetString("host")
		if err != nil {
			return fmt.Errorf("getting host flag: %w", err)
		}
		settings.Server.Host = host
	}
	if flags.Changed("stdio") {
		stdio, err := flags.GetBool("stdio")
		if err != nil {
			return fmt.Errorf("getting stdio flag: %w", err)
		}
		if stdio {
			settings.Server.Transport = domain.TransportStdio
		} else {
			settings.Server.Transport = domain.TransportHTTP
		}
	}
	if flags.Changed("corpus-source") {
		source, err := flags.GetString("corpus-source")
		if err != nil {
			return fmt.Errorf("getting corpus-source flag: %w", err)
		}
		settings.Corpus.Source = domain.CorpusSource(source)
	}
	if flags.Changed("corpus-path") {
		path, err := flags.GetString("corpus-path")
		if err != nil {
			return fmt.Errorf("getting corpus-path flag: %w", err)
		}
		settings.Corpus.Path = path
	}

	return nil
}
