package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

var fetchJSON bool

var fetchCmd = &cobra.Command{
	Use:   "fetch [id]",
	Short: "Fetch a document by id",
	Long: `Prints the full document with the given id, as the MCP fetch tool
returns it. With --json an unknown id yields a record that echoes the id
with empty fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	id := args[0]

	if err := retrievalFromSettings(cmd.Context()); err != nil {
		return err
	}
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}

	if fetchJSON {
		record, err := retrievalService.Fetch(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	doc, err := catalogService.Get(cmd.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("Document not found: %s\n", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	cmd.Printf("ID: %s\n", doc.ID)
	cmd.Printf("Title: %s\n", doc.Title)
	if doc.URL != "" {
		cmd.Printf("URL: %s\n", doc.URL)
	}
	cmd.Println()
	cmd.Println(doc.Text)
	return nil
}
