package cli

import (
	"github.com/spf13/cobra"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driving/mcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("test-mcp version %s\n", version)
		cmd.Printf("%s %s\n", mcp.Name, mcp.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
