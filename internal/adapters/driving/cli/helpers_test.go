package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/builtin"
	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/storage/memory"
	"github.com/jackisacoolryan/test-mcp/internal/core/services"
)

// setupTestServices wires the built-in corpus and an in-memory config
// store into the package services. The returned func restores them.
func setupTestServices() func() {
	origSettings := settingsService
	origRetrieval := retrievalService
	origCatalog := catalogService

	settings := services.NewSettingsService(memory.NewConfigStore())
	settings.SetEnvLookup(func(string) (string, bool) { return "", false })
	settingsService = settings

	corpus, err := services.LoadCorpus(context.Background(), builtin.New())
	if err != nil {
		panic(err)
	}
	retrieval := services.NewRetrievalService(corpus)
	retrievalService = retrieval
	catalogService = retrieval

	return func() {
		settingsService = origSettings
		retrievalService = origRetrieval
		catalogService = origCatalog
		searchJSON = false
		fetchJSON = false
		resetFlags(rootCmd)
		resetContexts(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}
}

// resetFlags clears parsed flag values left behind by earlier executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// resetContexts drops contexts cobra copied onto subcommands so the next
// execution inherits a fresh one.
func resetContexts(cmd *cobra.Command) {
	cmd.SetContext(nil) //nolint:staticcheck // nil lets cobra assign the parent context
	for _, c := range cmd.Commands() {
		resetContexts(c)
	}
}
