package driven

import "github.com/jackisacoolryan/test-mcp/internal/core/domain"

// CorpusLoaderBuilder creates a CorpusLoader from corpus settings.
type CorpusLoaderBuilder func(settings domain.CorpusSettings) (CorpusLoader, error)

// CorpusLoaderFactory creates corpus loaders from configuration.
// It maintains a registry of corpus sources and their builders.
type CorpusLoaderFactory interface {
	// Create returns a CorpusLoader for the given settings.
	// Returns ErrUnsupportedType if the source is unknown.
	Create(settings domain.CorpusSettings) (CorpusLoader, error)

	// Register adds a loader builder for the given source.
	Register(source domain.CorpusSource, builder CorpusLoaderBuilder)

	// SupportedSources returns all registered sources.
	SupportedSources() []domain.CorpusSource
}
