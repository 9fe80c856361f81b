// Package corpus wires corpus sources to their loaders.
package corpus

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/bolt"
	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/builtin"
	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/directory"
	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/file"
	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/sqlite"
	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
	"github.com/jackisacoolryan/test-mcp/internal/normalisers"
)

// Ensure Factory implements the interface.
var _ driven.CorpusLoaderFactory = (*Factory)(nil)

// Factory creates corpus loaders from settings.
type Factory struct {
	mu       sync.RWMutex
	builders map[domain.CorpusSource]driven.CorpusLoaderBuilder
}

// NewFactory creates an empty factory.
func NewFactory() *Factory {
	return &Factory{
		builders: make(map[domain.CorpusSource]driven.CorpusLoaderBuilder),
	}
}

// NewDefaultFactory creates a factory with every built-in source registered.
// Directory sources normalise files with registry.
func NewDefaultFactory(registry driven.NormaliserRegistry) *Factory {
	if registry == nil {
		registry = normalisers.NewDefaultRegistry()
	}

	f := NewFactory()
	f.Register(domain.CorpusSourceBuiltin, func(domain.CorpusSettings) (driven.CorpusLoader, error) {
		return builtin.New(), nil
	})
	f.Register(domain.CorpusSourceFile, func(s domain.CorpusSettings) (driven.CorpusLoader, error) {
		return file.New(s)
	})
	f.Register(domain.CorpusSourceDirectory, func(s domain.CorpusSettings) (driven.CorpusLoader, error) {
		return directory.New(s, registry)
	})
	f.Register(domain.CorpusSourceSQLite, func(s domain.CorpusSettings) (driven.CorpusLoader, error) {
		return sqlite.New(s)
	})
	f.Register(domain.CorpusSourceBolt, func(s domain.CorpusSettings) (driven.CorpusLoader, error) {
		return bolt.New(s)
	})
	return f
}

// Create returns the loader registered for settings.Source.
func (f *Factory) Create(settings domain.CorpusSettings) (driven.CorpusLoader, error) {
	f.mu.RLock()
	builder, ok := f.builders[settings.Source]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("corpus source %q: %w", settings.Source, domain.ErrUnsupportedType)
	}
	return builder(settings)
}

// Register adds or replaces the builder for source.
func (f *Factory) Register(source domain.CorpusSource, builder driven.CorpusLoaderBuilder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.builders[source] = builder
}

// SupportedSources returns the registered sources, sorted.
func (f *Factory) SupportedSources() []domain.CorpusSource {
	f.mu.RLock()
	defer f.mu.RUnlock()

	sources := make([]domain.CorpusSource, 0, len(f.builders))
	for s := range f.builders {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}
