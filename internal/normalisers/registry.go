package normalisers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
	"github.com/jackisacoolryan/test-mcp/internal/normalisers/html"
	"github.com/jackisacoolryan/test-mcp/internal/normalisers/markdown"
	"github.com/jackisacoolryan/test-mcp/internal/normalisers/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.NormaliserRegistry = (*Registry)(nil)

// Registry dispatches files to normalisers by extension.
type Registry struct {
	mu          sync.RWMutex
	byExtension map[string][]driven.Normaliser
	fallbacks   []driven.Normaliser
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byExtension: make(map[string][]driven.Normaliser),
	}
}

// NewDefaultRegistry creates a registry with the markdown, HTML and
// plain text normalisers.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(markdown.New())
	r.Register(html.New())
	r.Register(plaintext.New())
	return r
}

// Register adds a normaliser. Normalisers without extensions are fallbacks.
func (r *Registry) Register(n driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exts := n.SupportedExtensions()
	if len(exts) == 0 {
		r.fallbacks = insertByPriority(r.fallbacks, n)
		return
	}
	for _, ext := range exts {
		r.byExtension[ext] = insertByPriority(r.byExtension[ext], n)
	}
}

// Normalise runs the highest-priority normaliser for the file's extension,
// or the best fallback when no normaliser claims it.
func (r *Registry) Normalise(ctx context.Context, raw *domain.RawFile) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	n := r.lookup(raw.Ext())
	if n == nil {
		return nil, fmt.Errorf("no normaliser for %q: %w", raw.Path, domain.ErrUnsupportedType)
	}
	return n.Normalise(ctx, raw)
}

// SupportedExtensions returns all extensions with a dedicated normaliser, sorted.
func (r *Registry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.byExtension))
	for ext := range r.byExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (r *Registry) lookup(ext string) driven.Normaliser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if candidates := r.byExtension[ext]; len(candidates) > 0 {
		return candidates[0]
	}
	if len(r.fallbacks) > 0 {
		return r.fallbacks[0]
	}
	return nil
}

// insertByPriority keeps list sorted by descending priority.
// Equal priorities keep registration order.
func insertByPriority(list []driven.Normaliser, n driven.Normaliser) []driven.Normaliser {
	i := sort.Search(len(list), func(i int) bool {
		return list[i].Priority() < n.Priority()
	})
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = n
	return list
}
