package memory

import (
	"context"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
)

// Ensure CorpusLoader implements the interface.
var _ driven.CorpusLoader = (*CorpusLoader)(nil)

// CorpusLoader serves a fixed document slice.
// Useful for tests and as the backing loader for embedded corpora.
type CorpusLoader struct {
	name string
	docs []domain.Document
	err  error
}

// NewCorpusLoader creates a loader that returns a copy of docs.
func NewCorpusLoader(name string, docs []domain.Document) *CorpusLoader {
	cp := make([]domain.Document, len(docs))
	copy(cp, docs)
	return &CorpusLoader{name: name, docs: cp}
}

// NewFailingCorpusLoader creates a loader whose Load always returns err.
func NewFailingCorpusLoader(name string, err error) *CorpusLoader {
	return &CorpusLoader{name: name, err: err}
}

// Name identifies the loader.
func (l *CorpusLoader) Name() string {
	return "memory:" + l.name
}

// Load returns the documents in the order they were given.
func (l *CorpusLoader) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.err != nil {
		return nil, l.err
	}
	out := make([]domain.Document, len(l.docs))
	copy(out, l.docs)
	return out, nil
}
