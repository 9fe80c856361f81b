package driven

import (
	"context"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// CorpusLoader reads the documents served by the process.
// It is called exactly once during bring-up; the result is frozen into a
// domain.Corpus and the loader is discarded.
type CorpusLoader interface {
	// Name identifies the loader in logs (e.g. "sqlite:/data/docs.db").
	Name() string

	// Load returns all documents in serving order.
	// Any error aborts process bring-up.
	Load(ctx context.Context) ([]domain.Document, error)
}
