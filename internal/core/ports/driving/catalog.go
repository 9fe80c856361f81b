package driving

import (
	"context"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// CatalogService lists the corpus for browsing.
type CatalogService interface {
	// List returns every document in corpus order.
	List(ctx context.Context) ([]domain.Document, error)

	// Get returns one document by exact id.
	// Returns domain.ErrNotFound if the id is not in the corpus.
	Get(ctx context.Context, id string) (domain.Document, error)
}
