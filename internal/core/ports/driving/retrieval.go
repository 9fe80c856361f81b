package driving

import (
	"context"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// RetrievalService exposes the two read-only corpus queries.
type RetrievalService interface {
	// Search returns up to domain.MaxSearchResults documents whose title or
	// text contains query, case-insensitively, in corpus order.
	// No matches is an empty slice, not an error.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// Fetch returns the full record for id.
	// An unknown id yields an empty record echoing id, not an error.
	Fetch(ctx context.Context, id string) (domain.FetchRecord, error)
}
