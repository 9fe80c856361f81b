package driven

import (
	"context"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// Normaliser turns a raw corpus file into a title and plain text.
// Each normaliser handles a set of file extensions (e.g., ".md").
type Normaliser interface {
	// SupportedExtensions returns the lower-case extensions, with the dot,
	// this normaliser handles. Empty means it is a fallback.
	SupportedExtensions() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise converts a raw file.
	Normalise(ctx context.Context, raw *domain.RawFile) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
type NormaliseResult struct {
	// Title is the document title.
	Title string

	// Text is the plain text body.
	Text string
}
