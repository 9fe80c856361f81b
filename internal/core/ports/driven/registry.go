package driven

import (
	"context"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// NormaliserRegistry selects the appropriate normaliser for a file.
// It dispatches on file extension and falls back to the highest-priority
// fallback normaliser.
type NormaliserRegistry interface {
	// Normalise transforms a raw file using the best matching normaliser.
	Normalise(ctx context.Context, raw *domain.RawFile) (*NormaliseResult, error)

	// Register adds a normaliser to the registry.
	Register(normaliser Normaliser)

	// SupportedExtensions returns all extensions with a dedicated normaliser.
	SupportedExtensions() []string
}
