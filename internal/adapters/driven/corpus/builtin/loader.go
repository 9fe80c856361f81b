// Package builtin serves the example corpus compiled into the binary.
package builtin

import (
	"context"
	_ "embed"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/file"
	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

//go:embed documents.json
var documentsJSON []byte

// Loader decodes the embedded documents.json.
type Loader struct{}

// New creates the built-in loader.
func New() *Loader {
	return &Loader{}
}

// Name identifies the loader.
func (l *Loader) Name() string {
	return "builtin"
}

// Load returns the built-in documents in file order.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return file.Decode(file.FormatJSON, documentsJSON)
}
