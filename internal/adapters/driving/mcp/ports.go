package mcp

import (
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Retrieval answers the search and fetch tools.
	Retrieval driving.RetrievalService

	// Catalog lists documents for the corpus resources.
	// Optional: without it the resources are not registered.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Retrieval == nil {
		return ErrMissingRetrievalService
	}
	return nil
}
