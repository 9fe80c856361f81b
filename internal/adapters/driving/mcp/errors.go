// Package mcp exposes the retrieval service as an MCP (Model Context Protocol)
// server with search and fetch tools and read-only corpus resources.
package mcp

import "errors"

// ErrMissingRetrievalService is returned when the retrieval service is not provided.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
