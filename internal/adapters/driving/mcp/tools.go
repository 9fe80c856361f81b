package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/logger"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to look for in document titles and bodies, case-insensitive"`
}

// SearchOutput is the output schema for the search tool.
// Structured tool output must be an object, so the result list is wrapped.
type SearchOutput struct {
	Results []domain.SearchResult `json:"results" jsonschema:"up to 5 matching documents in corpus order"`
}

// FetchInput is the input schema for the fetch tool.
type FetchInput struct {
	ID string `json:"id" jsonschema:"document identifier from a search result"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search",
		Description: "Search documents. Return up to 5 results containing the query. " +
			"Each result includes id, title, a relevant text snippet and url.",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "fetch",
		Description: "Fetch full document contents by id. " +
			"Returns an object with id, title, text, url and optional metadata.",
	}, s.handleFetch)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	log := logger.With("search " + uuid.NewString())
	log.Debug("query=%q", input.Query)

	results, err := s.ports.Retrieval.Search(ctx, input.Query)
	if err != nil {
		log.Warn("failed: %v", err)
		return nil, SearchOutput{}, err
	}
	if results == nil {
		results = []domain.SearchResult{}
	}

	log.Debug("%d results", len(results))
	return nil, SearchOutput{Results: results}, nil
}

// handleFetch handles the fetch tool invocation.
// An unknown id is a normal result, not a tool error.
func (s *Server) handleFetch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchInput,
) (*mcp.CallToolResult, domain.FetchRecord, error) {
	log := logger.With("fetch " + uuid.NewString())
	log.Debug("id=%q", input.ID)

	record, err := s.ports.Retrieval.Fetch(ctx, input.ID)
	if err != nil {
		log.Warn("failed: %v", err)
		return nil, domain.FetchRecord{}, err
	}
	if record.Metadata == nil {
		record.Metadata = map[string]any{}
	}

	return nil, record, nil
}
