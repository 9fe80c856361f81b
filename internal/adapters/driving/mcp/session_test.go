package mcp

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackisacoolryan/test-mcp/internal/adapters/driven/corpus/builtin"
	"github.com/jackisacoolryan/test-mcp/internal/core/services"
)

// newBuiltinServer serves the built-in corpus through the real services.
func newBuiltinServer(t *testing.T) *Server {
	t.Helper()
	corpus, err := services.LoadCorpus(context.Background(), builtin.New())
	require.NoError(t, err)

	retrieval := services.NewRetrievalService(corpus)
	server, err := NewServer(&Ports{Retrieval: retrieval, Catalog: retrieval})
	require.NoError(t, err)
	return server
}

// connectInMemory returns a client session attached to server.
func connectInMemory(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

// callText calls a tool and returns its JSON text content.
func callText(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s returned an error result", name)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestSession_ListTools(t *testing.T) {
	cs := connectInMemory(t, newBuiltinServer(t))

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, len(res.Tools))
	for i, tool := range res.Tools {
		names[i] = tool.Name
		assert.NotEmpty(t, tool.Description)
		assert.NotNil(t, tool.InputSchema)
	}
	assert.ElementsMatch(t, []string{"search", "fetch"}, names)
}

func TestSession_Search(t *testing.T) {
	cs := connectInMemory(t, newBuiltinServer(t))

	text := callText(t, cs, "search", map[string]any{"query": "protocol"})
	assert.JSONEq(t, `{"results": [{
		"id": "2",
		"title": "Model Context Protocol",
		"text": "The Model Context Protocol defines a contract for connecting LLMs to external data via search and fetch tools.",
		"url": "https://example.com/mcp-spec"
	}]}`, text)

	text = callText(t, cs, "search", map[string]any{"query": "FastMCP"})
	var out SearchOutput
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	require.Len(t, out.Results, 1)
	assert.Equal(t, "1", out.Results[0].ID)

	text = callText(t, cs, "search", map[string]any{"query": "no-such-term"})
	assert.JSONEq(t, `{"results": []}`, text)

	text = callText(t, cs, "search", map[string]any{"query": ""})
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Len(t, out.Results, 2)
}

func TestSession_Fetch(t *testing.T) {
	cs := connectInMemory(t, newBuiltinServer(t))

	text := callText(t, cs, "fetch", map[string]any{"id": "2"})
	assert.JSONEq(t, `{
		"id": "2",
		"title": "Model Context Protocol",
		"text": "The Model Context Protocol defines a contract for connecting LLMs to external data via search and fetch tools.",
		"url": "https://example.com/mcp-spec",
		"metadata": {}
	}`, text)

	text = callText(t, cs, "fetch", map[string]any{"id": "99"})
	assert.JSONEq(t, `{"id": "99", "title": "", "text": "", "url": "", "metadata": {}}`, text)
}

func TestSession_InvalidArguments(t *testing.T) {
	cs := connectInMemory(t, newBuiltinServer(t))

	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{name: "search without query", tool: "search", args: map[string]any{}},
		{name: "search with number", tool: "search", args: map[string]any{"query": 42}},
		{name: "fetch without id", tool: "fetch", args: map[string]any{}},
		{name: "fetch with list", tool: "fetch", args: map[string]any{"id": []string{"1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{Name: tt.tool, Arguments: tt.args})
			if err == nil {
				assert.True(t, res.IsError)
			}
		})
	}
}

func TestSession_Resources(t *testing.T) {
	cs := connectInMemory(t, newBuiltinServer(t))
	ctx := context.Background()

	list, err := cs.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, list.Resources, 1)
	assert.Equal(t, "corpus://documents", list.Resources[0].URI)

	res, err := cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: "corpus://documents"})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.True(t, strings.Contains(res.Contents[0].Text, "FastMCP Introduction"))

	res, err = cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: "corpus://documents/1"})
	require.NoError(t, err)
	assert.Equal(t, "This document introduces FastMCP and explains how to build MCP servers.", res.Contents[0].Text)

	_, err = cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: "corpus://documents/99"})
	assert.Error(t, err)
}

func TestSession_StreamableHTTP(t *testing.T) {
	server := newBuiltinServer(t)
	ts := httptest.NewServer(server.HTTPHandler(HTTPOptions{}))
	defer ts.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "http-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(context.Background(), &mcp.StreamableClientTransport{Endpoint: ts.URL}, nil)
	require.NoError(t, err)
	defer cs.Close()

	text := callText(t, cs, "fetch", map[string]any{"id": "1"})
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &record))
	assert.Equal(t, "FastMCP Introduction", record["title"])
	assert.Equal(t, map[string]any{}, record["metadata"])
}
