package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// --- Fixtures ---

func exampleCorpus(t *testing.T) *domain.Corpus {
	t.Helper()
	corpus, err := domain.NewCorpus([]domain.Document{
		{
			ID:    "1",
			Title: "FastMCP Introduction",
			Text:  "This document introduces FastMCP and explains how to build MCP servers.",
			URL:   "https://example.com/fastmcp-intro",
		},
		{
			ID:    "2",
			Title: "Model Context Protocol",
			Text:  "The Model Context Protocol defines a contract...",
			URL:   "https://example.com/mcp-spec",
		},
	})
	require.NoError(t, err)
	return corpus
}

// numberedCorpus builds n documents whose ids are "doc-0".."doc-(n-1)".
// Even documents mention "even" in their text, odd ones in their title.
func numberedCorpus(t *testing.T, n int) *domain.Corpus {
	t.Helper()
	docs := make([]domain.Document, n)
	for i := range docs {
		doc := domain.Document{
			ID:  fmt.Sprintf("doc-%d", i),
			URL: fmt.Sprintf("https://example.com/%d", i),
		}
		if i%2 == 0 {
			doc.Title = fmt.Sprintf("Document %d", i)
			doc.Text = "an EVEN numbered document"
		} else {
			doc.Title = fmt.Sprintf("Odd document %d", i)
			doc.Text = "plain text"
		}
		docs[i] = doc
	}
	corpus, err := domain.NewCorpus(docs)
	require.NoError(t, err)
	return corpus
}

func resultIDs(results []domain.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

// --- Search ---

func TestRetrievalService_Search_Scenarios(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))
	ctx := context.Background()

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "protocol matches title and text of doc 2 only", query: "protocol", expected: []string{"2"}},
		{name: "fastmcp matches doc 1 only", query: "fastmcp", expected: []string{"1"}},
		{name: "upper case query", query: "FASTMCP", expected: []string{"1"}},
		{name: "mixed case query", query: "mOdEl CoNtExT", expected: []string{"2"}},
		{name: "title only match", query: "introduction", expected: []string{"1"}},
		{name: "text only match", query: "build mcp servers", expected: []string{"1"}},
		{name: "title and text match counted once", query: "mcp", expected: []string{"1"}},
		{name: "substring shared by both in corpus order", query: "in", expected: []string{"1", "2"}},
		{name: "empty query matches all", query: "", expected: []string{"1", "2"}},
		{name: "no match", query: "kubernetes", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := service.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resultIDs(results))
		})
	}
}

func TestRetrievalService_Search_ResultFields(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))

	results, err := service.Search(context.Background(), "protocol")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, domain.SearchResult{
		ID:    "2",
		Title: "Model Context Protocol",
		Text:  "The Model Context Protocol defines a contract...",
		URL:   "https://example.com/mcp-spec",
	}, results[0])
}

func TestRetrievalService_Search_NoMatchIsEmptyNotNil(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))

	results, err := service.Search(context.Background(), "no such phrase")
	require.NoError(t, err)
	require.NotNil(t, results)
	assert.Empty(t, results)

	data, err := json.Marshal(results)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRetrievalService_Search_CapsAtFive(t *testing.T) {
	service := NewRetrievalService(numberedCorpus(t, 12))
	ctx := context.Background()

	t.Run("empty query returns first five documents", func(t *testing.T) {
		results, err := service.Search(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"doc-0", "doc-1", "doc-2", "doc-3", "doc-4"}, resultIDs(results))
	})

	t.Run("first five matches in corpus order", func(t *testing.T) {
		results, err := service.Search(ctx, "even")
		require.NoError(t, err)
		assert.Equal(t, []string{"doc-0", "doc-2", "doc-4", "doc-6", "doc-8"}, resultIDs(results))
	})

	t.Run("title matches in corpus order", func(t *testing.T) {
		results, err := service.Search(ctx, "odd")
		require.NoError(t, err)
		assert.Equal(t, []string{"doc-1", "doc-3", "doc-5", "doc-7", "doc-9"}, resultIDs(results))
	})
}

func TestRetrievalService_Search_SmallCorpusEmptyQuery(t *testing.T) {
	service := NewRetrievalService(numberedCorpus(t, 3))

	results, err := service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"doc-0", "doc-1", "doc-2"}, resultIDs(results))
}

func TestRetrievalService_Search_EmptyCorpus(t *testing.T) {
	corpus, err := domain.NewCorpus(nil)
	require.NoError(t, err)
	service := NewRetrievalService(corpus)

	results, err := service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRetrievalService_Search_Snippet(t *testing.T) {
	long := "Prefix " + strings.Repeat("Lorem ipsum dolor sit amet. ", 20)
	corpus, err := domain.NewCorpus([]domain.Document{
		{ID: "long", Title: "Long", Text: long, URL: "https://example.com/long"},
		{ID: "short", Title: "Short", Text: "Lorem ipsum.", URL: "https://example.com/short"},
	})
	require.NoError(t, err)
	service := NewRetrievalService(corpus)

	results, err := service.Search(context.Background(), "lorem")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, long[:domain.SnippetLength]+domain.TruncationMarker, results[0].Text)
	assert.True(t, domain.IsTruncated(results[0].Text))
	assert.Equal(t, "Lorem ipsum.", results[1].Text)
	assert.False(t, domain.IsTruncated(results[1].Text))

	for _, r := range results {
		assert.LessOrEqual(t, utf8.RuneCountInString(r.Text), domain.SnippetLength+len(domain.TruncationMarker))
	}
}

func TestRetrievalService_Search_MatchBeyondSnippet(t *testing.T) {
	// The match is evaluated against the full text, not the snippet.
	text := strings.Repeat("x", 300) + " needle"
	corpus, err := domain.NewCorpus([]domain.Document{{ID: "1", Text: text}})
	require.NoError(t, err)
	service := NewRetrievalService(corpus)

	results, err := service.Search(context.Background(), "NEEDLE")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotContains(t, results[0].Text, "needle")
}

// TestRetrievalService_Search_Properties checks every result against the query
func TestRetrievalService_Search_Properties(t *testing.T) {
	service := NewRetrievalService(numberedCorpus(t, 20))
	queries := []string{"", "doc", "DOCUMENT 1", "even", "ODD", "plain", "1", "zzz"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			results, err := service.Search(context.Background(), q)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(results), domain.MaxSearchResults)

			lastPos := -1
			for _, r := range results {
				var pos int
				_, err := fmt.Sscanf(r.ID, "doc-%d", &pos)
				require.NoError(t, err)
				assert.Greater(t, pos, lastPos, "results must follow corpus order")
				lastPos = pos

				full, err := service.Fetch(context.Background(), r.ID)
				require.NoError(t, err)
				lq := strings.ToLower(q)
				assert.True(t,
					strings.Contains(strings.ToLower(full.Text), lq) ||
						strings.Contains(strings.ToLower(full.Title), lq))
			}
		})
	}
}

func TestRetrievalService_Search_CancelledContext(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := service.Search(ctx, "protocol")
	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}

// --- Fetch ---

func TestRetrievalService_Fetch_Hit(t *testing.T) {
	corpus := exampleCorpus(t)
	service := NewRetrievalService(corpus)

	for _, doc := range corpus.All() {
		t.Run(doc.ID, func(t *testing.T) {
			record, err := service.Fetch(context.Background(), doc.ID)
			require.NoError(t, err)

			assert.Equal(t, doc.ID, record.ID)
			assert.Equal(t, doc.Title, record.Title)
			assert.Equal(t, doc.Text, record.Text)
			assert.Equal(t, doc.URL, record.URL)
			require.NotNil(t, record.Metadata)
			assert.Empty(t, record.Metadata)
		})
	}
}

func TestRetrievalService_Fetch_FullTextNotTruncated(t *testing.T) {
	long := strings.Repeat("abcdefghij", 50)
	corpus, err := domain.NewCorpus([]domain.Document{{ID: "long", Text: long}})
	require.NoError(t, err)
	service := NewRetrievalService(corpus)

	record, err := service.Fetch(context.Background(), "long")
	require.NoError(t, err)
	assert.Equal(t, long, record.Text)
}

func TestRetrievalService_Fetch_Miss(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))

	tests := []struct {
		name string
		id   string
	}{
		{name: "unknown id", id: "99"},
		{name: "case differs", id: "ID-1"},
		{name: "empty id", id: ""},
		{name: "whitespace padded", id: " 1 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := service.Fetch(context.Background(), tt.id)
			require.NoError(t, err)

			assert.Equal(t, tt.id, record.ID)
			assert.Empty(t, record.Title)
			assert.Empty(t, record.Text)
			assert.Empty(t, record.URL)
			require.NotNil(t, record.Metadata)
			assert.Empty(t, record.Metadata)
		})
	}
}

func TestRetrievalService_Fetch_CancelledContext(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Fetch(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

// --- Idempotence and concurrency ---

func TestRetrievalService_Idempotent(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))
	ctx := context.Background()

	first, err := service.Search(ctx, "mcp")
	require.NoError(t, err)
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	fetched, err := service.Fetch(ctx, "2")
	require.NoError(t, err)
	fetchedJSON, err := json.Marshal(fetched)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := service.Search(ctx, "mcp")
		require.NoError(t, err)
		againJSON, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, againJSON)

		refetched, err := service.Fetch(ctx, "2")
		require.NoError(t, err)
		refetchedJSON, err := json.Marshal(refetched)
		require.NoError(t, err)
		assert.Equal(t, fetchedJSON, refetchedJSON)
	}
}

func TestRetrievalService_ResultsDoNotAliasCorpus(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))
	ctx := context.Background()

	record, err := service.Fetch(ctx, "1")
	require.NoError(t, err)
	record.Metadata["enriched"] = true
	record.Title = "changed"

	again, err := service.Fetch(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "FastMCP Introduction", again.Title)
	assert.Empty(t, again.Metadata)
}

func TestRetrievalService_ConcurrentCalls(t *testing.T) {
	service := NewRetrievalService(numberedCorpus(t, 50))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results, err := service.Search(ctx, "even")
			assert.NoError(t, err)
			assert.Len(t, results, domain.MaxSearchResults)

			record, err := service.Fetch(ctx, fmt.Sprintf("doc-%d", n))
			assert.NoError(t, err)
			assert.NotEmpty(t, record.Title)
		}(i)
	}
	wg.Wait()
}

// --- Catalog ---

func TestRetrievalService_List(t *testing.T) {
	corpus := exampleCorpus(t)
	service := NewRetrievalService(corpus)

	docs, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, corpus.All(), docs)
}

func TestRetrievalService_Get(t *testing.T) {
	service := NewRetrievalService(exampleCorpus(t))

	doc, err := service.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Model Context Protocol", doc.Title)

	_, err = service.Get(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
