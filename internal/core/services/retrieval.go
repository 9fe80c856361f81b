package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driving"
	"github.com/jackisacoolryan/test-mcp/internal/logger"
)

// Ensure RetrievalService implements the interfaces.
var (
	_ driving.RetrievalService = (*RetrievalService)(nil)
	_ driving.CatalogService   = (*RetrievalService)(nil)
)

// foldedDocument caches the lower-cased fields used for matching.
type foldedDocument struct {
	doc   domain.Document
	title string
	text  string
}

// RetrievalService answers search and fetch over an immutable corpus.
// It holds no mutable state and is safe for concurrent use.
type RetrievalService struct {
	corpus *domain.Corpus
	folded []foldedDocument
}

// NewRetrievalService creates a retrieval service over corpus.
func NewRetrievalService(corpus *domain.Corpus) *RetrievalService {
	docs := corpus.All()
	folded := make([]foldedDocument, len(docs))
	for i, doc := range docs {
		folded[i] = foldedDocument{
			doc:   doc,
			title: strings.ToLower(doc.Title),
			text:  strings.ToLower(doc.Text),
		}
	}

	return &RetrievalService{
		corpus: corpus,
		folded: folded,
	}
}

// Search returns the first domain.MaxSearchResults documents, in corpus
// order, whose text or title contains query case-insensitively.
// An empty query matches every document.
func (s *RetrievalService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("Search: query=%q, corpus=%d documents", query, len(s.folded))

	needle := strings.ToLower(query)
	results := make([]domain.SearchResult, 0, domain.MaxSearchResults)
	for i := range s.folded {
		entry := &s.folded[i]
		if !strings.Contains(entry.text, needle) && !strings.Contains(entry.title, needle) {
			continue
		}
		results = append(results, domain.NewSearchResult(entry.doc))
		if len(results) >= domain.MaxSearchResults {
			logger.Debug("Search: result cap reached at position %d", i)
			break
		}
	}

	logger.Debug("Search: %d results", len(results))
	return results, nil
}

// Fetch returns the full record for id.
// A miss echoes id with every other field empty.
func (s *RetrievalService) Fetch(ctx context.Context, id string) (domain.FetchRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.FetchRecord{}, err
	}

	doc, ok := s.corpus.ByID(id)
	if !ok {
		logger.Debug("Fetch: id=%q not found", id)
		return domain.MissRecord(id), nil
	}

	logger.Debug("Fetch: id=%q found", id)
	return domain.NewFetchRecord(doc), nil
}

// List returns every document in corpus order.
func (s *RetrievalService) List(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.corpus.All(), nil
}

// Get returns the document with the given id.
func (s *RetrievalService) Get(ctx context.Context, id string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}
	doc, ok := s.corpus.ByID(id)
	if !ok {
		return domain.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	return doc, nil
}
