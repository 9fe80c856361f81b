package mcp

import (
	"context"
	"fmt"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
)

// mockRetrievalService is a mock implementation of driving.RetrievalService.
type mockRetrievalService struct {
	results []domain.SearchResult
	record  domain.FetchRecord
	err     error

	lastQuery string
	lastID    string
}

func (m *mockRetrievalService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	m.lastQuery = query
	return m.results, m.err
}

func (m *mockRetrievalService) Fetch(_ context.Context, id string) (domain.FetchRecord, error) {
	m.lastID = id
	return m.record, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	documents []domain.Document
	err       error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCatalogService) Get(_ context.Context, id string) (domain.Document, error) {
	if m.err != nil {
		return domain.Document{}, m.err
	}
	for _, doc := range m.documents {
		if doc.ID == id {
			return doc, nil
		}
	}
	return domain.Document{}, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
}
