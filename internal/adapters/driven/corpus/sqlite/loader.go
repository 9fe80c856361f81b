// Package sqlite loads a corpus from a table in a SQLite database.
//
// The table must have text columns id, title, text and url. Rows are
// served in rowid order. The database is opened read-only and closed as
// soon as the rows are read.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// DefaultTable is used when no table is configured.
const DefaultTable = "documents"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Loader reads documents from one table.
type Loader struct {
	path  string
	table string
}

// New creates a loader for settings.Path and settings.Table.
func New(settings domain.CorpusSettings) (*Loader, error) {
	if settings.Path == "" {
		return nil, fmt.Errorf("sqlite corpus requires a path: %w", domain.ErrInvalidInput)
	}

	table := settings.Table
	if table == "" {
		table = DefaultTable
	}
	if !identifier.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q: %w", table, domain.ErrInvalidInput)
	}

	return &Loader{path: settings.Path, table: table}, nil
}

// Name identifies the loader.
func (l *Loader) Name() string {
	return "sqlite:" + l.path + "#" + l.table
}

// Load reads every row of the table.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	// Opening a missing file read-only gives an opaque driver error.
	if _, err := os.Stat(l.path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", "file:"+l.path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	query := fmt.Sprintf(`SELECT id, title, text, url FROM "%s" ORDER BY rowid`, l.table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", l.table, err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		var id, title, text, url sql.NullString
		if err := rows.Scan(&id, &title, &text, &url); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", l.table, err)
		}
		docs = append(docs, domain.Document{
			ID:    id.String,
			Title: title.String,
			Text:  text.String,
			URL:   url.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.table, err)
	}

	return docs, nil
}
