// Package bolt loads a corpus from a bucket in a bbolt database.
//
// Each key is a document id and each value is a JSON object with title,
// text and url. Documents are served in key order. The database is opened
// read-only so a running writer only delays startup up to OpenTimeout.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.etcd.io/bbolt"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// DefaultBucket is used when no bucket is configured.
const DefaultBucket = "documents"

// OpenTimeout bounds the wait for the database file lock.
const OpenTimeout = 5 * time.Second

// value is the JSON stored under each key.
type value struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Loader reads documents from one bucket.
type Loader struct {
	path    string
	bucket  string
	timeout time.Duration
}

// New creates a loader for settings.Path and settings.Bucket.
func New(settings domain.CorpusSettings) (*Loader, error) {
	if settings.Path == "" {
		return nil, fmt.Errorf("bolt corpus requires a path: %w", domain.ErrInvalidInput)
	}

	bucket := settings.Bucket
	if bucket == "" {
		bucket = DefaultBucket
	}

	return &Loader{path: settings.Path, bucket: bucket, timeout: OpenTimeout}, nil
}

// Name identifies the loader.
func (l *Loader) Name() string {
	return "bolt:" + l.path + "#" + l.bucket
}

// Load reads every key of the bucket. Nested buckets are skipped.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// bbolt would create a missing file even in read-only mode.
	if _, err := os.Stat(l.path); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(l.path, 0600, &bbolt.Options{ReadOnly: true, Timeout: l.timeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	var docs []domain.Document
	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(l.bucket))
		if b == nil {
			return fmt.Errorf("bucket %q not found: %w", l.bucket, domain.ErrNotFound)
		}

		return b.ForEach(func(k, v []byte) error {
			if v == nil {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			var val value
			if err := json.Unmarshal(v, &val); err != nil {
				return fmt.Errorf("document %q: %w", k, err)
			}
			docs = append(docs, domain.Document{
				ID:    string(k),
				Title: val.Title,
				Text:  val.Text,
				URL:   val.URL,
			})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}
