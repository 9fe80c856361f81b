// Package directory loads a corpus from the files under a directory tree.
//
// Each file matching the glob pattern becomes one document. The id is the
// slash-separated path relative to the root, the title and text come from
// the normaliser registered for the file's extension.
package directory

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
	"github.com/jackisacoolryan/test-mcp/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// DefaultPattern matches markdown and text files at any depth.
const DefaultPattern = "**/*.{md,markdown,txt}"

// Loader walks a directory and normalises every matching file.
type Loader struct {
	root       string
	pattern    string
	baseURL    string
	normaliser driven.NormaliserRegistry
}

// New creates a directory loader.
// An empty pattern defaults to DefaultPattern.
func New(settings domain.CorpusSettings, normaliser driven.NormaliserRegistry) (*Loader, error) {
	if settings.Path == "" {
		return nil, fmt.Errorf("directory corpus requires a path: %w", domain.ErrInvalidInput)
	}
	if normaliser == nil {
		return nil, fmt.Errorf("directory corpus requires a normaliser: %w", domain.ErrInvalidInput)
	}

	pattern := settings.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, domain.ErrInvalidInput)
	}

	return &Loader{
		root:       settings.Path,
		pattern:    pattern,
		baseURL:    settings.BaseURL,
		normaliser: normaliser,
	}, nil
}

// Name identifies the loader.
func (l *Loader) Name() string {
	return "directory:" + l.root
}

// Load reads every matching file, ordered by relative path.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	root, err := filepath.Abs(l.root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory: %w", root, domain.ErrInvalidInput)
	}

	paths, err := l.match(ctx, root)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(paths))
	for _, rel := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}

		result, err := l.normaliser.Normalise(ctx, &domain.RawFile{Path: rel, Content: content})
		if err != nil {
			return nil, fmt.Errorf("normalise %s: %w", rel, err)
		}

		docs = append(docs, domain.Document{
			ID:    rel,
			Title: result.Title,
			Text:  result.Text,
			URL:   l.documentURL(root, rel),
		})
	}

	logger.Debug("directory: %d of the files under %s match %q", len(docs), root, l.pattern)
	return docs, nil
}

// match returns the slash-separated relative paths of matching regular files, sorted.
func (l *Loader) match(ctx context.Context, root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		matched, err := doublestar.Match(l.pattern, rel)
		if err != nil {
			return err
		}
		if matched {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// documentURL joins rel onto the base URL, or builds a file:// URL.
func (l *Loader) documentURL(root, rel string) string {
	if l.baseURL != "" {
		return strings.TrimRight(l.baseURL, "/") + "/" + rel
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(root, filepath.FromSlash(rel)))}
	return u.String()
}
