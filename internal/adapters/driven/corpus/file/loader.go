// Package file loads a corpus from a single JSON, YAML or TOML document file.
//
// The file is either a bare list of documents or a table with a "documents"
// list. TOML only supports the latter:
//
//	[[documents]]
//	id = "1"
//	title = "FastMCP Introduction"
//	text = "..."
//	url = "https://example.com/fastmcp-intro"
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jackisacoolryan/test-mcp/internal/core/domain"
	"github.com/jackisacoolryan/test-mcp/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.CorpusLoader = (*Loader)(nil)

// Format is a document file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("corpus file %q: extension must be .json, .yaml, .yml or .toml: %w",
			path, domain.ErrUnsupportedType)
	}
}

// record is the on-disk shape of one document.
type record struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Title string `json:"title" yaml:"title" toml:"title"`
	Text  string `json:"text" yaml:"text" toml:"text"`
	URL   string `json:"url" yaml:"url" toml:"url"`
}

// envelope is the table form: {"documents": [...]}.
type envelope struct {
	Documents []record `json:"documents" yaml:"documents" toml:"documents"`
}

// Decode parses data in the given format, preserving document order.
func Decode(format Format, data []byte) ([]domain.Document, error) {
	var (
		records []record
		err     error
	)

	switch format {
	case FormatJSON:
		records, err = decodeJSON(data)
	case FormatYAML:
		records, err = decodeYAML(data)
	case FormatTOML:
		var env envelope
		err = toml.Unmarshal(data, &env)
		records = env.Documents
	default:
		return nil, fmt.Errorf("format %q: %w", format, domain.ErrUnsupportedType)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	docs := make([]domain.Document, len(records))
	for i, r := range records {
		docs[i] = domain.Document{ID: r.ID, Title: r.Title, Text: r.Text, URL: r.URL}
	}
	return docs, nil
}

func decodeJSON(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var records []record
		err := json.Unmarshal(trimmed, &records)
		return records, err
	}

	var env envelope
	err := json.Unmarshal(trimmed, &env)
	return env.Documents, err
}

func decodeYAML(data []byte) ([]record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	// Empty document.
	if len(root.Content) == 0 {
		return nil, nil
	}

	node := root.Content[0]
	if node.Kind == yaml.SequenceNode {
		var records []record
		err := node.Decode(&records)
		return records, err
	}

	var env envelope
	err := node.Decode(&env)
	return env.Documents, err
}

// Loader reads one document file.
type Loader struct {
	path   string
	format Format
}

// New creates a loader for settings.Path.
func New(settings domain.CorpusSettings) (*Loader, error) {
	if settings.Path == "" {
		return nil, fmt.Errorf("file corpus requires a path: %w", domain.ErrInvalidInput)
	}

	format, err := FormatFromPath(settings.Path)
	if err != nil {
		return nil, err
	}

	return &Loader{path: settings.Path, format: format}, nil
}

// Name identifies the loader.
func (l *Loader) Name() string {
	return "file:" + l.path
}

// Load reads and decodes the file.
func (l *Loader) Load(ctx context.Context) ([]domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	return Decode(l.format, data)
}
