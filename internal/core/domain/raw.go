package domain

import (
	"path"
	"strings"
)

// RawFile is the unprocessed content of one corpus file before normalisation.
type RawFile struct {
	// Path is the slash-separated path relative to the corpus root.
	Path string

	// Content is the raw bytes.
	Content []byte
}

// Ext returns the lower-cased extension of the file, including the dot.
func (f RawFile) Ext() string {
	return strings.ToLower(path.Ext(f.Path))
}

// BaseTitle derives a readable title from the file name:
// the extension is dropped and dashes and underscores become spaces.
func (f RawFile) BaseTitle() string {
	name := path.Base(f.Path)
	name = strings.TrimSuffix(name, path.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}
