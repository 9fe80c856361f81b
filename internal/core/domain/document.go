package domain

import "fmt"

// Document is a single corpus entry.
type Document struct {
	// ID is the unique identifier, stable for the process lifetime.
	ID string

	// Title is the human-readable title.
	Title string

	// Text is the full document body.
	Text string

	// URL is the canonical location of the document.
	URL string
}

// Corpus is the fixed, ordered collection of documents served by the process.
// It is built once with NewCorpus and never mutated afterwards, so it can be
// shared between goroutines without locking.
type Corpus struct {
	docs  []Document
	index map[string]int
}

// NewCorpus validates docs and returns an immutable corpus.
// The input slice is copied; later changes to it are not observed.
func NewCorpus(docs []Document) (*Corpus, error) {
	c := &Corpus{
		docs:  make([]Document, len(docs)),
		index: make(map[string]int, len(docs)),
	}

	for i, doc := range docs {
		if doc.ID == "" {
			return nil, fmt.Errorf("document at position %d: %w", i, ErrInvalidDocument)
		}
		if prev, ok := c.index[doc.ID]; ok {
			return nil, fmt.Errorf("document %q at positions %d and %d: %w", doc.ID, prev, i, ErrDuplicateID)
		}
		c.index[doc.ID] = i
		c.docs[i] = doc
	}

	return c, nil
}

// All returns the documents in insertion order.
func (c *Corpus) All() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// ByID returns the document with the given id.
// The match is exact and case-sensitive.
func (c *Corpus) ByID(id string) (Document, bool) {
	i, ok := c.index[id]
	if !ok {
		return Document{}, false
	}
	return c.docs[i], true
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.docs)
}

// Each calls fn for every document in insertion order until fn returns false.
func (c *Corpus) Each(fn func(doc Document) bool) {
	for _, doc := range c.docs {
		if !fn(doc) {
			return
		}
	}
}
