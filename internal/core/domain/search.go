package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxSearchResults caps the number of results returned by search.
	MaxSearchResults = 5

	// SnippetLength is the maximum number of characters kept from a
	// document's text in a search result.
	SnippetLength = 200

	// TruncationMarker is appended to every snippet that was clipped.
	TruncationMarker = "..."
)

// SearchResult is a single search hit.
// Text holds a snippet, not the full body.
type SearchResult struct {
	ID    string `json:"id" jsonschema:"document identifier, pass to fetch for the full text"`
	Title string `json:"title" jsonschema:"document title"`
	Text  string `json:"text" jsonschema:"snippet of at most 200 characters, followed by ... when clipped"`
	URL   string `json:"url" jsonschema:"canonical document URL"`
}

// NewSearchResult projects a document into a search result.
func NewSearchResult(doc Document) SearchResult {
	return SearchResult{
		ID:    doc.ID,
		Title: doc.Title,
		Text:  Snippet(doc.Text),
		URL:   doc.URL,
	}
}

// Snippet clips text to SnippetLength characters.
// Text longer than the bound is cut at a character boundary and always
// carries TruncationMarker; shorter text is returned unchanged.
func Snippet(text string) string {
	if utf8.RuneCountInString(text) <= SnippetLength {
		return text
	}

	n := 0
	for i := range text {
		if n == SnippetLength {
			return text[:i] + TruncationMarker
		}
		n++
	}
	return text
}

// IsTruncated reports whether a snippet was clipped by Snippet.
func IsTruncated(snippet string) bool {
	return strings.HasSuffix(snippet, TruncationMarker) &&
		utf8.RuneCountInString(snippet) == SnippetLength+utf8.RuneCountInString(TruncationMarker)
}
