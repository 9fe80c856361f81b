package domain

// FetchRecord is the full projection of a document returned by fetch.
// Every field is always present; a miss yields empty values rather than
// absent fields.
type FetchRecord struct {
	ID       string         `json:"id" jsonschema:"document identifier; echoes the requested id on a miss"`
	Title    string         `json:"title" jsonschema:"document title, empty when not found"`
	Text     string         `json:"text" jsonschema:"full document text, empty when not found"`
	URL      string         `json:"url" jsonschema:"canonical document URL, empty when not found"`
	Metadata map[string]any `json:"metadata" jsonschema:"additional document metadata, empty by default"`
}

// NewFetchRecord projects a document into a fetch record.
func NewFetchRecord(doc Document) FetchRecord {
	return FetchRecord{
		ID:       doc.ID,
		Title:    doc.Title,
		Text:     doc.Text,
		URL:      doc.URL,
		Metadata: map[string]any{},
	}
}

// MissRecord returns the record for an id that is not in the corpus.
// The requested id is echoed back so callers can correlate the miss.
func MissRecord(id string) FetchRecord {
	return FetchRecord{
		ID:       id,
		Metadata: map[string]any{},
	}
}
