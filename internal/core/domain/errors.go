package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown corpus source or file format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Corpus Errors.

	// ErrInvalidDocument indicates a corpus entry is malformed (e.g. empty id).
	ErrInvalidDocument = errors.New("invalid document")

	// ErrDuplicateID indicates two corpus entries share an id.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrCorpusUnavailable indicates the corpus could not be loaded.
	// The server must not start without a corpus.
	ErrCorpusUnavailable = errors.New("corpus unavailable")
)
