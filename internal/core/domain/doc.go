// Package domain defines the core entities of the document retrieval server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A corpus entry with id, title, text and url
//   - Corpus: The immutable, ordered set of documents served by the process
//   - SearchResult: The snippet projection returned by search
//   - FetchRecord: The full projection returned by fetch
//   - AppSettings: Server, corpus and logging configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
