// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CorpusLoader: Reads the documents served by the process, once, at startup
//   - CorpusLoaderFactory: Selects a CorpusLoader from corpus settings
//   - ConfigStore: Application configuration
//   - Normaliser: Turns a raw corpus file into a title and plain text
//   - NormaliserRegistry: Picks the normaliser for a file extension
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
