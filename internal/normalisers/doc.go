// Package normalisers turns raw corpus files into plain text documents.
// Each subpackage handles one file format; Registry dispatches by extension.
//
// Normalisers are registered with the Registry at startup.
package normalisers
