// Package diag collects non-fatal diagnostics produced while tokenizing.
//
// Tokenizer failures never propagate as errors: the adapter substitutes a
// degraded result and reports what happened here instead. Reporter is the
// minimal contract the engine and adapter depend on; Bag is the standard
// collector behind it. A nil Reporter is always legal and means "discard".
package diag
