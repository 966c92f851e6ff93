// Package textstore tracks per-line tokenizer state for one document.
//
// The store is a cache, not ground truth: every operation is defensive about
// out-of-range indices and a wrong entry is corrected by the next
// tokenization pass instead of being treated as an error. FirstInvalidLine is
// the single source of truth for how much of the document is tokenized.
package textstore
