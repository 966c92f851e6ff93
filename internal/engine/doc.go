// Package engine drives incremental tokenization for one document.
//
// The engine decides what to tokenize and when: a cooperative background pass
// chews through invalid lines in small time-bounded batches, while foreground
// entry points (ForceTokenize, TokenizeViewport, the synthetic-line queries)
// run synchronously when a caller needs a correct answer immediately. Both
// paths go through the same line-by-line primitive, so results never depend
// on which trigger produced them.
//
// Nothing in this package returns an error: tokenization is best-effort
// highlighting, and every failure mode degrades to less accurate tokens
// rather than blocking the document.
package engine
