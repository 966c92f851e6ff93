// Package tokenizer defines the pluggable tokenization contract and the safe
// adapter the engine calls through.
//
// A tokenizer is a per-line function: given a line of text and the opaque
// state at the start of that line, it produces token spans and the state at
// the start of the next line. Implementations live elsewhere (see
// internal/lexers); this package only fixes the contract and makes calls
// through it failure-safe.
package tokenizer
