package tokenizer

import "glint/internal/token"

// Result is the raw outcome of tokenizing one line: start-offset spans plus
// the state at the start of the following line.
type Result struct {
	Spans    []token.Span
	EndState State
}

// Support is the capability a language registers: tokenize one line given the
// state at its start. hasEOL tells the tokenizer whether a line break follows
// the text (the final line of a document has none), which matters for
// constructs that are terminated by end of line.
//
// Implementations may panic and may return malformed span offsets; callers
// must go through SafeTokenize, never call Tokenize directly.
type Support interface {
	// InitialState returns the state for the start of line 1.
	InitialState() State
	// Tokenize produces tokens for a single line.
	Tokenize(line string, hasEOL bool, state State) Result
}
