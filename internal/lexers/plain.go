package lexers

import (
	"glint/internal/token"
	"glint/internal/tokenizer"
)

// PlainState is the stateless state of the plain tokenizer: every line starts
// in the same context.
type PlainState struct{}

// Clone implements tokenizer.State.
func (s *PlainState) Clone() tokenizer.State { return &PlainState{} }

// Equals implements tokenizer.State.
func (s *PlainState) Equals(other tokenizer.State) bool {
	_, ok := other.(*PlainState)
	return ok
}

// Plain covers every line with a single unclassified token. It is the
// explicit tokenizer for languages we have no grammar for, as opposed to the
// adapter's fallback for tokenizers that failed.
type Plain struct {
	lang token.LanguageID
}

// NewPlain builds a plain tokenizer tagging tokens with lang.
func NewPlain(lang token.LanguageID) *Plain { return &Plain{lang: lang} }

// InitialState implements tokenizer.Support.
func (t *Plain) InitialState() tokenizer.State { return &PlainState{} }

// Tokenize implements tokenizer.Support.
func (t *Plain) Tokenize(line string, hasEOL bool, state tokenizer.State) tokenizer.Result {
	return tokenizer.Result{
		Spans:    []token.Span{{Offset: 0, Style: token.MakeStyle(t.lang, token.KindOther, token.ColorNone)}},
		EndState: &PlainState{},
	}
}
