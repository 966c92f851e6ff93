package engine

import (
	"glint/internal/textmodel"
	"glint/internal/token"
	"glint/internal/tokenizer"
)

// TokenTypeAtInsertion answers "what kind of token would ch land in if typed
// at pos" without mutating any state. Used by typing features (auto-closing
// pairs and friends) that behave differently inside strings or comments.
func (e *Engine) TokenTypeAtInsertion(pos textmodel.Position, ch rune) token.StandardKind {
	if e.disposed || e.store == nil {
		return token.KindOther
	}
	line, col := e.clampPosition(pos)
	e.ForceTokenize(line)

	text := e.model.LineContent(line)
	synth := text[:col-1] + string(ch) + text[col-1:]
	r := e.tokenizeSynthetic(line, synth)
	return r.Tokens.StyleAt(uint32(col - 1)).Kind()
}

// TokenizeLineWithEdit tokenizes pos's line as if replacedLength bytes at pos
// were replaced by newText, and returns the resulting token array. The result
// is a preview: nothing is persisted. ok is false while the engine is
// inactive.
func (e *Engine) TokenizeLineWithEdit(pos textmodel.Position, replacedLength int, newText string) (tokens token.LineTokens, ok bool) {
	if e.disposed || e.store == nil {
		return token.LineTokens{}, false
	}
	line, col := e.clampPosition(pos)
	e.ForceTokenize(line)

	text := e.model.LineContent(line)
	end := col - 1 + replacedLength
	if end > len(text) {
		end = len(text)
	}
	synth := text[:col-1] + newText + text[end:]
	r := e.tokenizeSynthetic(line, synth)
	return r.Tokens, true
}

// tokenizeSynthetic tokenizes replacement text for a line using the line's
// real begin state.
func (e *Engine) tokenizeSynthetic(line int, text string) tokenizer.SafeResult {
	begin := e.resolveBeginState(line - 1)
	return tokenizer.SafeTokenize(e.language, e.encoded, e.support, text, line < e.model.LineCount(), begin, e.opts.Reporter, line)
}

func (e *Engine) clampPosition(pos textmodel.Position) (line, col int) {
	line = pos.Line
	if line < 1 {
		line = 1
	}
	if n := e.model.LineCount(); line > n {
		line = n
	}
	col = pos.Column
	if col < 1 {
		col = 1
	}
	if max := len(e.model.LineContent(line)) + 1; col > max {
		col = max
	}
	return line, col
}
