package lexers

import (
	"glint/internal/token"
	"glint/internal/tokenizer"
)

// CStyleState is the line-boundary state of the C-family tokenizer. Only two
// constructs span lines here: block comments and raw (backtick) strings.
type CStyleState struct {
	InBlockComment bool
	InRawString    bool
}

// Clone implements tokenizer.State.
func (s *CStyleState) Clone() tokenizer.State {
	c := *s
	return &c
}

// Equals implements tokenizer.State with structural comparison.
func (s *CStyleState) Equals(other tokenizer.State) bool {
	o, ok := other.(*CStyleState)
	return ok && *s == *o
}

// CStyle tokenizes C-family languages line by line: // and /* */ comments,
// quoted strings, backtick raw strings (Go), numbers, keyword-aware
// identifiers, operators, and punctuation.
type CStyle struct {
	lang       token.LanguageID
	keywords   map[string]struct{}
	rawStrings bool // backtick strings that may span lines
}

// NewCStyle builds a tokenizer tagging tokens with lang and classifying
// identifiers against keywords.
func NewCStyle(lang token.LanguageID, keywords map[string]struct{}, rawStrings bool) *CStyle {
	return &CStyle{lang: lang, keywords: keywords, rawStrings: rawStrings}
}

// InitialState implements tokenizer.Support.
func (t *CStyle) InitialState() tokenizer.State { return &CStyleState{} }

// Tokenize implements tokenizer.Support.
func (t *CStyle) Tokenize(line string, hasEOL bool, state tokenizer.State) tokenizer.Result {
	st, ok := state.(*CStyleState)
	if !ok || st == nil {
		st = &CStyleState{}
	}

	var spans []token.Span
	emit := func(start int, kind token.StandardKind, color token.Color) {
		spans = append(spans, token.Span{
			Offset: uint32(start),
			Style:  token.MakeStyle(t.lang, kind, color),
		})
	}

	i := 0
	for i < len(line) {
		start := i
		switch {
		case st.InBlockComment:
			if end := indexFrom(line, i, "*/"); end >= 0 {
				i = end + 2
				st.InBlockComment = false
			} else {
				i = len(line)
			}
			emit(start, token.KindComment, token.ColorComment)

		case st.InRawString:
			if end := indexByteFrom(line, i, '`'); end >= 0 {
				i = end + 1
				st.InRawString = false
			} else {
				i = len(line)
			}
			emit(start, token.KindString, token.ColorString)

		case line[i] == ' ' || line[i] == '\t':
			for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
				i++
			}
			emit(start, token.KindOther, token.ColorNone)

		case hasPrefixAt(line, i, "//"):
			i = len(line)
			emit(start, token.KindComment, token.ColorComment)

		case hasPrefixAt(line, i, "/*"):
			if end := indexFrom(line, i+2, "*/"); end >= 0 {
				i = end + 2
			} else {
				i = len(line)
				st.InBlockComment = true
			}
			emit(start, token.KindComment, token.ColorComment)

		case line[i] == '"' || line[i] == '\'':
			i = scanQuoted(line, i)
			emit(start, token.KindString, token.ColorString)

		case t.rawStrings && line[i] == '`':
			if end := indexByteFrom(line, i+1, '`'); end >= 0 {
				i = end + 1
			} else {
				i = len(line)
				st.InRawString = true
			}
			emit(start, token.KindString, token.ColorString)

		case isDec(line[i]) || (line[i] == '.' && i+1 < len(line) && isDec(line[i+1])):
			i = scanNumber(line, i)
			emit(start, token.KindOther, token.ColorNumber)

		case isIdentStart(line[i]):
			for i < len(line) && isIdentContinue(line[i]) {
				i++
			}
			if _, kw := t.keywords[line[start:i]]; kw {
				emit(start, token.KindOther, token.ColorKeyword)
			} else {
				emit(start, token.KindOther, token.ColorIdent)
			}

		case isOperator(line[i]):
			for i < len(line) && isOperator(line[i]) {
				i++
			}
			emit(start, token.KindOther, token.ColorOperator)

		default:
			i++
			emit(start, token.KindOther, token.ColorPunct)
		}
	}

	return tokenizer.Result{Spans: spans, EndState: st}
}

// scanQuoted consumes a single- or double-quoted literal starting at i,
// honoring backslash escapes. Unterminated literals end at the line break:
// these strings do not span lines.
func scanQuoted(line string, i int) int {
	quote := line[i]
	i++
	for i < len(line) {
		switch line[i] {
		case '\\':
			i += 2
		case quote:
			return i + 1
		default:
			i++
		}
	}
	return len(line)
}

func scanNumber(line string, i int) int {
	// Hex, octal, binary prefixes.
	if line[i] == '0' && i+1 < len(line) && (line[i+1] == 'x' || line[i+1] == 'X' || line[i+1] == 'b' || line[i+1] == 'B' || line[i+1] == 'o' || line[i+1] == 'O') {
		i += 2
		for i < len(line) && (isHex(line[i]) || line[i] == '_') {
			i++
		}
		return i
	}
	for i < len(line) && (isDec(line[i]) || line[i] == '.' || line[i] == '_' ||
		line[i] == 'e' || line[i] == 'E' ||
		((line[i] == '+' || line[i] == '-') && (line[i-1] == 'e' || line[i-1] == 'E'))) {
		i++
	}
	return i
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}

func indexFrom(s string, i int, sub string) int {
	for ; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func indexByteFrom(s string, i int, b byte) int {
	for ; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x80
}

func isIdentContinue(b byte) bool { return isIdentStart(b) || isDec(b) }

func isOperator(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~', '?', ':':
		return true
	}
	return false
}
