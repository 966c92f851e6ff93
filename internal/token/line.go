package token

import "sort"

// Span is a token as tokenizers produce it: a start offset and a style.
// The token runs from Offset to the start of the next span on the line
// (or to the end of the line for the last span).
type Span struct {
	Offset uint32
	Style  Style
}

// LineTokens is the canonical per-line token array: parallel slices of end
// offsets and styles, suitable for binary search by offset. The zero value is
// a line with no tokens; use NewLineTokens to build one from spans.
type LineTokens struct {
	ends   []uint32
	styles []Style
}

// NewLineTokens converts start-offset spans into the end-offset form. Spans
// must already be normalized (first at offset 0, offsets non-decreasing);
// the tokenizer adapter guarantees this before calling.
func NewLineTokens(spans []Span, textLen uint32) LineTokens {
	if len(spans) == 0 {
		return LineTokens{}
	}
	ends := make([]uint32, len(spans))
	styles := make([]Style, len(spans))
	for i := range spans {
		if i+1 < len(spans) {
			ends[i] = spans[i+1].Offset
		} else {
			ends[i] = textLen
		}
		styles[i] = spans[i].Style
	}
	return LineTokens{ends: ends, styles: styles}
}

// Count returns the number of tokens on the line.
func (lt LineTokens) Count() int { return len(lt.ends) }

// EndOffset returns the exclusive end of token i.
func (lt LineTokens) EndOffset(i int) uint32 { return lt.ends[i] }

// StartOffset returns the inclusive start of token i.
func (lt LineTokens) StartOffset(i int) uint32 {
	if i == 0 {
		return 0
	}
	return lt.ends[i-1]
}

// Style returns the style of token i.
func (lt LineTokens) Style(i int) Style { return lt.styles[i] }

// IndexAt returns the index of the token covering byte offset off, or -1 for
// a line with no tokens. Offsets at or past the line end map to the last
// token, matching how a caret at end-of-line belongs to the final span.
func (lt LineTokens) IndexAt(off uint32) int {
	n := len(lt.ends)
	if n == 0 {
		return -1
	}
	i := sort.Search(n, func(i int) bool { return lt.ends[i] > off })
	if i == n {
		i = n - 1
	}
	return i
}

// StyleAt returns the style covering byte offset off, or the zero Style for
// an empty line.
func (lt LineTokens) StyleAt(off uint32) Style {
	i := lt.IndexAt(off)
	if i < 0 {
		return 0
	}
	return lt.styles[i]
}

// Equal reports whether two token arrays are identical.
func (lt LineTokens) Equal(other LineTokens) bool {
	if len(lt.ends) != len(other.ends) {
		return false
	}
	for i := range lt.ends {
		if lt.ends[i] != other.ends[i] || lt.styles[i] != other.styles[i] {
			return false
		}
	}
	return true
}
