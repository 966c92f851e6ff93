package textmodel

import "glint/internal/token"

// Position is a 1-based line/column pair; columns count bytes.
type Position struct {
	Line   int
	Column int
}

// Range is a replaced span of text, inclusive start, exclusive end, both
// 1-based. An empty range (start == end) is an insertion point.
type Range struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Edit describes one applied document edit the way the engine needs it: the
// replaced range and how many line breaks the inserted text contained. Edits
// are delivered in document order, each reflecting the document state
// immediately after that edit.
type Edit struct {
	Range              Range
	InsertedLineBreaks int
}

// LineUpdate carries the freshly computed tokens for one line.
type LineUpdate struct {
	Line   int
	Tokens token.LineTokens
}

// Model is everything the tokenization engine requires from its host
// document. SetTokens must tolerate repeated and overlapping batches: later
// updates for a line supersede earlier ones.
type Model interface {
	LineCount() int
	LineContent(lineNumber int) string
	// FirstNonWhitespaceColumn returns the 1-based column of the first
	// non-whitespace byte, or 0 if the line is blank.
	FirstNonWhitespaceColumn(lineNumber int) int

	SetTokens(batch []LineUpdate, fullyTokenized bool)
	ClearTokens()

	AttachedToEditor() bool
	TooLargeForTokenization() bool
}
