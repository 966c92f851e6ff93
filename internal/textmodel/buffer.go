package textmodel

import (
	"strings"

	"glint/internal/token"
)

// DefaultTokenizationSizeLimit is the buffer size in bytes above which
// tokenization is declined entirely. Large enough for any hand-written file;
// generated monsters get plain text instead of a frozen editor.
const DefaultTokenizationSizeLimit = 50 * 1024 * 1024

// Buffer is a line-oriented mutable document implementing Model. It stores
// per-line tokens pushed by the engine and notifies subscribers about edits
// in the order they are applied.
type Buffer struct {
	lines     []string
	tokens    []token.LineTokens
	size      int
	attached  bool
	sizeLimit int
	fullyTok  bool
	listeners []func(Edit)
}

// NewBuffer builds a buffer from content. CRLF line endings are normalized to
// LF; a trailing newline yields a final empty line, the same way editors
// model it. Empty content is a single empty line.
func NewBuffer(content string) *Buffer {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	b := &Buffer{
		lines:     lines,
		tokens:    make([]token.LineTokens, len(lines)),
		size:      len(content),
		sizeLimit: DefaultTokenizationSizeLimit,
	}
	return b
}

// LineCount returns the number of lines, always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineContent returns the text of lineNumber without its line break, or ""
// when out of range.
func (b *Buffer) LineContent(lineNumber int) string {
	if lineNumber < 1 || lineNumber > len(b.lines) {
		return ""
	}
	return b.lines[lineNumber-1]
}

// FirstNonWhitespaceColumn implements Model.
func (b *Buffer) FirstNonWhitespaceColumn(lineNumber int) int {
	text := b.LineContent(lineNumber)
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' && text[i] != '\t' {
			return i + 1
		}
	}
	return 0
}

// Text reassembles the whole document.
func (b *Buffer) Text() string { return strings.Join(b.lines, "\n") }

// SetAttached marks whether an editor currently displays this buffer.
func (b *Buffer) SetAttached(attached bool) { b.attached = attached }

// AttachedToEditor implements Model.
func (b *Buffer) AttachedToEditor() bool { return b.attached }

// SetTokenizationSizeLimit overrides the too-large cutoff; v <= 0 restores
// the default.
func (b *Buffer) SetTokenizationSizeLimit(v int) {
	if v <= 0 {
		v = DefaultTokenizationSizeLimit
	}
	b.sizeLimit = v
}

// TooLargeForTokenization implements Model.
func (b *Buffer) TooLargeForTokenization() bool { return b.size > b.sizeLimit }

// SetTokens implements Model: merge a batch of line updates; later updates
// for the same line supersede earlier ones.
func (b *Buffer) SetTokens(batch []LineUpdate, fullyTokenized bool) {
	for _, up := range batch {
		if up.Line < 1 || up.Line > len(b.tokens) {
			continue
		}
		b.tokens[up.Line-1] = up.Tokens
	}
	b.fullyTok = fullyTokenized
}

// ClearTokens implements Model.
func (b *Buffer) ClearTokens() {
	b.tokens = make([]token.LineTokens, len(b.lines))
	b.fullyTok = false
}

// LineTokens returns the stored tokens for lineNumber; the zero value when
// none were pushed yet or the line is out of range.
func (b *Buffer) LineTokens(lineNumber int) token.LineTokens {
	if lineNumber < 1 || lineNumber > len(b.tokens) {
		return token.LineTokens{}
	}
	return b.tokens[lineNumber-1]
}

// FullyTokenized reports whether the last token batch declared the document
// completely tokenized.
func (b *Buffer) FullyTokenized() bool { return b.fullyTok }

// OnEdit subscribes to edit notifications. Listeners run synchronously inside
// Replace, after the buffer reflects the edit.
func (b *Buffer) OnEdit(fn func(Edit)) {
	b.listeners = append(b.listeners, fn)
}

// Replace substitutes the text in r with newText and notifies listeners.
// The range is clamped into the document rather than rejected: the buffer is
// a collaborator of a best-effort subsystem and must not fail.
func (b *Buffer) Replace(r Range, newText string) {
	r = b.clampRange(r)
	newText = strings.ReplaceAll(newText, "\r\n", "\n")

	prefix := b.lines[r.StartLine-1][:r.StartColumn-1]
	suffix := b.lines[r.EndLine-1][r.EndColumn-1:]
	replacement := strings.Split(prefix+newText+suffix, "\n")
	inserted := strings.Count(newText, "\n")

	b.size += len(newText) - b.rangeBytes(r)
	b.spliceLines(r.StartLine-1, r.EndLine-r.StartLine+1, replacement)

	notice := Edit{Range: r, InsertedLineBreaks: inserted}
	for _, fn := range b.listeners {
		fn(notice)
	}
}

// Insert is a convenience for an empty-range Replace at pos.
func (b *Buffer) Insert(pos Position, text string) {
	b.Replace(Range{
		StartLine: pos.Line, StartColumn: pos.Column,
		EndLine: pos.Line, EndColumn: pos.Column,
	}, text)
}

func (b *Buffer) clampRange(r Range) Range {
	clampLine := func(n int) int {
		if n < 1 {
			return 1
		}
		if n > len(b.lines) {
			return len(b.lines)
		}
		return n
	}
	r.StartLine = clampLine(r.StartLine)
	r.EndLine = clampLine(r.EndLine)
	if r.EndLine < r.StartLine {
		r.EndLine = r.StartLine
	}
	clampCol := func(line, col int) int {
		if col < 1 {
			return 1
		}
		if max := len(b.lines[line-1]) + 1; col > max {
			return max
		}
		return col
	}
	r.StartColumn = clampCol(r.StartLine, r.StartColumn)
	r.EndColumn = clampCol(r.EndLine, r.EndColumn)
	if r.StartLine == r.EndLine && r.EndColumn < r.StartColumn {
		r.EndColumn = r.StartColumn
	}
	return r
}

// rangeBytes reports the byte length of the text covered by a clamped range,
// counting line breaks between covered lines.
func (b *Buffer) rangeBytes(r Range) int {
	if r.StartLine == r.EndLine {
		return r.EndColumn - r.StartColumn
	}
	n := len(b.lines[r.StartLine-1]) - (r.StartColumn - 1) + 1
	for line := r.StartLine + 1; line < r.EndLine; line++ {
		n += len(b.lines[line-1]) + 1
	}
	return n + r.EndColumn - 1
}

// spliceLines replaces count lines starting at 0-based index at with repl,
// keeping the token slice the same shape. Token entries for replaced lines
// are dropped; the engine re-pushes them after re-tokenization.
func (b *Buffer) spliceLines(at, count int, repl []string) {
	tail := make([]string, len(b.lines)-at-count)
	copy(tail, b.lines[at+count:])
	b.lines = append(b.lines[:at], append(repl, tail...)...)

	tokTail := make([]token.LineTokens, len(b.tokens)-at-count)
	copy(tokTail, b.tokens[at+count:])
	fresh := make([]token.LineTokens, len(repl))
	b.tokens = append(b.tokens[:at], append(fresh, tokTail...)...)
}
