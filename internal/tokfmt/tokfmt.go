// Package tokfmt formats tokenized documents for CLI output.
package tokfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"glint/internal/highlight"
	"glint/internal/textmodel"
)

// TokenOutput is one token in serialized form, offsets in bytes.
type TokenOutput struct {
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
	Kind  string `json:"kind" msgpack:"kind"`
	Color string `json:"color" msgpack:"color"`
}

// LineOutput is the serialized token array for one line.
type LineOutput struct {
	Line   int           `json:"line" msgpack:"line"`
	Tokens []TokenOutput `json:"tokens" msgpack:"tokens"`
}

// DocumentOutput is the serialized result for a whole file.
type DocumentOutput struct {
	Path     string       `json:"path,omitempty" msgpack:"path,omitempty"`
	Language string       `json:"language" msgpack:"language"`
	Lines    []LineOutput `json:"lines" msgpack:"lines"`
}

// Collect extracts the stored tokens of buf into serializable form.
func Collect(path, language string, buf *textmodel.Buffer) DocumentOutput {
	doc := DocumentOutput{Path: path, Language: language}
	for line := 1; line <= buf.LineCount(); line++ {
		tokens := buf.LineTokens(line)
		out := LineOutput{Line: line}
		for i := 0; i < tokens.Count(); i++ {
			out.Tokens = append(out.Tokens, TokenOutput{
				Start: tokens.StartOffset(i),
				End:   tokens.EndOffset(i),
				Kind:  tokens.Style(i).Kind().String(),
				Color: tokens.Style(i).Color().String(),
			})
		}
		doc.Lines = append(doc.Lines, out)
	}
	return doc
}

// FormatPretty writes one line per token line: the line number, then either
// the highlighted text (color on) or a token summary.
func FormatPretty(w io.Writer, buf *textmodel.Buffer, theme *highlight.Theme, color bool) error {
	for line := 1; line <= buf.LineCount(); line++ {
		text := buf.LineContent(line)
		if color {
			if _, err := fmt.Fprintf(w, "%4d  %s\n", line, theme.Render(text, buf.LineTokens(line))); err != nil {
				return err
			}
			continue
		}
		tokens := buf.LineTokens(line)
		if _, err := fmt.Fprintf(w, "%4d:", line); err != nil {
			return err
		}
		for i := 0; i < tokens.Count(); i++ {
			start, end := tokens.StartOffset(i), tokens.EndOffset(i)
			if _, err := fmt.Fprintf(w, " [%d-%d %s]", start, end, tokens.Style(i).Color()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// FormatJSON writes the document as indented JSON.
func FormatJSON(w io.Writer, doc DocumentOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// FormatMsgpack writes the document as a single msgpack value.
func FormatMsgpack(w io.Writer, doc DocumentOutput) error {
	return msgpack.NewEncoder(w).Encode(doc)
}
