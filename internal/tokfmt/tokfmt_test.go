package tokfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glint/internal/engine"
	"glint/internal/highlight"
	"glint/internal/lexers"
	"glint/internal/textmodel"
	"glint/internal/tokenizer"
	"glint/internal/tokfmt"
)

func tokenizedBuffer(t *testing.T, text string) *textmodel.Buffer {
	t.Helper()
	reg := tokenizer.NewRegistry()
	lexers.RegisterBuiltins(reg)
	buf := textmodel.NewBuffer(text)
	eng := engine.New(buf, reg, "go", engine.Options{})
	eng.ForceTokenize(buf.LineCount())
	return buf
}

func TestCollect(t *testing.T) {
	buf := tokenizedBuffer(t, "x := 1\n// c")
	doc := tokfmt.Collect("a.go", "go", buf)

	assert.Equal(t, "a.go", doc.Path)
	assert.Equal(t, "go", doc.Language)
	require.Len(t, doc.Lines, 2)

	first := doc.Lines[0]
	assert.Equal(t, 1, first.Line)
	require.NotEmpty(t, first.Tokens)
	assert.Equal(t, uint32(0), first.Tokens[0].Start)
	last := first.Tokens[len(first.Tokens)-1]
	assert.Equal(t, uint32(6), last.End, "tokens cover the whole line")
	assert.Equal(t, "number", last.Color)

	require.NotEmpty(t, doc.Lines[1].Tokens)
	assert.Equal(t, "comment", doc.Lines[1].Tokens[0].Kind)
}

func TestFormatPrettyPlain(t *testing.T) {
	buf := tokenizedBuffer(t, "x := 1")
	var sb strings.Builder
	require.NoError(t, tokfmt.FormatPretty(&sb, buf, highlight.DefaultTheme(), false))

	out := sb.String()
	assert.Contains(t, out, "1:")
	assert.Contains(t, out, "ident")
	assert.Contains(t, out, "number")
}

func TestFormatPrettyColor(t *testing.T) {
	buf := tokenizedBuffer(t, "x := 1")
	var sb strings.Builder
	require.NoError(t, tokfmt.FormatPretty(&sb, buf, highlight.DefaultTheme(), true))
	assert.Contains(t, sb.String(), "x")
	assert.Contains(t, sb.String(), "1")
}
