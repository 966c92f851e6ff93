package token_test

import (
	"testing"

	"glint/internal/token"
)

func mk(color token.Color) token.Style {
	return token.MakeStyle(3, token.KindOther, color)
}

func TestStylePacking(t *testing.T) {
	s := token.MakeStyle(42, token.KindString, token.ColorKeyword)
	if got := s.Language(); got != 42 {
		t.Fatalf("Language = %d, want 42", got)
	}
	if got := s.Kind(); got != token.KindString {
		t.Fatalf("Kind = %v, want KindString", got)
	}
	if got := s.Color(); got != token.ColorKeyword {
		t.Fatalf("Color = %v, want ColorKeyword", got)
	}
}

func TestLineTokensEndOffsets(t *testing.T) {
	lt := token.NewLineTokens([]token.Span{
		{Offset: 0, Style: mk(token.ColorKeyword)},
		{Offset: 4, Style: mk(token.ColorNone)},
		{Offset: 5, Style: mk(token.ColorIdent)},
	}, 9)

	if got := lt.Count(); got != 3 {
		t.Fatalf("Count = %d, want 3", got)
	}
	wantEnds := []uint32{4, 5, 9}
	for i, want := range wantEnds {
		if got := lt.EndOffset(i); got != want {
			t.Fatalf("EndOffset(%d) = %d, want %d", i, got, want)
		}
	}
	if got := lt.StartOffset(0); got != 0 {
		t.Fatalf("StartOffset(0) = %d, want 0", got)
	}
	if got := lt.StartOffset(2); got != 5 {
		t.Fatalf("StartOffset(2) = %d, want 5", got)
	}
}

func TestLineTokensIndexAt(t *testing.T) {
	lt := token.NewLineTokens([]token.Span{
		{Offset: 0, Style: mk(token.ColorKeyword)},
		{Offset: 4, Style: mk(token.ColorNone)},
		{Offset: 5, Style: mk(token.ColorIdent)},
	}, 9)

	cases := []struct {
		off  uint32
		want int
	}{
		{0, 0}, {3, 0}, {4, 1}, {5, 2}, {8, 2},
		// At or past end of line: the final span owns the caret.
		{9, 2}, {100, 2},
	}
	for _, tc := range cases {
		if got := lt.IndexAt(tc.off); got != tc.want {
			t.Fatalf("IndexAt(%d) = %d, want %d", tc.off, got, tc.want)
		}
	}
	if got := lt.StyleAt(4).Color(); got != token.ColorNone {
		t.Fatalf("StyleAt(4).Color = %v, want ColorNone", got)
	}
}

func TestLineTokensZeroValue(t *testing.T) {
	var lt token.LineTokens
	if got := lt.Count(); got != 0 {
		t.Fatalf("Count = %d, want 0", got)
	}
	if got := lt.IndexAt(0); got != -1 {
		t.Fatalf("IndexAt on empty = %d, want -1", got)
	}
	if got := lt.StyleAt(0); got != 0 {
		t.Fatalf("StyleAt on empty = %v, want zero style", got)
	}
}

func TestLineTokensEqual(t *testing.T) {
	a := token.NewLineTokens([]token.Span{{Offset: 0, Style: mk(token.ColorIdent)}}, 4)
	b := token.NewLineTokens([]token.Span{{Offset: 0, Style: mk(token.ColorIdent)}}, 4)
	c := token.NewLineTokens([]token.Span{{Offset: 0, Style: mk(token.ColorIdent)}}, 5)
	d := token.NewLineTokens([]token.Span{{Offset: 0, Style: mk(token.ColorKeyword)}}, 4)

	if !a.Equal(b) {
		t.Fatal("identical arrays must be equal")
	}
	if a.Equal(c) {
		t.Fatal("different end offsets must not be equal")
	}
	if a.Equal(d) {
		t.Fatal("different styles must not be equal")
	}
	var zero token.LineTokens
	if a.Equal(zero) || !zero.Equal(token.LineTokens{}) {
		t.Fatal("zero value comparisons are off")
	}
}
