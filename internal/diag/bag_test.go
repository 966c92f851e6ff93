package diag_test

import (
	"strings"
	"testing"

	"glint/internal/diag"
)

func TestBagCap(t *testing.T) {
	bag := diag.NewBag(2)
	if !bag.Add(diag.Diagnostic{Code: diag.TokPanic, Severity: diag.SevError}) {
		t.Fatal("first add dropped")
	}
	if !bag.Add(diag.Diagnostic{Code: diag.TokPanic, Severity: diag.SevError}) {
		t.Fatal("second add dropped")
	}
	if bag.Add(diag.Diagnostic{Code: diag.TokPanic, Severity: diag.SevError}) {
		t.Fatal("add past the cap must be dropped")
	}
	if got := bag.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{Code: diag.TokMissing, Severity: diag.SevInfo})
	if bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("info-only bag must report neither warnings nor errors")
	}
	bag.Add(diag.Diagnostic{Code: diag.TokBadOffsets, Severity: diag.SevWarning})
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Fatal("warning bag state wrong")
	}
	bag.Add(diag.Diagnostic{Code: diag.TokPanic, Severity: diag.SevError})
	if !bag.HasErrors() {
		t.Fatal("error not reported")
	}
}

func TestBagReporter(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}
	r.Report(diag.TokPanic, diag.SevError, "go", 7, "boom")

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Language != "go" || d.Line != 7 || d.Code != diag.TokPanic {
		t.Fatalf("diagnostic = %+v", d)
	}
	s := d.String()
	for _, part := range []string{"TOK1001", "ERROR", "go:7", "boom"} {
		if !strings.Contains(s, part) {
			t.Fatalf("String() = %q, missing %q", s, part)
		}
	}
}

func TestNilBagReporter(t *testing.T) {
	// Must not panic.
	diag.BagReporter{}.Report(diag.TokPanic, diag.SevError, "go", 1, "x")
	diag.NopReporter{}.Report(diag.TokPanic, diag.SevError, "go", 1, "x")
}

func TestCodeIDs(t *testing.T) {
	cases := map[diag.Code]string{
		diag.TokPanic:      "TOK1001",
		diag.TokBadOffsets: "TOK1002",
		diag.TokMissing:    "TOK1003",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Fatalf("ID(%d) = %q, want %q", code, got, want)
		}
	}
}
