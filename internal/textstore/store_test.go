package textstore_test

import (
	"testing"

	"glint/internal/textstore"
	"glint/internal/token"
	"glint/internal/tokenizer"
)

// depthState is a minimal structural state for store tests.
type depthState struct {
	depth int
}

func (s *depthState) Clone() tokenizer.State {
	c := *s
	return &c
}

func (s *depthState) Equals(other tokenizer.State) bool {
	o, ok := other.(*depthState)
	return ok && o != nil && s.depth == o.depth
}

// depthSupport exists only to satisfy the Support interface; the store never
// calls Tokenize.
type depthSupport struct{}

func (depthSupport) InitialState() tokenizer.State { return &depthState{} }

func (depthSupport) Tokenize(string, bool, tokenizer.State) tokenizer.Result {
	return tokenizer.Result{Spans: []token.Span{{}}, EndState: &depthState{}}
}

func newStore(t *testing.T, lines int) *textstore.Store {
	t.Helper()
	return textstore.New(depthSupport{}, lines)
}

// tokenizeAll simulates a full authoritative pass: each line i ends with the
// given depth.
func tokenizeAll(t *testing.T, s *textstore.Store, endDepths []int) {
	t.Helper()
	total := s.LineCount()
	for i, d := range endDepths {
		s.SetEndState(total, i, &depthState{depth: d})
	}
}

func TestNewStore(t *testing.T) {
	s := newStore(t, 3)
	if got := s.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	if got := s.FirstInvalidLine(); got != 0 {
		t.Fatalf("FirstInvalidLine = %d, want 0", got)
	}
	if st := s.BeginState(0); st == nil || !st.Equals(&depthState{}) {
		t.Fatalf("BeginState(0) = %v, want initial state", st)
	}
	if st := s.BeginState(1); st != nil {
		t.Fatalf("BeginState(1) = %v, want nil (unknown)", st)
	}
	if s.BeginState(-1) != nil || s.BeginState(3) != nil {
		t.Fatal("out-of-range BeginState must be nil")
	}
}

func TestNewStoreMinimumOneLine(t *testing.T) {
	s := textstore.New(depthSupport{}, 0)
	if got := s.LineCount(); got != 1 {
		t.Fatalf("LineCount = %d, want 1", got)
	}
}

func TestSetEndStateAdvancesFrontier(t *testing.T) {
	s := newStore(t, 3)
	tokenizeAll(t, s, []int{1, 1, 0})
	if got := s.FirstInvalidLine(); got != 3 {
		t.Fatalf("FirstInvalidLine = %d, want 3", got)
	}
	for i := 0; i < 3; i++ {
		if !s.IsValid(i) {
			t.Fatalf("line %d should be valid", i)
		}
	}
	if st := s.BeginState(2); !st.Equals(&depthState{depth: 1}) {
		t.Fatalf("BeginState(2) = %v, want depth 1", st)
	}
}

func TestSetEndStateChangedStateInvalidatesNextLine(t *testing.T) {
	s := newStore(t, 3)
	tokenizeAll(t, s, []int{1, 1, 0})

	// Re-tokenize line 0 with a different outcome: line 1 must fall.
	s.SetEndState(3, 0, &depthState{depth: 2})
	if got := s.FirstInvalidLine(); got != 1 {
		t.Fatalf("FirstInvalidLine = %d, want 1", got)
	}
	if s.IsValid(1) {
		t.Fatal("line 1 should be invalid after its begin state changed")
	}
	if st := s.BeginState(1); !st.Equals(&depthState{depth: 2}) {
		t.Fatalf("BeginState(1) = %v, want depth 2", st)
	}
}

func TestSetEndStateUnchangedStateSkipsValidRun(t *testing.T) {
	s := newStore(t, 4)
	tokenizeAll(t, s, []int{1, 1, 1, 0})

	// Invalidate line 1, then confirm it with the same end state: the frontier
	// must jump past the untouched valid tail, not stop at line 2.
	s.MarkSpeculative(1)
	if got := s.FirstInvalidLine(); got != 1 {
		t.Fatalf("FirstInvalidLine = %d, want 1", got)
	}
	s.SetEndState(4, 1, &depthState{depth: 1})
	if got := s.FirstInvalidLine(); got != 4 {
		t.Fatalf("FirstInvalidLine = %d, want 4 (skip valid run)", got)
	}
}

func TestSetEndStateLastLine(t *testing.T) {
	s := newStore(t, 2)
	tokenizeAll(t, s, []int{0, 0})
	s.SetEndState(2, 1, &depthState{depth: 5})
	if got := s.FirstInvalidLine(); got != 2 {
		t.Fatalf("FirstInvalidLine = %d, want 2", got)
	}
}

func TestMarkSpeculativeKeepsBeginState(t *testing.T) {
	s := newStore(t, 3)
	tokenizeAll(t, s, []int{1, 2, 0})
	s.MarkSpeculative(2)
	if s.IsValid(2) {
		t.Fatal("line 2 should be invalid")
	}
	if st := s.BeginState(2); !st.Equals(&depthState{depth: 2}) {
		t.Fatalf("BeginState(2) = %v, want preserved depth 2", st)
	}
	if got := s.FirstInvalidLine(); got != 2 {
		t.Fatalf("FirstInvalidLine = %d, want 2", got)
	}
}

func TestApplyEditSingleLineChange(t *testing.T) {
	s := newStore(t, 3)
	tokenizeAll(t, s, []int{1, 1, 0})

	// In-place edit of line 2: only that line falls, line 1 stays valid.
	s.ApplyEdit(2, 2, 0)
	if got := s.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	if got := s.FirstInvalidLine(); got != 1 {
		t.Fatalf("FirstInvalidLine = %d, want 1", got)
	}
	if !s.IsValid(0) {
		t.Fatal("line 0 must stay valid")
	}
	if s.IsValid(1) {
		t.Fatal("line 1 must be invalid")
	}
	// Line 2's flag is untouched; the frontier guards it until line 1 is redone.
	if !s.IsValid(2) {
		t.Fatal("line 2's valid flag should survive an edit on line 2 only")
	}
}

func TestApplyEditInsertLines(t *testing.T) {
	s := newStore(t, 10)
	depths := make([]int, 10)
	tokenizeAll(t, s, depths)

	// Insert five line breaks at the start of line 2.
	s.ApplyEdit(2, 2, 5)
	if got := s.LineCount(); got != 15 {
		t.Fatalf("LineCount = %d, want 15", got)
	}
	if got := s.FirstInvalidLine(); got != 1 {
		t.Fatalf("FirstInvalidLine = %d, want 1", got)
	}
	if !s.IsValid(0) {
		t.Fatal("line before the edit must stay valid")
	}
	for i := 1; i <= 6; i++ {
		if s.IsValid(i) {
			t.Fatalf("line %d around the insertion must be invalid", i)
		}
	}
	// The old tail shifted down intact.
	for i := 7; i < 15; i++ {
		if !s.IsValid(i) {
			t.Fatalf("shifted line %d should keep its valid flag", i)
		}
	}
}

func TestApplyEditDeleteLines(t *testing.T) {
	s := newStore(t, 10)
	depths := make([]int, 10)
	tokenizeAll(t, s, depths)

	// Delete lines 3..5 (merged into line 3).
	s.ApplyEdit(3, 6, 0)
	if got := s.LineCount(); got != 7 {
		t.Fatalf("LineCount = %d, want 7", got)
	}
	if got := s.FirstInvalidLine(); got != 2 {
		t.Fatalf("FirstInvalidLine = %d, want 2", got)
	}
	if !s.IsValid(0) || !s.IsValid(1) {
		t.Fatal("lines before the edit must stay valid")
	}
	if s.IsValid(2) {
		t.Fatal("the merged line must be invalid")
	}
}

func TestApplyEditReplaceLinesWithFewer(t *testing.T) {
	s := newStore(t, 6)
	depths := make([]int, 6)
	tokenizeAll(t, s, depths)

	// Replace lines 2..4 with text containing one line break.
	s.ApplyEdit(2, 4, 1)
	if got := s.LineCount(); got != 5 {
		t.Fatalf("LineCount = %d, want 5", got)
	}
	if got := s.FirstInvalidLine(); got != 1 {
		t.Fatalf("FirstInvalidLine = %d, want 1", got)
	}
}

func TestApplyEditClampsDegenerateRanges(t *testing.T) {
	s := newStore(t, 3)
	tokenizeAll(t, s, []int{0, 0, 0})
	s.ApplyEdit(-5, -7, -1)
	if got := s.LineCount(); got != 3 {
		t.Fatalf("LineCount = %d, want 3", got)
	}
	if got := s.FirstInvalidLine(); got != 0 {
		t.Fatalf("FirstInvalidLine = %d, want 0", got)
	}
}

func TestSetEndStateGrowsToDocumentSize(t *testing.T) {
	s := newStore(t, 1)
	// The document grew to 4 lines before the store heard about line 0.
	s.SetEndState(4, 0, &depthState{depth: 1})
	if got := s.LineCount(); got != 4 {
		t.Fatalf("LineCount = %d, want 4", got)
	}
	if got := s.FirstInvalidLine(); got != 1 {
		t.Fatalf("FirstInvalidLine = %d, want 1", got)
	}
}

func TestSetEndStateIgnoresNilState(t *testing.T) {
	s := newStore(t, 2)
	s.SetEndState(2, 0, nil)
	if s.IsValid(0) {
		t.Fatal("nil end state must not validate the line")
	}
	if got := s.FirstInvalidLine(); got != 0 {
		t.Fatalf("FirstInvalidLine = %d, want 0", got)
	}
}
