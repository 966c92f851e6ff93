package textstore

import "glint/internal/tokenizer"

type lineState struct {
	// beginState is the tokenizer state at the start of the line. It is only
	// trustworthy if the previous line has been tokenized since it was set.
	beginState tokenizer.State
	valid      bool
}

// Store keeps one lineState per document line, 0-indexed. All lines before
// FirstInvalidLine are valid; everything at or after it is pending.
//
// A Store is bound to one tokenizer support for its whole lifetime; a
// language change means building a new Store.
type Store struct {
	support      tokenizer.Support
	initialState tokenizer.State
	lines        []lineState
	firstInvalid int
}

// New builds a store for lineCount lines. The support must be non-nil; the
// caller (the engine) handles the no-tokenizer case by not creating a store
// at all.
func New(support tokenizer.Support, lineCount int) *Store {
	if lineCount < 1 {
		lineCount = 1
	}
	s := &Store{
		support:      support,
		initialState: support.InitialState(),
		lines:        make([]lineState, lineCount),
	}
	s.lines[0].beginState = s.initialState
	return s
}

// Support returns the tokenizer support the store was built for.
func (s *Store) Support() tokenizer.Support { return s.support }

// InitialState returns the state for the start of line 1.
func (s *Store) InitialState() tokenizer.State { return s.initialState }

// LineCount returns the number of tracked lines.
func (s *Store) LineCount() int { return len(s.lines) }

// FirstInvalidLine returns the 0-based index of the first line whose tokens
// are not confirmed valid. Equal to LineCount when the document is fully
// tokenized.
func (s *Store) FirstInvalidLine() int {
	return min(s.firstInvalid, len(s.lines))
}

// IsValid reports whether line i has confirmed-valid tokens.
func (s *Store) IsValid(i int) bool {
	if i < 0 || i >= len(s.lines) {
		return false
	}
	return s.lines[i].valid
}

// BeginState returns the cached state at the start of line i, or nil when the
// index is out of range or no state has been recorded yet. Callers must treat
// nil as "unknown, resume from the initial state".
func (s *Store) BeginState(i int) tokenizer.State {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i].beginState
}

// SetEndState records the outcome of tokenizing line i: the line becomes
// valid and endState becomes the begin state of line i+1.
//
// If the cached begin state of line i+1 already equals endState, nothing
// downstream changed and the invalid frontier jumps forward past every line
// that is still valid. Otherwise line i+1 is invalidated and the frontier
// lands exactly there: a changed end state forces re-tokenization of
// everything after it.
func (s *Store) SetEndState(totalLines, i int, endState tokenizer.State) {
	s.ensureLine(totalLines - 1)
	if i < 0 || i >= len(s.lines) || endState == nil {
		return
	}
	s.lines[i].valid = true
	s.firstInvalid = i + 1
	if i == totalLines-1 {
		return
	}

	cached := s.lines[i+1].beginState
	if cached == nil || !endState.Equals(cached) {
		s.lines[i+1].beginState = endState
		s.invalidateLine(i + 1)
		return
	}

	// Downstream state unchanged; skip the run of lines already known valid.
	j := i + 1
	for j < totalLines && s.lines[j].valid {
		j++
	}
	s.firstInvalid = j
}

// MarkSpeculative flags line i invalid without touching its begin state. Used
// when a line was tokenized only for viewport lookback, so an authoritative
// pass will redo it later.
func (s *Store) MarkSpeculative(i int) {
	s.ensureLine(i)
	s.invalidateLine(i)
}

// ApplyEdit patches the store for one document edit: the replaced range
// [startLine, endLine] (1-based, endLine >= startLine) and the number of line
// breaks the inserted text contains. Must be called once per edit, in
// document order.
func (s *Store) ApplyEdit(startLine, endLine, insertedLines int) {
	if startLine < 1 {
		startLine = 1
	}
	if endLine < startLine {
		endLine = startLine
	}
	deleting := endLine - startLine
	inserting := insertedLines
	if inserting < 0 {
		inserting = 0
	}
	editing := min(deleting, inserting)

	// Every line edited in place is conservatively invalid, walked backward
	// so firstInvalid ends at the lowest touched index.
	for j := editing; j >= 0; j-- {
		s.invalidateLine(startLine + j - 1)
	}

	s.deleteLines(startLine, deleting)
	s.insertLines(startLine, inserting)
}

// ensureLine grows the store so index i exists, with unknown invalid entries.
func (s *Store) ensureLine(i int) {
	for len(s.lines) <= i {
		s.lines = append(s.lines, lineState{})
	}
}

func (s *Store) invalidateLine(i int) {
	if i < 0 || i >= len(s.lines) {
		return
	}
	s.lines[i].valid = false
	if i < s.firstInvalid {
		s.firstInvalid = i
	}
}

// deleteLines removes count entries starting at 0-based index at. The first
// edited line keeps its entry (it was invalidated, not removed); only the
// lines merged into it disappear.
func (s *Store) deleteLines(at, count int) {
	if count <= 0 || at >= len(s.lines) {
		return
	}
	if at+count > len(s.lines) {
		count = len(s.lines) - at
	}
	s.lines = append(s.lines[:at], s.lines[at+count:]...)
}

// insertLines adds count fresh unknown entries at 0-based index at.
func (s *Store) insertLines(at, count int) {
	if count <= 0 || at > len(s.lines) {
		return
	}
	fresh := make([]lineState, count)
	s.lines = append(s.lines[:at], append(fresh, s.lines[at:]...)...)
}
