package engine

import (
	"glint/internal/textmodel"
	"glint/internal/textstore"
	"glint/internal/tokenizer"
)

// ResumeEstimator guesses a tokenizer state to resume from when the viewport
// is far ahead of the tokenized frontier. The guess only needs to be
// plausible: viewport results are marked speculative and redone by the next
// authoritative pass.
type ResumeEstimator interface {
	// Estimate returns a state for the start of the 1-based startLine.
	// tokenize runs one speculative tokenization of a line (no state is
	// persisted) and returns the resulting end state.
	Estimate(model textmodel.Model, store *textstore.Store, startLine int,
		tokenize func(lineNumber int, state tokenizer.State) tokenizer.State) tokenizer.State
}

// IndentEstimator walks backward from the viewport collecting lines whose
// leading-whitespace column shrinks, a cheap proxy for "start of an enclosing
// block". The collected lines are then tokenized top-down to approximate the
// state at the viewport start. Deep viewports cost a handful of lines instead
// of thousands.
type IndentEstimator struct{}

func (IndentEstimator) Estimate(model textmodel.Model, store *textstore.Store, startLine int,
	tokenize func(lineNumber int, state tokenizer.State) tokenizer.State) tokenizer.State {

	nonWS := model.FirstNonWhitespaceColumn(startLine)
	var fakeLines []int
	var initial tokenizer.State
	for i := startLine - 1; nonWS > 0 && i >= 1; i-- {
		col := model.FirstNonWhitespaceColumn(i)
		if col == 0 {
			// Blank line, says nothing about scope.
			continue
		}
		if col < nonWS {
			fakeLines = append(fakeLines, i)
			nonWS = col
			// A cached state at the start of this line anchors the replay;
			// anything above it cannot change the outcome.
			if st := store.BeginState(i - 1); st != nil {
				initial = st
				break
			}
		}
	}
	if initial == nil {
		initial = store.InitialState()
	}

	// fakeLines was collected bottom-up; replay top-down.
	state := initial
	for i := len(fakeLines) - 1; i >= 0; i-- {
		state = tokenize(fakeLines[i], state)
	}
	return state
}

// TokenizeViewport makes the 1-based line range [startLine, endLine]
// presentable right now. Lines the authoritative pass already covered are
// left alone; a viewport just past the frontier is finished synchronously;
// a viewport far past it is tokenized from an estimated resume state and
// marked speculative so a later pass redoes it properly.
func (e *Engine) TokenizeViewport(startLine, endLine int) {
	if e.disposed || e.store == nil {
		return
	}
	if startLine < 1 {
		startLine = 1
	}
	if n := e.model.LineCount(); endLine > n {
		endLine = n
	}
	if endLine < startLine {
		return
	}

	next := e.store.FirstInvalidLine() + 1 // next line to tokenize, 1-based
	if next > endLine {
		// Tokenization already reached past the viewport.
		return
	}
	if next >= startLine {
		// Close enough to finish for real.
		e.ForceTokenize(endLine)
		return
	}

	state := e.opts.Estimator.Estimate(e.model, e.store, startLine, e.speculativeTokenize)
	total := e.model.LineCount()
	var b batchBuilder
	for line := startLine; line <= endLine; line++ {
		text := e.model.LineContent(line)
		r := tokenizer.SafeTokenize(e.language, e.encoded, e.support, text, line < total, state, e.opts.Reporter, line)
		b.add(line, r.Tokens)
		e.store.MarkSpeculative(line - 1)
		state = r.EndState
	}
	e.flush(&b)
}

// speculativeTokenize runs the tokenizer over one line purely to derive the
// resulting state. Nothing is stored.
func (e *Engine) speculativeTokenize(lineNumber int, state tokenizer.State) tokenizer.State {
	text := e.model.LineContent(lineNumber)
	r := tokenizer.SafeTokenize(e.language, e.encoded, e.support, text, lineNumber < e.model.LineCount(), state, e.opts.Reporter, lineNumber)
	return r.EndState
}
