package tokenizer

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	"glint/internal/diag"
	"glint/internal/token"
)

// SafeResult is a normalized, trusted tokenization outcome: tokens in the
// canonical end-offset form and a non-nil end state.
type SafeResult struct {
	Tokens   token.LineTokens
	EndState State
}

// SafeTokenize wraps one tokenizer call so it can never fail or corrupt
// downstream consumers:
//
//   - the tokenizer receives a clone of state, so the caller's copy stays
//     intact even if the implementation mutates its input;
//   - a panic is recovered, reported as a diagnostic, and replaced by null
//     tokenization for the line;
//   - a nil support produces null tokenization outright;
//   - span offsets are repaired if out of order or out of range.
//
// line is 1-based and used only for diagnostics. reporter may be nil.
func SafeTokenize(language string, encoded token.LanguageID, support Support, text string, hasEOL bool, state State, reporter diag.Reporter, line int) SafeResult {
	if support == nil {
		return nullTokenization(encoded, text, state)
	}

	res, ok := guardedTokenize(support, text, hasEOL, state, reporter, language, line)
	if !ok || res.EndState == nil {
		return nullTokenization(encoded, text, state)
	}

	spans := res.Spans
	if len(spans) == 0 {
		// Canonical form: every line carries at least one token.
		spans = []token.Span{{Offset: 0, Style: token.MakeStyle(encoded, token.KindOther, token.ColorNone)}}
	}
	spans, repaired := repairSpans(spans, lineLen(text))
	if repaired && reporter != nil {
		reporter.Report(diag.TokBadOffsets, diag.SevWarning, language, line,
			"tokenizer returned out-of-order offsets; clamped")
	}
	return SafeResult{
		Tokens:   token.NewLineTokens(spans, lineLen(text)),
		EndState: res.EndState,
	}
}

func guardedTokenize(support Support, text string, hasEOL bool, state State, reporter diag.Reporter, language string, line int) (res Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if reporter != nil {
				reporter.Report(diag.TokPanic, diag.SevError, language, line,
					fmt.Sprintf("tokenizer panicked: %v", r))
			}
			res = Result{}
			ok = false
		}
	}()
	return support.Tokenize(text, hasEOL, state.Clone()), true
}

// nullTokenization covers the whole line with a single unclassified token and
// leaves the state untouched, so line validity bookkeeping stays correct even
// when token content is degraded.
func nullTokenization(encoded token.LanguageID, text string, state State) SafeResult {
	spans := []token.Span{{Offset: 0, Style: token.MakeStyle(encoded, token.KindOther, token.ColorNone)}}
	return SafeResult{
		Tokens:   token.NewLineTokens(spans, lineLen(text)),
		EndState: state,
	}
}

// repairSpans clamps offsets so the sequence starts at 0, never decreases,
// and never exceeds the line length. Buggy third-party tokenizers must not
// break binary search over the resulting array.
func repairSpans(spans []token.Span, textLen uint32) ([]token.Span, bool) {
	repaired := false
	prev := uint32(0)
	for i := range spans {
		off := spans[i].Offset
		if (i == 0 && off != 0) || off < prev || off > textLen {
			repaired = true
			if i == 0 || off < prev {
				spans[i].Offset = prev
			} else {
				spans[i].Offset = textLen
			}
		}
		prev = spans[i].Offset
	}
	return spans, repaired
}

func lineLen(text string) uint32 {
	n, err := safecast.Conv[uint32](len(text))
	if err != nil {
		return math.MaxUint32
	}
	return n
}
