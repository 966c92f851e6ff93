package engine

import (
	"time"

	"glint/internal/diag"
	"glint/internal/sched"
	"glint/internal/textmodel"
	"glint/internal/textstore"
	"glint/internal/token"
	"glint/internal/tokenizer"
)

const (
	// DefaultBatchBudget bounds one background batch: the inner loop stops
	// once strictly more than this much wall-clock time has elapsed. The
	// strict comparison avoids quitting early on timer rounding.
	DefaultBatchBudget = time.Millisecond

	// DefaultCheapLineLength is the line length under which tokenizing the
	// next pending line still counts as cheap for synchronous callers.
	DefaultCheapLineLength = 2048
)

// Options configures an Engine. Zero values select working defaults.
type Options struct {
	// Scheduler receives background work. Required for background
	// tokenization; an engine without one only tokenizes on demand.
	Scheduler sched.Scheduler
	// Clock measures batch budgets and deadlines.
	Clock sched.Clock
	// BatchBudget bounds a single background batch.
	BatchBudget time.Duration
	// CheapLineLength is the IsCheapToTokenize cutoff.
	CheapLineLength int
	// Reporter receives tokenizer failure diagnostics. May be nil.
	Reporter diag.Reporter
	// Estimator guesses a resume state for viewport tokenization.
	// Defaults to the indentation-based lookback.
	Estimator ResumeEstimator
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = sched.RealClock{}
	}
	if o.BatchBudget <= 0 {
		o.BatchBudget = DefaultBatchBudget
	}
	if o.CheapLineLength <= 0 {
		o.CheapLineLength = DefaultCheapLineLength
	}
	if o.Estimator == nil {
		o.Estimator = IndentEstimator{}
	}
	return o
}

// Engine keeps one document's tokens up to date against a tokenizer registry.
// All methods must be called from the single logical thread that owns the
// document; the engine interleaves with its scheduler, it never races it.
type Engine struct {
	model    textmodel.Model
	registry *tokenizer.Registry
	opts     Options

	language string
	encoded  token.LanguageID
	support  tokenizer.Support // nil while inactive
	store    *textstore.Store  // nil while inactive

	scheduled bool
	disposed  bool
	unsub     func()
}

// New creates an engine for model and resets it to language. The engine
// subscribes to registry changes: re-registering the active language rebuilds
// the store from scratch.
func New(model textmodel.Model, registry *tokenizer.Registry, language string, opts Options) *Engine {
	e := &Engine{
		model:    model,
		registry: registry,
		opts:     opts.withDefaults(),
	}
	e.unsub = registry.Subscribe(func(lang string) {
		if !e.disposed && lang == e.language {
			e.Reset(e.language)
		}
	})
	e.Reset(language)
	return e
}

// Reset drops all tokenization state and re-resolves the tokenizer for
// language. Called on attach, language change, full document replace, and
// registry changes. If no tokenizer is available the engine goes inactive:
// a valid steady state with null highlighting, not an error.
func (e *Engine) Reset(language string) {
	if e.disposed {
		return
	}
	e.language = language
	e.encoded = token.LanguageID(e.registry.EncodedID(language))
	e.model.ClearTokens()

	e.support = e.registry.Lookup(language)
	if e.support == nil || e.support.InitialState() == nil {
		if e.support == nil && e.opts.Reporter != nil {
			e.opts.Reporter.Report(diag.TokMissing, diag.SevInfo, language, 0,
				"no tokenizer registered; using null highlighting")
		}
		e.support = nil
		e.store = nil
		return
	}
	e.store = textstore.New(e.support, e.model.LineCount())
	e.scheduleBackground()
}

// Dispose detaches the engine from the registry and cancels any future
// background work. Pending scheduler callbacks become no-ops.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	if e.unsub != nil {
		e.unsub()
	}
}

// Active reports whether a tokenizer is resolved for the current language.
func (e *Engine) Active() bool { return e.store != nil }

// Language returns the language the engine is currently tokenizing for.
func (e *Engine) Language() string { return e.language }

// Progress returns how many leading lines are confirmed tokenized and the
// document line count. For an inactive engine both follow the model trivially.
func (e *Engine) Progress() (done, total int) {
	total = e.model.LineCount()
	if e.store == nil {
		return total, total
	}
	return min(e.store.FirstInvalidLine(), total), total
}

// ApplyEdits patches tokenization state for document edits, which must be
// supplied in the order they were applied, and schedules catch-up work.
func (e *Engine) ApplyEdits(edits []textmodel.Edit) {
	if e.disposed || e.store == nil {
		return
	}
	for _, ed := range edits {
		e.store.ApplyEdit(ed.Range.StartLine, ed.Range.EndLine, ed.InsertedLineBreaks)
	}
	e.scheduleBackground()
}

func (e *Engine) hasWork() bool {
	return e.store != nil && e.store.FirstInvalidLine() < e.model.LineCount()
}

// resolveBeginState returns a non-nil state to tokenize 0-based line idx
// from. A missing cache entry means "unknown": resume from the initial state.
func (e *Engine) resolveBeginState(idx int) tokenizer.State {
	if st := e.store.BeginState(idx); st != nil {
		return st
	}
	return e.store.InitialState()
}

type batchBuilder struct {
	updates []textmodel.LineUpdate
}

func (b *batchBuilder) add(line int, tokens token.LineTokens) {
	b.updates = append(b.updates, textmodel.LineUpdate{Line: line, Tokens: tokens})
}

// flush hands the accumulated batch to the document in one call.
func (e *Engine) flush(b *batchBuilder) {
	if len(b.updates) == 0 {
		return
	}
	e.model.SetTokens(b.updates, !e.hasWork())
	b.updates = nil
}

// updateTokensUntilLine tokenizes every invalid line up to and including the
// 1-based lineNumber, strictly in order. The loop re-reads the invalid
// frontier each iteration instead of incrementing: SetEndState may have
// jumped it forward past lines whose state was proven unchanged, and
// re-tokenizing those would be both wasted work and a correctness hazard.
func (e *Engine) updateTokensUntilLine(b *batchBuilder, lineNumber int) {
	total := e.model.LineCount()
	for idx := e.store.FirstInvalidLine(); idx < lineNumber; idx = e.store.FirstInvalidLine() {
		text := e.model.LineContent(idx + 1)
		begin := e.resolveBeginState(idx)
		r := tokenizer.SafeTokenize(e.language, e.encoded, e.support, text, idx+1 < total, begin, e.opts.Reporter, idx+1)
		b.add(idx+1, r.Tokens)
		e.store.SetEndState(total, idx, r.EndState)
	}
}

// ForceTokenize synchronously tokenizes everything up to and including the
// 1-based lineNumber, with no deadline. The unbounded cost is the point:
// callers use this when a guaranteed-correct answer matters more than
// latency.
func (e *Engine) ForceTokenize(lineNumber int) {
	if e.disposed || e.store == nil {
		return
	}
	if lineNumber < 1 {
		lineNumber = 1
	}
	if n := e.model.LineCount(); lineNumber > n {
		lineNumber = n
	}
	var b batchBuilder
	e.updateTokensUntilLine(&b, lineNumber)
	e.flush(&b)
}

// IsCheapToTokenize reports whether a synchronous query touching lineNumber
// is safe to run without risking a long stall. True when the line is already
// valid, or when it is the very next line to tokenize and short enough.
func (e *Engine) IsCheapToTokenize(lineNumber int) bool {
	if e.store == nil {
		return true
	}
	next := e.store.FirstInvalidLine() + 1
	if next > lineNumber {
		return true
	}
	if next < lineNumber {
		return false
	}
	return len(e.model.LineContent(lineNumber)) < e.opts.CheapLineLength
}
