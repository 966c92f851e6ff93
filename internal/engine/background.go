package engine

import (
	"time"

	"glint/internal/sched"
)

// scheduleBackground requests one idle slot for catch-up tokenization. The
// scheduled guard keeps at most one pending request alive regardless of how
// many edits arrive before it runs.
func (e *Engine) scheduleBackground() {
	if e.scheduled || e.disposed || e.opts.Scheduler == nil {
		return
	}
	if !e.model.AttachedToEditor() || e.model.TooLargeForTokenization() {
		return
	}
	if !e.hasWork() {
		return
	}
	e.scheduled = true
	e.opts.Scheduler.RequestIdle(func(d sched.Deadline) {
		e.scheduled = false
		e.backgroundTokenize(d)
	})
}

// backgroundTokenize consumes one granted idle slot. Inside the slot the
// engine alternates small batches with zero-delay continuations, so host
// tasks queued meanwhile still interleave; when the deadline runs out it
// re-requests idle time for the remainder.
func (e *Engine) backgroundTokenize(d sched.Deadline) {
	end := e.opts.Clock.Now().Add(d.TimeRemaining())
	e.backgroundStep(end)
}

func (e *Engine) backgroundStep(end time.Time) {
	if e.disposed || !e.model.AttachedToEditor() || !e.hasWork() {
		return
	}
	e.tokenizeOneBatch()
	if !e.hasWork() {
		return
	}
	if e.opts.Clock.Now().Before(end) {
		e.opts.Scheduler.QueueTask(func() { e.backgroundStep(end) })
	} else {
		e.scheduleBackground()
	}
}

// tokenizeOneBatch tokenizes invalid lines one at a time until strictly more
// than the batch budget has elapsed, then pushes the whole batch downstream
// in a single SetTokens call.
func (e *Engine) tokenizeOneBatch() {
	var b batchBuilder
	start := e.opts.Clock.Now()
	for e.hasWork() {
		next := e.store.FirstInvalidLine() + 1
		e.updateTokensUntilLine(&b, next)
		if e.opts.Clock.Now().Sub(start) > e.opts.BatchBudget {
			break
		}
	}
	e.flush(&b)
}
