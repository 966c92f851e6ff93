// Package sched provides the cooperative single-threaded scheduler the
// tokenization engine yields through.
//
// There is no parallelism here: callbacks run one at a time when the owner
// pumps the queue (a UI tick, a test loop). Idle callbacks receive a deadline
// so the engine can decide how long to keep working before yielding.
package sched
