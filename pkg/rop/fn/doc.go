// Package fn holds the composition helpers used to chain the curried
// combinators of opt and task: Pipe and Flow in fixed arities, plus a few
// small utilities (Identity, Tap, Log, TryCatch, Memo).
//
// Memo is bounded: it keeps at most the requested number of results and
// evicts the least recently used one.
package fn
