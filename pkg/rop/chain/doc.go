// Package chain provides a fluent wrapper around task.Task for building
// Railway-Oriented chains without nesting curried calls.
//
// Go methods cannot introduce type parameters, so steps that change the
// value type (Then, ThenTry, Map, Finally) are functions, while steps that
// keep it (Ensure, Recover, Wrap) are methods.
//
// Key operations:
// - Start/FromValue/FromFunc: begin a chain from a task, a value or a computation
// - Then: continue with a function returning another task
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/Recover: run side effects on success or failure
// - Wrap: rewrite the failure
// - Fold/Finally: collapse the chain into plain values
package chain
