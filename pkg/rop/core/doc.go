// Package core carries pipeline configuration on the context: the worker cap
// and failure reporting used by task.All and task.Collect. It does not
// define combinators itself.
package core
