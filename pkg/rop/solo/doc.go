// Package solo contains single-value, synchronous primitives over Result[T].
// They are the per-stage kernels that the task package runs once a Task has
// settled, and can be used directly for pipelines that never suspend.
//
// Every function short-circuits on Err and recovers panics raised by the
// callbacks it runs, reporting them as Err carrying a *rop.PanicError.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: validation, optionally accumulating errors
// - Switch: flatMap from Result[In] to Result[Out]
// - Map/Try/MapErr: transform the value or the error
// - Tee/TeeErr/TeeIf/DoubleTee: side-effect helpers
// - FilterOrElse/FilterOrFail: predicate gates
// - OrElse/Finally: reduce to a plain value
package solo
