// Package projection implements the transplant-expansion economic model.
//
// All computation is carried by pure functions over a ValueSnapshot: the engine
// never reads mutable state and never clamps its inputs. Parameter bounds and
// clamping live in the Set type and are enforced by callers before a snapshot
// is taken.
package projection
