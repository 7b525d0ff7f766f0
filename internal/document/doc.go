// Package document implements the sprite sheet editing core: one mutable
// document combining a sheet, the view state, any in-progress interaction,
// and an undo history.
//
// All mutation funnels through Document.Apply, which matches a command to a
// handler, validates before mutating, clears stale interaction state, and
// records the result in history. A failed command leaves the document
// unchanged. The package is single-threaded by design; callers serialize
// access (see package app).
package document
