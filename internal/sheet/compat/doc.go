// Package compat reads and writes sheet files across schema versions.
//
// Each version owns its wire structs. Reading an older file converts it
// forward one version at a time until it reaches the current schema; writing
// always emits the current version. The largest migration is v2 to v3, which
// moves hitboxes from frames onto every keyframe referencing the frame,
// correcting their position by the keyframe offset.
package compat
