// Package sheet implements the sprite sheet content model: an ordered list
// of frames, a set of named animations made of keyframes, and optional export
// settings.
//
// The model is a plain value graph with no I/O. Every type supports Clone and
// Equal; structural equality between whole sheets is what the document layer
// uses to decide whether an edit actually changed content. Entities are
// referenced by stable key (frame source path, animation name, hitbox name)
// rather than by pointer.
package sheet
