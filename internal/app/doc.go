// Package app coordinates the open documents: focus, the error message
// queue, the exit flow, and routing commands to the focused document with
// logging. It owns no rendering and no input handling; callers drive it
// through State, which serializes all access behind one mutex.
package app
