// Package script runs Lua automation against a document. Scripts drive the
// same command surface as interactive editing, so every scripted change is
// validated, recorded in history, and undoable.
//
// The Lua state is sandboxed: only the base, table, string, and math
// libraries are opened. io, os, debug, and package stay closed.
package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/spritestorm/internal/app"
	"github.com/dshills/spritestorm/internal/document"
)

// ErrClosed indicates the executor was already closed.
var ErrClosed = errors.New("script executor closed")

// Executor is a sandboxed Lua state bound to one document. It is not safe
// for concurrent use.
type Executor struct {
	state  *lua.LState
	doc    *document.Document
	logger *app.Logger
	closed bool
}

// New creates an executor bound to d. A nil logger logs at info to stderr.
func New(d *document.Document, logger *app.Logger) *Executor {
	if logger == nil {
		logger = app.NewLogger(app.LogLevelInfo, nil)
	}
	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(state)

	e := &Executor{state: state, doc: d, logger: logger.WithComponent("script")}
	state.SetGlobal("sheet", e.buildAPI())
	return e
}

func openSafeLibraries(state *lua.LState) {
	lua.OpenBase(state)
	lua.OpenTable(state)
	lua.OpenString(state)
	lua.OpenMath(state)
}

// RunString executes Lua source.
func (e *Executor) RunString(source string) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.state.DoString(source); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile executes a Lua file.
func (e *Executor) RunFile(path string) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.state.DoFile(path); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// Close releases the Lua state.
func (e *Executor) Close() {
	if !e.closed {
		e.closed = true
		e.state.Close()
	}
}

// buildAPI assembles the `sheet` module table.
func (e *Executor) buildAPI() *lua.LTable {
	api := e.state.NewTable()
	e.state.SetFuncs(api, map[string]lua.LGFunction{
		"import_frame":     e.importFrame,
		"create_animation": e.createAnimation,
		"edit_animation":   e.editAnimation,
		"add_keyframe":     e.addKeyframe,
		"select_keyframes": e.selectKeyframes,
		"toggle_looping":   e.toggleLooping,
		"delete_selection": e.deleteSelection,
		"undo":             e.undo,
		"redo":             e.redo,
		"frames":           e.frames,
		"animations":       e.animations,
		"version":          e.version,
	})
	return api
}

// apply runs a command and converts failure into a Lua error, which lands
// in RunString's returned error with a script traceback.
func (e *Executor) apply(L *lua.LState, command document.Command) {
	e.logger.Debug("command %s", command.CommandName())
	if err := e.doc.Apply(command); err != nil {
		L.RaiseError("%s: %v", command.CommandName(), err)
	}
}

// importFrame(path) adds a frame to the sheet.
func (e *Executor) importFrame(L *lua.LState) int {
	path := L.CheckString(1)
	e.apply(L, document.EndImport{Path: path})
	return 0
}

// createAnimation(name) adds an animation, names it, and opens it.
func (e *Executor) createAnimation(L *lua.LState) int {
	name := L.CheckString(1)
	e.apply(L, document.CreateAnimation{})
	e.apply(L, document.UpdateRenameSelection{NewName: name})
	e.apply(L, document.EndRenameSelection{})
	return 0
}

// editAnimation(name) opens an animation on the workbench.
func (e *Executor) editAnimation(L *lua.LState) int {
	e.apply(L, document.EditAnimation{Name: L.CheckString(1)})
	return 0
}

// addKeyframe(path [, index]) inserts a keyframe into the workbench
// animation; index defaults to the end and is 1-based, like Lua tables.
func (e *Executor) addKeyframe(L *lua.LState) int {
	path := L.CheckString(1)
	index := -1
	if L.GetTop() >= 2 {
		index = L.CheckInt(2) - 1
	}
	if index < 0 {
		item, ok := e.doc.View.WorkbenchItem.(document.WorkbenchAnimation)
		if !ok {
			L.RaiseError("add_keyframe: %v", document.ErrNotEditingAnimation)
			return 0
		}
		animation := e.doc.Sheet.Animation(item.Name)
		if animation == nil {
			L.RaiseError("add_keyframe: %v", document.ErrAnimationNotInDocument)
			return 0
		}
		index = animation.NumKeyframes()
	}
	e.apply(L, document.InsertKeyframesBefore{Paths: []string{path}, Index: index})
	return 0
}

// selectKeyframes(i, ...) selects 1-based timeline indexes.
func (e *Executor) selectKeyframes(L *lua.LState) int {
	indexes := make([]int, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		indexes = append(indexes, L.CheckInt(i)-1)
	}
	e.apply(L, document.SelectKeyframes{Indexes: document.NewMultiSelection(indexes...)})
	return 0
}

func (e *Executor) toggleLooping(L *lua.LState) int {
	e.apply(L, document.ToggleLooping{})
	return 0
}

func (e *Executor) deleteSelection(L *lua.LState) int {
	e.apply(L, document.DeleteSelection{})
	return 0
}

func (e *Executor) undo(L *lua.LState) int {
	e.apply(L, document.Undo{})
	return 0
}

func (e *Executor) redo(L *lua.LState) int {
	e.apply(L, document.Redo{})
	return 0
}

// frames() returns the frame paths as a Lua array.
func (e *Executor) frames(L *lua.LState) int {
	table := L.NewTable()
	for _, path := range e.doc.Sheet.FramePaths() {
		table.Append(lua.LString(path))
	}
	L.Push(table)
	return 1
}

// animations() returns the animation names as a Lua array.
func (e *Executor) animations(L *lua.LState) int {
	table := L.NewTable()
	for _, name := range e.doc.Sheet.AnimationNames() {
		table.Append(lua.LString(name))
	}
	L.Push(table)
	return 1
}

// version() returns the document's content version.
func (e *Executor) version(L *lua.LState) int {
	L.Push(lua.LNumber(e.doc.Version()))
	return 1
}
