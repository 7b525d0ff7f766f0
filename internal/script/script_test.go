package script

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dshills/spritestorm/internal/app"
	"github.com/dshills/spritestorm/internal/document"
)

func newTestExecutor(t *testing.T) (*Executor, *document.Document) {
	t.Helper()
	d := document.New("/tmp/scripted.sheet")
	e := New(d, app.NewLogger(app.LogLevelError, io.Discard))
	t.Cleanup(e.Close)
	return e, d
}

func TestBuildSheetFromScript(t *testing.T) {
	e, d := newTestExecutor(t)

	err := e.RunString(`
		sheet.import_frame("idle.png")
		sheet.import_frame("step.png")
		sheet.create_animation("Walk")
		sheet.add_keyframe("idle.png")
		sheet.add_keyframe("step.png")
		sheet.add_keyframe("idle.png", 1)
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}

	if got := d.Sheet.FramePaths(); len(got) != 2 {
		t.Fatalf("frame paths = %v, want 2 entries", got)
	}
	animation := d.Sheet.Animation("Walk")
	if animation == nil {
		t.Fatal("animation Walk not created")
	}
	if animation.NumKeyframes() != 3 {
		t.Fatalf("keyframes = %d, want 3", animation.NumKeyframes())
	}
	if animation.Timeline[0].Frame != "idle.png" {
		t.Fatalf("first keyframe = %q, want idle.png", animation.Timeline[0].Frame)
	}
}

func TestScriptQueries(t *testing.T) {
	e, _ := newTestExecutor(t)

	err := e.RunString(`
		local before = sheet.version()
		sheet.import_frame("a.png")
		sheet.create_animation("Run")
		local frames = sheet.frames()
		if #frames ~= 1 or frames[1] ~= "a.png" then
			error("unexpected frames")
		end
		local animations = sheet.animations()
		if #animations ~= 1 or animations[1] ~= "Run" then
			error("unexpected animations")
		end
		if sheet.version() == before then
			error("version did not advance")
		end
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
}

func TestScriptUndoRedo(t *testing.T) {
	e, d := newTestExecutor(t)

	err := e.RunString(`
		sheet.import_frame("a.png")
		sheet.undo()
		if #sheet.frames() ~= 0 then
			error("undo did not remove frame")
		end
		sheet.redo()
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if got := d.Sheet.FramePaths(); len(got) != 1 {
		t.Fatalf("frame paths = %v, want 1 entry after redo", got)
	}
}

func TestFailedCommandRaisesLuaError(t *testing.T) {
	e, _ := newTestExecutor(t)

	err := e.RunString(`sheet.edit_animation("Missing")`)
	if err == nil {
		t.Fatal("expected error for missing animation")
	}
	if !strings.Contains(err.Error(), "edit_animation") {
		t.Fatalf("error %q does not name the failing operation", err)
	}
}

func TestSandboxExcludesUnsafeLibraries(t *testing.T) {
	e, _ := newTestExecutor(t)

	err := e.RunString(`
		if io ~= nil then error("io is open") end
		if os ~= nil then error("os is open") end
		if debug ~= nil then error("debug is open") end
		if string.rep("x", 3) ~= "xxx" then error("string is closed") end
		if math.max(1, 2) ~= 2 then error("math is closed") end
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
}

func TestClosedExecutorRejectsScripts(t *testing.T) {
	e, _ := newTestExecutor(t)

	e.Close()
	if err := e.RunString(`return`); !errors.Is(err, ErrClosed) {
		t.Fatalf("RunString after Close = %v, want ErrClosed", err)
	}
	e.Close() // second close is a no-op
}
