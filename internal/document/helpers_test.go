package document

import (
	"testing"
	"time"

	"github.com/dshills/spritestorm/internal/sheet"
)

// newTestDocument builds a document with three frames and a three-keyframe
// animation named "Walk" (100ms each), reseeded so history starts from this
// content.
func newTestDocument(t *testing.T) *Document {
	t.Helper()
	d := New("/assets/walk.sheet")
	d.Sheet.AddFrame("/assets/a.png")
	d.Sheet.AddFrame("/assets/b.png")
	d.Sheet.AddFrame("/assets/c.png")

	animation := d.Sheet.AddAnimation()
	if err := d.Sheet.RenameAnimation(animation.Name, "Walk"); err != nil {
		t.Fatalf("RenameAnimation: %v", err)
	}
	animation.IsLooping = false
	for i, path := range []string{"/assets/a.png", "/assets/b.png", "/assets/c.png"} {
		if err := animation.CreateKeyframe(path, i); err != nil {
			t.Fatalf("CreateKeyframe: %v", err)
		}
	}

	d.history[0] = historyEntry{sheet: d.Sheet.Clone(), view: d.View.Clone()}
	return d
}

// openWalk opens the Walk animation on the workbench.
func openWalk(t *testing.T, d *Document) {
	t.Helper()
	if err := d.Apply(EditAnimation{Name: "Walk"}); err != nil {
		t.Fatalf("EditAnimation: %v", err)
	}
}

func mustApply(t *testing.T, d *Document, commands ...Command) {
	t.Helper()
	for _, command := range commands {
		if err := d.Apply(command); err != nil {
			t.Fatalf("Apply(%s): %v", command.CommandName(), err)
		}
	}
}

func walkKeyframe(t *testing.T, d *Document, index int) *sheet.Keyframe {
	t.Helper()
	keyframe := d.Sheet.Animation("Walk").Keyframe(index)
	if keyframe == nil {
		t.Fatalf("no keyframe at index %d", index)
	}
	return keyframe
}

func millis(n int) time.Duration { return time.Duration(n) * time.Millisecond }
