package document

import (
	"path/filepath"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walk.sheet")

	d := newTestDocument(t)
	d.Path = path
	if err := Save(d.Sheet, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !reopened.IsSaved() {
		t.Errorf("freshly opened document should report saved")
	}
	if !reopened.Sheet.HasAnimation("Walk") {
		t.Errorf("animations after round trip: %v", reopened.Sheet.AnimationNames())
	}
	if got := len(reopened.Sheet.Frames); got != 3 {
		t.Errorf("frames after round trip = %d, want 3", got)
	}

	// Frame paths come back absolute, anchored at the document directory.
	for _, framePath := range reopened.Sheet.FramePaths() {
		if !filepath.IsAbs(framePath) {
			t.Errorf("frame path %q is not absolute", framePath)
		}
	}

	// Undoing past the seed entry is impossible: disk content is the floor.
	if reopened.CanUndo() {
		t.Errorf("opened document should have no undo history")
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.sheet")); err == nil {
		t.Fatal("opening a missing file should fail")
	}
}

func TestDisplayName(t *testing.T) {
	d := New("/projects/hero/walk.sheet")
	if got := d.DisplayName(); got != "walk.sheet" {
		t.Errorf("DisplayName = %q, want walk.sheet", got)
	}
}

func TestSnapshotDiff(t *testing.T) {
	d := newTestDocument(t)
	before := d.Snapshot()

	mustApply(t, d, EndImport{Path: "/assets/d.png"})
	diff := DiffSnapshots(before, d.Snapshot())
	if !diff.Content {
		t.Errorf("content change not reported: %+v", diff)
	}
	if diff.Workbench || diff.Timeline {
		t.Errorf("unrelated facets reported changed: %+v", diff)
	}

	before = d.Snapshot()
	openWalk(t, d)
	diff = DiffSnapshots(before, d.Snapshot())
	if !diff.Workbench || diff.Content {
		t.Errorf("workbench change misreported: %+v", diff)
	}

	before = d.Snapshot()
	diff = DiffSnapshots(before, d.Snapshot())
	if diff.Any() {
		t.Errorf("identical snapshots reported a diff: %+v", diff)
	}
}
