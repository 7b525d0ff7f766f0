package document

import (
	"testing"

	"github.com/dshills/spritestorm/internal/sheet"
)

func TestFailedCommandLeavesDocumentUnchanged(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(0, 1)})

	sheetBefore := d.Sheet.Clone()
	viewBefore := d.View.Clone()

	failing := []Command{
		SelectFrames{Paths: NewMultiSelection("/assets/missing.png")},
		EditAnimation{Name: "Missing"},
		InsertKeyframesBefore{Paths: []string{"/assets/a.png"}, Index: 99},
		ReorderKeyframes{Index: -1},
		UpdateHitboxDrag{Delta: Vec{X: 1}},
		EndRenameSelection{},
	}
	for _, command := range failing {
		if err := d.Apply(command); err == nil {
			t.Errorf("Apply(%s) unexpectedly succeeded", command.CommandName())
			continue
		}
		if !d.Sheet.Equal(sheetBefore) {
			t.Fatalf("Apply(%s) failed but mutated the sheet", command.CommandName())
		}
		if !d.View.Equal(viewBefore) {
			t.Fatalf("Apply(%s) failed but mutated the view", command.CommandName())
		}
	}
}

func TestTransientClearedByUnrelatedCommand(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, BeginScrub{})
	if _, ok := d.Transient.(TimelineScrub); !ok {
		t.Fatalf("transient = %T, want TimelineScrub", d.Transient)
	}

	// Zooming is transient-compatible; a structural edit is not.
	mustApply(t, d, WorkbenchZoomIn{})
	if _, ok := d.Transient.(TimelineScrub); !ok {
		t.Errorf("zoom should not abort the scrub")
	}

	mustApply(t, d, ToggleLooping{})
	if d.Transient != nil {
		t.Errorf("structural edit should clear the transient, got %T", d.Transient)
	}
}

func TestHistorySuspendedDuringInteraction(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	keyframe := walkKeyframe(t, d, 0)
	hitbox := keyframe.AddHitbox()
	mustApply(t, d, SelectHitboxes{Names: NewMultiSelection(hitbox.Name)})
	entries := d.HistoryLen()

	// A drag produces many content mutations but only the entry recorded
	// when the interaction ends.
	mustApply(t, d,
		BeginHitboxDrag{},
		UpdateHitboxDrag{Delta: Vec{X: 4}, BothAxes: true},
		UpdateHitboxDrag{Delta: Vec{X: 8}, BothAxes: true},
		UpdateHitboxDrag{Delta: Vec{X: 12}, BothAxes: true},
	)
	if got := d.HistoryLen(); got != entries {
		t.Fatalf("history grew by %d during the drag", got-entries)
	}

	mustApply(t, d, EndHitboxDrag{})
	if got := d.HistoryLen(); got != entries+1 {
		t.Errorf("ending the drag recorded %d entries, want 1", got-entries)
	}
	if got := hitbox.Position(); got != (sheet.Point{X: 3}) {
		t.Errorf("position = %v, want {3 0}", got)
	}
}

func TestMarkAsSaved(t *testing.T) {
	d := newTestDocument(t)
	mustApply(t, d, EndImport{Path: "/assets/d.png"})
	if d.IsSaved() {
		t.Fatal("document with unsaved content reported saved")
	}

	mustApply(t, d, MarkAsSaved{Version: d.Version()})
	if !d.IsSaved() {
		t.Errorf("document should report saved at its disk version")
	}

	mustApply(t, d, Undo{})
	if d.IsSaved() {
		t.Errorf("undo moved off the disk version, should report unsaved")
	}
}

func TestCloseFlow(t *testing.T) {
	d := newTestDocument(t)
	mustApply(t, d, MarkAsSaved{Version: d.Version()}, Close{})
	if !d.CloseAllowed() {
		t.Fatal("closing a saved document should be allowed immediately")
	}

	d = newTestDocument(t)
	mustApply(t, d, EndImport{Path: "/assets/d.png"}, Close{})
	if d.Persistent.CloseState != CloseStateRequested {
		t.Fatalf("close state = %v, want Requested", d.Persistent.CloseState)
	}

	mustApply(t, d, CancelClose{})
	if d.Persistent.CloseState != CloseStateNone {
		t.Fatalf("cancel did not reset the close state")
	}

	mustApply(t, d, Close{}, CloseAfterSaving{})
	if d.Persistent.CloseState != CloseStateSaving {
		t.Fatalf("close state = %v, want Saving", d.Persistent.CloseState)
	}

	// Tick resolves Saving once the disk version catches up.
	mustApply(t, d, MarkAsSaved{Version: d.Version()})
	d.Tick(millis(16))
	if !d.CloseAllowed() {
		t.Errorf("saving close should resolve to allowed after the save lands")
	}
}

func TestExportSettingsStaging(t *testing.T) {
	d := newTestDocument(t)
	mustApply(t, d,
		BeginExportAs{},
		SetExportTemplateFile{Path: "/templates/atlas.template"},
		SetExportTextureFile{Path: "/out/walk.png"},
		SetExportMetadataFile{Path: "/out/walk.json"},
		SetExportMetadataPathsRoot{Path: "/out"},
	)
	if d.Sheet.ExportSettings != nil {
		t.Fatal("staged settings leaked onto the sheet before EndExportAs")
	}

	mustApply(t, d, EndExportAs{})
	settings := d.Sheet.ExportSettings
	if settings == nil || settings.TextureFile != "/out/walk.png" {
		t.Fatalf("export settings not committed: %+v", settings)
	}
	if d.Persistent.ExportSettingsEdit != nil {
		t.Errorf("staging area should be cleared after commit")
	}

	mustApply(t, d, BeginExportAs{}, SetExportTextureFile{Path: "/tmp/other.png"}, CancelExportAs{})
	if d.Sheet.ExportSettings.TextureFile != "/out/walk.png" {
		t.Errorf("cancel should discard staged edits")
	}

	if err := d.Apply(SetExportTextureFile{Path: "/nope.png"}); err != ErrNotExporting {
		t.Errorf("edit without staging: err = %v, want ErrNotExporting", err)
	}
}
