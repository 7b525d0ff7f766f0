package document

import (
	"testing"

	"github.com/dshills/spritestorm/internal/sheet"
)

func TestKeyframeDurationDragDistributesDelta(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(0, 1, 2)})

	// Dragging the right edge of the last of three selected 100ms keyframes
	// spreads the 90ms of cursor travel as 30ms per keyframe.
	mustApply(t, d,
		BeginKeyframeDurationDrag{Index: 2, ReferenceClock: 300},
		UpdateKeyframeDurationDrag{ClockAtCursor: 390, MinimumMillis: 20},
	)
	for i := 0; i < 3; i++ {
		if got := walkKeyframe(t, d, i).DurationMillis; got != 130 {
			t.Errorf("keyframe %d duration = %d, want 130", i, got)
		}
	}
	// Playhead follows the anchor keyframe's new start time.
	if d.View.TimelineClock != millis(260) {
		t.Errorf("clock = %v, want 260ms", d.View.TimelineClock)
	}
}

func TestKeyframeDurationDragClampsToMinimum(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(1)})

	mustApply(t, d,
		BeginKeyframeDurationDrag{Index: 1, ReferenceClock: 200},
		UpdateKeyframeDurationDrag{ClockAtCursor: 0, MinimumMillis: 20},
	)
	if got := walkKeyframe(t, d, 1).DurationMillis; got != 20 {
		t.Errorf("duration = %d, want clamp at 20", got)
	}
}

func TestKeyframeDurationDragRecomputesFromOrigin(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(0)})

	mustApply(t, d, BeginKeyframeDurationDrag{Index: 0, ReferenceClock: 100})
	// Two updates do not accumulate: each measures against the drag origin.
	mustApply(t, d,
		UpdateKeyframeDurationDrag{ClockAtCursor: 150, MinimumMillis: 20},
		UpdateKeyframeDurationDrag{ClockAtCursor: 160, MinimumMillis: 20},
	)
	if got := walkKeyframe(t, d, 0).DurationMillis; got != 160 {
		t.Errorf("duration = %d, want 160", got)
	}
}

func TestKeyframeOffsetDragLocksAxis(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(1)})

	// Default workbench zoom is 4x, so 40 screen pixels are 10 sheet pixels.
	mustApply(t, d,
		BeginKeyframeOffsetDrag{},
		UpdateKeyframeOffsetDrag{Delta: Vec{X: 40, Y: 10}},
	)
	if got := walkKeyframe(t, d, 1).Offset; got != (sheet.Point{X: 10}) {
		t.Errorf("axis-locked offset = %v, want {10 0}", got)
	}

	mustApply(t, d, UpdateKeyframeOffsetDrag{Delta: Vec{X: 40, Y: 10}, BothAxes: true})
	if got := walkKeyframe(t, d, 1).Offset; got != (sheet.Point{X: 10, Y: 2}) {
		t.Errorf("free offset = %v, want {10 2}", got)
	}
}

func TestCreateHitboxEntersResize(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	mustApply(t, d, CreateHitbox{Position: sheet.Point{X: 8, Y: 6}})

	keyframe := walkKeyframe(t, d, 0)
	hitbox := keyframe.Hitbox("New Hitbox")
	if hitbox == nil {
		t.Fatal("hitbox was not created")
	}
	if hitbox.Position() != (sheet.Point{X: 8, Y: 6}) {
		t.Errorf("position = %v, want {8 6}", hitbox.Position())
	}
	drag, ok := d.Transient.(HitboxSizeDrag)
	if !ok {
		t.Fatalf("transient = %T, want HitboxSizeDrag", d.Transient)
	}
	if drag.Axis != ResizeSE {
		t.Errorf("resize axis = %v, want SE", drag.Axis)
	}
	selection, ok := d.View.Selection.(HitboxSelection)
	if !ok || !selection.Names.Contains("New Hitbox") {
		t.Errorf("new hitbox should be selected, got %v", d.View.Selection)
	}
}

func TestHitboxResizeHandles(t *testing.T) {
	start := sheet.Rect{TopLeft: sheet.Point{X: 10, Y: 10}, Size: sheet.Size{W: 20, H: 10}}

	tests := []struct {
		name  string
		axis  ResizeAxis
		delta sheet.Point
		want  sheet.Rect
	}{
		{"SE grows both", ResizeSE, sheet.Point{X: 4, Y: 2},
			sheet.Rect{TopLeft: sheet.Point{X: 10, Y: 10}, Size: sheet.Size{W: 24, H: 12}}},
		{"NW moves origin", ResizeNW, sheet.Point{X: 2, Y: 2},
			sheet.Rect{TopLeft: sheet.Point{X: 12, Y: 12}, Size: sheet.Size{W: 18, H: 8}}},
		{"E only width", ResizeE, sheet.Point{X: 5, Y: 99},
			sheet.Rect{TopLeft: sheet.Point{X: 10, Y: 10}, Size: sheet.Size{W: 25, H: 10}}},
		{"N only top edge", ResizeN, sheet.Point{X: 99, Y: -3},
			sheet.Rect{TopLeft: sheet.Point{X: 10, Y: 7}, Size: sheet.Size{W: 20, H: 13}}},
		{"S past opposite edge renormalizes", ResizeS, sheet.Point{X: 0, Y: -15},
			sheet.Rect{TopLeft: sheet.Point{X: 10, Y: 5}, Size: sheet.Size{W: 20, H: 5}}},
	}
	for _, tt := range tests {
		got := resizeRect(start, tt.axis, tt.delta)
		if got != tt.want {
			t.Errorf("%s: resizeRect = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestHitboxResizePreservesAspect(t *testing.T) {
	start := sheet.Rect{Size: sheet.Size{W: 20, H: 10}}

	// At 1x zoom, a dominant 10px horizontal drag on the SE handle forces
	// the vertical component to 5px from the 2:1 aspect ratio.
	got := resizeDelta(Vec{X: 10, Y: 1}, start, ResizeSE, true, 1)
	if got != (sheet.Point{X: 10, Y: 5}) {
		t.Errorf("SE aspect delta = %v, want {10 5}", got)
	}

	// NE mirrors the vertical axis.
	got = resizeDelta(Vec{X: 10, Y: 1}, start, ResizeNE, true, 1)
	if got != (sheet.Point{X: 10, Y: -5}) {
		t.Errorf("NE aspect delta = %v, want {10 -5}", got)
	}
}

func TestHitboxDragMovesSelection(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	keyframe := walkKeyframe(t, d, 0)
	hitbox := keyframe.AddHitbox()
	hitbox.SetRectangle(sheet.Rect{TopLeft: sheet.Point{X: 5, Y: 5}, Size: sheet.Size{W: 8, H: 8}})

	mustApply(t, d,
		SelectHitboxes{Names: NewMultiSelection(hitbox.Name)},
		BeginHitboxDrag{},
		UpdateHitboxDrag{Delta: Vec{X: -8, Y: 0}, BothAxes: true},
	)
	if got := hitbox.Position(); got != (sheet.Point{X: 3, Y: 5}) {
		t.Errorf("position = %v, want {3 5}", got)
	}
	if got := hitbox.Rectangle().Size; got != (sheet.Size{W: 8, H: 8}) {
		t.Errorf("drag changed size to %v", got)
	}
}

func TestNudgeSelection(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	keyframe := walkKeyframe(t, d, 0)
	hitbox := keyframe.AddHitbox()

	mustApply(t, d,
		SelectHitboxes{Names: NewMultiSelection(hitbox.Name)},
		NudgeSelection{Direction: sheet.Point{X: 1}},
		NudgeSelection{Direction: sheet.Point{Y: -1}, Large: true},
	)
	if got := hitbox.Position(); got != (sheet.Point{X: 1, Y: -10}) {
		t.Errorf("position = %v, want {1 -10}", got)
	}
}

func TestDeleteSelectionClearsIt(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d,
		SelectKeyframes{Indexes: NewMultiSelection(0, 2)},
		DeleteSelection{},
	)

	animation := d.Sheet.Animation("Walk")
	if animation.NumKeyframes() != 1 {
		t.Fatalf("keyframes left = %d, want 1", animation.NumKeyframes())
	}
	if animation.Keyframe(0).Frame != "/assets/b.png" {
		t.Errorf("surviving keyframe = %q, want b.png", animation.Keyframe(0).Frame)
	}
	if d.View.Selection != nil {
		t.Errorf("selection should be cleared after delete")
	}
}

func TestInsertKeyframesBefore(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	mustApply(t, d, InsertKeyframesBefore{
		Paths: []string{"/assets/c.png", "/assets/a.png"},
		Index: 1,
	})

	animation := d.Sheet.Animation("Walk")
	want := []string{"/assets/a.png", "/assets/c.png", "/assets/a.png", "/assets/b.png", "/assets/c.png"}
	for i, path := range want {
		if got := animation.Keyframe(i).Frame; got != path {
			t.Errorf("timeline[%d] = %q, want %q", i, got, path)
		}
	}
	selection, ok := d.View.Selection.(KeyframeSelection)
	if !ok {
		t.Fatalf("selection = %T, want KeyframeSelection", d.View.Selection)
	}
	if !selection.Indexes.Contains(1) || !selection.Indexes.Contains(2) {
		t.Errorf("inserted keyframes should be selected, got %v", selection.Indexes)
	}
}

func TestReorderKeyframes(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	// Move the first keyframe to the end of the timeline.
	mustApply(t, d,
		SelectKeyframes{Indexes: NewMultiSelection(0)},
		BeginKeyframeDrag{},
		ReorderKeyframes{Index: 3},
	)

	animation := d.Sheet.Animation("Walk")
	want := []string{"/assets/b.png", "/assets/c.png", "/assets/a.png"}
	for i, path := range want {
		if got := animation.Keyframe(i).Frame; got != path {
			t.Errorf("timeline[%d] = %q, want %q", i, got, path)
		}
	}
	selection, ok := d.View.Selection.(KeyframeSelection)
	if !ok || !selection.Indexes.Contains(2) {
		t.Errorf("moved keyframe should be selected at its new index")
	}
}

func TestScrubSelectsKeyframeUnderPlayhead(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	mustApply(t, d, BeginScrub{}, UpdateScrub{Time: millis(150)})
	selection, ok := d.View.Selection.(KeyframeSelection)
	if !ok || !selection.Indexes.Contains(1) {
		t.Fatalf("scrub to 150ms should select keyframe 1, got %v", d.View.Selection)
	}
	if d.View.TimelineClock != millis(150) {
		t.Errorf("clock = %v, want 150ms", d.View.TimelineClock)
	}

	empty := d.Sheet.AddAnimation()
	mustApply(t, d, EditAnimation{Name: empty.Name})
	if err := d.Apply(UpdateScrub{Time: millis(50)}); err != ErrNoKeyframeForTime {
		t.Errorf("scrub on an empty timeline: err = %v, want ErrNoKeyframeForTime", err)
	}
}

func TestSnapToAdjacentFrames(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, BeginScrub{}, UpdateScrub{Time: millis(150)}, EndScrub{})

	mustApply(t, d, SnapToNextFrame{})
	if d.View.TimelineClock != millis(200) {
		t.Errorf("snap next: clock = %v, want 200ms", d.View.TimelineClock)
	}

	mustApply(t, d, SnapToPreviousFrame{}, SnapToPreviousFrame{})
	if d.View.TimelineClock != millis(0) {
		t.Errorf("snap previous twice: clock = %v, want 0", d.View.TimelineClock)
	}
}

func TestTogglePlaybackRewindsAtEnd(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	mustApply(t, d, TogglePlayback{})
	if !d.Persistent.TimelineIsPlaying {
		t.Fatal("playback did not start")
	}
	d.Tick(millis(1000))
	if d.Persistent.TimelineIsPlaying {
		t.Fatal("non-looping playback should stop at the end")
	}
	if d.View.TimelineClock != millis(300) {
		t.Fatalf("clock = %v, want 300ms at end", d.View.TimelineClock)
	}

	mustApply(t, d, TogglePlayback{})
	if d.View.TimelineClock != 0 {
		t.Errorf("restarting at the end should rewind, clock = %v", d.View.TimelineClock)
	}
}

func TestTickLoopsWhenLooping(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, ToggleLooping{}, TogglePlayback{})

	d.Tick(millis(450))
	if !d.Persistent.TimelineIsPlaying {
		t.Fatal("looping playback should keep playing")
	}
	if d.View.TimelineClock != millis(150) {
		t.Errorf("clock = %v, want 150ms after wrapping", d.View.TimelineClock)
	}
}

func TestRenameAnimationFlow(t *testing.T) {
	d := newTestDocument(t)
	mustApply(t, d,
		SelectAnimations{Names: NewMultiSelection("Walk")},
		BeginRenameSelection{},
		UpdateRenameSelection{NewName: "Run"},
	)
	openWalkTransient, ok := d.Transient.(Rename)
	if !ok || openWalkTransient.NewName != "Run" {
		t.Fatalf("transient = %v, want staged rename to Run", d.Transient)
	}

	mustApply(t, d, EndRenameSelection{})
	if d.Transient != nil {
		t.Errorf("rename should clear the transient")
	}
	if !d.Sheet.HasAnimation("Run") || d.Sheet.HasAnimation("Walk") {
		t.Errorf("animation was not renamed: %v", d.Sheet.AnimationNames())
	}
	selection, ok := d.View.Selection.(AnimationSelection)
	if !ok || !selection.Names.Contains("Run") {
		t.Errorf("renamed animation should stay selected")
	}
}

func TestRenameCollisionFails(t *testing.T) {
	d := newTestDocument(t)
	other := d.Sheet.AddAnimation()

	mustApply(t, d,
		SelectAnimations{Names: NewMultiSelection("Walk")},
		BeginRenameSelection{},
		UpdateRenameSelection{NewName: other.Name},
	)
	if err := d.Apply(EndRenameSelection{}); err != ErrAnimationAlreadyExists {
		t.Fatalf("colliding rename: err = %v, want ErrAnimationAlreadyExists", err)
	}
	if !d.Sheet.HasAnimation("Walk") {
		t.Errorf("failed rename must leave the original name")
	}
}

func TestCreateAnimationBeginsRename(t *testing.T) {
	d := newTestDocument(t)
	mustApply(t, d, CreateAnimation{})

	if !d.Sheet.HasAnimation("New Animation") {
		t.Fatalf("animations = %v, want a new auto-named one", d.Sheet.AnimationNames())
	}
	if _, ok := d.Transient.(Rename); !ok {
		t.Errorf("transient = %T, want Rename", d.Transient)
	}
	if d.View.WorkbenchItem != (WorkbenchAnimation{Name: "New Animation"}) {
		t.Errorf("new animation should open on the workbench")
	}
}
