package document

import (
	"errors"
	"reflect"
	"testing"
)

func TestProcessClickReplace(t *testing.T) {
	ordered := []string{"a", "b", "c", "d", "e"}
	previous := NewMultiSelection("a", "b")

	got := ProcessClick("d", false, false, ordered, &previous)
	want := NewMultiSelection("d")
	if !got.Equal(want) {
		t.Errorf("plain click = %v, want %v", got, want)
	}
}

func TestProcessClickShiftRange(t *testing.T) {
	ordered := []string{"a", "b", "c", "d", "e"}
	previous := NewMultiSelection("a", "b", "c")
	previous.LastTouched = "c"

	got := ProcessClick("e", true, false, ordered, &previous)

	items := got.Slice(func(a, b string) bool { return a < b })
	if want := []string{"c", "d", "e"}; !reflect.DeepEqual(items, want) {
		t.Errorf("shift-click items = %v, want %v", items, want)
	}
	if got.LastTouched != "e" {
		t.Errorf("shift-click anchor = %q, want %q", got.LastTouched, "e")
	}
}

func TestProcessClickShiftRangeBackwards(t *testing.T) {
	ordered := []int{0, 1, 2, 3, 4}
	previous := NewMultiSelection(3)

	got := ProcessClick(1, true, false, ordered, &previous)

	items := got.Slice(func(a, b int) bool { return a < b })
	if want := []int{1, 2, 3}; !reflect.DeepEqual(items, want) {
		t.Errorf("backwards shift-click items = %v, want %v", items, want)
	}
	if got.LastTouched != 1 {
		t.Errorf("anchor = %d, want 1", got.LastTouched)
	}
}

func TestProcessClickShiftWithoutPrevious(t *testing.T) {
	got := ProcessClick("b", true, false, []string{"a", "b"}, nil)
	if !got.Equal(NewMultiSelection("b")) {
		t.Errorf("shift-click with no previous selection = %v, want just b", got)
	}
}

func TestProcessClickCtrlToggle(t *testing.T) {
	ordered := []string{"a", "b", "c"}
	previous := NewMultiSelection("a", "b")

	added := ProcessClick("c", false, true, ordered, &previous)
	if !added.Contains("a") || !added.Contains("b") || !added.Contains("c") {
		t.Errorf("ctrl-click add = %v, want a b c", added)
	}
	if added.LastTouched != "c" {
		t.Errorf("anchor after add = %q, want c", added.LastTouched)
	}

	removed := ProcessClick("b", false, true, ordered, &added)
	if removed.Contains("b") {
		t.Errorf("ctrl-click on selected item should deselect it")
	}
	if removed.LastTouched != "b" {
		t.Errorf("anchor after remove = %q, want b", removed.LastTouched)
	}
}

func TestSelectFramesValidatesMembership(t *testing.T) {
	d := newTestDocument(t)

	if err := d.Apply(SelectFrames{Paths: NewMultiSelection("/assets/missing.png")}); err != ErrFrameNotInDocument {
		t.Fatalf("selecting unknown frame: err = %v, want ErrFrameNotInDocument", err)
	}
	if d.View.Selection != nil {
		t.Errorf("failed selection should leave selection empty")
	}

	mustApply(t, d, SelectFrames{Paths: NewMultiSelection("/assets/a.png", "/assets/b.png")})
	selection, ok := d.View.Selection.(FrameSelection)
	if !ok {
		t.Fatalf("selection = %T, want FrameSelection", d.View.Selection)
	}
	if len(selection.Paths.Items) != 2 {
		t.Errorf("selected %d frames, want 2", len(selection.Paths.Items))
	}
}

func TestSelectEmptyClearsSelection(t *testing.T) {
	d := newTestDocument(t)
	mustApply(t, d, SelectAnimations{Names: NewMultiSelection("Walk")})

	mustApply(t, d, SelectAnimations{Names: NewMultiSelection[string]()})
	if d.View.Selection != nil {
		t.Errorf("empty selection should clear to none, got %T", d.View.Selection)
	}
}

func TestSelectKeyframesSnapsClock(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	// Keyframe starts: 0, 100, 200. Playhead at 0 is outside keyframe 2.
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(2)})
	if d.View.TimelineClock != millis(200) {
		t.Errorf("clock = %v, want 200ms", d.View.TimelineClock)
	}

	// Selecting the keyframe already under the playhead keeps the clock.
	mustApply(t, d, UpdateScrub{Time: millis(250)})
	mustApply(t, d, EndScrub{}, SelectKeyframes{Indexes: NewMultiSelection(2)})
	if d.View.TimelineClock != millis(250) {
		t.Errorf("clock = %v, want 250ms", d.View.TimelineClock)
	}
}

func TestSelectKeyframesRejectsOutOfRangeAnchor(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)
	mustApply(t, d, SelectKeyframes{Indexes: NewMultiSelection(1)})

	// Valid items with an anchor past the three-keyframe timeline.
	indexes := NewMultiSelection(0)
	indexes.LastTouched = 7
	if err := d.Apply(SelectKeyframes{Indexes: indexes}); !errors.Is(err, ErrInvalidKeyframeIndex) {
		t.Fatalf("Apply = %v, want ErrInvalidKeyframeIndex", err)
	}

	selection, ok := d.View.Selection.(KeyframeSelection)
	if !ok {
		t.Fatalf("selection = %T, want KeyframeSelection", d.View.Selection)
	}
	if _, still := selection.Indexes.Items[1]; !still || selection.Indexes.LastTouched != 1 {
		t.Errorf("failed selection mutated the view: %v", selection.Indexes)
	}
}

func TestSelectHitboxesSkipsLocked(t *testing.T) {
	d := newTestDocument(t)
	openWalk(t, d)

	keyframe := walkKeyframe(t, d, 0)
	open := keyframe.AddHitbox()
	locked := keyframe.AddHitbox()
	locked.Locked = true

	mustApply(t, d, SelectHitboxes{Names: NewMultiSelection(open.Name, locked.Name)})
	selection, ok := d.View.Selection.(HitboxSelection)
	if !ok {
		t.Fatalf("selection = %T, want HitboxSelection", d.View.Selection)
	}
	names := selection.Names.Slice(func(a, b string) bool { return a < b })
	if len(names) != 1 || names[0] != open.Name {
		t.Errorf("selected %v, want only %q", names, open.Name)
	}
}
