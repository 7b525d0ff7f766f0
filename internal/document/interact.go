package document

import (
	"math"
	"time"

	"github.com/dshills/spritestorm/internal/sheet"
)

func (d *Document) beginFramesDrag() error {
	paths, err := d.selectedFramePaths()
	if err != nil {
		return err
	}
	for path := range paths.Items {
		if !d.Sheet.HasFrame(path) {
			return ErrFrameNotInDocument
		}
	}
	d.Transient = ContentFramesDrag{}
	return nil
}

func (d *Document) beginKeyframeDrag() error {
	if _, err := d.selectedKeyframeIndexes(); err != nil {
		return err
	}
	if _, err := d.workbenchAnimation(); err != nil {
		return err
	}
	d.Transient = TimelineFrameDrag{}
	return nil
}

// beginKeyframeOffsetDrag captures the selected keyframes' offsets so every
// update recomputes from the drag origin rather than accumulating deltas.
func (d *Document) beginKeyframeOffsetDrag() error {
	indexes, err := d.selectedKeyframeIndexes()
	if err != nil {
		return err
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	initial := make(map[int]sheet.Point, len(indexes.Items))
	for index := range indexes.Items {
		keyframe := animation.Keyframe(index)
		if keyframe == nil {
			return ErrInvalidKeyframeIndex
		}
		initial[index] = keyframe.Offset
	}
	d.Transient = KeyframePositionDrag{InitialOffsets: initial}
	return nil
}

func (d *Document) updateKeyframeOffsetDrag(delta Vec, bothAxes bool) error {
	drag, ok := d.Transient.(KeyframePositionDrag)
	if !ok {
		return ErrNotAdjustingKeyframePosition
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	for index := range drag.InitialOffsets {
		if animation.Keyframe(index) == nil {
			return ErrInvalidKeyframeIndex
		}
	}

	zoom := d.View.WorkbenchZoom()
	locked := lockAxis(delta, bothAxes)
	for index, start := range drag.InitialOffsets {
		animation.Keyframe(index).Offset = sheet.Point{
			X: int(math.Floor(float64(start.X) + locked.X/zoom)),
			Y: int(math.Floor(float64(start.Y) + locked.Y/zoom)),
		}
	}
	return nil
}

// beginKeyframeDurationDrag stretches durations by dragging the right edge of
// the keyframe at index. The clock value under the cursor at drag start is
// the reference every update measures against.
func (d *Document) beginKeyframeDurationDrag(index, referenceClock int) error {
	indexes, err := d.selectedKeyframeIndexes()
	if err != nil {
		return err
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	if animation.Keyframe(index) == nil {
		return ErrInvalidKeyframeIndex
	}
	initial := make(map[int]int, len(indexes.Items))
	for selected := range indexes.Items {
		keyframe := animation.Keyframe(selected)
		if keyframe == nil {
			return ErrInvalidKeyframeIndex
		}
		initial[selected] = keyframe.DurationMillis
	}
	d.Transient = KeyframeDurationDrag{
		InitialDurations: initial,
		DraggedIndex:     index,
		ReferenceClock:   referenceClock,
	}
	return nil
}

// updateKeyframeDurationDrag distributes the cursor's clock delta evenly
// across the selected keyframes at or before the dragged one, so dragging the
// edge of the last of three selected keyframes stretches each by a third of
// the delta. Afterwards the playhead snaps to the anchor keyframe's start.
func (d *Document) updateKeyframeDurationDrag(clockAtCursor, minimumMillis int) error {
	drag, ok := d.Transient.(KeyframeDurationDrag)
	if !ok {
		return ErrNotAdjustingKeyframeDuration
	}
	indexes, err := d.selectedKeyframeIndexes()
	if err != nil {
		return err
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	for index := range indexes.Items {
		if animation.Keyframe(index) == nil {
			return ErrInvalidKeyframeIndex
		}
		if _, ok := drag.InitialDurations[index]; !ok {
			return ErrMissingDragData
		}
	}

	affected := 0
	for index := range indexes.Items {
		if index <= drag.DraggedIndex {
			affected++
		}
	}
	if affected < 1 {
		affected = 1
	}
	delta := (clockAtCursor - drag.ReferenceClock) / affected

	for index := range indexes.Items {
		duration := drag.InitialDurations[index] + delta
		if duration < minimumMillis {
			duration = minimumMillis
		}
		animation.Keyframe(index).DurationMillis = duration
	}

	times := animation.KeyframeTimes()
	anchor := indexes.LastTouched
	if anchor >= 0 && anchor < len(times) {
		d.View.TimelineClock = time.Duration(times[anchor]) * time.Millisecond
	}
	return nil
}

// createHitbox adds an auto-named hitbox at position on the keyframe under
// edit, selects it, and immediately starts resizing it from the SE handle so
// the creating drag sizes it.
func (d *Document) createHitbox(position sheet.Point) error {
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	hitbox := keyframe.AddHitbox()
	hitbox.SetPosition(position)
	if err := d.selectHitboxes(NewMultiSelection(hitbox.Name)); err != nil {
		return err
	}
	return d.beginHitboxResize(ResizeSE)
}

func (d *Document) beginHitboxResize(axis ResizeAxis) error {
	names, err := d.selectedHitboxNames()
	if err != nil {
		return err
	}
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	initial := make(map[string]sheet.Rect, len(names.Items))
	for name := range names.Items {
		hitbox := keyframe.Hitbox(name)
		if hitbox == nil {
			return ErrInvalidHitboxName
		}
		if hitbox.Locked {
			continue
		}
		initial[name] = hitbox.Rectangle()
	}
	d.Transient = HitboxSizeDrag{Axis: axis, InitialRects: initial}
	return nil
}

func (d *Document) updateHitboxResize(delta Vec, preserveAspect bool) error {
	drag, ok := d.Transient.(HitboxSizeDrag)
	if !ok {
		return ErrNotAdjustingHitboxSize
	}
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	for name := range drag.InitialRects {
		if keyframe.Hitbox(name) == nil {
			return ErrInvalidHitboxName
		}
	}

	zoom := d.View.WorkbenchZoom()
	for name, start := range drag.InitialRects {
		px := resizeDelta(delta, start, drag.Axis, preserveAspect, zoom)
		keyframe.Hitbox(name).SetRectangle(resizeRect(start, drag.Axis, px))
	}
	return nil
}

// resizeDelta converts a screen-space drag delta into sheet-space pixels for
// one hitbox, optionally constraining diagonal handles to the hitbox's
// starting aspect ratio.
func resizeDelta(delta Vec, start sheet.Rect, axis ResizeAxis, preserveAspect bool, zoom float64) sheet.Point {
	if preserveAspect && axis.IsDiagonal() {
		w := start.Size.W
		if w < 1 {
			w = 1
		}
		h := start.Size.H
		if h < 1 {
			h = 1
		}
		aspect := float64(w) / float64(h)
		// NE and SW mirror one axis, so the constrained axis flips sign.
		oddAxisFactor := 1.0
		if axis == ResizeNE || axis == ResizeSW {
			oddAxisFactor = -1.0
		}
		if math.Abs(delta.X) > math.Abs(delta.Y) {
			delta = Vec{X: delta.X, Y: oddAxisFactor * math.Round(delta.X/aspect)}
		} else {
			delta = Vec{X: oddAxisFactor * math.Round(delta.Y*aspect), Y: delta.Y}
		}
	}
	return sheet.Point{
		X: int(math.Round(delta.X / zoom)),
		Y: int(math.Round(delta.Y / zoom)),
	}
}

// resizeRect applies a directional handle drag to a starting rectangle. Each
// handle pins the opposite corner or edge; RectFromPoints renormalizes when
// the drag pushes a corner past the pinned one.
func resizeRect(start sheet.Rect, axis ResizeAxis, delta sheet.Point) sheet.Rect {
	origin := start.TopLeft
	max := sheet.Point{X: start.MaxX(), Y: start.MaxY()}
	bottomLeft := sheet.Point{X: start.MinX(), Y: start.MaxY()}
	topRight := sheet.Point{X: start.MaxX(), Y: start.MinY()}

	switch axis {
	case ResizeNW:
		return sheet.RectFromPoints(max, origin.Add(delta))
	case ResizeNE:
		return sheet.RectFromPoints(bottomLeft, topRight.Add(delta))
	case ResizeSW:
		return sheet.RectFromPoints(topRight, bottomLeft.Add(delta))
	case ResizeSE:
		return sheet.RectFromPoints(origin, max.Add(delta))
	case ResizeN:
		return sheet.RectFromPoints(bottomLeft, sheet.Point{X: max.X, Y: origin.Y + delta.Y})
	case ResizeS:
		return sheet.RectFromPoints(origin, sheet.Point{X: max.X, Y: max.Y + delta.Y})
	case ResizeW:
		return sheet.RectFromPoints(topRight, sheet.Point{X: origin.X + delta.X, Y: max.Y})
	case ResizeE:
		return sheet.RectFromPoints(origin, sheet.Point{X: max.X + delta.X, Y: max.Y})
	}
	return start
}

func (d *Document) beginHitboxDrag() error {
	names, err := d.selectedHitboxNames()
	if err != nil {
		return err
	}
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	initial := make(map[string]sheet.Point, len(names.Items))
	for name := range names.Items {
		hitbox := keyframe.Hitbox(name)
		if hitbox == nil {
			return ErrInvalidHitboxName
		}
		if hitbox.Locked {
			continue
		}
		initial[name] = hitbox.Position()
	}
	d.Transient = HitboxPositionDrag{InitialPositions: initial}
	return nil
}

func (d *Document) updateHitboxDrag(delta Vec, bothAxes bool) error {
	drag, ok := d.Transient.(HitboxPositionDrag)
	if !ok {
		return ErrNotAdjustingHitboxPosition
	}
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	for name := range drag.InitialPositions {
		if keyframe.Hitbox(name) == nil {
			return ErrInvalidHitboxName
		}
	}

	zoom := d.View.WorkbenchZoom()
	locked := lockAxis(delta, bothAxes)
	for name, start := range drag.InitialPositions {
		keyframe.Hitbox(name).SetPosition(sheet.Point{
			X: int(math.Floor(float64(start.X) + locked.X/zoom)),
			Y: int(math.Floor(float64(start.Y) + locked.Y/zoom)),
		})
	}
	return nil
}

// lockAxis zeroes the smaller-magnitude component of a drag delta unless the
// caller asked for free movement on both axes.
func lockAxis(delta Vec, bothAxes bool) Vec {
	if bothAxes {
		return delta
	}
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		return Vec{X: delta.X}
	}
	return Vec{Y: delta.Y}
}

// togglePlayback starts or stops the timeline. Starting at the end of a
// non-looping animation rewinds first, so play always produces motion.
func (d *Document) togglePlayback() error {
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	if d.Persistent.TimelineIsPlaying {
		d.Persistent.TimelineIsPlaying = false
		return nil
	}
	if durationMillis, ok := animation.DurationMillis(); ok && !animation.IsLooping {
		if d.View.TimelineClock >= time.Duration(durationMillis)*time.Millisecond {
			d.View.TimelineClock = 0
		}
	}
	d.Persistent.TimelineIsPlaying = true
	return nil
}

func (d *Document) toggleLooping() error {
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	animation.IsLooping = !animation.IsLooping
	return nil
}

func (d *Document) snapToPreviousFrame() error {
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	clockMillis := int(d.View.TimelineClock / time.Millisecond)
	target := 0
	for _, start := range animation.KeyframeTimes() {
		if start < clockMillis && start > target {
			target = start
		}
	}
	return d.updateScrub(time.Duration(target) * time.Millisecond)
}

func (d *Document) snapToNextFrame() error {
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	clockMillis := int(d.View.TimelineClock / time.Millisecond)
	target := clockMillis
	for _, start := range animation.KeyframeTimes() {
		if start > clockMillis && (target == clockMillis || start < target) {
			target = start
		}
	}
	return d.updateScrub(time.Duration(target) * time.Millisecond)
}

func (d *Document) beginScrub() error {
	if _, err := d.workbenchAnimation(); err != nil {
		return err
	}
	d.Transient = TimelineScrub{}
	return nil
}

// updateScrub moves the playhead and selects the keyframe under it.
func (d *Document) updateScrub(newTime time.Duration) error {
	if newTime < 0 {
		newTime = 0
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	index, keyframe := animation.KeyframeAt(newTime)
	if keyframe == nil {
		return ErrNoKeyframeForTime
	}
	if err := d.selectKeyframes(NewMultiSelection(index)); err != nil {
		return err
	}
	d.View.TimelineClock = newTime
	return nil
}
