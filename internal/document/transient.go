package document

import "github.com/dshills/spritestorm/internal/sheet"

// Transient is the short-lived interaction in progress, if any. Exactly one
// may be active at a time; while one is active, history recording is
// suspended, and any command that is not transient-compatible clears it.
type Transient interface {
	isTransient()
}

// ContentFramesDrag is a drag of frames from the content list toward the
// timeline. The drop target is resolved by the drop command itself.
type ContentFramesDrag struct{}

// TimelineFrameDrag is a reorder drag of the selected keyframes within the
// timeline.
type TimelineFrameDrag struct{}

// HitboxPositionDrag moves the selected hitboxes. It captures each hitbox's
// starting position so every update recomputes from the drag origin.
type HitboxPositionDrag struct {
	InitialPositions map[string]sheet.Point
}

// HitboxSizeDrag resizes the selected hitboxes from one of the eight
// directional handles, starting from each hitbox's captured rectangle.
type HitboxSizeDrag struct {
	Axis         ResizeAxis
	InitialRects map[string]sheet.Rect
}

// KeyframePositionDrag moves the selected keyframes' render offsets.
type KeyframePositionDrag struct {
	InitialOffsets map[int]sheet.Point
}

// KeyframeDurationDrag stretches the selected keyframes' durations by
// dragging one keyframe's right edge, measured against a reference clock.
type KeyframeDurationDrag struct {
	InitialDurations map[int]int
	DraggedIndex     int
	ReferenceClock   int
}

// TimelineScrub is a drag of the timeline playhead.
type TimelineScrub struct{}

// Rename stages a new name for the last-touched selected item; it is
// committed on end and discarded on cancel.
type Rename struct {
	NewName string
}

func (ContentFramesDrag) isTransient()    {}
func (TimelineFrameDrag) isTransient()    {}
func (HitboxPositionDrag) isTransient()   {}
func (HitboxSizeDrag) isTransient()       {}
func (KeyframePositionDrag) isTransient() {}
func (KeyframeDurationDrag) isTransient() {}
func (TimelineScrub) isTransient()        {}
func (Rename) isTransient()               {}

// ResizeAxis is one of the eight directional hitbox resize handles.
type ResizeAxis int

// Resize handles.
const (
	ResizeN ResizeAxis = iota
	ResizeS
	ResizeE
	ResizeW
	ResizeNE
	ResizeNW
	ResizeSE
	ResizeSW
)

// IsDiagonal reports whether the handle resizes both axes.
func (a ResizeAxis) IsDiagonal() bool {
	switch a {
	case ResizeNE, ResizeNW, ResizeSE, ResizeSW:
		return true
	default:
		return false
	}
}
