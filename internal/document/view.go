package document

import "time"

// Vec is a 2D vector in screen space, used for pan offsets and mouse deltas.
type Vec struct {
	X float64
	Y float64
}

// Add returns v translated by w.
func (v Vec) Add(w Vec) Vec { return Vec{X: v.X + w.X, Y: v.Y + w.Y} }

// ContentTab identifies which content list is active.
type ContentTab int

// Content tabs.
const (
	ContentTabFrames ContentTab = iota
	ContentTabAnimations
)

// WorkbenchItem is the single frame or animation open for editing; the two
// are mutually exclusive.
type WorkbenchItem interface {
	isWorkbenchItem()
}

// WorkbenchFrame opens a frame on the workbench.
type WorkbenchFrame struct {
	Path string
}

// WorkbenchAnimation opens an animation on the workbench.
type WorkbenchAnimation struct {
	Name string
}

func (WorkbenchFrame) isWorkbenchItem()     {}
func (WorkbenchAnimation) isWorkbenchItem() {}

// Zoom level clamps. Levels are signed powers of two: level >= 1 means
// level-times magnification, level <= -1 means 1/|level| minification, and
// zero is skipped. Integer levels keep zoom stepping exact and reversible.
const (
	minWorkbenchZoomLevel = -4
	maxWorkbenchZoomLevel = 32
	minTimelineZoomLevel  = -4
	maxTimelineZoomLevel  = 4
)

// View is the non-content editing state recorded alongside the sheet in
// history: active tab, selection, workbench item, pan/zoom and the timeline
// playhead.
type View struct {
	ContentTab         ContentTab
	Selection          Selection
	WorkbenchItem      WorkbenchItem
	WorkbenchOffset    Vec
	WorkbenchZoomLevel int
	TimelineZoomLevel  int
	TimelineClock      time.Duration
}

// NewView returns the view state of a freshly created document.
func NewView() *View {
	return &View{
		ContentTab:         ContentTabFrames,
		WorkbenchZoomLevel: 4,
		TimelineZoomLevel:  1,
	}
}

// Clone returns a deep copy of the view.
func (v *View) Clone() *View {
	c := *v
	c.Selection = cloneSelection(v.Selection)
	return &c
}

// Equal reports structural equality. The history engine uses this to detect
// pure-navigation entries.
func (v *View) Equal(other *View) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.ContentTab == other.ContentTab &&
		v.WorkbenchItem == other.WorkbenchItem &&
		v.WorkbenchOffset == other.WorkbenchOffset &&
		v.WorkbenchZoomLevel == other.WorkbenchZoomLevel &&
		v.TimelineZoomLevel == other.TimelineZoomLevel &&
		v.TimelineClock == other.TimelineClock &&
		selectionsEqual(v.Selection, other.Selection)
}

// WorkbenchZoom returns the workbench zoom factor.
func (v *View) WorkbenchZoom() float64 { return zoomFactor(v.WorkbenchZoomLevel) }

// TimelineZoom returns the timeline zoom factor.
func (v *View) TimelineZoom() float64 { return zoomFactor(v.TimelineZoomLevel) }

func zoomFactor(level int) float64 {
	if level >= 0 {
		return float64(level)
	}
	return -1.0 / float64(level)
}

// ZoomInWorkbench doubles the workbench zoom, clamped to the maximum.
func (v *View) ZoomInWorkbench() {
	v.WorkbenchZoomLevel = zoomIn(v.WorkbenchZoomLevel, maxWorkbenchZoomLevel)
}

// ZoomOutWorkbench halves the workbench zoom, clamped to the minimum.
func (v *View) ZoomOutWorkbench() {
	v.WorkbenchZoomLevel = zoomOut(v.WorkbenchZoomLevel, minWorkbenchZoomLevel)
}

// ResetWorkbenchZoom restores 1x workbench zoom.
func (v *View) ResetWorkbenchZoom() { v.WorkbenchZoomLevel = 1 }

// ZoomInTimeline doubles the timeline zoom, clamped to the maximum.
func (v *View) ZoomInTimeline() {
	v.TimelineZoomLevel = zoomIn(v.TimelineZoomLevel, maxTimelineZoomLevel)
}

// ZoomOutTimeline halves the timeline zoom, clamped to the minimum.
func (v *View) ZoomOutTimeline() {
	v.TimelineZoomLevel = zoomOut(v.TimelineZoomLevel, minTimelineZoomLevel)
}

// ResetTimelineZoom restores 1x timeline zoom.
func (v *View) ResetTimelineZoom() { v.TimelineZoomLevel = 1 }

func zoomIn(level, max int) int {
	switch {
	case level >= 1:
		level *= 2
	case level == -2:
		level = 1
	default:
		level /= 2
	}
	if level > max {
		level = max
	}
	return level
}

func zoomOut(level, min int) int {
	switch {
	case level > 1:
		level /= 2
	case level == 1:
		level = -2
	default:
		level *= 2
	}
	if level < min {
		level = min
	}
	return level
}

// Pan translates the workbench offset.
func (v *View) Pan(delta Vec) {
	v.WorkbenchOffset = v.WorkbenchOffset.Add(delta)
}

// CenterWorkbench resets the pan offset.
func (v *View) CenterWorkbench() { v.WorkbenchOffset = Vec{} }

// workbenchFramePath returns the path of the frame open on the workbench.
func (v *View) workbenchFramePath() (string, bool) {
	item, ok := v.WorkbenchItem.(WorkbenchFrame)
	return item.Path, ok
}

// workbenchAnimationName returns the name of the animation open on the workbench.
func (v *View) workbenchAnimationName() (string, bool) {
	item, ok := v.WorkbenchItem.(WorkbenchAnimation)
	return item.Name, ok
}
