package document

// Snapshot is a structural summary of the document at a point in time. A
// presentation layer keeps the previous snapshot and diffs against the next
// one to decide what to redraw; it deliberately carries identities and
// versions rather than the content itself.
type Snapshot struct {
	Path           string     `json:"path"`
	DisplayName    string     `json:"display_name"`
	Version        int32      `json:"version"`
	Saved          bool       `json:"saved"`
	FrameCount     int        `json:"frame_count"`
	AnimationNames []string   `json:"animation_names"`
	WorkbenchItem  string     `json:"workbench_item"`
	SelectionKind  string     `json:"selection_kind"`
	SelectionSize  int        `json:"selection_size"`
	TimelineClock  int64      `json:"timeline_clock_millis"`
	Playing        bool       `json:"playing"`
	Interacting    bool       `json:"interacting"`
	CloseState     CloseState `json:"close_state"`
}

// Snapshot captures the document's current structural state.
func (d *Document) Snapshot() Snapshot {
	s := Snapshot{
		Path:           d.Path,
		DisplayName:    d.DisplayName(),
		Version:        d.Version(),
		Saved:          d.IsSaved(),
		FrameCount:     len(d.Sheet.Frames),
		AnimationNames: d.Sheet.AnimationNames(),
		TimelineClock:  d.View.TimelineClock.Milliseconds(),
		Playing:        d.Persistent.TimelineIsPlaying,
		Interacting:    d.Transient != nil,
		CloseState:     d.Persistent.CloseState,
	}
	switch item := d.View.WorkbenchItem.(type) {
	case WorkbenchFrame:
		s.WorkbenchItem = "frame:" + item.Path
	case WorkbenchAnimation:
		s.WorkbenchItem = "animation:" + item.Name
	}
	switch selection := d.View.Selection.(type) {
	case FrameSelection:
		s.SelectionKind = "frames"
		s.SelectionSize = len(selection.Paths.Items)
	case AnimationSelection:
		s.SelectionKind = "animations"
		s.SelectionSize = len(selection.Names.Items)
	case HitboxSelection:
		s.SelectionKind = "hitboxes"
		s.SelectionSize = len(selection.Names.Items)
	case KeyframeSelection:
		s.SelectionKind = "keyframes"
		s.SelectionSize = len(selection.Indexes.Items)
	}
	return s
}

// SnapshotDiff reports which facets changed between two snapshots.
type SnapshotDiff struct {
	Content   bool
	Selection bool
	Workbench bool
	Timeline  bool
	Status    bool
}

// Any reports whether anything changed at all.
func (diff SnapshotDiff) Any() bool {
	return diff.Content || diff.Selection || diff.Workbench || diff.Timeline || diff.Status
}

// DiffSnapshots compares two snapshots facet by facet.
func DiffSnapshots(before, after Snapshot) SnapshotDiff {
	return SnapshotDiff{
		Content: before.Version != after.Version ||
			before.FrameCount != after.FrameCount ||
			!stringSlicesEqual(before.AnimationNames, after.AnimationNames),
		Selection: before.SelectionKind != after.SelectionKind ||
			before.SelectionSize != after.SelectionSize,
		Workbench: before.WorkbenchItem != after.WorkbenchItem,
		Timeline: before.TimelineClock != after.TimelineClock ||
			before.Playing != after.Playing,
		Status: before.Saved != after.Saved ||
			before.Interacting != after.Interacting ||
			before.CloseState != after.CloseState ||
			before.Path != after.Path ||
			before.DisplayName != after.DisplayName,
	}
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
