package document

import (
	"time"

	"github.com/dshills/spritestorm/internal/sheet"
)

// Command is one edit intent. The set is a closed tagged union dispatched
// exhaustively in Document.Apply; every command carries all parameters it
// needs so that replaying it never depends on ambient state.
type Command interface {
	isCommand()
	// CommandName is a stable identifier used in logs and history displays.
	CommandName() string
}

// History navigation.
type (
	// Undo steps the document back one history entry.
	Undo struct{}
	// Redo steps the document forward one history entry.
	Redo struct{}
)

// Save and import collaborator outcomes.
type (
	// MarkAsSaved records that the given content version reached disk.
	MarkAsSaved struct{ Version int32 }
	// EndImport adds an imported frame to the sheet.
	EndImport struct{ Path string }
)

// Export settings staging.
type (
	// BeginExportAs stages the sheet's export settings for editing.
	BeginExportAs struct{}
	// CancelExportAs discards the staged export settings.
	CancelExportAs struct{}
	// SetExportTemplateFile updates the staged metadata template path.
	SetExportTemplateFile struct{ Path string }
	// SetExportTextureFile updates the staged texture destination.
	SetExportTextureFile struct{ Path string }
	// SetExportMetadataFile updates the staged metadata destination.
	SetExportMetadataFile struct{ Path string }
	// SetExportMetadataPathsRoot updates the staged metadata paths root.
	SetExportMetadataPathsRoot struct{ Path string }
	// EndExportAs commits the staged export settings to the sheet.
	EndExportAs struct{}
)

// Selection and navigation.
type (
	// SwitchToContentTab activates the frames or animations list.
	SwitchToContentTab struct{ Tab ContentTab }
	// ClearSelection empties the selection.
	ClearSelection struct{}
	// SelectFrames replaces the selection with the given frame paths.
	SelectFrames struct{ Paths MultiSelection[string] }
	// SelectAnimations replaces the selection with the given animation names.
	SelectAnimations struct{ Names MultiSelection[string] }
	// SelectHitboxes replaces the selection with the given hitbox names.
	SelectHitboxes struct{ Names MultiSelection[string] }
	// SelectKeyframes replaces the selection with the given timeline indexes.
	SelectKeyframes struct{ Indexes MultiSelection[int] }
	// EditFrame opens a frame on the workbench.
	EditFrame struct{ Path string }
	// EditAnimation opens an animation on the workbench.
	EditAnimation struct{ Name string }
)

// Structural edits.
type (
	// CreateAnimation adds an auto-named animation, opens it, and begins a rename.
	CreateAnimation struct{}
	// InsertKeyframesBefore inserts keyframes for the given frame paths
	// before the given timeline index of the workbench animation.
	InsertKeyframesBefore struct {
		Paths []string
		Index int
	}
	// ReorderKeyframes moves the selected keyframes so the block starts at
	// the given timeline index.
	ReorderKeyframes struct{ Index int }
	// CreateHitbox adds an auto-named hitbox at the given position on the
	// keyframe under edit and begins resizing it from the SE handle.
	CreateHitbox struct{ Position sheet.Point }
	// DeleteSelection deletes every selected entity and clears the selection.
	DeleteSelection struct{}
	// NudgeSelection moves selected hitboxes or keyframe offsets by one
	// pixel in the given direction, or ten when Large is set.
	NudgeSelection struct {
		Direction sheet.Point
		Large     bool
	}
	// ToggleLooping flips the workbench animation's looping flag.
	ToggleLooping struct{}

	// PasteAnimations adds copies of the given animations under free names
	// and selects them.
	PasteAnimations struct{ Animations []*sheet.Animation }
	// PasteKeyframes inserts copies of the given keyframes after the
	// selected block, or at the end of the workbench animation's timeline.
	PasteKeyframes struct{ Keyframes []*sheet.Keyframe }
	// PasteHitboxes adds copies of the given hitboxes to the keyframe under
	// edit, renaming on collision, and selects them.
	PasteHitboxes struct{ Hitboxes []*sheet.Hitbox }
)

// Interactive drags. Each mode has Begin/Update/End commands; Begin and
// Update preserve the transient state, End does not (clearing it is exactly
// how the interaction finishes).
type (
	// BeginFramesDrag starts dragging content frames toward the timeline.
	BeginFramesDrag struct{}
	// EndFramesDrag finishes a content frames drag.
	EndFramesDrag struct{}

	// BeginKeyframeDrag starts reordering the selected keyframes.
	BeginKeyframeDrag struct{}
	// EndKeyframeDrag finishes a keyframe reorder drag.
	EndKeyframeDrag struct{}

	// BeginKeyframeOffsetDrag starts moving the selected keyframes' offsets.
	BeginKeyframeOffsetDrag struct{}
	// UpdateKeyframeOffsetDrag recomputes offsets from the drag origin.
	// Unless BothAxes is set, movement locks to the larger-magnitude axis.
	UpdateKeyframeOffsetDrag struct {
		Delta    Vec
		BothAxes bool
	}
	// EndKeyframeOffsetDrag finishes a keyframe offset drag.
	EndKeyframeOffsetDrag struct{}

	// BeginKeyframeDurationDrag starts stretching the selected keyframes'
	// durations by dragging the keyframe at Index, with the clock value
	// under the cursor at drag start as reference.
	BeginKeyframeDurationDrag struct {
		Index          int
		ReferenceClock int
	}
	// UpdateKeyframeDurationDrag recomputes durations from the drag origin.
	UpdateKeyframeDurationDrag struct {
		ClockAtCursor int
		MinimumMillis int
	}
	// EndKeyframeDurationDrag finishes a duration drag.
	EndKeyframeDurationDrag struct{}

	// BeginHitboxDrag starts moving the selected hitboxes.
	BeginHitboxDrag struct{}
	// UpdateHitboxDrag recomputes hitbox positions from the drag origin.
	UpdateHitboxDrag struct {
		Delta    Vec
		BothAxes bool
	}
	// EndHitboxDrag finishes a hitbox move.
	EndHitboxDrag struct{}

	// BeginHitboxResize starts resizing the selected hitboxes from a handle.
	BeginHitboxResize struct{ Axis ResizeAxis }
	// UpdateHitboxResize recomputes hitbox rectangles from the drag origin.
	UpdateHitboxResize struct {
		Delta               Vec
		PreserveAspectRatio bool
	}
	// EndHitboxResize finishes a hitbox resize.
	EndHitboxResize struct{}

	// BeginScrub starts dragging the timeline playhead.
	BeginScrub struct{}
	// UpdateScrub moves the playhead to the given time.
	UpdateScrub struct{ Time time.Duration }
	// EndScrub finishes a playhead drag.
	EndScrub struct{}

	// BeginRenameSelection stages a rename of the last-touched selected
	// animation or hitbox.
	BeginRenameSelection struct{}
	// UpdateRenameSelection replaces the staged name.
	UpdateRenameSelection struct{ NewName string }
	// EndRenameSelection validates and commits the staged rename.
	EndRenameSelection struct{}
)

// Playback and timeline.
type (
	// TogglePlayback starts or stops timeline playback.
	TogglePlayback struct{}
	// SnapToPreviousFrame moves the playhead to the previous keyframe start.
	SnapToPreviousFrame struct{}
	// SnapToNextFrame moves the playhead to the next keyframe start.
	SnapToNextFrame struct{}
)

// Zoom and pan.
type (
	// WorkbenchZoomIn doubles workbench zoom.
	WorkbenchZoomIn struct{}
	// WorkbenchZoomOut halves workbench zoom.
	WorkbenchZoomOut struct{}
	// WorkbenchResetZoom restores 1x workbench zoom.
	WorkbenchResetZoom struct{}
	// WorkbenchCenter resets the pan offset.
	WorkbenchCenter struct{}
	// Pan translates the workbench.
	Pan struct{ Delta Vec }
	// TimelineZoomIn doubles timeline zoom.
	TimelineZoomIn struct{}
	// TimelineZoomOut halves timeline zoom.
	TimelineZoomOut struct{}
	// TimelineResetZoom restores 1x timeline zoom.
	TimelineResetZoom struct{}
)

// Close flow.
type (
	// Close requests closing the document, prompting when unsaved.
	Close struct{}
	// CloseAfterSaving closes once the document reaches disk.
	CloseAfterSaving struct{}
	// CloseWithoutSaving closes discarding unsaved changes.
	CloseWithoutSaving struct{}
	// CancelClose abandons a close request.
	CancelClose struct{}
)

func (Undo) isCommand()                       {}
func (Redo) isCommand()                       {}
func (MarkAsSaved) isCommand()                {}
func (EndImport) isCommand()                  {}
func (BeginExportAs) isCommand()              {}
func (CancelExportAs) isCommand()             {}
func (SetExportTemplateFile) isCommand()      {}
func (SetExportTextureFile) isCommand()       {}
func (SetExportMetadataFile) isCommand()      {}
func (SetExportMetadataPathsRoot) isCommand() {}
func (EndExportAs) isCommand()                {}
func (SwitchToContentTab) isCommand()         {}
func (ClearSelection) isCommand()             {}
func (SelectFrames) isCommand()               {}
func (SelectAnimations) isCommand()           {}
func (SelectHitboxes) isCommand()             {}
func (SelectKeyframes) isCommand()            {}
func (EditFrame) isCommand()                  {}
func (EditAnimation) isCommand()              {}
func (CreateAnimation) isCommand()            {}
func (InsertKeyframesBefore) isCommand()      {}
func (ReorderKeyframes) isCommand()           {}
func (CreateHitbox) isCommand()               {}
func (DeleteSelection) isCommand()            {}
func (NudgeSelection) isCommand()             {}
func (ToggleLooping) isCommand()              {}
func (PasteAnimations) isCommand()            {}
func (PasteKeyframes) isCommand()             {}
func (PasteHitboxes) isCommand()              {}
func (BeginFramesDrag) isCommand()            {}
func (EndFramesDrag) isCommand()              {}
func (BeginKeyframeDrag) isCommand()          {}
func (EndKeyframeDrag) isCommand()            {}
func (BeginKeyframeOffsetDrag) isCommand()    {}
func (UpdateKeyframeOffsetDrag) isCommand()   {}
func (EndKeyframeOffsetDrag) isCommand()      {}
func (BeginKeyframeDurationDrag) isCommand()  {}
func (UpdateKeyframeDurationDrag) isCommand() {}
func (EndKeyframeDurationDrag) isCommand()    {}
func (BeginHitboxDrag) isCommand()            {}
func (UpdateHitboxDrag) isCommand()           {}
func (EndHitboxDrag) isCommand()              {}
func (BeginHitboxResize) isCommand()          {}
func (UpdateHitboxResize) isCommand()         {}
func (EndHitboxResize) isCommand()            {}
func (BeginScrub) isCommand()                 {}
func (UpdateScrub) isCommand()                {}
func (EndScrub) isCommand()                   {}
func (BeginRenameSelection) isCommand()       {}
func (UpdateRenameSelection) isCommand()      {}
func (EndRenameSelection) isCommand()         {}
func (TogglePlayback) isCommand()             {}
func (SnapToPreviousFrame) isCommand()        {}
func (SnapToNextFrame) isCommand()            {}
func (WorkbenchZoomIn) isCommand()            {}
func (WorkbenchZoomOut) isCommand()           {}
func (WorkbenchResetZoom) isCommand()         {}
func (WorkbenchCenter) isCommand()            {}
func (Pan) isCommand()                        {}
func (TimelineZoomIn) isCommand()             {}
func (TimelineZoomOut) isCommand()            {}
func (TimelineResetZoom) isCommand()          {}
func (Close) isCommand()                      {}
func (CloseAfterSaving) isCommand()           {}
func (CloseWithoutSaving) isCommand()         {}
func (CancelClose) isCommand()                {}

func (Undo) CommandName() string                       { return "undo" }
func (Redo) CommandName() string                       { return "redo" }
func (MarkAsSaved) CommandName() string                { return "mark_as_saved" }
func (EndImport) CommandName() string                  { return "end_import" }
func (BeginExportAs) CommandName() string              { return "begin_export_as" }
func (CancelExportAs) CommandName() string             { return "cancel_export_as" }
func (SetExportTemplateFile) CommandName() string      { return "set_export_template_file" }
func (SetExportTextureFile) CommandName() string       { return "set_export_texture_file" }
func (SetExportMetadataFile) CommandName() string      { return "set_export_metadata_file" }
func (SetExportMetadataPathsRoot) CommandName() string { return "set_export_metadata_paths_root" }
func (EndExportAs) CommandName() string                { return "end_export_as" }
func (SwitchToContentTab) CommandName() string         { return "switch_to_content_tab" }
func (ClearSelection) CommandName() string             { return "clear_selection" }
func (SelectFrames) CommandName() string               { return "select_frames" }
func (SelectAnimations) CommandName() string           { return "select_animations" }
func (SelectHitboxes) CommandName() string             { return "select_hitboxes" }
func (SelectKeyframes) CommandName() string            { return "select_keyframes" }
func (EditFrame) CommandName() string                  { return "edit_frame" }
func (EditAnimation) CommandName() string              { return "edit_animation" }
func (CreateAnimation) CommandName() string            { return "create_animation" }
func (InsertKeyframesBefore) CommandName() string      { return "insert_keyframes_before" }
func (ReorderKeyframes) CommandName() string           { return "reorder_keyframes" }
func (CreateHitbox) CommandName() string               { return "create_hitbox" }
func (DeleteSelection) CommandName() string            { return "delete_selection" }
func (NudgeSelection) CommandName() string             { return "nudge_selection" }
func (ToggleLooping) CommandName() string              { return "toggle_looping" }
func (PasteAnimations) CommandName() string            { return "paste_animations" }
func (PasteKeyframes) CommandName() string             { return "paste_keyframes" }
func (PasteHitboxes) CommandName() string              { return "paste_hitboxes" }
func (BeginFramesDrag) CommandName() string            { return "begin_frames_drag" }
func (EndFramesDrag) CommandName() string              { return "end_frames_drag" }
func (BeginKeyframeDrag) CommandName() string          { return "begin_keyframe_drag" }
func (EndKeyframeDrag) CommandName() string            { return "end_keyframe_drag" }
func (BeginKeyframeOffsetDrag) CommandName() string    { return "begin_keyframe_offset_drag" }
func (UpdateKeyframeOffsetDrag) CommandName() string   { return "update_keyframe_offset_drag" }
func (EndKeyframeOffsetDrag) CommandName() string      { return "end_keyframe_offset_drag" }
func (BeginKeyframeDurationDrag) CommandName() string  { return "begin_keyframe_duration_drag" }
func (UpdateKeyframeDurationDrag) CommandName() string { return "update_keyframe_duration_drag" }
func (EndKeyframeDurationDrag) CommandName() string    { return "end_keyframe_duration_drag" }
func (BeginHitboxDrag) CommandName() string            { return "begin_hitbox_drag" }
func (UpdateHitboxDrag) CommandName() string           { return "update_hitbox_drag" }
func (EndHitboxDrag) CommandName() string              { return "end_hitbox_drag" }
func (BeginHitboxResize) CommandName() string          { return "begin_hitbox_resize" }
func (UpdateHitboxResize) CommandName() string         { return "update_hitbox_resize" }
func (EndHitboxResize) CommandName() string            { return "end_hitbox_resize" }
func (BeginScrub) CommandName() string                 { return "begin_scrub" }
func (UpdateScrub) CommandName() string                { return "update_scrub" }
func (EndScrub) CommandName() string                   { return "end_scrub" }
func (BeginRenameSelection) CommandName() string       { return "begin_rename_selection" }
func (UpdateRenameSelection) CommandName() string      { return "update_rename_selection" }
func (EndRenameSelection) CommandName() string         { return "end_rename_selection" }
func (TogglePlayback) CommandName() string             { return "toggle_playback" }
func (SnapToPreviousFrame) CommandName() string        { return "snap_to_previous_frame" }
func (SnapToNextFrame) CommandName() string            { return "snap_to_next_frame" }
func (WorkbenchZoomIn) CommandName() string            { return "workbench_zoom_in" }
func (WorkbenchZoomOut) CommandName() string           { return "workbench_zoom_out" }
func (WorkbenchResetZoom) CommandName() string         { return "workbench_reset_zoom" }
func (WorkbenchCenter) CommandName() string            { return "workbench_center" }
func (Pan) CommandName() string                        { return "pan" }
func (TimelineZoomIn) CommandName() string             { return "timeline_zoom_in" }
func (TimelineZoomOut) CommandName() string            { return "timeline_zoom_out" }
func (TimelineResetZoom) CommandName() string          { return "timeline_reset_zoom" }
func (Close) CommandName() string                      { return "close" }
func (CloseAfterSaving) CommandName() string           { return "close_after_saving" }
func (CloseWithoutSaving) CommandName() string         { return "close_without_saving" }
func (CancelClose) CommandName() string                { return "cancel_close" }

// preservesTransient is the allow-list of commands compatible with an active
// interaction: the Begin/Update halves of each interactive mode plus a few
// pure-navigation commands. Everything else clears the transient before
// being processed, which is how a stray action safely aborts a drag.
func preservesTransient(c Command) bool {
	switch c.(type) {
	case BeginFramesDrag,
		BeginKeyframeDrag,
		BeginKeyframeOffsetDrag, UpdateKeyframeOffsetDrag,
		BeginKeyframeDurationDrag, UpdateKeyframeDurationDrag,
		BeginHitboxDrag, UpdateHitboxDrag,
		BeginHitboxResize, UpdateHitboxResize,
		BeginScrub, UpdateScrub,
		BeginRenameSelection, UpdateRenameSelection,
		CreateAnimation, CreateHitbox,
		SelectFrames, SelectAnimations, SelectHitboxes, SelectKeyframes,
		Pan, WorkbenchZoomIn, WorkbenchZoomOut,
		TimelineZoomIn, TimelineZoomOut:
		return true
	default:
		return false
	}
}

// IsLiveUpdate reports whether the command is a continuous interaction
// update (mouse-move driven). Callers may log failures of these at a lower
// severity, since a stream of stale updates during a dying drag is routine.
func IsLiveUpdate(c Command) bool {
	switch c.(type) {
	case UpdateKeyframeOffsetDrag, UpdateKeyframeDurationDrag,
		UpdateHitboxDrag, UpdateHitboxResize,
		UpdateScrub, Pan:
		return true
	default:
		return false
	}
}
