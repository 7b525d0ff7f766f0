package document

import "github.com/dshills/spritestorm/internal/sheet"

// Apply runs a single command against the document. It is the only mutation
// entry point: it routes to the handler, clears the transient state for
// commands that are not transient-compatible, and records the outcome in
// history. A failed command leaves the document unchanged; handlers validate
// everything before touching state.
func (d *Document) Apply(command Command) error {
	// Undo and redo bypass recording: restoring an entry must not push one.
	switch command.(type) {
	case Undo:
		return d.Undo()
	case Redo:
		return d.Redo()
	}

	var err error
	switch c := command.(type) {
	case MarkAsSaved:
		d.Persistent.DiskVersion = c.Version
	case EndImport:
		d.Sheet.AddFrame(c.Path)

	case BeginExportAs:
		d.beginExportAs()
	case CancelExportAs:
		d.cancelExportAs()
	case SetExportTemplateFile:
		err = d.setExportField(func(s *sheet.ExportSettings) { s.TemplateFile = c.Path })
	case SetExportTextureFile:
		err = d.setExportField(func(s *sheet.ExportSettings) { s.TextureFile = c.Path })
	case SetExportMetadataFile:
		err = d.setExportField(func(s *sheet.ExportSettings) { s.MetadataFile = c.Path })
	case SetExportMetadataPathsRoot:
		err = d.setExportField(func(s *sheet.ExportSettings) { s.MetadataPathsRoot = c.Path })
	case EndExportAs:
		err = d.endExportAs()

	case SwitchToContentTab:
		d.View.ContentTab = c.Tab
	case ClearSelection:
		d.clearSelection()
	case SelectFrames:
		err = d.selectFrames(c.Paths)
	case SelectAnimations:
		err = d.selectAnimations(c.Names)
	case SelectHitboxes:
		err = d.selectHitboxes(c.Names)
	case SelectKeyframes:
		err = d.selectKeyframes(c.Indexes)
	case EditFrame:
		err = d.editFrame(c.Path)
	case EditAnimation:
		err = d.editAnimation(c.Name)

	case CreateAnimation:
		err = d.createAnimation()
	case InsertKeyframesBefore:
		err = d.insertKeyframesBefore(c.Paths, c.Index)
	case ReorderKeyframes:
		err = d.reorderKeyframes(c.Index)
	case CreateHitbox:
		err = d.createHitbox(c.Position)
	case DeleteSelection:
		err = d.deleteSelection()
	case NudgeSelection:
		err = d.nudgeSelection(c.Direction, c.Large)
	case ToggleLooping:
		err = d.toggleLooping()
	case PasteAnimations:
		err = d.pasteAnimations(c.Animations)
	case PasteKeyframes:
		err = d.pasteKeyframes(c.Keyframes)
	case PasteHitboxes:
		err = d.pasteHitboxes(c.Hitboxes)

	case BeginFramesDrag:
		err = d.beginFramesDrag()
	case EndFramesDrag:
		// Clearing the transient below is the whole effect.
	case BeginKeyframeDrag:
		err = d.beginKeyframeDrag()
	case EndKeyframeDrag:
	case BeginKeyframeOffsetDrag:
		err = d.beginKeyframeOffsetDrag()
	case UpdateKeyframeOffsetDrag:
		err = d.updateKeyframeOffsetDrag(c.Delta, c.BothAxes)
	case EndKeyframeOffsetDrag:
	case BeginKeyframeDurationDrag:
		err = d.beginKeyframeDurationDrag(c.Index, c.ReferenceClock)
	case UpdateKeyframeDurationDrag:
		err = d.updateKeyframeDurationDrag(c.ClockAtCursor, c.MinimumMillis)
	case EndKeyframeDurationDrag:
	case BeginHitboxDrag:
		err = d.beginHitboxDrag()
	case UpdateHitboxDrag:
		err = d.updateHitboxDrag(c.Delta, c.BothAxes)
	case EndHitboxDrag:
	case BeginHitboxResize:
		err = d.beginHitboxResize(c.Axis)
	case UpdateHitboxResize:
		err = d.updateHitboxResize(c.Delta, c.PreserveAspectRatio)
	case EndHitboxResize:
	case BeginScrub:
		err = d.beginScrub()
	case UpdateScrub:
		err = d.updateScrub(c.Time)
	case EndScrub:
	case BeginRenameSelection:
		d.beginRenameSelection()
	case UpdateRenameSelection:
		err = d.updateRename(c.NewName)
	case EndRenameSelection:
		err = d.endRenameSelection()

	case TogglePlayback:
		err = d.togglePlayback()
	case SnapToPreviousFrame:
		err = d.snapToPreviousFrame()
	case SnapToNextFrame:
		err = d.snapToNextFrame()

	case WorkbenchZoomIn:
		d.View.ZoomInWorkbench()
	case WorkbenchZoomOut:
		d.View.ZoomOutWorkbench()
	case WorkbenchResetZoom:
		d.View.ResetWorkbenchZoom()
	case WorkbenchCenter:
		d.View.CenterWorkbench()
	case Pan:
		d.View.Pan(c.Delta)
	case TimelineZoomIn:
		d.View.ZoomInTimeline()
	case TimelineZoomOut:
		d.View.ZoomOutTimeline()
	case TimelineResetZoom:
		d.View.ResetTimelineZoom()

	case Close:
		d.beginClose()
	case CloseAfterSaving:
		d.Persistent.CloseState = CloseStateSaving
	case CloseWithoutSaving:
		d.Persistent.CloseState = CloseStateAllowed
	case CancelClose:
		d.Persistent.CloseState = CloseStateNone
	}
	if err != nil {
		return err
	}

	if !preservesTransient(command) {
		d.Transient = nil
	}
	d.recordCommand(command)
	return nil
}
