package document

import (
	"time"

	"github.com/dshills/spritestorm/internal/sheet"
)

// clearSelection empties the selection entirely; there is no "empty set"
// selection state.
func (d *Document) clearSelection() {
	d.View.Selection = nil
}

func (d *Document) selectFrames(paths MultiSelection[string]) error {
	for path := range paths.Items {
		if !d.Sheet.HasFrame(path) {
			return ErrFrameNotInDocument
		}
	}
	if paths.IsEmpty() {
		d.clearSelection()
		return nil
	}
	d.View.Selection = FrameSelection{Paths: paths.Clone()}
	return nil
}

func (d *Document) selectAnimations(names MultiSelection[string]) error {
	for name := range names.Items {
		if !d.Sheet.HasAnimation(name) {
			return ErrAnimationNotInDocument
		}
	}
	if names.IsEmpty() {
		d.clearSelection()
		return nil
	}
	d.View.Selection = AnimationSelection{Names: names.Clone()}
	return nil
}

// selectHitboxes validates the names against the keyframe under edit.
// Locked hitboxes are excluded: they are filtered out of the requested set
// rather than failing the whole selection.
func (d *Document) selectHitboxes(names MultiSelection[string]) error {
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	selectable := NewMultiSelection[string]()
	for name := range names.Items {
		hitbox := keyframe.Hitbox(name)
		if hitbox == nil {
			return ErrInvalidHitboxName
		}
		if hitbox.Locked {
			continue
		}
		selectable.Items[name] = struct{}{}
	}
	selectable.LastTouched = names.LastTouched
	if selectable.IsEmpty() {
		d.clearSelection()
		return nil
	}
	if _, ok := selectable.Items[selectable.LastTouched]; !ok {
		for name := range selectable.Items {
			selectable.LastTouched = name
			break
		}
	}
	d.View.Selection = HitboxSelection{Names: selectable}
	return nil
}

// selectKeyframes validates indexes against the workbench animation and
// snaps the timeline clock to the anchor keyframe's start time, unless the
// timeline is playing or the playhead already sits inside that keyframe.
func (d *Document) selectKeyframes(indexes MultiSelection[int]) error {
	if indexes.IsEmpty() {
		d.clearSelection()
		return nil
	}

	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	for index := range indexes.Items {
		if animation.Keyframe(index) == nil {
			return ErrInvalidKeyframeIndex
		}
	}
	// The anchor can point outside Items, so it needs its own check.
	anchor := indexes.LastTouched
	if animation.Keyframe(anchor) == nil {
		return ErrInvalidKeyframeIndex
	}

	d.View.Selection = KeyframeSelection{Indexes: indexes.Clone()}

	times := animation.KeyframeTimes()
	start := time.Duration(times[anchor]) * time.Millisecond
	duration := time.Duration(animation.Keyframe(anchor).DurationMillis) * time.Millisecond

	clock := d.View.TimelineClock
	playheadInFrame := clock >= start &&
		(clock < start+duration || anchor == animation.NumKeyframes()-1)
	if !d.Persistent.TimelineIsPlaying && !playheadInFrame {
		d.View.TimelineClock = start
	}
	return nil
}

func (d *Document) editFrame(path string) error {
	if !d.Sheet.HasFrame(path) {
		return ErrFrameNotInDocument
	}
	d.View.WorkbenchItem = WorkbenchFrame{Path: path}
	d.View.WorkbenchOffset = Vec{}
	return nil
}

func (d *Document) editAnimation(name string) error {
	if !d.Sheet.HasAnimation(name) {
		return ErrAnimationNotInDocument
	}
	d.View.WorkbenchItem = WorkbenchAnimation{Name: name}
	d.View.WorkbenchOffset = Vec{}
	d.View.TimelineClock = 0
	d.Persistent.TimelineIsPlaying = false
	return nil
}

// createAnimation adds an auto-named animation, selects it, opens it on the
// workbench and immediately stages a rename.
func (d *Document) createAnimation() error {
	animation := d.Sheet.AddAnimation()
	if err := d.selectAnimations(NewMultiSelection(animation.Name)); err != nil {
		return err
	}
	d.beginRename(animation.Name)
	return d.editAnimation(animation.Name)
}

func (d *Document) insertKeyframesBefore(paths []string, index int) error {
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	if index < 0 || index > animation.NumKeyframes() {
		return ErrInvalidKeyframeIndex
	}
	for i := len(paths) - 1; i >= 0; i-- {
		if err := animation.CreateKeyframe(paths[i], index); err != nil {
			return err
		}
	}
	inserted := make([]int, 0, len(paths))
	for i := index; i < index+len(paths); i++ {
		inserted = append(inserted, i)
	}
	return d.selectKeyframes(NewMultiSelection(inserted...))
}

// reorderKeyframes moves the selected keyframes as a block so it starts at
// newIndex, reselects the moved block and snaps the clock to its start.
func (d *Document) reorderKeyframes(newIndex int) error {
	indexes, err := d.selectedKeyframeIndexes()
	if err != nil {
		return err
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}
	if newIndex < 0 || newIndex > animation.NumKeyframes() {
		return ErrInvalidKeyframeIndex
	}

	sorted := indexes.Slice(func(a, b int) bool { return a < b })
	for _, index := range sorted {
		if animation.Keyframe(index) == nil {
			return ErrInvalidKeyframeIndex
		}
	}

	moved := make([]*sheet.Keyframe, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		keyframe, err := animation.TakeKeyframe(sorted[i])
		if err != nil {
			return err
		}
		moved = append(moved, keyframe)
	}

	movedBeforeInsertPoint := 0
	for _, index := range sorted {
		if index < newIndex {
			movedBeforeInsertPoint++
		}
	}
	insertIndex := newIndex - movedBeforeInsertPoint

	for _, keyframe := range moved {
		if err := animation.InsertKeyframe(keyframe, insertIndex); err != nil {
			return err
		}
	}

	reselected := make([]int, 0, len(sorted))
	for i := insertIndex; i < insertIndex+len(sorted); i++ {
		reselected = append(reselected, i)
	}
	d.View.Selection = KeyframeSelection{Indexes: NewMultiSelection(reselected...)}

	times := animation.KeyframeTimes()
	if insertIndex >= len(times) {
		return ErrInvalidKeyframeIndex
	}
	d.View.TimelineClock = time.Duration(times[insertIndex]) * time.Millisecond
	return nil
}

// deleteSelection removes every selected entity and clears the selection,
// so nothing keeps referencing deleted content.
func (d *Document) deleteSelection() error {
	switch selection := d.View.Selection.(type) {
	case AnimationSelection:
		for name := range selection.Names.Items {
			d.Sheet.DeleteAnimation(name)
		}
	case FrameSelection:
		for path := range selection.Paths.Items {
			d.Sheet.DeleteFrame(path)
		}
	case HitboxSelection:
		keyframe, err := d.editedKeyframe()
		if err != nil {
			return err
		}
		for name := range selection.Names.Items {
			keyframe.DeleteHitbox(name)
		}
	case KeyframeSelection:
		animation, err := d.workbenchAnimation()
		if err != nil {
			return err
		}
		// Descending order keeps remaining indexes valid as we remove.
		sorted := selection.Indexes.Slice(func(a, b int) bool { return a > b })
		for _, index := range sorted {
			d.Sheet.DeleteKeyframe(animation.Name, index)
		}
	}
	d.clearSelection()
	return nil
}

// nudgeSelection moves selected hitboxes or keyframe offsets by a pixel, or
// ten with the large modifier. Frame and animation selections have no
// position to nudge.
func (d *Document) nudgeSelection(direction sheet.Point, large bool) error {
	amplitude := 1
	if large {
		amplitude = 10
	}
	offset := direction.Scale(amplitude)

	switch selection := d.View.Selection.(type) {
	case HitboxSelection:
		keyframe, err := d.editedKeyframe()
		if err != nil {
			return err
		}
		for name := range selection.Names.Items {
			if keyframe.Hitbox(name) == nil {
				return ErrInvalidHitboxName
			}
		}
		for name := range selection.Names.Items {
			hitbox := keyframe.Hitbox(name)
			hitbox.SetPosition(hitbox.Position().Add(offset))
		}
	case KeyframeSelection:
		animation, err := d.workbenchAnimation()
		if err != nil {
			return err
		}
		for index := range selection.Indexes.Items {
			if animation.Keyframe(index) == nil {
				return ErrInvalidKeyframeIndex
			}
		}
		for index := range selection.Indexes.Items {
			keyframe := animation.Keyframe(index)
			keyframe.Offset = keyframe.Offset.Add(offset)
		}
	}
	return nil
}

// beginRename stages the current name; updates replace it verbatim until
// the rename ends or is cancelled.
func (d *Document) beginRename(currentName string) {
	d.Transient = Rename{NewName: currentName}
}

func (d *Document) beginRenameSelection() {
	switch selection := d.View.Selection.(type) {
	case AnimationSelection:
		d.beginRename(selection.Names.LastTouched)
	case HitboxSelection:
		d.beginRename(selection.Names.LastTouched)
	}
}

func (d *Document) updateRename(newName string) error {
	if _, ok := d.Transient.(Rename); !ok {
		return ErrNotRenaming
	}
	d.Transient = Rename{NewName: newName}
	return nil
}

// endRenameSelection validates the staged name for collisions and commits
// it, updating the selection and, for animations, the workbench item.
func (d *Document) endRenameSelection() error {
	rename, ok := d.Transient.(Rename)
	if !ok {
		return ErrNotRenaming
	}
	newName := rename.NewName

	switch selection := d.View.Selection.(type) {
	case AnimationSelection:
		oldName := selection.Names.LastTouched
		if oldName == newName {
			return nil
		}
		if d.Sheet.HasAnimation(newName) {
			return ErrAnimationAlreadyExists
		}
		if err := d.Sheet.RenameAnimation(oldName, newName); err != nil {
			return err
		}
		if err := d.selectAnimations(NewMultiSelection(newName)); err != nil {
			return err
		}
		if d.View.WorkbenchItem == (WorkbenchAnimation{Name: oldName}) {
			d.View.WorkbenchItem = WorkbenchAnimation{Name: newName}
		}
	case HitboxSelection:
		oldName := selection.Names.LastTouched
		if oldName == newName {
			return nil
		}
		keyframe, err := d.editedKeyframe()
		if err != nil {
			return err
		}
		if keyframe.HasHitbox(newName) {
			return ErrHitboxAlreadyExists
		}
		if err := keyframe.RenameHitbox(oldName, newName); err != nil {
			return err
		}
		if err := d.selectHitboxes(NewMultiSelection(newName)); err != nil {
			return err
		}
	}
	return nil
}

// Export settings staging: edits accumulate on a persistent copy and only
// land on the sheet when the edit ends.

func (d *Document) beginExportAs() {
	if settings := d.Sheet.ExportSettings; settings != nil {
		d.Persistent.ExportSettingsEdit = settings.Clone()
	} else {
		d.Persistent.ExportSettingsEdit = sheet.NewExportSettings()
	}
}

func (d *Document) cancelExportAs() {
	d.Persistent.ExportSettingsEdit = nil
}

func (d *Document) exportSettingsEdit() (*sheet.ExportSettings, error) {
	if d.Persistent.ExportSettingsEdit == nil {
		return nil, ErrNotExporting
	}
	return d.Persistent.ExportSettingsEdit, nil
}

func (d *Document) setExportField(apply func(*sheet.ExportSettings)) error {
	settings, err := d.exportSettingsEdit()
	if err != nil {
		return err
	}
	apply(settings)
	return nil
}

func (d *Document) endExportAs() error {
	settings, err := d.exportSettingsEdit()
	if err != nil {
		return err
	}
	d.Sheet.ExportSettings = settings.Clone()
	d.Persistent.ExportSettingsEdit = nil
	return nil
}

// Close flow.

func (d *Document) beginClose() {
	if d.Persistent.CloseState != CloseStateNone {
		return
	}
	if d.IsSaved() {
		d.Persistent.CloseState = CloseStateAllowed
	} else {
		d.Persistent.CloseState = CloseStateRequested
	}
}

// CloseAllowed reports whether the close flow finished and the owning
// collection may drop the document.
func (d *Document) CloseAllowed() bool {
	return d.Persistent.CloseState == CloseStateAllowed
}

// RequestClose starts the close flow, as beginClose does, but is callable by
// the owning collection during application exit.
func (d *Document) RequestClose() { d.beginClose() }
