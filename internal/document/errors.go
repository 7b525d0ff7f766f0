package document

import "errors"

// Errors returned by document operations. Sheet-level failures surface as
// wrapped errors from the sheet package.
var (
	// ErrUndoWhileInteracting indicates undo/redo was attempted while an
	// interaction (drag, resize, scrub, rename) is in progress.
	ErrUndoWhileInteracting = errors.New("cannot use undo system during an interaction")

	// ErrFrameNotInDocument indicates the requested frame path is not in the sheet.
	ErrFrameNotInDocument = errors.New("frame is not in document")

	// ErrAnimationNotInDocument indicates the requested animation is not in the sheet.
	ErrAnimationNotInDocument = errors.New("animation is not in document")

	// ErrInvalidHitboxName indicates the keyframe has no hitbox with that name.
	ErrInvalidHitboxName = errors.New("no hitbox with the requested name")

	// ErrInvalidKeyframeIndex indicates the animation has no keyframe at that index.
	ErrInvalidKeyframeIndex = errors.New("no keyframe at the requested index")

	// ErrNoKeyframeForTime indicates no keyframe spans the requested clock time.
	ErrNoKeyframeForTime = errors.New("no keyframe for the requested time")

	// ErrNoFrameSelected indicates the operation needs a frame selection.
	ErrNoFrameSelected = errors.New("expected a frame to be selected")

	// ErrNoHitboxSelected indicates the operation needs a hitbox selection.
	ErrNoHitboxSelected = errors.New("expected a hitbox to be selected")

	// ErrNoKeyframeSelected indicates the operation needs a keyframe selection.
	ErrNoKeyframeSelected = errors.New("expected a keyframe to be selected")

	// ErrAnimationAlreadyExists indicates a rename collides with an existing animation.
	ErrAnimationAlreadyExists = errors.New("an animation with this name already exists")

	// ErrHitboxAlreadyExists indicates a rename collides with an existing hitbox.
	ErrHitboxAlreadyExists = errors.New("a hitbox with this name already exists")

	// ErrNotEditingFrame indicates no frame is open on the workbench.
	ErrNotEditingFrame = errors.New("not editing any frame")

	// ErrNotEditingAnimation indicates no animation is open on the workbench.
	ErrNotEditingAnimation = errors.New("not editing any animation")

	// ErrNotExporting indicates export settings are not being edited.
	ErrNotExporting = errors.New("not adjusting export settings")

	// ErrNotRenaming indicates no rename is in progress.
	ErrNotRenaming = errors.New("not renaming an item")

	// ErrNotAdjustingHitboxPosition indicates no hitbox drag is in progress.
	ErrNotAdjustingHitboxPosition = errors.New("not adjusting hitbox position")

	// ErrNotAdjustingHitboxSize indicates no hitbox resize is in progress.
	ErrNotAdjustingHitboxSize = errors.New("not adjusting hitbox size")

	// ErrNotAdjustingKeyframePosition indicates no keyframe offset drag is in progress.
	ErrNotAdjustingKeyframePosition = errors.New("not adjusting keyframe position")

	// ErrNotAdjustingKeyframeDuration indicates no keyframe duration drag is in progress.
	ErrNotAdjustingKeyframeDuration = errors.New("not adjusting keyframe duration")

	// ErrMissingDragData indicates an interaction referenced an entity whose
	// starting state was not captured when the interaction began.
	ErrMissingDragData = errors.New("missing data captured at interaction start")
)
