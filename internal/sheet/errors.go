package sheet

import "errors"

// Errors returned by sheet operations.
var (
	// ErrAnimationNotFound indicates the named animation is not in the sheet.
	ErrAnimationNotFound = errors.New("animation was not found")

	// ErrHitboxNotFound indicates the named hitbox is not on the keyframe.
	ErrHitboxNotFound = errors.New("hitbox was not found")

	// ErrAnimationNameTooLong indicates an animation name over MaxAnimationNameLength.
	ErrAnimationNameTooLong = errors.New("animation name too long")

	// ErrHitboxNameTooLong indicates a hitbox name over MaxHitboxNameLength.
	ErrHitboxNameTooLong = errors.New("hitbox name too long")

	// ErrPathNotRelative indicates an absolute path could not be expressed
	// relative to the requested base directory.
	ErrPathNotRelative = errors.New("cannot convert absolute path to relative path")

	// ErrInvalidFrameIndex indicates a keyframe index outside the timeline.
	ErrInvalidFrameIndex = errors.New("invalid frame index")
)
