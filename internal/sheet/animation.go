package sheet

import "time"

// MaxAnimationNameLength is the maximum length of an animation name, in bytes.
const MaxAnimationNameLength = 32

// Animation is a named, ordered timeline of keyframes.
type Animation struct {
	Name      string
	Timeline  []*Keyframe
	IsLooping bool
}

// NewAnimation returns an empty, looping animation.
func NewAnimation(name string) *Animation {
	return &Animation{Name: name, IsLooping: true}
}

// NumKeyframes returns the timeline length.
func (a *Animation) NumKeyframes() int { return len(a.Timeline) }

// DurationMillis returns the sum of all keyframe durations. The second
// return is false when the timeline is empty and duration is undefined.
func (a *Animation) DurationMillis() (int, bool) {
	if len(a.Timeline) == 0 {
		return 0, false
	}
	total := 0
	for _, keyframe := range a.Timeline {
		total += keyframe.DurationMillis
	}
	return total, true
}

// Keyframe returns the keyframe at index, or nil when out of bounds.
func (a *Animation) Keyframe(index int) *Keyframe {
	if index < 0 || index >= len(a.Timeline) {
		return nil
	}
	return a.Timeline[index]
}

// KeyframeAt returns the index and keyframe under the given timeline clock.
// Looping animations wrap the clock; non-looping animations resolve times
// past the end to the last keyframe. Returns (-1, nil) for empty or
// zero-duration timelines.
func (a *Animation) KeyframeAt(clock time.Duration) (int, *Keyframe) {
	duration, ok := a.DurationMillis()
	if !ok || duration == 0 {
		return -1, nil
	}
	millis := clock.Milliseconds()
	if a.IsLooping {
		millis %= int64(duration)
	}
	var cursor int64
	for index, keyframe := range a.Timeline {
		cursor += int64(keyframe.DurationMillis)
		if millis < cursor {
			return index, keyframe
		}
	}
	last := len(a.Timeline) - 1
	return last, a.Timeline[last]
}

// KeyframeTimes returns each keyframe's start time in milliseconds.
func (a *Animation) KeyframeTimes() []int {
	times := make([]int, 0, len(a.Timeline))
	cursor := 0
	for _, keyframe := range a.Timeline {
		times = append(times, cursor)
		cursor += keyframe.DurationMillis
	}
	return times
}

// CreateKeyframe inserts a new keyframe referencing frame before index.
// Returns ErrInvalidFrameIndex when index is past the end of the timeline.
func (a *Animation) CreateKeyframe(frame string, index int) error {
	if index < 0 || index > len(a.Timeline) {
		return ErrInvalidFrameIndex
	}
	return a.InsertKeyframe(NewKeyframe(frame), index)
}

// InsertKeyframe inserts an existing keyframe before index.
func (a *Animation) InsertKeyframe(keyframe *Keyframe, index int) error {
	if index < 0 || index > len(a.Timeline) {
		return ErrInvalidFrameIndex
	}
	a.Timeline = append(a.Timeline, nil)
	copy(a.Timeline[index+1:], a.Timeline[index:])
	a.Timeline[index] = keyframe
	return nil
}

// TakeKeyframe removes and returns the keyframe at index.
func (a *Animation) TakeKeyframe(index int) (*Keyframe, error) {
	if index < 0 || index >= len(a.Timeline) {
		return nil, ErrInvalidFrameIndex
	}
	keyframe := a.Timeline[index]
	a.Timeline = append(a.Timeline[:index], a.Timeline[index+1:]...)
	return keyframe, nil
}

// Clone returns a deep copy of the animation.
func (a *Animation) Clone() *Animation {
	c := *a
	c.Timeline = make([]*Keyframe, len(a.Timeline))
	for i, keyframe := range a.Timeline {
		c.Timeline[i] = keyframe.Clone()
	}
	return &c
}

// Equal reports structural equality.
func (a *Animation) Equal(other *Animation) bool {
	if a == nil || other == nil {
		return a == other
	}
	if a.Name != other.Name || a.IsLooping != other.IsLooping || len(a.Timeline) != len(other.Timeline) {
		return false
	}
	for i, keyframe := range a.Timeline {
		if !keyframe.Equal(other.Timeline[i]) {
			return false
		}
	}
	return true
}
