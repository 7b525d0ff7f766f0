package sheet

import (
	"fmt"
	"sort"
)

// Sheet is the whole content model: frames, animations and export settings.
// View state lives elsewhere; a Sheet is exactly what gets serialized and
// what the history engine snapshots.
type Sheet struct {
	Frames         []*Frame
	Animations     map[string]*Animation
	ExportSettings *ExportSettings
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{Animations: make(map[string]*Animation)}
}

// HasFrame reports whether a frame with this source path exists.
func (s *Sheet) HasFrame(path string) bool {
	return s.Frame(path) != nil
}

// Frame returns the frame with this source path, or nil.
func (s *Sheet) Frame(path string) *Frame {
	for _, frame := range s.Frames {
		if frame.Source == path {
			return frame
		}
	}
	return nil
}

// AddFrame appends a frame for this source path. Adding a path that is
// already present is a no-op; frame paths are unique within a sheet.
func (s *Sheet) AddFrame(path string) {
	if s.HasFrame(path) {
		return
	}
	s.Frames = append(s.Frames, NewFrame(path))
}

// DeleteFrame removes the frame and every keyframe referencing it, across
// all animations. Missing paths are a no-op.
func (s *Sheet) DeleteFrame(path string) {
	frames := s.Frames[:0]
	for _, frame := range s.Frames {
		if frame.Source != path {
			frames = append(frames, frame)
		}
	}
	s.Frames = frames
	for _, animation := range s.Animations {
		timeline := animation.Timeline[:0]
		for _, keyframe := range animation.Timeline {
			if keyframe.Frame != path {
				timeline = append(timeline, keyframe)
			}
		}
		animation.Timeline = timeline
	}
}

// FramePaths returns all frame source paths in sheet order.
func (s *Sheet) FramePaths() []string {
	paths := make([]string, 0, len(s.Frames))
	for _, frame := range s.Frames {
		paths = append(paths, frame.Source)
	}
	return paths
}

// HasAnimation reports whether an animation with this name exists.
// Names are case-sensitive.
func (s *Sheet) HasAnimation(name string) bool {
	_, ok := s.Animations[name]
	return ok
}

// Animation returns the named animation, or nil.
func (s *Sheet) Animation(name string) *Animation {
	return s.Animations[name]
}

// AnimationNames returns all animation names in sorted order.
func (s *Sheet) AnimationNames() []string {
	names := make([]string, 0, len(s.Animations))
	for name := range s.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddAnimation creates an animation with the first free auto-generated name
// ("New Animation", "New Animation 2", ...) and returns it.
func (s *Sheet) AddAnimation() *Animation {
	if s.Animations == nil {
		s.Animations = make(map[string]*Animation)
	}
	name := "New Animation"
	for index := 2; s.HasAnimation(name); index++ {
		name = fmt.Sprintf("New Animation %d", index)
	}
	animation := NewAnimation(name)
	s.Animations[name] = animation
	return animation
}

// RenameAnimation changes an animation name. Returns
// ErrAnimationNameTooLong or ErrAnimationNotFound on failure.
func (s *Sheet) RenameAnimation(oldName, newName string) error {
	if len(newName) > MaxAnimationNameLength {
		return ErrAnimationNameTooLong
	}
	animation, ok := s.Animations[oldName]
	if !ok {
		return ErrAnimationNotFound
	}
	delete(s.Animations, oldName)
	animation.Name = newName
	s.Animations[newName] = animation
	return nil
}

// DeleteAnimation removes the named animation. Missing names are a no-op.
func (s *Sheet) DeleteAnimation(name string) {
	delete(s.Animations, name)
}

// DeleteKeyframe removes the keyframe at index from the named animation.
// Missing animations and out-of-bounds indexes are a no-op.
func (s *Sheet) DeleteKeyframe(animationName string, index int) {
	animation, ok := s.Animations[animationName]
	if !ok {
		return
	}
	if index < 0 || index >= len(animation.Timeline) {
		return
	}
	animation.Timeline = append(animation.Timeline[:index], animation.Timeline[index+1:]...)
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	c := New()
	c.Frames = make([]*Frame, len(s.Frames))
	for i, frame := range s.Frames {
		c.Frames[i] = frame.Clone()
	}
	for name, animation := range s.Animations {
		c.Animations[name] = animation.Clone()
	}
	c.ExportSettings = s.ExportSettings.Clone()
	return c
}

// Equal reports structural equality of two sheets. This is the comparison
// the history engine relies on to detect content changes.
func (s *Sheet) Equal(other *Sheet) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Frames) != len(other.Frames) || len(s.Animations) != len(other.Animations) {
		return false
	}
	for i, frame := range s.Frames {
		if !frame.Equal(other.Frames[i]) {
			return false
		}
	}
	for name, animation := range s.Animations {
		if !animation.Equal(other.Animations[name]) {
			return false
		}
	}
	return s.ExportSettings.Equal(other.ExportSettings)
}
