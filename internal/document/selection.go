package document

import (
	"maps"
	"sort"
)

// MultiSelection is a set of selected keys of one kind plus the key touched
// most recently. The last-touched key is the anchor for range selection and
// the subject shown in detail panels.
type MultiSelection[T comparable] struct {
	Items       map[T]struct{}
	LastTouched T
}

// NewMultiSelection selects the given items, anchored on the last one.
func NewMultiSelection[T comparable](items ...T) MultiSelection[T] {
	s := MultiSelection[T]{Items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Items[item] = struct{}{}
		s.LastTouched = item
	}
	return s
}

// Contains reports whether item is selected.
func (s MultiSelection[T]) Contains(item T) bool {
	_, ok := s.Items[item]
	return ok
}

// IsEmpty reports whether nothing is selected.
func (s MultiSelection[T]) IsEmpty() bool { return len(s.Items) == 0 }

// Slice returns the selected items sorted with less.
func (s MultiSelection[T]) Slice(less func(a, b T) bool) []T {
	items := make([]T, 0, len(s.Items))
	for item := range s.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })
	return items
}

// Clone returns a deep copy.
func (s MultiSelection[T]) Clone() MultiSelection[T] {
	return MultiSelection[T]{Items: maps.Clone(s.Items), LastTouched: s.LastTouched}
}

// Equal reports whether both selections hold the same items and anchor.
func (s MultiSelection[T]) Equal(other MultiSelection[T]) bool {
	return s.LastTouched == other.LastTouched && maps.Equal(s.Items, other.Items)
}

// ProcessClick computes the selection resulting from clicking an item:
// plain click replaces the selection, shift selects the contiguous range
// between the previous anchor and the clicked item (using ordered to resolve
// membership), ctrl toggles the clicked item. The clicked item always becomes
// the new anchor. previous may be nil when nothing of this kind was selected.
func ProcessClick[T comparable](clicked T, shift, ctrl bool, ordered []T, previous *MultiSelection[T]) MultiSelection[T] {
	switch {
	case shift && previous != nil:
		from := indexOf(ordered, previous.LastTouched)
		to := indexOf(ordered, clicked)
		if from < 0 || to < 0 {
			return NewMultiSelection(clicked)
		}
		if from > to {
			from, to = to, from
		}
		selection := NewMultiSelection(ordered[from : to+1]...)
		selection.LastTouched = clicked
		return selection
	case ctrl && previous != nil:
		selection := previous.Clone()
		if selection.Contains(clicked) {
			delete(selection.Items, clicked)
		} else {
			selection.Items[clicked] = struct{}{}
		}
		selection.LastTouched = clicked
		return selection
	default:
		return NewMultiSelection(clicked)
	}
}

func indexOf[T comparable](items []T, item T) int {
	for i, candidate := range items {
		if candidate == item {
			return i
		}
	}
	return -1
}

// Selection is the view's multi-selection: a tagged union over exactly one
// entity kind at a time. Selecting one kind clears any other.
type Selection interface {
	isSelection()
	cloneSelection() Selection
	equalSelection(other Selection) bool
}

// FrameSelection selects frames by source path.
type FrameSelection struct {
	Paths MultiSelection[string]
}

// AnimationSelection selects animations by name.
type AnimationSelection struct {
	Names MultiSelection[string]
}

// HitboxSelection selects hitboxes by name on the keyframe under edit.
type HitboxSelection struct {
	Names MultiSelection[string]
}

// KeyframeSelection selects keyframes by timeline index in the workbench
// animation.
type KeyframeSelection struct {
	Indexes MultiSelection[int]
}

func (FrameSelection) isSelection()     {}
func (AnimationSelection) isSelection() {}
func (HitboxSelection) isSelection()    {}
func (KeyframeSelection) isSelection()  {}

func (s FrameSelection) cloneSelection() Selection {
	return FrameSelection{Paths: s.Paths.Clone()}
}

func (s AnimationSelection) cloneSelection() Selection {
	return AnimationSelection{Names: s.Names.Clone()}
}

func (s HitboxSelection) cloneSelection() Selection {
	return HitboxSelection{Names: s.Names.Clone()}
}

func (s KeyframeSelection) cloneSelection() Selection {
	return KeyframeSelection{Indexes: s.Indexes.Clone()}
}

func (s FrameSelection) equalSelection(other Selection) bool {
	o, ok := other.(FrameSelection)
	return ok && s.Paths.Equal(o.Paths)
}

func (s AnimationSelection) equalSelection(other Selection) bool {
	o, ok := other.(AnimationSelection)
	return ok && s.Names.Equal(o.Names)
}

func (s HitboxSelection) equalSelection(other Selection) bool {
	o, ok := other.(HitboxSelection)
	return ok && s.Names.Equal(o.Names)
}

func (s KeyframeSelection) equalSelection(other Selection) bool {
	o, ok := other.(KeyframeSelection)
	return ok && s.Indexes.Equal(o.Indexes)
}

func selectionsEqual(a, b Selection) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.equalSelection(b)
}

func cloneSelection(s Selection) Selection {
	if s == nil {
		return nil
	}
	return s.cloneSelection()
}
