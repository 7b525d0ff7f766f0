package sheet

import (
	"fmt"
	"sort"
)

// DefaultKeyframeDurationMillis is the duration given to newly created keyframes.
const DefaultKeyframeDurationMillis = 100

// Keyframe is one timeline entry: a frame reference, a display duration, a
// render offset and the hitboxes local to this pose. Hitbox names are unique
// within the keyframe.
type Keyframe struct {
	Frame          string
	DurationMillis int
	Offset         Point
	Hitboxes       map[string]*Hitbox
}

// NewKeyframe returns a keyframe referencing the given frame path.
func NewKeyframe(frame string) *Keyframe {
	return &Keyframe{
		Frame:          frame,
		DurationMillis: DefaultKeyframeDurationMillis,
		Hitboxes:       make(map[string]*Hitbox),
	}
}

// Hitbox returns the named hitbox, or nil.
func (k *Keyframe) Hitbox(name string) *Hitbox {
	return k.Hitboxes[name]
}

// HasHitbox reports whether a hitbox with this name exists.
func (k *Keyframe) HasHitbox(name string) bool {
	_, ok := k.Hitboxes[name]
	return ok
}

// HitboxNames returns the hitbox names in sorted order.
func (k *Keyframe) HitboxNames() []string {
	names := make([]string, 0, len(k.Hitboxes))
	for name := range k.Hitboxes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddHitbox creates a hitbox with the first free auto-generated name
// ("New Hitbox", "New Hitbox 2", ...) and returns it.
func (k *Keyframe) AddHitbox() *Hitbox {
	if k.Hitboxes == nil {
		k.Hitboxes = make(map[string]*Hitbox)
	}
	name := "New Hitbox"
	for index := 2; k.HasHitbox(name); index++ {
		name = fmt.Sprintf("New Hitbox %d", index)
	}
	hitbox := NewHitbox(name)
	k.Hitboxes[name] = hitbox
	return hitbox
}

// RenameHitbox changes a hitbox name, keeping the name-keyed map consistent.
// Returns ErrHitboxNameTooLong or ErrHitboxNotFound on failure.
func (k *Keyframe) RenameHitbox(oldName, newName string) error {
	if len(newName) > MaxHitboxNameLength {
		return ErrHitboxNameTooLong
	}
	hitbox, ok := k.Hitboxes[oldName]
	if !ok {
		return ErrHitboxNotFound
	}
	delete(k.Hitboxes, oldName)
	hitbox.Name = newName
	k.Hitboxes[newName] = hitbox
	return nil
}

// DeleteHitbox removes the named hitbox. Missing names are a no-op.
func (k *Keyframe) DeleteHitbox(name string) {
	delete(k.Hitboxes, name)
}

// Clone returns a deep copy of the keyframe.
func (k *Keyframe) Clone() *Keyframe {
	c := *k
	c.Hitboxes = make(map[string]*Hitbox, len(k.Hitboxes))
	for name, hitbox := range k.Hitboxes {
		c.Hitboxes[name] = hitbox.Clone()
	}
	return &c
}

// Equal reports structural equality.
func (k *Keyframe) Equal(other *Keyframe) bool {
	if k == nil || other == nil {
		return k == other
	}
	if k.Frame != other.Frame ||
		k.DurationMillis != other.DurationMillis ||
		k.Offset != other.Offset ||
		len(k.Hitboxes) != len(other.Hitboxes) {
		return false
	}
	for name, hitbox := range k.Hitboxes {
		if !hitbox.Equal(other.Hitboxes[name]) {
			return false
		}
	}
	return true
}
