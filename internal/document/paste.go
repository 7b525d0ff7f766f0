package document

import "github.com/dshills/spritestorm/internal/sheet"

// pasteAnimations adds deep copies of the given animations, renaming on
// collision, and selects the copies.
func (d *Document) pasteAnimations(animations []*sheet.Animation) error {
	if len(animations) == 0 {
		return nil
	}
	for _, animation := range animations {
		if len(animation.Name) > sheet.MaxAnimationNameLength {
			return sheet.ErrAnimationNameTooLong
		}
	}
	names := make([]string, 0, len(animations))
	for _, animation := range animations {
		added := d.Sheet.AddAnimation()
		name := added.Name
		if !d.Sheet.HasAnimation(animation.Name) {
			if err := d.Sheet.RenameAnimation(name, animation.Name); err != nil {
				return err
			}
			name = animation.Name
		}
		content := animation.Clone()
		content.Name = name
		*d.Sheet.Animation(name) = *content
		names = append(names, name)
	}
	return d.selectAnimations(NewMultiSelection(names...))
}

// pasteKeyframes inserts deep copies after the selected block, or at the end
// of the timeline, and selects the copies.
func (d *Document) pasteKeyframes(keyframes []*sheet.Keyframe) error {
	if len(keyframes) == 0 {
		return nil
	}
	animation, err := d.workbenchAnimation()
	if err != nil {
		return err
	}

	at := animation.NumKeyframes()
	if indexes, err := d.selectedKeyframeIndexes(); err == nil {
		at = 0
		for index := range indexes.Items {
			if index >= at {
				at = index + 1
			}
		}
	}

	inserted := make([]int, 0, len(keyframes))
	for i, keyframe := range keyframes {
		if err := animation.InsertKeyframe(keyframe.Clone(), at+i); err != nil {
			return err
		}
		inserted = append(inserted, at+i)
	}
	return d.selectKeyframes(NewMultiSelection(inserted...))
}

// pasteHitboxes adds deep copies to the keyframe under edit, renaming on
// collision, and selects the copies.
func (d *Document) pasteHitboxes(hitboxes []*sheet.Hitbox) error {
	if len(hitboxes) == 0 {
		return nil
	}
	keyframe, err := d.editedKeyframe()
	if err != nil {
		return err
	}
	for _, hitbox := range hitboxes {
		if len(hitbox.Name) > sheet.MaxHitboxNameLength {
			return sheet.ErrHitboxNameTooLong
		}
	}
	names := make([]string, 0, len(hitboxes))
	for _, hitbox := range hitboxes {
		added := keyframe.AddHitbox()
		name := added.Name
		if !keyframe.HasHitbox(hitbox.Name) {
			if err := keyframe.RenameHitbox(name, hitbox.Name); err != nil {
				return err
			}
			name = hitbox.Name
		}
		content := hitbox.Clone()
		content.Name = name
		*keyframe.Hitbox(name) = *content
		names = append(names, name)
	}
	return d.selectHitboxes(NewMultiSelection(names...))
}
