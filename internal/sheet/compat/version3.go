package compat

import "github.com/dshills/spritestorm/internal/sheet"

// Version 3 schema (current): hitboxes live on keyframes, keyed by name, and
// carry linked/locked flags. Animations are keyed by name.

type v3Sheet struct {
	Frames         []v3Frame              `json:"frames"`
	Animations     map[string]v3Animation `json:"animations"`
	ExportSettings *v2ExportSettings      `json:"export_settings,omitempty"`
}

type v3Frame struct {
	Source string `json:"source"`
}

type v3Animation struct {
	Timeline  []v3Keyframe `json:"timeline"`
	IsLooping bool         `json:"is_looping"`
}

type v3Keyframe struct {
	Frame          string              `json:"frame"`
	DurationMillis int                 `json:"duration_millis"`
	Offset         [2]int              `json:"offset"`
	Hitboxes       map[string]v3Hitbox `json:"hitboxes"`
}

type v3Hitbox struct {
	Geometry v1Shape `json:"geometry"`
	Linked   bool    `json:"linked"`
	Locked   bool    `json:"locked"`
}

func v2ToV3(old v2Sheet) v3Sheet {
	s := v3Sheet{
		Animations:     make(map[string]v3Animation, len(old.Animations)),
		ExportSettings: old.ExportSettings,
	}
	for _, frame := range old.Frames {
		s.Frames = append(s.Frames, v3Frame{Source: frame.Source})
	}
	for _, animation := range old.Animations {
		timeline := make([]v3Keyframe, 0, len(animation.Timeline))
		for _, keyframe := range animation.Timeline {
			timeline = append(timeline, v3Keyframe{
				Frame:          keyframe.Frame,
				DurationMillis: keyframe.DurationMillis,
				Offset:         keyframe.Offset,
				Hitboxes:       make(map[string]v3Hitbox),
			})
		}
		s.Animations[animation.Name] = v3Animation{
			Timeline:  timeline,
			IsLooping: animation.IsLooping,
		}
	}

	// Hitboxes migrate from frames to every keyframe referencing the frame.
	// A frame hitbox was positioned in frame space; keyframe hitboxes are in
	// workbench space, so the keyframe offset is folded in.
	for _, frame := range old.Frames {
		for _, hitbox := range frame.Hitboxes {
			for name, animation := range s.Animations {
				for i := range animation.Timeline {
					keyframe := &animation.Timeline[i]
					if keyframe.Frame != frame.Source {
						continue
					}
					migrated := v3Hitbox{
						Geometry: hitbox.Geometry,
						Linked:   true,
						Locked:   false,
					}
					if hitbox.Geometry.Rectangle != nil {
						r := *hitbox.Geometry.Rectangle
						r.TopLeft[0] += keyframe.Offset[0]
						r.TopLeft[1] += keyframe.Offset[1]
						migrated.Geometry = v1Shape{Rectangle: &r}
					}
					keyframe.Hitboxes[hitbox.Name] = migrated
				}
				s.Animations[name] = animation
			}
		}
	}
	return s
}

func (s v3Sheet) toModel() *sheet.Sheet {
	m := sheet.New()
	for _, frame := range s.Frames {
		m.AddFrame(frame.Source)
	}
	for name, animation := range s.Animations {
		a := sheet.NewAnimation(name)
		a.IsLooping = animation.IsLooping
		for _, keyframe := range animation.Timeline {
			k := sheet.NewKeyframe(keyframe.Frame)
			k.DurationMillis = keyframe.DurationMillis
			k.Offset = sheet.Point{X: keyframe.Offset[0], Y: keyframe.Offset[1]}
			for hitboxName, hitbox := range keyframe.Hitboxes {
				h := sheet.NewHitbox(hitboxName)
				h.Linked = hitbox.Linked
				h.Locked = hitbox.Locked
				if r := hitbox.Geometry.Rectangle; r != nil {
					h.SetRectangle(sheet.Rect{
						TopLeft: sheet.Point{X: r.TopLeft[0], Y: r.TopLeft[1]},
						Size:    sheet.Size{W: r.Size[0], H: r.Size[1]},
					})
				}
				k.Hitboxes[hitboxName] = h
			}
			a.Timeline = append(a.Timeline, k)
		}
		m.Animations[name] = a
	}
	if s.ExportSettings != nil {
		m.ExportSettings = &sheet.ExportSettings{
			TemplateFile:      s.ExportSettings.Format.Template,
			TextureFile:       s.ExportSettings.TextureDestination,
			MetadataFile:      s.ExportSettings.MetadataDestination,
			MetadataPathsRoot: s.ExportSettings.MetadataPathsRoot,
		}
	}
	return m
}

func v3FromModel(m *sheet.Sheet) v3Sheet {
	s := v3Sheet{Animations: make(map[string]v3Animation, len(m.Animations))}
	for _, frame := range m.Frames {
		s.Frames = append(s.Frames, v3Frame{Source: frame.Source})
	}
	for name, animation := range m.Animations {
		timeline := make([]v3Keyframe, 0, len(animation.Timeline))
		for _, keyframe := range animation.Timeline {
			k := v3Keyframe{
				Frame:          keyframe.Frame,
				DurationMillis: keyframe.DurationMillis,
				Offset:         [2]int{keyframe.Offset.X, keyframe.Offset.Y},
				Hitboxes:       make(map[string]v3Hitbox, len(keyframe.Hitboxes)),
			}
			for hitboxName, hitbox := range keyframe.Hitboxes {
				r := hitbox.Rectangle()
				k.Hitboxes[hitboxName] = v3Hitbox{
					Geometry: v1Shape{Rectangle: &v1Rectangle{
						TopLeft: [2]int{r.TopLeft.X, r.TopLeft.Y},
						Size:    [2]int{r.Size.W, r.Size.H},
					}},
					Linked: hitbox.Linked,
					Locked: hitbox.Locked,
				}
			}
			timeline = append(timeline, k)
		}
		s.Animations[name] = v3Animation{
			Timeline:  timeline,
			IsLooping: animation.IsLooping,
		}
	}
	if m.ExportSettings != nil {
		s.ExportSettings = &v2ExportSettings{
			Format:              v1ExportFormat{Template: m.ExportSettings.TemplateFile},
			TextureDestination:  m.ExportSettings.TextureFile,
			MetadataDestination: m.ExportSettings.MetadataFile,
			MetadataPathsRoot:   m.ExportSettings.MetadataPathsRoot,
		}
	}
	return s
}
