// Package clipboard copies and pastes document selections through a text
// clipboard. Content travels as a versioned JSON manifest so a paste into a
// different document, or a different process, round-trips exactly.
package clipboard

import (
	"encoding/json"
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"

	"github.com/dshills/spritestorm/internal/document"
	"github.com/dshills/spritestorm/internal/sheet"
)

// Clipboard errors.
var (
	// ErrNothingToCopy indicates the selection holds nothing copyable.
	ErrNothingToCopy = errors.New("nothing to copy")

	// ErrNotAManifest indicates the clipboard holds foreign content.
	ErrNotAManifest = errors.New("clipboard does not hold a spritestorm manifest")

	// ErrUnknownManifestVersion indicates a manifest from a newer build.
	ErrUnknownManifestVersion = errors.New("unknown clipboard manifest version")
)

// manifestVersion is bumped when the wire format changes.
const manifestVersion = 1

// manifestMagic marks clipboard text as one of our manifests.
const manifestMagic = "sheet-selection"

// Backend reads and writes the underlying clipboard as text.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the operating system clipboard.
type System struct{}

func (System) ReadAll() (string, error)   { return atotto.ReadAll() }
func (System) WriteAll(text string) error { return atotto.WriteAll(text) }

// Memory is an in-process clipboard for tests and headless use.
type Memory struct {
	text string
}

func (m *Memory) ReadAll() (string, error) { return m.text, nil }
func (m *Memory) WriteAll(text string) error { m.text = text; return nil }

type manifest struct {
	Magic      string          `json:"spritestorm_clipboard"`
	Version    int             `json:"version"`
	Animations []wireAnimation `json:"animations,omitempty"`
	Keyframes  []wireKeyframe  `json:"keyframes,omitempty"`
	Hitboxes   []wireHitbox    `json:"hitboxes,omitempty"`
}

type wireAnimation struct {
	Name      string         `json:"name"`
	IsLooping bool           `json:"is_looping"`
	Timeline  []wireKeyframe `json:"timeline"`
}

type wireKeyframe struct {
	Frame          string       `json:"frame"`
	DurationMillis int          `json:"duration_millis"`
	OffsetX        int          `json:"offset_x"`
	OffsetY        int          `json:"offset_y"`
	Hitboxes       []wireHitbox `json:"hitboxes,omitempty"`
}

type wireHitbox struct {
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	W      int    `json:"w"`
	H      int    `json:"h"`
	Linked bool   `json:"linked"`
	Locked bool   `json:"locked"`
}

// Copy serializes the document's selection onto the clipboard. The document
// is only read.
func Copy(d *document.Document, backend Backend) error {
	m, err := buildManifest(d)
	if err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("clipboard copy: %w", err)
	}
	if err := backend.WriteAll(string(data)); err != nil {
		return fmt.Errorf("clipboard copy: %w", err)
	}
	return nil
}

// Cut copies the selection and then deletes it from the document.
func Cut(d *document.Document, backend Backend) error {
	if err := Copy(d, backend); err != nil {
		return err
	}
	return d.Apply(document.DeleteSelection{})
}

// Paste decodes the clipboard manifest and applies it to the document as a
// paste command, so it lands in history like any other edit.
func Paste(d *document.Document, backend Backend) error {
	text, err := backend.ReadAll()
	if err != nil {
		return fmt.Errorf("clipboard paste: %w", err)
	}
	command, err := decodeManifest(text)
	if err != nil {
		return err
	}
	return d.Apply(command)
}

func buildManifest(d *document.Document) (*manifest, error) {
	m := &manifest{Magic: manifestMagic, Version: manifestVersion}

	switch selection := d.View.Selection.(type) {
	case document.AnimationSelection:
		for _, name := range selection.Names.Slice(func(a, b string) bool { return a < b }) {
			animation := d.Sheet.Animation(name)
			if animation == nil {
				continue
			}
			m.Animations = append(m.Animations, animationToWire(animation))
		}
	case document.KeyframeSelection:
		item, ok := d.View.WorkbenchItem.(document.WorkbenchAnimation)
		if !ok {
			return nil, ErrNothingToCopy
		}
		animation := d.Sheet.Animation(item.Name)
		if animation == nil {
			return nil, ErrNothingToCopy
		}
		for _, index := range selection.Indexes.Slice(func(a, b int) bool { return a < b }) {
			keyframe := animation.Keyframe(index)
			if keyframe == nil {
				continue
			}
			m.Keyframes = append(m.Keyframes, keyframeToWire(keyframe))
		}
	case document.HitboxSelection:
		keyframe, err := hitboxKeyframe(d)
		if err != nil {
			return nil, err
		}
		for _, name := range selection.Names.Slice(func(a, b string) bool { return a < b }) {
			hitbox := keyframe.Hitbox(name)
			if hitbox == nil {
				continue
			}
			m.Hitboxes = append(m.Hitboxes, hitboxToWire(hitbox))
		}
	default:
		return nil, ErrNothingToCopy
	}

	if len(m.Animations) == 0 && len(m.Keyframes) == 0 && len(m.Hitboxes) == 0 {
		return nil, ErrNothingToCopy
	}
	return m, nil
}

// hitboxKeyframe resolves the keyframe whose hitboxes are selected: the one
// under the playhead of the workbench animation.
func hitboxKeyframe(d *document.Document) (*sheet.Keyframe, error) {
	item, ok := d.View.WorkbenchItem.(document.WorkbenchAnimation)
	if !ok {
		return nil, ErrNothingToCopy
	}
	animation := d.Sheet.Animation(item.Name)
	if animation == nil {
		return nil, ErrNothingToCopy
	}
	_, keyframe := animation.KeyframeAt(d.View.TimelineClock)
	if keyframe == nil {
		return nil, ErrNothingToCopy
	}
	return keyframe, nil
}

func decodeManifest(text string) (document.Command, error) {
	var m manifest
	if err := json.Unmarshal([]byte(text), &m); err != nil || m.Magic == "" {
		return nil, ErrNotAManifest
	}
	if m.Version != manifestVersion {
		return nil, ErrUnknownManifestVersion
	}

	switch {
	case len(m.Animations) > 0:
		animations := make([]*sheet.Animation, 0, len(m.Animations))
		for _, w := range m.Animations {
			animations = append(animations, animationFromWire(w))
		}
		return document.PasteAnimations{Animations: animations}, nil
	case len(m.Keyframes) > 0:
		keyframes := make([]*sheet.Keyframe, 0, len(m.Keyframes))
		for _, w := range m.Keyframes {
			keyframes = append(keyframes, keyframeFromWire(w))
		}
		return document.PasteKeyframes{Keyframes: keyframes}, nil
	case len(m.Hitboxes) > 0:
		hitboxes := make([]*sheet.Hitbox, 0, len(m.Hitboxes))
		for _, w := range m.Hitboxes {
			hitboxes = append(hitboxes, hitboxFromWire(w))
		}
		return document.PasteHitboxes{Hitboxes: hitboxes}, nil
	}
	return nil, ErrNotAManifest
}

func animationToWire(animation *sheet.Animation) wireAnimation {
	w := wireAnimation{Name: animation.Name, IsLooping: animation.IsLooping}
	for _, keyframe := range animation.Timeline {
		w.Timeline = append(w.Timeline, keyframeToWire(keyframe))
	}
	return w
}

func animationFromWire(w wireAnimation) *sheet.Animation {
	animation := sheet.NewAnimation(w.Name)
	animation.IsLooping = w.IsLooping
	for _, keyframe := range w.Timeline {
		animation.Timeline = append(animation.Timeline, keyframeFromWire(keyframe))
	}
	return animation
}

func keyframeToWire(keyframe *sheet.Keyframe) wireKeyframe {
	w := wireKeyframe{
		Frame:          keyframe.Frame,
		DurationMillis: keyframe.DurationMillis,
		OffsetX:        keyframe.Offset.X,
		OffsetY:        keyframe.Offset.Y,
	}
	for _, name := range keyframe.HitboxNames() {
		w.Hitboxes = append(w.Hitboxes, hitboxToWire(keyframe.Hitboxes[name]))
	}
	return w
}

func keyframeFromWire(w wireKeyframe) *sheet.Keyframe {
	keyframe := sheet.NewKeyframe(w.Frame)
	keyframe.DurationMillis = w.DurationMillis
	keyframe.Offset = sheet.Point{X: w.OffsetX, Y: w.OffsetY}
	for _, hitbox := range w.Hitboxes {
		restored := hitboxFromWire(hitbox)
		if keyframe.Hitboxes == nil {
			keyframe.Hitboxes = make(map[string]*sheet.Hitbox)
		}
		keyframe.Hitboxes[restored.Name] = restored
	}
	return keyframe
}

func hitboxToWire(hitbox *sheet.Hitbox) wireHitbox {
	r := hitbox.Rectangle()
	return wireHitbox{
		Name:   hitbox.Name,
		X:      r.MinX(),
		Y:      r.MinY(),
		W:      r.Size.W,
		H:      r.Size.H,
		Linked: hitbox.Linked,
		Locked: hitbox.Locked,
	}
}

func hitboxFromWire(w wireHitbox) *sheet.Hitbox {
	hitbox := sheet.NewHitbox(w.Name)
	hitbox.Linked = w.Linked
	hitbox.Locked = w.Locked
	hitbox.SetRectangle(sheet.Rect{
		TopLeft: sheet.Point{X: w.X, Y: w.Y},
		Size:    sheet.Size{W: w.W, H: w.H},
	})
	return hitbox
}
