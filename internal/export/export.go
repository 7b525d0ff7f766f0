// Package export renders a sheet to a packed texture atlas plus a metadata
// file generated from a user-supplied template. The template decides the
// metadata format; the exporter only provides the data.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"text/template"

	"github.com/dshills/spritestorm/internal/sheet"
)

// Export errors.
var (
	// ErrNoExportSettings indicates the sheet has no export settings.
	ErrNoExportSettings = errors.New("sheet has no export settings")
)

// MissingTextureError indicates a referenced frame texture could not be
// resolved by the image source.
type MissingTextureError struct {
	Path string
}

func (e *MissingTextureError) Error() string {
	return fmt.Sprintf("missing texture for frame %s", e.Path)
}

// Frame is a packed frame as seen by metadata templates.
type Frame struct {
	Index int
	// Path is the frame source, relative to the metadata paths root.
	Path       string
	X, Y, W, H int
}

// Hitbox is a keyframe hitbox as seen by metadata templates.
type Hitbox struct {
	Name       string
	X, Y, W, H int
}

// Keyframe is a timeline entry as seen by metadata templates.
type Keyframe struct {
	Frame          Frame
	DurationMillis int
	OffsetX        int
	OffsetY        int
	Hitboxes       []Hitbox
}

// Animation is a timeline as seen by metadata templates.
type Animation struct {
	Name      string
	IsLooping bool
	Keyframes []Keyframe
}

// Context is the root object metadata templates execute against.
type Context struct {
	// TexturePath is the atlas image location, relative to the metadata
	// paths root.
	TexturePath   string
	TextureWidth  int
	TextureHeight int
	Frames        []Frame
	Animations    []Animation
}

// Run packs the sheet's frames into an atlas, writes it to the settings'
// texture file, and renders the metadata template to the metadata file.
func Run(s *sheet.Sheet, source ImageSource) error {
	settings := s.ExportSettings
	if settings == nil {
		return ErrNoExportSettings
	}

	atlas, err := packAtlas(s.FramePaths(), source)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	ctx, err := buildContext(s, atlas, settings)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	metadata, err := renderMetadata(settings.TemplateFile, ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := writeAtlas(settings.TextureFile, atlas); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(settings.MetadataFile, metadata, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func buildContext(s *sheet.Sheet, atlas *Atlas, settings *sheet.ExportSettings) (*Context, error) {
	root := settings.MetadataPathsRoot

	frames := make([]Frame, 0, len(s.Frames))
	byPath := make(map[string]Frame, len(s.Frames))
	for i, path := range s.FramePaths() {
		p := atlas.Placements[path]
		frame := Frame{
			Index: i,
			Path:  relativeTo(root, path),
			X:     p.X, Y: p.Y, W: p.W, H: p.H,
		}
		frames = append(frames, frame)
		byPath[path] = frame
	}

	animations := make([]Animation, 0, len(s.Animations))
	for _, name := range s.AnimationNames() {
		animation := s.Animation(name)
		out := Animation{Name: name, IsLooping: animation.IsLooping}
		for _, keyframe := range animation.Timeline {
			frame, ok := byPath[keyframe.Frame]
			if !ok {
				return nil, fmt.Errorf("animation %q references unknown frame %q", name, keyframe.Frame)
			}
			k := Keyframe{
				Frame:          frame,
				DurationMillis: keyframe.DurationMillis,
				OffsetX:        keyframe.Offset.X,
				OffsetY:        keyframe.Offset.Y,
			}
			for _, hitboxName := range keyframe.HitboxNames() {
				r := keyframe.Hitboxes[hitboxName].Rectangle()
				k.Hitboxes = append(k.Hitboxes, Hitbox{
					Name: hitboxName,
					X:    r.MinX(), Y: r.MinY(), W: r.Size.W, H: r.Size.H,
				})
			}
			out.Keyframes = append(out.Keyframes, k)
		}
		animations = append(animations, out)
	}

	bounds := atlas.Image.Bounds()
	return &Context{
		TexturePath:   relativeTo(root, settings.TextureFile),
		TextureWidth:  bounds.Dx(),
		TextureHeight: bounds.Dy(),
		Frames:        frames,
		Animations:    animations,
	}, nil
}

// relativeTo rewrites path relative to root when possible, in slash form.
// Paths that do not share a root pass through unchanged.
func relativeTo(root, path string) string {
	if root == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func renderMetadata(templateFile string, ctx *Context) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(templateFile)).ParseFiles(templateFile)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}

func writeAtlas(path string, atlas *Atlas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, atlas.Image); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
