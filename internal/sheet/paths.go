package sheet

import (
	"fmt"
	"path/filepath"
)

// WithRelativePaths returns a copy of the sheet with every stored path
// rewritten relative to the given directory, for serialization. Fails with
// ErrPathNotRelative when a path cannot be expressed relative to the base
// (for example a different drive root on Windows).
func (s *Sheet) WithRelativePaths(relativeTo string) (*Sheet, error) {
	c := s.Clone()
	for _, frame := range c.Frames {
		rel, err := relativize(frame.Source, relativeTo)
		if err != nil {
			return nil, err
		}
		frame.Source = rel
	}
	for _, animation := range c.Animations {
		for _, keyframe := range animation.Timeline {
			rel, err := relativize(keyframe.Frame, relativeTo)
			if err != nil {
				return nil, err
			}
			keyframe.Frame = rel
		}
	}
	if c.ExportSettings != nil {
		// Export settings falling outside the base directory are dropped
		// rather than failing the whole save, matching editor behavior of
		// treating them as unset.
		settings, err := c.ExportSettings.withRelativePaths(relativeTo)
		if err != nil {
			c.ExportSettings = nil
		} else {
			c.ExportSettings = settings
		}
	}
	return c, nil
}

// WithAbsolutePaths returns a copy of the sheet with every stored path
// resolved against the given directory, for use after deserialization.
func (s *Sheet) WithAbsolutePaths(relativeTo string) *Sheet {
	c := s.Clone()
	for _, frame := range c.Frames {
		frame.Source = absolutize(frame.Source, relativeTo)
	}
	for _, animation := range c.Animations {
		for _, keyframe := range animation.Timeline {
			keyframe.Frame = absolutize(keyframe.Frame, relativeTo)
		}
	}
	if c.ExportSettings != nil {
		c.ExportSettings = c.ExportSettings.withAbsolutePaths(relativeTo)
	}
	return c
}

func (e *ExportSettings) withRelativePaths(relativeTo string) (*ExportSettings, error) {
	c := e.Clone()
	var err error
	if c.TemplateFile, err = relativize(e.TemplateFile, relativeTo); err != nil {
		return nil, err
	}
	if c.TextureFile, err = relativize(e.TextureFile, relativeTo); err != nil {
		return nil, err
	}
	if c.MetadataFile, err = relativize(e.MetadataFile, relativeTo); err != nil {
		return nil, err
	}
	if c.MetadataPathsRoot, err = relativize(e.MetadataPathsRoot, relativeTo); err != nil {
		return nil, err
	}
	return c, nil
}

func (e *ExportSettings) withAbsolutePaths(relativeTo string) *ExportSettings {
	return &ExportSettings{
		TemplateFile:      absolutize(e.TemplateFile, relativeTo),
		TextureFile:       absolutize(e.TextureFile, relativeTo),
		MetadataFile:      absolutize(e.MetadataFile, relativeTo),
		MetadataPathsRoot: absolutize(e.MetadataPathsRoot, relativeTo),
	}
}

func relativize(path, base string) (string, error) {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", fmt.Errorf("%w: %q relative to %q", ErrPathNotRelative, path, base)
	}
	return filepath.ToSlash(rel), nil
}

func absolutize(path, base string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
