package sheet

// ExportSettings describes where and how a sheet is exported: a metadata
// template, the texture and metadata destinations, and the root that frame
// paths are written relative to in the generated metadata.
type ExportSettings struct {
	TemplateFile      string
	TextureFile       string
	MetadataFile      string
	MetadataPathsRoot string
}

// NewExportSettings returns empty export settings.
func NewExportSettings() *ExportSettings {
	return &ExportSettings{}
}

// Clone returns a copy of the settings.
func (e *ExportSettings) Clone() *ExportSettings {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

// Equal reports structural equality.
func (e *ExportSettings) Equal(other *ExportSettings) bool {
	if e == nil || other == nil {
		return e == other
	}
	return *e == *other
}
