package compat

// Version 2 schema: identical to version 1 except export settings gain a
// metadata paths root. Migrating from v1 seeds the root with the metadata
// destination so existing exports keep resolving the same paths.

type v2Sheet struct {
	Frames         []v1Frame         `json:"frames"`
	Animations     []v1Animation     `json:"animations"`
	ExportSettings *v2ExportSettings `json:"export_settings,omitempty"`
}

type v2ExportSettings struct {
	Format              v1ExportFormat `json:"format"`
	TextureDestination  string         `json:"texture_destination"`
	MetadataDestination string         `json:"metadata_destination"`
	MetadataPathsRoot   string         `json:"metadata_paths_root"`
}

func v1ToV2(old v1Sheet) v2Sheet {
	s := v2Sheet{
		Frames:     old.Frames,
		Animations: old.Animations,
	}
	if old.ExportSettings != nil {
		s.ExportSettings = &v2ExportSettings{
			Format:              old.ExportSettings.Format,
			TextureDestination:  old.ExportSettings.TextureDestination,
			MetadataDestination: old.ExportSettings.MetadataDestination,
			MetadataPathsRoot:   old.ExportSettings.MetadataDestination,
		}
	}
	return s
}
