package compat

// Version 1 schema: hitboxes live on frames, export settings have no
// metadata paths root.

type v1Sheet struct {
	Frames         []v1Frame         `json:"frames"`
	Animations     []v1Animation     `json:"animations"`
	ExportSettings *v1ExportSettings `json:"export_settings,omitempty"`
}

type v1Frame struct {
	Source   string     `json:"source"`
	Hitboxes []v1Hitbox `json:"hitboxes"`
}

type v1Animation struct {
	Name      string       `json:"name"`
	Timeline  []v1Keyframe `json:"timeline"`
	IsLooping bool         `json:"is_looping"`
}

type v1Keyframe struct {
	Frame          string `json:"frame"`
	DurationMillis int    `json:"duration"`
	Offset         [2]int `json:"offset"`
}

type v1Hitbox struct {
	Name     string  `json:"name"`
	Geometry v1Shape `json:"geometry"`
}

// v1Shape is a closed variant set with exactly one populated member.
type v1Shape struct {
	Rectangle *v1Rectangle `json:"rectangle,omitempty"`
}

type v1Rectangle struct {
	TopLeft [2]int `json:"top_left"`
	Size    [2]int `json:"size"`
}

type v1ExportSettings struct {
	Format              v1ExportFormat `json:"format"`
	TextureDestination  string         `json:"texture_destination"`
	MetadataDestination string         `json:"metadata_destination"`
}

type v1ExportFormat struct {
	Template string `json:"template"`
}
