package sheet

// Frame references one source image by path. Frames are unique by source
// path within a sheet. Hitboxes used to live on frames in older schema
// versions; the current model stores them on keyframes (see compat).
type Frame struct {
	Source string
}

// NewFrame returns a frame for the given source path.
func NewFrame(source string) *Frame {
	return &Frame{Source: source}
}

// Clone returns a copy of the frame.
func (f *Frame) Clone() *Frame {
	c := *f
	return &c
}

// Equal reports structural equality.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Source == other.Source
}
