package document

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dshills/spritestorm/internal/sheet"
	"github.com/dshills/spritestorm/internal/sheet/compat"
)

// CloseState tracks a request to close the document:
// none -> Requested -> Saving -> Allowed.
type CloseState int

// Close states. CloseStateNone means no close is in progress.
const (
	CloseStateNone CloseState = iota
	CloseStateRequested
	CloseStateSaving
	CloseStateAllowed
)

// Persistent is document state that is neither content nor undoable view
// state: the staged export settings, the close flow, playback, and the
// content version last written to disk.
type Persistent struct {
	ExportSettingsEdit *sheet.ExportSettings
	CloseState         CloseState
	TimelineIsPlaying  bool
	DiskVersion        int32
}

// Document is one open sheet and everything needed to edit it. All mutation
// goes through Apply; the caller serializes access.
type Document struct {
	// Path is where the document lives (or will live) on disk.
	Path string

	// Sheet is the content under edit, fully recorded in history.
	Sheet *sheet.Sheet

	// View is the editing state, collapsed and recorded in history.
	View *View

	// Transient is the interaction in progress; it suspends history
	// recording and is itself never recorded.
	Transient Transient

	// Persistent is non-undoable state, never recorded in history.
	Persistent Persistent

	nextVersion  int32
	history      []historyEntry
	historyIndex int
}

// New returns an empty document that would be saved at path.
func New(path string) *Document {
	seed := historyEntry{sheet: sheet.New(), view: NewView()}
	return &Document{
		Path:    path,
		Sheet:   seed.sheet.Clone(),
		View:    seed.view.Clone(),
		history: []historyEntry{seed},
	}
}

// Open reads a sheet file of any supported version, resolves its paths to
// absolute, and returns a document whose seed history entry matches the disk
// content.
func Open(path string) (*Document, error) {
	d := New(path)
	s, err := compat.ReadSheet(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	d.Sheet = s.WithAbsolutePaths(filepath.Dir(path))
	d.history[0].sheet = d.Sheet.Clone()
	d.Persistent.DiskVersion = d.nextVersion
	return d, nil
}

// Save writes a sheet snapshot to a file, rewriting paths relative to the
// destination directory. It takes the sheet rather than the document so
// callers can snapshot under the lock and write without it.
func Save(s *sheet.Sheet, to string) error {
	rel, err := s.WithRelativePaths(filepath.Dir(to))
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	if err := compat.WriteSheet(to, rel); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// IsSaved reports whether the current content version is on disk.
func (d *Document) IsSaved() bool {
	return d.Persistent.DiskVersion == d.Version()
}

// DisplayName returns the file name shown in title bars and document lists.
func (d *Document) DisplayName() string {
	if d.Path == "" {
		return "Untitled"
	}
	return filepath.Base(d.Path)
}

// ClearTransient aborts any interaction in progress.
func (d *Document) ClearTransient() { d.Transient = nil }

// Tick advances the timeline clock during playback and resolves a pending
// close once the document reaches disk. Called by the owning collection on
// its frame cadence.
func (d *Document) Tick(delta time.Duration) {
	d.advanceTimeline(delta)
	if d.Persistent.CloseState == CloseStateSaving && d.IsSaved() {
		d.Persistent.CloseState = CloseStateAllowed
	}
}

func (d *Document) advanceTimeline(delta time.Duration) {
	if !d.Persistent.TimelineIsPlaying {
		return
	}
	d.View.TimelineClock += delta

	name, ok := d.View.workbenchAnimationName()
	if !ok {
		return
	}
	animation := d.Sheet.Animation(name)
	if animation == nil {
		return
	}

	duration, defined := animation.DurationMillis()
	if !defined || duration == 0 {
		d.Persistent.TimelineIsPlaying = false
		d.View.TimelineClock = 0
		return
	}

	total := time.Duration(duration) * time.Millisecond
	if animation.IsLooping {
		d.View.TimelineClock %= total
	} else if d.View.TimelineClock >= total {
		d.Persistent.TimelineIsPlaying = false
		d.View.TimelineClock = total
	}
}

// workbenchFrame returns the frame open on the workbench.
func (d *Document) workbenchFrame() (*sheet.Frame, error) {
	path, ok := d.View.workbenchFramePath()
	if !ok {
		return nil, ErrNotEditingFrame
	}
	frame := d.Sheet.Frame(path)
	if frame == nil {
		return nil, ErrFrameNotInDocument
	}
	return frame, nil
}

// workbenchAnimation returns the animation open on the workbench.
func (d *Document) workbenchAnimation() (*sheet.Animation, error) {
	name, ok := d.View.workbenchAnimationName()
	if !ok {
		return nil, ErrNotEditingAnimation
	}
	animation := d.Sheet.Animation(name)
	if animation == nil {
		return nil, ErrAnimationNotInDocument
	}
	return animation, nil
}

// editedKeyframe returns the keyframe hitbox edits apply to: the keyframe
// under the playhead of the workbench animation.
func (d *Document) editedKeyframe() (*sheet.Keyframe, error) {
	animation, err := d.workbenchAnimation()
	if err != nil {
		return nil, err
	}
	_, keyframe := animation.KeyframeAt(d.View.TimelineClock)
	if keyframe == nil {
		return nil, ErrNoKeyframeForTime
	}
	return keyframe, nil
}

// selectedFramePaths returns the selected frame paths, or an error when the
// selection is not a frame selection.
func (d *Document) selectedFramePaths() (MultiSelection[string], error) {
	selection, ok := d.View.Selection.(FrameSelection)
	if !ok {
		return MultiSelection[string]{}, ErrNoFrameSelected
	}
	return selection.Paths, nil
}

// selectedKeyframeIndexes returns the selected timeline indexes, or an error
// when the selection is not a keyframe selection.
func (d *Document) selectedKeyframeIndexes() (MultiSelection[int], error) {
	selection, ok := d.View.Selection.(KeyframeSelection)
	if !ok {
		return MultiSelection[int]{}, ErrNoKeyframeSelected
	}
	return selection.Indexes, nil
}

// selectedHitboxNames returns the selected hitbox names, or an error when
// the selection is not a hitbox selection.
func (d *Document) selectedHitboxNames() (MultiSelection[string], error) {
	selection, ok := d.View.Selection.(HitboxSelection)
	if !ok {
		return MultiSelection[string]{}, ErrNoHitboxSelected
	}
	return selection.Names, nil
}
