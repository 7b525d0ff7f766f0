package document

import "github.com/dshills/spritestorm/internal/sheet"

// maxHistoryEntries caps the undo depth. Pushing past the cap evicts the
// oldest entry and shifts the index to compensate.
const maxHistoryEntries = 100

// historyEntry is one undo slot: full snapshots of the sheet and view, the
// command that produced them, and the content version they belong to.
type historyEntry struct {
	lastCommand Command
	sheet       *sheet.Sheet
	view        *View
	version     int32
}

// canUseUndoSystem reports whether history may record or navigate right now.
// Both are suspended while an interaction is in progress.
func (d *Document) canUseUndoSystem() bool {
	return d.Transient == nil
}

func (d *Document) pushHistoryEntry(entry historyEntry) {
	d.history = append(d.history[:d.historyIndex+1], entry)
	d.historyIndex = len(d.history) - 1

	for len(d.history) > maxHistoryEntries {
		d.history = d.history[1:]
		d.historyIndex--
	}
}

// recordCommand decides what the successful command left behind: a content
// change pushes a new versioned entry, a view-only change either overwrites
// a pure-navigation entry in place or pushes an unversioned one, and no
// change records nothing.
func (d *Document) recordCommand(command Command) {
	if !d.canUseUndoSystem() {
		return
	}

	current := &d.history[d.historyIndex]
	sheetChanged := !current.sheet.Equal(d.Sheet)

	if sheetChanged {
		d.nextVersion++
		d.pushHistoryEntry(historyEntry{
			lastCommand: command,
			sheet:       d.Sheet.Clone(),
			view:        d.View.Clone(),
			version:     d.nextVersion,
		})
		return
	}

	if current.view.Equal(d.View) {
		return
	}

	// The current entry is pure navigation when the entry before it holds
	// the same sheet; overwriting its view in place keeps panning, zooming
	// and selecting from flooding the history.
	merge := d.historyIndex > 0 &&
		d.history[d.historyIndex-1].sheet.Equal(current.sheet)
	if merge {
		current.view = d.View.Clone()
		current.lastCommand = command
		return
	}

	d.pushHistoryEntry(historyEntry{
		lastCommand: command,
		sheet:       d.Sheet.Clone(),
		view:        d.View.Clone(),
		version:     d.nextVersion,
	})
}

// CanUndo reports whether an earlier history entry exists.
func (d *Document) CanUndo() bool { return d.historyIndex > 0 }

// CanRedo reports whether a later history entry exists.
func (d *Document) CanRedo() bool { return d.historyIndex < len(d.history)-1 }

// Undo restores the previous history entry and stops playback. At the oldest
// entry it is a no-op. Returns ErrUndoWhileInteracting while an interaction
// is active.
func (d *Document) Undo() error {
	if !d.canUseUndoSystem() {
		return ErrUndoWhileInteracting
	}
	if d.CanUndo() {
		d.historyIndex--
		d.restoreHistoryEntry()
	}
	return nil
}

// Redo restores the next history entry and stops playback. At the newest
// entry it is a no-op. Returns ErrUndoWhileInteracting while an interaction
// is active.
func (d *Document) Redo() error {
	if !d.canUseUndoSystem() {
		return ErrUndoWhileInteracting
	}
	if d.CanRedo() {
		d.historyIndex++
		d.restoreHistoryEntry()
	}
	return nil
}

func (d *Document) restoreHistoryEntry() {
	entry := &d.history[d.historyIndex]
	d.Sheet = entry.sheet.Clone()
	d.View = entry.view.Clone()
	d.Persistent.TimelineIsPlaying = false
}

// UndoCommand returns the command that would be undone, or nil.
func (d *Document) UndoCommand() Command {
	return d.history[d.historyIndex].lastCommand
}

// RedoCommand returns the command that would be redone, or nil.
func (d *Document) RedoCommand() Command {
	if !d.CanRedo() {
		return nil
	}
	return d.history[d.historyIndex+1].lastCommand
}

// Version returns the content version of the current history entry. It
// increases only when sheet content changes, never for view-only edits.
func (d *Document) Version() int32 {
	return d.history[d.historyIndex].version
}

// HistoryLen returns the number of history entries.
func (d *Document) HistoryLen() int { return len(d.history) }
