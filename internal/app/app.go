package app

import (
	"fmt"
	"time"

	"github.com/dshills/spritestorm/internal/document"
)

// App is the collection of open documents and the focus, error, and exit
// state around them. It is not safe for concurrent use; wrap it in State.
type App struct {
	documents     []*document.Document
	currentPath   string
	errs          []string
	exitRequested bool
	logger        *Logger
}

// New creates an empty application. A nil logger logs at info to stderr.
func New(logger *Logger) *App {
	if logger == nil {
		logger = NewLogger(LogLevelInfo, nil)
	}
	return &App{logger: logger.WithComponent("app")}
}

// NewDocument creates an empty document at path and focuses it.
func (a *App) NewDocument(path string) (*document.Document, error) {
	if a.Document(path) != nil {
		return nil, ErrDocumentAlreadyOpen
	}
	d := document.New(path)
	a.documents = append(a.documents, d)
	a.currentPath = path
	a.logger.Info("created document %s", path)
	return d, nil
}

// OpenDocument reads a sheet file and focuses it. Opening an already open
// path just refocuses it.
func (a *App) OpenDocument(path string) (*document.Document, error) {
	if d := a.Document(path); d != nil {
		a.currentPath = path
		return d, nil
	}
	d, err := document.Open(path)
	if err != nil {
		a.ShowError(fmt.Sprintf("could not open %s: %v", path, err))
		return nil, err
	}
	a.documents = append(a.documents, d)
	a.currentPath = path
	a.logger.Info("opened document %s", path)
	return d, nil
}

// Document returns the open document at path, or nil.
func (a *App) Document(path string) *document.Document {
	for _, d := range a.documents {
		if d.Path == path {
			return d
		}
	}
	return nil
}

// Documents returns the open documents in opening order.
func (a *App) Documents() []*document.Document {
	return a.documents
}

// CurrentDocument returns the focused document, or nil when none is open.
func (a *App) CurrentDocument() *document.Document {
	return a.Document(a.currentPath)
}

// FocusDocument makes the document at path current.
func (a *App) FocusDocument(path string) error {
	if a.Document(path) == nil {
		return ErrDocumentNotFound
	}
	a.currentPath = path
	return nil
}

// RelocateDocument moves an open document to a new path, as a save-as does.
func (a *App) RelocateDocument(from, to string) error {
	d := a.Document(from)
	if d == nil {
		return ErrDocumentNotFound
	}
	d.Path = to
	if a.currentPath == from {
		a.currentPath = to
	}
	return nil
}

// Apply routes a command to the focused document. Failures of continuous
// interaction updates are routine (a dying drag keeps streaming them) and
// log at debug; any other failure logs at warn and lands in the error queue.
func (a *App) Apply(command document.Command) error {
	d := a.CurrentDocument()
	if d == nil {
		return ErrNoCurrentDocument
	}
	err := d.Apply(command)
	if err == nil {
		return nil
	}
	if document.IsLiveUpdate(command) {
		a.logger.Debug("command %s: %v", command.CommandName(), err)
	} else {
		a.logger.Warn("command %s: %v", command.CommandName(), err)
		a.ShowError(fmt.Sprintf("%s: %v", command.CommandName(), err))
	}
	return err
}

// SaveCurrent writes the focused document to its path and marks the saved
// version.
func (a *App) SaveCurrent() error {
	d := a.CurrentDocument()
	if d == nil {
		return ErrNoCurrentDocument
	}
	version := d.Version()
	if err := document.Save(d.Sheet, d.Path); err != nil {
		a.ShowError(err.Error())
		return err
	}
	return d.Apply(document.MarkAsSaved{Version: version})
}

// RequestExit starts closing every document; the application exits once all
// of them resolve their close flows.
func (a *App) RequestExit() {
	a.exitRequested = true
	for _, d := range a.documents {
		d.RequestClose()
	}
}

// ShouldExit reports whether an exit was requested and no document remains.
func (a *App) ShouldExit() bool {
	return a.exitRequested && len(a.documents) == 0
}

// Tick advances every document's timeline and close flow, then drops the
// documents whose close was allowed.
func (a *App) Tick(delta time.Duration) {
	for _, d := range a.documents {
		d.Tick(delta)
	}

	kept := a.documents[:0]
	for _, d := range a.documents {
		if d.CloseAllowed() {
			a.logger.Info("closed document %s", d.Path)
			if a.currentPath == d.Path {
				a.currentPath = ""
			}
			continue
		}
		kept = append(kept, d)
	}
	a.documents = kept

	if a.currentPath == "" && len(a.documents) > 0 {
		a.currentPath = a.documents[len(a.documents)-1].Path
	}
}

// ShowError queues a message for the presentation layer.
func (a *App) ShowError(message string) {
	a.errs = append(a.errs, message)
}

// CurrentError returns the oldest queued error message.
func (a *App) CurrentError() (string, bool) {
	if len(a.errs) == 0 {
		return "", false
	}
	return a.errs[0], true
}

// AcknowledgeError drops the oldest queued error message.
func (a *App) AcknowledgeError() {
	if len(a.errs) > 0 {
		a.errs = a.errs[1:]
	}
}

// ReferencedTexturePaths returns every frame path referenced by any open
// document, deduplicated. The texture cache reconciles against this list.
func (a *App) ReferencedTexturePaths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, d := range a.documents {
		for _, path := range d.Sheet.FramePaths() {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}
	return paths
}
