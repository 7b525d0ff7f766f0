package app

import "errors"

// Application errors.
var (
	// ErrNoCurrentDocument indicates no document is currently focused.
	ErrNoCurrentDocument = errors.New("no current document")

	// ErrDocumentNotFound indicates no open document has the given path.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrDocumentAlreadyOpen indicates a document with that path is open.
	ErrDocumentAlreadyOpen = errors.New("document already open")
)
