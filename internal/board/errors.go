package board

import "errors"

// Errors returned by board operations.
var (
	// ErrNotFound indicates the document does not exist in the store.
	ErrNotFound = errors.New("document not found")

	// ErrMalformedSnapshot indicates the snapshot JSON is invalid.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrUnsupportedSnapshot indicates an unknown snapshot version.
	ErrUnsupportedSnapshot = errors.New("unsupported snapshot")

	// ErrPointerNotCaptured indicates a release for a pointer that is
	// not captured.
	ErrPointerNotCaptured = errors.New("pointer not captured")
)
