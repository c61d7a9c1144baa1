package documents

import "errors"

var (
	// ErrNotFound indicates the document does not exist or is deleted.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput indicates a caller-supplied value failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
