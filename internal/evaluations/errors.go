package evaluations

import "errors"

var (
	// ErrNotFound indicates the evaluation does not exist.
	ErrNotFound = errors.New("evaluation not found")
	// ErrInvalidInput indicates a caller-supplied value failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDocumentNotFound indicates the referenced document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
)
