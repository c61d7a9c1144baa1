package engine

import "errors"

// ErrEmptyDocument is returned when the input text is empty or whitespace
// only. Malformed but non-empty text never errors; it degrades scores.
var ErrEmptyDocument = errors.New("engine: empty document")
