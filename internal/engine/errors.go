package engine

import (
	"errors"
	"fmt"
)

// Editor errors.
var (
	// ErrNothingSelected indicates a copy with no selected block and no
	// caret to fall back on.
	ErrNothingSelected = errors.New("engine: nothing selected")

	// ErrNoClipboard indicates no clipboard writer is configured.
	ErrNoClipboard = errors.New("engine: no clipboard configured")

	// ErrInvalidDocument indicates a document that fails structural
	// validation, such as duplicate block ids.
	ErrInvalidDocument = errors.New("engine: invalid document")
)

// wrapInvalid attaches the validation detail to ErrInvalidDocument so
// callers can match the sentinel and still see the cause.
func wrapInvalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
}
