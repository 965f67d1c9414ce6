package document

import "errors"

// Validation errors returned by Document.Validate.
var (
	// ErrEmptyID indicates a block or section with no identifier.
	ErrEmptyID = errors.New("document: empty id")

	// ErrDuplicateID indicates two blocks or sections sharing an identifier.
	ErrDuplicateID = errors.New("document: duplicate id")

	// ErrInvalidBlockType indicates a block with an unrecognized type.
	ErrInvalidBlockType = errors.New("document: invalid block type")

	// ErrInvalidColorTag indicates a block with an unrecognized color tag.
	ErrInvalidColorTag = errors.New("document: invalid color tag")
)
