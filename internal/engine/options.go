package engine

import (
	"time"

	"github.com/minutekit/minuta/internal/engine/document"
	"github.com/minutekit/minuta/internal/engine/history"
	"github.com/minutekit/minuta/internal/engine/selection"
	"github.com/minutekit/minuta/internal/export/clipboard"
	"github.com/minutekit/minuta/internal/input/slash"
)

// Defaults for editor construction.
const (
	// DefaultNewSectionTitle names sections created through AddSection.
	DefaultNewSectionTitle = "New section"

	// DefaultCoalesceWindow is the typing-burst window applied when
	// coalescing is enabled without an explicit duration.
	DefaultCoalesceWindow = 750 * time.Millisecond
)

// Option configures an Editor during construction.
type Option func(*Editor)

// WithDocument seeds the editor with an initial document. Without it the
// editor starts empty.
func WithDocument(d document.Document) Option {
	return func(e *Editor) {
		e.doc = d.Clone()
	}
}

// WithMaxHistory bounds the undo timeline. Values <= 0 select the
// history package default.
func WithMaxHistory(n int) Option {
	return func(e *Editor) {
		e.maxHistory = n
	}
}

// WithClipboard sets the clipboard writer CopySelection hands payloads
// to. Without it the editor uses the system clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(e *Editor) {
		e.clip = w
	}
}

// WithTypingCoalescing collapses rapid successive edits to the same
// block into one undo step. Edits landing within window of the previous
// edit to that block amend the current snapshot instead of appending;
// window <= 0 disables coalescing, which is the default.
func WithTypingCoalescing(window time.Duration) Option {
	return func(e *Editor) {
		e.coalesceWindow = window
	}
}

// WithNewSectionTitle overrides the title given to sections created
// through AddSection.
func WithNewSectionTitle(title string) Option {
	return func(e *Editor) {
		e.newSectionTitle = title
	}
}

// New builds an editor from options. It fails only when the seeded
// document is structurally invalid.
func New(opts ...Option) (*Editor, error) {
	e := &Editor{
		doc:             document.New(),
		newSectionTitle: DefaultNewSectionTitle,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.doc.Validate(); err != nil {
		return nil, wrapInvalid(err)
	}
	if e.clip == nil {
		e.clip = clipboard.System()
	}
	e.sel = selection.New()
	e.slash = slash.NewSession()
	e.hist = history.New(e.doc, e.maxHistory)
	return e, nil
}
