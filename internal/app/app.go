// Package app assembles a working session: configuration, the on-disk
// store, and an editor over the session's document, with autosave wired
// between them.
package app

import (
	"errors"
	"fmt"

	"github.com/minutekit/minuta/internal/config"
	"github.com/minutekit/minuta/internal/engine"
	"github.com/minutekit/minuta/internal/engine/document"
	"github.com/minutekit/minuta/internal/store"
)

// ErrSessionExists is returned by New when CreateOnly is set and the
// named session is already stored.
var ErrSessionExists = errors.New("app: session already exists")

// App owns one editing session end to end. Create it with New, drive
// the editor through Editor, and Close it to flush pending autosaves.
type App struct {
	cfg       config.Config
	store     *store.Store
	editor    *engine.Editor
	saver     *store.Autosaver
	sessionID string
}

// Options configures session assembly.
type Options struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// StorageDir overrides the configured session store directory.
	StorageDir string

	// SessionID names the session. An id already in the store resumes
	// its document; anything else creates a fresh one. Empty generates
	// an id.
	SessionID string

	// CreateOnly refuses to resume: assembly fails with
	// ErrSessionExists when SessionID is already stored, before any
	// editor or autosaver is built.
	CreateOnly bool

	// TemplatePath overrides the configured document template for a
	// freshly created session.
	TemplatePath string

	// Title is the document title for a freshly created session.
	Title string
}

// InitError reports which component failed during assembly.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("app: init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// New assembles a session in dependency order.
func New(opts Options) (*App, error) {
	a := &App{}

	// 1. Configuration
	path := opts.ConfigPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	if opts.StorageDir != "" {
		cfg.Storage.Dir = opts.StorageDir
	}
	if opts.TemplatePath != "" {
		cfg.Document.Template = opts.TemplatePath
	}
	a.cfg = cfg

	// 2. Store
	dir, err := cfg.StorageDir()
	if err != nil {
		return nil, &InitError{Component: "store", Err: err}
	}
	st, err := store.Open(dir)
	if err != nil {
		return nil, &InitError{Component: "store", Err: err}
	}
	a.store = st

	// 3. Session document: resume or create
	a.sessionID = opts.SessionID
	if a.sessionID == "" {
		a.sessionID = document.NewID()
	}
	var doc document.Document
	if st.Has(a.sessionID) {
		if opts.CreateOnly {
			return nil, &InitError{
				Component: "session",
				Err:       fmt.Errorf("%w: %s", ErrSessionExists, a.sessionID),
			}
		}
		if doc, err = st.Load(a.sessionID); err != nil {
			return nil, &InitError{Component: "session", Err: err}
		}
	} else {
		titles, err := cfg.SectionTitles()
		if err != nil {
			return nil, &InitError{Component: "template", Err: err}
		}
		doc = document.NewWithSections(opts.Title, titles...)
	}

	// 4. Editor
	ed, err := engine.New(
		engine.WithDocument(doc),
		engine.WithMaxHistory(cfg.History.MaxEntries),
		engine.WithTypingCoalescing(cfg.CoalesceWindow()),
		engine.WithNewSectionTitle(cfg.Document.NewSectionTitle),
	)
	if err != nil {
		return nil, &InitError{Component: "editor", Err: err}
	}
	a.editor = ed

	// 5. Autosave: every committed change feeds the debouncer
	if cfg.Autosave.Enabled {
		saver := store.NewAutosaver(st, a.sessionID, cfg.AutosaveDebounce())
		ed.OnChange(func(ev engine.Event) {
			saver.Notify(ev.Doc)
		})
		a.saver = saver
	}

	return a, nil
}

// Editor returns the session's editor.
func (a *App) Editor() *engine.Editor { return a.editor }

// Config returns the resolved configuration.
func (a *App) Config() config.Config { return a.cfg }

// Store returns the session store.
func (a *App) Store() *store.Store { return a.store }

// SessionID returns the id the session persists under.
func (a *App) SessionID() string { return a.sessionID }

// Save writes the current document to the store immediately, bypassing
// the autosave debounce.
func (a *App) Save() error {
	return a.store.Save(a.sessionID, a.editor.Document())
}

// Close flushes any pending autosave. With autosave disabled the last
// explicit Save is the final persisted state.
func (a *App) Close() error {
	if a.saver == nil {
		return nil
	}
	return a.saver.Close()
}
