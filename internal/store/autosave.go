package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/minutekit/minuta/internal/engine/document"
)

// Autosaver debounces document handoffs so a burst of edits produces
// one disk write. Notify it with every new snapshot; the latest one is
// saved once the debounce window passes quietly. A failed background
// save is logged, never fatal; the next snapshot triggers another
// attempt.
//
// The Autosaver retains the document value it is given; callers must
// hand it snapshots that are not mutated afterwards.
type Autosaver struct {
	st       *Store
	id       string
	debounce time.Duration

	mu      sync.Mutex
	pending *document.Document
	timer   *time.Timer
	closed  bool
}

// NewAutosaver returns an Autosaver writing to st under id.
func NewAutosaver(st *Store, id string, debounce time.Duration) *Autosaver {
	if debounce < 0 {
		debounce = 0
	}
	return &Autosaver{st: st, id: id, debounce: debounce}
}

// Notify records doc as the latest snapshot and (re)arms the debounce
// timer. Calls after Close are ignored.
func (a *Autosaver) Notify(doc document.Document) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.pending = &doc
	if a.timer == nil {
		a.timer = time.AfterFunc(a.debounce, a.fire)
	} else {
		a.timer.Reset(a.debounce)
	}
}

func (a *Autosaver) fire() {
	if err := a.Flush(); err != nil {
		slog.Warn("autosave failed", "session", a.id, "err", err)
	}
}

// Flush writes the pending snapshot now, if there is one.
func (a *Autosaver) Flush() error {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()

	if doc == nil {
		return nil
	}
	return a.st.Save(a.id, *doc)
}

// Close flushes any pending snapshot and stops the autosaver for good.
func (a *Autosaver) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()
	return a.Flush()
}
