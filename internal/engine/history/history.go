package history

import (
	"errors"
	"sync"

	"github.com/minutekit/minuta/internal/engine/document"
)

// DefaultMaxEntries bounds the number of retained snapshots when no limit
// is configured.
const DefaultMaxEntries = 1000

// History errors.
var (
	// ErrNothingToUndo indicates the cursor already sits on the oldest
	// snapshot.
	ErrNothingToUndo = errors.New("history: nothing to undo")

	// ErrNothingToRedo indicates the cursor already sits on the newest
	// snapshot.
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// History is a linear undo timeline of full document snapshots. A cursor
// points at the current snapshot; committing while the cursor sits behind
// the end truncates the redo branch before appending, so the timeline
// never forks.
//
// Undo and Redo arm a replay guard that the next Commit consumes. The
// editor funnels every document change, replays included, through the
// same commit path; the guard is what keeps a replayed snapshot from
// being recorded as a fresh edit.
type History struct {
	mu         sync.Mutex
	snapshots  []document.Document
	cursor     int
	replaying  bool
	maxEntries int
}

// New returns a history seeded with the initial document. The seed uses
// one history slot and is the floor undo can reach. maxEntries <= 0
// selects DefaultMaxEntries.
func New(initial document.Document, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		snapshots:  []document.Document{initial},
		cursor:     0,
		maxEntries: maxEntries,
	}
}

// Commit records doc as the new current snapshot and reports whether the
// timeline changed. A commit arriving while the replay guard is armed
// consumes the guard and records nothing.
func (h *History) Commit(doc document.Document) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.replaying {
		h.replaying = false
		return false
	}

	h.snapshots = append(h.snapshots[:h.cursor+1], doc)
	h.cursor = len(h.snapshots) - 1
	h.trimLocked()
	return true
}

// Amend replaces the current snapshot instead of appending a new one,
// collapsing a burst of small edits into a single undo step. Like Commit
// it discards any redo branch, and a commit under an armed replay guard
// records nothing.
func (h *History) Amend(doc document.Document) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.replaying {
		h.replaying = false
		return false
	}

	// The seed snapshot is the floor undo can reach; never amend it away.
	if h.cursor == 0 {
		h.snapshots = append(h.snapshots[:1], doc)
	} else {
		h.snapshots = append(h.snapshots[:h.cursor], doc)
	}
	h.cursor = len(h.snapshots) - 1
	return true
}

// Undo steps the cursor back one snapshot and returns it, arming the
// replay guard. At the oldest snapshot it returns ErrNothingToUndo and
// leaves the guard alone.
func (h *History) Undo() (document.Document, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor == 0 {
		return document.Document{}, ErrNothingToUndo
	}
	h.cursor--
	h.replaying = true
	return h.snapshots[h.cursor], nil
}

// Redo steps the cursor forward one snapshot and returns it, arming the
// replay guard. At the newest snapshot it returns ErrNothingToRedo and
// leaves the guard alone.
func (h *History) Redo() (document.Document, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cursor >= len(h.snapshots)-1 {
		return document.Document{}, ErrNothingToRedo
	}
	h.cursor++
	h.replaying = true
	return h.snapshots[h.cursor], nil
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.snapshots)-1
}

// Current returns the snapshot under the cursor.
func (h *History) Current() document.Document {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshots[h.cursor]
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.snapshots)
}

// Replaying reports whether the replay guard is armed.
func (h *History) Replaying() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.replaying
}

// Reset discards the timeline and reseeds it with doc.
func (h *History) Reset(doc document.Document) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshots = []document.Document{doc}
	h.cursor = 0
	h.replaying = false
}

// trimLocked drops the oldest snapshots once the timeline exceeds the
// configured bound. Callers hold h.mu.
func (h *History) trimLocked() {
	excess := len(h.snapshots) - h.maxEntries
	if excess <= 0 {
		return
	}
	h.snapshots = append([]document.Document(nil), h.snapshots[excess:]...)
	h.cursor -= excess
	if h.cursor < 0 {
		h.cursor = 0
	}
}
