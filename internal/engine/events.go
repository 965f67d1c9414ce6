package engine

import "github.com/minutekit/minuta/internal/engine/document"

// Origin distinguishes how a committed change came about, so listeners
// can react differently to fresh edits and replayed history.
type Origin uint8

const (
	// OriginEdit is a direct user edit.
	OriginEdit Origin = iota
	// OriginReplace is a wholesale document replacement.
	OriginReplace
	// OriginUndo is a snapshot restored by undo.
	OriginUndo
	// OriginRedo is a snapshot restored by redo.
	OriginRedo
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginEdit:
		return "edit"
	case OriginReplace:
		return "replace"
	case OriginUndo:
		return "undo"
	case OriginRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Event describes one committed document change. Doc is an independent
// copy; listeners may hold it as long as they like.
type Event struct {
	Doc    document.Document
	Origin Origin
}

// Listener receives committed changes. Listeners run on the goroutine
// that performed the edit, after the editor's lock is released; slow
// work belongs on the listener's own goroutine.
type Listener func(Event)
