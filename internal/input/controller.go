package input

import (
	"log/slog"
	"unicode"

	"github.com/minutekit/minuta/internal/engine"
	"github.com/minutekit/minuta/internal/engine/document"
)

// Controller routes normalized key events to editor commands. It owns
// the policy of which keys the block layer consumes and which fall
// through to the host text field: structural keys (Enter, boundary
// Backspace, block navigation, undo chords) are consumed here, plain
// character editing is not.
//
// The host calls HandleKey for arrow keys only when the caret already
// sits on the first or last visual line of its block; within a block,
// vertical movement belongs to the text field.
type Controller struct {
	ed *engine.Editor
}

// NewController returns a controller bound to an editor.
func NewController(ed *engine.Editor) *Controller {
	return &Controller{ed: ed}
}

// HandleKey routes one event and reports whether it was consumed.
func (c *Controller) HandleKey(ev Event) bool {
	if c.ed.Slash().Active {
		return c.handleCommandMode(ev)
	}
	return c.handleNormalMode(ev)
}

// handleCommandMode serves the open slash menu. Character keys fall
// through so the host field keeps feeding the filter via content
// updates.
func (c *Controller) handleCommandMode(ev Event) bool {
	switch ev.Key {
	case KeyUp:
		c.ed.SlashMove(-1)
		return true
	case KeyDown:
		c.ed.SlashMove(1)
		return true
	case KeyEnter:
		// Swallow Enter even when the filter matches nothing; a split
		// under an open menu is never what the user meant.
		c.ed.SlashAccept()
		return true
	case KeyEscape:
		c.ed.SlashDismiss()
		return true
	default:
		return false
	}
}

func (c *Controller) handleNormalMode(ev Event) bool {
	switch ev.Key {
	case KeyEnter:
		if ev.Modifiers.HasShift() {
			return false
		}
		caret := c.ed.Caret()
		if caret.BlockID == "" {
			return false
		}
		c.ed.SplitBlock(caret.BlockID, caret.Offset)
		return true

	case KeyBackspace:
		if len(c.ed.SelectedIDs()) > 1 {
			c.ed.DeleteSelection()
			return true
		}
		caret := c.ed.Caret()
		if caret.BlockID == "" || caret.Offset != 0 {
			return false
		}
		b, ok := c.ed.Block(caret.BlockID)
		if !ok {
			return false
		}
		if b.Content == "" {
			c.ed.DeleteBlockBackward(caret.BlockID)
		} else {
			c.ed.MergeBlockBackward(caret.BlockID, b.Content)
		}
		return true

	case KeyDelete:
		if len(c.ed.SelectedIDs()) > 1 {
			c.ed.DeleteSelection()
			return true
		}
		return false

	case KeyUp:
		if ev.Modifiers != ModNone {
			return false
		}
		c.ed.Navigate(document.Up)
		return true

	case KeyDown:
		if ev.Modifiers != ModNone {
			return false
		}
		c.ed.Navigate(document.Down)
		return true

	case KeyRune:
		return c.handleChord(ev)

	default:
		return false
	}
}

// handleChord serves primary-modifier shortcuts: undo, redo, and
// multi-block copy.
func (c *Controller) handleChord(ev Event) bool {
	if !ev.Modifiers.primary() {
		return false
	}
	switch unicode.ToLower(ev.Rune) {
	case 'z':
		if ev.Modifiers.HasShift() {
			c.ed.Redo()
		} else {
			c.ed.Undo()
		}
		return true
	case 'y':
		c.ed.Redo()
		return true
	case 'c':
		// Multi-block copy belongs to the block layer; single-block
		// copy stays native so partial text selections keep working.
		if len(c.ed.SelectedIDs()) > 1 {
			if _, err := c.ed.CopySelection(); err != nil {
				slog.Warn("copy to clipboard failed", "err", err)
			}
			return true
		}
		return false
	default:
		return false
	}
}
