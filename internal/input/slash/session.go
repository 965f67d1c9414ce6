package slash

// Mode is the session's input mode.
type Mode uint8

const (
	// ModeNormal is ordinary typing; no menu is shown.
	ModeNormal Mode = iota
	// ModeCommand is active menu filtering; the slash segment at the end
	// of the block is interpreted, not displayed.
	ModeCommand
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Choice reports how a command-mode interaction ended. SlashStart is the
// rune offset of the '/' that opened the menu; the caller truncates the
// block content there. Command is the zero value when the menu was
// dismissed rather than committed.
type Choice struct {
	BlockID    string
	SlashStart int
	Command    Command
}

// Session is the slash-command state machine. It watches content edits,
// flips between normal and command mode, and tracks the live filter and
// the highlighted menu row.
//
// Session carries no lock; the owning editor serializes access.
type Session struct {
	mode       Mode
	blockID    string
	slashStart int
	filter     string
	highlight  int
}

// NewSession returns a session in normal mode.
func NewSession() *Session {
	return &Session{}
}

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// Active reports whether the menu is open.
func (s *Session) Active() bool { return s.mode == ModeCommand }

// BlockID returns the block the menu is attached to, or "".
func (s *Session) BlockID() string {
	if s.mode != ModeCommand {
		return ""
	}
	return s.blockID
}

// FilterText returns the live filter, the text typed after the slash.
func (s *Session) FilterText() string { return s.filter }

// SlashStart returns the rune offset of the '/' that opened the menu.
// Meaningful only while the menu is open.
func (s *Session) SlashStart() int { return s.slashStart }

// Highlight returns the index of the highlighted row within Matches.
func (s *Session) Highlight() int { return s.highlight }

// Matches returns the menu rows for the current filter, best match first.
func (s *Session) Matches() []Command {
	if s.mode != ModeCommand {
		return nil
	}
	return Filter(s.filter)
}

// Observe feeds one content edit through the state machine and returns
// the text the block should display: the full content in normal mode, the
// content with the trailing slash segment hidden in command mode.
func (s *Session) Observe(blockID, content string) string {
	runes := []rune(content)

	if s.mode == ModeCommand && blockID != s.blockID {
		// Focus moved to another block; the menu closes and the old
		// block keeps whatever was typed.
		s.Reset()
	}

	switch s.mode {
	case ModeNormal:
		if len(runes) > 0 && runes[len(runes)-1] == '/' {
			s.mode = ModeCommand
			s.blockID = blockID
			s.slashStart = len(runes) - 1
			s.filter = ""
			s.highlight = 0
		}
	case ModeCommand:
		idx := lastSlash(runes)
		if idx < 0 {
			// The slash was deleted; typing returns to normal.
			s.Reset()
			return content
		}
		s.slashStart = idx
		next := string(runes[idx+1:])
		if next != s.filter {
			s.filter = next
			s.highlight = 0
		}
	}

	if s.mode == ModeCommand {
		return string(runes[:s.slashStart])
	}
	return content
}

// MoveHighlight shifts the highlighted row by delta, clamped to the
// current match list.
func (s *Session) MoveHighlight(delta int) {
	if s.mode != ModeCommand {
		return
	}
	n := len(s.Matches())
	if n == 0 {
		s.highlight = 0
		return
	}
	s.highlight += delta
	if s.highlight < 0 {
		s.highlight = 0
	}
	if s.highlight >= n {
		s.highlight = n - 1
	}
}

// Accept commits the highlighted row. It reports false, leaving the menu
// open, when the filter currently matches nothing.
func (s *Session) Accept() (Choice, bool) {
	if s.mode != ModeCommand {
		return Choice{}, false
	}
	matches := s.Matches()
	if len(matches) == 0 {
		return Choice{}, false
	}
	i := s.highlight
	if i >= len(matches) {
		i = len(matches) - 1
	}
	c := Choice{BlockID: s.blockID, SlashStart: s.slashStart, Command: matches[i]}
	s.Reset()
	return c, true
}

// Pick commits a specific catalog command, as a pointer click on a menu
// row does.
func (s *Session) Pick(id string) (Choice, bool) {
	if s.mode != ModeCommand {
		return Choice{}, false
	}
	cmd, ok := Lookup(id)
	if !ok {
		return Choice{}, false
	}
	c := Choice{BlockID: s.blockID, SlashStart: s.slashStart, Command: cmd}
	s.Reset()
	return c, true
}

// Dismiss closes the menu without committing. The returned choice tells
// the caller which block to strip the slash segment from.
func (s *Session) Dismiss() (Choice, bool) {
	if s.mode != ModeCommand {
		return Choice{}, false
	}
	c := Choice{BlockID: s.blockID, SlashStart: s.slashStart}
	s.Reset()
	return c, true
}

// Reset drops back to normal mode, clearing filter and highlight.
func (s *Session) Reset() {
	s.mode = ModeNormal
	s.blockID = ""
	s.slashStart = 0
	s.filter = ""
	s.highlight = 0
}

// lastSlash returns the rune index of the last '/' in runes, or -1.
func lastSlash(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '/' {
			return i
		}
	}
	return -1
}
