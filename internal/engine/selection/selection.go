package selection

import "github.com/minutekit/minuta/internal/engine/document"

// State tracks which blocks are selected and the gesture that produced
// the selection. The id list is always a contiguous run of the document's
// flattened order.
//
// State carries no lock; the owning editor serializes access.
type State struct {
	ids        []string
	anchor     string
	dragOrigin string
	dragging   bool
}

// New returns an empty selection.
func New() *State {
	return &State{}
}

// IDs returns the selected block ids in reading order. The returned slice
// is a copy.
func (s *State) IDs() []string {
	if len(s.ids) == 0 {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Anchor returns the id of the last single-click target, the fixed end of
// shift extension.
func (s *State) Anchor() string { return s.anchor }

// DragOrigin returns the block where the active drag started, or "" when
// no drag is active.
func (s *State) DragOrigin() string { return s.dragOrigin }

// Dragging reports whether a press-drag gesture is in progress.
func (s *State) Dragging() bool { return s.dragging }

// IsEmpty reports whether nothing is selected.
func (s *State) IsEmpty() bool { return len(s.ids) == 0 }

// IsMulti reports whether more than one block is selected.
func (s *State) IsMulti() bool { return len(s.ids) > 1 }

// Contains reports whether the block is part of the selection.
func (s *State) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Primary returns the first selected block in reading order, or "".
func (s *State) Primary() string {
	if len(s.ids) == 0 {
		return ""
	}
	return s.ids[0]
}

// Start begins a selection gesture on a block: the selection collapses to
// that single block, which becomes both the anchor for later shift
// extension and the origin of a potential drag.
func (s *State) Start(blockID string) {
	s.ids = []string{blockID}
	s.anchor = blockID
	s.dragOrigin = blockID
	s.dragging = true
}

// ExtendDrag grows the selection to the contiguous run between the drag
// origin and target. Events arriving outside an active drag, or targeting
// a block the document does not hold, are ignored.
func (s *State) ExtendDrag(d document.Document, target string) {
	if !s.dragging || s.dragOrigin == "" {
		return
	}
	ids := d.RangeBetween(s.dragOrigin, target)
	if ids == nil {
		return
	}
	s.ids = ids
}

// EndDrag finishes the press-drag gesture. The selected ids survive; only
// the gesture state resets.
func (s *State) EndDrag() {
	s.dragging = false
	s.dragOrigin = ""
}

// ExtendShift grows the selection to the run between the anchor and
// target. Without a usable anchor the gesture falls back to a plain
// selection of the target; an unknown target is ignored.
func (s *State) ExtendShift(d document.Document, target string) {
	if !d.Contains(target) {
		return
	}
	if s.anchor == "" || !d.Contains(s.anchor) {
		s.SetSingle(target)
		return
	}
	ids := d.RangeBetween(s.anchor, target)
	if ids == nil {
		return
	}
	s.ids = ids
	s.dragOrigin = ""
	s.dragging = false
}

// SetSingle collapses the selection to one block without starting a drag.
// Used by commands that move focus programmatically, such as split and
// merge.
func (s *State) SetSingle(blockID string) {
	s.ids = []string{blockID}
	s.anchor = blockID
	s.dragOrigin = ""
	s.dragging = false
}

// Clear empties the selection and resets all gesture state.
func (s *State) Clear() {
	s.ids = nil
	s.anchor = ""
	s.dragOrigin = ""
	s.dragging = false
}

// RepairAfterDelete re-targets the selection after blocks were removed.
// post is the document with the deletion applied; deletedIndex is the
// flattened index the first removed selected block held before the
// deletion. The selection collapses to the block now sitting just above
// that position, or to the first remaining block, or to nothing when the
// document has no blocks left.
func (s *State) RepairAfterDelete(post document.Document, deletedIndex int) {
	flat := post.Flatten()
	if len(flat) == 0 {
		s.Clear()
		return
	}
	idx := deletedIndex - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(flat) {
		idx = len(flat) - 1
	}
	s.SetSingle(flat[idx].BlockID)
}

// Prune drops selected ids the document no longer holds, collapsing
// gesture state when the anchor or drag origin disappeared. Used after
// wholesale document swaps such as undo.
func (s *State) Prune(d document.Document) {
	kept := s.ids[:0]
	for _, id := range s.ids {
		if d.Contains(id) {
			kept = append(kept, id)
		}
	}
	s.ids = kept
	if len(s.ids) == 0 {
		s.Clear()
		return
	}
	if s.anchor != "" && !d.Contains(s.anchor) {
		s.anchor = s.ids[0]
	}
	if s.dragOrigin != "" && !d.Contains(s.dragOrigin) {
		s.dragOrigin = ""
		s.dragging = false
	}
}
