package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/minutekit/minuta/internal/engine/document"
	"github.com/minutekit/minuta/internal/engine/history"
	"github.com/minutekit/minuta/internal/engine/selection"
	"github.com/minutekit/minuta/internal/export/clipboard"
	"github.com/minutekit/minuta/internal/export/markdown"
	"github.com/minutekit/minuta/internal/input/slash"
)

// Caret is the text cursor position: a block and a rune offset into its
// content. The zero value means no caret.
type Caret struct {
	BlockID string
	Offset  int
}

// SlashView is a snapshot of the slash menu for rendering.
type SlashView struct {
	Active    bool
	BlockID   string
	Filter    string
	Highlight int
	Matches   []slash.Command
}

// Editor is the facade over the document model, selection, slash menu,
// and history. All methods are safe for concurrent use; every document
// change flows through a single commit path so history, selection
// repair, and change notification stay consistent with each other.
type Editor struct {
	mu    sync.RWMutex
	doc   document.Document
	sel   *selection.State
	hist  *history.History
	slash *slash.Session
	caret Caret

	clip      clipboard.Writer
	listeners []Listener

	maxHistory      int
	newSectionTitle string

	coalesceWindow time.Duration
	lastEditBlock  string
	lastEditAt     time.Time
	now            func() time.Time
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Document returns an independent copy of the current document.
func (e *Editor) Document() document.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

// Block returns the block with the given id.
func (e *Editor) Block(id string) (document.Block, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, _, ok := e.doc.Block(id)
	return b, ok
}

// DisplayContent returns the text a block should render: its stored
// content, minus the trailing slash segment while the menu is open on
// that block.
func (e *Editor) DisplayContent(id string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, _, ok := e.doc.Block(id)
	if !ok {
		return "", false
	}
	if e.slash.Active() && e.slash.BlockID() == id {
		runes := []rune(b.Content)
		if ss := e.slash.SlashStart(); ss <= len(runes) {
			return string(runes[:ss]), true
		}
	}
	return b.Content, true
}

// SelectedIDs returns the selected block ids in reading order.
func (e *Editor) SelectedIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.IDs()
}

// SelectionAnchor returns the anchor block of the selection, or "".
func (e *Editor) SelectionAnchor() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.Anchor()
}

// IsDragging reports whether a press-drag gesture is in progress.
func (e *Editor) IsDragging() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sel.Dragging()
}

// Caret returns the current caret position.
func (e *Editor) Caret() Caret {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.caret
}

// CanUndo reports whether an undo step exists.
func (e *Editor) CanUndo() bool { return e.hist.CanUndo() }

// CanRedo reports whether a redo step exists.
func (e *Editor) CanRedo() bool { return e.hist.CanRedo() }

// Slash returns a rendering snapshot of the slash menu.
func (e *Editor) Slash() SlashView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.slash.Active() {
		return SlashView{}
	}
	return SlashView{
		Active:    true,
		BlockID:   e.slash.BlockID(),
		Filter:    e.slash.FilterText(),
		Highlight: e.slash.Highlight(),
		Matches:   e.slash.Matches(),
	}
}

// ExportMarkdown renders the current document as markdown.
func (e *Editor) ExportMarkdown() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return markdown.Serialize(e.doc)
}

// OnChange registers a listener for committed document changes.
func (e *Editor) OnChange(fn Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// ---------------------------------------------------------------------------
// Content editing
// ---------------------------------------------------------------------------

// UpdateBlockContent replaces a block's content, feeding the edit
// through the slash state machine. Rapid edits to the same block
// coalesce into one undo step when coalescing is enabled.
func (e *Editor) UpdateBlockContent(blockID, content string) {
	e.mu.Lock()
	ev, changed := e.updateContentLocked(blockID, content)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) updateContentLocked(blockID, content string) (Event, bool) {
	b, _, ok := e.doc.Block(blockID)
	if !ok || b.Content == content {
		return Event{}, false
	}

	e.slash.Observe(blockID, content)
	newDoc := e.doc.UpdateBlockContent(blockID, content)

	ts := e.now()
	coalesce := e.coalesceWindow > 0 &&
		e.lastEditBlock == blockID &&
		ts.Sub(e.lastEditAt) <= e.coalesceWindow
	e.doc = newDoc
	if coalesce {
		e.hist.Amend(newDoc)
	} else {
		e.hist.Commit(newDoc)
	}
	e.lastEditBlock = blockID
	e.lastEditAt = ts

	if e.caret.BlockID == blockID {
		if limit := runeLen(content); e.caret.Offset > limit {
			e.caret.Offset = limit
		}
	}
	return Event{Doc: newDoc.Clone(), Origin: OriginEdit}, true
}

// SplitBlock splits a block at a rune offset: the block keeps the text
// before the offset, a new block below takes the rest. Splitting a
// bullet yields another bullet; every other type yields a text block.
// Selection and caret move to the start of the new block. One history
// commit covers the whole split.
func (e *Editor) SplitBlock(blockID string, at int) {
	e.mu.Lock()
	ev, changed := e.splitLocked(blockID, at)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) splitLocked(blockID string, at int) (Event, bool) {
	b, _, ok := e.doc.Block(blockID)
	if !ok {
		return Event{}, false
	}
	runes := []rune(b.Content)
	if at < 0 {
		at = 0
	}
	if at > len(runes) {
		at = len(runes)
	}

	ntype := document.BlockText
	if b.Type == document.BlockBullet {
		ntype = document.BlockBullet
	}
	nb := document.NewBlock(ntype)
	nb.Content = string(runes[at:])
	nb.Color = b.Color

	newDoc := e.doc.
		UpdateBlockContent(blockID, string(runes[:at])).
		InsertBlockAfter(blockID, nb)

	e.sel.SetSingle(nb.ID)
	e.caret = Caret{BlockID: nb.ID}
	e.resetInputLocked()
	return e.commitLocked(newDoc, OriginEdit), true
}

// MergeBlockBackward merges a block into its predecessor in flattened
// order: the predecessor gains leftover at its end, the block goes away,
// and the caret lands on the join point. Merging the first block is a
// no-op.
func (e *Editor) MergeBlockBackward(blockID, leftover string) {
	e.mu.Lock()
	ev, changed := e.mergeLocked(blockID, leftover)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) mergeLocked(blockID, leftover string) (Event, bool) {
	if !e.doc.Contains(blockID) {
		return Event{}, false
	}
	idx := e.doc.FlatIndex(blockID)
	if idx <= 0 {
		return Event{}, false
	}
	prevID := e.doc.Flatten()[idx-1].BlockID
	prev, _, _ := e.doc.Block(prevID)
	join := runeLen(prev.Content)

	newDoc := e.doc.
		UpdateBlockContent(prevID, prev.Content+leftover).
		RemoveBlock(blockID)

	e.sel.SetSingle(prevID)
	e.caret = Caret{BlockID: prevID, Offset: join}
	e.resetInputLocked()
	return e.commitLocked(newDoc, OriginEdit), true
}

// DeleteBlockBackward removes an empty block, moving selection and caret
// to the end of the previous block in flattened order, or onto the first
// remaining block when there is no previous. Blocks with content are
// left alone; merging is the caller's explicit choice.
func (e *Editor) DeleteBlockBackward(blockID string) {
	e.mu.Lock()
	ev, changed := e.deleteBackwardLocked(blockID)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) deleteBackwardLocked(blockID string) (Event, bool) {
	b, _, ok := e.doc.Block(blockID)
	if !ok || b.Content != "" {
		return Event{}, false
	}
	idx := e.doc.FlatIndex(blockID)
	newDoc := e.doc.RemoveBlock(blockID)

	e.sel.RepairAfterDelete(newDoc, idx)
	if p := e.sel.Primary(); p != "" {
		off := 0
		if idx > 0 {
			if pb, _, ok := newDoc.Block(p); ok {
				off = runeLen(pb.Content)
			}
		}
		e.caret = Caret{BlockID: p, Offset: off}
	} else {
		e.caret = Caret{}
	}
	e.resetInputLocked()
	return e.commitLocked(newDoc, OriginEdit), true
}

// DeleteSelection removes every selected block in one commit and clears
// the selection.
func (e *Editor) DeleteSelection() {
	e.mu.Lock()
	ev, changed := e.deleteSelectionLocked()
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) deleteSelectionLocked() (Event, bool) {
	ids := e.sel.IDs()
	if len(ids) == 0 {
		return Event{}, false
	}
	newDoc := e.doc.RemoveBlocks(ids)
	e.sel.Clear()
	e.caret = Caret{}
	e.resetInputLocked()
	return e.commitLocked(newDoc, OriginEdit), true
}

// SetBlockType switches a block's type directly, without the menu.
func (e *Editor) SetBlockType(blockID string, t document.BlockType) {
	e.mu.Lock()
	ev, changed := e.setTypeLocked(blockID, t)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) setTypeLocked(blockID string, t document.BlockType) (Event, bool) {
	b, _, ok := e.doc.Block(blockID)
	if !ok || !t.Valid() || b.Type == t {
		return Event{}, false
	}
	e.resetInputLocked()
	return e.commitLocked(e.doc.SetBlockType(blockID, t), OriginEdit), true
}

// SetBlockColor switches a block's color tag.
func (e *Editor) SetBlockColor(blockID string, c document.ColorTag) {
	e.mu.Lock()
	ev, changed := e.setColorLocked(blockID, c)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) setColorLocked(blockID string, c document.ColorTag) (Event, bool) {
	b, _, ok := e.doc.Block(blockID)
	if !ok || !c.Valid() || b.Color == c {
		return Event{}, false
	}
	e.resetInputLocked()
	return e.commitLocked(e.doc.SetBlockColor(blockID, c), OriginEdit), true
}

// AddBlockBelow inserts a fresh empty text block after the given block
// and focuses it. The created block is returned.
func (e *Editor) AddBlockBelow(blockID string) (document.Block, bool) {
	e.mu.Lock()
	nb, ev, changed := e.addBelowLocked(blockID)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
	return nb, changed
}

func (e *Editor) addBelowLocked(blockID string) (document.Block, Event, bool) {
	if !e.doc.Contains(blockID) {
		return document.Block{}, Event{}, false
	}
	nb := document.NewBlock(document.BlockText)
	newDoc := e.doc.InsertBlockAfter(blockID, nb)
	e.sel.SetSingle(nb.ID)
	e.caret = Caret{BlockID: nb.ID}
	e.resetInputLocked()
	return nb, e.commitLocked(newDoc, OriginEdit), true
}

// AddBlockToSection appends a fresh empty text block to the section
// under key and focuses it. This is how an empty section gains its
// first block; sections with blocks usually grow through SplitBlock or
// AddBlockBelow instead.
func (e *Editor) AddBlockToSection(key string) (document.Block, bool) {
	e.mu.Lock()
	nb, ev, changed := e.addToSectionLocked(key)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
	return nb, changed
}

func (e *Editor) addToSectionLocked(key string) (document.Block, Event, bool) {
	if e.doc.SectionIndex(key) < 0 {
		return document.Block{}, Event{}, false
	}
	nb := document.NewBlock(document.BlockText)
	newDoc := e.doc.AppendBlock(key, nb)
	e.sel.SetSingle(nb.ID)
	e.caret = Caret{BlockID: nb.ID}
	e.resetInputLocked()
	return nb, e.commitLocked(newDoc, OriginEdit), true
}

// ---------------------------------------------------------------------------
// Section editing
// ---------------------------------------------------------------------------

// AddSection appends a new section holding one empty text block, focuses
// that block, and returns the created section.
func (e *Editor) AddSection() document.Section {
	e.mu.Lock()
	newDoc, sec := e.doc.AddSection(e.newSectionTitle)
	seed := sec.Blocks[0].ID
	e.sel.SetSingle(seed)
	e.caret = Caret{BlockID: seed}
	e.resetInputLocked()
	ev := e.commitLocked(newDoc, OriginEdit)
	e.mu.Unlock()
	e.notify(ev)
	return sec
}

// RenameSection replaces a section's title.
func (e *Editor) RenameSection(key, title string) {
	e.mu.Lock()
	ev, changed := e.renameSectionLocked(key, title)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) renameSectionLocked(key, title string) (Event, bool) {
	sec, ok := e.doc.Section(key)
	if !ok || sec.Title == title {
		return Event{}, false
	}
	e.resetInputLocked()
	return e.commitLocked(e.doc.SetSectionTitle(key, title), OriginEdit), true
}

// DeleteSection removes a section with all of its blocks in one commit.
// A selection that loses blocks to the deletion collapses onto the
// nearest surviving neighbor.
func (e *Editor) DeleteSection(key string) {
	e.mu.Lock()
	ev, changed := e.deleteSectionLocked(key)
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
}

func (e *Editor) deleteSectionLocked(key string) (Event, bool) {
	sec, ok := e.doc.Section(key)
	if !ok {
		return Event{}, false
	}
	deleted := make(map[string]struct{}, len(sec.Blocks))
	for _, b := range sec.Blocks {
		deleted[b.ID] = struct{}{}
	}
	minIdx := -1
	for _, id := range e.sel.IDs() {
		if _, gone := deleted[id]; !gone {
			continue
		}
		if i := e.doc.FlatIndex(id); minIdx < 0 || i < minIdx {
			minIdx = i
		}
	}

	newDoc := e.doc.RemoveSection(key)
	if minIdx >= 0 {
		e.sel.RepairAfterDelete(newDoc, minIdx)
	}
	if !newDoc.Contains(e.caret.BlockID) {
		if p := e.sel.Primary(); p != "" && newDoc.Contains(p) {
			e.caret = Caret{BlockID: p}
		} else {
			e.caret = Caret{}
		}
	}
	e.resetInputLocked()
	return e.commitLocked(newDoc, OriginEdit), true
}

// ---------------------------------------------------------------------------
// Selection and navigation
// ---------------------------------------------------------------------------

// SelectBlock collapses the selection to a block and arms a drag, as a
// pointer press does. The caret moves to the block start; callers refine
// it with SetCaret once the press position is known.
func (e *Editor) SelectBlock(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.doc.Contains(id) {
		return
	}
	// Focusing another block closes an open menu; the abandoned block
	// keeps its typed slash segment.
	if e.slash.Active() && e.slash.BlockID() != id {
		e.slash.Reset()
	}
	e.sel.Start(id)
	e.caret = Caret{BlockID: id}
}

// DragTo extends the active drag selection to the contiguous flattened
// range between the drag origin and the target block.
func (e *Editor) DragTo(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.ExtendDrag(e.doc, id)
	if e.sel.IsMulti() {
		e.caret = Caret{}
	}
}

// EndDrag finishes the drag gesture, keeping the selection.
func (e *Editor) EndDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.EndDrag()
}

// ShiftSelectTo extends the selection from its anchor to the target
// block, as shift-click does.
func (e *Editor) ShiftSelectTo(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.ExtendShift(e.doc, id)
	if e.sel.IsMulti() {
		e.caret = Caret{}
	}
}

// ClearSelection empties the selection and drops the caret, as a click
// on empty canvas does.
func (e *Editor) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel.Clear()
	e.caret = Caret{}
	e.slash.Reset()
}

// SetCaret places the caret inside a block, clamping the offset to the
// content length.
func (e *Editor) SetCaret(blockID string, offset int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	b, _, ok := e.doc.Block(blockID)
	if !ok {
		return
	}
	if offset < 0 {
		offset = 0
	}
	if limit := b.ContentLength(); offset > limit {
		offset = limit
	}
	e.caret = Caret{BlockID: blockID, Offset: offset}
}

// Navigate moves focus to the adjacent block in flattened order,
// preserving the caret column as far as the target content allows. At
// the document edge focus stays put. The focused block id is returned.
func (e *Editor) Navigate(dir document.Direction) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	from := e.caret.BlockID
	if from == "" {
		from = e.sel.Primary()
	}
	if from == "" {
		return ""
	}
	target := e.doc.Navigate(from, dir)
	b, _, ok := e.doc.Block(target)
	if !ok {
		return from
	}
	off := e.caret.Offset
	if limit := b.ContentLength(); off > limit {
		off = limit
	}
	e.sel.SetSingle(target)
	e.caret = Caret{BlockID: target, Offset: off}
	e.resetInputLocked()
	return target
}

// ---------------------------------------------------------------------------
// Slash menu
// ---------------------------------------------------------------------------

// SlashMove shifts the menu highlight by delta rows.
func (e *Editor) SlashMove(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.slash.MoveHighlight(delta)
}

// SlashAccept commits the highlighted menu row: the block's type
// switches and the slash segment disappears from its content, in one
// history commit. It reports false when the menu is closed or the filter
// matches nothing.
func (e *Editor) SlashAccept() bool {
	e.mu.Lock()
	choice, ok := e.slash.Accept()
	ev, changed := Event{}, false
	if ok {
		ev, changed = e.applySlashLocked(choice, true)
	}
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
	return ok
}

// SlashPick commits a specific menu row by catalog id, as a click does.
func (e *Editor) SlashPick(id string) bool {
	e.mu.Lock()
	choice, ok := e.slash.Pick(id)
	ev, changed := Event{}, false
	if ok {
		ev, changed = e.applySlashLocked(choice, true)
	}
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
	return ok
}

// SlashDismiss closes the menu, stripping the slash segment so the block
// shows only the text that preceded it.
func (e *Editor) SlashDismiss() bool {
	e.mu.Lock()
	choice, ok := e.slash.Dismiss()
	ev, changed := Event{}, false
	if ok {
		ev, changed = e.applySlashLocked(choice, false)
	}
	e.mu.Unlock()
	if changed {
		e.notify(ev)
	}
	return ok
}

// applySlashLocked strips the slash segment from the chosen block and,
// for commits, switches its type. One history commit covers both.
func (e *Editor) applySlashLocked(choice slash.Choice, commit bool) (Event, bool) {
	b, _, ok := e.doc.Block(choice.BlockID)
	if !ok {
		return Event{}, false
	}
	runes := []rune(b.Content)
	ss := choice.SlashStart
	if ss < 0 {
		ss = 0
	}
	if ss > len(runes) {
		ss = len(runes)
	}
	trimmed := string(runes[:ss])

	newDoc := e.doc
	if commit {
		newDoc = newDoc.SetBlockType(choice.BlockID, choice.Command.Type)
	}
	newDoc = newDoc.UpdateBlockContent(choice.BlockID, trimmed)
	if newDoc.Equal(e.doc) {
		return Event{}, false
	}

	e.sel.SetSingle(choice.BlockID)
	e.caret = Caret{BlockID: choice.BlockID, Offset: runeLen(trimmed)}
	e.lastEditBlock = ""
	return e.commitLocked(newDoc, OriginEdit), true
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

// Undo restores the previous snapshot. It reports false when the
// timeline is already at its oldest point.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	ev, ok := e.replayLocked(e.hist.Undo, OriginUndo)
	e.mu.Unlock()
	if ok {
		e.notify(ev)
	}
	return ok
}

// Redo restores the next snapshot. It reports false when the timeline is
// already at its newest point.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	ev, ok := e.replayLocked(e.hist.Redo, OriginRedo)
	e.mu.Unlock()
	if ok {
		e.notify(ev)
	}
	return ok
}

// replayLocked applies a snapshot returned by the history step. The
// commit that follows is consumed by the replay guard, so the restore
// itself never lands in history.
func (e *Editor) replayLocked(step func() (document.Document, error), origin Origin) (Event, bool) {
	snap, err := step()
	if err != nil {
		return Event{}, false
	}
	ev := e.commitLocked(snap, origin)
	e.sel.Prune(snap)
	e.clampCaretLocked()
	e.resetInputLocked()
	return ev, true
}

// ---------------------------------------------------------------------------
// Boundaries
// ---------------------------------------------------------------------------

// ReplaceDocument swaps in a whole new document, as a machine-produced
// summary does. The replacement is committed like any edit, so undo
// returns to the document it displaced. Selection, caret, and menu state
// reset.
func (e *Editor) ReplaceDocument(d document.Document) error {
	if err := d.Validate(); err != nil {
		return wrapInvalid(err)
	}
	e.mu.Lock()
	e.sel.Clear()
	e.caret = Caret{}
	e.resetInputLocked()
	ev := e.commitLocked(d.Clone(), OriginReplace)
	e.mu.Unlock()
	e.notify(ev)
	return nil
}

// CopySelection joins the selected blocks' content with newlines and
// hands the payload to the clipboard writer. With nothing selected the
// caret block is copied. The payload is returned for surfaces that show
// a preview.
func (e *Editor) CopySelection() (string, error) {
	e.mu.RLock()
	ids := e.sel.IDs()
	if len(ids) == 0 && e.caret.BlockID != "" {
		ids = []string{e.caret.BlockID}
	}
	contents := make([]string, 0, len(ids))
	for _, id := range ids {
		if b, _, ok := e.doc.Block(id); ok {
			contents = append(contents, b.Content)
		}
	}
	clip := e.clip
	e.mu.RUnlock()

	if len(contents) == 0 {
		return "", ErrNothingSelected
	}
	if clip == nil {
		return "", ErrNoClipboard
	}
	payload := strings.Join(contents, "\n")
	if err := clip.WriteText(payload); err != nil {
		return payload, fmt.Errorf("engine: copy to clipboard: %w", err)
	}
	return payload, nil
}

// ---------------------------------------------------------------------------
// Internal plumbing
// ---------------------------------------------------------------------------

// commitLocked installs doc as the current document and records it in
// history; the replay guard decides whether the record sticks. The
// returned event carries an independent copy for listeners.
func (e *Editor) commitLocked(doc document.Document, origin Origin) Event {
	e.doc = doc
	e.hist.Commit(doc)
	return Event{Doc: doc.Clone(), Origin: origin}
}

// resetInputLocked ends the typing burst and closes the slash menu.
// Every structural command passes through here so a menu never survives
// the block it was opened on.
func (e *Editor) resetInputLocked() {
	e.lastEditBlock = ""
	e.slash.Reset()
}

// clampCaretLocked re-validates the caret against the current document.
func (e *Editor) clampCaretLocked() {
	if e.caret.BlockID == "" {
		return
	}
	b, _, ok := e.doc.Block(e.caret.BlockID)
	if !ok {
		e.caret = Caret{}
		return
	}
	if limit := b.ContentLength(); e.caret.Offset > limit {
		e.caret.Offset = limit
	}
}

// notify delivers an event to every registered listener, outside the
// editor lock.
func (e *Editor) notify(ev Event) {
	e.mu.RLock()
	listeners := make([]Listener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()
	for _, fn := range listeners {
		fn(ev)
	}
}

// runeLen returns the length of s in runes.
func runeLen(s string) int {
	return len([]rune(s))
}
