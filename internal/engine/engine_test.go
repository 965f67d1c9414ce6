package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/minutekit/minuta/internal/engine/document"
	"github.com/minutekit/minuta/internal/export/clipboard"
)

// seedDoc builds the standard fixture: two sections, four blocks with
// deterministic ids a1, a2, d1, d2 in flattened order.
func seedDoc() document.Document {
	return document.Document{
		Title: "Weekly sync",
		Sections: []document.Section{
			{
				Key:   "agenda",
				Title: "Agenda",
				Blocks: []document.Block{
					{ID: "a1", Type: document.BlockText, Content: "intros"},
					{ID: "a2", Type: document.BlockBullet, Content: "roadmap"},
				},
			},
			{
				Key:   "decisions",
				Title: "Decisions",
				Blocks: []document.Block{
					{ID: "d1", Type: document.BlockHeading1, Content: "Hiring"},
					{ID: "d2", Type: document.BlockText, Content: "approved"},
				},
			},
		},
	}
}

func newTestEditor(t *testing.T, opts ...Option) *Editor {
	t.Helper()
	opts = append([]Option{WithDocument(seedDoc()), WithClipboard(clipboard.NewMemory())}, opts...)
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func blockContent(t *testing.T, e *Editor, id string) string {
	t.Helper()
	b, ok := e.Block(id)
	if !ok {
		t.Fatalf("block %q not found", id)
	}
	return b.Content
}

func wantSelection(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	got := e.SelectedIDs()
	if len(got) != len(want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection = %v, want %v", got, want)
		}
	}
}

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

func TestNewRejectsInvalidDocument(t *testing.T) {
	bad := seedDoc()
	bad.Sections[1].Blocks[0].ID = "a1"
	if _, err := New(WithDocument(bad)); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("New with duplicate ids: %v, want ErrInvalidDocument", err)
	}
}

func TestNewStartsEmpty(t *testing.T) {
	e, err := New(WithClipboard(clipboard.NewMemory()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n := e.Document().BlockCount(); n != 0 {
		t.Errorf("empty editor holds %d blocks", n)
	}
	if e.CanUndo() {
		t.Error("fresh editor must not offer undo")
	}
}

// ---------------------------------------------------------------------------
// Content editing
// ---------------------------------------------------------------------------

func TestUpdateBlockContent(t *testing.T) {
	e := newTestEditor(t)
	e.UpdateBlockContent("a1", "welcome everyone")
	if got := blockContent(t, e, "a1"); got != "welcome everyone" {
		t.Errorf("content = %q", got)
	}
	if !e.CanUndo() {
		t.Error("edit must be undoable")
	}

	// Unknown ids and no-change writes commit nothing.
	e.UpdateBlockContent("missing", "x")
	e.UpdateBlockContent("a1", "welcome everyone")
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "intros" {
		t.Errorf("after undo: %q, want intros", got)
	}
	if e.CanUndo() {
		t.Error("exactly one commit expected for one content change")
	}
}

func TestSplitBlockMidContent(t *testing.T) {
	e := newTestEditor(t)
	e.SplitBlock("a1", 3)

	if got := blockContent(t, e, "a1"); got != "int" {
		t.Errorf("left part = %q, want int", got)
	}
	flat := e.Document().Flatten()
	if len(flat) != 5 {
		t.Fatalf("block count = %d, want 5", len(flat))
	}
	newID := flat[1].BlockID
	nb, _ := e.Block(newID)
	if nb.Content != "ros" {
		t.Errorf("right part = %q, want ros", nb.Content)
	}
	if nb.Type != document.BlockText {
		t.Errorf("split of text block produced %q", nb.Type)
	}
	wantSelection(t, e, newID)
	if c := e.Caret(); c.BlockID != newID || c.Offset != 0 {
		t.Errorf("caret = %+v, want start of new block", c)
	}

	// The whole split is one undo step.
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "intros" {
		t.Errorf("after undo: %q, want intros", got)
	}
	if e.Document().BlockCount() != 4 {
		t.Error("undo must remove the split block")
	}
}

func TestSplitBulletKeepsListGoing(t *testing.T) {
	e := newTestEditor(t)
	e.SetBlockColor("a2", document.ColorMuted)
	e.SplitBlock("a2", 4)
	flat := e.Document().Flatten()
	nb, _ := e.Block(flat[2].BlockID)
	if nb.Type != document.BlockBullet {
		t.Errorf("split of bullet produced %q, want bullet", nb.Type)
	}
	if nb.Content != "map" {
		t.Errorf("right part = %q, want map", nb.Content)
	}
	if nb.Color != document.ColorMuted {
		t.Errorf("split block color = %q, want inherited muted", nb.Color)
	}
}

func TestSplitHeadingYieldsText(t *testing.T) {
	e := newTestEditor(t)
	e.SplitBlock("d1", 6)
	flat := e.Document().Flatten()
	nb, _ := e.Block(flat[3].BlockID)
	if nb.Type != document.BlockText {
		t.Errorf("split of heading produced %q, want text", nb.Type)
	}
}

func TestSplitAtEdges(t *testing.T) {
	e := newTestEditor(t)

	// Split at 0: block keeps nothing, new block takes everything.
	e.SplitBlock("a1", 0)
	if got := blockContent(t, e, "a1"); got != "" {
		t.Errorf("left part = %q, want empty", got)
	}

	// Offsets beyond the content clamp to the end.
	e.SplitBlock("d2", 99)
	if got := blockContent(t, e, "d2"); got != "approved" {
		t.Errorf("left part = %q, want approved", got)
	}
}

func TestMergeBlockBackward(t *testing.T) {
	e := newTestEditor(t)
	e.MergeBlockBackward("a2", "roadmap")

	if got := blockContent(t, e, "a1"); got != "introsroadmap" {
		t.Errorf("merged content = %q", got)
	}
	if _, ok := e.Block("a2"); ok {
		t.Error("merged block must be removed")
	}
	wantSelection(t, e, "a1")
	if c := e.Caret(); c.BlockID != "a1" || c.Offset != 6 {
		t.Errorf("caret = %+v, want join point at offset 6", c)
	}

	// One undo restores both blocks.
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "intros" {
		t.Errorf("after undo: %q", got)
	}
	if got := blockContent(t, e, "a2"); got != "roadmap" {
		t.Errorf("after undo: %q", got)
	}
}

func TestMergeAcrossSections(t *testing.T) {
	e := newTestEditor(t)
	e.MergeBlockBackward("d1", "Hiring")
	if got := blockContent(t, e, "a2"); got != "roadmapHiring" {
		t.Errorf("merged content = %q", got)
	}
	sec, _ := e.Document().Section("decisions")
	if len(sec.Blocks) != 1 {
		t.Errorf("decisions retains %d blocks, want 1", len(sec.Blocks))
	}
}

func TestMergeFirstBlockIsNoop(t *testing.T) {
	e := newTestEditor(t)
	e.MergeBlockBackward("a1", "intros")
	if e.Document().BlockCount() != 4 {
		t.Error("merging the first block must change nothing")
	}
	if e.CanUndo() {
		t.Error("no-op merge must not commit")
	}
}

func TestDeleteBlockBackward(t *testing.T) {
	e := newTestEditor(t)
	e.UpdateBlockContent("a2", "")
	e.DeleteBlockBackward("a2")

	if _, ok := e.Block("a2"); ok {
		t.Error("empty block must be removed")
	}
	wantSelection(t, e, "a1")
	if c := e.Caret(); c.BlockID != "a1" || c.Offset != 6 {
		t.Errorf("caret = %+v, want end of previous block", c)
	}
}

func TestDeleteBlockBackwardOnFirstBlock(t *testing.T) {
	e := newTestEditor(t)
	e.UpdateBlockContent("a1", "")
	e.DeleteBlockBackward("a1")

	if _, ok := e.Block("a1"); ok {
		t.Error("block must be removed")
	}
	wantSelection(t, e, "a2")
	if c := e.Caret(); c.BlockID != "a2" || c.Offset != 0 {
		t.Errorf("caret = %+v, want start of next block", c)
	}
}

func TestDeleteBlockBackwardRefusesContent(t *testing.T) {
	e := newTestEditor(t)
	e.DeleteBlockBackward("a1")
	if _, ok := e.Block("a1"); !ok {
		t.Error("block with content must survive backspace delete")
	}
}

func TestDeleteSelection(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a2")
	e.DragTo("d1")
	e.EndDrag()
	e.DeleteSelection()

	if e.Document().BlockCount() != 2 {
		t.Errorf("block count = %d, want 2", e.Document().BlockCount())
	}
	wantSelection(t, e)
	if c := e.Caret(); c.BlockID != "" {
		t.Errorf("caret = %+v, want none", c)
	}

	// The bulk delete is one undo step.
	e.Undo()
	if e.Document().BlockCount() != 4 {
		t.Error("undo must restore all deleted blocks")
	}
}

func TestSetBlockTypeDirect(t *testing.T) {
	e := newTestEditor(t)
	e.SetBlockType("a1", document.BlockHeading2)
	if b, _ := e.Block("a1"); b.Type != document.BlockHeading2 {
		t.Errorf("type = %q", b.Type)
	}
	if got := blockContent(t, e, "a1"); got != "intros" {
		t.Errorf("content changed on type switch: %q", got)
	}

	// Same-type and invalid-type switches commit nothing.
	before := e.CanRedo()
	e.SetBlockType("a1", document.BlockHeading2)
	e.SetBlockType("a1", document.BlockType("callout"))
	if e.CanRedo() != before {
		t.Error("no-op type switches must not touch history")
	}
}

func TestSetBlockColor(t *testing.T) {
	e := newTestEditor(t)
	e.SetBlockColor("a1", document.ColorMuted)
	if b, _ := e.Block("a1"); b.Color != document.ColorMuted {
		t.Errorf("color = %q, want muted", b.Color)
	}
	e.Undo()
	if b, _ := e.Block("a1"); b.Color != document.ColorDefault {
		t.Errorf("color after undo = %q, want default", b.Color)
	}
}

func TestAddBlockBelow(t *testing.T) {
	e := newTestEditor(t)
	nb, ok := e.AddBlockBelow("a1")
	if !ok {
		t.Fatal("AddBlockBelow failed on existing block")
	}
	flat := e.Document().Flatten()
	if flat[1].BlockID != nb.ID {
		t.Errorf("new block at flat index %d", e.Document().FlatIndex(nb.ID))
	}
	wantSelection(t, e, nb.ID)

	if _, ok := e.AddBlockBelow("missing"); ok {
		t.Error("AddBlockBelow must miss on unknown ids")
	}
}

func TestAddBlockToSection(t *testing.T) {
	e := newTestEditor(t)
	// Empty the agenda section first; appending is how it revives.
	e.SelectBlock("a1")
	e.DragTo("a2")
	e.EndDrag()
	e.DeleteSelection()

	nb, ok := e.AddBlockToSection("agenda")
	if !ok {
		t.Fatal("AddBlockToSection failed on existing section")
	}
	sec, _ := e.Document().Section("agenda")
	if len(sec.Blocks) != 1 || sec.Blocks[0].ID != nb.ID {
		t.Errorf("agenda blocks = %+v, want just the new one", sec.Blocks)
	}
	if nb.Type != document.BlockText || nb.Content != "" {
		t.Errorf("new block = %+v, want empty text", nb)
	}
	wantSelection(t, e, nb.ID)
	if got := e.Caret(); got.BlockID != nb.ID || got.Offset != 0 {
		t.Errorf("caret = %+v, want start of new block", got)
	}

	if _, ok := e.AddBlockToSection("missing"); ok {
		t.Error("AddBlockToSection must miss on unknown keys")
	}
}

// ---------------------------------------------------------------------------
// Sections
// ---------------------------------------------------------------------------

func TestAddSection(t *testing.T) {
	e := newTestEditor(t, WithNewSectionTitle("Parking lot"))
	sec := e.AddSection()

	if sec.Title != "Parking lot" {
		t.Errorf("title = %q", sec.Title)
	}
	doc := e.Document()
	if len(doc.Sections) != 3 {
		t.Fatalf("sections = %d, want 3", len(doc.Sections))
	}
	seed := sec.Blocks[0].ID
	wantSelection(t, e, seed)
	if c := e.Caret(); c.BlockID != seed || c.Offset != 0 {
		t.Errorf("caret = %+v, want start of seeded block", c)
	}
}

func TestRenameSection(t *testing.T) {
	e := newTestEditor(t)
	e.RenameSection("agenda", "Agenda v2")
	sec, _ := e.Document().Section("agenda")
	if sec.Title != "Agenda v2" {
		t.Errorf("title = %q", sec.Title)
	}
	e.Undo()
	sec, _ = e.Document().Section("agenda")
	if sec.Title != "Agenda" {
		t.Errorf("title after undo = %q", sec.Title)
	}
}

func TestDeleteSectionRepairsSelection(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("d1")
	e.EndDrag()
	e.DeleteSection("decisions")

	doc := e.Document()
	if len(doc.Sections) != 1 {
		t.Fatalf("sections = %d, want 1", len(doc.Sections))
	}
	// d1 held flat index 2; the survivor above is a2 at post index 1.
	wantSelection(t, e, "a2")

	// A selection untouched by the deletion stays put.
	e2 := newTestEditor(t)
	e2.SelectBlock("a1")
	e2.EndDrag()
	e2.DeleteSection("decisions")
	wantSelection(t, e2, "a1")
}

func TestDeleteLastSectionClearsSelection(t *testing.T) {
	doc := document.Document{
		Sections: []document.Section{
			{Key: "only", Title: "Only", Blocks: []document.Block{
				{ID: "b1", Type: document.BlockText, Content: "x"},
			}},
		},
	}
	e, err := New(WithDocument(doc), WithClipboard(clipboard.NewMemory()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.SelectBlock("b1")
	e.DeleteSection("only")
	wantSelection(t, e)
	if c := e.Caret(); c.BlockID != "" {
		t.Errorf("caret = %+v, want none", c)
	}
}

// ---------------------------------------------------------------------------
// Selection and navigation
// ---------------------------------------------------------------------------

func TestDragSelection(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a2")
	if !e.IsDragging() {
		t.Error("press must arm a drag")
	}
	e.DragTo("d2")
	wantSelection(t, e, "a2", "d1", "d2")
	if c := e.Caret(); c.BlockID != "" {
		t.Error("multi-selection must drop the caret")
	}
	e.EndDrag()
	if e.IsDragging() {
		t.Error("EndDrag must disarm the drag")
	}
	wantSelection(t, e, "a2", "d1", "d2")
}

func TestShiftSelection(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a1")
	e.EndDrag()
	e.ShiftSelectTo("d1")
	wantSelection(t, e, "a1", "a2", "d1")
	if e.SelectionAnchor() != "a1" {
		t.Errorf("anchor = %q, want a1", e.SelectionAnchor())
	}
}

func TestNavigatePreservesCaretColumn(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a1")
	e.SetCaret("a1", 6)

	got := e.Navigate(document.Down)
	if got != "a2" {
		t.Errorf("Navigate Down = %q, want a2", got)
	}
	if c := e.Caret(); c.Offset != 6 {
		t.Errorf("caret offset = %d, want preserved 6", c.Offset)
	}

	// Moving onto shorter content clamps the column.
	e.UpdateBlockContent("d1", "Hi")
	e.Navigate(document.Down)
	if c := e.Caret(); c.BlockID != "d1" || c.Offset != 2 {
		t.Errorf("caret = %+v, want d1 offset 2", c)
	}
}

func TestNavigateAtBoundary(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a1")
	if got := e.Navigate(document.Up); got != "a1" {
		t.Errorf("Navigate Up at top = %q, want a1", got)
	}
	wantSelection(t, e, "a1")
}

func TestClearSelection(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a1")
	e.ClearSelection()
	wantSelection(t, e)
	if c := e.Caret(); c.BlockID != "" {
		t.Errorf("caret = %+v after clear", c)
	}
}

// ---------------------------------------------------------------------------
// History
// ---------------------------------------------------------------------------

func TestUndoRedoRestoreExactState(t *testing.T) {
	e := newTestEditor(t)
	e.UpdateBlockContent("a1", "one")
	e.UpdateBlockContent("d2", "two")

	if !e.Undo() {
		t.Fatal("Undo failed")
	}
	if got := blockContent(t, e, "d2"); got != "approved" {
		t.Errorf("after undo: %q", got)
	}
	if !e.Redo() {
		t.Fatal("Redo failed")
	}
	if got := blockContent(t, e, "d2"); got != "two" {
		t.Errorf("after redo: %q", got)
	}

	// Replays never extend history: undo, redo, undo lands where the
	// first undo did.
	e.Undo()
	if got := blockContent(t, e, "d2"); got != "approved" {
		t.Errorf("after second undo: %q", got)
	}
}

func TestUndoAtFloor(t *testing.T) {
	e := newTestEditor(t)
	if e.Undo() {
		t.Error("Undo with no edits must report false")
	}
	if e.Redo() {
		t.Error("Redo with no forward states must report false")
	}
}

func TestUndoPrunesDeadSelection(t *testing.T) {
	e := newTestEditor(t)
	nb, _ := e.AddBlockBelow("a1")
	wantSelection(t, e, nb.ID)

	e.Undo()
	wantSelection(t, e)
	if c := e.Caret(); c.BlockID != "" {
		t.Errorf("caret = %+v, want cleared after its block vanished", c)
	}
}

func TestEditAfterUndoTruncatesRedo(t *testing.T) {
	e := newTestEditor(t)
	e.UpdateBlockContent("a1", "one")
	e.UpdateBlockContent("a1", "one two")
	e.Undo()
	e.UpdateBlockContent("a1", "one three")

	if e.CanRedo() {
		t.Error("new edit after undo must truncate the redo branch")
	}
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "one" {
		t.Errorf("after undo: %q, want one", got)
	}
}

func TestTypingCoalescing(t *testing.T) {
	clock := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	e := newTestEditor(t, WithTypingCoalescing(DefaultCoalesceWindow))
	e.now = func() time.Time { return clock }

	e.UpdateBlockContent("a1", "h")
	clock = clock.Add(100 * time.Millisecond)
	e.UpdateBlockContent("a1", "he")
	clock = clock.Add(100 * time.Millisecond)
	e.UpdateBlockContent("a1", "hey")

	// The burst collapses to one undo step.
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "intros" {
		t.Errorf("after undo: %q, want intros", got)
	}

	// A pause beyond the window starts a new step.
	e.Redo()
	clock = clock.Add(2 * time.Second)
	e.UpdateBlockContent("a1", "hey there")
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "hey" {
		t.Errorf("after undo: %q, want hey", got)
	}
}

func TestCoalescingStopsAtBlockBoundary(t *testing.T) {
	clock := time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC)
	e := newTestEditor(t, WithTypingCoalescing(DefaultCoalesceWindow))
	e.now = func() time.Time { return clock }

	e.UpdateBlockContent("a1", "x")
	clock = clock.Add(50 * time.Millisecond)
	e.UpdateBlockContent("d2", "y")
	clock = clock.Add(50 * time.Millisecond)
	e.UpdateBlockContent("a1", "xz")

	// Three blocksteps: a1, d2, a1 again; nothing coalesces across the
	// block switch.
	e.Undo()
	if got := blockContent(t, e, "a1"); got != "x" {
		t.Errorf("after undo: %q, want x", got)
	}
	e.Undo()
	if got := blockContent(t, e, "d2"); got != "approved" {
		t.Errorf("after undo: %q, want approved", got)
	}
}

// ---------------------------------------------------------------------------
// Boundaries
// ---------------------------------------------------------------------------

func TestReplaceDocument(t *testing.T) {
	e := newTestEditor(t)
	e.SelectBlock("a1")

	repl := document.NewWithSections("Summary", "Overview")
	if err := e.ReplaceDocument(repl); err != nil {
		t.Fatalf("ReplaceDocument: %v", err)
	}
	if e.Document().Title != "Summary" {
		t.Errorf("title = %q", e.Document().Title)
	}
	wantSelection(t, e)

	// The replacement is a normal commit: undo restores the old state.
	e.Undo()
	if e.Document().Title != "Weekly sync" {
		t.Errorf("after undo title = %q", e.Document().Title)
	}
	e.Redo()
	if e.Document().Title != "Summary" {
		t.Errorf("after redo title = %q", e.Document().Title)
	}
}

func TestReplaceDocumentRejectsInvalid(t *testing.T) {
	e := newTestEditor(t)
	bad := seedDoc()
	bad.Sections[0].Blocks[1].ID = "a1"
	if err := e.ReplaceDocument(bad); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("ReplaceDocument: %v, want ErrInvalidDocument", err)
	}
	if got := blockContent(t, e, "a1"); got != "intros" {
		t.Error("rejected replacement must leave the document alone")
	}
}

func TestCopySelection(t *testing.T) {
	mem := clipboard.NewMemory()
	e := newTestEditor(t, WithClipboard(mem))
	e.SelectBlock("a1")
	e.DragTo("d1")
	e.EndDrag()

	payload, err := e.CopySelection()
	if err != nil {
		t.Fatalf("CopySelection: %v", err)
	}
	want := "intros\nroadmap\nHiring"
	if payload != want {
		t.Errorf("payload = %q, want %q", payload, want)
	}
	if mem.Text() != want {
		t.Errorf("clipboard = %q, want %q", mem.Text(), want)
	}
	if e.CanUndo() {
		t.Error("copy must not commit")
	}
}

func TestCopyFallsBackToCaret(t *testing.T) {
	mem := clipboard.NewMemory()
	e := newTestEditor(t, WithClipboard(mem))
	e.SelectBlock("d2")
	e.ClearSelection()
	e.SetCaret("d2", 0)

	payload, err := e.CopySelection()
	if err != nil {
		t.Fatalf("CopySelection: %v", err)
	}
	if payload != "approved" {
		t.Errorf("payload = %q, want approved", payload)
	}
}

func TestCopyNothingSelected(t *testing.T) {
	e := newTestEditor(t)
	if _, err := e.CopySelection(); !errors.Is(err, ErrNothingSelected) {
		t.Errorf("CopySelection: %v, want ErrNothingSelected", err)
	}
}

func TestExportMarkdown(t *testing.T) {
	e := newTestEditor(t)
	got := e.ExportMarkdown()
	want := "# Weekly sync\n\n## Agenda\n\nintros\n\n- roadmap\n\n## Decisions\n\n### Hiring\n\napproved\n\n"
	if got != want {
		t.Errorf("ExportMarkdown = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

func TestListenersSeeOrigins(t *testing.T) {
	e := newTestEditor(t)
	var origins []Origin
	e.OnChange(func(ev Event) {
		origins = append(origins, ev.Origin)
	})

	e.UpdateBlockContent("a1", "x")
	e.Undo()
	e.Redo()
	if err := e.ReplaceDocument(document.New()); err != nil {
		t.Fatalf("ReplaceDocument: %v", err)
	}

	want := []Origin{OriginEdit, OriginUndo, OriginRedo, OriginReplace}
	if len(origins) != len(want) {
		t.Fatalf("origins = %v, want %v", origins, want)
	}
	for i := range want {
		if origins[i] != want[i] {
			t.Fatalf("origins = %v, want %v", origins, want)
		}
	}
}

func TestListenerDocIsIndependent(t *testing.T) {
	e := newTestEditor(t)
	var seen document.Document
	e.OnChange(func(ev Event) { seen = ev.Doc })

	e.UpdateBlockContent("a1", "x")
	seen.Sections[0].Blocks[0].Content = "mutated"
	if got := blockContent(t, e, "a1"); got != "x" {
		t.Error("listener mutation leaked into editor state")
	}
}

func TestSelectionChangesEmitNoEvents(t *testing.T) {
	e := newTestEditor(t)
	count := 0
	e.OnChange(func(Event) { count++ })

	e.SelectBlock("a1")
	e.DragTo("d1")
	e.EndDrag()
	e.Navigate(document.Down)
	e.SetCaret("d2", 1)
	e.ClearSelection()

	if count != 0 {
		t.Errorf("selection work emitted %d events", count)
	}
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkUpdateBlockContent(b *testing.B) {
	e, err := New(WithDocument(seedDoc()), WithClipboard(clipboard.NewMemory()))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%2 == 0 {
			e.UpdateBlockContent("a1", "alternating")
		} else {
			e.UpdateBlockContent("a1", "content")
		}
	}
}
