package document

// Document is an ordered list of sections. The zero value is an empty,
// usable document.
//
// All operations on Document are pure: they leave the receiver untouched
// and return a new value. Operations that reference a block or section
// that does not exist return the document unchanged, so stale ids arriving
// from an asynchronous caller degrade to no-ops instead of corrupting
// state.
type Document struct {
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections"`
}

// New returns an empty document.
func New() Document {
	return Document{}
}

// NewWithSections returns a document containing one empty section per
// title, in order.
func NewWithSections(title string, sectionTitles ...string) Document {
	d := Document{Title: title}
	for _, t := range sectionTitles {
		d.Sections = append(d.Sections, NewSection(t))
	}
	return d
}

// Clone returns a deep copy sharing no storage with d.
func (d Document) Clone() Document {
	out := d
	if d.Sections != nil {
		out.Sections = make([]Section, len(d.Sections))
		for i, s := range d.Sections {
			out.Sections[i] = s.clone()
		}
	}
	return out
}

// Equal reports whether d and other hold the same content, ids included.
func (d Document) Equal(other Document) bool {
	if d.Title != other.Title || len(d.Sections) != len(other.Sections) {
		return false
	}
	for i, s := range d.Sections {
		o := other.Sections[i]
		if s.Key != o.Key || s.Title != o.Title || len(s.Blocks) != len(o.Blocks) {
			return false
		}
		for j, b := range s.Blocks {
			if b != o.Blocks[j] {
				return false
			}
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// Section returns the section with the given key.
func (d Document) Section(key string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIndex returns the position of the section with the given key, or
// -1 when absent.
func (d Document) SectionIndex(key string) int {
	for i, s := range d.Sections {
		if s.Key == key {
			return i
		}
	}
	return -1
}

// Block returns the block with the given id along with the key of the
// section that owns it.
func (d Document) Block(id string) (Block, string, bool) {
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if b.ID == id {
				return b, s.Key, true
			}
		}
	}
	return Block{}, "", false
}

// Contains reports whether a block with the given id exists.
func (d Document) Contains(id string) bool {
	_, _, ok := d.Block(id)
	return ok
}

// BlockCount returns the total number of blocks across all sections.
func (d Document) BlockCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Blocks)
	}
	return n
}

// locate returns the section and block indexes of a block id, or (-1, -1).
func (d Document) locate(id string) (int, int) {
	for si, s := range d.Sections {
		for bi, b := range s.Blocks {
			if b.ID == id {
				return si, bi
			}
		}
	}
	return -1, -1
}

// ---------------------------------------------------------------------------
// Block operations
// ---------------------------------------------------------------------------

// UpdateBlockContent returns a document with the block's content replaced.
func (d Document) UpdateBlockContent(blockID, content string) Document {
	si, bi := d.locate(blockID)
	if si < 0 {
		return d
	}
	out := d.Clone()
	out.Sections[si].Blocks[bi].Content = content
	return out
}

// SetBlockType returns a document with the block's type replaced. An
// unrecognized type leaves the document unchanged.
func (d Document) SetBlockType(blockID string, t BlockType) Document {
	if !t.Valid() {
		return d
	}
	si, bi := d.locate(blockID)
	if si < 0 {
		return d
	}
	out := d.Clone()
	out.Sections[si].Blocks[bi].Type = t
	return out
}

// SetBlockColor returns a document with the block's color tag replaced.
func (d Document) SetBlockColor(blockID string, c ColorTag) Document {
	if !c.Valid() {
		return d
	}
	si, bi := d.locate(blockID)
	if si < 0 {
		return d
	}
	out := d.Clone()
	out.Sections[si].Blocks[bi].Color = c
	return out
}

// InsertBlockAfter returns a document with nb inserted immediately after
// the named block, in the same section. Inserting after an unknown block,
// or inserting a block whose id is empty or already present, leaves the
// document unchanged.
func (d Document) InsertBlockAfter(blockID string, nb Block) Document {
	if nb.ID == "" || d.Contains(nb.ID) {
		return d
	}
	si, bi := d.locate(blockID)
	if si < 0 {
		return d
	}
	out := d.Clone()
	blocks := out.Sections[si].Blocks
	blocks = append(blocks, Block{})
	copy(blocks[bi+2:], blocks[bi+1:])
	blocks[bi+1] = nb
	out.Sections[si].Blocks = blocks
	return out
}

// AppendBlock returns a document with nb appended to the section under
// key. This is the only way a block enters a section that has none.
// Unknown keys, empty block ids, and ids already present leave d
// unchanged.
func (d Document) AppendBlock(key string, nb Block) Document {
	if nb.ID == "" || d.Contains(nb.ID) {
		return d
	}
	si := d.SectionIndex(key)
	if si < 0 {
		return d
	}
	out := d.Clone()
	out.Sections[si].Blocks = append(out.Sections[si].Blocks, nb)
	return out
}

// RemoveBlock returns a document with the named block removed. The owning
// section stays, even when left empty.
func (d Document) RemoveBlock(blockID string) Document {
	si, bi := d.locate(blockID)
	if si < 0 {
		return d
	}
	out := d.Clone()
	blocks := out.Sections[si].Blocks
	out.Sections[si].Blocks = append(blocks[:bi], blocks[bi+1:]...)
	return out
}

// RemoveBlocks returns a document with every listed block removed. Unknown
// ids are skipped.
func (d Document) RemoveBlocks(ids []string) Document {
	if len(ids) == 0 {
		return d
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	out := d.Clone()
	for si := range out.Sections {
		kept := out.Sections[si].Blocks[:0]
		for _, b := range out.Sections[si].Blocks {
			if _, gone := drop[b.ID]; !gone {
				kept = append(kept, b)
			}
		}
		out.Sections[si].Blocks = kept
	}
	return out
}

// ---------------------------------------------------------------------------
// Section operations
// ---------------------------------------------------------------------------

// AddSection returns a document with a new section appended. The section
// holds one empty text block so it is immediately editable; the created
// section is returned alongside the document.
func (d Document) AddSection(title string) (Document, Section) {
	sec := NewSection(title)
	sec.Blocks = []Block{NewBlock(BlockText)}
	out := d.Clone()
	out.Sections = append(out.Sections, sec)
	return out, sec
}

// SetSectionTitle returns a document with the section's title replaced.
func (d Document) SetSectionTitle(key, title string) Document {
	i := d.SectionIndex(key)
	if i < 0 {
		return d
	}
	out := d.Clone()
	out.Sections[i].Title = title
	return out
}

// RemoveSection returns a document with the named section and all of its
// blocks removed.
func (d Document) RemoveSection(key string) Document {
	i := d.SectionIndex(key)
	if i < 0 {
		return d
	}
	out := d.Clone()
	out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
	return out
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// Validate checks structural invariants: every block and section id is
// non-empty and unique across the whole document, and every block carries
// a recognized type and color tag.
func (d Document) Validate() error {
	seen := make(map[string]struct{}, d.BlockCount()+len(d.Sections))
	for _, s := range d.Sections {
		if s.Key == "" {
			return ErrEmptyID
		}
		if _, dup := seen[s.Key]; dup {
			return ErrDuplicateID
		}
		seen[s.Key] = struct{}{}
		for _, b := range s.Blocks {
			if b.ID == "" {
				return ErrEmptyID
			}
			if _, dup := seen[b.ID]; dup {
				return ErrDuplicateID
			}
			seen[b.ID] = struct{}{}
			if !b.Type.Valid() {
				return ErrInvalidBlockType
			}
			if !b.Color.Valid() {
				return ErrInvalidColorTag
			}
		}
	}
	return nil
}
