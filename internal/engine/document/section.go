package document

// Section is a named, ordered group of blocks. Sections are the coarse
// structure of a document; every block lives in exactly one section.
type Section struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}

// NewSection returns a section with a fresh key, the given title, and no
// blocks.
func NewSection(title string) Section {
	return Section{Key: NewID(), Title: title}
}

// BlockIndex returns the position of the block with the given id, or -1
// when the section does not contain it.
func (s Section) BlockIndex(id string) int {
	for i, b := range s.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// clone returns a deep copy of the section.
func (s Section) clone() Section {
	out := s
	if s.Blocks != nil {
		out.Blocks = make([]Block, len(s.Blocks))
		copy(out.Blocks, s.Blocks)
	}
	return out
}
