package document

import "github.com/google/uuid"

// BlockType identifies the rendering kind of a block.
type BlockType string

const (
	// BlockText is a plain paragraph block.
	BlockText BlockType = "text"
	// BlockBullet is a bulleted list item.
	BlockBullet BlockType = "bullet"
	// BlockHeading1 is a large sub-heading within a section.
	BlockHeading1 BlockType = "heading1"
	// BlockHeading2 is a small sub-heading within a section.
	BlockHeading2 BlockType = "heading2"
)

// Valid reports whether t is one of the supported block kinds.
func (t BlockType) Valid() bool {
	switch t {
	case BlockText, BlockBullet, BlockHeading1, BlockHeading2:
		return true
	default:
		return false
	}
}

// String returns the type name.
func (t BlockType) String() string { return string(t) }

// ColorTag marks a block for alternate rendering treatment.
type ColorTag string

const (
	// ColorDefault is the zero value; blocks render with standard styling.
	ColorDefault ColorTag = ""
	// ColorMuted de-emphasizes a block, used for boilerplate or low-signal lines.
	ColorMuted ColorTag = "muted"
)

// Valid reports whether c is a recognized color tag.
func (c ColorTag) Valid() bool {
	return c == ColorDefault || c == ColorMuted
}

// Block is the smallest addressable unit of content. Blocks are value
// types; operations that change a block build a replacement rather than
// mutating in place.
type Block struct {
	ID      string    `json:"id"`
	Type    BlockType `json:"type"`
	Content string    `json:"content"`
	Color   ColorTag  `json:"color,omitempty"`
}

// NewBlock returns an empty block of the given type with a fresh id.
func NewBlock(t BlockType) Block {
	return Block{ID: NewID(), Type: t}
}

// NewTextBlock returns a plain paragraph block holding content.
func NewTextBlock(content string) Block {
	b := NewBlock(BlockText)
	b.Content = content
	return b
}

// ContentLength returns the length of the block content in runes.
// Offsets into block content are always rune offsets, never bytes.
func (b Block) ContentLength() int {
	return len([]rune(b.Content))
}

// NewID returns a globally unique block or section identifier.
func NewID() string {
	return uuid.New().String()
}
