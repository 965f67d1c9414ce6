package document

// Direction selects which neighbor Navigate resolves.
type Direction uint8

const (
	// Up moves toward the start of the document.
	Up Direction = iota
	// Down moves toward the end of the document.
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Ref locates a block within the flattened reading order.
type Ref struct {
	BlockID    string
	SectionKey string
}

// Flatten returns every block in reading order: sections in document
// order, blocks in section order. Section boundaries are invisible to the
// result; consumers that need them carry the SectionKey of each Ref.
func (d Document) Flatten() []Ref {
	refs := make([]Ref, 0, d.BlockCount())
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			refs = append(refs, Ref{BlockID: b.ID, SectionKey: s.Key})
		}
	}
	return refs
}

// FlatIndex returns the position of a block in the flattened order, or -1
// when the block does not exist.
func (d Document) FlatIndex(blockID string) int {
	i := 0
	for _, s := range d.Sections {
		for _, b := range s.Blocks {
			if b.ID == blockID {
				return i
			}
			i++
		}
	}
	return -1
}

// RangeBetween returns the ids of every block between a and b inclusive,
// in reading order. The arguments may arrive in either order; the result
// is identical. When either id is unknown the result is nil.
func (d Document) RangeBetween(a, b string) []string {
	flat := d.Flatten()
	ai, bi := -1, -1
	for i, r := range flat {
		switch r.BlockID {
		case a:
			ai = i
		case b:
			bi = i
		}
	}
	if a == b {
		bi = ai
	}
	if ai < 0 || bi < 0 {
		return nil
	}
	lo, hi := ai, bi
	if lo > hi {
		lo, hi = hi, lo
	}
	ids := make([]string, 0, hi-lo+1)
	for _, r := range flat[lo : hi+1] {
		ids = append(ids, r.BlockID)
	}
	return ids
}

// Navigate returns the id of the block adjacent to blockID in the given
// direction, crossing section boundaries transparently. At the document
// edge, or when blockID is unknown, the input id comes back unchanged.
func (d Document) Navigate(blockID string, dir Direction) string {
	flat := d.Flatten()
	for i, r := range flat {
		if r.BlockID != blockID {
			continue
		}
		switch dir {
		case Up:
			if i > 0 {
				return flat[i-1].BlockID
			}
		case Down:
			if i < len(flat)-1 {
				return flat[i+1].BlockID
			}
		}
		return blockID
	}
	return blockID
}
