package slash

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/minutekit/minuta/internal/engine/document"
)

// Command is one entry in the block-type switcher menu.
type Command struct {
	ID       string
	Title    string
	Keywords []string
	Type     document.BlockType
}

// catalog is the fixed menu, in display order. Keywords widen the filter
// beyond the visible title.
var catalog = []Command{
	{ID: "text", Title: "Text", Keywords: []string{"paragraph", "plain"}, Type: document.BlockText},
	{ID: "bullet", Title: "Bulleted list", Keywords: []string{"bullet", "list"}, Type: document.BlockBullet},
	{ID: "heading1", Title: "Heading 1", Keywords: []string{"h1", "large"}, Type: document.BlockHeading1},
	{ID: "heading2", Title: "Heading 2", Keywords: []string{"h2", "small"}, Type: document.BlockHeading2},
}

// Catalog returns the full menu in display order.
func Catalog() []Command {
	out := make([]Command, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog command with the given id.
func Lookup(id string) (Command, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Command{}, false
}

// searchable is what the filter matches against: the title plus keywords.
func (c Command) searchable() string {
	if len(c.Keywords) == 0 {
		return c.Title
	}
	return c.Title + " " + strings.Join(c.Keywords, " ")
}

// source adapts the catalog to the fuzzy matcher.
type source []Command

func (s source) String(i int) string { return s[i].searchable() }
func (s source) Len() int            { return len(s) }

// Filter ranks catalog commands against the typed filter text. An empty
// query returns the full catalog in display order; otherwise results come
// back best match first, with catalog order breaking ties.
func Filter(query string) []Command {
	if query == "" {
		return Catalog()
	}
	matches := fuzzy.FindFrom(query, source(catalog))
	out := make([]Command, 0, len(matches))
	for _, m := range matches {
		out = append(out, catalog[m.Index])
	}
	return out
}
