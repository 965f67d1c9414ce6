package markdown

import (
	"strings"

	"github.com/minutekit/minuta/internal/engine/document"
)

// Parse reads a markdown projection back into a document, assigning
// fresh ids throughout. It is the inverse of Serialize for documents
// Serialize produced, and lenient with anything else:
// unrecognized lines become text blocks, content before the first
// section heading lands in an untitled section, and blank lines only
// separate.
//
// Parse is how machine-produced summaries enter the engine; the engine
// treats the result as a wholesale replacement, so fresh ids are the
// correct choice.
func Parse(text string) document.Document {
	doc := document.New()
	var cur *document.Section

	section := func() *document.Section {
		if cur == nil {
			doc.Sections = append(doc.Sections, document.NewSection(""))
			cur = &doc.Sections[len(doc.Sections)-1]
		}
		return cur
	}

	appendBlock := func(t document.BlockType, content string) {
		sec := section()
		b := document.NewBlock(t)
		b.Content = content
		sec.Blocks = append(sec.Blocks, b)
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#### "):
			appendBlock(document.BlockHeading2, line[len("#### "):])
		case strings.HasPrefix(line, "### "):
			appendBlock(document.BlockHeading1, line[len("### "):])
		case strings.HasPrefix(line, "## "):
			doc.Sections = append(doc.Sections, document.NewSection(line[len("## "):]))
			cur = &doc.Sections[len(doc.Sections)-1]
		case strings.HasPrefix(line, "# "):
			if doc.Title == "" && cur == nil {
				doc.Title = line[len("# "):]
			} else {
				appendBlock(document.BlockText, line)
			}
		case strings.HasPrefix(line, "- "):
			appendBlock(document.BlockBullet, line[len("- "):])
		default:
			appendBlock(document.BlockText, line)
		}
	}

	return doc
}
