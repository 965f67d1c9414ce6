package markdown

import (
	"strings"

	"github.com/minutekit/minuta/internal/engine/document"
)

// Serialize renders the document as its markdown projection. The format
// is exact, byte for byte:
//
//   - a document title becomes "# Title" followed by a blank line
//   - a section title becomes "## Title" followed by a blank line
//   - heading1 blocks become "### ..." and heading2 blocks "#### ...",
//     each followed by a blank line
//   - bullet blocks become "- ..." with no blank line between
//     consecutive bullets
//   - text blocks emit their content followed by a blank line
//   - a section that contained any bullet gets one extra trailing blank
//     line, keeping the list terminated for strict renderers
//
// Serialization never fails and never mutates the document.
func Serialize(doc document.Document) string {
	var sb strings.Builder

	if doc.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(doc.Title)
		sb.WriteString("\n\n")
	}

	for _, sec := range doc.Sections {
		sb.WriteString("## ")
		sb.WriteString(sec.Title)
		sb.WriteString("\n\n")

		hadBullet := false
		for _, b := range sec.Blocks {
			switch b.Type {
			case document.BlockHeading1:
				sb.WriteString("### ")
				sb.WriteString(b.Content)
				sb.WriteString("\n\n")
			case document.BlockHeading2:
				sb.WriteString("#### ")
				sb.WriteString(b.Content)
				sb.WriteString("\n\n")
			case document.BlockBullet:
				sb.WriteString("- ")
				sb.WriteString(b.Content)
				sb.WriteString("\n")
				hadBullet = true
			default:
				sb.WriteString(b.Content)
				sb.WriteString("\n\n")
			}
		}
		if hadBullet {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
