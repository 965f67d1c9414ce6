// Package exportfile writes markdown projections to disk and names the
// files consistently.
package exportfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/minutekit/minuta/internal/engine/document"
)

// fallbackStem names exports of untitled documents.
const fallbackStem = "meeting-notes"

// SuggestedName returns the conventional export filename for a document:
// a slug of the title and the date, for example "weekly-sync-2026-08-21.md".
func SuggestedName(doc document.Document, now time.Time) string {
	stem := slug(doc.Title)
	if stem == "" {
		stem = fallbackStem
	}
	return fmt.Sprintf("%s-%s.md", stem, now.Format("2006-01-02"))
}

// Save writes content to dir/name, creating dir as needed, and returns
// the absolute path of the written file.
func Save(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("exportfile: create directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("exportfile: write %s: %w", name, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// slug lowercases s and collapses anything that is not a letter or digit
// into single dashes.
func slug(s string) string {
	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if sb.Len() > 0 && !dash {
			sb.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
