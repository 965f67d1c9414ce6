package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every user-tunable setting, grouped by concern. Zero
// values are not meaningful on their own; build instances through
// Default or Load so the fallbacks are populated.
type Config struct {
	Document DocumentConfig `toml:"document"`
	History  HistoryConfig  `toml:"history"`
	Autosave AutosaveConfig `toml:"autosave"`
	Storage  StorageConfig  `toml:"storage"`
	Export   ExportConfig   `toml:"export"`
}

// DocumentConfig shapes freshly created session documents.
type DocumentConfig struct {
	// SectionTitles seeds the sections of a new document, in order.
	SectionTitles []string `toml:"section_titles"`

	// NewSectionTitle is the title given to sections added from the UI.
	NewSectionTitle string `toml:"new_section_title"`

	// Template optionally points at a YAML template file that
	// overrides SectionTitles for new documents.
	Template string `toml:"template"`
}

// HistoryConfig tunes the undo timeline.
type HistoryConfig struct {
	MaxEntries       int  `toml:"max_entries"`
	CoalesceTyping   bool `toml:"coalesce_typing"`
	CoalesceWindowMS int  `toml:"coalesce_window_ms"`
}

// AutosaveConfig tunes background persistence.
type AutosaveConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

// StorageConfig locates the on-disk note store.
type StorageConfig struct {
	// Dir overrides the default store location. Empty means the
	// platform user config directory.
	Dir string `toml:"dir"`
}

// ExportConfig tunes markdown file export.
type ExportConfig struct {
	// Dir is where exported .md files land. Empty means the current
	// working directory.
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration. Every loader starts from
// this and overlays file and environment values on top.
func Default() Config {
	return Config{
		Document: DocumentConfig{
			SectionTitles:   []string{"Summary", "Agenda", "Decisions", "Action items"},
			NewSectionTitle: "New section",
		},
		History: HistoryConfig{
			MaxEntries:       1000,
			CoalesceTyping:   true,
			CoalesceWindowMS: 750,
		},
		Autosave: AutosaveConfig{
			Enabled:    true,
			DebounceMS: 2000,
		},
	}
}

// DefaultPath returns the conventional config file location,
// ~/.config/minuta/config.toml on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "minuta", "config.toml"), nil
}

// Load builds a Config from defaults, the TOML file at path, and
// MINUTA_* environment variables, in that precedence order. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// applyEnv overlays MINUTA_* environment variables. Unparseable
// numeric or boolean values leave the current setting untouched.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("MINUTA_SECTION_TITLES"); ok {
		if titles := splitList(v); len(titles) > 0 {
			c.Document.SectionTitles = titles
		}
	}
	if v, ok := os.LookupEnv("MINUTA_NEW_SECTION_TITLE"); ok && v != "" {
		c.Document.NewSectionTitle = v
	}
	if v, ok := os.LookupEnv("MINUTA_TEMPLATE"); ok {
		c.Document.Template = v
	}
	if v, ok := lookupInt("MINUTA_HISTORY_MAX"); ok {
		c.History.MaxEntries = v
	}
	if v, ok := lookupBool("MINUTA_COALESCE_TYPING"); ok {
		c.History.CoalesceTyping = v
	}
	if v, ok := lookupInt("MINUTA_COALESCE_WINDOW_MS"); ok {
		c.History.CoalesceWindowMS = v
	}
	if v, ok := lookupBool("MINUTA_AUTOSAVE"); ok {
		c.Autosave.Enabled = v
	}
	if v, ok := lookupInt("MINUTA_AUTOSAVE_DEBOUNCE_MS"); ok {
		c.Autosave.DebounceMS = v
	}
	if v, ok := os.LookupEnv("MINUTA_DATA_DIR"); ok && v != "" {
		c.Storage.Dir = v
	}
	if v, ok := os.LookupEnv("MINUTA_EXPORT_DIR"); ok && v != "" {
		c.Export.Dir = v
	}
}

// normalize clamps out-of-range values back to usable ones so the rest
// of the program never has to re-check them.
func (c *Config) normalize() {
	if len(c.Document.SectionTitles) == 0 {
		c.Document.SectionTitles = Default().Document.SectionTitles
	}
	if c.Document.NewSectionTitle == "" {
		c.Document.NewSectionTitle = Default().Document.NewSectionTitle
	}
	if c.History.MaxEntries < 1 {
		c.History.MaxEntries = Default().History.MaxEntries
	}
	if c.History.CoalesceWindowMS < 0 {
		c.History.CoalesceWindowMS = 0
	}
	if c.Autosave.DebounceMS < 0 {
		c.Autosave.DebounceMS = 0
	}
}

// CoalesceWindow returns the typing coalescing window as a duration,
// zero when coalescing is disabled.
func (c Config) CoalesceWindow() time.Duration {
	if !c.History.CoalesceTyping {
		return 0
	}
	return time.Duration(c.History.CoalesceWindowMS) * time.Millisecond
}

// AutosaveDebounce returns the autosave debounce as a duration.
func (c Config) AutosaveDebounce() time.Duration {
	return time.Duration(c.Autosave.DebounceMS) * time.Millisecond
}

// StorageDir resolves the note store directory, falling back to
// ~/.config/minuta/notes when unset.
func (c Config) StorageDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, "minuta", "notes"), nil
}

// ExportDir resolves the export directory, falling back to the current
// working directory when unset.
func (c Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	return "."
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func lookupInt(env string) (int, bool) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupBool(env string) (bool, bool) {
	v, ok := os.LookupEnv(env)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}
