package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTemplate is returned when a template file parses but names no
// sections. A session document needs at least one section to hold the
// caret.
var ErrEmptyTemplate = errors.New("config: template has no sections")

// Template describes the skeleton of a new session document. Templates
// are small YAML files:
//
//	title: Weekly sync
//	sections:
//	  - Agenda
//	  - Decisions
//	  - Action items
type Template struct {
	Title    string   `yaml:"title"`
	Sections []string `yaml:"sections"`
}

// LoadTemplate reads and validates the template at path.
func LoadTemplate(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading template %s: %w", path, err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("parsing template %s: %w", path, err)
	}
	if len(t.Sections) == 0 {
		return Template{}, fmt.Errorf("%w: %s", ErrEmptyTemplate, path)
	}
	return t, nil
}

// SectionTitles resolves the section list for new documents: the
// configured template wins when set, the inline list otherwise.
func (c Config) SectionTitles() ([]string, error) {
	if c.Document.Template == "" {
		return c.Document.SectionTitles, nil
	}
	t, err := LoadTemplate(c.Document.Template)
	if err != nil {
		return nil, err
	}
	return t.Sections, nil
}
