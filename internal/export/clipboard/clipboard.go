// Package clipboard abstracts the host clipboard behind a writer
// interface so the editor never binds to a platform API directly.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer receives copy payloads.
type Writer interface {
	// WriteText places text on the clipboard, replacing its contents.
	WriteText(text string) error
}

// System returns a Writer backed by the operating system clipboard.
func System() Writer {
	return systemWriter{}
}

type systemWriter struct{}

func (systemWriter) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process Writer for tests and headless environments. It
// retains the last written payload.
type Memory struct {
	mu   sync.Mutex
	last string
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// WriteText stores text as the clipboard contents.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = text
	return nil
}

// Text returns the last written payload.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
