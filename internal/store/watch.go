package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventSaved indicates the session with the given id was written.
	EventSaved EventType = iota

	// EventRemoved indicates the session with the given id disappeared.
	EventRemoved

	// EventInvalidated signals a change the watcher could not attribute
	// to a single session; callers should refresh their full view.
	EventInvalidated
)

// Event is emitted by Store.Watch when the underlying directory changes.
type Event struct {
	Type EventType
	ID   string
}

const watchThrottle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled, letting a second
// process pick up saves made by this one. Callers should drain the
// returned channel; events are dropped rather than blocking the watcher.
// The channel is closed once ctx is done or the watcher fails.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				slog.Warn("session watcher close", "err", err)
			}
		})
	}

	if err := watcher.Add(s.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer lags; a refresh reads current
				// state anyway and a filesystem storm must not stall
				// the watcher goroutine.
			}
		}

		// Rapid filesystem activity coalesces into one event per burst.
		// The flush timer is drained in this select loop, never in a
		// timer callback: every send happens on this goroutine, so none
		// can trail the deferred close of the channel.
		pending := make(map[EventType]map[string]struct{})
		flush := time.NewTimer(watchThrottle)
		if !flush.Stop() {
			<-flush.C
		}
		defer flush.Stop()
		armed := false

		enqueue := func(ev Event) {
			if pending[ev.Type] == nil {
				pending[ev.Type] = make(map[string]struct{})
			}
			pending[ev.Type][ev.ID] = struct{}{}
			if !armed {
				flush.Reset(watchThrottle)
				armed = true
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-flush.C:
				armed = false
				for eventType, ids := range pending {
					for id := range ids {
						send(Event{Type: eventType, ID: id})
					}
				}
				clear(pending)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("session watcher error", "err", err)
				enqueue(Event{Type: EventInvalidated})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				id := idForPath(evt.Name)
				if id == "" {
					enqueue(Event{Type: EventInvalidated})
					continue
				}
				switch {
				case evt.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
					enqueue(Event{Type: EventRemoved, ID: id})
				case evt.Op&(fsnotify.Create|fsnotify.Write) != 0:
					enqueue(Event{Type: EventSaved, ID: id})
				}
			}
		}
	}()

	return events, nil
}

// idForPath derives a session id from a changed path, or "" when the
// path is not a session file.
func idForPath(path string) string {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, ".json") {
		return ""
	}
	return strings.TrimSuffix(base, ".json")
}
