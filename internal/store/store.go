package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/minutekit/minuta/internal/engine/document"
)

// ErrNotFound is returned when no session exists under the given id.
var ErrNotFound = errors.New("store: session not found")

const cacheSizeMax = 1024 * 1024 // 1MB

// Session couples a stored document with its bookkeeping fields. The
// payload written to disk is the JSON form of this struct.
type Session struct {
	ID      string            `json:"id"`
	SavedAt time.Time         `json:"saved_at"`
	Doc     document.Document `json:"document"`
}

// Store persists session documents as one JSON file each under a flat
// base directory. All methods are safe for concurrent use.
type Store struct {
	d        *diskv.Diskv
	basePath string
	now      func() time.Time
}

// Open creates the base directory if needed and returns a Store over it.
func Open(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      cacheSizeMax,
		}),
		basePath: basePath,
		now:      time.Now,
	}, nil
}

// BasePath returns the directory the store writes under.
func (s *Store) BasePath() string {
	return s.basePath
}

// Save persists doc under id, overwriting any previous snapshot.
func (s *Store) Save(id string, doc document.Document) error {
	if id == "" {
		return errors.New("store: session id required")
	}
	data, err := json.MarshalIndent(Session{
		ID:      id,
		SavedAt: s.now().UTC(),
		Doc:     doc,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode session %s: %w", id, err)
	}
	if err := s.d.Write(id, data); err != nil {
		return fmt.Errorf("store: write session %s: %w", id, err)
	}
	return nil
}

// Load reads the document stored under id.
func (s *Store) Load(id string) (document.Document, error) {
	sess, err := s.LoadSession(id)
	if err != nil {
		return document.Document{}, err
	}
	return sess.Doc, nil
}

// LoadSession reads the full session record stored under id.
func (s *Store) LoadSession(id string) (Session, error) {
	val, err := s.d.Read(id)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return Session{}, fmt.Errorf("store: read session %s: %w", id, err)
	}
	var sess Session
	if err := json.Unmarshal(val, &sess); err != nil {
		return Session{}, fmt.Errorf("store: decode session %s: %w", id, err)
	}
	if sess.ID == "" {
		sess.ID = id
	}
	if err := sess.Doc.Validate(); err != nil {
		return Session{}, fmt.Errorf("store: session %s: %w", id, err)
	}
	return sess, nil
}

// Has reports whether a session exists under id.
func (s *Store) Has(id string) bool {
	return s.d.Has(id)
}

// Delete removes the session stored under id.
func (s *Store) Delete(id string) error {
	if !s.d.Has(id) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := s.d.Erase(id); err != nil {
		return fmt.Errorf("store: delete session %s: %w", id, err)
	}
	return nil
}

// IDs returns every stored session id, sorted.
func (s *Store) IDs(ctx context.Context) []string {
	ids := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		ids = append(ids, key)
	}
	sort.Strings(ids)
	return ids
}

// Sessions reads every stored session, newest first. Unreadable files
// are logged and skipped so one corrupt session cannot hide the rest.
func (s *Store) Sessions(ctx context.Context) []Session {
	all := make([]Session, 0)
	for key := range s.d.Keys(ctx.Done()) {
		sess, err := s.LoadSession(key)
		if err != nil {
			slog.Warn("skipping unreadable session", "id", key, "err", err)
			continue
		}
		all = append(all, sess)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].SavedAt.Equal(all[j].SavedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].SavedAt.After(all[j].SavedAt)
	})
	return all
}

// Sessions live as flat "<id>.json" files directly under the base path.

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	return strings.TrimSuffix(pk.FileName, ".json")
}
