// Package scores implements the persisted high-score list: top-5 named
// entries, sorted descending, surviving across sessions. Persistence goes
// through a small key-value Backend so the same logic runs against a plain
// JSON file or a SQLite database.
package scores

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// Key is the storage key the leaderboard is persisted under.
const Key = "snakeHighScores"

const (
	// MaxEntries caps the leaderboard length.
	MaxEntries = 5
	// MaxNameLen caps a player name, in runes.
	MaxNameLen = 15
	// DefaultName is used when a submitted name is blank.
	DefaultName = "Anonymous"
)

// Entry is a single leaderboard record.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Backend is the key-value store the leaderboard persists through.
// Get returns (nil, nil) when the key does not exist.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Store manages the leaderboard on top of a Backend. Safe for concurrent
// use: the SSH server shares one store across all session goroutines, so
// the read-modify-write in Submit runs under a mutex.
type Store struct {
	mu      sync.Mutex
	backend Backend
	limit   int
}

// NewStore creates a leaderboard store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, limit: MaxEntries}
}

// SetLimit overrides the leaderboard length cap. Values below 1 are ignored.
func (s *Store) SetLimit(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n >= 1 {
		s.limit = n
	}
}

// Load reads the persisted leaderboard. Missing or malformed data (not a
// JSON array, an element missing a field, a non-numeric score) is discarded
// and treated as an empty list; Load never fails the caller.
func (s *Store) Load() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load is Load without the lock; callers must hold s.mu.
func (s *Store) load() []Entry {
	raw, err := s.backend.Get(Key)
	if err != nil || len(raw) == 0 {
		return nil
	}
	return decode(raw)
}

// decode parses the stored JSON leniently: any malformation yields nil.
func decode(raw []byte) []Entry {
	var parsed []struct {
		Name  *string      `json:"name"`
		Score *json.Number `json:"score"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil
	}

	entries := make([]Entry, 0, len(parsed))
	for _, p := range parsed {
		if p.Name == nil || p.Score == nil {
			return nil
		}
		n, err := p.Score.Int64()
		if err != nil || n < 0 {
			return nil
		}
		entries = append(entries, Entry{Name: *p.Name, Score: int(n)})
	}
	return entries
}

// Submit inserts a result into the leaderboard and persists it. The name is
// trimmed, defaulted to "Anonymous" when blank, and truncated to 15 runes.
// The list is stable-sorted descending by score and capped at 5 entries, so
// equal scores keep their insertion order. The updated list is returned;
// persistence failures are non-fatal (the in-memory result is still valid).
func (s *Store) Submit(name string, score int) []Entry {
	if score < 0 {
		score = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	entries = append(entries, Entry{Name: NormalizeName(name), Score: score})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	if raw, err := json.Marshal(entries); err == nil {
		// Best-effort save, the game continues regardless.
		_ = s.backend.Put(Key, raw)
	}

	return entries
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// NormalizeName trims whitespace, substitutes the default for blank names,
// and truncates to MaxNameLen runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	runes := []rune(name)
	if len(runes) > MaxNameLen {
		return string(runes[:MaxNameLen])
	}
	return name
}
