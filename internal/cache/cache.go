package cache

import (
	"fmt"
	"strings"
	"time"

	"github.com/TemirB/internetmarke/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store is a namespaced, TTL-bounded keyed store. Entries are stored under
// prefix + "_" + id and expire independently. Expired entries are treated as
// absent on read; the underlying LRU also sweeps them in the background.
type Store[T any] struct {
	prefix string
	lru    *expirable.LRU[string, T]
}

// NewStore creates a store. size <= 0 means unbounded, ttl <= 0 means entries
// never expire.
//
// The underlying LRU runs an expiry sweeper goroutine that lives as long as
// the process; create one store per backend and reuse it.
func NewStore[T any](prefix string, size int, ttl time.Duration) *Store[T] {
	if size < 0 {
		size = 0
	}
	return &Store[T]{
		prefix: prefix,
		lru:    expirable.NewLRU[string, T](size, nil, ttl),
	}
}

func (s *Store[T]) Key(id string) string {
	return s.prefix + "_" + id
}

func (s *Store[T]) Set(id string, v T) {
	s.lru.Add(s.Key(id), v)
}

func (s *Store[T]) Get(id string) (T, error) {
	v, ok := s.lru.Get(s.Key(id))
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s", domain.ErrNotFound, s.Key(id))
	}
	return v, nil
}

// Len counts unexpired entries. Keys of the LRU may still hold expired ones
// until the sweeper runs.
func (s *Store[T]) Len() int {
	return len(s.Entries())
}

// Entries returns the unexpired entries keyed by id (prefix stripped).
func (s *Store[T]) Entries() map[string]T {
	keys := s.lru.Keys()
	out := make(map[string]T, len(keys))
	for _, k := range keys {
		v, ok := s.lru.Peek(k)
		if !ok {
			continue
		}
		out[strings.TrimPrefix(k, s.prefix+"_")] = v
	}
	return out
}

func (s *Store[T]) Purge() {
	s.lru.Purge()
}
