package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// idSpace bounds ids to 12 decimal digits.
var idSpace = big.NewInt(1_000_000_000_000)

const maxIDAttempts = 16

var _ Store[int] = (*MemoryStore[int])(nil)

type entry[T any] struct {
	mu sync.Mutex
	v  T
}

// MemoryStore is an in-process Store. Sessions idle for longer than the
// ttl, or pushed out once size is reached, are dropped.
type MemoryStore[T any] struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, *entry[T]]
}

// NewMemoryStore returns a store holding at most size sessions, each
// expiring ttl after its last write. size <= 0 means unbounded and ttl <= 0
// means sessions never expire.
func NewMemoryStore[T any](size int, ttl time.Duration) *MemoryStore[T] {
	if size < 0 {
		size = 0
	}
	return &MemoryStore[T]{lru: expirable.NewLRU[string, *entry[T]](size, nil, ttl)}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, bool, error) {
	e, ok := s.lru.Get(id)
	if !ok {
		var zero T
		return zero, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.v, true, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.lru.Get(id); ok {
		e.mu.Lock()
		e.v = v
		e.mu.Unlock()
		s.lru.Add(id, e)
		return nil
	}
	s.lru.Add(id, &entry[T]{v: v})
	return nil
}

// Create stores v under a fresh id.
func (s *MemoryStore[T]) Create(_ context.Context, v T) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for range maxIDAttempts {
		id, err := NewID()
		if err != nil {
			return "", err
		}
		if s.lru.Contains(id) {
			continue
		}
		s.lru.Add(id, &entry[T]{v: v})
		return id, nil
	}
	return "", errors.New("session: could not allocate a unique id")
}

// Update applies fn to the stored value while holding that session's lock.
// If fn fails the stored value is left as it was.
func (s *MemoryStore[T]) Update(_ context.Context, id string, fn func(T) (T, error)) (T, error) {
	var zero T
	e, ok := s.lru.Get(id)
	if !ok {
		return zero, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	next, err := fn(e.v)
	if err != nil {
		return zero, err
	}
	e.v = next
	s.lru.Add(id, e)
	return next, nil
}

func (s *MemoryStore[T]) Delete(_ context.Context, id string) error {
	s.lru.Remove(id)
	return nil
}

// Len reports how many sessions are held, expired ones included until they
// are swept.
func (s *MemoryStore[T]) Len() int {
	return s.lru.Len()
}

// NewID returns a random 12-digit decimal id.
func NewID() (string, error) {
	n, err := rand.Int(rand.Reader, idSpace)
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return fmt.Sprintf("%012d", n.Int64()), nil
}
