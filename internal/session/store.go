package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id does not name a live session.
var ErrNotFound = errors.New("session not found")

// Store keeps sessions by id. Update runs fn under the session's own lock
// and commits the returned value only when fn succeeds.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	Create(ctx context.Context, v T) (string, error)
	Update(ctx context.Context, id string, fn func(T) (T, error)) (T, error)
	Delete(ctx context.Context, id string) error
	Len() int
}
