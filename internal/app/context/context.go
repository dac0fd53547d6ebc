// Package appctx is the per-request unit of work the todo services run in.
//
// A request reads the visitor's session state once, changes a copy, stages
// the save, and commits:
//
//	rc := appctx.New(ctx)
//	state, err := sessions.Get(rc)
//	next := state.Clone()
//	// change next
//	err = rc.Stage(key, next, save)
//	err = rc.Commit(ctx)
//
// Staged writes run in order on Commit. When one fails, the writes before
// it are undone newest first.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/go-todos/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned by Stage and Commit once Commit ran.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")
	// ErrNilAction is returned when a nil Action is staged.
	ErrNilAction = errors.New("appctx: nil action")
	// ErrTypeMismatch means one key was read as two different types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext carries a read cache and a write queue for one request.
// The cache belongs to the request goroutine. Stage, Pending and Commit may
// be called concurrently.
type RequestContext struct {
	context.Context

	cache map[string]cached

	mu        sync.Mutex
	queue     []domain.Action
	committed bool
}

// cached remembers a fetch result. Failed loads are cached too, so a
// request does not retry a store that just failed.
type cached struct {
	value any
	err   error
}

// New starts a unit of work on ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cached),
	}
}

// GetOrFetch returns the value cached under key, calling fetch on the first
// read.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	hit, ok := rc.cache[key]
	if !ok {
		v, err := fetch(rc.Context)
		rc.cache[key] = cached{value: v, err: err}
		return v, err
	}
	if hit.err != nil {
		return zero, hit.err
	}
	v, ok := hit.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q holds %T, want %T", ErrTypeMismatch, key, hit.value, zero)
	}
	return v, nil
}

// DataProvider pairs a cache key with the fetch that fills it.
type DataProvider[T any] struct {
	key   string
	fetch func(context.Context) (T, error)
}

// NewDataProvider creates a DataProvider.
func NewDataProvider[T any](key string, fetch func(context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetch: fetch}
}

// Get reads the provider's key through rc.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetch)
}

// Key returns the cache key.
func (p *DataProvider[T]) Key() string {
	return p.key
}

// Stage queues action for Commit and makes entity the value later reads of
// key return.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.cache[key] = cached{value: entity}
	rc.queue = append(rc.queue, action)
	return nil
}

// Pending reports how many staged actions wait for Commit.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.queue)
}
