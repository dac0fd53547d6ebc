package domain

import "context"

// Action is one write that can be undone, such as saving a visitor's
// session state.
type Action interface {
	// Execute performs the write. Implementations should respect
	// cancellation and deadlines carried by ctx.
	Execute(ctx context.Context) error

	// Rollback reverses a previously successful Execute. It is only called
	// if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description labels the write in logs ("save session").
	Description() string
}

// WriteStager queues writes for the end of a request.
type WriteStager interface {
	// Stage queues action and makes entity what later reads of key see.
	Stage(key string, entity any, action Action) error
}
