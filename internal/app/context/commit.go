package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/platform/logging"
)

// Commit runs the staged actions in order. If one fails, those that already
// ran are rolled back newest first and the failure is returned. A failed
// rollback is logged and the remaining rollbacks still run.
//
// Commit happens once. Later calls return ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.mu.Lock()
	if rc.committed {
		rc.mu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	queue := rc.queue
	rc.mu.Unlock()

	logger := logging.FromContext(ctx)
	for i, action := range queue {
		logger.DebugContext(ctx, "committing write",
			slog.String("action", action.Description()),
			slog.Int("step", i+1),
			slog.Int("of", len(queue)),
		)
		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "write failed, undoing earlier writes",
				slog.String("action", action.Description()),
				slog.Int("undo", i),
				slog.Any("error", err),
			)
			undo(ctx, logger, queue[:i])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}
	return nil
}

func undo(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("action", done[i].Description()),
				slog.Any("error", err),
			)
		}
	}
}
