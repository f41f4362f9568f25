package aitools

import (
	"context"
	"time"

	"github.com/agentstation/aitools/pkg/errors"
)

// simulate blocks for d or until ctx ends, whichever comes first.
func simulate(ctx context.Context, operation string, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return errors.NewCanceledError(operation, err)
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.NewCanceledError(operation, ctx.Err())
	case <-timer.C:
		return nil
	}
}
