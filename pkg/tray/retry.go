package tray

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// DockAttempts and DockInterval bound how long startup waits for a
// slow-starting tray manager before giving up.
const (
	DockAttempts = 10
	DockInterval = 500 * time.Millisecond
)

// DockWithRetry runs dock until it succeeds, waiting interval between
// attempts, for at most attempts tries. Exhaustion is fatal for the
// caller: an indicator that is not embedded anywhere is invisible, so
// running on undocked makes no sense.
func DockWithRetry(ctx context.Context, attempts int, interval time.Duration, dock func() error, log *zap.SugaredLogger) error {
	attempt := 0
	op := func() error {
		attempt++
		err := dock()
		if err != nil {
			log.Infow("tray not found, retrying", "attempt", attempt, "max", attempts)
		}
		return err
	}

	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), uint64(attempts-1))
	err := backoff.Retry(op, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("dock after %d attempts (is a panel with a system tray running?): %w", attempts, err)
	}

	log.Infow("docked into system tray", "attempt", attempt)
	return nil
}
