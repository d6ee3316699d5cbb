package tray

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDockWithRetryFirstAttempt(t *testing.T) {
	calls := 0
	dock := func() error {
		calls++
		return nil
	}

	err := DockWithRetry(context.Background(), DockAttempts, time.Millisecond, dock, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDockWithRetryEventualSuccess(t *testing.T) {
	calls := 0
	dock := func() error {
		calls++
		if calls < 4 {
			return ErrNoTrayManager
		}
		return nil
	}

	err := DockWithRetry(context.Background(), DockAttempts, time.Millisecond, dock, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestDockWithRetryExhaustion(t *testing.T) {
	calls := 0
	dock := func() error {
		calls++
		return ErrNoTrayManager
	}

	err := DockWithRetry(context.Background(), DockAttempts, time.Millisecond, dock, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTrayManager)
	assert.Equal(t, DockAttempts, calls)
}

func TestDockWithRetryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	dock := func() error {
		calls++
		return ErrNoTrayManager
	}

	err := DockWithRetry(ctx, DockAttempts, time.Millisecond, dock, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
