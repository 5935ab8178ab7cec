package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_prices/internal/domain"
)

type countingSyncer struct {
	calls atomic.Int32
	err   error
}

func (c *countingSyncer) Sync(ctx context.Context) (*domain.SyncStats, error) {
	c.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	return &domain.SyncStats{}, c.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunOnceSyncsEveryFeed(t *testing.T) {
	a := &countingSyncer{}
	b := &countingSyncer{err: errors.New("feed down")}

	s := NewScheduler(time.Hour, time.Minute, discardLogger(), a, b)
	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), a.calls.Load())
	assert.Equal(t, int32(1), b.calls.Load())
}

func TestScheduler_StartStopsOnCancel(t *testing.T) {
	a := &countingSyncer{}
	ctx, cancel := context.WithCancel(context.Background())

	s := NewScheduler(10*time.Millisecond, time.Second, discardLogger(), a)

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return a.calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_SkipsRemainingFeedsWhenCancelled(t *testing.T) {
	a := &countingSyncer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScheduler(time.Hour, time.Minute, discardLogger(), a)
	s.RunOnce(ctx)

	assert.Equal(t, int32(0), a.calls.Load())
}
