package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	testhelpers "github.com/vantran/anishop/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewLinkSweeperDefaults(t *testing.T) {
	sweeper := NewLinkSweeper(&testhelpers.SweeperFacadeStub{}, 0, discardLogger())
	if sweeper.interval != time.Minute {
		t.Fatalf("expected interval default to 1m, got %v", sweeper.interval)
	}
}

func TestLinkSweeperSweep(t *testing.T) {
	t.Run("delegates to facade", func(t *testing.T) {
		facade := &testhelpers.SweeperFacadeStub{Count: 3}
		sweeper := NewLinkSweeper(facade, time.Minute, discardLogger())

		sweeper.sweep(context.Background())
		if facade.SweepCalls() != 1 {
			t.Fatalf("expected one sweep, got %d", facade.SweepCalls())
		}
	})

	t.Run("logs and continues on error", func(t *testing.T) {
		facade := &testhelpers.SweeperFacadeStub{Err: errors.New("boom")}
		sweeper := NewLinkSweeper(facade, time.Minute, discardLogger())

		sweeper.sweep(context.Background())
		sweeper.sweep(context.Background())
		if facade.SweepCalls() != 2 {
			t.Fatalf("expected two sweeps, got %d", facade.SweepCalls())
		}
	})

	t.Run("skips after cancellation", func(t *testing.T) {
		facade := &testhelpers.SweeperFacadeStub{}
		sweeper := NewLinkSweeper(facade, time.Minute, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		sweeper.sweep(ctx)
		if facade.SweepCalls() != 0 {
			t.Fatalf("expected no sweep after cancel, got %d", facade.SweepCalls())
		}
	})
}

func TestLinkSweeperRunsOnSchedule(t *testing.T) {
	facade := &testhelpers.SweeperFacadeStub{Count: 1}
	sweeper := NewLinkSweeper(facade, time.Second, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)
	defer sweeper.Stop()

	deadline := time.After(3 * time.Second)
	for facade.SweepCalls() == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for scheduled sweep")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestLinkSweeperStop(t *testing.T) {
	sweeper := NewLinkSweeper(&testhelpers.SweeperFacadeStub{}, time.Second, discardLogger())

	ctx := context.Background()
	sweeper.Start(ctx)
	sweeper.Stop()

	// A second Stop must be a no-op.
	sweeper.Stop()
	if sweeper.cron != nil {
		t.Fatal("expected cron to be cleared after stop")
	}
}
