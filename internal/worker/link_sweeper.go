package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ShopFacade exposes the subset of application functionality required by the worker.
type ShopFacade interface {
	SweepExpiredEditLinks(ctx context.Context) (int, error)
}

// LinkSweeper periodically rejects edit requests whose one-time link expired
// without a submission.
type LinkSweeper struct {
	facade   ShopFacade
	interval time.Duration
	logger   *slog.Logger

	cron   *cron.Cron
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewLinkSweeper constructs the sweeper with the given run interval.
func NewLinkSweeper(facade ShopFacade, interval time.Duration, logger *slog.Logger) *LinkSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &LinkSweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start schedules sweeps in the background until Stop is called.
func (s *LinkSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.cron = cron.New()
	s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(func() {
		s.sweep(runCtx)
	}))
	s.cron.Start()
}

// Stop halts scheduling and waits for an in-flight sweep to finish.
func (s *LinkSweeper) Stop() {
	s.mu.Lock()
	c := s.cron
	cancel := s.cancel
	s.cron = nil
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}
}

func (s *LinkSweeper) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	closed, err := s.facade.SweepExpiredEditLinks(ctx)
	if err != nil {
		s.logger.Error("expired edit link sweep failed", slog.String("error", err.Error()))
		return
	}
	if closed > 0 {
		s.logger.Info("expired edit links closed", slog.Int("count", closed))
	}
}
