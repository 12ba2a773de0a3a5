package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"leaderboard/internal/leaderboard"
	"leaderboard/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Job 是每次觸發要執行的結算，通常包住 leaderboard.UpdateWinners
type Job func(ctx context.Context) (leaderboard.Result, error)

var newRunID = uuid.NewString

// Scheduler 每隔 interval 把 Job 交給 worker pool 執行。
// 同一時間最多只有一次執行，上一次尚未結束時本次 tick 直接略過
type Scheduler struct {
	pool     worker.Pool
	interval time.Duration
	job      Job
	logger   echo.Logger

	running atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	once    sync.Once
}

func New(pool worker.Pool, interval time.Duration, job Job, logger echo.Logger) *Scheduler {
	return &Scheduler{
		pool:     pool,
		interval: interval,
		job:      job,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start 啟動 ticker goroutine；ctx 結束或呼叫 Stop 時停止
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Infof("winner scheduler started, interval %s", s.interval)
	go s.loop(ctx)
}

// Stop 停止 ticker 並等待 loop 結束，不等待已交給 pool 的執行
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stopCh) })
	<-s.doneCh
	s.logger.Info("winner scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// tick 回傳是否有交出一次執行
func (s *Scheduler) tick(ctx context.Context) bool {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("previous winner run still in flight, skipping tick")
		return false
	}
	runID := newRunID()
	ok := s.pool.TrySubmit(func() {
		defer s.running.Store(false)
		s.runOnce(ctx, runID)
	})
	if !ok {
		s.running.Store(false)
		s.logger.Warnf("[%s] no idle worker, skipping tick", runID)
	}
	return ok
}

func (s *Scheduler) runOnce(parent context.Context, runID string) {
	ctx, cancel := context.WithTimeout(parent, s.interval)
	defer cancel()

	res, err := s.job(ctx)
	switch {
	case err != nil:
		s.logger.Errorf("[%s] error updating winners: %v", runID, err)
	case res.Status == leaderboard.StatusSuccess && res.Winner != nil:
		s.logger.Infof("[%s] winner declared: %s with %d points", runID, res.Winner.User.Name, res.Winner.PointsAtWin)
	default:
		s.logger.Infof("[%s] no winner declared: %s", runID, res.Message)
	}
}
