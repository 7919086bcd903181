package scheduler

import (
	"context"
	"sync"
	"time"

	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/repository"
)

// Scheduler periodically deletes expired and revoked sessions.
type Scheduler struct {
	sessions   repository.SessionRepository
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current purge operation
	mu         sync.Mutex         // protects cancelFunc
}

func New(sessions repository.SessionRepository, interval time.Duration) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "purge", "resource", "session", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing purge operation first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "purge", "resource", "session", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.purge()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purge()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)

	// Store cancel function so Stop() can cancel an ongoing purge
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	deleted, err := s.sessions.DeleteDefunct(ctx, time.Now().UTC())
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("session purge cancelled", "module", "scheduler", "action", "purge", "resource", "session", "result", "cancelled")
			return
		}
		logger.Error("session purge failed", "module", "scheduler", "action", "purge", "resource", "session", "result", "failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("session purge completed", "module", "scheduler", "action", "purge", "resource", "session", "result", "ok", "deleted", deleted)
	}
}
