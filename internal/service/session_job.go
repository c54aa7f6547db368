package service

import (
	"context"
	"sync"
	"time"

	"github.com/galahseno/SpendLess-sub000/internal/logger"
	"github.com/galahseno/SpendLess-sub000/internal/prefs"
)

type sessionExpiryJob struct {
	pinSession PinSession
	settings   prefs.Settings
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionExpiryJob creates a sessionExpiryJob that polls the session
// expiry check on a ticker and clears the persisted session once the
// inactivity window has passed. The job is idle until Start is called.
func NewSessionExpiryJob(pinSession PinSession, settings prefs.Settings, logger *logger.Logger) SessionExpiryJob {
	return &sessionExpiryJob{
		pinSession: pinSession,
		settings:   settings,
		logger:     logger,
	}
}

// Start implements SessionExpiryJob. It stops any previously running job,
// then launches a background goroutine that checks expiry every interval.
// If interval is zero or negative it defaults to 30 seconds. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *sessionExpiryJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.checkOnce(jobCtx)
			}
		}
	}()
}

func (j *sessionExpiryJob) checkOnce(ctx context.Context) {
	expired, err := j.pinSession.IsSessionExpired(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*sessionExpiryJob.checkOnce").Msg("error checking session expiry")
		return
	}
	if !expired {
		return
	}

	session, err := j.settings.GetUserSession(ctx)
	if err != nil || !session.LoggedIn() {
		return
	}

	if err = j.settings.ClearSession(ctx); err != nil {
		j.logger.Err(err).Str("func", "*sessionExpiryJob.checkOnce").Msg("error clearing expired session")
		return
	}
	j.logger.Info().Str("func", "*sessionExpiryJob.checkOnce").Msg("session expired, cleared")
}

// Stop implements SessionExpiryJob. It cancels the background goroutine's
// context and blocks until it has fully exited. Safe to call when the job
// is not running.
func (j *sessionExpiryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Run implements [workers.Worker]: one immediate check, used when the job
// is driven by an external scheduler instead of its own ticker.
func (j *sessionExpiryJob) Run() {
	j.checkOnce(context.Background())
}
