package workers

import (
	"context"
	"sync"
	"time"

	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/service"
)

// ActivityWorker refreshes the session's last-activity timestamp on a
// ticker while the application is open. It is idle until Start (or Run) is
// called.
type ActivityWorker struct {
	session  service.SessionService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewActivityWorker creates an ActivityWorker that touches the session
// every interval. If interval is zero or negative it defaults to 5 minutes.
func NewActivityWorker(session service.SessionService, interval time.Duration, logger *logger.Logger) *ActivityWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &ActivityWorker{session: session, interval: interval, logger: logger}
}

// Run implements [Worker]. It starts the worker against the background
// context.
func (w *ActivityWorker) Run() {
	w.Start(context.Background())
}

// Start stops any previously running instance, then launches a background
// goroutine that touches the session every interval. The goroutine exits
// when ctx is cancelled or Stop is called.
func (w *ActivityWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				if err := w.session.Touch(workerCtx); err != nil {
					w.logger.Warn().Err(err).Msg("session activity refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (w *ActivityWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
