package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horizone-blog/horizone/internal/config"
	"github.com/horizone-blog/horizone/internal/logger"
	"github.com/horizone-blog/horizone/internal/service"
	"github.com/horizone-blog/horizone/internal/store"
)

type countingWorker struct {
	runCount int
}

func (c *countingWorker) Run() {
	c.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}

	NewWorkers(w1, w2).Run()

	assert.Equal(t, 1, w1.runCount)
	assert.Equal(t, 1, w2.runCount)
}

func TestWorkers_Run_Empty(t *testing.T) {
	// must not panic with nothing registered
	NewWorkers().Run()
}

func TestActivityWorker_TouchesSession(t *testing.T) {
	log := logger.NewLogger("test")
	storages := store.NewStoragesWithKV(store.NewMemoryKV(), log)
	sessionSvc := service.NewSessionService(storages.Sessions, storages.Users, config.Session{MaxAge: 30 * 24 * time.Hour}, log)

	ctx := context.Background()
	require.NoError(t, sessionSvc.Start(ctx, "a@b.com"))

	before, err := storages.Sessions.GetSession(ctx)
	require.NoError(t, err)

	worker := NewActivityWorker(sessionSvc, 10*time.Millisecond, log)
	worker.Start(ctx)
	defer worker.Stop()

	require.Eventually(t, func() bool {
		session, err := storages.Sessions.GetSession(ctx)
		if err != nil {
			return false
		}
		return session.LastActivity.After(before.LastActivity)
	}, time.Second, 5*time.Millisecond)
}

func TestActivityWorker_StopIsIdempotent(t *testing.T) {
	log := logger.NewLogger("test")
	storages := store.NewStoragesWithKV(store.NewMemoryKV(), log)
	sessionSvc := service.NewSessionService(storages.Sessions, storages.Users, config.Session{MaxAge: time.Hour}, log)

	worker := NewActivityWorker(sessionSvc, 10*time.Millisecond, log)

	// stopping before starting must not block or panic
	worker.Stop()

	worker.Start(context.Background())
	worker.Stop()
	worker.Stop()
}
