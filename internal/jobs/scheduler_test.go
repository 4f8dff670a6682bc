package jobs

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestScheduler_AddJob(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("refresh", "@every 1h", func() {}))
	assert.ErrorContains(t, s.AddJob("refresh", "@every 1h", func() {}), "already exists")
	assert.Error(t, s.AddJob("bad", "not a cron expression", func() {}))

	assert.ElementsMatch(t, []string{"refresh"}, s.GetJobNames())
}

func TestLedgerRefreshJob_Run(t *testing.T) {
	var calls atomic.Int32
	job := NewLedgerRefreshJob(refresherFunc(func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}), zap.NewNop(), 0)

	job.Run()
	job.Run()
	assert.EqualValues(t, 2, calls.Load())
}

type refresherFunc func(ctx context.Context) error

func (f refresherFunc) Refresh(ctx context.Context) error { return f(ctx) }
