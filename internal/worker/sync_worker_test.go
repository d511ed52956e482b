package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lyra/internal/models"
)

type countingSyncService struct {
	syncs  atomic.Int32
	prunes atomic.Int32
}

func (c *countingSyncService) FetchAndStoreLaunches(ctx context.Context) error {
	c.syncs.Add(1)
	return nil
}

func (c *countingSyncService) GetLaunches(ctx context.Context) ([]models.Launch, error) {
	return nil, nil
}

func (c *countingSyncService) GetArchiveStats(ctx context.Context) (map[string]interface{}, error) {
	return nil, nil
}

func (c *countingSyncService) GetRecentRecords(ctx context.Context, limit int) ([]models.LaunchRecord, error) {
	return nil, nil
}

func (c *countingSyncService) PruneArchive(ctx context.Context, olderThan time.Duration) error {
	c.prunes.Add(1)
	return nil
}

func TestSyncWorkerRunsImmediately(t *testing.T) {
	svc := &countingSyncService{}
	w := NewSyncWorker(svc, time.Hour)

	w.Start()
	defer w.Stop()

	assert.EqualValues(t, 1, svc.syncs.Load())
	assert.EqualValues(t, 1, svc.prunes.Load())
}

func TestSyncWorkerStartIsIdempotent(t *testing.T) {
	svc := &countingSyncService{}
	w := NewSyncWorker(svc, time.Hour)

	w.Start()
	w.Start()
	defer w.Stop()

	assert.EqualValues(t, 1, svc.syncs.Load())
}

func TestSchedulerStartAndStop(t *testing.T) {
	svc := &countingSyncService{}
	s := NewScheduler()
	s.AddWorker(NewSyncWorker(svc, time.Hour))

	assert.True(t, s.IsRunning())
	s.Start()
	s.Stop()
	assert.False(t, s.IsRunning())

	assert.EqualValues(t, 1, svc.syncs.Load())
}
