package worker

import (
	"context"
	"log"
	"time"

	"lyra/internal/service"
)

// Archive snapshots older than this are pruned on each cycle.
const archiveRetention = 90 * 24 * time.Hour

type SyncWorker struct {
	service  service.SyncService
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

func NewSyncWorker(service service.SyncService, interval time.Duration) *SyncWorker {
	return &SyncWorker{
		service:  service,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (w *SyncWorker) Start() {
	if w.running {
		return
	}

	w.running = true
	log.Printf("Sync Worker started with interval %v", w.interval)

	// Run one sync immediately, then tick.
	w.syncLaunches()

	go w.run()
}

func (w *SyncWorker) Stop() {
	if !w.running {
		return
	}

	close(w.stopChan)
	w.running = false
	log.Println("Sync Worker stopped")
}

func (w *SyncWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.syncLaunches()
		case <-w.stopChan:
			return
		}
	}
}

func (w *SyncWorker) syncLaunches() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	log.Println("Sync Worker: Starting sync...")

	if err := w.service.FetchAndStoreLaunches(ctx); err != nil {
		log.Printf("Sync Worker launch error: %v", err)
	} else {
		log.Println("Sync Worker: launch data synced")
	}

	if err := w.service.PruneArchive(ctx, archiveRetention); err != nil {
		log.Printf("Sync Worker prune error: %v", err)
	}

	log.Println("Sync Worker: Sync completed")
}
