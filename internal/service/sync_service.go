package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lyra/internal/models"
	"lyra/internal/repository"

	"github.com/google/uuid"
)

const (
	launchesCacheKey = "spacex:launches:all"
	lastSyncCacheKey = "spacex:launches:last_sync"
	launchesCacheTTL = 5 * time.Minute
	syncThrottleTTL  = 10 * time.Minute
	archiveStatsKey  = "spacex:archive:stats"
	archiveStatsTTL  = 2 * time.Minute
)

// SyncService keeps the local archive and cache in step with the upstream
// API. It sits beside LaunchService rather than under it: the query
// pipeline stays pure while the archive and Redis remain external
// collaborators fed from here.
type SyncService interface {
	FetchAndStoreLaunches(ctx context.Context) error
	GetLaunches(ctx context.Context) ([]models.Launch, error)
	GetArchiveStats(ctx context.Context) (map[string]interface{}, error)
	GetRecentRecords(ctx context.Context, limit int) ([]models.LaunchRecord, error)
	PruneArchive(ctx context.Context, olderThan time.Duration) error
}

type syncService struct {
	repo        repository.LaunchRepository
	archiveRepo repository.ArchiveRepository
	cacheRepo   repository.CacheRepository
}

func NewSyncService(
	repo repository.LaunchRepository,
	archiveRepo repository.ArchiveRepository,
	cacheRepo repository.CacheRepository,
) SyncService {
	return &syncService{
		repo:        repo,
		archiveRepo: archiveRepo,
		cacheRepo:   cacheRepo,
	}
}

func (s *syncService) FetchAndStoreLaunches(ctx context.Context) error {
	if cached, _ := s.cacheRepo.Get(ctx, lastSyncCacheKey); cached != "" {
		return nil // synced recently
	}

	log.Println("Fetching SpaceX launch data...")

	launches, err := s.repo.GetAllLaunches(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch launches: %w", err)
	}

	now := time.Now().UTC()
	records := make([]models.LaunchRecord, 0, len(launches))
	for _, launch := range launches {
		payload, err := json.Marshal(launch)
		if err != nil {
			log.Printf("Failed to marshal launch %s: %v", launch.ID, err)
			continue
		}

		records = append(records, models.LaunchRecord{
			ID:           uuid.New(),
			LaunchID:     launch.ID,
			Name:         launch.Name,
			FlightNumber: launch.FlightNumber,
			DateUTC:      launch.DateUTC,
			Upcoming:     launch.Upcoming,
			Success:      launch.Success,
			FetchedAt:    now,
			Raw:          payload,
		})
	}

	if len(records) > 0 {
		if err := s.archiveRepo.BulkUpsert(ctx, records); err != nil {
			return fmt.Errorf("failed to save launch archive: %w", err)
		}
	}

	if err := s.cacheRepo.SetJSON(ctx, launchesCacheKey, launches, launchesCacheTTL); err != nil {
		log.Printf("Failed to cache launches: %v", err)
	}
	s.cacheRepo.Set(ctx, lastSyncCacheKey, "1", syncThrottleTTL)

	log.Printf("Launch data updated: %d launches", len(records))
	return nil
}

// GetLaunches serves the full launch set cache-aside. A cache miss falls
// through to the upstream API via the repository.
func (s *syncService) GetLaunches(ctx context.Context) ([]models.Launch, error) {
	var launches []models.Launch
	if err := s.cacheRepo.GetJSON(ctx, launchesCacheKey, &launches); err == nil && len(launches) > 0 {
		return launches, nil
	}

	launches, err := s.repo.GetAllLaunches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get launches: %w", err)
	}

	if err := s.cacheRepo.SetJSON(ctx, launchesCacheKey, launches, launchesCacheTTL); err != nil {
		log.Printf("Failed to cache launches: %v", err)
	}

	return launches, nil
}

func (s *syncService) GetArchiveStats(ctx context.Context) (map[string]interface{}, error) {
	var stats map[string]interface{}
	if err := s.cacheRepo.GetJSON(ctx, archiveStatsKey, &stats); err == nil && stats != nil {
		return stats, nil
	}

	total, err := s.archiveRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count archive: %w", err)
	}

	upcoming, err := s.archiveRepo.CountUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming: %w", err)
	}

	stats = map[string]interface{}{
		"total":    total,
		"upcoming": upcoming,
		"past":     total - upcoming,
	}

	s.cacheRepo.SetJSON(ctx, archiveStatsKey, stats, archiveStatsTTL)
	return stats, nil
}

func (s *syncService) GetRecentRecords(ctx context.Context, limit int) ([]models.LaunchRecord, error) {
	records, err := s.archiveRepo.GetRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent records: %w", err)
	}
	return records, nil
}

func (s *syncService) PruneArchive(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().UTC().Add(-olderThan)
	if err := s.archiveRepo.DeleteOlderThan(ctx, cutoff); err != nil {
		return fmt.Errorf("failed to prune archive: %w", err)
	}
	return nil
}
