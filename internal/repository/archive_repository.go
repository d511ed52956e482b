package repository

import (
	"context"
	"errors"
	"time"

	"lyra/internal/models"

	"gorm.io/gorm"
)

// ArchiveRepository persists launch snapshots fetched by the sync worker.
// It is an external collaborator of the query pipeline: nothing in the
// core read path depends on it.
type ArchiveRepository interface {
	BulkUpsert(ctx context.Context, records []models.LaunchRecord) error
	GetByLaunchID(ctx context.Context, launchID string) (*models.LaunchRecord, error)
	GetRecent(ctx context.Context, limit int) ([]models.LaunchRecord, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]models.LaunchRecord, error)
	Count(ctx context.Context) (int64, error)
	CountUpcoming(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) error
}

type archiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) ArchiveRepository {
	return &archiveRepository{db: db}
}

func (r *archiveRepository) BulkUpsert(ctx context.Context, records []models.LaunchRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if record.LaunchID == "" {
				continue
			}

			var existing models.LaunchRecord
			err := tx.Where("launch_id = ?", record.LaunchID).First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&record).Error; err != nil {
					return err
				}
			} else if err == nil {
				record.ID = existing.ID
				record.CreatedAt = existing.CreatedAt
				if err := tx.Save(&record).Error; err != nil {
					return err
				}
			} else {
				return err
			}
		}
		return nil
	})
}

func (r *archiveRepository) GetByLaunchID(ctx context.Context, launchID string) (*models.LaunchRecord, error) {
	var record models.LaunchRecord
	err := r.db.WithContext(ctx).First(&record, "launch_id = ?", launchID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *archiveRepository) GetRecent(ctx context.Context, limit int) ([]models.LaunchRecord, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var records []models.LaunchRecord
	err := r.db.WithContext(ctx).
		Order("date_utc DESC").
		Limit(limit).
		Find(&records).
		Error
	return records, err
}

func (r *archiveRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]models.LaunchRecord, error) {
	var records []models.LaunchRecord
	err := r.db.WithContext(ctx).
		Where("date_utc BETWEEN ? AND ?", from, to).
		Order("date_utc DESC").
		Find(&records).
		Error
	return records, err
}

func (r *archiveRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LaunchRecord{}).
		Count(&count).
		Error
	return count, err
}

func (r *archiveRepository) CountUpcoming(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LaunchRecord{}).
		Where("upcoming = ?", true).
		Count(&count).
		Error
	return count, err
}

func (r *archiveRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) error {
	return r.db.WithContext(ctx).
		Where("fetched_at < ?", cutoff).
		Delete(&models.LaunchRecord{}).
		Error
}
