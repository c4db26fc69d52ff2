package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
)

type PrayerUpdateRepository interface {
	Insert(ctx context.Context, update *db_models.PrayerUpdate) error
	ListByPrayerID(ctx context.Context, prayerID uuid.UUID) ([]db_models.PrayerUpdate, error)
	CountByPrayerID(ctx context.Context, prayerID uuid.UUID) (int64, error)
}

type prayerUpdateRepository struct {
	db *gorm.DB
}

func NewPrayerUpdateRepository(db *gorm.DB) PrayerUpdateRepository {
	return &prayerUpdateRepository{db: db}
}

func (r *prayerUpdateRepository) Insert(ctx context.Context, update *db_models.PrayerUpdate) error {
	return r.db.WithContext(ctx).Create(update).Error
}

func (r *prayerUpdateRepository) ListByPrayerID(ctx context.Context, prayerID uuid.UUID) ([]db_models.PrayerUpdate, error) {
	var updates []db_models.PrayerUpdate
	err := r.db.WithContext(ctx).
		Where("prayer_id = ?", prayerID).
		Order("created_at ASC").
		Find(&updates).Error
	if err != nil {
		return nil, err
	}
	return updates, nil
}

func (r *prayerUpdateRepository) CountByPrayerID(ctx context.Context, prayerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PrayerUpdate{}).
		Where("prayer_id = ?", prayerID).
		Count(&count).Error
	return count, err
}
