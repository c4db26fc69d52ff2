package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
)

type PrayerRepository interface {
	Insert(ctx context.Context, prayer *db_models.Prayer) error
	Update(ctx context.Context, prayer *db_models.Prayer) error
	// MarkAnswered persists the status change and the testimony update in
	// one transaction; neither write lands without the other.
	MarkAnswered(ctx context.Context, prayer *db_models.Prayer, update *db_models.PrayerUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Prayer, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Prayer, error)
	ListShared(ctx context.Context) ([]db_models.Prayer, error)
	ListAnsweredShared(ctx context.Context) ([]db_models.Prayer, error)
}

type prayerRepository struct {
	db *gorm.DB
}

func NewPrayerRepository(db *gorm.DB) PrayerRepository {
	return &prayerRepository{db: db}
}

func (r *prayerRepository) Insert(ctx context.Context, prayer *db_models.Prayer) error {
	return r.db.WithContext(ctx).Create(prayer).Error
}

func (r *prayerRepository) Update(ctx context.Context, prayer *db_models.Prayer) error {
	return r.db.WithContext(ctx).Save(prayer).Error
}

func (r *prayerRepository) MarkAnswered(ctx context.Context, prayer *db_models.Prayer, update *db_models.PrayerUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(prayer).Error; err != nil {
			return err
		}
		return tx.Create(update).Error
	})
}

func (r *prayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.PrayerFollower{}, "prayer_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.PrayerUpdate{}, "prayer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Prayer{}, "id = ?", id).Error
	})
}

func (r *prayerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Prayer, error) {
	var prayer db_models.Prayer
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&prayer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prayer, nil
}

func (r *prayerRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Prayer, error) {
	var prayers []db_models.Prayer
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&prayers).Error
	if err != nil {
		return nil, err
	}
	return prayers, nil
}

func (r *prayerRepository) ListShared(ctx context.Context) ([]db_models.Prayer, error) {
	var prayers []db_models.Prayer
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("visibility IN ?", []string{db_models.PrayerVisibilityCommunity, db_models.PrayerVisibilityPublic}).
		Order("created_at DESC").
		Find(&prayers).Error
	if err != nil {
		return nil, err
	}
	return prayers, nil
}

func (r *prayerRepository) ListAnsweredShared(ctx context.Context) ([]db_models.Prayer, error) {
	var prayers []db_models.Prayer
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", db_models.PrayerStatusAnswered).
		Where("visibility IN ?", []string{db_models.PrayerVisibilityCommunity, db_models.PrayerVisibilityPublic}).
		Order("updated_at DESC").
		Find(&prayers).Error
	if err != nil {
		return nil, err
	}
	return prayers, nil
}
