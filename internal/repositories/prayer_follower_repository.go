package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
	"stayrooted/pkg/utils"
)

type PrayerFollowerRepository interface {
	// Insert relies on the (prayer_id, user_id) unique constraint; a
	// duplicate follow comes back as ErrAlreadyFollowing.
	Insert(ctx context.Context, follower *db_models.PrayerFollower) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByPrayerAndUser(ctx context.Context, prayerID, userID uuid.UUID) (*db_models.PrayerFollower, error)
	Exists(ctx context.Context, prayerID, userID uuid.UUID) (bool, error)
	ListByPrayerID(ctx context.Context, prayerID uuid.UUID) ([]db_models.PrayerFollower, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.PrayerFollower, error)
	CountByPrayerID(ctx context.Context, prayerID uuid.UUID) (int64, error)
}

type prayerFollowerRepository struct {
	db *gorm.DB
}

func NewPrayerFollowerRepository(db *gorm.DB) PrayerFollowerRepository {
	return &prayerFollowerRepository{db: db}
}

func (r *prayerFollowerRepository) Insert(ctx context.Context, follower *db_models.PrayerFollower) error {
	err := r.db.WithContext(ctx).Create(follower).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (r *prayerFollowerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.PrayerFollower{}, "id = ?", id).Error
}

func (r *prayerFollowerRepository) FindByPrayerAndUser(ctx context.Context, prayerID, userID uuid.UUID) (*db_models.PrayerFollower, error) {
	var follower db_models.PrayerFollower
	err := r.db.WithContext(ctx).
		First(&follower, "prayer_id = ? AND user_id = ?", prayerID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follower, nil
}

func (r *prayerFollowerRepository) Exists(ctx context.Context, prayerID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PrayerFollower{}).
		Where("prayer_id = ? AND user_id = ?", prayerID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *prayerFollowerRepository) ListByPrayerID(ctx context.Context, prayerID uuid.UUID) ([]db_models.PrayerFollower, error) {
	var followers []db_models.PrayerFollower
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("prayer_id = ?", prayerID).
		Order("created_at DESC").
		Find(&followers).Error
	if err != nil {
		return nil, err
	}
	return followers, nil
}

func (r *prayerFollowerRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.PrayerFollower, error) {
	var followers []db_models.PrayerFollower
	err := r.db.WithContext(ctx).
		Preload("Prayer").
		Preload("Prayer.User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&followers).Error
	if err != nil {
		return nil, err
	}
	return followers, nil
}

func (r *prayerFollowerRepository) CountByPrayerID(ctx context.Context, prayerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.PrayerFollower{}).
		Where("prayer_id = ?", prayerID).
		Count(&count).Error
	return count, err
}
