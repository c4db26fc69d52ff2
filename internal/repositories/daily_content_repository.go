package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
)

type DailyContentRepository interface {
	Insert(ctx context.Context, content *db_models.DailyContent) error
	FindByPublishDate(ctx context.Context, date time.Time) (*db_models.DailyContent, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.DailyContent, error)
	Count(ctx context.Context) (int64, error)
}

type dailyContentRepository struct {
	db *gorm.DB
}

func NewDailyContentRepository(db *gorm.DB) DailyContentRepository {
	return &dailyContentRepository{db: db}
}

func (r *dailyContentRepository) Insert(ctx context.Context, content *db_models.DailyContent) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *dailyContentRepository) FindByPublishDate(ctx context.Context, date time.Time) (*db_models.DailyContent, error) {
	var content db_models.DailyContent
	err := r.db.WithContext(ctx).
		Where("publish_date = ? AND is_published = ?", date.Format("2006-01-02"), true).
		First(&content).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (r *dailyContentRepository) List(ctx context.Context, page, pageSize int) ([]db_models.DailyContent, error) {
	var contents []db_models.DailyContent
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("publish_date DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *dailyContentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.DailyContent{}).
		Where("is_published = ?", true).
		Count(&count).Error
	return count, err
}
