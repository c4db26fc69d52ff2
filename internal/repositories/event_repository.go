package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error)
	ListUpcoming(ctx context.Context, now time.Time) ([]db_models.Event, error)
	ListByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]db_models.Event, error)
	ListUpcomingByType(ctx context.Context, eventType string, now time.Time) ([]db_models.Event, error)
	ListByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]db_models.Event, error)
	Search(ctx context.Context, searchTerm string, now time.Time) ([]db_models.Event, error)
	// FindNearby filters upcoming events within radiusMeters of the point.
	// eventType is optional; empty string means all types. One query serves
	// both cases.
	FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64, eventType string, now time.Time) ([]db_models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Event{}, "id = ?", id).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	var event db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("CreatedBy").
		First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("CreatedBy").
		Where("event_date >= ?", now).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("CreatedBy").
		Where("organization_id = ?", organizationID).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListUpcomingByType(ctx context.Context, eventType string, now time.Time) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("CreatedBy").
		Where("event_type = ? AND event_date >= ?", eventType, now).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Where("created_by_id = ?", creatorID).
		Order("event_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Search(ctx context.Context, searchTerm string, now time.Time) ([]db_models.Event, error) {
	var events []db_models.Event
	pattern := "%" + searchTerm + "%"
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("CreatedBy").
		Where("(title ILIKE ? OR description ILIKE ?) AND event_date >= ?", pattern, pattern, now).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64, eventType string, now time.Time) ([]db_models.Event, error) {
	query := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("CreatedBy").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("event_date >= ?", now).
		Where(`ST_DWithin(
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
			?)`, longitude, latitude, radiusMeters)

	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var events []db_models.Event
	if err := query.Order("event_date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
