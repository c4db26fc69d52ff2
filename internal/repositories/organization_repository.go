package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayrooted/internal/models/db_models"
)

type OrganizationRepository interface {
	Insert(ctx context.Context, org *db_models.Organization) error
	// InsertWithAdmin creates the organization and its creator membership
	// in one transaction; an organization never exists without its ADMIN.
	InsertWithAdmin(ctx context.Context, org *db_models.Organization, member *db_models.OrganizationMember) error
	Update(ctx context.Context, org *db_models.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Organization, error)
	ListAll(ctx context.Context) ([]db_models.Organization, error)
	ListVerified(ctx context.Context) ([]db_models.Organization, error)
	SearchByName(ctx context.Context, searchTerm string) ([]db_models.Organization, error)
	FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64) ([]db_models.Organization, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Insert(ctx context.Context, org *db_models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *organizationRepository) InsertWithAdmin(ctx context.Context, org *db_models.Organization, member *db_models.OrganizationMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		member.OrganizationID = org.ID
		return tx.Create(member).Error
	})
}

func (r *organizationRepository) Update(ctx context.Context, org *db_models.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// Delete cascades memberships and events tied to the organization.
func (r *organizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.OrganizationMember{}, "organization_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.Event{}, "organization_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Organization{}, "id = ?", id).Error
	})
}

func (r *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Organization, error) {
	var org db_models.Organization
	err := r.db.WithContext(ctx).
		Preload("AdminUser").
		First(&org, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) ListAll(ctx context.Context) ([]db_models.Organization, error) {
	var orgs []db_models.Organization
	err := r.db.WithContext(ctx).
		Preload("AdminUser").
		Order("created_at DESC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) ListVerified(ctx context.Context) ([]db_models.Organization, error) {
	var orgs []db_models.Organization
	err := r.db.WithContext(ctx).
		Preload("AdminUser").
		Where("is_verified = ?", true).
		Order("name ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepository) SearchByName(ctx context.Context, searchTerm string) ([]db_models.Organization, error) {
	var orgs []db_models.Organization
	err := r.db.WithContext(ctx).
		Preload("AdminUser").
		Where("name ILIKE ?", "%"+searchTerm+"%").
		Order("name ASC").
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// FindNearby filters by a PostGIS geography radius and orders by distance
// from the search point.
func (r *organizationRepository) FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64) ([]db_models.Organization, error) {
	var orgs []db_models.Organization
	err := r.db.WithContext(ctx).
		Preload("AdminUser").
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where(`ST_DWithin(
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
			?)`, longitude, latitude, radiusMeters).
		Clauses(clause.OrderBy{Expression: gorm.Expr(`ST_Distance(
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography,
			ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)`, longitude, latitude)}).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}
