package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayrooted/internal/models/db_models"
	"stayrooted/pkg/utils"
)

// OrganizationMemberRepository is the membership directory: the
// authoritative store of which users belong to which organizations and at
// what role.
type OrganizationMemberRepository interface {
	// Insert enforces one membership per (organization, user) pair via the
	// storage-level unique constraint; a duplicate join comes back as
	// ErrAlreadyMember.
	Insert(ctx context.Context, member *db_models.OrganizationMember) error
	Update(ctx context.Context, member *db_models.OrganizationMember) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.OrganizationMember, error)
	FindByOrganizationAndUser(ctx context.Context, organizationID, userID uuid.UUID) (*db_models.OrganizationMember, error)
	ListByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]db_models.OrganizationMember, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.OrganizationMember, error)
	CountByOrganizationID(ctx context.Context, organizationID uuid.UUID) (int64, error)
}

type organizationMemberRepository struct {
	db *gorm.DB
}

func NewOrganizationMemberRepository(db *gorm.DB) OrganizationMemberRepository {
	return &organizationMemberRepository{db: db}
}

func (r *organizationMemberRepository) Insert(ctx context.Context, member *db_models.OrganizationMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *organizationMemberRepository) Update(ctx context.Context, member *db_models.OrganizationMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *organizationMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.OrganizationMember{}, "id = ?", id).Error
}

func (r *organizationMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.OrganizationMember, error) {
	var member db_models.OrganizationMember
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *organizationMemberRepository) FindByOrganizationAndUser(ctx context.Context, organizationID, userID uuid.UUID) (*db_models.OrganizationMember, error) {
	var member db_models.OrganizationMember
	err := r.db.WithContext(ctx).
		First(&member, "organization_id = ? AND user_id = ?", organizationID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// ListByOrganizationID returns members most-recently-joined first.
func (r *organizationMemberRepository) ListByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]db_models.OrganizationMember, error) {
	var members []db_models.OrganizationMember
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *organizationMemberRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.OrganizationMember, error) {
	var members []db_models.OrganizationMember
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *organizationMemberRepository) CountByOrganizationID(ctx context.Context, organizationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.OrganizationMember{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error
	return count, err
}
