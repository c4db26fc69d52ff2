package db_models

import "github.com/google/uuid"

const (
	OrganizationRoleAdmin     = "ADMIN"
	OrganizationRoleModerator = "MODERATOR"
	OrganizationRoleMember    = "MEMBER"
)

// OrganizationMember links a user to an organization with a role. The
// (organization, user) pair is unique at the storage level; concurrent
// joins race on the constraint and the loser gets a duplicate-key error.
type OrganizationMember struct {
	BaseModel
	OrganizationID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_organization_members_org_user"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_organization_members_org_user"`

	Role string `gorm:"default:MEMBER"`

	User User
}
