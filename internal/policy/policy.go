// Package policy is the single decision point for "may identity U perform
// action A on resource R". Every function is pure: it reads already-loaded
// entity state and membership facts passed in by the services and performs
// no I/O. A nil return means the action is allowed; otherwise the sentinel
// error from pkg/utils carries the outcome (not-found, forbidden, conflict).
package policy

import (
	"github.com/google/uuid"

	"stayrooted/internal/models/db_models"
	"stayrooted/pkg/utils"
)

// CanViewPrayer reports whether viewerID may read the prayer, its updates,
// and its follower list. Private prayers are visible to the owner only.
func CanViewPrayer(prayer *db_models.Prayer, viewerID uuid.UUID) bool {
	return prayer.Visibility != db_models.PrayerVisibilityPrivate || prayer.UserID == viewerID
}

// ViewPrayer denies with prayer-not-found rather than forbidden: a viewer
// with no right to a private prayer has no right to know it exists.
func ViewPrayer(prayer *db_models.Prayer, viewerID uuid.UUID) error {
	if !CanViewPrayer(prayer, viewerID) {
		return utils.ErrPrayerNotFound
	}
	return nil
}

// MutatePrayer governs update, delete, mark-answered, and adding updates.
// Owner only.
func MutatePrayer(prayer *db_models.Prayer, actorID uuid.UUID) error {
	if prayer.UserID != actorID {
		return utils.ErrForbidden
	}
	return nil
}

// FollowPrayer requires view access first; following something you cannot
// see would leak its existence. A duplicate follow is a conflict, not a
// permission failure.
func FollowPrayer(prayer *db_models.Prayer, actorID uuid.UUID, alreadyFollowing bool) error {
	if err := ViewPrayer(prayer, actorID); err != nil {
		return err
	}
	if alreadyFollowing {
		return utils.ErrAlreadyFollowing
	}
	return nil
}

// RoleCanManageEvents reports whether a membership role may create, edit,
// or delete events tied to its organization.
func RoleCanManageEvents(role string) bool {
	return role == db_models.OrganizationRoleAdmin || role == db_models.OrganizationRoleModerator
}

// CreateOrgEvent authorizes creating an event on behalf of an organization.
// membership is the actor's record in that organization, nil if none.
// Events without an organization never reach this check.
func CreateOrgEvent(membership *db_models.OrganizationMember) error {
	if membership == nil || !RoleCanManageEvents(membership.Role) {
		return utils.ErrForbidden
	}
	return nil
}

// ManageEvent governs event update and delete: the creator may, and so may
// an ADMIN or MODERATOR of the event's organization when it has one.
func ManageEvent(event *db_models.Event, actorID uuid.UUID, membership *db_models.OrganizationMember) error {
	if event.CreatedByID == actorID {
		return nil
	}
	if event.OrganizationID != nil && membership != nil && RoleCanManageEvents(membership.Role) {
		return nil
	}
	return utils.ErrForbidden
}

// EditOrganization requires role ADMIN. Any admin member qualifies, not
// just the creator.
func EditOrganization(membership *db_models.OrganizationMember) error {
	if membership == nil || membership.Role != db_models.OrganizationRoleAdmin {
		return utils.ErrForbidden
	}
	return nil
}

// DeleteOrganization is stricter than edit: only the creator-admin may
// delete, regardless of who else holds the ADMIN role.
func DeleteOrganization(org *db_models.Organization, actorID uuid.UUID) error {
	if org.AdminUserID != actorID {
		return utils.ErrForbidden
	}
	return nil
}

// LeaveOrganization: the creator may never leave, even after a role
// downgrade. The creator check is by identity, not by role. Anyone else
// may leave if currently a member.
func LeaveOrganization(org *db_models.Organization, actorID uuid.UUID, membership *db_models.OrganizationMember) error {
	if org.AdminUserID == actorID {
		return utils.ErrCreatorCannotLeave
	}
	if membership == nil {
		return utils.ErrMemberNotFound
	}
	return nil
}

// UpdateMemberRole requires the acting user to hold ADMIN in the
// organization whose member is being changed.
func UpdateMemberRole(actorMembership *db_models.OrganizationMember) error {
	if actorMembership == nil || actorMembership.Role != db_models.OrganizationRoleAdmin {
		return utils.ErrForbidden
	}
	return nil
}
