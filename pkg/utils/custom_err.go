package utils

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrPrayerNotFound       = errors.New("prayer not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrContentNotFound      = errors.New("content not found")

	ErrForbidden = errors.New("forbidden")

	ErrAlreadyMember      = errors.New("already a member of this organization")
	ErrAlreadyFollowing   = errors.New("already following this prayer")
	ErrNotFollowing       = errors.New("not following this prayer")
	ErrCreatorCannotLeave = errors.New("organization creator cannot leave")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")

	ErrDatabaseError = errors.New("database error")
)
