package db_models

import "github.com/google/uuid"

const (
	OrganizationTypeChurch    = "CHURCH"
	OrganizationTypeMinistry  = "MINISTRY"
	OrganizationTypeNonprofit = "NONPROFIT"
	OrganizationTypeOther     = "OTHER"
)

type Organization struct {
	BaseModel
	Name             string
	Description      string
	OrganizationType string

	ContactEmail string
	ContactPhone string
	WebsiteURL   string
	LogoURL      string

	Address string
	City    string
	State   string
	ZipCode string
	Country string `gorm:"default:USA"`

	Latitude  *float64
	Longitude *float64

	// AdminUserID is the creator. It never changes, regardless of how
	// membership roles are reassigned, and it alone grants deletion rights.
	AdminUserID uuid.UUID `gorm:"type:uuid;index"`
	AdminUser   User

	IsVerified bool
}
