package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeEvangelisticOutreach = "EVANGELISTIC_OUTREACH"
	EventTypeBibleStudy           = "BIBLE_STUDY"
	EventTypePrayerMeeting        = "PRAYER_MEETING"
	EventTypeWorshipNight         = "WORSHIP_NIGHT"
)

type Event struct {
	BaseModel
	// OrganizationID is nil for events not tied to any organization; those
	// can be created by any authenticated user.
	OrganizationID *uuid.UUID `gorm:"type:uuid;index"`
	Organization   *Organization

	CreatedByID uuid.UUID `gorm:"type:uuid;index"`
	CreatedBy   User

	Title            string
	Description      string
	EventType        string
	OrganizationName string

	LocationName string
	Latitude     *float64
	Longitude    *float64

	EventDate   time.Time `gorm:"index"`
	ContactInfo string
}
