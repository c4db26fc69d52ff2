package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PrayerStatusPending  = "PENDING"
	PrayerStatusAnswered = "ANSWERED"
)

const (
	// PrayerVisibilityPrivate is journaling: visible only to the owner.
	PrayerVisibilityPrivate   = "PRIVATE"
	PrayerVisibilityCommunity = "COMMUNITY"
	PrayerVisibilityPublic    = "PUBLIC"
)

type Prayer struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`
	User   User

	Title              string
	Content            string
	ScriptureReference string
	ScriptureText      string
	YoutubeMusicURL    string

	Status     string `gorm:"default:PENDING"`
	AnsweredAt *time.Time

	Visibility string `gorm:"default:PRIVATE"`
	// IsShared must equal (Visibility != PRIVATE) after every mutation.
	IsShared bool
}
