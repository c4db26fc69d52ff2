package db_models

import "github.com/google/uuid"

type PrayerFollower struct {
	BaseModel
	PrayerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_prayer_followers_prayer_user"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_prayer_followers_prayer_user"`

	Prayer Prayer
	User   User
}
