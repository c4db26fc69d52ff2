package db_models

import "github.com/google/uuid"

// PrayerUpdate is an append-only note on a prayer, e.g. the testimony
// recorded when a prayer is marked answered. Never mutated or deleted on
// its own.
type PrayerUpdate struct {
	BaseModel
	PrayerID uuid.UUID `gorm:"type:uuid;index"`
	Content  string
}
