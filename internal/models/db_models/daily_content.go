package db_models

import (
	"time"

	"github.com/lib/pq"
)

// DailyContent is a published devotional: a short teaching from a
// theologian plus a scripture reference and a reflection question.
type DailyContent struct {
	BaseModel
	Title   string
	Content string

	TheologianName string
	TheologianBio  string

	ScriptureReference string
	ReflectionQuestion string

	Tags pq.StringArray `gorm:"type:text[]"`

	PublishDate time.Time `gorm:"type:date;index"`
	IsPublished bool      `gorm:"default:true"`
}
