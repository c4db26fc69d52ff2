package request_models

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	OrganizationID   *uuid.UUID `json:"organization_id"`
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	EventType        string     `json:"event_type" binding:"required,oneof=EVANGELISTIC_OUTREACH BIBLE_STUDY PRAYER_MEETING WORSHIP_NIGHT"`
	OrganizationName string     `json:"organization_name"`
	LocationName     string     `json:"location_name" binding:"required"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
	EventDate        time.Time  `json:"event_date" binding:"required"`
	ContactInfo      string     `json:"contact_info"`
}

type UpdateEventRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	EventType    *string    `json:"event_type" binding:"omitempty,oneof=EVANGELISTIC_OUTREACH BIBLE_STUDY PRAYER_MEETING WORSHIP_NIGHT"`
	LocationName *string    `json:"location_name"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	EventDate    *time.Time `json:"event_date"`
	ContactInfo  *string    `json:"contact_info"`
}

type SearchNearbyEventsRequest struct {
	Latitude  float64 `json:"latitude" binding:"required"`
	Longitude float64 `json:"longitude" binding:"required"`
	RadiusKm  float64 `json:"radius_km"`
	EventType string  `json:"event_type" binding:"omitempty,oneof=EVANGELISTIC_OUTREACH BIBLE_STUDY PRAYER_MEETING WORSHIP_NIGHT"`
}
