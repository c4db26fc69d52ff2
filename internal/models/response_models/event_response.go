package response_models

import "time"

type EventResponse struct {
	ID                  string    `json:"id"`
	OrganizationID      string    `json:"organization_id,omitempty"`
	OrganizationName    string    `json:"organization_name,omitempty"`
	OrganizationLogoURL string    `json:"organization_logo_url,omitempty"`
	CreatedByUserID     string    `json:"created_by_user_id"`
	CreatedByUsername   string    `json:"created_by_username,omitempty"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	EventType           string    `json:"event_type"`
	LocationName        string    `json:"location_name"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	EventDate           time.Time `json:"event_date"`
	ContactInfo         string    `json:"contact_info,omitempty"`
	DistanceKm          *float64  `json:"distance_km,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
