package response_models

import "time"

type OrganizationResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	OrganizationType string    `json:"organization_type"`
	ContactEmail     string    `json:"contact_email,omitempty"`
	ContactPhone     string    `json:"contact_phone,omitempty"`
	WebsiteURL       string    `json:"website_url,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	Address          string    `json:"address,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	ZipCode          string    `json:"zip_code,omitempty"`
	Country          string    `json:"country"`
	Latitude         *float64  `json:"latitude,omitempty"`
	Longitude        *float64  `json:"longitude,omitempty"`
	AdminUserID      string    `json:"admin_user_id"`
	AdminUsername    string    `json:"admin_username"`
	IsVerified       bool      `json:"is_verified"`
	MemberCount      int64     `json:"member_count"`
	IsMember         bool      `json:"is_member"`
	UserRole         string    `json:"user_role,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OrganizationMemberResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
