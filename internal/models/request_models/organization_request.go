package request_models

type CreateOrganizationRequest struct {
	Name             string   `json:"name" binding:"required"`
	Description      string   `json:"description"`
	OrganizationType string   `json:"organization_type" binding:"required,oneof=CHURCH MINISTRY NONPROFIT OTHER"`
	ContactEmail     string   `json:"contact_email" binding:"omitempty,email"`
	ContactPhone     string   `json:"contact_phone"`
	WebsiteURL       string   `json:"website_url"`
	LogoURL          string   `json:"logo_url"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	ZipCode          string   `json:"zip_code"`
	Country          string   `json:"country"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

type UpdateOrganizationRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	OrganizationType *string  `json:"organization_type" binding:"omitempty,oneof=CHURCH MINISTRY NONPROFIT OTHER"`
	ContactEmail     *string  `json:"contact_email" binding:"omitempty,email"`
	ContactPhone     *string  `json:"contact_phone"`
	WebsiteURL       *string  `json:"website_url"`
	LogoURL          *string  `json:"logo_url"`
	Address          *string  `json:"address"`
	City             *string  `json:"city"`
	State            *string  `json:"state"`
	ZipCode          *string  `json:"zip_code"`
	Country          *string  `json:"country"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN MODERATOR MEMBER"`
}
