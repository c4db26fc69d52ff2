package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"stayrooted/internal/models/db_models"
	"stayrooted/internal/models/request_models"
	"stayrooted/internal/models/response_models"
	"stayrooted/internal/policy"
	"stayrooted/internal/repositories"
	"stayrooted/pkg/utils"
)

type OrganizationServiceInterface interface {
	CreateOrganization(ctx context.Context, userID uuid.UUID, request request_models.CreateOrganizationRequest) (*response_models.OrganizationResponse, error)
	GetOrganizationByID(ctx context.Context, organizationID, currentUserID uuid.UUID) (*response_models.OrganizationResponse, error)
	GetAllOrganizations(ctx context.Context, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error)
	GetVerifiedOrganizations(ctx context.Context, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error)
	SearchOrganizations(ctx context.Context, searchTerm string, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error)
	FindNearbyOrganizations(ctx context.Context, latitude, longitude, radiusKm float64, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error)
	GetMyOrganizations(ctx context.Context, userID uuid.UUID) ([]response_models.OrganizationResponse, error)
	UpdateOrganization(ctx context.Context, organizationID, userID uuid.UUID, request request_models.UpdateOrganizationRequest) (*response_models.OrganizationResponse, error)
	DeleteOrganization(ctx context.Context, organizationID, userID uuid.UUID) error
	JoinOrganization(ctx context.Context, organizationID, userID uuid.UUID) (*response_models.OrganizationResponse, error)
	LeaveOrganization(ctx context.Context, organizationID, userID uuid.UUID) error
	UpdateMemberRole(ctx context.Context, organizationID, memberID uuid.UUID, newRole string, adminUserID uuid.UUID) (*response_models.OrganizationMemberResponse, error)
	GetOrganizationMembers(ctx context.Context, organizationID uuid.UUID) ([]response_models.OrganizationMemberResponse, error)
}

type OrganizationService struct {
	orgRepo    repositories.OrganizationRepository
	memberRepo repositories.OrganizationMemberRepository
	userRepo   repositories.UserRepository
}

func NewOrganizationService(
	orgRepo repositories.OrganizationRepository,
	memberRepo repositories.OrganizationMemberRepository,
	userRepo repositories.UserRepository) OrganizationServiceInterface {
	return &OrganizationService{
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, userID uuid.UUID, request request_models.CreateOrganizationRequest) (*response_models.OrganizationResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	country := request.Country
	if country == "" {
		country = "USA"
	}

	org := &db_models.Organization{
		Name:             request.Name,
		Description:      request.Description,
		OrganizationType: request.OrganizationType,
		ContactEmail:     request.ContactEmail,
		ContactPhone:     request.ContactPhone,
		WebsiteURL:       request.WebsiteURL,
		LogoURL:          request.LogoURL,
		Address:          request.Address,
		City:             request.City,
		State:            request.State,
		ZipCode:          request.ZipCode,
		Country:          country,
		Latitude:         request.Latitude,
		Longitude:        request.Longitude,
		AdminUserID:      userID,
		IsVerified:       false,
	}

	// The creator is auto-added as an ADMIN member, atomically with the
	// organization itself.
	member := &db_models.OrganizationMember{
		UserID: userID,
		Role:   db_models.OrganizationRoleAdmin,
	}
	if err := s.orgRepo.InsertWithAdmin(ctx, org, member); err != nil {
		log.Printf("Error creating organization: %v", err)
		return nil, utils.ErrDatabaseError
	}

	org.AdminUser = *user
	return s.toOrganizationResponse(ctx, org, userID)
}

func (s *OrganizationService) GetOrganizationByID(ctx context.Context, organizationID, currentUserID uuid.UUID) (*response_models.OrganizationResponse, error) {
	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return s.toOrganizationResponse(ctx, org, currentUserID)
}

func (s *OrganizationService) GetAllOrganizations(ctx context.Context, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error) {
	orgs, err := s.orgRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing organizations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toOrganizationResponses(ctx, orgs, currentUserID)
}

func (s *OrganizationService) GetVerifiedOrganizations(ctx context.Context, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error) {
	orgs, err := s.orgRepo.ListVerified(ctx)
	if err != nil {
		log.Printf("Error listing verified organizations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toOrganizationResponses(ctx, orgs, currentUserID)
}

func (s *OrganizationService) SearchOrganizations(ctx context.Context, searchTerm string, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error) {
	orgs, err := s.orgRepo.SearchByName(ctx, searchTerm)
	if err != nil {
		log.Printf("Error searching organizations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toOrganizationResponses(ctx, orgs, currentUserID)
}

func (s *OrganizationService) FindNearbyOrganizations(ctx context.Context, latitude, longitude, radiusKm float64, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error) {
	orgs, err := s.orgRepo.FindNearby(ctx, latitude, longitude, radiusKm*1000)
	if err != nil {
		log.Printf("Error searching nearby organizations: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toOrganizationResponses(ctx, orgs, currentUserID)
}

func (s *OrganizationService) GetMyOrganizations(ctx context.Context, userID uuid.UUID) ([]response_models.OrganizationResponse, error) {
	memberships, err := s.memberRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("Error listing memberships: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OrganizationResponse, 0, len(memberships))
	for _, m := range memberships {
		org, err := s.loadOrganization(ctx, m.OrganizationID)
		if err != nil {
			if errors.Is(err, utils.ErrOrganizationNotFound) {
				continue
			}
			return nil, err
		}
		resp, err := s.toOrganizationResponse(ctx, org, userID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, organizationID, userID uuid.UUID, request request_models.UpdateOrganizationRequest) (*response_models.OrganizationResponse, error) {
	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	membership, err := s.membershipOf(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.EditOrganization(membership); err != nil {
		return nil, err
	}

	if request.Name != nil {
		org.Name = *request.Name
	}
	if request.Description != nil {
		org.Description = *request.Description
	}
	if request.OrganizationType != nil {
		org.OrganizationType = *request.OrganizationType
	}
	if request.ContactEmail != nil {
		org.ContactEmail = *request.ContactEmail
	}
	if request.ContactPhone != nil {
		org.ContactPhone = *request.ContactPhone
	}
	if request.WebsiteURL != nil {
		org.WebsiteURL = *request.WebsiteURL
	}
	if request.LogoURL != nil {
		org.LogoURL = *request.LogoURL
	}
	if request.Address != nil {
		org.Address = *request.Address
	}
	if request.City != nil {
		org.City = *request.City
	}
	if request.State != nil {
		org.State = *request.State
	}
	if request.ZipCode != nil {
		org.ZipCode = *request.ZipCode
	}
	if request.Country != nil {
		org.Country = *request.Country
	}
	if request.Latitude != nil {
		org.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		org.Longitude = request.Longitude
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		log.Printf("Error updating organization: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toOrganizationResponse(ctx, org, userID)
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, organizationID, userID uuid.UUID) error {
	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	if err := policy.DeleteOrganization(org, userID); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(ctx, organizationID); err != nil {
		log.Printf("Error deleting organization: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *OrganizationService) JoinOrganization(ctx context.Context, organizationID, userID uuid.UUID) (*response_models.OrganizationResponse, error) {
	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	member := &db_models.OrganizationMember{
		OrganizationID: organizationID,
		UserID:         userID,
		Role:           db_models.OrganizationRoleMember,
	}
	// The unique (organization, user) constraint resolves concurrent joins;
	// the loser surfaces as ErrAlreadyMember.
	if err := s.memberRepo.Insert(ctx, member); err != nil {
		if errors.Is(err, utils.ErrAlreadyMember) {
			return nil, err
		}
		log.Printf("Error joining organization: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toOrganizationResponse(ctx, org, userID)
}

func (s *OrganizationService) LeaveOrganization(ctx context.Context, organizationID, userID uuid.UUID) error {
	org, err := s.loadOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	membership, err := s.membershipOf(ctx, organizationID, userID)
	if err != nil {
		return err
	}
	if err := policy.LeaveOrganization(org, userID, membership); err != nil {
		return err
	}

	if err := s.memberRepo.Delete(ctx, membership.ID); err != nil {
		log.Printf("Error leaving organization: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *OrganizationService) UpdateMemberRole(ctx context.Context, organizationID, memberID uuid.UUID, newRole string, adminUserID uuid.UUID) (*response_models.OrganizationMemberResponse, error) {
	if _, err := s.loadOrganization(ctx, organizationID); err != nil {
		return nil, err
	}

	actorMembership, err := s.membershipOf(ctx, organizationID, adminUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.UpdateMemberRole(actorMembership); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		log.Printf("Error fetching member: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if member == nil || member.OrganizationID != organizationID {
		return nil, utils.ErrMemberNotFound
	}

	member.Role = newRole
	if err := s.memberRepo.Update(ctx, member); err != nil {
		log.Printf("Error updating member role: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.OrganizationMemberResponse{
		ID:       member.ID.String(),
		UserID:   member.UserID.String(),
		Username: member.User.Username,
		FullName: member.User.FullName,
		Role:     member.Role,
		JoinedAt: member.CreatedAt,
	}, nil
}

func (s *OrganizationService) GetOrganizationMembers(ctx context.Context, organizationID uuid.UUID) ([]response_models.OrganizationMemberResponse, error) {
	members, err := s.memberRepo.ListByOrganizationID(ctx, organizationID)
	if err != nil {
		log.Printf("Error listing members: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OrganizationMemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, response_models.OrganizationMemberResponse{
			ID:       m.ID.String(),
			UserID:   m.UserID.String(),
			Username: m.User.Username,
			FullName: m.User.FullName,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		})
	}
	return responses, nil
}

func (s *OrganizationService) loadOrganization(ctx context.Context, organizationID uuid.UUID) (*db_models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		log.Printf("Error fetching organization: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if org == nil {
		return nil, utils.ErrOrganizationNotFound
	}
	return org, nil
}

// membershipOf returns the caller's membership record, nil if none. The
// policy functions treat nil as "not a member".
func (s *OrganizationService) membershipOf(ctx context.Context, organizationID, userID uuid.UUID) (*db_models.OrganizationMember, error) {
	membership, err := s.memberRepo.FindByOrganizationAndUser(ctx, organizationID, userID)
	if err != nil {
		log.Printf("Error fetching membership: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return membership, nil
}

func (s *OrganizationService) toOrganizationResponses(ctx context.Context, orgs []db_models.Organization, currentUserID uuid.UUID) ([]response_models.OrganizationResponse, error) {
	responses := make([]response_models.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		resp, err := s.toOrganizationResponse(ctx, &orgs[i], currentUserID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *OrganizationService) toOrganizationResponse(ctx context.Context, org *db_models.Organization, currentUserID uuid.UUID) (*response_models.OrganizationResponse, error) {
	memberCount, err := s.memberRepo.CountByOrganizationID(ctx, org.ID)
	if err != nil {
		log.Printf("Error counting members: %v", err)
		return nil, utils.ErrDatabaseError
	}

	membership, err := s.membershipOf(ctx, org.ID, currentUserID)
	if err != nil {
		return nil, err
	}

	resp := &response_models.OrganizationResponse{
		ID:               org.ID.String(),
		Name:             org.Name,
		Description:      org.Description,
		OrganizationType: org.OrganizationType,
		ContactEmail:     org.ContactEmail,
		ContactPhone:     org.ContactPhone,
		WebsiteURL:       org.WebsiteURL,
		LogoURL:          org.LogoURL,
		Address:          org.Address,
		City:             org.City,
		State:            org.State,
		ZipCode:          org.ZipCode,
		Country:          org.Country,
		Latitude:         org.Latitude,
		Longitude:        org.Longitude,
		AdminUserID:      org.AdminUserID.String(),
		AdminUsername:    org.AdminUser.Username,
		IsVerified:       org.IsVerified,
		MemberCount:      memberCount,
		IsMember:         membership != nil,
		CreatedAt:        org.CreatedAt,
		UpdatedAt:        org.UpdatedAt,
	}
	if membership != nil {
		resp.UserRole = membership.Role
	}
	return resp, nil
}
