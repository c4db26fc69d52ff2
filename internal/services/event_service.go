package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"stayrooted/internal/models/db_models"
	"stayrooted/internal/models/request_models"
	"stayrooted/internal/models/response_models"
	"stayrooted/internal/policy"
	"stayrooted/internal/repositories"
	"stayrooted/pkg/utils"
)

const defaultNearbyRadiusKm = 50.0

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, request request_models.CreateEventRequest) (*response_models.EventResponse, error)
	GetEventByID(ctx context.Context, eventID uuid.UUID) (*response_models.EventResponse, error)
	GetUpcomingEvents(ctx context.Context) ([]response_models.EventResponse, error)
	GetEventsByOrganization(ctx context.Context, organizationID uuid.UUID) ([]response_models.EventResponse, error)
	GetEventsByType(ctx context.Context, eventType string) ([]response_models.EventResponse, error)
	SearchEvents(ctx context.Context, searchTerm string) ([]response_models.EventResponse, error)
	FindNearbyEvents(ctx context.Context, request request_models.SearchNearbyEventsRequest) ([]response_models.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID, userID uuid.UUID, request request_models.UpdateEventRequest) (*response_models.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID, userID uuid.UUID) error
	GetMyCreatedEvents(ctx context.Context, userID uuid.UUID) ([]response_models.EventResponse, error)
}

type EventService struct {
	eventRepo  repositories.EventRepository
	orgRepo    repositories.OrganizationRepository
	memberRepo repositories.OrganizationMemberRepository
	userRepo   repositories.UserRepository
}

func NewEventService(
	eventRepo repositories.EventRepository,
	orgRepo repositories.OrganizationRepository,
	memberRepo repositories.OrganizationMemberRepository,
	userRepo repositories.UserRepository) EventServiceInterface {
	return &EventService{
		eventRepo:  eventRepo,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, userID uuid.UUID, request request_models.CreateEventRequest) (*response_models.EventResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	// Events tied to an organization require ADMIN or MODERATOR; events
	// without one are open to any authenticated user.
	var org *db_models.Organization
	if request.OrganizationID != nil {
		org, err = s.orgRepo.FindByID(ctx, *request.OrganizationID)
		if err != nil {
			log.Printf("Error fetching organization: %v", err)
			return nil, utils.ErrDatabaseError
		}
		if org == nil {
			return nil, utils.ErrOrganizationNotFound
		}

		membership, err := s.memberRepo.FindByOrganizationAndUser(ctx, *request.OrganizationID, userID)
		if err != nil {
			log.Printf("Error fetching membership: %v", err)
			return nil, utils.ErrDatabaseError
		}
		if err := policy.CreateOrgEvent(membership); err != nil {
			return nil, err
		}
	}

	organizationName := request.OrganizationName
	if organizationName == "" && org != nil {
		organizationName = org.Name
	}

	event := &db_models.Event{
		OrganizationID:   request.OrganizationID,
		CreatedByID:      userID,
		Title:            request.Title,
		Description:      request.Description,
		EventType:        request.EventType,
		OrganizationName: organizationName,
		LocationName:     request.LocationName,
		Latitude:         request.Latitude,
		Longitude:        request.Longitude,
		EventDate:        request.EventDate,
		ContactInfo:      request.ContactInfo,
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		log.Printf("Error creating event: %v", err)
		return nil, utils.ErrDatabaseError
	}

	event.Organization = org
	event.CreatedBy = *user
	return s.toEventResponse(event, nil), nil
}

func (s *EventService) GetEventByID(ctx context.Context, eventID uuid.UUID) (*response_models.EventResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.toEventResponse(event, nil), nil
}

func (s *EventService) GetUpcomingEvents(ctx context.Context) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.ListUpcoming(ctx, time.Now())
	if err != nil {
		log.Printf("Error listing upcoming events: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toEventResponses(events), nil
}

func (s *EventService) GetEventsByOrganization(ctx context.Context, organizationID uuid.UUID) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.ListByOrganizationID(ctx, organizationID)
	if err != nil {
		log.Printf("Error listing organization events: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toEventResponses(events), nil
}

func (s *EventService) GetEventsByType(ctx context.Context, eventType string) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.ListUpcomingByType(ctx, eventType, time.Now())
	if err != nil {
		log.Printf("Error listing events by type: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toEventResponses(events), nil
}

func (s *EventService) SearchEvents(ctx context.Context, searchTerm string) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.Search(ctx, searchTerm, time.Now())
	if err != nil {
		log.Printf("Error searching events: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toEventResponses(events), nil
}

// FindNearbyEvents filters by radius in the database and annotates each
// result with its great-circle distance from the search point.
func (s *EventService) FindNearbyEvents(ctx context.Context, request request_models.SearchNearbyEventsRequest) ([]response_models.EventResponse, error) {
	radiusKm := request.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	events, err := s.eventRepo.FindNearby(ctx, request.Latitude, request.Longitude, radiusKm*1000, request.EventType, time.Now())
	if err != nil {
		log.Printf("Error searching nearby events: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		event := &events[i]
		var distance *float64
		if event.Latitude != nil && event.Longitude != nil {
			d := utils.DistanceKm(request.Latitude, request.Longitude, *event.Latitude, *event.Longitude)
			distance = &d
		}
		responses = append(responses, *s.toEventResponse(event, distance))
	}
	return responses, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID, userID uuid.UUID, request request_models.UpdateEventRequest) (*response_models.EventResponse, error) {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeManage(ctx, event, userID); err != nil {
		return nil, err
	}

	if request.Title != nil {
		event.Title = *request.Title
	}
	if request.Description != nil {
		event.Description = *request.Description
	}
	if request.EventType != nil {
		event.EventType = *request.EventType
	}
	if request.LocationName != nil {
		event.LocationName = *request.LocationName
	}
	if request.Latitude != nil {
		event.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		event.Longitude = request.Longitude
	}
	if request.EventDate != nil {
		event.EventDate = *request.EventDate
	}
	if request.ContactInfo != nil {
		event.ContactInfo = *request.ContactInfo
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		log.Printf("Error updating event: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.toEventResponse(event, nil), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID, userID uuid.UUID) error {
	event, err := s.loadEvent(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.authorizeManage(ctx, event, userID); err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		log.Printf("Error deleting event: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *EventService) GetMyCreatedEvents(ctx context.Context, userID uuid.UUID) ([]response_models.EventResponse, error) {
	events, err := s.eventRepo.ListByCreatorID(ctx, userID)
	if err != nil {
		log.Printf("Error listing created events: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return s.toEventResponses(events), nil
}

func (s *EventService) loadEvent(ctx context.Context, eventID uuid.UUID) (*db_models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		log.Printf("Error fetching event: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}
	return event, nil
}

// authorizeManage gathers the actor's membership in the event's
// organization (when there is one) and applies the manage-event policy.
func (s *EventService) authorizeManage(ctx context.Context, event *db_models.Event, userID uuid.UUID) error {
	var membership *db_models.OrganizationMember
	if event.OrganizationID != nil {
		var err error
		membership, err = s.memberRepo.FindByOrganizationAndUser(ctx, *event.OrganizationID, userID)
		if err != nil {
			log.Printf("Error fetching membership: %v", err)
			return utils.ErrDatabaseError
		}
	}
	return policy.ManageEvent(event, userID, membership)
}

func (s *EventService) toEventResponses(events []db_models.Event) []response_models.EventResponse {
	responses := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, *s.toEventResponse(&events[i], nil))
	}
	return responses
}

func (s *EventService) toEventResponse(event *db_models.Event, distanceKm *float64) *response_models.EventResponse {
	resp := &response_models.EventResponse{
		ID:               event.ID.String(),
		OrganizationName: event.OrganizationName,
		CreatedByUserID:  event.CreatedByID.String(),
		Title:            event.Title,
		Description:      event.Description,
		EventType:        event.EventType,
		LocationName:     event.LocationName,
		Latitude:         event.Latitude,
		Longitude:        event.Longitude,
		EventDate:        event.EventDate,
		ContactInfo:      event.ContactInfo,
		DistanceKm:       distanceKm,
		CreatedAt:        event.CreatedAt,
	}
	if event.OrganizationID != nil {
		resp.OrganizationID = event.OrganizationID.String()
	}
	if event.Organization != nil {
		if resp.OrganizationName == "" {
			resp.OrganizationName = event.Organization.Name
		}
		resp.OrganizationLogoURL = event.Organization.LogoURL
	}
	resp.CreatedByUsername = event.CreatedBy.Username
	return resp
}
