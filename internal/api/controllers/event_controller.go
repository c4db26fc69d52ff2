package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayrooted/internal/models/request_models"
	"stayrooted/internal/services"
	"stayrooted/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Organization events require ADMIN or MODERATOR membership
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.CreateEventRequest true "Event payload"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.eventService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Event created successfully")
}

func (e *EventController) GetEventByID(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	resp, err := e.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Event fetched successfully")
}

func (e *EventController) GetUpcomingEvents(c *gin.Context) {
	resp, err := e.eventService.GetUpcomingEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Upcoming events fetched successfully")
}

func (e *EventController) GetEventsByOrganization(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	resp, err := e.eventService.GetEventsByOrganization(c.Request.Context(), organizationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organization events fetched successfully")
}

func (e *EventController) GetEventsByType(c *gin.Context) {
	eventType := c.Param("eventType")

	resp, err := e.eventService.GetEventsByType(c.Request.Context(), eventType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Events fetched successfully")
}

func (e *EventController) SearchEvents(c *gin.Context) {
	searchTerm := c.Query("q")
	if searchTerm == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search term is required")
		return
	}

	resp, err := e.eventService.SearchEvents(c.Request.Context(), searchTerm)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Events fetched successfully")
}

// FindNearbyEvents godoc
// @Summary Find upcoming events near a point
// @Tags Events
// @Accept json
// @Produce json
// @Param request body request_models.SearchNearbyEventsRequest true "Search payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/events/nearby [post]
func (e *EventController) FindNearbyEvents(c *gin.Context) {
	var req request_models.SearchNearbyEventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.eventService.FindNearbyEvents(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Nearby events fetched successfully")
}

func (e *EventController) UpdateEvent(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := e.eventService.UpdateEvent(c.Request.Context(), eventID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Event updated successfully")
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	if err := e.eventService.DeleteEvent(c.Request.Context(), eventID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}

func (e *EventController) GetMyCreatedEvents(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := e.eventService.GetMyCreatedEvents(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Created events fetched successfully")
}
