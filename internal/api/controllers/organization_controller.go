package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayrooted/internal/models/request_models"
	"stayrooted/internal/services"
	"stayrooted/pkg/utils"
)

type OrganizationController struct {
	organizationService services.OrganizationServiceInterface
}

func NewOrganizationController(organizationService services.OrganizationServiceInterface) *OrganizationController {
	return &OrganizationController{
		organizationService: organizationService,
	}
}

// CreateOrganization godoc
// @Summary Create an organization
// @Description The creator becomes a permanent ADMIN member
// @Tags Organizations
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrganizationRequest true "Organization payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/organizations [post]
func (o *OrganizationController) CreateOrganization(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req request_models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := o.organizationService.CreateOrganization(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Organization created successfully")
}

func (o *OrganizationController) GetOrganizationByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	resp, err := o.organizationService.GetOrganizationByID(c.Request.Context(), organizationID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organization fetched successfully")
}

func (o *OrganizationController) GetAllOrganizations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := o.organizationService.GetAllOrganizations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organizations fetched successfully")
}

func (o *OrganizationController) GetVerifiedOrganizations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := o.organizationService.GetVerifiedOrganizations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Verified organizations fetched successfully")
}

func (o *OrganizationController) SearchOrganizations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	searchTerm := c.Query("q")
	if searchTerm == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search term is required")
		return
	}

	resp, err := o.organizationService.SearchOrganizations(c.Request.Context(), searchTerm, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organizations fetched successfully")
}

// FindNearbyOrganizations godoc
// @Summary Find organizations near a point
// @Tags Organizations
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in kilometers" default(25)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/organizations/nearby [get]
func (o *OrganizationController) FindNearbyOrganizations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	latitude, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return
	}
	radiusKm := 25.0
	if raw := c.Query("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
			return
		}
	}

	resp, err := o.organizationService.FindNearbyOrganizations(c.Request.Context(), latitude, longitude, radiusKm, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Nearby organizations fetched successfully")
}

func (o *OrganizationController) GetMyOrganizations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := o.organizationService.GetMyOrganizations(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organizations fetched successfully")
}

func (o *OrganizationController) UpdateOrganization(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	var req request_models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := o.organizationService.UpdateOrganization(c.Request.Context(), organizationID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organization updated successfully")
}

func (o *OrganizationController) DeleteOrganization(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := o.organizationService.DeleteOrganization(c.Request.Context(), organizationID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Organization deleted successfully")
}

func (o *OrganizationController) JoinOrganization(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	resp, err := o.organizationService.JoinOrganization(c.Request.Context(), organizationID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Joined organization successfully")
}

func (o *OrganizationController) LeaveOrganization(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	if err := o.organizationService.LeaveOrganization(c.Request.Context(), organizationID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Left organization successfully")
}

func (o *OrganizationController) UpdateMemberRole(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid member ID")
		return
	}

	var req request_models.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := o.organizationService.UpdateMemberRole(c.Request.Context(), organizationID, memberID, req.Role, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Member role updated successfully")
}

func (o *OrganizationController) GetOrganizationMembers(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("organizationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid organization ID")
		return
	}

	resp, err := o.organizationService.GetOrganizationMembers(c.Request.Context(), organizationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Organization members fetched successfully")
}
