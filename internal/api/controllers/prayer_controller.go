package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stayrooted/internal/models/request_models"
	"stayrooted/internal/services"
	"stayrooted/pkg/utils"
)

type PrayerController struct {
	prayerService services.PrayerServiceInterface
}

func NewPrayerController(prayerService services.PrayerServiceInterface) *PrayerController {
	return &PrayerController{
		prayerService: prayerService,
	}
}

// CreatePrayer godoc
// @Summary Create a prayer
// @Tags Prayers
// @Accept json
// @Produce json
// @Param request body request_models.CreatePrayerRequest true "Prayer payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/prayers [post]
func (p *PrayerController) CreatePrayer(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var req request_models.CreatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.prayerService.CreatePrayer(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Prayer created successfully")
}

// GetPrayerByID godoc
// @Summary Get a prayer
// @Description Private prayers are only visible to their owner
// @Tags Prayers
// @Produce json
// @Param prayerId path string true "Prayer ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/prayers/{prayerId} [get]
func (p *PrayerController) GetPrayerByID(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	resp, err := p.prayerService.GetPrayerByID(c.Request.Context(), prayerID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer fetched successfully")
}

func (p *PrayerController) GetMyPrayers(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := p.prayerService.GetMyPrayers(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayers fetched successfully")
}

func (p *PrayerController) GetCommunityPrayers(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := p.prayerService.GetCommunityPrayers(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Community prayers fetched successfully")
}

func (p *PrayerController) GetPraiseReports(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := p.prayerService.GetPraiseReports(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Praise reports fetched successfully")
}

func (p *PrayerController) GetPrayersImFollowing(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := p.prayerService.GetPrayersImFollowing(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Followed prayers fetched successfully")
}

func (p *PrayerController) UpdatePrayer(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	var req request_models.UpdatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.prayerService.UpdatePrayer(c.Request.Context(), prayerID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer updated successfully")
}

func (p *PrayerController) DeletePrayer(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	if err := p.prayerService.DeletePrayer(c.Request.Context(), prayerID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Prayer deleted successfully")
}

// MarkPrayerAsAnswered records the answer and appends the testimony as a
// prayer update.
func (p *PrayerController) MarkPrayerAsAnswered(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	var req request_models.MarkPrayerAnsweredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.prayerService.MarkPrayerAsAnswered(c.Request.Context(), prayerID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer marked as answered")
}

func (p *PrayerController) FollowPrayer(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	resp, err := p.prayerService.FollowPrayer(c.Request.Context(), prayerID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer followed successfully")
}

func (p *PrayerController) UnfollowPrayer(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	resp, err := p.prayerService.UnfollowPrayer(c.Request.Context(), prayerID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer unfollowed successfully")
}

func (p *PrayerController) AddPrayerUpdate(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	var req request_models.CreatePrayerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.prayerService.AddPrayerUpdate(c.Request.Context(), prayerID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "Prayer update added successfully")
}

func (p *PrayerController) GetPrayerUpdates(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	resp, err := p.prayerService.GetPrayerUpdates(c.Request.Context(), prayerID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer updates fetched successfully")
}

func (p *PrayerController) GetPrayerFollowers(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	prayerID, err := uuid.Parse(c.Param("prayerId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	resp, err := p.prayerService.GetPrayerFollowers(c.Request.Context(), prayerID, userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer followers fetched successfully")
}

func (p *PrayerController) GetPrayerStats(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	resp, err := p.prayerService.GetPrayerStats(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Prayer stats fetched successfully")
}
