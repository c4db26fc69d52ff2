package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"stayrooted/internal/services"
	"stayrooted/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetTodayContent godoc
// @Summary Get today's devotional content
// @Tags Content
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/content/today [get]
func (ct *ContentController) GetTodayContent(c *gin.Context) {
	resp, err := ct.contentService.GetTodayContent(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Daily content fetched successfully")
}

func (ct *ContentController) ListContent(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := ct.contentService.ListContent(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Daily content list fetched successfully")
}
