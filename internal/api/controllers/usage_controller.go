package controllers

import (
	"github.com/gin-gonic/gin"

	"captionary/internal/services"
	"captionary/pkg/utils"
)

type UsageController struct {
	usageService services.UsageServiceInterface
}

func NewUsageController(usageService services.UsageServiceInterface) *UsageController {
	return &UsageController{
		usageService: usageService,
	}
}

// Summary godoc
// @Summary Current period usage
// @Description Fetch the account's generation usage for the current billing period
// @Tags Usage
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /usage [get]
func (u *UsageController) Summary(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		return
	}

	summary, err := u.usageService.Summary(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Usage fetched successfully")
}
