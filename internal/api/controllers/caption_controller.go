package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"captionary/internal/models/request_models"
	"captionary/internal/services"
	"captionary/pkg/utils"
)

type CaptionController struct {
	captionService      services.CaptionServiceInterface
	subscriptionService services.SubscriptionServiceInterface
	historyService      services.HistoryServiceInterface
}

func NewCaptionController(
	captionService services.CaptionServiceInterface,
	subscriptionService services.SubscriptionServiceInterface,
	historyService services.HistoryServiceInterface,
) *CaptionController {
	return &CaptionController{
		captionService:      captionService,
		subscriptionService: subscriptionService,
		historyService:      historyService,
	}
}

func accountIDFrom(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid authentication")
		return uuid.Nil, false
	}
	return id, true
}

// Generate godoc
// @Summary Generate caption variants
// @Description Generate ranked caption variants for the submitted wizard selections
// @Tags Captions
// @Accept json
// @Produce json
// @Param request body request_models.GenerateCaptionRequest true "Wizard selections"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /captions/generate [post]
func (cc *CaptionController) Generate(c *gin.Context) {
	var req request_models.GenerateCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	accountID, ok := accountIDFrom(c)
	if !ok {
		return
	}

	sub, err := cc.subscriptionService.Current(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := cc.captionService.GenerateCaptions(c.Request.Context(), accountID, sub, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Captions generated successfully")
}

// Options godoc
// @Summary List wizard options
// @Description Fetch the selectable moods, tones, goals and platforms
// @Tags Captions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /captions/options [get]
func (cc *CaptionController) Options(c *gin.Context) {
	utils.RespondSuccess(c, services.WizardOptionSet(), "Options fetched successfully")
}

// History godoc
// @Summary List caption history
// @Description Fetch the account's most recent generated captions
// @Tags Captions
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /captions/history [get]
func (cc *CaptionController) History(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := cc.historyService.ListHistory(c.Request.Context(), accountID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "History fetched successfully")
}

// Similar godoc
// @Summary Find similar captions
// @Description Search the account's caption history by semantic similarity
// @Tags Captions
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /captions/history/similar [get]
func (cc *CaptionController) Similar(c *gin.Context) {
	accountID, ok := accountIDFrom(c)
	if !ok {
		return
	}

	var req request_models.SimilarCaptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query text is required")
		return
	}

	entries, err := cc.historyService.FindSimilar(c.Request.Context(), accountID, req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Similar captions fetched successfully")
}
