package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidSelection):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRecordNotFound), errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailTaken):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrQuotaExceeded):
		// Client treats this as "show upgrade offer"
		RespondError(c, http.StatusPaymentRequired, "Monthly generation quota exceeded")
	case errors.Is(err, ErrGenerationBusy):
		RespondError(c, http.StatusConflict, "A generation is already in progress")
	case errors.Is(err, ErrLedgerUnavailable):
		log.Printf("Ledger error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Usage tracking is temporarily unavailable, please retry")
	case errors.Is(err, ErrProviderUnavailable):
		log.Printf("Provider error: %v", err)
		RespondError(c, http.StatusBadGateway, "Caption provider is temporarily unavailable, please retry")
	case errors.Is(err, ErrGenerationFailed):
		log.Printf("Generation error: %v", err)
		RespondError(c, http.StatusBadGateway, "Caption generation failed")
	case errors.Is(err, ErrUnknownPlan):
		log.Printf("Plan configuration error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Subscription plan is misconfigured")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
