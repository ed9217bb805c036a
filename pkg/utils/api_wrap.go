package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
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
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

// HandleServiceError maps service-level sentinel errors onto the JSON
// envelope. Not-found errors become 404, business-rule violations 400,
// anything unrecognized is treated as a storage failure.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrClientNotFound),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrSubscriptionNotFound),
		errors.Is(err, ErrClientSubscriptionNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrLicenseKeyNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrDuplicatePhone),
		errors.Is(err, ErrDuplicateLicenseKey),
		errors.Is(err, ErrNoRemainingUses),
		errors.Is(err, ErrSubscriptionInactive),
		errors.Is(err, ErrRemoveExceedsRemain),
		errors.Is(err, ErrScaleAmountTooSmall),
		errors.Is(err, ErrScaleAmountTooLarge),
		errors.Is(err, ErrUnknownScaleDirection),
		errors.Is(err, ErrNoNewServices),
		errors.Is(err, ErrInvalidStatusChange):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unhandled service error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
