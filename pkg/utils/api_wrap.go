package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer errors to HTTP responses. Every
// pipeline error carries a message suitable for direct display, so the
// error text is passed through except for database failures.
func HandleServiceError(c *gin.Context, err error) {
	var extractionErr *ExtractionError
	var budgetErr *BudgetExceededError
	var incompleteErr *IncompletePlanError

	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidBudget),
		errors.Is(err, ErrInvalidDates),
		errors.Is(err, ErrBudgetTooLow):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotConfigured):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &budgetErr):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &incompleteErr):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &extractionErr):
		log.Printf("extraction failed, raw response: %s", extractionErr.Raw)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrEmptyCompletion):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
