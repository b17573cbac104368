package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"docreview/internal/domain"
)

// ErrorBody is the error envelope for all API responses.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody acknowledges triggers and deletes that return no resource.
type SuccessBody struct {
	Success bool `json:"success"`
}

// RespondOK sends a 200 response with the resource as the body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 response with the resource as the body.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// RespondSuccess sends a 200 `{"success": true}` acknowledgement.
func RespondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessBody{Success: true})
}

// RespondAccepted sends a 202 `{"success": true}` acknowledgement for
// asynchronous triggers.
func RespondAccepted(c *gin.Context) {
	c.JSON(http.StatusAccepted, SuccessBody{Success: true})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Error: msg})
}

// MapDomainError translates domain errors to HTTP status codes and messages.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrSectionNotFound):
		return http.StatusNotFound, "section not found"
	case errors.Is(err, domain.ErrRulesetNotFound):
		return http.StatusNotFound, "ruleset not found"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "session not found"
	case errors.Is(err, domain.ErrRevisionNotFound):
		return http.StatusNotFound, "revision not found"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrAlreadyProcessing):
		return http.StatusConflict, "review already in progress or finished"
	case errors.Is(err, domain.ErrDuplicateUpload):
		return http.StatusConflict, "section already has an upload for this session"
	case errors.Is(err, domain.ErrNoUploads):
		return http.StatusBadRequest, "at least one upload is required"
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusBadRequest, "gemini api key not configured"
	case errors.Is(err, domain.ErrQueueFull):
		return http.StatusServiceUnavailable, "review queue is full, try again shortly"
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
