package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"voteverse-backend/internal/auth"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"voter not found"`
	Details string `json:"details,omitempty" example:"voter not found"`
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), apperrors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.Is(err, apperrors.ErrSelectionRequired),
		errors.Is(err, apperrors.ErrCandidateIndexOutOfRange),
		errors.Is(err, apperrors.ErrCandidateNotOnBallot),
		errors.Is(err, apperrors.ErrInvalidAudio):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrElectionNotActive),
		errors.Is(err, apperrors.ErrEmptyBallot):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrAudioTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, apperrors.ErrVerificationExhausted):
		return http.StatusTooManyRequests
	case errors.Is(err, apperrors.ErrVerifierUnavailable),
		errors.Is(err, apperrors.ErrRegistryNotConfigured),
		apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError writes err with the status it maps to. Server errors are logged
// and their details kept out of the response.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	if status == http.StatusInternalServerError {
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: http.StatusText(status), Details: err.Error()})
}

func badRequest(c *gin.Context, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// uuidParam parses a UUID path parameter, replying 400 when it is malformed
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name, err)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and page_size; the services clamp the values
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}

// currentVoter returns the authenticated voter id, replying 401 when absent
func currentVoter(c *gin.Context) (uuid.UUID, bool) {
	id, ok := auth.GetVoterID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Details: apperrors.ErrMissingToken.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// selfOrAdmin allows admins and the voter the resource belongs to
func selfOrAdmin(c *gin.Context, owner uuid.UUID) bool {
	if auth.IsAdmin(c) {
		return true
	}
	if id, ok := auth.GetVoterID(c); ok && id == owner {
		return true
	}
	c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden", Details: "access restricted to the voter or an administrator"})
	return false
}

func language(c *gin.Context) string {
	return c.GetHeader("Accept-Language")
}

// formFile opens a multipart upload, replying 400 when the field is missing
func formFile(c *gin.Context, field string) (multipart.File, int64, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		badRequest(c, "missing "+field+" file", err)
		return nil, 0, false
	}
	f, err := header.Open()
	if err != nil {
		badRequest(c, "unreadable "+field+" file", err)
		return nil, 0, false
	}
	return f, header.Size, true
}
