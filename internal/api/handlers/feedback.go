package handlers

import (
	"net/http"
	"strconv"

	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler handles HTTP requests for feedback operations
type FeedbackHandler struct {
	feedbackService service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedback handles POST /feedback
// @Summary Submit feedback about the election
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body service.SubmitFeedbackRequest true "Comment and rating"
// @Success 201 {object} service.FeedbackResponse
// @Failure 400 {object} ErrorResponse "Invalid rating or comment"
// @Security BearerAuth
// @Router /feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	var req service.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	feedback, err := h.feedbackService.Submit(voterID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feedback)
}

// ListFeedback handles GET /feedback
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Param voter_id query string false "Voter ID (UUID)"
// @Param rating query int false "Rating 1-5"
// @Param anonymous query bool false "Anonymous entries only or named entries only"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.FeedbackListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var filter repository.FeedbackFilter
	if raw := c.Query("voter_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid voter_id", err)
			return
		}
		filter.VoterID = &id
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "invalid rating", err)
			return
		}
		filter.Rating = rating
	}
	if raw := c.Query("anonymous"); raw != "" {
		anonymous, err := strconv.ParseBool(raw)
		if err != nil {
			badRequest(c, "invalid anonymous flag", err)
			return
		}
		filter.Anonymous = &anonymous
	}

	page, pageSize := pageParams(c)
	resp, err := h.feedbackService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetFeedback handles GET /feedback/:id
// @Summary Get feedback by ID
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID (UUID)"
// @Success 200 {object} service.FeedbackResponse
// @Failure 404 {object} ErrorResponse "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	feedback, err := h.feedbackService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

// DeleteFeedback handles DELETE /feedback/:id
// @Summary Delete feedback
// @Tags feedback
// @Param id path string true "Feedback ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Feedback not found"
// @Security BearerAuth
// @Router /feedback/{id} [delete]
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.feedbackService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
