package handlers

import (
	"net/http"

	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VotingHandler drives the authenticated voter's voting session
type VotingHandler struct {
	sessionService service.VotingSessionServiceInterface
}

// NewVotingHandler creates a new voting handler
func NewVotingHandler(sessionService service.VotingSessionServiceInterface) *VotingHandler {
	return &VotingHandler{sessionService: sessionService}
}

type sessionStep func(voterID uuid.UUID, lang string) (*service.SessionView, error)

func (h *VotingHandler) run(c *gin.Context, status int, step sessionStep) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	view, err := step(voterID, language(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, view)
}

// StartSession handles POST /voting/session
// @Summary Start a voting session
// @Description Builds the ballot of the active election for the voter and starts at the first position. Any running session is replaced.
// @Tags voting
// @Produce json
// @Param Accept-Language header string false "Prompt language"
// @Success 201 {object} service.SessionView
// @Failure 409 {object} ErrorResponse "Already voted, no active election or empty ballot"
// @Security BearerAuth
// @Router /voting/session [post]
func (h *VotingHandler) StartSession(c *gin.Context) {
	h.run(c, http.StatusCreated, h.sessionService.Start)
}

// GetSession handles GET /voting/session
// @Summary Get the current voting session
// @Tags voting
// @Produce json
// @Success 200 {object} service.SessionView
// @Failure 404 {object} ErrorResponse "No session"
// @Security BearerAuth
// @Router /voting/session [get]
func (h *VotingHandler) GetSession(c *gin.Context) {
	h.run(c, http.StatusOK, h.sessionService.Get)
}

// Select handles POST /voting/session/select
// @Summary Select a candidate for the current position
// @Description Pass either candidate_index (zero based) or candidate_id
// @Tags voting
// @Accept json
// @Produce json
// @Param selection body service.SelectRequest true "Candidate"
// @Success 200 {object} service.SessionView
// @Failure 400 {object} ErrorResponse "Unknown candidate"
// @Failure 409 {object} ErrorResponse "Not selecting"
// @Security BearerAuth
// @Router /voting/session/select [post]
func (h *VotingHandler) Select(c *gin.Context) {
	var req service.SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	h.run(c, http.StatusOK, func(voterID uuid.UUID, lang string) (*service.SessionView, error) {
		return h.sessionService.Select(voterID, lang, &req)
	})
}

// Next handles POST /voting/session/next
// @Summary Move to the next position
// @Description After the last position the session moves on to confirmation
// @Tags voting
// @Produce json
// @Success 200 {object} service.SessionView
// @Failure 400 {object} ErrorResponse "No candidate selected"
// @Security BearerAuth
// @Router /voting/session/next [post]
func (h *VotingHandler) Next(c *gin.Context) {
	h.run(c, http.StatusOK, h.sessionService.Next)
}

// Previous handles POST /voting/session/previous
// @Summary Move back to the previous position
// @Tags voting
// @Produce json
// @Success 200 {object} service.SessionView
// @Security BearerAuth
// @Router /voting/session/previous [post]
func (h *VotingHandler) Previous(c *gin.Context) {
	h.run(c, http.StatusOK, h.sessionService.Previous)
}

// Confirm handles POST /voting/session/confirm
// @Summary Confirm or reject the selections
// @Description Confirming moves on to voice verification, rejecting starts over
// @Tags voting
// @Accept json
// @Produce json
// @Param confirmation body service.ConfirmRequest true "Answer"
// @Success 200 {object} service.SessionView
// @Failure 409 {object} ErrorResponse "Not confirming"
// @Security BearerAuth
// @Router /voting/session/confirm [post]
func (h *VotingHandler) Confirm(c *gin.Context) {
	var req service.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	h.run(c, http.StatusOK, func(voterID uuid.UUID, lang string) (*service.SessionView, error) {
		return h.sessionService.Confirm(voterID, lang, &req)
	})
}

// Verify handles POST /voting/session/verify
// @Summary Verify the voter's voice and submit the ballot
// @Tags voting
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "WAV recording of the passphrase"
// @Success 200 {object} service.SessionView
// @Failure 409 {object} ErrorResponse "Not verifying"
// @Failure 429 {object} ErrorResponse "No attempts left"
// @Failure 503 {object} ErrorResponse "Voice model unavailable"
// @Security BearerAuth
// @Router /voting/session/verify [post]
func (h *VotingHandler) Verify(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	f, size, ok := formFile(c, "audio")
	if !ok {
		return
	}
	defer f.Close()

	view, err := h.sessionService.Verify(c.Request.Context(), voterID, language(c), f, size, voteMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Command handles POST /voting/session/command
// @Summary Apply a spoken command to the session
// @Tags voting
// @Accept json
// @Produce json
// @Param command body service.CommandRequest true "Transcript"
// @Success 200 {object} service.SessionView
// @Failure 404 {object} ErrorResponse "No session"
// @Security BearerAuth
// @Router /voting/session/command [post]
func (h *VotingHandler) Command(c *gin.Context) {
	var req service.CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	h.run(c, http.StatusOK, func(voterID uuid.UUID, lang string) (*service.SessionView, error) {
		return h.sessionService.Command(voterID, lang, req.Utterance)
	})
}

// CancelSession handles DELETE /voting/session
// @Summary Abandon the voting session
// @Tags voting
// @Success 204 "Cancelled"
// @Failure 404 {object} ErrorResponse "No session"
// @Security BearerAuth
// @Router /voting/session [delete]
func (h *VotingHandler) CancelSession(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	if err := h.sessionService.Cancel(voterID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
