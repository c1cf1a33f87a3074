package handlers

import (
	"net/http"

	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/voice"

	"github.com/gin-gonic/gin"
)

// VoiceHandler handles voice sample enrollment, standalone verification and
// command dispatch outside the voting flow
type VoiceHandler struct {
	sampleService       service.VoiceSampleServiceInterface
	verificationService service.VerificationServiceInterface
	dispatcher          *voice.Dispatcher
	metrics             *metrics.Metrics
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(
	sampleService service.VoiceSampleServiceInterface,
	verificationService service.VerificationServiceInterface,
	dispatcher *voice.Dispatcher,
	m *metrics.Metrics,
) *VoiceHandler {
	return &VoiceHandler{
		sampleService:       sampleService,
		verificationService: verificationService,
		dispatcher:          dispatcher,
		metrics:             m,
	}
}

// CommandRequest is a finalized transcript together with the client route it was heard on
type CommandRequest struct {
	Utterance string `json:"utterance" binding:"required" example:"go to results"`
	Route     string `json:"route" example:"/dashboard"`
}

// CommandResponse lists the dispatched commands
type CommandResponse struct {
	Commands []voice.Command `json:"commands"`
}

// UploadSample handles POST /voice/samples
// @Summary Enroll the authenticated voter's voice sample
// @Description Replaces any previous sample. The recording must be WAV.
// @Tags voice
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "WAV recording of the passphrase"
// @Success 200 {object} service.VoiceSampleStatus
// @Failure 400 {object} ErrorResponse "Not a WAV recording"
// @Failure 413 {object} ErrorResponse "Recording too large"
// @Security BearerAuth
// @Router /voice/samples [post]
func (h *VoiceHandler) UploadSample(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	f, size, ok := formFile(c, "audio")
	if !ok {
		return
	}
	defer f.Close()

	status, err := h.sampleService.Upload(c.Request.Context(), voterID, f, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// SampleStatus handles GET /voice/samples/status
// @Summary Report whether the authenticated voter has enrolled a voice sample
// @Tags voice
// @Produce json
// @Success 200 {object} service.VoiceSampleStatus
// @Security BearerAuth
// @Router /voice/samples/status [get]
func (h *VoiceHandler) SampleStatus(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	status, err := h.sampleService.Status(voterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// DeleteSample handles DELETE /voice/samples
// @Summary Remove the authenticated voter's voice sample
// @Tags voice
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "No sample enrolled"
// @Security BearerAuth
// @Router /voice/samples [delete]
func (h *VoiceHandler) DeleteSample(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	if err := h.sampleService.Delete(c.Request.Context(), voterID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Verify handles POST /voice/verify
// @Summary Verify a recording against the enrolled sample
// @Description Each failed attempt counts toward the attempt ceiling shared with the voting flow
// @Tags voice
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "WAV recording of the passphrase"
// @Success 200 {object} service.VerificationResult
// @Failure 404 {object} ErrorResponse "No sample enrolled"
// @Failure 429 {object} ErrorResponse "No attempts left"
// @Failure 503 {object} ErrorResponse "Voice model unavailable"
// @Security BearerAuth
// @Router /voice/verify [post]
func (h *VoiceHandler) Verify(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	f, size, ok := formFile(c, "audio")
	if !ok {
		return
	}
	defer f.Close()

	result, err := h.verificationService.Verify(c.Request.Context(), voterID, f, size, language(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Commands handles POST /voice/commands
// @Summary Dispatch a transcript to voice commands
// @Description Navigation phrases match on every route, candidate and confirmation phrases only on /voting
// @Tags voice
// @Accept json
// @Produce json
// @Param command body CommandRequest true "Transcript and current route"
// @Success 200 {object} CommandResponse
// @Security BearerAuth
// @Router /voice/commands [post]
func (h *VoiceHandler) Commands(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	commands := h.dispatcher.Dispatch(req.Utterance, req.Route)
	for _, cmd := range commands {
		h.metrics.VoiceCommand(string(cmd.Kind))
	}
	if commands == nil {
		commands = []voice.Command{}
	}
	c.JSON(http.StatusOK, CommandResponse{Commands: commands})
}
