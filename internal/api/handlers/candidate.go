package handlers

import (
	"net/http"
	"strconv"

	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CandidateHandler handles HTTP requests for candidate operations
type CandidateHandler struct {
	candidateService service.CandidateServiceInterface
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateService service.CandidateServiceInterface) *CandidateHandler {
	return &CandidateHandler{candidateService: candidateService}
}

// SetStatusRequest toggles whether a candidate stays on the ballot
type SetStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// RegisterCandidate handles POST /candidates
// @Summary Register a candidate
// @Description Registers a voter as candidate for a position. New candidates await approval.
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body service.RegisterCandidateRequest true "Candidate data"
// @Success 201 {object} models.Candidate
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Voter or position not found"
// @Failure 409 {object} ErrorResponse "Already a candidate for the position"
// @Security BearerAuth
// @Router /candidates [post]
func (h *CandidateHandler) RegisterCandidate(c *gin.Context) {
	var req service.RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	candidate, err := h.candidateService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

// ListCandidates handles GET /candidates
// @Summary List all candidates
// @Tags candidates
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.CandidateListResponse
// @Security BearerAuth
// @Router /candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.candidateService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListApprovedCandidates handles GET /candidates/approved
// @Summary List approved candidates
// @Tags candidates
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.CandidateListResponse
// @Security BearerAuth
// @Router /candidates/approved [get]
func (h *CandidateHandler) ListApprovedCandidates(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.candidateService.GetApproved(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListActiveCandidates handles GET /candidates/active
// @Summary List active candidates
// @Tags candidates
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.CandidateListResponse
// @Security BearerAuth
// @Router /candidates/active [get]
func (h *CandidateHandler) ListActiveCandidates(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.candidateService.GetActive(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListCandidatesByPosition handles GET /candidates/position/:positionId
// @Summary List the candidates of a position
// @Description With on_ballot=true only approved, active candidates are returned in ballot order
// @Tags candidates
// @Produce json
// @Param positionId path string true "Position ID (UUID)"
// @Param on_ballot query bool false "Only candidates on the ballot"
// @Success 200 {array} models.Candidate
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /candidates/position/{positionId} [get]
func (h *CandidateHandler) ListCandidatesByPosition(c *gin.Context) {
	id, ok := uuidParam(c, "positionId")
	if !ok {
		return
	}
	onBallot, _ := strconv.ParseBool(c.DefaultQuery("on_ballot", "false"))
	candidates, err := h.candidateService.GetByPosition(id, onBallot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// GetCandidate handles GET /candidates/:id
// @Summary Get candidate by ID
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	candidate, err := h.candidateService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UpdateCandidate handles PUT /candidates/:id
// @Summary Update a candidate's manifesto and campaign details
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Param candidate body service.UpdateCandidateRequest true "Candidate data"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /candidates/{id} [put]
func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	candidate, err := h.candidateService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ApproveCandidate handles POST /candidates/:id/approve
// @Summary Approve a candidate
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /candidates/{id}/approve [post]
func (h *CandidateHandler) ApproveCandidate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	candidate, err := h.candidateService.Approve(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// SetCandidateStatus handles PUT /candidates/:id/status
// @Summary Activate or withdraw a candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Param body body SetStatusRequest true "Active flag"
// @Success 200 {object} models.Candidate
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /candidates/{id}/status [put]
func (h *CandidateHandler) SetCandidateStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	candidate, err := h.candidateService.SetActive(id, *req.IsActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// UploadCandidateImage handles PUT /candidates/:id/image
// @Summary Upload a candidate's portrait
// @Tags candidates
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Param image formData file true "PNG, JPEG, GIF or WebP image"
// @Success 200 {object} models.Candidate
// @Failure 400 {object} ErrorResponse "Not an image"
// @Failure 413 {object} ErrorResponse "Image too large"
// @Security BearerAuth
// @Router /candidates/{id}/image [put]
func (h *CandidateHandler) UploadCandidateImage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	f, size, ok := formFile(c, "image")
	if !ok {
		return
	}
	defer f.Close()

	candidate, err := h.candidateService.UploadImage(c.Request.Context(), id, f, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// GetCandidateImage handles GET /candidates/:id/image
// @Summary Download a candidate's portrait
// @Tags candidates
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param id path string true "Candidate ID (UUID)"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Candidate or image not found"
// @Security BearerAuth
// @Router /candidates/{id}/image [get]
func (h *CandidateHandler) GetCandidateImage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	info, body, err := h.candidateService.OpenImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Cache-Control", "private, max-age=300")
	if info.ETag != "" {
		c.Header("ETag", info.ETag)
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, body, nil)
}

// DeleteCandidate handles DELETE /candidates/:id
// @Summary Delete a candidate without votes
// @Tags candidates
// @Param id path string true "Candidate ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Failure 409 {object} ErrorResponse "Candidate already received votes"
// @Security BearerAuth
// @Router /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.candidateService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
