package handlers

import (
	"errors"
	"net/http"

	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ElectionHandler handles HTTP requests for election operations
type ElectionHandler struct {
	electionService service.ElectionServiceInterface
	positionService service.PositionServiceInterface
}

// NewElectionHandler creates a new election handler
func NewElectionHandler(electionService service.ElectionServiceInterface, positionService service.PositionServiceInterface) *ElectionHandler {
	return &ElectionHandler{
		electionService: electionService,
		positionService: positionService,
	}
}

// CreateElection handles POST /elections
// @Summary Create an election
// @Description Create an election in draft status
// @Tags elections
// @Accept json
// @Produce json
// @Param election body service.CreateElectionRequest true "Election data"
// @Success 201 {object} models.Election
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Name already used"
// @Security BearerAuth
// @Router /elections [post]
func (h *ElectionHandler) CreateElection(c *gin.Context) {
	var req service.CreateElectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	election, err := h.electionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, election)
}

// ListElections handles GET /elections
// @Summary List elections
// @Tags elections
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.ElectionListResponse
// @Security BearerAuth
// @Router /elections [get]
func (h *ElectionHandler) ListElections(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.electionService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetElection handles GET /elections/:id
// @Summary Get election by ID
// @Tags elections
// @Produce json
// @Param id path string true "Election ID (UUID)"
// @Success 200 {object} models.Election
// @Failure 404 {object} ErrorResponse "Election not found"
// @Security BearerAuth
// @Router /elections/{id} [get]
func (h *ElectionHandler) GetElection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	election, err := h.electionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, election)
}

// GetActiveElection handles GET /elections/active
// @Summary Get the election open for voting
// @Tags elections
// @Produce json
// @Success 200 {object} models.Election
// @Failure 404 {object} ErrorResponse "No election is active"
// @Security BearerAuth
// @Router /elections/active [get]
func (h *ElectionHandler) GetActiveElection(c *gin.Context) {
	election, err := h.electionService.GetActive()
	if err != nil {
		if errors.Is(err, apperrors.ErrElectionNotActive) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not Found", Details: err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, election)
}

// GetElectionPositions handles GET /elections/:id/positions
// @Summary List the positions of an election in ballot order
// @Tags elections
// @Produce json
// @Param id path string true "Election ID (UUID)"
// @Success 200 {array} models.Position
// @Security BearerAuth
// @Router /elections/{id}/positions [get]
func (h *ElectionHandler) GetElectionPositions(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.electionService.GetByID(id); err != nil {
		respondError(c, err)
		return
	}
	positions, err := h.positionService.GetByElection(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, positions)
}

// UpdateElectionStatus handles PUT /elections/:id/status
// @Summary Change an election's status
// @Description Elections move draft -> active -> completed. Only one election may be active.
// @Tags elections
// @Accept json
// @Produce json
// @Param id path string true "Election ID (UUID)"
// @Param status body service.UpdateElectionStatusRequest true "New status"
// @Success 200 {object} models.Election
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /elections/{id}/status [put]
func (h *ElectionHandler) UpdateElectionStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateElectionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	election, err := h.electionService.UpdateStatus(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, election)
}

// DeleteElection handles DELETE /elections/:id
// @Summary Delete a draft election
// @Tags elections
// @Param id path string true "Election ID (UUID)"
// @Success 204 "Deleted"
// @Failure 409 {object} ErrorResponse "Election is not a draft"
// @Security BearerAuth
// @Router /elections/{id} [delete]
func (h *ElectionHandler) DeleteElection(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.electionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
