package handlers

import (
	"net/http"
	"strings"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PositionHandler handles HTTP requests for position operations
type PositionHandler struct {
	positionService service.PositionServiceInterface
}

// NewPositionHandler creates a new position handler
func NewPositionHandler(positionService service.PositionServiceInterface) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// CreatePosition handles POST /positions
// @Summary Create a position
// @Tags positions
// @Accept json
// @Produce json
// @Param position body service.CreatePositionRequest true "Position data"
// @Success 201 {object} models.Position
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Election not found"
// @Failure 409 {object} ErrorResponse "Name already used in the election"
// @Security BearerAuth
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req service.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	position, err := h.positionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, position)
}

// ListPositions handles GET /positions
// @Summary List positions
// @Tags positions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.PositionListResponse
// @Security BearerAuth
// @Router /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	page, pageSize := pageParams(c)
	resp, err := h.positionService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPosition handles GET /positions/:id
// @Summary Get position by ID
// @Tags positions
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} models.Position
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/{id} [get]
func (h *PositionHandler) GetPosition(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	position, err := h.positionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// GetPositionByName handles GET /positions/name/:name
// @Summary Get position by name
// @Description Looks the name up in the given election, or the active election when none is given
// @Tags positions
// @Produce json
// @Param name path string true "Position name"
// @Param election_id query string false "Election ID (UUID)"
// @Success 200 {object} models.Position
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/name/{name} [get]
func (h *PositionHandler) GetPositionByName(c *gin.Context) {
	var electionID *uuid.UUID
	if raw := c.Query("election_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid election_id", err)
			return
		}
		electionID = &id
	}
	position, err := h.positionService.GetByName(electionID, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// GetPositionsByLevel handles GET /positions/level/:level
// @Summary List positions of one level
// @Tags positions
// @Produce json
// @Param level path string true "UNIVERSITY, COLLEGE or BLOCK"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.PositionListResponse
// @Failure 400 {object} ErrorResponse "Unknown level"
// @Security BearerAuth
// @Router /positions/level/{level} [get]
func (h *PositionHandler) GetPositionsByLevel(c *gin.Context) {
	page, pageSize := pageParams(c)
	level := models.PositionLevel(strings.ToUpper(c.Param("level")))
	resp, err := h.positionService.GetByLevel(level, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePosition handles PUT /positions/:id
// @Summary Update a position
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Param position body service.UpdatePositionRequest true "Position data"
// @Success 200 {object} models.Position
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/{id} [put]
func (h *PositionHandler) UpdatePosition(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	position, err := h.positionService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, position)
}

// DeletePosition handles DELETE /positions/:id
// @Summary Delete a position
// @Tags positions
// @Param id path string true "Position ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /positions/{id} [delete]
func (h *PositionHandler) DeletePosition(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.positionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
