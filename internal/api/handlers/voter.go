package handlers

import (
	"net/http"
	"strconv"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VoterHandler handles HTTP requests for voter operations
type VoterHandler struct {
	voterService service.VoterServiceInterface
	voteService  service.VoteServiceInterface
}

// NewVoterHandler creates a new voter handler
func NewVoterHandler(voterService service.VoterServiceInterface, voteService service.VoteServiceInterface) *VoterHandler {
	return &VoterHandler{
		voterService: voterService,
		voteService:  voteService,
	}
}

// CreateVoter handles POST /voters
// @Summary Create a voter
// @Description Register a voter manually. Most voters arrive through registry sync.
// @Tags voters
// @Accept json
// @Produce json
// @Param voter body service.CreateVoterRequest true "Voter data"
// @Success 201 {object} models.Voter
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Registration number, email or phone already used"
// @Security BearerAuth
// @Router /voters [post]
func (h *VoterHandler) CreateVoter(c *gin.Context) {
	var req service.CreateVoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	voter, err := h.voterService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, voter)
}

// GetVoter handles GET /voters/:id
// @Summary Get voter by ID
// @Tags voters
// @Produce json
// @Param id path string true "Voter ID (UUID)"
// @Success 200 {object} models.Voter
// @Failure 400 {object} ErrorResponse "Invalid voter ID"
// @Failure 403 {object} ErrorResponse "Not the voter or an administrator"
// @Failure 404 {object} ErrorResponse "Voter not found"
// @Security BearerAuth
// @Router /voters/{id} [get]
func (h *VoterHandler) GetVoter(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok || !selfOrAdmin(c, id) {
		return
	}
	voter, err := h.voterService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voter)
}

// GetVoterByRegNo handles GET /voters/reg/:regNo
// @Summary Get voter by registration number
// @Tags voters
// @Produce json
// @Param regNo path string true "Registration number"
// @Success 200 {object} models.Voter
// @Failure 404 {object} ErrorResponse "Voter not found"
// @Security BearerAuth
// @Router /voters/reg/{regNo} [get]
func (h *VoterHandler) GetVoterByRegNo(c *gin.Context) {
	voter, err := h.voterService.GetByRegNo(c.Param("regNo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voter)
}

// ListVoters handles GET /voters
// @Summary List voters
// @Description List voters with optional filters and pagination
// @Tags voters
// @Produce json
// @Param college query string false "College"
// @Param programme query string false "Programme"
// @Param dorm_block query string false "Dorm block"
// @Param year_of_study query int false "Year of study"
// @Param voting_status query string false "Voting status (Voted, Not Voted)"
// @Param q query string false "Search by name, registration number or email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.VoterListResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /voters [get]
func (h *VoterHandler) ListVoters(c *gin.Context) {
	filter := repository.VoterFilter{
		College:      c.Query("college"),
		Programme:    c.Query("programme"),
		DormBlock:    c.Query("dorm_block"),
		VotingStatus: models.VotingStatus(c.Query("voting_status")),
		Query:        c.Query("q"),
	}
	if year := c.Query("year_of_study"); year != "" {
		n, err := strconv.Atoi(year)
		if err != nil {
			badRequest(c, "invalid year_of_study", err)
			return
		}
		filter.YearOfStudy = n
	}
	page, pageSize := pageParams(c)

	resp, err := h.voterService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateVoter handles PUT /voters/:id
// @Summary Update a voter's profile
// @Tags voters
// @Accept json
// @Produce json
// @Param id path string true "Voter ID (UUID)"
// @Param voter body service.UpdateVoterRequest true "Profile data"
// @Success 200 {object} models.Voter
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Voter not found"
// @Security BearerAuth
// @Router /voters/{id} [put]
func (h *VoterHandler) UpdateVoter(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdateVoterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	voter, err := h.voterService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voter)
}

// UpdateContacts handles PATCH /voters/:id/contacts
// @Summary Change a voter's email or phone
// @Tags voters
// @Accept json
// @Produce json
// @Param id path string true "Voter ID (UUID)"
// @Param contacts body service.UpdateContactsRequest true "New contacts"
// @Success 200 {object} models.Voter
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the voter or an administrator"
// @Failure 409 {object} ErrorResponse "Email or phone used by another voter"
// @Security BearerAuth
// @Router /voters/{id}/contacts [patch]
func (h *VoterHandler) UpdateContacts(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok || !selfOrAdmin(c, id) {
		return
	}
	var req service.UpdateContactsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	voter, err := h.voterService.UpdateContacts(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, voter)
}

// DeleteVoter handles DELETE /voters/:id
// @Summary Delete a voter
// @Tags voters
// @Param id path string true "Voter ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Voter not found"
// @Security BearerAuth
// @Router /voters/{id} [delete]
func (h *VoterHandler) DeleteVoter(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.voterService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetVoterVotes handles GET /voters/:id/votes
// @Summary List a voter's votes
// @Tags voters
// @Produce json
// @Param id path string true "Voter ID (UUID)"
// @Success 200 {array} service.VoteRecord
// @Failure 403 {object} ErrorResponse "Not the voter or an administrator"
// @Security BearerAuth
// @Router /voters/{id}/votes [get]
func (h *VoterHandler) GetVoterVotes(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok || !selfOrAdmin(c, id) {
		return
	}
	records, err := h.voteService.GetHistory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
