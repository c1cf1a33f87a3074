package handlers

import (
	"net/http"

	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VoteHandler handles HTTP requests for vote operations
type VoteHandler struct {
	voteService service.VoteServiceInterface
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(voteService service.VoteServiceInterface) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

func voteMeta(c *gin.Context) service.VoteMeta {
	return service.VoteMeta{
		IPAddress:  c.ClientIP(),
		DeviceInfo: c.Request.UserAgent(),
	}
}

// CastVote handles POST /votes
// @Summary Cast a vote for one position
// @Description Stores a single vote for the authenticated voter. A voter may vote once per position.
// @Tags votes
// @Accept json
// @Produce json
// @Param vote body service.CastVoteRequest true "Position and candidate"
// @Success 201 {object} service.VoteReceipt
// @Failure 400 {object} ErrorResponse "Candidate is not on the position's ballot"
// @Failure 409 {object} ErrorResponse "Already voted for the position or election not active"
// @Security BearerAuth
// @Router /votes [post]
func (h *VoteHandler) CastVote(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	var req service.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body", err)
		return
	}
	receipt, err := h.voteService.CastVote(voterID, &req, voteMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// VerifyVote handles GET /votes/verify/:hash
// @Summary Check a vote receipt
// @Tags votes
// @Produce json
// @Param hash path string true "Vote hash from the receipt"
// @Success 200 {object} service.VoteVerification
// @Failure 404 {object} ErrorResponse "No vote with this hash"
// @Security BearerAuth
// @Router /votes/verify/{hash} [get]
func (h *VoteHandler) VerifyVote(c *gin.Context) {
	verification, err := h.voteService.VerifyHash(c.Param("hash"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, verification)
}

// MyVotes handles GET /votes/me
// @Summary List the authenticated voter's votes
// @Tags votes
// @Produce json
// @Success 200 {array} service.VoteRecord
// @Security BearerAuth
// @Router /votes/me [get]
func (h *VoteHandler) MyVotes(c *gin.Context) {
	voterID, ok := currentVoter(c)
	if !ok {
		return
	}
	records, err := h.voteService.GetHistory(voterID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
