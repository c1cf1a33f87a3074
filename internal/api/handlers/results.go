package handlers

import (
	"net/http"

	"voteverse-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResultsHandler handles HTTP requests for election results
type ResultsHandler struct {
	resultsService service.ResultsServiceInterface
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsService service.ResultsServiceInterface) *ResultsHandler {
	return &ResultsHandler{resultsService: resultsService}
}

// PositionResults handles GET /results/position/:id
// @Summary Results of one position
// @Description Tally of the approved, active candidates, highest first
// @Tags results
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} service.PositionResults
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /results/position/{id} [get]
func (h *ResultsHandler) PositionResults(c *gin.Context) {
	h.positionResults(c, false)
}

// PositionResultsAll handles GET /results/position/:id/all
// @Summary Results of one position including withdrawn candidates
// @Tags results
// @Produce json
// @Param id path string true "Position ID (UUID)"
// @Success 200 {object} service.PositionResults
// @Failure 404 {object} ErrorResponse "Position not found"
// @Security BearerAuth
// @Router /results/position/{id}/all [get]
func (h *ResultsHandler) PositionResultsAll(c *gin.Context) {
	h.positionResults(c, true)
}

func (h *ResultsHandler) positionResults(c *gin.Context, includeAll bool) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	results, err := h.resultsService.ForPosition(id, includeAll)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// CandidateResult handles GET /results/candidate/:id
// @Summary Result of one candidate
// @Tags results
// @Produce json
// @Param id path string true "Candidate ID (UUID)"
// @Success 200 {object} service.CandidateResult
// @Failure 404 {object} ErrorResponse "Candidate not found"
// @Security BearerAuth
// @Router /results/candidate/{id} [get]
func (h *ResultsHandler) CandidateResult(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.resultsService.ForCandidate(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ElectionResults handles GET /results/election/:id
// @Summary Results of every position of an election
// @Tags results
// @Produce json
// @Param id path string true "Election ID (UUID)"
// @Success 200 {object} service.ElectionResults
// @Failure 404 {object} ErrorResponse "Election not found"
// @Security BearerAuth
// @Router /results/election/{id} [get]
func (h *ResultsHandler) ElectionResults(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	results, err := h.resultsService.ForElection(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
