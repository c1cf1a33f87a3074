package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"voteverse-backend/internal/api/handlers"
	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResultsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	resultsService := mocks.NewMockResultsServiceInterface(ctrl)
	handler := handlers.NewResultsHandler(resultsService)

	h := testutils.SetupHTTPTest(asVoter(uuid.New(), models.RoleVoter))
	h.Router.GET("/results/position/:id", handler.PositionResults)
	h.Router.GET("/results/position/:id/all", handler.PositionResultsAll)
	h.Router.GET("/results/candidate/:id", handler.CandidateResult)
	h.Router.GET("/results/election/:id", handler.ElectionResults)

	positionID := uuid.New()

	t.Run("position results hide withdrawn candidates", func(t *testing.T) {
		resultsService.EXPECT().ForPosition(positionID, false).Return(&service.PositionResults{PositionID: positionID, TotalVotes: 7}, nil)

		rec := h.MakeRequest(http.MethodGet, "/results/position/"+positionID.String(), nil)

		var got service.PositionResults
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, int64(7), got.TotalVotes)
	})

	t.Run("all variant includes every candidate", func(t *testing.T) {
		resultsService.EXPECT().ForPosition(positionID, true).Return(&service.PositionResults{PositionID: positionID}, nil)

		rec := h.MakeRequest(http.MethodGet, "/results/position/"+positionID.String()+"/all", nil)

		testutils.AssertJSONResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		id := uuid.New()
		resultsService.EXPECT().ForCandidate(id).Return(nil, apperrors.ErrCandidateNotFound)

		rec := h.MakeRequest(http.MethodGet, "/results/candidate/"+id.String(), nil)

		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "candidate not found")
	})

	t.Run("malformed election id", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/results/election/latest", nil)

		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "invalid id")
	})
}

func TestPositionHandler_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	positionService := mocks.NewMockPositionServiceInterface(ctrl)
	handler := handlers.NewPositionHandler(positionService)

	h := testutils.SetupHTTPTest(asVoter(uuid.New(), models.RoleVoter))
	h.Router.GET("/positions/name/:name", handler.GetPositionByName)
	h.Router.GET("/positions/level/:level", handler.GetPositionsByLevel)

	t.Run("by name scoped to an election", func(t *testing.T) {
		electionID := uuid.New()
		position := testutils.NewPositionFactory().Create(electionID)
		positionService.EXPECT().GetByName(&electionID, "Guild President").Return(position, nil)

		rec := h.MakeRequest(http.MethodGet, "/positions/name/"+url.PathEscape("Guild President")+"?election_id="+electionID.String(), nil)

		testutils.AssertJSONResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("by name with malformed election id", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/positions/name/Treasurer?election_id=2026", nil)

		testutils.AssertErrorResponse(t, rec, http.StatusBadRequest, "invalid election_id")
	})

	t.Run("level is case insensitive", func(t *testing.T) {
		positionService.EXPECT().GetByLevel(models.PositionLevelCollege, 1, 20).Return(&service.PositionListResponse{}, nil)

		rec := h.MakeRequest(http.MethodGet, "/positions/level/college", nil)

		testutils.AssertJSONResponse(t, rec, http.StatusOK, nil)
	})
}

func TestAdminHandler_SyncRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registrySync := mocks.NewMockRegistrySyncServiceInterface(ctrl)
	handler := handlers.NewAdminHandler(registrySync)

	h := testutils.SetupHTTPTest(asVoter(uuid.New(), models.RoleAdmin))
	h.Router.POST("/admin/registry/sync", handler.SyncRegistry)

	t.Run("reports counts", func(t *testing.T) {
		registrySync.EXPECT().Sync(gomock.Any()).Return(&service.SyncReport{Total: 3, Created: 2, Updated: 1}, nil)

		rec := h.MakeRequest(http.MethodPost, "/admin/registry/sync", nil)

		var got service.SyncReport
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &got)
		assert.Equal(t, 2, got.Created)
	})

	t.Run("no registry configured", func(t *testing.T) {
		registrySync.EXPECT().Sync(gomock.Any()).Return(nil, apperrors.ErrRegistryNotConfigured)

		rec := h.MakeRequest(http.MethodPost, "/admin/registry/sync", nil)

		testutils.AssertErrorResponse(t, rec, http.StatusServiceUnavailable, "not configured")
	})
}
