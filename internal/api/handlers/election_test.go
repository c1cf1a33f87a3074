package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"voteverse-backend/internal/api/handlers"
	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ElectionHandlerTestSuite defines the test suite for ElectionHandler
type ElectionHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	electionService *mocks.MockElectionServiceInterface
	positionService *mocks.MockPositionServiceInterface
	http            *testutils.HTTPTestSuite
}

func (suite *ElectionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.electionService = mocks.NewMockElectionServiceInterface(suite.ctrl)
	suite.positionService = mocks.NewMockPositionServiceInterface(suite.ctrl)

	handler := handlers.NewElectionHandler(suite.electionService, suite.positionService)
	suite.http = testutils.SetupHTTPTest(asVoter(uuid.New(), models.RoleAdmin))
	suite.http.Router.POST("/elections", handler.CreateElection)
	suite.http.Router.GET("/elections", handler.ListElections)
	suite.http.Router.GET("/elections/active", handler.GetActiveElection)
	suite.http.Router.GET("/elections/:id", handler.GetElection)
	suite.http.Router.GET("/elections/:id/positions", handler.GetElectionPositions)
	suite.http.Router.PUT("/elections/:id/status", handler.UpdateElectionStatus)
	suite.http.Router.DELETE("/elections/:id", handler.DeleteElection)
}

func (suite *ElectionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ElectionHandlerTestSuite) TestCreateElection() {
	election := testutils.NewElectionFactory().Create()
	suite.electionService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateElectionRequest) (*models.Election, error) {
			suite.Equal(election.Name, req.Name)
			return election, nil
		})

	rec := suite.http.MakeRequest(http.MethodPost, "/elections", map[string]string{"name": election.Name})

	var got models.Election
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &got)
	suite.Equal(election.ID, got.ID)
	suite.Equal(models.ElectionStatusDraft, got.Status)
}

func (suite *ElectionHandlerTestSuite) TestGetActiveElection() {
	election := testutils.NewElectionFactory().Active()
	suite.electionService.EXPECT().GetActive().Return(election, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/elections/active", nil)

	var got models.Election
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Equal(models.ElectionStatusActive, got.Status)
}

func (suite *ElectionHandlerTestSuite) TestGetActiveElection_NoneIsNotFound() {
	suite.electionService.EXPECT().GetActive().Return(nil, apperrors.ErrElectionNotActive)

	rec := suite.http.MakeRequest(http.MethodGet, "/elections/active", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "Not Found")
}

func (suite *ElectionHandlerTestSuite) TestGetElectionPositions() {
	election := testutils.NewElectionFactory().Active()
	positions := []models.Position{*testutils.NewPositionFactory().Create(election.ID)}
	gomock.InOrder(
		suite.electionService.EXPECT().GetByID(election.ID).Return(election, nil),
		suite.positionService.EXPECT().GetByElection(election.ID).Return(positions, nil),
	)

	rec := suite.http.MakeRequest(http.MethodGet, fmt.Sprintf("/elections/%s/positions", election.ID), nil)

	var got []models.Position
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Len(got, 1)
	suite.Equal(positions[0].Name, got[0].Name)
}

func (suite *ElectionHandlerTestSuite) TestGetElectionPositions_UnknownElection() {
	id := uuid.New()
	suite.electionService.EXPECT().GetByID(id).Return(nil, apperrors.ErrElectionNotFound)

	rec := suite.http.MakeRequest(http.MethodGet, fmt.Sprintf("/elections/%s/positions", id), nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "election not found")
}

func (suite *ElectionHandlerTestSuite) TestUpdateElectionStatus_InvalidTransition() {
	id := uuid.New()
	suite.electionService.EXPECT().UpdateStatus(id, gomock.Any()).Return(nil, apperrors.ErrInvalidStatusTransition)

	rec := suite.http.MakeRequest(http.MethodPut, fmt.Sprintf("/elections/%s/status", id), map[string]string{"status": "draft"})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "invalid status transition")
}

func (suite *ElectionHandlerTestSuite) TestDeleteElection() {
	id := uuid.New()
	suite.electionService.EXPECT().Delete(id).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/elections/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, rec.Code)
}

func TestElectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ElectionHandlerTestSuite))
}
