package service_test

import (
	"testing"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ResultsServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCands      *mocks.MockCandidateRepositoryInterface
	mockPositions  *mocks.MockPositionRepositoryInterface
	mockElections  *mocks.MockElectionRepositoryInterface
	resultsService *service.ResultsService
}

func (suite *ResultsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCands = mocks.NewMockCandidateRepositoryInterface(suite.ctrl)
	suite.mockPositions = mocks.NewMockPositionRepositoryInterface(suite.ctrl)
	suite.mockElections = mocks.NewMockElectionRepositoryInterface(suite.ctrl)
	suite.resultsService = service.NewResultsService(suite.mockCands, suite.mockPositions, suite.mockElections)
}

func (suite *ResultsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func candidate(positionID uuid.UUID, first string, votes int64) models.Candidate {
	return models.Candidate{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		PositionID: positionID,
		VoteCount:  votes,
		IsApproved: true,
		IsActive:   true,
		Voter:      &models.Voter{FirstName: first, LastName: "Test"},
	}
}

func (suite *ResultsServiceTestSuite) TestForPosition_PercentagesAndOrder() {
	pos := &models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Guild President"}
	suite.mockPositions.EXPECT().GetByID(pos.ID).Return(pos, nil)
	suite.mockCands.EXPECT().GetByPositionID(pos.ID, true).Return([]models.Candidate{
		candidate(pos.ID, "Ann", 1),
		candidate(pos.ID, "Ben", 2),
	}, nil)

	res, err := suite.resultsService.ForPosition(pos.ID, false)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), res.TotalVotes)
	require.Len(suite.T(), res.Candidates, 2)
	assert.Equal(suite.T(), "Ben Test", res.Candidates[0].CandidateName)
	assert.Equal(suite.T(), 66.67, res.Candidates[0].Percentage)
	assert.Equal(suite.T(), 33.33, res.Candidates[1].Percentage)
}

func (suite *ResultsServiceTestSuite) TestForPosition_NoVotes() {
	pos := &models.Position{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockPositions.EXPECT().GetByID(pos.ID).Return(pos, nil)
	suite.mockCands.EXPECT().GetByPositionID(pos.ID, false).Return([]models.Candidate{candidate(pos.ID, "Ann", 0)}, nil)

	res, err := suite.resultsService.ForPosition(pos.ID, true)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, res.Candidates[0].Percentage)
}

func (suite *ResultsServiceTestSuite) TestForPosition_NotFound() {
	id := uuid.New()
	suite.mockPositions.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.resultsService.ForPosition(id, false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrPositionNotFound)
}

func (suite *ResultsServiceTestSuite) TestForCandidate() {
	posID := uuid.New()
	winner := candidate(posID, "Ann", 3)
	suite.mockCands.EXPECT().GetByID(winner.ID).Return(&winner, nil)
	suite.mockCands.EXPECT().GetByPositionID(posID, false).Return([]models.Candidate{winner, candidate(posID, "Ben", 1)}, nil)

	res, err := suite.resultsService.ForCandidate(winner.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 75.0, res.Percentage)
}

func (suite *ResultsServiceTestSuite) TestForElection() {
	election := &models.Election{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Guild 2026", Status: models.ElectionStatusCompleted}
	p1 := models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "President"}
	p2 := models.Position{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Treasurer"}
	suite.mockElections.EXPECT().GetByID(election.ID).Return(election, nil)
	suite.mockPositions.EXPECT().GetByElectionID(election.ID).Return([]models.Position{p1, p2}, nil)
	suite.mockCands.EXPECT().GetByPositionID(p1.ID, true).Return([]models.Candidate{candidate(p1.ID, "Ann", 4)}, nil)
	suite.mockCands.EXPECT().GetByPositionID(p2.ID, true).Return(nil, nil)

	res, err := suite.resultsService.ForElection(election.ID)

	require.NoError(suite.T(), err)
	require.Len(suite.T(), res.Positions, 2)
	assert.Equal(suite.T(), "President", res.Positions[0].PositionName)
	assert.Equal(suite.T(), 100.0, res.Positions[0].Candidates[0].Percentage)
	assert.Empty(suite.T(), res.Positions[1].Candidates)
}

func TestResultsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResultsServiceTestSuite))
}
