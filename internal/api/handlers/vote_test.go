package handlers_test

import (
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

// VoteHandlerTestSuite defines the test suite for VoteHandler
type VoteHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	voteService *mocks.MockVoteServiceInterface
	handler     *handlers.VoteHandler
	voterID     uuid.UUID
	http        *testutils.HTTPTestSuite
}

func (suite *VoteHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.voteService = mocks.NewMockVoteServiceInterface(suite.ctrl)
	suite.handler = handlers.NewVoteHandler(suite.voteService)
	suite.voterID = uuid.New()

	suite.http = testutils.SetupHTTPTest(asVoter(suite.voterID, models.RoleVoter))
	suite.http.Router.POST("/votes", suite.handler.CastVote)
	suite.http.Router.GET("/votes/me", suite.handler.MyVotes)
	suite.http.Router.GET("/votes/verify/:hash", suite.handler.VerifyVote)
}

func (suite *VoteHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoteHandlerTestSuite) TestCastVote() {
	req := service.CastVoteRequest{PositionID: uuid.New(), CandidateID: uuid.New()}
	receipt := &service.VoteReceipt{VoteID: uuid.New(), PositionID: req.PositionID, CandidateID: req.CandidateID, VoteHash: "ab12"}
	suite.voteService.EXPECT().
		CastVote(suite.voterID, &req, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ *service.CastVoteRequest, meta service.VoteMeta) (*service.VoteReceipt, error) {
			suite.Equal("ballot-kiosk/1.0", meta.DeviceInfo)
			suite.NotEmpty(meta.IPAddress)
			return receipt, nil
		})

	rec := suite.http.MakeRequestWithHeaders(http.MethodPost, "/votes", req, map[string]string{"User-Agent": "ballot-kiosk/1.0"})

	var got service.VoteReceipt
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &got)
	suite.Equal("ab12", got.VoteHash)
}

func (suite *VoteHandlerTestSuite) TestCastVote_ErrorMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "already voted", err: apperrors.ErrAlreadyVoted, status: http.StatusConflict},
		{name: "election closed", err: apperrors.ErrElectionNotActive, status: http.StatusConflict},
		{name: "candidate off ballot", err: apperrors.ErrCandidateNotOnBallot, status: http.StatusBadRequest},
		{name: "unknown position", err: apperrors.ErrPositionNotFound, status: http.StatusNotFound},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.voteService.EXPECT().CastVote(suite.voterID, gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := suite.http.MakeRequest(http.MethodPost, "/votes", service.CastVoteRequest{PositionID: uuid.New(), CandidateID: uuid.New()})

			testutils.AssertErrorResponse(suite.T(), rec, tc.status, tc.err.Error())
		})
	}
}

func (suite *VoteHandlerTestSuite) TestCastVote_Unauthenticated() {
	anonymous := testutils.SetupHTTPTest()
	anonymous.Router.POST("/votes", suite.handler.CastVote)

	rec := anonymous.MakeRequest(http.MethodPost, "/votes", service.CastVoteRequest{PositionID: uuid.New(), CandidateID: uuid.New()})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "authorization token required")
}

func (suite *VoteHandlerTestSuite) TestVerifyVote() {
	suite.voteService.EXPECT().VerifyHash("ab12").Return(&service.VoteVerification{Valid: true, PositionName: "Guild President"}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/votes/verify/ab12", nil)

	var got service.VoteVerification
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.True(got.Valid)
}

func (suite *VoteHandlerTestSuite) TestMyVotes() {
	suite.voteService.EXPECT().GetHistory(suite.voterID).Return([]service.VoteRecord{{PositionName: "Guild President"}}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/votes/me", nil)

	var got []service.VoteRecord
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Len(got, 1)
}

func TestVoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoteHandlerTestSuite))
}
