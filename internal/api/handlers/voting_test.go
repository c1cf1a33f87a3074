package handlers_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"voteverse-backend/internal/api/handlers"
	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/testutils"
	"voteverse-backend/internal/voting"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VotingHandlerTestSuite defines the test suite for VotingHandler
type VotingHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	sessionService *mocks.MockVotingSessionServiceInterface
	voterID        uuid.UUID
	http           *testutils.HTTPTestSuite
}

func (suite *VotingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.sessionService = mocks.NewMockVotingSessionServiceInterface(suite.ctrl)
	suite.voterID = uuid.New()

	handler := handlers.NewVotingHandler(suite.sessionService)
	suite.http = testutils.SetupHTTPTest(asVoter(suite.voterID, models.RoleVoter))
	suite.http.Router.POST("/voting/session", handler.StartSession)
	suite.http.Router.GET("/voting/session", handler.GetSession)
	suite.http.Router.DELETE("/voting/session", handler.CancelSession)
	suite.http.Router.POST("/voting/session/select", handler.Select)
	suite.http.Router.POST("/voting/session/next", handler.Next)
	suite.http.Router.POST("/voting/session/confirm", handler.Confirm)
	suite.http.Router.POST("/voting/session/verify", handler.Verify)
	suite.http.Router.POST("/voting/session/command", handler.Command)
}

func (suite *VotingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VotingHandlerTestSuite) view(state voting.State) *service.SessionView {
	return &service.SessionView{
		Snapshot: voting.Snapshot{VoterID: suite.voterID, State: state, PositionCount: 2, AttemptsRemaining: 3},
	}
}

func (suite *VotingHandlerTestSuite) TestStartSession_PassesLanguage() {
	suite.sessionService.EXPECT().Start(suite.voterID, "fr").Return(suite.view(voting.StateSelecting), nil)

	rec := suite.http.MakeRequestWithHeaders(http.MethodPost, "/voting/session", nil, map[string]string{"Accept-Language": "fr"})

	var got service.SessionView
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &got)
	suite.Equal(voting.StateSelecting, got.State)
}

func (suite *VotingHandlerTestSuite) TestStartSession_EmptyBallot() {
	suite.sessionService.EXPECT().Start(suite.voterID, "").Return(nil, apperrors.ErrEmptyBallot)

	rec := suite.http.MakeRequest(http.MethodPost, "/voting/session", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "ballot has no positions")
}

func (suite *VotingHandlerTestSuite) TestGetSession_NotStarted() {
	suite.sessionService.EXPECT().Get(suite.voterID, "").Return(nil, apperrors.ErrSessionNotFound)

	rec := suite.http.MakeRequest(http.MethodGet, "/voting/session", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "voting session not found")
}

func (suite *VotingHandlerTestSuite) TestSelect() {
	index := 1
	suite.sessionService.EXPECT().
		Select(suite.voterID, "", gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ string, req *service.SelectRequest) (*service.SessionView, error) {
			suite.Require().NotNil(req.CandidateIndex)
			suite.Equal(index, *req.CandidateIndex)
			return suite.view(voting.StateSelecting), nil
		})

	rec := suite.http.MakeRequest(http.MethodPost, "/voting/session/select", service.SelectRequest{CandidateIndex: &index})

	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, nil)
}

func (suite *VotingHandlerTestSuite) TestNext_WithoutSelection() {
	suite.sessionService.EXPECT().Next(suite.voterID, "").Return(nil, apperrors.ErrSelectionRequired)

	rec := suite.http.MakeRequest(http.MethodPost, "/voting/session/next", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "must be selected")
}

func (suite *VotingHandlerTestSuite) TestConfirm_WrongState() {
	suite.sessionService.EXPECT().Confirm(suite.voterID, "", &service.ConfirmRequest{Confirmed: true}).
		Return(nil, apperrors.ErrInvalidTransition)

	rec := suite.http.MakeRequest(http.MethodPost, "/voting/session/confirm", service.ConfirmRequest{Confirmed: true})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusConflict, "invalid voting session transition")
}

func (suite *VotingHandlerTestSuite) TestVerify_UploadsRecording() {
	recording := []byte("RIFF....WAVEfmt ")
	submitted := suite.view(voting.StateSubmitted)
	submitted.Receipts = []service.VoteReceipt{{VoteHash: "ab12"}}
	suite.sessionService.EXPECT().
		Verify(gomock.Any(), suite.voterID, "", gomock.Any(), int64(len(recording)), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, r io.Reader, _ int64, _ service.VoteMeta) (*service.SessionView, error) {
			body, err := io.ReadAll(r)
			suite.Require().NoError(err)
			suite.Equal(recording, body)
			return submitted, nil
		})

	rec := suite.http.MakeMultipartRequest(http.MethodPost, "/voting/session/verify", "audio", "attempt.wav", recording)

	var got service.SessionView
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Equal(voting.StateSubmitted, got.State)
	suite.Len(got.Receipts, 1)
}

func (suite *VotingHandlerTestSuite) TestVerify_MissingAudio() {
	rec := suite.http.MakeMultipartRequest(http.MethodPost, "/voting/session/verify", "file", "attempt.wav", []byte("x"))

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "missing audio file")
}

func (suite *VotingHandlerTestSuite) TestVerify_Exhausted() {
	suite.sessionService.EXPECT().
		Verify(gomock.Any(), suite.voterID, "", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrVerificationExhausted)

	rec := suite.http.MakeMultipartRequest(http.MethodPost, "/voting/session/verify", "audio", "attempt.wav", []byte("RIFF"))

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusTooManyRequests, "maximum verification attempts")
}

func (suite *VotingHandlerTestSuite) TestCommand() {
	suite.sessionService.EXPECT().Command(suite.voterID, "", "candidate two").Return(suite.view(voting.StateSelecting), nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/voting/session/command", map[string]string{"utterance": "candidate two"})

	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, nil)
}

func (suite *VotingHandlerTestSuite) TestCommand_RequiresUtterance() {
	rec := suite.http.MakeRequest(http.MethodPost, "/voting/session/command", map[string]string{})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "invalid request body")
}

func (suite *VotingHandlerTestSuite) TestCancelSession() {
	suite.sessionService.EXPECT().Cancel(suite.voterID).Return(nil)

	rec := suite.http.MakeRequest(http.MethodDelete, "/voting/session", nil)

	suite.Equal(http.StatusNoContent, rec.Code)
}

func TestVotingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VotingHandlerTestSuite))
}
