package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"voteverse-backend/internal/api/handlers"
	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/testutils"
	"voteverse-backend/internal/voice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VoiceHandlerTestSuite defines the test suite for VoiceHandler
type VoiceHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	sampleService       *mocks.MockVoiceSampleServiceInterface
	verificationService *mocks.MockVerificationServiceInterface
	metrics             *metrics.Metrics
	voterID             uuid.UUID
	http                *testutils.HTTPTestSuite
}

func (suite *VoiceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.sampleService = mocks.NewMockVoiceSampleServiceInterface(suite.ctrl)
	suite.verificationService = mocks.NewMockVerificationServiceInterface(suite.ctrl)
	suite.metrics = metrics.New()
	suite.voterID = uuid.New()

	handler := handlers.NewVoiceHandler(suite.sampleService, suite.verificationService, voice.NewDispatcher(""), suite.metrics)
	suite.http = testutils.SetupHTTPTest(asVoter(suite.voterID, models.RoleVoter))
	suite.http.Router.POST("/voice/samples", handler.UploadSample)
	suite.http.Router.GET("/voice/samples/status", handler.SampleStatus)
	suite.http.Router.DELETE("/voice/samples", handler.DeleteSample)
	suite.http.Router.POST("/voice/verify", handler.Verify)
	suite.http.Router.POST("/voice/commands", handler.Commands)
}

func (suite *VoiceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VoiceHandlerTestSuite) TestUploadSample() {
	sample := []byte("RIFF\x24\x00\x00\x00WAVEfmt ")
	suite.sampleService.EXPECT().
		Upload(gomock.Any(), suite.voterID, gomock.Any(), int64(len(sample))).
		Return(&service.VoiceSampleStatus{HasSample: true, SizeBytes: int64(len(sample))}, nil)

	rec := suite.http.MakeMultipartRequest(http.MethodPost, "/voice/samples", "audio", "sample.wav", sample)

	var got service.VoiceSampleStatus
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.True(got.HasSample)
}

func (suite *VoiceHandlerTestSuite) TestUploadSample_Rejections() {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "too large", err: apperrors.ErrAudioTooLarge, status: http.StatusRequestEntityTooLarge},
		{name: "not a wav", err: apperrors.ErrInvalidAudio, status: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.sampleService.EXPECT().Upload(gomock.Any(), suite.voterID, gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := suite.http.MakeMultipartRequest(http.MethodPost, "/voice/samples", "audio", "sample.mp3", []byte("ID3"))

			testutils.AssertErrorResponse(suite.T(), rec, tc.status, tc.err.Error())
		})
	}
}

func (suite *VoiceHandlerTestSuite) TestSampleStatus() {
	suite.sampleService.EXPECT().Status(suite.voterID).Return(&service.VoiceSampleStatus{}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/voice/samples/status", nil)

	var got service.VoiceSampleStatus
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.False(got.HasSample)
}

func (suite *VoiceHandlerTestSuite) TestDeleteSample_NotFound() {
	suite.sampleService.EXPECT().Delete(gomock.Any(), suite.voterID).Return(apperrors.ErrVoiceSampleNotFound)

	rec := suite.http.MakeRequest(http.MethodDelete, "/voice/samples", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "voice sample not found")
}

func (suite *VoiceHandlerTestSuite) TestVerify() {
	suite.verificationService.EXPECT().
		Verify(gomock.Any(), suite.voterID, gomock.Any(), int64(4), "sw").
		DoAndReturn(func(_ context.Context, _ uuid.UUID, r io.Reader, _ int64, _ string) (*service.VerificationResult, error) {
			body, _ := io.ReadAll(r)
			suite.Equal("RIFF", string(body))
			return &service.VerificationResult{Success: false, Message: "Sauti haikulingana", AttemptsRemaining: 2}, nil
		})

	rec := suite.http.MakeMultipartRequestWithHeaders(http.MethodPost, "/voice/verify", "audio", "attempt.wav", []byte("RIFF"),
		map[string]string{"Accept-Language": "sw"})

	var got service.VerificationResult
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.False(got.Success)
	suite.Equal(2, got.AttemptsRemaining)
}

func (suite *VoiceHandlerTestSuite) TestVerify_VerifierDown() {
	suite.verificationService.EXPECT().
		Verify(gomock.Any(), suite.voterID, gomock.Any(), gomock.Any(), "").
		Return(nil, apperrors.ErrVerifierUnavailable)

	rec := suite.http.MakeMultipartRequest(http.MethodPost, "/voice/verify", "audio", "attempt.wav", []byte("RIFF"))

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusServiceUnavailable, "voice verifier unavailable")
}

func (suite *VoiceHandlerTestSuite) TestCommands() {
	testCases := []struct {
		name      string
		utterance string
		route     string
		expected  []voice.CommandKind
	}{
		{name: "navigation anywhere", utterance: "Go to results", route: voice.RouteDashboard, expected: []voice.CommandKind{voice.KindNavigate}},
		{name: "candidate on voting page", utterance: "candidate two", route: voice.RouteVoting, expected: []voice.CommandKind{voice.KindSelectCandidate}},
		{name: "candidate ignored elsewhere", utterance: "candidate two", route: voice.RouteFeedback, expected: []voice.CommandKind{}},
		{name: "navigation and vote together", utterance: "yes go to voting", route: voice.RouteVoting, expected: []voice.CommandKind{voice.KindNavigate, voice.KindConfirm}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			rec := suite.http.MakeRequest(http.MethodPost, "/voice/commands", handlers.CommandRequest{Utterance: tc.utterance, Route: tc.route})

			var got handlers.CommandResponse
			testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
			suite.NotNil(got.Commands)
			kinds := make([]voice.CommandKind, 0, len(got.Commands))
			for _, cmd := range got.Commands {
				kinds = append(kinds, cmd.Kind)
			}
			suite.Equal(tc.expected, kinds)
		})
	}
}

func (suite *VoiceHandlerTestSuite) TestCommands_CountsDispatches() {
	suite.http.MakeRequest(http.MethodPost, "/voice/commands", handlers.CommandRequest{Utterance: "go to feedback", Route: voice.RouteResults})

	scrape := httptest.NewRecorder()
	suite.metrics.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	suite.Contains(scrape.Body.String(), `voteverse_voice_commands_total{kind="navigate"} 1`)
}

func TestVoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoiceHandlerTestSuite))
}
