package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"voteverse-backend/internal/api/handlers"
	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/storage"
	"voteverse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CandidateHandlerTestSuite defines the test suite for CandidateHandler
type CandidateHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	candidateService *mocks.MockCandidateServiceInterface
	http             *testutils.HTTPTestSuite
	factories        *testutils.FactorySet
}

func (suite *CandidateHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.candidateService = mocks.NewMockCandidateServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	handler := handlers.NewCandidateHandler(suite.candidateService)
	suite.http = testutils.SetupHTTPTest(asVoter(uuid.New(), models.RoleAdmin))
	suite.http.Router.GET("/candidates/position/:positionId", handler.ListCandidatesByPosition)
	suite.http.Router.GET("/candidates/:id", handler.GetCandidate)
	suite.http.Router.GET("/candidates/:id/image", handler.GetCandidateImage)
	suite.http.Router.PUT("/candidates/:id/image", handler.UploadCandidateImage)
	suite.http.Router.PUT("/candidates/:id/status", handler.SetCandidateStatus)
	suite.http.Router.POST("/candidates/:id/approve", handler.ApproveCandidate)
	suite.http.Router.DELETE("/candidates/:id", handler.DeleteCandidate)
}

func (suite *CandidateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CandidateHandlerTestSuite) TestListCandidatesByPosition_OnBallot() {
	positionID := uuid.New()
	candidates := []models.Candidate{*suite.factories.Candidate.Create(uuid.New(), positionID)}
	suite.candidateService.EXPECT().GetByPosition(positionID, true).Return(candidates, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/candidates/position/"+positionID.String()+"?on_ballot=true", nil)

	var got []models.Candidate
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.Len(got, 1)
	suite.True(got[0].OnBallot())
}

func (suite *CandidateHandlerTestSuite) TestListCandidatesByPosition_DefaultsToAll() {
	positionID := uuid.New()
	suite.candidateService.EXPECT().GetByPosition(positionID, false).Return([]models.Candidate{}, nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/candidates/position/"+positionID.String(), nil)

	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, nil)
}

func (suite *CandidateHandlerTestSuite) TestApproveCandidate() {
	candidate := suite.factories.Candidate.Create(uuid.New(), uuid.New())
	suite.candidateService.EXPECT().Approve(candidate.ID).Return(candidate, nil)

	rec := suite.http.MakeRequest(http.MethodPost, "/candidates/"+candidate.ID.String()+"/approve", nil)

	var got models.Candidate
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.True(got.IsApproved)
}

func (suite *CandidateHandlerTestSuite) TestSetCandidateStatus() {
	candidate := suite.factories.Candidate.Create(uuid.New(), uuid.New())
	candidate.IsActive = false
	suite.candidateService.EXPECT().SetActive(candidate.ID, false).Return(candidate, nil)

	rec := suite.http.MakeRequest(http.MethodPut, "/candidates/"+candidate.ID.String()+"/status", map[string]bool{"is_active": false})

	var got models.Candidate
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &got)
	suite.False(got.IsActive)
}

func (suite *CandidateHandlerTestSuite) TestSetCandidateStatus_RequiresFlag() {
	rec := suite.http.MakeRequest(http.MethodPut, "/candidates/"+uuid.New().String()+"/status", map[string]string{})

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "invalid request body")
}

func (suite *CandidateHandlerTestSuite) TestUploadCandidateImage() {
	candidate := suite.factories.Candidate.Create(uuid.New(), uuid.New())
	image := []byte("\x89PNG\r\n\x1a\n")
	suite.candidateService.EXPECT().
		UploadImage(gomock.Any(), candidate.ID, gomock.Any(), int64(len(image))).
		Return(candidate, nil)

	rec := suite.http.MakeMultipartRequest(http.MethodPut, "/candidates/"+candidate.ID.String()+"/image", "image", "portrait.png", image)

	testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, nil)
}

func (suite *CandidateHandlerTestSuite) TestGetCandidateImage() {
	id := uuid.New()
	info := storage.Info{Key: "candidates/" + id.String(), Size: 4, ContentType: "image/png", ETag: `"abc"`}
	suite.candidateService.EXPECT().
		OpenImage(gomock.Any(), id).
		Return(info, io.NopCloser(strings.NewReader("\x89PNG")), nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/candidates/"+id.String()+"/image", nil)

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("image/png", rec.Header().Get("Content-Type"))
	suite.Equal(`"abc"`, rec.Header().Get("ETag"))
	suite.Equal("\x89PNG", rec.Body.String())
}

func (suite *CandidateHandlerTestSuite) TestGetCandidateImage_NoImage() {
	id := uuid.New()
	suite.candidateService.EXPECT().OpenImage(gomock.Any(), id).Return(storage.Info{}, nil, apperrors.ErrBlobNotFound)

	rec := suite.http.MakeRequest(http.MethodGet, "/candidates/"+id.String()+"/image", nil)

	testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "blob not found")
}

func (suite *CandidateHandlerTestSuite) TestDeleteCandidate_HasVotes() {
	id := uuid.New()
	suite.candidateService.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrInvalidStatusTransition)

	rec := suite.http.MakeRequest(http.MethodDelete, "/candidates/"+id.String(), nil)

	suite.Equal(http.StatusConflict, rec.Code)
}

func TestCandidateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CandidateHandlerTestSuite))
}
