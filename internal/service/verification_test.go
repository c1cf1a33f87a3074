package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/i18n"
	"voteverse-backend/internal/mocks"
	"voteverse-backend/internal/service"
	"voteverse-backend/internal/voice"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type stubVerifier struct {
	result *voice.Result
	err    error
	calls  int
}

func (v *stubVerifier) Verify(_ context.Context, _, _ io.Reader) (*voice.Result, error) {
	v.calls++
	return v.result, v.err
}

// slowVerifier rejects every recording after a pause
type slowVerifier struct {
	delay time.Duration
	calls atomic.Int32
}

func (v *slowVerifier) Verify(_ context.Context, _, _ io.Reader) (*voice.Result, error) {
	v.calls.Add(1)
	time.Sleep(v.delay)
	return &voice.Result{Match: false, Score: 0.1}, nil
}

// memoryAttempts keeps verification attempts in memory
type memoryAttempts struct {
	mu       sync.Mutex
	attempts []models.VerificationAttempt
}

func (m *memoryAttempts) Create(a *models.VerificationAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, *a)
	return nil
}

func (m *memoryAttempts) LastSuccessAt(voterID uuid.UUID) (*time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var last *time.Time
	for i := range m.attempts {
		a := m.attempts[i]
		if a.VoterID == voterID && a.Success && (last == nil || a.AttemptedAt.After(*last)) {
			last = &a.AttemptedAt
		}
	}
	return last, nil
}

func (m *memoryAttempts) CountFailuresSince(voterID uuid.UUID, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, a := range m.attempts {
		if a.VoterID == voterID && !a.Success && !a.AttemptedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memoryAttempts) failures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, a := range m.attempts {
		if !a.Success {
			n++
		}
	}
	return n
}

type VerificationServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockAttempts *mocks.MockVerificationAttemptRepositoryInterface
	mockVoters   *mocks.MockVoterRepositoryInterface
	mockSamples  *mocks.MockVoiceSampleServiceInterface
	verifier     *stubVerifier
	service      *service.VerificationService
	voterID      uuid.UUID
}

func (suite *VerificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAttempts = mocks.NewMockVerificationAttemptRepositoryInterface(suite.ctrl)
	suite.mockVoters = mocks.NewMockVoterRepositoryInterface(suite.ctrl)
	suite.mockSamples = mocks.NewMockVoiceSampleServiceInterface(suite.ctrl)
	suite.verifier = &stubVerifier{}
	suite.service = service.NewVerificationService(
		suite.mockAttempts, suite.mockVoters, suite.mockSamples, suite.verifier,
		i18n.MustNew("en"), nil,
		service.VerificationConfig{MaxAttempts: 3, Window: time.Hour, MaxBytes: 1 << 20},
	)
	suite.voterID = uuid.New()
}

func (suite *VerificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VerificationServiceTestSuite) expectFailures(n int64) {
	suite.mockAttempts.EXPECT().LastSuccessAt(suite.voterID).Return(nil, nil)
	suite.mockAttempts.EXPECT().CountFailuresSince(suite.voterID, gomock.Any()).Return(n, nil)
}

func (suite *VerificationServiceTestSuite) expectSample() {
	suite.mockSamples.EXPECT().Open(gomock.Any(), suite.voterID).Return(io.NopCloser(strings.NewReader("RIFF")), nil)
}

func (suite *VerificationServiceTestSuite) verify() (*service.VerificationResult, error) {
	return suite.service.Verify(context.Background(), suite.voterID, strings.NewReader("RIFFdata"), 8, "en")
}

func (suite *VerificationServiceTestSuite) TestVerify_Match() {
	suite.expectFailures(1)
	suite.expectSample()
	suite.verifier.result = &voice.Result{Match: true, Score: 0.91}
	suite.mockAttempts.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockVoters.EXPECT().UpdateFields(suite.voterID, map[string]interface{}{"voice_verified": true}).Return(nil)

	res, err := suite.verify()

	require.NoError(suite.T(), err)
	assert.True(suite.T(), res.Success)
	assert.Equal(suite.T(), 3, res.AttemptsRemaining)
	assert.Equal(suite.T(), 0.91, res.Score)
}

func (suite *VerificationServiceTestSuite) TestVerify_MismatchCountsDown() {
	suite.expectFailures(0)
	suite.expectSample()
	suite.verifier.result = &voice.Result{Match: false}
	suite.mockAttempts.EXPECT().Create(gomock.Any()).Return(nil)

	res, err := suite.verify()

	require.NoError(suite.T(), err)
	assert.False(suite.T(), res.Success)
	assert.Equal(suite.T(), 2, res.AttemptsRemaining)
	assert.Contains(suite.T(), res.Message, "2 attempts remaining")
}

func (suite *VerificationServiceTestSuite) TestVerify_LastAttemptFails() {
	suite.expectFailures(2)
	suite.expectSample()
	suite.verifier.result = &voice.Result{Match: false}
	suite.mockAttempts.EXPECT().Create(gomock.Any()).Return(nil)

	res, err := suite.verify()

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, res.AttemptsRemaining)
	assert.Contains(suite.T(), res.Message, "start over")
}

func (suite *VerificationServiceTestSuite) TestVerify_AlreadyExhausted() {
	suite.expectFailures(3)

	_, err := suite.verify()

	assert.ErrorIs(suite.T(), err, apperrors.ErrVerificationExhausted)
	assert.Equal(suite.T(), 0, suite.verifier.calls)
}

func (suite *VerificationServiceTestSuite) TestVerify_VerifierOutageDoesNotConsumeAttempt() {
	suite.expectFailures(0)
	suite.expectSample()
	suite.verifier.err = apperrors.ErrVerifierUnavailable

	_, err := suite.verify()

	assert.ErrorIs(suite.T(), err, apperrors.ErrVerifierUnavailable)
}

func (suite *VerificationServiceTestSuite) TestVerify_NoSample() {
	suite.expectFailures(0)
	suite.mockSamples.EXPECT().Open(gomock.Any(), suite.voterID).Return(nil, apperrors.ErrVoiceSampleNotFound)

	_, err := suite.verify()

	assert.ErrorIs(suite.T(), err, apperrors.ErrVoiceSampleNotFound)
}

func (suite *VerificationServiceTestSuite) TestVerify_EmptyRecording() {
	_, err := suite.service.Verify(context.Background(), suite.voterID, strings.NewReader(""), 0, "en")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidAudio)
}

func (suite *VerificationServiceTestSuite) TestVerify_BodyLongerThanLimitIsRejected() {
	body := strings.NewReader(strings.Repeat("x", 1<<20+1))

	_, err := suite.service.Verify(context.Background(), suite.voterID, body, 8, "en")

	assert.ErrorIs(suite.T(), err, apperrors.ErrAudioTooLarge)
	assert.Equal(suite.T(), 0, suite.verifier.calls)
}

func (suite *VerificationServiceTestSuite) TestVerify_ConcurrentAttemptsRespectCeiling() {
	attempts := &memoryAttempts{}
	for i := 0; i < 2; i++ {
		attempts.attempts = append(attempts.attempts, models.VerificationAttempt{
			VoterID:     suite.voterID,
			AttemptedAt: time.Now().UTC().Add(-time.Minute),
		})
	}
	verifier := &slowVerifier{delay: 50 * time.Millisecond}
	suite.mockSamples.EXPECT().Open(gomock.Any(), suite.voterID).
		DoAndReturn(func(context.Context, uuid.UUID) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("RIFF")), nil
		}).AnyTimes()
	svc := service.NewVerificationService(
		attempts, suite.mockVoters, suite.mockSamples, verifier,
		i18n.MustNew("en"), nil,
		service.VerificationConfig{MaxAttempts: 3, Window: time.Hour, MaxBytes: 1 << 20},
	)

	const callers = 3
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Verify(context.Background(), suite.voterID, strings.NewReader("RIFFdata"), 8, "en")
		}(i)
	}
	wg.Wait()

	exhausted := 0
	for _, err := range errs {
		if errors.Is(err, apperrors.ErrVerificationExhausted) {
			exhausted++
		} else {
			require.NoError(suite.T(), err)
		}
	}
	assert.Equal(suite.T(), int32(1), verifier.calls.Load())
	assert.Equal(suite.T(), 3, attempts.failures())
	assert.Equal(suite.T(), callers-1, exhausted)
}

func (suite *VerificationServiceTestSuite) TestFailedAttempts_CountsSinceLastSuccess() {
	last := time.Now().UTC().Add(-10 * time.Minute)
	suite.mockAttempts.EXPECT().LastSuccessAt(suite.voterID).Return(&last, nil)
	suite.mockAttempts.EXPECT().CountFailuresSince(suite.voterID, last).Return(int64(1), nil)

	n, err := suite.service.FailedAttempts(suite.voterID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, n)
}

func (suite *VerificationServiceTestSuite) TestFailedAttempts_CappedAtCeiling() {
	suite.expectFailures(7)

	n, err := suite.service.FailedAttempts(suite.voterID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, n)
}

func (suite *VerificationServiceTestSuite) TestFailedAttempts_RepositoryError() {
	suite.mockAttempts.EXPECT().LastSuccessAt(suite.voterID).Return(nil, errors.New("db down"))

	_, err := suite.service.FailedAttempts(suite.voterID)

	assert.Error(suite.T(), err)
}

func TestVerificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}
