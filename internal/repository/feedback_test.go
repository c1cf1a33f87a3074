//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// FeedbackRepositoryTestSuite tests feedback, voice sample and verification attempt storage
type FeedbackRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	voters        *VoterRepository
	feedback      *FeedbackRepository
	samples       *VoiceSampleRepository
	attempts      *VerificationAttemptRepository
}

func (suite *FeedbackRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.factories = testutils.NewFactorySet()
	suite.voters = NewVoterRepository(db)
	suite.feedback = NewFeedbackRepository(db)
	suite.samples = NewVoiceSampleRepository(db)
	suite.attempts = NewVerificationAttemptRepository(db)
}

func (suite *FeedbackRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *FeedbackRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *FeedbackRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *FeedbackRepositoryTestSuite) newVoter() *models.Voter {
	voter := suite.factories.Voter.Create()
	suite.Require().NoError(suite.voters.Create(voter))
	return voter
}

func (suite *FeedbackRepositoryTestSuite) TestListFilters() {
	alice, bob := suite.newVoter(), suite.newVoter()
	entries := []*models.Feedback{
		{VoterID: alice.ID, Comment: "Quick", Rating: 5},
		{VoterID: alice.ID, Comment: "Slow login", Rating: 2, IsAnonymous: true},
		{VoterID: bob.ID, Comment: "Fine", Rating: 5},
	}
	for _, f := range entries {
		suite.Require().NoError(suite.feedback.Create(f))
	}

	items, total, err := suite.feedback.List(FeedbackFilter{VoterID: &alice.ID}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(items, 2)
	suite.NotNil(items[0].Voter)

	items, total, err = suite.feedback.List(FeedbackFilter{Rating: 5}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)

	anonymous := true
	items, total, err = suite.feedback.List(FeedbackFilter{Anonymous: &anonymous}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Slow login", items[0].Comment)
}

func (suite *FeedbackRepositoryTestSuite) TestVoiceSampleSaveReplaces() {
	voter := suite.newVoter()
	suite.Require().NoError(suite.samples.Save(&models.VoiceSample{VoterID: voter.ID, ObjectKey: "voice/a.wav", SizeBytes: 10}))

	err := suite.samples.Save(&models.VoiceSample{VoterID: voter.ID, ObjectKey: "voice/b.wav", SizeBytes: 20})
	suite.NoError(err)

	sample, err := suite.samples.GetByVoterID(voter.ID)
	suite.NoError(err)
	suite.Equal("voice/b.wav", sample.ObjectKey)
	suite.Equal(int64(20), sample.SizeBytes)

	suite.NoError(suite.samples.DeleteByVoterID(voter.ID))
	_, err = suite.samples.GetByVoterID(voter.ID)
	suite.Error(err)
}

func (suite *FeedbackRepositoryTestSuite) TestVerificationAttemptWindow() {
	voter := suite.newVoter()
	now := time.Now()
	record := func(success bool, at time.Time) {
		suite.Require().NoError(suite.attempts.Create(&models.VerificationAttempt{VoterID: voter.ID, Success: success, AttemptedAt: at}))
	}

	last, err := suite.attempts.LastSuccessAt(voter.ID)
	suite.NoError(err)
	suite.Nil(last)

	record(false, now.Add(-3*time.Hour))
	record(true, now.Add(-2*time.Hour))
	record(false, now.Add(-time.Hour))
	record(false, now.Add(-time.Minute))

	last, err = suite.attempts.LastSuccessAt(voter.ID)
	suite.NoError(err)
	suite.Require().NotNil(last)
	suite.WithinDuration(now.Add(-2*time.Hour), *last, time.Second)

	failures, err := suite.attempts.CountFailuresSince(voter.ID, *last)
	suite.NoError(err)
	suite.Equal(int64(2), failures)

	failures, err = suite.attempts.CountFailuresSince(uuid.New(), now.Add(-24*time.Hour))
	suite.NoError(err)
	suite.Zero(failures)
}

func TestFeedbackRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackRepositoryTestSuite))
}
