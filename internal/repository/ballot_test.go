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
	"gorm.io/gorm"
)

// BallotRepositoryTestSuite covers elections, positions, candidates and votes together
type BallotRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet

	voters     *VoterRepository
	elections  *ElectionRepository
	positions  *PositionRepository
	candidates *CandidateRepository
	votes      *VoteRepository
}

func (suite *BallotRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.factories = testutils.NewFactorySet()
	suite.voters = NewVoterRepository(db)
	suite.elections = NewElectionRepository(db)
	suite.positions = NewPositionRepository(db)
	suite.candidates = NewCandidateRepository(db)
	suite.votes = NewVoteRepository(db)
}

func (suite *BallotRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *BallotRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *BallotRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedPosition stores an active election with one position and two on-ballot candidates
func (suite *BallotRepositoryTestSuite) seedPosition() (*models.Position, []*models.Candidate) {
	election := suite.factories.Election.Active()
	suite.Require().NoError(suite.elections.Create(election))

	position := suite.factories.Position.Create(election.ID)
	suite.Require().NoError(suite.positions.Create(position))

	var candidates []*models.Candidate
	for i := 0; i < 2; i++ {
		voter := suite.factories.Voter.Create()
		suite.Require().NoError(suite.voters.Create(voter))
		candidate := suite.factories.Candidate.Create(voter.ID, position.ID)
		candidate.BallotOrder = i
		suite.Require().NoError(suite.candidates.Create(candidate))
		candidates = append(candidates, candidate)
	}
	return position, candidates
}

func (suite *BallotRepositoryTestSuite) vote(voterID uuid.UUID, position *models.Position, candidate *models.Candidate) models.Vote {
	return models.Vote{
		VoterID:     voterID,
		PositionID:  position.ID,
		CandidateID: candidate.ID,
		VoteHash:    uuid.NewString(),
		CastAt:      time.Now(),
	}
}

func (suite *BallotRepositoryTestSuite) TestGetActiveElection() {
	draft := suite.factories.Election.Create()
	suite.Require().NoError(suite.elections.Create(draft))

	_, err := suite.elections.GetActive()
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	active := suite.factories.Election.Active()
	suite.Require().NoError(suite.elections.Create(active))

	found, err := suite.elections.GetActive()
	suite.NoError(err)
	suite.Equal(active.ID, found.ID)
}

func (suite *BallotRepositoryTestSuite) TestPositionNameUniquePerElection() {
	election := suite.factories.Election.Create()
	suite.Require().NoError(suite.elections.Create(election))
	position := suite.factories.Position.Create(election.ID)
	suite.Require().NoError(suite.positions.Create(position))

	duplicate := suite.factories.Position.Create(election.ID)
	duplicate.Name = position.Name

	suite.ErrorIs(suite.positions.Create(duplicate), gorm.ErrDuplicatedKey)

	other := suite.factories.Election.Create()
	suite.Require().NoError(suite.elections.Create(other))
	elsewhere := suite.factories.Position.Create(other.ID)
	elsewhere.Name = position.Name
	suite.NoError(suite.positions.Create(elsewhere))
}

func (suite *BallotRepositoryTestSuite) TestGetByLevel() {
	election := suite.factories.Election.Create()
	suite.Require().NoError(suite.elections.Create(election))
	suite.Require().NoError(suite.positions.Create(suite.factories.Position.Create(election.ID)))
	suite.Require().NoError(suite.positions.Create(
		suite.factories.Position.WithLevel(election.ID, models.PositionLevelBlock, "Block A")))

	positions, total, err := suite.positions.GetByLevel(models.PositionLevelBlock, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal("Block A", positions[0].DormBlock)
}

func (suite *BallotRepositoryTestSuite) TestCandidatesOnBallot() {
	position, candidates := suite.seedPosition()
	suite.Require().NoError(suite.candidates.UpdateFields(candidates[1].ID, map[string]interface{}{"is_active": false}))

	all, err := suite.candidates.GetByPositionID(position.ID, false)
	suite.NoError(err)
	suite.Len(all, 2)
	suite.Equal(candidates[0].ID, all[0].ID)
	suite.NotNil(all[0].Voter)

	onBallot, err := suite.candidates.GetByPositionID(position.ID, true)
	suite.NoError(err)
	suite.Len(onBallot, 1)
	suite.Equal(candidates[0].ID, onBallot[0].ID)
}

func (suite *BallotRepositoryTestSuite) TestCastVotes() {
	position, candidates := suite.seedPosition()
	voter := suite.factories.Voter.Create()
	suite.Require().NoError(suite.voters.Create(voter))

	err := suite.votes.CastVotes(voter.ID, []models.Vote{suite.vote(voter.ID, position, candidates[1])}, true)
	suite.NoError(err)

	exists, err := suite.votes.ExistsForVoterAndPosition(voter.ID, position.ID)
	suite.NoError(err)
	suite.True(exists)

	candidate, err := suite.candidates.GetByID(candidates[1].ID)
	suite.NoError(err)
	suite.Equal(int64(1), candidate.VoteCount)

	stored, err := suite.voters.GetByID(voter.ID)
	suite.NoError(err)
	suite.Equal(models.VotingStatusVoted, stored.VotingStatus)

	history, err := suite.votes.GetByVoterID(voter.ID)
	suite.NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(position.Name, history[0].Position.Name)
	suite.NotNil(history[0].Candidate.Voter)
}

func (suite *BallotRepositoryTestSuite) TestCastVotesSecondVoteForPositionRollsBack() {
	position, candidates := suite.seedPosition()
	voter := suite.factories.Voter.Create()
	suite.Require().NoError(suite.voters.Create(voter))
	suite.Require().NoError(suite.votes.CastVotes(voter.ID, []models.Vote{suite.vote(voter.ID, position, candidates[0])}, false))

	err := suite.votes.CastVotes(voter.ID, []models.Vote{suite.vote(voter.ID, position, candidates[1])}, true)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
	loser, err := suite.candidates.GetByID(candidates[1].ID)
	suite.NoError(err)
	suite.Zero(loser.VoteCount)
	stored, err := suite.voters.GetByID(voter.ID)
	suite.NoError(err)
	suite.Equal(models.VotingStatusNotVoted, stored.VotingStatus)

	count, err := suite.votes.CountByPosition(position.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *BallotRepositoryTestSuite) TestGetByHash() {
	position, candidates := suite.seedPosition()
	voter := suite.factories.Voter.Create()
	suite.Require().NoError(suite.voters.Create(voter))
	v := suite.vote(voter.ID, position, candidates[0])
	suite.Require().NoError(suite.votes.CastVotes(voter.ID, []models.Vote{v}, true))

	found, err := suite.votes.GetByHash(v.VoteHash)
	suite.NoError(err)
	suite.Equal(candidates[0].ID, found.CandidateID)

	_, err = suite.votes.GetByHash("unknown")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestBallotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BallotRepositoryTestSuite))
}
