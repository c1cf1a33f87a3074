//go:build integration
// +build integration

package repository

import (
	"strings"
	"testing"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// VoterRepositoryTestSuite tests the VoterRepository
type VoterRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *VoterRepository
	factories     *testutils.FactorySet
}

func (suite *VoterRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVoterRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *VoterRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *VoterRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *VoterRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *VoterRepositoryTestSuite) TestCreate() {
	voter := suite.factories.Voter.Create()

	err := suite.repo.Create(voter)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, voter.ID)
	suite.NotZero(voter.CreatedAt)
}

func (suite *VoterRepositoryTestSuite) TestCreateDuplicateRegNo() {
	first := suite.factories.Voter.Create()
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.Voter.Create()
	second.RegNo = first.RegNo

	err := suite.repo.Create(second)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *VoterRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	voter := suite.factories.Voter.Create()
	suite.Require().NoError(suite.repo.Create(voter))

	found, err := suite.repo.GetByEmail(strings.ToUpper(voter.Email))

	suite.NoError(err)
	suite.Equal(voter.ID, found.ID)
}

func (suite *VoterRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

func (suite *VoterRepositoryTestSuite) TestListFilters() {
	engineering := suite.factories.Voter.WithCollege("Engineering")
	law := suite.factories.Voter.WithCollege("Law")
	voted := suite.factories.Voter.WithCollege("Engineering")
	voted.VotingStatus = models.VotingStatusVoted
	for _, v := range []*models.Voter{engineering, law, voted} {
		suite.Require().NoError(suite.repo.Create(v))
	}

	voters, total, err := suite.repo.List(VoterFilter{College: "Engineering"}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(voters, 2)

	voters, total, err = suite.repo.List(VoterFilter{College: "Engineering", VotingStatus: models.VotingStatusNotVoted}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(engineering.ID, voters[0].ID)

	voters, total, err = suite.repo.List(VoterFilter{Query: strings.ToLower(law.RegNo)}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(law.ID, voters[0].ID)
}

func (suite *VoterRepositoryTestSuite) TestUpdateFieldsMissingVoter() {
	err := suite.repo.UpdateFields(uuid.New(), map[string]interface{}{"phone": "+256700000000"})

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *VoterRepositoryTestSuite) TestUpsertByRegNo() {
	voter := suite.factories.Voter.Create()

	created, err := suite.repo.UpsertByRegNo(voter)
	suite.NoError(err)
	suite.True(created)

	refreshed := suite.factories.Voter.Create()
	refreshed.RegNo = voter.RegNo
	refreshed.DormBlock = "Block C"
	refreshed.ID = uuid.Nil

	created, err = suite.repo.UpsertByRegNo(refreshed)
	suite.NoError(err)
	suite.False(created)
	suite.Equal(voter.ID, refreshed.ID)

	stored, err := suite.repo.GetByRegNo(voter.RegNo)
	suite.NoError(err)
	suite.Equal("Block C", stored.DormBlock)
	suite.Equal(refreshed.Email, stored.Email)
}

func TestVoterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VoterRepositoryTestSuite))
}
