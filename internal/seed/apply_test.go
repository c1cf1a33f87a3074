//go:build integration
// +build integration

package seed

import (
	"os"
	"testing"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

func TestApply(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		existing := testutils.NewVoterFactory().Create()
		require.NoError(t, s.DB.Create(existing).Error)

		f := &File{
			Voters: []VoterData{
				{RegNo: "S100", FirstName: "Amina", LastName: "Okello", Email: "amina@uni.test", College: "Engineering"},
			},
			Elections: []ElectionData{{
				Name:   "Guild 2026",
				Status: "active",
				Positions: []PositionData{{
					Name:  "President",
					Level: "university",
					Candidates: []CandidateData{
						{RegNo: "S100", Approved: true},
						{RegNo: existing.RegNo, BallotOrder: 1},
					},
				}},
			}},
		}

		report, err := Apply(s.DB, f)
		require.NoError(t, err)
		assert.Equal(t, Report{Voters: 1, Elections: 1, Positions: 1, Candidates: 2}, *report)

		var candidates []models.Candidate
		require.NoError(t, s.DB.Order("ballot_order").Find(&candidates).Error)
		require.Len(t, candidates, 2)
		assert.True(t, candidates[0].IsApproved)
		assert.NotNil(t, candidates[0].ApprovedAt)
		assert.False(t, candidates[1].IsApproved)

		again, err := Apply(s.DB, f)
		require.NoError(t, err)
		assert.Equal(t, Report{}, *again)
	})
}

func TestApplyUnknownCandidateRollsBack(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		s.CleanTestDB()
		f := &File{
			Voters: []VoterData{{RegNo: "S200", FirstName: "Brian", LastName: "Mugisha", Email: "brian@uni.test"}},
			Elections: []ElectionData{{
				Name: "Guild 2027",
				Positions: []PositionData{{
					Name:       "Treasurer",
					Candidates: []CandidateData{{RegNo: "S999"}},
				}},
			}},
		}

		_, err := Apply(s.DB, f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "candidate S999")

		var voters int64
		require.NoError(t, s.DB.Model(&models.Voter{}).Count(&voters).Error)
		assert.Zero(t, voters)
	})
}
