package repository

import (
	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteRepository handles database operations for votes
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// CastVotes stores votes in a single transaction. Each chosen candidate's
// vote_count is incremented by exactly one. With markVoted the voter's status
// becomes Voted in the same transaction.
func (r *VoteRepository) CastVotes(voterID uuid.UUID, votes []models.Vote, markVoted bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range votes {
			if err := tx.Omit("Position", "Candidate").Create(&votes[i]).Error; err != nil {
				return err
			}
			result := tx.Model(&models.Candidate{}).
				Where("id = ?", votes[i].CandidateID).
				UpdateColumn("vote_count", gorm.Expr("vote_count + ?", 1))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		if markVoted {
			return tx.Model(&models.Voter{}).
				Where("id = ?", voterID).
				Update("voting_status", models.VotingStatusVoted).Error
		}
		return nil
	})
}

// ExistsForVoterAndPosition reports whether the voter already voted for the position
func (r *VoteRepository) ExistsForVoterAndPosition(voterID, positionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("voter_id = ? AND position_id = ?", voterID, positionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByHash retrieves a vote by its receipt hash
func (r *VoteRepository) GetByHash(hash string) (*models.Vote, error) {
	var vote models.Vote
	err := r.db.Preload("Position").Preload("Candidate.Voter").First(&vote, "vote_hash = ?", hash).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetByVoterID retrieves the voting history of a voter
func (r *VoteRepository) GetByVoterID(voterID uuid.UUID) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Preload("Position").Preload("Candidate.Voter").
		Where("voter_id = ?", voterID).
		Order("cast_at ASC").
		Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

// CountByPosition counts the votes cast for a position
func (r *VoteRepository) CountByPosition(positionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).Where("position_id = ?", positionID).Count(&count).Error
	return count, err
}
