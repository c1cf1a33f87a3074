package repository

import (
	"time"

	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// VoterFilter narrows voter listings. Zero values are ignored.
type VoterFilter struct {
	College      string
	Programme    string
	DormBlock    string
	YearOfStudy  int
	VotingStatus models.VotingStatus
	Query        string
}

// FeedbackFilter narrows feedback listings. Nil/zero values are ignored.
type FeedbackFilter struct {
	VoterID   *uuid.UUID
	Rating    int
	Anonymous *bool
}

// VoterRepositoryInterface defines the interface for voter repository operations
type VoterRepositoryInterface interface {
	Create(voter *models.Voter) error
	GetByID(id uuid.UUID) (*models.Voter, error)
	GetByRegNo(regNo string) (*models.Voter, error)
	GetByEmail(email string) (*models.Voter, error)
	GetByPhone(phone string) (*models.Voter, error)
	List(filter VoterFilter, limit, offset int) ([]models.Voter, int64, error)
	Update(voter *models.Voter) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	UpsertByRegNo(voter *models.Voter) (bool, error)
}

// ElectionRepositoryInterface defines the interface for election repository operations
type ElectionRepositoryInterface interface {
	Create(election *models.Election) error
	GetByID(id uuid.UUID) (*models.Election, error)
	GetByName(name string) (*models.Election, error)
	GetActive() (*models.Election, error)
	GetAll(limit, offset int) ([]models.Election, int64, error)
	Update(election *models.Election) error
	Delete(id uuid.UUID) error
}

// PositionRepositoryInterface defines the interface for position repository operations
type PositionRepositoryInterface interface {
	Create(position *models.Position) error
	GetByID(id uuid.UUID) (*models.Position, error)
	GetByName(electionID uuid.UUID, name string) (*models.Position, error)
	GetByElectionID(electionID uuid.UUID) ([]models.Position, error)
	GetByLevel(level models.PositionLevel, limit, offset int) ([]models.Position, int64, error)
	GetAll(limit, offset int) ([]models.Position, int64, error)
	Update(position *models.Position) error
	Delete(id uuid.UUID) error
}

// CandidateRepositoryInterface defines the interface for candidate repository operations
type CandidateRepositoryInterface interface {
	Create(candidate *models.Candidate) error
	GetByID(id uuid.UUID) (*models.Candidate, error)
	GetByVoterAndPosition(voterID, positionID uuid.UUID) (*models.Candidate, error)
	GetByPositionID(positionID uuid.UUID, onBallotOnly bool) ([]models.Candidate, error)
	GetApproved(limit, offset int) ([]models.Candidate, int64, error)
	GetActive(limit, offset int) ([]models.Candidate, int64, error)
	GetAll(limit, offset int) ([]models.Candidate, int64, error)
	Update(candidate *models.Candidate) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
}

// VoteRepositoryInterface defines the interface for vote repository operations
type VoteRepositoryInterface interface {
	CastVotes(voterID uuid.UUID, votes []models.Vote, markVoted bool) error
	ExistsForVoterAndPosition(voterID, positionID uuid.UUID) (bool, error)
	GetByHash(hash string) (*models.Vote, error)
	GetByVoterID(voterID uuid.UUID) ([]models.Vote, error)
	CountByPosition(positionID uuid.UUID) (int64, error)
}

// FeedbackRepositoryInterface defines the interface for feedback repository operations
type FeedbackRepositoryInterface interface {
	Create(feedback *models.Feedback) error
	GetByID(id uuid.UUID) (*models.Feedback, error)
	List(filter FeedbackFilter, limit, offset int) ([]models.Feedback, int64, error)
	Delete(id uuid.UUID) error
}

// VoiceSampleRepositoryInterface defines the interface for voice sample metadata
type VoiceSampleRepositoryInterface interface {
	Save(sample *models.VoiceSample) error
	GetByVoterID(voterID uuid.UUID) (*models.VoiceSample, error)
	DeleteByVoterID(voterID uuid.UUID) error
}

// VerificationAttemptRepositoryInterface defines the interface for voice verification attempts
type VerificationAttemptRepositoryInterface interface {
	Create(attempt *models.VerificationAttempt) error
	LastSuccessAt(voterID uuid.UUID) (*time.Time, error)
	CountFailuresSince(voterID uuid.UUID, since time.Time) (int64, error)
}
