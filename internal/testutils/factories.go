package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
)

var sequence atomic.Int64

func next() int64 {
	return sequence.Add(1)
}

// VoterFactory provides methods to create test Voter data
type VoterFactory struct{}

// NewVoterFactory creates a new VoterFactory
func NewVoterFactory() *VoterFactory {
	return &VoterFactory{}
}

// Create creates a test Voter with unique registration number, email and phone
func (f *VoterFactory) Create() *models.Voter {
	n := next()
	return &models.Voter{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RegNo:        fmt.Sprintf("T21-03-%05d", n),
		FirstName:    "Amina",
		LastName:     fmt.Sprintf("Nakato%d", n),
		Email:        fmt.Sprintf("voter%d@students.university.test", n),
		Phone:        fmt.Sprintf("+2567%08d", n),
		College:      "Engineering",
		Programme:    "BSc Computer Engineering",
		YearOfStudy:  2,
		DormBlock:    "Block A",
		Role:         models.RoleVoter,
		VotingStatus: models.VotingStatusNotVoted,
	}
}

// WithCollege sets the voter's college
func (f *VoterFactory) WithCollege(college string) *models.Voter {
	voter := f.Create()
	voter.College = college
	return voter
}

// Admin creates an administrator
func (f *VoterFactory) Admin() *models.Voter {
	voter := f.Create()
	voter.Role = models.RoleAdmin
	return voter
}

// ElectionFactory provides methods to create test Election data
type ElectionFactory struct{}

// NewElectionFactory creates a new ElectionFactory
func NewElectionFactory() *ElectionFactory {
	return &ElectionFactory{}
}

// Create creates a draft election with a unique name
func (f *ElectionFactory) Create() *models.Election {
	return &models.Election{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        fmt.Sprintf("Guild Elections %d", next()),
		Description: "Annual guild elections",
		Status:      models.ElectionStatusDraft,
	}
}

// Active creates an election open for voting
func (f *ElectionFactory) Active() *models.Election {
	election := f.Create()
	election.Status = models.ElectionStatusActive
	now := time.Now()
	election.StartsAt = &now
	return election
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a university-wide position in the given election
func (f *PositionFactory) Create(electionID uuid.UUID) *models.Position {
	return &models.Position{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ElectionID: electionID,
		Name:       fmt.Sprintf("Guild President %d", next()),
		Level:      models.PositionLevelUniversity,
	}
}

// WithLevel creates a position restricted to a college or dorm block
func (f *PositionFactory) WithLevel(electionID uuid.UUID, level models.PositionLevel, constituency string) *models.Position {
	position := f.Create(electionID)
	position.Level = level
	switch level {
	case models.PositionLevelCollege:
		position.College = constituency
	case models.PositionLevelBlock:
		position.DormBlock = constituency
	}
	return position
}

// CandidateFactory provides methods to create test Candidate data
type CandidateFactory struct{}

// NewCandidateFactory creates a new CandidateFactory
func NewCandidateFactory() *CandidateFactory {
	return &CandidateFactory{}
}

// Create creates an approved, active candidate
func (f *CandidateFactory) Create(voterID, positionID uuid.UUID) *models.Candidate {
	now := time.Now()
	return &models.Candidate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VoterID:    voterID,
		PositionID: positionID,
		Manifesto:  "Longer library hours",
		IsApproved: true,
		IsActive:   true,
		ApprovedAt: &now,
	}
}

// Pending creates a candidate awaiting approval
func (f *CandidateFactory) Pending(voterID, positionID uuid.UUID) *models.Candidate {
	candidate := f.Create(voterID, positionID)
	candidate.IsApproved = false
	candidate.ApprovedAt = nil
	return candidate
}

// FactorySet bundles all factories
type FactorySet struct {
	Voter     *VoterFactory
	Election  *ElectionFactory
	Position  *PositionFactory
	Candidate *CandidateFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Voter:     NewVoterFactory(),
		Election:  NewElectionFactory(),
		Position:  NewPositionFactory(),
		Candidate: NewCandidateFactory(),
	}
}
