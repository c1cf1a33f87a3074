package service

import (
	"context"
	"io"

	"voteverse-backend/internal/database/models"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/storage"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// VoterServiceInterface defines the interface for voter service
type VoterServiceInterface interface {
	Create(req *CreateVoterRequest) (*models.Voter, error)
	GetByID(id uuid.UUID) (*models.Voter, error)
	GetByRegNo(regNo string) (*models.Voter, error)
	List(filter repository.VoterFilter, page, pageSize int) (*VoterListResponse, error)
	Update(id uuid.UUID, req *UpdateVoterRequest) (*models.Voter, error)
	UpdateContacts(id uuid.UUID, req *UpdateContactsRequest) (*models.Voter, error)
	Delete(id uuid.UUID) error
}

// ElectionServiceInterface defines the interface for election service
type ElectionServiceInterface interface {
	Create(req *CreateElectionRequest) (*models.Election, error)
	GetByID(id uuid.UUID) (*models.Election, error)
	GetActive() (*models.Election, error)
	GetAll(page, pageSize int) (*ElectionListResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateElectionStatusRequest) (*models.Election, error)
	Delete(id uuid.UUID) error
}

// PositionServiceInterface defines the interface for position service
type PositionServiceInterface interface {
	Create(req *CreatePositionRequest) (*models.Position, error)
	GetByID(id uuid.UUID) (*models.Position, error)
	GetByName(electionID *uuid.UUID, name string) (*models.Position, error)
	GetByElection(electionID uuid.UUID) ([]models.Position, error)
	GetByLevel(level models.PositionLevel, page, pageSize int) (*PositionListResponse, error)
	GetAll(page, pageSize int) (*PositionListResponse, error)
	Update(id uuid.UUID, req *UpdatePositionRequest) (*models.Position, error)
	Delete(id uuid.UUID) error
}

// CandidateServiceInterface defines the interface for candidate service
type CandidateServiceInterface interface {
	Register(req *RegisterCandidateRequest) (*models.Candidate, error)
	GetByID(id uuid.UUID) (*models.Candidate, error)
	GetByPosition(positionID uuid.UUID, onBallotOnly bool) ([]models.Candidate, error)
	GetApproved(page, pageSize int) (*CandidateListResponse, error)
	GetActive(page, pageSize int) (*CandidateListResponse, error)
	GetAll(page, pageSize int) (*CandidateListResponse, error)
	Approve(id uuid.UUID) (*models.Candidate, error)
	SetActive(id uuid.UUID, active bool) (*models.Candidate, error)
	Update(id uuid.UUID, req *UpdateCandidateRequest) (*models.Candidate, error)
	UploadImage(ctx context.Context, id uuid.UUID, r io.Reader, size int64) (*models.Candidate, error)
	OpenImage(ctx context.Context, id uuid.UUID) (storage.Info, io.ReadCloser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VoteServiceInterface defines the interface for vote service
type VoteServiceInterface interface {
	CastVote(voterID uuid.UUID, req *CastVoteRequest, meta VoteMeta) (*VoteReceipt, error)
	SubmitBallot(voterID uuid.UUID, choices []BallotChoice, meta VoteMeta) ([]VoteReceipt, error)
	GetHistory(voterID uuid.UUID) ([]VoteRecord, error)
	VerifyHash(hash string) (*VoteVerification, error)
}

// ResultsServiceInterface defines the interface for results service
type ResultsServiceInterface interface {
	ForPosition(positionID uuid.UUID, includeAll bool) (*PositionResults, error)
	ForCandidate(candidateID uuid.UUID) (*CandidateResult, error)
	ForElection(electionID uuid.UUID) (*ElectionResults, error)
}

// FeedbackServiceInterface defines the interface for feedback service
type FeedbackServiceInterface interface {
	Submit(voterID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error)
	GetByID(id uuid.UUID) (*FeedbackResponse, error)
	List(filter repository.FeedbackFilter, page, pageSize int) (*FeedbackListResponse, error)
	Delete(id uuid.UUID) error
}

// VoiceSampleServiceInterface defines the interface for voice sample service
type VoiceSampleServiceInterface interface {
	Upload(ctx context.Context, voterID uuid.UUID, r io.Reader, size int64) (*VoiceSampleStatus, error)
	Status(voterID uuid.UUID) (*VoiceSampleStatus, error)
	Open(ctx context.Context, voterID uuid.UUID) (io.ReadCloser, error)
	Delete(ctx context.Context, voterID uuid.UUID) error
}

// VerificationServiceInterface defines the interface for voice verification
type VerificationServiceInterface interface {
	MaxAttempts() int
	FailedAttempts(voterID uuid.UUID) (int, error)
	Verify(ctx context.Context, voterID uuid.UUID, recording io.Reader, size int64, lang string) (*VerificationResult, error)
}

// RegistrySyncServiceInterface defines the interface for registry sync
type RegistrySyncServiceInterface interface {
	Sync(ctx context.Context) (*SyncReport, error)
}

// VotingSessionServiceInterface defines the interface for the voting flow
type VotingSessionServiceInterface interface {
	Start(voterID uuid.UUID, lang string) (*SessionView, error)
	Get(voterID uuid.UUID, lang string) (*SessionView, error)
	Select(voterID uuid.UUID, lang string, req *SelectRequest) (*SessionView, error)
	Next(voterID uuid.UUID, lang string) (*SessionView, error)
	Previous(voterID uuid.UUID, lang string) (*SessionView, error)
	Confirm(voterID uuid.UUID, lang string, req *ConfirmRequest) (*SessionView, error)
	Verify(ctx context.Context, voterID uuid.UUID, lang string, recording io.Reader, size int64, meta VoteMeta) (*SessionView, error)
	Command(voterID uuid.UUID, lang, utterance string) (*SessionView, error)
	Cancel(voterID uuid.UUID) error
}
