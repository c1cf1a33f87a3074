package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/logger"
	"voteverse-backend/internal/metrics"
	"voteverse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoteService handles casting, receipts and voting history
type VoteService struct {
	repo          repository.VoteRepositoryInterface
	voterRepo     repository.VoterRepositoryInterface
	candidateRepo repository.CandidateRepositoryInterface
	positionRepo  repository.PositionRepositoryInterface
	electionRepo  repository.ElectionRepositoryInterface
	metrics       *metrics.Metrics
	validator     *validator.Validate
	now           func() time.Time
}

var _ VoteServiceInterface = (*VoteService)(nil)

// NewVoteService creates a new vote service
func NewVoteService(
	repo repository.VoteRepositoryInterface,
	voterRepo repository.VoterRepositoryInterface,
	candidateRepo repository.CandidateRepositoryInterface,
	positionRepo repository.PositionRepositoryInterface,
	electionRepo repository.ElectionRepositoryInterface,
	m *metrics.Metrics,
	validator *validator.Validate,
) *VoteService {
	return &VoteService{
		repo:          repo,
		voterRepo:     voterRepo,
		candidateRepo: candidateRepo,
		positionRepo:  positionRepo,
		electionRepo:  electionRepo,
		metrics:       m,
		validator:     validator,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CastVoteRequest represents a single vote
type CastVoteRequest struct {
	PositionID  uuid.UUID `json:"position_id" validate:"required"`
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
}

// BallotChoice is one position/candidate pair of a submitted ballot
type BallotChoice struct {
	PositionID  uuid.UUID
	CandidateID uuid.UUID
}

// VoteMeta carries request details stored with each vote
type VoteMeta struct {
	IPAddress  string
	DeviceInfo string
}

// VoteReceipt is returned for every stored vote
type VoteReceipt struct {
	VoteID      uuid.UUID `json:"vote_id"`
	PositionID  uuid.UUID `json:"position_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	VoteHash    string    `json:"vote_hash"`
	CastAt      time.Time `json:"cast_at"`
}

// VoteRecord is one entry of a voter's history
type VoteRecord struct {
	VoteReceipt
	PositionName  string `json:"position_name"`
	CandidateName string `json:"candidate_name"`
}

// VoteVerification answers a receipt lookup without identifying the voter
type VoteVerification struct {
	Valid         bool      `json:"valid"`
	PositionName  string    `json:"position_name"`
	CandidateName string    `json:"candidate_name"`
	CastAt        time.Time `json:"cast_at"`
}

// ComputeVoteHash derives the receipt hash of a vote
func ComputeVoteHash(regNo string, positionID, candidateID uuid.UUID, ip string, castAt time.Time) string {
	payload := strings.Join([]string{
		regNo,
		positionID.String(),
		candidateID.String(),
		ip,
		castAt.UTC().Format(time.RFC3339Nano),
	}, "|")
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// CastVote stores a single vote. The voter's status is not changed; that
// happens when a full ballot is submitted.
func (s *VoteService) CastVote(voterID uuid.UUID, req *CastVoteRequest, meta VoteMeta) (*VoteReceipt, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	receipts, err := s.cast(voterID, []BallotChoice{{PositionID: req.PositionID, CandidateID: req.CandidateID}}, meta, false)
	if err != nil {
		return nil, err
	}
	return &receipts[0], nil
}

// SubmitBallot stores one vote per position in a single transaction, bumps each
// chosen candidate's count by one and marks the voter as Voted.
func (s *VoteService) SubmitBallot(voterID uuid.UUID, choices []BallotChoice, meta VoteMeta) ([]VoteReceipt, error) {
	if len(choices) == 0 {
		return nil, apperrors.ErrEmptyBallot
	}
	seen := make(map[uuid.UUID]bool, len(choices))
	for _, c := range choices {
		if seen[c.PositionID] {
			return nil, apperrors.NewValidationError("ballot", "one choice per position")
		}
		seen[c.PositionID] = true
	}

	receipts, err := s.cast(voterID, choices, meta, true)
	if err != nil {
		return nil, err
	}
	s.metrics.BallotSubmitted()
	return receipts, nil
}

func (s *VoteService) cast(voterID uuid.UUID, choices []BallotChoice, meta VoteMeta, markVoted bool) ([]VoteReceipt, error) {
	voter, err := s.voterRepo.GetByID(voterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}

	castAt := s.now()
	votes := make([]models.Vote, 0, len(choices))
	for _, choice := range choices {
		if err := s.checkChoice(voterID, choice); err != nil {
			return nil, err
		}
		votes = append(votes, models.Vote{
			VoterID:     voterID,
			PositionID:  choice.PositionID,
			CandidateID: choice.CandidateID,
			IPAddress:   meta.IPAddress,
			DeviceInfo:  meta.DeviceInfo,
			VoteHash:    ComputeVoteHash(voter.RegNo, choice.PositionID, choice.CandidateID, meta.IPAddress, castAt),
			CastAt:      castAt,
		})
	}

	if err := s.repo.CastVotes(voterID, votes, markVoted); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyVoted
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to cast votes: %w", err)
	}
	s.metrics.VotesCast(len(votes))

	logger.New().WithFields(map[string]interface{}{
		"voter":     voter.RegNo,
		"votes":     len(votes),
		"submitted": markVoted,
	}).Info("votes cast")

	receipts := make([]VoteReceipt, len(votes))
	for i, v := range votes {
		receipts[i] = VoteReceipt{
			VoteID:      v.ID,
			PositionID:  v.PositionID,
			CandidateID: v.CandidateID,
			VoteHash:    v.VoteHash,
			CastAt:      v.CastAt,
		}
	}
	return receipts, nil
}

// checkChoice enforces that the position belongs to the active election, the
// candidate is on its ballot and the voter has not voted for it yet.
func (s *VoteService) checkChoice(voterID uuid.UUID, choice BallotChoice) error {
	position, err := s.positionRepo.GetByID(choice.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPositionNotFound
		}
		return fmt.Errorf("failed to get position: %w", err)
	}
	election, err := s.electionRepo.GetByID(position.ElectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrElectionNotFound
		}
		return fmt.Errorf("failed to get election: %w", err)
	}
	if election.Status != models.ElectionStatusActive {
		return apperrors.ErrElectionNotActive
	}

	candidate, err := s.candidateRepo.GetByID(choice.CandidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCandidateNotFound
		}
		return fmt.Errorf("failed to get candidate: %w", err)
	}
	if candidate.PositionID != choice.PositionID || !candidate.OnBallot() {
		return apperrors.ErrCandidateNotOnBallot
	}

	voted, err := s.repo.ExistsForVoterAndPosition(voterID, choice.PositionID)
	if err != nil {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}
	if voted {
		return apperrors.ErrAlreadyVoted
	}
	return nil
}

// GetHistory lists the votes a voter has cast
func (s *VoteService) GetHistory(voterID uuid.UUID) ([]VoteRecord, error) {
	votes, err := s.repo.GetByVoterID(voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	records := make([]VoteRecord, 0, len(votes))
	for _, v := range votes {
		record := VoteRecord{VoteReceipt: VoteReceipt{
			VoteID:      v.ID,
			PositionID:  v.PositionID,
			CandidateID: v.CandidateID,
			VoteHash:    v.VoteHash,
			CastAt:      v.CastAt,
		}}
		if v.Position != nil {
			record.PositionName = v.Position.Name
		}
		if v.Candidate != nil && v.Candidate.Voter != nil {
			record.CandidateName = v.Candidate.Voter.FullName()
		}
		records = append(records, record)
	}
	return records, nil
}

// VerifyHash confirms that a receipt hash belongs to a stored vote
func (s *VoteService) VerifyHash(hash string) (*VoteVerification, error) {
	vote, err := s.repo.GetByHash(strings.ToLower(strings.TrimSpace(hash)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to verify vote: %w", err)
	}
	result := &VoteVerification{Valid: true, CastAt: vote.CastAt}
	if vote.Position != nil {
		result.PositionName = vote.Position.Name
	}
	if vote.Candidate != nil && vote.Candidate.Voter != nil {
		result.CandidateName = vote.Candidate.Voter.FullName()
	}
	return result, nil
}
