package service

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultsService tallies votes from the per-candidate counters
type ResultsService struct {
	candidateRepo repository.CandidateRepositoryInterface
	positionRepo  repository.PositionRepositoryInterface
	electionRepo  repository.ElectionRepositoryInterface
}

var _ ResultsServiceInterface = (*ResultsService)(nil)

// NewResultsService creates a new results service
func NewResultsService(
	candidateRepo repository.CandidateRepositoryInterface,
	positionRepo repository.PositionRepositoryInterface,
	electionRepo repository.ElectionRepositoryInterface,
) *ResultsService {
	return &ResultsService{
		candidateRepo: candidateRepo,
		positionRepo:  positionRepo,
		electionRepo:  electionRepo,
	}
}

// CandidateResult is one candidate's standing
type CandidateResult struct {
	CandidateID   uuid.UUID `json:"candidate_id"`
	CandidateName string    `json:"candidate_name"`
	PositionID    uuid.UUID `json:"position_id"`
	VoteCount     int64     `json:"vote_count"`
	Percentage    float64   `json:"percentage"`
	IsApproved    bool      `json:"is_approved"`
	IsActive      bool      `json:"is_active"`
}

// PositionResults is the tally for one position, highest count first
type PositionResults struct {
	PositionID   uuid.UUID         `json:"position_id"`
	PositionName string            `json:"position_name"`
	TotalVotes   int64             `json:"total_votes"`
	Candidates   []CandidateResult `json:"candidates"`
}

// ElectionResults is the tally for every position of an election
type ElectionResults struct {
	ElectionID   uuid.UUID             `json:"election_id"`
	ElectionName string                `json:"election_name"`
	Status       models.ElectionStatus `json:"status"`
	Positions    []PositionResults     `json:"positions"`
}

// ForPosition tallies a position. Without includeAll only candidates on the
// ballot are listed.
func (s *ResultsService) ForPosition(positionID uuid.UUID, includeAll bool) (*PositionResults, error) {
	position, err := s.positionRepo.GetByID(positionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return s.tally(position, includeAll)
}

// ForCandidate returns one candidate's standing within its position
func (s *ResultsService) ForCandidate(candidateID uuid.UUID) (*CandidateResult, error) {
	candidate, err := s.candidateRepo.GetByID(candidateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	peers, err := s.candidateRepo.GetByPositionID(candidate.PositionID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	var total int64
	for _, p := range peers {
		total += p.VoteCount
	}
	result := toCandidateResult(*candidate, total)
	return &result, nil
}

// ForElection tallies every position of an election in ballot order
func (s *ResultsService) ForElection(electionID uuid.UUID) (*ElectionResults, error) {
	election, err := s.electionRepo.GetByID(electionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	positions, err := s.positionRepo.GetByElectionID(electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}

	results := &ElectionResults{
		ElectionID:   election.ID,
		ElectionName: election.Name,
		Status:       election.Status,
		Positions:    make([]PositionResults, 0, len(positions)),
	}
	for i := range positions {
		tally, err := s.tally(&positions[i], false)
		if err != nil {
			return nil, err
		}
		results.Positions = append(results.Positions, *tally)
	}
	return results, nil
}

func (s *ResultsService) tally(position *models.Position, includeAll bool) (*PositionResults, error) {
	candidates, err := s.candidateRepo.GetByPositionID(position.ID, !includeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}

	var total int64
	for _, c := range candidates {
		total += c.VoteCount
	}

	out := make([]CandidateResult, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, toCandidateResult(c, total))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].VoteCount > out[j].VoteCount })

	return &PositionResults{
		PositionID:   position.ID,
		PositionName: position.Name,
		TotalVotes:   total,
		Candidates:   out,
	}, nil
}

func toCandidateResult(c models.Candidate, total int64) CandidateResult {
	result := CandidateResult{
		CandidateID: c.ID,
		PositionID:  c.PositionID,
		VoteCount:   c.VoteCount,
		Percentage:  percentage(c.VoteCount, total),
		IsApproved:  c.IsApproved,
		IsActive:    c.IsActive,
	}
	if c.Voter != nil {
		result.CandidateName = c.Voter.FullName()
	}
	return result
}

// percentage rounds to two decimals and is zero when nothing was cast
func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*10000/float64(total)) / 100
}
