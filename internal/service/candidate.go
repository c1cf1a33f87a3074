package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/repository"
	"voteverse-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxCandidateImageBytes = 5 * 1024 * 1024

// CandidateService handles business logic for candidates
type CandidateService struct {
	repo         repository.CandidateRepositoryInterface
	voterRepo    repository.VoterRepositoryInterface
	positionRepo repository.PositionRepositoryInterface
	blobs        storage.Store
	validator    *validator.Validate
}

var _ CandidateServiceInterface = (*CandidateService)(nil)

// NewCandidateService creates a new candidate service
func NewCandidateService(
	repo repository.CandidateRepositoryInterface,
	voterRepo repository.VoterRepositoryInterface,
	positionRepo repository.PositionRepositoryInterface,
	blobs storage.Store,
	validator *validator.Validate,
) *CandidateService {
	return &CandidateService{
		repo:         repo,
		voterRepo:    voterRepo,
		positionRepo: positionRepo,
		blobs:        blobs,
		validator:    validator,
	}
}

// RegisterCandidateRequest represents the request to register a candidate
type RegisterCandidateRequest struct {
	VoterID          uuid.UUID `json:"voter_id" validate:"required"`
	PositionID       uuid.UUID `json:"position_id" validate:"required"`
	Manifesto        string    `json:"manifesto,omitempty" validate:"max=10000"`
	CampaignVideoURL string    `json:"campaign_video_url,omitempty" validate:"omitempty,url,max=500"`
	BallotOrder      int       `json:"ballot_order,omitempty" validate:"min=0"`
}

// UpdateCandidateRequest represents the request to update a candidate's campaign details
type UpdateCandidateRequest struct {
	Manifesto        string `json:"manifesto,omitempty" validate:"max=10000"`
	CampaignVideoURL string `json:"campaign_video_url,omitempty" validate:"omitempty,url,max=500"`
	BallotOrder      int    `json:"ballot_order,omitempty" validate:"min=0"`
}

// CandidateListResponse represents a paginated list of candidates
type CandidateListResponse struct {
	Candidates []models.Candidate `json:"candidates"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// Register creates a candidacy. The voter and position must exist and a voter
// may stand only once per position.
func (s *CandidateService) Register(req *RegisterCandidateRequest) (*models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	voter, err := s.voterRepo.GetByID(req.VoterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to verify voter: %w", err)
	}
	position, err := s.positionRepo.GetByID(req.PositionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}

	existing, err := s.repo.GetByVoterAndPosition(req.VoterID, req.PositionID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing candidate: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrCandidateExists
	}

	candidate := &models.Candidate{
		VoterID:          req.VoterID,
		PositionID:       req.PositionID,
		Manifesto:        req.Manifesto,
		CampaignVideoURL: req.CampaignVideoURL,
		BallotOrder:      req.BallotOrder,
		IsActive:         true,
	}
	if err := s.repo.Create(candidate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCandidateExists
		}
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	candidate.Voter = voter
	candidate.Position = position
	return candidate, nil
}

// GetByID retrieves a candidate by ID
func (s *CandidateService) GetByID(id uuid.UUID) (*models.Candidate, error) {
	candidate, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

// GetByPosition lists the candidates of a position. With onBallotOnly only
// approved, active candidates are returned.
func (s *CandidateService) GetByPosition(positionID uuid.UUID, onBallotOnly bool) ([]models.Candidate, error) {
	if _, err := s.positionRepo.GetByID(positionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to verify position: %w", err)
	}
	candidates, err := s.repo.GetByPositionID(positionID, onBallotOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	return candidates, nil
}

// GetApproved retrieves approved candidates with pagination
func (s *CandidateService) GetApproved(page, pageSize int) (*CandidateListResponse, error) {
	return s.list(s.repo.GetApproved, page, pageSize)
}

// GetActive retrieves active candidates with pagination
func (s *CandidateService) GetActive(page, pageSize int) (*CandidateListResponse, error) {
	return s.list(s.repo.GetActive, page, pageSize)
}

// GetAll retrieves all candidates with pagination
func (s *CandidateService) GetAll(page, pageSize int) (*CandidateListResponse, error) {
	return s.list(s.repo.GetAll, page, pageSize)
}

func (s *CandidateService) list(fetch func(limit, offset int) ([]models.Candidate, int64, error), page, pageSize int) (*CandidateListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	candidates, total, err := fetch(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidates: %w", err)
	}
	return &CandidateListResponse{Candidates: candidates, Total: total, Page: page, PageSize: pageSize}, nil
}

// Approve marks a candidate as approved for the ballot
func (s *CandidateService) Approve(id uuid.UUID) (*models.Candidate, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if candidate.IsApproved {
		return candidate, nil
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateFields(id, map[string]interface{}{"is_approved": true, "approved_at": now}); err != nil {
		return nil, fmt.Errorf("failed to approve candidate: %w", err)
	}
	candidate.IsApproved = true
	candidate.ApprovedAt = &now
	return candidate, nil
}

// SetActive withdraws or reinstates a candidate
func (s *CandidateService) SetActive(id uuid.UUID, active bool) (*models.Candidate, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateFields(id, map[string]interface{}{"is_active": active}); err != nil {
		return nil, fmt.Errorf("failed to update candidate status: %w", err)
	}
	candidate.IsActive = active
	return candidate, nil
}

// Update changes the manifesto, campaign video and ballot order of a candidate
func (s *CandidateService) Update(id uuid.UUID, req *UpdateCandidateRequest) (*models.Candidate, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	candidate.Manifesto = req.Manifesto
	candidate.CampaignVideoURL = req.CampaignVideoURL
	candidate.BallotOrder = req.BallotOrder
	if err := s.repo.UpdateFields(id, map[string]interface{}{
		"manifesto":          req.Manifesto,
		"campaign_video_url": req.CampaignVideoURL,
		"ballot_order":       req.BallotOrder,
	}); err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return candidate, nil
}

// UploadImage stores the candidate's portrait in the blob store
func (s *CandidateService) UploadImage(ctx context.Context, id uuid.UUID, r io.Reader, size int64) (*models.Candidate, error) {
	if size > maxCandidateImageBytes {
		return nil, apperrors.NewValidationError("image", "must be at most 5MB")
	}
	candidate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, apperrors.NewValidationError("image", "empty or unreadable file")
	}
	contentType := http.DetectContentType(head[:n])
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
	default:
		return nil, apperrors.NewValidationError("image", "unsupported image type "+contentType)
	}

	key := fmt.Sprintf("candidate-images/%s", candidate.ID)
	body := io.MultiReader(bytesReader(head[:n]), io.LimitReader(r, maxCandidateImageBytes))
	if _, err := s.blobs.Put(ctx, key, body, storage.PutOptions{ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	if err := s.repo.UpdateFields(id, map[string]interface{}{"image_key": key}); err != nil {
		return nil, fmt.Errorf("failed to update candidate image: %w", err)
	}
	candidate.ImageKey = key
	return candidate, nil
}

// OpenImage returns the stored portrait of a candidate. The caller closes the reader.
func (s *CandidateService) OpenImage(ctx context.Context, id uuid.UUID) (storage.Info, io.ReadCloser, error) {
	candidate, err := s.GetByID(id)
	if err != nil {
		return storage.Info{}, nil, err
	}
	if candidate.ImageKey == "" {
		return storage.Info{}, nil, apperrors.ErrBlobNotFound
	}
	return s.blobs.Get(ctx, candidate.ImageKey)
}

// Delete deletes a candidate that has not received votes
func (s *CandidateService) Delete(ctx context.Context, id uuid.UUID) error {
	candidate, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if candidate.VoteCount > 0 {
		return fmt.Errorf("%w: candidate already has votes", apperrors.ErrInvalidStatusTransition)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if candidate.ImageKey != "" {
		if err := s.blobs.Delete(ctx, candidate.ImageKey); err != nil && !apperrors.IsNotFound(err) {
			return fmt.Errorf("failed to delete candidate image: %w", err)
		}
	}
	return nil
}
