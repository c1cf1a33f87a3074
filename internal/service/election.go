package service

import (
	"errors"
	"fmt"
	"time"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElectionService handles business logic for elections
type ElectionService struct {
	repo      repository.ElectionRepositoryInterface
	validator *validator.Validate
}

var _ ElectionServiceInterface = (*ElectionService)(nil)

// NewElectionService creates a new election service
func NewElectionService(repo repository.ElectionRepositoryInterface, validator *validator.Validate) *ElectionService {
	return &ElectionService{
		repo:      repo,
		validator: validator,
	}
}

// CreateElectionRequest represents the request to create an election
type CreateElectionRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	Description string     `json:"description,omitempty" validate:"max=500"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}

// UpdateElectionStatusRequest represents a lifecycle change
type UpdateElectionStatusRequest struct {
	Status models.ElectionStatus `json:"status" validate:"required"`
}

// ElectionListResponse represents a paginated list of elections
type ElectionListResponse struct {
	Elections []models.Election `json:"elections"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a new election in draft status
func (s *ElectionService) Create(req *CreateElectionRequest) (*models.Election, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.StartsAt != nil && req.EndsAt != nil && !req.EndsAt.After(*req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing election: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrElectionExists
	}

	election := &models.Election{
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ElectionStatusDraft,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}
	if err := s.repo.Create(election); err != nil {
		return nil, fmt.Errorf("failed to create election: %w", err)
	}
	return election, nil
}

// GetByID retrieves an election by ID
func (s *ElectionService) GetByID(id uuid.UUID) (*models.Election, error) {
	election, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to get election: %w", err)
	}
	return election, nil
}

// GetActive retrieves the election currently open for voting
func (s *ElectionService) GetActive() (*models.Election, error) {
	election, err := s.repo.GetActive()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrElectionNotActive
		}
		return nil, fmt.Errorf("failed to get active election: %w", err)
	}
	return election, nil
}

// GetAll retrieves all elections with pagination
func (s *ElectionService) GetAll(page, pageSize int) (*ElectionListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	elections, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get elections: %w", err)
	}
	return &ElectionListResponse{
		Elections: elections,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// UpdateStatus moves an election along draft -> active -> completed. Only one
// election may be active at a time.
func (s *ElectionService) UpdateStatus(id uuid.UUID, req *UpdateElectionStatusRequest) (*models.Election, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	election, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !election.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s to %s", apperrors.ErrInvalidStatusTransition, election.Status, req.Status)
	}

	if req.Status == models.ElectionStatusActive {
		active, err := s.repo.GetActive()
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check active election: %w", err)
		}
		if active != nil && active.ID != election.ID {
			return nil, fmt.Errorf("%w: election %q is already active", apperrors.ErrInvalidStatusTransition, active.Name)
		}
	}

	election.Status = req.Status
	if err := s.repo.Update(election); err != nil {
		return nil, fmt.Errorf("failed to update election: %w", err)
	}
	return election, nil
}

// Delete deletes a draft election
func (s *ElectionService) Delete(id uuid.UUID) error {
	election, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if election.Status != models.ElectionStatusDraft {
		return fmt.Errorf("%w: only draft elections can be deleted", apperrors.ErrInvalidStatusTransition)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete election: %w", err)
	}
	return nil
}
