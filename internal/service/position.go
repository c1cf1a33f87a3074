package service

import (
	"errors"
	"fmt"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionService handles business logic for positions
type PositionService struct {
	repo         repository.PositionRepositoryInterface
	electionRepo repository.ElectionRepositoryInterface
	validator    *validator.Validate
}

var _ PositionServiceInterface = (*PositionService)(nil)

// NewPositionService creates a new position service
func NewPositionService(repo repository.PositionRepositoryInterface, electionRepo repository.ElectionRepositoryInterface, validator *validator.Validate) *PositionService {
	return &PositionService{
		repo:         repo,
		electionRepo: electionRepo,
		validator:    validator,
	}
}

// CreatePositionRequest represents the request to create a position
type CreatePositionRequest struct {
	ElectionID  uuid.UUID            `json:"election_id" validate:"required"`
	Name        string               `json:"name" validate:"required,min=1,max=100"`
	Description string               `json:"description,omitempty" validate:"max=500"`
	Level       models.PositionLevel `json:"level,omitempty"`
	College     string               `json:"college,omitempty" validate:"max=100"`
	DormBlock   string               `json:"dorm_block,omitempty" validate:"max=50"`
	BallotOrder int                  `json:"ballot_order,omitempty" validate:"min=0"`
}

// UpdatePositionRequest represents the request to update a position
type UpdatePositionRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=100"`
	Description string               `json:"description,omitempty" validate:"max=500"`
	Level       models.PositionLevel `json:"level,omitempty"`
	College     string               `json:"college,omitempty" validate:"max=100"`
	DormBlock   string               `json:"dorm_block,omitempty" validate:"max=50"`
	BallotOrder int                  `json:"ballot_order,omitempty" validate:"min=0"`
}

// PositionListResponse represents a paginated list of positions
type PositionListResponse struct {
	Positions []models.Position `json:"positions"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// Create creates a new position in an election
func (s *PositionService) Create(req *CreatePositionRequest) (*models.Position, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	level, err := normalizeLevel(req.Level)
	if err != nil {
		return nil, err
	}

	if _, err := s.electionRepo.GetByID(req.ElectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrElectionNotFound
		}
		return nil, fmt.Errorf("failed to verify election: %w", err)
	}

	existing, err := s.repo.GetByName(req.ElectionID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing position: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPositionExists
	}

	position := &models.Position{
		ElectionID:  req.ElectionID,
		Name:        req.Name,
		Description: req.Description,
		Level:       level,
		College:     req.College,
		DormBlock:   req.DormBlock,
		BallotOrder: req.BallotOrder,
	}
	if err := s.repo.Create(position); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}
	return position, nil
}

// GetByID retrieves a position by ID
func (s *PositionService) GetByID(id uuid.UUID) (*models.Position, error) {
	position, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return position, nil
}

// GetByName retrieves a position by name. A nil electionID means the active election.
func (s *PositionService) GetByName(electionID *uuid.UUID, name string) (*models.Position, error) {
	var id uuid.UUID
	if electionID != nil {
		id = *electionID
	} else {
		active, err := s.electionRepo.GetActive()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrElectionNotActive
			}
			return nil, fmt.Errorf("failed to get active election: %w", err)
		}
		id = active.ID
	}

	position, err := s.repo.GetByName(id, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return position, nil
}

// GetByElection retrieves the positions of an election in ballot order
func (s *PositionService) GetByElection(electionID uuid.UUID) ([]models.Position, error) {
	positions, err := s.repo.GetByElectionID(electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	return positions, nil
}

// GetByLevel retrieves positions of one level with pagination
func (s *PositionService) GetByLevel(level models.PositionLevel, page, pageSize int) (*PositionListResponse, error) {
	if !level.IsValid() {
		return nil, apperrors.NewValidationError("level", "must be UNIVERSITY, COLLEGE or BLOCK")
	}
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	positions, total, err := s.repo.GetByLevel(level, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	return &PositionListResponse{Positions: positions, Total: total, Page: page, PageSize: pageSize}, nil
}

// GetAll retrieves all positions with pagination
func (s *PositionService) GetAll(page, pageSize int) (*PositionListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	positions, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}
	return &PositionListResponse{Positions: positions, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update updates a position
func (s *PositionService) Update(id uuid.UUID, req *UpdatePositionRequest) (*models.Position, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	level, err := normalizeLevel(req.Level)
	if err != nil {
		return nil, err
	}

	position, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != position.Name {
		existing, err := s.repo.GetByName(position.ElectionID, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing position: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrPositionExists
		}
	}

	position.Name = req.Name
	position.Description = req.Description
	position.Level = level
	position.College = req.College
	position.DormBlock = req.DormBlock
	position.BallotOrder = req.BallotOrder
	if err := s.repo.Update(position); err != nil {
		return nil, fmt.Errorf("failed to update position: %w", err)
	}
	return position, nil
}

// Delete deletes a position
func (s *PositionService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

func normalizeLevel(level models.PositionLevel) (models.PositionLevel, error) {
	if level == "" {
		return models.PositionLevelUniversity, nil
	}
	if !level.IsValid() {
		return "", apperrors.NewValidationError("level", "must be UNIVERSITY, COLLEGE or BLOCK")
	}
	return level, nil
}
