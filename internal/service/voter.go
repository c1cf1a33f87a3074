package service

import (
	"errors"
	"fmt"
	"strings"

	"voteverse-backend/internal/database/models"
	apperrors "voteverse-backend/internal/errors"
	"voteverse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VoterService handles business logic for voters
type VoterService struct {
	repo      repository.VoterRepositoryInterface
	validator *validator.Validate
}

var _ VoterServiceInterface = (*VoterService)(nil)

// NewVoterService creates a new voter service
func NewVoterService(repo repository.VoterRepositoryInterface, validator *validator.Validate) *VoterService {
	return &VoterService{
		repo:      repo,
		validator: validator,
	}
}

// CreateVoterRequest represents the request to create a voter
type CreateVoterRequest struct {
	RegNo       string      `json:"reg_no" validate:"required,min=3,max=40"`
	FirstName   string      `json:"first_name" validate:"required,max=100"`
	LastName    string      `json:"last_name" validate:"required,max=100"`
	Email       string      `json:"email" validate:"required,email,max=255"`
	Phone       string      `json:"phone,omitempty" validate:"max=20"`
	College     string      `json:"college,omitempty" validate:"max=100"`
	Programme   string      `json:"programme,omitempty" validate:"max=150"`
	YearOfStudy int         `json:"year_of_study,omitempty" validate:"min=0,max=10"`
	DormBlock   string      `json:"dorm_block,omitempty" validate:"max=50"`
	ImageURL    string      `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
	Role        models.Role `json:"role,omitempty"`
}

// UpdateVoterRequest represents the request to update a voter's profile
type UpdateVoterRequest struct {
	FirstName   string      `json:"first_name" validate:"required,max=100"`
	LastName    string      `json:"last_name" validate:"required,max=100"`
	College     string      `json:"college,omitempty" validate:"max=100"`
	Programme   string      `json:"programme,omitempty" validate:"max=150"`
	YearOfStudy int         `json:"year_of_study,omitempty" validate:"min=0,max=10"`
	DormBlock   string      `json:"dorm_block,omitempty" validate:"max=50"`
	ImageURL    string      `json:"image_url,omitempty" validate:"omitempty,url,max=500"`
	Role        models.Role `json:"role,omitempty"`
}

// UpdateContactsRequest represents the request to change a voter's email or phone
type UpdateContactsRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// VoterListResponse represents a paginated list of voters
type VoterListResponse struct {
	Voters   []models.Voter `json:"voters"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new voter
func (s *VoterService) Create(req *CreateVoterRequest) (*models.Voter, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	regNo := strings.TrimSpace(req.RegNo)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := req.Role
	if role == "" {
		role = models.RoleVoter
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be voter or admin")
	}

	existing, err := s.repo.GetByRegNo(regNo)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing voter: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrVoterExists
	}
	if err := s.ensureEmailFree(email, uuid.Nil); err != nil {
		return nil, err
	}
	if req.Phone != "" {
		if err := s.ensurePhoneFree(req.Phone, uuid.Nil); err != nil {
			return nil, err
		}
	}

	voter := &models.Voter{
		RegNo:        regNo,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Phone:        req.Phone,
		College:      req.College,
		Programme:    req.Programme,
		YearOfStudy:  req.YearOfStudy,
		DormBlock:    req.DormBlock,
		ImageURL:     req.ImageURL,
		Role:         role,
		VotingStatus: models.VotingStatusNotVoted,
	}
	if err := s.repo.Create(voter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrVoterExists
		}
		return nil, fmt.Errorf("failed to create voter: %w", err)
	}
	return voter, nil
}

// GetByID retrieves a voter by ID
func (s *VoterService) GetByID(id uuid.UUID) (*models.Voter, error) {
	voter, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	return voter, nil
}

// GetByRegNo retrieves a voter by registration number
func (s *VoterService) GetByRegNo(regNo string) (*models.Voter, error) {
	voter, err := s.repo.GetByRegNo(regNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to get voter: %w", err)
	}
	return voter, nil
}

// List retrieves voters matching the filter with pagination
func (s *VoterService) List(filter repository.VoterFilter, page, pageSize int) (*VoterListResponse, error) {
	if filter.VotingStatus != "" && !filter.VotingStatus.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	voters, total, err := s.repo.List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}
	return &VoterListResponse{
		Voters:   voters,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a voter's profile fields
func (s *VoterService) Update(id uuid.UUID, req *UpdateVoterRequest) (*models.Voter, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Role != "" && !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be voter or admin")
	}

	voter, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	voter.FirstName = req.FirstName
	voter.LastName = req.LastName
	voter.College = req.College
	voter.Programme = req.Programme
	voter.YearOfStudy = req.YearOfStudy
	voter.DormBlock = req.DormBlock
	voter.ImageURL = req.ImageURL
	if req.Role != "" {
		voter.Role = req.Role
	}

	if err := s.repo.Update(voter); err != nil {
		return nil, fmt.Errorf("failed to update voter: %w", err)
	}
	return voter, nil
}

// UpdateContacts changes email and/or phone after checking neither belongs to another voter
func (s *VoterService) UpdateContacts(id uuid.UUID, req *UpdateContactsRequest) (*models.Voter, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Email == nil && req.Phone == nil {
		return nil, apperrors.NewValidationError("contacts", "email or phone is required")
	}
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if err := s.ensureEmailFree(email, id); err != nil {
			return nil, err
		}
		updates["email"] = email
	}
	if req.Phone != nil {
		if *req.Phone != "" {
			if err := s.ensurePhoneFree(*req.Phone, id); err != nil {
				return nil, err
			}
		}
		updates["phone"] = *req.Phone
	}

	if err := s.repo.UpdateFields(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVoterNotFound
		}
		return nil, fmt.Errorf("failed to update contacts: %w", err)
	}
	return s.GetByID(id)
}

// Delete deletes a voter
func (s *VoterService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete voter: %w", err)
	}
	return nil
}

func (s *VoterService) ensureEmailFree(email string, self uuid.UUID) error {
	other, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if other != nil && other.ID != self {
		return apperrors.ErrEmailTaken
	}
	return nil
}

func (s *VoterService) ensurePhoneFree(phone string, self uuid.UUID) error {
	other, err := s.repo.GetByPhone(phone)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check phone: %w", err)
	}
	if other != nil && other.ID != self {
		return apperrors.ErrPhoneTaken
	}
	return nil
}
