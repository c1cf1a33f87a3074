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

// FeedbackService handles business logic for feedback
type FeedbackService struct {
	repo      repository.FeedbackRepositoryInterface
	validator *validator.Validate
}

var _ FeedbackServiceInterface = (*FeedbackService)(nil)

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo repository.FeedbackRepositoryInterface, validator *validator.Validate) *FeedbackService {
	return &FeedbackService{
		repo:      repo,
		validator: validator,
	}
}

// SubmitFeedbackRequest represents the request to submit feedback
type SubmitFeedbackRequest struct {
	Comment     string `json:"comment" validate:"required,min=1,max=2000"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// FeedbackResponse hides the author of anonymous feedback
type FeedbackResponse struct {
	ID          uuid.UUID  `json:"id"`
	VoterID     *uuid.UUID `json:"voter_id,omitempty"`
	VoterName   string     `json:"voter_name,omitempty"`
	Comment     string     `json:"comment"`
	Rating      int        `json:"rating"`
	IsAnonymous bool       `json:"is_anonymous"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FeedbackListResponse represents a paginated list of feedback
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Submit stores feedback from a voter
func (s *FeedbackService) Submit(voterID uuid.UUID, req *SubmitFeedbackRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	feedback := &models.Feedback{
		VoterID:     voterID,
		Comment:     req.Comment,
		Rating:      req.Rating,
		IsAnonymous: req.IsAnonymous,
	}
	if err := s.repo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return toFeedbackResponse(feedback), nil
}

// GetByID retrieves feedback by ID
func (s *FeedbackService) GetByID(id uuid.UUID) (*FeedbackResponse, error) {
	feedback, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return toFeedbackResponse(feedback), nil
}

// List retrieves feedback matching the filter with pagination
func (s *FeedbackService) List(filter repository.FeedbackFilter, page, pageSize int) (*FeedbackListResponse, error) {
	if filter.Rating != 0 && (filter.Rating < 1 || filter.Rating > 5) {
		return nil, apperrors.NewValidationError("rating", "must be between 1 and 5")
	}
	if filter.VoterID != nil {
		// filtering by author must not reveal anonymous feedback
		named := false
		filter.Anonymous = &named
	}
	page, pageSize, limit, offset := normalizePage(page, pageSize)

	items, total, err := s.repo.List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	out := make([]FeedbackResponse, 0, len(items))
	for i := range items {
		out = append(out, *toFeedbackResponse(&items[i]))
	}
	return &FeedbackListResponse{Feedback: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Delete deletes feedback
func (s *FeedbackService) Delete(id uuid.UUID) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}

func toFeedbackResponse(f *models.Feedback) *FeedbackResponse {
	resp := &FeedbackResponse{
		ID:          f.ID,
		Comment:     f.Comment,
		Rating:      f.Rating,
		IsAnonymous: f.IsAnonymous,
		CreatedAt:   f.CreatedAt,
	}
	if !f.IsAnonymous {
		voterID := f.VoterID
		resp.VoterID = &voterID
		if f.Voter != nil {
			resp.VoterName = f.Voter.FullName()
		}
	}
	return resp
}
