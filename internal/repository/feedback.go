package repository

import (
	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackRepository handles database operations for feedback
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create creates new feedback
func (r *FeedbackRepository) Create(feedback *models.Feedback) error {
	return r.db.Omit("Voter").Create(feedback).Error
}

// GetByID retrieves feedback with voter details
func (r *FeedbackRepository) GetByID(id uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.Preload("Voter").First(&feedback, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// List retrieves feedback matching the filter, newest first
func (r *FeedbackRepository) List(filter FeedbackFilter, limit, offset int) ([]models.Feedback, int64, error) {
	var items []models.Feedback
	var total int64

	query := r.db.Model(&models.Feedback{})
	if filter.VoterID != nil {
		query = query.Where("voter_id = ?", *filter.VoterID)
	}
	if filter.Rating > 0 {
		query = query.Where("rating = ?", filter.Rating)
	}
	if filter.Anonymous != nil {
		query = query.Where("is_anonymous = ?", *filter.Anonymous)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Voter").Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Delete deletes feedback
func (r *FeedbackRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Feedback{}, "id = ?", id).Error
}
