package repository

import (
	"time"

	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoiceSampleRepository handles database operations for voice sample metadata
type VoiceSampleRepository struct {
	db *gorm.DB
}

// NewVoiceSampleRepository creates a new voice sample repository
func NewVoiceSampleRepository(db *gorm.DB) *VoiceSampleRepository {
	return &VoiceSampleRepository{db: db}
}

// Save inserts or replaces the sample of a voter
func (r *VoiceSampleRepository) Save(sample *models.VoiceSample) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "voter_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"object_key", "content_type", "size_bytes", "checksum", "updated_at"}),
	}).Create(sample).Error
}

// GetByVoterID retrieves the sample of a voter
func (r *VoiceSampleRepository) GetByVoterID(voterID uuid.UUID) (*models.VoiceSample, error) {
	var sample models.VoiceSample
	err := r.db.First(&sample, "voter_id = ?", voterID).Error
	if err != nil {
		return nil, err
	}
	return &sample, nil
}

// DeleteByVoterID deletes the sample of a voter
func (r *VoiceSampleRepository) DeleteByVoterID(voterID uuid.UUID) error {
	return r.db.Delete(&models.VoiceSample{}, "voter_id = ?", voterID).Error
}

// VerificationAttemptRepository handles database operations for verification attempts
type VerificationAttemptRepository struct {
	db *gorm.DB
}

// NewVerificationAttemptRepository creates a new verification attempt repository
func NewVerificationAttemptRepository(db *gorm.DB) *VerificationAttemptRepository {
	return &VerificationAttemptRepository{db: db}
}

// Create records an attempt
func (r *VerificationAttemptRepository) Create(attempt *models.VerificationAttempt) error {
	return r.db.Create(attempt).Error
}

// LastSuccessAt returns the time of the voter's latest successful attempt, or nil
func (r *VerificationAttemptRepository) LastSuccessAt(voterID uuid.UUID) (*time.Time, error) {
	var attempt models.VerificationAttempt
	err := r.db.Where("voter_id = ? AND success = ?", voterID, true).
		Order("attempted_at DESC").
		Limit(1).
		Find(&attempt).Error
	if err != nil {
		return nil, err
	}
	if attempt.ID == uuid.Nil {
		return nil, nil
	}
	return &attempt.AttemptedAt, nil
}

// CountFailuresSince counts failed attempts after since
func (r *VerificationAttemptRepository) CountFailuresSince(voterID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.VerificationAttempt{}).
		Where("voter_id = ? AND success = ? AND attempted_at > ?", voterID, false, since).
		Count(&count).Error
	return count, err
}
