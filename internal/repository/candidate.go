package repository

import (
	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CandidateRepository handles database operations for candidates
type CandidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// Create creates a new candidate
func (r *CandidateRepository) Create(candidate *models.Candidate) error {
	return r.db.Create(candidate).Error
}

// GetByID retrieves a candidate with voter details
func (r *CandidateRepository) GetByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.Preload("Voter").First(&candidate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// GetByVoterAndPosition retrieves the candidacy of a voter for a position
func (r *CandidateRepository) GetByVoterAndPosition(voterID, positionID uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.db.First(&candidate, "voter_id = ? AND position_id = ?", voterID, positionID).Error
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// GetByPositionID retrieves the candidates of a position in ballot order.
// With onBallotOnly, unapproved and inactive candidates are left out.
func (r *CandidateRepository) GetByPositionID(positionID uuid.UUID, onBallotOnly bool) ([]models.Candidate, error) {
	var candidates []models.Candidate
	query := r.db.Preload("Voter").Where("position_id = ?", positionID)
	if onBallotOnly {
		query = query.Where("is_approved = ? AND is_active = ?", true, true)
	}
	err := query.Order("ballot_order ASC, created_at ASC").Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetApproved retrieves approved candidates with pagination
func (r *CandidateRepository) GetApproved(limit, offset int) ([]models.Candidate, int64, error) {
	return r.paginate(r.db.Model(&models.Candidate{}).Where("is_approved = ?", true), limit, offset)
}

// GetActive retrieves active candidates with pagination
func (r *CandidateRepository) GetActive(limit, offset int) ([]models.Candidate, int64, error) {
	return r.paginate(r.db.Model(&models.Candidate{}).Where("is_active = ?", true), limit, offset)
}

// GetAll retrieves all candidates with pagination
func (r *CandidateRepository) GetAll(limit, offset int) ([]models.Candidate, int64, error) {
	return r.paginate(r.db.Model(&models.Candidate{}), limit, offset)
}

func (r *CandidateRepository) paginate(query *gorm.DB, limit, offset int) ([]models.Candidate, int64, error) {
	var candidates []models.Candidate
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Voter").Order("created_at ASC").Limit(limit).Offset(offset).Find(&candidates).Error
	if err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

// Update updates a candidate
func (r *CandidateRepository) Update(candidate *models.Candidate) error {
	return r.db.Omit("Voter", "Position").Save(candidate).Error
}

// UpdateFields updates selected columns of a candidate
func (r *CandidateRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a candidate
func (r *CandidateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Candidate{}, "id = ?", id).Error
}
