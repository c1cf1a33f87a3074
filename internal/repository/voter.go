package repository

import (
	"errors"
	"strings"

	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VoterRepository handles database operations for voters
type VoterRepository struct {
	db *gorm.DB
}

// NewVoterRepository creates a new voter repository
func NewVoterRepository(db *gorm.DB) *VoterRepository {
	return &VoterRepository{db: db}
}

// Create creates a new voter
func (r *VoterRepository) Create(voter *models.Voter) error {
	return r.db.Create(voter).Error
}

// GetByID retrieves a voter by ID
func (r *VoterRepository) GetByID(id uuid.UUID) (*models.Voter, error) {
	var voter models.Voter
	err := r.db.First(&voter, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &voter, nil
}

// GetByRegNo retrieves a voter by registration number
func (r *VoterRepository) GetByRegNo(regNo string) (*models.Voter, error) {
	var voter models.Voter
	err := r.db.First(&voter, "reg_no = ?", regNo).Error
	if err != nil {
		return nil, err
	}
	return &voter, nil
}

// GetByEmail retrieves a voter by email (case-insensitive)
func (r *VoterRepository) GetByEmail(email string) (*models.Voter, error) {
	var voter models.Voter
	err := r.db.First(&voter, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &voter, nil
}

// GetByPhone retrieves a voter by phone number
func (r *VoterRepository) GetByPhone(phone string) (*models.Voter, error) {
	var voter models.Voter
	err := r.db.First(&voter, "phone = ?", phone).Error
	if err != nil {
		return nil, err
	}
	return &voter, nil
}

// List retrieves voters matching the filter with pagination
func (r *VoterRepository) List(filter VoterFilter, limit, offset int) ([]models.Voter, int64, error) {
	var voters []models.Voter
	var total int64

	query := r.db.Model(&models.Voter{})
	if filter.College != "" {
		query = query.Where("college = ?", filter.College)
	}
	if filter.Programme != "" {
		query = query.Where("programme = ?", filter.Programme)
	}
	if filter.DormBlock != "" {
		query = query.Where("dorm_block = ?", filter.DormBlock)
	}
	if filter.YearOfStudy > 0 {
		query = query.Where("year_of_study = ?", filter.YearOfStudy)
	}
	if filter.VotingStatus != "" {
		query = query.Where("voting_status = ?", filter.VotingStatus)
	}
	if filter.Query != "" {
		searchPattern := "%" + filter.Query + "%"
		query = query.Where("reg_no ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern, searchPattern)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("reg_no ASC").Limit(limit).Offset(offset).Find(&voters).Error
	if err != nil {
		return nil, 0, err
	}

	return voters, total, nil
}

// Update updates a voter
func (r *VoterRepository) Update(voter *models.Voter) error {
	return r.db.Save(voter).Error
}

// UpdateFields updates selected columns of a voter
func (r *VoterRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.Model(&models.Voter{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a voter
func (r *VoterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Voter{}, "id = ?", id).Error
}

// UpsertByRegNo inserts a voter or refreshes the registry-owned columns of an
// existing one. Local state (role, voting status, voice verification) is kept.
// Returns true when a new row was created.
func (r *VoterRepository) UpsertByRegNo(voter *models.Voter) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Voter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").First(&existing, "reg_no = ?", voter.RegNo).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			return tx.Create(voter).Error
		case err != nil:
			return err
		}

		voter.ID = existing.ID
		return tx.Model(&models.Voter{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
			"first_name":    voter.FirstName,
			"last_name":     voter.LastName,
			"email":         voter.Email,
			"phone":         voter.Phone,
			"college":       voter.College,
			"programme":     voter.Programme,
			"year_of_study": voter.YearOfStudy,
			"dorm_block":    voter.DormBlock,
			"image_url":     voter.ImageURL,
		}).Error
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
