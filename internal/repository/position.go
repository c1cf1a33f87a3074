package repository

import (
	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionRepository handles database operations for positions
type PositionRepository struct {
	db *gorm.DB
}

// NewPositionRepository creates a new position repository
func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// Create creates a new position
func (r *PositionRepository) Create(position *models.Position) error {
	return r.db.Create(position).Error
}

// GetByID retrieves a position by ID
func (r *PositionRepository) GetByID(id uuid.UUID) (*models.Position, error) {
	var position models.Position
	err := r.db.First(&position, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByName retrieves a position by name within an election
func (r *PositionRepository) GetByName(electionID uuid.UUID, name string) (*models.Position, error) {
	var position models.Position
	err := r.db.First(&position, "election_id = ? AND LOWER(name) = LOWER(?)", electionID, name).Error
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetByElectionID retrieves the positions of an election in ballot order
func (r *PositionRepository) GetByElectionID(electionID uuid.UUID) ([]models.Position, error) {
	var positions []models.Position
	err := r.db.Where("election_id = ?", electionID).
		Order("ballot_order ASC, name ASC").
		Find(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}

// GetByLevel retrieves positions of a level with pagination
func (r *PositionRepository) GetByLevel(level models.PositionLevel, limit, offset int) ([]models.Position, int64, error) {
	var positions []models.Position
	var total int64

	query := r.db.Model(&models.Position{}).Where("level = ?", level)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("ballot_order ASC, name ASC").Limit(limit).Offset(offset).Find(&positions).Error
	if err != nil {
		return nil, 0, err
	}

	return positions, total, nil
}

// GetAll retrieves all positions with pagination
func (r *PositionRepository) GetAll(limit, offset int) ([]models.Position, int64, error) {
	var positions []models.Position
	var total int64

	if err := r.db.Model(&models.Position{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("ballot_order ASC, name ASC").Limit(limit).Offset(offset).Find(&positions).Error
	if err != nil {
		return nil, 0, err
	}

	return positions, total, nil
}

// Update updates a position
func (r *PositionRepository) Update(position *models.Position) error {
	return r.db.Save(position).Error
}

// Delete deletes a position
func (r *PositionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Position{}, "id = ?", id).Error
}
