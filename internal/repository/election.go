package repository

import (
	"voteverse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ElectionRepository handles database operations for elections
type ElectionRepository struct {
	db *gorm.DB
}

// NewElectionRepository creates a new election repository
func NewElectionRepository(db *gorm.DB) *ElectionRepository {
	return &ElectionRepository{db: db}
}

// Create creates a new election
func (r *ElectionRepository) Create(election *models.Election) error {
	return r.db.Create(election).Error
}

// GetByID retrieves an election by ID
func (r *ElectionRepository) GetByID(id uuid.UUID) (*models.Election, error) {
	var election models.Election
	err := r.db.First(&election, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &election, nil
}

// GetByName retrieves an election by name
func (r *ElectionRepository) GetByName(name string) (*models.Election, error) {
	var election models.Election
	err := r.db.First(&election, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &election, nil
}

// GetActive retrieves the most recently started active election
func (r *ElectionRepository) GetActive() (*models.Election, error) {
	var election models.Election
	err := r.db.Where("status = ?", models.ElectionStatusActive).
		Order("starts_at DESC NULLS LAST, created_at DESC").
		First(&election).Error
	if err != nil {
		return nil, err
	}
	return &election, nil
}

// GetAll retrieves all elections with pagination
func (r *ElectionRepository) GetAll(limit, offset int) ([]models.Election, int64, error) {
	var elections []models.Election
	var total int64

	if err := r.db.Model(&models.Election{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&elections).Error
	if err != nil {
		return nil, 0, err
	}

	return elections, total, nil
}

// Update updates an election
func (r *ElectionRepository) Update(election *models.Election) error {
	return r.db.Save(election).Error
}

// Delete deletes an election
func (r *ElectionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Election{}, "id = ?", id).Error
}
