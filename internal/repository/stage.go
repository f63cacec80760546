package repository

import (
	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StageRepository handles database operations for rental stages
type StageRepository struct {
	db *gorm.DB
}

// NewStageRepository creates a new stage repository
func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{db: db}
}

// Create creates a new stage
func (r *StageRepository) Create(stage *models.RentalStage) error {
	return r.db.Create(stage).Error
}

// GetByID retrieves a stage by ID
func (r *StageRepository) GetByID(id uuid.UUID) (*models.RentalStage, error) {
	var stage models.RentalStage
	err := r.db.First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetByIDForUpdate retrieves a stage and locks its row (SELECT ... FOR UPDATE).
// Only meaningful inside a transaction.
func (r *StageRepository) GetByIDForUpdate(id uuid.UUID) (*models.RentalStage, error) {
	var stage models.RentalStage
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&stage, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

// GetByRentalID retrieves all stages of a rental in lifecycle order
func (r *StageRepository) GetByRentalID(rentalID uuid.UUID) ([]models.RentalStage, error) {
	var stages []models.RentalStage
	err := r.db.Where("rental_id = ?", rentalID).Order("sort_order ASC").Order("created_at ASC").Find(&stages).Error
	return stages, err
}

// Update updates a stage
func (r *StageRepository) Update(stage *models.RentalStage) error {
	return r.db.Save(stage).Error
}

// Delete deletes a stage and reports how many rows were removed
func (r *StageRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.RentalStage{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// DeleteByRentalID deletes all stages of a rental
func (r *StageRepository) DeleteByRentalID(rentalID uuid.UUID) (int64, error) {
	res := r.db.Where("rental_id = ?", rentalID).Delete(&models.RentalStage{})
	return res.RowsAffected, res.Error
}
