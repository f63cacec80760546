package repository

import (
	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RentalRepository handles database operations for rentals
type RentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// Create creates a new rental without touching its associations
func (r *RentalRepository) Create(rental *models.Rental) error {
	return r.db.Omit(clause.Associations).Create(rental).Error
}

// GetByID retrieves a rental by ID
func (r *RentalRepository) GetByID(id uuid.UUID) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.First(&rental, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// GetWithRelations retrieves a rental with its project and location
func (r *RentalRepository) GetWithRelations(id uuid.UUID) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.Preload("Project").Preload("Location").First(&rental, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// Exists checks if a rental exists by ID
func (r *RentalRepository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Rental{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// LockByID takes the rental row lock for the rest of the transaction.
// It returns gorm.ErrRecordNotFound when the rental does not exist.
func (r *RentalRepository) LockByID(id uuid.UUID) error {
	var rental models.Rental
	return r.db.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&rental, "id = ?", id).Error
}

// UpdateProductionDates writes the rental range and the optional production
// dates. Cleared dates are written as NULL. The completion percentage is never
// touched here.
func (r *RentalRepository) UpdateProductionDates(rental *models.Rental) error {
	res := r.db.Model(&models.Rental{}).Where("id = ?", rental.ID).Updates(map[string]interface{}{
		"start_date":           rental.StartDate,
		"end_date":             rental.EndDate,
		"visit_date":           rental.VisitDate,
		"technical_visit_date": rental.TechnicalVisitDate,
		"filming_start_date":   rental.FilmingStartDate,
		"filming_end_date":     rental.FilmingEndDate,
		"delivery_date":        rental.DeliveryDate,
		"updated_by":           rental.UpdatedBy,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateCompletionPercentage stores the recomputed stage roll-up
func (r *RentalRepository) UpdateCompletionPercentage(id uuid.UUID, percentage float64) error {
	res := r.db.Model(&models.Rental{}).Where("id = ?", id).UpdateColumn("completion_percentage", percentage)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a rental and reports how many rows were removed
func (r *RentalRepository) Delete(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Rental{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
