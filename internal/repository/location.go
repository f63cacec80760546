package repository

import (
	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByName retrieves the first location with the given name
func (r *LocationRepository) GetByName(name string) (*models.Location, error) {
	var location models.Location
	err := r.db.Order("created_at ASC").First(&location, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}
