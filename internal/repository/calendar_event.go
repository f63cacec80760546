package repository

import (
	"time"

	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarEventRepository handles database operations for calendar events
type CalendarEventRepository struct {
	db *gorm.DB
}

// NewCalendarEventRepository creates a new calendar event repository
func NewCalendarEventRepository(db *gorm.DB) *CalendarEventRepository {
	return &CalendarEventRepository{db: db}
}

// CreateBatch inserts the given events in one statement
func (r *CalendarEventRepository) CreateBatch(events []models.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.Create(&events).Error
}

// GetByID retrieves a calendar event by ID
func (r *CalendarEventRepository) GetByID(id uuid.UUID) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByRentalID retrieves all events referencing a rental, earliest first
func (r *CalendarEventRepository) GetByRentalID(rentalID uuid.UUID) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := r.db.Where("rental_id = ?", rentalID).Order("start_date ASC").Order("event_type ASC").Find(&events).Error
	return events, err
}

// GetInRange retrieves events overlapping [from, to]
func (r *CalendarEventRepository) GetInRange(from, to time.Time) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := r.db.
		Where("start_date <= ? AND COALESCE(end_date, start_date) >= ?", to, from).
		Order("start_date ASC").
		Order("event_type ASC").
		Find(&events).Error
	return events, err
}

// Update updates a calendar event
func (r *CalendarEventRepository) Update(event *models.CalendarEvent) error {
	return r.db.Save(event).Error
}

// DeleteByRentalID deletes every event referencing a rental
func (r *CalendarEventRepository) DeleteByRentalID(rentalID uuid.UUID) (int64, error) {
	res := r.db.Where("rental_id = ?", rentalID).Delete(&models.CalendarEvent{})
	return res.RowsAffected, res.Error
}
