package models

import (
	"time"

	"github.com/google/uuid"
)

// Rental represents one location's usage period within one project.
// CompletionPercentage is a cached roll-up of the rental's stages and is only
// written by the stage lifecycle recompute.
type Rental struct {
	BaseModel
	ProjectID            uuid.UUID `json:"project_id" gorm:"type:uuid;not null;index" validate:"required"`
	LocationID           uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate            time.Time `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate              time.Time `json:"end_date" gorm:"type:date;not null" validate:"required"`
	CompletionPercentage float64   `json:"completion_percentage" gorm:"not null;default:0"`
	Notes                string    `json:"notes" gorm:"type:text"`

	// Production dates, source data for the derived calendar events
	VisitDate          *time.Time `json:"visit_date" gorm:"type:date"`
	TechnicalVisitDate *time.Time `json:"technical_visit_date" gorm:"type:date"`
	FilmingStartDate   *time.Time `json:"filming_start_date" gorm:"type:date"`
	FilmingEndDate     *time.Time `json:"filming_end_date" gorm:"type:date"`
	DeliveryDate       *time.Time `json:"delivery_date" gorm:"type:date"`

	// Relationships
	Project  Project       `json:"project,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Location Location      `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	Stages   []RentalStage `json:"stages,omitempty" gorm:"foreignKey:RentalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Rental
func (Rental) TableName() string {
	return "rentals"
}
