package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultStageWeight is the aggregation weight given to stages created without one
const DefaultStageWeight = 1.0

// RentalStage is a typed phase of a rental's production lifecycle
type RentalStage struct {
	BaseModel
	RentalID             uuid.UUID   `json:"rental_id" gorm:"type:uuid;not null;index" validate:"required"`
	StageType            StageType   `json:"stage_type" gorm:"type:varchar(50);not null" validate:"required"`
	Title                string      `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description          string      `json:"description" gorm:"type:text"`
	Status               StageStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending'"`
	CompletionPercentage float64     `json:"completion_percentage" gorm:"not null;default:0" validate:"gte=0,lte=100"`
	Weight               float64     `json:"weight" gorm:"not null" validate:"gte=0"`
	SortOrder            int         `json:"sort_order" gorm:"not null;default:0"`
	IsMilestone          bool        `json:"is_milestone" gorm:"default:false"`
	IsCritical           bool        `json:"is_critical" gorm:"default:false"`
	PlannedStartDate     *time.Time  `json:"planned_start_date"`
	PlannedEndDate       *time.Time  `json:"planned_end_date"`
	ActualStartDate      *time.Time  `json:"actual_start_date"`
	ActualEndDate        *time.Time  `json:"actual_end_date"`
	Notes                string      `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for RentalStage
func (RentalStage) TableName() string {
	return "rental_stages"
}

// IsOverdue reports whether the planned end has passed without the stage being closed
func (s *RentalStage) IsOverdue(now time.Time) bool {
	if s.PlannedEndDate == nil {
		return false
	}
	if s.Status == StageStatusCompleted || s.Status == StageStatusCancelled {
		return false
	}
	return s.PlannedEndDate.Before(now)
}
