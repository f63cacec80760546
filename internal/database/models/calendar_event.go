package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a calendar-visible occurrence. Events derived from a rental
// reference it by id only; the rental never holds its events.
type CalendarEvent struct {
	BaseModel
	RentalID        *uuid.UUID        `json:"rental_id,omitempty" gorm:"type:uuid;index"`
	EventType       CalendarEventType `json:"event_type" gorm:"type:varchar(50);not null;index" validate:"required"`
	Title           string            `json:"title" gorm:"not null;size:300" validate:"required,max=300"`
	Description     string            `json:"description" gorm:"type:text"`
	StartDate       time.Time         `json:"start_date" gorm:"not null;index" validate:"required"`
	EndDate         *time.Time        `json:"end_date"`
	AllDay          bool              `json:"all_day" gorm:"not null"`
	Color           string            `json:"color" gorm:"size:20"`
	Priority        EventPriority     `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	IsAutoGenerated bool              `json:"is_auto_generated" gorm:"default:false"`
	Metadata        json.RawMessage   `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for CalendarEvent
func (CalendarEvent) TableName() string {
	return "calendar_events"
}
