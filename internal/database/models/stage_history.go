package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageHistoryEntry is an immutable audit record of one status/completion transition.
// It has no foreign key to rental_stages, so entries outlive the stage.
type StageHistoryEntry struct {
	ID                 uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StageID            uuid.UUID    `json:"stage_id" gorm:"type:uuid;not null;index:idx_stage_history_stage_changed,priority:1"`
	RentalID           uuid.UUID    `json:"rental_id" gorm:"type:uuid;not null;index"`
	PreviousStatus     *StageStatus `json:"previous_status" gorm:"type:varchar(50)"`
	NewStatus          StageStatus  `json:"new_status" gorm:"type:varchar(50);not null"`
	PreviousCompletion *float64     `json:"previous_completion"`
	NewCompletion      float64      `json:"new_completion" gorm:"not null"`
	ChangedBy          string       `json:"changed_by" gorm:"size:100"`
	Notes              string       `json:"notes" gorm:"type:text"`
	ChangedAt          time.Time    `json:"changed_at" gorm:"not null;index:idx_stage_history_stage_changed,priority:2"`
	CreatedAt          time.Time    `json:"created_at"`
}

// TableName returns the table name for StageHistoryEntry
func (StageHistoryEntry) TableName() string {
	return "stage_history"
}

// BeforeCreate sets the UUID and change time if not already set
func (e *StageHistoryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.ChangedAt.IsZero() {
		e.ChangedAt = time.Now()
	}
	return nil
}

// IsInitial reports whether this entry records the stage's creation
func (e *StageHistoryEntry) IsInitial() bool {
	return e.PreviousStatus == nil
}
