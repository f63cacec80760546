package models

import (
	"encoding/json"
)

// Project represents a production (film, series, commercial) that rents locations
type Project struct {
	BaseModel
	Name        string          `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,min=1,max=200"`
	Title       string          `json:"title" gorm:"size:250" validate:"max=250"`
	Description string          `json:"description" gorm:"type:text"`
	Metadata    json.RawMessage `json:"metadata" gorm:"type:jsonb"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}

// DisplayName returns the title when set, falling back to the name
func (p Project) DisplayName() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}
