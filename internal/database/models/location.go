package models

// Location represents a physical place that can be rented for a production
type Location struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Address string `json:"address" gorm:"size:300" validate:"max=300"`
	City    string `json:"city" gorm:"size:100" validate:"max=100"`
}

// TableName returns the table name for Location
func (Location) TableName() string {
	return "locations"
}
