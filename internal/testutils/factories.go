package testutils

import (
	"time"

	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with a unique name
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedBy: "factory",
		},
		Name:        "project-" + id.String()[:8],
		Title:       "Night Shift",
		Description: "A test production",
	}
}

// WithTitle creates a project with a custom title
func (f *ProjectFactory) WithTitle(title string) *models.Project {
	project := f.Create()
	project.Title = title
	return project
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedBy: "factory",
		},
		Name:    "Old Harbour Warehouse",
		Address: "12 Quay Street",
		City:    "Lisbon",
	}
}

// WithName creates a location with a custom name
func (f *LocationFactory) WithName(name string) *models.Location {
	location := f.Create()
	location.Name = name
	return location
}

// RentalFactory provides methods to create test Rental data
type RentalFactory struct{}

// NewRentalFactory creates a new RentalFactory
func NewRentalFactory() *RentalFactory {
	return &RentalFactory{}
}

// Day returns midnight UTC of the given date
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Create creates a test Rental for the project and location spanning 1-10 May 2026
func (f *RentalFactory) Create(projectID, locationID uuid.UUID) *models.Rental {
	return &models.Rental{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedBy: "factory",
		},
		ProjectID:  projectID,
		LocationID: locationID,
		StartDate:  Day(2026, time.May, 1),
		EndDate:    Day(2026, time.May, 10),
	}
}

// WithProductionDates creates a rental with a visit, a filming window and a delivery
func (f *RentalFactory) WithProductionDates(projectID, locationID uuid.UUID) *models.Rental {
	rental := f.Create(projectID, locationID)
	visit := Day(2026, time.April, 20)
	filmingStart := Day(2026, time.May, 3)
	filmingEnd := Day(2026, time.May, 6)
	delivery := Day(2026, time.May, 10)
	rental.VisitDate = &visit
	rental.FilmingStartDate = &filmingStart
	rental.FilmingEndDate = &filmingEnd
	rental.DeliveryDate = &delivery
	return rental
}

// StageFactory provides methods to create test RentalStage data
type StageFactory struct{}

// NewStageFactory creates a new StageFactory
func NewStageFactory() *StageFactory {
	return &StageFactory{}
}

// Create creates a pending stage of the given type with default weight
func (f *StageFactory) Create(rentalID uuid.UUID, stageType models.StageType) *models.RentalStage {
	return &models.RentalStage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedBy: "factory",
		},
		RentalID:  rentalID,
		StageType: stageType,
		Title:     stageType.Label(),
		Status:    models.StageStatusPending,
		Weight:    models.DefaultStageWeight,
		SortOrder: stageType.SortOrder(),
	}
}

// WithStatus creates a stage in the given status and completion
func (f *StageFactory) WithStatus(rentalID uuid.UUID, stageType models.StageType, status models.StageStatus, completion float64) *models.RentalStage {
	stage := f.Create(rentalID, stageType)
	stage.Status = status
	stage.CompletionPercentage = completion
	return stage
}

// FactorySet provides easy access to all factories
type FactorySet struct {
	Project  *ProjectFactory
	Location *LocationFactory
	Rental   *RentalFactory
	Stage    *StageFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:  NewProjectFactory(),
		Location: NewLocationFactory(),
		Rental:   NewRentalFactory(),
		Stage:    NewStageFactory(),
	}
}
