// Package seed loads YAML fixtures of projects, locations, rentals and stages.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"location-production-backend/internal/database/models"
	"location-production-backend/internal/logger"
	"location-production-backend/internal/repository"
	"location-production-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// DefaultActor is recorded as the creator of seeded rows
const DefaultActor = "seed"

// ProjectData describes a project by its unique name
type ProjectData struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// LocationData describes a location by its name
type LocationData struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address,omitempty"`
	City    string `yaml:"city,omitempty"`
}

// StageData describes a stage and, optionally, the status it is moved to after creation
type StageData struct {
	Type        string   `yaml:"type"`
	Title       string   `yaml:"title,omitempty"`
	Weight      *float64 `yaml:"weight,omitempty"`
	Milestone   bool     `yaml:"milestone,omitempty"`
	Critical    bool     `yaml:"critical,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Completion  *float64 `yaml:"completion,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// RentalData references its project and location by name
type RentalData struct {
	Project            string      `yaml:"project"`
	Location           string      `yaml:"location"`
	StartDate          time.Time   `yaml:"start_date"`
	EndDate            time.Time   `yaml:"end_date"`
	VisitDate          *time.Time  `yaml:"visit_date,omitempty"`
	TechnicalVisitDate *time.Time  `yaml:"technical_visit_date,omitempty"`
	FilmingStartDate   *time.Time  `yaml:"filming_start_date,omitempty"`
	FilmingEndDate     *time.Time  `yaml:"filming_end_date,omitempty"`
	DeliveryDate       *time.Time  `yaml:"delivery_date,omitempty"`
	Notes              string      `yaml:"notes,omitempty"`
	DefaultStages      bool        `yaml:"default_stages,omitempty"`
	Stages             []StageData `yaml:"stages,omitempty"`
}

// Fixture is the content of one or more seed files
type Fixture struct {
	Projects  []ProjectData  `yaml:"projects"`
	Locations []LocationData `yaml:"locations"`
	Rentals   []RentalData   `yaml:"rentals"`
}

// Parse decodes a fixture, rejecting unknown keys
func Parse(r io.Reader) (*Fixture, error) {
	var fixture Fixture
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return &fixture, nil
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &fixture, nil
}

// LoadPath reads a fixture file, or every .yaml/.yml file under a directory merged in path order
func LoadPath(path string) (*Fixture, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return parseFile(path)
	}

	merged := &Fixture{}
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml")) {
			return nil
		}
		fixture, err := parseFile(p)
		if err != nil {
			return err
		}
		merged.Projects = append(merged.Projects, fixture.Projects...)
		merged.Locations = append(merged.Locations, fixture.Locations...)
		merged.Rentals = append(merged.Rentals, fixture.Rentals...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func parseFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fixture, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fixture, nil
}

// Validate checks names, references, enum values and date ranges before anything is written
func (f *Fixture) Validate() error {
	projects := make(map[string]bool, len(f.Projects))
	for i, p := range f.Projects {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("projects[%d]: name is required", i)
		}
		projects[p.Name] = true
	}
	locations := make(map[string]bool, len(f.Locations))
	for i, l := range f.Locations {
		if strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("locations[%d]: name is required", i)
		}
		locations[l.Name] = true
	}

	for i, r := range f.Rentals {
		if !projects[r.Project] {
			return fmt.Errorf("rentals[%d]: unknown project %q", i, r.Project)
		}
		if !locations[r.Location] {
			return fmt.Errorf("rentals[%d]: unknown location %q", i, r.Location)
		}
		if r.StartDate.IsZero() || r.EndDate.IsZero() {
			return fmt.Errorf("rentals[%d]: start_date and end_date are required", i)
		}
		if r.EndDate.Before(r.StartDate) {
			return fmt.Errorf("rentals[%d]: end_date is before start_date", i)
		}
		for j, s := range r.Stages {
			if !models.StageType(s.Type).IsValid() {
				return fmt.Errorf("rentals[%d].stages[%d]: unknown stage type %q", i, j, s.Type)
			}
			if s.Status != "" && !models.StageStatus(s.Status).IsValid() {
				return fmt.Errorf("rentals[%d].stages[%d]: unknown status %q", i, j, s.Status)
			}
		}
	}
	return nil
}

// Result counts what a load wrote
type Result struct {
	ProjectsCreated  int
	LocationsCreated int
	RentalsCreated   int
	StagesCreated    int
}

// Loader writes fixtures through the repositories and services
type Loader struct {
	repos   *repository.Repositories
	rentals service.RentalServiceInterface
	stages  service.StageServiceInterface
	actor   string
}

// NewLoader creates a new loader
func NewLoader(repos *repository.Repositories, rentals service.RentalServiceInterface, stages service.StageServiceInterface) *Loader {
	return &Loader{
		repos:   repos,
		rentals: rentals,
		stages:  stages,
		actor:   DefaultActor,
	}
}

// Load validates the fixture and writes it. Projects and locations that already
// exist by name are reused; rentals and stages are always created.
func (l *Loader) Load(ctx context.Context, fixture *Fixture) (*Result, error) {
	if err := fixture.Validate(); err != nil {
		return nil, err
	}
	log := logger.WithContext(ctx)
	result := &Result{}

	projectIDs := make(map[string]*models.Project, len(fixture.Projects))
	for _, data := range fixture.Projects {
		project, created, err := l.ensureProject(data)
		if err != nil {
			return result, fmt.Errorf("failed to create project %s: %w", data.Name, err)
		}
		projectIDs[data.Name] = project
		if created {
			result.ProjectsCreated++
		}
	}

	locationIDs := make(map[string]*models.Location, len(fixture.Locations))
	for _, data := range fixture.Locations {
		location, created, err := l.ensureLocation(data)
		if err != nil {
			return result, fmt.Errorf("failed to create location %s: %w", data.Name, err)
		}
		locationIDs[data.Name] = location
		if created {
			result.LocationsCreated++
		}
	}

	for i, data := range fixture.Rentals {
		rental, err := l.rentals.CreateRental(ctx, &service.CreateRentalRequest{
			ProjectID:          projectIDs[data.Project].ID,
			LocationID:         locationIDs[data.Location].ID,
			StartDate:          data.StartDate,
			EndDate:            data.EndDate,
			VisitDate:          data.VisitDate,
			TechnicalVisitDate: data.TechnicalVisitDate,
			FilmingStartDate:   data.FilmingStartDate,
			FilmingEndDate:     data.FilmingEndDate,
			DeliveryDate:       data.DeliveryDate,
			Notes:              data.Notes,
			WithDefaultStages:  data.DefaultStages,
			CreatedBy:          l.actor,
		})
		if err != nil {
			return result, fmt.Errorf("failed to create rental %d (%s at %s): %w", i, data.Project, data.Location, err)
		}
		result.RentalsCreated++
		result.StagesCreated += len(rental.Stages)

		for _, stageData := range data.Stages {
			if err := l.createStage(ctx, rental, stageData); err != nil {
				return result, err
			}
			result.StagesCreated++
		}
	}

	log.WithFields(logrus.Fields{
		"projects_created":  result.ProjectsCreated,
		"locations_created": result.LocationsCreated,
		"rentals_created":   result.RentalsCreated,
		"stages_created":    result.StagesCreated,
	}).Info("Seed data loaded")
	return result, nil
}

func (l *Loader) ensureProject(data ProjectData) (*models.Project, bool, error) {
	existing, err := l.repos.Projects.GetByName(data.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	project := &models.Project{
		Name:        data.Name,
		Title:       data.Title,
		Description: data.Description,
	}
	project.CreatedBy = l.actor
	project.UpdatedBy = l.actor
	if err := l.repos.Projects.Create(project); err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func (l *Loader) ensureLocation(data LocationData) (*models.Location, bool, error) {
	existing, err := l.repos.Locations.GetByName(data.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	location := &models.Location{
		Name:    data.Name,
		Address: data.Address,
		City:    data.City,
	}
	location.CreatedBy = l.actor
	location.UpdatedBy = l.actor
	if err := l.repos.Locations.Create(location); err != nil {
		return nil, false, err
	}
	return location, true, nil
}

func (l *Loader) createStage(ctx context.Context, rental *service.RentalResponse, data StageData) error {
	stage, err := l.stages.CreateStage(ctx, &service.CreateStageRequest{
		RentalID:    rental.ID,
		StageType:   models.StageType(data.Type),
		Title:       data.Title,
		Description: data.Description,
		Weight:      data.Weight,
		IsMilestone: data.Milestone,
		IsCritical:  data.Critical,
		CreatedBy:   l.actor,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s stage for rental %s: %w", data.Type, rental.ID, err)
	}

	status := models.StageStatus(data.Status)
	if (data.Status == "" || status == models.StageStatusPending) && data.Completion == nil {
		return nil
	}

	update := &service.UpdateStageRequest{
		CompletionPercentage: data.Completion,
		ChangedBy:            l.actor,
		HistoryNotes:         "seeded",
	}
	if data.Status != "" {
		update.Status = &status
	}
	if _, err := l.stages.UpdateStage(ctx, stage.ID, update); err != nil {
		return fmt.Errorf("failed to set %s stage status for rental %s: %w", data.Type, rental.ID, err)
	}
	return nil
}
