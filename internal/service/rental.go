package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"location-production-backend/internal/database/models"
	apperrors "location-production-backend/internal/errors"
	"location-production-backend/internal/logger"
	"location-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RentalService handles rental creation and production date changes. It
// drives the stage lifecycle and the calendar synchronizer inside its own
// transactions.
type RentalService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	stages    *StageService
	calendar  *CalendarSyncService
	validator *validator.Validate
}

// NewRentalService creates a new rental service
func NewRentalService(repos *repository.Repositories, tx repository.TransactorInterface, stages *StageService, calendar *CalendarSyncService, validator *validator.Validate) *RentalService {
	return &RentalService{
		repos:     repos,
		tx:        tx,
		stages:    stages,
		calendar:  calendar,
		validator: validator,
	}
}

// CreateRentalRequest represents the request to create a rental
type CreateRentalRequest struct {
	ProjectID          uuid.UUID  `json:"project_id" validate:"required"`
	LocationID         uuid.UUID  `json:"location_id" validate:"required"`
	StartDate          time.Time  `json:"start_date" validate:"required"`
	EndDate            time.Time  `json:"end_date" validate:"required"`
	VisitDate          *time.Time `json:"visit_date,omitempty"`
	TechnicalVisitDate *time.Time `json:"technical_visit_date,omitempty"`
	FilmingStartDate   *time.Time `json:"filming_start_date,omitempty"`
	FilmingEndDate     *time.Time `json:"filming_end_date,omitempty"`
	DeliveryDate       *time.Time `json:"delivery_date,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	WithDefaultStages  bool       `json:"with_default_stages"`
	CreatedBy          string     `json:"created_by,omitempty" validate:"max=100"`
}

// UpdateProductionDatesRequest patches a rental's dates. Nil fields are kept;
// optional dates named in Clear are removed.
type UpdateProductionDatesRequest struct {
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	VisitDate          *time.Time `json:"visit_date,omitempty"`
	TechnicalVisitDate *time.Time `json:"technical_visit_date,omitempty"`
	FilmingStartDate   *time.Time `json:"filming_start_date,omitempty"`
	FilmingEndDate     *time.Time `json:"filming_end_date,omitempty"`
	DeliveryDate       *time.Time `json:"delivery_date,omitempty"`
	Clear              []string   `json:"clear,omitempty" validate:"dive,oneof=visit_date technical_visit_date filming_start_date filming_end_date delivery_date"`
	ChangedBy          string     `json:"changed_by,omitempty" validate:"max=100"`
}

// RentalResponse represents the response for rental operations
type RentalResponse struct {
	ID                   uuid.UUID               `json:"id"`
	ProjectID            uuid.UUID               `json:"project_id"`
	ProjectName          string                  `json:"project_name,omitempty"`
	LocationID           uuid.UUID               `json:"location_id"`
	LocationName         string                  `json:"location_name,omitempty"`
	StartDate            string                  `json:"start_date"`
	EndDate              string                  `json:"end_date"`
	VisitDate            *string                 `json:"visit_date,omitempty"`
	TechnicalVisitDate   *string                 `json:"technical_visit_date,omitempty"`
	FilmingStartDate     *string                 `json:"filming_start_date,omitempty"`
	FilmingEndDate       *string                 `json:"filming_end_date,omitempty"`
	DeliveryDate         *string                 `json:"delivery_date,omitempty"`
	CompletionPercentage float64                 `json:"completion_percentage"`
	Notes                string                  `json:"notes"`
	Stages               []StageResponse         `json:"stages,omitempty"`
	Events               []CalendarEventResponse `json:"events,omitempty"`
	CreatedAt            string                  `json:"created_at"`
	UpdatedAt            string                  `json:"updated_at"`
}

// CreateRental creates a rental, optionally with the default stage set, and
// generates its calendar events in the same transaction.
func (s *RentalService) CreateRental(ctx context.Context, req *CreateRentalRequest) (*RentalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if err := checkTimeRange(req.FilmingStartDate, req.FilmingEndDate); err != nil {
		return nil, err
	}

	rental := &models.Rental{
		ProjectID:          req.ProjectID,
		LocationID:         req.LocationID,
		StartDate:          dayStart(req.StartDate),
		EndDate:            dayStart(req.EndDate),
		VisitDate:          dayPtr(req.VisitDate),
		TechnicalVisitDate: dayPtr(req.TechnicalVisitDate),
		FilmingStartDate:   dayPtr(req.FilmingStartDate),
		FilmingEndDate:     dayPtr(req.FilmingEndDate),
		DeliveryDate:       dayPtr(req.DeliveryDate),
		Notes:              req.Notes,
	}
	rental.CreatedBy = req.CreatedBy
	rental.UpdatedBy = req.CreatedBy

	var (
		stages []models.RentalStage
		events []models.CalendarEvent
	)
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		project, err := repos.Projects.GetByID(req.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProjectNotFound
			}
			return fmt.Errorf("failed to verify project: %w", err)
		}
		location, err := repos.Locations.GetByID(req.LocationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrLocationNotFound
			}
			return fmt.Errorf("failed to verify location: %w", err)
		}

		if err := repos.Rentals.Create(rental); err != nil {
			return fmt.Errorf("failed to create rental: %w", err)
		}
		rental.Project = *project
		rental.Location = *location

		if req.WithDefaultStages {
			stages, rental.CompletionPercentage, err = s.stages.createDefaultStages(repos, rental.ID, req.CreatedBy)
			if err != nil {
				return err
			}
		}

		events, err = s.calendar.regenerate(repos, rental)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"rental_id":   rental.ID,
		"project_id":  rental.ProjectID,
		"location_id": rental.LocationID,
		"stages":      len(stages),
		"events":      len(events),
	}).Info("Rental created")

	response := toRentalResponse(rental)
	for i := range stages {
		response.Stages = append(response.Stages, *toStageResponse(&stages[i]))
	}
	response.Events = toCalendarEventResponses(events)
	return response, nil
}

// GetRental retrieves a rental with its project and location
func (s *RentalService) GetRental(ctx context.Context, id uuid.UUID) (*RentalResponse, error) {
	rental, err := s.repos.Rentals.GetWithRelations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRentalNotFound
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	return toRentalResponse(rental), nil
}

// UpdateProductionDates patches a rental's dates and regenerates its calendar
// events. The completion percentage is left as is.
func (s *RentalService) UpdateProductionDates(ctx context.Context, id uuid.UUID, req *UpdateProductionDatesRequest) (*RentalResponse, error) {
	if req == nil {
		req = &UpdateProductionDatesRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	var (
		rental *models.Rental
		events []models.CalendarEvent
	)
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		current, err := repos.Rentals.GetWithRelations(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRentalNotFound
			}
			return fmt.Errorf("failed to get rental: %w", err)
		}

		applyProductionDates(current, req)
		if current.EndDate.Before(current.StartDate) {
			return apperrors.ErrInvalidTimeRange
		}
		if err := checkTimeRange(current.FilmingStartDate, current.FilmingEndDate); err != nil {
			return err
		}

		if err := repos.Rentals.UpdateProductionDates(current); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRentalNotFound
			}
			return fmt.Errorf("failed to update rental dates: %w", err)
		}
		events, err = s.calendar.regenerate(repos, current)
		if err != nil {
			return err
		}
		rental = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"rental_id": id,
		"events":    len(events),
	}).Info("Rental production dates updated")

	response := toRentalResponse(rental)
	response.Events = toCalendarEventResponses(events)
	return response, nil
}

func applyProductionDates(rental *models.Rental, req *UpdateProductionDatesRequest) {
	if req.StartDate != nil {
		rental.StartDate = dayStart(*req.StartDate)
	}
	if req.EndDate != nil {
		rental.EndDate = dayStart(*req.EndDate)
	}
	if req.VisitDate != nil {
		rental.VisitDate = dayPtr(req.VisitDate)
	}
	if req.TechnicalVisitDate != nil {
		rental.TechnicalVisitDate = dayPtr(req.TechnicalVisitDate)
	}
	if req.FilmingStartDate != nil {
		rental.FilmingStartDate = dayPtr(req.FilmingStartDate)
	}
	if req.FilmingEndDate != nil {
		rental.FilmingEndDate = dayPtr(req.FilmingEndDate)
	}
	if req.DeliveryDate != nil {
		rental.DeliveryDate = dayPtr(req.DeliveryDate)
	}
	for _, field := range req.Clear {
		switch field {
		case "visit_date":
			rental.VisitDate = nil
		case "technical_visit_date":
			rental.TechnicalVisitDate = nil
		case "filming_start_date":
			rental.FilmingStartDate = nil
		case "filming_end_date":
			rental.FilmingEndDate = nil
		case "delivery_date":
			rental.DeliveryDate = nil
		}
	}
	if req.ChangedBy != "" {
		rental.UpdatedBy = req.ChangedBy
	}
}

// DeleteRental removes a rental with its events and stages. It reports false
// when the rental did not exist.
func (s *RentalService) DeleteRental(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if _, err := repos.Events.DeleteByRentalID(id); err != nil {
			return fmt.Errorf("failed to delete calendar events: %w", err)
		}
		if _, err := repos.Stages.DeleteByRentalID(id); err != nil {
			return fmt.Errorf("failed to delete rental stages: %w", err)
		}
		rows, err := repos.Rentals.Delete(id)
		if err != nil {
			return fmt.Errorf("failed to delete rental: %w", err)
		}
		deleted = rows > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	if deleted {
		logger.WithContext(ctx).WithField("rental_id", id).Info("Rental deleted")
	}
	return deleted, nil
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dayStart(*t)
	return &d
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toRentalResponse(rental *models.Rental) *RentalResponse {
	response := &RentalResponse{
		ID:                   rental.ID,
		ProjectID:            rental.ProjectID,
		LocationID:           rental.LocationID,
		StartDate:            rental.StartDate.Format(dateLayout),
		EndDate:              rental.EndDate.Format(dateLayout),
		VisitDate:            formatDate(rental.VisitDate),
		TechnicalVisitDate:   formatDate(rental.TechnicalVisitDate),
		FilmingStartDate:     formatDate(rental.FilmingStartDate),
		FilmingEndDate:       formatDate(rental.FilmingEndDate),
		DeliveryDate:         formatDate(rental.DeliveryDate),
		CompletionPercentage: rental.CompletionPercentage,
		Notes:                rental.Notes,
		CreatedAt:            rental.CreatedAt.Format(timestampLayout),
		UpdatedAt:            rental.UpdatedAt.Format(timestampLayout),
	}
	if rental.Project.ID != uuid.Nil {
		response.ProjectName = rental.Project.DisplayName()
	}
	if rental.Location.ID != uuid.Nil {
		response.LocationName = rental.Location.Name
	}
	return response
}
