package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"location-production-backend/internal/database/models"
	apperrors "location-production-backend/internal/errors"
	"location-production-backend/internal/logger"
	"location-production-backend/internal/metrics"
	"location-production-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// CalendarSyncService keeps a rental's auto-generated calendar events in step
// with its production dates, in both directions.
type CalendarSyncService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	validator *validator.Validate
	recorder  metrics.Recorder
}

// NewCalendarSyncService creates a new calendar sync service
func NewCalendarSyncService(repos *repository.Repositories, tx repository.TransactorInterface, validator *validator.Validate) *CalendarSyncService {
	return &CalendarSyncService{
		repos:     repos,
		tx:        tx,
		validator: validator,
		recorder:  metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder
func (s *CalendarSyncService) WithRecorder(recorder metrics.Recorder) *CalendarSyncService {
	if recorder != nil {
		s.recorder = recorder
	}
	return s
}

// MoveEventRequest represents a drag of a calendar event to new dates
type MoveEventRequest struct {
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	ChangedBy string     `json:"changed_by,omitempty" validate:"max=100"`
}

// CalendarEventResponse represents the response for calendar event operations
type CalendarEventResponse struct {
	ID              uuid.UUID                `json:"id"`
	RentalID        *uuid.UUID               `json:"rental_id,omitempty"`
	EventType       models.CalendarEventType `json:"event_type"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	StartDate       string                   `json:"start_date"`
	EndDate         *string                  `json:"end_date,omitempty"`
	AllDay          bool                     `json:"all_day"`
	Color           string                   `json:"color"`
	Priority        models.EventPriority     `json:"priority"`
	IsAutoGenerated bool                     `json:"is_auto_generated"`
	Metadata        json.RawMessage          `json:"metadata,omitempty"`
}

type eventStyle struct {
	label    string
	color    string
	priority models.EventPriority
}

var eventStyles = map[models.CalendarEventType]eventStyle{
	models.CalendarEventTypeVisit:          {label: "Location visit", color: "#3B82F6", priority: models.EventPriorityMedium},
	models.CalendarEventTypeTechnicalVisit: {label: "Technical visit", color: "#8B5CF6", priority: models.EventPriorityMedium},
	models.CalendarEventTypeFilmingStart:   {label: "Filming starts", color: "#EF4444", priority: models.EventPriorityHigh},
	models.CalendarEventTypeFilmingEnd:     {label: "Filming ends", color: "#F97316", priority: models.EventPriorityHigh},
	models.CalendarEventTypeFilmingPeriod:  {label: "Filming", color: "#DC2626", priority: models.EventPriorityHigh},
	models.CalendarEventTypeDelivery:       {label: "Location delivery", color: "#10B981", priority: models.EventPriorityMedium},
	models.CalendarEventTypeRentalPeriod:   {label: "Rental period", color: "#6B7280", priority: models.EventPriorityLow},
}

// EventStyle returns the fixed color and priority of an event type
func EventStyle(eventType models.CalendarEventType) (string, models.EventPriority) {
	style, ok := eventStyles[eventType]
	if !ok {
		return "", models.EventPriorityMedium
	}
	return style.color, style.priority
}

// BuildRentalEvents derives the calendar events of a rental from its dates.
// It does not touch storage, and the same rental always yields the same events
// in the same order.
func BuildRentalEvents(rental *models.Rental) []models.CalendarEvent {
	if rental == nil {
		return nil
	}
	events := make([]models.CalendarEvent, 0, 7)
	add := func(eventType models.CalendarEventType, start time.Time, end *time.Time, sourceFields ...string) {
		events = append(events, newRentalEvent(rental, eventType, start, end, sourceFields))
	}

	if rental.VisitDate != nil {
		add(models.CalendarEventTypeVisit, *rental.VisitDate, nil, "visit_date")
	}
	if rental.TechnicalVisitDate != nil {
		add(models.CalendarEventTypeTechnicalVisit, *rental.TechnicalVisitDate, nil, "technical_visit_date")
	}
	if rental.FilmingStartDate != nil {
		add(models.CalendarEventTypeFilmingStart, *rental.FilmingStartDate, nil, "filming_start_date")
	}
	if rental.FilmingEndDate != nil {
		add(models.CalendarEventTypeFilmingEnd, *rental.FilmingEndDate, nil, "filming_end_date")
	}
	if rental.FilmingStartDate != nil && rental.FilmingEndDate != nil {
		end := *rental.FilmingEndDate
		add(models.CalendarEventTypeFilmingPeriod, *rental.FilmingStartDate, &end, "filming_start_date", "filming_end_date")
	}
	if rental.DeliveryDate != nil {
		add(models.CalendarEventTypeDelivery, *rental.DeliveryDate, nil, "delivery_date")
	}
	end := rental.EndDate
	add(models.CalendarEventTypeRentalPeriod, rental.StartDate, &end, "start_date", "end_date")

	return events
}

func newRentalEvent(rental *models.Rental, eventType models.CalendarEventType, start time.Time, end *time.Time, sourceFields []string) models.CalendarEvent {
	style := eventStyles[eventType]
	projectName := rental.Project.DisplayName()
	locationName := rental.Location.Name

	description := fmt.Sprintf("%s for project %s at location %s", style.label, projectName, locationName)
	if rental.Location.Address != "" {
		description += fmt.Sprintf(" (%s)", rental.Location.Address)
	}

	// map keys marshal sorted, so the payload is stable
	metadata, _ := json.Marshal(map[string]interface{}{
		"rental_id":      rental.ID,
		"project_id":     rental.ProjectID,
		"location_id":    rental.LocationID,
		"source_fields":  sourceFields,
		"auto_generated": true,
	})

	rentalID := rental.ID
	event := models.CalendarEvent{
		RentalID:        &rentalID,
		EventType:       eventType,
		Title:           fmt.Sprintf("%s: %s - %s", style.label, projectName, locationName),
		Description:     description,
		StartDate:       dayStart(start),
		AllDay:          true,
		Color:           style.color,
		Priority:        style.priority,
		IsAutoGenerated: true,
		Metadata:        metadata,
	}
	if end != nil {
		endDay := dayStart(*end)
		event.EndDate = &endDay
	}
	event.CreatedBy = rental.UpdatedBy
	event.UpdatedBy = rental.UpdatedBy
	return event
}

// RegenerateEvents replaces every calendar event of the rental with a freshly
// derived set. The delete and the inserts share one transaction.
func (s *CalendarSyncService) RegenerateEvents(ctx context.Context, rental *models.Rental) ([]models.CalendarEvent, error) {
	if rental == nil || rental.ID == uuid.Nil {
		return nil, apperrors.NewValidationError("rental", "rental with an id is required")
	}

	var events []models.CalendarEvent
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		exists, err := repos.Rentals.Exists(rental.ID)
		if err != nil {
			return fmt.Errorf("failed to verify rental: %w", err)
		}
		if !exists {
			return apperrors.ErrRentalNotFound
		}
		events, err = s.regenerate(repos, rental)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"rental_id": rental.ID,
		"events":    len(events),
	}).Info("Calendar events regenerated")
	return events, nil
}

// RegenerateEventsForRental loads a rental with its project and location and regenerates its events
func (s *CalendarSyncService) RegenerateEventsForRental(ctx context.Context, rentalID uuid.UUID) ([]CalendarEventResponse, error) {
	var events []models.CalendarEvent
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		rental, err := repos.Rentals.GetWithRelations(rentalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRentalNotFound
			}
			return fmt.Errorf("failed to get rental: %w", err)
		}
		events, err = s.regenerate(repos, rental)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"rental_id": rentalID,
		"events":    len(events),
	}).Info("Calendar events regenerated")
	return toCalendarEventResponses(events), nil
}

// regenerate runs inside a caller-owned transaction
func (s *CalendarSyncService) regenerate(repos *repository.Repositories, rental *models.Rental) ([]models.CalendarEvent, error) {
	events := BuildRentalEvents(rental)
	if _, err := repos.Events.DeleteByRentalID(rental.ID); err != nil {
		s.recorder.IncCalendarRegeneration(metrics.ResultFailure)
		return nil, fmt.Errorf("failed to delete calendar events: %w", err)
	}
	if err := repos.Events.CreateBatch(events); err != nil {
		s.recorder.IncCalendarRegeneration(metrics.ResultFailure)
		return nil, fmt.Errorf("failed to create calendar events: %w", err)
	}
	s.recorder.IncCalendarRegeneration(metrics.ResultSuccess)
	s.recorder.ObserveEventsGenerated(len(events))
	return events, nil
}

// DeleteEvents removes every calendar event of a rental and returns how many were removed
func (s *CalendarSyncService) DeleteEvents(ctx context.Context, rentalID uuid.UUID) (int64, error) {
	count, err := s.repos.Events.DeleteByRentalID(rentalID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete calendar events: %w", err)
	}
	if count > 0 {
		logger.WithContext(ctx).WithFields(logrus.Fields{
			"rental_id": rentalID,
			"deleted":   count,
		}).Info("Calendar events deleted")
	}
	return count, nil
}

// SyncEventToRental copies an edited event's dates back onto the rental and
// persists them. It reports whether any rental date changed. Event types with
// no mapping to a rental field are ignored.
func (s *CalendarSyncService) SyncEventToRental(ctx context.Context, event *models.CalendarEvent, rental *models.Rental) (bool, error) {
	changed, err := s.syncEventToRental(ctx, s.repos, event, rental)
	if err != nil {
		return false, err
	}
	if changed {
		logger.WithContext(ctx).WithFields(logrus.Fields{
			"rental_id":  rental.ID,
			"event_type": event.EventType,
		}).Info("Rental dates updated from calendar event")
	}
	return changed, nil
}

func (s *CalendarSyncService) syncEventToRental(ctx context.Context, repos *repository.Repositories, event *models.CalendarEvent, rental *models.Rental) (bool, error) {
	if event == nil || rental == nil {
		return false, apperrors.NewValidationError("event", "event and rental are required")
	}
	if event.RentalID == nil || *event.RentalID != rental.ID {
		return false, apperrors.ErrEventNotLinkedToRental
	}

	previous := *rental
	changed, handled := ApplySyncToRental(event, rental)
	if !handled {
		logger.WithContext(ctx).WithFields(logrus.Fields{
			"rental_id":  rental.ID,
			"event_type": event.EventType,
		}).Warn("Ignoring reverse sync for unmapped event type")
		s.recorder.IncReverseSync(string(event.EventType), metrics.SyncIgnored)
		return false, nil
	}
	if !changed {
		s.recorder.IncReverseSync(string(event.EventType), metrics.SyncUnchanged)
		return false, nil
	}
	if rental.EndDate.Before(rental.StartDate) {
		*rental = previous
		return false, apperrors.ErrInvalidTimeRange
	}

	if event.UpdatedBy != "" {
		rental.UpdatedBy = event.UpdatedBy
	}
	if err := repos.Rentals.UpdateProductionDates(rental); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrRentalNotFound
		}
		return false, fmt.Errorf("failed to update rental dates: %w", err)
	}
	s.recorder.IncReverseSync(string(event.EventType), metrics.SyncChanged)
	return true, nil
}

// ApplySyncToRental writes an event's dates onto the rental fields its type
// maps to. Dates are compared by calendar day. It reports whether a field
// changed and whether the event type has a mapping at all.
func ApplySyncToRental(event *models.CalendarEvent, rental *models.Rental) (changed bool, handled bool) {
	start := dayStart(event.StartDate)
	switch event.EventType {
	case models.CalendarEventTypeVisit:
		return setOptionalDate(&rental.VisitDate, start), true
	case models.CalendarEventTypeTechnicalVisit:
		return setOptionalDate(&rental.TechnicalVisitDate, start), true
	case models.CalendarEventTypeFilmingStart:
		return setOptionalDate(&rental.FilmingStartDate, start), true
	case models.CalendarEventTypeFilmingEnd:
		return setOptionalDate(&rental.FilmingEndDate, start), true
	case models.CalendarEventTypeDelivery:
		return setOptionalDate(&rental.DeliveryDate, start), true
	case models.CalendarEventTypeFilmingPeriod:
		changed = setOptionalDate(&rental.FilmingStartDate, start)
		if event.EndDate != nil {
			changed = setOptionalDate(&rental.FilmingEndDate, dayStart(*event.EndDate)) || changed
		}
		return changed, true
	case models.CalendarEventTypeRentalPeriod:
		changed = setDate(&rental.StartDate, start)
		if event.EndDate != nil {
			changed = setDate(&rental.EndDate, dayStart(*event.EndDate)) || changed
		}
		return changed, true
	default:
		return false, false
	}
}

// MoveEvent moves an event to new dates. Linked rentals get the new dates and
// their events are regenerated; the returned event is the regenerated one of
// the same type, or the moved event itself when nothing changed.
func (s *CalendarSyncService) MoveEvent(ctx context.Context, eventID uuid.UUID, req *MoveEventRequest) (*CalendarEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if req.EndDate != nil && dayStart(*req.EndDate).Before(dayStart(req.StartDate)) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	var (
		result      models.CalendarEvent
		regenerated bool
	)
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		event, err := repos.Events.GetByID(eventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCalendarEventNotFound
			}
			return fmt.Errorf("failed to get calendar event: %w", err)
		}

		event.StartDate = dayStart(req.StartDate)
		event.EndDate = nil
		if req.EndDate != nil {
			end := dayStart(*req.EndDate)
			event.EndDate = &end
		}
		if req.ChangedBy != "" {
			event.UpdatedBy = req.ChangedBy
		}

		if event.RentalID != nil {
			rental, err := repos.Rentals.GetWithRelations(*event.RentalID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to get rental: %w", err)
			}
			if rental != nil {
				changed, err := s.syncEventToRental(ctx, repos, event, rental)
				if err != nil {
					return err
				}
				if changed {
					events, err := s.regenerate(repos, rental)
					if err != nil {
						return err
					}
					for _, e := range events {
						if e.EventType == event.EventType {
							result = e
							regenerated = true
							return nil
						}
					}
				}
			}
		}

		if err := repos.Events.Update(event); err != nil {
			return fmt.Errorf("failed to update calendar event: %w", err)
		}
		result = *event
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"event_id":    eventID,
		"regenerated": regenerated,
	}).Info("Calendar event moved")

	response := toCalendarEventResponse(&result)
	return &response, nil
}

// ListEventsByRental returns a rental's calendar events ordered by start date
func (s *CalendarSyncService) ListEventsByRental(ctx context.Context, rentalID uuid.UUID) ([]CalendarEventResponse, error) {
	events, err := s.repos.Events.GetByRentalID(rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar events: %w", err)
	}
	return toCalendarEventResponses(events), nil
}

// ListEventsInRange returns the events overlapping [from, to]
func (s *CalendarSyncService) ListEventsInRange(ctx context.Context, from, to time.Time) ([]CalendarEventResponse, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	events, err := s.repos.Events.GetInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar events: %w", err)
	}
	return toCalendarEventResponses(events), nil
}

// dayStart truncates t to midnight UTC of its calendar day
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dayStart(a).Equal(dayStart(b))
}

func setOptionalDate(field **time.Time, value time.Time) bool {
	if *field != nil && sameDay(**field, value) {
		return false
	}
	v := value
	*field = &v
	return true
}

func setDate(field *time.Time, value time.Time) bool {
	if sameDay(*field, value) {
		return false
	}
	*field = value
	return true
}

func toCalendarEventResponse(event *models.CalendarEvent) CalendarEventResponse {
	response := CalendarEventResponse{
		ID:              event.ID,
		RentalID:        event.RentalID,
		EventType:       event.EventType,
		Title:           event.Title,
		Description:     event.Description,
		StartDate:       event.StartDate.Format(dateLayout),
		AllDay:          event.AllDay,
		Color:           event.Color,
		Priority:        event.Priority,
		IsAutoGenerated: event.IsAutoGenerated,
		Metadata:        event.Metadata,
	}
	if event.EndDate != nil {
		end := event.EndDate.Format(dateLayout)
		response.EndDate = &end
	}
	return response
}

func toCalendarEventResponses(events []models.CalendarEvent) []CalendarEventResponse {
	responses := make([]CalendarEventResponse, len(events))
	for i := range events {
		responses[i] = toCalendarEventResponse(&events[i])
	}
	return responses
}
