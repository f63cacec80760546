package service

import (
	"context"
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

const timestampLayout = "2006-01-02T15:04:05Z07:00"

// StageService manages the lifecycle of rental stages. Every write runs in a
// single transaction that also appends history and recomputes the rental's
// completion percentage.
type StageService struct {
	repos     *repository.Repositories
	tx        repository.TransactorInterface
	validator *validator.Validate
	policy    *TransitionPolicy
	recorder  metrics.Recorder
	now       func() time.Time
}

// NewStageService creates a new stage service with the permissive transition policy
func NewStageService(repos *repository.Repositories, tx repository.TransactorInterface, validator *validator.Validate) *StageService {
	return &StageService{
		repos:     repos,
		tx:        tx,
		validator: validator,
		policy:    PermissiveTransitions(),
		recorder:  metrics.NoopRecorder{},
		now:       time.Now,
	}
}

// WithTransitionPolicy replaces the status transition policy
func (s *StageService) WithTransitionPolicy(policy *TransitionPolicy) *StageService {
	if policy != nil {
		s.policy = policy
	}
	return s
}

// WithRecorder sets the metrics recorder
func (s *StageService) WithRecorder(recorder metrics.Recorder) *StageService {
	if recorder != nil {
		s.recorder = recorder
	}
	return s
}

// WithClock overrides the time source used for stamping dates and history
func (s *StageService) WithClock(now func() time.Time) *StageService {
	if now != nil {
		s.now = now
	}
	return s
}

// CreateStageRequest represents the request to create a stage
type CreateStageRequest struct {
	RentalID         uuid.UUID        `json:"rental_id" validate:"required"`
	StageType        models.StageType `json:"stage_type" validate:"required"`
	Title            string           `json:"title,omitempty" validate:"max=200"`
	Description      string           `json:"description,omitempty"`
	Weight           *float64         `json:"weight,omitempty" validate:"omitempty,gte=0"`
	IsMilestone      bool             `json:"is_milestone"`
	IsCritical       bool             `json:"is_critical"`
	PlannedStartDate *time.Time       `json:"planned_start_date,omitempty"`
	PlannedEndDate   *time.Time       `json:"planned_end_date,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	CreatedBy        string           `json:"created_by,omitempty" validate:"max=100"`
}

// UpdateStageRequest represents a partial stage update. Nil fields are left untouched.
type UpdateStageRequest struct {
	Title                *string             `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description          *string             `json:"description,omitempty"`
	Status               *models.StageStatus `json:"status,omitempty"`
	CompletionPercentage *float64            `json:"completion_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Weight               *float64            `json:"weight,omitempty" validate:"omitempty,gte=0"`
	IsMilestone          *bool               `json:"is_milestone,omitempty"`
	IsCritical           *bool               `json:"is_critical,omitempty"`
	PlannedStartDate     *time.Time          `json:"planned_start_date,omitempty"`
	PlannedEndDate       *time.Time          `json:"planned_end_date,omitempty"`
	ActualStartDate      *time.Time          `json:"actual_start_date,omitempty"`
	ActualEndDate        *time.Time          `json:"actual_end_date,omitempty"`
	Notes                *string             `json:"notes,omitempty"`
	ChangedBy            string              `json:"changed_by,omitempty" validate:"max=100"`
	HistoryNotes         string              `json:"history_notes,omitempty"`
}

// StageResponse represents the response for stage operations
type StageResponse struct {
	ID                   uuid.UUID          `json:"id"`
	RentalID             uuid.UUID          `json:"rental_id"`
	StageType            models.StageType   `json:"stage_type"`
	StageLabel           string             `json:"stage_label"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	Status               models.StageStatus `json:"status"`
	CompletionPercentage float64            `json:"completion_percentage"`
	Weight               float64            `json:"weight"`
	SortOrder            int                `json:"sort_order"`
	IsMilestone          bool               `json:"is_milestone"`
	IsCritical           bool               `json:"is_critical"`
	PlannedStartDate     *string            `json:"planned_start_date,omitempty"`
	PlannedEndDate       *string            `json:"planned_end_date,omitempty"`
	ActualStartDate      *string            `json:"actual_start_date,omitempty"`
	ActualEndDate        *string            `json:"actual_end_date,omitempty"`
	Notes                string             `json:"notes"`
	CreatedBy            string             `json:"created_by,omitempty"`
	UpdatedBy            string             `json:"updated_by,omitempty"`
	CreatedAt            string             `json:"created_at"`
	UpdatedAt            string             `json:"updated_at"`
}

// StageHistoryResponse represents one stage history entry
type StageHistoryResponse struct {
	ID                 uuid.UUID           `json:"id"`
	StageID            uuid.UUID           `json:"stage_id"`
	RentalID           uuid.UUID           `json:"rental_id"`
	PreviousStatus     *models.StageStatus `json:"previous_status"`
	NewStatus          models.StageStatus  `json:"new_status"`
	PreviousCompletion *float64            `json:"previous_completion"`
	NewCompletion      float64             `json:"new_completion"`
	ChangedBy          string              `json:"changed_by"`
	Notes              string              `json:"notes,omitempty"`
	ChangedAt          string              `json:"changed_at"`
}

// StageHistoryListResponse represents a paginated rental history feed
type StageHistoryListResponse struct {
	Entries  []StageHistoryResponse `json:"entries"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}

// RentalProgressResponse represents the progress summary of a rental
type RentalProgressResponse struct {
	RentalID                   uuid.UUID `json:"rental_id"`
	CompletionPercentage       float64   `json:"completion_percentage"`
	StoredCompletionPercentage float64   `json:"stored_completion_percentage"`
	TotalStages                int       `json:"total_stages"`
	Pending                    int       `json:"pending"`
	InProgress                 int       `json:"in_progress"`
	Completed                  int       `json:"completed"`
	OnHold                     int       `json:"on_hold"`
	Cancelled                  int       `json:"cancelled"`
	CriticalOpen               int       `json:"critical_open"`
	Overdue                    int       `json:"overdue"`
	MilestonesTotal            int       `json:"milestones_total"`
	MilestonesCompleted        int       `json:"milestones_completed"`
}

// stageTemplate describes one entry of the default stage set
type stageTemplate struct {
	stageType   models.StageType
	weight      float64
	isMilestone bool
	isCritical  bool
}

var defaultStageTemplates = []stageTemplate{
	{stageType: models.StageTypeProspecting, weight: 1},
	{stageType: models.StageTypeSiteVisit, weight: 1},
	{stageType: models.StageTypeTechnicalEvaluation, weight: 1},
	{stageType: models.StageTypeClientApproval, weight: 1, isMilestone: true},
	{stageType: models.StageTypeNegotiation, weight: 1},
	{stageType: models.StageTypeContracting, weight: 1.5, isMilestone: true, isCritical: true},
	{stageType: models.StageTypePreparation, weight: 1},
	{stageType: models.StageTypeSetup, weight: 1},
	{stageType: models.StageTypeFilming, weight: 2, isMilestone: true, isCritical: true},
	{stageType: models.StageTypeTeardown, weight: 1},
	{stageType: models.StageTypeDelivery, weight: 1, isMilestone: true},
}

// CreateStage creates a pending stage for a rental, records its initial
// history entry and refreshes the rental's completion percentage.
func (s *StageService) CreateStage(ctx context.Context, req *CreateStageRequest) (*StageResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if !req.StageType.IsValid() {
		return nil, apperrors.NewValidationError("stage_type", fmt.Sprintf("unknown stage type %q", req.StageType))
	}
	if err := checkTimeRange(req.PlannedStartDate, req.PlannedEndDate); err != nil {
		return nil, err
	}

	weight := models.DefaultStageWeight
	if req.Weight != nil {
		weight = *req.Weight
	}
	title := req.Title
	if title == "" {
		title = req.StageType.Label()
	}

	stage := &models.RentalStage{
		RentalID:             req.RentalID,
		StageType:            req.StageType,
		Title:                title,
		Description:          req.Description,
		Status:               models.StageStatusPending,
		CompletionPercentage: DefaultCompletionForStatus(models.StageStatusPending),
		Weight:               weight,
		SortOrder:            req.StageType.SortOrder(),
		IsMilestone:          req.IsMilestone,
		IsCritical:           req.IsCritical,
		PlannedStartDate:     req.PlannedStartDate,
		PlannedEndDate:       req.PlannedEndDate,
		Notes:                req.Notes,
	}
	stage.CreatedBy = req.CreatedBy
	stage.UpdatedBy = req.CreatedBy

	var completion float64
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := lockRental(repos, req.RentalID); err != nil {
			return err
		}
		if err := s.insertStage(repos, stage, req.CreatedBy); err != nil {
			return err
		}
		var err error
		completion, err = recomputeCompletion(repos, req.RentalID)
		return err
	})
	s.recorder.IncStageOperation("create", metrics.Result(err))
	if err != nil {
		return nil, err
	}
	s.recorder.IncHistoryAppended(1)
	s.recorder.ObserveRentalCompletion(completion)

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"stage_id":   stage.ID,
		"rental_id":  stage.RentalID,
		"stage_type": stage.StageType,
		"completion": completion,
	}).Info("Stage created")

	return toStageResponse(stage), nil
}

// CreateDefaultStages creates the standard stage set for a rental. Stage types
// the rental already has are skipped; the created stages are returned in order.
func (s *StageService) CreateDefaultStages(ctx context.Context, rentalID uuid.UUID, createdBy string) ([]StageResponse, error) {
	var created []models.RentalStage
	var completion float64
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		var err error
		created, completion, err = s.createDefaultStages(repos, rentalID, createdBy)
		return err
	})
	s.recorder.IncStageOperation("create_defaults", metrics.Result(err))
	if err != nil {
		return nil, err
	}
	s.recorder.IncHistoryAppended(len(created))
	s.recorder.ObserveRentalCompletion(completion)

	logger.WithContext(ctx).WithFields(logrus.Fields{
		"rental_id": rentalID,
		"created":   len(created),
	}).Info("Default stages created")

	responses := make([]StageResponse, len(created))
	for i := range created {
		responses[i] = *toStageResponse(&created[i])
	}
	return responses, nil
}

// createDefaultStages runs inside a caller-owned transaction
func (s *StageService) createDefaultStages(repos *repository.Repositories, rentalID uuid.UUID, createdBy string) ([]models.RentalStage, float64, error) {
	if err := lockRental(repos, rentalID); err != nil {
		return nil, 0, err
	}
	existing, err := repos.Stages.GetByRentalID(rentalID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get rental stages: %w", err)
	}
	present := make(map[models.StageType]bool, len(existing))
	for _, stage := range existing {
		present[stage.StageType] = true
	}

	created := make([]models.RentalStage, 0, len(defaultStageTemplates))
	for _, tmpl := range defaultStageTemplates {
		if present[tmpl.stageType] {
			continue
		}
		stage := models.RentalStage{
			RentalID:             rentalID,
			StageType:            tmpl.stageType,
			Title:                tmpl.stageType.Label(),
			Status:               models.StageStatusPending,
			CompletionPercentage: DefaultCompletionForStatus(models.StageStatusPending),
			Weight:               tmpl.weight,
			SortOrder:            tmpl.stageType.SortOrder(),
			IsMilestone:          tmpl.isMilestone,
			IsCritical:           tmpl.isCritical,
		}
		stage.CreatedBy = createdBy
		stage.UpdatedBy = createdBy
		if err := s.insertStage(repos, &stage, createdBy); err != nil {
			return nil, 0, err
		}
		created = append(created, stage)
	}

	completion, err := recomputeCompletion(repos, rentalID)
	if err != nil {
		return nil, 0, err
	}
	return created, completion, nil
}

func (s *StageService) insertStage(repos *repository.Repositories, stage *models.RentalStage, createdBy string) error {
	if err := repos.Stages.Create(stage); err != nil {
		return fmt.Errorf("failed to create stage: %w", err)
	}
	entry := &models.StageHistoryEntry{
		StageID:       stage.ID,
		RentalID:      stage.RentalID,
		NewStatus:     stage.Status,
		NewCompletion: stage.CompletionPercentage,
		ChangedBy:     createdBy,
		Notes:         "stage created",
		ChangedAt:     s.now(),
	}
	if err := repos.History.Append(entry); err != nil {
		return fmt.Errorf("failed to append stage history: %w", err)
	}
	return nil
}

// GetStage retrieves a stage by ID
func (s *StageService) GetStage(ctx context.Context, id uuid.UUID) (*StageResponse, error) {
	stage, err := s.repos.Stages.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStageNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return toStageResponse(stage), nil
}

// ListStagesByRental returns a rental's stages in lifecycle order
func (s *StageService) ListStagesByRental(ctx context.Context, rentalID uuid.UUID) ([]StageResponse, error) {
	exists, err := s.repos.Rentals.Exists(rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify rental: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrRentalNotFound
	}

	stages, err := s.repos.Stages.GetByRentalID(rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rental stages: %w", err)
	}
	responses := make([]StageResponse, len(stages))
	for i := range stages {
		responses[i] = *toStageResponse(&stages[i])
	}
	return responses, nil
}

// UpdateStage applies a partial update to a stage. A change of status or
// completion appends a history entry, and the rental completion is always
// recomputed in the same transaction.
func (s *StageService) UpdateStage(ctx context.Context, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error) {
	if req == nil {
		req = &UpdateStageRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.FromValidator(err)
	}
	if req.Status != nil && !req.Status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown stage status %q", *req.Status))
	}

	var (
		stage      *models.RentalStage
		entry      *models.StageHistoryEntry
		completion float64
	)
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		current, err := repos.Stages.GetByIDForUpdate(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStageNotFound
			}
			return fmt.Errorf("failed to get stage: %w", err)
		}

		previousStatus := current.Status
		previousCompletion := current.CompletionPercentage
		if err := s.applyUpdate(current, req); err != nil {
			return err
		}
		if err := repos.Stages.Update(current); err != nil {
			return fmt.Errorf("failed to update stage: %w", err)
		}

		if current.Status != previousStatus || current.CompletionPercentage != previousCompletion {
			entry = &models.StageHistoryEntry{
				StageID:            current.ID,
				RentalID:           current.RentalID,
				PreviousStatus:     previousStatus.Ptr(),
				NewStatus:          current.Status,
				PreviousCompletion: &previousCompletion,
				NewCompletion:      current.CompletionPercentage,
				ChangedBy:          req.ChangedBy,
				Notes:              req.HistoryNotes,
				ChangedAt:          s.now(),
			}
			if err := repos.History.Append(entry); err != nil {
				return fmt.Errorf("failed to append stage history: %w", err)
			}
		}

		completion, err = recomputeCompletion(repos, current.RentalID)
		if err != nil {
			return err
		}
		stage = current
		return nil
	})
	s.recorder.IncStageOperation("update", metrics.Result(err))
	if err != nil {
		return nil, err
	}
	s.recorder.ObserveRentalCompletion(completion)

	fields := logrus.Fields{
		"stage_id":   stage.ID,
		"rental_id":  stage.RentalID,
		"completion": completion,
	}
	if entry != nil {
		s.recorder.IncHistoryAppended(1)
		if entry.PreviousStatus != nil && *entry.PreviousStatus != entry.NewStatus {
			s.recorder.IncStageTransition(string(*entry.PreviousStatus), string(entry.NewStatus))
			fields["from"] = *entry.PreviousStatus
			fields["to"] = entry.NewStatus
		}
	}
	logger.WithContext(ctx).WithFields(fields).Info("Stage updated")

	return toStageResponse(stage), nil
}

// UpdateStageStatus moves a stage to a new status on behalf of a user
func (s *StageService) UpdateStageStatus(ctx context.Context, id uuid.UUID, status models.StageStatus, userID, notes string) (*StageResponse, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("changed_by", "acting user is required")
	}
	return s.UpdateStage(ctx, id, &UpdateStageRequest{
		Status:       &status,
		ChangedBy:    userID,
		HistoryNotes: notes,
	})
}

// applyUpdate mutates the stage in memory. The transition check runs before
// anything is written.
func (s *StageService) applyUpdate(stage *models.RentalStage, req *UpdateStageRequest) error {
	statusChanged := false
	if req.Status != nil && *req.Status != stage.Status {
		if !s.policy.Allows(stage.Status, *req.Status) {
			return apperrors.ErrInvalidStatusTransition
		}
		stage.Status = *req.Status
		statusChanged = true
	}

	if req.Title != nil {
		stage.Title = *req.Title
	}
	if req.Description != nil {
		stage.Description = *req.Description
	}
	if req.Weight != nil {
		stage.Weight = *req.Weight
	}
	if req.IsMilestone != nil {
		stage.IsMilestone = *req.IsMilestone
	}
	if req.IsCritical != nil {
		stage.IsCritical = *req.IsCritical
	}
	if req.Notes != nil {
		stage.Notes = *req.Notes
	}
	if req.PlannedStartDate != nil {
		stage.PlannedStartDate = req.PlannedStartDate
	}
	if req.PlannedEndDate != nil {
		stage.PlannedEndDate = req.PlannedEndDate
	}
	if req.ActualStartDate != nil {
		stage.ActualStartDate = req.ActualStartDate
	}
	if req.ActualEndDate != nil {
		stage.ActualEndDate = req.ActualEndDate
	}

	if req.CompletionPercentage != nil {
		stage.CompletionPercentage = *req.CompletionPercentage
	} else if statusChanged {
		stage.CompletionPercentage = DefaultCompletionForStatus(stage.Status)
	}

	now := s.now()
	switch stage.Status {
	case models.StageStatusInProgress:
		if statusChanged && stage.ActualStartDate == nil {
			stage.ActualStartDate = &now
		}
	case models.StageStatusCompleted:
		stage.CompletionPercentage = 100
		if statusChanged || stage.ActualEndDate == nil {
			stage.ActualEndDate = &now
		}
	}

	if req.ChangedBy != "" {
		stage.UpdatedBy = req.ChangedBy
	}

	if err := checkTimeRange(stage.PlannedStartDate, stage.PlannedEndDate); err != nil {
		return err
	}
	return checkTimeRange(stage.ActualStartDate, stage.ActualEndDate)
}

// DeleteStage removes a stage and refreshes the rental completion. It reports
// false when the stage did not exist. History entries are kept.
func (s *StageService) DeleteStage(ctx context.Context, id uuid.UUID) (bool, error) {
	var (
		deleted    bool
		completion float64
	)
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		stage, err := repos.Stages.GetByIDForUpdate(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get stage: %w", err)
		}
		rows, err := repos.Stages.Delete(id)
		if err != nil {
			return fmt.Errorf("failed to delete stage: %w", err)
		}
		if rows == 0 {
			return nil
		}
		deleted = true
		completion, err = recomputeCompletion(repos, stage.RentalID)
		return err
	})
	s.recorder.IncStageOperation("delete", metrics.Result(err))
	if err != nil {
		return false, err
	}
	if deleted {
		s.recorder.ObserveRentalCompletion(completion)
		logger.WithContext(ctx).WithField("stage_id", id).Info("Stage deleted")
	}
	return deleted, nil
}

// GetStageHistory returns a stage's history, newest first. History of a
// deleted stage stays readable.
func (s *StageService) GetStageHistory(ctx context.Context, stageID uuid.UUID) ([]StageHistoryResponse, error) {
	entries, err := s.repos.History.ListByStage(stageID, repository.HistoryOrderDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to get stage history: %w", err)
	}
	if len(entries) == 0 {
		if _, err := s.repos.Stages.GetByID(stageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStageNotFound
			}
			return nil, fmt.Errorf("failed to get stage: %w", err)
		}
	}

	responses := make([]StageHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = toStageHistoryResponse(&entries[i])
	}
	return responses, nil
}

// GetRentalHistory returns the stage history of every stage of a rental, newest first
func (s *StageService) GetRentalHistory(ctx context.Context, rentalID uuid.UUID, page, pageSize int) (*StageHistoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repos.History.ListByRental(rentalID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get rental history: %w", err)
	}

	responses := make([]StageHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = toStageHistoryResponse(&entries[i])
	}
	return &StageHistoryListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetRentalProgress summarizes a rental's stages. The summary is computed from
// the stages; the stored percentage is reported alongside it.
func (s *StageService) GetRentalProgress(ctx context.Context, rentalID uuid.UUID) (*RentalProgressResponse, error) {
	rental, err := s.repos.Rentals.GetByID(rentalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRentalNotFound
		}
		return nil, fmt.Errorf("failed to get rental: %w", err)
	}
	stages, err := s.repos.Stages.GetByRentalID(rentalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rental stages: %w", err)
	}

	summary := SummarizeProgress(stages, s.now())
	return &RentalProgressResponse{
		RentalID:                   rental.ID,
		CompletionPercentage:       summary.CompletionPercentage,
		StoredCompletionPercentage: rental.CompletionPercentage,
		TotalStages:                summary.TotalStages,
		Pending:                    summary.Pending,
		InProgress:                 summary.InProgress,
		Completed:                  summary.Completed,
		OnHold:                     summary.OnHold,
		Cancelled:                  summary.Cancelled,
		CriticalOpen:               summary.CriticalOpen,
		Overdue:                    summary.Overdue,
		MilestonesTotal:            summary.MilestonesTotal,
		MilestonesCompleted:        summary.MilestonesCompleted,
	}, nil
}

// RecomputeRentalProgress recalculates and stores a rental's completion percentage
func (s *StageService) RecomputeRentalProgress(ctx context.Context, rentalID uuid.UUID) (float64, error) {
	var completion float64
	err := s.tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		if err := lockRental(repos, rentalID); err != nil {
			return err
		}
		var err error
		completion, err = recomputeCompletion(repos, rentalID)
		return err
	})
	s.recorder.IncStageOperation("recompute", metrics.Result(err))
	if err != nil {
		return 0, err
	}
	s.recorder.ObserveRentalCompletion(completion)
	return completion, nil
}

// lockRental serializes roll-ups of the same rental
func lockRental(repos *repository.Repositories, rentalID uuid.UUID) error {
	if err := repos.Rentals.LockByID(rentalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRentalNotFound
		}
		return fmt.Errorf("failed to lock rental: %w", err)
	}
	return nil
}

// recomputeCompletion reads the rental's stages and stores the aggregate.
// Callers that did not lock the rental yet get the lock taken here.
func recomputeCompletion(repos *repository.Repositories, rentalID uuid.UUID) (float64, error) {
	if err := lockRental(repos, rentalID); err != nil {
		return 0, err
	}
	stages, err := repos.Stages.GetByRentalID(rentalID)
	if err != nil {
		return 0, fmt.Errorf("failed to get rental stages: %w", err)
	}
	completion := AggregateCompletion(stages)
	if err := repos.Rentals.UpdateCompletionPercentage(rentalID, completion); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrRentalNotFound
		}
		return 0, fmt.Errorf("failed to store rental completion: %w", err)
	}
	return completion, nil
}

func checkTimeRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.ErrInvalidTimeRange
	}
	return nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}

func toStageResponse(stage *models.RentalStage) *StageResponse {
	return &StageResponse{
		ID:                   stage.ID,
		RentalID:             stage.RentalID,
		StageType:            stage.StageType,
		StageLabel:           stage.StageType.Label(),
		Title:                stage.Title,
		Description:          stage.Description,
		Status:               stage.Status,
		CompletionPercentage: stage.CompletionPercentage,
		Weight:               stage.Weight,
		SortOrder:            stage.SortOrder,
		IsMilestone:          stage.IsMilestone,
		IsCritical:           stage.IsCritical,
		PlannedStartDate:     formatTime(stage.PlannedStartDate),
		PlannedEndDate:       formatTime(stage.PlannedEndDate),
		ActualStartDate:      formatTime(stage.ActualStartDate),
		ActualEndDate:        formatTime(stage.ActualEndDate),
		Notes:                stage.Notes,
		CreatedBy:            stage.CreatedBy,
		UpdatedBy:            stage.UpdatedBy,
		CreatedAt:            stage.CreatedAt.Format(timestampLayout),
		UpdatedAt:            stage.UpdatedAt.Format(timestampLayout),
	}
}

func toStageHistoryResponse(entry *models.StageHistoryEntry) StageHistoryResponse {
	return StageHistoryResponse{
		ID:                 entry.ID,
		StageID:            entry.StageID,
		RentalID:           entry.RentalID,
		PreviousStatus:     entry.PreviousStatus,
		NewStatus:          entry.NewStatus,
		PreviousCompletion: entry.PreviousCompletion,
		NewCompletion:      entry.NewCompletion,
		ChangedBy:          entry.ChangedBy,
		Notes:              entry.Notes,
		ChangedAt:          entry.ChangedAt.Format(timestampLayout),
	}
}
