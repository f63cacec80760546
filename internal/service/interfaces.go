package service

import (
	"context"
	"time"

	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StageServiceInterface defines the interface for the stage lifecycle service
type StageServiceInterface interface {
	CreateStage(ctx context.Context, req *CreateStageRequest) (*StageResponse, error)
	CreateDefaultStages(ctx context.Context, rentalID uuid.UUID, createdBy string) ([]StageResponse, error)
	GetStage(ctx context.Context, id uuid.UUID) (*StageResponse, error)
	ListStagesByRental(ctx context.Context, rentalID uuid.UUID) ([]StageResponse, error)
	UpdateStage(ctx context.Context, id uuid.UUID, req *UpdateStageRequest) (*StageResponse, error)
	UpdateStageStatus(ctx context.Context, id uuid.UUID, status models.StageStatus, userID, notes string) (*StageResponse, error)
	DeleteStage(ctx context.Context, id uuid.UUID) (bool, error)
	GetStageHistory(ctx context.Context, stageID uuid.UUID) ([]StageHistoryResponse, error)
	GetRentalHistory(ctx context.Context, rentalID uuid.UUID, page, pageSize int) (*StageHistoryListResponse, error)
	GetRentalProgress(ctx context.Context, rentalID uuid.UUID) (*RentalProgressResponse, error)
	RecomputeRentalProgress(ctx context.Context, rentalID uuid.UUID) (float64, error)
}

// CalendarSyncServiceInterface defines the interface for the calendar synchronizer
type CalendarSyncServiceInterface interface {
	RegenerateEvents(ctx context.Context, rental *models.Rental) ([]models.CalendarEvent, error)
	RegenerateEventsForRental(ctx context.Context, rentalID uuid.UUID) ([]CalendarEventResponse, error)
	DeleteEvents(ctx context.Context, rentalID uuid.UUID) (int64, error)
	SyncEventToRental(ctx context.Context, event *models.CalendarEvent, rental *models.Rental) (bool, error)
	MoveEvent(ctx context.Context, eventID uuid.UUID, req *MoveEventRequest) (*CalendarEventResponse, error)
	ListEventsByRental(ctx context.Context, rentalID uuid.UUID) ([]CalendarEventResponse, error)
	ListEventsInRange(ctx context.Context, from, to time.Time) ([]CalendarEventResponse, error)
}

// RentalServiceInterface defines the interface for rental service
type RentalServiceInterface interface {
	CreateRental(ctx context.Context, req *CreateRentalRequest) (*RentalResponse, error)
	GetRental(ctx context.Context, id uuid.UUID) (*RentalResponse, error)
	UpdateProductionDates(ctx context.Context, id uuid.UUID, req *UpdateProductionDatesRequest) (*RentalResponse, error)
	DeleteRental(ctx context.Context, id uuid.UUID) (bool, error)
}

var (
	_ StageServiceInterface        = (*StageService)(nil)
	_ CalendarSyncServiceInterface = (*CalendarSyncService)(nil)
	_ RentalServiceInterface       = (*RentalService)(nil)
)
