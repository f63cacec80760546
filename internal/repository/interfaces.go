package repository

import (
	"context"
	"time"

	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// HistoryOrder selects the changed_at ordering of stage history reads
type HistoryOrder string

const (
	HistoryOrderAsc  HistoryOrder = "asc"
	HistoryOrderDesc HistoryOrder = "desc"
)

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetByName(name string) (*models.Project, error)
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByName(name string) (*models.Location, error)
}

// RentalRepositoryInterface defines the interface for rental repository operations
type RentalRepositoryInterface interface {
	Create(rental *models.Rental) error
	GetByID(id uuid.UUID) (*models.Rental, error)
	GetWithRelations(id uuid.UUID) (*models.Rental, error)
	Exists(id uuid.UUID) (bool, error)
	LockByID(id uuid.UUID) error
	UpdateProductionDates(rental *models.Rental) error
	UpdateCompletionPercentage(id uuid.UUID, percentage float64) error
	Delete(id uuid.UUID) (int64, error)
}

// StageRepositoryInterface defines the interface for rental stage repository operations
type StageRepositoryInterface interface {
	Create(stage *models.RentalStage) error
	GetByID(id uuid.UUID) (*models.RentalStage, error)
	GetByIDForUpdate(id uuid.UUID) (*models.RentalStage, error)
	GetByRentalID(rentalID uuid.UUID) ([]models.RentalStage, error)
	Update(stage *models.RentalStage) error
	Delete(id uuid.UUID) (int64, error)
	DeleteByRentalID(rentalID uuid.UUID) (int64, error)
}

// StageHistoryRepositoryInterface defines the append-only stage history ledger.
// There is no update or delete operation.
type StageHistoryRepositoryInterface interface {
	Append(entry *models.StageHistoryEntry) error
	ListByStage(stageID uuid.UUID, order HistoryOrder) ([]models.StageHistoryEntry, error)
	ListByRental(rentalID uuid.UUID, limit, offset int) ([]models.StageHistoryEntry, int64, error)
	CountByStage(stageID uuid.UUID) (int64, error)
}

// CalendarEventRepositoryInterface defines the interface for calendar event repository operations
type CalendarEventRepositoryInterface interface {
	CreateBatch(events []models.CalendarEvent) error
	GetByID(id uuid.UUID) (*models.CalendarEvent, error)
	GetByRentalID(rentalID uuid.UUID) ([]models.CalendarEvent, error)
	GetInRange(from, to time.Time) ([]models.CalendarEvent, error)
	Update(event *models.CalendarEvent) error
	DeleteByRentalID(rentalID uuid.UUID) (int64, error)
}

// TransactorInterface runs a unit of work against repositories bound to one transaction
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}
