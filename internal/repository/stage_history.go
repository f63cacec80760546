package repository

import (
	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StageHistoryRepository is the append-only ledger of stage transitions
type StageHistoryRepository struct {
	db *gorm.DB
}

// NewStageHistoryRepository creates a new stage history repository
func NewStageHistoryRepository(db *gorm.DB) *StageHistoryRepository {
	return &StageHistoryRepository{db: db}
}

// Append inserts a history entry
func (r *StageHistoryRepository) Append(entry *models.StageHistoryEntry) error {
	return r.db.Create(entry).Error
}

// ListByStage retrieves all entries of a stage ordered by change time
func (r *StageHistoryRepository) ListByStage(stageID uuid.UUID, order HistoryOrder) ([]models.StageHistoryEntry, error) {
	var entries []models.StageHistoryEntry
	direction := "ASC"
	if order == HistoryOrderDesc {
		direction = "DESC"
	}
	err := r.db.Where("stage_id = ?", stageID).
		Order("changed_at " + direction).
		Order("created_at " + direction).
		Find(&entries).Error
	return entries, err
}

// ListByRental retrieves the rental-wide history feed, newest first
func (r *StageHistoryRepository) ListByRental(rentalID uuid.UUID, limit, offset int) ([]models.StageHistoryEntry, int64, error) {
	var entries []models.StageHistoryEntry
	var total int64

	query := r.db.Model(&models.StageHistoryEntry{}).Where("rental_id = ?", rentalID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("changed_at DESC").Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// CountByStage returns the number of entries recorded for a stage
func (r *StageHistoryRepository) CountByStage(stageID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.StageHistoryEntry{}).Where("stage_id = ?", stageID).Count(&count).Error
	return count, err
}
