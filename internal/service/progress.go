package service

import (
	"time"

	"location-production-backend/internal/database/models"
)

// DefaultCompletionForStatus returns the completion percentage implied by a
// stage status when a transition does not carry an explicit value.
func DefaultCompletionForStatus(status models.StageStatus) float64 {
	switch status {
	case models.StageStatusInProgress:
		return 50
	case models.StageStatusOnHold:
		return 25
	case models.StageStatusCompleted:
		return 100
	default:
		// pending and cancelled
		return 0
	}
}

// AggregateCompletion computes the weight-weighted mean of the stages'
// completion percentages. It returns 0 for an empty set or a zero weight sum.
func AggregateCompletion(stages []models.RentalStage) float64 {
	var weighted, totalWeight float64
	for _, stage := range stages {
		if stage.Weight <= 0 {
			continue
		}
		weighted += clampPercentage(stage.CompletionPercentage) * stage.Weight
		totalWeight += stage.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return clampPercentage(weighted / totalWeight)
}

// ProgressSummary breaks a rental's stages down by status alongside the aggregate
type ProgressSummary struct {
	CompletionPercentage float64
	TotalStages          int
	Pending              int
	InProgress           int
	Completed            int
	OnHold               int
	Cancelled            int
	CriticalOpen         int
	Overdue              int
	MilestonesTotal      int
	MilestonesCompleted  int
}

// SummarizeProgress counts stages per status, open critical stages, overdue
// stages and milestones, and computes the aggregate completion.
func SummarizeProgress(stages []models.RentalStage, now time.Time) ProgressSummary {
	summary := ProgressSummary{
		CompletionPercentage: AggregateCompletion(stages),
		TotalStages:          len(stages),
	}
	for i := range stages {
		stage := &stages[i]
		switch stage.Status {
		case models.StageStatusPending:
			summary.Pending++
		case models.StageStatusInProgress:
			summary.InProgress++
		case models.StageStatusCompleted:
			summary.Completed++
		case models.StageStatusOnHold:
			summary.OnHold++
		case models.StageStatusCancelled:
			summary.Cancelled++
		}
		if stage.IsCritical && stage.Status != models.StageStatusCompleted && stage.Status != models.StageStatusCancelled {
			summary.CriticalOpen++
		}
		if stage.IsOverdue(now) {
			summary.Overdue++
		}
		if stage.IsMilestone {
			summary.MilestonesTotal++
			if stage.Status == models.StageStatusCompleted {
				summary.MilestonesCompleted++
			}
		}
	}
	return summary
}

func clampPercentage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
