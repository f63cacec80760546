package cli

import (
	"bytes"
	"testing"

	"location-production-backend/internal/database/models"
	"location-production-backend/internal/seed"
	"location-production-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0%"},
		{62.5, "62.5%"},
		{100, "100%"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPercent(tt.value))
		})
	}
}

func TestPrintSeedResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSeedResult(&buf, &seed.Result{ProjectsCreated: 2, LocationsCreated: 1, RentalsCreated: 3, StagesCreated: 14}))
	assert.Equal(t, "Seeded 2 projects, 1 locations, 3 rentals, 14 stages\n", buf.String())
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.New()
	err := printProgress(&buf, &service.RentalProgressResponse{
		RentalID:             id,
		CompletionPercentage: 62.5,
		TotalStages:          11,
		Completed:            6,
		MilestonesTotal:      4,
		MilestonesCompleted:  1,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Rental "+id.String())
	assert.Contains(t, out, "62.5%")
	assert.Contains(t, out, "1/4")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printHistory(&buf, nil))
	assert.Equal(t, "No history recorded.\n", buf.String())

	buf.Reset()
	pending := models.StageStatusPending
	err := printHistory(&buf, []service.StageHistoryResponse{
		{PreviousStatus: &pending, NewStatus: models.StageStatusInProgress, NewCompletion: 50, ChangedBy: "bob", ChangedAt: "2026-05-02T09:00:00Z"},
		{NewStatus: models.StageStatusPending, ChangedAt: "2026-05-01T09:00:00Z"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "CHANGED AT")
	assert.Contains(t, out, "in_progress")
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "bob")
}

func TestPrintEvents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printEvents(&buf, nil))
	assert.Equal(t, "No events generated.\n", buf.String())

	buf.Reset()
	end := "2026-05-06"
	err := printEvents(&buf, []service.CalendarEventResponse{
		{EventType: models.CalendarEventTypeFilmingPeriod, Title: "Filming", StartDate: "2026-05-03", EndDate: &end},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "filming_period")
	assert.Contains(t, buf.String(), "2026-05-06")
}
