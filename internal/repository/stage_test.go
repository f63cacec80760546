package repository

import (
	"strings"
	"testing"

	"location-production-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// insertedValue returns the bound value of column in a dry-run INSERT statement.
func insertedValue(t *testing.T, stmt *gorm.Statement, column string) interface{} {
	t.Helper()
	sql := stmt.SQL.String()
	open := strings.Index(sql, "(")
	end := strings.Index(sql, ")")
	require.True(t, open >= 0 && end > open, sql)

	for i, name := range strings.Split(sql[open+1:end], ",") {
		if strings.Trim(strings.TrimSpace(name), `"`) == column {
			require.Less(t, i, len(stmt.Vars), sql)
			return stmt.Vars[i]
		}
	}
	require.Failf(t, "column not inserted", "%s missing from %s", column, sql)
	return nil
}

func TestStageCreateKeepsZeroWeight(t *testing.T) {
	db, _ := newMockDB(t)
	dry := db.Session(&gorm.Session{DryRun: true})

	stage := &models.RentalStage{
		RentalID:  uuid.New(),
		StageType: models.StageTypeSetup,
		Title:     "Setup",
		Status:    models.StageStatusCompleted,
		Weight:    0,
	}
	require.NoError(t, NewStageRepository(dry).Create(stage))
	assert.Equal(t, 0.0, stage.Weight)

	tx := dry.Create(&models.RentalStage{
		RentalID:  uuid.New(),
		StageType: models.StageTypeSetup,
		Title:     "Setup",
		Weight:    0,
	})
	require.NoError(t, tx.Error)
	assert.Equal(t, 0.0, insertedValue(t, tx.Statement, "weight"))
}

func TestCalendarEventCreateKeepsTimedEvents(t *testing.T) {
	db, _ := newMockDB(t)
	dry := db.Session(&gorm.Session{DryRun: true})

	events := []models.CalendarEvent{{
		EventType: models.CalendarEventTypeVisit,
		Title:     "Visit",
		AllDay:    false,
	}}
	require.NoError(t, NewCalendarEventRepository(dry).CreateBatch(events))
	assert.False(t, events[0].AllDay)
}
