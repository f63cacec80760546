package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"location-production-backend/internal/database/models"
	apperrors "location-production-backend/internal/errors"
	"location-production-backend/internal/metrics"
	"location-production-backend/internal/repository"
	"location-production-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// countingRecorder keeps the counters the stage tests assert on
type countingRecorder struct {
	metrics.NoopRecorder
	transitions []string
	appended    int
}

func (r *countingRecorder) IncStageTransition(from, to string) {
	r.transitions = append(r.transitions, from+"->"+to)
}

func (r *countingRecorder) IncHistoryAppended(n int) {
	r.appended += n
}

type StageServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *mockStore
	recorder *countingRecorder
	service  *service.StageService
	now      time.Time
	ctx      context.Context
}

func (suite *StageServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.store = newMockStore(suite.ctrl)
	suite.recorder = &countingRecorder{}
	suite.now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	suite.ctx = context.Background()
	suite.service = service.NewStageService(suite.store.repos, suite.store.tx, validator.New()).
		WithRecorder(suite.recorder).
		WithClock(func() time.Time { return suite.now })
}

func (suite *StageServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectRecompute sets up the roll-up reads and the stored aggregate
func (suite *StageServiceTestSuite) expectRecompute(rentalID uuid.UUID, stages []models.RentalStage, expected float64) {
	suite.store.rentals.EXPECT().LockByID(rentalID).Return(nil)
	suite.store.stages.EXPECT().GetByRentalID(rentalID).Return(stages, nil)
	suite.store.rentals.EXPECT().UpdateCompletionPercentage(rentalID, expected).Return(nil)
}

func (suite *StageServiceTestSuite) newStage(rentalID uuid.UUID, status models.StageStatus, completion float64) *models.RentalStage {
	stage := &models.RentalStage{
		RentalID:             rentalID,
		StageType:            models.StageTypeSiteVisit,
		Title:                "Site visit",
		Status:               status,
		CompletionPercentage: completion,
		Weight:               1,
		SortOrder:            models.StageTypeSiteVisit.SortOrder(),
	}
	stage.ID = uuid.New()
	return stage
}

func (suite *StageServiceTestSuite) TestCreateStage_Success() {
	rentalID := uuid.New()
	stageID := uuid.New()
	var appended *models.StageHistoryEntry

	suite.store.rentals.EXPECT().LockByID(rentalID).Return(nil)
	suite.store.stages.EXPECT().Create(gomock.Any()).DoAndReturn(func(stage *models.RentalStage) error {
		stage.ID = stageID
		return nil
	})
	suite.store.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.StageHistoryEntry) error {
		appended = entry
		return nil
	})
	suite.expectRecompute(rentalID, []models.RentalStage{
		*suite.newStage(rentalID, models.StageStatusCompleted, 100),
		{StageType: models.StageTypeFilming, Status: models.StageStatusPending, Weight: 3},
	}, 25.0)

	resp, err := suite.service.CreateStage(suite.ctx, &service.CreateStageRequest{
		RentalID:  rentalID,
		StageType: models.StageTypeFilming,
		CreatedBy: "planner",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), stageID, resp.ID)
	assert.Equal(suite.T(), models.StageStatusPending, resp.Status)
	assert.Equal(suite.T(), 0.0, resp.CompletionPercentage)
	assert.Equal(suite.T(), models.DefaultStageWeight, resp.Weight)
	assert.Equal(suite.T(), "Filming", resp.Title)
	assert.Equal(suite.T(), models.StageTypeFilming.SortOrder(), resp.SortOrder)

	require.NotNil(suite.T(), appended)
	assert.True(suite.T(), appended.IsInitial())
	assert.Equal(suite.T(), stageID, appended.StageID)
	assert.Equal(suite.T(), rentalID, appended.RentalID)
	assert.Equal(suite.T(), models.StageStatusPending, appended.NewStatus)
	assert.Equal(suite.T(), "planner", appended.ChangedBy)
	assert.Equal(suite.T(), suite.now, appended.ChangedAt)
	assert.Equal(suite.T(), 1, suite.recorder.appended)
}

func (suite *StageServiceTestSuite) TestCreateStage_RentalNotFound() {
	rentalID := uuid.New()
	suite.store.rentals.EXPECT().LockByID(rentalID).Return(gorm.ErrRecordNotFound)

	resp, err := suite.service.CreateStage(suite.ctx, &service.CreateStageRequest{
		RentalID:  rentalID,
		StageType: models.StageTypeSetup,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRentalNotFound)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *StageServiceTestSuite) TestCreateStage_ValidationErrors() {
	weight := -1.0
	start := suite.now
	end := suite.now.AddDate(0, 0, -1)

	tests := []struct {
		name string
		req  *service.CreateStageRequest
	}{
		{"missing rental", &service.CreateStageRequest{StageType: models.StageTypeSetup}},
		{"unknown stage type", &service.CreateStageRequest{RentalID: uuid.New(), StageType: "catering"}},
		{"negative weight", &service.CreateStageRequest{RentalID: uuid.New(), StageType: models.StageTypeSetup, Weight: &weight}},
		{"inverted planned range", &service.CreateStageRequest{RentalID: uuid.New(), StageType: models.StageTypeSetup, PlannedStartDate: &start, PlannedEndDate: &end}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			resp, err := suite.service.CreateStage(suite.ctx, tt.req)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func (suite *StageServiceTestSuite) TestCreateDefaultStages_SkipsExistingTypes() {
	rentalID := uuid.New()
	existing := suite.newStage(rentalID, models.StageStatusCompleted, 100)

	suite.store.rentals.EXPECT().LockByID(rentalID).Return(nil).Times(2)
	suite.store.stages.EXPECT().GetByRentalID(rentalID).Return([]models.RentalStage{*existing}, nil).Times(2)
	suite.store.stages.EXPECT().Create(gomock.Any()).Return(nil).Times(len(models.StageTypes()) - 1)
	suite.store.history.EXPECT().Append(gomock.Any()).Return(nil).Times(len(models.StageTypes()) - 1)
	suite.store.rentals.EXPECT().UpdateCompletionPercentage(rentalID, 100.0).Return(nil)

	created, err := suite.service.CreateDefaultStages(suite.ctx, rentalID, "planner")

	require.NoError(suite.T(), err)
	require.Len(suite.T(), created, len(models.StageTypes())-1)
	for i, stage := range created {
		assert.NotEqual(suite.T(), models.StageTypeSiteVisit, stage.StageType)
		assert.Equal(suite.T(), models.StageStatusPending, stage.Status)
		if i > 0 {
			assert.Greater(suite.T(), stage.SortOrder, created[i-1].SortOrder)
		}
		switch stage.StageType {
		case models.StageTypeContracting, models.StageTypeFilming:
			assert.True(suite.T(), stage.IsCritical)
			assert.True(suite.T(), stage.IsMilestone)
		case models.StageTypeClientApproval, models.StageTypeDelivery:
			assert.False(suite.T(), stage.IsCritical)
			assert.True(suite.T(), stage.IsMilestone)
		default:
			assert.False(suite.T(), stage.IsCritical)
			assert.False(suite.T(), stage.IsMilestone)
		}
	}
	assert.Equal(suite.T(), len(models.StageTypes())-1, suite.recorder.appended)
}

func (suite *StageServiceTestSuite) TestUpdateStageStatus_PendingToInProgress() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusPending, 0)
	var appended *models.StageHistoryEntry

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.StageHistoryEntry) error {
		appended = entry
		return nil
	})
	suite.expectRecompute(rentalID, []models.RentalStage{{Status: models.StageStatusInProgress, CompletionPercentage: 50, Weight: 1}}, 50.0)

	resp, err := suite.service.UpdateStageStatus(suite.ctx, stage.ID, models.StageStatusInProgress, "user-1", "crew on site")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StageStatusInProgress, resp.Status)
	assert.Equal(suite.T(), 50.0, resp.CompletionPercentage)
	require.NotNil(suite.T(), resp.ActualStartDate)
	assert.Equal(suite.T(), suite.now.Format("2006-01-02T15:04:05Z07:00"), *resp.ActualStartDate)
	assert.Nil(suite.T(), resp.ActualEndDate)

	require.NotNil(suite.T(), appended)
	require.NotNil(suite.T(), appended.PreviousStatus)
	assert.Equal(suite.T(), models.StageStatusPending, *appended.PreviousStatus)
	assert.Equal(suite.T(), models.StageStatusInProgress, appended.NewStatus)
	require.NotNil(suite.T(), appended.PreviousCompletion)
	assert.Equal(suite.T(), 0.0, *appended.PreviousCompletion)
	assert.Equal(suite.T(), 50.0, appended.NewCompletion)
	assert.Equal(suite.T(), "user-1", appended.ChangedBy)
	assert.Equal(suite.T(), "crew on site", appended.Notes)
	assert.Equal(suite.T(), []string{"pending->in_progress"}, suite.recorder.transitions)
}

func (suite *StageServiceTestSuite) TestUpdateStage_CompletedForcesFullCompletion() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusInProgress, 50)
	started := suite.now.AddDate(0, 0, -3)
	stage.ActualStartDate = &started
	status := models.StageStatusCompleted
	partial := 80.0

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).Return(nil)
	suite.expectRecompute(rentalID, []models.RentalStage{{Status: models.StageStatusCompleted, CompletionPercentage: 100, Weight: 1}}, 100.0)

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{
		Status:               &status,
		CompletionPercentage: &partial,
		ChangedBy:            "user-1",
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StageStatusCompleted, resp.Status)
	assert.Equal(suite.T(), 100.0, resp.CompletionPercentage)
	require.NotNil(suite.T(), resp.ActualEndDate)
	assert.Equal(suite.T(), suite.now.Format("2006-01-02T15:04:05Z07:00"), *resp.ActualEndDate)
	assert.Equal(suite.T(), started.Format("2006-01-02T15:04:05Z07:00"), *resp.ActualStartDate)
	assert.Equal(suite.T(), "user-1", resp.UpdatedBy)
}

func (suite *StageServiceTestSuite) TestUpdateStage_ExplicitCompletionWithoutStatusChange() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusInProgress, 50)
	completion := 70.0
	var appended *models.StageHistoryEntry

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.StageHistoryEntry) error {
		appended = entry
		return nil
	})
	suite.expectRecompute(rentalID, []models.RentalStage{{Status: models.StageStatusInProgress, CompletionPercentage: 70, Weight: 1}}, 70.0)

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{CompletionPercentage: &completion})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 70.0, resp.CompletionPercentage)
	require.NotNil(suite.T(), appended)
	assert.Equal(suite.T(), models.StageStatusInProgress, *appended.PreviousStatus)
	assert.Equal(suite.T(), models.StageStatusInProgress, appended.NewStatus)
	assert.Equal(suite.T(), 50.0, *appended.PreviousCompletion)
	assert.Equal(suite.T(), 70.0, appended.NewCompletion)
	assert.Empty(suite.T(), suite.recorder.transitions)
}

func (suite *StageServiceTestSuite) TestUpdateStage_TitleOnlyWritesNoHistory() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusPending, 0)
	title := "Scout the rooftop"

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).Times(0)
	suite.expectRecompute(rentalID, []models.RentalStage{*stage}, 0.0)

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{Title: &title})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), title, resp.Title)
	assert.Equal(suite.T(), 0, suite.recorder.appended)
}

func (suite *StageServiceTestSuite) TestUpdateStage_PatchOnInProgressLeavesStartUnset() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusInProgress, 50)
	notes := "waiting on permits"

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).Times(0)
	suite.expectRecompute(rentalID, []models.RentalStage{*stage}, 50.0)

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{Notes: &notes})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), notes, resp.Notes)
	assert.Nil(suite.T(), resp.ActualStartDate)
}

func (suite *StageServiceTestSuite) TestUpdateStage_StrictPolicyRejectsTransition() {
	suite.service.WithTransitionPolicy(service.StrictTransitions())
	stage := suite.newStage(uuid.New(), models.StageStatusCompleted, 100)
	status := models.StageStatusOnHold

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Times(0)
	suite.store.history.EXPECT().Append(gomock.Any()).Times(0)

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{Status: &status})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatusTransition)
}

func (suite *StageServiceTestSuite) TestUpdateStage_PermissivePolicyReopensCompletedStage() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusCompleted, 100)
	status := models.StageStatusPending

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).Return(nil)
	suite.expectRecompute(rentalID, []models.RentalStage{{Status: models.StageStatusPending, Weight: 1}}, 0.0)

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{Status: &status})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StageStatusPending, resp.Status)
	assert.Equal(suite.T(), 0.0, resp.CompletionPercentage)
}

func (suite *StageServiceTestSuite) TestUpdateStage_NotFound() {
	id := uuid.New()
	status := models.StageStatusInProgress
	suite.store.stages.EXPECT().GetByIDForUpdate(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.UpdateStage(suite.ctx, id, &service.UpdateStageRequest{Status: &status})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStageNotFound)
}

func (suite *StageServiceTestSuite) TestUpdateStage_HistoryFailureIsReturned() {
	rentalID := uuid.New()
	stage := suite.newStage(rentalID, models.StageStatusPending, 0)
	status := models.StageStatusInProgress

	suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
	suite.store.stages.EXPECT().Update(gomock.Any()).Return(nil)
	suite.store.history.EXPECT().Append(gomock.Any()).Return(errors.New("disk full"))

	resp, err := suite.service.UpdateStage(suite.ctx, stage.ID, &service.UpdateStageRequest{Status: &status})

	assert.Nil(suite.T(), resp)
	assert.ErrorContains(suite.T(), err, "failed to append stage history")
	assert.Empty(suite.T(), suite.recorder.transitions)
}

func (suite *StageServiceTestSuite) TestUpdateStage_InvalidInput() {
	unknown := models.StageStatus("archived")
	tooHigh := 120.0
	longTitle := strings.Repeat("x", 201)

	tests := []struct {
		name string
		req  *service.UpdateStageRequest
	}{
		{"unknown status", &service.UpdateStageRequest{Status: &unknown}},
		{"completion above range", &service.UpdateStageRequest{CompletionPercentage: &tooHigh}},
		{"title too long", &service.UpdateStageRequest{Title: &longTitle}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			resp, err := suite.service.UpdateStage(suite.ctx, uuid.New(), tt.req)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func (suite *StageServiceTestSuite) TestUpdateStageStatus_RequiresUser() {
	resp, err := suite.service.UpdateStageStatus(suite.ctx, uuid.New(), models.StageStatusCompleted, "", "")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *StageServiceTestSuite) TestDeleteStage() {
	suite.T().Run("existing stage", func(t *testing.T) {
		rentalID := uuid.New()
		stage := suite.newStage(rentalID, models.StageStatusCompleted, 100)

		suite.store.stages.EXPECT().GetByIDForUpdate(stage.ID).Return(stage, nil)
		suite.store.stages.EXPECT().Delete(stage.ID).Return(int64(1), nil)
		suite.expectRecompute(rentalID, []models.RentalStage{}, 0.0)

		deleted, err := suite.service.DeleteStage(suite.ctx, stage.ID)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	suite.T().Run("missing stage", func(t *testing.T) {
		id := uuid.New()
		suite.store.stages.EXPECT().GetByIDForUpdate(id).Return(nil, gorm.ErrRecordNotFound)

		deleted, err := suite.service.DeleteStage(suite.ctx, id)

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func (suite *StageServiceTestSuite) TestGetStageHistory() {
	suite.T().Run("newest first from the ledger", func(t *testing.T) {
		stageID := uuid.New()
		entries := []models.StageHistoryEntry{
			{ID: uuid.New(), StageID: stageID, PreviousStatus: models.StageStatusPending.Ptr(), NewStatus: models.StageStatusInProgress, NewCompletion: 50, ChangedAt: suite.now},
			{ID: uuid.New(), StageID: stageID, NewStatus: models.StageStatusPending, ChangedAt: suite.now.Add(-time.Hour)},
		}
		suite.store.history.EXPECT().ListByStage(stageID, repository.HistoryOrderDesc).Return(entries, nil)

		history, err := suite.service.GetStageHistory(suite.ctx, stageID)

		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, models.StageStatusInProgress, history[0].NewStatus)
		assert.Nil(t, history[1].PreviousStatus)
	})

	suite.T().Run("unknown stage", func(t *testing.T) {
		stageID := uuid.New()
		suite.store.history.EXPECT().ListByStage(stageID, repository.HistoryOrderDesc).Return([]models.StageHistoryEntry{}, nil)
		suite.store.stages.EXPECT().GetByID(stageID).Return(nil, gorm.ErrRecordNotFound)

		history, err := suite.service.GetStageHistory(suite.ctx, stageID)

		assert.Nil(t, history)
		assert.ErrorIs(t, err, apperrors.ErrStageNotFound)
	})
}

func (suite *StageServiceTestSuite) TestGetRentalHistory_NormalizesPagination() {
	rentalID := uuid.New()
	suite.store.history.EXPECT().ListByRental(rentalID, 20, 0).Return([]models.StageHistoryEntry{{ID: uuid.New()}}, int64(1), nil)

	resp, err := suite.service.GetRentalHistory(suite.ctx, rentalID, 0, 500)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Len(suite.T(), resp.Entries, 1)
}

func (suite *StageServiceTestSuite) TestGetRentalProgress() {
	rentalID := uuid.New()
	rental := &models.Rental{CompletionPercentage: 25}
	rental.ID = rentalID
	approval := suite.newStage(rentalID, models.StageStatusCompleted, 100)
	filming := suite.newStage(rentalID, models.StageStatusPending, 0)
	filming.Weight = 3
	filming.IsCritical = true

	suite.store.rentals.EXPECT().GetByID(rentalID).Return(rental, nil)
	suite.store.stages.EXPECT().GetByRentalID(rentalID).Return([]models.RentalStage{*approval, *filming}, nil)

	progress, err := suite.service.GetRentalProgress(suite.ctx, rentalID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 25.0, progress.CompletionPercentage)
	assert.Equal(suite.T(), 25.0, progress.StoredCompletionPercentage)
	assert.Equal(suite.T(), 2, progress.TotalStages)
	assert.Equal(suite.T(), 1, progress.Completed)
	assert.Equal(suite.T(), 1, progress.Pending)
	assert.Equal(suite.T(), 1, progress.CriticalOpen)
}

func (suite *StageServiceTestSuite) TestGetRentalProgress_RentalNotFound() {
	rentalID := uuid.New()
	suite.store.rentals.EXPECT().GetByID(rentalID).Return(nil, gorm.ErrRecordNotFound)

	progress, err := suite.service.GetRentalProgress(suite.ctx, rentalID)

	assert.Nil(suite.T(), progress)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRentalNotFound)
}

func (suite *StageServiceTestSuite) TestRecomputeRentalProgress() {
	rentalID := uuid.New()
	suite.store.rentals.EXPECT().LockByID(rentalID).Return(nil)
	suite.expectRecompute(rentalID, []models.RentalStage{
		{Status: models.StageStatusCompleted, CompletionPercentage: 100, Weight: 1},
		{Status: models.StageStatusPending, CompletionPercentage: 0, Weight: 3},
	}, 25.0)

	completion, err := suite.service.RecomputeRentalProgress(suite.ctx, rentalID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 25.0, completion)
}

func (suite *StageServiceTestSuite) TestListStagesByRental_RentalNotFound() {
	rentalID := uuid.New()
	suite.store.rentals.EXPECT().Exists(rentalID).Return(false, nil)

	stages, err := suite.service.ListStagesByRental(suite.ctx, rentalID)

	assert.Nil(suite.T(), stages)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRentalNotFound)
}

func TestStageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StageServiceTestSuite))
}
