//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"location-production-backend/internal/database/models"
	"location-production-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryIntegrationTestSuite exercises the repositories against Postgres
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	factories     *testutils.FactorySet
}

func (suite *RepositoryIntegrationTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *RepositoryIntegrationTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *RepositoryIntegrationTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *RepositoryIntegrationTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RepositoryIntegrationTestSuite) createRental() *models.Rental {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.repos.Projects.Create(project))
	location := suite.factories.Location.Create()
	suite.Require().NoError(suite.repos.Locations.Create(location))
	rental := suite.factories.Rental.WithProductionDates(project.ID, location.ID)
	suite.Require().NoError(suite.repos.Rentals.Create(rental))
	return rental
}

func (suite *RepositoryIntegrationTestSuite) TestProjectAndLocationLookups() {
	project := suite.factories.Project.Create()
	suite.NoError(suite.repos.Projects.Create(project))

	byName, err := suite.repos.Projects.GetByName(project.Name)
	suite.NoError(err)
	suite.Equal(project.ID, byName.ID)

	_, err = suite.repos.Projects.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	location := suite.factories.Location.WithName("Lighthouse")
	suite.NoError(suite.repos.Locations.Create(location))

	found, err := suite.repos.Locations.GetByID(location.ID)
	suite.NoError(err)
	suite.Equal("Lighthouse", found.Name)
}

func (suite *RepositoryIntegrationTestSuite) TestRentalWithRelationsAndDates() {
	rental := suite.createRental()

	loaded, err := suite.repos.Rentals.GetWithRelations(rental.ID)
	suite.Require().NoError(err)
	suite.Equal("Night Shift", loaded.Project.DisplayName())
	suite.Equal("Old Harbour Warehouse", loaded.Location.Name)
	suite.Require().NotNil(loaded.FilmingStartDate)
	suite.True(loaded.FilmingStartDate.Equal(testutils.Day(2026, time.May, 3)))

	loaded.VisitDate = nil
	newEnd := testutils.Day(2026, time.May, 12)
	loaded.EndDate = newEnd
	suite.NoError(suite.repos.Rentals.UpdateProductionDates(loaded))

	reloaded, err := suite.repos.Rentals.GetByID(rental.ID)
	suite.Require().NoError(err)
	suite.Nil(reloaded.VisitDate)
	suite.True(reloaded.EndDate.Equal(newEnd))

	exists, err := suite.repos.Rentals.Exists(rental.ID)
	suite.NoError(err)
	suite.True(exists)

	ghost := *loaded
	ghost.ID = uuid.New()
	suite.ErrorIs(suite.repos.Rentals.UpdateProductionDates(&ghost), gorm.ErrRecordNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestUpdateCompletionPercentage() {
	rental := suite.createRental()

	suite.NoError(suite.repos.Rentals.UpdateCompletionPercentage(rental.ID, 37.5))

	reloaded, err := suite.repos.Rentals.GetByID(rental.ID)
	suite.Require().NoError(err)
	suite.Equal(37.5, reloaded.CompletionPercentage)

	suite.ErrorIs(suite.repos.Rentals.UpdateCompletionPercentage(uuid.New(), 10), gorm.ErrRecordNotFound)
}

func (suite *RepositoryIntegrationTestSuite) TestStagesOrderedByLifecycle() {
	rental := suite.createRental()

	for _, stageType := range []models.StageType{models.StageTypeDelivery, models.StageTypeProspecting, models.StageTypeFilming} {
		suite.Require().NoError(suite.repos.Stages.Create(suite.factories.Stage.Create(rental.ID, stageType)))
	}

	stages, err := suite.repos.Stages.GetByRentalID(rental.ID)
	suite.Require().NoError(err)
	suite.Require().Len(stages, 3)
	suite.Equal(models.StageTypeProspecting, stages[0].StageType)
	suite.Equal(models.StageTypeFilming, stages[1].StageType)
	suite.Equal(models.StageTypeDelivery, stages[2].StageType)

	deleted, err := suite.repos.Stages.DeleteByRentalID(rental.ID)
	suite.NoError(err)
	suite.Equal(int64(3), deleted)
}

func (suite *RepositoryIntegrationTestSuite) TestHistoryOutlivesStage() {
	rental := suite.createRental()
	stage := suite.factories.Stage.Create(rental.ID, models.StageTypeSetup)
	suite.Require().NoError(suite.repos.Stages.Create(stage))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := models.StageStatusPending
	prevCompletion := 0.0
	suite.Require().NoError(suite.repos.History.Append(&models.StageHistoryEntry{
		StageID: stage.ID, RentalID: rental.ID, NewStatus: models.StageStatusPending, ChangedAt: base,
	}))
	suite.Require().NoError(suite.repos.History.Append(&models.StageHistoryEntry{
		StageID: stage.ID, RentalID: rental.ID, PreviousStatus: &prev, NewStatus: models.StageStatusInProgress,
		PreviousCompletion: &prevCompletion, NewCompletion: 50, ChangedAt: base.Add(time.Hour),
	}))

	deleted, err := suite.repos.Stages.Delete(stage.ID)
	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	asc, err := suite.repos.History.ListByStage(stage.ID, HistoryOrderAsc)
	suite.Require().NoError(err)
	suite.Require().Len(asc, 2)
	suite.Nil(asc[0].PreviousStatus)
	suite.Equal(models.StageStatusInProgress, asc[1].NewStatus)

	desc, err := suite.repos.History.ListByStage(stage.ID, HistoryOrderDesc)
	suite.Require().NoError(err)
	suite.Equal(models.StageStatusInProgress, desc[0].NewStatus)

	page, total, err := suite.repos.History.ListByRental(rental.ID, 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(page, 1)

	count, err := suite.repos.History.CountByStage(stage.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *RepositoryIntegrationTestSuite) TestCalendarEventsInRange() {
	rental := suite.createRental()
	rentalID := rental.ID
	end := testutils.Day(2026, time.May, 10)

	suite.Require().NoError(suite.repos.Events.CreateBatch([]models.CalendarEvent{
		{RentalID: &rentalID, EventType: models.CalendarEventTypeVisit, Title: "Visit", StartDate: testutils.Day(2026, time.April, 20), AllDay: true},
		{RentalID: &rentalID, EventType: models.CalendarEventTypeRentalPeriod, Title: "Rental", StartDate: testutils.Day(2026, time.May, 1), EndDate: &end, AllDay: true},
	}))
	suite.NoError(suite.repos.Events.CreateBatch(nil))

	inMay, err := suite.repos.Events.GetInRange(testutils.Day(2026, time.May, 5), testutils.Day(2026, time.May, 31))
	suite.Require().NoError(err)
	suite.Require().Len(inMay, 1)
	suite.Equal(models.CalendarEventTypeRentalPeriod, inMay[0].EventType)

	all, err := suite.repos.Events.GetByRentalID(rental.ID)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal(models.CalendarEventTypeVisit, all[0].EventType)

	removed, err := suite.repos.Events.DeleteByRentalID(rental.ID)
	suite.NoError(err)
	suite.Equal(int64(2), removed)
}

func (suite *RepositoryIntegrationTestSuite) TestTransactionRollsBackEveryWrite() {
	rental := suite.createRental()
	boom := errors.New("second write failed")

	err := NewTransactor(suite.baseTestSuite.DB).WithinTransaction(context.Background(), func(repos *Repositories) error {
		if err := repos.Rentals.LockByID(rental.ID); err != nil {
			return err
		}
		if err := repos.Stages.Create(suite.factories.Stage.Create(rental.ID, models.StageTypeSetup)); err != nil {
			return err
		}
		if err := repos.Rentals.UpdateCompletionPercentage(rental.ID, 99); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	stages, err := suite.repos.Stages.GetByRentalID(rental.ID)
	suite.NoError(err)
	suite.Empty(stages)

	reloaded, err := suite.repos.Rentals.GetByID(rental.ID)
	suite.Require().NoError(err)
	suite.Equal(0.0, reloaded.CompletionPercentage)
}

func (suite *RepositoryIntegrationTestSuite) TestLockByIDMissingRental() {
	err := NewTransactor(suite.baseTestSuite.DB).WithinTransaction(context.Background(), func(repos *Repositories) error {
		return repos.Rentals.LockByID(uuid.New())
	})
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
