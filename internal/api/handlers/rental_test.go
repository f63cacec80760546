package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"location-production-backend/internal/api/handlers"
	"location-production-backend/internal/api/middleware"
	"location-production-backend/internal/database/models"
	apperrors "location-production-backend/internal/errors"
	"location-production-backend/internal/mocks"
	"location-production-backend/internal/service"
	"location-production-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RentalHandlerTestSuite covers the rental-scoped and calendar endpoints
type RentalHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRentalSvc   *mocks.MockRentalServiceInterface
	mockStageSvc    *mocks.MockStageServiceInterface
	mockCalendarSvc *mocks.MockCalendarSyncServiceInterface
	api             *testutils.HTTPTestSuite
}

func (suite *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRentalSvc = mocks.NewMockRentalServiceInterface(suite.ctrl)
	suite.mockStageSvc = mocks.NewMockStageServiceInterface(suite.ctrl)
	suite.mockCalendarSvc = mocks.NewMockCalendarSyncServiceInterface(suite.ctrl)

	rentalHandler := handlers.NewRentalHandler(suite.mockRentalSvc, suite.mockStageSvc, suite.mockCalendarSvc)
	calendarHandler := handlers.NewCalendarHandler(suite.mockCalendarSvc)

	router := gin.New()
	router.Use(middleware.Actor())
	router.POST("/rentals", rentalHandler.CreateRental)
	router.GET("/rentals/:id", rentalHandler.GetRental)
	router.DELETE("/rentals/:id", rentalHandler.DeleteRental)
	router.PATCH("/rentals/:id/dates", rentalHandler.UpdateProductionDates)
	router.GET("/rentals/:id/progress", rentalHandler.GetProgress)
	router.POST("/rentals/:id/progress/recompute", rentalHandler.RecomputeProgress)
	router.GET("/rentals/:id/stages", rentalHandler.ListStages)
	router.POST("/rentals/:id/stages/defaults", rentalHandler.CreateDefaultStages)
	router.GET("/rentals/:id/history", rentalHandler.GetHistory)
	router.GET("/rentals/:id/events", rentalHandler.ListEvents)
	router.POST("/rentals/:id/events/regenerate", rentalHandler.RegenerateEvents)
	router.DELETE("/rentals/:id/events", rentalHandler.DeleteEvents)
	router.GET("/calendar/events", calendarHandler.ListEvents)
	router.PATCH("/calendar/events/:id", calendarHandler.MoveEvent)
	suite.api = testutils.NewHTTPTestSuite(router)
}

func (suite *RentalHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RentalHandlerTestSuite) TestCreateRental_Success() {
	projectID := uuid.New()
	locationID := uuid.New()
	rentalID := uuid.New()

	suite.mockRentalSvc.EXPECT().
		CreateRental(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateRentalRequest) (*service.RentalResponse, error) {
			assert.Equal(suite.T(), projectID, req.ProjectID)
			assert.Equal(suite.T(), locationID, req.LocationID)
			assert.True(suite.T(), req.WithDefaultStages)
			assert.Equal(suite.T(), "alice", req.CreatedBy)
			return &service.RentalResponse{ID: rentalID, ProjectID: projectID, LocationID: locationID, StartDate: "2026-05-01", EndDate: "2026-05-10"}, nil
		})

	body := `{"project_id":"` + projectID.String() + `","location_id":"` + locationID.String() +
		`","start_date":"2026-05-01T00:00:00Z","end_date":"2026-05-10T00:00:00Z","with_default_stages":true}`
	w := suite.api.MakeRawRequest(http.MethodPost, "/rentals", body, map[string]string{middleware.UserIDHeader: "alice"})

	var got service.RentalResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), rentalID, got.ID)
	assert.Equal(suite.T(), "2026-05-10", got.EndDate)
}

func (suite *RentalHandlerTestSuite) TestCreateRental_ProjectNotFound() {
	suite.mockRentalSvc.EXPECT().
		CreateRental(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound)

	body := `{"project_id":"` + uuid.NewString() + `","location_id":"` + uuid.NewString() +
		`","start_date":"2026-05-01T00:00:00Z","end_date":"2026-05-10T00:00:00Z"}`
	w := suite.api.MakeRawRequest(http.MethodPost, "/rentals", body, nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RentalHandlerTestSuite) TestDeleteRental() {
	id := uuid.New()
	suite.mockRentalSvc.EXPECT().DeleteRental(gomock.Any(), id).Return(true, nil)
	w := suite.api.MakeRawRequest(http.MethodDelete, "/rentals/"+id.String(), "", nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	missing := uuid.New()
	suite.mockRentalSvc.EXPECT().DeleteRental(gomock.Any(), missing).Return(false, nil)
	w = suite.api.MakeRawRequest(http.MethodDelete, "/rentals/"+missing.String(), "", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RentalHandlerTestSuite) TestUpdateProductionDates_InvertedRange() {
	id := uuid.New()
	suite.mockRentalSvc.EXPECT().
		UpdateProductionDates(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.UpdateProductionDatesRequest) (*service.RentalResponse, error) {
			require.NotNil(suite.T(), req.EndDate)
			assert.Equal(suite.T(), []string{"visit_date"}, req.Clear)
			return nil, apperrors.ErrInvalidTimeRange
		})

	w := suite.api.MakeRawRequest(http.MethodPatch, "/rentals/"+id.String()+"/dates",
		`{"end_date":"2026-04-01T00:00:00Z","clear":["visit_date"]}`, nil)

	var got handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &got)
	assert.Equal(suite.T(), "end_date", got.Field)
}

func (suite *RentalHandlerTestSuite) TestGetProgress() {
	id := uuid.New()
	suite.mockStageSvc.EXPECT().GetRentalProgress(gomock.Any(), id).Return(&service.RentalProgressResponse{
		RentalID:             id,
		CompletionPercentage: 25,
		TotalStages:          4,
		Completed:            1,
	}, nil)

	w := suite.api.MakeRawRequest(http.MethodGet, "/rentals/"+id.String()+"/progress", "", nil)

	var got service.RentalProgressResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 25.0, got.CompletionPercentage)
	assert.Equal(suite.T(), 4, got.TotalStages)
}

func (suite *RentalHandlerTestSuite) TestRecomputeProgress() {
	id := uuid.New()
	suite.mockStageSvc.EXPECT().RecomputeRentalProgress(gomock.Any(), id).Return(62.5, nil)

	w := suite.api.MakeRawRequest(http.MethodPost, "/rentals/"+id.String()+"/progress/recompute", "", nil)

	var got map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 62.5, got["completion_percentage"])
	assert.Equal(suite.T(), id.String(), got["rental_id"])
}

func (suite *RentalHandlerTestSuite) TestListStages_RentalNotFound() {
	id := uuid.New()
	suite.mockStageSvc.EXPECT().ListStagesByRental(gomock.Any(), id).Return(nil, apperrors.ErrRentalNotFound)

	w := suite.api.MakeRawRequest(http.MethodGet, "/rentals/"+id.String()+"/stages", "", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RentalHandlerTestSuite) TestCreateDefaultStages_UsesHeaderUser() {
	id := uuid.New()
	suite.mockStageSvc.EXPECT().CreateDefaultStages(gomock.Any(), id, "alice").Return([]service.StageResponse{
		{ID: uuid.New(), RentalID: id, StageType: models.StageTypeProspecting, SortOrder: 1},
	}, nil)

	w := suite.api.MakeRawRequest(http.MethodPost, "/rentals/"+id.String()+"/stages/defaults", "", map[string]string{middleware.UserIDHeader: "alice"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *RentalHandlerTestSuite) TestGetHistory_Pagination() {
	id := uuid.New()
	suite.mockStageSvc.EXPECT().GetRentalHistory(gomock.Any(), id, 2, 5).Return(&service.StageHistoryListResponse{
		Entries:  []service.StageHistoryResponse{},
		Total:    7,
		Page:     2,
		PageSize: 5,
	}, nil)

	w := suite.api.MakeRawRequest(http.MethodGet, "/rentals/"+id.String()+"/history?page=2&page_size=5", "", nil)

	var got service.StageHistoryListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(7), got.Total)
}

func (suite *RentalHandlerTestSuite) TestGetHistory_DefaultPagination() {
	id := uuid.New()
	suite.mockStageSvc.EXPECT().GetRentalHistory(gomock.Any(), id, 1, 20).Return(&service.StageHistoryListResponse{Page: 1, PageSize: 20}, nil)

	w := suite.api.MakeRawRequest(http.MethodGet, "/rentals/"+id.String()+"/history", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RentalHandlerTestSuite) TestRegenerateAndDeleteEvents() {
	id := uuid.New()
	suite.mockCalendarSvc.EXPECT().RegenerateEventsForRental(gomock.Any(), id).Return([]service.CalendarEventResponse{
		{ID: uuid.New(), RentalID: &id, EventType: models.CalendarEventTypeRentalPeriod, StartDate: "2026-05-01"},
	}, nil)
	suite.mockCalendarSvc.EXPECT().DeleteEvents(gomock.Any(), id).Return(int64(1), nil)

	w := suite.api.MakeRawRequest(http.MethodPost, "/rentals/"+id.String()+"/events/regenerate", "", nil)
	var events []service.CalendarEventResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &events)
	require.Len(suite.T(), events, 1)
	assert.Equal(suite.T(), models.CalendarEventTypeRentalPeriod, events[0].EventType)

	w = suite.api.MakeRawRequest(http.MethodDelete, "/rentals/"+id.String()+"/events", "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `{"deleted":1}`, w.Body.String())
}

func (suite *RentalHandlerTestSuite) TestCalendarListEvents() {
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	suite.mockCalendarSvc.EXPECT().ListEventsInRange(gomock.Any(), from, to).Return([]service.CalendarEventResponse{}, nil)

	w := suite.api.MakeRawRequest(http.MethodGet, "/calendar/events?from=2026-05-01&to=2026-05-31", "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.api.MakeRawRequest(http.MethodGet, "/calendar/events?from=May&to=2026-05-31", "", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RentalHandlerTestSuite) TestCalendarMoveEvent() {
	eventID := uuid.New()
	suite.mockCalendarSvc.EXPECT().
		MoveEvent(gomock.Any(), eventID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req *service.MoveEventRequest) (*service.CalendarEventResponse, error) {
			assert.Equal(suite.T(), 2026, req.StartDate.Year())
			assert.Equal(suite.T(), "alice", req.ChangedBy)
			return &service.CalendarEventResponse{ID: uuid.New(), EventType: models.CalendarEventTypeDelivery, StartDate: "2026-06-05"}, nil
		})

	w := suite.api.MakeRawRequest(http.MethodPatch, "/calendar/events/"+eventID.String(),
		`{"start_date":"2026-06-05T00:00:00Z"}`, map[string]string{middleware.UserIDHeader: "alice"})

	var got service.CalendarEventResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "2026-06-05", got.StartDate)
}

func (suite *RentalHandlerTestSuite) TestCalendarMoveEvent_NotFound() {
	eventID := uuid.New()
	suite.mockCalendarSvc.EXPECT().MoveEvent(gomock.Any(), eventID, gomock.Any()).Return(nil, apperrors.ErrCalendarEventNotFound)

	w := suite.api.MakeRawRequest(http.MethodPatch, "/calendar/events/"+eventID.String(), `{"start_date":"2026-06-05T00:00:00Z"}`, nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestRentalHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}
