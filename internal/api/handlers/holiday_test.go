package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"vacation-manager-backend/internal/api/handlers"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/mocks"
	"vacation-manager-backend/internal/service"
	"vacation-manager-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HolidayHandlerTestSuite defines the test suite for HolidayHandler
type HolidayHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHolidayServiceInterface
	handler     *handlers.HolidayHandler
	httpSuite   *testutils.HTTPTestSuite
	actorID     uuid.UUID
}

// SetupTest sets up the test suite. A stand-in for the auth middleware sets
// the acting user's id on the context, the way RequireAuth does after token
// validation.
func (suite *HolidayHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHolidayServiceInterface(suite.ctrl)
	suite.actorID = uuid.New()

	suite.handler = handlers.NewHolidayHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", suite.actorID)
		c.Next()
	})

	v1 := suite.httpSuite.Router.Group("/api/v1")
	holidays := v1.Group("/holidays")
	{
		holidays.POST("", suite.handler.CreateHoliday)
		holidays.GET("", suite.handler.ListMyHolidays)
		holidays.GET("/pending", suite.handler.ListPendingHolidays)
		holidays.GET("/:id", suite.handler.GetHoliday)
		holidays.PUT("/:id", suite.handler.UpdateHoliday)
		holidays.POST("/:id/approve", suite.handler.ApproveHoliday)
		holidays.DELETE("/:id", suite.handler.DeleteHoliday)
	}
}

// TearDownTest cleans up after each test
func (suite *HolidayHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateHoliday tests the CreateHoliday handler
func (suite *HolidayHandlerTestSuite) TestCreateHoliday() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"start_date":  "2026-09-07",
			"end_date":    "2026-09-11",
			"is_half_day": false,
		}

		expectedResponse := &service.HolidayResponse{
			ID:            uuid.New(),
			RequesterID:   suite.actorID,
			StartDate:     "2026-09-07",
			EndDate:       "2026-09-11",
			DateOfRequest: "2026-08-31",
			Version:       1,
		}

		suite.mockService.EXPECT().
			Create(suite.actorID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/holidays", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.HolidayResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, suite.actorID, response.RequesterID)
		assert.False(t, response.IsApproved)
	})

	suite.T().Run("InvalidDateRange", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"start_date": "2026-09-11",
			"end_date":   "2026-09-07",
		}

		suite.mockService.EXPECT().
			Create(suite.actorID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidDateRange).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/holidays", requestBody)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestListMyHolidays tests the ListMyHolidays handler
func (suite *HolidayHandlerTestSuite) TestListMyHolidays() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := []service.HolidayResponse{
			{ID: uuid.New(), RequesterID: suite.actorID, StartDate: "2026-09-07", EndDate: "2026-09-11", Version: 1},
		}

		suite.mockService.EXPECT().
			ListByRequester(suite.actorID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/holidays", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.HolidayResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
	})
}

// TestListPendingHolidays tests the ListPendingHolidays handler
func (suite *HolidayHandlerTestSuite) TestListPendingHolidays() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := []service.HolidayResponse{
			{ID: uuid.New(), RequesterID: uuid.New(), StartDate: "2026-09-07", EndDate: "2026-09-11", Version: 1},
		}

		suite.mockService.EXPECT().
			ListPending(suite.actorID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/holidays/pending", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Denied", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListPending(suite.actorID).
			Return(nil, apperrors.ErrPendingQueueDenied).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/holidays/pending", nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

// TestUpdateHoliday tests the UpdateHoliday handler
func (suite *HolidayHandlerTestSuite) TestUpdateHoliday() {
	suite.T().Run("Success", func(t *testing.T) {
		holidayID := uuid.New()
		requestBody := map[string]interface{}{
			"start_date":  "2026-09-14",
			"end_date":    "2026-09-18",
			"is_half_day": true,
		}

		expectedResponse := &service.HolidayResponse{
			ID:          holidayID,
			RequesterID: suite.actorID,
			StartDate:   "2026-09-14",
			EndDate:     "2026-09-18",
			IsHalfDay:   true,
			Version:     1,
		}

		suite.mockService.EXPECT().
			Update(holidayID, suite.actorID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/holidays/%s", holidayID), requestBody)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("NotRequester", func(t *testing.T) {
		holidayID := uuid.New()
		requestBody := map[string]interface{}{
			"start_date": "2026-09-14",
			"end_date":   "2026-09-18",
		}

		suite.mockService.EXPECT().
			Update(holidayID, suite.actorID, gomock.Any()).
			Return(nil, apperrors.ErrNotRequester).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/holidays/%s", holidayID), requestBody)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("AlreadyApproved", func(t *testing.T) {
		holidayID := uuid.New()
		requestBody := map[string]interface{}{
			"start_date": "2026-09-14",
			"end_date":   "2026-09-18",
		}

		suite.mockService.EXPECT().
			Update(holidayID, suite.actorID, gomock.Any()).
			Return(nil, apperrors.ErrHolidayAlreadyApproved).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/holidays/%s", holidayID), requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestApproveHoliday tests the ApproveHoliday handler
func (suite *HolidayHandlerTestSuite) TestApproveHoliday() {
	suite.T().Run("Success", func(t *testing.T) {
		holidayID := uuid.New()

		suite.mockService.EXPECT().
			Approve(holidayID, suite.actorID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/holidays/%s/approve", holidayID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Denied", func(t *testing.T) {
		holidayID := uuid.New()

		suite.mockService.EXPECT().
			Approve(holidayID, suite.actorID).
			Return(apperrors.ErrApprovalDenied).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/holidays/%s/approve", holidayID), nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("ConcurrentModification", func(t *testing.T) {
		holidayID := uuid.New()

		suite.mockService.EXPECT().
			Approve(holidayID, suite.actorID).
			Return(apperrors.ErrHolidayModified).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/holidays/%s/approve", holidayID), nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/holidays/not-a-uuid/approve", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteHoliday tests the DeleteHoliday handler
func (suite *HolidayHandlerTestSuite) TestDeleteHoliday() {
	suite.T().Run("Success", func(t *testing.T) {
		holidayID := uuid.New()

		suite.mockService.EXPECT().
			Delete(holidayID, suite.actorID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/holidays/%s", holidayID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("AlreadyApproved", func(t *testing.T) {
		holidayID := uuid.New()

		suite.mockService.EXPECT().
			Delete(holidayID, suite.actorID).
			Return(apperrors.ErrHolidayAlreadyApproved).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/holidays/%s", holidayID), nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestMissingActor tests that requests without an authenticated user are
// rejected
func (suite *HolidayHandlerTestSuite) TestMissingActor() {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.POST("/api/v1/holidays", suite.handler.CreateHoliday)

	recorder := httpSuite.MakeRequest("POST", "/api/v1/holidays", map[string]interface{}{
		"start_date": "2026-09-07",
		"end_date":   "2026-09-11",
	})
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

// TestHolidayHandlerTestSuite runs the test suite
func TestHolidayHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HolidayHandlerTestSuite))
}
