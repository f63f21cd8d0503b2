package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vacation-manager-backend/internal/api/handlers"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/mocks"
	"vacation-manager-backend/internal/service"
	"vacation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	suite.handler = handlers.NewTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id/leader", suite.handler.ChangeLeader)
		teams.PUT("/:id/members/:userId", suite.handler.AddMember)
		teams.DELETE("/:id/members/:userId", suite.handler.RemoveMember)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *TeamHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		leaderID := uuid.New()
		teamID := uuid.New()

		requestBody := map[string]interface{}{
			"name":      "core-services",
			"leader_id": leaderID.String(),
		}

		expectedResponse := &service.TeamResponse{
			ID:        teamID,
			Name:      "core-services",
			LeaderID:  leaderID,
			Version:   1,
			CreatedAt: "2026-08-31T00:00:00Z",
			UpdatedAt: "2026-08-31T00:00:00Z",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Name, response.Name)
		assert.Equal(t, expectedResponse.LeaderID, response.LeaderID)
	})

	suite.T().Run("NameTaken", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":      "core-services",
			"leader_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrTeamExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("LeaderAlreadyLeads", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"name":      "new-team",
			"leader_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrAlreadyLeadsTeam).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams", requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/teams")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		leaderID := uuid.New()

		expectedResponse := &service.TeamDetailsResponse{
			Team: service.TeamResponse{
				ID:       teamID,
				Name:     "core-services",
				LeaderID: leaderID,
				Version:  1,
			},
			Members: []service.EmployeeResponse{},
		}

		suite.mockService.EXPECT().
			GetByID(teamID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamDetailsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "core-services", response.Team.Name)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(teamID).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestChangeLeader tests the ChangeLeader handler
func (suite *TeamHandlerTestSuite) TestChangeLeader() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		newLeaderID := uuid.New()

		requestBody := map[string]interface{}{
			"new_leader_id": newLeaderID.String(),
		}

		expectedResponse := &service.TeamResponse{
			ID:       teamID,
			Name:     "core-services",
			LeaderID: newLeaderID,
			Version:  2,
		}

		suite.mockService.EXPECT().
			ChangeLeader(teamID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s/leader", teamID), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, newLeaderID, response.LeaderID)
		assert.Equal(t, 2, response.Version)
	})

	suite.T().Run("ConcurrentModification", func(t *testing.T) {
		teamID := uuid.New()
		requestBody := map[string]interface{}{
			"new_leader_id": uuid.New().String(),
		}

		suite.mockService.EXPECT().
			ChangeLeader(teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamModified).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s/leader", teamID), requestBody)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestAddMember tests the AddMember handler
func (suite *TeamHandlerTestSuite) TestAddMember() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		userID := uuid.New()

		suite.mockService.EXPECT().
			AddMember(teamID, userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, userID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("LeaderCannotJoin", func(t *testing.T) {
		teamID := uuid.New()
		userID := uuid.New()

		suite.mockService.EXPECT().
			AddMember(teamID, userID).
			Return(apperrors.ErrLeaderCannotBeMember).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, userID), nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

// TestRemoveMember tests the RemoveMember handler
func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		userID := uuid.New()

		suite.mockService.EXPECT().
			RemoveMember(teamID, userID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, userID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("NotAMember", func(t *testing.T) {
		teamID := uuid.New()
		userID := uuid.New()

		suite.mockService.EXPECT().
			RemoveMember(teamID, userID).
			Return(apperrors.NewNotFoundError("team member")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s/members/%s", teamID, userID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(teamID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(teamID).
			Return(apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/api/v1/teams/%s", teamID), nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.TeamListResponse{
			Teams: []service.TeamResponse{
				{ID: uuid.New(), Name: "core-services", LeaderID: uuid.New(), Version: 1},
			},
			Total:    1,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			List(1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.TeamListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, int64(1), response.Total)
		assert.Len(t, response.Teams, 1)
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
