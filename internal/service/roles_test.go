package service_test

import (
	"testing"

	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/mocks"
	"vacation-manager-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RoleSyncServiceTestSuite defines the test suite for RoleSyncService
type RoleSyncServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockRoles    *mocks.MockRoleStoreInterface
	roleSync     *service.RoleSyncService
}

// SetupTest sets up the test suite
func (suite *RoleSyncServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRoles = mocks.NewMockRoleStoreInterface(suite.ctrl)
	suite.roleSync = service.NewRoleSyncService(suite.mockUserRepo, suite.mockRoles)
}

// TearDownTest cleans up after each test
func (suite *RoleSyncServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSynchronizeNewLeader tests that becoming a leader grants team_lead and
// revokes unassigned
func (suite *RoleSyncServiceTestSuite) TestSynchronizeNewLeader() {
	teamID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamLedID: &teamID,
	}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return([]models.Role{models.RoleUnassigned}, nil)
	suite.mockRoles.EXPECT().Grant(user.ID, models.RoleTeamLead).Return(nil)
	suite.mockRoles.EXPECT().Revoke(user.ID, models.RoleUnassigned).Return(nil)

	err := suite.roleSync.Synchronize(user.ID)
	suite.NoError(err)
}

// TestSynchronizeNewMember tests that joining a team grants developer
func (suite *RoleSyncServiceTestSuite) TestSynchronizeNewMember() {
	teamID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    &teamID,
	}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return([]models.Role{models.RoleUnassigned}, nil)
	suite.mockRoles.EXPECT().Grant(user.ID, models.RoleDeveloper).Return(nil)
	suite.mockRoles.EXPECT().Revoke(user.ID, models.RoleUnassigned).Return(nil)

	err := suite.roleSync.Synchronize(user.ID)
	suite.NoError(err)
}

// TestSynchronizeDetachedUser tests that leaving the last team grants
// unassigned and revokes developer
func (suite *RoleSyncServiceTestSuite) TestSynchronizeDetachedUser() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return([]models.Role{models.RoleDeveloper}, nil)
	suite.mockRoles.EXPECT().Revoke(user.ID, models.RoleDeveloper).Return(nil)
	suite.mockRoles.EXPECT().Grant(user.ID, models.RoleUnassigned).Return(nil)

	err := suite.roleSync.Synchronize(user.ID)
	suite.NoError(err)
}

// TestSynchronizeLeaderAndMember tests a user leading one team while belonging
// to another holds both facet roles
func (suite *RoleSyncServiceTestSuite) TestSynchronizeLeaderAndMember() {
	ledID := uuid.New()
	memberID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamID:    &memberID,
		TeamLedID: &ledID,
	}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return([]models.Role{}, nil)
	suite.mockRoles.EXPECT().Grant(user.ID, models.RoleTeamLead).Return(nil)
	suite.mockRoles.EXPECT().Grant(user.ID, models.RoleDeveloper).Return(nil)

	err := suite.roleSync.Synchronize(user.ID)
	suite.NoError(err)
}

// TestSynchronizeIdempotent tests that a second run with no graph change
// produces no grants and no revocations
func (suite *RoleSyncServiceTestSuite) TestSynchronizeIdempotent() {
	teamID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		TeamLedID: &teamID,
	}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return([]models.Role{models.RoleTeamLead}, nil)

	err := suite.roleSync.Synchronize(user.ID)
	suite.NoError(err)
}

// TestSynchronizeNeverTouchesCEO tests that the out-of-band CEO grant survives
// synchronization untouched
func (suite *RoleSyncServiceTestSuite) TestSynchronizeNeverTouchesCEO() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return([]models.Role{models.RoleCEO}, nil)
	// ceo is not a derived facet: only unassigned is granted, nothing revoked
	suite.mockRoles.EXPECT().Grant(user.ID, models.RoleUnassigned).Return(nil)

	err := suite.roleSync.Synchronize(user.ID)
	suite.NoError(err)
}

// TestSynchronizeUserNotFound tests synchronizing a missing user
func (suite *RoleSyncServiceTestSuite) TestSynchronizeUserNotFound() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.roleSync.Synchronize(userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestSynchronizeStoreUnavailable tests that an identity store failure aborts
// the sync
func (suite *RoleSyncServiceTestSuite) TestSynchronizeStoreUnavailable() {
	user := &models.User{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockRoles.EXPECT().RolesOf(user.ID).Return(nil, apperrors.ErrIdentityUnavailable)

	err := suite.roleSync.Synchronize(user.ID)
	assert.True(suite.T(), apperrors.IsDependencyUnavailable(err))
}

// TestRoleSyncServiceTestSuite runs the test suite
func TestRoleSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleSyncServiceTestSuite))
}
