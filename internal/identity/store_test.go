package identity

import (
	"testing"

	"vacation-manager-backend/internal/database/models"
	"vacation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RoleStoreTestSuite tests the gorm-backed RoleStore
type RoleStoreTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	store         *RoleStore
}

// SetupSuite runs before all tests in the suite
func (suite *RoleStoreTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.store = NewRoleStore(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *RoleStoreTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RoleStoreTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RoleStoreTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGrantAndHas tests granting a role and querying it back
func (suite *RoleStoreTestSuite) TestGrantAndHas() {
	userID := uuid.New()

	held, err := suite.store.Has(userID, models.RoleDeveloper)
	suite.NoError(err)
	suite.False(held)

	err = suite.store.Grant(userID, models.RoleDeveloper)
	suite.NoError(err)

	held, err = suite.store.Has(userID, models.RoleDeveloper)
	suite.NoError(err)
	suite.True(held)
}

// TestGrantIdempotent tests that granting a held role is a no-op
func (suite *RoleStoreTestSuite) TestGrantIdempotent() {
	userID := uuid.New()

	err := suite.store.Grant(userID, models.RoleTeamLead)
	suite.NoError(err)

	err = suite.store.Grant(userID, models.RoleTeamLead)
	suite.NoError(err)

	roles, err := suite.store.RolesOf(userID)
	suite.NoError(err)
	suite.Len(roles, 1)
}

// TestRevoke tests revoking a role
func (suite *RoleStoreTestSuite) TestRevoke() {
	userID := uuid.New()

	err := suite.store.Grant(userID, models.RoleUnassigned)
	suite.NoError(err)

	err = suite.store.Revoke(userID, models.RoleUnassigned)
	suite.NoError(err)

	held, err := suite.store.Has(userID, models.RoleUnassigned)
	suite.NoError(err)
	suite.False(held)
}

// TestRevokeAbsent tests that revoking an absent role is a no-op
func (suite *RoleStoreTestSuite) TestRevokeAbsent() {
	err := suite.store.Revoke(uuid.New(), models.RoleCEO)
	suite.NoError(err)
}

// TestRevokeAll tests removing every grant a user holds
func (suite *RoleStoreTestSuite) TestRevokeAll() {
	userID := uuid.New()
	other := uuid.New()

	err := suite.store.Grant(userID, models.RoleTeamLead)
	suite.NoError(err)
	err = suite.store.Grant(userID, models.RoleDeveloper)
	suite.NoError(err)
	err = suite.store.Grant(other, models.RoleDeveloper)
	suite.NoError(err)

	err = suite.store.RevokeAll(userID)
	suite.NoError(err)

	roles, err := suite.store.RolesOf(userID)
	suite.NoError(err)
	suite.Empty(roles)

	// Other users' grants are untouched
	held, err := suite.store.Has(other, models.RoleDeveloper)
	suite.NoError(err)
	suite.True(held)
}

// TestRolesOf tests listing every role a user holds
func (suite *RoleStoreTestSuite) TestRolesOf() {
	userID := uuid.New()

	err := suite.store.Grant(userID, models.RoleTeamLead)
	suite.NoError(err)
	err = suite.store.Grant(userID, models.RoleDeveloper)
	suite.NoError(err)

	roles, err := suite.store.RolesOf(userID)
	suite.NoError(err)
	suite.Len(roles, 2)
	suite.Contains(roles, models.RoleTeamLead)
	suite.Contains(roles, models.RoleDeveloper)
}

// TestWithTxRollback tests that grants made inside a rolled-back transaction
// are discarded
func (suite *RoleStoreTestSuite) TestWithTxRollback() {
	userID := uuid.New()

	tx := suite.baseTestSuite.DB.Begin()
	suite.NoError(tx.Error)

	err := suite.store.WithTx(tx).Grant(userID, models.RoleDeveloper)
	suite.NoError(err)

	tx.Rollback()

	held, err := suite.store.Has(userID, models.RoleDeveloper)
	suite.NoError(err)
	suite.False(held)
}

// Run the test suite
func TestRoleStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RoleStoreTestSuite))
}
