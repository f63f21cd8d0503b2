package repository

import (
	"testing"

	"vacation-manager-backend/internal/database/models"
	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// HolidayRepositoryTestSuite tests the HolidayRepository
type HolidayRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *HolidayRepository
	userRepo      *UserRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *HolidayRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewHolidayRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *HolidayRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *HolidayRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *HolidayRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createUser persists a fresh user to file requests under
func (suite *HolidayRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	err := suite.userRepo.Create(user)
	suite.NoError(err)
	return user
}

// createTeam persists a team led by a fresh user and returns the team's ID
func (suite *HolidayRepositoryTestSuite) createTeam() uuid.UUID {
	leader := suite.createUser()
	team := suite.factories.Team.Create(leader.ID)
	err := suite.teamRepo.Create(team)
	suite.NoError(err)

	err = suite.userRepo.SetTeamLed(leader.ID, &team.ID)
	suite.NoError(err)

	return team.ID
}

// TestCreate tests creating a new holiday request
func (suite *HolidayRepositoryTestSuite) TestCreate() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)

	err := suite.repo.Create(holiday)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, holiday.ID)
	suite.False(holiday.IsApproved)
	suite.Equal(1, holiday.Version)
}

// TestGetByID tests retrieving a holiday request by ID
func (suite *HolidayRepositoryTestSuite) TestGetByID() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(holiday.ID)

	suite.NoError(err)
	suite.Equal(holiday.ID, retrieved.ID)
	suite.Equal(requester.ID, retrieved.RequesterID)
}

// TestGetByIDNotFound tests retrieving a non-existent request
func (suite *HolidayRepositoryTestSuite) TestGetByIDNotFound() {
	holiday, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(holiday)
}

// TestGetWithRequester tests retrieving a request with its requester loaded
func (suite *HolidayRepositoryTestSuite) TestGetWithRequester() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	retrieved, err := suite.repo.GetWithRequester(holiday.ID)

	suite.NoError(err)
	suite.NotNil(retrieved.Requester)
	suite.Equal(requester.Email, retrieved.Requester.Email)
}

// TestGetByRequesterID tests listing a user's own requests
func (suite *HolidayRepositoryTestSuite) TestGetByRequesterID() {
	requester := suite.createUser()
	other := suite.createUser()

	mine1 := suite.factories.Holiday.Create(requester.ID)
	mine2 := suite.factories.Holiday.Approved(requester.ID)
	theirs := suite.factories.Holiday.Create(other.ID)
	for _, h := range []*models.Holiday{mine1, mine2, theirs} {
		err := suite.repo.Create(h)
		suite.NoError(err)
	}

	holidays, err := suite.repo.GetByRequesterID(requester.ID)

	suite.NoError(err)
	suite.Len(holidays, 2)
	for _, h := range holidays {
		suite.Equal(requester.ID, h.RequesterID)
	}
}

// TestGetPendingByTeam tests the team lead's pending queue. Approved requests,
// other teams' requests and requests from users who lead a team themselves
// must all be filtered out.
func (suite *HolidayRepositoryTestSuite) TestGetPendingByTeam() {
	teamID := suite.createTeam()
	otherTeamID := suite.createTeam()

	member := suite.factories.User.WithTeam(teamID)
	err := suite.userRepo.Create(member)
	suite.NoError(err)

	otherMember := suite.factories.User.WithTeam(otherTeamID)
	err = suite.userRepo.Create(otherMember)
	suite.NoError(err)

	// A lead of another team who is also a member of this one
	memberLead := suite.factories.User.WithTeam(teamID)
	err = suite.userRepo.Create(memberLead)
	suite.NoError(err)
	ledTeam := suite.factories.Team.Create(memberLead.ID)
	err = suite.teamRepo.Create(ledTeam)
	suite.NoError(err)
	err = suite.userRepo.SetTeamLed(memberLead.ID, &ledTeam.ID)
	suite.NoError(err)

	pending := suite.factories.Holiday.Create(member.ID)
	approved := suite.factories.Holiday.Approved(member.ID)
	foreign := suite.factories.Holiday.Create(otherMember.ID)
	escalated := suite.factories.Holiday.Create(memberLead.ID)
	for _, h := range []*models.Holiday{pending, approved, foreign, escalated} {
		err = suite.repo.Create(h)
		suite.NoError(err)
	}

	holidays, err := suite.repo.GetPendingByTeam(teamID)

	suite.NoError(err)
	suite.Len(holidays, 1)
	suite.Equal(pending.ID, holidays[0].ID)
	suite.NotNil(holidays[0].Requester)
}

// TestGetAllPending tests the organization-wide pending queue
func (suite *HolidayRepositoryTestSuite) TestGetAllPending() {
	requester := suite.createUser()

	pending1 := suite.factories.Holiday.Create(requester.ID)
	pending2 := suite.factories.Holiday.Create(requester.ID)
	approved := suite.factories.Holiday.Approved(requester.ID)
	for _, h := range []*models.Holiday{pending1, pending2, approved} {
		err := suite.repo.Create(h)
		suite.NoError(err)
	}

	holidays, err := suite.repo.GetAllPending()

	suite.NoError(err)
	suite.Len(holidays, 2)
	for _, h := range holidays {
		suite.False(h.IsApproved)
	}
}

// TestUpdate tests rewriting a pending request under optimistic locking
func (suite *HolidayRepositoryTestSuite) TestUpdate() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	holiday.StartDate = holiday.StartDate.AddDate(0, 0, 7)
	holiday.EndDate = holiday.EndDate.AddDate(0, 0, 7)
	holiday.IsHalfDay = true

	err = suite.repo.Update(holiday)
	suite.NoError(err)
	suite.Equal(2, holiday.Version)

	updated, err := suite.repo.GetByID(holiday.ID)
	suite.NoError(err)
	suite.True(updated.IsHalfDay)
	suite.Equal(2, updated.Version)
}

// TestUpdateStaleVersion tests that a stale version loses the race
func (suite *HolidayRepositoryTestSuite) TestUpdateStaleVersion() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	stale := *holiday

	err = suite.repo.Update(holiday)
	suite.NoError(err)

	err = suite.repo.Update(&stale)
	suite.ErrorIs(err, apperrors.ErrHolidayModified)
}

// TestApprove tests approving a pending request
func (suite *HolidayRepositoryTestSuite) TestApprove() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	err = suite.repo.Approve(holiday.ID, holiday.Version)
	suite.NoError(err)

	approved, err := suite.repo.GetByID(holiday.ID)
	suite.NoError(err)
	suite.True(approved.IsApproved)
	suite.Equal(holiday.Version+1, approved.Version)
}

// TestApproveStaleVersion tests approving with a stale version
func (suite *HolidayRepositoryTestSuite) TestApproveStaleVersion() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	err = suite.repo.Update(holiday)
	suite.NoError(err)

	err = suite.repo.Approve(holiday.ID, 1)
	suite.ErrorIs(err, apperrors.ErrHolidayModified)
}

// TestApproveAlreadyApproved tests that a decided request stays decided
func (suite *HolidayRepositoryTestSuite) TestApproveAlreadyApproved() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	err = suite.repo.Approve(holiday.ID, holiday.Version)
	suite.NoError(err)

	err = suite.repo.Approve(holiday.ID, holiday.Version+1)
	suite.ErrorIs(err, apperrors.ErrHolidayModified)
}

// TestDelete tests deleting a pending holiday request
func (suite *HolidayRepositoryTestSuite) TestDelete() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	err = suite.repo.Delete(holiday.ID, holiday.Version)
	suite.NoError(err)

	_, err = suite.repo.GetByID(holiday.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteStaleVersion tests that a delete holding a stale version loses the
// race and leaves the row in place
func (suite *HolidayRepositoryTestSuite) TestDeleteStaleVersion() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	// Another writer bumps the version first
	err = suite.repo.Update(holiday)
	suite.NoError(err)

	err = suite.repo.Delete(holiday.ID, 1)
	suite.ErrorIs(err, apperrors.ErrHolidayModified)

	_, err = suite.repo.GetByID(holiday.ID)
	suite.NoError(err)
}

// TestDeleteApprovedBlocked tests that a delete racing an approve cannot
// remove the decided request even with the right version
func (suite *HolidayRepositoryTestSuite) TestDeleteApprovedBlocked() {
	requester := suite.createUser()
	holiday := suite.factories.Holiday.Create(requester.ID)
	err := suite.repo.Create(holiday)
	suite.NoError(err)

	err = suite.repo.Approve(holiday.ID, holiday.Version)
	suite.NoError(err)

	err = suite.repo.Delete(holiday.ID, holiday.Version+1)
	suite.ErrorIs(err, apperrors.ErrHolidayModified)

	approved, err := suite.repo.GetByID(holiday.ID)
	suite.NoError(err)
	suite.True(approved.IsApproved)
}

// Run the test suite
func TestHolidayRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(HolidayRepositoryTestSuite))
}
