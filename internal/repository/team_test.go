package repository

import (
	"testing"

	apperrors "vacation-manager-backend/internal/errors"
	"vacation-manager-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createLeader persists a user to lead a team under test
func (suite *TeamRepositoryTestSuite) createLeader() uuid.UUID {
	leader := suite.factories.User.Create()
	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	err := userRepo.Create(leader)
	suite.NoError(err)
	return leader.ID
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create(suite.createLeader())

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.Equal(1, team.Version)
	suite.NotZero(team.CreatedAt)
}

// TestCreateDuplicateName tests that the team name unique constraint holds
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team1 := suite.factories.Team.WithName(suite.createLeader(), "duplicate-team")
	err := suite.repo.Create(team1)
	suite.NoError(err)

	team2 := suite.factories.Team.WithName(suite.createLeader(), "duplicate-team")

	err = suite.repo.Create(team2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a team by ID
func (suite *TeamRepositoryTestSuite) TestGetByID() {
	leaderID := suite.createLeader()
	team := suite.factories.Team.Create(leaderID)
	err := suite.repo.Create(team)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.Equal(team.ID, retrieved.ID)
	suite.Equal(team.Name, retrieved.Name)
	suite.Equal(leaderID, retrieved.LeaderID)
}

// TestGetByIDNotFound tests retrieving a non-existent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	team, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestGetByName tests retrieving a team by name
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName(suite.createLeader(), "platform-team")
	err := suite.repo.Create(team)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByName("platform-team")

	suite.NoError(err)
	suite.Equal(team.ID, retrieved.ID)
}

// TestGetAll tests listing teams with pagination, ordered by name
func (suite *TeamRepositoryTestSuite) TestGetAll() {
	for _, name := range []string{"alpha", "bravo", "charlie"} {
		team := suite.factories.Team.WithName(suite.createLeader(), name)
		err := suite.repo.Create(team)
		suite.NoError(err)
	}

	teams, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(int64(3), total)
	suite.Equal("alpha", teams[0].Name)

	teams, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(int64(3), total)
	suite.Equal("charlie", teams[0].Name)
}

// TestGetWithMembers tests retrieving a team with its members loaded
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	team := suite.factories.Team.Create(suite.createLeader())
	err := suite.repo.Create(team)
	suite.NoError(err)

	userRepo := NewUserRepository(suite.baseTestSuite.DB)
	member1 := suite.factories.User.WithTeam(team.ID)
	member2 := suite.factories.User.WithTeam(team.ID)
	err = userRepo.Create(member1)
	suite.NoError(err)
	err = userRepo.Create(member2)
	suite.NoError(err)

	retrieved, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Len(retrieved.Members, 2)

	memberIDs := make([]uuid.UUID, len(retrieved.Members))
	for i, m := range retrieved.Members {
		memberIDs[i] = m.ID
	}
	suite.Contains(memberIDs, member1.ID)
	suite.Contains(memberIDs, member2.ID)
}

// TestSetLeader tests the leader change under optimistic locking
func (suite *TeamRepositoryTestSuite) TestSetLeader() {
	team := suite.factories.Team.Create(suite.createLeader())
	err := suite.repo.Create(team)
	suite.NoError(err)

	newLeaderID := suite.createLeader()

	err = suite.repo.SetLeader(team.ID, newLeaderID, team.Version)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal(newLeaderID, updated.LeaderID)
	suite.Equal(team.Version+1, updated.Version)
}

// TestSetLeaderStaleVersion tests that a stale version loses the race
func (suite *TeamRepositoryTestSuite) TestSetLeaderStaleVersion() {
	team := suite.factories.Team.Create(suite.createLeader())
	err := suite.repo.Create(team)
	suite.NoError(err)

	// First writer bumps the version
	err = suite.repo.SetLeader(team.ID, suite.createLeader(), team.Version)
	suite.NoError(err)

	// Second writer still holds the old version
	err = suite.repo.SetLeader(team.ID, suite.createLeader(), team.Version)
	suite.ErrorIs(err, apperrors.ErrTeamModified)
}

// TestSetProject tests assigning and releasing a project
func (suite *TeamRepositoryTestSuite) TestSetProject() {
	team := suite.factories.Team.Create(suite.createLeader())
	err := suite.repo.Create(team)
	suite.NoError(err)

	project := suite.factories.Project.Create()
	projectRepo := NewProjectRepository(suite.baseTestSuite.DB)
	err = projectRepo.Create(project)
	suite.NoError(err)

	err = suite.repo.SetProject(team.ID, &project.ID)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.NotNil(updated.ProjectID)
	suite.Equal(project.ID, *updated.ProjectID)

	err = suite.repo.SetProject(team.ID, nil)
	suite.NoError(err)

	updated, err = suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Nil(updated.ProjectID)
}

// TestGetByProjectID tests listing teams assigned to a project
func (suite *TeamRepositoryTestSuite) TestGetByProjectID() {
	project := suite.factories.Project.Create()
	projectRepo := NewProjectRepository(suite.baseTestSuite.DB)
	err := projectRepo.Create(project)
	suite.NoError(err)

	assigned := suite.factories.Team.WithProject(suite.createLeader(), project.ID)
	err = suite.repo.Create(assigned)
	suite.NoError(err)

	unassigned := suite.factories.Team.Create(suite.createLeader())
	err = suite.repo.Create(unassigned)
	suite.NoError(err)

	teams, err := suite.repo.GetByProjectID(project.ID)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(assigned.ID, teams[0].ID)
}

// TestGetWithoutProject tests listing teams not assigned to any project
func (suite *TeamRepositoryTestSuite) TestGetWithoutProject() {
	project := suite.factories.Project.Create()
	projectRepo := NewProjectRepository(suite.baseTestSuite.DB)
	err := projectRepo.Create(project)
	suite.NoError(err)

	assigned := suite.factories.Team.WithProject(suite.createLeader(), project.ID)
	err = suite.repo.Create(assigned)
	suite.NoError(err)

	free := suite.factories.Team.Create(suite.createLeader())
	err = suite.repo.Create(free)
	suite.NoError(err)

	teams, err := suite.repo.GetWithoutProject()

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(free.ID, teams[0].ID)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.Create(suite.createLeader())
	err := suite.repo.Create(team)
	suite.NoError(err)

	err = suite.repo.Delete(team.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(team.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
