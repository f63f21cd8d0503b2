package testutils

import (
	"fmt"
	"time"

	"vacation-manager-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles every factory for convenient use in tests
type FactorySet struct {
	User    *UserFactory
	Team    *TeamFactory
	Project *ProjectFactory
	Holiday *HolidayFactory
	Role    *RoleFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:    NewUserFactory(),
		Team:    NewTeamFactory(),
		Project: NewProjectFactory(),
		Holiday: NewHolidayFactory(),
		Role:    NewRoleFactory(),
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "Ivan",
		LastName:  "Petrov",
		Email:     fmt.Sprintf("ivan.petrov+%s@test.com", id.String()[:8]),
		Phone:     "+359881234567",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTeam places the user in the given team as an ordinary member
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// WithTeamLed marks the user as leader of the given team
func (f *UserFactory) WithTeamLed(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamLedID = &teamID
	return user
}

// WithName sets custom first and last names for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team led by the given user, with a unique name
func (f *TeamFactory) Create(leaderID uuid.UUID) *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Team " + id.String()[:8],
		LeaderID: leaderID,
		Version:  1,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(leaderID uuid.UUID, name string) *models.Team {
	team := f.Create(leaderID)
	team.Name = name
	return team
}

// WithProject assigns the team to the given project
func (f *TeamFactory) WithProject(leaderID, projectID uuid.UUID) *models.Team {
	team := f.Create(leaderID)
	team.ProjectID = &projectID
	return team
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with a unique name
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Project " + id.String()[:8],
		Description: "A test project",
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// HolidayFactory provides methods to create test Holiday data
type HolidayFactory struct{}

// NewHolidayFactory creates a new HolidayFactory
func NewHolidayFactory() *HolidayFactory {
	return &HolidayFactory{}
}

// Create creates a pending test Holiday filed by the given user
func (f *HolidayFactory) Create(requesterID uuid.UUID) *models.Holiday {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return &models.Holiday{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		RequesterID:   requesterID,
		StartDate:     today.AddDate(0, 0, 7),
		EndDate:       today.AddDate(0, 0, 11),
		DateOfRequest: today,
		IsHalfDay:     false,
		IsApproved:    false,
		Version:       1,
	}
}

// Approved creates an already approved test Holiday filed by the given user
func (f *HolidayFactory) Approved(requesterID uuid.UUID) *models.Holiday {
	holiday := f.Create(requesterID)
	holiday.IsApproved = true
	holiday.Version = 2
	return holiday
}

// WithDates sets custom start and end dates for the holiday
func (f *HolidayFactory) WithDates(requesterID uuid.UUID, start, end time.Time) *models.Holiday {
	holiday := f.Create(requesterID)
	holiday.StartDate = start
	holiday.EndDate = end
	return holiday
}

// RoleFactory provides methods to create test role grants
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Grant creates a role grant row for the given user
func (f *RoleFactory) Grant(userID uuid.UUID, role models.Role) *models.UserRole {
	return &models.UserRole{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID: userID,
		Role:   role,
	}
}
