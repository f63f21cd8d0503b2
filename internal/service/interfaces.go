package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EmployeeServiceInterface defines the interface for employee operations
type EmployeeServiceInterface interface {
	Create(req *CreateEmployeeRequest) (*EmployeeResponse, error)
	GetByID(id uuid.UUID) (*EmployeeDetailsResponse, error)
	GetByEmail(email string) (*EmployeeResponse, error)
	List(page, pageSize int) (*EmployeeListResponse, error)
	ListUnassigned() ([]EmployeeResponse, error)
	Update(id uuid.UUID, req *UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamDetailsResponse, error)
	List(page, pageSize int) (*TeamListResponse, error)
	ChangeLeader(teamID uuid.UUID, req *ChangeLeaderRequest) (*TeamResponse, error)
	AddMember(teamID, userID uuid.UUID) error
	RemoveMember(teamID, userID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uuid.UUID) (*ProjectDetailsResponse, error)
	List(page, pageSize int) (*ProjectListResponse, error)
	Update(id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	AssignTeam(projectID, teamID uuid.UUID) error
	UnassignTeam(projectID, teamID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// HolidayServiceInterface defines the interface for holiday request operations
type HolidayServiceInterface interface {
	Create(actorID uuid.UUID, req *CreateHolidayRequest) (*HolidayResponse, error)
	GetByID(id uuid.UUID) (*HolidayResponse, error)
	ListByRequester(requesterID uuid.UUID) ([]HolidayResponse, error)
	ListPending(actorID uuid.UUID) ([]HolidayResponse, error)
	Update(id, actorID uuid.UUID, req *UpdateHolidayRequest) (*HolidayResponse, error)
	Approve(id, actorID uuid.UUID) error
	Delete(id, actorID uuid.UUID) error
}

// RoleSynchronizerInterface recomputes derived role grants for a user. WithTx
// binds the synchronizer to an enclosing transaction so grants and revocations
// commit together with the graph mutation that caused them.
type RoleSynchronizerInterface interface {
	WithTx(tx *gorm.DB) RoleSynchronizerInterface
	Synchronize(userID uuid.UUID) error
}
