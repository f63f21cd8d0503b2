package service

import (
	"vacation-manager-backend/internal/database/models"
)

// RoleSet is a queryable set of role tags.
type RoleSet map[models.Role]bool

// NewRoleSet builds a RoleSet from a slice of role tags.
func NewRoleSet(roles []models.Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		set[role] = true
	}
	return set
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(role models.Role) bool {
	return s[role]
}

// HolidayAccessPolicy decides, for a single holiday request, whether an actor
// may approve, delete or edit it. It is a pure function of the actor, their
// role set, the request and the requester's position in the hierarchy; it
// never touches storage.
//
// The escalation rule: a team lead only has authority over ordinary members
// of the team they lead. A request filed by someone who themselves leads a
// team bypasses every peer lead and can only be decided by the CEO.
type HolidayAccessPolicy struct{}

// NewHolidayAccessPolicy creates a new policy evaluator
func NewHolidayAccessPolicy() *HolidayAccessPolicy {
	return &HolidayAccessPolicy{}
}

// CanApprove reports whether the actor may approve the request. The requester
// may never approve their own request, and an approved request is frozen.
func (p *HolidayAccessPolicy) CanApprove(actor *models.User, actorRoles RoleSet, holiday *models.Holiday, requester *models.User) bool {
	if holiday.IsApproved {
		return false
	}
	if actorRoles.Has(models.RoleCEO) {
		return true
	}
	return p.leadsRequesterTeam(actor, actorRoles, requester)
}

// CanDelete reports whether the actor may delete the request. Unlike approve,
// the requester may withdraw their own pending request. An approved request
// can never be deleted.
func (p *HolidayAccessPolicy) CanDelete(actor *models.User, actorRoles RoleSet, holiday *models.Holiday, requester *models.User) bool {
	if holiday.IsApproved {
		return false
	}
	if actor.ID == holiday.RequesterID {
		return true
	}
	if actorRoles.Has(models.RoleCEO) {
		return true
	}
	return p.leadsRequesterTeam(actor, actorRoles, requester)
}

// CanEdit reports whether the actor may edit the request: only the requester,
// and only while the request is pending.
func (p *HolidayAccessPolicy) CanEdit(actor *models.User, holiday *models.Holiday) bool {
	return !holiday.IsApproved && actor.ID == holiday.RequesterID
}

// leadsRequesterTeam holds when the actor leads the team the requester is an
// ordinary member of. Requesters who lead any team are escalated to the CEO
// tier, so they never match here.
func (p *HolidayAccessPolicy) leadsRequesterTeam(actor *models.User, actorRoles RoleSet, requester *models.User) bool {
	if !actorRoles.Has(models.RoleTeamLead) || actor.TeamLedID == nil {
		return false
	}
	if requester.IsLeader() {
		return false
	}
	return requester.IsMemberOf(*actor.TeamLedID)
}
