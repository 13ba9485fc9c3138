package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoleLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected RoleLevel
		ok       bool
	}{
		{"numeric member", 0, RoleMember, true},
		{"numeric leader", 3, RoleLeader, true},
		{"float from JSON body", float64(2), RoleViceLeader, true},
		{"numeric string", "1", RoleOfficer, true},
		{"role name", "Leader", RoleLeader, true},
		{"role name lowercase", "officer", RoleOfficer, true},
		{"vice leader with space", "Vice Leader", RoleViceLeader, true},
		{"vice leader with underscore", "vice_leader", RoleViceLeader, true},
		{"vice leader joined", "ViceLeader", RoleViceLeader, true},
		{"out of range high", 4, RoleNone, false},
		{"out of range low", -1, RoleNone, false},
		{"garbage string", "admiral", RoleNone, false},
		{"nil", nil, RoleNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := NormalizeRoleLevel(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestBuildPermissions(t *testing.T) {
	// Capabilities must be monotonic: a higher role never loses something a
	// lower role has.
	ranks := []RoleLevel{RoleMember, RoleOfficer, RoleViceLeader, RoleLeader}

	count := func(p Permissions) int {
		total := 0
		for _, b := range []bool{
			p.CanInvite, p.CanAcceptRequests, p.CanManageQuests, p.CanPromoteOfficer,
			p.CanPromoteViceLeader, p.CanTransferLeadership, p.CanSetAliases, p.CanSetIcon,
		} {
			if b {
				total++
			}
		}
		return total
	}

	prev := -1
	for _, rank := range ranks {
		c := count(BuildPermissions(rank))
		assert.GreaterOrEqual(t, c, prev, "rank %s lost capabilities", rank.Name())
		prev = c
	}

	assert.Equal(t, Permissions{}, BuildPermissions(RoleNone))
	assert.Equal(t, Permissions{}, BuildPermissions(RoleMember))

	officer := BuildPermissions(RoleOfficer)
	assert.True(t, officer.CanInvite)
	assert.True(t, officer.CanAcceptRequests)
	assert.False(t, officer.CanManageQuests)

	vice := BuildPermissions(RoleViceLeader)
	assert.True(t, vice.CanManageQuests)
	assert.True(t, vice.CanPromoteOfficer)
	assert.False(t, vice.CanTransferLeadership)

	leader := BuildPermissions(RoleLeader)
	assert.True(t, leader.CanTransferLeadership)
	assert.True(t, leader.CanSetAliases)
	assert.True(t, leader.CanSetIcon)
}

func TestCanSetRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   RoleLevel
		target  RoleLevel
		allowed bool
	}{
		{"member cannot promote", RoleMember, RoleOfficer, false},
		{"officer cannot promote", RoleOfficer, RoleOfficer, false},
		{"vice leader promotes officer", RoleViceLeader, RoleOfficer, true},
		{"vice leader demotes to member", RoleViceLeader, RoleMember, true},
		{"vice leader cannot promote vice leader", RoleViceLeader, RoleViceLeader, false},
		{"vice leader cannot transfer leadership", RoleViceLeader, RoleLeader, false},
		{"leader promotes vice leader", RoleLeader, RoleViceLeader, true},
		{"leader transfers leadership", RoleLeader, RoleLeader, true},
		{"leader demotes to member", RoleLeader, RoleMember, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms := BuildPermissions(tt.actor)
			assert.Equal(t, tt.allowed, perms.CanSetRole(tt.target))
		})
	}
}

func TestRoleDisplay(t *testing.T) {
	aliases := map[string]string{
		"0": "Recruit",
		"3": "Warlord",
		"2": "   ",
	}

	assert.Equal(t, "Recruit", RoleDisplay(RoleMember, aliases))
	assert.Equal(t, "Warlord", RoleDisplay(RoleLeader, aliases))
	// Blank aliases fall back to the canonical name.
	assert.Equal(t, "Vice Leader", RoleDisplay(RoleViceLeader, aliases))
	assert.Equal(t, "Officer", RoleDisplay(RoleOfficer, aliases))
	assert.Equal(t, "Leader", RoleDisplay(RoleLeader, nil))
}
