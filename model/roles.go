package model

import (
	"strconv"
	"strings"
)

// RoleLevel is the ordered faction rank. Values are persisted as-is in the
// faction_members.role column.
type RoleLevel int

const (
	RoleNone       RoleLevel = -1
	RoleMember     RoleLevel = 0
	RoleOfficer    RoleLevel = 1
	RoleViceLeader RoleLevel = 2
	RoleLeader     RoleLevel = 3
)

func (r RoleLevel) Valid() bool {
	return r >= RoleMember && r <= RoleLeader
}

func (r RoleLevel) Name() string {
	switch r {
	case RoleLeader:
		return "Leader"
	case RoleViceLeader:
		return "Vice Leader"
	case RoleOfficer:
		return "Officer"
	default:
		return "Member"
	}
}

// NormalizeRoleLevel converts any legacy role representation (numeric level,
// numeric string, or role name) to the canonical level. Anything it cannot
// recognize comes back as RoleNone with ok=false.
func NormalizeRoleLevel(v interface{}) (RoleLevel, bool) {
	switch val := v.(type) {
	case RoleLevel:
		return clampRole(val)
	case int:
		return clampRole(RoleLevel(val))
	case int64:
		return clampRole(RoleLevel(val))
	case float64:
		return clampRole(RoleLevel(int(val)))
	case string:
		s := strings.TrimSpace(val)
		if n, err := strconv.Atoi(s); err == nil {
			return clampRole(RoleLevel(n))
		}
		switch strings.ToLower(s) {
		case "member":
			return RoleMember, true
		case "officer":
			return RoleOfficer, true
		case "viceleader", "vice_leader", "vice leader":
			return RoleViceLeader, true
		case "leader":
			return RoleLeader, true
		}
	}
	return RoleNone, false
}

func clampRole(r RoleLevel) (RoleLevel, bool) {
	if !r.Valid() {
		return RoleNone, false
	}
	return r, true
}

// RoleDisplay resolves the per-faction alias for a role level, falling back to
// the canonical name when no alias is set. Alias keys are stringified levels.
func RoleDisplay(r RoleLevel, aliases map[string]string) string {
	if aliases != nil {
		if alias, ok := aliases[strconv.Itoa(int(r))]; ok {
			if trimmed := strings.TrimSpace(alias); trimmed != "" {
				return trimmed
			}
		}
	}
	return r.Name()
}

type Permissions struct {
	CanInvite             bool `json:"canInvite"`
	CanAcceptRequests     bool `json:"canAcceptRequests"`
	CanManageQuests       bool `json:"canManageQuests"`
	CanPromoteOfficer     bool `json:"canPromoteOfficer"`
	CanPromoteViceLeader  bool `json:"canPromoteViceLeader"`
	CanTransferLeadership bool `json:"canTransferLeadership"`
	CanSetAliases         bool `json:"canSetAliases"`
	CanSetIcon            bool `json:"canSetIcon"`
}

// BuildPermissions maps a role level to its capability set. Total over all
// inputs: levels below Member get no capabilities.
func BuildPermissions(r RoleLevel) Permissions {
	if r < RoleMember {
		return Permissions{}
	}

	return Permissions{
		CanInvite:             r >= RoleOfficer,
		CanAcceptRequests:     r >= RoleOfficer,
		CanManageQuests:       r >= RoleViceLeader,
		CanPromoteOfficer:     r >= RoleViceLeader,
		CanPromoteViceLeader:  r == RoleLeader,
		CanTransferLeadership: r == RoleLeader,
		CanSetAliases:         r == RoleLeader,
		CanSetIcon:            r == RoleLeader,
	}
}

// CanSetRole reports whether an actor holding perms may set a member to the
// target role. Setting Member is a demotion and needs either promote
// capability; Leader is a leadership transfer.
func (p Permissions) CanSetRole(target RoleLevel) bool {
	switch target {
	case RoleMember:
		return p.CanPromoteOfficer || p.CanPromoteViceLeader
	case RoleOfficer:
		return p.CanPromoteOfficer
	case RoleViceLeader:
		return p.CanPromoteViceLeader
	case RoleLeader:
		return p.CanTransferLeadership
	default:
		return false
	}
}
