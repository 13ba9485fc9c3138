package model

// String-coded errors returned in JSON bodies. The SPA switches on these
// verbatim, so they are part of the API contract.
const (
	ErrCodeRequired             = "code_required"
	ErrInvalidCode              = "invalid_code"
	ErrCodeAndTargetRequired    = "code_and_target_required"
	ErrCodeTargetRoleRequired   = "code_target_role_required"
	ErrCodeAndRoleRequired      = "code_and_role_required"
	ErrCodeQuestMembersRequired = "code_quest_members_required"
	ErrCodeAndQuestRequired     = "code_and_quest_required"
	ErrValidation               = "validation_failed"
	ErrInvalidRole              = "invalid_role"
	ErrFactionNotFound          = "faction_not_found"
	ErrNotInFaction             = "not_in_faction"
	ErrTargetNotInFaction       = "target_not_in_faction"
	ErrInsufficientPermissions  = "insufficient_permissions"
	ErrCannotDemoteSelf         = "cannot_demote_self"
	ErrQuestNotFound            = "quest_not_found"
	ErrQuestTierTooHigh         = "quest_tier_too_high"
	ErrInvalidMembers           = "invalid_members"
	ErrAssignmentFailed         = "assignment_failed"
	ErrQuestAlreadyActive       = "quest_already_active"
	ErrQuestNotActive           = "quest_not_active"
	ErrQuestNotReady            = "quest_not_ready"
	ErrItemNotFound             = "item_not_found"
	ErrPlayerNotFound           = "player_not_found"
	ErrPluginUnavailable        = "plugin_api_unavailable"
	ErrPluginTimeout            = "plugin_api_timeout"
	ErrDatabase                 = "database_error"
	ErrInternal                 = "internal_error"
)

var knownCodes = map[string]bool{
	ErrCodeRequired:             true,
	ErrInvalidCode:              true,
	ErrCodeAndTargetRequired:    true,
	ErrCodeTargetRoleRequired:   true,
	ErrCodeAndRoleRequired:      true,
	ErrCodeQuestMembersRequired: true,
	ErrCodeAndQuestRequired:     true,
	ErrValidation:               true,
	ErrInvalidRole:              true,
	ErrFactionNotFound:          true,
	ErrNotInFaction:             true,
	ErrTargetNotInFaction:       true,
	ErrInsufficientPermissions:  true,
	ErrCannotDemoteSelf:         true,
	ErrQuestNotFound:            true,
	ErrQuestTierTooHigh:         true,
	ErrInvalidMembers:           true,
	ErrAssignmentFailed:         true,
	ErrQuestAlreadyActive:       true,
	ErrQuestNotActive:           true,
	ErrQuestNotReady:            true,
	ErrItemNotFound:             true,
	ErrPlayerNotFound:           true,
	ErrPluginUnavailable:        true,
	ErrPluginTimeout:            true,
	ErrDatabase:                 true,
	ErrInternal:                 true,
}

// ErrorCode maps a service error to the code the SPA receives. Errors created
// with a known code pass through; everything else collapses to database_error
// so internals never leak into responses.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	if knownCodes[err.Error()] {
		return err.Error()
	}
	return ErrDatabase
}

// IsClientError reports whether a code describes a caller mistake rather than
// a backend failure, which decides the HTTP status.
func IsClientError(code string) bool {
	switch code {
	case ErrPluginUnavailable, ErrPluginTimeout, ErrDatabase, ErrInternal:
		return false
	default:
		return knownCodes[code]
	}
}
