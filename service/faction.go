package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

type FactionService struct {
	Repo   FactionRepository
	Plugin PluginInterface
}

func NewFactionService(repo FactionRepository, plugin PluginInterface) *FactionService {
	return &FactionService{Repo: repo, Plugin: plugin}
}

// effectiveRole is the member's role level, promoted to Leader when the
// faction row names them leader even if their member row lags behind.
func effectiveRole(m *repository.MembershipDB, steamId string) model.RoleLevel {
	if m.LeaderId == steamId {
		return model.RoleLeader
	}
	if level, ok := model.NormalizeRoleLevel(m.Role); ok {
		return level
	}
	return model.RoleMember
}

func aliasMap(rows []repository.RoleAliasDB) map[string]string {
	aliases := make(map[string]string)
	for _, row := range rows {
		aliases[strconv.Itoa(row.Role)] = row.Alias
	}
	return aliases
}

func (s *FactionService) List() ([]model.FactionSummaryAPI, error) {
	rows, err := s.Repo.FetchFactions()
	if err != nil {
		return nil, err
	}

	factions := make([]model.FactionSummaryAPI, 0, len(rows))
	for _, row := range rows {
		factions = append(factions, model.FactionSummaryAPI{
			Id:            row.Id,
			Name:          row.Name,
			Tag:           row.Tag,
			Color:         row.Color,
			IconUrl:       row.IconUrl,
			LeaderId:      row.LeaderId,
			FactionPoints: row.FactionPoints,
			FactionXP:     row.FactionXP,
			Tier:          row.Tier,
			MemberCount:   row.MemberCount,
		})
	}
	return factions, nil
}

func (s *FactionService) Detail(id int64) (*model.FactionDetailAPI, error) {
	faction, err := s.Repo.FetchFaction(id)
	if err != nil {
		return nil, err
	}
	if faction == nil {
		return nil, nil
	}

	members, err := s.Repo.FetchMembers(id)
	if err != nil {
		return nil, err
	}
	invitations, err := s.Repo.FetchInvitations(id)
	if err != nil {
		return nil, err
	}
	tiers, err := s.Repo.FetchCompletedQuestsByTier(id)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.CountFactionQuests(id)
	if err != nil {
		return nil, err
	}

	detail := &model.FactionDetailAPI{
		FactionSummaryAPI: model.FactionSummaryAPI{
			Id:            faction.Id,
			Name:          faction.Name,
			Tag:           faction.Tag,
			Color:         faction.Color,
			IconUrl:       faction.IconUrl,
			LeaderId:      faction.LeaderId,
			FactionPoints: faction.FactionPoints,
			FactionXP:     faction.FactionXP,
			Tier:          faction.Tier,
			MemberCount:   len(members),
		},
		Members:               []model.FactionMemberRowAPI{},
		Invitations:           []model.InvitationAPI{},
		CompletedQuestsByTier: make(map[int]int),
		TotalQuests:           total,
	}

	for _, m := range members {
		detail.Members = append(detail.Members, model.FactionMemberRowAPI{
			FactionId: m.FactionId,
			PlayerId:  m.PlayerId,
			JoinedAt:  m.JoinedAt,
		})
	}
	for _, inv := range invitations {
		detail.Invitations = append(detail.Invitations, model.InvitationAPI{
			SteamId:   inv.InvitedPlayerId,
			InviterId: inv.InviterId,
			CreatedAt: inv.CreatedAt,
			ExpiresAt: inv.ExpiresAt,
		})
	}
	for _, tc := range tiers {
		detail.CompletedQuestsByTier[tc.Tier] = tc.Count
	}

	return detail, nil
}

func (s *FactionService) Quests(id int64) ([]model.FactionQuestAPI, error) {
	rows, err := s.Repo.FetchFactionQuests(id)
	if err != nil {
		return nil, err
	}

	quests := make([]model.FactionQuestAPI, 0, len(rows))
	for _, row := range rows {
		quest := model.FactionQuestAPI{
			Id:          row.Id,
			FactionId:   row.FactionId,
			QuestId:     row.QuestId,
			DisplayName: row.DisplayName,
			Description: row.Description,
			StartedAt:   row.StartedAt,
			IsActive:    row.IsActive,
			IsCompleted: row.IsCompleted,
			IsFailed:    row.IsFailed,
		}
		if row.ExpiresAt.Valid {
			t := row.ExpiresAt.Time
			quest.ExpiresAt = &t
		}
		quests = append(quests, quest)
	}
	return quests, nil
}

// Info builds the consolidated self-service view. A player with no faction
// gets an empty payload, not an error.
func (s *FactionService) Info(steamId string) (*model.FactionInfoAPI, error) {
	m, err := s.Repo.FetchMembership(steamId)
	if err != nil {
		return nil, err
	}

	info := &model.FactionInfoAPI{
		Success:      true,
		Role:         "None",
		RoleLevel:    model.RoleNone,
		RoleDisplay:  "None",
		Members:      []model.MemberAPI{},
		Invitations:  []model.InvitationAPI{},
		JoinRequests: []model.JoinRequestAPI{},
		Aliases:      map[string]string{},
	}
	if m == nil {
		return info, nil
	}

	aliasRows, err := s.Repo.FetchAliases(m.FactionId)
	if err != nil {
		return nil, err
	}
	aliases := aliasMap(aliasRows)

	members, err := s.Repo.FetchMembers(m.FactionId)
	if err != nil {
		return nil, err
	}
	invitations, err := s.Repo.FetchInvitations(m.FactionId)
	if err != nil {
		return nil, err
	}
	requests, err := s.Repo.FetchJoinRequests(m.FactionId)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(members)+2*len(invitations)+len(requests))
	for _, member := range members {
		ids = append(ids, member.PlayerId)
	}
	for _, inv := range invitations {
		ids = append(ids, inv.InvitedPlayerId, inv.InviterId)
	}
	for _, req := range requests {
		ids = append(ids, req.PlayerId)
	}
	names, err := s.Repo.FetchPlayerNames(ids)
	if err != nil {
		return nil, err
	}

	role := effectiveRole(m, steamId)
	info.Role = role.Name()
	info.RoleLevel = role
	info.RoleDisplay = model.RoleDisplay(role, aliases)
	info.Permissions = model.BuildPermissions(role)
	info.Aliases = aliases
	info.Faction = &model.FactionAPI{
		Id:            m.FactionId,
		Name:          m.Name,
		Tag:           m.Tag,
		Color:         m.Color,
		IconUrl:       m.IconUrl,
		LeaderId:      m.LeaderId,
		FactionPoints: m.Points,
		FactionXP:     m.XP,
		Tier:          m.Tier,
		UnlockFlags:   m.UnlockFlags,
	}

	for _, member := range members {
		level, ok := model.NormalizeRoleLevel(member.Role)
		if !ok {
			level = model.RoleMember
		}
		isLeader := member.PlayerId == m.LeaderId
		if isLeader {
			level = model.RoleLeader
		}
		// A member row claiming Leader while the faction names someone
		// else signals an interrupted leadership transfer.
		if !isLeader && model.RoleLevel(member.Role) == model.RoleLeader {
			info.LeaderConflict = true
		}
		info.Members = append(info.Members, model.MemberAPI{
			SteamId:     member.PlayerId,
			PlayerName:  names[member.PlayerId],
			Role:        level.Name(),
			RoleLevel:   level,
			RoleDisplay: model.RoleDisplay(level, aliases),
			IsLeader:    isLeader,
			JoinedAt:    member.JoinedAt,
		})
	}

	for _, inv := range invitations {
		info.Invitations = append(info.Invitations, model.InvitationAPI{
			SteamId:     inv.InvitedPlayerId,
			PlayerName:  names[inv.InvitedPlayerId],
			InviterId:   inv.InviterId,
			InviterName: names[inv.InviterId],
			CreatedAt:   inv.CreatedAt,
			ExpiresAt:   inv.ExpiresAt,
		})
	}

	for _, req := range requests {
		info.JoinRequests = append(info.JoinRequests, model.JoinRequestAPI{
			SteamId:    req.PlayerId,
			PlayerName: names[req.PlayerId],
			CreatedAt:  req.CreatedAt,
			ExpiresAt:  req.ExpiresAt,
		})
	}

	// Roster order: highest rank first, steam id as the tiebreaker.
	sort.Slice(info.Members, func(i, j int) bool {
		if info.Members[i].RoleLevel != info.Members[j].RoleLevel {
			return info.Members[i].RoleLevel > info.Members[j].RoleLevel
		}
		return info.Members[i].SteamId < info.Members[j].SteamId
	})

	return info, nil
}

// proxyAction runs the local permission check shared by the plugin-proxied
// membership actions, then delegates. These actions have no database
// fallback; the game server owns invitation state.
func (s *FactionService) proxyAction(actorId string, needed func(model.Permissions) bool, call func() *PluginResult) error {
	m, err := s.Repo.FetchMembership(actorId)
	if err != nil {
		return err
	}
	if m == nil {
		return errors.New(model.ErrNotInFaction)
	}

	perms := model.BuildPermissions(effectiveRole(m, actorId))
	if !needed(perms) {
		return errors.New(model.ErrInsufficientPermissions)
	}

	res := call()
	if !res.Reachable {
		return errors.New(res.Error)
	}
	if !res.Success {
		if res.Error != "" {
			return errors.New(res.Error)
		}
		return errors.New(model.ErrInternal)
	}
	return nil
}

func (s *FactionService) Invite(actorId, targetId string) error {
	return s.proxyAction(actorId,
		func(p model.Permissions) bool { return p.CanInvite },
		func() *PluginResult { return s.Plugin.Invite(actorId, targetId) })
}

func (s *FactionService) AcceptRequest(actorId, targetId string) error {
	return s.proxyAction(actorId,
		func(p model.Permissions) bool { return p.CanAcceptRequests },
		func() *PluginResult { return s.Plugin.AcceptRequest(actorId, targetId) })
}

func (s *FactionService) RejectRequest(actorId, targetId string) error {
	return s.proxyAction(actorId,
		func(p model.Permissions) bool { return p.CanAcceptRequests },
		func() *PluginResult { return s.Plugin.RejectRequest(actorId, targetId) })
}

func (s *FactionService) SetAlias(actorId string, role interface{}, alias string) error {
	level, ok := model.NormalizeRoleLevel(role)
	if !ok {
		return errors.New(model.ErrInvalidRole)
	}

	return s.proxyAction(actorId,
		func(p model.Permissions) bool { return p.CanSetAliases },
		func() *PluginResult { return s.Plugin.SetAlias(actorId, int(level), alias) })
}

// SetRole changes a member's rank. The plugin API is tried first so the
// in-game state updates live; when the game server is offline the write goes
// straight to the database and the result says so.
func (s *FactionService) SetRole(actorId string, data *model.SetRoleAPI) (*model.SetRoleResultAPI, error) {
	role, ok := model.NormalizeRoleLevel(data.Role)
	if !ok {
		return nil, errors.New(model.ErrInvalidRole)
	}
	targetId := data.TargetId()

	m, err := s.Repo.FetchMembership(actorId)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New(model.ErrNotInFaction)
	}

	isMember, err := s.Repo.IsMember(m.FactionId, targetId)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New(model.ErrTargetNotInFaction)
	}

	actorRole := effectiveRole(m, actorId)
	perms := model.BuildPermissions(actorRole)
	if !perms.CanSetRole(role) {
		return nil, errors.New(model.ErrInsufficientPermissions)
	}
	// Only the leader is locked to their rank; anyone else may step down.
	if actorRole == model.RoleLeader && actorId == targetId && role != model.RoleLeader {
		return nil, errors.New(model.ErrCannotDemoteSelf)
	}

	result := &model.SetRoleResultAPI{
		Success:   true,
		Role:      role.Name(),
		RoleLevel: role,
	}

	// Anything short of a definitive plugin success takes the database path.
	res := s.Plugin.SetRole(actorId, targetId, int(role))
	if res.Reachable && res.Success {
		result.Delegation = model.Delegated
		result.Message = res.Message
		return result, nil
	}

	if err := s.Repo.UpdateMemberRole(m.FactionId, targetId, int(role)); err != nil {
		return nil, err
	}
	if role == model.RoleLeader {
		if err := s.Repo.UpdateFactionLeader(m.FactionId, targetId); err != nil {
			return nil, err
		}
	}

	result.Delegation = model.FellBack
	result.Message = "Role updated. The change was not applied in-game and takes effect on next restart."
	return result, nil
}

func (s *FactionService) AvailableQuests(steamId string) ([]model.AvailableFactionQuestAPI, error) {
	m, err := s.Repo.FetchMembership(steamId)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New(model.ErrNotInFaction)
	}

	rows, err := s.Repo.FetchAvailableFactionQuests(m.Tier)
	if err != nil {
		return nil, err
	}

	quests := make([]model.AvailableFactionQuestAPI, 0, len(rows))
	for _, row := range rows {
		quests = append(quests, model.AvailableFactionQuestAPI{
			Id:          row.Id,
			DisplayName: row.DisplayName,
			Description: row.Description,
			Tier:        row.Tier,
		})
	}
	return quests, nil
}

// AssignQuest starts a faction quest for a batch of members. Each member is
// seeded individually; one bad member does not fail the batch.
func (s *FactionService) AssignQuest(actorId string, data *model.AssignQuestAPI) (*model.AssignQuestResultAPI, error) {
	m, err := s.Repo.FetchMembership(actorId)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New(model.ErrNotInFaction)
	}

	perms := model.BuildPermissions(effectiveRole(m, actorId))
	if !perms.CanManageQuests {
		return nil, errors.New(model.ErrInsufficientPermissions)
	}

	quest, err := s.Repo.FetchQuest(data.QuestId)
	if err != nil {
		return nil, err
	}
	if quest == nil || !quest.Enabled || !quest.IsFactionQuest {
		return nil, errors.New(model.ErrQuestNotFound)
	}
	if quest.Tier > m.Tier {
		return nil, errors.New(model.ErrQuestTierTooHigh)
	}

	members, err := s.Repo.FetchMembers(m.FactionId)
	if err != nil {
		return nil, err
	}
	memberSet := make(map[string]bool, len(members))
	for _, member := range members {
		memberSet[member.PlayerId] = true
	}
	// The whole batch must belong to the faction before anything is written.
	for _, steamId := range data.AssignedMembers {
		if !memberSet[steamId] {
			return nil, errors.New(model.ErrInvalidMembers)
		}
	}

	objectives, err := model.ParseObjectives(quest.Objectives)
	if err != nil {
		return nil, err
	}
	seeded, err := json.Marshal(model.SeedObjectiveProgress(objectives, time.Now()))
	if err != nil {
		return nil, err
	}

	result := &model.AssignQuestResultAPI{Success: true}
	for _, steamId := range data.AssignedMembers {
		// Reseeding would wipe a running quest, so active members are skipped.
		taken, takenErr := s.Repo.HasActiveProgress(steamId, quest.Id)
		if takenErr != nil {
			result.FailedMembers = append(result.FailedMembers, model.FailedMemberAPI{
				SteamId: steamId,
				Reason:  model.ErrDatabase,
			})
			continue
		}
		if taken {
			result.FailedMembers = append(result.FailedMembers, model.FailedMemberAPI{
				SteamId: steamId,
				Reason:  model.ErrQuestAlreadyActive,
			})
			continue
		}
		if err := s.Repo.UpsertProgress(steamId, quest.Id, string(seeded)); err != nil {
			result.FailedMembers = append(result.FailedMembers, model.FailedMemberAPI{
				SteamId: steamId,
				Reason:  model.ErrDatabase,
			})
			continue
		}
		result.AssignedCount++
	}
	result.FailedCount = len(result.FailedMembers)

	if result.AssignedCount == 0 {
		result.Success = false
		result.Error = model.ErrAssignmentFailed
		return result, nil
	}

	timer := quest.TimerSeconds
	if timer <= 0 {
		timer = model.DefaultQuestTimerSeconds
	}
	expiresAt := time.Now().Add(time.Duration(timer) * time.Second)
	if err := s.Repo.UpsertFactionQuest(m.FactionId, quest.Id, expiresAt); err != nil {
		return nil, err
	}

	result.Message = fmt.Sprintf("Quest assigned to %d member(s)", result.AssignedCount)
	return result, nil
}
