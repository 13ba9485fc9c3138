package service

import (
	"time"

	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

type AuthServiceInterface interface {
	Login(data *model.LoginAPI) (*model.LoginResultAPI, error)
	Resolve(code string) (string, error)
}

type FactionServiceInterface interface {
	List() ([]model.FactionSummaryAPI, error)
	Detail(id int64) (*model.FactionDetailAPI, error)
	Quests(id int64) ([]model.FactionQuestAPI, error)
	Info(steamId string) (*model.FactionInfoAPI, error)
	Invite(actorId, targetId string) error
	AcceptRequest(actorId, targetId string) error
	RejectRequest(actorId, targetId string) error
	SetAlias(actorId string, role interface{}, alias string) error
	SetRole(actorId string, data *model.SetRoleAPI) (*model.SetRoleResultAPI, error)
	AvailableQuests(steamId string) ([]model.AvailableFactionQuestAPI, error)
	AssignQuest(actorId string, data *model.AssignQuestAPI) (*model.AssignQuestResultAPI, error)
}

type QuestServiceInterface interface {
	List() ([]model.QuestAPI, error)
	Get(id string) (*model.QuestDetailAPI, error)
	NextId() (string, error)
	Save(data *model.QuestAPI) error
	PlayerQuests(steamId string) (*model.PlayerQuestsAPI, error)
	AvailableQuests(steamId string) (*model.AvailableQuestsAPI, error)
	Assign(steamId, questId string) error
	TurnIn(steamId, questId string) (*model.TurnInResultAPI, error)
}

type PlayerServiceInterface interface {
	Dashboard() (*model.DashboardStatsAPI, error)
	List() ([]model.PlayerStatsAPI, error)
	Stats(steamId string) (*model.PlayerStatsAPI, error)
	Detail(steamId string) (*model.PlayerDetailAPI, error)
}

type ShopServiceInterface interface {
	List() ([]model.ShopItemAPI, error)
	Get(id int) (*model.ShopItemAPI, error)
	Create(data *model.ShopItemAPI) (int, error)
	Update(data *model.ShopItemAPI) error
	Delete(id int) error
}

// FactionRepository narrows the repository to what FactionService touches so
// the faction rules can be exercised against a mock.
type FactionRepository interface {
	FetchFactions() ([]repository.FactionSummaryDB, error)
	FetchFaction(id int64) (*repository.FactionSummaryDB, error)
	FetchMembership(playerId string) (*repository.MembershipDB, error)
	FetchMembers(factionId int64) ([]repository.FactionMemberDB, error)
	IsMember(factionId int64, playerId string) (bool, error)
	FetchAliases(factionId int64) ([]repository.RoleAliasDB, error)
	FetchInvitations(factionId int64) ([]repository.InvitationDB, error)
	FetchJoinRequests(factionId int64) ([]repository.JoinRequestDB, error)
	FetchPlayerNames(steamIds []string) (map[string]string, error)
	FetchCompletedQuestsByTier(factionId int64) ([]repository.TierCountDB, error)
	CountFactionQuests(factionId int64) (int, error)
	FetchFactionQuests(factionId int64) ([]repository.FactionQuestDB, error)
	UpdateMemberRole(factionId int64, playerId string, role int) error
	UpdateFactionLeader(factionId int64, leaderId string) error
	FetchAvailableFactionQuests(tier int) ([]repository.QuestDB, error)
	FetchQuest(id string) (*repository.QuestDB, error)
	HasActiveProgress(playerId, questId string) (bool, error)
	UpsertProgress(playerId, questId, objectiveProgress string) error
	UpsertFactionQuest(factionId int64, questId string, expiresAt time.Time) error
}

// QuestRepository narrows the repository to what QuestService touches.
type QuestRepository interface {
	FetchQuests() ([]repository.QuestDB, error)
	FetchQuest(id string) (*repository.QuestDB, error)
	FetchQuestProgress(questId string) ([]repository.QuestProgressDB, error)
	NextQuestId() (string, error)
	UpsertQuest(data *repository.QuestDB) error
	FetchPlayerQuests(playerId string) ([]repository.PlayerQuestDB, error)
	FetchMembership(playerId string) (*repository.MembershipDB, error)
	FetchEnabledQuests(includeFactionQuests bool) ([]repository.QuestDB, error)
	FetchActiveQuestIds(playerId string) ([]string, error)
	HasActiveProgress(playerId, questId string) (bool, error)
	UpsertProgress(playerId, questId, objectiveProgress string) error
	FetchTurnInCheck(playerId, questId string) (*repository.TurnInCheckDB, error)
	EnqueueTurnIn(steamId, questId string) (int64, error)
}

// PluginInterface is the in-game plugin's HTTP API. Every call returns a
// result instead of a transport error so callers can fall back to direct
// database writes when the game server is offline.
type PluginInterface interface {
	SetRole(actorId, targetId string, role int) *PluginResult
	Invite(actorId, targetId string) *PluginResult
	AcceptRequest(actorId, targetId string) *PluginResult
	RejectRequest(actorId, targetId string) *PluginResult
	SetAlias(actorId string, role int, alias string) *PluginResult
}

type LoggerInterface interface {
	Info(msg string)
	Warning(msg string)
	Exception(msg string)
	Debug(msg string)
	Shutdown()
}
