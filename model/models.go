package model

import (
	"errors"
	"time"
)

type BaseResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func Fail(code string) BaseResponse {
	return BaseResponse{Success: false, Error: code}
}

func FailMsg(code, msg string) BaseResponse {
	return BaseResponse{Success: false, Error: code, Message: msg}
}

type LoginAPI struct {
	Code string `json:"code"`
}

func (l *LoginAPI) Validate() error {
	if l.Code == "" {
		return errors.New("auth code is required")
	}
	return nil
}

type LoginResultAPI struct {
	Success    bool   `json:"success"`
	SteamId    string `json:"steamId"`
	PlayerName string `json:"playerName"`
	Token      string `json:"token"`
}

type DashboardStatsAPI struct {
	TotalFactions int `json:"totalFactions"`
	TotalQuests   int `json:"totalQuests"`
	TotalPlayers  int `json:"totalPlayers"`
	ActiveQuests  int `json:"activeQuests"`
}

type FactionSummaryAPI struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	Tag           string `json:"tag"`
	Color         string `json:"color"`
	IconUrl       string `json:"icon_url"`
	LeaderId      string `json:"leader_id"`
	FactionPoints int    `json:"faction_points"`
	FactionXP     int    `json:"faction_xp"`
	Tier          int    `json:"tier"`
	MemberCount   int    `json:"member_count"`
}

type FactionMemberRowAPI struct {
	FactionId int64     `json:"faction_id"`
	PlayerId  string    `json:"player_id"`
	JoinedAt  time.Time `json:"joined_at"`
}

type FactionDetailAPI struct {
	FactionSummaryAPI
	Members              []FactionMemberRowAPI `json:"members"`
	Invitations          []InvitationAPI       `json:"invitations"`
	CompletedQuestsByTier map[int]int          `json:"completed_quests_by_tier"`
	TotalQuests          int                   `json:"total_quests"`
}

// FactionAPI is the faction block of the self-service info payload.
type FactionAPI struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	Tag           string `json:"tag"`
	Color         string `json:"color"`
	IconUrl       string `json:"iconUrl"`
	LeaderId      string `json:"leaderId"`
	FactionPoints int    `json:"faction_points"`
	FactionXP     int    `json:"faction_xp"`
	Tier          int    `json:"tier"`
	UnlockFlags   string `json:"unlock_flags,omitempty"`
}

type MemberAPI struct {
	SteamId     string    `json:"steamId"`
	PlayerName  string    `json:"playerName,omitempty"`
	Role        string    `json:"role"`
	RoleLevel   RoleLevel `json:"role_level"`
	RoleDisplay string    `json:"role_display"`
	IsLeader    bool      `json:"is_leader"`
	JoinedAt    time.Time `json:"joined_at"`
}

type InvitationAPI struct {
	SteamId     string    `json:"steamId"`
	PlayerName  string    `json:"playerName,omitempty"`
	InviterId   string    `json:"inviterId"`
	InviterName string    `json:"inviterName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type JoinRequestAPI struct {
	SteamId    string    `json:"steamId"`
	PlayerName string    `json:"playerName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// FactionInfoAPI is the consolidated self-service view. A player with no
// faction gets Success=true, Faction=nil, Role "None" and all-false
// permissions rather than an error.
type FactionInfoAPI struct {
	Success        bool              `json:"success"`
	Faction        *FactionAPI       `json:"faction"`
	Role           string            `json:"role"`
	RoleLevel      RoleLevel         `json:"role_level"`
	RoleDisplay    string            `json:"role_display"`
	Permissions    Permissions       `json:"permissions"`
	Members        []MemberAPI       `json:"members"`
	Invitations    []InvitationAPI   `json:"invitations"`
	JoinRequests   []JoinRequestAPI  `json:"join_requests"`
	Aliases        map[string]string `json:"aliases"`
	LeaderConflict bool              `json:"leader_conflict,omitempty"`
}

type SetRoleAPI struct {
	Code          string      `json:"code"`
	TargetSteamId string      `json:"targetSteamId"`
	Target        string      `json:"target"`
	Role          interface{} `json:"role"`
}

// TargetId accepts both the targetSteamId and the legacy target field.
func (s *SetRoleAPI) TargetId() string {
	if s.TargetSteamId != "" {
		return s.TargetSteamId
	}
	return s.Target
}

type DelegationStatus string

const (
	Delegated DelegationStatus = "delegated"
	FellBack  DelegationStatus = "fell_back"
)

type SetRoleResultAPI struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message,omitempty"`
	Role       string           `json:"role,omitempty"`
	RoleLevel  RoleLevel        `json:"role_level"`
	Delegation DelegationStatus `json:"delegation,omitempty"`
}

type TargetAPI struct {
	Code          string `json:"code"`
	TargetSteamId string `json:"targetSteamId"`
	Target        string `json:"target"`
}

func (t *TargetAPI) TargetId() string {
	if t.TargetSteamId != "" {
		return t.TargetSteamId
	}
	return t.Target
}

type SetAliasAPI struct {
	Code  string      `json:"code"`
	Role  interface{} `json:"role"`
	Alias string      `json:"alias"`
}

type AssignQuestAPI struct {
	Code            string   `json:"code"`
	QuestId         string   `json:"questId"`
	AssignedMembers []string `json:"assignedMembers"`
}

func (a *AssignQuestAPI) Validate() error {
	if a.QuestId == "" || len(a.AssignedMembers) == 0 {
		return errors.New("quest id and at least one member are required")
	}
	return nil
}

type FailedMemberAPI struct {
	SteamId string `json:"steamId"`
	Reason  string `json:"reason"`
}

type AssignQuestResultAPI struct {
	Success       bool              `json:"success"`
	Error         string            `json:"error,omitempty"`
	Message       string            `json:"message,omitempty"`
	AssignedCount int               `json:"assignedCount"`
	FailedCount   int               `json:"failedCount"`
	FailedMembers []FailedMemberAPI `json:"failedMembers,omitempty"`
}

type AvailableFactionQuestAPI struct {
	Id          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Tier        int    `json:"tier"`
}

type QuestIdAPI struct {
	Code    string `json:"code"`
	QuestId string `json:"questId"`
}

type TurnInResultAPI struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	QuestId  string `json:"questId"`
	PlayerId string `json:"playerId"`
	QueueId  int64  `json:"queueId,omitempty"`
	Note     string `json:"note,omitempty"`
}

type QuestAPI struct {
	Id             string      `json:"id"`
	DisplayName    string      `json:"display_name"`
	Description    string      `json:"description"`
	Enabled        bool        `json:"enabled"`
	IsFactionQuest bool        `json:"is_faction_quest"`
	QuestType      string      `json:"quest_type"`
	Tier           int         `json:"tier"`
	TimerSeconds   int         `json:"timer_seconds"`
	Tags           []string    `json:"tags"`
	Objectives     []Objective `json:"objectives"`
	Rewards        []Reward    `json:"rewards"`
}

func (q *QuestAPI) Validate() error {
	if q.Id == "" {
		return errors.New("quest id is required")
	}
	if q.Tier < 0 {
		return errors.New("quest tier cannot be negative")
	}
	for i := range q.Objectives {
		if err := q.Objectives[i].Validate(); err != nil {
			return err
		}
	}
	for i := range q.Rewards {
		if err := q.Rewards[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

type QuestProgressAPI struct {
	PlayerId          string              `json:"player_id"`
	QuestId           string              `json:"quest_id,omitempty"`
	IsActive          bool                `json:"is_active"`
	IsReadyToComplete bool                `json:"is_ready_to_complete"`
	ObjectiveProgress []ObjectiveProgress `json:"objective_progress"`
	StartedAt         *time.Time          `json:"started_at"`
	LastCompletedAt   *time.Time          `json:"last_completed_at"`
}

type QuestDetailAPI struct {
	QuestAPI
	Progress []QuestProgressAPI `json:"progress"`
}

// ObjectiveStateAPI is an objective merged with the player's progress entry.
type ObjectiveStateAPI struct {
	Objective
	CurrentValue int  `json:"currentValue"`
	Completed    bool `json:"completed"`
}

type PlayerQuestAPI struct {
	QuestId           string              `json:"quest_id"`
	DisplayName       string              `json:"display_name"`
	Description       string              `json:"description"`
	IsActive          bool                `json:"is_active"`
	IsReadyToComplete bool                `json:"is_ready_to_complete"`
	IsFactionQuest    bool                `json:"is_faction_quest"`
	Objectives        []ObjectiveStateAPI `json:"objectives"`
	Rewards           []Reward            `json:"rewards"`
	StartedAt         *time.Time          `json:"started_at"`
	LastCompletedAt   *time.Time          `json:"last_completed_at"`
}

type PlayerQuestsAPI struct {
	SteamId string           `json:"steamId"`
	Quests  []PlayerQuestAPI `json:"quests"`
}

type AvailableQuestAPI struct {
	QuestAPI
	IsTaken bool `json:"isTaken"`
}

type AvailableQuestsAPI struct {
	SteamId         string              `json:"steamId"`
	PlayerFactionId *int64              `json:"playerFactionId"`
	Quests          []AvailableQuestAPI `json:"quests"`
}

type FactionQuestAPI struct {
	Id          int64      `json:"id"`
	FactionId   int64      `json:"faction_id"`
	QuestId     string     `json:"quest_id"`
	DisplayName string     `json:"display_name"`
	Description string     `json:"description"`
	StartedAt   time.Time  `json:"started_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	IsActive    bool       `json:"is_active"`
	IsCompleted bool       `json:"is_completed"`
	IsFailed    bool       `json:"is_failed"`
}

type ShopItemAPI struct {
	Id            int        `json:"id"`
	Name          string     `json:"name"`
	RewardType    string     `json:"reward_type"`
	ItemId        int        `json:"item_id"`
	Amount        int        `json:"amount"`
	CostXp        int        `json:"cost_xp"`
	CostFactionXp int        `json:"cost_faction_xp"`
	SellPrice     int        `json:"sell_price"`
	Command       string     `json:"command,omitempty"`
	Enabled       bool       `json:"enabled"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

func (s *ShopItemAPI) Validate() error {
	if s.Id <= 0 || s.Name == "" || s.RewardType == "" {
		return errors.New("missing required fields: id, name, reward_type")
	}
	switch s.RewardType {
	case "Item", "Vehicle", "GiveXP", "Command":
	default:
		return errors.New("invalid reward type")
	}
	if s.RewardType == "Command" && s.Command == "" {
		return errors.New("command reward type requires a command")
	}
	return nil
}

type PlayerStatsAPI struct {
	SteamId     string     `json:"SteamId"`
	Name        string     `json:"Name"`
	Kills       int        `json:"Kills"`
	Headshots   int        `json:"Headshots"`
	PVPDeaths   int        `json:"PVPDeaths"`
	PVEDeaths   int        `json:"PVEDeaths"`
	Zombies     int        `json:"Zombies"`
	MegaZombies int        `json:"MegaZombies"`
	Animals     int        `json:"Animals"`
	Resources   int        `json:"Resources"`
	Harvests    int        `json:"Harvests"`
	Fish        int        `json:"Fish"`
	Structures  int        `json:"Structures"`
	Barricades  int        `json:"Barricades"`
	Playtime    int64      `json:"Playtime"`
	UIDisabled  bool       `json:"UIDisabled"`
	LastUpdated *time.Time `json:"LastUpdated"`
}

type PlayerFactionAPI struct {
	FactionId   int64     `json:"faction_id"`
	PlayerId    string    `json:"player_id"`
	JoinedAt    time.Time `json:"joined_at"`
	FactionName string    `json:"faction_name"`
	FactionTag  string    `json:"faction_tag"`
}

type PlayerQuestRowAPI struct {
	PlayerId          string              `json:"player_id"`
	QuestId           string              `json:"quest_id"`
	DisplayName       string              `json:"display_name"`
	Description       string              `json:"description"`
	IsFactionQuest    bool                `json:"is_faction_quest"`
	IsActive          bool                `json:"is_active"`
	IsReadyToComplete bool                `json:"is_ready_to_complete"`
	ObjectiveProgress []ObjectiveProgress `json:"objective_progress"`
	StartedAt         *time.Time          `json:"started_at"`
	LastCompletedAt   *time.Time          `json:"last_completed_at"`
}

type PlayerDetailAPI struct {
	PlayerId string              `json:"player_id"`
	Quests   []PlayerQuestRowAPI `json:"quests"`
	Faction  *PlayerFactionAPI   `json:"faction"`
}
