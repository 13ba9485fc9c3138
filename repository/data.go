package repository

import (
	"database/sql"
	"time"
)

type FactionSummaryDB struct {
	Id            int64  `db:"id"`
	Name          string `db:"name"`
	Tag           string `db:"tag"`
	Color         string `db:"color"`
	IconUrl       string `db:"icon_url"`
	LeaderId      string `db:"leader_id"`
	FactionPoints int    `db:"faction_points"`
	FactionXP     int    `db:"faction_xp"`
	Tier          int    `db:"tier"`
	UnlockFlags   string `db:"unlock_flags"`
	MemberCount   int    `db:"member_count"`
}

type FactionMemberDB struct {
	FactionId int64     `db:"faction_id"`
	PlayerId  string    `db:"player_id"`
	Role      int       `db:"role"`
	JoinedAt  time.Time `db:"joined_at"`
}

// MembershipDB is a player's membership row joined with the faction row and
// its progression state.
type MembershipDB struct {
	FactionId   int64  `db:"faction_id"`
	Role        int    `db:"role"`
	LeaderId    string `db:"leader_id"`
	Name        string `db:"name"`
	Tag         string `db:"tag"`
	Color       string `db:"color"`
	IconUrl     string `db:"icon_url"`
	Points      int    `db:"faction_points"`
	XP          int    `db:"faction_xp"`
	Tier        int    `db:"tier"`
	UnlockFlags string `db:"unlock_flags"`
}

type RoleAliasDB struct {
	Role  int    `db:"role"`
	Alias string `db:"alias"`
}

type InvitationDB struct {
	InvitedPlayerId string    `db:"invited_player_id"`
	InviterId       string    `db:"inviter_id"`
	CreatedAt       time.Time `db:"created_at"`
	ExpiresAt       time.Time `db:"expires_at"`
}

type JoinRequestDB struct {
	PlayerId  string    `db:"player_id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type QuestDB struct {
	Id             string `db:"id"`
	DisplayName    string `db:"display_name"`
	Description    string `db:"description"`
	Enabled        bool   `db:"enabled"`
	IsFactionQuest bool   `db:"is_faction_quest"`
	QuestType      string `db:"quest_type"`
	Tier           int    `db:"tier"`
	TimerSeconds   int    `db:"timer_seconds"`
	Tags           string `db:"tags"`
	Objectives     string `db:"objectives"`
	Rewards        string `db:"rewards"`
}

type QuestProgressDB struct {
	PlayerId          string       `db:"player_id"`
	QuestId           string       `db:"quest_id"`
	IsActive          bool         `db:"is_active"`
	IsReadyToComplete bool         `db:"is_ready_to_complete"`
	ObjectiveProgress string       `db:"objective_progress"`
	StartedAt         sql.NullTime `db:"started_at"`
	LastCompletedAt   sql.NullTime `db:"last_completed_at"`
}

// PlayerQuestDB is a progress row joined with its quest definition, used by
// both the player self-service view and the admin player detail view.
type PlayerQuestDB struct {
	PlayerId          string       `db:"player_id"`
	QuestId           string       `db:"quest_id"`
	DisplayName       string       `db:"display_name"`
	Description       string       `db:"description"`
	IsFactionQuest    bool         `db:"is_faction_quest"`
	IsActive          bool         `db:"is_active"`
	IsReadyToComplete bool         `db:"is_ready_to_complete"`
	ObjectiveProgress string       `db:"objective_progress"`
	Objectives        string       `db:"objectives"`
	Rewards           string       `db:"rewards"`
	StartedAt         sql.NullTime `db:"started_at"`
	LastCompletedAt   sql.NullTime `db:"last_completed_at"`
}

// TurnInCheckDB carries the flags the turn-in workflow gates on.
type TurnInCheckDB struct {
	QuestId           string `db:"quest_id"`
	IsActive          bool   `db:"is_active"`
	IsReadyToComplete bool   `db:"is_ready_to_complete"`
	IsFactionQuest    bool   `db:"is_faction_quest"`
}

type FactionQuestDB struct {
	Id          int64        `db:"id"`
	FactionId   int64        `db:"faction_id"`
	QuestId     string       `db:"quest_id"`
	DisplayName string       `db:"display_name"`
	Description string       `db:"description"`
	StartedAt   time.Time    `db:"started_at"`
	ExpiresAt   sql.NullTime `db:"expires_at"`
	IsActive    bool         `db:"is_active"`
	IsCompleted bool         `db:"is_completed"`
	IsFailed    bool         `db:"is_failed"`
}

type TierCountDB struct {
	Tier  int `db:"tier"`
	Count int `db:"completed_count"`
}

type ShopItemDB struct {
	Id            int            `db:"id"`
	Name          string         `db:"name"`
	RewardType    string         `db:"reward_type"`
	ItemId        int            `db:"item_id"`
	Amount        int            `db:"amount"`
	CostXp        int            `db:"cost_xp"`
	CostFactionXp int            `db:"cost_faction_xp"`
	SellPrice     int            `db:"sell_price"`
	Command       sql.NullString `db:"command"`
	Enabled       bool           `db:"enabled"`
	CreatedAt     sql.NullTime   `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

type PlayerStatsDB struct {
	SteamId     string       `db:"SteamId"`
	Name        string       `db:"Name"`
	Kills       int          `db:"Kills"`
	Headshots   int          `db:"Headshots"`
	PVPDeaths   int          `db:"PVPDeaths"`
	PVEDeaths   int          `db:"PVEDeaths"`
	Zombies     int          `db:"Zombies"`
	MegaZombies int          `db:"MegaZombies"`
	Animals     int          `db:"Animals"`
	Resources   int          `db:"Resources"`
	Harvests    int          `db:"Harvests"`
	Fish        int          `db:"Fish"`
	Structures  int          `db:"Structures"`
	Barricades  int          `db:"Barricades"`
	Playtime    int64        `db:"Playtime"`
	UIDisabled  bool         `db:"UIDisabled"`
	LastUpdated sql.NullTime `db:"LastUpdated"`
}

type PlayerMembershipDB struct {
	FactionId   int64     `db:"faction_id"`
	PlayerId    string    `db:"player_id"`
	JoinedAt    time.Time `db:"joined_at"`
	FactionName string    `db:"faction_name"`
	FactionTag  string    `db:"faction_tag"`
}

type DashboardStatsDB struct {
	TotalFactions int
	TotalQuests   int
	TotalPlayers  int
	ActiveQuests  int
}
