package repository

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

func (r *Repository) FetchQuests() ([]QuestDB, error) {
	var quests []QuestDB
	query := `SELECT id, display_name, COALESCE(description, '') AS description, enabled,
			is_faction_quest, COALESCE(quest_type, '') AS quest_type, COALESCE(tier, 1) AS tier,
			COALESCE(timer_seconds, 0) AS timer_seconds, COALESCE(tags, '') AS tags,
			COALESCE(objectives, '') AS objectives, COALESCE(rewards, '') AS rewards
		FROM ` + r.table("quest_definitions") + ` ORDER BY id`
	if err := r.DB.Select(&quests, query); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *Repository) FetchQuest(id string) (*QuestDB, error) {
	var quest QuestDB
	query := `SELECT id, display_name, COALESCE(description, '') AS description, enabled,
			is_faction_quest, COALESCE(quest_type, '') AS quest_type, COALESCE(tier, 1) AS tier,
			COALESCE(timer_seconds, 0) AS timer_seconds, COALESCE(tags, '') AS tags,
			COALESCE(objectives, '') AS objectives, COALESCE(rewards, '') AS rewards
		FROM ` + r.table("quest_definitions") + ` WHERE id = ?`
	if err := r.DB.Get(&quest, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &quest, nil
}

// NextQuestId generates the next auto-numbered quest id in the QMG-NNN series.
func (r *Repository) NextQuestId() (string, error) {
	var lastId string
	query := `SELECT id FROM ` + r.table("quest_definitions") + `
		WHERE id LIKE 'QMG-%'
		ORDER BY CAST(SUBSTRING(id, 5) AS UNSIGNED) DESC
		LIMIT 1`
	err := r.DB.Get(&lastId, query)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	next := 1
	if lastId != "" {
		if n, convErr := strconv.Atoi(strings.TrimPrefix(lastId, "QMG-")); convErr == nil {
			next = n + 1
		}
	}

	num := strconv.Itoa(next)
	for len(num) < 3 {
		num = "0" + num
	}
	return "QMG-" + num, nil
}

func (r *Repository) UpsertQuest(data *QuestDB) error {
	query := `INSERT INTO ` + r.table("quest_definitions") + `
		(id, display_name, description, enabled, is_faction_quest, quest_type, tier, timer_seconds, tags, objectives, rewards)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			display_name = VALUES(display_name),
			description = VALUES(description),
			enabled = VALUES(enabled),
			is_faction_quest = VALUES(is_faction_quest),
			quest_type = VALUES(quest_type),
			tier = VALUES(tier),
			timer_seconds = VALUES(timer_seconds),
			tags = VALUES(tags),
			objectives = VALUES(objectives),
			rewards = VALUES(rewards)`

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query,
			data.Id, data.DisplayName, data.Description, data.Enabled, data.IsFactionQuest,
			data.QuestType, data.Tier, data.TimerSeconds, data.Tags, data.Objectives, data.Rewards)
		return err
	})
}

func (r *Repository) FetchQuestProgress(questId string) ([]QuestProgressDB, error) {
	var progress []QuestProgressDB
	query := `SELECT CAST(player_id AS CHAR) AS player_id, quest_id, is_active, is_ready_to_complete,
			COALESCE(objective_progress, '') AS objective_progress, started_at, last_completed_at
		FROM ` + r.table("quest_progress") + ` WHERE quest_id = ?`
	if err := r.DB.Select(&progress, query, questId); err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *Repository) FetchPlayerQuests(playerId string) ([]PlayerQuestDB, error) {
	var quests []PlayerQuestDB
	query := `SELECT CAST(qp.player_id AS CHAR) AS player_id, qp.quest_id,
			COALESCE(qd.display_name, '') AS display_name,
			COALESCE(qd.description, '') AS description,
			COALESCE(qd.is_faction_quest, 0) AS is_faction_quest,
			qp.is_active, qp.is_ready_to_complete,
			COALESCE(qp.objective_progress, '') AS objective_progress,
			COALESCE(qd.objectives, '') AS objectives,
			COALESCE(qd.rewards, '') AS rewards,
			qp.started_at, qp.last_completed_at
		FROM ` + r.table("quest_progress") + ` qp
		LEFT JOIN ` + r.table("quest_definitions") + ` qd ON qp.quest_id = qd.id
		WHERE qp.player_id = ?
		ORDER BY qp.is_active DESC, qp.started_at DESC`
	if err := r.DB.Select(&quests, query, playerId); err != nil {
		return nil, err
	}
	return quests, nil
}

// FetchEnabledQuests lists enabled definitions; faction quests are excluded
// for players with no faction.
func (r *Repository) FetchEnabledQuests(includeFactionQuests bool) ([]QuestDB, error) {
	query := `SELECT id, display_name, COALESCE(description, '') AS description, enabled,
			is_faction_quest, COALESCE(quest_type, '') AS quest_type, COALESCE(tier, 1) AS tier,
			COALESCE(timer_seconds, 0) AS timer_seconds, COALESCE(tags, '') AS tags,
			COALESCE(objectives, '') AS objectives, COALESCE(rewards, '') AS rewards
		FROM ` + r.table("quest_definitions") + ` WHERE enabled = 1`
	if !includeFactionQuests {
		query += " AND is_faction_quest = 0"
	}
	query += " ORDER BY id"

	var quests []QuestDB
	if err := r.DB.Select(&quests, query); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *Repository) FetchAvailableFactionQuests(tier int) ([]QuestDB, error) {
	var quests []QuestDB
	query := `SELECT id, display_name, COALESCE(description, '') AS description, enabled,
			is_faction_quest, COALESCE(quest_type, '') AS quest_type, COALESCE(tier, 1) AS tier,
			COALESCE(timer_seconds, 0) AS timer_seconds, COALESCE(tags, '') AS tags,
			COALESCE(objectives, '') AS objectives, COALESCE(rewards, '') AS rewards
		FROM ` + r.table("quest_definitions") + `
		WHERE is_faction_quest = 1 AND enabled = 1 AND tier <= ?
		ORDER BY tier, display_name`
	if err := r.DB.Select(&quests, query, tier); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *Repository) FetchActiveQuestIds(playerId string) ([]string, error) {
	var ids []string
	query := "SELECT quest_id FROM " + r.table("quest_progress") + " WHERE player_id = ? AND is_active = 1"
	if err := r.DB.Select(&ids, query, playerId); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) HasActiveProgress(playerId, questId string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM " + r.table("quest_progress") +
		" WHERE player_id = ? AND quest_id = ? AND is_active = 1"
	if err := r.DB.Get(&count, query, playerId, questId); err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertProgress creates or reactivates a progress record seeded with the
// given objective-progress JSON.
func (r *Repository) UpsertProgress(playerId, questId, objectiveProgress string) error {
	query := `INSERT INTO ` + r.table("quest_progress") + `
		(player_id, quest_id, is_active, is_ready_to_complete, objective_progress, started_at)
		VALUES (?, ?, 1, 0, ?, NOW())
		ON DUPLICATE KEY UPDATE
			is_active = 1,
			is_ready_to_complete = 0,
			objective_progress = VALUES(objective_progress),
			started_at = NOW(),
			updated_at = NOW()`

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query, playerId, questId, objectiveProgress)
		return err
	})
}

// FetchTurnInCheck loads the flags gating a turn-in. Nil when the player has
// no progress record for the quest.
func (r *Repository) FetchTurnInCheck(playerId, questId string) (*TurnInCheckDB, error) {
	var check TurnInCheckDB
	query := `SELECT qp.quest_id, qp.is_active, qp.is_ready_to_complete,
			COALESCE(qd.is_faction_quest, 0) AS is_faction_quest
		FROM ` + r.table("quest_progress") + ` qp
		LEFT JOIN ` + r.table("quest_definitions") + ` qd ON qp.quest_id = qd.id
		WHERE qp.player_id = ? AND qp.quest_id = ?
		LIMIT 1`
	if err := r.DB.Get(&check, query, playerId, questId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &check, nil
}

// EnqueueTurnIn adds a pending row to the turn-in queue the game plugin
// drains. This service only ever enqueues.
func (r *Repository) EnqueueTurnIn(steamId, questId string) (int64, error) {
	query := "INSERT INTO " + r.table("quest_turnin_queue") +
		" (steam_id, quest_id, status, created_at) VALUES (?, ?, 'pending', NOW())"

	result, err := r.DB.Exec(query, steamId, questId)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (r *Repository) FetchPlayerMembership(playerId string) (*PlayerMembershipDB, error) {
	var m PlayerMembershipDB
	query := `SELECT fm.faction_id, CAST(fm.player_id AS CHAR) AS player_id, fm.joined_at,
			COALESCE(f.name, '') AS faction_name, COALESCE(f.tag, '') AS faction_tag
		FROM ` + r.table("faction_members") + ` fm
		LEFT JOIN ` + r.table("factions") + ` f ON fm.faction_id = f.id
		WHERE fm.player_id = ?
		LIMIT 1`
	if err := r.DB.Get(&m, query, playerId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
