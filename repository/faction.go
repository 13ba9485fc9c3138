package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

func (r *Repository) FetchFactions() ([]FactionSummaryDB, error) {
	var factions []FactionSummaryDB
	query := `SELECT f.id, f.name, COALESCE(f.tag, '') AS tag, COALESCE(f.color, '') AS color,
			COALESCE(f.icon_url, '') AS icon_url, CAST(f.leader_id AS CHAR) AS leader_id,
			COALESCE(fs.faction_points, 0) AS faction_points,
			COALESCE(fs.faction_xp, 0) AS faction_xp,
			COALESCE(fs.tier, 1) AS tier,
			'' AS unlock_flags,
			(SELECT COUNT(*) FROM ` + r.table("faction_members") + ` WHERE faction_id = f.id) AS member_count
		FROM ` + r.table("factions") + ` f
		LEFT JOIN ` + r.table("faction_states") + ` fs ON f.id = fs.faction_id
		ORDER BY f.id ASC`
	if err := r.DB.Select(&factions, query); err != nil {
		return nil, err
	}
	return factions, nil
}

func (r *Repository) FetchFaction(id int64) (*FactionSummaryDB, error) {
	var faction FactionSummaryDB
	query := `SELECT f.id, f.name, COALESCE(f.tag, '') AS tag, COALESCE(f.color, '') AS color,
			COALESCE(f.icon_url, '') AS icon_url, CAST(f.leader_id AS CHAR) AS leader_id,
			COALESCE(fs.faction_points, 0) AS faction_points,
			COALESCE(fs.faction_xp, 0) AS faction_xp,
			COALESCE(fs.tier, 1) AS tier,
			'' AS unlock_flags,
			0 AS member_count
		FROM ` + r.table("factions") + ` f
		LEFT JOIN ` + r.table("faction_states") + ` fs ON f.id = fs.faction_id
		WHERE f.id = ?`
	if err := r.DB.Get(&faction, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &faction, nil
}

// FetchMembership loads the faction a player belongs to, joined with its
// progression state. Nil when the player is unaffiliated.
func (r *Repository) FetchMembership(playerId string) (*MembershipDB, error) {
	var m MembershipDB
	query := `SELECT fm.faction_id, fm.role, CAST(f.leader_id AS CHAR) AS leader_id,
			f.name, COALESCE(f.tag, '') AS tag, COALESCE(f.color, '') AS color,
			COALESCE(f.icon_url, '') AS icon_url,
			COALESCE(fs.faction_points, 0) AS faction_points,
			COALESCE(fs.faction_xp, 0) AS faction_xp,
			COALESCE(fs.tier, 1) AS tier,
			COALESCE(fs.unlock_flags, '') AS unlock_flags
		FROM ` + r.table("faction_members") + ` fm
		JOIN ` + r.table("factions") + ` f ON fm.faction_id = f.id
		LEFT JOIN ` + r.table("faction_states") + ` fs ON fs.faction_id = f.id
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

func (r *Repository) FetchMembers(factionId int64) ([]FactionMemberDB, error) {
	var members []FactionMemberDB
	query := `SELECT faction_id, CAST(player_id AS CHAR) AS player_id, role, joined_at
		FROM ` + r.table("faction_members") + ` WHERE faction_id = ? ORDER BY joined_at DESC`
	if err := r.DB.Select(&members, query, factionId); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *Repository) IsMember(factionId int64, playerId string) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM " + r.table("faction_members") + " WHERE faction_id = ? AND player_id = ?"
	if err := r.DB.Get(&count, query, factionId, playerId); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) FetchAliases(factionId int64) ([]RoleAliasDB, error) {
	var aliases []RoleAliasDB
	query := "SELECT role, alias FROM " + r.table("faction_role_aliases") + " WHERE faction_id = ?"
	if err := r.DB.Select(&aliases, query, factionId); err != nil {
		return nil, err
	}
	return aliases, nil
}

// FetchInvitations returns only unexpired rows; expired invitations stay in
// the table and are filtered at read time.
func (r *Repository) FetchInvitations(factionId int64) ([]InvitationDB, error) {
	var invitations []InvitationDB
	query := `SELECT CAST(invited_player_id AS CHAR) AS invited_player_id,
			CAST(inviter_id AS CHAR) AS inviter_id, created_at, expires_at
		FROM ` + r.table("faction_invitations") + `
		WHERE faction_id = ? AND expires_at > NOW()
		ORDER BY created_at DESC`
	if err := r.DB.Select(&invitations, query, factionId); err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *Repository) FetchJoinRequests(factionId int64) ([]JoinRequestDB, error) {
	var requests []JoinRequestDB
	query := `SELECT CAST(player_id AS CHAR) AS player_id, created_at, expires_at
		FROM ` + r.table("faction_join_requests") + `
		WHERE faction_id = ? AND expires_at > NOW()
		ORDER BY created_at DESC`
	if err := r.DB.Select(&requests, query, factionId); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *Repository) UpdateMemberRole(factionId int64, playerId string, role int) error {
	query := "UPDATE " + r.table("faction_members") + " SET role = ? WHERE player_id = ? AND faction_id = ?"

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query, role, playerId, factionId)
		return err
	})
}

func (r *Repository) UpdateFactionLeader(factionId int64, leaderId string) error {
	query := "UPDATE " + r.table("factions") + " SET leader_id = ? WHERE id = ?"

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query, leaderId, factionId)
		return err
	})
}

func (r *Repository) FetchFactionQuests(factionId int64) ([]FactionQuestDB, error) {
	var quests []FactionQuestDB
	query := `SELECT fq.id, fq.faction_id, fq.quest_id, fq.started_at, fq.expires_at,
			fq.is_active, fq.is_completed, fq.is_failed,
			COALESCE(qd.display_name, '') AS display_name,
			COALESCE(qd.description, '') AS description
		FROM ` + r.table("faction_quests") + ` fq
		LEFT JOIN ` + r.table("quest_definitions") + ` qd ON fq.quest_id = qd.id
		WHERE fq.faction_id = ?
		ORDER BY fq.started_at DESC`
	if err := r.DB.Select(&quests, query, factionId); err != nil {
		return nil, err
	}
	return quests, nil
}

func (r *Repository) FetchCompletedQuestsByTier(factionId int64) ([]TierCountDB, error) {
	var counts []TierCountDB
	query := `SELECT COALESCE(qd.tier, 1) AS tier, COUNT(*) AS completed_count
		FROM ` + r.table("faction_quests") + ` fq
		LEFT JOIN ` + r.table("quest_definitions") + ` qd ON fq.quest_id = qd.id
		WHERE fq.faction_id = ? AND fq.is_completed = 1
		GROUP BY COALESCE(qd.tier, 1)
		ORDER BY tier ASC`
	if err := r.DB.Select(&counts, query, factionId); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *Repository) CountFactionQuests(factionId int64) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM " + r.table("faction_quests") + " WHERE faction_id = ?"
	if err := r.DB.Get(&count, query, factionId); err != nil {
		return 0, err
	}
	return count, nil
}

// UpsertFactionQuest activates a faction-level tracking row for the quest.
// Reactivating an existing row clears the completed/failed flags.
func (r *Repository) UpsertFactionQuest(factionId int64, questId string, expiresAt time.Time) error {
	var existing int64
	query := "SELECT id FROM " + r.table("faction_quests") + " WHERE faction_id = ? AND quest_id = ?"
	err := r.DB.Get(&existing, query, factionId, questId)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		insert := `INSERT INTO ` + r.table("faction_quests") + `
			(faction_id, quest_id, started_at, expires_at, is_active, is_completed, is_failed)
			VALUES (?, ?, NOW(), ?, 1, 0, 0)`
		return withTransaction(r.DB, func(tx *sqlx.Tx) error {
			_, errTx := tx.Exec(insert, factionId, questId, expiresAt)
			return errTx
		})
	}

	update := `UPDATE ` + r.table("faction_quests") + `
		SET started_at = NOW(), expires_at = ?, is_active = 1, is_completed = 0, is_failed = 0
		WHERE faction_id = ? AND quest_id = ?`
	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, errTx := tx.Exec(update, expiresAt, factionId, questId)
		return errTx
	})
}
