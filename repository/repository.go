package repository

import (
	"database/sql"
	"errors"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Repository wraps a pooled MySQL handle and the configurable table prefix
// shared with the game-server plugin. The PlayerStatsNew table is owned by a
// different plugin and is never prefixed.
type Repository struct {
	DB     *sqlx.DB
	Prefix string
}

func New(dsn, prefix string) (*Repository, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}
	return &Repository{DB: db, Prefix: prefix}, nil
}

func (r *Repository) table(name string) string {
	return r.Prefix + name
}

func (r *Repository) Ping() error {
	var one int
	return r.DB.Get(&one, "SELECT 1")
}

func withTransaction(db *sqlx.DB, txFunc func(*sqlx.Tx) error) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}

	if err = txFunc(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}
	return tx.Commit()
}

// SteamIdForAuthCode resolves an opaque auth code to a steam id, empty when
// the code is unknown. Steam ids are cast to CHAR so they survive as strings.
func (r *Repository) SteamIdForAuthCode(code string) (string, error) {
	var steamId string
	query := "SELECT CAST(steam_id AS CHAR) FROM " + r.table("player_auth") +
		" WHERE UPPER(auth_code) = UPPER(?) LIMIT 1"
	if err := r.DB.Get(&steamId, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return steamId, nil
}

func (r *Repository) TouchAuthCode(steamId string) error {
	query := "UPDATE " + r.table("player_auth") + " SET last_used_at_utc = NOW() WHERE steam_id = ?"
	_, err := r.DB.Exec(query, steamId)
	return err
}

func (r *Repository) FetchDashboardStats() (*DashboardStatsDB, error) {
	var ret DashboardStatsDB

	if err := r.DB.Get(&ret.TotalFactions, "SELECT COUNT(*) FROM "+r.table("factions")); err != nil {
		return nil, err
	}
	if err := r.DB.Get(&ret.TotalQuests, "SELECT COUNT(*) FROM "+r.table("quest_definitions")+" WHERE enabled = 1"); err != nil {
		return nil, err
	}
	if err := r.DB.Get(&ret.TotalPlayers, "SELECT COUNT(DISTINCT player_id) FROM "+r.table("quest_progress")); err != nil {
		return nil, err
	}
	if err := r.DB.Get(&ret.ActiveQuests, "SELECT COUNT(*) FROM "+r.table("quest_progress")+" WHERE is_active = 1"); err != nil {
		return nil, err
	}

	return &ret, nil
}

func (r *Repository) FetchPlayerName(steamId string) (string, error) {
	var name string
	query := "SELECT Name FROM PlayerStatsNew WHERE SteamId = ? OR CAST(SteamId AS CHAR) = ? LIMIT 1"
	if err := r.DB.Get(&name, query, steamId, steamId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return name, nil
}

// FetchPlayerNames loads display names for a set of steam ids in one query.
// Missing ids are simply absent from the map.
func (r *Repository) FetchPlayerNames(steamIds []string) (map[string]string, error) {
	names := make(map[string]string)
	if len(steamIds) == 0 {
		return names, nil
	}

	query, args, err := sqlx.In("SELECT CAST(SteamId AS CHAR) AS SteamId, Name FROM PlayerStatsNew WHERE SteamId IN (?)", steamIds)
	if err != nil {
		return nil, err
	}

	rows := []struct {
		SteamId string `db:"SteamId"`
		Name    string `db:"Name"`
	}{}
	if err := r.DB.Select(&rows, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Name != "" {
			names[row.SteamId] = row.Name
		}
	}
	return names, nil
}

func (r *Repository) PlayerStatsTableExists() (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = 'PlayerStatsNew'`
	if err := r.DB.Get(&count, query); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) FetchPlayers() ([]PlayerStatsDB, error) {
	var players []PlayerStatsDB
	query := `SELECT CAST(SteamId AS CHAR) AS SteamId, Name, Kills, Headshots, PVPDeaths, PVEDeaths,
			Zombies, MegaZombies, Animals, Resources, Harvests, Fish, Structures, Barricades,
			Playtime, UIDisabled, LastUpdated
		FROM PlayerStatsNew ORDER BY LastUpdated DESC LIMIT 1000`
	if err := r.DB.Select(&players, query); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *Repository) FetchPlayerStats(steamId string) (*PlayerStatsDB, error) {
	var stats PlayerStatsDB
	query := `SELECT CAST(SteamId AS CHAR) AS SteamId, Name, Kills, Headshots, PVPDeaths, PVEDeaths,
			Zombies, MegaZombies, Animals, Resources, Harvests, Fish, Structures, Barricades,
			Playtime, UIDisabled, LastUpdated
		FROM PlayerStatsNew
		WHERE SteamId = ? OR CAST(SteamId AS CHAR) = ?
		LIMIT 1`
	if err := r.DB.Get(&stats, query, steamId, steamId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &stats, nil
}
