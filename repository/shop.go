package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

func (r *Repository) FetchShopItems() ([]ShopItemDB, error) {
	var items []ShopItemDB
	query := `SELECT id, name, reward_type, COALESCE(item_id, 0) AS item_id,
			COALESCE(amount, 1) AS amount, COALESCE(cost_xp, 0) AS cost_xp,
			COALESCE(cost_faction_xp, 0) AS cost_faction_xp,
			COALESCE(sell_price, 0) AS sell_price, command, enabled,
			created_at, updated_at
		FROM ` + r.table("shop_items") + ` ORDER BY id ASC`
	if err := r.DB.Select(&items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) FetchShopItem(id int) (*ShopItemDB, error) {
	var item ShopItemDB
	query := `SELECT id, name, reward_type, COALESCE(item_id, 0) AS item_id,
			COALESCE(amount, 1) AS amount, COALESCE(cost_xp, 0) AS cost_xp,
			COALESCE(cost_faction_xp, 0) AS cost_faction_xp,
			COALESCE(sell_price, 0) AS sell_price, command, enabled,
			created_at, updated_at
		FROM ` + r.table("shop_items") + ` WHERE id = ?`
	if err := r.DB.Get(&item, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpsertShopItem writes an item under its caller-chosen id. Ids are stable
// references the game plugin resolves at purchase time, so an existing row is
// overwritten in place.
func (r *Repository) UpsertShopItem(data *ShopItemDB) error {
	query := `INSERT INTO ` + r.table("shop_items") + `
		(id, name, reward_type, item_id, amount, cost_xp, cost_faction_xp, sell_price, command, enabled, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), reward_type = VALUES(reward_type), item_id = VALUES(item_id),
			amount = VALUES(amount), cost_xp = VALUES(cost_xp), cost_faction_xp = VALUES(cost_faction_xp),
			sell_price = VALUES(sell_price), command = VALUES(command), enabled = VALUES(enabled),
			updated_at = NOW()`

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query,
			data.Id, data.Name, data.RewardType, data.ItemId, data.Amount,
			data.CostXp, data.CostFactionXp, data.SellPrice, data.Command, data.Enabled)
		return err
	})
}

func (r *Repository) UpdateShopItem(data *ShopItemDB) error {
	query := `UPDATE ` + r.table("shop_items") + ` SET
			name = ?, reward_type = ?, item_id = ?, amount = ?, cost_xp = ?,
			cost_faction_xp = ?, sell_price = ?, command = ?, enabled = ?, updated_at = NOW()
		WHERE id = ?`

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query,
			data.Name, data.RewardType, data.ItemId, data.Amount,
			data.CostXp, data.CostFactionXp, data.SellPrice, data.Command, data.Enabled,
			data.Id)
		return err
	})
}

func (r *Repository) DeleteShopItem(id int) error {
	query := "DELETE FROM " + r.table("shop_items") + " WHERE id = ?"

	return withTransaction(r.DB, func(tx *sqlx.Tx) error {
		_, err := tx.Exec(query, id)
		return err
	})
}
