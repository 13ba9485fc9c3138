package service

import (
	"database/sql"
	"errors"

	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

type ShopService struct {
	Repo *repository.Repository
}

func NewShopService(repo *repository.Repository) *ShopService {
	return &ShopService{Repo: repo}
}

func shopItemFromDB(row *repository.ShopItemDB) model.ShopItemAPI {
	item := model.ShopItemAPI{
		Id:            row.Id,
		Name:          row.Name,
		RewardType:    row.RewardType,
		ItemId:        row.ItemId,
		Amount:        row.Amount,
		CostXp:        row.CostXp,
		CostFactionXp: row.CostFactionXp,
		SellPrice:     row.SellPrice,
		Enabled:       row.Enabled,
	}
	if row.Command.Valid {
		item.Command = row.Command.String
	}
	if row.CreatedAt.Valid {
		t := row.CreatedAt.Time
		item.CreatedAt = &t
	}
	if row.UpdatedAt.Valid {
		t := row.UpdatedAt.Time
		item.UpdatedAt = &t
	}
	return item
}

func shopItemToDB(data *model.ShopItemAPI) *repository.ShopItemDB {
	row := &repository.ShopItemDB{
		Id:            data.Id,
		Name:          data.Name,
		RewardType:    data.RewardType,
		ItemId:        data.ItemId,
		Amount:        data.Amount,
		CostXp:        data.CostXp,
		CostFactionXp: data.CostFactionXp,
		SellPrice:     data.SellPrice,
		Enabled:       data.Enabled,
	}
	if data.Command != "" {
		row.Command = sql.NullString{String: data.Command, Valid: true}
	}
	return row
}

func (s *ShopService) List() ([]model.ShopItemAPI, error) {
	rows, err := s.Repo.FetchShopItems()
	if err != nil {
		return nil, err
	}

	items := make([]model.ShopItemAPI, 0, len(rows))
	for i := range rows {
		items = append(items, shopItemFromDB(&rows[i]))
	}
	return items, nil
}

func (s *ShopService) Get(id int) (*model.ShopItemAPI, error) {
	row, err := s.Repo.FetchShopItem(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	item := shopItemFromDB(row)
	return &item, nil
}

// Create upserts an item under its caller-chosen id, applying the same
// defaults the game plugin assumes for unset costs.
func (s *ShopService) Create(data *model.ShopItemAPI) (int, error) {
	if data.Amount <= 0 {
		data.Amount = 1
	}
	if data.CostXp <= 0 {
		data.CostXp = 1
	}
	if data.CostFactionXp <= 0 {
		data.CostFactionXp = data.CostXp
	}

	if err := s.Repo.UpsertShopItem(shopItemToDB(data)); err != nil {
		return 0, err
	}
	return data.Id, nil
}

func (s *ShopService) Update(data *model.ShopItemAPI) error {
	existing, err := s.Repo.FetchShopItem(data.Id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New(model.ErrItemNotFound)
	}

	return s.Repo.UpdateShopItem(shopItemToDB(data))
}

func (s *ShopService) Delete(id int) error {
	existing, err := s.Repo.FetchShopItem(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New(model.ErrItemNotFound)
	}

	return s.Repo.DeleteShopItem(id)
}
