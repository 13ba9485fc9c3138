package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

func TestShopItems(t *testing.T) {
	mocks := newTestMocks()
	mocks.Shop.On("List").Return([]model.ShopItemAPI{
		{Id: 1, Name: "Makeshift Rifle", RewardType: "Item", ItemId: 1337, CostXp: 250, Enabled: true},
		{Id: 2, Name: "Scout Heli", RewardType: "Vehicle", ItemId: 133, CostFactionXp: 4000, Enabled: true},
	}, nil)

	app := testServer(mocks)
	resp := testSendRequest(t, app, http.MethodGet, "/shop/items", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []model.ShopItemAPI
	decodeBody(t, resp, &body)
	assert.Len(t, body, 2)
	assert.Equal(t, "Makeshift Rifle", body[0].Name)
}

func TestCreateShopItem(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.ShopItemAPI
		expectedStatus int
	}{
		{
			"Admin creates an item reward",
			func(m *testMocks) {
				m.Shop.On("Create", mock.AnythingOfType("*model.ShopItemAPI")).Return(7, nil)
			},
			&model.ShopItemAPI{Id: 7, Name: "Medkit Bundle", RewardType: "Item", ItemId: 519, Amount: 3, CostXp: 100},
			http.StatusCreated,
		},
		{
			"Item without an id is rejected",
			func(m *testMocks) {},
			&model.ShopItemAPI{Name: "Medkit Bundle", RewardType: "Item", ItemId: 519},
			http.StatusUnprocessableEntity,
		},
		{
			"Command reward without a command is rejected",
			func(m *testMocks) {},
			&model.ShopItemAPI{Id: 8, Name: "VIP Kit", RewardType: "Command"},
			http.StatusUnprocessableEntity,
		},
		{
			"Unknown reward type is rejected",
			func(m *testMocks) {},
			&model.ShopItemAPI{Id: 9, Name: "Mystery", RewardType: "Lootbox"},
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/shop/items", tt.data, "")

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)
		})
	}
}

func TestUpdateShopItem(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		target         string
		data           *model.ShopItemAPI
		expectedStatus int
	}{
		{
			"Admin updates an existing item",
			func(m *testMocks) {
				m.Shop.On("Update", mock.AnythingOfType("*model.ShopItemAPI")).Return(nil)
			},
			"/shop/items/3",
			&model.ShopItemAPI{Name: "Medkit Bundle", RewardType: "Item", ItemId: 519, CostXp: 150},
			http.StatusOK,
		},
		{
			"Updating a missing item returns not found",
			func(m *testMocks) {
				m.Shop.On("Update", mock.AnythingOfType("*model.ShopItemAPI")).Return(errors.New(model.ErrItemNotFound))
			},
			"/shop/items/999",
			&model.ShopItemAPI{Name: "Ghost", RewardType: "Item", ItemId: 1},
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPut, tt.target, tt.data, "")

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)
		})
	}
}

func TestDeleteShopItem(t *testing.T) {
	mocks := newTestMocks()
	mocks.Shop.On("Delete", 3).Return(nil)

	app := testServer(mocks)
	resp := testSendRequest(t, app, http.MethodDelete, "/shop/items/3", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.BaseResponse
	decodeBody(t, resp, &body)
	assert.True(t, body.Success)
}

func TestDashboard(t *testing.T) {
	mocks := newTestMocks()
	mocks.Player.On("Dashboard").Return(&model.DashboardStatsAPI{
		TotalFactions: 4,
		TotalQuests:   12,
		TotalPlayers:  87,
		ActiveQuests:  31,
	}, nil)

	app := testServer(mocks)
	resp := testSendRequest(t, app, http.MethodGet, "/dashboard/stats", nil, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body model.DashboardStatsAPI
	decodeBody(t, resp, &body)
	assert.Equal(t, 4, body.TotalFactions)
	assert.Equal(t, 31, body.ActiveQuests)
}
