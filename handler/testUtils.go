package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"kawe_webmanager/service"
)

const (
	testCode    = "AB12CD34"
	testSteamId = "76561198000000001"
	testTarget  = "76561198000000002"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping() error {
	return s.err
}

type testMocks struct {
	Auth    *service.MockAuthService
	Faction *service.MockFactionService
	Quest   *service.MockQuestService
	Player  *service.MockPlayerService
	Shop    *service.MockShopService
	Logger  *service.MockLoggerService
}

func newTestMocks() *testMocks {
	return &testMocks{
		Auth:    new(service.MockAuthService),
		Faction: new(service.MockFactionService),
		Quest:   new(service.MockQuestService),
		Player:  new(service.MockPlayerService),
		Shop:    new(service.MockShopService),
		Logger:  new(service.MockLoggerService),
	}
}

func testServer(m *testMocks) *fiber.App {
	h := New(m.Auth, m.Faction, m.Quest, m.Player, m.Shop, m.Logger, stubPinger{}, "test", "./commands.json")
	mw := service.NewMiddleware(m.Auth, m.Logger)

	app := fiber.New()

	app.Get("/health", h.Health)
	app.Get("/dashboard/stats", h.Dashboard)
	app.Post("/auth/login", h.Login)

	app.Get("/factions", h.Factions)
	app.Get("/factions/:id", h.FactionDetail)
	app.Get("/faction-quests/:id", h.FactionQuests)

	app.Get("/quests/next-id", h.NextQuestId)
	app.Get("/quests", h.Quests)
	app.Get("/quests/:id", h.QuestDetail)
	app.Post("/quests", h.SaveQuest)

	app.Get("/players", h.Players)
	app.Get("/players/:steamId", h.PlayerDetail)
	app.Get("/players/:steamId/stats", h.PlayerStats)

	app.Get("/shop/items", h.ShopItems)
	app.Get("/shop/items/:id", h.ShopItem)
	app.Post("/shop/items", h.CreateShopItem)
	app.Put("/shop/items/:id", h.UpdateShopItem)
	app.Delete("/shop/items/:id", h.DeleteShopItem)

	player := app.Group("player", mw.RequireAuth)
	player.Get("/quests", h.PlayerQuests)
	player.Get("/available-quests", h.AvailableQuests)
	player.Post("/assign-quest", h.AssignQuest)
	player.Post("/turn-in-quest", h.TurnInQuest)

	faction := player.Group("faction")
	faction.Get("/info", h.FactionInfo)
	faction.Post("/invite", h.FactionInvite)
	faction.Post("/accept-request", h.FactionAcceptRequest)
	faction.Post("/reject-request", h.FactionRejectRequest)
	faction.Post("/set-alias", h.FactionSetAlias)
	faction.Post("/set-role", h.FactionSetRole)
	faction.Get("/available-quests", h.FactionAvailableQuests)
	faction.Post("/assign-quest", h.FactionAssignQuest)

	return app
}

func testSendRequest(t *testing.T, app *fiber.App, method, target string, body interface{}, code string) *http.Response {
	t.Helper()

	var err error
	var bodyBytes []byte
	if body != nil {
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("Error marshalling test body %v: %v", body, err)
		}
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if code != "" {
		req.Header.Set("X-Auth-Code", code)
	}

	var resp *http.Response
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("Error sending test request for %s: %v", target, err)
	}

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Error decoding response body: %v", err)
	}
}
