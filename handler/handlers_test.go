package handler

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedDB     string
	}{
		{"Database reachable", nil, http.StatusOK, "up"},
		{"Database down", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			if tt.pingErr != nil {
				mocks.Logger.On("Exception", mock.AnythingOfType("string")).Return()
			}

			h := New(mocks.Auth, mocks.Faction, mocks.Quest, mocks.Player, mocks.Shop,
				mocks.Logger, stubPinger{err: tt.pingErr}, "test", "./commands.json")
			app := fiber.New()
			app.Get("/health", h.Health)

			resp := testSendRequest(t, app, http.MethodGet, "/health", nil, "")
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			var body map[string]string
			decodeBody(t, resp, &body)
			assert.Equal(t, tt.expectedDB, body["database"])
			assert.Equal(t, "test", body["version"])
		})
	}
}

func TestCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commands.json")
	content := `{"commands": [
		{"name": "/quests", "category": "Quests", "permissions": ["Everyone"]},
		{"name": "/quest turnin", "category": "Quests", "permissions": ["Everyone"]},
		{"name": "/faction forcedisband", "category": "Faction", "permissions": ["Admin"], "isAdmin": true},
		{"name": "/quest debugcomplete", "category": "Quests", "isDebug": true},
		{"name": "/reloadquests", "category": "Quests", "permissions": ["Everyone"]},
		{"name": "/spy", "category": "Misc", "permissions": ["Admin Moderator"]},
		{"name": "/shop", "permissions": ["Everyone"]}
	]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Error writing test commands file: %v", err)
	}

	mocks := newTestMocks()
	h := New(mocks.Auth, mocks.Faction, mocks.Quest, mocks.Player, mocks.Shop,
		mocks.Logger, stubPinger{}, "test", path)
	app := fiber.New()
	app.Get("/commands", h.Commands)

	resp := testSendRequest(t, app, http.MethodGet, "/commands", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	parsed, err := gabs.ParseJSONBuffer(resp.Body)
	if err != nil {
		t.Fatalf("Error parsing response body: %v", err)
	}

	// Admin, debug and reload commands are stripped; the rest come back
	// grouped by category with uncategorized entries under Other.
	assert.Equal(t, float64(3), parsed.Path("total").Data())
	assert.Len(t, parsed.Path("commands").Children(), 3)
	assert.Len(t, parsed.Search("grouped", "Quests").Children(), 2)
	assert.Len(t, parsed.Search("grouped", "Other").Children(), 1)
	assert.False(t, parsed.Exists("grouped", "Faction"))
	assert.False(t, parsed.Exists("grouped", "Misc"))
}
