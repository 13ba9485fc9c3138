package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

func TestFactionInfo(t *testing.T) {
	memberInfo := &model.FactionInfoAPI{
		Success:     true,
		Role:        "Officer",
		RoleLevel:   model.RoleOfficer,
		RoleDisplay: "Sergeant",
		Permissions: model.BuildPermissions(model.RoleOfficer),
		Faction:     &model.FactionAPI{Id: 1, Name: "Night Watch", Tag: "NW"},
		Aliases:     map[string]string{"1": "Sergeant"},
	}

	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		code           string
		expectedStatus int
	}{
		{
			"Member fetches their faction info",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("Info", testSteamId).Return(memberInfo, nil)
			},
			testCode,
			http.StatusOK,
		},
		{
			"Request without auth code is rejected",
			func(m *testMocks) {},
			"",
			http.StatusUnauthorized,
		},
		{
			"Unknown auth code is rejected",
			func(m *testMocks) {
				m.Auth.On("Resolve", "WRONG000").Return("", nil)
			},
			"WRONG000",
			http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodGet, "/player/faction/info", nil, tt.code)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)

			if tt.expectedStatus == http.StatusOK {
				var body model.FactionInfoAPI
				decodeBody(t, resp, &body)
				assert.True(t, body.Success)
				assert.Equal(t, "Officer", body.Role)
				assert.Equal(t, "Sergeant", body.RoleDisplay)
				assert.True(t, body.Permissions.CanInvite)
				assert.False(t, body.Permissions.CanTransferLeadership)
			}
		})
	}
}

func TestFactionSetRole(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.SetRoleAPI
		expectedStatus int
		expectedError  string
	}{
		{
			"Leader promotes a member through the plugin",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("SetRole", testSteamId, mock.AnythingOfType("*model.SetRoleAPI")).Return(&model.SetRoleResultAPI{
					Success:    true,
					Role:       "Officer",
					RoleLevel:  model.RoleOfficer,
					Delegation: model.Delegated,
				}, nil)
			},
			&model.SetRoleAPI{TargetSteamId: testTarget, Role: float64(1)},
			http.StatusOK,
			"",
		},
		{
			"Member without permission is refused",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("SetRole", testSteamId, mock.AnythingOfType("*model.SetRoleAPI")).Return(nil, errors.New(model.ErrInsufficientPermissions))
			},
			&model.SetRoleAPI{TargetSteamId: testTarget, Role: float64(2)},
			http.StatusForbidden,
			model.ErrInsufficientPermissions,
		},
		{
			"Missing target is rejected before the service runs",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
			},
			&model.SetRoleAPI{Role: float64(1)},
			http.StatusBadRequest,
			model.ErrCodeTargetRoleRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/player/faction/set-role", tt.data, testCode)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)

			if tt.expectedError != "" {
				var body model.BaseResponse
				decodeBody(t, resp, &body)
				assert.False(t, body.Success)
				assert.Equal(t, tt.expectedError, body.Error)
			} else {
				var body model.SetRoleResultAPI
				decodeBody(t, resp, &body)
				assert.True(t, body.Success)
				assert.Equal(t, model.Delegated, body.Delegation)
			}
		})
	}
}

func TestFactionInvite(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.TargetAPI
		expectedStatus int
		expectedError  string
	}{
		{
			"Officer invites a player",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("Invite", testSteamId, testTarget).Return(nil)
			},
			&model.TargetAPI{TargetSteamId: testTarget},
			http.StatusOK,
			"",
		},
		{
			"Invite fails when the game server is offline",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("Invite", testSteamId, testTarget).Return(errors.New(model.ErrPluginUnavailable))
				m.Logger.On("Exception", mock.AnythingOfType("string")).Return()
			},
			&model.TargetAPI{TargetSteamId: testTarget},
			http.StatusServiceUnavailable,
			model.ErrPluginUnavailable,
		},
		{
			"Missing target is rejected",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
			},
			&model.TargetAPI{},
			http.StatusBadRequest,
			model.ErrCodeAndTargetRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/player/faction/invite", tt.data, testCode)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)

			var body model.BaseResponse
			decodeBody(t, resp, &body)
			if tt.expectedError != "" {
				assert.False(t, body.Success)
				assert.Equal(t, tt.expectedError, body.Error)
			} else {
				assert.True(t, body.Success)
			}
		})
	}
}

func TestFactionAssignQuest(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.AssignQuestAPI
		expectedStatus int
	}{
		{
			"Vice leader assigns a quest to two members",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("AssignQuest", testSteamId, mock.AnythingOfType("*model.AssignQuestAPI")).Return(&model.AssignQuestResultAPI{
					Success:       true,
					AssignedCount: 2,
				}, nil)
			},
			&model.AssignQuestAPI{QuestId: "QMG-001", AssignedMembers: []string{testSteamId, testTarget}},
			http.StatusOK,
		},
		{
			"Quest over the faction tier is refused",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Faction.On("AssignQuest", testSteamId, mock.AnythingOfType("*model.AssignQuestAPI")).Return(nil, errors.New(model.ErrQuestTierTooHigh))
			},
			&model.AssignQuestAPI{QuestId: "QMG-009", AssignedMembers: []string{testTarget}},
			http.StatusBadRequest,
		},
		{
			"Empty member list is rejected",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
			},
			&model.AssignQuestAPI{QuestId: "QMG-001"},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/player/faction/assign-quest", tt.data, testCode)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)
		})
	}
}

func TestFactionDetailNotFound(t *testing.T) {
	mocks := newTestMocks()
	mocks.Faction.On("Detail", int64(99)).Return(nil, nil)

	app := testServer(mocks)
	resp := testSendRequest(t, app, http.MethodGet, "/factions/99", nil, "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body model.BaseResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, model.ErrFactionNotFound, body.Error)
}
