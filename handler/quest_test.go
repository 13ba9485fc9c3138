package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.LoginAPI
		expectedStatus int
	}{
		{
			"Player logs in with a valid code",
			func(m *testMocks) {
				m.Auth.On("Login", mock.AnythingOfType("*model.LoginAPI")).Return(&model.LoginResultAPI{
					Success:    true,
					SteamId:    testSteamId,
					PlayerName: "Survivor",
					Token:      "d1f5a8f2-0000-0000-0000-000000000000",
				}, nil)
			},
			&model.LoginAPI{Code: testCode},
			http.StatusOK,
		},
		{
			"Unknown code is refused",
			func(m *testMocks) {
				m.Auth.On("Login", mock.AnythingOfType("*model.LoginAPI")).Return(nil, errors.New(model.ErrInvalidCode))
			},
			&model.LoginAPI{Code: "WRONG000"},
			http.StatusUnauthorized,
		},
		{
			"Empty code is refused",
			func(m *testMocks) {},
			&model.LoginAPI{},
			http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/auth/login", tt.data, "")

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)

			if tt.expectedStatus == http.StatusOK {
				var body model.LoginResultAPI
				decodeBody(t, resp, &body)
				assert.True(t, body.Success)
				assert.Equal(t, testSteamId, body.SteamId)
				assert.NotEmpty(t, body.Token)
			}
		})
	}
}

func TestQuestDetail(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		questId        string
		expectedStatus int
	}{
		{
			"Admin fetches a quest with progress",
			func(m *testMocks) {
				m.Quest.On("Get", "QMG-001").Return(&model.QuestDetailAPI{
					QuestAPI: model.QuestAPI{
						Id:          "QMG-001",
						DisplayName: "Zombie Cull",
						Enabled:     true,
						QuestType:   "daily",
						Objectives: []model.Objective{
							{Id: "obj1", Type: "zombie_kill", TargetValue: 25},
						},
					},
					Progress: []model.QuestProgressAPI{},
				}, nil)
			},
			"QMG-001",
			http.StatusOK,
		},
		{
			"Unknown quest id returns not found",
			func(m *testMocks) {
				m.Quest.On("Get", "QMG-404").Return(nil, nil)
			},
			"QMG-404",
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodGet, "/quests/"+tt.questId, nil, "")

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)
		})
	}
}

func TestSaveQuest(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.QuestAPI
		expectedStatus int
	}{
		{
			"Admin saves a valid quest",
			func(m *testMocks) {
				m.Quest.On("Save", mock.AnythingOfType("*model.QuestAPI")).Return(nil)
			},
			&model.QuestAPI{
				Id:          "QMG-002",
				DisplayName: "Fishing Trip",
				QuestType:   "weekly",
				Tier:        1,
				Objectives:  []model.Objective{{Id: "obj1", Type: "fishing", TargetValue: 10}},
				Rewards:     []model.Reward{{Type: "xp", Amount: 500}},
			},
			http.StatusOK,
		},
		{
			"Quest with no id is rejected",
			func(m *testMocks) {},
			&model.QuestAPI{DisplayName: "No Id"},
			http.StatusUnprocessableEntity,
		},
		{
			"Quest with unknown objective type is rejected",
			func(m *testMocks) {},
			&model.QuestAPI{
				Id:         "QMG-003",
				Objectives: []model.Objective{{Id: "obj1", Type: "teleport", TargetValue: 1}},
			},
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/quests", tt.data, "")

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)
		})
	}
}

func TestTurnInQuest(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.QuestIdAPI
		expectedStatus int
		expectedError  string
	}{
		{
			"Ready quest is queued for payout",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Quest.On("TurnIn", testSteamId, "QMG-001").Return(&model.TurnInResultAPI{
					Success:  true,
					QuestId:  "QMG-001",
					PlayerId: testSteamId,
					QueueId:  42,
				}, nil)
			},
			&model.QuestIdAPI{QuestId: "QMG-001"},
			http.StatusOK,
			"",
		},
		{
			"Unready quest cannot be turned in",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Quest.On("TurnIn", testSteamId, "QMG-001").Return(nil, errors.New(model.ErrQuestNotReady))
			},
			&model.QuestIdAPI{QuestId: "QMG-001"},
			http.StatusBadRequest,
			model.ErrQuestNotReady,
		},
		{
			"Missing quest id is rejected",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
			},
			&model.QuestIdAPI{},
			http.StatusBadRequest,
			model.ErrCodeAndQuestRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/player/turn-in-quest", tt.data, testCode)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)

			if tt.expectedError != "" {
				var body model.BaseResponse
				decodeBody(t, resp, &body)
				assert.Equal(t, tt.expectedError, body.Error)
			} else {
				var body model.TurnInResultAPI
				decodeBody(t, resp, &body)
				assert.True(t, body.Success)
				assert.Equal(t, int64(42), body.QueueId)
			}
		})
	}
}

func TestAssignQuestSelf(t *testing.T) {
	tests := []struct {
		name           string
		mockFunc       func(*testMocks)
		data           *model.QuestIdAPI
		expectedStatus int
	}{
		{
			"Player starts an available quest",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Quest.On("Assign", testSteamId, "QMG-001").Return(nil)
			},
			&model.QuestIdAPI{QuestId: "QMG-001"},
			http.StatusOK,
		},
		{
			"Already active quest is refused",
			func(m *testMocks) {
				m.Auth.On("Resolve", testCode).Return(testSteamId, nil)
				m.Quest.On("Assign", testSteamId, "QMG-001").Return(errors.New(model.ErrQuestAlreadyActive))
			},
			&model.QuestIdAPI{QuestId: "QMG-001"},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newTestMocks()
			tt.mockFunc(mocks)

			app := testServer(mocks)
			resp := testSendRequest(t, app, http.MethodPost, "/player/assign-quest", tt.data, testCode)

			assert.Equal(t, tt.expectedStatus, resp.StatusCode, "Unexpected response HTTP status code for test: %s", tt.name)
		})
	}
}
