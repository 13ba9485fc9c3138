package service

import (
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) List() ([]model.QuestAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuestAPI), args.Error(1)
}

func (m *MockQuestService) Get(id string) (*model.QuestDetailAPI, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuestDetailAPI), args.Error(1)
}

func (m *MockQuestService) NextId() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockQuestService) Save(data *model.QuestAPI) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockQuestService) PlayerQuests(steamId string) (*model.PlayerQuestsAPI, error) {
	args := m.Called(steamId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlayerQuestsAPI), args.Error(1)
}

func (m *MockQuestService) AvailableQuests(steamId string) (*model.AvailableQuestsAPI, error) {
	args := m.Called(steamId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AvailableQuestsAPI), args.Error(1)
}

func (m *MockQuestService) Assign(steamId, questId string) error {
	args := m.Called(steamId, questId)
	return args.Error(0)
}

func (m *MockQuestService) TurnIn(steamId, questId string) (*model.TurnInResultAPI, error) {
	args := m.Called(steamId, questId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TurnInResultAPI), args.Error(1)
}
