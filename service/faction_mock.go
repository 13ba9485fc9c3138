package service

import (
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

type MockFactionService struct {
	mock.Mock
}

func (m *MockFactionService) List() ([]model.FactionSummaryAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FactionSummaryAPI), args.Error(1)
}

func (m *MockFactionService) Detail(id int64) (*model.FactionDetailAPI, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FactionDetailAPI), args.Error(1)
}

func (m *MockFactionService) Quests(id int64) ([]model.FactionQuestAPI, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FactionQuestAPI), args.Error(1)
}

func (m *MockFactionService) Info(steamId string) (*model.FactionInfoAPI, error) {
	args := m.Called(steamId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FactionInfoAPI), args.Error(1)
}

func (m *MockFactionService) Invite(actorId, targetId string) error {
	args := m.Called(actorId, targetId)
	return args.Error(0)
}

func (m *MockFactionService) AcceptRequest(actorId, targetId string) error {
	args := m.Called(actorId, targetId)
	return args.Error(0)
}

func (m *MockFactionService) RejectRequest(actorId, targetId string) error {
	args := m.Called(actorId, targetId)
	return args.Error(0)
}

func (m *MockFactionService) SetAlias(actorId string, role interface{}, alias string) error {
	args := m.Called(actorId, role, alias)
	return args.Error(0)
}

func (m *MockFactionService) SetRole(actorId string, data *model.SetRoleAPI) (*model.SetRoleResultAPI, error) {
	args := m.Called(actorId, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SetRoleResultAPI), args.Error(1)
}

func (m *MockFactionService) AvailableQuests(steamId string) ([]model.AvailableFactionQuestAPI, error) {
	args := m.Called(steamId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AvailableFactionQuestAPI), args.Error(1)
}

func (m *MockFactionService) AssignQuest(actorId string, data *model.AssignQuestAPI) (*model.AssignQuestResultAPI, error) {
	args := m.Called(actorId, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AssignQuestResultAPI), args.Error(1)
}
