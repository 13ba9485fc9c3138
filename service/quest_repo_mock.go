package service

import (
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/repository"
)

type MockQuestRepository struct {
	mock.Mock
}

func (m *MockQuestRepository) FetchQuests() ([]repository.QuestDB, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestDB), args.Error(1)
}

func (m *MockQuestRepository) FetchQuest(id string) (*repository.QuestDB, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.QuestDB), args.Error(1)
}

func (m *MockQuestRepository) FetchQuestProgress(questId string) ([]repository.QuestProgressDB, error) {
	args := m.Called(questId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestProgressDB), args.Error(1)
}

func (m *MockQuestRepository) NextQuestId() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockQuestRepository) UpsertQuest(data *repository.QuestDB) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockQuestRepository) FetchPlayerQuests(playerId string) ([]repository.PlayerQuestDB, error) {
	args := m.Called(playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.PlayerQuestDB), args.Error(1)
}

func (m *MockQuestRepository) FetchMembership(playerId string) (*repository.MembershipDB, error) {
	args := m.Called(playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MembershipDB), args.Error(1)
}

func (m *MockQuestRepository) FetchEnabledQuests(includeFactionQuests bool) ([]repository.QuestDB, error) {
	args := m.Called(includeFactionQuests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestDB), args.Error(1)
}

func (m *MockQuestRepository) FetchActiveQuestIds(playerId string) ([]string, error) {
	args := m.Called(playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuestRepository) HasActiveProgress(playerId, questId string) (bool, error) {
	args := m.Called(playerId, questId)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuestRepository) UpsertProgress(playerId, questId, objectiveProgress string) error {
	args := m.Called(playerId, questId, objectiveProgress)
	return args.Error(0)
}

func (m *MockQuestRepository) FetchTurnInCheck(playerId, questId string) (*repository.TurnInCheckDB, error) {
	args := m.Called(playerId, questId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.TurnInCheckDB), args.Error(1)
}

func (m *MockQuestRepository) EnqueueTurnIn(steamId, questId string) (int64, error) {
	args := m.Called(steamId, questId)
	return args.Get(0).(int64), args.Error(1)
}
