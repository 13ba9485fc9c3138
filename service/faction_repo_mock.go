package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"kawe_webmanager/repository"
)

type MockFactionRepository struct {
	mock.Mock
}

func (m *MockFactionRepository) FetchFactions() ([]repository.FactionSummaryDB, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FactionSummaryDB), args.Error(1)
}

func (m *MockFactionRepository) FetchFaction(id int64) (*repository.FactionSummaryDB, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.FactionSummaryDB), args.Error(1)
}

func (m *MockFactionRepository) FetchMembership(playerId string) (*repository.MembershipDB, error) {
	args := m.Called(playerId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.MembershipDB), args.Error(1)
}

func (m *MockFactionRepository) FetchMembers(factionId int64) ([]repository.FactionMemberDB, error) {
	args := m.Called(factionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FactionMemberDB), args.Error(1)
}

func (m *MockFactionRepository) IsMember(factionId int64, playerId string) (bool, error) {
	args := m.Called(factionId, playerId)
	return args.Bool(0), args.Error(1)
}

func (m *MockFactionRepository) FetchAliases(factionId int64) ([]repository.RoleAliasDB, error) {
	args := m.Called(factionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RoleAliasDB), args.Error(1)
}

func (m *MockFactionRepository) FetchInvitations(factionId int64) ([]repository.InvitationDB, error) {
	args := m.Called(factionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.InvitationDB), args.Error(1)
}

func (m *MockFactionRepository) FetchJoinRequests(factionId int64) ([]repository.JoinRequestDB, error) {
	args := m.Called(factionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.JoinRequestDB), args.Error(1)
}

func (m *MockFactionRepository) FetchPlayerNames(steamIds []string) (map[string]string, error) {
	args := m.Called(steamIds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockFactionRepository) FetchCompletedQuestsByTier(factionId int64) ([]repository.TierCountDB, error) {
	args := m.Called(factionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TierCountDB), args.Error(1)
}

func (m *MockFactionRepository) CountFactionQuests(factionId int64) (int, error) {
	args := m.Called(factionId)
	return args.Int(0), args.Error(1)
}

func (m *MockFactionRepository) FetchFactionQuests(factionId int64) ([]repository.FactionQuestDB, error) {
	args := m.Called(factionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.FactionQuestDB), args.Error(1)
}

func (m *MockFactionRepository) UpdateMemberRole(factionId int64, playerId string, role int) error {
	args := m.Called(factionId, playerId, role)
	return args.Error(0)
}

func (m *MockFactionRepository) UpdateFactionLeader(factionId int64, leaderId string) error {
	args := m.Called(factionId, leaderId)
	return args.Error(0)
}

func (m *MockFactionRepository) FetchAvailableFactionQuests(tier int) ([]repository.QuestDB, error) {
	args := m.Called(tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.QuestDB), args.Error(1)
}

func (m *MockFactionRepository) FetchQuest(id string) (*repository.QuestDB, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.QuestDB), args.Error(1)
}

func (m *MockFactionRepository) HasActiveProgress(playerId, questId string) (bool, error) {
	args := m.Called(playerId, questId)
	return args.Bool(0), args.Error(1)
}

func (m *MockFactionRepository) UpsertProgress(playerId, questId, objectiveProgress string) error {
	args := m.Called(playerId, questId, objectiveProgress)
	return args.Error(0)
}

func (m *MockFactionRepository) UpsertFactionQuest(factionId int64, questId string, expiresAt time.Time) error {
	args := m.Called(factionId, questId, expiresAt)
	return args.Error(0)
}
