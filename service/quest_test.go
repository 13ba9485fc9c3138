package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
	"kawe_webmanager/repository"
)

func TestTurnIn(t *testing.T) {
	readyCheck := func(faction bool) *repository.TurnInCheckDB {
		return &repository.TurnInCheckDB{
			QuestId:           "QMG-001",
			IsActive:          true,
			IsReadyToComplete: true,
			IsFactionQuest:    faction,
		}
	}

	tests := []struct {
		name        string
		steamId     string
		mockFunc    func(*MockQuestRepository)
		expectedErr string
	}{
		{
			"Solo quest turn-in queues",
			"M1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "M1", "QMG-001").Return(readyCheck(false), nil)
				repo.On("EnqueueTurnIn", "M1", "QMG-001").Return(int64(7), nil)
			},
			"",
		},
		{
			"Plain member cannot turn in a faction quest",
			"M1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "M1", "QMG-001").Return(readyCheck(true), nil)
				repo.On("FetchMembership", "M1").Return(membershipRow(9, 0, "LEAD1", 1), nil)
			},
			model.ErrInsufficientPermissions,
		},
		{
			"Vice leader turns in a faction quest",
			"VICE1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "VICE1", "QMG-001").Return(readyCheck(true), nil)
				repo.On("FetchMembership", "VICE1").Return(membershipRow(9, 2, "LEAD1", 1), nil)
				repo.On("EnqueueTurnIn", "VICE1", "QMG-001").Return(int64(8), nil)
			},
			"",
		},
		{
			"Leader named on the faction row outranks a stale member row",
			"LEAD1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "LEAD1", "QMG-001").Return(readyCheck(true), nil)
				repo.On("FetchMembership", "LEAD1").Return(membershipRow(9, 0, "LEAD1", 1), nil)
				repo.On("EnqueueTurnIn", "LEAD1", "QMG-001").Return(int64(9), nil)
			},
			"",
		},
		{
			"Faction quest without a faction",
			"LONER",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "LONER", "QMG-001").Return(readyCheck(true), nil)
				repo.On("FetchMembership", "LONER").Return(nil, nil)
			},
			model.ErrNotInFaction,
		},
		{
			"No progress record",
			"M1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "M1", "QMG-001").Return(nil, nil)
			},
			model.ErrQuestNotFound,
		},
		{
			"Inactive quest",
			"M1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "M1", "QMG-001").Return(&repository.TurnInCheckDB{
					QuestId: "QMG-001", IsActive: false, IsReadyToComplete: true,
				}, nil)
			},
			model.ErrQuestNotActive,
		},
		{
			"Quest not ready to complete",
			"M1",
			func(repo *MockQuestRepository) {
				repo.On("FetchTurnInCheck", "M1", "QMG-001").Return(&repository.TurnInCheckDB{
					QuestId: "QMG-001", IsActive: true, IsReadyToComplete: false,
				}, nil)
			},
			model.ErrQuestNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockQuestRepository)
			tt.mockFunc(repo)

			s := NewQuestService(repo)
			result, err := s.TurnIn(tt.steamId, "QMG-001")

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, result)
				repo.AssertNotCalled(t, "EnqueueTurnIn", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.NotZero(t, result.QueueId)
			}
			repo.AssertExpectations(t)
		})
	}
}
