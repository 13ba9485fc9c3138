package service

import (
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) Dashboard() (*model.DashboardStatsAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DashboardStatsAPI), args.Error(1)
}

func (m *MockPlayerService) List() ([]model.PlayerStatsAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PlayerStatsAPI), args.Error(1)
}

func (m *MockPlayerService) Stats(steamId string) (*model.PlayerStatsAPI, error) {
	args := m.Called(steamId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlayerStatsAPI), args.Error(1)
}

func (m *MockPlayerService) Detail(steamId string) (*model.PlayerDetailAPI, error) {
	args := m.Called(steamId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PlayerDetailAPI), args.Error(1)
}
