package service

import "github.com/stretchr/testify/mock"

type MockPluginClient struct {
	mock.Mock
}

func (m *MockPluginClient) SetRole(actorId, targetId string, role int) *PluginResult {
	args := m.Called(actorId, targetId, role)
	return args.Get(0).(*PluginResult)
}

func (m *MockPluginClient) Invite(actorId, targetId string) *PluginResult {
	args := m.Called(actorId, targetId)
	return args.Get(0).(*PluginResult)
}

func (m *MockPluginClient) AcceptRequest(actorId, targetId string) *PluginResult {
	args := m.Called(actorId, targetId)
	return args.Get(0).(*PluginResult)
}

func (m *MockPluginClient) RejectRequest(actorId, targetId string) *PluginResult {
	args := m.Called(actorId, targetId)
	return args.Get(0).(*PluginResult)
}

func (m *MockPluginClient) SetAlias(actorId string, role int, alias string) *PluginResult {
	args := m.Called(actorId, role, alias)
	return args.Get(0).(*PluginResult)
}
