package service

import (
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(data *model.LoginAPI) (*model.LoginResultAPI, error) {
	args := m.Called(data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResultAPI), args.Error(1)
}

func (m *MockAuthService) Resolve(code string) (string, error) {
	args := m.Called(code)
	return args.String(0), args.Error(1)
}
