package service

import (
	"github.com/stretchr/testify/mock"

	"kawe_webmanager/model"
)

type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) List() ([]model.ShopItemAPI, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShopItemAPI), args.Error(1)
}

func (m *MockShopService) Get(id int) (*model.ShopItemAPI, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShopItemAPI), args.Error(1)
}

func (m *MockShopService) Create(data *model.ShopItemAPI) (int, error) {
	args := m.Called(data)
	return args.Int(0), args.Error(1)
}

func (m *MockShopService) Update(data *model.ShopItemAPI) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockShopService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
