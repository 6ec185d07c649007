package mocks

import (
	"github.com/stretchr/testify/mock"

	"damone-orders/internal/domain"
)

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuRepository) CreateMenuItem(item *domain.MenuItem) error {
	return m.Called(item).Error(0)
}

func (m *MenuRepository) ListMenuItems() ([]domain.MenuItem, error) {
	args := m.Called()
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuRepository) GetMenuItem(id string) (*domain.MenuItem, error) {
	args := m.Called(id)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *MenuRepository) UpdateMenuItem(item *domain.MenuItem) (int64, error) {
	args := m.Called(item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuRepository) DeleteMenuItem(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}
