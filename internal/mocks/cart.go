package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"damone-orders/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CartRepository struct {
	mock.Mock
}

func NewCartRepository(t testingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	cart, _ := args.Get(0).(*domain.Cart)
	return cart, args.Error(1)
}

func (m *CartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	return m.Called(ctx, sessionID, cart).Error(0)
}

func (m *CartRepository) Purge(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type Notifier struct {
	mock.Mock
}

func NewNotifier(t testingT) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) Notify(title, message string) {
	m.Called(title, message)
}
