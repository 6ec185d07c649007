package tests

import (
	"context"
	"testing"

	"damone-orders/internal/domain"
	"damone-orders/internal/mocks"
	"damone-orders/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWith(t *testing.T, lines []domain.OrderLine, mode domain.FulfillmentMode) (*service.CartService, *mocks.CartRepository) {
	t.Helper()
	return newCartService(t, &domain.Cart{Lines: lines, Mode: mode})
}

func TestCheckoutService_SubmitDineIn(t *testing.T) {
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{ID: "kebab", Name: "Kebab", Price: 7}, Quantity: 2},
	}
	cart, _ := cartWith(t, lines, domain.FulfillmentDineIn)

	mockOrders := new(mocks.OrderRepository)
	mockProfiles := new(mocks.ProfileRepository)
	mockPublisher := new(mocks.OrderPublisher)
	mockQR := new(mocks.QRGenerator)

	mockOrders.On("CreateOrder", mock.MatchedBy(func(order *domain.Order) bool {
		return order.UserID == "user-1" &&
			order.Status == domain.OrderStatusPending &&
			len(order.Items) == 1 &&
			order.Items[0].ID == "kebab" &&
			order.Items[0].Quantity == 2 &&
			order.Total == 14.00 &&
			order.DeliveryType == domain.FulfillmentDineIn &&
			order.Address == ""
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 42
	}).Return(nil).Once()
	mockQR.On("Generate", 42).Return([]byte("png"), nil).Once()
	mockOrders.On("SaveQRCode", 42, []byte("png")).Return(nil).Once()
	mockPublisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == "order_created" &&
			event.OrderID == 42 &&
			event.Total == 14.00 &&
			len(event.Items) == 1 &&
			event.Items[0].Quantity == 2
	})).Return(nil).Once()

	svc := service.NewCheckoutService(mockOrders, mockProfiles, mockPublisher, mockQR)
	order, err := svc.Submit(context.Background(), cart, "user-1", "")

	require.NoError(t, err)
	assert.Equal(t, 42, order.ID)
	assert.True(t, cart.Snapshot().Empty())
	assert.Equal(t, domain.FulfillmentUnset, cart.Snapshot().Mode)
	mockOrders.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
	mockQR.AssertExpectations(t)
}

func TestCheckoutService_SubmitDeliveryAddsFee(t *testing.T) {
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{ID: "pilau", Name: "Pilau", Price: 22.99}, Quantity: 1},
	}
	cart, _ := cartWith(t, lines, domain.FulfillmentDelivery)

	mockOrders := new(mocks.OrderRepository)
	mockProfiles := new(mocks.ProfileRepository)

	mockProfiles.On("UpsertAddress", "user-1", "12 Mango Street").Return(nil).Once()
	mockOrders.On("CreateOrder", mock.MatchedBy(func(order *domain.Order) bool {
		return order.Total == 25.49 &&
			order.DeliveryType == domain.FulfillmentDelivery &&
			order.Address == "12 Mango Street"
	})).Return(nil).Once()

	svc := service.NewCheckoutService(mockOrders, mockProfiles, nil, nil)
	order, err := svc.Submit(context.Background(), cart, "user-1", "12 Mango Street")

	require.NoError(t, err)
	assert.Equal(t, "12 Mango Street", order.Address)
	mockOrders.AssertExpectations(t)
	mockProfiles.AssertExpectations(t)
}

func TestCheckoutService_SubmitDeliveryUsesSavedAddress(t *testing.T) {
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{ID: "kebab", Name: "Kebab", Price: 7}, Quantity: 1},
	}
	cart, _ := cartWith(t, lines, domain.FulfillmentDelivery)

	mockOrders := new(mocks.OrderRepository)
	mockProfiles := new(mocks.ProfileRepository)

	mockProfiles.On("GetAddress", "user-1").Return("4 Baobab Lane", nil).Once()
	mockOrders.On("CreateOrder", mock.MatchedBy(func(order *domain.Order) bool {
		return order.Address == "4 Baobab Lane"
	})).Return(nil).Once()

	svc := service.NewCheckoutService(mockOrders, mockProfiles, nil, nil)
	_, err := svc.Submit(context.Background(), cart, "user-1", "")

	require.NoError(t, err)
	mockProfiles.AssertExpectations(t)
}

func TestCheckoutService_SubmitDeliveryWithoutAddress(t *testing.T) {
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{ID: "kebab", Name: "Kebab", Price: 7}, Quantity: 1},
	}
	cart, _ := cartWith(t, lines, domain.FulfillmentDelivery)

	mockOrders := new(mocks.OrderRepository)
	mockProfiles := new(mocks.ProfileRepository)
	mockProfiles.On("GetAddress", "user-1").Return("", nil).Once()

	svc := service.NewCheckoutService(mockOrders, mockProfiles, nil, nil)
	_, err := svc.Submit(context.Background(), cart, "user-1", "")

	assert.ErrorIs(t, err, service.ErrAddressRequired)
	mockOrders.AssertNotCalled(t, "CreateOrder", mock.Anything)
	assert.Len(t, cart.Snapshot().Lines, 1)
}

func TestCheckoutService_SubmitFailureLeavesCartIntact(t *testing.T) {
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{ID: "kebab", Name: "Kebab", Price: 7}, Quantity: 2},
	}
	cart, _ := cartWith(t, lines, domain.FulfillmentDineIn)

	mockOrders := new(mocks.OrderRepository)
	mockProfiles := new(mocks.ProfileRepository)
	mockOrders.On("CreateOrder", mock.Anything).Return(assert.AnError).Once()

	svc := service.NewCheckoutService(mockOrders, mockProfiles, nil, nil)
	_, err := svc.Submit(context.Background(), cart, "user-1", "")
	require.Error(t, err)

	snapshot := cart.Snapshot()
	assert.Len(t, snapshot.Lines, 1)
	assert.Equal(t, domain.FulfillmentDineIn, snapshot.Mode)

	// Retrying after the failure works.
	mockOrders.On("CreateOrder", mock.Anything).Return(nil).Once()
	_, err = svc.Submit(context.Background(), cart, "user-1", "")
	assert.NoError(t, err)
	assert.True(t, cart.Snapshot().Empty())
}

func TestCheckoutService_SubmitGuards(t *testing.T) {
	svc := service.NewCheckoutService(new(mocks.OrderRepository), new(mocks.ProfileRepository), nil, nil)

	t.Run("empty cart", func(t *testing.T) {
		cart, _ := newCartService(t, nil)
		_, err := svc.Submit(context.Background(), cart, "user-1", "")
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("mode unset", func(t *testing.T) {
		cart, _ := cartWith(t, []domain.OrderLine{
			{MenuItem: domain.MenuItem{ID: "kebab", Price: 7}, Quantity: 1},
		}, domain.FulfillmentUnset)
		_, err := svc.Submit(context.Background(), cart, "user-1", "")
		assert.ErrorIs(t, err, service.ErrModeUnset)
	})
}

func TestCheckoutService_BrokerOutageDoesNotFailCheckout(t *testing.T) {
	lines := []domain.OrderLine{
		{MenuItem: domain.MenuItem{ID: "kebab", Name: "Kebab", Price: 7}, Quantity: 1},
	}
	cart, _ := cartWith(t, lines, domain.FulfillmentDineIn)

	mockOrders := new(mocks.OrderRepository)
	mockPublisher := new(mocks.OrderPublisher)
	mockQR := new(mocks.QRGenerator)

	mockOrders.On("CreateOrder", mock.Anything).Return(nil).Once()
	mockQR.On("Generate", mock.Anything).Return(nil, assert.AnError).Once()
	mockPublisher.On("PublishOrder", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	svc := service.NewCheckoutService(mockOrders, new(mocks.ProfileRepository), mockPublisher, mockQR)
	order, err := svc.Submit(context.Background(), cart, "user-1", "")

	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.True(t, cart.Snapshot().Empty())
}
