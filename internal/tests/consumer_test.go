package tests

import (
	"context"
	"testing"
	"time"

	"damone-orders/internal/domain"
	"damone-orders/internal/mocks"
	"damone-orders/internal/service"
	"damone-orders/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderEvent(orderID int, total float64) domain.OrderEvent {
	return domain.OrderEvent{
		Type:    "order_created",
		OrderID: orderID,
		UserID:  "user-1",
		Total:   total,
		Items: []domain.OrderEventItem{
			{ID: "kebab", Name: "Kebab", Quantity: 2},
			{ID: "pilau", Name: "Pilau", Quantity: 1},
		},
		Timestamp: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestConsumer_ProcessOrder(t *testing.T) {
	mockStore := new(mocks.AnalyticsWriter)
	consumer := service.NewConsumer(nil, mockStore)
	event := orderEvent(1, 36.99)

	mockStore.On("ApplyOrder", mock.Anything, event).Return(nil).Once()
	consumer.ProcessOrder(context.Background(), event)
	mockStore.AssertExpectations(t)
}

func TestConsumer_ProcessOrderIgnoresOtherEvents(t *testing.T) {
	mockStore := new(mocks.AnalyticsWriter)
	consumer := service.NewConsumer(nil, mockStore)

	event := orderEvent(1, 36.99)
	event.Type = "order_cancelled"
	consumer.ProcessOrder(context.Background(), event)

	mockStore.AssertNotCalled(t, "ApplyOrder", mock.Anything, mock.Anything)
}

func TestConsumer_ProcessOrderStoreFailure(t *testing.T) {
	mockStore := new(mocks.AnalyticsWriter)
	consumer := service.NewConsumer(nil, mockStore)
	event := orderEvent(2, 14.00)

	mockStore.On("ApplyOrder", mock.Anything, event).Return(assert.AnError).Once()

	// A store failure is logged and swallowed; the consumer keeps going.
	assert.NotPanics(t, func() {
		consumer.ProcessOrder(context.Background(), event)
	})
	mockStore.AssertExpectations(t)
}

func TestAnalyticsStore_ApplyAndSummarize(t *testing.T) {
	_, client := newTestRedis(t)
	store := storage.NewAnalyticsStore(client)
	ctx := context.Background()

	require.NoError(t, store.ApplyOrder(ctx, orderEvent(1, 36.99)))
	require.NoError(t, store.ApplyOrder(ctx, orderEvent(2, 14.00)))

	summary, err := store.Summary(ctx, "2026-03-14", 5)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", summary.Date)
	assert.InDelta(t, 50.99, summary.Revenue, 0.001)
	assert.Equal(t, 2, summary.OrderCount)
	require.Len(t, summary.TopItems, 2)
	assert.Equal(t, "kebab", summary.TopItems[0].ItemID)
	assert.Equal(t, 4.0, summary.TopItems[0].Quantity)
	assert.Equal(t, "pilau", summary.TopItems[1].ItemID)
	assert.Equal(t, 2.0, summary.TopItems[1].Quantity)
}

func TestAnalyticsStore_EmptyDay(t *testing.T) {
	_, client := newTestRedis(t)
	store := storage.NewAnalyticsStore(client)

	summary, err := store.Summary(context.Background(), "2026-01-01", 5)
	require.NoError(t, err)

	assert.Zero(t, summary.Revenue)
	assert.Zero(t, summary.OrderCount)
	assert.Empty(t, summary.TopItems)
}

func TestAnalyticsStore_TopNLimit(t *testing.T) {
	_, client := newTestRedis(t)
	store := storage.NewAnalyticsStore(client)
	ctx := context.Background()

	require.NoError(t, store.ApplyOrder(ctx, orderEvent(1, 36.99)))

	summary, err := store.Summary(ctx, "2026-03-14", 1)
	require.NoError(t, err)
	require.Len(t, summary.TopItems, 1)
	assert.Equal(t, "kebab", summary.TopItems[0].ItemID)
}
