package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"damone-orders/internal/domain"
)

type AnalyticsWriter struct {
	mock.Mock
}

func NewAnalyticsWriter(t testingT) *AnalyticsWriter {
	m := &AnalyticsWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AnalyticsWriter) ApplyOrder(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type AnalyticsReader struct {
	mock.Mock
}

func NewAnalyticsReader(t testingT) *AnalyticsReader {
	m := &AnalyticsReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AnalyticsReader) Summary(ctx context.Context, date string, topN int) (*domain.DailySummary, error) {
	args := m.Called(ctx, date, topN)
	summary, _ := args.Get(0).(*domain.DailySummary)
	return summary, args.Error(1)
}
