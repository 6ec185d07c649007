package service

import (
	"context"
	"errors"
	"fmt"

	"damone-orders/internal/domain"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUnknownStatus = errors.New("unknown order status")
	ErrForbidden     = errors.New("not allowed to access this order")
)

// OrderService covers the read side of orders (customer history, admin
// listing, pickup QR) and admin status transitions.
type OrderService struct {
	repo      OrderRepository
	analytics AnalyticsReader
}

func NewOrderService(repo OrderRepository, analytics AnalyticsReader) *OrderService {
	return &OrderService{repo: repo, analytics: analytics}
}

func (s *OrderService) History(userID string) ([]domain.Order, error) {
	return s.repo.ListUserOrders(userID)
}

func (s *OrderService) Get(orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// QRCode returns the pickup code PNG for an order the caller owns (admins
// may fetch any).
func (s *OrderService) QRCode(orderID int, userID string, isAdmin bool) ([]byte, error) {
	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID && !isAdmin {
		return nil, ErrForbidden
	}

	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load QR code: %w", err)
	}
	return qr, nil
}

func (s *OrderService) ListAll(status string) ([]domain.Order, error) {
	if status != "" && !domain.ValidOrderStatus(status) {
		return nil, ErrUnknownStatus
	}
	return s.repo.ListOrders(status)
}

func (s *OrderService) UpdateStatus(orderID int, status string) error {
	if !domain.ValidOrderStatus(status) {
		return ErrUnknownStatus
	}
	rows, err := s.repo.UpdateOrderStatus(orderID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) Summary(ctx context.Context, date string, topN int) (*domain.DailySummary, error) {
	return s.analytics.Summary(ctx, date, topN)
}
