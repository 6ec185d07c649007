package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"damone-orders/internal/domain"
)

var ErrAddressRequired = errors.New("delivery address required")

type CheckoutService struct {
	orders    OrderRepository
	profiles  ProfileRepository
	publisher OrderPublisher
	qr        QRGenerator
}

func NewCheckoutService(orders OrderRepository, profiles ProfileRepository, publisher OrderPublisher, qr QRGenerator) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		profiles:  profiles,
		publisher: publisher,
		qr:        qr,
	}
}

// Submit turns the session's cart into a persisted order. The cart is
// frozen for the duration of the call: on success it is cleared, on any
// failure it is released untouched so the user can retry.
func (s *CheckoutService) Submit(ctx context.Context, cart *CartService, userID, address string) (*domain.Order, error) {
	snapshot, err := cart.BeginCheckout()
	if err != nil {
		return nil, err
	}

	resolvedAddress, err := s.resolveAddress(snapshot.Mode, userID, address)
	if err != nil {
		cart.FinishCheckout(ctx, false)
		return nil, err
	}

	order := &domain.Order{
		UserID:       userID,
		Status:       domain.OrderStatusPending,
		Items:        snapshot.Lines,
		Total:        domain.Round2(snapshot.Total()),
		DeliveryType: snapshot.Mode,
		Address:      resolvedAddress,
	}

	if err := s.orders.CreateOrder(order); err != nil {
		cart.FinishCheckout(ctx, false)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.attachQRCode(order)
	s.publish(ctx, order)

	cart.FinishCheckout(ctx, true)
	return order, nil
}

// resolveAddress enforces the delivery contract: a delivery order needs an
// address, either submitted with the checkout (and saved to the profile) or
// already on file. Dine-in needs none.
func (s *CheckoutService) resolveAddress(mode domain.FulfillmentMode, userID, address string) (string, error) {
	if mode != domain.FulfillmentDelivery {
		return "", nil
	}

	if address != "" {
		if err := s.profiles.UpsertAddress(userID, address); err != nil {
			return "", fmt.Errorf("failed to save address: %w", err)
		}
		return address, nil
	}

	saved, err := s.profiles.GetAddress(userID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch address: %w", err)
	}
	if saved == "" {
		return "", ErrAddressRequired
	}
	return saved, nil
}

func (s *CheckoutService) attachQRCode(order *domain.Order) {
	if s.qr == nil {
		return
	}
	qr, err := s.qr.Generate(order.ID)
	if err != nil {
		log.Printf("WARNING: failed to generate QR code for order %d: %v", order.ID, err)
		return
	}
	if err := s.orders.SaveQRCode(order.ID, qr); err != nil {
		log.Printf("WARNING: failed to store QR code for order %d: %v", order.ID, err)
	}
}

// publish is best effort, like every downstream notification here: a broker
// outage must not fail a checkout that is already persisted.
func (s *CheckoutService) publish(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}

	items := make([]domain.OrderEventItem, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, domain.OrderEventItem{
			ID:       line.ID,
			Name:     line.Name,
			Quantity: line.Quantity,
		})
	}

	err := s.publisher.PublishOrder(ctx, domain.OrderEvent{
		Type:         "order_created",
		OrderID:      order.ID,
		UserID:       order.UserID,
		Total:        order.Total,
		DeliveryType: order.DeliveryType,
		Items:        items,
		Timestamp:    time.Now(),
	})
	if err != nil {
		log.Printf("WARNING: failed to publish order %d: %v", order.ID, err)
	}
}
