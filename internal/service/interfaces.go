package service

import (
	"context"

	"damone-orders/internal/domain"
)

// CartRepository is the swappable persistence backend for in-progress
// carts. Load returns (nil, nil) when no snapshot exists.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Purge(ctx context.Context, sessionID string) error
}

// Notifier delivers the transient, user-facing acknowledgments the cart
// flow emits (already localized by the caller).
type Notifier interface {
	Notify(title, message string)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID int) (*domain.Order, error)
	ListUserOrders(userID string) ([]domain.Order, error)
	ListOrders(status string) ([]domain.Order, error)
	UpdateOrderStatus(orderID int, status string) (int64, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUser(id string) (*domain.User, error)
}

type ProfileRepository interface {
	GetAddress(userID string) (string, error)
	UpsertAddress(userID, address string) error
}

type MenuRepository interface {
	CreateMenuItem(item *domain.MenuItem) error
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id string) (*domain.MenuItem, error)
	UpdateMenuItem(item *domain.MenuItem) (int64, error)
	DeleteMenuItem(id string) (int64, error)
}

type CommentRepository interface {
	InsertComment(comment *domain.Comment) error
	ListComments() ([]domain.Comment, error)
}

type CateringRepository interface {
	InsertInquiry(inquiry *domain.CateringInquiry) error
	ListInquiries() ([]domain.CateringInquiry, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

// AnalyticsReader serves the admin summary; AnalyticsWriter is its
// worker-side counterpart fed by the order event consumer.
type AnalyticsReader interface {
	Summary(ctx context.Context, date string, topN int) (*domain.DailySummary, error)
}

type AnalyticsWriter interface {
	ApplyOrder(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}
