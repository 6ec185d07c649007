package domain

import "time"

type FulfillmentMode string

const (
	FulfillmentUnset    FulfillmentMode = ""
	FulfillmentDelivery FulfillmentMode = "delivery"
	FulfillmentDineIn   FulfillmentMode = "dine-in"
)

// DeliveryFee is the flat surcharge applied when an order is delivered.
// Dine-in orders carry no surcharge.
const DeliveryFee = 2.50

func (m FulfillmentMode) Valid() bool {
	return m == FulfillmentDelivery || m == FulfillmentDineIn
}

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       Price  `json:"price"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Category    string `json:"category,omitempty"`
}

// OrderLine is one menu item plus the quantity of it in the current order.
// Quantity is always >= 1; a line decremented to zero is removed, never kept.
type OrderLine struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart is the in-progress order: insertion-ordered lines, at most one per
// menu item id, plus the chosen fulfillment mode. Totals are derived on
// every read and never stored.
type Cart struct {
	Lines []OrderLine     `json:"lines"`
	Mode  FulfillmentMode `json:"fulfillment_mode,omitempty"`
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Price.Float64() * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Total() float64 {
	total := c.Subtotal()
	if c.Mode == FulfillmentDelivery {
		total += DeliveryFee
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Clone returns a deep copy so a checkout snapshot cannot be mutated by
// later cart operations.
func (c *Cart) Clone() *Cart {
	lines := make([]OrderLine, len(c.Lines))
	copy(lines, c.Lines)
	return &Cart{Lines: lines, Mode: c.Mode}
}

const (
	OrderStatusPending    = "pending"
	OrderStatusPreparing  = "preparing"
	OrderStatusDelivering = "delivering"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivering,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int             `json:"id"`
	UserID       string          `json:"user_id"`
	Status       string          `json:"status"`
	Items        []OrderLine     `json:"items"`
	Total        float64         `json:"total"`
	DeliveryType FulfillmentMode `json:"delivery_type,omitempty"`
	Address      string          `json:"address,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Profile struct {
	UserID    string    `json:"id"`
	Address   string    `json:"address"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Comment struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CateringInquiry struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	EventDate  time.Time `json:"event_date"`
	GuestCount int       `json:"guest_count"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderEvent is the payload published to Kafka when a checkout succeeds and
// consumed by the aggregation worker.
type OrderEvent struct {
	Type         string           `json:"type"`
	OrderID      int              `json:"order_id"`
	UserID       string           `json:"user_id"`
	Total        float64          `json:"total"`
	DeliveryType FulfillmentMode  `json:"delivery_type,omitempty"`
	Items        []OrderEventItem `json:"items"`
	Timestamp    time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DailySummary is the admin dashboard view of the Redis aggregates
// maintained by the order worker.
type DailySummary struct {
	Date       string        `json:"date"`
	Revenue    float64       `json:"revenue"`
	OrderCount int           `json:"order_count"`
	TopItems   []PopularItem `json:"top_items"`
}

type PopularItem struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}
