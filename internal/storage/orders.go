package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"damone-orders/internal/domain"
)

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	return r.DB.QueryRow(`
		INSERT INTO orders (user_id, status, items, total, delivery_type, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, order.UserID, order.Status, items, order.Total, string(order.DeliveryType), order.Address).
		Scan(&order.ID, &order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	var items []byte
	var deliveryType string

	err := r.DB.QueryRow(`
		SELECT id, user_id, status, items, total, delivery_type, address, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.UserID, &order.Status, &items,
		&order.Total, &deliveryType, &order.Address, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	order.DeliveryType = domain.FulfillmentMode(deliveryType)
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order %d items: %w", order.ID, err)
	}
	return &order, nil
}

func (r *PostgresRepository) ListUserOrders(userID string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, status, items, total, delivery_type, address, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListOrders returns all orders, optionally filtered by status. An empty
// status means no filter.
func (r *PostgresRepository) ListOrders(status string) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, status, items, total, delivery_type, address, created_at
		FROM orders`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		var items []byte
		var deliveryType string

		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &items,
			&order.Total, &deliveryType, &order.Address, &order.CreatedAt); err != nil {
			continue
		}

		order.DeliveryType = domain.FulfillmentMode(deliveryType)
		if err := json.Unmarshal(items, &order.Items); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}
