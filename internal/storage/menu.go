package storage

import (
	"damone-orders/internal/domain"
)

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	_, err := r.DB.Exec(`
		INSERT INTO menu_items (id, name, price, description, image, category)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, item.ID, item.Name, item.Price.Float64(), item.Description, item.Image, item.Category)
	return err
}

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, COALESCE(description, ''), COALESCE(image, ''), COALESCE(category, '')
		FROM menu_items
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		var price float64
		if err := rows.Scan(&item.ID, &item.Name, &price, &item.Description, &item.Image, &item.Category); err != nil {
			continue
		}
		item.Price = domain.Price(price)
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetMenuItem(id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var price float64
	err := r.DB.QueryRow(`
		SELECT id, name, price, COALESCE(description, ''), COALESCE(image, ''), COALESCE(category, '')
		FROM menu_items WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &price, &item.Description, &item.Image, &item.Category)
	if err != nil {
		return nil, err
	}
	item.Price = domain.Price(price)
	return &item, nil
}

func (r *PostgresRepository) UpdateMenuItem(item *domain.MenuItem) (int64, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, price = $2, description = $3, image = $4, category = $5
		WHERE id = $6
	`, item.Name, item.Price.Float64(), item.Description, item.Image, item.Category, item.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteMenuItem(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
