package storage

import (
	"database/sql"

	"damone-orders/internal/domain"
)

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(`
		INSERT INTO users (id, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, user.ID, user.Email, user.PasswordHash, user.IsAdmin).Scan(&user.CreatedAt)
}

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, email, password_hash, is_admin, created_at
		FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetUser(id string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(`
		SELECT id, email, password_hash, is_admin, created_at
		FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAddress returns the saved delivery address, or "" when the user has no
// profile row yet.
func (r *PostgresRepository) GetAddress(userID string) (string, error) {
	var address string
	err := r.DB.QueryRow("SELECT address FROM profiles WHERE id = $1", userID).Scan(&address)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return address, nil
}

func (r *PostgresRepository) UpsertAddress(userID, address string) error {
	_, err := r.DB.Exec(`
		INSERT INTO profiles (id, address, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET address = $2, updated_at = now()
	`, userID, address)
	return err
}
