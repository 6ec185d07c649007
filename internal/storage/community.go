package storage

import (
	"damone-orders/internal/domain"
)

func (r *PostgresRepository) InsertComment(comment *domain.Comment) error {
	return r.DB.QueryRow(`
		INSERT INTO comments (author, body)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, comment.Author, comment.Text).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *PostgresRepository) ListComments() ([]domain.Comment, error) {
	rows, err := r.DB.Query(`
		SELECT id, author, body, created_at
		FROM comments
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.ID, &comment.Author, &comment.Text, &comment.CreatedAt); err != nil {
			continue
		}
		comments = append(comments, comment)
	}
	return comments, nil
}

func (r *PostgresRepository) InsertInquiry(inquiry *domain.CateringInquiry) error {
	return r.DB.QueryRow(`
		INSERT INTO catering_inquiries (name, email, phone, event_date, guest_count, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.EventDate,
		inquiry.GuestCount, inquiry.Message).Scan(&inquiry.ID, &inquiry.CreatedAt)
}

func (r *PostgresRepository) ListInquiries() ([]domain.CateringInquiry, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, email, phone, event_date, guest_count, message, created_at
		FROM catering_inquiries
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []domain.CateringInquiry{}
	for rows.Next() {
		var inquiry domain.CateringInquiry
		if err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone,
			&inquiry.EventDate, &inquiry.GuestCount, &inquiry.Message, &inquiry.CreatedAt); err != nil {
			continue
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, nil
}
