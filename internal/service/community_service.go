package service

import (
	"errors"
	"strings"
	"time"

	"damone-orders/internal/domain"
)

var (
	ErrEmptyComment      = errors.New("comment text is empty")
	ErrMissingContact    = errors.New("name and email are required")
	ErrPastEventDate     = errors.New("event date must be in the future")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
)

// CommentService backs the public comment board.
type CommentService struct {
	repo CommentRepository
}

func NewCommentService(repo CommentRepository) *CommentService {
	return &CommentService{repo: repo}
}

func (s *CommentService) Post(author, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "Anonymous"
	}

	comment := &domain.Comment{Author: author, Text: text}
	if err := s.repo.InsertComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) List() ([]domain.Comment, error) {
	return s.repo.ListComments()
}

// CateringService records catering inquiries for the events team.
type CateringService struct {
	repo CateringRepository
}

func NewCateringService(repo CateringRepository) *CateringService {
	return &CateringService{repo: repo}
}

func (s *CateringService) Submit(inquiry *domain.CateringInquiry) error {
	if strings.TrimSpace(inquiry.Name) == "" || strings.TrimSpace(inquiry.Email) == "" {
		return ErrMissingContact
	}
	if inquiry.GuestCount <= 0 {
		return ErrInvalidGuestCount
	}
	if !inquiry.EventDate.After(time.Now()) {
		return ErrPastEventDate
	}
	return s.repo.InsertInquiry(inquiry)
}

func (s *CateringService) List() ([]domain.CateringInquiry, error) {
	return s.repo.ListInquiries()
}
