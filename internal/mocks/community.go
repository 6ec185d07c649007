package mocks

import (
	"github.com/stretchr/testify/mock"

	"damone-orders/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func NewCommentRepository(t testingT) *CommentRepository {
	m := &CommentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CommentRepository) InsertComment(comment *domain.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *CommentRepository) ListComments() ([]domain.Comment, error) {
	args := m.Called()
	comments, _ := args.Get(0).([]domain.Comment)
	return comments, args.Error(1)
}

type CateringRepository struct {
	mock.Mock
}

func NewCateringRepository(t testingT) *CateringRepository {
	m := &CateringRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CateringRepository) InsertInquiry(inquiry *domain.CateringInquiry) error {
	return m.Called(inquiry).Error(0)
}

func (m *CateringRepository) ListInquiries() ([]domain.CateringInquiry, error) {
	args := m.Called()
	inquiries, _ := args.Get(0).([]domain.CateringInquiry)
	return inquiries, args.Error(1)
}
