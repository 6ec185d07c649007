package service

import (
	"context"
	"sync"
)

// CartSessions hands out the session-scoped cart managers. Each session id
// maps to exactly one live CartService, so the checkout lock holds across
// requests from the same session.
type CartSessions struct {
	mu       sync.Mutex
	repo     CartRepository
	notifier Notifier
	active   map[string]*CartService
}

func NewCartSessions(repo CartRepository, notifier Notifier) *CartSessions {
	return &CartSessions{
		repo:     repo,
		notifier: notifier,
		active:   make(map[string]*CartService),
	}
}

// Get returns the session's cart manager, rehydrating it from the
// repository on first touch.
func (s *CartSessions) Get(ctx context.Context, sessionID, lang string) *CartService {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.active[sessionID]; ok {
		return cart
	}
	cart := NewCartService(ctx, s.repo, s.notifier, sessionID, lang)
	s.active[sessionID] = cart
	return cart
}

// Release drops the in-memory manager; the persisted snapshot stays, so the
// session rehydrates on its next visit.
func (s *CartSessions) Release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, sessionID)
}
