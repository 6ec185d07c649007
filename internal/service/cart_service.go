package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"damone-orders/internal/domain"
	"damone-orders/internal/i18n"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidFulfillment = errors.New("unknown fulfillment mode")
	ErrModeUnset          = errors.New("fulfillment mode not selected")
	ErrCheckoutInFlight   = errors.New("checkout already in progress")
)

// CartService is the single source of truth for one session's in-progress
// order. All mutations persist the full snapshot before returning, and all
// derived values are recomputed on every read. Methods serialize through an
// internal mutex, so callers never interleave two mutations.
//
// A CartService must be built with NewCartService; using the zero value is
// a contract violation in the calling code and panics.
type CartService struct {
	mu        sync.Mutex
	sessionID string
	lang      string
	repo      CartRepository
	notifier  Notifier

	cart       *domain.Cart
	submitting bool
	snapshot   *domain.Cart
}

// NewCartService rehydrates the session's cart from the repository. A
// corrupt snapshot is logged and replaced by an empty cart; it is never a
// fatal error.
func NewCartService(ctx context.Context, repo CartRepository, notifier Notifier, sessionID, lang string) *CartService {
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLanguage
	}

	s := &CartService{
		sessionID: sessionID,
		lang:      lang,
		repo:      repo,
		notifier:  notifier,
		cart:      &domain.Cart{},
	}

	saved, err := repo.Load(ctx, sessionID)
	if err != nil {
		log.Printf("[cart] discarding unreadable snapshot for session %s: %v", sessionID, err)
		return s
	}
	if saved != nil {
		s.cart = saved
	}
	return s
}

func (s *CartService) mustInit() {
	if s.repo == nil {
		panic("cart service used before initialization")
	}
}

// AddItem merges the item into the cart: an existing line's quantity grows
// by one, otherwise a new line is appended. It fails only while a checkout
// is in flight.
func (s *CartService) AddItem(ctx context.Context, item domain.MenuItem) error {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrCheckoutInFlight
	}

	merged := false
	for i := range s.cart.Lines {
		if s.cart.Lines[i].ID == item.ID {
			s.cart.Lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Lines = append(s.cart.Lines, domain.OrderLine{MenuItem: item, Quantity: 1})
	}

	s.persist(ctx)
	s.notify(i18n.KeyItemAdded, item.Name+" "+i18n.T(s.lang, i18n.KeyAddedToOrder))
	return nil
}

// RemoveItem deletes the matching line. Absence is a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrCheckoutInFlight
	}

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ID == itemID {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return nil
}

func (s *CartService) IncreaseQuantity(ctx context.Context, itemID string) error {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrCheckoutInFlight
	}

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ID == itemID {
			s.cart.Lines[i].Quantity++
			s.persist(ctx)
			return nil
		}
	}
	return nil
}

// DecreaseQuantity drops the quantity by one; a line at quantity 1 is
// removed outright rather than kept at zero.
func (s *CartService) DecreaseQuantity(ctx context.Context, itemID string) error {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrCheckoutInFlight
	}

	for i := range s.cart.Lines {
		if s.cart.Lines[i].ID != itemID {
			continue
		}
		if s.cart.Lines[i].Quantity > 1 {
			s.cart.Lines[i].Quantity--
		} else {
			s.cart.Lines = append(s.cart.Lines[:i], s.cart.Lines[i+1:]...)
		}
		s.persist(ctx)
		return nil
	}
	return nil
}

// Clear empties the cart, resets the fulfillment mode, and purges the
// persisted snapshot.
func (s *CartService) Clear(ctx context.Context) error {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrCheckoutInFlight
	}

	s.clearLocked(ctx)
	return nil
}

func (s *CartService) clearLocked(ctx context.Context) {
	s.cart = &domain.Cart{}
	if err := s.repo.Purge(ctx, s.sessionID); err != nil {
		log.Printf("[cart] purge failed for session %s: %v", s.sessionID, err)
	}
}

// SetFulfillmentMode resolves delivery vs dine-in. Selecting a mode for an
// empty cart is rejected and surfaces a notification instead.
func (s *CartService) SetFulfillmentMode(ctx context.Context, mode domain.FulfillmentMode) error {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrCheckoutInFlight
	}
	if !mode.Valid() {
		return ErrInvalidFulfillment
	}
	if s.cart.Empty() {
		s.notify(i18n.KeyEmptyCart, i18n.T(s.lang, i18n.KeyAddItemsFirst))
		return ErrEmptyCart
	}

	s.cart.Mode = mode
	s.persist(ctx)
	return nil
}

func (s *CartService) TotalItemCount() int {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.TotalItems()
}

func (s *CartService) TotalPrice() float64 {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// Snapshot returns a copy of the current cart for rendering.
func (s *CartService) Snapshot() *domain.Cart {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// BeginCheckout freezes the cart for submission and returns the frozen
// copy. Until FinishCheckout is called every mutation fails with
// ErrCheckoutInFlight, so a line added mid-submission can never be half in
// and half out of the persisted order.
func (s *CartService) BeginCheckout() (*domain.Cart, error) {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return nil, ErrCheckoutInFlight
	}
	if s.cart.Empty() {
		return nil, ErrEmptyCart
	}
	if !s.cart.Mode.Valid() {
		return nil, ErrModeUnset
	}

	s.submitting = true
	s.snapshot = s.cart.Clone()
	return s.snapshot, nil
}

// FinishCheckout releases the submission lock. On success the cart is
// cleared and its snapshot purged; on failure the cart is left untouched so
// the user can retry.
func (s *CartService) FinishCheckout(ctx context.Context, success bool) {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.submitting {
		return
	}
	s.submitting = false
	s.snapshot = nil
	if success {
		s.clearLocked(ctx)
	}
}

func (s *CartService) Language() string {
	s.mustInit()
	return s.lang
}

// persist writes the full snapshot after every mutation. Failures are
// logged, never propagated: losing durability must not break the order the
// user is building in memory.
func (s *CartService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.sessionID, s.cart); err != nil {
		log.Printf("[cart] persist failed for session %s: %v", s.sessionID, err)
	}
}

func (s *CartService) notify(titleKey, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(i18n.T(s.lang, titleKey), message)
}
