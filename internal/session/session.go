package session

import (
	"sync"
	"time"

	"storefront/internal/currency"
	"storefront/internal/models"
)

// Session holds one shopper's volatile state. Nothing here survives a
// process restart; the spec's storefront keeps all of this in browser
// memory and loses it on reload, and the server rendition keeps the same
// lifetime semantics.
//
// Handlers run on concurrent goroutines, so every accessor takes the
// session mutex even though each shopper normally issues one request at a
// time.
type Session struct {
	ID string

	mu        sync.Mutex
	cart      []models.CartItem
	favorites map[int]struct{}
	nav       navState

	couponCode   string
	discountRate float64

	display currency.Code

	chat     []models.Message
	chatBusy bool
	chatGen  uint64

	lastSeen time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		favorites: make(map[int]struct{}),
		nav:       navState{page: models.PageHome},
		display:   currency.MXN,
		lastSeen:  time.Now(),
	}
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

/* =========================
   CART
========================= */

// AddToCart merges the product into the cart: an existing line for the same
// product id gets its quantity incremented, otherwise a new line is
// appended. Quantities below 1 are treated as 1. Stock is advisory and not
// checked.
func (s *Session) AddToCart(p models.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if quantity < 1 {
		quantity = 1
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity += quantity
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{Product: p, Quantity: quantity})
}

// UpdateQuantity sets the quantity of an existing line, clamping to 1 so a
// line can never hold a non-positive quantity. Unknown ids are a no-op.
func (s *Session) UpdateQuantity(productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if quantity < 1 {
		quantity = 1
	}
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			return
		}
	}
}

// RemoveFromCart deletes the line for productID. No-op when absent.
func (s *Session) RemoveFromCart(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// ClearCart empties the cart and drops any applied coupon. Idempotent.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cart = nil
	s.couponCode = ""
	s.discountRate = 0
}

// CartItems returns a snapshot copy of the cart lines. Mutating the result
// never affects the live cart, which is what lets an order keep its items
// after the cart is cleared.
func (s *Session) CartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartCount is the sum of line quantities, not the number of lines.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// Subtotal sums effective price times quantity across all lines.
func (s *Session) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.cart {
		total += item.LineTotal()
	}
	return total
}

/* =========================
   COUPON
========================= */

// SetCoupon records the active discount. Re-applying replaces rather than
// stacks; at most one discount is active at a time.
func (s *Session) SetCoupon(code string, rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.couponCode = code
	s.discountRate = rate
}

// Coupon returns the active coupon code and discount rate.
func (s *Session) Coupon() (string, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.couponCode, s.discountRate
}

/* =========================
   FAVORITES
========================= */

// ToggleFavorite adds the id when absent and removes it when present,
// returning the new membership.
func (s *Session) ToggleFavorite(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if _, ok := s.favorites[productID]; ok {
		delete(s.favorites, productID)
		return false
	}
	s.favorites[productID] = struct{}{}
	return true
}

// IsFavorite is a pure membership test.
func (s *Session) IsFavorite(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.favorites[productID]
	return ok
}

// FavoriteIDs returns the favorited product ids in unspecified order.
func (s *Session) FavoriteIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	return ids
}

// FavoritesCount is the set size.
func (s *Session) FavoritesCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favorites)
}

/* =========================
   DISPLAY CURRENCY
========================= */

// DisplayCurrency returns the shopper's selected display currency.
func (s *Session) DisplayCurrency() currency.Code {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}

// SetDisplayCurrency changes the display currency for this session.
func (s *Session) SetDisplayCurrency(code currency.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.display = code
}
