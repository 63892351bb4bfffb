package session

import "storefront/internal/models"

// navState is the navigation controller's internal state: the current page
// plus the references pages depend on. The public view of it is Location,
// which only exposes the data the current page actually needs.
type navState struct {
	page      models.Page
	product   *models.Product
	category  string
	query     string
	lastOrder *models.Order
}

// Location describes where the shopper is and exactly the payload that page
// renders with. Fields for other pages are left zero, so an inconsistent
// pair like page=product with no product cannot be observed.
type Location struct {
	Page     models.Page     `json:"page"`
	Product  *models.Product `json:"product,omitempty"`  // product page
	Category string          `json:"category,omitempty"` // category page
	Query    string          `json:"query,omitempty"`    // category page via search
	Order    *models.Order   `json:"order,omitempty"`    // confirmation page
}

// Navigate moves to page and returns the resulting location. The product
// and confirmation pages require their payload; when it is missing the
// shopper lands on home instead. That fallback is a recovery path (direct
// entry, stale token), never the result of normal in-app navigation.
func (s *Session) Navigate(page models.Page) Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	switch page {
	case models.PageProduct:
		if s.nav.product == nil {
			page = models.PageHome
		}
	case models.PageConfirmation:
		if s.nav.lastOrder == nil {
			page = models.PageHome
		}
	}
	s.nav.page = page
	return s.locationLocked()
}

// SelectProduct records the selection and moves to the product page.
func (s *Session) SelectProduct(p models.Product) Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.nav.product = &p
	s.nav.page = models.PageProduct
	return s.locationLocked()
}

// SelectCategory activates a category filter and moves to the category
// page. Any active search query is cleared: category and search are
// mutually exclusive, last writer wins.
func (s *Session) SelectCategory(category string) Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.nav.category = category
	s.nav.query = ""
	s.nav.page = models.PageCategory
	return s.locationLocked()
}

// SearchCatalog activates a free-text search and moves to the category
// page, resetting the category filter to all products.
func (s *Session) SearchCatalog(query string) Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.nav.query = query
	s.nav.category = "all"
	s.nav.page = models.PageCategory
	return s.locationLocked()
}

// PlaceOrder stores the order as the session's last order and moves to the
// confirmation page.
func (s *Session) PlaceOrder(order models.Order) Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.nav.lastOrder = &order
	s.nav.page = models.PageConfirmation
	return s.locationLocked()
}

// Location returns the current page and its payload.
func (s *Session) Location() Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locationLocked()
}

// LastOrder returns the most recent order, if any.
func (s *Session) LastOrder() *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav.lastOrder
}

func (s *Session) locationLocked() Location {
	loc := Location{Page: s.nav.page}
	switch s.nav.page {
	case models.PageProduct:
		loc.Product = s.nav.product
	case models.PageCategory:
		loc.Category = s.nav.category
		loc.Query = s.nav.query
	case models.PageConfirmation:
		loc.Order = s.nav.lastOrder
	}
	return loc
}
