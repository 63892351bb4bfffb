package session

import (
	"testing"

	"storefront/internal/models"
)

func testProduct(id int, price float64) models.Product {
	return models.Product{ID: id, Name: "Producto", Price: price, Images: []string{"img"}}
}

func testSaleProduct(id int, price, discount float64) models.Product {
	p := testProduct(id, price)
	p.DiscountPrice = &discount
	return p
}

func newTestSession() *Session {
	return newSession("test")
}

func TestAddToCartMergesSameProduct(t *testing.T) {
	s := newTestSession()
	p := testProduct(1, 500)

	s.AddToCart(p, 2)
	s.AddToCart(p, 3)
	s.AddToCart(p, 1)

	items := s.CartItems()
	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	if items[0].Quantity != 6 {
		t.Fatalf("expected merged quantity 6, got %d", items[0].Quantity)
	}
}

func TestCartCountSumsQuantitiesNotLines(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 2)
	s.AddToCart(testProduct(2, 300), 3)

	if got := s.CartCount(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestUpdateQuantityNeverStoresNonPositive(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 2)

	for _, q := range []int{0, -3} {
		s.UpdateQuantity(1, q)
		items := s.CartItems()
		if items[0].Quantity < 1 {
			t.Fatalf("quantity %d stored after update with %d", items[0].Quantity, q)
		}
	}

	s.UpdateQuantity(1, 7)
	if items := s.CartItems(); items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 1)
	s.UpdateQuantity(99, 5)

	if count := s.CartCount(); count != 1 {
		t.Fatalf("expected count 1, got %d", count)
	}
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 1)
	s.AddToCart(testProduct(2, 300), 1)

	s.RemoveFromCart(1)
	if items := s.CartItems(); len(items) != 1 || items[0].Product.ID != 2 {
		t.Fatalf("unexpected cart after removal: %v", items)
	}

	// Absent id is a no-op.
	s.RemoveFromCart(99)
	if len(s.CartItems()) != 1 {
		t.Fatal("removal of absent id changed the cart")
	}
}

func TestClearCartIdempotentAndDropsCoupon(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 2)
	s.SetCoupon("BIENVENIDA10", 0.10)

	s.ClearCart()
	s.ClearCart()

	if s.CartCount() != 0 {
		t.Fatal("expected empty cart")
	}
	if code, rate := s.Coupon(); code != "" || rate != 0 {
		t.Fatalf("expected coupon cleared, got %q %v", code, rate)
	}
}

func TestSubtotalUsesEffectivePrice(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 2)
	s.AddToCart(testSaleProduct(2, 400, 300), 1)

	if got := s.Subtotal(); got != 1300 {
		t.Fatalf("expected subtotal 1300, got %v", got)
	}
}

func TestCartItemsIsASnapshot(t *testing.T) {
	s := newTestSession()
	s.AddToCart(testProduct(1, 500), 2)

	snapshot := s.CartItems()
	s.ClearCart()

	if len(snapshot) != 1 || snapshot[0].Quantity != 2 {
		t.Fatalf("snapshot changed after clear: %v", snapshot)
	}
}

func TestToggleFavoriteIsInvolution(t *testing.T) {
	s := newTestSession()

	if !s.ToggleFavorite(5) {
		t.Fatal("first toggle should add")
	}
	if !s.IsFavorite(5) {
		t.Fatal("expected membership after first toggle")
	}
	if s.ToggleFavorite(5) {
		t.Fatal("second toggle should remove")
	}
	if s.IsFavorite(5) || s.FavoritesCount() != 0 {
		t.Fatal("expected original state after double toggle")
	}
}

func TestFavoritesCountIsSetSize(t *testing.T) {
	s := newTestSession()
	s.ToggleFavorite(1)
	s.ToggleFavorite(2)
	s.ToggleFavorite(1)
	s.ToggleFavorite(3)

	if got := s.FavoritesCount(); got != 2 {
		t.Fatalf("expected 2 favorites, got %d", got)
	}
}
