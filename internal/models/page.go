package models

// Page identifies one of the storefront's views.
type Page string

const (
	PageHome         Page = "home"
	PageCategory     Page = "category"
	PageProduct      Page = "product"
	PageCart         Page = "cart"
	PageCheckout     Page = "checkout"
	PageConfirmation Page = "confirmation"
	PageAbout        Page = "about"
	PageCareers      Page = "careers"
	PagePress        Page = "press"
	PageHelp         Page = "help"
	PageHowToBuy     Page = "how-to-buy"
	PageShipping     Page = "shipping"
	PageReturns      Page = "returns"
	PageWishlist     Page = "wishlist"
)

var pages = map[Page]bool{
	PageHome:         true,
	PageCategory:     true,
	PageProduct:      true,
	PageCart:         true,
	PageCheckout:     true,
	PageConfirmation: true,
	PageAbout:        true,
	PageCareers:      true,
	PagePress:        true,
	PageHelp:         true,
	PageHowToBuy:     true,
	PageShipping:     true,
	PageReturns:      true,
	PageWishlist:     true,
}

// ValidPage reports whether p names a known view.
func ValidPage(p Page) bool {
	return pages[p]
}
