package checkout

import (
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"storefront/internal/models"
)

var orderIDNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatal("order id node:", err)
	}
	orderIDNode = node
}

// NewOrderID mints a time-ordered unique order id with the storefront's MX
// prefix.
func NewOrderID() string {
	return "MX" + orderIDNode.Generate().String()
}

// AssembleOrder freezes a validated submission into an immutable order.
// items must already be a snapshot copy; the caller clears the live cart
// right after and the order must not notice.
func AssembleOrder(items []models.CartItem, f Form, totals Totals, now time.Time) models.Order {
	return models.Order{
		OrderID:      NewOrderID(),
		Items:        items,
		Subtotal:     totals.Subtotal,
		Discount:     totals.Discount,
		ShippingCost: totals.ShippingCost,
		Total:        totals.Total,
		ShippingAddress: models.ShippingAddress{
			Name:    strings.TrimSpace(f.Name),
			Address: strings.TrimSpace(f.Address),
			City:    strings.TrimSpace(f.City),
			State:   strings.TrimSpace(f.State),
			Zip:     strings.TrimSpace(f.Zip),
			Phone:   stripSpaces(f.Phone),
		},
		PaymentMethod: f.PaymentMethod,
		CreatedAt:     now,
	}
}
