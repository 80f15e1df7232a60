package entities

import (
	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
)

// ShippingMethod is the method assigned to an order or checkout.
type ShippingMethod struct {
	ID          int64
	Name        string
	Type        string
	Currency    string
	PriceAmount decimal.Decimal
}

// ShippingMethodData is a candidate method offered to the exclusion filter.
// GraphqlID is already opaque; it is not re-encoded.
type ShippingMethodData struct {
	GraphqlID           string
	Name                string
	Price               domain.Money
	MaximumOrderWeight  *decimal.Decimal
	MinimumOrderWeight  *decimal.Decimal
	MaximumDeliveryDays *int
	MinimumDeliveryDays *int
}
