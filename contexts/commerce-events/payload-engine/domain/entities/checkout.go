package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
)

// Checkout is identified by its token rather than a numeric key; the token
// is used verbatim as the payload id.
type Checkout struct {
	Token           uuid.UUID
	Status          string
	LastChange      time.Time
	Email           string
	Quantity        int
	Currency        string
	DiscountAmount  decimal.Decimal
	DiscountName    *string
	LanguageCode    string
	PrivateMetadata map[string]any
	Metadata        map[string]any
	CreatedAt       time.Time
	User            *User
	Channel         *Channel
	BillingAddress  *Address
	ShippingAddress *Address
	ShippingMethod  *ShippingMethod
	CollectionPoint *Warehouse
	Lines           []*CheckoutLine

	Total         domain.TaxedMoney
	ShippingPrice domain.TaxedMoney
}

type CheckoutLine struct {
	ID       int64
	Quantity int
	Variant  *ProductVariant

	// Unit price for the checkout's channel, discounts applied.
	BasePriceAmount decimal.Decimal
}
