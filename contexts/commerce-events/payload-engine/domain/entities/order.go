package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
)

const (
	OrderStatusDraft       = "draft"
	OrderStatusUnfulfilled = "unfulfilled"
	OrderStatusFulfilled   = "fulfilled"
	OrderStatusCanceled    = "canceled"

	FulfillmentStatusFulfilled = "fulfilled"
	FulfillmentStatusCanceled  = "canceled"

	ChargeStatusNotCharged       = "not-charged"
	ChargeStatusPartiallyCharged = "partially-charged"
	ChargeStatusFullyCharged     = "fully-charged"
	ChargeStatusFullyRefunded    = "fully-refunded"
)

type Order struct {
	ID                  int64
	Status              string
	Origin              string
	ShippingMethodName  *string
	CollectionPointName *string
	WeightGrams         decimal.Decimal
	LanguageCode        string
	PrivateMetadata     map[string]any
	Metadata            map[string]any
	Currency            string
	CreatedAt           time.Time
	OriginalID          *int64
	UserEmail           string
	User                *User
	Channel             *Channel
	ShippingMethod      *ShippingMethod
	ShippingAddress     *Address
	BillingAddress      *Address
	CollectionPoint     *Warehouse
	Lines               []*OrderLine
	Fulfillments        []*Fulfillment
	Payments            []*Payment
	Discounts           []*OrderDiscount

	// Prices persisted at checkout completion; the without-taxes regime and
	// stored-price adapters read these instead of recalculating.
	ShippingPrice     domain.TaxedMoney
	Total             domain.TaxedMoney
	UndiscountedTotal domain.TaxedMoney
}

// CustomerEmail prefers the account email over the one captured on the
// order for guest checkouts.
func (o *Order) CustomerEmail() string {
	if o.User != nil && o.User.Email != "" {
		return o.User.Email
	}
	return o.UserEmail
}

// Country is the destination country used to pick a warehouse.
func (o *Order) Country() string {
	if o.ShippingAddress != nil {
		return o.ShippingAddress.Country
	}
	if o.BillingAddress != nil {
		return o.BillingAddress.Country
	}
	return ""
}

type OrderLine struct {
	ID                    int64
	ProductName           string
	VariantName           string
	TranslatedProductName string
	TranslatedVariantName string
	ProductSKU            *string
	ProductVariantID      *int64
	Quantity              int
	Currency              string
	UnitDiscountAmount    decimal.Decimal
	UnitDiscountType      string
	UnitDiscountReason    *string
	SaleID                *string
	VoucherCode           *string
	Variant               *ProductVariant
	Allocations           []*Allocation

	UnitPrice              domain.TaxedMoney
	TotalPrice             domain.TaxedMoney
	UndiscountedUnitPrice  domain.TaxedMoney
	UndiscountedTotalPrice domain.TaxedMoney
}

// Allocation is stock reserved for an order line at one warehouse.
type Allocation struct {
	QuantityAllocated int
	WarehouseID       int64
}

type Fulfillment struct {
	ID                   int64
	Status               string
	TrackingNumber       string
	ShippingRefundAmount *decimal.Decimal
	TotalRefundAmount    *decimal.Decimal
	CreatedAt            time.Time
	Order                *Order
	Lines                []*FulfillmentLine
}

type FulfillmentLine struct {
	ID        int64
	Quantity  int
	OrderLine *OrderLine
	Stock     *Stock
}

type Payment struct {
	ID                 int64
	Gateway            string
	PaymentMethodType  string
	CCBrand            string
	IsActive           bool
	Partial            bool
	ChargeStatus       string
	PSPReference       string
	Total              decimal.Decimal
	CapturedAmount     decimal.Decimal
	Currency           string
	BillingEmail       string
	BillingFirstName   string
	BillingLastName    string
	BillingCompanyName string
	BillingAddress1    string
	BillingAddress2    string
	BillingCity        string
	BillingCityArea    string
	BillingPostalCode  string
	BillingCountryCode string
	BillingCountryArea string
	CreatedAt          time.Time
	ModifiedAt         time.Time
}

type OrderDiscount struct {
	ID             int64
	Type           string
	ValueType      string
	Value          decimal.Decimal
	AmountValue    decimal.Decimal
	Name           string
	TranslatedName *string
	Reason         *string
}
