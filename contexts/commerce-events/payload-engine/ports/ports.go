package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// LinePrices groups the taxed prices the pricing engine derives for one
// order line.
type LinePrices struct {
	PriceWithDiscounts domain.TaxedMoney
	UndiscountedPrice  domain.TaxedMoney
}

// PricingEngine computes taxed prices and rates for an order. Errors are
// fatal to the composer call: a payload with wrong monetary figures is
// strictly worse than no payload.
type PricingEngine interface {
	OrderShipping(ctx context.Context, order *entities.Order) (domain.TaxedMoney, error)
	OrderShippingTaxRate(ctx context.Context, order *entities.Order) (decimal.Decimal, error)
	OrderTotal(ctx context.Context, order *entities.Order) (domain.TaxedMoney, error)
	OrderUndiscountedTotal(ctx context.Context, order *entities.Order) (domain.TaxedMoney, error)
	OrderLineUnit(ctx context.Context, order *entities.Order, line *entities.OrderLine) (LinePrices, error)
	OrderLineTotal(ctx context.Context, order *entities.Order, line *entities.OrderLine) (LinePrices, error)
	OrderLineTaxRate(ctx context.Context, order *entities.Order, line *entities.OrderLine) (decimal.Decimal, error)
}

// IDEncoder turns (entity type name, numeric key) into the opaque stable id
// exposed on payloads. The scheme is a black box to this engine.
type IDEncoder interface {
	Encode(typeName string, id int64) string
}

// Anonymizer strips personally-identifying data before sample payloads are
// produced. Implementations return copies; the input is never mutated.
type Anonymizer interface {
	AnonymizeOrder(order *entities.Order) *entities.Order
	AnonymizeCheckout(checkout *entities.Checkout) *entities.Checkout
	FakeUser() *entities.User
}

type Clock interface {
	Now() time.Time
}

// OrderSampleFilter narrows the random order pick for sample payloads.
// Empty fields match any order.
type OrderSampleFilter struct {
	Status            string
	ChargeStatus      string
	FulfillmentStatus string
}

// SampleRepository picks any persisted entity matching an event's filter.
// Selection is contractually non-deterministic; absence is signalled with
// domain/errors.ErrNotFound so the caller can yield no document.
type SampleRepository interface {
	RandomOrder(ctx context.Context, filter OrderSampleFilter) (*entities.Order, error)
	RandomProduct(ctx context.Context) (*entities.Product, error)
	RandomCheckout(ctx context.Context) (*entities.Checkout, error)
	RandomFulfillment(ctx context.Context) (*entities.Fulfillment, error)
	RandomPage(ctx context.Context) (*entities.Page, error)
}

type WarehouseFinder interface {
	WarehouseForCountry(ctx context.Context, countryCode string) (*entities.Warehouse, error)
}
