package memory

import (
	"context"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

// StoredPricing is a pricing engine that trusts the prices persisted on the
// order instead of recalculating them. It suits environments without a tax
// provider, and tests.
type StoredPricing struct{}

func NewStoredPricing() StoredPricing { return StoredPricing{} }

func (StoredPricing) OrderShipping(_ context.Context, order *entities.Order) (domain.TaxedMoney, error) {
	return order.ShippingPrice, nil
}

func (StoredPricing) OrderShippingTaxRate(_ context.Context, order *entities.Order) (decimal.Decimal, error) {
	return taxRate(order.ShippingPrice), nil
}

func (StoredPricing) OrderTotal(_ context.Context, order *entities.Order) (domain.TaxedMoney, error) {
	return order.Total, nil
}

func (StoredPricing) OrderUndiscountedTotal(_ context.Context, order *entities.Order) (domain.TaxedMoney, error) {
	return order.UndiscountedTotal, nil
}

func (StoredPricing) OrderLineUnit(_ context.Context, _ *entities.Order, line *entities.OrderLine) (ports.LinePrices, error) {
	return ports.LinePrices{
		PriceWithDiscounts: line.UnitPrice,
		UndiscountedPrice:  line.UndiscountedUnitPrice,
	}, nil
}

func (StoredPricing) OrderLineTotal(_ context.Context, _ *entities.Order, line *entities.OrderLine) (ports.LinePrices, error) {
	return ports.LinePrices{
		PriceWithDiscounts: line.TotalPrice,
		UndiscountedPrice:  line.UndiscountedTotalPrice,
	}, nil
}

func (StoredPricing) OrderLineTaxRate(_ context.Context, _ *entities.Order, line *entities.OrderLine) (decimal.Decimal, error) {
	return taxRate(line.UnitPrice), nil
}

// taxRate derives gross/net - 1 from a stored price. A zero net reads as an
// untaxed price.
func taxRate(price domain.TaxedMoney) decimal.Decimal {
	if price.Net.IsZero() {
		return decimal.Zero
	}
	return price.Gross.DivRound(price.Net, 4).Sub(decimal.NewFromInt(1))
}
