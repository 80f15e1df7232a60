package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

// plainEncoder keeps ids readable in assertions.
type plainEncoder struct{}

func (plainEncoder) Encode(typeName string, id int64) string {
	return fmt.Sprintf("%s:%d", typeName, id)
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

// storedPrices answers every pricing call from the prices persisted on the
// order, so tests control the figures entirely through fixtures.
type storedPrices struct{}

func (storedPrices) OrderShipping(_ context.Context, o *entities.Order) (domain.TaxedMoney, error) {
	return o.ShippingPrice, nil
}

func (storedPrices) OrderShippingTaxRate(_ context.Context, _ *entities.Order) (decimal.Decimal, error) {
	return decimal.RequireFromString("0.2"), nil
}

func (storedPrices) OrderTotal(_ context.Context, o *entities.Order) (domain.TaxedMoney, error) {
	return o.Total, nil
}

func (storedPrices) OrderUndiscountedTotal(_ context.Context, o *entities.Order) (domain.TaxedMoney, error) {
	return o.UndiscountedTotal, nil
}

func (storedPrices) OrderLineUnit(_ context.Context, _ *entities.Order, l *entities.OrderLine) (ports.LinePrices, error) {
	return ports.LinePrices{PriceWithDiscounts: l.UnitPrice, UndiscountedPrice: l.UndiscountedUnitPrice}, nil
}

func (storedPrices) OrderLineTotal(_ context.Context, _ *entities.Order, l *entities.OrderLine) (ports.LinePrices, error) {
	return ports.LinePrices{PriceWithDiscounts: l.TotalPrice, UndiscountedPrice: l.UndiscountedTotalPrice}, nil
}

func (storedPrices) OrderLineTaxRate(_ context.Context, _ *entities.Order, _ *entities.OrderLine) (decimal.Decimal, error) {
	return decimal.RequireFromString("0.2"), nil
}

func testService() Service {
	return Service{
		IDs:                  plainEncoder{},
		Pricing:              storedPrices{},
		Clock:                fixedClock{at: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)},
		Version:              "3.12",
		PricesEnteredWithTax: true,
	}
}

func money(net, gross, currency string) domain.TaxedMoney {
	return domain.TaxedMoney{
		Net:      decimal.RequireFromString(net),
		Gross:    decimal.RequireFromString(gross),
		Currency: currency,
	}
}

func fixtureOrder() *entities.Order {
	sku := "SKU-1"
	variantID := int64(7)
	return &entities.Order{
		ID:           42,
		Status:       entities.OrderStatusUnfulfilled,
		Origin:       "checkout",
		WeightGrams:  decimal.RequireFromString("500"),
		LanguageCode: "en",
		Currency:     "USD",
		CreatedAt:    time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC),
		UserEmail:    "buyer@example.com",
		Channel:      &entities.Channel{ID: 1, Slug: "default", CurrencyCode: "USD"},
		ShippingAddress: &entities.Address{
			ID: 11, FirstName: "Jane", LastName: "Doe", City: "Warsaw", Country: "PL",
		},
		BillingAddress: &entities.Address{
			ID: 12, FirstName: "Jane", LastName: "Doe", City: "Warsaw", Country: "PL",
		},
		ShippingMethod: &entities.ShippingMethod{
			ID: 3, Name: "DHL", Type: "price", Currency: "USD",
			PriceAmount: decimal.RequireFromString("5"),
		},
		Lines: []*entities.OrderLine{
			{
				ID:                     100,
				ProductName:            "Widget",
				VariantName:            "Blue",
				ProductSKU:             &sku,
				ProductVariantID:       &variantID,
				Quantity:               2,
				Currency:               "USD",
				UnitDiscountAmount:     decimal.Zero,
				UnitDiscountType:       "fixed",
				UnitPrice:              money("10.00", "12.00", "USD"),
				TotalPrice:             money("20.00", "24.00", "USD"),
				UndiscountedUnitPrice:  money("10.00", "12.00", "USD"),
				UndiscountedTotalPrice: money("20.00", "24.00", "USD"),
				Allocations: []*entities.Allocation{
					{QuantityAllocated: 2, WarehouseID: 9},
				},
			},
		},
		Fulfillments: []*entities.Fulfillment{
			{
				ID:             200,
				Status:         entities.FulfillmentStatusFulfilled,
				TrackingNumber: "TRACK-1",
				CreatedAt:      time.Date(2024, 5, 31, 9, 0, 0, 0, time.UTC),
			},
		},
		ShippingPrice:     money("5.00", "6.00", "USD"),
		Total:             money("25.00", "30.00", "USD"),
		UndiscountedTotal: money("25.00", "30.00", "USD"),
	}
}

func amountString(record *domain.Record, key string) string {
	value, ok := record.Get(key)
	if !ok {
		return "<missing>"
	}
	amount, ok := value.(domain.Amount)
	if !ok {
		return fmt.Sprintf("<%T>", value)
	}
	return amount.String()
}
