package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

func fixtureShippingMethods() []*entities.ShippingMethodData {
	maxDays := 5
	minWeight := decimal.RequireFromString("0.5")
	return []*entities.ShippingMethodData{
		{
			GraphqlID:           "U2hpcHBpbmdNZXRob2Q6MQ==",
			Name:                "DHL",
			Price:               domain.Money{Amount: decimal.RequireFromString("5"), Currency: "USD"},
			MaximumDeliveryDays: &maxDays,
			MinimumOrderWeight:  &minWeight,
		},
		{
			GraphqlID: "U2hpcHBpbmdNZXRob2Q6Mg==",
			Name:      "UPS",
			Price:     domain.Money{Amount: decimal.RequireFromString("7.5"), Currency: "USD"},
		},
	}
}

func TestExcludedShippingMethodsForOrderPayload(t *testing.T) {
	service := testService()
	record, err := service.ExcludedShippingMethodsForOrderPayload(context.Background(), fixtureOrder(), fixtureShippingMethods(), nil)
	if err != nil {
		t.Fatalf("excluded shipping methods payload failed: %v", err)
	}

	orderValue, _ := record.Get("order")
	order, ok := orderValue.(*domain.Record)
	if !ok {
		t.Fatalf("expected embedded order, got %T", orderValue)
	}
	if !order.Has("total_base_amount") {
		t.Fatalf("expected base-price order variant inside the filter payload")
	}
	if order.Has("total_net_amount") {
		t.Fatalf("taxed aggregates must not leak into the filter payload")
	}

	methodsValue, _ := record.Get("shipping_methods")
	methods := methodsValue.([]*domain.Record)
	if len(methods) != 2 {
		t.Fatalf("expected two candidate methods, got %d", len(methods))
	}
	id, _ := methods[0].Get("id")
	if id != "U2hpcHBpbmdNZXRob2Q6MQ==" {
		t.Fatalf("candidate id must pass through unencoded, got %v", id)
	}
	if got := amountString(methods[0], "price"); got != "5.00" {
		t.Fatalf("expected candidate price 5.00, got %s", got)
	}
	maxDays, _ := methods[0].Get("maximum_delivery_days")
	if maxDays != 5 {
		t.Fatalf("unexpected maximum_delivery_days: %v", maxDays)
	}
	minWeight, _ := methods[1].Get("minimum_order_weight")
	if minWeight != nil {
		t.Fatalf("expected null weight bound, got %v", minWeight)
	}
}

func TestExcludedShippingMethodsForCheckoutPayload(t *testing.T) {
	service := testService()
	record, err := service.ExcludedShippingMethodsForCheckoutPayload(context.Background(), fixtureCheckout(), fixtureShippingMethods(), nil)
	if err != nil {
		t.Fatalf("excluded shipping methods payload failed: %v", err)
	}
	checkoutValue, _ := record.Get("checkout")
	checkout, ok := checkoutValue.(*domain.Record)
	if !ok {
		t.Fatalf("expected embedded checkout, got %T", checkoutValue)
	}
	token, _ := checkout.Get("token")
	if token != "5f2b0e1d-8a6c-4f1e-9b3a-111111111111" {
		t.Fatalf("unexpected checkout token: %v", token)
	}
}
