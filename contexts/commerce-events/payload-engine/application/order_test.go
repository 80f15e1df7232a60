package application

import (
	"context"
	"testing"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

func TestOrderPayloadEndToEnd(t *testing.T) {
	service := testService()
	order := fixtureOrder()

	records, err := service.OrderPayload(context.Background(), order, nil, true)
	if err != nil {
		t.Fatalf("order payload failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one order record, got %d", len(records))
	}
	record := records[0]

	id, _ := record.Get("id")
	if id != "Order:42" {
		t.Fatalf("unexpected order id: %v", id)
	}
	if got := amountString(record, "total_net_amount"); got != "25.00" {
		t.Fatalf("expected total_net_amount 25.00, got %s", got)
	}
	if got := amountString(record, "total_gross_amount"); got != "30.00" {
		t.Fatalf("expected total_gross_amount 30.00, got %s", got)
	}

	linesValue, _ := record.Get("lines")
	lines, ok := linesValue.([]*domain.Record)
	if !ok || len(lines) != 1 {
		t.Fatalf("expected one line record, got %v", linesValue)
	}
	line := lines[0]
	if got := amountString(line, "total_price_net_amount"); got != "20.00" {
		t.Fatalf("expected line total net 20.00, got %s", got)
	}
	if got := amountString(line, "total_price_gross_amount"); got != "24.00" {
		t.Fatalf("expected line total gross 24.00, got %s", got)
	}
	quantity, _ := line.Get("quantity")
	if quantity != 2 {
		t.Fatalf("expected quantity 2, got %v", quantity)
	}

	fulfillmentsValue, _ := record.Get("fulfillments")
	fulfillments, ok := fulfillmentsValue.([]*domain.Record)
	if !ok || len(fulfillments) != 1 {
		t.Fatalf("expected one fulfillment record, got %v", fulfillmentsValue)
	}
	status, _ := fulfillments[0].Get("status")
	if status != entities.FulfillmentStatusFulfilled {
		t.Fatalf("expected fulfilled status, got %v", status)
	}
}

func TestOrderPayloadKeyOrderStartsWithID(t *testing.T) {
	service := testService()
	records, err := service.OrderPayload(context.Background(), fixtureOrder(), nil, false)
	if err != nil {
		t.Fatalf("order payload failed: %v", err)
	}
	keys := records[0].Keys()
	if keys[0] != "id" || keys[1] != "status" {
		t.Fatalf("expected id then declared fields, got %v", keys[:2])
	}
	if records[0].Has("meta") {
		t.Fatalf("meta attached despite withMeta=false")
	}
}

func TestOrderPayloadRegimesShareNonPriceShape(t *testing.T) {
	service := testService()
	order := fixtureOrder()
	ctx := context.Background()

	taxed, err := service.OrderPayload(ctx, order, nil, true)
	if err != nil {
		t.Fatalf("with-taxes payload failed: %v", err)
	}
	base, err := service.OrderPayloadWithoutTaxes(ctx, order, nil, true)
	if err != nil {
		t.Fatalf("without-taxes payload failed: %v", err)
	}

	taxedKeys := nonPriceKeys(taxed[0].Keys())
	baseKeys := nonPriceKeys(base[0].Keys())
	if len(taxedKeys) != len(baseKeys) {
		t.Fatalf("non-price key sets differ: %v vs %v", taxedKeys, baseKeys)
	}
	for i := range taxedKeys {
		if taxedKeys[i] != baseKeys[i] {
			t.Fatalf("non-price key order differs at %d: %s vs %s", i, taxedKeys[i], baseKeys[i])
		}
	}
}

func nonPriceKeys(keys []string) []string {
	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		switch key {
		case "shipping_price_net_amount", "shipping_price_gross_amount", "shipping_tax_rate",
			"total_net_amount", "total_gross_amount",
			"undiscounted_total_net_amount", "undiscounted_total_gross_amount",
			"shipping_price_base_amount", "total_base_amount", "undiscounted_total_base_amount":
			continue
		}
		filtered = append(filtered, key)
	}
	return filtered
}

func TestOrderPayloadWithoutTaxesUsesGrossWhenPricesIncludeTax(t *testing.T) {
	service := testService()
	records, err := service.OrderPayloadWithoutTaxes(context.Background(), fixtureOrder(), nil, false)
	if err != nil {
		t.Fatalf("without-taxes payload failed: %v", err)
	}
	if got := amountString(records[0], "total_base_amount"); got != "30.00" {
		t.Fatalf("expected gross-based total 30.00, got %s", got)
	}

	service.PricesEnteredWithTax = false
	records, err = service.OrderPayloadWithoutTaxes(context.Background(), fixtureOrder(), nil, false)
	if err != nil {
		t.Fatalf("without-taxes payload failed: %v", err)
	}
	if got := amountString(records[0], "total_base_amount"); got != "25.00" {
		t.Fatalf("expected net-based total 25.00, got %s", got)
	}
}

func TestOrderPayloadRequestorPrincipal(t *testing.T) {
	service := testService()
	user := &entities.User{ID: 5, Email: "staff@example.com"}

	records, err := service.OrderPayload(context.Background(), fixtureOrder(), user, true)
	if err != nil {
		t.Fatalf("order payload failed: %v", err)
	}
	metaValue, _ := records[0].Get("meta")
	meta, ok := metaValue.(*domain.Record)
	if !ok {
		t.Fatalf("expected meta record, got %T", metaValue)
	}
	principalValue, _ := meta.Get("issuing_principal")
	principal := principalValue.(*domain.Record)
	id, _ := principal.Get("id")
	if id != "User:5" {
		t.Fatalf("unexpected principal id: %v", id)
	}
	kind, _ := principal.Get("type")
	if kind != "user" {
		t.Fatalf("unexpected principal type: %v", kind)
	}
}
