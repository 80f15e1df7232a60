package application

import (
	"context"
	"testing"
	"time"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
)

func TestInvoicePayloadEmbedsSlimOrder(t *testing.T) {
	service := testService()
	invoice := &entities.Invoice{
		ID:          55,
		Number:      "INV-2024-001",
		ExternalURL: "https://invoices.example.com/INV-2024-001.pdf",
		CreatedAt:   time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		Order:       fixtureOrder(),
	}
	records, err := service.InvoicePayload(context.Background(), invoice, nil)
	if err != nil {
		t.Fatalf("invoice payload failed: %v", err)
	}
	record := records[0]

	id, _ := record.Get("id")
	if id != "Invoice:55" {
		t.Fatalf("unexpected invoice id: %v", id)
	}

	orderValue, _ := record.Get("order")
	order, ok := orderValue.(*domain.Record)
	if !ok {
		t.Fatalf("expected embedded order record, got %T", orderValue)
	}
	token, _ := order.Get("token")
	if token != "42" {
		t.Fatalf("unexpected order token: %v", token)
	}
	if got := amountString(order, "total_gross_amount"); got != "30.00" {
		t.Fatalf("expected taxed aggregate on embedded order, got %s", got)
	}
	if order.Has("lines") {
		t.Fatalf("embedded invoice order must not inline lines")
	}
}

func TestInvoicePayloadRequiresOrder(t *testing.T) {
	service := testService()
	_, err := service.InvoicePayload(context.Background(), &entities.Invoice{ID: 55}, nil)
	if err != domainerrors.ErrInvalidInput {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
