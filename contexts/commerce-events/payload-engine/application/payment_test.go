package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

func TestPaymentPayloadPlainGateway(t *testing.T) {
	service := testService()
	payment := &entities.PaymentData{
		Gateway:          "stripe",
		Amount:           decimal.RequireFromString("30"),
		Currency:         "USD",
		CustomerEmail:    "buyer@example.com",
		PaymentID:        77,
		GraphqlPaymentID: "Payment:77",
	}
	record, err := service.PaymentPayload(payment, nil)
	if err != nil {
		t.Fatalf("payment payload failed: %v", err)
	}
	if got := amountString(record, "amount"); got != "30.00" {
		t.Fatalf("expected amount 30.00, got %s", got)
	}
	if record.Has("payment_method") {
		t.Fatalf("plain gateway must not carry a payment_method")
	}
	if record.Has("meta") {
		t.Fatalf("plain gateway must not carry meta")
	}
}

func TestPaymentPayloadAppGatewaySplitsMethod(t *testing.T) {
	service := testService()
	payment := &entities.PaymentData{
		Gateway:          "app:12:credit-card",
		Amount:           decimal.RequireFromString("30"),
		Currency:         "USD",
		PaymentID:        77,
		GraphqlPaymentID: "Payment:77",
	}
	record, err := service.PaymentPayload(payment, nil)
	if err != nil {
		t.Fatalf("payment payload failed: %v", err)
	}
	method, _ := record.Get("payment_method")
	if method != "credit-card" {
		t.Fatalf("unexpected payment method: %v", method)
	}
	if !record.Has("meta") {
		t.Fatalf("app gateway payload must carry meta")
	}
}

func TestGatewayListPayload(t *testing.T) {
	service := testService()
	currency := "USD"
	record, err := service.GatewayListPayload(context.Background(), &currency, nil)
	if err != nil {
		t.Fatalf("gateway list payload failed: %v", err)
	}
	checkout, _ := record.Get("checkout")
	if checkout != nil {
		t.Fatalf("expected null checkout, got %v", checkout)
	}
	got, _ := record.Get("currency")
	if got != "USD" {
		t.Fatalf("unexpected currency: %v", got)
	}

	record, err = service.GatewayListPayload(context.Background(), nil, fixtureCheckout())
	if err != nil {
		t.Fatalf("gateway list payload failed: %v", err)
	}
	checkoutValue, _ := record.Get("checkout")
	if _, ok := checkoutValue.(*domain.Record); !ok {
		t.Fatalf("expected embedded checkout record, got %T", checkoutValue)
	}
}
