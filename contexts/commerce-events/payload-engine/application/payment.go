package application

import (
	"context"
	"strings"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// PaymentPayload builds the gateway-facing payment document. When the
// gateway id addresses a payment app ("app:<pk>:<method>") the method name
// is split out and stamped metadata is attached.
func (s Service) PaymentPayload(payment *entities.PaymentData, requestor entities.Requestor) (*domain.Record, error) {
	record := domain.NewRecord()
	record.Set("gateway", payment.Gateway)
	record.Set("amount", domain.Quantize(payment.Amount, payment.Currency))
	record.Set("currency", payment.Currency)
	record.Set("token", nullableString(payment.Token))
	record.Set("customer_ip_address", nullableString(payment.CustomerIPAddress))
	record.Set("customer_email", payment.CustomerEmail)
	record.Set("payment_id", payment.PaymentID)
	record.Set("graphql_payment_id", payment.GraphqlPaymentID)
	record.Set("order_id", nullableInt(payment.OrderID))
	record.Set("data", payment.Data)

	if method, ok := paymentAppMethod(payment.Gateway); ok {
		record.Set("payment_method", method)
		record.Set("meta", s.meta(requestor))
	}
	return record, nil
}

// paymentAppMethod extracts the method name from an app gateway id.
func paymentAppMethod(gateway string) (string, bool) {
	parts := strings.SplitN(gateway, ":", 3)
	if len(parts) != 3 || parts[0] != "app" {
		return "", false
	}
	return parts[2], true
}

// GatewayListPayload is the document sent when listing available payment
// gateways for a checkout. The checkout may be absent for storefront-level
// listings.
func (s Service) GatewayListPayload(ctx context.Context, currency *string, checkout *entities.Checkout) (*domain.Record, error) {
	var checkoutRecord any
	if checkout != nil {
		records, err := s.CheckoutPayload(ctx, checkout, nil)
		if err != nil {
			return nil, err
		}
		checkoutRecord = records[0]
	}
	record := domain.NewRecord()
	record.Set("checkout", checkoutRecord)
	record.Set("currency", nullableString(currency))
	return record, nil
}
