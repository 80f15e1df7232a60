package entities

import "github.com/shopspring/decimal"

// PaymentData is the gateway-facing view of a payment handed to payment
// webhooks. Gateway may be a payment-app id of the form "app:<pk>:<name>".
type PaymentData struct {
	Gateway           string
	Amount            decimal.Decimal
	Currency          string
	Token             *string
	CustomerIPAddress *string
	CustomerEmail     string
	PaymentID         int64
	GraphqlPaymentID  string
	OrderID           *int64
	Data              map[string]any
}
