package application

import (
	"context"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// ExcludedShippingMethodsForOrderPayload pairs the without-taxes order
// document with the candidate shipping methods offered to the filter.
func (s Service) ExcludedShippingMethodsForOrderPayload(ctx context.Context, order *entities.Order, methods []*entities.ShippingMethodData, requestor entities.Requestor) (*domain.Record, error) {
	orderRecords, err := s.OrderPayloadWithoutTaxes(ctx, order, requestor, true)
	if err != nil {
		return nil, err
	}
	record := domain.NewRecord()
	record.Set("order", orderRecords[0])
	record.Set("shipping_methods", shippingMethodCandidateRecords(methods))
	return record, nil
}

// ExcludedShippingMethodsForCheckoutPayload is the checkout counterpart.
func (s Service) ExcludedShippingMethodsForCheckoutPayload(ctx context.Context, checkout *entities.Checkout, methods []*entities.ShippingMethodData, requestor entities.Requestor) (*domain.Record, error) {
	checkoutRecords, err := s.CheckoutPayload(ctx, checkout, requestor)
	if err != nil {
		return nil, err
	}
	record := domain.NewRecord()
	record.Set("checkout", checkoutRecords[0])
	record.Set("shipping_methods", shippingMethodCandidateRecords(methods))
	return record, nil
}

func shippingMethodCandidateRecords(methods []*entities.ShippingMethodData) []*domain.Record {
	records := make([]*domain.Record, 0, len(methods))
	for _, method := range methods {
		record := domain.NewRecord()
		record.Set("id", method.GraphqlID)
		record.Set("price", domain.Quantize(method.Price.Amount, method.Price.Currency))
		record.Set("currency", method.Price.Currency)
		record.Set("name", method.Name)
		record.Set("maximum_order_weight", numberOrNil(method.MaximumOrderWeight))
		record.Set("minimum_order_weight", numberOrNil(method.MinimumOrderWeight))
		record.Set("maximum_delivery_days", intOrNil(method.MaximumDeliveryDays))
		record.Set("minimum_delivery_days", intOrNil(method.MinimumDeliveryDays))
		records = append(records, record)
	}
	return records
}

func numberOrNil(value *decimal.Decimal) any {
	if value == nil {
		return nil
	}
	return domain.NewNumber(*value)
}

func intOrNil(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
