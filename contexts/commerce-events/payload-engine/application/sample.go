package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

// sampleCheckoutToken replaces real checkout tokens on sample documents so
// a sample can never be replayed against a live checkout.
var sampleCheckoutToken = uuid.UUID{15: 1}

// SamplePayload produces an example document for the given event from
// anonymized stored data. It returns (nil, nil) when no stored entity
// matches the event or the event has no sample shape.
func (s Service) SamplePayload(ctx context.Context, eventName string) (*domain.Record, error) {
	switch eventName {
	case domain.EventCustomerCreated, domain.EventCustomerUpdated:
		return s.sampleCustomer()
	case domain.EventProductCreated:
		return s.sampleProduct(ctx)
	case domain.EventCheckoutCreated, domain.EventCheckoutUpdated:
		return s.sampleCheckout(ctx)
	case domain.EventPageCreated, domain.EventPageUpdated, domain.EventPageDeleted:
		return s.samplePage(ctx)
	case domain.EventFulfillmentCreated:
		return s.sampleFulfillment(ctx)
	case domain.EventOrderCreated, domain.EventOrderUpdated, domain.EventOrderCancelled,
		domain.EventOrderFullyPaid, domain.EventOrderFulfilled:
		return s.sampleOrder(ctx, eventName)
	default:
		s.logger().Debug("no sample shape for event", "event", eventName)
		return nil, nil
	}
}

func (s Service) sampleCustomer() (*domain.Record, error) {
	records, err := s.CustomerPayload(s.Anonymizer.FakeUser(), nil)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

func (s Service) sampleProduct(ctx context.Context) (*domain.Record, error) {
	product, err := s.Samples.RandomProduct(ctx)
	if err != nil {
		return nil, s.noSampleOnNotFound(err, domain.EventProductCreated)
	}
	records, err := s.ProductPayload(product, nil)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

func (s Service) sampleCheckout(ctx context.Context) (*domain.Record, error) {
	checkout, err := s.Samples.RandomCheckout(ctx)
	if err != nil {
		return nil, s.noSampleOnNotFound(err, domain.EventCheckoutCreated)
	}
	records, err := s.CheckoutPayload(ctx, s.Anonymizer.AnonymizeCheckout(checkout), nil)
	if err != nil {
		return nil, err
	}
	records[0].Set("token", sampleCheckoutToken.String())
	return records[0], nil
}

func (s Service) samplePage(ctx context.Context) (*domain.Record, error) {
	page, err := s.Samples.RandomPage(ctx)
	if err != nil {
		return nil, s.noSampleOnNotFound(err, domain.EventPageCreated)
	}
	records, err := s.PagePayload(page, nil)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

func (s Service) sampleFulfillment(ctx context.Context) (*domain.Record, error) {
	fulfillment, err := s.Samples.RandomFulfillment(ctx)
	if err != nil {
		return nil, s.noSampleOnNotFound(err, domain.EventFulfillmentCreated)
	}
	// Shallow copy so the anonymized order never leaks back into storage.
	anonymized := *fulfillment
	if fulfillment.Order != nil {
		anonymized.Order = s.Anonymizer.AnonymizeOrder(fulfillment.Order)
	}
	return s.FulfillmentPayload(ctx, &anonymized, nil)
}

func (s Service) sampleOrder(ctx context.Context, eventName string) (*domain.Record, error) {
	order, err := s.Samples.RandomOrder(ctx, orderSampleFilter(eventName))
	if err != nil {
		return nil, s.noSampleOnNotFound(err, eventName)
	}
	records, err := s.OrderPayload(ctx, s.Anonymizer.AnonymizeOrder(order), nil, true)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

// orderSampleFilter picks an order whose state plausibly matches the event
// being demonstrated.
func orderSampleFilter(eventName string) ports.OrderSampleFilter {
	switch eventName {
	case domain.EventOrderCreated:
		return ports.OrderSampleFilter{Status: entities.OrderStatusUnfulfilled}
	case domain.EventOrderFullyPaid:
		return ports.OrderSampleFilter{ChargeStatus: entities.ChargeStatusFullyCharged}
	case domain.EventOrderFulfilled:
		return ports.OrderSampleFilter{FulfillmentStatus: entities.FulfillmentStatusFulfilled}
	default:
		return ports.OrderSampleFilter{Status: entities.OrderStatusCanceled}
	}
}

// noSampleOnNotFound converts an absent entity into the no-document result
// while letting storage failures surface.
func (s Service) noSampleOnNotFound(err error, eventName string) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		s.logger().Info("no stored entity for sample payload", "event", eventName)
		return nil
	}
	return err
}
