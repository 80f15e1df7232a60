package application

import (
	"context"
	"strconv"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
)

var invoiceFields = []Field[*entities.Invoice]{
	{Name: "number", Get: func(i *entities.Invoice) any { return i.Number }},
	{Name: "external_url", Get: func(i *entities.Invoice) any { return i.ExternalURL }},
	{Name: "created", Get: func(i *entities.Invoice) any { return i.CreatedAt }},
}

// InvoicePayload builds the invoice document with a slim order embedded.
// The embedded order omits the per-line and relation detail of the full
// order document but keeps the taxed aggregates.
func (s Service) InvoicePayload(ctx context.Context, invoice *entities.Invoice, requestor entities.Requestor) ([]*domain.Record, error) {
	if invoice.Order == nil {
		return nil, domainerrors.ErrInvalidInput
	}
	order, err := s.invoiceOrderRecord(ctx, invoice.Order)
	if err != nil {
		return nil, err
	}
	extra := []Field[*entities.Invoice]{
		constField[*entities.Invoice]("order", order),
		constField[*entities.Invoice]("meta", s.meta(requestor)),
	}
	id := Field[*entities.Invoice]{Name: "id", Get: func(i *entities.Invoice) any { return s.encode("Invoice", i.ID) }}
	record, err := serializeOne(invoice, id, invoiceFields, nil, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}

func (s Service) invoiceOrderRecord(ctx context.Context, order *entities.Order) (*domain.Record, error) {
	prices, err := s.orderPricesWithTaxes(ctx, order)
	if err != nil {
		return nil, err
	}
	extra := []Field[*entities.Order]{
		{Name: "token", Get: func(o *entities.Order) any { return strconv.FormatInt(o.ID, 10) }},
		{Name: "user_email", Get: func(o *entities.Order) any { return o.CustomerEmail() }},
		{Name: "created", Get: func(o *entities.Order) any { return o.CreatedAt }},
	}
	extra = append(extra, prices...)
	id := Field[*entities.Order]{Name: "id", Get: func(o *entities.Order) any { return s.encode("Order", o.ID) }}
	return serializeOne(order, id, orderFields, nil, extra)
}
