package application

import (
	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// Field describes one serialized payload field: a stable name plus a pure
// extractor. Tables of fields are built once when a composer is constructed,
// not per call. Extractors must not mutate the entity they read.
type Field[E any] struct {
	Name string
	Get  func(E) any
}

// constField yields the same value for every entity, for pre-computed or
// shared sub-documents.
func constField[E any](name string, value any) Field[E] {
	return Field[E]{Name: name, Get: func(E) any { return value }}
}

// Related attaches a nested document built from an entity relation through
// the same serialization machinery. A nil relation resolves to a null field,
// never an error; an absent collection resolves to an empty list.
type Related[E any] struct {
	Name  string
	Build func(E) (any, error)
}

// serializeOne builds one ordered record: id first, then the declared
// fields, related documents, and finally extras. An extra whose name
// collides with an earlier field overrides the value in place — an explicit
// override always beats the plain field copy.
func serializeOne[E any](entity E, id Field[E], fields []Field[E], related []Related[E], extra []Field[E]) (*domain.Record, error) {
	record := domain.NewRecord()
	if id.Get != nil {
		record.Set(id.Name, id.Get(entity))
	}
	for _, field := range fields {
		record.Set(field.Name, field.Get(entity))
	}
	for _, rel := range related {
		value, err := rel.Build(entity)
		if err != nil {
			return nil, err
		}
		record.Set(rel.Name, value)
	}
	for _, field := range extra {
		record.Set(field.Name, field.Get(entity))
	}
	return record, nil
}

// serializeList serializes a sequence preserving input order.
func serializeList[E any](items []E, id Field[E], fields []Field[E], related []Related[E], extra []Field[E]) ([]*domain.Record, error) {
	records := make([]*domain.Record, 0, len(items))
	for _, item := range items {
		record, err := serializeOne(item, id, fields, related, extra)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableInt(value *int64) any {
	if value == nil {
		return nil
	}
	return *value
}

// metadataOrEmpty keeps absent metadata as an empty object, matching the
// stored default.
func metadataOrEmpty(metadata map[string]any) map[string]any {
	if metadata == nil {
		return map[string]any{}
	}
	return metadata
}

var addressFields = []Field[*entities.Address]{
	{Name: "first_name", Get: func(a *entities.Address) any { return a.FirstName }},
	{Name: "last_name", Get: func(a *entities.Address) any { return a.LastName }},
	{Name: "company_name", Get: func(a *entities.Address) any { return a.CompanyName }},
	{Name: "street_address_1", Get: func(a *entities.Address) any { return a.StreetAddress1 }},
	{Name: "street_address_2", Get: func(a *entities.Address) any { return a.StreetAddress2 }},
	{Name: "city", Get: func(a *entities.Address) any { return a.City }},
	{Name: "city_area", Get: func(a *entities.Address) any { return a.CityArea }},
	{Name: "postal_code", Get: func(a *entities.Address) any { return a.PostalCode }},
	{Name: "country", Get: func(a *entities.Address) any { return a.Country }},
	{Name: "country_area", Get: func(a *entities.Address) any { return a.CountryArea }},
	{Name: "phone", Get: func(a *entities.Address) any { return a.Phone }},
}

// addressRecord serializes an address subset; nil resolves to null.
func (s Service) addressRecord(address *entities.Address) (any, error) {
	if address == nil {
		return nil, nil
	}
	id := Field[*entities.Address]{Name: "id", Get: func(a *entities.Address) any { return s.encode("Address", a.ID) }}
	return serializeOne(address, id, addressFields, nil, nil)
}

func (s Service) addressListRecords(addresses []*entities.Address) (any, error) {
	id := Field[*entities.Address]{Name: "id", Get: func(a *entities.Address) any { return s.encode("Address", a.ID) }}
	return serializeList(addresses, id, addressFields, nil, nil)
}

var channelFields = []Field[*entities.Channel]{
	{Name: "slug", Get: func(c *entities.Channel) any { return c.Slug }},
	{Name: "currency_code", Get: func(c *entities.Channel) any { return c.CurrencyCode }},
}

func (s Service) channelRecord(channel *entities.Channel) (any, error) {
	if channel == nil {
		return nil, nil
	}
	id := Field[*entities.Channel]{Name: "id", Get: func(c *entities.Channel) any { return s.encode("Channel", c.ID) }}
	return serializeOne(channel, id, channelFields, nil, nil)
}

// shippingMethodFields covers the method assigned to an order or checkout.
// The stored listing price is a single untaxed amount, so it is quantized
// but never run through base-price selection.
var shippingMethodFields = []Field[*entities.ShippingMethod]{
	{Name: "name", Get: func(m *entities.ShippingMethod) any { return m.Name }},
	{Name: "type", Get: func(m *entities.ShippingMethod) any { return m.Type }},
	{Name: "currency", Get: func(m *entities.ShippingMethod) any { return m.Currency }},
	{Name: "price_amount", Get: func(m *entities.ShippingMethod) any {
		return domain.Quantize(m.PriceAmount, m.Currency)
	}},
}

func (s Service) shippingMethodRecord(method *entities.ShippingMethod) (any, error) {
	if method == nil {
		return nil, nil
	}
	id := Field[*entities.ShippingMethod]{Name: "id", Get: func(m *entities.ShippingMethod) any { return s.encode("ShippingMethod", m.ID) }}
	return serializeOne(method, id, shippingMethodFields, nil, nil)
}
