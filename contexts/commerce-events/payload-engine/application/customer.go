package application

import (
	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

var customerFields = []Field[*entities.User]{
	{Name: "email", Get: func(u *entities.User) any { return u.Email }},
	{Name: "first_name", Get: func(u *entities.User) any { return u.FirstName }},
	{Name: "last_name", Get: func(u *entities.User) any { return u.LastName }},
	{Name: "is_active", Get: func(u *entities.User) any { return u.IsActive }},
	{Name: "date_joined", Get: func(u *entities.User) any { return u.DateJoined }},
	{Name: "language_code", Get: func(u *entities.User) any { return u.LanguageCode }},
	{Name: "private_metadata", Get: func(u *entities.User) any { return metadataOrEmpty(u.PrivateMetadata) }},
	{Name: "metadata", Get: func(u *entities.User) any { return metadataOrEmpty(u.Metadata) }},
}

// CustomerPayload builds the customer document for account events.
func (s Service) CustomerPayload(customer *entities.User, requestor entities.Requestor) ([]*domain.Record, error) {
	related := []Related[*entities.User]{
		{Name: "default_shipping_address", Build: func(u *entities.User) (any, error) { return s.addressRecord(u.DefaultShippingAddress) }},
		{Name: "default_billing_address", Build: func(u *entities.User) (any, error) { return s.addressRecord(u.DefaultBillingAddress) }},
		{Name: "addresses", Build: func(u *entities.User) (any, error) { return s.addressListRecords(u.Addresses) }},
	}
	extra := []Field[*entities.User]{
		constField[*entities.User]("meta", s.meta(requestor)),
	}
	id := Field[*entities.User]{Name: "id", Get: func(u *entities.User) any { return s.encode("User", u.ID) }}
	record, err := serializeOne(customer, id, customerFields, related, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}
