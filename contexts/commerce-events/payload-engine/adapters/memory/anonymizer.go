package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// Anonymizer masks personal data on copies of stored entities before they
// are turned into sample documents. Inputs are never mutated.
type Anonymizer struct{}

func NewAnonymizer() Anonymizer { return Anonymizer{} }

func (Anonymizer) AnonymizeOrder(order *entities.Order) *entities.Order {
	masked := *order
	masked.UserEmail = maskedEmail()
	if order.User != nil {
		user := maskedUser(order.User.ID)
		masked.User = user
	}
	masked.ShippingAddress = maskedAddress(order.ShippingAddress)
	masked.BillingAddress = maskedAddress(order.BillingAddress)
	masked.Metadata = map[string]any{}
	masked.PrivateMetadata = map[string]any{}
	return &masked
}

func (Anonymizer) AnonymizeCheckout(checkout *entities.Checkout) *entities.Checkout {
	masked := *checkout
	masked.Email = maskedEmail()
	if checkout.User != nil {
		masked.User = maskedUser(checkout.User.ID)
	}
	masked.ShippingAddress = maskedAddress(checkout.ShippingAddress)
	masked.BillingAddress = maskedAddress(checkout.BillingAddress)
	masked.Metadata = map[string]any{}
	masked.PrivateMetadata = map[string]any{}
	return &masked
}

// FakeUser fabricates a plausible customer for events that demonstrate
// account payloads without touching stored accounts.
func (Anonymizer) FakeUser() *entities.User {
	return &entities.User{
		ID:           1,
		Email:        maskedEmail(),
		FirstName:    "John",
		LastName:     "Doe",
		IsActive:     true,
		DateJoined:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		LanguageCode: "en",
		DefaultShippingAddress: maskedAddress(&entities.Address{
			ID:      1,
			Country: "US",
		}),
		DefaultBillingAddress: maskedAddress(&entities.Address{
			ID:      2,
			Country: "US",
		}),
	}
}

func maskedEmail() string {
	return fmt.Sprintf("%s@example.com", uuid.NewString()[:8])
}

func maskedUser(id int64) *entities.User {
	return &entities.User{
		ID:        id,
		Email:     maskedEmail(),
		FirstName: "John",
		LastName:  "Doe",
		IsActive:  true,
	}
}

func maskedAddress(address *entities.Address) *entities.Address {
	if address == nil {
		return nil
	}
	return &entities.Address{
		ID:             address.ID,
		FirstName:      "John",
		LastName:       "Doe",
		CompanyName:    "",
		StreetAddress1: "1 Main St",
		City:           address.City,
		CityArea:       address.CityArea,
		PostalCode:     address.PostalCode,
		Country:        address.Country,
		CountryArea:    address.CountryArea,
		Phone:          "",
	}
}
