package application

import (
	"testing"
	"time"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

func TestCustomerPayloadShape(t *testing.T) {
	service := testService()
	customer := &entities.User{
		ID:           5,
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		IsActive:     true,
		DateJoined:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		LanguageCode: "en",
		DefaultShippingAddress: &entities.Address{ID: 11, City: "Warsaw", Country: "PL"},
		Addresses: []*entities.Address{
			{ID: 11, City: "Warsaw", Country: "PL"},
			{ID: 12, City: "Kraków", Country: "PL"},
		},
	}

	records, err := service.CustomerPayload(customer, nil)
	if err != nil {
		t.Fatalf("customer payload failed: %v", err)
	}
	record := records[0]

	id, _ := record.Get("id")
	if id != "User:5" {
		t.Fatalf("unexpected customer id: %v", id)
	}
	billing, _ := record.Get("default_billing_address")
	if billing != nil {
		t.Fatalf("expected null billing address, got %v", billing)
	}
	addressesValue, _ := record.Get("addresses")
	addresses := addressesValue.([]*domain.Record)
	if len(addresses) != 2 {
		t.Fatalf("expected two addresses, got %d", len(addresses))
	}
	if !record.Has("meta") {
		t.Fatalf("customer payload must carry meta")
	}
}

func TestPagePayloadShape(t *testing.T) {
	service := testService()
	published := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	page := &entities.Page{
		ID:          14,
		Title:       "About",
		Content:     "hello",
		PublishedAt: &published,
		IsPublished: true,
		UpdatedAt:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
	}
	records, err := service.PagePayload(page, nil)
	if err != nil {
		t.Fatalf("page payload failed: %v", err)
	}
	record := records[0]

	id, _ := record.Get("id")
	if id != "Page:14" {
		t.Fatalf("unexpected page id: %v", id)
	}
	date, _ := record.Get("publication_date")
	if date != "2024-05-01" {
		t.Fatalf("unexpected publication date: %v", date)
	}
}
