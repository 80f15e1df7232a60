package application

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

func fixtureProduct() *entities.Product {
	cost := decimal.RequireFromString("4.5")
	return &entities.Product{
		ID:          8,
		Name:        "Widget",
		Slug:        "widget",
		Currency:    "USD",
		UpdatedAt:   time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC),
		ChargeTaxes: true,
		WeightGrams: decimal.RequireFromString("250"),
		Category:    &entities.Category{ID: 2, Name: "Gadgets", Slug: "gadgets"},
		Collections: []*entities.Collection{{ID: 4, Name: "Essentials", Slug: "essentials"}},
		ProductType: &entities.ProductType{ID: 3, Name: "Physical"},
		Media: []*entities.ProductMedia{
			{ID: 1, Alt: "front", Type: entities.MediaTypeImage, ImageURL: "https://cdn.example.com/front.jpg"},
			{ID: 2, Alt: "demo", Type: entities.MediaTypeVideo, ExternalURL: "https://video.example.com/demo"},
		},
		Variants: []*entities.ProductVariant{
			{
				ID:        7,
				SKU:       "SKU-1",
				Name:      "Blue",
				ProductID: 8,
				ChannelListings: []*entities.VariantChannelListing{
					{
						ID:              5,
						Channel:         &entities.Channel{ID: 1, Slug: "default"},
						Currency:        "USD",
						PriceAmount:     decimal.RequireFromString("12"),
						CostPriceAmount: &cost,
					},
				},
			},
		},
	}
}

func TestProductPayloadShape(t *testing.T) {
	service := testService()
	records, err := service.ProductPayload(fixtureProduct(), nil)
	if err != nil {
		t.Fatalf("product payload failed: %v", err)
	}
	record := records[0]

	id, _ := record.Get("id")
	if id != "Product:8" {
		t.Fatalf("unexpected product id: %v", id)
	}

	mediaValue, _ := record.Get("media")
	media := mediaValue.([]*domain.Record)
	if len(media) != 2 {
		t.Fatalf("expected two media records, got %d", len(media))
	}
	url, _ := media[0].Get("url")
	if url != "https://cdn.example.com/front.jpg" {
		t.Fatalf("expected hosted image url, got %v", url)
	}
	url, _ = media[1].Get("url")
	if url != "https://video.example.com/demo" {
		t.Fatalf("expected external url for video media, got %v", url)
	}

	variantsValue, _ := record.Get("variants")
	variants := variantsValue.([]*domain.Record)
	if len(variants) != 1 {
		t.Fatalf("expected one variant, got %d", len(variants))
	}
	listingsValue, _ := variants[0].Get("channel_listings")
	listings := listingsValue.([]*domain.Record)
	if got := amountString(listings[0], "price_amount"); got != "12.00" {
		t.Fatalf("expected listing price 12.00, got %s", got)
	}
	if got := amountString(listings[0], "cost_price_amount"); got != "4.50" {
		t.Fatalf("expected cost price 4.50, got %s", got)
	}

	collectionsValue, _ := record.Get("collections")
	collections := collectionsValue.([]*domain.Record)
	if len(collections) != 1 {
		t.Fatalf("expected one collection, got %d", len(collections))
	}
	slug, _ := collections[0].Get("slug")
	if slug != "essentials" {
		t.Fatalf("expected collection slug, got %v", slug)
	}
}

func TestProductDeletedPayloadCarriesVariantIDs(t *testing.T) {
	service := testService()
	records, err := service.ProductDeletedPayload(fixtureProduct(), []int64{7, 9}, nil)
	if err != nil {
		t.Fatalf("product deleted payload failed: %v", err)
	}
	variants, _ := records[0].Get("variants")
	if !reflect.DeepEqual(variants, []string{"ProductVariant:7", "ProductVariant:9"}) {
		t.Fatalf("expected encoded variant ids, got %v", variants)
	}
}

func TestProductVariantWithStockPayload(t *testing.T) {
	service := testService()
	stocks := []*entities.Stock{
		{
			ID:             1,
			WarehouseID:    9,
			Quantity:       3,
			ProductVariant: fixtureProduct().Variants[0],
		},
	}
	records, err := service.ProductVariantWithStockPayload(stocks, nil)
	if err != nil {
		t.Fatalf("variant stock payload failed: %v", err)
	}
	record := records[0]
	keys := record.Keys()
	if keys[0] != "id" {
		t.Fatalf("expected id as the leading key, got %v", keys[0])
	}
	if keys[len(keys)-1] != "meta" {
		t.Fatalf("expected meta as the trailing key, got %v", keys[len(keys)-1])
	}
	id, _ := record.Get("id")
	if id != "Stock:1" {
		t.Fatalf("unexpected stock id: %v", id)
	}
	warehouseID, _ := record.Get("warehouse_id")
	if warehouseID != "Warehouse:9" {
		t.Fatalf("unexpected warehouse id: %v", warehouseID)
	}
	variantID, _ := record.Get("product_variant_id")
	if variantID != "ProductVariant:7" {
		t.Fatalf("unexpected variant id: %v", variantID)
	}
}
