package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// SeedDemo loads a small fixture set covering every sample event family, so
// a module running without a database still produces sample documents.
func SeedDemo(s *Store) {
	warehouse := demoWarehouse()
	s.AddWarehouse(warehouse)

	product := demoProduct()
	s.AddProduct(product)
	s.AddCheckout(demoCheckout(product))
	s.AddPage(demoPage())

	unfulfilled := demoOrder(1, entities.OrderStatusUnfulfilled, product)
	paid := demoOrder(2, entities.OrderStatusUnfulfilled, product)
	paid.Payments = []*entities.Payment{demoPayment(2, entities.ChargeStatusFullyCharged)}
	canceled := demoOrder(3, entities.OrderStatusCanceled, product)

	fulfilled := demoOrder(4, entities.OrderStatusFulfilled, product)
	fulfillment := &entities.Fulfillment{
		ID:             1,
		Status:         entities.FulfillmentStatusFulfilled,
		TrackingNumber: "DEMO-TRACK-1",
		CreatedAt:      demoTime(),
		Order:          fulfilled,
		Lines: []*entities.FulfillmentLine{
			{
				ID:        1,
				Quantity:  1,
				OrderLine: fulfilled.Lines[0],
				Stock:     &entities.Stock{ID: 1, WarehouseID: warehouse.ID, Warehouse: warehouse},
			},
		},
	}
	fulfilled.Fulfillments = []*entities.Fulfillment{fulfillment}

	for _, order := range []*entities.Order{unfulfilled, paid, canceled, fulfilled} {
		s.AddOrder(order)
	}
	s.AddFulfillment(fulfillment)
}

func demoTime() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
}

func demoTaxed(net, gross string) domain.TaxedMoney {
	return domain.TaxedMoney{
		Net:      decimal.RequireFromString(net),
		Gross:    decimal.RequireFromString(gross),
		Currency: "USD",
	}
}

func demoAddress(id int64) *entities.Address {
	return &entities.Address{
		ID:             id,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		StreetAddress1: "12 Market St",
		City:           "New York",
		PostalCode:     "10001",
		Country:        "US",
	}
}

func demoWarehouse() *entities.Warehouse {
	return &entities.Warehouse{
		ID:                    1,
		Name:                  "Main warehouse",
		Email:                 "warehouse@example.com",
		ClickAndCollectOption: "disabled",
		CountryCode:           "US",
		Address: &entities.Address{
			ID:             900,
			CompanyName:    "Main warehouse",
			StreetAddress1: "1 Depot Rd",
			City:           "Newark",
			PostalCode:     "07102",
			Country:        "US",
		},
	}
}

func demoProduct() *entities.Product {
	publishedAt := demoTime()
	product := &entities.Product{
		ID:              1,
		Name:            "Demo Mug",
		Slug:            "demo-mug",
		Description:     "A sturdy ceramic mug.",
		Currency:        "USD",
		UpdatedAt:       demoTime(),
		ChargeTaxes:     true,
		WeightGrams:     decimal.RequireFromString("350"),
		PublicationDate: &publishedAt,
		IsPublished:     true,
		Category:        &entities.Category{ID: 1, Name: "Kitchen", Slug: "kitchen"},
		Collections:     []*entities.Collection{{ID: 1, Name: "Essentials", Slug: "essentials"}},
		ProductType:     &entities.ProductType{ID: 1, Name: "Homeware"},
	}
	variant := &entities.ProductVariant{
		ID:             1,
		SKU:            "MUG-01",
		Name:           "White",
		TrackInventory: true,
		ProductID:      product.ID,
		Product:        product,
		ChannelListings: []*entities.VariantChannelListing{
			{
				ID:          1,
				Channel:     &entities.Channel{ID: 1, Slug: "default-channel", CurrencyCode: "USD"},
				Currency:    "USD",
				PriceAmount: decimal.RequireFromString("10"),
			},
		},
	}
	product.Variants = []*entities.ProductVariant{variant}
	return product
}

func demoCheckout(product *entities.Product) *entities.Checkout {
	return &entities.Checkout{
		Token:           uuid.MustParse("7e9a1f2c-4c6d-4a36-9f0e-2d7b8a3c5e41"),
		Status:          "active",
		LastChange:      demoTime(),
		Email:           "ada@example.com",
		Quantity:        2,
		Currency:        "USD",
		DiscountAmount:  decimal.Zero,
		LanguageCode:    "en",
		CreatedAt:       demoTime(),
		Channel:         &entities.Channel{ID: 1, Slug: "default-channel", CurrencyCode: "USD"},
		BillingAddress:  demoAddress(1),
		ShippingAddress: demoAddress(2),
		Lines: []*entities.CheckoutLine{
			{
				ID:              1,
				Quantity:        2,
				Variant:         product.Variants[0],
				BasePriceAmount: decimal.RequireFromString("10"),
			},
		},
		Total:         demoTaxed("20.00", "24.00"),
		ShippingPrice: demoTaxed("5.00", "6.00"),
	}
}

func demoPage() *entities.Page {
	publishedAt := demoTime()
	return &entities.Page{
		ID:          1,
		Title:       "About us",
		Content:     "We make mugs.",
		PublishedAt: &publishedAt,
		IsPublished: true,
		UpdatedAt:   demoTime(),
	}
}

func demoPayment(id int64, chargeStatus string) *entities.Payment {
	return &entities.Payment{
		ID:                id,
		Gateway:           "mirumee.payments.dummy",
		PaymentMethodType: "card",
		IsActive:          true,
		ChargeStatus:      chargeStatus,
		Total:             decimal.RequireFromString("30"),
		CapturedAmount:    decimal.RequireFromString("30"),
		Currency:          "USD",
		BillingEmail:      "ada@example.com",
		BillingFirstName:  "Ada",
		BillingLastName:   "Lovelace",
		CreatedAt:         demoTime(),
		ModifiedAt:        demoTime(),
	}
}

func demoOrder(id int64, status string, product *entities.Product) *entities.Order {
	variant := product.Variants[0]
	methodName := "Standard"
	return &entities.Order{
		ID:                 id,
		Status:             status,
		Origin:             "checkout",
		ShippingMethodName: &methodName,
		WeightGrams:        decimal.RequireFromString("350"),
		LanguageCode:       "en",
		Currency:           "USD",
		CreatedAt:          demoTime(),
		UserEmail:          "ada@example.com",
		Channel:            &entities.Channel{ID: 1, Slug: "default-channel", CurrencyCode: "USD"},
		ShippingMethod: &entities.ShippingMethod{
			ID:          1,
			Name:        methodName,
			Type:        "price",
			Currency:    "USD",
			PriceAmount: decimal.RequireFromString("5"),
		},
		ShippingAddress: demoAddress(1),
		BillingAddress:  demoAddress(2),
		Lines: []*entities.OrderLine{
			{
				ID:                     id * 100,
				ProductName:            product.Name,
				VariantName:            variant.Name,
				ProductSKU:             &variant.SKU,
				ProductVariantID:       &variant.ID,
				Quantity:               2,
				Currency:               "USD",
				UnitDiscountAmount:     decimal.Zero,
				UnitDiscountType:       "fixed",
				Variant:                variant,
				UnitPrice:              demoTaxed("10.00", "12.00"),
				TotalPrice:             demoTaxed("20.00", "24.00"),
				UndiscountedUnitPrice:  demoTaxed("10.00", "12.00"),
				UndiscountedTotalPrice: demoTaxed("20.00", "24.00"),
			},
		},
		Payments:          []*entities.Payment{demoPayment(id, entities.ChargeStatusNotCharged)},
		ShippingPrice:     demoTaxed("5.00", "6.00"),
		Total:             demoTaxed("25.00", "30.00"),
		UndiscountedTotal: demoTaxed("25.00", "30.00"),
	}
}
