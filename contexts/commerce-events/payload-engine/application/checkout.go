package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
)

var checkoutFields = []Field[*entities.Checkout]{
	{Name: "last_change", Get: func(c *entities.Checkout) any { return c.LastChange }},
	{Name: "status", Get: func(c *entities.Checkout) any { return c.Status }},
	{Name: "email", Get: func(c *entities.Checkout) any { return c.Email }},
	{Name: "quantity", Get: func(c *entities.Checkout) any { return c.Quantity }},
	{Name: "currency", Get: func(c *entities.Checkout) any { return c.Currency }},
	{Name: "discount_amount", Get: func(c *entities.Checkout) any {
		return domain.Quantize(c.DiscountAmount, c.Currency)
	}},
	{Name: "discount_name", Get: func(c *entities.Checkout) any { return nullableString(c.DiscountName) }},
	{Name: "language_code", Get: func(c *entities.Checkout) any { return c.LanguageCode }},
	{Name: "private_metadata", Get: func(c *entities.Checkout) any { return metadataOrEmpty(c.PrivateMetadata) }},
	{Name: "metadata", Get: func(c *entities.Checkout) any { return metadataOrEmpty(c.Metadata) }},
}

// CheckoutPayload builds the checkout document for checkout events. The
// record id is the checkout token, not an encoded numeric key.
func (s Service) CheckoutPayload(ctx context.Context, checkout *entities.Checkout, requestor entities.Requestor) ([]*domain.Record, error) {
	warehouseAddress, err := s.checkoutWarehouseAddress(ctx, checkout)
	if err != nil {
		return nil, err
	}
	var collectionPoint any
	if checkout.CollectionPoint != nil {
		collectionPoint, err = s.collectionPointRecord(checkout.CollectionPoint)
		if err != nil {
			return nil, err
		}
	}
	lines, err := s.checkoutLineRecords(checkout.Lines)
	if err != nil {
		return nil, err
	}

	related := []Related[*entities.Checkout]{
		{Name: "channel", Build: func(c *entities.Checkout) (any, error) { return s.channelRecord(c.Channel) }},
		{Name: "user", Build: func(c *entities.Checkout) (any, error) { return s.checkoutUserRecord(c.User) }},
		{Name: "billing_address", Build: func(c *entities.Checkout) (any, error) { return s.addressRecord(c.BillingAddress) }},
		{Name: "shipping_address", Build: func(c *entities.Checkout) (any, error) { return s.addressRecord(c.ShippingAddress) }},
		{Name: "shipping_method", Build: func(c *entities.Checkout) (any, error) { return s.shippingMethodRecord(c.ShippingMethod) }},
		{Name: "warehouse_address", Build: func(*entities.Checkout) (any, error) { return warehouseAddress, nil }},
	}
	extra := []Field[*entities.Checkout]{
		constField[*entities.Checkout]("lines", lines),
		constField[*entities.Checkout]("collection_point", collectionPoint),
		constField[*entities.Checkout]("meta", s.meta(requestor)),
		{Name: "created", Get: func(c *entities.Checkout) any { return c.CreatedAt }},
	}
	id := Field[*entities.Checkout]{Name: "token", Get: func(c *entities.Checkout) any { return c.Token.String() }}
	record, err := serializeOne(checkout, id, checkoutFields, related, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}

func (s Service) checkoutUserRecord(user *entities.User) (any, error) {
	if user == nil {
		return nil, nil
	}
	fields := []Field[*entities.User]{
		{Name: "email", Get: func(u *entities.User) any { return u.Email }},
		{Name: "first_name", Get: func(u *entities.User) any { return u.FirstName }},
		{Name: "last_name", Get: func(u *entities.User) any { return u.LastName }},
	}
	id := Field[*entities.User]{Name: "id", Get: func(u *entities.User) any { return s.encode("User", u.ID) }}
	return serializeOne(user, id, fields, nil, nil)
}

func (s Service) checkoutWarehouseAddress(ctx context.Context, checkout *entities.Checkout) (any, error) {
	if checkout.ShippingAddress == nil || s.Warehouses == nil {
		return nil, nil
	}
	warehouse, err := s.Warehouses.WarehouseForCountry(ctx, checkout.ShippingAddress.Country)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.addressRecord(warehouse.Address)
}

func (s Service) checkoutLineRecords(lines []*entities.CheckoutLine) ([]*domain.Record, error) {
	records := make([]*domain.Record, 0, len(lines))
	for _, line := range lines {
		record := domain.NewRecord()
		record.Set("id", s.encode("CheckoutLine", line.ID))
		var sku, fullName, productName, variantName, currency any
		var basePrice any
		if variant := line.Variant; variant != nil {
			sku = variant.SKU
			fullName = variant.DisplayName()
			variantName = variant.Name
			if variant.Product != nil {
				productName = variant.Product.Name
				currency = variant.Product.Currency
				basePrice = domain.Quantize(line.BasePriceAmount, variant.Product.Currency).String()
			}
		}
		record.Set("sku", sku)
		record.Set("quantity", line.Quantity)
		record.Set("base_price", basePrice)
		record.Set("currency", currency)
		record.Set("full_name", fullName)
		record.Set("product_name", productName)
		record.Set("variant_name", variantName)
		records = append(records, record)
	}
	return records, nil
}

// CheckoutPayloadForTaxCalculation builds the trimmed checkout document
// handed to external tax calculation apps.
func (s Service) CheckoutPayloadForTaxCalculation(ctx context.Context, checkout *entities.Checkout) ([]*domain.Record, error) {
	useGross := s.PricesEnteredWithTax
	currency := checkout.Currency

	address := checkout.ShippingAddress
	if address == nil {
		address = checkout.BillingAddress
	}

	lines, err := s.checkoutTaxLineRecords(checkout)
	if err != nil {
		return nil, err
	}

	// Any nonzero discount is reported even when the voucher has no name.
	discounts := make([]*domain.Record, 0, 1)
	if !checkout.DiscountAmount.IsZero() {
		discount := domain.NewRecord()
		discount.Set("name", nullableString(checkout.DiscountName))
		discount.Set("amount", domain.Quantize(checkout.DiscountAmount, currency))
		discounts = append(discounts, discount)
	}

	var userID any
	var userPublicMetadata any = map[string]any{}
	if checkout.User != nil {
		userID = s.encode("User", checkout.User.ID)
		userPublicMetadata = metadataOrEmpty(checkout.User.Metadata)
	}
	var shippingName any
	if checkout.ShippingMethod != nil {
		shippingName = checkout.ShippingMethod.Name
	}

	fields := []Field[*entities.Checkout]{
		{Name: "private_metadata", Get: func(c *entities.Checkout) any { return metadataOrEmpty(c.PrivateMetadata) }},
		{Name: "metadata", Get: func(c *entities.Checkout) any { return metadataOrEmpty(c.Metadata) }},
		{Name: "currency", Get: func(c *entities.Checkout) any { return c.Currency }},
	}
	related := []Related[*entities.Checkout]{
		{Name: "channel", Build: func(c *entities.Checkout) (any, error) { return s.channelRecord(c.Channel) }},
		{Name: "address", Build: func(*entities.Checkout) (any, error) { return s.addressRecord(address) }},
	}
	extra := []Field[*entities.Checkout]{
		constField[*entities.Checkout]("user_id", userID),
		constField[*entities.Checkout]("user_public_metadata", userPublicMetadata),
		constField[*entities.Checkout]("included_taxes_in_prices", s.PricesEnteredWithTax),
		constField[*entities.Checkout]("total_amount", domain.Quantize(domain.BasePrice(checkout.Total, useGross), currency)),
		constField[*entities.Checkout]("shipping_amount", domain.Quantize(domain.BasePrice(checkout.ShippingPrice, useGross), currency)),
		constField[*entities.Checkout]("shipping_name", shippingName),
		constField[*entities.Checkout]("discounts", discounts),
		constField[*entities.Checkout]("lines", lines),
	}
	id := Field[*entities.Checkout]{Name: "id", Get: func(c *entities.Checkout) any { return c.Token.String() }}
	record, err := serializeOne(checkout, id, fields, related, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}

func (s Service) checkoutTaxLineRecords(checkout *entities.Checkout) ([]*domain.Record, error) {
	currency := checkout.Currency
	records := make([]*domain.Record, 0, len(checkout.Lines))
	for _, line := range checkout.Lines {
		record := domain.NewRecord()
		var fullName, productName, variantName, sku any
		var chargeTaxes any
		var productMetadata any = map[string]any{}
		var productTypeMetadata any = map[string]any{}
		if variant := line.Variant; variant != nil {
			fullName = variant.DisplayName()
			variantName = variant.Name
			sku = variant.SKU
			if product := variant.Product; product != nil {
				productName = product.Name
				chargeTaxes = product.ChargeTaxes
				productMetadata = metadataOrEmpty(product.Metadata)
				if product.ProductType != nil {
					productTypeMetadata = metadataOrEmpty(product.ProductType.Metadata)
				}
			}
		}
		unit := domain.Quantize(line.BasePriceAmount, currency)
		total := domain.Quantize(line.BasePriceAmount.Mul(decimal.NewFromInt(int64(line.Quantity))), currency)

		record.Set("id", s.encode("CheckoutLine", line.ID))
		record.Set("full_name", fullName)
		record.Set("product_name", productName)
		record.Set("variant_name", variantName)
		record.Set("product_metadata", productMetadata)
		record.Set("product_type_metadata", productTypeMetadata)
		record.Set("quantity", line.Quantity)
		record.Set("sku", sku)
		record.Set("charge_taxes", chargeTaxes)
		record.Set("unit_amount", unit)
		record.Set("total_amount", total)
		records = append(records, record)
	}
	return records, nil
}
