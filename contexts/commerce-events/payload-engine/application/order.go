package application

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

var orderFields = []Field[*entities.Order]{
	{Name: "status", Get: func(o *entities.Order) any { return o.Status }},
	{Name: "origin", Get: func(o *entities.Order) any { return o.Origin }},
	{Name: "shipping_method_name", Get: func(o *entities.Order) any { return nullableString(o.ShippingMethodName) }},
	{Name: "collection_point_name", Get: func(o *entities.Order) any { return nullableString(o.CollectionPointName) }},
	{Name: "weight", Get: func(o *entities.Order) any { return domain.NewNumber(o.WeightGrams) }},
	{Name: "language_code", Get: func(o *entities.Order) any { return o.LanguageCode }},
	{Name: "private_metadata", Get: func(o *entities.Order) any { return metadataOrEmpty(o.PrivateMetadata) }},
	{Name: "metadata", Get: func(o *entities.Order) any { return metadataOrEmpty(o.Metadata) }},
}

// orderLineFields are the plain copies shared by both monetary regimes; the
// per-regime price fields come in through extras.
var orderLineFields = []Field[*entities.OrderLine]{
	{Name: "product_name", Get: func(l *entities.OrderLine) any { return l.ProductName }},
	{Name: "variant_name", Get: func(l *entities.OrderLine) any { return l.VariantName }},
	{Name: "translated_product_name", Get: func(l *entities.OrderLine) any { return l.TranslatedProductName }},
	{Name: "translated_variant_name", Get: func(l *entities.OrderLine) any { return l.TranslatedVariantName }},
	{Name: "product_sku", Get: func(l *entities.OrderLine) any { return nullableString(l.ProductSKU) }},
	{Name: "quantity", Get: func(l *entities.OrderLine) any { return l.Quantity }},
	{Name: "currency", Get: func(l *entities.OrderLine) any { return l.Currency }},
	{Name: "unit_discount_amount", Get: func(l *entities.OrderLine) any {
		return domain.Quantize(l.UnitDiscountAmount, l.Currency)
	}},
	{Name: "unit_discount_type", Get: func(l *entities.OrderLine) any { return l.UnitDiscountType }},
	{Name: "unit_discount_reason", Get: func(l *entities.OrderLine) any { return nullableString(l.UnitDiscountReason) }},
	{Name: "sale_id", Get: func(l *entities.OrderLine) any { return nullableString(l.SaleID) }},
	{Name: "voucher_code", Get: func(l *entities.OrderLine) any { return nullableString(l.VoucherCode) }},
}

// OrderPayload builds the with-taxes order document: every monetary field
// is an explicit net/gross pair derived by the pricing engine.
func (s Service) OrderPayload(ctx context.Context, order *entities.Order, requestor entities.Requestor, withMeta bool) ([]*domain.Record, error) {
	prices, err := s.orderPricesWithTaxes(ctx, order)
	if err != nil {
		return nil, err
	}
	lines, err := s.orderLinesWithTaxes(ctx, order)
	if err != nil {
		return nil, err
	}
	return s.orderPayload(order, requestor, withMeta, prices, lines)
}

// OrderPayloadWithoutTaxes builds the base-price order document: a single
// amount per monetary field, chosen from the stored net or gross by the
// prices-entered-with-tax flag.
func (s Service) OrderPayloadWithoutTaxes(ctx context.Context, order *entities.Order, requestor entities.Requestor, withMeta bool) ([]*domain.Record, error) {
	prices := s.orderPricesWithoutTaxes(order)
	lines, err := s.orderLinesWithoutTaxes(order)
	if err != nil {
		return nil, err
	}
	return s.orderPayload(order, requestor, withMeta, prices, lines)
}

// orderPayload assembles the shared document shape. Both regimes flow
// through here so the non-price field set is identical by construction —
// downstream schema stability depends on that parity.
func (s Service) orderPayload(order *entities.Order, requestor entities.Requestor, withMeta bool, prices []Field[*entities.Order], lines []*domain.Record) ([]*domain.Record, error) {
	fulfillments, err := s.orderFulfillmentRecords(order)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRecords(order.Payments)
	if err != nil {
		return nil, err
	}
	var collectionPoint any
	if order.CollectionPoint != nil {
		collectionPoint, err = s.collectionPointRecord(order.CollectionPoint)
		if err != nil {
			return nil, err
		}
	}

	related := []Related[*entities.Order]{
		{Name: "channel", Build: func(o *entities.Order) (any, error) { return s.channelRecord(o.Channel) }},
		{Name: "shipping_method", Build: func(o *entities.Order) (any, error) { return s.shippingMethodRecord(o.ShippingMethod) }},
		{Name: "shipping_address", Build: func(o *entities.Order) (any, error) { return s.addressRecord(o.ShippingAddress) }},
		{Name: "billing_address", Build: func(o *entities.Order) (any, error) { return s.addressRecord(o.BillingAddress) }},
		{Name: "discounts", Build: func(o *entities.Order) (any, error) { return s.discountRecords(o.Discounts, o.Currency) }},
	}

	extra := []Field[*entities.Order]{
		// Deprecated alias kept until the legacy token field is retired.
		{Name: "token", Get: func(o *entities.Order) any { return strconv.FormatInt(o.ID, 10) }},
		{Name: "user_email", Get: func(o *entities.Order) any { return o.CustomerEmail() }},
		{Name: "created", Get: func(o *entities.Order) any { return o.CreatedAt }},
		{Name: "original", Get: func(o *entities.Order) any {
			if o.OriginalID == nil {
				return nil
			}
			return s.encode("Order", *o.OriginalID)
		}},
		constField[*entities.Order]("lines", lines),
		constField[*entities.Order]("included_taxes_in_prices", s.PricesEnteredWithTax),
	}
	extra = append(extra, prices...)
	extra = append(extra,
		constField[*entities.Order]("fulfillments", fulfillments),
		constField[*entities.Order]("collection_point", collectionPoint),
		constField[*entities.Order]("payments", payments),
	)
	if withMeta {
		extra = append(extra, constField[*entities.Order]("meta", s.meta(requestor)))
	}

	id := Field[*entities.Order]{Name: "id", Get: func(o *entities.Order) any { return s.encode("Order", o.ID) }}
	record, err := serializeOne(order, id, orderFields, related, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}

// orderPricesWithTaxes reads each aggregate exactly once from the pricing
// engine, so dependent fields stay mutually consistent within one call.
func (s Service) orderPricesWithTaxes(ctx context.Context, order *entities.Order) ([]Field[*entities.Order], error) {
	shipping, err := s.Pricing.OrderShipping(ctx, order)
	if err != nil {
		return nil, err
	}
	shippingTaxRate, err := s.Pricing.OrderShippingTaxRate(ctx, order)
	if err != nil {
		return nil, err
	}
	total, err := s.Pricing.OrderTotal(ctx, order)
	if err != nil {
		return nil, err
	}
	undiscountedTotal, err := s.Pricing.OrderUndiscountedTotal(ctx, order)
	if err != nil {
		return nil, err
	}

	currency := order.Currency
	return []Field[*entities.Order]{
		constField[*entities.Order]("shipping_price_net_amount", domain.Quantize(shipping.Net, currency)),
		constField[*entities.Order]("shipping_price_gross_amount", domain.Quantize(shipping.Gross, currency)),
		constField[*entities.Order]("shipping_tax_rate", domain.NewNumber(shippingTaxRate)),
		constField[*entities.Order]("total_net_amount", domain.Quantize(total.Net, currency)),
		constField[*entities.Order]("total_gross_amount", domain.Quantize(total.Gross, currency)),
		constField[*entities.Order]("undiscounted_total_net_amount", domain.Quantize(undiscountedTotal.Net, currency)),
		constField[*entities.Order]("undiscounted_total_gross_amount", domain.Quantize(undiscountedTotal.Gross, currency)),
	}, nil
}

func (s Service) orderPricesWithoutTaxes(order *entities.Order) []Field[*entities.Order] {
	useGross := s.PricesEnteredWithTax
	currency := order.Currency
	base := func(price domain.TaxedMoney) domain.Amount {
		return domain.Quantize(domain.BasePrice(price, useGross), currency)
	}
	return []Field[*entities.Order]{
		constField[*entities.Order]("shipping_price_base_amount", base(order.ShippingPrice)),
		constField[*entities.Order]("total_base_amount", base(order.Total)),
		constField[*entities.Order]("undiscounted_total_base_amount", base(order.UndiscountedTotal)),
	}
}

// orderLineCommonExtra is shared by both line regimes.
func (s Service) orderLineCommonExtra() []Field[*entities.OrderLine] {
	return []Field[*entities.OrderLine]{
		{Name: "product_variant_id", Get: func(l *entities.OrderLine) any { return nullableInt(l.ProductVariantID) }},
		{Name: "allocations", Get: func(l *entities.OrderLine) any { return s.allocationRecords(l.Allocations) }},
		{Name: "charge_taxes", Get: func(l *entities.OrderLine) any {
			if l.Variant == nil || l.Variant.Product == nil {
				return nil
			}
			return l.Variant.Product.ChargeTaxes
		}},
		{Name: "product_metadata", Get: func(l *entities.OrderLine) any {
			if l.Variant == nil || l.Variant.Product == nil {
				return nil
			}
			return metadataOrEmpty(l.Variant.Product.Metadata)
		}},
		{Name: "product_type_metadata", Get: func(l *entities.OrderLine) any {
			if l.Variant == nil || l.Variant.Product == nil || l.Variant.Product.ProductType == nil {
				return nil
			}
			return metadataOrEmpty(l.Variant.Product.ProductType.Metadata)
		}},
	}
}

func (s Service) allocationRecords(allocations []*entities.Allocation) []*domain.Record {
	records := make([]*domain.Record, 0, len(allocations))
	for _, allocation := range allocations {
		record := domain.NewRecord()
		record.Set("quantity_allocated", allocation.QuantityAllocated)
		record.Set("warehouse_id", s.encode("Warehouse", allocation.WarehouseID))
		records = append(records, record)
	}
	return records
}

func (s Service) orderLinesWithTaxes(ctx context.Context, order *entities.Order) ([]*domain.Record, error) {
	records := make([]*domain.Record, 0, len(order.Lines))
	for _, line := range order.Lines {
		// Each derived price is read once and reused across its fields.
		unit, err := s.Pricing.OrderLineUnit(ctx, order, line)
		if err != nil {
			return nil, err
		}
		total, err := s.Pricing.OrderLineTotal(ctx, order, line)
		if err != nil {
			return nil, err
		}
		taxRate, err := s.Pricing.OrderLineTaxRate(ctx, order, line)
		if err != nil {
			return nil, err
		}

		currency := line.Currency
		extra := append(s.orderLineCommonExtra(),
			constField[*entities.OrderLine]("unit_price_net_amount", domain.Quantize(unit.PriceWithDiscounts.Net, currency)),
			constField[*entities.OrderLine]("unit_price_gross_amount", domain.Quantize(unit.PriceWithDiscounts.Gross, currency)),
			constField[*entities.OrderLine]("total_price_net_amount", domain.Quantize(total.PriceWithDiscounts.Net, currency)),
			constField[*entities.OrderLine]("total_price_gross_amount", domain.Quantize(total.PriceWithDiscounts.Gross, currency)),
			constField[*entities.OrderLine]("undiscounted_unit_price_net_amount", domain.Quantize(unit.UndiscountedPrice.Net, currency)),
			constField[*entities.OrderLine]("undiscounted_unit_price_gross_amount", domain.Quantize(unit.UndiscountedPrice.Gross, currency)),
			constField[*entities.OrderLine]("undiscounted_total_price_net_amount", domain.Quantize(total.UndiscountedPrice.Net, currency)),
			constField[*entities.OrderLine]("undiscounted_total_price_gross_amount", domain.Quantize(total.UndiscountedPrice.Gross, currency)),
			constField[*entities.OrderLine]("tax_rate", domain.NewNumber(taxRate)),
		)

		record, err := serializeOne(line, s.orderLineID(), orderLineFields, nil, extra)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s Service) orderLinesWithoutTaxes(order *entities.Order) ([]*domain.Record, error) {
	useGross := s.PricesEnteredWithTax
	currency := order.Currency
	base := func(price domain.TaxedMoney) domain.Amount {
		return domain.Quantize(domain.BasePrice(price, useGross), currency)
	}

	records := make([]*domain.Record, 0, len(order.Lines))
	for _, line := range order.Lines {
		extra := append(s.orderLineCommonExtra(),
			constField[*entities.OrderLine]("unit_price_base_amount", base(line.UnitPrice)),
			constField[*entities.OrderLine]("total_price_base_amount", base(line.TotalPrice)),
			constField[*entities.OrderLine]("undiscounted_unit_price_base_amount", base(line.UndiscountedUnitPrice)),
			constField[*entities.OrderLine]("undiscounted_total_price_base_amount", base(line.UndiscountedTotalPrice)),
		)
		record, err := serializeOne(line, s.orderLineID(), orderLineFields, nil, extra)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s Service) orderLineID() Field[*entities.OrderLine] {
	return Field[*entities.OrderLine]{Name: "id", Get: func(l *entities.OrderLine) any { return s.encode("OrderLine", l.ID) }}
}

func (s Service) orderFulfillmentRecords(order *entities.Order) ([]*domain.Record, error) {
	currency := order.Currency
	fields := []Field[*entities.Fulfillment]{
		{Name: "status", Get: func(f *entities.Fulfillment) any { return f.Status }},
		{Name: "tracking_number", Get: func(f *entities.Fulfillment) any { return f.TrackingNumber }},
		{Name: "shipping_refund_amount", Get: func(f *entities.Fulfillment) any {
			return quantizedOrNil(f.ShippingRefundAmount, currency)
		}},
		{Name: "total_refund_amount", Get: func(f *entities.Fulfillment) any {
			return quantizedOrNil(f.TotalRefundAmount, currency)
		}},
	}
	id := Field[*entities.Fulfillment]{Name: "id", Get: func(f *entities.Fulfillment) any { return s.encode("Fulfillment", f.ID) }}

	records := make([]*domain.Record, 0, len(order.Fulfillments))
	for _, fulfillment := range order.Fulfillments {
		lines, err := s.fulfillmentLineRecords(fulfillment)
		if err != nil {
			return nil, err
		}
		extra := []Field[*entities.Fulfillment]{
			constField[*entities.Fulfillment]("lines", lines),
			{Name: "created", Get: func(f *entities.Fulfillment) any { return f.CreatedAt }},
		}
		record, err := serializeOne(fulfillment, id, fields, nil, extra)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

var paymentFields = []Field[*entities.Payment]{
	{Name: "gateway", Get: func(p *entities.Payment) any { return p.Gateway }},
	{Name: "payment_method_type", Get: func(p *entities.Payment) any { return p.PaymentMethodType }},
	{Name: "cc_brand", Get: func(p *entities.Payment) any { return p.CCBrand }},
	{Name: "is_active", Get: func(p *entities.Payment) any { return p.IsActive }},
	{Name: "partial", Get: func(p *entities.Payment) any { return p.Partial }},
	{Name: "charge_status", Get: func(p *entities.Payment) any { return p.ChargeStatus }},
	{Name: "psp_reference", Get: func(p *entities.Payment) any { return p.PSPReference }},
	{Name: "total", Get: func(p *entities.Payment) any { return domain.Quantize(p.Total, p.Currency) }},
	{Name: "captured_amount", Get: func(p *entities.Payment) any { return domain.Quantize(p.CapturedAmount, p.Currency) }},
	{Name: "currency", Get: func(p *entities.Payment) any { return p.Currency }},
	{Name: "billing_email", Get: func(p *entities.Payment) any { return p.BillingEmail }},
	{Name: "billing_first_name", Get: func(p *entities.Payment) any { return p.BillingFirstName }},
	{Name: "billing_last_name", Get: func(p *entities.Payment) any { return p.BillingLastName }},
	{Name: "billing_company_name", Get: func(p *entities.Payment) any { return p.BillingCompanyName }},
	{Name: "billing_address_1", Get: func(p *entities.Payment) any { return p.BillingAddress1 }},
	{Name: "billing_address_2", Get: func(p *entities.Payment) any { return p.BillingAddress2 }},
	{Name: "billing_city", Get: func(p *entities.Payment) any { return p.BillingCity }},
	{Name: "billing_city_area", Get: func(p *entities.Payment) any { return p.BillingCityArea }},
	{Name: "billing_postal_code", Get: func(p *entities.Payment) any { return p.BillingPostalCode }},
	{Name: "billing_country_code", Get: func(p *entities.Payment) any { return p.BillingCountryCode }},
	{Name: "billing_country_area", Get: func(p *entities.Payment) any { return p.BillingCountryArea }},
}

func (s Service) paymentRecords(payments []*entities.Payment) ([]*domain.Record, error) {
	id := Field[*entities.Payment]{Name: "id", Get: func(p *entities.Payment) any { return s.encode("Payment", p.ID) }}
	extra := []Field[*entities.Payment]{
		{Name: "created", Get: func(p *entities.Payment) any { return p.CreatedAt }},
		{Name: "modified", Get: func(p *entities.Payment) any { return p.ModifiedAt }},
	}
	return serializeList(payments, id, paymentFields, nil, extra)
}

func (s Service) discountRecords(discounts []*entities.OrderDiscount, currency string) (any, error) {
	fields := []Field[*entities.OrderDiscount]{
		{Name: "type", Get: func(d *entities.OrderDiscount) any { return d.Type }},
		{Name: "value_type", Get: func(d *entities.OrderDiscount) any { return d.ValueType }},
		{Name: "value", Get: func(d *entities.OrderDiscount) any { return domain.NewNumber(d.Value) }},
		{Name: "amount_value", Get: func(d *entities.OrderDiscount) any { return domain.Quantize(d.AmountValue, currency) }},
		{Name: "name", Get: func(d *entities.OrderDiscount) any { return d.Name }},
		{Name: "translated_name", Get: func(d *entities.OrderDiscount) any { return nullableString(d.TranslatedName) }},
		{Name: "reason", Get: func(d *entities.OrderDiscount) any { return nullableString(d.Reason) }},
	}
	id := Field[*entities.OrderDiscount]{Name: "id", Get: func(d *entities.OrderDiscount) any { return s.encode("OrderDiscount", d.ID) }}
	return serializeList(discounts, id, fields, nil, nil)
}

var collectionPointFields = []Field[*entities.Warehouse]{
	{Name: "name", Get: func(w *entities.Warehouse) any { return w.Name }},
	{Name: "email", Get: func(w *entities.Warehouse) any { return w.Email }},
	{Name: "click_and_collect_option", Get: func(w *entities.Warehouse) any { return w.ClickAndCollectOption }},
	{Name: "is_private", Get: func(w *entities.Warehouse) any { return w.IsPrivate }},
}

func (s Service) collectionPointRecord(warehouse *entities.Warehouse) (*domain.Record, error) {
	id := Field[*entities.Warehouse]{Name: "id", Get: func(w *entities.Warehouse) any { return s.encode("Warehouse", w.ID) }}
	related := []Related[*entities.Warehouse]{
		{Name: "address", Build: func(w *entities.Warehouse) (any, error) { return s.addressRecord(w.Address) }},
	}
	return serializeOne(warehouse, id, collectionPointFields, related, nil)
}

func quantizedOrNil(value *decimal.Decimal, currency string) any {
	if value == nil {
		return nil
	}
	return domain.Quantize(*value, currency)
}
