package application

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
)

// FulfillmentPayload builds the standalone fulfillment document sent for
// fulfillment events. It embeds the full with-taxes order document.
func (s Service) FulfillmentPayload(ctx context.Context, fulfillment *entities.Fulfillment, requestor entities.Requestor) (*domain.Record, error) {
	order := fulfillment.Order
	if order == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	orderRecords, err := s.OrderPayload(ctx, order, requestor, false)
	if err != nil {
		return nil, err
	}
	lines, err := s.fulfillmentLineRecords(fulfillment)
	if err != nil {
		return nil, err
	}
	warehouseAddress, err := s.fulfillmentWarehouseAddress(ctx, fulfillment)
	if err != nil {
		return nil, err
	}

	currency := order.Currency
	fields := []Field[*entities.Fulfillment]{
		{Name: "status", Get: func(f *entities.Fulfillment) any { return f.Status }},
		{Name: "tracking_code", Get: func(f *entities.Fulfillment) any { return f.TrackingNumber }},
		{Name: "shipping_refund_amount", Get: func(f *entities.Fulfillment) any {
			return quantizedOrNil(f.ShippingRefundAmount, currency)
		}},
		{Name: "total_refund_amount", Get: func(f *entities.Fulfillment) any {
			return quantizedOrNil(f.TotalRefundAmount, currency)
		}},
	}
	related := []Related[*entities.Fulfillment]{
		{Name: "warehouse_address", Build: func(*entities.Fulfillment) (any, error) { return warehouseAddress, nil }},
	}
	extra := []Field[*entities.Fulfillment]{
		constField[*entities.Fulfillment]("user_email", order.CustomerEmail()),
		constField[*entities.Fulfillment]("order", orderRecords[0]),
		constField[*entities.Fulfillment]("lines", lines),
		constField[*entities.Fulfillment]("meta", s.meta(requestor)),
	}
	id := Field[*entities.Fulfillment]{Name: "id", Get: func(f *entities.Fulfillment) any { return s.encode("Fulfillment", f.ID) }}
	return serializeOne(fulfillment, id, fields, related, extra)
}

// fulfillmentWarehouseAddress picks the origin warehouse: the one holding
// the first line's stock, falling back to a lookup by destination country.
func (s Service) fulfillmentWarehouseAddress(ctx context.Context, fulfillment *entities.Fulfillment) (any, error) {
	for _, line := range fulfillment.Lines {
		if line.Stock != nil && line.Stock.Warehouse != nil {
			return s.addressRecord(line.Stock.Warehouse.Address)
		}
	}
	order := fulfillment.Order
	if order == nil || s.Warehouses == nil {
		return nil, nil
	}
	warehouse, err := s.Warehouses.WarehouseForCountry(ctx, order.Country())
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.addressRecord(warehouse.Address)
}

func (s Service) fulfillmentLineRecords(fulfillment *entities.Fulfillment) ([]*domain.Record, error) {
	records := make([]*domain.Record, 0, len(fulfillment.Lines))
	for _, line := range fulfillment.Lines {
		record, err := s.fulfillmentLineRecord(line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// fulfillmentLineRecord flattens the order line into the fulfilled shape.
// The total is the undiscounted unit price times the fulfilled quantity,
// not the order line quantity.
func (s Service) fulfillmentLineRecord(line *entities.FulfillmentLine) (*domain.Record, error) {
	orderLine := line.OrderLine
	if orderLine == nil {
		return nil, domainerrors.ErrInvalidInput
	}
	currency := orderLine.Currency

	var weight any
	var productType any
	if variant := orderLine.Variant; variant != nil {
		if variant.WeightGrams != nil {
			weight = domain.NewNumber(*variant.WeightGrams)
		}
		if variant.Product != nil && variant.Product.ProductType != nil {
			productType = variant.Product.ProductType.Name
		}
	}
	var warehouseID any
	if line.Stock != nil {
		warehouseID = s.encode("Warehouse", line.Stock.WarehouseID)
	}

	unitNet := domain.Quantize(orderLine.UnitPrice.Net, currency)
	unitGross := domain.Quantize(orderLine.UnitPrice.Gross, currency)
	undiscountedNet := domain.Quantize(orderLine.UndiscountedUnitPrice.Net, currency)
	undiscountedGross := domain.Quantize(orderLine.UndiscountedUnitPrice.Gross, currency)
	quantity := decimal.NewFromInt(int64(line.Quantity))
	totalNet := domain.Quantize(undiscountedNet.Decimal().Mul(quantity), currency)
	totalGross := domain.Quantize(undiscountedGross.Decimal().Mul(quantity), currency)

	record := domain.NewRecord()
	record.Set("id", s.encode("FulfillmentLine", line.ID))
	record.Set("product_name", orderLine.ProductName)
	record.Set("variant_name", orderLine.VariantName)
	record.Set("product_sku", nullableString(orderLine.ProductSKU))
	record.Set("product_variant_id", nullableInt(orderLine.ProductVariantID))
	record.Set("weight", weight)
	record.Set("weight_unit", "gram")
	record.Set("product_type", productType)
	record.Set("unit_price_net", unitNet)
	record.Set("unit_price_gross", unitGross)
	record.Set("undiscounted_unit_price_net", undiscountedNet)
	record.Set("undiscounted_unit_price_gross", undiscountedGross)
	record.Set("total_price_net_amount", totalNet)
	record.Set("total_price_gross_amount", totalGross)
	record.Set("currency", currency)
	record.Set("warehouse_id", warehouseID)
	record.Set("quantity", line.Quantity)
	record.Set("sale_id", nullableString(orderLine.SaleID))
	record.Set("voucher_code", nullableString(orderLine.VoucherCode))
	return record, nil
}
