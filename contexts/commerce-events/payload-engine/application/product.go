package application

import (
	"time"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

var productFields = []Field[*entities.Product]{
	{Name: "name", Get: func(p *entities.Product) any { return p.Name }},
	{Name: "description", Get: func(p *entities.Product) any { return p.Description }},
	{Name: "currency", Get: func(p *entities.Product) any { return p.Currency }},
	{Name: "updated_at", Get: func(p *entities.Product) any { return p.UpdatedAt }},
	{Name: "charge_taxes", Get: func(p *entities.Product) any { return p.ChargeTaxes }},
	{Name: "weight", Get: func(p *entities.Product) any { return domain.NewNumber(p.WeightGrams) }},
	{Name: "publication_date", Get: func(p *entities.Product) any { return nullableTime(p.PublicationDate) }},
	{Name: "is_published", Get: func(p *entities.Product) any { return p.IsPublished }},
	{Name: "private_metadata", Get: func(p *entities.Product) any { return metadataOrEmpty(p.PrivateMetadata) }},
	{Name: "metadata", Get: func(p *entities.Product) any { return metadataOrEmpty(p.Metadata) }},
}

// ProductPayload builds the product document with its variants inlined.
func (s Service) ProductPayload(product *entities.Product, requestor entities.Requestor) ([]*domain.Record, error) {
	variants, err := s.productVariantRecords(product.Variants, false, nil)
	if err != nil {
		return nil, err
	}
	related := []Related[*entities.Product]{
		{Name: "category", Build: func(p *entities.Product) (any, error) { return s.categoryRecord(p.Category) }},
		{Name: "collections", Build: func(p *entities.Product) (any, error) { return s.collectionRecords(p.Collections) }},
	}
	extra := []Field[*entities.Product]{
		constField[*entities.Product]("attributes", attributeRecords(product.Attributes)),
		constField[*entities.Product]("media", mediaRecords(product.Media)),
		constField[*entities.Product]("channel_listings", s.productChannelListingRecords(product)),
		constField[*entities.Product]("variants", variants),
		constField[*entities.Product]("meta", s.meta(requestor)),
	}
	id := Field[*entities.Product]{Name: "id", Get: func(p *entities.Product) any { return s.encode("Product", p.ID) }}
	record, err := serializeOne(product, id, productFields, related, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}

// ProductDeletedPayload carries the already-detached variant ids alongside
// the product document, since the variants are gone by the time the event
// is emitted.
func (s Service) ProductDeletedPayload(product *entities.Product, variantIDs []int64, requestor entities.Requestor) ([]*domain.Record, error) {
	records, err := s.ProductPayload(product, requestor)
	if err != nil {
		return nil, err
	}
	encoded := make([]string, 0, len(variantIDs))
	for _, id := range variantIDs {
		encoded = append(encoded, s.encode("ProductVariant", id))
	}
	records[0].Set("variants", encoded)
	records[0].Set("meta", s.meta(requestor))
	return records, nil
}

// ProductVariantPayload builds standalone variant documents for variant
// events.
func (s Service) ProductVariantPayload(variants []*entities.ProductVariant, requestor entities.Requestor, withMeta bool) ([]*domain.Record, error) {
	var meta *domain.Record
	if withMeta {
		meta = s.meta(requestor)
	}
	return s.productVariantRecords(variants, withMeta, meta)
}

// ProductVariantWithStockPayload is the lean shape used for stock-driven
// events: the stock id plus product, variant and warehouse identifiers.
func (s Service) ProductVariantWithStockPayload(stocks []*entities.Stock, requestor entities.Requestor) ([]*domain.Record, error) {
	meta := s.meta(requestor)
	records := make([]*domain.Record, 0, len(stocks))
	for _, stock := range stocks {
		record := domain.NewRecord()
		var productID, variantID, productSlug any
		if variant := stock.ProductVariant; variant != nil {
			variantID = s.encode("ProductVariant", variant.ID)
			productID = s.encode("Product", variant.ProductID)
			if variant.Product != nil {
				productSlug = variant.Product.Slug
			}
		}
		record.Set("id", s.encode("Stock", stock.ID))
		record.Set("product_id", productID)
		record.Set("product_variant_id", variantID)
		record.Set("warehouse_id", s.encode("Warehouse", stock.WarehouseID))
		record.Set("product_slug", productSlug)
		record.Set("meta", meta)
		records = append(records, record)
	}
	return records, nil
}

var collectionFields = []Field[*entities.Collection]{
	{Name: "name", Get: func(c *entities.Collection) any { return c.Name }},
	{Name: "description", Get: func(c *entities.Collection) any { return c.Description }},
	{Name: "background_image_alt", Get: func(c *entities.Collection) any { return c.BackgroundImageAlt }},
	{Name: "private_metadata", Get: func(c *entities.Collection) any { return metadataOrEmpty(c.PrivateMetadata) }},
	{Name: "metadata", Get: func(c *entities.Collection) any { return metadataOrEmpty(c.Metadata) }},
}

// CollectionPayload builds the collection document for collection events.
func (s Service) CollectionPayload(collection *entities.Collection, requestor entities.Requestor) ([]*domain.Record, error) {
	extra := []Field[*entities.Collection]{
		{Name: "background_image", Get: func(c *entities.Collection) any { return nullableString(c.BackgroundImageURL) }},
		constField[*entities.Collection]("meta", s.meta(requestor)),
	}
	id := Field[*entities.Collection]{Name: "id", Get: func(c *entities.Collection) any { return s.encode("Collection", c.ID) }}
	record, err := serializeOne(collection, id, collectionFields, nil, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}

func (s Service) categoryRecord(category *entities.Category) (any, error) {
	if category == nil {
		return nil, nil
	}
	fields := []Field[*entities.Category]{
		{Name: "name", Get: func(c *entities.Category) any { return c.Name }},
		{Name: "slug", Get: func(c *entities.Category) any { return c.Slug }},
	}
	id := Field[*entities.Category]{Name: "id", Get: func(c *entities.Category) any { return s.encode("Category", c.ID) }}
	return serializeOne(category, id, fields, nil, nil)
}

func (s Service) collectionRecords(collections []*entities.Collection) (any, error) {
	fields := []Field[*entities.Collection]{
		{Name: "name", Get: func(c *entities.Collection) any { return c.Name }},
		{Name: "slug", Get: func(c *entities.Collection) any { return c.Slug }},
	}
	id := Field[*entities.Collection]{Name: "id", Get: func(c *entities.Collection) any { return s.encode("Collection", c.ID) }}
	return serializeList(collections, id, fields, nil, nil)
}

func (s Service) productChannelListingRecords(product *entities.Product) []*domain.Record {
	records := make([]*domain.Record, 0, len(product.ChannelListings))
	for _, listing := range product.ChannelListings {
		record := domain.NewRecord()
		record.Set("id", s.encode("ProductChannelListing", listing.ID))
		record.Set("channel_slug", channelSlug(listing.Channel))
		record.Set("published_at", nullableTime(listing.PublishedAt))
		record.Set("is_published", listing.IsPublished)
		record.Set("visible_in_listings", listing.VisibleInListings)
		record.Set("available_for_purchase_at", nullableTime(listing.AvailableForPurchaseAt))
		// Date-only aliases retained for consumers of the older schema.
		record.Set("publication_date", dateOrNil(listing.PublishedAt))
		record.Set("available_for_purchase", dateOrNil(listing.AvailableForPurchaseAt))
		records = append(records, record)
	}
	return records
}

func (s Service) variantChannelListingRecords(listings []*entities.VariantChannelListing) []*domain.Record {
	records := make([]*domain.Record, 0, len(listings))
	for _, listing := range listings {
		record := domain.NewRecord()
		record.Set("id", s.encode("ProductVariantChannelListing", listing.ID))
		record.Set("channel_slug", channelSlug(listing.Channel))
		record.Set("currency", listing.Currency)
		record.Set("price_amount", domain.Quantize(listing.PriceAmount, listing.Currency))
		record.Set("cost_price_amount", quantizedOrNil(listing.CostPriceAmount, listing.Currency))
		records = append(records, record)
	}
	return records
}

func (s Service) productVariantRecords(variants []*entities.ProductVariant, withMeta bool, meta *domain.Record) ([]*domain.Record, error) {
	fields := []Field[*entities.ProductVariant]{
		{Name: "name", Get: func(v *entities.ProductVariant) any { return v.Name }},
		{Name: "sku", Get: func(v *entities.ProductVariant) any { return v.SKU }},
		{Name: "track_inventory", Get: func(v *entities.ProductVariant) any { return v.TrackInventory }},
		{Name: "private_metadata", Get: func(v *entities.ProductVariant) any { return metadataOrEmpty(v.PrivateMetadata) }},
		{Name: "metadata", Get: func(v *entities.ProductVariant) any { return metadataOrEmpty(v.Metadata) }},
	}
	id := Field[*entities.ProductVariant]{Name: "id", Get: func(v *entities.ProductVariant) any { return s.encode("ProductVariant", v.ID) }}

	records := make([]*domain.Record, 0, len(variants))
	for _, variant := range variants {
		extra := []Field[*entities.ProductVariant]{
			constField[*entities.ProductVariant]("attributes", attributeRecords(variant.Attributes)),
			constField[*entities.ProductVariant]("product_id", s.encode("Product", variant.ProductID)),
			constField[*entities.ProductVariant]("media", mediaRecords(variant.Media)),
			constField[*entities.ProductVariant]("channel_listings", s.variantChannelListingRecords(variant.ChannelListings)),
		}
		if withMeta {
			extra = append(extra, constField[*entities.ProductVariant]("meta", meta))
		}
		record, err := serializeOne(variant, id, fields, nil, extra)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func mediaRecords(media []*entities.ProductMedia) []*domain.Record {
	records := make([]*domain.Record, 0, len(media))
	for _, m := range media {
		record := domain.NewRecord()
		record.Set("alt", m.Alt)
		record.Set("url", m.URL())
		records = append(records, record)
	}
	return records
}

func attributeRecords(assignments []*entities.AttributeAssignment) []*domain.Record {
	records := make([]*domain.Record, 0, len(assignments))
	for _, assignment := range assignments {
		if assignment.Attribute == nil {
			continue
		}
		values := make([]*domain.Record, 0, len(assignment.Values))
		for _, value := range assignment.Values {
			v := domain.NewRecord()
			v.Set("name", value.Name)
			v.Set("slug", value.Slug)
			v.Set("value", value.Value)
			values = append(values, v)
		}
		record := domain.NewRecord()
		record.Set("name", assignment.Attribute.Name)
		record.Set("slug", assignment.Attribute.Slug)
		record.Set("values", values)
		records = append(records, record)
	}
	return records
}

func channelSlug(channel *entities.Channel) any {
	if channel == nil {
		return nil
	}
	return channel.Slug
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}

func dateOrNil(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.Format("2006-01-02")
}
