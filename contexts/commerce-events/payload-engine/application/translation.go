package application

import (
	"sort"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// TranslationPayload builds the translation document. Translated keys are
// emitted as key/value pairs sorted by key so equal translations always
// produce byte-equal documents.
func (s Service) TranslationPayload(translation *entities.Translation, requestor entities.Requestor) ([]*domain.Record, error) {
	record := domain.NewRecord()
	record.Set("id", s.encode(translation.ObjectType, translation.ObjectID))
	record.Set("language_code", translation.LanguageCode)
	record.Set("type", translation.ObjectType)
	record.Set("keys", translationKeyRecords(translation.Keys))
	record.Set("meta", s.meta(requestor))

	if ctx := translation.AttributeValueContext; ctx != nil {
		record.Set("product_id", s.encodedOrNil("Product", ctx.ProductID))
		record.Set("product_variant_id", s.encodedOrNil("ProductVariant", ctx.ProductVariantID))
		record.Set("attribute_id", s.encodedOrNil("Attribute", ctx.AttributeID))
		record.Set("page_id", s.encodedOrNil("Page", ctx.PageID))
		record.Set("page_type_id", s.encodedOrNil("PageType", ctx.PageTypeID))
	}
	return []*domain.Record{record}, nil
}

func translationKeyRecords(keys map[string]any) []*domain.Record {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]*domain.Record, 0, len(names))
	for _, name := range names {
		record := domain.NewRecord()
		record.Set("key", name)
		record.Set("value", keys[name])
		records = append(records, record)
	}
	return records
}

func (s Service) encodedOrNil(typeName string, id *int64) any {
	if id == nil {
		return nil
	}
	return s.encode(typeName, *id)
}
