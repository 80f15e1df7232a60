package entities

// Translated object type names, matching the id-encoder type vocabulary.
const (
	TranslationTypeProduct        = "Product"
	TranslationTypeProductVariant = "ProductVariant"
	TranslationTypeCollection     = "Collection"
	TranslationTypeCategory       = "Category"
	TranslationTypeAttribute      = "Attribute"
	TranslationTypeAttributeValue = "AttributeValue"
	TranslationTypePage           = "Page"
	TranslationTypeShippingMethod = "ShippingMethod"
)

// Translation carries one object's translated key/value pairs.
// AttributeValueContext is non-nil only for attribute-value translations,
// which additionally expose the foreign keys of the objects they refer to.
type Translation struct {
	ObjectType            string
	ObjectID              int64
	LanguageCode          string
	Keys                  map[string]any
	AttributeValueContext *TranslationContext
}

type TranslationContext struct {
	ProductID        *int64
	ProductVariantID *int64
	AttributeID      *int64
	PageID           *int64
	PageTypeID       *int64
}
