package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MediaTypeImage = "IMAGE"
	MediaTypeVideo = "VIDEO"
)

type ProductType struct {
	ID       int64
	Name     string
	Metadata map[string]any
}

type Category struct {
	ID   int64
	Name string
	Slug string
}

type Collection struct {
	ID                 int64
	Name               string
	Slug               string
	Description        string
	BackgroundImageAlt string
	BackgroundImageURL *string
	PrivateMetadata    map[string]any
	Metadata           map[string]any
}

type ProductMedia struct {
	ID          int64
	Alt         string
	Type        string
	ImageURL    string
	ExternalURL string
}

// URL resolves to the hosted image for image media and to the external
// source otherwise.
func (m *ProductMedia) URL() string {
	if m.Type == MediaTypeImage {
		return m.ImageURL
	}
	return m.ExternalURL
}

type Product struct {
	ID              int64
	Name            string
	Slug            string
	Description     string
	Currency        string
	UpdatedAt       time.Time
	ChargeTaxes     bool
	WeightGrams     decimal.Decimal
	PublicationDate *time.Time
	IsPublished     bool
	PrivateMetadata map[string]any
	Metadata        map[string]any
	Category        *Category
	Collections     []*Collection
	ProductType     *ProductType
	Variants        []*ProductVariant
	Media           []*ProductMedia
	ChannelListings []*ProductChannelListing
	Attributes      []*AttributeAssignment
}

type ProductChannelListing struct {
	ID                     int64
	Channel                *Channel
	PublishedAt            *time.Time
	IsPublished            bool
	VisibleInListings      bool
	AvailableForPurchaseAt *time.Time
}

type VariantChannelListing struct {
	ID              int64
	Channel         *Channel
	Currency        string
	PriceAmount     decimal.Decimal
	CostPriceAmount *decimal.Decimal
}

type ProductVariant struct {
	ID              int64
	SKU             string
	Name            string
	TrackInventory  bool
	PrivateMetadata map[string]any
	Metadata        map[string]any
	ProductID       int64
	Product         *Product
	WeightGrams     *decimal.Decimal
	ChannelListings []*VariantChannelListing
	Media           []*ProductMedia
	Attributes      []*AttributeAssignment
	Stocks          []*Stock
}

// DisplayName is the human name used on line payloads: product name plus the
// variant name when one exists.
func (v *ProductVariant) DisplayName() string {
	if v.Product == nil {
		return v.Name
	}
	if v.Name == "" {
		return v.Product.Name
	}
	return fmt.Sprintf("%s (%s)", v.Product.Name, v.Name)
}

type AttributeAssignment struct {
	Attribute *Attribute
	Values    []*AttributeValue
}

type Attribute struct {
	ID   int64
	Name string
	Slug string
}

type AttributeValue struct {
	ID    int64
	Name  string
	Slug  string
	Value string
}
