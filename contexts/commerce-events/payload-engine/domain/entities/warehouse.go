package entities

type Warehouse struct {
	ID                    int64
	Name                  string
	Email                 string
	ClickAndCollectOption string
	IsPrivate             bool
	CountryCode           string
	Address               *Address
}

// Stock is a variant's inventory at one warehouse.
type Stock struct {
	ID             int64
	ProductVariant *ProductVariant
	WarehouseID    int64
	Warehouse      *Warehouse
	Quantity       int
}
