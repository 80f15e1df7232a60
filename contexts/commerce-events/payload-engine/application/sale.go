package application

import (
	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

// SalePayload builds the sale document carrying the catalogue membership
// diff between two snapshots. Either snapshot may be nil, meaning empty.
func (s Service) SalePayload(sale *entities.Sale, previous, current domain.CatalogueInfo, requestor entities.Requestor) ([]*domain.Record, error) {
	record := domain.NewRecord()
	record.Set("id", s.encode("Sale", sale.ID))
	record.Set("name", sale.Name)
	record.Set("meta", s.meta(requestor))
	for _, key := range []string{"categories", "collections", "products", "variants"} {
		record.Set(key+"_added", domain.Added(previous, current, key))
		record.Set(key+"_removed", domain.Removed(previous, current, key))
	}
	return []*domain.Record{record}, nil
}
