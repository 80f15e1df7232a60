package application

import (
	"reflect"
	"testing"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

func TestSalePayloadCatalogueDiff(t *testing.T) {
	service := testService()
	previous := domain.CatalogueInfo{"products": {"A", "B"}}
	current := domain.CatalogueInfo{"products": {"B", "C"}}

	records, err := service.SalePayload(&entities.Sale{ID: 4, Name: "Summer"}, previous, current, nil)
	if err != nil {
		t.Fatalf("sale payload failed: %v", err)
	}
	record := records[0]

	id, _ := record.Get("id")
	if id != "Sale:4" {
		t.Fatalf("unexpected sale id: %v", id)
	}
	added, _ := record.Get("products_added")
	if !reflect.DeepEqual(added, []string{"C"}) {
		t.Fatalf("expected products_added [C], got %v", added)
	}
	removed, _ := record.Get("products_removed")
	if !reflect.DeepEqual(removed, []string{"A"}) {
		t.Fatalf("expected products_removed [A], got %v", removed)
	}
}

func TestSalePayloadEmptyCataloguesYieldEmptyLists(t *testing.T) {
	service := testService()
	records, err := service.SalePayload(&entities.Sale{ID: 4, Name: "Summer"}, nil, nil, nil)
	if err != nil {
		t.Fatalf("sale payload failed: %v", err)
	}
	record := records[0]
	for _, key := range []string{"categories_added", "collections_removed", "variants_added"} {
		value, ok := record.Get(key)
		if !ok {
			t.Fatalf("missing key %s", key)
		}
		ids, ok := value.([]string)
		if !ok || len(ids) != 0 {
			t.Fatalf("expected empty list for %s, got %v", key, value)
		}
	}
}
