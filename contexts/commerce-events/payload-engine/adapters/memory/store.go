package memory

import (
	"context"
	"encoding/base64"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

// Store is an in-memory entity repository for development and tests. It
// also serves as the clock and id encoder so a module can run with no
// external services at all.
type Store struct {
	mu           sync.Mutex
	orders       []*entities.Order
	products     []*entities.Product
	checkouts    []*entities.Checkout
	fulfillments []*entities.Fulfillment
	pages        []*entities.Page
	warehouses   []*entities.Warehouse

	now func() time.Time
	rng *rand.Rand
}

func NewStore() *Store {
	return &Store{
		now: func() time.Time { return time.Now().UTC() },
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetNow fixes the clock, for tests.
func (s *Store) SetNow(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = func() time.Time { return now }
}

// SetRand replaces the selection source, for deterministic tests.
func (s *Store) SetRand(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rng
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now()
}

// Encode produces an opaque id by base64-encoding "Type:id".
func (s *Store) Encode(typeName string, id int64) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%d", typeName, id)))
}

func (s *Store) AddOrder(order *entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
}

func (s *Store) AddProduct(product *entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
}

func (s *Store) AddCheckout(checkout *entities.Checkout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkouts = append(s.checkouts, checkout)
}

func (s *Store) AddFulfillment(fulfillment *entities.Fulfillment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fulfillments = append(s.fulfillments, fulfillment)
}

func (s *Store) AddPage(page *entities.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = append(s.pages, page)
}

func (s *Store) AddWarehouse(warehouse *entities.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouses = append(s.warehouses, warehouse)
}

func (s *Store) RandomOrder(_ context.Context, filter ports.OrderSampleFilter) (*entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	matches := make([]*entities.Order, 0, len(s.orders))
	for _, order := range s.orders {
		if matchesFilter(order, filter) {
			matches = append(matches, order)
		}
	}
	if len(matches) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return matches[s.rng.Intn(len(matches))], nil
}

func matchesFilter(order *entities.Order, filter ports.OrderSampleFilter) bool {
	if filter.Status != "" && order.Status != filter.Status {
		return false
	}
	if filter.ChargeStatus != "" {
		charged := false
		for _, payment := range order.Payments {
			if payment.ChargeStatus == filter.ChargeStatus {
				charged = true
				break
			}
		}
		if !charged {
			return false
		}
	}
	if filter.FulfillmentStatus != "" {
		fulfilled := false
		for _, fulfillment := range order.Fulfillments {
			if fulfillment.Status == filter.FulfillmentStatus {
				fulfilled = true
				break
			}
		}
		if !fulfilled {
			return false
		}
	}
	return true
}

func (s *Store) RandomProduct(_ context.Context) (*entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.products) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return s.products[s.rng.Intn(len(s.products))], nil
}

func (s *Store) RandomCheckout(_ context.Context) (*entities.Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.checkouts) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return s.checkouts[s.rng.Intn(len(s.checkouts))], nil
}

func (s *Store) RandomFulfillment(_ context.Context) (*entities.Fulfillment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.fulfillments) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return s.fulfillments[s.rng.Intn(len(s.fulfillments))], nil
}

func (s *Store) RandomPage(_ context.Context) (*entities.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pages) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return s.pages[s.rng.Intn(len(s.pages))], nil
}

func (s *Store) WarehouseForCountry(_ context.Context, countryCode string) (*entities.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, warehouse := range s.warehouses {
		if strings.EqualFold(warehouse.CountryCode, countryCode) {
			return warehouse, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}
