package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	domainerrors "meridian/contexts/commerce-events/payload-engine/domain/errors"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

const (
	kindOrder       = "order"
	kindProduct     = "product"
	kindCheckout    = "checkout"
	kindFulfillment = "fulfillment"
	kindPage        = "page"
)

// sampleEntityModel stores a full entity graph as a jsonb snapshot, with
// the filterable order state lifted into indexed columns.
type sampleEntityModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	EntityKey         string `gorm:"size:128;uniqueIndex"`
	Kind              string `gorm:"size:32;index:idx_sample_kind_state,priority:1"`
	Status            string `gorm:"size:64;index:idx_sample_kind_state,priority:2"`
	ChargeStatus      string `gorm:"size:64"`
	FulfillmentStatus string `gorm:"size:64"`
	Snapshot          []byte `gorm:"type:jsonb"`
	CreatedAt         time.Time
}

func (sampleEntityModel) TableName() string { return "sample_entities" }

type warehouseModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	CountryCode string `gorm:"size:2;index"`
	Snapshot    []byte `gorm:"type:jsonb"`
}

func (warehouseModel) TableName() string { return "warehouses" }

// Repository persists entity snapshots for sample payload generation.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&sampleEntityModel{}, &warehouseModel{})
}

// SeedOrder stores an order snapshot keyed by its numeric id. Seeding the
// same order twice reports a duplicate so callers can upsert explicitly.
func (r *Repository) SeedOrder(ctx context.Context, order *entities.Order) error {
	var chargeStatus, fulfillmentStatus string
	for _, payment := range order.Payments {
		if payment.ChargeStatus != "" {
			chargeStatus = payment.ChargeStatus
			break
		}
	}
	for _, fulfillment := range order.Fulfillments {
		if fulfillment.Status != "" {
			fulfillmentStatus = fulfillment.Status
			break
		}
	}
	return r.seed(ctx, sampleEntityModel{
		EntityKey:         fmt.Sprintf("%s:%d", kindOrder, order.ID),
		Kind:              kindOrder,
		Status:            order.Status,
		ChargeStatus:      chargeStatus,
		FulfillmentStatus: fulfillmentStatus,
	}, order)
}

func (r *Repository) SeedProduct(ctx context.Context, product *entities.Product) error {
	return r.seed(ctx, sampleEntityModel{
		EntityKey: fmt.Sprintf("%s:%d", kindProduct, product.ID),
		Kind:      kindProduct,
	}, product)
}

func (r *Repository) SeedCheckout(ctx context.Context, checkout *entities.Checkout) error {
	return r.seed(ctx, sampleEntityModel{
		EntityKey: fmt.Sprintf("%s:%s", kindCheckout, checkout.Token),
		Kind:      kindCheckout,
	}, checkout)
}

func (r *Repository) SeedFulfillment(ctx context.Context, fulfillment *entities.Fulfillment) error {
	return r.seed(ctx, sampleEntityModel{
		EntityKey: fmt.Sprintf("%s:%d", kindFulfillment, fulfillment.ID),
		Kind:      kindFulfillment,
	}, fulfillment)
}

func (r *Repository) SeedPage(ctx context.Context, page *entities.Page) error {
	return r.seed(ctx, sampleEntityModel{
		EntityKey: fmt.Sprintf("%s:%d", kindPage, page.ID),
		Kind:      kindPage,
	}, page)
}

func (r *Repository) SeedWarehouse(ctx context.Context, warehouse *entities.Warehouse) error {
	snapshot, err := json.Marshal(warehouse)
	if err != nil {
		return err
	}
	row := warehouseModel{CountryCode: warehouse.CountryCode, Snapshot: snapshot}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntity
		}
		return err
	}
	return nil
}

func (r *Repository) seed(ctx context.Context, row sampleEntityModel, entity any) error {
	snapshot, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	row.Snapshot = snapshot
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEntity
		}
		return err
	}
	return nil
}

func (r *Repository) RandomOrder(ctx context.Context, filter ports.OrderSampleFilter) (*entities.Order, error) {
	tx := r.db.WithContext(ctx).Model(&sampleEntityModel{}).Where("kind = ?", kindOrder)
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.ChargeStatus != "" {
		tx = tx.Where("charge_status = ?", filter.ChargeStatus)
	}
	if filter.FulfillmentStatus != "" {
		tx = tx.Where("fulfillment_status = ?", filter.FulfillmentStatus)
	}
	var order entities.Order
	if err := r.randomSnapshot(tx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) RandomProduct(ctx context.Context) (*entities.Product, error) {
	var product entities.Product
	if err := r.randomSnapshot(r.kindQuery(ctx, kindProduct), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *Repository) RandomCheckout(ctx context.Context) (*entities.Checkout, error) {
	var checkout entities.Checkout
	if err := r.randomSnapshot(r.kindQuery(ctx, kindCheckout), &checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (r *Repository) RandomFulfillment(ctx context.Context) (*entities.Fulfillment, error) {
	var fulfillment entities.Fulfillment
	if err := r.randomSnapshot(r.kindQuery(ctx, kindFulfillment), &fulfillment); err != nil {
		return nil, err
	}
	return &fulfillment, nil
}

func (r *Repository) RandomPage(ctx context.Context) (*entities.Page, error) {
	var page entities.Page
	if err := r.randomSnapshot(r.kindQuery(ctx, kindPage), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *Repository) WarehouseForCountry(ctx context.Context, countryCode string) (*entities.Warehouse, error) {
	var row warehouseModel
	err := r.db.WithContext(ctx).
		Where("country_code = ?", countryCode).
		Take(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	var warehouse entities.Warehouse
	if err := json.Unmarshal(row.Snapshot, &warehouse); err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *Repository) kindQuery(ctx context.Context, kind string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&sampleEntityModel{}).Where("kind = ?", kind)
}

// randomSnapshot picks one matching row uniformly in the database rather
// than loading candidates into memory.
func (r *Repository) randomSnapshot(tx *gorm.DB, out any) error {
	var row sampleEntityModel
	err := tx.Order("random()").Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(row.Snapshot, out)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.SampleRepository = (*Repository)(nil)
var _ ports.WarehouseFinder = (*Repository)(nil)
