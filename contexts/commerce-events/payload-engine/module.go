package payloadengine

import (
	"log/slog"

	"meridian/contexts/commerce-events/payload-engine/adapters/memory"
	"meridian/contexts/commerce-events/payload-engine/application"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

type Module struct {
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	IDs                  ports.IDEncoder
	Pricing              ports.PricingEngine
	Clock                ports.Clock
	Samples              ports.SampleRepository
	Warehouses           ports.WarehouseFinder
	Anonymizer           ports.Anonymizer
	Version              string
	PricesEnteredWithTax bool
	Logger               *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			IDs:                  deps.IDs,
			Pricing:              deps.Pricing,
			Clock:                deps.Clock,
			Samples:              deps.Samples,
			Warehouses:           deps.Warehouses,
			Anonymizer:           deps.Anonymizer,
			Version:              deps.Version,
			PricesEnteredWithTax: deps.PricesEnteredWithTax,
			Logger:               deps.Logger,
		},
	}
}

// NewInMemoryModule wires the engine against the in-memory store, with
// stored prices standing in for a pricing engine.
func NewInMemoryModule(version string, pricesEnteredWithTax bool, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		IDs:                  store,
		Pricing:              memory.NewStoredPricing(),
		Clock:                store,
		Samples:              store,
		Warehouses:           store,
		Anonymizer:           memory.NewAnonymizer(),
		Version:              version,
		PricesEnteredWithTax: pricesEnteredWithTax,
		Logger:               logger,
	})
	module.Store = store
	return module
}
