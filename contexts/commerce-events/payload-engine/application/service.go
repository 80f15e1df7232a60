package application

import (
	"log/slog"
	"time"

	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
	"meridian/contexts/commerce-events/payload-engine/ports"
)

// Service composes webhook payload documents from domain entities. Every
// collaborator is injected; the service holds no state across calls and
// never mutates the entity graph it reads.
type Service struct {
	IDs        ports.IDEncoder
	Pricing    ports.PricingEngine
	Clock      ports.Clock
	Samples    ports.SampleRepository
	Warehouses ports.WarehouseFinder
	Anonymizer ports.Anonymizer

	// Version is the build tag stamped into meta envelopes.
	Version string

	// PricesEnteredWithTax states whether displayed prices are
	// tax-inclusive; it drives base-price selection in the without-taxes
	// regime.
	PricesEnteredWithTax bool

	Logger *slog.Logger
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s Service) encode(typeName string, id int64) string {
	return s.IDs.Encode(typeName, id)
}

// requestorData resolves the issuing principal. No requestor resolves to a
// null id/type pair; end users (including anonymous sessions) resolve to an
// encoded user id; integrations resolve to their name.
func (s Service) requestorData(requestor entities.Requestor) *domain.Record {
	switch r := requestor.(type) {
	case *entities.User:
		if r == nil {
			return domain.Principal(nil, nil)
		}
		return domain.Principal(s.encode("User", r.ID), "user")
	case *entities.App:
		if r == nil {
			return domain.Principal(nil, nil)
		}
		return domain.Principal(r.Name, "app")
	default:
		return domain.Principal(nil, nil)
	}
}

func (s Service) meta(requestor entities.Requestor) *domain.Record {
	return domain.BuildMeta(s.now(), s.Version, s.requestorData(requestor), nil, false)
}
