package events

import (
	"time"

	"github.com/google/uuid"

	"meridian/contexts/commerce-events/payload-engine/domain"
)

// Envelope is the delivery wrapper handed to webhook transports. The
// document inside is already fully composed; the envelope only adds
// routing identity.
type Envelope struct {
	EventID       string         `json:"event_id"`
	EventType     string         `json:"event_type"`
	SourceService string         `json:"source_service"`
	OccurredAtUTC time.Time      `json:"occurred_at_utc"`
	Payload       *domain.Record `json:"payload"`
}

// Wrap stamps a composed document for delivery.
func Wrap(eventType, sourceService string, occurredAt time.Time, payload *domain.Record) Envelope {
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		SourceService: sourceService,
		OccurredAtUTC: occurredAt.UTC(),
		Payload:       payload,
	}
}
