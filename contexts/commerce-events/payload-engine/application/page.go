package application

import (
	"meridian/contexts/commerce-events/payload-engine/domain"
	"meridian/contexts/commerce-events/payload-engine/domain/entities"
)

var pageFields = []Field[*entities.Page]{
	{Name: "private_metadata", Get: func(p *entities.Page) any { return metadataOrEmpty(p.PrivateMetadata) }},
	{Name: "metadata", Get: func(p *entities.Page) any { return metadataOrEmpty(p.Metadata) }},
	{Name: "title", Get: func(p *entities.Page) any { return p.Title }},
	{Name: "content", Get: func(p *entities.Page) any { return p.Content }},
	{Name: "published_at", Get: func(p *entities.Page) any { return nullableTime(p.PublishedAt) }},
	{Name: "is_published", Get: func(p *entities.Page) any { return p.IsPublished }},
	{Name: "updated_at", Get: func(p *entities.Page) any { return p.UpdatedAt }},
}

// PagePayload builds the page document for page events.
func (s Service) PagePayload(page *entities.Page, requestor entities.Requestor) ([]*domain.Record, error) {
	extra := []Field[*entities.Page]{
		constField[*entities.Page]("meta", s.meta(requestor)),
		// Date-only alias retained for consumers of the older schema.
		{Name: "publication_date", Get: func(p *entities.Page) any { return dateOrNil(p.PublishedAt) }},
	}
	id := Field[*entities.Page]{Name: "id", Get: func(p *entities.Page) any { return s.encode("Page", p.ID) }}
	record, err := serializeOne(page, id, pageFields, nil, extra)
	if err != nil {
		return nil, err
	}
	return []*domain.Record{record}, nil
}
