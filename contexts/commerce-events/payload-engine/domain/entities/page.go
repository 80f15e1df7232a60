package entities

import "time"

type Page struct {
	ID              int64
	Title           string
	Content         string
	PublishedAt     *time.Time
	IsPublished     bool
	UpdatedAt       time.Time
	PrivateMetadata map[string]any
	Metadata        map[string]any
}
