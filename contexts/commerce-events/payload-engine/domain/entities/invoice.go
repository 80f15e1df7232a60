package entities

import "time"

type Invoice struct {
	ID          int64
	Number      string
	ExternalURL string
	CreatedAt   time.Time
	Order       *Order
}
