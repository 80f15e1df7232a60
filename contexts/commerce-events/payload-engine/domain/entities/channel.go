package entities

type Channel struct {
	ID           int64
	Slug         string
	CurrencyCode string
}
