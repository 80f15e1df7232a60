package entities

import "time"

// User is a storefront customer. Anonymous-session users carry IsAnonymous
// and still resolve as a "user" principal.
type User struct {
	ID                     int64
	Email                  string
	FirstName              string
	LastName               string
	IsActive               bool
	IsAnonymous            bool
	DateJoined             time.Time
	LanguageCode           string
	PrivateMetadata        map[string]any
	Metadata               map[string]any
	DefaultShippingAddress *Address
	DefaultBillingAddress  *Address
	Addresses              []*Address
}

// App is an automated integration acting on the platform.
type App struct {
	ID   int64
	Name string
}

// Requestor is the actor attributed as an event's cause: a customer or an
// integration. A nil Requestor resolves to a null principal.
type Requestor interface {
	requestor()
}

func (*User) requestor() {}
func (*App) requestor()  {}
