package entities

// Sale is a promotion whose scope-change events carry catalogue deltas.
type Sale struct {
	ID   int64
	Name string
}
