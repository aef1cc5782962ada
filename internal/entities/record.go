package entities

// Identifiable is implemented by records keyed by an integer id.
type Identifiable[T any] interface {
	*T
	GetID() int
	SetID(int)
}
