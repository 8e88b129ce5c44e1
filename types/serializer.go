package types

// Serializer is implemented by every type that can flatten itself into an
// ordered sequence of primitive values for hashing.
type Serializer[T any] interface {
	Serialize() []T
}
