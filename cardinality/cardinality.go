// Package cardinality wraps set and sketch implementations behind a common provider contract. Duplex providers are
// exact and can be enumerated; simplex providers only estimate how many distinct values they have seen.
package cardinality

type Provider[T uint32 | uint64] interface {
	Add(value ...T)
	Or(other Provider[T])
	Clear()
	Cardinality() uint64
}

func CloneProvider[T uint32 | uint64](provider Provider[T]) Provider[T] {
	switch typedProvider := provider.(type) {
	case Simplex[T]:
		return typedProvider.Clone()

	case Duplex[T]:
		return typedProvider.Clone()

	default:
		return provider
	}
}

// Simplex is a one-way cardinality provider. Values added to it can not be read back out.
type Simplex[T uint32 | uint64] interface {
	Provider[T]

	Clone() Simplex[T]
}

type Iterator[T uint32 | uint64] interface {
	HasNext() bool
	Next() T
}

// Duplex is a two-way cardinality provider that behaves like a bit vector.
type Duplex[T uint32 | uint64] interface {
	Provider[T]

	Xor(other Provider[T])
	And(other Provider[T])
	AndNot(other Provider[T])
	Remove(value T)
	Slice() []T
	Contains(value T) bool
	Each(delegate func(value T) bool)
	Iterator() Iterator[T]
	CheckedAdd(value T) bool
	Clone() Duplex[T]
}
