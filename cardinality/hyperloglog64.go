package cardinality

import (
	"encoding/binary"

	"github.com/axiomhq/hyperloglog"
)

type hyperLogLog64 struct {
	sketch *hyperloglog.Sketch
	buffer [8]byte
}

// NewHyperLogLog64 returns a 14 register HyperLogLog sketch. Sparse mode is disabled so small sketches estimate the
// same way large ones do.
func NewHyperLogLog64() Simplex[uint64] {
	return &hyperLogLog64{
		sketch: hyperloglog.NewNoSparse(),
	}
}

func NewHyperLogLog64Provider() Provider[uint64] {
	return NewHyperLogLog64()
}

func (s *hyperLogLog64) Clone() Simplex[uint64] {
	return &hyperLogLog64{
		sketch: s.sketch.Clone(),
	}
}

func (s *hyperLogLog64) Clear() {
	s.sketch = hyperloglog.NewNoSparse()
}

func (s *hyperLogLog64) Add(values ...uint64) {
	for _, value := range values {
		binary.LittleEndian.PutUint64(s.buffer[:], value)
		s.sketch.Insert(s.buffer[:])
	}
}

func (s *hyperLogLog64) Or(provider Provider[uint64]) {
	switch typedProvider := provider.(type) {
	case *hyperLogLog64:
		s.sketch.Merge(typedProvider.sketch)

	case Duplex[uint64]:
		typedProvider.Each(func(nextValue uint64) bool {
			s.Add(nextValue)
			return true
		})
	}
}

func (s *hyperLogLog64) Cardinality() uint64 {
	return s.sketch.Estimate()
}
