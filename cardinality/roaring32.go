package cardinality

import (
	"github.com/RoaringBitmap/roaring/v2"
)

type bitmap32Iterator struct {
	iterator roaring.IntPeekable
}

func (s bitmap32Iterator) HasNext() bool {
	return s.iterator.HasNext()
}

func (s bitmap32Iterator) Next() uint32 {
	return s.iterator.Next()
}

type bitmap32 struct {
	bitmap *roaring.Bitmap
}

func NewBitmap32() Duplex[uint32] {
	return bitmap32{
		bitmap: roaring.New(),
	}
}

func NewBitmap32Provider() Provider[uint32] {
	return NewBitmap32()
}

func NewBitmap32With(values ...uint32) Duplex[uint32] {
	duplex := NewBitmap32()
	duplex.Add(values...)

	return duplex
}

func (s bitmap32) Clear() {
	s.bitmap.Clear()
}

func (s bitmap32) Each(delegate func(nextValue uint32) bool) {
	for itr := s.bitmap.Iterator(); itr.HasNext(); {
		if ok := delegate(itr.Next()); !ok {
			break
		}
	}
}

func (s bitmap32) Iterator() Iterator[uint32] {
	return bitmap32Iterator{
		iterator: s.bitmap.Iterator(),
	}
}

func (s bitmap32) Slice() []uint32 {
	return s.bitmap.ToArray()
}

func (s bitmap32) Contains(value uint32) bool {
	return s.bitmap.Contains(value)
}

func (s bitmap32) CheckedAdd(value uint32) bool {
	return s.bitmap.CheckedAdd(value)
}

func (s bitmap32) Add(values ...uint32) {
	switch len(values) {
	case 0:
	case 1:
		s.bitmap.Add(values[0])
	default:
		s.bitmap.AddMany(values)
	}
}

func (s bitmap32) Remove(value uint32) {
	s.bitmap.Remove(value)
}

// asBitmap32 copies any duplex into a roaring bitmap so that set operations can run natively.
func asBitmap32(provider Duplex[uint32]) *roaring.Bitmap {
	if typedProvider, isBitmap := provider.(bitmap32); isBitmap {
		return typedProvider.bitmap
	}

	providerCopy := roaring.New()

	provider.Each(func(value uint32) bool {
		providerCopy.Add(value)
		return true
	})

	return providerCopy
}

func (s bitmap32) Xor(provider Provider[uint32]) {
	if typedProvider, isDuplex := provider.(Duplex[uint32]); isDuplex {
		s.bitmap.Xor(asBitmap32(typedProvider))
	}
}

func (s bitmap32) And(provider Provider[uint32]) {
	if typedProvider, isDuplex := provider.(Duplex[uint32]); isDuplex {
		s.bitmap.And(asBitmap32(typedProvider))
	}
}

func (s bitmap32) Or(provider Provider[uint32]) {
	if typedProvider, isDuplex := provider.(Duplex[uint32]); isDuplex {
		s.bitmap.Or(asBitmap32(typedProvider))
	}
}

func (s bitmap32) AndNot(provider Provider[uint32]) {
	if typedProvider, isDuplex := provider.(Duplex[uint32]); isDuplex {
		s.bitmap.AndNot(asBitmap32(typedProvider))
	}
}

func (s bitmap32) Cardinality() uint64 {
	return s.bitmap.GetCardinality()
}

func (s bitmap32) Clone() Duplex[uint32] {
	return bitmap32{
		bitmap: s.bitmap.Clone(),
	}
}
