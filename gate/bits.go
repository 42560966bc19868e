package gate

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Wire is the index of a single bit in a register.
type Wire = uint32

// Register is a fixed-length, zero-indexed, mutable sequence of bits. Gates read and write a register through this
// interface. Indexing a wire at or past Len is a contract violation and panics.
type Register interface {
	Len() uint32
	Test(wire Wire) bool
	Flip(wire Wire)
	Exchange(a, b Wire)
}

// Bits is the plain boolean-slice register. It is the representation the gate interpreter is tuned for.
type Bits []bool

func NewBits(length uint32) Bits {
	return make(Bits, length)
}

// ParseBits reads a register from a string of '0' and '1' characters, lowest wire first.
func ParseBits(text string) (Bits, error) {
	bits := make(Bits, 0, len(text))

	for idx, char := range strings.TrimSpace(text) {
		switch char {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", char, idx)
		}
	}

	return bits, nil
}

func (s Bits) Len() uint32 {
	return uint32(len(s))
}

func (s Bits) Test(wire Wire) bool {
	return s[wire]
}

func (s Bits) Flip(wire Wire) {
	s[wire] = !s[wire]
}

func (s Bits) Exchange(a, b Wire) {
	s[a], s[b] = s[b], s[a]
}

func (s Bits) Clone() Bits {
	clone := make(Bits, len(s))
	copy(clone, s)

	return clone
}

func (s Bits) Equal(other Bits) bool {
	if len(s) != len(other) {
		return false
	}

	for idx := range s {
		if s[idx] != other[idx] {
			return false
		}
	}

	return true
}

// Count returns the number of set wires.
func (s Bits) Count() uint32 {
	count := uint32(0)

	for _, bit := range s {
		if bit {
			count++
		}
	}

	return count
}

func (s Bits) String() string {
	builder := strings.Builder{}
	builder.Grow(len(s))

	for _, bit := range s {
		if bit {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}

	return builder.String()
}

// PackedBits is a word-packed register. The underlying bitset grows on demand, so the register carries its own fixed
// length and enforces it.
type PackedBits struct {
	set    *bitset.BitSet
	length uint32
}

func NewPackedBits(length uint32) PackedBits {
	return PackedBits{
		set:    bitset.New(uint(length)),
		length: length,
	}
}

// Pack copies a plain register into a packed one.
func Pack(bits Bits) PackedBits {
	packed := NewPackedBits(bits.Len())

	for idx, bit := range bits {
		if bit {
			packed.set.Set(uint(idx))
		}
	}

	return packed
}

func (s PackedBits) checkBounds(wire Wire) {
	if wire >= s.length {
		panic(fmt.Sprintf("wire %d out of range for register of length %d", wire, s.length))
	}
}

func (s PackedBits) Len() uint32 {
	return s.length
}

func (s PackedBits) Test(wire Wire) bool {
	s.checkBounds(wire)
	return s.set.Test(uint(wire))
}

func (s PackedBits) Flip(wire Wire) {
	s.checkBounds(wire)
	s.set.Flip(uint(wire))
}

func (s PackedBits) Exchange(a, b Wire) {
	s.checkBounds(a)
	s.checkBounds(b)

	var (
		aValue = s.set.Test(uint(a))
		bValue = s.set.Test(uint(b))
	)

	s.set.SetTo(uint(a), bValue)
	s.set.SetTo(uint(b), aValue)
}

// Count returns the number of set wires.
func (s PackedBits) Count() uint32 {
	return uint32(s.set.Count())
}

// Unpack copies the packed register into a plain one.
func (s PackedBits) Unpack() Bits {
	bits := make(Bits, s.length)

	for idx := range bits {
		bits[idx] = s.set.Test(uint(idx))
	}

	return bits
}

func (s PackedBits) String() string {
	return s.Unpack().String()
}
