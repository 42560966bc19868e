package logic

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

func Equal(a, b Formula) bool {
	if a == b {
		return true
	}

	switch typedA := a.(type) {
	case Bottom, Variable:
		return false

	case *Negation:
		typedB, isNegation := b.(*Negation)
		return isNegation && Equal(typedA.Operand, typedB.Operand)

	case *Disjunction:
		typedB, isDisjunction := b.(*Disjunction)
		return isDisjunction && Equal(typedA.Left, typedB.Left) && Equal(typedA.Right, typedB.Right)

	default:
		panic(unknownVariant(a))
	}
}

const (
	tagBottom byte = iota + 1
	tagVariable
	tagNegation
	tagDisjunction
)

// Fingerprinter computes structural xxhash digests of formulas, remembering interior nodes by identity.
type Fingerprinter struct {
	digests map[Formula]uint64
	buffer  []byte
}

func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{
		digests: map[Formula]uint64{},
	}
}

func (s *Fingerprinter) Fingerprint(f Formula) uint64 {
	switch typed := f.(type) {
	case Bottom:
		return xxhash.Sum64([]byte{tagBottom})

	case Variable:
		s.buffer = append(append(s.buffer[:0], tagVariable), typed...)
		return xxhash.Sum64(s.buffer)

	case *Negation:
		if digest, cached := s.digests[f]; cached {
			return digest
		}

		operandDigest := s.Fingerprint(typed.Operand)

		s.buffer = binary.LittleEndian.AppendUint64(append(s.buffer[:0], tagNegation), operandDigest)
		return s.remember(f, xxhash.Sum64(s.buffer))

	case *Disjunction:
		if digest, cached := s.digests[f]; cached {
			return digest
		}

		var (
			leftDigest  = s.Fingerprint(typed.Left)
			rightDigest = s.Fingerprint(typed.Right)
		)

		s.buffer = binary.LittleEndian.AppendUint64(append(s.buffer[:0], tagDisjunction), leftDigest)
		s.buffer = binary.LittleEndian.AppendUint64(s.buffer, rightDigest)

		return s.remember(f, xxhash.Sum64(s.buffer))

	default:
		panic(unknownVariant(f))
	}
}

func (s *Fingerprinter) remember(f Formula, digest uint64) uint64 {
	s.digests[f] = digest
	return digest
}

func Fingerprint(f Formula) uint64 {
	return NewFingerprinter().Fingerprint(f)
}
