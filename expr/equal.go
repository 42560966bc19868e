package expr

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether two trees have the same shape, operators and leaves. Shared subtrees compare equal without
// being visited.
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}

	switch typedA := a.(type) {
	case Int, Symbol:
		return false

	case Binary:
		if typedB, isBinary := b.(Binary); !isBinary || typedA.Operator() != typedB.Operator() {
			return false
		} else {
			var (
				leftA, rightA = typedA.Operands()
				leftB, rightB = typedB.Operands()
			)

			return Equal(leftA, leftB) && Equal(rightA, rightB)
		}

	default:
		panic(unknownVariant(a))
	}
}

const (
	tagInt byte = iota + 1
	tagSymbol
	tagAddition
	tagSubtraction
	tagMultiplication
	tagDivision
)

func operatorTag(operator Operator) byte {
	switch operator {
	case OperatorAdd:
		return tagAddition
	case OperatorSubtract:
		return tagSubtraction
	case OperatorMultiply:
		return tagMultiplication
	case OperatorDivide:
		return tagDivision
	default:
		panic("internal invariant violated: unknown operator " + string(operator))
	}
}

// Fingerprinter computes structural xxhash digests. Digests of interior nodes are remembered by node identity so
// that shared subtrees are hashed once.
type Fingerprinter struct {
	digests map[Expr]uint64
	buffer  []byte
}

func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{
		digests: map[Expr]uint64{},
	}
}

func (s *Fingerprinter) Fingerprint(e Expr) uint64 {
	switch typed := e.(type) {
	case Int:
		s.buffer = binary.LittleEndian.AppendUint64(append(s.buffer[:0], tagInt), uint64(typed))
		return xxhash.Sum64(s.buffer)

	case Symbol:
		s.buffer = append(append(s.buffer[:0], tagSymbol), typed...)
		return xxhash.Sum64(s.buffer)

	case Binary:
		if digest, cached := s.digests[e]; cached {
			return digest
		}

		var (
			left, right = typed.Operands()
			leftDigest  = s.Fingerprint(left)
			rightDigest = s.Fingerprint(right)
		)

		s.buffer = append(s.buffer[:0], operatorTag(typed.Operator()))
		s.buffer = binary.LittleEndian.AppendUint64(s.buffer, leftDigest)
		s.buffer = binary.LittleEndian.AppendUint64(s.buffer, rightDigest)

		digest := xxhash.Sum64(s.buffer)
		s.digests[e] = digest

		return digest

	default:
		panic(unknownVariant(e))
	}
}

// Fingerprint returns a structural digest of the tree. Structurally equal trees have equal fingerprints.
func Fingerprint(e Expr) uint64 {
	return NewFingerprinter().Fingerprint(e)
}
