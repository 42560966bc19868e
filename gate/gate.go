// Package gate implements a reversible boolean-circuit interpreter. A circuit is an ordered sequence of gates drawn
// from a closed set of five variants, each of which mutates a shared register in place.
package gate

import (
	"fmt"
	"strings"
)

// Kind tags each gate variant. The zero value is not a valid kind.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNot
	KindCNot
	KindSwap
	KindToffoli
	KindFredkin
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNot:     "not",
	KindCNot:    "cnot",
	KindSwap:    "swap",
	KindToffoli: "toffoli",
	KindFredkin: "fredkin",
}

func (s Kind) String() string {
	if int(s) < len(kindNames) {
		return kindNames[s]
	}

	return kindNames[KindInvalid]
}

// Arity returns the number of wires a gate of this kind addresses.
func (s Kind) Arity() int {
	switch s {
	case KindNot:
		return 1
	case KindCNot, KindSwap:
		return 2
	case KindToffoli, KindFredkin:
		return 3
	default:
		return 0
	}
}

// Gate is the closed sum of gate variants. The unexported method seals the set to this package.
type Gate interface {
	Kind() Kind
	Wires() []Wire
	String() string

	gate()
}

// Not flips X.
type Not struct {
	X Wire
}

// CNot flips X when C is set.
type CNot struct {
	C Wire
	X Wire
}

// Swap exchanges A and B.
type Swap struct {
	A Wire
	B Wire
}

// Toffoli flips X when both C0 and C1 are set.
type Toffoli struct {
	C0 Wire
	C1 Wire
	X  Wire
}

// Fredkin exchanges A and B when C is set.
type Fredkin struct {
	C Wire
	A Wire
	B Wire
}

func (Not) gate()     {}
func (CNot) gate()    {}
func (Swap) gate()    {}
func (Toffoli) gate() {}
func (Fredkin) gate() {}

func (Not) Kind() Kind     { return KindNot }
func (CNot) Kind() Kind    { return KindCNot }
func (Swap) Kind() Kind    { return KindSwap }
func (Toffoli) Kind() Kind { return KindToffoli }
func (Fredkin) Kind() Kind { return KindFredkin }

func (s Not) Wires() []Wire     { return []Wire{s.X} }
func (s CNot) Wires() []Wire    { return []Wire{s.C, s.X} }
func (s Swap) Wires() []Wire    { return []Wire{s.A, s.B} }
func (s Toffoli) Wires() []Wire { return []Wire{s.C0, s.C1, s.X} }
func (s Fredkin) Wires() []Wire { return []Wire{s.C, s.A, s.B} }

func (s Not) String() string     { return render(s) }
func (s CNot) String() string    { return render(s) }
func (s Swap) String() string    { return render(s) }
func (s Toffoli) String() string { return render(s) }
func (s Fredkin) String() string { return render(s) }

func render(gate Gate) string {
	var (
		builder = strings.Builder{}
		wires   = gate.Wires()
	)

	builder.WriteString(gate.Kind().String())
	builder.WriteByte('(')

	for idx, wire := range wires {
		if idx > 0 {
			builder.WriteByte(',')
		}

		fmt.Fprintf(&builder, "%d", wire)
	}

	builder.WriteByte(')')
	return builder.String()
}

// New builds the gate of the given kind from its wires in declaration order.
func New(kind Kind, wires ...Wire) (Gate, error) {
	if arity := kind.Arity(); arity == 0 {
		return nil, fmt.Errorf("invalid gate kind: %d", kind)
	} else if len(wires) != arity {
		return nil, fmt.Errorf("%s expects %d wires but got %d", kind, arity, len(wires))
	}

	switch kind {
	case KindNot:
		return Not{X: wires[0]}, nil
	case KindCNot:
		return CNot{C: wires[0], X: wires[1]}, nil
	case KindSwap:
		return Swap{A: wires[0], B: wires[1]}, nil
	case KindToffoli:
		return Toffoli{C0: wires[0], C1: wires[1], X: wires[2]}, nil
	default:
		return Fredkin{C: wires[0], A: wires[1], B: wires[2]}, nil
	}
}

// Gates is an ordered circuit. Order is significant: gates do not commute in general.
type Gates []Gate

func (s Gates) String() string {
	parts := make([]string, len(s))

	for idx, gate := range s {
		parts[idx] = gate.String()
	}

	return strings.Join(parts, " ")
}
