package gate

import (
	"fmt"
	"slices"

	"github.com/specterops/dispatch/util"
)

func unknownVariant(gate Gate) {
	panic(fmt.Sprintf("internal invariant violated: unknown gate variant %T", gate))
}

// Apply mutates the register according to the gate. Wire indices are not checked beyond the register's own bounds
// check; valid operands are the caller's responsibility.
func Apply(gate Gate, register Register) {
	if bits, isBits := register.(Bits); isBits {
		applyBits(gate, bits)
		return
	}

	switch typedGate := gate.(type) {
	case Not:
		register.Flip(typedGate.X)

	case CNot:
		if register.Test(typedGate.C) {
			register.Flip(typedGate.X)
		}

	case Swap:
		register.Exchange(typedGate.A, typedGate.B)

	case Toffoli:
		if register.Test(typedGate.C0) && register.Test(typedGate.C1) {
			register.Flip(typedGate.X)
		}

	case Fredkin:
		if register.Test(typedGate.C) {
			register.Exchange(typedGate.A, typedGate.B)
		}

	default:
		unknownVariant(gate)
	}
}

func applyBits(gate Gate, bits Bits) {
	switch typedGate := gate.(type) {
	case Not:
		bits[typedGate.X] = !bits[typedGate.X]

	case CNot:
		if bits[typedGate.C] {
			bits[typedGate.X] = !bits[typedGate.X]
		}

	case Swap:
		bits[typedGate.A], bits[typedGate.B] = bits[typedGate.B], bits[typedGate.A]

	case Toffoli:
		if bits[typedGate.C0] && bits[typedGate.C1] {
			bits[typedGate.X] = !bits[typedGate.X]
		}

	case Fredkin:
		if bits[typedGate.C] {
			bits[typedGate.A], bits[typedGate.B] = bits[typedGate.B], bits[typedGate.A]
		}

	default:
		unknownVariant(gate)
	}
}

// ApplyAll applies each gate in order. Every gate observes the mutations of its predecessors.
func ApplyAll(gates Gates, register Register) {
	if bits, isBits := register.(Bits); isBits {
		for _, gate := range gates {
			applyBits(gate, bits)
		}

		return
	}

	for _, gate := range gates {
		Apply(gate, register)
	}
}

// Apply runs the circuit against the register.
func (s Gates) Apply(register Register) {
	ApplyAll(s, register)
}

// Inverse returns the circuit that undoes this one. Every variant is its own inverse, so the inverse circuit is the
// same gates in reverse order.
func Inverse(gates Gates) Gates {
	inverse := slices.Clone(gates)
	slices.Reverse(inverse)

	return inverse
}

func distinct(wires []Wire) bool {
	for idx := 0; idx < len(wires); idx++ {
		for next := idx + 1; next < len(wires); next++ {
			if wires[idx] == wires[next] {
				return false
			}
		}
	}

	return true
}

// Validate checks the gate's operands against a register width. The interpreter never calls this; it exists for
// outer surfaces that accept untrusted circuits.
func Validate(gate Gate, width uint32) error {
	wires := gate.Wires()

	for _, wire := range wires {
		if wire >= width {
			return fmt.Errorf("%s: wire %d out of range for register of length %d", gate, wire, width)
		}
	}

	if !distinct(wires) {
		return fmt.Errorf("%s: wires must be distinct", gate)
	}

	return nil
}

// Validate checks every gate in the circuit and reports all violations together.
func (s Gates) Validate(width uint32) error {
	errs := util.NewErrorCollector()

	for idx, gate := range s {
		if err := Validate(gate, width); err != nil {
			errs.Add(fmt.Errorf("gate %d: %w", idx, err))
		}
	}

	return errs.Combined()
}
