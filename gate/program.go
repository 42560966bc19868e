package gate

// Instruction is the flat tagged-struct encoding of a gate. Operands are laid out in the same order as the variant's
// fields; unused operand slots are zero.
type Instruction struct {
	Kind     Kind
	Operands [3]Wire
}

// Program is a compiled circuit. It carries no interface values, so executing it dispatches on a plain kind tag
// instead of a type switch.
type Program []Instruction

func Compile(gates Gates) Program {
	program := make(Program, len(gates))

	for idx, gate := range gates {
		instruction := Instruction{
			Kind: gate.Kind(),
		}

		copy(instruction.Operands[:], gate.Wires())
		program[idx] = instruction
	}

	return program
}

// Execute interprets the program against the register. Semantics match ApplyAll on the source circuit.
func (s Program) Execute(bits Bits) {
	for idx := range s {
		var (
			instruction = &s[idx]
			operands    = &instruction.Operands
		)

		switch instruction.Kind {
		case KindNot:
			bits[operands[0]] = !bits[operands[0]]

		case KindCNot:
			if bits[operands[0]] {
				bits[operands[1]] = !bits[operands[1]]
			}

		case KindSwap:
			bits[operands[0]], bits[operands[1]] = bits[operands[1]], bits[operands[0]]

		case KindToffoli:
			if bits[operands[0]] && bits[operands[1]] {
				bits[operands[2]] = !bits[operands[2]]
			}

		case KindFredkin:
			if bits[operands[0]] {
				bits[operands[1]], bits[operands[2]] = bits[operands[2]], bits[operands[1]]
			}

		default:
			panic("internal invariant violated: unknown instruction kind " + instruction.Kind.String())
		}
	}
}

// Decompile rebuilds the circuit the program was compiled from.
func (s Program) Decompile() (Gates, error) {
	gates := make(Gates, len(s))

	for idx, instruction := range s {
		if gate, err := New(instruction.Kind, instruction.Operands[:instruction.Kind.Arity()]...); err != nil {
			return nil, err
		} else {
			gates[idx] = gate
		}
	}

	return gates, nil
}
