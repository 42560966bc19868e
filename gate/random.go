package gate

import "math/rand/v2"

// RandomBits returns a register of the given length where each wire is set with probability one half.
func RandomBits(rng *rand.Rand, length uint32) Bits {
	bits := make(Bits, length)

	for idx := range bits {
		bits[idx] = rng.Float64() < 0.5
	}

	return bits
}

func randomWire(rng *rand.Rand, width uint32, exclude ...Wire) Wire {
	for {
		candidate := rng.Uint32N(width)
		excluded := false

		for _, other := range exclude {
			if candidate == other {
				excluded = true
				break
			}
		}

		if !excluded {
			return candidate
		}
	}
}

// RandomGate draws a variant uniformly and then draws its wires uniformly from [0, width), redrawing until the wires
// are distinct. Width must be at least three.
func RandomGate(rng *rand.Rand, width uint32) Gate {
	switch rng.IntN(5) {
	case 0:
		return Not{
			X: randomWire(rng, width),
		}

	case 1:
		c := randomWire(rng, width)
		return CNot{
			C: c,
			X: randomWire(rng, width, c),
		}

	case 2:
		a := randomWire(rng, width)
		return Swap{
			A: a,
			B: randomWire(rng, width, a),
		}

	case 3:
		var (
			c0 = randomWire(rng, width)
			c1 = randomWire(rng, width, c0)
		)

		return Toffoli{
			C0: c0,
			C1: c1,
			X:  randomWire(rng, width, c0, c1),
		}

	default:
		var (
			c = randomWire(rng, width)
			a = randomWire(rng, width, c)
		)

		return Fredkin{
			C: c,
			A: a,
			B: randomWire(rng, width, c, a),
		}
	}
}

// RandomCircuit returns count random gates over a register of the given width.
func RandomCircuit(rng *rand.Rand, width uint32, count int) Gates {
	gates := make(Gates, count)

	for idx := range gates {
		gates[idx] = RandomGate(rng, width)
	}

	return gates
}
