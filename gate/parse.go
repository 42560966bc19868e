package gate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	gateRegex      = regexp.MustCompile(`^\s*(\w+)\s*\(([^()]*)\)\s*$`)
	gateTokenRegex = regexp.MustCompile(`\w+\s*\([^()]*\)`)
)

// ParseKind maps a rendered gate name back to its kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "not":
		return KindNot, nil
	case "cnot":
		return KindCNot, nil
	case "swap":
		return KindSwap, nil
	case "toffoli":
		return KindToffoli, nil
	case "fredkin":
		return KindFredkin, nil
	default:
		return KindInvalid, fmt.Errorf("invalid gate kind: \"%s\"", name)
	}
}

// ParseGate reads a single gate in its rendered form, for example "toffoli(0,1,2)".
func ParseGate(text string) (Gate, error) {
	matches := gateRegex.FindStringSubmatch(text)
	if matches == nil {
		return nil, fmt.Errorf("invalid gate: \"%s\"", text)
	}

	kind, err := ParseKind(matches[1])
	if err != nil {
		return nil, err
	}

	var wires []Wire

	for _, rawWire := range strings.Split(matches[2], ",") {
		if wire, err := strconv.ParseUint(strings.TrimSpace(rawWire), 10, 32); err != nil {
			return nil, fmt.Errorf("invalid wire in \"%s\": %w", text, err)
		} else {
			wires = append(wires, Wire(wire))
		}
	}

	return New(kind, wires...)
}

// ParseGates reads a circuit of rendered gates separated by whitespace, commas outside parentheses, or semicolons.
func ParseGates(text string) (Gates, error) {
	var (
		gates     Gates
		remainder = gateTokenRegex.ReplaceAllString(text, "")
	)

	if strings.Trim(remainder, " \t\r\n,;") != "" {
		return nil, fmt.Errorf("invalid circuit: unexpected text \"%s\"", strings.TrimSpace(remainder))
	}

	for _, token := range gateTokenRegex.FindAllString(text, -1) {
		if gate, err := ParseGate(token); err != nil {
			return nil, err
		} else {
			gates = append(gates, gate)
		}
	}

	return gates, nil
}
