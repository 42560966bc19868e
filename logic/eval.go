package logic

type Assignment interface {
	Contains(name string) bool
}

// StringSet is an Assignment holding the names of the true variables.
type StringSet map[string]struct{}

func NewAssignment(names ...string) StringSet {
	assignment := make(StringSet, len(names))

	for _, name := range names {
		assignment[name] = struct{}{}
	}

	return assignment
}

func (s StringSet) Contains(name string) bool {
	_, contained := s[name]
	return contained
}

func (s StringSet) Add(names ...string) {
	for _, name := range names {
		s[name] = struct{}{}
	}
}

// Eval reduces the formula to a boolean. A variable is true when the assignment contains its name. Disjunction
// short-circuits on a true left operand. Recursion depth equals formula depth.
func Eval(f Formula, assignment Assignment) bool {
	switch typed := f.(type) {
	case Bottom:
		return false

	case Variable:
		return assignment.Contains(string(typed))

	case *Negation:
		return !Eval(typed.Operand, assignment)

	case *Disjunction:
		return Eval(typed.Left, assignment) || Eval(typed.Right, assignment)

	default:
		panic(unknownVariant(f))
	}
}

// Canonical returns (false | (a | !b)) & true.
func Canonical() Formula {
	return Conjunction(Or(Bottom{}, Or(Variable("a"), Not(Variable("b")))), Top())
}
