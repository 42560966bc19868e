package logic

import (
	"errors"
	"fmt"

	"github.com/specterops/dispatch/cardinality"
	"github.com/specterops/dispatch/walk"
)

// MaxModelVariables bounds the number of distinct variables Program.Models will enumerate.
const MaxModelVariables = 24

var (
	ErrTooManyVariables = errors.New("too many variables")
)

// SymbolTable interns variable names as dense uint32 identifiers in order of first appearance.
type SymbolTable struct {
	ids   map[string]uint32
	names []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		ids: map[string]uint32{},
	}
}

func (s *SymbolTable) Intern(name string) uint32 {
	if id, exists := s.ids[name]; exists {
		return id
	}

	id := uint32(len(s.names))

	s.ids[name] = id
	s.names = append(s.names, name)

	return id
}

func (s *SymbolTable) Lookup(name string) (uint32, bool) {
	id, exists := s.ids[name]
	return id, exists
}

func (s *SymbolTable) Name(id uint32) string {
	return s.names[id]
}

func (s *SymbolTable) Len() int {
	return len(s.names)
}

func (s *SymbolTable) Names() []string {
	return s.names
}

type OpCode uint8

const (
	OpPushFalse OpCode = iota
	OpPushVariable
	OpNot
	OpOr
)

func (s OpCode) String() string {
	switch s {
	case OpPushFalse:
		return "push_false"
	case OpPushVariable:
		return "push_variable"
	case OpNot:
		return "not"
	case OpOr:
		return "or"
	default:
		return "invalid"
	}
}

type Instruction struct {
	Op     OpCode
	Symbol uint32
}

// Program is a formula flattened into postfix order over interned variables. Evaluation runs on a value stack
// instead of recursing, and disjunction does not short-circuit.
type Program struct {
	Symbols      *SymbolTable
	Instructions []Instruction
	maxStack     int
}

type compiler struct {
	walk.Visitor[Formula]

	program *Program
	depth   int
}

func (s *compiler) Exit(node Formula) {
	switch typed := node.(type) {
	case Bottom:
		s.emit(Instruction{Op: OpPushFalse}, 1)

	case Variable:
		s.emit(Instruction{
			Op:     OpPushVariable,
			Symbol: s.program.Symbols.Intern(string(typed)),
		}, 1)

	case *Negation:
		s.emit(Instruction{Op: OpNot}, 0)

	case *Disjunction:
		s.emit(Instruction{Op: OpOr}, -1)

	default:
		s.SetErrorf("unable to compile formula type %T", node)
	}
}

func (s *compiler) emit(instruction Instruction, stackDelta int) {
	s.program.Instructions = append(s.program.Instructions, instruction)

	if s.depth += stackDelta; s.depth > s.program.maxStack {
		s.program.maxStack = s.depth
	}
}

func Compile(f Formula) (*Program, error) {
	programCompiler := &compiler{
		Visitor: walk.NewVisitor[Formula](),
		program: &Program{
			Symbols: NewSymbolTable(),
		},
	}

	if err := Walk(f, programCompiler); err != nil {
		return nil, err
	}

	return programCompiler.program, nil
}

// Bind builds the bitmap of true variables for this program. Names the program does not reference are ignored since
// they can not change the result.
func (s *Program) Bind(names ...string) cardinality.Duplex[uint32] {
	bound := cardinality.NewBitmap32()

	for _, name := range names {
		if id, exists := s.Symbols.Lookup(name); exists {
			bound.Add(id)
		}
	}

	return bound
}

// BindAssignment builds the bitmap of true variables by asking the assignment about every interned name.
func (s *Program) BindAssignment(assignment Assignment) cardinality.Duplex[uint32] {
	bound := cardinality.NewBitmap32()

	for id, name := range s.Symbols.Names() {
		if assignment.Contains(name) {
			bound.Add(uint32(id))
		}
	}

	return bound
}

func (s *Program) Eval(trueSymbols cardinality.Duplex[uint32]) bool {
	stack := make([]bool, 0, s.maxStack)

	for _, instruction := range s.Instructions {
		switch instruction.Op {
		case OpPushFalse:
			stack = append(stack, false)

		case OpPushVariable:
			stack = append(stack, trueSymbols.Contains(instruction.Symbol))

		case OpNot:
			stack[len(stack)-1] = !stack[len(stack)-1]

		case OpOr:
			last := len(stack) - 1
			stack[last-1] = stack[last-1] || stack[last]
			stack = stack[:last]

		default:
			panic(fmt.Sprintf("internal invariant violated: unknown opcode %d", instruction.Op))
		}
	}

	return stack[0]
}

// Models returns every satisfying assignment as a set of row numbers. Bit i of a row is the value of the variable
// with identifier i, so a program over n variables is evaluated against all 2^n rows at once.
func (s *Program) Models() (cardinality.Duplex[uint32], error) {
	numSymbols := s.Symbols.Len()

	if numSymbols > MaxModelVariables {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyVariables, numSymbols, MaxModelVariables)
	}

	var (
		numRows  = uint32(1) << numSymbols
		universe = cardinality.NewBitmap32()
		columns  = make([]cardinality.Duplex[uint32], numSymbols)
		stack    = make([]cardinality.Duplex[uint32], 0, s.maxStack)
	)

	for row := uint32(0); row < numRows; row++ {
		universe.Add(row)
	}

	for id := range columns {
		column := cardinality.NewBitmap32()

		for row := uint32(0); row < numRows; row++ {
			if row&(1<<id) != 0 {
				column.Add(row)
			}
		}

		columns[id] = column
	}

	for _, instruction := range s.Instructions {
		switch instruction.Op {
		case OpPushFalse:
			stack = append(stack, cardinality.NewBitmap32())

		case OpPushVariable:
			stack = append(stack, columns[instruction.Symbol].Clone())

		case OpNot:
			complement := universe.Clone()
			complement.AndNot(stack[len(stack)-1])
			stack[len(stack)-1] = complement

		case OpOr:
			last := len(stack) - 1
			stack[last-1].Or(stack[last])
			stack = stack[:last]

		default:
			panic(fmt.Sprintf("internal invariant violated: unknown opcode %d", instruction.Op))
		}
	}

	return stack[0], nil
}

// CountModels returns how many assignments over the program's variables satisfy it.
func (s *Program) CountModels() (uint64, error) {
	if models, err := s.Models(); err != nil {
		return 0, err
	} else {
		return models.Cardinality(), nil
	}
}
