package logic

import (
	"errors"
	"fmt"
	"strings"
	"text/scanner"
)

var (
	ErrInvalidFormula = errors.New("invalid formula")
)

type parser struct {
	scanner scanner.Scanner
	token   rune
	errs    []error
}

func newParser(text string) *parser {
	p := &parser{}

	p.scanner.Init(strings.NewReader(text))
	p.scanner.Mode = scanner.ScanIdents
	p.scanner.Error = func(s *scanner.Scanner, msg string) {
		p.errs = append(p.errs, fmt.Errorf("%w at %s: %s", ErrInvalidFormula, s.Position, msg))
	}

	p.next()
	return p
}

func (s *parser) next() {
	s.token = s.scanner.Scan()
}

func (s *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", ErrInvalidFormula, s.scanner.Position, fmt.Sprintf(format, args...))
}

func (s *parser) parseDisjunction() (Formula, error) {
	left, err := s.parseConjunction()
	if err != nil {
		return nil, err
	}

	for s.token == '|' {
		s.next()

		if right, err := s.parseConjunction(); err != nil {
			return nil, err
		} else {
			left = Or(left, right)
		}
	}

	return left, nil
}

func (s *parser) parseConjunction() (Formula, error) {
	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}

	for s.token == '&' {
		s.next()

		if right, err := s.parseUnary(); err != nil {
			return nil, err
		} else {
			left = Conjunction(left, right)
		}
	}

	return left, nil
}

func (s *parser) parseUnary() (Formula, error) {
	switch s.token {
	case '!':
		s.next()

		if operand, err := s.parseUnary(); err != nil {
			return nil, err
		} else {
			return Not(operand), nil
		}

	case '(':
		s.next()

		if inner, err := s.parseDisjunction(); err != nil {
			return nil, err
		} else if s.token != ')' {
			return nil, s.errorf("expected ) but found %s", scanner.TokenString(s.token))
		} else {
			s.next()
			return inner, nil
		}

	case scanner.Ident:
		name := s.scanner.TokenText()
		s.next()

		switch name {
		case "false":
			return Bottom{}, nil

		case "true":
			return Top(), nil

		default:
			return Variable(name), nil
		}

	case scanner.EOF:
		return nil, s.errorf("unexpected end of input")

	default:
		return nil, s.errorf("unexpected %s", scanner.TokenString(s.token))
	}
}

// Parse reads a formula built from false, true, identifiers, ! (negation), & (conjunction), | (disjunction) and
// parentheses. Negation binds tightest and conjunction binds tighter than disjunction. The words true and & are
// rewritten through Top and Conjunction.
func Parse(text string) (Formula, error) {
	p := newParser(text)

	parsed, err := p.parseDisjunction()
	if err == nil && p.token != scanner.EOF {
		err = p.errorf("unexpected %s", scanner.TokenString(p.token))
	}

	if len(p.errs) > 0 {
		return nil, errors.Join(append(p.errs, err)...)
	}

	if err != nil {
		return nil, err
	}

	return parsed, nil
}

func MustParse(text string) Formula {
	if parsed, err := Parse(text); err != nil {
		panic(err)
	} else {
		return parsed
	}
}
