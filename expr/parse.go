package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

var (
	ErrInvalidExpression = errors.New("invalid expression")
)

type parser struct {
	scanner scanner.Scanner
	token   rune
	errs    []error
}

func newParser(text string) *parser {
	p := &parser{}

	p.scanner.Init(strings.NewReader(text))
	p.scanner.Mode = scanner.ScanIdents | scanner.ScanInts
	p.scanner.Error = func(s *scanner.Scanner, msg string) {
		p.errs = append(p.errs, fmt.Errorf("%w at %s: %s", ErrInvalidExpression, s.Position, msg))
	}

	p.next()
	return p
}

func (s *parser) next() {
	s.token = s.scanner.Scan()
}

func (s *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", ErrInvalidExpression, s.scanner.Position, fmt.Sprintf(format, args...))
}

func (s *parser) operator(candidates ...Operator) (Operator, bool) {
	for _, candidate := range candidates {
		if s.token == rune(candidate[0]) {
			return candidate, true
		}
	}

	return "", false
}

func (s *parser) parseExpression() (Expr, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		if operator, matched := s.operator(OperatorAdd, OperatorSubtract); !matched {
			return left, nil
		} else {
			s.next()

			if right, err := s.parseTerm(); err != nil {
				return nil, err
			} else {
				left = operator.Build(left, right)
			}
		}
	}
}

func (s *parser) parseTerm() (Expr, error) {
	left, err := s.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		if operator, matched := s.operator(OperatorMultiply, OperatorDivide); !matched {
			return left, nil
		} else {
			s.next()

			if right, err := s.parseFactor(); err != nil {
				return nil, err
			} else {
				left = operator.Build(left, right)
			}
		}
	}
}

func (s *parser) parseInt(negative bool) (Expr, error) {
	text := s.scanner.TokenText()

	if negative {
		text = "-" + text
	}

	if value, err := strconv.ParseInt(text, 10, 64); err != nil {
		return nil, s.errorf("integer %s: %v", text, err)
	} else {
		s.next()
		return Int(value), nil
	}
}

func (s *parser) parseFactor() (Expr, error) {
	switch s.token {
	case scanner.Int:
		return s.parseInt(false)

	case scanner.Ident:
		symbol := Symbol(s.scanner.TokenText())
		s.next()

		return symbol, nil

	case '-':
		// Only integer literals may be negated
		if s.next(); s.token != scanner.Int {
			return nil, s.errorf("expected an integer after unary minus")
		}

		return s.parseInt(true)

	case '(':
		s.next()

		if inner, err := s.parseExpression(); err != nil {
			return nil, err
		} else if s.token != ')' {
			return nil, s.errorf("expected ) but found %s", scanner.TokenString(s.token))
		} else {
			s.next()
			return inner, nil
		}

	case scanner.EOF:
		return nil, s.errorf("unexpected end of input")

	default:
		return nil, s.errorf("unexpected %s", scanner.TokenString(s.token))
	}
}

// Parse reads infix arithmetic made of integers, identifiers, the four binary operators and parentheses. Operators
// of equal precedence associate to the left. A leading minus is accepted only directly before an integer.
func Parse(text string) (Expr, error) {
	p := newParser(text)

	parsed, err := p.parseExpression()
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

func MustParse(text string) Expr {
	if parsed, err := Parse(text); err != nil {
		panic(err)
	} else {
		return parsed
	}
}
