// Package walk traverses trees without recursion. A cursor constructor describes how to expand a node into its ordered
// branches; the walker keeps the pending cursors on an explicit stack so traversal depth is bounded by heap rather
// than by goroutine stack.
package walk

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"
)

type VisitorHandler interface {
	Consume()
	WasConsumed() bool
	Done() bool
	Error() error
	SetDone()
	SetError(err error)
	SetErrorf(format string, args ...any)
}

type Visitor[N any] interface {
	VisitorHandler

	Enter(node N)
	Visit(node N)
	Exit(node N)
}

type cancelableVisitorHandler struct {
	currentNodeConsumed bool
	done                bool
	errs                []error
}

func (s *cancelableVisitorHandler) Done() bool {
	return s.done
}

func (s *cancelableVisitorHandler) SetDone() {
	s.done = true
}

func (s *cancelableVisitorHandler) SetError(err error) {
	if err != nil {
		s.errs = append(s.errs, err)
		s.done = true
	}
}

func (s *cancelableVisitorHandler) SetErrorf(format string, args ...any) {
	s.SetError(fmt.Errorf(format, args...))
}

func (s *cancelableVisitorHandler) Error() error {
	return errors.Join(s.errs...)
}

// Consume marks the current node as handled so the walker skips its remaining branches.
func (s *cancelableVisitorHandler) Consume() {
	s.currentNodeConsumed = true
}

func (s *cancelableVisitorHandler) WasConsumed() bool {
	consumed := s.currentNodeConsumed
	s.currentNodeConsumed = false

	return consumed
}

func NewCancelableErrorHandler() VisitorHandler {
	return &cancelableVisitorHandler{}
}

type composableVisitor[N any] struct {
	VisitorHandler
}

func (s *composableVisitor[N]) Enter(node N) {
}

func (s *composableVisitor[N]) Visit(node N) {
}

func (s *composableVisitor[N]) Exit(node N) {
}

// NewVisitor returns a visitor that does nothing. Embed it to implement only the callbacks a walk needs.
func NewVisitor[N any]() Visitor[N] {
	return &composableVisitor[N]{
		VisitorHandler: NewCancelableErrorHandler(),
	}
}

type Order int

const (
	OrderPrefix Order = iota
	OrderInfix
	OrderPostfix
)

func (s Order) String() string {
	switch s {
	case OrderPrefix:
		return "prefix"
	case OrderInfix:
		return "infix"
	case OrderPostfix:
		return "postfix"
	default:
		return "invalid"
	}
}

type SimpleVisitorFunc[N any] func(node N, visitorHandler VisitorHandler)

type simpleVisitor[N any] struct {
	Visitor[N]

	order       Order
	visitorFunc SimpleVisitorFunc[N]
}

// NewSimpleVisitor calls visitorFunc once per node at the position selected by order. Infix visits happen between
// branches, so leaves are never visited in infix order.
func NewSimpleVisitor[N any](order Order, visitorFunc SimpleVisitorFunc[N]) Visitor[N] {
	return &simpleVisitor[N]{
		Visitor:     NewVisitor[N](),
		order:       order,
		visitorFunc: visitorFunc,
	}
}

func (s *simpleVisitor[N]) Enter(node N) {
	if s.order == OrderPrefix {
		s.visitorFunc(node, s)
	}
}

func (s *simpleVisitor[N]) Visit(node N) {
	if s.order == OrderInfix {
		s.visitorFunc(node, s)
	}
}

func (s *simpleVisitor[N]) Exit(node N) {
	if s.order == OrderPostfix {
		s.visitorFunc(node, s)
	}
}

type Cursor[N any] struct {
	Node        N
	Branches    []N
	BranchIndex int
}

func NewCursor[N any](node N, branches ...N) *Cursor[N] {
	return &Cursor[N]{
		Node:     node,
		Branches: branches,
	}
}

func (s *Cursor[N]) AddBranches(branches ...N) {
	s.Branches = append(s.Branches, branches...)
}

func (s *Cursor[N]) NumBranchesRemaining() int {
	return len(s.Branches) - s.BranchIndex
}

func (s *Cursor[N]) IsFirstVisit() bool {
	return s.BranchIndex == 0
}

func (s *Cursor[N]) HasNext() bool {
	return s.BranchIndex < len(s.Branches)
}

func (s *Cursor[N]) NextBranch() N {
	nextBranch := s.Branches[s.BranchIndex]
	s.BranchIndex += 1

	return nextBranch
}

type CursorConstructor[N any] func(node N) (*Cursor[N], error)

// Generic walks the tree rooted at node depth first. Enter fires on the first visit to a node, Visit fires between
// consecutive branches and Exit fires once all branches are done. The walk stops at the first visitor error or once
// the visitor reports Done.
func Generic[N any](node N, visitor Visitor[N], cursorConstructor CursorConstructor[N]) error {
	var stack deque.Deque[*Cursor[N]]

	if cursor, err := cursorConstructor(node); err != nil {
		return err
	} else {
		stack.PushBack(cursor)
	}

	for stack.Len() > 0 && !visitor.Done() {
		var (
			nextNode     = stack.Back()
			isFirstVisit = nextNode.IsFirstVisit()
		)

		if isFirstVisit {
			visitor.Enter(nextNode.Node)

			if err := visitor.Error(); err != nil {
				return err
			}
		}

		if consumed := visitor.WasConsumed(); nextNode.HasNext() && !consumed {
			if !isFirstVisit {
				visitor.Visit(nextNode.Node)

				if err := visitor.Error(); err != nil {
					return err
				}
			}

			if cursor, err := cursorConstructor(nextNode.NextBranch()); err != nil {
				return err
			} else {
				stack.PushBack(cursor)
			}
		} else {
			visitor.Exit(nextNode.Node)

			if err := visitor.Error(); err != nil {
				return err
			}

			stack.PopBack()
		}
	}

	return visitor.Error()
}
