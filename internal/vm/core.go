package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// Core is the entire mutable state of one evaluator instance: the store,
// the control stack (last element is the top frame), the current
// environment, the current continuation, the current source span, the
// currently-hinted primitive type, and step counters. There is exactly
// one owner of a Core at a time; Step is not safe to call concurrently
// from multiple goroutines on the same Core.
type Core struct {
	Store *runtime.Store
	Stack []Frame

	Env          *runtime.Env
	Cont         Cont
	ContSource   token.Source
	ContPrimType *ast.PrimType

	Step int
	Opts Options
}

// New builds a Core ready to evaluate prog from the start: an empty
// store, an empty control stack, an empty environment, cont = Decs(prog),
// source = the core-init sentinel, no primitive-type hint, step 0.
func New(prog *ast.Program) *Core {
	return &Core{
		Store:        runtime.NewStore(),
		Stack:        nil,
		Env:          runtime.NewEnv(),
		Cont:         DecsCont{Decs: prog.Decs},
		ContSource:   token.CoreInitSource(),
		ContPrimType: nil,
		Step:         0,
	}
}

// top returns the top-of-stack frame, or nil if the stack is empty.
func (c *Core) top() *Frame {
	if len(c.Stack) == 0 {
		return nil
	}
	return &c.Stack[len(c.Stack)-1]
}

// push adds a frame to the top of the control stack.
func (c *Core) push(f Frame) {
	c.Stack = append(c.Stack, f)
}

// pop removes and returns the top-of-stack frame. The caller must check
// the stack is non-empty first (via top()).
func (c *Core) pop() Frame {
	f := c.Stack[len(c.Stack)-1]
	c.Stack = c.Stack[:len(c.Stack)-1]
	return f
}

// Limits bounds a run: an optional step budget and a set of breakpoint
// spans. The zero value is NoLimits (no step limit, no breakpoints).
type Limits struct {
	StepLimit   *int
	Breakpoints []token.Span
}

// NoLimits returns a Limits with no step budget and no breakpoints.
func NoLimits() Limits {
	return Limits{}
}

// WithStep returns a copy of l with the step budget set to n.
func (l Limits) WithStep(n int) Limits {
	l.StepLimit = &n
	return l
}

// WithBreakpoints returns a copy of l with its breakpoint set replaced by
// spans.
func (l Limits) WithBreakpoints(spans []token.Span) Limits {
	l.Breakpoints = spans
	return l
}

// hasBreakpoint reports whether span is among l's configured breakpoints.
// Spans are compared by the line and column of their start and end; byte
// offsets are ignored, so a breakpoint given as L:C-L:C matches the
// parser's span for the same text.
func (l Limits) hasBreakpoint(span token.Span) bool {
	for _, b := range l.Breakpoints {
		if b.Start.Line == span.Start.Line && b.Start.Column == span.Start.Column &&
			b.End.Line == span.End.Line && b.End.Column == span.End.Column {
			return true
		}
	}
	return false
}
