// Package aster is the public API of the Aster evaluator: construction,
// stepping, running, and source-to-value convenience functions. It is a
// thin wrapper around internal/vm — the engine itself lives there so that
// callers of this package see only a handful of types (Core, Limits,
// Signal, Value) rather than the evaluator's internal continuation
// machinery.
package aster

import (
	"fmt"

	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/parser"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/trace"
	"github.com/asterlang/go-aster/internal/vm"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// Value is a value produced by evaluation.
type Value = runtime.Value

// Interruption is the error taxonomy a Step or Run can fail with; see
// runtime.IsDone, runtime.IsTypeMismatch, and its other Is* predicates to
// branch on a specific kind.
type Interruption = runtime.Interruption

// Limits bounds a Run: an optional step budget and a set of breakpoint
// spans.
type Limits = vm.Limits

// NoLimits returns a Limits with no step budget and no breakpoints.
func NoLimits() Limits { return vm.NoLimits() }

// Signal is the terminal status of a Run.
type Signal = vm.Signal

// SignalKind distinguishes why a Run returned.
type SignalKind = vm.SignalKind

const (
	// SignalDone means the program finished evaluating to Signal.Value.
	SignalDone = vm.SignalDone
	// SignalBreakpoint means evaluation paused at a configured breakpoint;
	// Signal.Breakpoint holds the span, and the Core can be Run again to
	// resume past it.
	SignalBreakpoint = vm.SignalBreakpoint
	// SignalInterruption means a step failed; Signal.Err holds why.
	SignalInterruption = vm.SignalInterruption
)

// Option configures a Core built by New.
type Option func(*vm.Options)

// WithTrace installs sink to receive one diagnostic trace.Entry per step.
func WithTrace(sink trace.Sink) Option {
	return func(o *vm.Options) { o.Trace = sink }
}

// Core is one evaluator instance: the full execution state (store,
// control stack, environment, continuation, source, step counter) a
// caller can Step through one reduction at a time, or Run to completion.
type Core struct {
	c *vm.Core
}

// New builds a Core ready to evaluate prog from the start.
func New(prog *ast.Program, opts ...Option) *Core {
	var o vm.Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Core{c: vm.New(prog).WithOptions(o)}
}

// Step advances the core by exactly one reduction. It returns an
// Interruption (never a panic) when the step cannot proceed, including
// runtime.Done once evaluation has finished.
func (c *Core) Step(limits Limits) error {
	return vm.Step(c.c, limits)
}

// Run steps the core until it finishes, hits a configured breakpoint, or
// fails, returning the corresponding Signal.
func (c *Core) Run(limits Limits) Signal {
	return vm.Run(c.c, limits)
}

// StepCount reports how many steps this core has performed so far.
func (c *Core) StepCount() int { return c.c.Step }

// Parse lexes and parses source into a Program, without building a Core.
// Callers that want to inspect or reuse the same parsed program across
// several Core instances (e.g. a debugger re-running from the start) use
// this directly instead of Eval/EvalLimit.
func Parse(source string) (*ast.Program, error) {
	return parser.Parse(source)
}

// Eval parses and runs source with no limits, returning the program's
// final value or the error that stopped it (a *parser.Error for a syntax
// fault, an Interruption for a failed reduction, or a breakpoint error if
// source's own text somehow configured one — which Eval never does, since
// it always runs with NoLimits).
func Eval(source string, opts ...Option) (Value, error) {
	return EvalLimit(source, NoLimits(), opts...)
}

// EvalLimit is Eval with an explicit Limits, for callers that want a step
// budget or breakpoints without managing a Core themselves.
func EvalLimit(source string, limits Limits, opts ...Option) (Value, error) {
	prog, err := Parse(source)
	if err != nil {
		return nil, err
	}
	core := New(prog, opts...)
	sig := core.Run(limits)
	switch sig.Kind {
	case SignalDone:
		return sig.Value, nil
	case SignalBreakpoint:
		return nil, &BreakpointHit{Span: sig.Breakpoint}
	default:
		return nil, sig.Err
	}
}

// BreakpointHit is returned by Eval/EvalLimit when a configured
// breakpoint stops evaluation before it produced a value. Callers that
// want to resume past it should build a Core themselves (New + Run)
// instead of using the Eval convenience, which has nowhere to hand back
// the paused core.
type BreakpointHit struct {
	Span token.Span
}

func (b *BreakpointHit) Error() string {
	return fmt.Sprintf("aster: stopped at breakpoint %s", b.Span)
}
