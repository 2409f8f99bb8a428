package vm

import (
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// SignalKind distinguishes why a Run returned control to its caller.
type SignalKind int

const (
	// SignalDone means the program finished evaluating to Value.
	SignalDone SignalKind = iota
	// SignalBreakpoint means c.ContSource landed on a configured
	// breakpoint span before a step was taken; c is left paused there,
	// ready to resume with another Run call.
	SignalBreakpoint
	// SignalInterruption means a step failed; Err holds why.
	SignalInterruption
)

// Signal is the terminal status of a Run: exactly one of Value (Done),
// Breakpoint (Breakpoint), or Err (Interruption) is meaningful, chosen by
// Kind.
type Signal struct {
	Kind       SignalKind
	Value      runtime.Value
	Breakpoint token.Span
	Err        error
}

func doneSignal(v runtime.Value) Signal {
	return Signal{Kind: SignalDone, Value: v}
}

func breakpointSignal(span token.Span) Signal {
	return Signal{Kind: SignalBreakpoint, Breakpoint: span}
}

func interruptionSignal(err error) Signal {
	return Signal{Kind: SignalInterruption, Err: err}
}

// Run steps c until it finishes, hits a configured breakpoint, or fails.
// A breakpoint is checked before every step except the first of each Run
// call, and only while the continuation is not a value: resuming a core
// that is already paused on a breakpoint steps past it, and the value the
// paused expression later produces (which carries the same span once its
// frame pops) does not report it again.
func Run(c *Core, limits Limits) Signal {
	first := true
	for {
		if _, isValue := c.Cont.(ValueCont); !isValue && !first {
			if span, ok := c.ContSource.AsSpan(); ok && limits.hasBreakpoint(span) {
				return breakpointSignal(span)
			}
		}
		first = false

		if err := Step(c, limits); err != nil {
			if done, ok := runtime.IsDone(err); ok {
				return doneSignal(done.Value)
			}
			return interruptionSignal(err)
		}
	}
}
