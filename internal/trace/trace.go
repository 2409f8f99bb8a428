// Package trace provides a diagnostic sink for the evaluator's
// step-by-step state: step count, source, continuation, environment, and
// stack. A Sink is consulted once per step, before that step's work
// happens, so a trace always shows the state a step is about to act on.
package trace

// Entry is one step's worth of diagnostic state.
type Entry struct {
	Step       int    `json:"step"`
	Source     string `json:"source"`
	Cont       string `json:"cont"`
	Env        string `json:"env"`
	Stack      string `json:"stack"`
	StackDepth int    `json:"stackDepth"`
}

// Sink receives one Entry per evaluator step. Emit returning an error
// fails the step that triggered it, the same as any other Interruption —
// a tracing sink is part of the evaluator's critical path once installed.
type Sink interface {
	Emit(e Entry) error
}
