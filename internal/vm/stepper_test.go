package vm

import (
	"math/big"
	"testing"

	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/trace"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

func TestStepPanicsOnTakenCont(t *testing.T) {
	c := New(&ast.Program{})
	c.Cont = TakenCont{}

	defer func() {
		if recover() == nil {
			t.Fatal("expected Step to panic on a Taken continuation")
		}
	}()
	_ = Step(c, NoLimits())
}

func TestContNeverTakenAfterSuccessfulStep(t *testing.T) {
	c := New(parseProgram(t, "var x = 0; x := x + 1; switch (#foo(x)) { case (#foo(n)) n; case (#bar) 0 }"))
	for {
		err := Step(c, NoLimits())
		if err != nil {
			if _, done := runtime.IsDone(err); !done {
				t.Fatalf("unexpected interruption: %v", err)
			}
			return
		}
		if _, taken := c.Cont.(TakenCont); taken {
			t.Fatalf("cont left Taken after step %d", c.Step)
		}
	}
}

func TestImplicitDerefIsItsOwnStep(t *testing.T) {
	c := New(&ast.Program{})
	p := c.Store.Alloc(runtime.NatOf(7))
	c.Cont = ValueCont{Value: p}

	// Step 1 replaces the pointer with its referent and does nothing else:
	// the stack is still empty and evaluation has not terminated.
	if err := Step(c, NoLimits()); err != nil {
		t.Fatalf("unexpected interruption: %v", err)
	}
	vc, ok := c.Cont.(ValueCont)
	if !ok {
		t.Fatalf("expected a value continuation, got %T", c.Cont)
	}
	n, ok := vc.Value.(runtime.Nat)
	if !ok || n.N.Int64() != 7 {
		t.Fatalf("expected dereferenced Nat 7, got %s", vc.Value)
	}

	// Step 2 terminates with the dereferenced value.
	err := Step(c, NoLimits())
	done, ok := runtime.IsDone(err)
	if !ok {
		t.Fatalf("expected Done, got %v", err)
	}
	if done.Value.(runtime.Nat).N.Int64() != 7 {
		t.Fatalf("expected Done 7, got %s", done.Value)
	}
}

func TestDanglingPointerDeref(t *testing.T) {
	c := New(&ast.Program{})
	c.Cont = ValueCont{Value: runtime.Pointer(99)}

	err := Step(c, NoLimits())
	if err == nil || !runtime.IsDangling(err) {
		t.Fatalf("expected Dangling, got %v", err)
	}
}

func TestPointerFlowsIntoAssignTarget(t *testing.T) {
	c := New(&ast.Program{})
	p := c.Store.Alloc(runtime.NatOf(0))
	rhs := &ast.LiteralExpr{Base: ast.At(token.Span{}), Lit: ast.NatLiteral{Value: big.NewInt(7)}}
	c.push(Frame{Env: c.Env, Source: token.EvalSource(), Cont: Assign1Frame{E2: rhs}})
	c.Cont = ValueCont{Value: p}

	if err := Step(c, NoLimits()); err != nil {
		t.Fatalf("unexpected interruption: %v", err)
	}

	// The pointer reached the assignment frame without being dereferenced:
	// the top of stack is now Assign2 carrying the same pointer, and the
	// RHS is queued for evaluation.
	top := c.top()
	if top == nil {
		t.Fatal("expected an Assign2 frame on the stack")
	}
	a2, ok := top.Cont.(Assign2Frame)
	if !ok {
		t.Fatalf("expected Assign2, got %T", top.Cont)
	}
	if a2.Pointer != p {
		t.Fatalf("expected pointer %s to flow through, got %s", p, a2.Pointer)
	}
	if _, ok := c.Cont.(ExpCont); !ok {
		t.Fatalf("expected the RHS to be queued, got %T", c.Cont)
	}
}

func TestStepCounterMonotonic(t *testing.T) {
	c := New(parseProgram(t, "let x = 1 + 2; x"))
	prev := c.Step
	for {
		err := Step(c, NoLimits())
		if c.Step != prev+1 {
			t.Fatalf("expected step %d, got %d", prev+1, c.Step)
		}
		prev = c.Step
		if err != nil {
			if _, done := runtime.IsDone(err); !done {
				t.Fatalf("unexpected interruption: %v", err)
			}
			return
		}
	}
}

func TestStepLimitLeavesCoreUntouched(t *testing.T) {
	c := New(parseProgram(t, "let x = 1 + 2; x"))
	limits := NoLimits().WithStep(2)

	for i := 0; i < 2; i++ {
		if err := Step(c, limits); err != nil {
			t.Fatalf("unexpected interruption on step %d: %v", i+1, err)
		}
	}

	before, ok := c.Cont.(ExpCont)
	if !ok {
		t.Fatalf("expected an expression continuation after 2 steps, got %T", c.Cont)
	}
	err := Step(c, limits)
	if err == nil || !runtime.IsLimit(err) {
		t.Fatalf("expected Limit, got %v", err)
	}
	if c.Step != 2 {
		t.Fatalf("expected counter to stay at 2, got %d", c.Step)
	}
	after, ok := c.Cont.(ExpCont)
	if !ok || after.Expr != before.Expr {
		t.Fatalf("expected the continuation to be left in place on a limit failure, got %T", c.Cont)
	}
}

// recordingSink collects trace entries in memory.
type recordingSink struct {
	entries []trace.Entry
}

func (s *recordingSink) Emit(e trace.Entry) error {
	s.entries = append(s.entries, e)
	return nil
}

func TestTraceEmission(t *testing.T) {
	sink := &recordingSink{}
	c := New(parseProgram(t, "let x = 1 + 2; x")).WithOptions(Options{Trace: sink})

	sig := Run(c, NoLimits())
	wantNat(t, sig, 3)

	// One entry per Step call, including the terminating one.
	if len(sink.entries) != c.Step {
		t.Fatalf("expected %d trace entries, got %d", c.Step, len(sink.entries))
	}

	first := sink.entries[0]
	if first.Step != 0 || first.Cont != "Decs" || first.Source != "<core-init>" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	last := sink.entries[len(sink.entries)-1]
	if last.Cont != "Value" {
		t.Fatalf("expected the final entry to hold a value continuation, got %+v", last)
	}
}
