// Package vm implements the step-granular evaluator: a defunctionalized
// continuation machine over internal/ast. Rather than recursing natively,
// every reduction either produces a value outright or pushes one explicit
// frame onto a control stack and descends into a sub-expression, so a
// caller can observe (and pause at) each individual step. The package is
// organized around that shape: cont.go holds the Cont/FrameCont/Frame data
// definitions, stepper.go the single-step dispatch, reduce.go the
// expression reducer, resume.go the frame resumer, pattern.go the pattern
// matcher, operators.go the primitive operator semantics, and runner.go
// the breakpoint/limit-aware run loop.
package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// Cont is the "what to evaluate next" register. Exactly one of the
// concrete types below is ever stored in Core.Cont.
type Cont interface {
	contNode()
}

// TakenCont is the sentinel installed for the brief interval during a
// step when the real continuation has been moved out to be consumed.
// Observing it at the start of a step is a fatal internal error.
type TakenCont struct{}

func (TakenCont) contNode() {}

// DecsCont evaluates an ordered sequence of declarations.
type DecsCont struct {
	Decs []ast.Dec
}

func (DecsCont) contNode() {}

// ExpCont evaluates Expr, then continues with Decs in the same block.
type ExpCont struct {
	Expr ast.Expr
	Decs []ast.Dec
}

func (ExpCont) contNode() {}

// ValueCont is a computed value awaiting consumption by the top frame (or
// termination, if the stack is empty).
type ValueCont struct {
	Value runtime.Value
}

func (ValueCont) contNode() {}

// FrameCont is the pending operation recorded in a Frame: what to do with
// the value the sub-computation below this frame produces.
type FrameCont interface {
	frameContNode()
}

// UnOpFrame awaits the operand of a unary operator.
type UnOpFrame struct{ Op ast.UnOp }

func (UnOpFrame) frameContNode() {}

// BinOp1Frame awaits the left operand of a binary operator; E2 is the
// not-yet-evaluated right operand.
type BinOp1Frame struct {
	Op ast.BinOp
	E2 ast.Expr
}

func (BinOp1Frame) frameContNode() {}

// BinOp2Frame awaits the right operand of a binary operator; V1 is the
// already-computed left operand.
type BinOp2Frame struct {
	V1 runtime.Value
	Op ast.BinOp
}

func (BinOp2Frame) frameContNode() {}

// RelOp1Frame awaits the left operand of a relational operator.
type RelOp1Frame struct {
	Op ast.RelOp
	E2 ast.Expr
}

func (RelOp1Frame) frameContNode() {}

// RelOp2Frame awaits the right operand of a relational operator.
type RelOp2Frame struct {
	V1 runtime.Value
	Op ast.RelOp
}

func (RelOp2Frame) frameContNode() {}

// ParenFrame passes its operand through unchanged.
type ParenFrame struct{}

func (ParenFrame) frameContNode() {}

// VariantFrame wraps its operand as a variant payload.
type VariantFrame struct{ ID ast.Ident }

func (VariantFrame) frameContNode() {}

// SwitchFrame dispatches the scrutinee's value against an ordered list of
// cases.
type SwitchFrame struct{ Cases []ast.SwitchCase }

func (SwitchFrame) frameContNode() {}

// BlockFrame passes its operand through unchanged (a block's result is
// the value of its final declaration).
type BlockFrame struct{}

func (BlockFrame) frameContNode() {}

// DoFrame passes its operand through unchanged.
type DoFrame struct{}

func (DoFrame) frameContNode() {}

// AssertFrame consumes a Bool, succeeding with Unit or failing with
// AssertionFailure.
type AssertFrame struct{}

func (AssertFrame) frameContNode() {}

// TupleFrame accumulates tuple elements left to right: Done holds already
// -evaluated elements, Pending holds not-yet-evaluated ones.
type TupleFrame struct {
	Done    []runtime.Value
	Pending []ast.Expr
}

func (TupleFrame) frameContNode() {}

// AnnotFrame passes its operand through unchanged; the type hint it set
// on push is restored to whatever it was before on pop.
type AnnotFrame struct{ Type ast.Type }

func (AnnotFrame) frameContNode() {}

// ProjFrame projects the Index'th element out of a tuple.
type ProjFrame struct{ Index int }

func (ProjFrame) frameContNode() {}

// IfFrame consumes a Bool condition and continues into Then or Else.
type IfFrame struct {
	Then ast.Expr
	Else ast.Expr // nil if there is no else-branch
}

func (IfFrame) frameContNode() {}

// Assign1Frame awaits the assignment target, which must produce a
// Pointer. A pointer flowing into this frame is never implicitly
// dereferenced the way one flowing into any other frame is — the target
// of an assignment is the cell itself, not its contents.
type Assign1Frame struct{ E2 ast.Expr }

func (Assign1Frame) frameContNode() {}

// Assign2Frame awaits the assignment's right-hand value, to be written
// into Pointer.
type Assign2Frame struct{ Pointer runtime.Pointer }

func (Assign2Frame) frameContNode() {}

// LetFrame binds the produced value to Pat (only VarPat is implemented)
// in the current (shared) scope, then resumes Next.
type LetFrame struct {
	Pat  ast.Pat
	Next Cont
}

func (LetFrame) frameContNode() {}

// VarFrame allocates a store cell for the produced value, binds a
// pointer to it under Name, then resumes Next.
type VarFrame struct {
	Name ast.Ident
	Next Cont
}

func (VarFrame) frameContNode() {}

// DecsFrame resumes a declaration sequence once the previous
// declaration's value has been produced.
type DecsFrame struct{ Decs []ast.Dec }

func (DecsFrame) frameContNode() {}

// Frame is one entry on the control stack: the saved environment and
// primitive-type hint to restore on pop (a DecsFrame is the one
// exception: it resumes in whatever environment its declarations left
// behind, not the one captured when it was pushed), the source span to
// restore, and the pending operation.
type Frame struct {
	Env      *runtime.Env
	PrimType *ast.PrimType
	Source   token.Source
	Cont     FrameCont
}
