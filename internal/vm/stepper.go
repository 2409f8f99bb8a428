package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// Step advances c by exactly one reduction. It returns a *runtime.Done
// once cont = Value(v) and the control stack is empty, or any other
// Interruption if the step cannot proceed; both are ordinary errors, not
// panics, so a caller can distinguish "finished" from "failed" with
// runtime.IsDone. If limits has a step budget and c has already reached
// it, Step returns a *runtime.Limit without performing any reduction.
func Step(c *Core, limits Limits) error {
	if err := c.emitTrace(); err != nil {
		return err
	}
	if limits.StepLimit != nil && c.Step >= *limits.StepLimit {
		return runtime.NewLimit(runtime.StepLimit)
	}
	c.Step++

	cont := c.Cont
	c.Cont = TakenCont{}

	switch cur := cont.(type) {
	case TakenCont:
		panic("vm: Step observed a Taken continuation; this signals an evaluator bug")

	case ExpCont:
		if len(cur.Decs) > 0 {
			c.push(Frame{
				Env:      c.Env,
				PrimType: nil,
				Source:   sourceFromDecs(cur.Decs),
				Cont:     DecsFrame{Decs: cur.Decs},
			})
		}
		return reduceExpr(c, cur.Expr)

	case ValueCont:
		if p, isPtr := cur.Value.(runtime.Pointer); isPtr && !topIsAssign1(c) {
			// A bare pointer value is implicitly dereferenced, but that
			// dereference is itself one whole step: cont becomes
			// Value(deref(p)) here, and the frame that consumes it is
			// resumed on the step after this one.
			dv, ok := c.Store.Deref(p)
			if !ok {
				return runtime.NewDangling(p)
			}
			c.Cont = ValueCont{Value: dv}
			return nil
		}
		return resumeFrame(c, cur.Value)

	case DecsCont:
		return stepDecs(c, cur.Decs)

	default:
		return runtime.NewUnknown("unrecognized continuation")
	}
}

// topIsAssign1 reports whether the top-of-stack frame is an Assign1Frame
// — the one frame kind a Pointer value flows into without being
// implicitly dereferenced first.
func topIsAssign1(c *Core) bool {
	top := c.top()
	if top == nil {
		return false
	}
	_, ok := top.Cont.(Assign1Frame)
	return ok
}

// stepDecs advances a declaration-sequence continuation by one
// declaration. An empty sequence evaluates to Unit.
func stepDecs(c *Core, decs []ast.Dec) error {
	if len(decs) == 0 {
		c.Cont = ValueCont{Value: runtime.Unit{}}
		c.ContSource = token.EvalSource()
		return nil
	}
	head, rest := decs[0], decs[1:]

	switch d := head.(type) {
	case *ast.ExpDec:
		c.Cont = ExpCont{Expr: d.Expr, Decs: rest}
		c.ContSource = token.NewSource(d.Expr.Pos())
		return nil

	case *ast.LetDec:
		c.push(Frame{
			Env:      c.Env,
			PrimType: c.ContPrimType,
			Source:   c.ContSource,
			Cont:     LetFrame{Pat: d.Pat, Next: DecsCont{Decs: rest}},
		})
		c.Cont = ExpCont{Expr: d.Expr}
		c.ContSource = token.NewSource(d.Expr.Pos())
		return nil

	case *ast.VarDec:
		x, ok := d.Pat.(*ast.VarPat)
		if !ok {
			return runtime.NewUnimplemented("var pattern destructuring")
		}
		c.push(Frame{
			Env:      c.Env,
			PrimType: c.ContPrimType,
			Source:   c.ContSource,
			Cont:     VarFrame{Name: x.Name, Next: DecsCont{Decs: rest}},
		})
		c.Cont = ExpCont{Expr: d.Expr}
		c.ContSource = token.NewSource(d.Expr.Pos())
		return nil

	case *ast.UnsupportedDec:
		return runtime.NewUnimplemented(d.Form)

	default:
		return runtime.NewUnimplemented("declaration")
	}
}
