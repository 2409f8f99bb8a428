package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// resumeFrame pops the top frame, restores its saved environment (except
// for a DecsFrame, which keeps whatever environment its declarations
// left behind), restores its primitive-type hint and source, and
// dispatches on the frame's pending operation with the value v the
// sub-computation below it produced. If the stack is empty, evaluation
// is complete and this returns a *runtime.Done.
func resumeFrame(c *Core, v runtime.Value) error {
	if c.top() == nil {
		return runtime.NewDone(v)
	}
	frame := c.pop()

	if _, isDecs := frame.Cont.(DecsFrame); !isDecs {
		c.Env = frame.Env
	}
	c.ContPrimType = frame.PrimType
	c.ContSource = frame.Source

	switch fc := frame.Cont.(type) {
	case UnOpFrame:
		result, err := unop(fc.Op, v)
		if err != nil {
			return err
		}
		c.Cont = ValueCont{Value: result}
		return nil

	case RelOp1Frame:
		return descendFrom(c, RelOp2Frame{V1: v, Op: fc.Op}, fc.E2)

	case RelOp2Frame:
		result, err := relop(fc.Op, fc.V1, v)
		if err != nil {
			return err
		}
		c.Cont = ValueCont{Value: result}
		return nil

	case BinOp1Frame:
		return descendFrom(c, BinOp2Frame{V1: v, Op: fc.Op}, fc.E2)

	case BinOp2Frame:
		result, err := binop(c.ContPrimType, fc.Op, fc.V1, v)
		if err != nil {
			return err
		}
		c.Cont = ValueCont{Value: result}
		return nil

	case Assign1Frame:
		p, ok := v.(runtime.Pointer)
		if !ok {
			return runtime.NewTypeMismatch("assignment target", v)
		}
		return descendFrom(c, Assign2Frame{Pointer: p}, fc.E2)

	case Assign2Frame:
		if err := c.Store.Mutate(fc.Pointer, v); err != nil {
			return err
		}
		c.Cont = ValueCont{Value: runtime.Unit{}}
		return nil

	case LetFrame:
		x, ok := fc.Pat.(*ast.VarPat)
		if !ok {
			return runtime.NewUnimplemented("let pattern destructuring")
		}
		c.Env = c.Env.Extend(string(x.Name), v)
		c.Cont = fc.Next
		c.ContSource = sourceFromCont(fc.Next)
		return nil

	case VarFrame:
		p := c.Store.Alloc(v)
		c.Env = c.Env.Extend(string(fc.Name), p)
		c.Cont = fc.Next
		c.ContSource = sourceFromCont(fc.Next)
		return nil

	case ParenFrame, BlockFrame, DoFrame:
		c.Cont = ValueCont{Value: v}
		return nil

	case VariantFrame:
		c.Cont = ValueCont{Value: runtime.Variant{ID: string(fc.ID), Payload: v}}
		return nil

	case SwitchFrame:
		return evalSwitch(c, v, fc.Cases)

	case AnnotFrame:
		c.Cont = ValueCont{Value: v}
		return nil

	case ProjFrame:
		tup, ok := v.(runtime.Tuple)
		if !ok || fc.Index < 0 || fc.Index >= len(tup.Elems) {
			return runtime.NewTypeMismatch("projection", v)
		}
		c.Cont = ValueCont{Value: tup.Elems[fc.Index]}
		return nil

	case IfFrame:
		b, ok := v.(runtime.Bool)
		if !ok {
			return runtime.NewTypeMismatch("if condition", v)
		}
		if b.B {
			c.Cont = ExpCont{Expr: fc.Then}
			c.ContSource = token.NewSource(fc.Then.Pos())
			return nil
		}
		if fc.Else != nil {
			c.Cont = ExpCont{Expr: fc.Else}
			c.ContSource = token.NewSource(fc.Else.Pos())
			return nil
		}
		c.Cont = ValueCont{Value: runtime.Unit{}}
		return nil

	case AssertFrame:
		b, ok := v.(runtime.Bool)
		if !ok {
			return runtime.NewTypeMismatch("assert", v)
		}
		if !b.B {
			return runtime.NewAssertionFailure()
		}
		c.Cont = ValueCont{Value: runtime.Unit{}}
		return nil

	case TupleFrame:
		done := append(append([]runtime.Value{}, fc.Done...), v)
		if len(fc.Pending) == 0 {
			c.Cont = ValueCont{Value: runtime.Tuple{Elems: done}}
			return nil
		}
		next, rest := fc.Pending[0], fc.Pending[1:]
		return descendFrom(c, TupleFrame{Done: done, Pending: rest}, next)

	case DecsFrame:
		if len(fc.Decs) == 0 {
			c.Cont = ValueCont{Value: v}
			return nil
		}
		c.Cont = DecsCont{Decs: fc.Decs}
		return nil

	default:
		return runtime.NewUnimplemented("frame continuation")
	}
}
