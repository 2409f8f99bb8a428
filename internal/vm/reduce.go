package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// pushAndDescend pushes frameCont (capturing the core's current env and
// primitive-type hint, with the given source) and sets the core to
// evaluate sub next. It is the one place every "push a frame, descend
// into a sub-expression" reduction rule goes through.
func pushAndDescend(c *Core, source token.Source, frameCont FrameCont, sub ast.Expr) error {
	c.push(Frame{
		Env:      c.Env,
		PrimType: c.ContPrimType,
		Source:   source,
		Cont:     frameCont,
	})
	c.Cont = ExpCont{Expr: sub}
	c.ContSource = token.NewSource(sub.Pos())
	return nil
}

// descendFrom is pushAndDescend using the core's current source as the
// frame's recorded source — the common case, where the frame is
// attributed to the expression being left behind rather than to the
// sub-expression being entered.
func descendFrom(c *Core, frameCont FrameCont, sub ast.Expr) error {
	return pushAndDescend(c, c.ContSource, frameCont, sub)
}

// reduceExpr performs the expression-reducer rules for a single
// expression node. It either sets c.Cont = ValueCont directly, or pushes
// exactly one frame and descends into a sub-expression.
func reduceExpr(c *Core, expr ast.Expr) error {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		v, err := runtime.FromLiteral(e.Lit)
		if err != nil {
			return err
		}
		c.Cont = ValueCont{Value: v}
		return nil

	case *ast.VarExpr:
		v, ok := c.Env.Lookup(string(e.Name))
		if !ok {
			return runtime.NewUnboundIdentifier(string(e.Name))
		}
		c.Cont = ValueCont{Value: v}
		return nil

	case *ast.BinExpr:
		return descendFrom(c, BinOp1Frame{Op: e.Op, E2: e.Rhs}, e.Lhs)

	case *ast.UnExpr:
		return descendFrom(c, UnOpFrame{Op: e.Op}, e.Expr)

	case *ast.RelExpr:
		return descendFrom(c, RelOp1Frame{Op: e.Op, E2: e.Rhs}, e.Lhs)

	case *ast.ParenExpr:
		return descendFrom(c, ParenFrame{}, e.Expr)

	case *ast.VariantExpr:
		if e.Payload == nil {
			c.Cont = ValueCont{Value: runtime.Variant{ID: string(e.ID), Payload: nil}}
			return nil
		}
		return descendFrom(c, VariantFrame{ID: e.ID}, e.Payload)

	case *ast.SwitchExpr:
		return descendFrom(c, SwitchFrame{Cases: e.Cases}, e.Scrutinee)

	case *ast.BlockExpr:
		source := token.NewSource(e.Pos())
		return pushAndDescendDecs(c, source, BlockFrame{}, e.Decs)

	case *ast.DoExpr:
		return descendFrom(c, DoFrame{}, e.Expr)

	case *ast.AssertExpr:
		return descendFrom(c, AssertFrame{}, e.Expr)

	case *ast.TupleExpr:
		if len(e.Elems) == 0 {
			c.Cont = ValueCont{Value: runtime.Unit{}}
			return nil
		}
		head, rest := e.Elems[0], e.Elems[1:]
		return descendFrom(c, TupleFrame{Done: nil, Pending: rest}, head)

	case *ast.AnnotExpr:
		// The frame must capture the hint as it stood BEFORE this
		// annotation takes effect, so popping it restores the outer
		// hint rather than re-affirming the one this node just set.
		outerHint := c.ContPrimType
		c.push(Frame{
			Env:      c.Env,
			PrimType: outerHint,
			Source:   c.ContSource,
			Cont:     AnnotFrame{Type: e.Type},
		})
		if e.Type.IsPrim {
			pt := e.Type.Prim
			c.ContPrimType = &pt
		}
		c.Cont = ExpCont{Expr: e.Expr}
		c.ContSource = token.NewSource(e.Expr.Pos())
		return nil

	case *ast.AssignExpr:
		return descendFrom(c, Assign1Frame{E2: e.Rhs}, e.Lhs)

	case *ast.ProjExpr:
		return descendFrom(c, ProjFrame{Index: e.Index}, e.Expr)

	case *ast.IfExpr:
		return descendFrom(c, IfFrame{Then: e.Then, Else: e.Else}, e.Cond)

	default:
		return runtime.NewUnimplemented(unsupportedFormName(expr))
	}
}

// pushAndDescendDecs pushes frameCont with the given source and sets the
// core to evaluate decs as a declaration list — used for Block, which
// unlike every other push-and-descend rule enters Cont = DecsCont rather
// than Cont = ExpCont.
func pushAndDescendDecs(c *Core, source token.Source, frameCont FrameCont, decs []ast.Dec) error {
	c.push(Frame{
		Env:      c.Env,
		PrimType: c.ContPrimType,
		Source:   source,
		Cont:     frameCont,
	})
	c.Cont = DecsCont{Decs: decs}
	c.ContSource = source
	return nil
}

// unsupportedFormName labels an expression node the reducer's default
// case caught, for the Unimplemented interruption's message.
func unsupportedFormName(expr ast.Expr) string {
	if u, ok := expr.(*ast.UnsupportedExpr); ok {
		return u.Form
	}
	return "expression"
}
