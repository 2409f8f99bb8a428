package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
)

// sourceFromDecs attributes a span to a (possibly empty) declaration
// list: the union of the first and last declaration's spans, or the
// unknown sentinel if the list is empty.
func sourceFromDecs(decs []ast.Dec) token.Source {
	if len(decs) == 0 {
		return token.UnknownSource()
	}
	first := token.NewSource(decs[0].Pos())
	return first.Expand(token.NewSource(decs[len(decs)-1].Pos()))
}

// sourceFromCont attributes a span to a Cont: an Exp_ source expands
// across any tail declarations; a Decs source is sourceFromDecs; Value
// has no sub-expression to blame, so it is the evaluation sentinel.
// TakenCont has no valid source — calling this on one is a bug in the
// evaluator itself.
func sourceFromCont(cont Cont) token.Source {
	switch c := cont.(type) {
	case TakenCont:
		panic("vm: no source for Taken continuation; this signals an evaluator bug")
	case DecsCont:
		return sourceFromDecs(c.Decs)
	case ExpCont:
		src := token.NewSource(c.Expr.Pos())
		if len(c.Decs) == 0 {
			return src
		}
		return src.Expand(token.NewSource(c.Decs[len(c.Decs)-1].Pos()))
	case ValueCont:
		return token.EvalSource()
	default:
		panic("vm: sourceFromCont: unrecognized Cont")
	}
}
