package vm

import (
	"math/big"

	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

var nat8Modulus = big.NewInt(256)

// unop implements the unary operator table. Un-handled (operator,
// operand) combinations surface Unimplemented rather than a panic.
func unop(op ast.UnOp, v runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.Neg:
		if n, ok := v.(runtime.Nat); ok {
			return runtime.NewInt(new(big.Int).Neg(n.N)), nil
		}
	}
	return nil, runtime.NewUnimplemented("unop " + op.String())
}

// binop implements the binary operator table. primType is the core's
// currently-hinted primitive type, consulted only by wrapping operators
// such as WAdd.
func binop(primType *ast.PrimType, op ast.BinOp, v1, v2 runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.Add:
		switch a := v1.(type) {
		case runtime.Nat:
			if b, ok := v2.(runtime.Nat); ok {
				return runtime.NewNat(new(big.Int).Add(a.N, b.N)), nil
			}
		case runtime.Int:
			if b, ok := v2.(runtime.Int); ok {
				return runtime.NewInt(new(big.Int).Add(a.N, b.N)), nil
			}
		}

	case ast.Sub:
		switch a := v1.(type) {
		case runtime.Nat:
			if b, ok := v2.(runtime.Nat); ok {
				if b.N.Cmp(a.N) > 0 {
					return runtime.NewInt(new(big.Int).Sub(a.N, b.N)), nil
				}
				return runtime.NewNat(new(big.Int).Sub(a.N, b.N)), nil
			}
		case runtime.Int:
			switch b := v2.(type) {
			case runtime.Int:
				return runtime.NewInt(new(big.Int).Sub(a.N, b.N)), nil
			case runtime.Nat:
				return runtime.NewInt(new(big.Int).Sub(a.N, b.N)), nil
			}
		}

	case ast.WAdd:
		if primType == nil {
			return nil, runtime.NewAmbiguousOperation(op.String())
		}
		a, aok := v1.(runtime.Nat)
		b, bok := v2.(runtime.Nat)
		if aok && bok {
			switch *primType {
			case ast.PrimNat:
				return runtime.NewNat(new(big.Int).Add(a.N, b.N)), nil
			case ast.PrimNat8:
				sum := new(big.Int).Add(a.N, b.N)
				return runtime.NewNat(sum.Mod(sum, nat8Modulus)), nil
			}
		}
	}
	return nil, runtime.NewUnimplemented("binop " + op.String())
}

// relop implements the relational operator table, extended with Text
// equality — a direct generalization of the same Eq/Neq shape to the one
// additional primitive value kind Aster adds beyond the core numeric and
// boolean literals.
func relop(op ast.RelOp, v1, v2 runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.Eq:
		if eq, ok := valuesEqual(v1, v2); ok {
			return runtime.Bool{B: eq}, nil
		}
	case ast.Neq:
		if eq, ok := valuesEqual(v1, v2); ok {
			return runtime.Bool{B: !eq}, nil
		}
	}
	return nil, runtime.NewUnimplemented("relop " + op.String())
}

// valuesEqual compares two values of the same comparable primitive kind.
// The second return is false when v1 and v2 are not both of a kind
// relop knows how to compare, so the caller can surface Unimplemented
// rather than silently answering false.
func valuesEqual(v1, v2 runtime.Value) (bool, bool) {
	switch a := v1.(type) {
	case runtime.Nat:
		if b, ok := v2.(runtime.Nat); ok {
			return a.N.Cmp(b.N) == 0, true
		}
	case runtime.Int:
		if b, ok := v2.(runtime.Int); ok {
			return a.N.Cmp(b.N) == 0, true
		}
	case runtime.Text:
		if b, ok := v2.(runtime.Text); ok {
			return a.S == b.S, true
		}
	}
	return false, false
}
