package vm

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/vm/runtime"
)

// patternMatch structurally matches pat against v, returning an
// environment extending env with pat's bindings. The second return is
// false if pat does not match v; env is returned unchanged in that case.
func patternMatch(env *runtime.Env, pat ast.Pat, v runtime.Value) (*runtime.Env, bool) {
	switch p := pat.(type) {
	case *ast.ParenPat:
		return patternMatch(env, p.Pat, v)

	case *ast.VarPat:
		return env.Extend(string(p.Name), v), true

	case *ast.VariantPat:
		vv, ok := v.(runtime.Variant)
		if !ok || vv.ID != string(p.ID) {
			return env, false
		}
		switch {
		case p.Payload == nil && vv.Payload == nil:
			return env, true
		case p.Payload != nil && vv.Payload != nil:
			return patternMatch(env, p.Payload, vv.Payload)
		default:
			return env, false
		}

	default:
		return env, false
	}
}

// evalSwitch tries cases in declaration order, installing the first
// matching case's extended environment and descending into its body. If
// no case matches, it fails with NoMatchingCase.
func evalSwitch(c *Core, v runtime.Value, cases []ast.SwitchCase) error {
	for _, cs := range cases {
		if env, ok := patternMatch(c.Env, cs.Pat, v); ok {
			c.Env = env
			c.ContSource = token.NewSource(cs.Body.Pos())
			c.Cont = ExpCont{Expr: cs.Body}
			return nil
		}
	}
	return runtime.NewNoMatchingCase()
}
