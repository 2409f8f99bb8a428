package ast

import (
	"strconv"
	"strings"
)

// String methods render nodes back to source-shaped text, fully
// parenthesized where the node is an operator application. The output is
// for debugging (the CLI's AST dump), not a formatter: spacing and
// delimiters are normalized, comments are gone.

func (p *Program) String() string {
	return decsString(p.Decs)
}

func decsString(decs []Dec) string {
	parts := make([]string, len(decs))
	for i, d := range decs {
		parts[i] = d.String()
	}
	return strings.Join(parts, "; ")
}

func (d *ExpDec) String() string { return d.Expr.String() }

func (d *LetDec) String() string {
	return "let " + d.Pat.String() + " = " + d.Expr.String()
}

func (d *VarDec) String() string {
	return "var " + d.Pat.String() + " = " + d.Expr.String()
}

func (d *UnsupportedDec) String() string { return "<unsupported: " + d.Form + ">" }

func (e *LiteralExpr) String() string { return e.Lit.String() }

func (e *VarExpr) String() string { return string(e.Name) }

func (e *BinExpr) String() string {
	return "(" + e.Lhs.String() + " " + e.Op.String() + " " + e.Rhs.String() + ")"
}

func (e *UnExpr) String() string {
	return "(" + e.Op.String() + e.Expr.String() + ")"
}

func (e *RelExpr) String() string {
	return "(" + e.Lhs.String() + " " + e.Op.String() + " " + e.Rhs.String() + ")"
}

func (e *ParenExpr) String() string { return "(" + e.Expr.String() + ")" }

func (e *VariantExpr) String() string {
	if e.Payload == nil {
		return "#" + string(e.ID)
	}
	return "#" + string(e.ID) + "(" + e.Payload.String() + ")"
}

func (e *SwitchExpr) String() string {
	var out strings.Builder
	out.WriteString("switch (")
	out.WriteString(e.Scrutinee.String())
	out.WriteString(") { ")
	for i, c := range e.Cases {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString("case (")
		out.WriteString(c.Pat.String())
		out.WriteString(") ")
		out.WriteString(c.Body.String())
	}
	out.WriteString(" }")
	return out.String()
}

func (e *BlockExpr) String() string {
	if len(e.Decs) == 0 {
		return "{}"
	}
	return "{ " + decsString(e.Decs) + " }"
}

func (e *DoExpr) String() string { return "do " + e.Expr.String() }

func (e *AssertExpr) String() string { return "assert " + e.Expr.String() }

func (e *TupleExpr) String() string {
	parts := make([]string, len(e.Elems))
	for i, el := range e.Elems {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (e *AnnotExpr) String() string {
	return "(" + e.Expr.String() + " : " + e.Type.String() + ")"
}

func (e *AssignExpr) String() string {
	return e.Lhs.String() + " := " + e.Rhs.String()
}

func (e *ProjExpr) String() string {
	return e.Expr.String() + "." + strconv.Itoa(e.Index)
}

func (e *IfExpr) String() string {
	out := "if " + e.Cond.String()
	if e.Then != nil {
		out += " then " + e.Then.String()
	}
	if e.Else != nil {
		out += " else " + e.Else.String()
	}
	return out
}

func (e *UnsupportedExpr) String() string { return "<unsupported: " + e.Form + ">" }

func (p *VarPat) String() string { return string(p.Name) }

func (p *ParenPat) String() string { return "(" + p.Pat.String() + ")" }

func (p *VariantPat) String() string {
	if p.Payload == nil {
		return "#" + string(p.ID)
	}
	return "#" + string(p.ID) + "(" + p.Payload.String() + ")"
}

func (t Type) String() string {
	if t.IsPrim {
		return t.Prim.String()
	}
	return t.Other
}

func (l NatLiteral) String() string {
	if l.Value == nil {
		return "<nil nat>"
	}
	return l.Value.String()
}

func (l BoolLiteral) String() string {
	if l.Value {
		return "true"
	}
	return "false"
}

func (l TextLiteral) String() string { return strconv.Quote(l.Value) }
