package ast

import "github.com/asterlang/go-aster/internal/token"

// Base embeds a span and gives every concrete node its Pos() method.
// Every node in this package embeds Base by value.
type Base struct {
	Span token.Span
}

// Pos returns the node's source span.
func (b Base) Pos() token.Span { return b.Span }

// At constructs a Base for the given span; a small convenience for
// callers (the parser) building nodes from outside this package.
func At(span token.Span) Base { return Base{Span: span} }

// LiteralExpr wraps a literal value in expression position.
type LiteralExpr struct {
	Base
	Lit Literal
}

func (*LiteralExpr) exprNode() {}

// VarExpr looks up an identifier in the current environment.
type VarExpr struct {
	Base
	Name Ident
}

func (*VarExpr) exprNode() {}

// BinExpr is an infix arithmetic operator application: E1 op E2.
type BinExpr struct {
	Base
	Op       BinOp
	Lhs, Rhs Expr
}

func (*BinExpr) exprNode() {}

// UnExpr is a prefix unary operator application: op E.
type UnExpr struct {
	Base
	Op   UnOp
	Expr Expr
}

func (*UnExpr) exprNode() {}

// RelExpr is an infix relational operator application: E1 op E2.
type RelExpr struct {
	Base
	Op       RelOp
	Lhs, Rhs Expr
}

func (*RelExpr) exprNode() {}

// ParenExpr is an explicitly parenthesized expression: (E).
type ParenExpr struct {
	Base
	Expr Expr
}

func (*ParenExpr) exprNode() {}

// VariantExpr constructs a variant value: #id or #id(E).
type VariantExpr struct {
	Base
	ID      Ident
	Payload Expr // nil if the variant carries no payload
}

func (*VariantExpr) exprNode() {}

// SwitchCase is one arm of a Switch expression.
type SwitchCase struct {
	Span token.Span
	Pat  Pat
	Body Expr
}

// SwitchExpr pattern-matches a scrutinee against an ordered list of cases.
type SwitchExpr struct {
	Base
	Scrutinee Expr
	Cases     []SwitchCase
}

func (*SwitchExpr) exprNode() {}

// BlockExpr evaluates a sequence of declarations as a nested scope,
// producing the value of the final declaration (or Unit if empty).
type BlockExpr struct {
	Base
	Decs []Dec
}

func (*BlockExpr) exprNode() {}

// DoExpr evaluates E and discards nothing (a transparent wrapper, kept
// distinct from ParenExpr because it has its own FrameCont in the
// evaluator).
type DoExpr struct {
	Base
	Expr Expr
}

func (*DoExpr) exprNode() {}

// AssertExpr evaluates E, which must be a Bool; false fails the program
// with AssertionFailure.
type AssertExpr struct {
	Base
	Expr Expr
}

func (*AssertExpr) exprNode() {}

// TupleExpr is an ordered tuple literal: (E1, E2, ..., En).
type TupleExpr struct {
	Base
	Elems []Expr
}

func (*TupleExpr) exprNode() {}

// AnnotExpr is a type-annotated expression: (E : T). When T is a
// primitive type, evaluating this node sets the core's primitive-type
// hint for the duration of evaluating E.
type AnnotExpr struct {
	Base
	Expr Expr
	Type Type
}

func (*AnnotExpr) exprNode() {}

// AssignExpr assigns the value of Rhs to the pointer produced by
// evaluating Lhs: Lhs := Rhs.
type AssignExpr struct {
	Base
	Lhs, Rhs Expr
}

func (*AssignExpr) exprNode() {}

// ProjExpr projects the Index'th component out of a tuple: E.Index.
type ProjExpr struct {
	Base
	Expr  Expr
	Index int
}

func (*ProjExpr) exprNode() {}

// IfExpr is a conditional expression: if E1 then E2 [else E3].
type IfExpr struct {
	Base
	Cond       Expr
	Then, Else Expr // Else is nil when there is no else-branch
}

func (*IfExpr) exprNode() {}

// UnsupportedExpr stands in for a syntactic form the evaluator does not
// implement (function literals, object expressions, module references,
// and the like). It exists so a parser extended beyond the supported
// grammar can still produce a well-formed AST that the evaluator turns
// into an explicit Unimplemented interruption instead of a panic.
type UnsupportedExpr struct {
	Base
	Form string
}

func (*UnsupportedExpr) exprNode() {}
