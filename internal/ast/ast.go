// Package ast defines the Abstract Syntax Tree node types that the
// evaluator in internal/vm reduces over. Lexing, parsing, and type
// checking are external collaborators to the evaluator; this package only
// holds the data definitions they agree on.
package ast

import "github.com/asterlang/go-aster/internal/token"

// Node is the base interface every AST node implements.
type Node interface {
	// Pos returns the node's source span, for error attribution and
	// breakpoints.
	Pos() token.Span
	// String renders the node as source-shaped text, for debugging.
	String() string
}

// Expr is any node that produces a value when reduced.
type Expr interface {
	Node
	exprNode()
}

// Dec is a single top-level or block-level declaration.
type Dec interface {
	Node
	decNode()
}

// Pat is a pattern matched against a value, either in a `let`/`var`
// declaration or a `switch` case.
type Pat interface {
	Node
	patNode()
}

// Program is the root of a parsed Aster program: an ordered sequence of
// declarations evaluated as a top-level block.
type Program struct {
	Decs []Dec
}

// Ident is a bare identifier, as it appears in a Var expression or a
// Var pattern.
type Ident string
