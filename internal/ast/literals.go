package ast

import "math/big"

// Literal is a literal value as written in source, before conversion to a
// runtime Value. Conversion (and the errors it can raise) belongs to
// internal/vm/runtime, not to this package.
type Literal interface {
	literalNode()
	// String renders the literal as it would appear in source.
	String() string
}

// NatLiteral is an arbitrary-precision natural-number literal: 0, 1, 42...
type NatLiteral struct {
	Value *big.Int
}

func (NatLiteral) literalNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
}

func (BoolLiteral) literalNode() {}

// TextLiteral is a double-quoted string literal.
type TextLiteral struct {
	Value string
}

func (TextLiteral) literalNode() {}
