package ast

// ExpDec is a declaration that is just an expression evaluated for its
// value (and, if it is the last declaration in a block, that value is the
// block's result).
type ExpDec struct {
	Base
	Expr Expr
}

func (*ExpDec) decNode() {}

// LetDec binds the value of Expr to Pat, immutably, in the current scope.
// Only VarPat is implemented; any other pattern form is unimplemented.
type LetDec struct {
	Base
	Pat  Pat
	Expr Expr
}

func (*LetDec) decNode() {}

// VarDec allocates a mutable store cell holding the value of Expr and
// binds a pointer to it under Pat. Only VarPat is implemented.
type VarDec struct {
	Base
	Pat  Pat
	Expr Expr
}

func (*VarDec) decNode() {}

// UnsupportedDec stands in for a declaration form the evaluator does not
// implement (function, class, module, and type declarations).
type UnsupportedDec struct {
	Base
	Form string
}

func (*UnsupportedDec) decNode() {}
