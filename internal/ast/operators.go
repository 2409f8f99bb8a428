package ast

// UnOp is a prefix unary operator.
type UnOp int

const (
	// Neg is arithmetic negation: -e.
	Neg UnOp = iota
)

func (op UnOp) String() string {
	switch op {
	case Neg:
		return "-"
	default:
		return "<unknown unop>"
	}
}

// BinOp is an infix arithmetic operator.
type BinOp int

const (
	// Add is addition: e1 + e2.
	Add BinOp = iota
	// Sub is subtraction: e1 - e2.
	Sub
	// WAdd is wrapping addition: e1 +% e2, resolved against the
	// currently-hinted primitive type.
	WAdd
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case WAdd:
		return "+%"
	default:
		return "<unknown binop>"
	}
}

// RelOp is an infix relational operator.
type RelOp int

const (
	// Eq is equality: e1 == e2.
	Eq RelOp = iota
	// Neq is inequality: e1 != e2.
	Neq
)

func (op RelOp) String() string {
	switch op {
	case Eq:
		return "=="
	case Neq:
		return "!="
	default:
		return "<unknown relop>"
	}
}

// PrimType is an expected primitive type, set by an Annot frame and
// consulted by wrapping arithmetic such as WAdd.
type PrimType int

const (
	// PrimNat is the arbitrary-precision natural type.
	PrimNat PrimType = iota
	// PrimNat8 is the 8-bit wrapping natural type.
	PrimNat8
	// PrimInt is the arbitrary-precision integer type.
	PrimInt
	// PrimBool is the boolean type.
	PrimBool
	// PrimText is the text (string) type.
	PrimText
)

func (t PrimType) String() string {
	switch t {
	case PrimNat:
		return "Nat"
	case PrimNat8:
		return "Nat8"
	case PrimInt:
		return "Int"
	case PrimBool:
		return "Bool"
	case PrimText:
		return "Text"
	default:
		return "<unknown prim type>"
	}
}

// Type is a type expression. Only Prim carries evaluator-visible meaning
// (it sets the core's primitive-type hint); Other stands in for any type
// expression the evaluator does not need to interpret.
type Type struct {
	Prim   PrimType
	IsPrim bool
	Other  string
}
