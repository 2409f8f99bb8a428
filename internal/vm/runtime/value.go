// Package runtime provides the runtime value system, environment, and
// store for the Aster evaluator: the data the stepper in internal/vm
// mutates on every step.
package runtime

import (
	"fmt"
	"math/big"
	"strings"
)

// Value is a runtime value produced by evaluation: a tagged variant
// realized as one concrete struct per kind. Type switches (not
// reflection) are used throughout the evaluator to dispatch on a
// value's shape.
type Value interface {
	// Type returns the value's type tag, for error messages and tracing.
	Type() string
	// String renders the value for diagnostics.
	String() string
}

// Unit is the single value of unit type.
type Unit struct{}

func (Unit) Type() string   { return "Unit" }
func (Unit) String() string { return "()" }

// Nat is an arbitrary-precision natural number (N >= 0 is an invariant
// maintained by every constructor; see NewNat).
type Nat struct {
	N *big.Int
}

// NewNat wraps n as a Nat. The caller must ensure n is non-negative;
// arithmetic in internal/vm promotes to Int rather than producing a
// negative Nat.
func NewNat(n *big.Int) Nat { return Nat{N: n} }

// NatOf is a convenience constructor from an int64.
func NatOf(n int64) Nat { return Nat{N: big.NewInt(n)} }

func (Nat) Type() string { return "Nat" }

func (n Nat) String() string { return n.N.String() }

// Int is an arbitrary-precision integer.
type Int struct {
	N *big.Int
}

// NewInt wraps n as an Int.
func NewInt(n *big.Int) Int { return Int{N: n} }

// IntOf is a convenience constructor from an int64.
func IntOf(n int64) Int { return Int{N: big.NewInt(n)} }

func (Int) Type() string { return "Int" }

func (i Int) String() string { return i.N.String() }

// Bool is a boolean value.
type Bool struct {
	B bool
}

func (Bool) Type() string { return "Bool" }

func (b Bool) String() string {
	if b.B {
		return "true"
	}
	return "false"
}

// Text is a UTF-8 string value. Construction goes through NewText, which
// normalizes to NFC so that value-equality (used by Rel's Eq/Neq) is
// independent of how the source file encoded the text.
type Text struct {
	S string
}

func (Text) Type() string { return "Text" }

func (t Text) String() string { return fmt.Sprintf("%q", t.S) }

// Tuple is an ordered, fixed-size sequence of values.
type Tuple struct {
	Elems []Value
}

func (Tuple) Type() string { return "Tuple" }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Variant is a named constructor applied to an optional payload value.
type Variant struct {
	ID      string
	Payload Value // nil when the variant carries no payload
}

func (Variant) Type() string { return "Variant" }

func (v Variant) String() string {
	if v.Payload == nil {
		return "#" + v.ID
	}
	return "#" + v.ID + "(" + v.Payload.String() + ")"
}

// Pointer is an opaque, first-class handle into the Store. Every use of a
// Pointer value except as the left-hand side of an assignment is
// implicitly dereferenced by the stepper.
type Pointer int

func (Pointer) Type() string { return "Pointer" }

func (p Pointer) String() string { return fmt.Sprintf("ptr(%d)", int(p)) }
