package runtime

import (
	"golang.org/x/text/unicode/norm"

	"github.com/asterlang/go-aster/internal/ast"
)

// FromLiteral converts a parsed literal into a runtime Value. This is the
// one place literal-specific validation happens; a malformed literal
// (none of the cases below, today, since the parser only produces
// well-formed literals) surfaces as ParseError rather than a panic.
func FromLiteral(lit ast.Literal) (Value, error) {
	switch l := lit.(type) {
	case ast.NatLiteral:
		if l.Value == nil || l.Value.Sign() < 0 {
			return nil, NewParseError("natural literal must be non-negative")
		}
		return NewNat(l.Value), nil
	case ast.BoolLiteral:
		return Bool{B: l.Value}, nil
	case ast.TextLiteral:
		return NewText(l.Value), nil
	default:
		return nil, NewParseError("unrecognized literal form")
	}
}

// NewText constructs a Text value, normalizing its contents to Unicode
// NFC so that two Text values are Go-equal (and so Rel's Eq/Neq agree)
// whenever they represent the same string, regardless of the source
// file's normalization form.
func NewText(s string) Text {
	return Text{S: norm.NFC.String(s)}
}
