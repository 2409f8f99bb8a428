package token

// SourceKind distinguishes a real span from the sentinel sources the
// evaluator produces when there is no meaningful span to attribute.
type SourceKind int

const (
	// SourceSpan is a real, breakpoint-comparable span of source text.
	SourceSpan SourceKind = iota
	// SourceCoreInit marks the evaluator's initial state, before any
	// expression has been reduced.
	SourceCoreInit
	// SourceUnknown marks a continuation with nothing to attribute a span
	// to (e.g. an empty declaration list).
	SourceUnknown
	// SourceEval marks a value produced by the evaluator itself rather
	// than by reducing a specific piece of source (e.g. the result of an
	// empty declaration block).
	SourceEval
)

// Source is the "where did this continuation come from" register. It is
// either a real Span, usable for breakpoint matching and error attribution,
// or one of three sentinels that never match a breakpoint.
type Source struct {
	Kind SourceKind
	Span Span
}

// NewSource wraps a concrete span.
func NewSource(span Span) Source {
	return Source{Kind: SourceSpan, Span: span}
}

// CoreInitSource is the distinguished source of a freshly initialized core.
func CoreInitSource() Source { return Source{Kind: SourceCoreInit} }

// UnknownSource is the distinguished source of an empty declaration list.
func UnknownSource() Source { return Source{Kind: SourceUnknown} }

// EvalSource is the distinguished source of a value the evaluator produced
// with no sub-expression to blame.
func EvalSource() Source { return Source{Kind: SourceEval} }

// AsSpan returns the underlying span and true if this source is a real
// span; otherwise it returns the zero Span and false.
func (s Source) AsSpan() (Span, bool) {
	if s.Kind == SourceSpan {
		return s.Span, true
	}
	return Span{}, false
}

// Expand returns the span union of s and other when both are real spans.
// A sentinel source is absorbed: expanding a sentinel with a real span
// yields the real span, and expanding two sentinels yields s unchanged.
func (s Source) Expand(other Source) Source {
	sSpan, sOK := s.AsSpan()
	oSpan, oOK := other.AsSpan()
	switch {
	case sOK && oOK:
		return NewSource(sSpan.Expand(oSpan))
	case oOK:
		return other
	default:
		return s
	}
}

// String renders the source for diagnostics.
func (s Source) String() string {
	switch s.Kind {
	case SourceSpan:
		return s.Span.String()
	case SourceCoreInit:
		return "<core-init>"
	case SourceUnknown:
		return "<unknown>"
	case SourceEval:
		return "<evaluation>"
	default:
		return "<invalid-source>"
	}
}
