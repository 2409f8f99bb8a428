package vm

import (
	"strconv"
	"strings"

	"github.com/asterlang/go-aster/internal/trace"
)

// Options configures ambient, non-semantic behavior of a Core: whether
// (and where) to trace each step. The zero value disables tracing.
type Options struct {
	Trace trace.Sink
}

// WithOptions returns c with opts installed, for chaining off New.
func (c *Core) WithOptions(opts Options) *Core {
	c.Opts = opts
	return c
}

// emitTrace writes one trace.Entry describing c's state just before a
// step acts on it. Called unconditionally by Step; a nil Options.Trace
// makes this a no-op.
func (c *Core) emitTrace() error {
	if c.Opts.Trace == nil {
		return nil
	}
	return c.Opts.Trace.Emit(trace.Entry{
		Step:       c.Step,
		Source:     c.ContSource.String(),
		Cont:       contTag(c.Cont),
		Env:        strings.Join(c.Env.Names(), ","),
		Stack:      stackSummary(c.Stack),
		StackDepth: len(c.Stack),
	})
}

// contTag names the shape of a Cont for trace output without dumping its
// full contents.
func contTag(cont Cont) string {
	switch cont.(type) {
	case TakenCont:
		return "Taken"
	case DecsCont:
		return "Decs"
	case ExpCont:
		return "Exp"
	case ValueCont:
		return "Value"
	default:
		return "?"
	}
}

// stackSummary renders the frame kinds on the control stack, bottom to
// top, as a compact comma-joined tag list.
func stackSummary(stack []Frame) string {
	tags := make([]string, len(stack))
	for i, f := range stack {
		tags[i] = frameTag(f.Cont)
	}
	return strings.Join(tags, ",")
}

// frameTag names the shape of a FrameCont for trace output.
func frameTag(fc FrameCont) string {
	switch f := fc.(type) {
	case UnOpFrame:
		return "UnOp"
	case BinOp1Frame:
		return "BinOp1"
	case BinOp2Frame:
		return "BinOp2"
	case RelOp1Frame:
		return "RelOp1"
	case RelOp2Frame:
		return "RelOp2"
	case ParenFrame:
		return "Paren"
	case VariantFrame:
		return "Variant"
	case SwitchFrame:
		return "Switch"
	case BlockFrame:
		return "Block"
	case DoFrame:
		return "Do"
	case AssertFrame:
		return "Assert"
	case TupleFrame:
		return "Tuple(" + strconv.Itoa(len(f.Done)) + "/" + strconv.Itoa(len(f.Done)+len(f.Pending)) + ")"
	case AnnotFrame:
		return "Annot"
	case ProjFrame:
		return "Proj"
	case IfFrame:
		return "If"
	case Assign1Frame:
		return "Assign1"
	case Assign2Frame:
		return "Assign2"
	case LetFrame:
		return "Let"
	case VarFrame:
		return "Var"
	case DecsFrame:
		return "Decs"
	default:
		return "?"
	}
}
