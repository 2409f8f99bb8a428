package vm

import (
	"bytes"
	"testing"

	"github.com/asterlang/go-aster/internal/parser"
	"github.com/asterlang/go-aster/internal/trace"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestSignalFixtures snapshots the terminal Signal of a set of small
// Aster programs, covering each expression form and interruption kind the
// evaluator implements. Evaluation is deterministic, so the snapshots are
// stable across runs.
func TestSignalFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{"let_addition", "let x = 1 + 2; x"},
		{"nat_sub_stays_nat", "let x = 5; let y = 3; x - y"},
		{"nat_sub_promotes_to_int", "let x = 5; let y = 3; y - x"},
		{"var_assign_roundtrip", "var x = 0; x := 7; x"},
		{"switch_payload", "switch (#foo(2)) { case (#foo(n)) n; case (#bar) 0 }"},
		{"switch_no_match", "switch (#foo(2)) { case (#bar) 0 }"},
		{"assert_pass", "assert (1 == 1); 42"},
		{"assert_fail", "assert (1 == 2)"},
		{"tuple_projection", "(1, 2, 3).1"},
		{"projection_out_of_range", "(1, 2).5"},
		{"wrapping_add_nat8", "(200 +% 100 : Nat8)"},
		{"wrapping_add_no_hint", "200 +% 100"},
		{"negation", "-5"},
		{"unbound_identifier", "y"},
		{"if_else", "if 1 == 2 then 1 else 2"},
		{"block_scoping", "let x = 1; let y = { let x = 5; x + x }; x + y"},
		{"variant_bare", "#bar"},
		{"text_equality", `"hi" == "hi"`},
		{"empty_program", ""},
	}

	for _, tc := range fixtures {
		t.Run(tc.name, func(t *testing.T) {
			prog, err := parser.Parse(tc.src)
			if err != nil {
				t.Fatalf("parse error for %q: %v", tc.src, err)
			}
			sig := Run(New(prog), NoLimits())
			snaps.MatchSnapshot(t, tc.name+"_signal", renderSignal(sig))
		})
	}
}

// TestTraceFixture snapshots the full JSON step trace of one program.
// Every field in the trace (step count, spans, continuation tags, env and
// stack summaries) is deterministic, so this pins the step-by-step shape
// of the machine, not just its final answer.
func TestTraceFixture(t *testing.T) {
	prog, err := parser.Parse("let x = 1 + 2; x")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var buf bytes.Buffer
	sink := trace.NewJSONSink(&buf)
	c := New(prog).WithOptions(Options{Trace: sink})

	sig := Run(c, NoLimits())
	if sig.Kind != SignalDone {
		t.Fatalf("expected Done, got %s", renderSignal(sig))
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	snaps.MatchSnapshot(t, "let_addition_trace", buf.String())
}
