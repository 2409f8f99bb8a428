package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/asterlang/go-aster/internal/token"
	"github.com/asterlang/go-aster/internal/trace"
	"github.com/asterlang/go-aster/pkg/aster"
	"github.com/spf13/cobra"
)

var (
	evalExpr    string
	stepLimit   int
	breakpoints []string
	traceSteps  bool
	dumpAST     bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Aster program",
	Long: `Execute an Aster program from a file or inline expression, to
completion, to a step budget, or to a configured breakpoint.

Examples:
  # Run a script file
  aster run program.aster

  # Evaluate an inline expression
  aster run -e "let x = 1 + 2; x"

  # Stop after at most 3 steps
  aster run --step-limit 3 program.aster

  # Trace every step as JSON to stderr
  aster run --trace program.aster`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().IntVar(&stepLimit, "step-limit", 0, "stop after at most N steps (0 means unlimited)")
	runCmd.Flags().StringArrayVar(&breakpoints, "breakpoint", nil, "source span to break at, as L:C-L:C (repeatable)")
	runCmd.Flags().BoolVar(&traceSteps, "trace", false, "write one JSON trace line per step to stderr")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runProgram(_ *cobra.Command, args []string) error {
	input, filename, err := readProgramInput(args)
	if err != nil {
		return err
	}

	prog, perr := aster.Parse(input)
	if perr != nil {
		return fmt.Errorf("%s: %w", filename, perr)
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(prog.String())
		fmt.Println()
	}

	spans, err := parseBreakpoints(breakpoints)
	if err != nil {
		return err
	}

	var opts []aster.Option
	if traceSteps {
		sink := trace.NewJSONSink(os.Stderr)
		opts = append(opts, aster.WithTrace(sink))
		defer sink.Flush()
	}

	core := aster.New(prog, opts...)

	limits := aster.NoLimits().WithBreakpoints(spans)
	if stepLimit > 0 {
		limits = limits.WithStep(stepLimit)
	}

	sig := core.Run(limits)
	switch sig.Kind {
	case aster.SignalDone:
		fmt.Println(sig.Value.String())
		return nil
	case aster.SignalBreakpoint:
		fmt.Fprintf(os.Stderr, "breakpoint: %s\n", sig.Breakpoint)
		return nil
	default:
		return fmt.Errorf("%s: %w", filename, sig.Err)
	}
}

func readProgramInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}

// parseBreakpoints parses each "L:C-L:C" flag value into a token.Span.
func parseBreakpoints(raw []string) ([]token.Span, error) {
	spans := make([]token.Span, 0, len(raw))
	for _, r := range raw {
		span, err := parseSpan(r)
		if err != nil {
			return nil, fmt.Errorf("invalid --breakpoint %q: %w", r, err)
		}
		spans = append(spans, span)
	}
	return spans, nil
}

func parseSpan(s string) (token.Span, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return token.Span{}, fmt.Errorf("expected L:C-L:C")
	}
	start, err := parsePosition(parts[0])
	if err != nil {
		return token.Span{}, err
	}
	end, err := parsePosition(parts[1])
	if err != nil {
		return token.Span{}, err
	}
	return token.Span{Start: start, End: end}, nil
}

func parsePosition(s string) (token.Position, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return token.Position{}, fmt.Errorf("expected L:C")
	}
	line, err := strconv.Atoi(parts[0])
	if err != nil {
		return token.Position{}, fmt.Errorf("invalid line %q", parts[0])
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return token.Position{}, fmt.Errorf("invalid column %q", parts[1])
	}
	return token.Position{Line: line, Column: col}, nil
}
