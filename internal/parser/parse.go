package parser

import (
	"strings"

	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/lexer"
)

// Parse lexes and parses source in one call, returning the first
// accumulated syntax (or lexical) error if any were recorded.
func Parse(source string) (*ast.Program, error) {
	l := lexer.New(source)
	p := New(l)
	prog := p.ParseProgram()

	var msgs []string
	for _, e := range l.Errors() {
		msgs = append(msgs, e.Error())
	}
	for _, e := range p.Errors() {
		msgs = append(msgs, e.Error())
	}
	if len(msgs) > 0 {
		return prog, &Error{Messages: msgs}
	}
	return prog, nil
}

// Error aggregates every lexical and syntax fault from one Parse call.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "parse error: " + strings.Join(e.Messages, "; ")
}
