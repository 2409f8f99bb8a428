package parser

import (
	"fmt"

	"github.com/asterlang/go-aster/internal/token"
)

// ParseError reports a single syntax fault encountered while parsing.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
