package lexer

import "github.com/asterlang/go-aster/internal/token"

// Token is one lexical unit: its category, its literal text (decoded for
// TEXT tokens; verbatim for everything else), and the span it occupies.
type Token struct {
	Type    TokenType
	Literal string
	Span    token.Span
}
