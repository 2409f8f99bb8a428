// Package parser implements a hand-written recursive-descent parser that
// turns a token stream from internal/lexer into an internal/ast.Program.
// It follows the curToken/peekToken convention: every parseX method is
// entered with p.curToken on X's first token and returns with p.curToken
// on X's last token, leaving the caller to decide when to advance past
// it. There are no operator-precedence tables; the grammar is a small,
// fixed fragment, so precedence is encoded directly in the parse
// functions.
package parser

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/lexer"
	"github.com/asterlang/go-aster/internal/token"
)

// Parser holds the lexer and lookahead needed to parse one program.
type Parser struct {
	l *lexer.Lexer

	curToken  lexer.Token
	peekToken lexer.Token

	errors []*ParseError
}

// New returns a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t lexer.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past the peek token if it matches t, recording an
// error and leaving position unchanged otherwise.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.errors = append(p.errors, &ParseError{
		Pos:     p.peekToken.Span.Start,
		Message: "expected next token to be " + t.String() + ", got " + p.peekToken.Type.String() + " instead",
	})
}

func (p *Parser) errorf(pos token.Position, msg string) {
	p.errors = append(p.errors, &ParseError{Pos: pos, Message: msg})
}

// ParseProgram parses the entire token stream as a top-level declaration
// sequence.
func (p *Parser) ParseProgram() *ast.Program {
	return &ast.Program{Decs: p.parseDecList(lexer.EOF)}
}

// parseDecList parses declarations separated by ';' until terminator (or
// EOF) is reached. On return, p.curToken is terminator (or EOF).
func (p *Parser) parseDecList(terminator lexer.TokenType) []ast.Dec {
	var decs []ast.Dec
	for !p.curTokenIs(terminator) && !p.curTokenIs(lexer.EOF) {
		if d := p.parseDec(); d != nil {
			decs = append(decs, d)
		}

		switch {
		case p.peekTokenIs(lexer.SEMI):
			p.nextToken()
			if p.peekTokenIs(terminator) || p.peekTokenIs(lexer.EOF) {
				p.nextToken()
				return decs
			}
			p.nextToken()
		case p.peekTokenIs(terminator) || p.peekTokenIs(lexer.EOF):
			p.nextToken()
			return decs
		default:
			p.errorf(p.peekToken.Span.Start, "expected ';' or "+terminator.String()+", got "+p.peekToken.Type.String())
			p.nextToken()
		}
	}
	return decs
}

// parseDec parses one declaration: let, var, or a bare expression.
func (p *Parser) parseDec() ast.Dec {
	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLetDec()
	case lexer.VAR:
		return p.parseVarDec()
	default:
		start := p.curToken.Span
		expr := p.parseExpr()
		return &ast.ExpDec{Base: ast.At(start.Expand(expr.Pos())), Expr: expr}
	}
}

func (p *Parser) parseLetDec() ast.Dec {
	start := p.curToken.Span
	p.nextToken()
	pat := p.parsePat()
	if !p.expectPeek(lexer.EQUALS) {
		return &ast.LetDec{Base: ast.At(start), Pat: pat, Expr: &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed let"}}
	}
	p.nextToken()
	expr := p.parseExpr()
	return &ast.LetDec{Base: ast.At(start.Expand(expr.Pos())), Pat: pat, Expr: expr}
}

func (p *Parser) parseVarDec() ast.Dec {
	start := p.curToken.Span
	p.nextToken()
	pat := p.parsePat()
	if !p.expectPeek(lexer.EQUALS) {
		return &ast.VarDec{Base: ast.At(start), Pat: pat, Expr: &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed var"}}
	}
	p.nextToken()
	expr := p.parseExpr()
	return &ast.VarDec{Base: ast.At(start.Expand(expr.Pos())), Pat: pat, Expr: expr}
}
