package parser

import (
	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/lexer"
)

// parsePat parses a pattern: a bare variable binding, a parenthesized
// pattern, or a variant pattern. General destructuring patterns beyond
// these are not part of this grammar (the evaluator does not implement
// them either).
func (p *Parser) parsePat() ast.Pat {
	switch p.curToken.Type {
	case lexer.IDENT:
		return &ast.VarPat{Base: ast.At(p.curToken.Span), Name: ast.Ident(p.curToken.Literal)}

	case lexer.HASH:
		return p.parseVariantPat()

	case lexer.LPAREN:
		start := p.curToken.Span
		p.nextToken()
		inner := p.parsePat()
		if !p.expectPeek(lexer.RPAREN) {
			return &ast.ParenPat{Base: ast.At(start), Pat: inner}
		}
		return &ast.ParenPat{Base: ast.At(start.Expand(p.curToken.Span)), Pat: inner}

	default:
		p.errorf(p.curToken.Span.Start, "expected a pattern, got "+p.curToken.Type.String())
		return &ast.VarPat{Base: ast.At(p.curToken.Span), Name: "_"}
	}
}

func (p *Parser) parseVariantPat() ast.Pat {
	start := p.curToken.Span
	if !p.expectPeek(lexer.IDENT) {
		return &ast.VariantPat{Base: ast.At(start), ID: "?"}
	}
	id := ast.Ident(p.curToken.Literal)
	end := p.curToken.Span

	var payload ast.Pat
	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken()
		p.nextToken()
		payload = p.parsePat()
		if !p.expectPeek(lexer.RPAREN) {
			return &ast.VariantPat{Base: ast.At(start), ID: id, Payload: payload}
		}
		end = p.curToken.Span
	}
	return &ast.VariantPat{Base: ast.At(start.Expand(end)), ID: id, Payload: payload}
}
