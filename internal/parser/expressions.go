package parser

import (
	"math/big"

	"github.com/asterlang/go-aster/internal/ast"
	"github.com/asterlang/go-aster/internal/lexer"
)

// parseExpr parses a full expression. if is handled ahead of the
// operator-precedence chain since it is a prefix form whose branches
// themselves recurse into parseExpr.
func (p *Parser) parseExpr() ast.Expr {
	if p.curTokenIs(lexer.IF) {
		return p.parseIfExpr()
	}
	return p.parseAssign()
}

// parseAssign is the lowest operator precedence level: e1 := e2.
func (p *Parser) parseAssign() ast.Expr {
	left := p.parseRel()
	if p.peekTokenIs(lexer.ASSIGNOP) {
		p.nextToken()
		p.nextToken()
		right := p.parseAssign()
		return &ast.AssignExpr{Base: ast.At(left.Pos().Expand(right.Pos())), Lhs: left, Rhs: right}
	}
	return left
}

func (p *Parser) parseRel() ast.Expr {
	left := p.parseAdd()
	for p.peekTokenIs(lexer.EQ) || p.peekTokenIs(lexer.NEQ) {
		op := ast.Eq
		if p.peekToken.Type == lexer.NEQ {
			op = ast.Neq
		}
		p.nextToken()
		p.nextToken()
		right := p.parseAdd()
		left = &ast.RelExpr{Base: ast.At(left.Pos().Expand(right.Pos())), Op: op, Lhs: left, Rhs: right}
	}
	return left
}

func (p *Parser) parseAdd() ast.Expr {
	left := p.parseUnary()
	for p.peekTokenIs(lexer.PLUS) || p.peekTokenIs(lexer.MINUS) || p.peekTokenIs(lexer.WADD) {
		var op ast.BinOp
		switch p.peekToken.Type {
		case lexer.PLUS:
			op = ast.Add
		case lexer.MINUS:
			op = ast.Sub
		case lexer.WADD:
			op = ast.WAdd
		}
		p.nextToken()
		p.nextToken()
		right := p.parseUnary()
		left = &ast.BinExpr{Base: ast.At(left.Pos().Expand(right.Pos())), Op: op, Lhs: left, Rhs: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.curTokenIs(lexer.MINUS) {
		start := p.curToken.Span
		p.nextToken()
		operand := p.parseUnary()
		return &ast.UnExpr{Base: ast.At(start.Expand(operand.Pos())), Op: ast.Neg, Expr: operand}
	}
	return p.parseProj()
}

func (p *Parser) parseProj() ast.Expr {
	left := p.parsePrimary()
	for p.peekTokenIs(lexer.DOT) {
		p.nextToken()
		if !p.expectPeek(lexer.NAT) {
			return left
		}
		idx := 0
		for _, r := range p.curToken.Literal {
			idx = idx*10 + int(r-'0')
		}
		left = &ast.ProjExpr{Base: ast.At(left.Pos().Expand(p.curToken.Span)), Expr: left, Index: idx}
	}
	return left
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.curToken.Type {
	case lexer.NAT:
		n, ok := new(big.Int).SetString(p.curToken.Literal, 10)
		if !ok {
			p.errorf(p.curToken.Span.Start, "malformed natural literal "+p.curToken.Literal)
			n = big.NewInt(0)
		}
		return &ast.LiteralExpr{Base: ast.At(p.curToken.Span), Lit: ast.NatLiteral{Value: n}}

	case lexer.TRUE:
		return &ast.LiteralExpr{Base: ast.At(p.curToken.Span), Lit: ast.BoolLiteral{Value: true}}

	case lexer.FALSE:
		return &ast.LiteralExpr{Base: ast.At(p.curToken.Span), Lit: ast.BoolLiteral{Value: false}}

	case lexer.TEXT:
		return &ast.LiteralExpr{Base: ast.At(p.curToken.Span), Lit: ast.TextLiteral{Value: p.curToken.Literal}}

	case lexer.IDENT:
		return &ast.VarExpr{Base: ast.At(p.curToken.Span), Name: ast.Ident(p.curToken.Literal)}

	case lexer.HASH:
		return p.parseVariantExpr()

	case lexer.LPAREN:
		return p.parseParenTupleOrAnnot()

	case lexer.LBRACE:
		return p.parseBlockExpr()

	case lexer.SWITCH:
		return p.parseSwitchExpr()

	case lexer.DO:
		return p.parseDoExpr()

	case lexer.ASSERT:
		return p.parseAssertExpr()

	case lexer.IF:
		return p.parseIfExpr()

	default:
		p.errorf(p.curToken.Span.Start, "unexpected token "+p.curToken.Type.String())
		return &ast.UnsupportedExpr{Base: ast.At(p.curToken.Span), Form: p.curToken.Literal}
	}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.curToken.Span
	p.nextToken()
	cond := p.parseExpr()
	if !p.expectPeek(lexer.THEN) {
		return &ast.IfExpr{Base: ast.At(start.Expand(cond.Pos())), Cond: cond}
	}
	p.nextToken()
	thenExpr := p.parseExpr()
	end := thenExpr.Pos()

	var elseExpr ast.Expr
	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		p.nextToken()
		elseExpr = p.parseExpr()
		end = elseExpr.Pos()
	}
	return &ast.IfExpr{Base: ast.At(start.Expand(end)), Cond: cond, Then: thenExpr, Else: elseExpr}
}

func (p *Parser) parseSwitchExpr() ast.Expr {
	start := p.curToken.Span
	if !p.expectPeek(lexer.LPAREN) {
		return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed switch"}
	}
	p.nextToken()
	scrutinee := p.parseExpr()
	if !p.expectPeek(lexer.RPAREN) {
		return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed switch"}
	}
	if !p.expectPeek(lexer.LBRACE) {
		return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed switch"}
	}

	var cases []ast.SwitchCase
	for !p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
		p.nextToken() // CASE
		caseStart := p.curToken.Span
		if !p.curTokenIs(lexer.CASE) {
			p.errorf(p.curToken.Span.Start, "expected case, got "+p.curToken.Type.String())
			break
		}
		if !p.expectPeek(lexer.LPAREN) {
			break
		}
		p.nextToken()
		pat := p.parsePat()
		if !p.expectPeek(lexer.RPAREN) {
			break
		}
		p.nextToken()
		body := p.parseExpr()
		cases = append(cases, ast.SwitchCase{Span: caseStart.Expand(body.Pos()), Pat: pat, Body: body})

		if p.peekTokenIs(lexer.SEMI) {
			p.nextToken()
		}
	}
	if !p.expectPeek(lexer.RBRACE) {
		return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed switch"}
	}
	return &ast.SwitchExpr{Base: ast.At(start.Expand(p.curToken.Span)), Scrutinee: scrutinee, Cases: cases}
}

func (p *Parser) parseBlockExpr() ast.Expr {
	start := p.curToken.Span
	p.nextToken()
	decs := p.parseDecList(lexer.RBRACE)
	return &ast.BlockExpr{Base: ast.At(start.Expand(p.curToken.Span)), Decs: decs}
}

func (p *Parser) parseDoExpr() ast.Expr {
	start := p.curToken.Span
	p.nextToken()
	inner := p.parseExpr()
	return &ast.DoExpr{Base: ast.At(start.Expand(inner.Pos())), Expr: inner}
}

func (p *Parser) parseAssertExpr() ast.Expr {
	start := p.curToken.Span
	p.nextToken()
	inner := p.parseExpr()
	return &ast.AssertExpr{Base: ast.At(start.Expand(inner.Pos())), Expr: inner}
}

func (p *Parser) parseVariantExpr() ast.Expr {
	start := p.curToken.Span
	if !p.expectPeek(lexer.IDENT) {
		return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed variant"}
	}
	id := ast.Ident(p.curToken.Literal)
	end := p.curToken.Span

	var payload ast.Expr
	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken()
		p.nextToken()
		payload = p.parseExpr()
		if !p.expectPeek(lexer.RPAREN) {
			return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed variant"}
		}
		end = p.curToken.Span
	}
	return &ast.VariantExpr{Base: ast.At(start.Expand(end)), ID: id, Payload: payload}
}

// parseParenTupleOrAnnot disambiguates the four forms sharing a leading
// '(': empty tuple (), a parenthesized expression (e), a type annotation
// (e : T), and a tuple (e1, e2, ...).
func (p *Parser) parseParenTupleOrAnnot() ast.Expr {
	start := p.curToken.Span
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return &ast.TupleExpr{Base: ast.At(start.Expand(p.curToken.Span))}
	}
	p.nextToken()
	first := p.parseExpr()

	switch {
	case p.peekTokenIs(lexer.COLON):
		p.nextToken()
		p.nextToken()
		typ := p.parseType()
		if !p.expectPeek(lexer.RPAREN) {
			return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed annotation"}
		}
		return &ast.AnnotExpr{Base: ast.At(start.Expand(p.curToken.Span)), Expr: first, Type: typ}

	case p.peekTokenIs(lexer.COMMA):
		elems := []ast.Expr{first}
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			elems = append(elems, p.parseExpr())
		}
		if !p.expectPeek(lexer.RPAREN) {
			return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed tuple"}
		}
		return &ast.TupleExpr{Base: ast.At(start.Expand(p.curToken.Span)), Elems: elems}

	default:
		if !p.expectPeek(lexer.RPAREN) {
			return &ast.UnsupportedExpr{Base: ast.At(start), Form: "malformed parenthesized expression"}
		}
		return &ast.ParenExpr{Base: ast.At(start.Expand(p.curToken.Span)), Expr: first}
	}
}

func (p *Parser) parseType() ast.Type {
	switch p.curToken.Type {
	case lexer.NAT_TYPE:
		return ast.Type{IsPrim: true, Prim: ast.PrimNat}
	case lexer.NAT8_TYPE:
		return ast.Type{IsPrim: true, Prim: ast.PrimNat8}
	case lexer.INT_TYPE:
		return ast.Type{IsPrim: true, Prim: ast.PrimInt}
	case lexer.BOOL_TYPE:
		return ast.Type{IsPrim: true, Prim: ast.PrimBool}
	case lexer.TEXT_TYPE:
		return ast.Type{IsPrim: true, Prim: ast.PrimText}
	case lexer.IDENT:
		return ast.Type{Other: p.curToken.Literal}
	default:
		p.errorf(p.curToken.Span.Start, "expected a type, got "+p.curToken.Type.String())
		return ast.Type{Other: "?"}
	}
}
