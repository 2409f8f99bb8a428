package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `let x = 1 +% 2;
	var y := x;
	y := y - 1;
	"hi"`

	tests := []struct {
		expectedLiteral string
		expectedType    TokenType
	}{
		{"let", LET},
		{"x", IDENT},
		{"=", EQUALS},
		{"1", NAT},
		{"+%", WADD},
		{"2", NAT},
		{";", SEMI},
		{"var", VAR},
		{"y", IDENT},
		{":=", ASSIGNOP},
		{"x", IDENT},
		{";", SEMI},
		{"y", IDENT},
		{":=", ASSIGNOP},
		{"y", IDENT},
		{"-", MINUS},
		{"1", NAT},
		{";", SEMI},
		{"hi", TEXT},
		{"", EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywordsAndTypes(t *testing.T) {
	input := `true false if then else switch case do assert Nat Nat8 Int Bool Text`

	tests := []struct {
		expectedLiteral string
		expectedType    TokenType
	}{
		{"true", TRUE},
		{"false", FALSE},
		{"if", IF},
		{"then", THEN},
		{"else", ELSE},
		{"switch", SWITCH},
		{"case", CASE},
		{"do", DO},
		{"assert", ASSERT},
		{"Nat", NAT_TYPE},
		{"Nat8", NAT8_TYPE},
		{"Int", INT_TYPE},
		{"Bool", BOOL_TYPE},
		{"Text", TEXT_TYPE},
		{"", EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - got=%s(%q), want=%s(%q)", i, tok.Type, tok.Literal, tt.expectedType, tt.expectedLiteral)
		}
	}
}

func TestVariantAndProjection(t *testing.T) {
	input := `#foo(2).1 == 2`

	tests := []struct {
		expectedLiteral string
		expectedType    TokenType
	}{
		{"#", HASH},
		{"foo", IDENT},
		{"(", LPAREN},
		{"2", NAT},
		{")", RPAREN},
		{".", DOT},
		{"1", NAT},
		{"==", EQ},
		{"2", NAT},
		{"", EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - got=%s(%q), want=%s(%q)", i, tok.Type, tok.Literal, tt.expectedType, tt.expectedLiteral)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	l := New("ab\ncd")
	first := l.NextToken()
	if first.Span.Start.Line != 1 || first.Span.Start.Column != 1 {
		t.Fatalf("expected first token at 1:1, got %s", first.Span.Start)
	}
	second := l.NextToken()
	if second.Span.Start.Line != 2 || second.Span.Start.Column != 1 {
		t.Fatalf("expected second token at 2:1, got %s", second.Span.Start)
	}
}

func TestIllegalCharacterIsRecorded(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected one lexer error, got %d", len(l.Errors()))
	}
}
