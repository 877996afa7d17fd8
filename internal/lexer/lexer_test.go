package lexer

import (
	"testing"

	"github.com/sourcetype/srctc/internal/token"
)

func TestNextTokenCoversEveryOperatorAndKeyword(t *testing.T) {
	input := `let x = 1 + 2 - 3 * 4 / 5 % 6;
const y = x === 1 !== 2 < 3 <= 4 > 5 >= 6;
function f(a, b) { return a && b || !a; }
if (true) { 1; } else { 2; }
while (false) { x[0] = 1; }
for (let i = 0; i < 10; i = i + 1) {}
(x) => x ? 1 : 2;
`
	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER,
		token.MINUS, token.NUMBER, token.STAR, token.NUMBER, token.SLASH, token.NUMBER,
		token.PERCENT, token.NUMBER, token.SEMICOLON,
		token.CONST, token.IDENT, token.ASSIGN, token.IDENT, token.EQ, token.NUMBER,
		token.NOT_EQ, token.NUMBER, token.LT, token.NUMBER, token.LT_EQ, token.NUMBER,
		token.GT, token.NUMBER, token.GT_EQ, token.NUMBER, token.SEMICOLON,
		token.FUNCTION, token.IDENT, token.LPAREN, token.IDENT, token.COMMA, token.IDENT,
		token.RPAREN, token.LBRACE, token.RETURN, token.IDENT, token.AND, token.IDENT,
		token.OR, token.BANG, token.IDENT, token.SEMICOLON, token.RBRACE,
		token.IF, token.LPAREN, token.TRUE, token.RPAREN, token.LBRACE, token.NUMBER,
		token.SEMICOLON, token.RBRACE, token.ELSE, token.LBRACE, token.NUMBER,
		token.SEMICOLON, token.RBRACE,
		token.WHILE, token.LPAREN, token.FALSE, token.RPAREN, token.LBRACE, token.IDENT,
		token.LBRACKET, token.NUMBER, token.RBRACKET, token.ASSIGN, token.NUMBER,
		token.SEMICOLON, token.RBRACE,
		token.FOR, token.LPAREN, token.LET, token.IDENT, token.ASSIGN, token.NUMBER,
		token.SEMICOLON, token.IDENT, token.LT, token.NUMBER, token.SEMICOLON, token.IDENT,
		token.ASSIGN, token.IDENT, token.PLUS, token.NUMBER, token.RPAREN, token.LBRACE,
		token.RBRACE,
		token.LPAREN, token.IDENT, token.RPAREN, token.ARROW, token.IDENT, token.QUESTION,
		token.NUMBER, token.COLON, token.NUMBER, token.SEMICOLON,
		token.EOF,
	}

	l := New(input)
	for i, wantType := range want {
		tok := l.NextToken()
		if tok.Type != wantType {
			t.Fatalf("token %d: want %s, got %s (lexeme %q)", i, wantType, tok.Type, tok.Lexeme)
		}
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	l := New("let x\n  = 1;")
	tok := l.NextToken() // let
	if tok.Line != 1 || tok.Column != 1 {
		t.Errorf("let: want 1:1, got %d:%d", tok.Line, tok.Column)
	}
	l.NextToken() // x
	tok = l.NextToken() // =
	if tok.Line != 2 {
		t.Errorf("= : want line 2, got %d", tok.Line)
	}
}

func TestSkipsLineComments(t *testing.T) {
	l := New("1 // this is a comment\n+ 2")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Lexeme != "1" {
		t.Fatalf("want NUMBER 1, got %s %q", tok.Type, tok.Lexeme)
	}
	tok = l.NextToken()
	if tok.Type != token.PLUS {
		t.Fatalf("want PLUS, got %s", tok.Type)
	}
}

func TestSnapshotRestoreRewindsExactly(t *testing.T) {
	l := New("a b c")
	l.NextToken() // a
	mark := l.Snapshot()
	second := l.NextToken() // b
	l.Restore(mark)
	again := l.NextToken()
	if again.Lexeme != second.Lexeme {
		t.Fatalf("restore did not rewind: got %q, want %q", again.Lexeme, second.Lexeme)
	}
}

func TestIllegalCharacterProducesIllegalToken(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("want ILLEGAL, got %s", tok.Type)
	}
}
