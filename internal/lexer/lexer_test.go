package lexer_test

import (
	"testing"

	"github.com/cwbudde/yacis/internal/lexer"
	"github.com/cwbudde/yacis/internal/token"
)

func tokenTypes(src string) []token.Type {
	l := lexer.New(src)
	var types []token.Type
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == token.EOF {
			return types
		}
	}
}

func TestKeywordsAndPunctuation(t *testing.T) {
	got := tokenTypes("if then else let in data -> : \\ =")
	want := []token.Type{
		token.IF, token.THEN, token.ELSE, token.LET, token.IN, token.DATA,
		token.ARROW, token.COLON, token.BACKSLASH, token.ASSIGN, token.EOF,
	}
	assertTypes(t, got, want)
}

func TestIdentifierCaseDispatch(t *testing.T) {
	got := tokenTypes("foo Bar")
	want := []token.Type{token.VARNAME, token.TYPENAME, token.EOF}
	assertTypes(t, got, want)
}

func TestIntLiteralWithLeadingMinus(t *testing.T) {
	l := lexer.New("-42")
	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal != "-42" {
		t.Fatalf("got %s, want INT(-42)", tok)
	}
}

func TestLineComment(t *testing.T) {
	got := tokenTypes("1 -- a trailing comment\n2")
	want := []token.Type{token.INT, token.NEWLINE, token.INT, token.EOF}
	assertTypes(t, got, want)
}

func TestCharLiteralEscapes(t *testing.T) {
	cases := map[string]byte{
		`'\n'`: '\n',
		`'\t'`: '\t',
		`'a'`:  'a',
		`'\0'`: 0,
	}
	for src, want := range cases {
		l := lexer.New(src)
		tok := l.NextToken()
		if tok.Type != token.CHARLIT || tok.Literal[0] != want {
			t.Errorf("%q: got %s, want CHARLIT(%d)", src, tok, want)
		}
	}
}

func TestNewlineIsSignificant(t *testing.T) {
	got := tokenTypes("x = 1\ny = 2")
	want := []token.Type{
		token.VARNAME, token.ASSIGN, token.INT, token.NEWLINE,
		token.VARNAME, token.ASSIGN, token.INT, token.EOF,
	}
	assertTypes(t, got, want)
}

func assertTypes(t *testing.T, got, want []token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token[%d] = %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}
