// Package parser implements a hand-rolled recursive-descent parser over
// the Yac token stream, producing an internal/ast tree.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/yacis/internal/ast"
	"github.com/cwbudde/yacis/internal/errors"
	"github.com/cwbudde/yacis/internal/lexer"
	"github.com/cwbudde/yacis/internal/token"
)

// Parser consumes a token stream and builds an AST, collecting syntax
// errors rather than panicking mid-parse.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors errors.List
}

// New creates a Parser over l, priming the two-token lookahead window.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) addError(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, errors.New(errors.ParseError, pos, fmt.Sprintf(format, args...)))
}

// ParseProgram drives declaration-level parsing until EOF, returning the
// parsed program together with every error collected along the way. The
// driver (cmd/yacis) stops at the first one; the parser itself keeps
// going so a single invocation can in principle surface more than one.
func (p *Parser) ParseProgram() (*ast.Program, []error) {
	prog := &ast.Program{}

	p.skipNewlines()
	for !p.curTokenIs(token.EOF) {
		decl := p.parseDecl()
		if decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
		if !p.curTokenIs(token.EOF) && !p.curTokenIs(token.NEWLINE) {
			p.addError(p.curToken.Pos, "expected end of declaration, got %s", p.curToken.Type)
			p.nextToken()
		}
		p.skipNewlines()
	}

	for _, le := range p.l.Errors() {
		p.addError(le.Pos, "%s", le.Message)
	}

	if len(p.errors) == 0 {
		return prog, nil
	}
	out := make([]error, len(p.errors))
	for i, e := range p.errors {
		out[i] = e
	}
	return prog, out
}

func (p *Parser) skipNewlines() {
	for p.curTokenIs(token.NEWLINE) {
		p.nextToken()
	}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expect advances past the current token if it matches t, else records a
// ParseError and leaves the cursor where it is.
func (p *Parser) expect(t token.Type) bool {
	if p.curTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError(p.curToken.Pos, "expected %s, got %s", t, p.curToken.Type)
	return false
}

// ---- Declarations ----

func (p *Parser) parseDecl() ast.Decl {
	switch p.curToken.Type {
	case token.DATA:
		return p.parseTypeAlias()
	case token.VARNAME:
		if p.peekTokenIs(token.COLON) {
			return p.parseTypeAssign()
		}
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseValueAssign()
		}
		return p.parseOutputDecl()
	default:
		return p.parseOutputDecl()
	}
}

func (p *Parser) parseTypeAlias() ast.Decl {
	begin := p.curToken.Pos
	p.nextToken() // consume "data"

	if !p.curTokenIs(token.TYPENAME) {
		p.addError(p.curToken.Pos, "expected type name after data, got %s", p.curToken.Type)
		return nil
	}
	name := &ast.TypeName{Span: ast.Span{Begin: p.curToken.Pos, End: p.curToken.Pos}, Name: p.curToken.Literal}
	p.nextToken()

	if !p.expect(token.ASSIGN) {
		return nil
	}

	typeExpr := p.parseTypeExpr()
	if typeExpr == nil {
		return nil
	}

	return &ast.TypeAlias{Span: ast.Span{Begin: begin, End: typeExpr.Pos().End}, Name: name, Type: typeExpr}
}

func (p *Parser) parseTypeAssign() ast.Decl {
	begin := p.curToken.Pos
	name := &ast.VarName{Span: ast.Span{Begin: begin, End: begin}, Name: p.curToken.Literal}
	p.nextToken()

	if !p.expect(token.COLON) {
		return nil
	}

	typeExpr := p.parseTypeExpr()
	if typeExpr == nil {
		return nil
	}

	return &ast.TypeAssign{Span: ast.Span{Begin: begin, End: typeExpr.Pos().End}, Name: name, Type: typeExpr}
}

func (p *Parser) parseValueAssign() ast.Decl {
	begin := p.curToken.Pos
	name := &ast.VarName{Span: ast.Span{Begin: begin, End: begin}, Name: p.curToken.Literal}
	p.nextToken()

	if !p.expect(token.ASSIGN) {
		return nil
	}

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return &ast.ValueAssign{Span: ast.Span{Begin: begin, End: value.Pos().End}, Name: name, Value: value}
}

func (p *Parser) parseOutputDecl() ast.Decl {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	return &ast.OutputNode{Span: expr.Pos(), Expr: expr}
}

// ---- Type expressions ----

// parseTypeExpr parses `TypeAtom {"->" TypeAtom}`. A single atom is
// returned unwrapped rather than as a one-child TypeNode, per §3.6's
// fold rule.
func (p *Parser) parseTypeExpr() ast.Expr {
	begin := p.curToken.Pos
	first := p.parseTypeAtom()
	if first == nil {
		return nil
	}

	children := []ast.Expr{first}
	for p.curTokenIs(token.ARROW) {
		p.nextToken()
		next := p.parseTypeAtom()
		if next == nil {
			return nil
		}
		children = append(children, next)
	}

	if len(children) == 1 {
		return children[0]
	}
	return &ast.TypeNode{Span: ast.Span{Begin: begin, End: children[len(children)-1].Pos().End}, Children: children}
}

func (p *Parser) parseTypeAtom() ast.Expr {
	switch p.curToken.Type {
	case token.TYPENAME:
		n := &ast.TypeName{Span: ast.Span{Begin: p.curToken.Pos, End: p.curToken.Pos}, Name: p.curToken.Literal}
		p.nextToken()
		return n
	case token.LPAREN:
		p.nextToken()
		inner := p.parseTypeExpr()
		if inner == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return inner
	default:
		p.addError(p.curToken.Pos, "expected type name or (, got %s", p.curToken.Type)
		return nil
	}
}

// ---- Expressions ----

func (p *Parser) parseExpr() ast.Expr {
	switch p.curToken.Type {
	case token.IF:
		return p.parseCondExpr()
	case token.BACKSLASH:
		return p.parseLambdaExpr()
	case token.LET:
		return p.parseLetExpr()
	default:
		return p.parseApplExpr()
	}
}

func (p *Parser) parseCondExpr() ast.Expr {
	begin := p.curToken.Pos
	p.nextToken() // consume "if"

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	if !p.expect(token.THEN) {
		return nil
	}
	then := p.parseExpr()
	if then == nil {
		return nil
	}
	if !p.expect(token.ELSE) {
		return nil
	}
	els := p.parseExpr()
	if els == nil {
		return nil
	}

	return &ast.CondExpr{Span: ast.Span{Begin: begin, End: els.Pos().End}, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseLambdaExpr() ast.Expr {
	begin := p.curToken.Pos
	p.nextToken() // consume backslash

	var params []*ast.LambdaParam
	for p.curTokenIs(token.VARNAME) {
		param := p.parseLambdaParam()
		if param == nil {
			return nil
		}
		params = append(params, param)
	}
	if len(params) == 0 {
		p.addError(p.curToken.Pos, "expected at least one lambda parameter")
		return nil
	}

	if !p.expect(token.ARROW) {
		return nil
	}

	body := p.parseExpr()
	if body == nil {
		return nil
	}

	return &ast.LambdaExpr{Span: ast.Span{Begin: begin, End: body.Pos().End}, Params: params, Body: body}
}

func (p *Parser) parseLambdaParam() *ast.LambdaParam {
	begin := p.curToken.Pos
	name := &ast.VarName{Span: ast.Span{Begin: begin, End: begin}, Name: p.curToken.Literal}
	p.nextToken()

	if !p.expect(token.COLON) {
		return nil
	}

	typeAtom := p.parseTypeAtom()
	if typeAtom == nil {
		return nil
	}

	return &ast.LambdaParam{Span: ast.Span{Begin: begin, End: typeAtom.Pos().End}, Name: name, Type: typeAtom}
}

func (p *Parser) parseLetExpr() ast.Expr {
	begin := p.curToken.Pos
	p.nextToken() // consume "let"

	var decls []ast.Decl
	for !p.curTokenIs(token.IN) {
		if p.curTokenIs(token.EOF) {
			p.addError(p.curToken.Pos, "unexpected EOF inside let expression")
			return nil
		}
		if p.curTokenIs(token.NEWLINE) {
			p.nextToken()
			continue
		}
		decl := p.parseLetDecl()
		if decl == nil {
			return nil
		}
		decls = append(decls, decl)
	}
	p.nextToken() // consume "in"

	body := p.parseExpr()
	if body == nil {
		return nil
	}

	return &ast.LetExpr{Span: ast.Span{Begin: begin, End: body.Pos().End}, Decls: decls, Body: body}
}

func (p *Parser) parseLetDecl() ast.Decl {
	switch p.curToken.Type {
	case token.DATA:
		return p.parseTypeAlias()
	case token.VARNAME:
		if p.peekTokenIs(token.COLON) {
			return p.parseTypeAssign()
		}
		return p.parseValueAssign()
	default:
		p.addError(p.curToken.Pos, "expected a declaration inside let, got %s", p.curToken.Type)
		return nil
	}
}

// parseApplExpr parses `Atom {Atom}`, left-associative juxtaposition.
func (p *Parser) parseApplExpr() ast.Expr {
	begin := p.curToken.Pos
	head := p.parseAtom()
	if head == nil {
		return nil
	}

	children := []ast.Expr{head}
	for p.startsAtom() {
		arg := p.parseAtom()
		if arg == nil {
			return nil
		}
		children = append(children, arg)
	}

	if len(children) == 1 {
		return children[0]
	}
	return &ast.ApplExpr{Span: ast.Span{Begin: begin, End: children[len(children)-1].Pos().End}, Children: children}
}

func (p *Parser) startsAtom() bool {
	switch p.curToken.Type {
	case token.INT, token.CHARLIT, token.TRUE, token.FALSE, token.VARNAME, token.LPAREN, token.LET:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtom() ast.Expr {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntLit()
	case token.TRUE, token.FALSE:
		return p.parseBoolLit()
	case token.CHARLIT:
		return p.parseCharLit()
	case token.VARNAME:
		n := &ast.VarName{Span: ast.Span{Begin: p.curToken.Pos, End: p.curToken.Pos}, Name: p.curToken.Literal}
		p.nextToken()
		return n
	case token.LPAREN:
		p.nextToken()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return inner
	case token.LET:
		return p.parseLetExpr()
	default:
		p.addError(p.curToken.Pos, "expected an expression, got %s", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseIntLit() ast.Expr {
	pos := p.curToken.Pos
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
	if err != nil {
		p.addError(pos, "invalid integer literal %q", p.curToken.Literal)
		p.nextToken()
		return nil
	}
	p.nextToken()
	return &ast.IntLit{Span: ast.Span{Begin: pos, End: pos}, Value: int32(v)}
}

func (p *Parser) parseBoolLit() ast.Expr {
	pos := p.curToken.Pos
	value := p.curToken.Type == token.TRUE
	p.nextToken()
	return &ast.BoolLit{Span: ast.Span{Begin: pos, End: pos}, Value: value}
}

func (p *Parser) parseCharLit() ast.Expr {
	pos := p.curToken.Pos
	value := p.curToken.Literal[0]
	p.nextToken()
	return &ast.CharLit{Span: ast.Span{Begin: pos, End: pos}, Value: value}
}
