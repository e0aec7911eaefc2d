package parser_test

import (
	"testing"

	"github.com/cwbudde/yacis/internal/ast"
	"github.com/cwbudde/yacis/internal/lexer"
	"github.com/cwbudde/yacis/internal/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog, errs := p.ParseProgram()
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParsesAllFourTopLevelForms(t *testing.T) {
	prog := parse(t, "data MyInt = Int\nx : Int\nx = 5\nadd x 1")
	if len(prog.Decls) != 4 {
		t.Fatalf("got %d decls, want 4", len(prog.Decls))
	}
	wantKinds := []ast.Decl{
		&ast.TypeAlias{}, &ast.TypeAssign{}, &ast.ValueAssign{}, &ast.OutputNode{},
	}
	for i, w := range wantKinds {
		if got, want := typeName(prog.Decls[i]), typeName(w); got != want {
			t.Errorf("decl[%d] = %s, want %s", i, got, want)
		}
	}
}

func TestApplicationIsLeftAssociative(t *testing.T) {
	prog := parse(t, "f a b c")
	out := prog.Decls[0].(*ast.OutputNode)
	appl, ok := out.Expr.(*ast.ApplExpr)
	if !ok {
		t.Fatalf("expected *ast.ApplExpr, got %T", out.Expr)
	}
	if len(appl.Children) != 4 {
		t.Fatalf("got %d children, want 4 (head + 3 args)", len(appl.Children))
	}
}

func TestTypeExprFoldsSingleAtom(t *testing.T) {
	prog := parse(t, "x : Int\nx = 1")
	ta := prog.Decls[0].(*ast.TypeAssign)
	if _, ok := ta.Type.(*ast.TypeName); !ok {
		t.Fatalf("expected a single-atom type expr to fold to *ast.TypeName, got %T", ta.Type)
	}
}

func TestTypeExprBuildsNodeForArrow(t *testing.T) {
	prog := parse(t, "f : Int -> Bool\nf = \\n : Int -> True")
	ta := prog.Decls[0].(*ast.TypeAssign)
	node, ok := ta.Type.(*ast.TypeNode)
	if !ok {
		t.Fatalf("expected *ast.TypeNode for a multi-component arrow type, got %T", ta.Type)
	}
	if len(node.Children) != 2 {
		t.Fatalf("got %d components, want 2", len(node.Children))
	}
}

func TestLambdaMultipleParams(t *testing.T) {
	prog := parse(t, "\\a : Int b : Int -> add a b")
	lam := prog.Decls[0].(*ast.OutputNode).Expr.(*ast.LambdaExpr)
	if len(lam.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(lam.Params))
	}
}

func TestCondExprNesting(t *testing.T) {
	prog := parse(t, "if True then if False then 1 else 2 else 3")
	cond := prog.Decls[0].(*ast.OutputNode).Expr.(*ast.CondExpr)
	if _, ok := cond.Then.(*ast.CondExpr); !ok {
		t.Fatalf("expected nested CondExpr as then-branch, got %T", cond.Then)
	}
}

func TestParenthesizedGrouping(t *testing.T) {
	prog := parse(t, "add 2 (mul 3 4)")
	appl := prog.Decls[0].(*ast.OutputNode).Expr.(*ast.ApplExpr)
	if _, ok := appl.Children[2].(*ast.ApplExpr); !ok {
		t.Fatalf("expected parenthesized group to parse as a nested ApplExpr, got %T", appl.Children[2])
	}
}

func TestParseErrorOnMalformedInput(t *testing.T) {
	p := parser.New(lexer.New("x ="))
	_, errs := p.ParseProgram()
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for a value assign with no expression")
	}
}

func typeName(n any) string {
	switch n.(type) {
	case *ast.TypeAlias:
		return "TypeAlias"
	case *ast.TypeAssign:
		return "TypeAssign"
	case *ast.ValueAssign:
		return "ValueAssign"
	case *ast.OutputNode:
		return "OutputNode"
	default:
		return "unknown"
	}
}
