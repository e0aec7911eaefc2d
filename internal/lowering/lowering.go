// Package lowering rewrites a type-checked AST into positional form: every
// VarName and literal leaf becomes a Val, Arg, or Global node, and
// ValueAssign right-hand sides that turn out to be literals are recorded
// for later constant inlining.
package lowering

import (
	"github.com/cwbudde/yacis/internal/ast"
	"github.com/cwbudde/yacis/internal/checker"
	"github.com/cwbudde/yacis/internal/scope"
)

// Lowering carries the three chain maps and two counters described in
// spec.md §4.4.
type Lowering struct {
	val    *scope.ChainMap[int32] // name -> literal value, for constant inlining
	global *scope.ChainMap[int]   // name -> global slot index
	arg    *scope.ChainMap[int]   // name -> binder depth at introduction

	globalCount int // next free global slot
	argCount    int // current lambda-argument nesting depth
}

// New creates a Lowering with the global chain map seeded at indices
// 0..14 for the built-ins, in the same order the checker assumes.
func New() *Lowering {
	l := &Lowering{
		val:    scope.New[int32](),
		global: scope.New[int](),
		arg:    scope.New[int](),
	}
	for i, name := range checker.BuiltinOrder() {
		l.global.Set(name, i)
	}
	l.globalCount = len(checker.BuiltinOrder())
	return l
}

// GlobalCount returns the next free global slot, i.e. one past the
// highest slot claimed by a ValueAssign.
func (l *Lowering) GlobalCount() int {
	return l.globalCount
}

// Lower rewrites every declaration in prog in place. The number of slots
// claimed so far is available from GlobalCount.
func (l *Lowering) Lower(prog *ast.Program) {
	for _, decl := range prog.Decls {
		l.lowerDecl(decl)
	}
}

func (l *Lowering) lowerDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.TypeAlias, *ast.TypeAssign:
		// no runtime effect, pass through untouched
	case *ast.ValueAssign:
		l.lowerValueAssign(d)
	case *ast.OutputNode:
		d.Expr = l.lowerExpr(d.Expr)
	default:
		panic("lowering: unknown declaration node")
	}
}

func (l *Lowering) lowerValueAssign(d *ast.ValueAssign) {
	slot := l.globalCount
	l.globalCount++
	l.global.Set(d.Name.Name, slot) // bound before recursing: enables recursion

	d.Value = l.lowerExpr(d.Value)

	if v, ok := d.Value.(*ast.Val); ok {
		l.val.Set(d.Name.Name, v.Value)
	}
}

// lowerExpr rewrites e and returns its replacement; callers must store the
// result back into whatever field held e.
func (l *Lowering) lowerExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.IntLit:
		return &ast.Val{Span: n.Span, Value: n.Value}
	case *ast.BoolLit:
		v := int32(0)
		if n.Value {
			v = 1
		}
		return &ast.Val{Span: n.Span, Value: v}
	case *ast.CharLit:
		return &ast.Val{Span: n.Span, Value: int32(n.Value)}
	case *ast.VarName:
		return l.lowerVarName(n)
	case *ast.ApplExpr:
		for i, child := range n.Children {
			n.Children[i] = l.lowerExpr(child)
		}
		return n
	case *ast.CondExpr:
		n.Cond = l.lowerExpr(n.Cond)
		n.Then = l.lowerExpr(n.Then)
		n.Else = l.lowerExpr(n.Else)
		return n
	case *ast.LambdaExpr:
		return l.lowerLambdaExpr(n)
	case *ast.LetExpr:
		return l.lowerLetExpr(n)
	case *ast.Val, *ast.Arg, *ast.Global:
		return n // already lowered (shouldn't normally happen)
	default:
		panic("lowering: unexpected expression node")
	}
}

func (l *Lowering) lowerVarName(n *ast.VarName) ast.Expr {
	if depth, ok := l.arg.Get(n.Name); ok {
		return &ast.Arg{Span: n.Span, Index: l.argCount - 1 - depth}
	}
	if v, ok := l.val.Get(n.Name); ok {
		return &ast.Val{Span: n.Span, Value: v}
	}
	return &ast.Global{Span: n.Span, Index: l.global.MustGet(n.Name)}
}

func (l *Lowering) lowerLambdaExpr(n *ast.LambdaExpr) ast.Expr {
	outerArg := l.arg
	l.arg = outerArg.NewChild()

	for _, param := range n.Params {
		l.arg.Set(param.Name.Name, l.argCount)
		l.argCount++
	}
	n.Body = l.lowerExpr(n.Body)

	l.arg = outerArg
	l.argCount -= len(n.Params)

	return n
}

func (l *Lowering) lowerLetExpr(n *ast.LetExpr) ast.Expr {
	outerVal, outerGlobal, outerArg := l.val, l.global, l.arg
	l.val = outerVal.NewChild()
	l.global = outerGlobal.NewChild()
	l.arg = outerArg.NewChild()

	for _, decl := range n.Decls {
		l.lowerDecl(decl)
	}
	n.Body = l.lowerExpr(n.Body)

	l.val, l.global, l.arg = outerVal, outerGlobal, outerArg

	return n
}
