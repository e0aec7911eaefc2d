// Package ast defines the Abstract Syntax Tree node types for Yac.
package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/yacis/internal/token"
	"github.com/cwbudde/yacis/internal/types"
)

// Span is the source range a node was parsed from.
type Span struct {
	Begin token.Position
	End   token.Position
}

// Node is the base interface every AST node implements.
type Node interface {
	Pos() Span
	String() string
}

// Expr is any node that produces a value under the checker/evaluator.
type Expr interface {
	Node
	exprNode()
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Program is the root of the AST: an ordered sequence of declarations.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() Span {
	if len(p.Decls) == 0 {
		return Span{}
	}
	return Span{Begin: p.Decls[0].Pos().Begin, End: p.Decls[len(p.Decls)-1].Pos().End}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, d := range p.Decls {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ---- Literals ----

type IntLit struct {
	Span  Span
	Value int32
}

func (n *IntLit) Pos() Span      { return n.Span }
func (n *IntLit) String() string { return fmt.Sprintf("%d", n.Value) }
func (n *IntLit) exprNode()      {}

type BoolLit struct {
	Span  Span
	Value bool
}

func (n *BoolLit) Pos() Span { return n.Span }
func (n *BoolLit) String() string {
	if n.Value {
		return "True"
	}
	return "False"
}
func (n *BoolLit) exprNode() {}

type CharLit struct {
	Span  Span
	Value byte
}

func (n *CharLit) Pos() Span      { return n.Span }
func (n *CharLit) String() string { return fmt.Sprintf("'%c'", n.Value) }
func (n *CharLit) exprNode()      {}

// ---- Names ----

// VarName is a reference to a value-level binding (built-in, lambda
// parameter, or top-level ValueAssign). Checking and lowering both
// consult it by Name.
type VarName struct {
	Span Span
	Name string
}

func (n *VarName) Pos() Span      { return n.Span }
func (n *VarName) String() string { return n.Name }
func (n *VarName) exprNode()      {}

// TypeName is a reference to a type-level binding (Int/Bool/Char or a
// `data` alias).
type TypeName struct {
	Span Span
	Name string
}

func (n *TypeName) Pos() Span      { return n.Span }
func (n *TypeName) String() string { return n.Name }
func (n *TypeName) exprNode()      {}

// TypeNode is a (possibly multi-component) type expression: its children
// are TypeName or nested TypeNode values, read left-to-right as a curried
// function type. A single-child TypeNode never reaches the checker — the
// parser folds it into its lone child (see SPEC_FULL.md §3.6).
type TypeNode struct {
	Span     Span
	Children []Expr
}

func (n *TypeNode) Pos() Span { return n.Span }
func (n *TypeNode) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}
func (n *TypeNode) exprNode() {}

// ---- Expressions ----

// ApplExpr is a left-associative application: Children[0] is the head,
// the rest are arguments applied in order.
type ApplExpr struct {
	Span     Span
	Children []Expr
}

func (n *ApplExpr) Pos() Span { return n.Span }
func (n *ApplExpr) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (n *ApplExpr) exprNode() {}

type CondExpr struct {
	Span             Span
	Cond, Then, Else Expr
}

func (n *CondExpr) Pos() Span { return n.Span }
func (n *CondExpr) String() string {
	return fmt.Sprintf("if %s then %s else %s", n.Cond, n.Then, n.Else)
}
func (n *CondExpr) exprNode() {}

// LambdaParam is one `name : Type` parameter of a LambdaExpr.
type LambdaParam struct {
	Span Span
	Name *VarName
	Type Expr // TypeName or TypeNode
}

func (n *LambdaParam) Pos() Span      { return n.Span }
func (n *LambdaParam) String() string { return fmt.Sprintf("%s : %s", n.Name, n.Type) }
func (n *LambdaParam) exprNode()      {}

// LambdaExpr is `\p1 p2 ... -> body`.
type LambdaExpr struct {
	Span   Span
	Params []*LambdaParam
	Body   Expr
}

func (n *LambdaExpr) Pos() Span { return n.Span }
func (n *LambdaExpr) String() string {
	parts := make([]string, len(n.Params))
	for i, p := range n.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("\\%s -> %s", strings.Join(parts, " "), n.Body)
}
func (n *LambdaExpr) exprNode() {}

// LetExpr is reserved by the grammar (`let decls... in body`) but never
// produced in a way that reaches the evaluator in practice — see
// SPEC_FULL.md §8.3.
type LetExpr struct {
	Span  Span
	Decls []Decl
	Body  Expr
}

func (n *LetExpr) Pos() Span { return n.Span }
func (n *LetExpr) String() string {
	parts := make([]string, len(n.Decls))
	for i, d := range n.Decls {
		parts[i] = d.String()
	}
	return fmt.Sprintf("let %s in %s", strings.Join(parts, "; "), n.Body)
}
func (n *LetExpr) exprNode() {}

// ---- Declarations ----

type TypeAlias struct {
	Span Span
	Name *TypeName
	Type Expr
}

func (n *TypeAlias) Pos() Span      { return n.Span }
func (n *TypeAlias) String() string { return fmt.Sprintf("data %s = %s", n.Name, n.Type) }
func (n *TypeAlias) declNode()      {}

type TypeAssign struct {
	Span Span
	Name *VarName
	Type Expr
}

func (n *TypeAssign) Pos() Span      { return n.Span }
func (n *TypeAssign) String() string { return fmt.Sprintf("%s : %s", n.Name, n.Type) }
func (n *TypeAssign) declNode()      {}

type ValueAssign struct {
	Span  Span
	Name  *VarName
	Value Expr
}

func (n *ValueAssign) Pos() Span      { return n.Span }
func (n *ValueAssign) String() string { return fmt.Sprintf("%s = %s", n.Name, n.Value) }
func (n *ValueAssign) declNode()      {}

// OutputNode is a bare top-level expression whose value is printed. Type
// is filled in by the checker for the emitter to read later.
type OutputNode struct {
	Span Span
	Expr Expr
	Type types.Type
}

func (n *OutputNode) Pos() Span      { return n.Span }
func (n *OutputNode) String() string { return n.Expr.String() }
func (n *OutputNode) declNode()      {}
