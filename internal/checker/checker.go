// Package checker implements the type/definition check pass: it walks a
// parsed AST, verifies definition order and well-typedness, and records
// a result type on every output declaration for the emitter to read.
package checker

import (
	"github.com/cwbudde/yacis/internal/ast"
	"github.com/cwbudde/yacis/internal/errors"
	"github.com/cwbudde/yacis/internal/scope"
	"github.com/cwbudde/yacis/internal/types"
)

// Checker threads two chain maps through the AST: one from name to Type,
// one from name to "has this name been assigned a value yet".
type Checker struct {
	typeScope    *scope.ChainMap[types.Type]
	definedScope *scope.ChainMap[bool]
	errs         errors.List
}

// builtinOrder lists the fifteen built-in operators in the exact order
// spec.md §4.3 enumerates them — lowering's global table seeds slots
// 0..14 in this same order, so the two must never drift apart.
var builtinOrder = []string{
	"negate", "not",
	"add", "sub", "mul", "div", "mod",
	"eq", "neq", "lt", "gt", "leq", "geq",
	"and", "or",
}

func builtinType(name string) types.Type {
	switch name {
	case "negate":
		return types.NewFunction([]types.Type{types.Int, types.Int})
	case "not":
		return types.NewFunction([]types.Type{types.Bool, types.Bool})
	case "add", "sub", "mul", "div", "mod":
		return types.NewFunction([]types.Type{types.Int, types.Int, types.Int})
	case "eq", "neq", "lt", "gt", "leq", "geq":
		return types.NewFunction([]types.Type{types.Int, types.Int, types.Bool})
	case "and", "or":
		return types.NewFunction([]types.Type{types.Bool, types.Bool, types.Bool})
	default:
		panic("checker: unknown builtin " + name)
	}
}

// BuiltinOrder exposes the canonical builtin ordering so internal/eval can
// seed the global table at the same indices the checker (and lowering,
// which seeds its global-name chain map identically) assume.
func BuiltinOrder() []string {
	out := make([]string, len(builtinOrder))
	copy(out, builtinOrder)
	return out
}

// New creates a Checker with a fresh top-level scope seeded per §4.3: the
// three primitive type aliases and the fifteen built-ins.
func New() *Checker {
	c := &Checker{
		typeScope:    scope.New[types.Type](),
		definedScope: scope.New[bool](),
	}
	c.typeScope.Set("Int", types.Int)
	c.typeScope.Set("Bool", types.Bool)
	c.typeScope.Set("Char", types.Char)

	for _, name := range builtinOrder {
		c.typeScope.Set(name, builtinType(name))
		c.definedScope.Set(name, true)
	}
	return c
}

// Check walks prog's declarations in source order, returning every
// diagnostic collected. An empty result means the program is well-typed.
func (c *Checker) Check(prog *ast.Program) []error {
	for _, decl := range prog.Decls {
		c.checkDecl(decl)
	}
	if len(c.errs) == 0 {
		return nil
	}
	out := make([]error, len(c.errs))
	for i, e := range c.errs {
		out[i] = e
	}
	return out
}

func (c *Checker) fail(kind errors.Kind, pos ast.Span, message string) types.Type {
	c.errs = append(c.errs, errors.New(kind, pos.Begin, message))
	return types.Undefined
}

func (c *Checker) checkDecl(decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.TypeAlias:
		c.checkTypeAlias(d)
	case *ast.TypeAssign:
		c.checkTypeAssign(d)
	case *ast.ValueAssign:
		c.checkValueAssign(d)
	case *ast.OutputNode:
		c.checkOutputNode(d)
	default:
		panic("checker: unknown declaration node")
	}
}

func (c *Checker) checkTypeAlias(d *ast.TypeAlias) {
	if c.typeScope.LocalContains(d.Name.Name) {
		c.fail(errors.TypeError, d.Span, "Type name has already been defined.")
		return
	}
	t := c.checkTypeExpr(d.Type)
	c.typeScope.Set(d.Name.Name, t)
}

func (c *Checker) checkTypeAssign(d *ast.TypeAssign) {
	if c.typeScope.LocalContains(d.Name.Name) {
		c.fail(errors.TypeError, d.Span, "Variable has already been assigned type.")
		return
	}
	before := len(c.errs)
	t := c.checkTypeExpr(d.Type)
	if len(c.errs) > before {
		return
	}
	c.typeScope.Set(d.Name.Name, t)
}

func (c *Checker) checkValueAssign(d *ast.ValueAssign) {
	if c.definedScope.LocalContains(d.Name.Name) {
		c.fail(errors.DefineError, d.Span, "Variable has already been defined.")
		return
	}
	c.definedScope.Set(d.Name.Name, true)

	exprType := c.checkExpr(d.Value)

	if c.typeScope.LocalContains(d.Name.Name) {
		if !c.typeScope.MustGet(d.Name.Name).Equals(exprType) {
			c.fail(errors.TypeError, d.Span, "Can not match the assigned type.")
			return
		}
	} else {
		c.typeScope.Set(d.Name.Name, exprType)
	}
}

func (c *Checker) checkOutputNode(d *ast.OutputNode) {
	t := c.checkExpr(d.Expr)
	if t.Kind() == types.KindFunction {
		c.fail(errors.TypeError, d.Span, "Output expression can not be function type.")
		return
	}
	d.Type = t
}

// checkTypeExpr evaluates a type-expression node (TypeName or TypeNode)
// into a Type.
func (c *Checker) checkTypeExpr(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.TypeName:
		if t, ok := c.typeScope.Get(n.Name); ok {
			return t
		}
		return c.fail(errors.TypeError, n.Span, "Type name doesn't exist.")
	case *ast.TypeNode:
		components := make([]types.Type, len(n.Children))
		for i, child := range n.Children {
			components[i] = c.checkTypeExpr(child)
		}
		return types.NewFunction(components).Flatten()
	default:
		panic("checker: unexpected type-expression node")
	}
}

// checkExpr evaluates an expression node into its Type, per §4.3.
func (c *Checker) checkExpr(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		return types.Int
	case *ast.BoolLit:
		return types.Bool
	case *ast.CharLit:
		return types.Char
	case *ast.VarName:
		return c.checkVarName(n)
	case *ast.ApplExpr:
		return c.checkApplExpr(n)
	case *ast.CondExpr:
		return c.checkCondExpr(n)
	case *ast.LambdaExpr:
		return c.checkLambdaExpr(n)
	case *ast.LetExpr:
		return c.checkLetExpr(n)
	default:
		panic("checker: unexpected expression node")
	}
}

func (c *Checker) checkVarName(n *ast.VarName) types.Type {
	if !c.definedScope.Contains(n.Name) {
		return c.fail(errors.DefineError, n.Span, "Variable hasn't been defined.")
	}
	if !c.typeScope.Contains(n.Name) {
		return c.fail(errors.DefineError, n.Span, "Variable hasn't been assigned type.")
	}
	return c.typeScope.MustGet(n.Name)
}

func (c *Checker) checkApplExpr(n *ast.ApplExpr) types.Type {
	result := c.checkExpr(n.Children[0])
	for _, arg := range n.Children[1:] {
		argType := c.checkExpr(arg)
		next, err := types.Apply(result, argType)
		if err != nil {
			return c.fail(errors.TypeError, arg.Pos(), "Not applicable")
		}
		result = next
	}
	return result
}

func (c *Checker) checkCondExpr(n *ast.CondExpr) types.Type {
	condType := c.checkExpr(n.Cond)
	if condType.Kind() == types.KindFunction {
		return c.fail(errors.TypeError, n.Cond.Pos(), "Condition can not be function type.")
	}
	thenType := c.checkExpr(n.Then)
	elseType := c.checkExpr(n.Else)
	if !thenType.Equals(elseType) {
		return c.fail(errors.TypeError, n.Span, "The type of then-expression should be the same asthe type of else-expression.")
	}
	return thenType
}

func (c *Checker) checkLambdaExpr(n *ast.LambdaExpr) types.Type {
	outerType, outerDefined := c.typeScope, c.definedScope
	c.typeScope = outerType.NewChild()
	c.definedScope = outerDefined.NewChild()
	defer func() {
		c.typeScope = outerType
		c.definedScope = outerDefined
	}()

	components := make([]types.Type, len(n.Params)+1)
	for i, param := range n.Params {
		pt := c.checkTypeExpr(param.Type)
		c.typeScope.Set(param.Name.Name, pt)
		c.definedScope.Set(param.Name.Name, true)
		components[i] = pt
	}
	components[len(n.Params)] = c.checkExpr(n.Body)

	return types.NewFunction(components)
}

func (c *Checker) checkLetExpr(n *ast.LetExpr) types.Type {
	outerType, outerDefined := c.typeScope, c.definedScope
	c.typeScope = outerType.NewChild()
	c.definedScope = outerDefined.NewChild()
	defer func() {
		c.typeScope = outerType
		c.definedScope = outerDefined
	}()

	for _, decl := range n.Decls {
		c.checkDecl(decl)
	}
	return c.checkExpr(n.Body)
}
