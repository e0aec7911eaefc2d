// Package eval is the closure-based tree-walking evaluator: it reduces a
// lowered AST against a growing global table, producing each output
// declaration's final value.
package eval

import (
	"fmt"

	"github.com/cwbudde/yacis/internal/ast"
	"github.com/cwbudde/yacis/internal/checker"
	"github.com/cwbudde/yacis/internal/runtime"
	"github.com/cwbudde/yacis/internal/types"
)

// Output is one printed result: the payload the emitter formats, and the
// static type the checker recorded on the OutputNode it came from.
type Output struct {
	Value int32
	Type  types.Type
}

// Evaluator drives the program against a single global table, seeded with
// the fifteen built-in closures at construction.
type Evaluator struct {
	globals *runtime.GlobalTable
}

// New creates an Evaluator with its global table seeded at indices 0..14,
// in the order internal/checker.BuiltinOrder names — the same order
// internal/lowering assumes when resolving builtin VarNames to Global
// nodes.
func New() *Evaluator {
	e := &Evaluator{globals: runtime.NewGlobalTable()}
	for _, name := range checker.BuiltinOrder() {
		e.globals.Push(builtinClosure(name))
	}
	return e
}

// Run walks prog's declarations in source order, driving ValueAssign
// bindings into the global table and collecting one Output per
// OutputNode.
func (e *Evaluator) Run(prog *ast.Program) []Output {
	var outputs []Output
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.TypeAlias, *ast.TypeAssign:
			// no runtime effect
		case *ast.ValueAssign:
			e.runValueAssign(d)
		case *ast.OutputNode:
			outputs = append(outputs, e.runOutputNode(d))
		default:
			panic("eval: unknown declaration node")
		}
	}
	return outputs
}

// runValueAssign reserves the next global slot (matching the order
// lowering claimed it in — both walk top-level decls source-order, so
// eval's push order reproduces lowering's slot assignment without needing
// to read the index back off the AST), then forces the RHS in the empty
// context and fills the slot. Reserving before evaluating lets a
// recursive reference to this same name, reached lazily through a
// Global node inside an unsaturated closure body, read the slot only
// after it's filled.
func (e *Evaluator) runValueAssign(d *ast.ValueAssign) {
	slot := e.globals.Push(nil)
	v := eval(d.Value, nil, e.globals)
	e.globals.Set(slot, v)
}

func (e *Evaluator) runOutputNode(d *ast.OutputNode) Output {
	v := eval(d.Expr, nil, e.globals)
	val, ok := v.(runtime.Val)
	if !ok {
		panic(fmt.Sprintf("eval: output expression reduced to a non-value %T", v))
	}
	return Output{Value: val.Payload, Type: d.Type}
}

// eval reduces a lowered expression node to a runtime.Value under ctx.
func eval(e ast.Expr, ctx *runtime.Context, globals *runtime.GlobalTable) runtime.Value {
	switch n := e.(type) {
	case *ast.Val:
		return runtime.Val{Payload: n.Value}
	case *ast.Arg:
		return ctx.Index(n.Index)
	case *ast.Global:
		return globals.Get(n.Index)
	case *ast.LambdaExpr:
		return &runtime.Closure{Captured: ctx, ArityRemaining: len(n.Params), Body: n.Body}
	case *ast.ApplExpr:
		return evalAppl(n, ctx, globals)
	case *ast.CondExpr:
		return evalCond(n, ctx, globals)
	case *ast.LetExpr:
		return evalLet(n, ctx, globals)
	default:
		panic(fmt.Sprintf("eval: unexpected lowered node %T", e))
	}
}

func evalAppl(n *ast.ApplExpr, ctx *runtime.Context, globals *runtime.GlobalTable) runtime.Value {
	f := eval(n.Children[0], ctx, globals)
	for _, argExpr := range n.Children[1:] {
		argValue := eval(argExpr, ctx, globals)
		closure, ok := f.(*runtime.Closure)
		if !ok {
			panic("eval: application of a non-function value")
		}
		f = closure.Apply(argValue)
		f = reduce(f, globals)
	}
	return reduce(f, globals)
}

// reduce forces a closure whose arity has reached zero, evaluating its
// body (or native implementation). Anything else is returned unchanged.
func reduce(v runtime.Value, globals *runtime.GlobalTable) runtime.Value {
	closure, ok := v.(*runtime.Closure)
	if !ok || !closure.Saturated() {
		return v
	}
	if closure.Native != nil {
		return closure.Native(closure.Captured)
	}
	return eval(closure.Body, closure.Captured, globals)
}

func evalCond(n *ast.CondExpr, ctx *runtime.Context, globals *runtime.GlobalTable) runtime.Value {
	condValue := eval(n.Cond, ctx, globals)
	cond, ok := condValue.(runtime.Val)
	if !ok {
		panic("eval: condition did not reduce to a value")
	}
	if cond.Payload != 0 {
		return eval(n.Then, ctx, globals)
	}
	return eval(n.Else, ctx, globals)
}

// evalLet evaluates a reserved let-expression: each ValueAssign decl is
// forced in the empty context and pushed into the slot lowering already
// reserved for it, then the body is evaluated. Never exercised by the
// language's end-to-end scenarios (see SPEC_FULL.md §8.3); kept so the
// grammar production it backs doesn't dangle.
func evalLet(n *ast.LetExpr, ctx *runtime.Context, globals *runtime.GlobalTable) runtime.Value {
	for _, decl := range n.Decls {
		va, ok := decl.(*ast.ValueAssign)
		if !ok {
			continue
		}
		g, ok := declGlobalSlot(va)
		if !ok {
			continue
		}
		globals.Set(g, eval(va.Value, ctx, globals))
	}
	return eval(n.Body, ctx, globals)
}

// declGlobalSlot recovers the global slot lowering assigned to a
// ValueAssign. Lowering always replaces a name bound this way with a
// Global node the first time it's referenced from within its own scope;
// when a binding is never referenced, no Global node naming its slot
// exists anywhere in the tree, so the slot (though reserved) has no
// recoverable index from the AST alone — such a binding has no
// observable effect and is safely skipped.
func declGlobalSlot(va *ast.ValueAssign) (int, bool) {
	g, ok := va.Value.(*ast.Global)
	if ok {
		return g.Index, true
	}
	return 0, false
}

// boolPayload encodes a Go bool as the 0/1 i32 the rest of the runtime
// uses for Bool values.
func boolPayload(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// builtinClosure constructs the native closure for one of the fifteen
// built-in operators, per spec.md §4.6: arity 1 for negate/not, 2 for
// everything else, each reading its arguments from the closure's
// captured context by position (index 0 is the last-bound argument, so
// for a binary op that's the second argument; index 1 is the first).
func builtinClosure(name string) *runtime.Closure {
	if name == "negate" || name == "not" {
		return &runtime.Closure{ArityRemaining: 1, Native: unaryBuiltin(name)}
	}
	return &runtime.Closure{ArityRemaining: 2, Native: binaryBuiltin(name)}
}

func unaryBuiltin(name string) func(*runtime.Context) runtime.Value {
	return func(ctx *runtime.Context) runtime.Value {
		x := ctx.Index(0).(runtime.Val).Payload
		switch name {
		case "negate":
			return runtime.Val{Payload: -x}
		case "not":
			return runtime.Val{Payload: boolPayload(x == 0)}
		default:
			panic("eval: unknown unary builtin " + name)
		}
	}
}

func binaryBuiltin(name string) func(*runtime.Context) runtime.Value {
	return func(ctx *runtime.Context) runtime.Value {
		// The second-applied argument is bound last, so it sits at
		// context index 0; the first-applied argument sits at index 1.
		b := ctx.Index(0).(runtime.Val).Payload
		a := ctx.Index(1).(runtime.Val).Payload
		switch name {
		case "add":
			return runtime.Val{Payload: a + b}
		case "sub":
			return runtime.Val{Payload: a - b}
		case "mul":
			return runtime.Val{Payload: a * b}
		case "div":
			return runtime.Val{Payload: a / b}
		case "mod":
			return runtime.Val{Payload: a % b}
		case "eq":
			return runtime.Val{Payload: boolPayload(a == b)}
		case "neq":
			return runtime.Val{Payload: boolPayload(a != b)}
		case "lt":
			return runtime.Val{Payload: boolPayload(a < b)}
		case "gt":
			return runtime.Val{Payload: boolPayload(a > b)}
		case "leq":
			return runtime.Val{Payload: boolPayload(a <= b)}
		case "geq":
			return runtime.Val{Payload: boolPayload(a >= b)}
		case "and":
			return runtime.Val{Payload: boolPayload(a != 0 && b != 0)}
		case "or":
			return runtime.Val{Payload: boolPayload(a != 0 || b != 0)}
		default:
			panic("eval: unknown binary builtin " + name)
		}
	}
}
