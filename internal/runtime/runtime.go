// Package runtime defines the values the evaluator produces: concrete
// payloads, closures, and the purely functional context list a closure's
// body is evaluated against.
package runtime

import "github.com/cwbudde/yacis/internal/ast"

// Value is any runtime value the evaluator can produce. It is sealed to
// this package's two implementations — Val and Closure — matching
// spec.md §3.4's "the evaluator reduces any value to a Val or a Closure".
type Value interface {
	valueNode()
}

// Val is a concrete payload: an int, a 0/1-encoded bool, or a char code
// point, all stored as the same i32.
type Val struct {
	Payload int32
}

func (Val) valueNode() {}

// Closure is a function value with some arguments already bound. Exactly
// one of Body and Native is set: Body is a lowered user-defined lambda
// body; Native is a built-in operator implemented directly in Go. Either
// way, the closure reduces by evaluating against Captured once
// ArityRemaining reaches zero.
type Closure struct {
	Captured       *Context
	ArityRemaining int
	Body           ast.Expr
	Native         func(*Context) Value
}

func (*Closure) valueNode() {}

// Apply consumes one argument: it returns a new Closure with the argument
// bound, one less arity remaining, and the same body. The original
// Closure is unmodified — Context is structurally shared, never mutated.
func (c *Closure) Apply(arg Value) *Closure {
	return &Closure{
		Captured:       c.Captured.Cons(arg),
		ArityRemaining: c.ArityRemaining - 1,
		Body:           c.Body,
		Native:         c.Native,
	}
}

// Saturated reports whether the closure has consumed all its parameters
// and is ready for its body to be reduced.
func (c *Closure) Saturated() bool {
	return c.ArityRemaining == 0
}

// Context is an immutable, singly-linked list of already-bound argument
// values, addressed positionally from the head (the most recently bound
// argument). Nil contexts are represented by the nil *Context, and
// structurally shared across closures: Cons never mutates its receiver.
type Context struct {
	head Value
	tail *Context
}

// Cons returns a new context with v bound at index 0; the receiver
// (including everything it points to) is left untouched.
func (c *Context) Cons(v Value) *Context {
	return &Context{head: v, tail: c}
}

// Index returns the i-th element counting from the head (0 = most
// recently bound). Indexing past the end of the list returns Nil, a
// sentinel that should never actually surface in a program that passed
// lowering — a genuine out-of-range Arg index is an internal bug.
func (c *Context) Index(i int) Value {
	for ; i > 0 && c != nil; i-- {
		c = c.tail
	}
	if c == nil {
		return Nil
	}
	return c.head
}

// Nil is the sentinel Context.Index returns past the end of the list.
var Nil Value = Val{Payload: 0}

// GlobalTable is the evaluator's append-only vector of top-level values.
// Its slots are referenced by index (never by pointer), so growing the
// table never invalidates a reference a closure captured earlier.
type GlobalTable struct {
	slots []Value
}

// NewGlobalTable creates an empty table.
func NewGlobalTable() *GlobalTable {
	return &GlobalTable{}
}

// Push appends v, returning the index it was stored at.
func (t *GlobalTable) Push(v Value) int {
	t.slots = append(t.slots, v)
	return len(t.slots) - 1
}

// Set overwrites an already-reserved slot. Used when a slot's index is
// claimed before its value is known (the recursion mechanism: lowering
// assigns the slot before recursing into the expression that may
// reference it).
func (t *GlobalTable) Set(i int, v Value) {
	for i >= len(t.slots) {
		t.slots = append(t.slots, nil)
	}
	t.slots[i] = v
}

// Get returns the value at slot i. A nil result means the slot was
// reserved but not yet filled — reading one during evaluation of its own
// initializer, rather than through a lazily-resolved Global reference
// deeper in a closure body, is an internal bug.
func (t *GlobalTable) Get(i int) Value {
	return t.slots[i]
}

// Len reports how many slots have been reserved.
func (t *GlobalTable) Len() int {
	return len(t.slots)
}
