// Package types implements Yac's structural type lattice: the three
// primitive types, curried function types with currying-aware flattening,
// and the Undefined sentinel.
package types

import (
	"fmt"
	"strings"
)

// Kind tags a Type's shape.
type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindBool
	KindChar
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	case KindChar:
		return "Char"
	case KindFunction:
		return "Function"
	default:
		return "Undefined"
	}
}

// Type is a Yac static type: one of Int, Bool, Char, Function, or the
// Undefined sentinel (the zero value, never seen in a well-typed program).
type Type struct {
	kind       Kind
	components []Type // only meaningful when kind == KindFunction
}

// Undefined is the zero value, produced by default construction. It never
// appears as the type of a node in a program that passed the checker.
var Undefined = Type{kind: KindUndefined}

// Int, Bool, Char are the three primitive types.
var (
	Int  = Type{kind: KindInt}
	Bool = Type{kind: KindBool}
	Char = Type{kind: KindChar}
)

// NewPrimitive builds a primitive type from a Kind. It panics if asked to
// build KindFunction or KindUndefined this way — functions must go
// through NewFunction, and there is no "defined empty" function type.
func NewPrimitive(k Kind) Type {
	switch k {
	case KindInt:
		return Int
	case KindBool:
		return Bool
	case KindChar:
		return Char
	default:
		panic(fmt.Sprintf("types: NewPrimitive called with non-primitive kind %s", k))
	}
}

// NewFunction builds a function type from its ordered components: all but
// the last are curried parameter types, the last is the result. It panics
// if fewer than two components are given — a Function with fewer than two
// components is ill-formed and constructors must reject it (spec §3.1).
func NewFunction(components []Type) Type {
	if len(components) < 2 {
		panic("types: function type needs at least 2 components")
	}
	cp := make([]Type, len(components))
	copy(cp, components)
	return Type{kind: KindFunction, components: cp}
}

// Kind reports the type's shape.
func (t Type) Kind() Kind { return t.kind }

// IsFunction reports whether t is a Function type.
func (t Type) IsFunction() bool { return t.kind == KindFunction }

// Components returns the function type's ordered components. It panics on
// a non-function type.
func (t Type) Components() []Type {
	if t.kind != KindFunction {
		panic("types: Components called on non-function type")
	}
	return t.components
}

// Equals is structural equality: same tag, and for Function, component-wise
// equality. Equality does not flatten its operands first.
func (t Type) Equals(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind != KindFunction {
		return true
	}
	if len(t.components) != len(other.components) {
		return false
	}
	for i := range t.components {
		if !t.components[i].Equals(other.components[i]) {
			return false
		}
	}
	return true
}

// Flatten returns a copy of t with its function tail normalized: as long
// as the last component is itself a Function, it is spliced into the
// outer sequence in place of its single slot. Flatten only ever touches
// the tail — a Function occupying a parameter position (not the last
// element) is left as a nested, higher-order parameter type. Flatten is
// idempotent and is a no-op on non-function types.
func (t Type) Flatten() Type {
	if t.kind != KindFunction {
		return t
	}
	components := make([]Type, len(t.components))
	copy(components, t.components)
	for {
		last := components[len(components)-1]
		if last.kind != KindFunction {
			break
		}
		components = append(components[:len(components)-1], last.components...)
	}
	return Type{kind: KindFunction, components: components}
}

// ErrNotApplicable is returned by Apply when f is not a function, or its
// leading parameter does not structurally match a.
type ErrNotApplicable struct{}

func (ErrNotApplicable) Error() string { return "not applicable" }

// Apply consumes one argument of a (curried) function type, per spec
// §3.1: it fails unless f is a Function and its first component equals a
// (structural equality, no flattening). When only the parameter and result
// remain, the result is that bare result type; otherwise the result is
// the function type of the remaining components.
func Apply(f Type, a Type) (Type, error) {
	if f.kind != KindFunction || !f.components[0].Equals(a) {
		return Type{}, ErrNotApplicable{}
	}
	if len(f.components) == 2 {
		return f.components[1], nil
	}
	return NewFunction(f.components[1:]), nil
}

// String renders the type the way diagnostics and the AST's TypeNode
// formatting do: primitives by name, functions as "p1 -> p2 -> ... -> r".
func (t Type) String() string {
	if t.kind != KindFunction {
		return t.kind.String()
	}
	parts := make([]string, len(t.components))
	for i, c := range t.components {
		if c.kind == KindFunction {
			parts[i] = "(" + c.String() + ")"
		} else {
			parts[i] = c.String()
		}
	}
	return strings.Join(parts, " -> ")
}
