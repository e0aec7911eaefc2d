package ast

import "fmt"

// The lowering pass (internal/lowering) rewrites every VarName, IntLit,
// BoolLit, and CharLit leaf into one of the three node kinds below,
// replacing the name lookup (or literal payload) with a direct
// positional reference.

// Val is an inlined literal: an Int, Bool (0/1), or Char (code point),
// indistinguishable once lowered since the checker already fixed each
// node's static type.
type Val struct {
	Span  Span
	Value int32
}

func (n *Val) Pos() Span      { return n.Span }
func (n *Val) String() string { return fmt.Sprintf("<val %d>", n.Value) }
func (n *Val) exprNode()      {}

// Arg is a reference to a lambda parameter, resolved to a De Bruijn-style
// index counting outward from the innermost enclosing lambda (0 = the
// nearest lambda's nearest-bound parameter).
type Arg struct {
	Span  Span
	Index int
}

func (n *Arg) Pos() Span      { return n.Span }
func (n *Arg) String() string { return fmt.Sprintf("<arg %d>", n.Index) }
func (n *Arg) exprNode()      {}

// Global is a reference to a top-level ValueAssign binding, resolved to
// its slot in the evaluator's global table.
type Global struct {
	Span  Span
	Index int
}

func (n *Global) Pos() Span      { return n.Span }
func (n *Global) String() string { return fmt.Sprintf("<global %d>", n.Index) }
func (n *Global) exprNode()      {}
