// Package errors defines the compiler's diagnostic taxonomy. Every stage
// from the lexer onward reports failures as one of ParseError, TypeError,
// or DefineError, each carrying the source position it was raised at and
// rendered on stderr as a single "L:C - Kind: message" line.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/yacis/internal/token"
)

// Kind classifies a diagnostic. These three are the only kinds this
// compiler ever raises.
type Kind int

const (
	ParseError Kind = iota
	TypeError
	DefineError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case TypeError:
		return "TypeError"
	case DefineError:
		return "DefineError"
	default:
		return "Error"
	}
}

// CompilerError is a single diagnostic: a kind, a message, and the source
// position it was raised at.
type CompilerError struct {
	Kind    Kind
	Message string
	Pos     token.Position
}

// New builds a CompilerError.
func New(kind Kind, pos token.Position, message string) *CompilerError {
	return &CompilerError{Kind: kind, Message: message, Pos: pos}
}

// Error implements the error interface, rendering the diagnostic in the
// "L:C - Kind: message" form used on stderr.
func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s - %s: %s", e.Pos, e.Kind, e.Message)
}

// List is a collection of diagnostics accumulated by one compiler pass.
type List []*CompilerError

// Error joins every diagnostic onto its own line.
func (l List) Error() string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// HasErrors reports whether the list is non-empty.
func (l List) HasErrors() bool {
	return len(l) > 0
}
