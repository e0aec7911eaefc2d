// Package emitter formats the evaluator's outputs as MIPS assembly
// targeting a simulator supporting syscalls 1 (print integer, $a0) and 11
// (print char, $a0), per spec.md §6.3. It is the shallow format-and-print
// step: no analysis, just a switch on each output's static Type.
package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/yacis/internal/eval"
	"github.com/cwbudde/yacis/internal/types"
)

// Emit renders outputs, in source order, as a complete MIPS assembly
// text beginning with a "main:" label.
func Emit(outputs []eval.Output) string {
	var sb strings.Builder
	sb.WriteString("main:\n")
	for _, o := range outputs {
		emitOne(&sb, o)
	}
	return sb.String()
}

func emitOne(sb *strings.Builder, o eval.Output) {
	switch o.Type.Kind() {
	case types.KindChar:
		emitChar(sb, o.Value)
	case types.KindBool:
		emitBool(sb, o.Value)
	default:
		emitInt(sb, o.Value)
	}
}

// emitInt prints o.Value (read as an unsigned 32-bit quantity) via
// syscall 1. Values above 0xFFFF need their high half loaded separately
// since addiu's immediate is a signed 16-bit field.
func emitInt(sb *strings.Builder, v int32) {
	u := uint32(v)
	if u > 0xFFFF {
		hi := u >> 16
		lo := u & 0xFFFF
		fmt.Fprintf(sb, "\tlui $a0, %d\n", hi)
		fmt.Fprintf(sb, "\taddiu $a0, $a0, %d\n", lo)
	} else {
		fmt.Fprintf(sb, "\taddiu $a0, $zero, %d\n", u)
	}
	sb.WriteString("\taddiu $v0, $zero, 1\n")
	sb.WriteString("\tsyscall\n")
}

// emitChar prints the code point in v via syscall 11.
func emitChar(sb *strings.Builder, v int32) {
	sb.WriteString("\taddiu $v0, $zero, 11\n")
	fmt.Fprintf(sb, "\taddiu $a0, $zero, %d\n", v)
	sb.WriteString("\tsyscall\n")
}

// emitBool prints "True" or "False" as a sequence of char syscalls, one
// per letter.
func emitBool(sb *strings.Builder, v int32) {
	word := "False"
	if v != 0 {
		word = "True"
	}
	for _, r := range word {
		emitChar(sb, int32(r))
	}
}
