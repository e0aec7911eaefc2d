package emitter_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/yacis/internal/emitter"
	"github.com/cwbudde/yacis/internal/eval"
	"github.com/cwbudde/yacis/internal/types"
)

func TestEmitBeginsWithMainLabel(t *testing.T) {
	asm := emitter.Emit(nil)
	if !strings.HasPrefix(asm, "main:\n") {
		t.Fatalf("expected output to begin with main:, got %q", asm)
	}
}

func TestEmitSmallInt(t *testing.T) {
	asm := emitter.Emit([]eval.Output{{Value: 14, Type: types.Int}})
	want := "main:\n\taddiu $a0, $zero, 14\n\taddiu $v0, $zero, 1\n\tsyscall\n"
	if asm != want {
		t.Fatalf("got:\n%s\nwant:\n%s", asm, want)
	}
}

func TestEmitLargeIntSplitsHiLo(t *testing.T) {
	// 0x10001 = 65537 > 0xFFFF, needs lui + addiu.
	asm := emitter.Emit([]eval.Output{{Value: 0x10001, Type: types.Int}})
	if !strings.Contains(asm, "lui $a0, 1") || !strings.Contains(asm, "addiu $a0, $a0, 1") {
		t.Fatalf("expected hi/lo split for a value above 0xFFFF, got:\n%s", asm)
	}
}

func TestEmitChar(t *testing.T) {
	asm := emitter.Emit([]eval.Output{{Value: 'y', Type: types.Char}})
	want := "main:\n\taddiu $v0, $zero, 11\n\taddiu $a0, $zero, 121\n\tsyscall\n"
	if asm != want {
		t.Fatalf("got:\n%s\nwant:\n%s", asm, want)
	}
}

func TestEmitBoolTrueSpellsFourChars(t *testing.T) {
	asm := emitter.Emit([]eval.Output{{Value: 1, Type: types.Bool}})
	if strings.Count(asm, "syscall") != 4 {
		t.Fatalf("expected 4 char syscalls for True, got:\n%s", asm)
	}
}

func TestEmitBoolFalseSpellsFiveChars(t *testing.T) {
	asm := emitter.Emit([]eval.Output{{Value: 0, Type: types.Bool}})
	if strings.Count(asm, "syscall") != 5 {
		t.Fatalf("expected 5 char syscalls for False, got:\n%s", asm)
	}
}

func TestEmitMultipleOutputsInOrder(t *testing.T) {
	asm := emitter.Emit([]eval.Output{
		{Value: 1, Type: types.Int},
		{Value: 2, Type: types.Int},
	})
	firstIdx := strings.Index(asm, "1")
	secondIdx := strings.Index(asm, "2")
	if firstIdx == -1 || secondIdx == -1 || firstIdx > secondIdx {
		t.Fatalf("expected outputs emitted in source order, got:\n%s", asm)
	}
}
