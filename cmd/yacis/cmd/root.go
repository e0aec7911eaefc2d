// Package cmd implements the yacis command-line driver: a single root
// command that reads a Yac source file, runs it through the pipeline
// (lex -> parse -> check -> lower -> evaluate -> emit), and writes the
// resulting assembly to stdout or a named output file.
package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/yacis/internal/checker"
	"github.com/cwbudde/yacis/internal/emitter"
	"github.com/cwbudde/yacis/internal/eval"
	"github.com/cwbudde/yacis/internal/lexer"
	"github.com/cwbudde/yacis/internal/lowering"
	"github.com/cwbudde/yacis/internal/parser"
	"github.com/spf13/cobra"
)

// Version is set by build flags; see version.go.
var Version = "0.1.0-dev"

var dumpAST bool

var rootCmd = &cobra.Command{
	Use:   "yacis <src> [out]",
	Short: "Compile a Yac source file to MIPS assembly",
	Long: `yacis compiles a Yac program: a sequence of top-level type
aliases, type assignments, value bindings, and output expressions.

  yacis program.yac        writes assembly to stdout
  yacis program.yac out.s  writes assembly to out.s

Diagnostics are written to stderr as "L:C - Kind: message" and the
process exits non-zero on the first one encountered.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompile,
}

func init() {
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before checking")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runCompile(_ *cobra.Command, args []string) error {
	srcPath := args[0]

	src, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	asm, err := compile(string(src))
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if err := os.WriteFile(args[1], []byte(asm), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", args[1], err)
		}
		return nil
	}

	fmt.Print(asm)
	return nil
}

// compile drives the fixed lex -> parse -> check -> lower -> evaluate ->
// emit pipeline over src. It stops and returns the first diagnostic
// encountered, matching the no-recovery failure model of §4.7: parse
// errors, then check errors, then (by construction) no further stage can
// fail with a user-facing diagnostic.
func compile(src string) (string, error) {
	l := lexer.New(src)
	p := parser.New(l)
	prog, errs := p.ParseProgram()
	if len(errs) > 0 {
		return "", errs[0]
	}

	if dumpAST {
		fmt.Fprintln(os.Stderr, "AST:")
		fmt.Fprintln(os.Stderr, prog.String())
	}

	c := checker.New()
	if errs := c.Check(prog); len(errs) > 0 {
		return "", errs[0]
	}

	lowering.New().Lower(prog)

	outputs := eval.New().Run(prog)

	return emitter.Emit(outputs), nil
}
