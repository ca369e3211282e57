// Command nico is the compiler's CLI entry point (spec.md §6.1): with no
// arguments it starts the REPL; given a file path it runs a single
// non-interactive compile of that file.
//
// Grounded on the teacher's main.go (flag parsing, readline.Init,
// branching between file-argument and REPL modes), pared down to Nico's
// much smaller flag surface (--emit-ir, --panic-recoverable, one optional
// file-path arg). Terminal-aware prompt coloring is internal/repl's own
// concern (spec.md §6.2), not main's.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
	"github.com/yasushi-saito/readline"

	"github.com/Brian-Magnuson/nico-sub000/internal/backend"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/frontend"
	"github.com/Brian-Magnuson/nico-sub000/internal/repl"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

// Exit codes per spec.md §6.1. exitRuntimePanic is only reachable once a
// real JIT backend (out of scope, see Non-goals) runs panic-recoverable
// code; no path produces it yet.
const (
	exitSuccess         = 0
	exitInternalFailure = 1
	exitRuntimePanic    = 101
)

var (
	emitIR           = flag.Bool("emit-ir", false, "dump the post-verification IR for each compiled unit")
	panicRecoverable = flag.Bool("panic-recoverable", false, "insert long-jump-based panic handlers so the backend can recover")
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	if err := readline.Init(readline.Opts{Name: "nico", ExpandHistory: true}); err != nil {
		log.Error.Printf("readline.Init: %v", err)
	}
	flag.Parse()

	opts := frontend.Options{EmitIR: *emitIR, PanicRecoverable: *panicRecoverable}
	target := backend.NullBackend{}

	if flag.NArg() == 0 {
		repl.New(os.Stdin, os.Stdout, target, opts).Run()
		os.Exit(exitSuccess)
	}

	os.Exit(compileFile(flag.Arg(0), target, opts))
}

func compileFile(path string, target backend.Target, opts frontend.Options) int {
	text, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "reading %s", path)
		fmt.Fprintf(os.Stderr, "nico: %+v\n", err)
		return exitInternalFailure
	}

	file := source.NewCodeFile(path, string(text))
	ctx := frontend.NewContext()
	pipeline := frontend.New(target, opts)

	status := pipeline.Compile(ctx, file, false)
	printer := diag.NewPrinter(os.Stderr)
	printer.PrintAll(ctx.Logger)

	if status != frontend.StatusOK {
		return exitInternalFailure
	}
	return exitSuccess
}
