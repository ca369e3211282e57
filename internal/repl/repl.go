// Package repl implements the interactive read-eval-print loop (spec.md
// §4.6, §6.2): buffered multi-line accumulation across Pause(Input)
// statuses, colon-prefixed commands that bypass the frontend entirely,
// and a "caution" mode entered after a DiscardWarn rollback.
//
// Grounded on original_source/include/nico/driver/repl.h (the Repl class:
// continue_mode/use_caution booleans, the colon-command table, print_
// prompt/print_header/print_help/print_license) and the teacher's
// cmd/commands.go Loop/runEval (readline.Readline for line input,
// termutil.InstallSignalHandler/ClearSignal/WithCancel for ^C handling,
// vcontext.Background() as the root context). The "continue_mode" /
// "use_caution" flags are carried over verbatim in meaning, renamed to Go
// idiom (inContinue, caution).
package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/vcontext"
	"github.com/yasushi-saito/readline"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/Brian-Magnuson/nico-sub000/internal/backend"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/frontend"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

// Version and LicenseText back the :version and :license commands.
// License text content is out of scope (spec.md Non-goals); both are
// fixed placeholder constants.
const (
	Version     = "nico 0.1.0"
	LicenseText = "See LICENSE."
)

// Repl drives one interactive session over a Pipeline.
type Repl struct {
	In  io.Reader
	Out io.Writer

	pipeline *frontend.Pipeline
	ctx      *frontend.Context

	// buffer accumulates lines across a Pause(Input) continuation.
	buffer strings.Builder
	// inContinue is true while buffer holds an incomplete submission
	// waiting for more lines (mirrors Repl::continue_mode).
	inContinue bool
	// caution is true after a DiscardWarn rollback, until the user issues
	// :reset or a clean submission succeeds (mirrors Repl::use_caution).
	caution bool

	shouldExit bool
}

// New builds a Repl over a fresh frontend.Context and the given backend
// target.
func New(in io.Reader, out io.Writer, target backend.Target, opts frontend.Options) *Repl {
	return &Repl{
		In:       in,
		Out:      out,
		pipeline: frontend.New(target, opts),
		ctx:      frontend.NewContext(),
	}
}

// Run starts the read-eval-print loop. It returns when the user issues an
// :exit/:quit/:q command or input is exhausted (EOF).
//
// Grounded on Env.Loop in cmd/commands.go: one signal handler installed
// once, a fresh interruptible context built per line read, readline used
// for history/editing.
func (r *Repl) Run() {
	installSignalHandler()
	r.printHeader()
	for !r.shouldExit {
		clearSignal()
		ctx, done := withCancel(vcontext.Background())
		r.step(ctx)
		done()
	}
}

func (r *Repl) step(ctx context.Context) {
	_ = ctx // the interruptible context only matters once a JIT/backend
	// actually runs submitted code; the null backend used here never
	// blocks, so nothing currently observes ctx.Done(). Kept as a
	// parameter so a real backend can be wired in without reshaping Run.
	line, err := readline.Readline(r.prompt())
	if err != nil {
		r.shouldExit = true
		return
	}
	trimmed := strings.TrimSpace(line)
	if !r.inContinue && isCommandLine(trimmed) {
		r.runCommand(trimmed[1:])
		return
	}
	if trimmed == "" && !r.inContinue {
		return
	}

	r.buffer.WriteString(line)
	r.buffer.WriteByte('\n')
	r.submit()
}

// isCommandLine reports whether line is exactly one colon-prefixed
// command with no other content (spec.md §6.2 "Each must be the only
// content of a line").
func isCommandLine(line string) bool {
	if !strings.HasPrefix(line, ":") {
		return false
	}
	name := strings.TrimPrefix(line, ":")
	_, ok := commands[name]
	return ok
}

func (r *Repl) runCommand(name string) {
	if cmd, ok := commands[name]; ok {
		cmd.callback(r)
		readline.AddHistory(":" + name)
	}
}

// submit feeds the accumulated buffer through the pipeline and reacts to
// the resulting Status exactly as spec.md §4.6 lists:
func (r *Repl) submit() {
	text := r.buffer.String()
	file := source.NewCodeFile("<repl>", text)

	status := r.pipeline.Compile(r.ctx, file, true)
	switch status {
	case frontend.StatusOK:
		readline.AddHistory(strings.TrimSpace(text))
		r.buffer.Reset()
		r.inContinue = false
		r.caution = false
	case frontend.StatusPauseInput:
		r.inContinue = true
	case frontend.StatusPauseDiscard:
		diag.NewPrinter(r.Out).PrintAll(r.ctx.Logger)
		r.discard(false)
	case frontend.StatusPauseDiscardWarn:
		diag.NewPrinter(r.Out).PrintAll(r.ctx.Logger)
		r.discard(true)
	case frontend.StatusError:
		diag.NewPrinter(r.Out).PrintAll(r.ctx.Logger)
		r.buffer.Reset()
		r.inContinue = false
	}
}

// discard drops the pending input buffer (spec.md §4.6 "Pause(Discard)" /
// "Pause(DiscardWarn)"). withWarning enters caution mode, which recolors
// the prompt until the next :reset or clean submission.
func (r *Repl) discard(withWarning bool) {
	r.buffer.Reset()
	r.inContinue = false
	if withWarning {
		r.caution = true
		fmt.Fprintln(r.Out, "warning: state may have been partially modified; proceed with caution")
	}
}

func (r *Repl) reset() {
	r.pipeline.Reset(r.ctx)
	r.buffer.Reset()
	r.inContinue = false
	r.caution = false
}

// prompt returns the normal ">> " prompt, the "caution" variant, or the
// continuation ".. " prompt, colored only on an interactive terminal
// (spec.md §6.2 / original Repl::print_prompt).
func (r *Repl) prompt() string {
	const (
		colorGreen  = "\x1b[32m"
		colorYellow = "\x1b[33m"
		colorGray   = "\x1b[90m"
		colorReset  = "\x1b[0m"
	)
	interactive := isTerminalOut(r.Out)
	if r.inContinue {
		if interactive {
			return colorGray + ".. " + colorReset
		}
		return ".. "
	}
	if !interactive {
		return ">> "
	}
	if r.caution {
		return colorYellow + ">> " + colorReset
	}
	return colorGreen + ">> " + colorReset
}

func isTerminalOut(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && terminal.IsTerminal(int(f.Fd()))
}

func (r *Repl) printHeader() {
	fmt.Fprintln(r.Out, Version)
	fmt.Fprintln(r.Out, "Type :help for a list of commands.")
}
