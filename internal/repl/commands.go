package repl

import "fmt"

// command is a REPL-only directive, handled without ever touching the
// frontend pipeline (spec.md §4.6 "lines that exactly match a
// colon-prefixed command ... bypass the frontend entirely").
//
// Grounded on the teacher's command table in cmd/commands.go
// (map[string]command{callback, help}), generalized from GQL's
// space-separated "cmd args" form to Nico's stricter rule: a command must
// be the *only* content of its line (spec.md §6.2), so callback takes no
// arguments.
type command struct {
	callback func(r *Repl)
	help     string
}

var commands = map[string]command{
	"help": {help: "Show this help message.", callback: (*Repl).runHelp},
	"h":    {help: "Alias for :help.", callback: (*Repl).runHelp},
	"?":    {help: "Alias for :help.", callback: (*Repl).runHelp},

	"version": {help: "Show the compiler version.", callback: (*Repl).cmdVersion},
	"license": {help: "Show the license.", callback: (*Repl).cmdLicense},

	"discard": {help: "Discard the current input buffer.", callback: func(r *Repl) { r.discard(false) }},
	"reset":   {help: "Reset all REPL state (variables, functions, imports).", callback: (*Repl).cmdReset},

	"exit": {help: "Exit the REPL.", callback: (*Repl).cmdExit},
	"quit": {help: "Alias for :exit.", callback: (*Repl).cmdExit},
	"q":    {help: "Alias for :exit.", callback: (*Repl).cmdExit},
}

func (r *Repl) runHelp() {
	fmt.Fprintln(r.Out, "Available commands:")
	for _, name := range helpOrder {
		if cmd, ok := commands[name]; ok {
			fmt.Fprintf(r.Out, "  :%-8s %s\n", name, cmd.help)
		}
	}
}

// helpOrder fixes the display order of :help's listing; Go map iteration
// order is unspecified and this is user-visible output (spec.md §9
// "Ordering guarantees" extends to REPL-visible text, not just checker
// diagnostics).
var helpOrder = []string{"help", "version", "license", "discard", "reset", "exit"}

func (r *Repl) cmdVersion() {
	fmt.Fprintln(r.Out, Version)
}

func (r *Repl) cmdLicense() {
	fmt.Fprintln(r.Out, LicenseText)
}

func (r *Repl) cmdReset() {
	r.reset()
	fmt.Fprintln(r.Out, "State reset.")
}

func (r *Repl) cmdExit() {
	r.shouldExit = true
}
