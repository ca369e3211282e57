// Package backend defines the interface boundary between the compiler
// front end and a code generator (spec.md §6.3). The front end only
// creates, transfers, and resets a Module; it never inspects its
// contents. A real LLVM (or other) backend is explicitly out of scope
// (spec.md §1 Non-goals); this package provides just enough surface for
// internal/frontend and internal/repl to compile and be tested without
// one.
package backend

import "github.com/Brian-Magnuson/nico-sub000/internal/diag"

// Module is an opaque handle to whatever a Target produces for one
// compilation unit: an LLVM module, a bytecode chunk, anything. The core
// never type-asserts it; only the Target that created it may.
type Module interface {
	// Name identifies the module for logging, independent of its contents.
	Name() string
}

// Target is implemented by a code generator. The frontend pipeline calls
// these three methods and nothing else (spec.md §6.3 "opaque ModuleContext
// ... resolved symbol-tree pointers").
type Target interface {
	// NewModule creates a fresh Module for a compilation unit named name.
	NewModule(name string) Module

	// Generate lowers a module to whatever form the target produces.
	// Called once per successful Compile. The Target owns all errors
	// raised here; it reports them through logger rather than a Go error
	// so the pipeline's own Status model stays authoritative.
	Generate(mod Module, logger *diag.Logger)

	// Reset discards any state the target accumulated across a REPL
	// session (spec.md §4.6 "Pause(Reset)").
	Reset()
}

// NullBackend is a Target that does nothing. cmd/nico uses it for every
// compile (with or without --emit-ir), and tests use it to exercise only
// the front end.
type NullBackend struct{}

// NullModule is the Module NullBackend hands back.
type NullModule struct{ name string }

// Name implements Module.
func (m NullModule) Name() string { return m.name }

// NewModule implements Target.
func (NullBackend) NewModule(name string) Module { return NullModule{name: name} }

// Generate implements Target. It is a no-op.
func (NullBackend) Generate(Module, *diag.Logger) {}

// Reset implements Target. It is a no-op.
func (NullBackend) Reset() {}
