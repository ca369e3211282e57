// Package frontend wires the lexer, parser, and checker into the single
// shared pipeline described in spec.md §2/§3.5: CodeFile -> Lexer ->
// Parser -> Checker -> (typed AST + SymbolTree), with a REPL-aware
// Status/watermark model for resumable, rollback-capable sessions.
//
// Grounded on original_source/src/frontend/context.h (the Context struct:
// status, scanned_tokens, stmts, stmts_checked, symbol_tree, ir_module)
// and src/frontend/frontend.cpp (Frontend::compile's short-circuit
// sequencing of Lexer::scan -> Parser::parse -> GlobalChecker::check ->
// LocalChecker::check -> CodeGenerator::generate_exe_ir). The five C++
// stages collapse here into Pipeline.Compile calling four Go stages in
// turn (lex, parse, check, generate), stopping at the first one that sets
// Status to Error.
package frontend

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/backend"
	"github.com/Brian-Magnuson/nico-sub000/internal/check"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/lexer"
	"github.com/Brian-Magnuson/nico-sub000/internal/parser"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
	"github.com/Brian-Magnuson/nico-sub000/internal/symtab"
	"github.com/Brian-Magnuson/nico-sub000/internal/token"
)

// Status is the outcome of one Compile call (spec.md §3.5).
type Status int

const (
	// StatusOK means the submission compiled cleanly and, in REPL mode,
	// the "processed"/"checked" watermarks should advance.
	StatusOK Status = iota
	// StatusPauseInput means the lexer hit an incomplete construct (an
	// unclosed grouping, comment, or trailing colon/indent) or the parser
	// ran out of tokens mid-statement (e.g. a dangling binary operator),
	// and the driver should request another line of input and retry.
	StatusPauseInput
	// StatusPauseDiscard means parsing failed in REPL mode before any
	// statement of the submission was produced; drop the buffer.
	StatusPauseDiscard
	// StatusPauseDiscardWarn means checking failed partway through
	// mutating the symbol tree; the driver should roll back and warn
	// that shared state may have been touched.
	StatusPauseDiscardWarn
	// StatusError means compilation failed with reported diagnostics;
	// the driver should print them and, outside the REPL, exit non-zero.
	StatusError
)

// Context is the single mutable hub threaded through every pipeline
// stage (spec.md §3.5 "Frontend Context"). Each stage reads the fields
// earlier stages wrote and appends its own; no other component aliases
// its interior while a Compile is in flight (spec.md §5 "Shared
// resources").
type Context struct {
	Status Status

	ScannedTokens []token.Token
	Stmts         []ast.Statement

	// StmtsProcessed is the watermark of statements committed to a
	// generated module; StmtsChecked is the watermark of statements that
	// passed type checking. In batch (non-REPL) mode both always equal
	// len(Stmts) by the time Compile returns without an error.
	StmtsProcessed int
	StmtsChecked   int

	SymbolTree *symtab.Tree
	Module     backend.Module
	MainFnName string

	Logger *diag.Logger
}

// NewContext builds a fresh Context with an empty symbol tree and a new
// diagnostic logger, mirroring Context::reset() in the original compiler.
func NewContext() *Context {
	return &Context{SymbolTree: symtab.NewTree(), Logger: diag.NewLogger()}
}

// Reset restores ctx to its initial state, discarding all statements,
// tokens, and symbol-tree contents (spec.md §5 "A full-reset operation
// rebuilds the tree from scratch").
func (ctx *Context) Reset() {
	ctx.Status = StatusOK
	ctx.ScannedTokens = nil
	ctx.Stmts = nil
	ctx.StmtsProcessed = 0
	ctx.StmtsChecked = 0
	ctx.SymbolTree = symtab.NewTree()
	ctx.Module = nil
	ctx.Logger = diag.NewLogger()
}

// rollback discards everything compiled since the last committed
// watermark (spec.md §3.5 "Rollback rule"): stmts/tokens are truncated
// back to what was already processed, and the caller decides (via the
// returned Status) whether the symbol tree itself needs a full Reset
// because of DiscardWarn-style partial mutation.
func (ctx *Context) rollback() {
	ctx.Stmts = ctx.Stmts[:ctx.StmtsProcessed]
	ctx.ScannedTokens = nil
}

// Pipeline drives one Context through lex -> parse -> check -> generate,
// against a pluggable backend.Target (spec.md §6.3). Options controls
// REPL-specific behavior and backend flags.
type Pipeline struct {
	Target  backend.Target
	Options Options
}

// Options mirrors the two knobs the original Frontend class exposes as
// setters (set_panic_recoverable, set_ir_printing_enabled), collected
// into one struct in the teacher's idiom of small option structs passed
// through a constructor (gql.Opts in gql/gql.go).
type Options struct {
	EmitIR           bool
	PanicRecoverable bool
}

// New builds a Pipeline over the given backend target.
func New(target backend.Target, opts Options) *Pipeline {
	return &Pipeline{Target: target, Options: opts}
}

// Compile runs the full pipeline over file's text, appending newly parsed
// statements to ctx.Stmts and updating ctx.Status. replMode toggles
// whether an incomplete (rather than malformed) submission pauses for
// more input instead of being reported as an error (spec.md §4.6).
//
// Grounded on Frontend::compile in original_source/src/frontend/frontend.cpp:
// the same four-stage short-circuit, reworked from early-return-on-Error
// into a Go function that returns as soon as any stage sets a non-OK
// status. ctx.Stmts is back at its pre-submission length on every
// pause/error path: lexer and parser failures (and PauseInput, which lets
// the REPL append the next line and retry) never append to it, and check
// or generate failures truncate it again. ctx.ScannedTokens holds the
// latest scan and is cleared by a rollback.
func (p *Pipeline) Compile(ctx *Context, file *source.CodeFile, replMode bool) Status {
	ctx.Logger.Clear()
	startStmts := len(ctx.Stmts)

	lx := lexer.New(file, ctx.Logger)
	toks, incomplete := lx.Scan()
	ctx.ScannedTokens = toks

	if replMode && incomplete != lexer.NotIncomplete {
		ctx.Status = StatusPauseInput
		return ctx.Status
	}
	if ctx.Logger.HasErrors() {
		ctx.Status = StatusError
		return ctx.Status
	}

	ps := parser.New(toks, ctx.Logger)
	stmts := ps.ParseProgram()
	if replMode && ps.Incomplete() {
		ctx.Status = StatusPauseInput
		return ctx.Status
	}
	if ctx.Logger.HasErrors() {
		if replMode && len(stmts) == 0 {
			ctx.Status = StatusPauseDiscard
			return ctx.Status
		}
		ctx.Status = StatusError
		return ctx.Status
	}
	ctx.Stmts = append(ctx.Stmts, stmts...)

	checker := check.NewChecker(ctx.Logger)
	checker.Tree = ctx.SymbolTree
	checker.CheckProgram(ctx.Stmts[ctx.StmtsChecked:])
	if ctx.Logger.HasErrors() {
		ctx.StmtsProcessed = startStmts
		ctx.rollback()
		if replMode {
			ctx.Status = StatusPauseDiscardWarn
			return ctx.Status
		}
		ctx.Status = StatusError
		return ctx.Status
	}
	ctx.StmtsChecked = len(ctx.Stmts)

	mod := p.Target.NewModule(file.Path)
	p.Target.Generate(mod, ctx.Logger)
	if ctx.Logger.HasErrors() {
		ctx.StmtsChecked = startStmts
		ctx.StmtsProcessed = startStmts
		ctx.rollback()
		ctx.Status = StatusError
		return ctx.Status
	}
	ctx.Module = mod
	ctx.StmtsProcessed = len(ctx.Stmts)

	ctx.Status = StatusOK
	return ctx.Status
}

// Reset clears the backend target's state in addition to ctx's
// (mirrors Frontend::reset() cascading through lexer/parser/codegen).
func (p *Pipeline) Reset(ctx *Context) {
	p.Target.Reset()
	ctx.Reset()
}
