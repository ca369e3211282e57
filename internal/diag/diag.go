// Package diag implements the user-visible diagnostic reporter (spec.md §7):
// kind-coded messages, a source line with caret underlining, file:line:col,
// optional notes, and terminal-aware coloring.
//
// Grounded on gql/log.go's Debugf/Logf/Errorf/Panicf(ast ASTNode, ...)
// pattern, generalized from "keyed off an AST node" to "keyed off a
// source.Location" since diag must also report lexer errors that precede
// any AST node. Terminal detection is wired to
// golang.org/x/crypto/ssh/terminal, matching the teacher's own reach for
// that library in termutil/printer.go.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

// Kind is an error-kind code from the taxonomy in spec.md §7. It is not a Go
// error type: a stage never throws, it appends to a Logger.
type Kind string

// Lex errors.
const (
	KindUnexpectedChar       Kind = "unexpected-char"
	KindMixedIndent          Kind = "mixed-indent"
	KindMalformedIndent      Kind = "malformed-indent"
	KindReservedWordMisuse   Kind = "reserved-word-misuse"
	KindUnterminatedString   Kind = "unterminated-string"
	KindUnclosedComment      Kind = "unclosed-comment"
	KindUnopenedComment      Kind = "unopened-comment"
	KindUnclosedGrouping     Kind = "unclosed-grouping"
	KindNumberTooLarge       Kind = "number-too-large"
	KindDigitWrongBase       Kind = "digit-wrong-base"
	KindUnexpectedDotOrExp   Kind = "unexpected-dot-or-exponent"
)

// Parse errors.
const (
	KindNotAnExpression            Kind = "not-an-expression"
	KindNotAnIdentifier             Kind = "not-an-identifier"
	KindNotAType                    Kind = "not-a-type"
	KindExpectedToken                Kind = "expected-token"
	KindMalformedBlock               Kind = "malformed-block"
	KindMalformedLoop                 Kind = "malformed-loop"
	KindMalformedConditional           Kind = "malformed-conditional"
	KindMalformedAlloc                 Kind = "malformed-alloc"
	KindPosArgumentAfterNamedArgument   Kind = "pos-argument-after-named-argument"
	KindDeclarationIdentWithColonColon    Kind = "declaration-ident-with-colon-colon"
)

// Name/resolution errors.
const (
	KindUndeclaredName Kind = "undeclared-name"
	KindNameReserved   Kind = "name-reserved"
	KindNameAlreadyExists Kind = "name-already-exists"
	KindNotAVariable      Kind = "not-a-variable"
	KindNotACallable      Kind = "not-a-callable"
	KindScopeKindRestriction Kind = "scope-kind-restriction"
)

// Type errors.
const (
	KindLetTypeMismatch               Kind = "let-type-mismatch"
	KindAssignmentTypeMismatch         Kind = "assignment-type-mismatch"
	KindYieldTypeMismatch              Kind = "yield-type-mismatch"
	KindNoOperatorOverload             Kind = "no-operator-overload"
	KindInvalidCastOperation           Kind = "invalid-cast-operation"
	KindPtrDerefNonTyped               Kind = "pointer-deref-non-typed"
	KindPtrDerefOutsideUnsafeBlock     Kind = "dereference-outside-unsafe"
	KindAddressOfImmutable             Kind = "address-of-immutable"
	KindAssignToImmutable              Kind = "assign-to-immutable"
	KindNotAPossibleLValue             Kind = "not-a-possible-lvalue"
	KindIndexOutOfBounds               Kind = "index-out-of-bounds"
	KindIndexWrongKind                 Kind = "index-wrong-kind"
	KindSizeOfUnsized                  Kind = "sizeof-unsized"
	KindUnsizedTypeAllocation          Kind = "unsized-type-allocation"
	KindUnsizedRValue                  Kind = "unsized-rvalue"
	KindArrayElementTypeMismatch       Kind = "array-element-type-mismatch"
	KindWhileLoopYieldingNonUnit       Kind = "while-loop-yielding-non-unit"
	KindBreakOutsideLoop               Kind = "break-outside-loop"
	KindContinueOutsideLoop            Kind = "continue-outside-loop"
	KindYieldOutsideLocalScope         Kind = "yield-outside-local-scope"
	KindReturnOutsideFunction          Kind = "return-outside-function"
	KindDefaultArgTypeMismatch         Kind = "default-arg-type-mismatch"
	KindFunctionReturnTypeMismatch     Kind = "function-return-type-mismatch"
	KindDuplicateParameterName         Kind = "duplicate-parameter-name"
	KindNegativeOnUnsignedType         Kind = "negative-on-unsigned-type"
	KindDeallocNonRawPointer           Kind = "dealloc-non-raw-pointer"
	KindDeallocNullptr                 Kind = "dealloc-nullptr"
	KindDeallocOutsideUnsafeBlock      Kind = "dealloc-outside-unsafe-block"
)

// Overload errors.
const (
	KindFunctionOverloadConflict       Kind = "function-overload-conflict"
	KindNoMatchingFunctionOverload     Kind = "no-matching-function-overload"
	KindMultipleMatchingFunctionOverloads Kind = "multiple-matching-function-overloads"
)

// Note is a secondary annotation attached to a Diagnostic, e.g. "previous
// declaration here" (spec.md §7 "User-visible form").
type Note struct {
	Loc     source.Location
	Message string
}

// Diagnostic is one reported error or warning.
type Diagnostic struct {
	Kind    Kind
	Loc     source.Location
	Message string
	Notes   []Note
}

// Logger accumulates diagnostics across a stage (spec.md §7 "Propagation
// policy": stages append to a shared logger; they never throw). It is
// explicitly threaded through the frontend pipeline rather than held in a
// package-level variable (spec.md §9 "Global mutable state").
type Logger struct {
	diags []Diagnostic
}

// NewLogger creates an empty Logger.
func NewLogger() *Logger { return &Logger{} }

// Report appends a diagnostic.
func (l *Logger) Report(kind Kind, loc source.Location, format string, args ...interface{}) {
	l.diags = append(l.diags, Diagnostic{Kind: kind, Loc: loc, Message: fmt.Sprintf(format, args...)})
}

// ReportWithNote appends a diagnostic carrying one secondary note.
func (l *Logger) ReportWithNote(kind Kind, loc source.Location, note Note, format string, args ...interface{}) {
	l.diags = append(l.diags, Diagnostic{Kind: kind, Loc: loc, Message: fmt.Sprintf(format, args...), Notes: []Note{note}})
}

// HasErrors reports whether any diagnostic has been recorded since the last
// Clear.
func (l *Logger) HasErrors() bool { return len(l.diags) > 0 }

// Diagnostics returns the recorded diagnostics in report order.
func (l *Logger) Diagnostics() []Diagnostic { return l.diags }

// Clear empties the logger, e.g. after a REPL rollback.
func (l *Logger) Clear() { l.diags = nil }

// Printer renders diagnostics to an io.Writer, underlining the offending
// span and coloring output only when attached to an interactive terminal
// (spec.md §7 "Color is applied only on an interactive terminal").
type Printer struct {
	Out        io.Writer
	ForceColor bool
}

// NewPrinter builds a Printer, auto-detecting terminal-ness via
// golang.org/x/crypto/ssh/terminal when out is an *os.File.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

func (p *Printer) colorEnabled() bool {
	if p.ForceColor {
		return true
	}
	if f, ok := p.Out.(*os.File); ok {
		return terminal.IsTerminal(int(f.Fd()))
	}
	return false
}

const (
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

// Print writes one diagnostic in the form:
//
//	file:line:col: kind: message
//	    <source line>
//	    ^~~~~
//	note: ...
func (p *Printer) Print(d Diagnostic) {
	color := p.colorEnabled()
	header := fmt.Sprintf("%s: %s: %s", d.Loc.String(), string(d.Kind), d.Message)
	if color {
		header = colorRed + header + colorReset
	}
	fmt.Fprintln(p.Out, header)
	if d.Loc.File != nil && d.Loc.Line > 0 {
		line := d.Loc.File.LineText(d.Loc.Line)
		fmt.Fprintln(p.Out, "    "+line)
		underline := strings.Repeat(" ", d.Loc.Column-1)
		width := d.Loc.Length
		if width < 1 {
			width = 1
		}
		underline += "^" + strings.Repeat("~", width-1)
		if color {
			underline = colorYellow + underline + colorReset
		}
		fmt.Fprintln(p.Out, "    "+underline)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(p.Out, "note: %s: %s\n", n.Loc.String(), n.Message)
	}
}

// PrintAll prints every diagnostic in l to the printer's writer.
func (p *Printer) PrintAll(l *Logger) {
	for _, d := range l.Diagnostics() {
		p.Print(d)
	}
}
