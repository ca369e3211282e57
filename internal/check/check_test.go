package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/check"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/lexer"
	"github.com/Brian-Magnuson/nico-sub000/internal/parser"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

func checkSource(t *testing.T, text string) *diag.Logger {
	t.Helper()
	f := source.NewCodeFile("<test>", text)
	logger := diag.NewLogger()
	toks, _ := lexer.New(f, logger).Scan()
	stmts := parser.New(toks, logger).ParseProgram()
	check.NewChecker(logger).CheckProgram(stmts)
	return logger
}

func TestCheckLetTypeMismatchReported(t *testing.T) {
	logger := checkSource(t, "let x: bool = 1\n")
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindLetTypeMismatch, logger.Diagnostics()[0].Kind)
}

func TestCheckValidLetPasses(t *testing.T) {
	logger := checkSource(t, "let x: i32 = 1 + 2\n")
	assert.False(t, logger.HasErrors())
}

func TestCheckUndeclaredNameReported(t *testing.T) {
	logger := checkSource(t, "let x = y\n")
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindUndeclaredName, logger.Diagnostics()[0].Kind)
}

func TestCheckAssignToImmutableReported(t *testing.T) {
	logger := checkSource(t, "let x = 1\nx = 2\n")
	assert.True(t, logger.HasErrors())
	found := false
	for _, d := range logger.Diagnostics() {
		if d.Kind == diag.KindAssignToImmutable {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckVarReassignOk(t *testing.T) {
	logger := checkSource(t, "var x = 1\nx = 2\n")
	assert.False(t, logger.HasErrors())
}

func TestCheckForwardReferenceAcrossFunctions(t *testing.T) {
	src := "func a() -> i32:\n    return b()\nfunc b() -> i32:\n    return 1\n"
	logger := checkSource(t, src)
	assert.False(t, logger.HasErrors())
}

func TestCheckBreakOutsideLoopReported(t *testing.T) {
	logger := checkSource(t, "break\n")
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindBreakOutsideLoop, logger.Diagnostics()[0].Kind)
}

func TestCheckReturnOutsideFunctionReported(t *testing.T) {
	logger := checkSource(t, "return 1\n")
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindReturnOutsideFunction, logger.Diagnostics()[0].Kind)
}

func TestCheckDerefOutsideUnsafeReported(t *testing.T) {
	src := "let p: @i32 = nullptr\nlet v = ^p\n"
	logger := checkSource(t, src)
	assert.True(t, logger.HasErrors())
	found := false
	for _, d := range logger.Diagnostics() {
		if d.Kind == diag.KindPtrDerefOutsideUnsafeBlock {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckStructFieldAccess(t *testing.T) {
	src := "struct Point:\n    x: i32\n    y: i32\nlet p = Point{x: 1, y: 2}\nlet a = p.x\n"
	logger := checkSource(t, src)
	assert.False(t, logger.HasErrors())
}

func TestCheckOverloadResolution(t *testing.T) {
	src := "func f(a: i32) -> i32:\n    return a\nfunc f(a: i32, b: i32) -> i32:\n    return a + b\nlet x = f(1, 2)\n"
	logger := checkSource(t, src)
	assert.False(t, logger.HasErrors())
}

func TestCheckOverloadResolutionRejectsMismatchedArgTypes(t *testing.T) {
	src := "func add(a: i32, b: i32) -> i32:\n    return a + b\nfunc add(a: f64, b: f64) -> f64:\n    return a + b\nlet x = add(1, 2.0)\n"
	logger := checkSource(t, src)
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindNoMatchingFunctionOverload, logger.Diagnostics()[0].Kind)
}

func TestCheckOverloadEachBodyUsesItsOwnSignature(t *testing.T) {
	// If checkFunc bound the first overload's body to the last-declared
	// overload's signature, `a`'s default of 1 (an i32 literal) would be
	// checked against the second overload's unrelated f64 parameters,
	// spuriously reporting a default-arg type mismatch. The two overloads
	// have disjoint arities (0..1 vs exactly 3) so registration itself
	// does not reject them.
	src := "func f(a: i32 = 1) -> i32:\n    return a\nfunc f(a: f64, b: f64, c: f64) -> f64:\n    return a\n"
	logger := checkSource(t, src)
	assert.False(t, logger.HasErrors())
}

func TestCheckOverloadConflictOnAmbiguousZeroArityReported(t *testing.T) {
	// Both overloads are callable with zero arguments, so a bare `f()`
	// would be ambiguous between them; spec.md §4.5 requires this to be
	// rejected at registration time rather than deferred to call sites.
	src := "func f(a: i32 = 1) -> i32:\n    return a\nfunc f(b: f64 = 2.0) -> f64:\n    return b\n"
	logger := checkSource(t, src)
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindFunctionOverloadConflict, logger.Diagnostics()[0].Kind)
}

func TestCheckOverloadConflictOnExactRedeclarationReported(t *testing.T) {
	src := "func f(a: i32) -> i32:\n    return a\nfunc f(a: i32) -> i32:\n    return a\n"
	logger := checkSource(t, src)
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindFunctionOverloadConflict, logger.Diagnostics()[0].Kind)
}
