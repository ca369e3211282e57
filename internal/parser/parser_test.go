package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/lexer"
	"github.com/Brian-Magnuson/nico-sub000/internal/parser"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

func parseProgram(t *testing.T, text string) ([]ast.Statement, *diag.Logger) {
	t.Helper()
	f := source.NewCodeFile("<test>", text)
	logger := diag.NewLogger()
	toks, _ := lexer.New(f, logger).Scan()
	p := parser.New(toks, logger)
	return p.ParseProgram(), logger
}

func TestParseLetStatement(t *testing.T) {
	stmts, logger := parseProgram(t, "let x: i32 = 1 + 2\n")
	assert.False(t, logger.HasErrors())
	assert.Len(t, stmts, 1)
	let, ok := stmts[0].(*ast.LetStatement)
	assert.True(t, ok)
	assert.Equal(t, "x", let.Name)
	ann, ok := let.Ann.(*ast.NamedAnnotation)
	assert.True(t, ok)
	assert.Equal(t, []string{"i32"}, ann.Parts)
	bin, ok := let.Value.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseCompoundAssignmentDesugars(t *testing.T) {
	stmts, logger := parseProgram(t, "x += 1\n")
	assert.False(t, logger.HasErrors())
	exprStmt := stmts[0].(*ast.ExprStatement)
	assign := exprStmt.Value.(*ast.AssignExpr)
	bin := assign.Value.(*ast.BinaryExpr)
	assert.Equal(t, "+", bin.Op)
}

func TestParseIfElseExpression(t *testing.T) {
	src := "let y = if x:\n    yield 1\nelse:\n    yield 2\n"
	stmts, logger := parseProgram(t, src)
	assert.False(t, logger.HasErrors())
	let := stmts[0].(*ast.LetStatement)
	ifExpr, ok := let.Value.(*ast.IfExpr)
	assert.True(t, ok)
	assert.NotNil(t, ifExpr.Else)
}

func TestParseFunctionWithDefaultArg(t *testing.T) {
	src := "func add(a: i32, b: i32 = 1) -> i32:\n    return a + b\n"
	stmts, logger := parseProgram(t, src)
	assert.False(t, logger.HasErrors())
	fn := stmts[0].(*ast.FuncStatement)
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Params, 2)
	assert.NotNil(t, fn.Params[1].Default)
}

func TestParseCallWithNamedArgs(t *testing.T) {
	stmts, logger := parseProgram(t, "f(1, b = 2)\n")
	assert.False(t, logger.HasErrors())
	exprStmt := stmts[0].(*ast.ExprStatement)
	call := exprStmt.Value.(*ast.CallExpr)
	assert.Len(t, call.Args, 2)
	assert.Equal(t, "", call.Args[0].Name)
	assert.Equal(t, "b", call.Args[1].Name)
}

func TestParsePositionalAfterNamedIsReported(t *testing.T) {
	_, logger := parseProgram(t, "f(a = 1, 2)\n")
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindPosArgumentAfterNamedArgument, logger.Diagnostics()[0].Kind)
}

func TestParseStructStatement(t *testing.T) {
	src := "struct Point:\n    x: i32\n    y: i32\n"
	stmts, logger := parseProgram(t, src)
	assert.False(t, logger.HasErrors())
	st := stmts[0].(*ast.StructStatement)
	assert.Equal(t, "Point", st.Name)
	assert.Len(t, st.Fields, 2)
}

func TestParsePointerAndArrayAnnotations(t *testing.T) {
	src := "let p: @i32 = nullptr\nlet a: [i32; 3] = [1, 2, 3]\n"
	stmts, logger := parseProgram(t, src)
	assert.False(t, logger.HasErrors())
	p := stmts[0].(*ast.LetStatement)
	ptr, ok := p.Ann.(*ast.PointerAnnotation)
	assert.True(t, ok)
	_, ok = ptr.Elem.(*ast.NamedAnnotation)
	assert.True(t, ok)

	a := stmts[1].(*ast.LetStatement)
	arr, ok := a.Ann.(*ast.ArrayAnnotation)
	assert.True(t, ok)
	assert.NotNil(t, arr.Size)
	assert.Equal(t, int64(3), *arr.Size)
}

func TestParseTupleLiteral(t *testing.T) {
	stmts, logger := parseProgram(t, "let t = (1, 2, 3)\n")
	assert.False(t, logger.HasErrors())
	let := stmts[0].(*ast.LetStatement)
	tup, ok := let.Value.(*ast.TupleLiteral)
	assert.True(t, ok)
	assert.Len(t, tup.Elements, 3)
}

func TestParseCaretIsDeref(t *testing.T) {
	stmts, logger := parseProgram(t, "let c = ^b\n")
	assert.False(t, logger.HasErrors())
	let := stmts[0].(*ast.LetStatement)
	_, ok := let.Value.(*ast.DerefExpr)
	assert.True(t, ok)
}

func TestParseSynchronizeAfterMalformedStatementReportsOnce(t *testing.T) {
	stmts, logger := parseProgram(t, "let 5\nlet y = 3\n")
	assert.True(t, logger.HasErrors())
	assert.Len(t, logger.Diagnostics(), 1)
	assert.Len(t, stmts, 2)
	y := stmts[1].(*ast.LetStatement)
	assert.Equal(t, "y", y.Name)
}

func TestParseAtAndAmpAreAddressOf(t *testing.T) {
	stmts, logger := parseProgram(t, "let a = @b\nlet c = &b\n")
	assert.False(t, logger.HasErrors())

	at := stmts[0].(*ast.LetStatement).Value.(*ast.UnaryExpr)
	assert.Equal(t, "@", at.Op)

	amp := stmts[1].(*ast.LetStatement).Value.(*ast.UnaryExpr)
	assert.Equal(t, "&", amp.Op)
}
