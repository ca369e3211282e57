package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/backend"
	"github.com/Brian-Magnuson/nico-sub000/internal/frontend"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

func newPipeline() *frontend.Pipeline {
	return frontend.New(backend.NullBackend{}, frontend.Options{})
}

func TestCompileValidProgramSucceeds(t *testing.T) {
	p := newPipeline()
	ctx := frontend.NewContext()
	f := source.NewCodeFile("<test>", "let x: i32 = 1 + 2\n")

	status := p.Compile(ctx, f, false)

	assert.Equal(t, frontend.StatusOK, status)
	assert.False(t, ctx.Logger.HasErrors())
	assert.Equal(t, len(ctx.Stmts), ctx.StmtsProcessed)
	assert.Equal(t, len(ctx.Stmts), ctx.StmtsChecked)
}

func TestCompileTypeErrorReportsError(t *testing.T) {
	p := newPipeline()
	ctx := frontend.NewContext()
	f := source.NewCodeFile("<test>", "let x: bool = 1\n")

	status := p.Compile(ctx, f, false)

	assert.Equal(t, frontend.StatusError, status)
	assert.True(t, ctx.Logger.HasErrors())
}

func TestReplIncompleteInputPauses(t *testing.T) {
	p := newPipeline()
	ctx := frontend.NewContext()
	f := source.NewCodeFile("<repl>", "if true:\n")

	status := p.Compile(ctx, f, true)

	assert.Equal(t, frontend.StatusPauseInput, status)
}

func TestReplParserIncompleteInputPauses(t *testing.T) {
	p := newPipeline()
	ctx := frontend.NewContext()
	f := source.NewCodeFile("<repl>", "let x = 1 +\n")

	status := p.Compile(ctx, f, true)

	assert.Equal(t, frontend.StatusPauseInput, status)
}

func TestReplRollsBackOnCheckError(t *testing.T) {
	p := newPipeline()
	ctx := frontend.NewContext()

	ok := source.NewCodeFile("<repl>", "let x: i32 = 1\n")
	assert.Equal(t, frontend.StatusOK, p.Compile(ctx, ok, true))
	processedBefore := ctx.StmtsProcessed
	stmtsBefore := len(ctx.Stmts)

	bad := source.NewCodeFile("<repl>", "let y: bool = 1\n")
	status := p.Compile(ctx, bad, true)

	assert.Equal(t, frontend.StatusPauseDiscardWarn, status)
	assert.Equal(t, processedBefore, ctx.StmtsProcessed)
	assert.Equal(t, stmtsBefore, len(ctx.Stmts))
}

func TestResetClearsContextAndBackend(t *testing.T) {
	p := newPipeline()
	ctx := frontend.NewContext()
	f := source.NewCodeFile("<test>", "let x: i32 = 1\n")
	p.Compile(ctx, f, false)

	p.Reset(ctx)

	assert.Equal(t, frontend.StatusOK, ctx.Status)
	assert.Empty(t, ctx.Stmts)
	assert.Equal(t, 0, ctx.StmtsProcessed)
	assert.Equal(t, 0, ctx.StmtsChecked)
}
