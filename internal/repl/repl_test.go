package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/backend"
	"github.com/Brian-Magnuson/nico-sub000/internal/frontend"
)

func newTestRepl() (*Repl, *bytes.Buffer) {
	var out bytes.Buffer
	r := New(&bytes.Buffer{}, &out, backend.NullBackend{}, frontend.Options{})
	return r, &out
}

func TestIsCommandLineRecognizesKnownCommands(t *testing.T) {
	assert.True(t, isCommandLine(":help"))
	assert.True(t, isCommandLine(":q"))
	assert.False(t, isCommandLine(":nonexistent"))
	assert.False(t, isCommandLine("help"))
}

func TestSubmitValidStatementAdvancesWatermark(t *testing.T) {
	r, _ := newTestRepl()
	r.buffer.WriteString("let x: i32 = 1\n")
	r.submit()

	assert.False(t, r.inContinue)
	assert.Equal(t, 1, r.ctx.StmtsProcessed)
}

func TestSubmitIncompleteEntersContinueMode(t *testing.T) {
	r, _ := newTestRepl()
	r.buffer.WriteString("if true:\n")
	r.submit()

	assert.True(t, r.inContinue)
}

func TestSubmitErrorPrintsDiagnosticAndClearsBuffer(t *testing.T) {
	r, out := newTestRepl()
	r.buffer.WriteString("let x: bool = 1\n")
	r.submit()

	assert.False(t, r.inContinue)
	assert.Equal(t, 0, r.buffer.Len())
	assert.NotEmpty(t, out.String())
}

func TestDiscardWarnEntersCautionMode(t *testing.T) {
	r, _ := newTestRepl()
	r.buffer.WriteString("let x: i32 = 1\n")
	r.submit()

	r.buffer.WriteString("let y: bool = 1\n")
	r.submit()

	assert.True(t, r.caution)
	assert.Equal(t, 0, r.buffer.Len())
}

func TestResetCommandClearsCaution(t *testing.T) {
	r, _ := newTestRepl()
	r.caution = true
	r.cmdReset()
	assert.False(t, r.caution)
}

func TestExitCommandSetsShouldExit(t *testing.T) {
	r, _ := newTestRepl()
	r.cmdExit()
	assert.True(t, r.shouldExit)
}
