package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

func TestLoggerReportAccumulatesAndHasErrors(t *testing.T) {
	l := diag.NewLogger()
	assert.False(t, l.HasErrors())

	l.Report(diag.KindUndeclaredName, source.Location{}, "undeclared name %q", "x")
	assert.True(t, l.HasErrors())
	assert.Len(t, l.Diagnostics(), 1)
	assert.Equal(t, `undeclared name "x"`, l.Diagnostics()[0].Message)
}

func TestLoggerClearEmptiesDiagnostics(t *testing.T) {
	l := diag.NewLogger()
	l.Report(diag.KindNotACallable, source.Location{}, "boom")
	l.Clear()
	assert.False(t, l.HasErrors())
	assert.Empty(t, l.Diagnostics())
}

func TestLoggerReportWithNoteAttachesNote(t *testing.T) {
	l := diag.NewLogger()
	note := diag.Note{Loc: source.Location{}, Message: "previous declaration here"}
	l.ReportWithNote(diag.KindNameAlreadyExists, source.Location{}, note, "name %q already exists", "f")
	assert.Len(t, l.Diagnostics()[0].Notes, 1)
	assert.Equal(t, "previous declaration here", l.Diagnostics()[0].Notes[0].Message)
}

func TestPrinterPrintAllWritesEveryDiagnostic(t *testing.T) {
	file := source.NewCodeFile("<test>", "let x: i32 = true\n")
	loc := source.NewLocation(file, 4, 1)

	l := diag.NewLogger()
	l.Report(diag.KindLetTypeMismatch, loc, "cannot assign %s to %s", "bool", "i32")

	var out bytes.Buffer
	p := diag.NewPrinter(&out)
	p.PrintAll(l)

	s := out.String()
	assert.Contains(t, s, "<test>:1:5")
	assert.Contains(t, s, "let-type-mismatch")
	assert.Contains(t, s, "let x: i32 = true")
	assert.Contains(t, s, "^")
}

func TestPrinterPrintNoColorWithoutForceColorOnNonFile(t *testing.T) {
	var out bytes.Buffer
	p := diag.NewPrinter(&out)
	p.Print(diag.Diagnostic{Kind: diag.KindNotAType, Loc: source.Location{}, Message: "nope"})
	assert.NotContains(t, out.String(), "\x1b[")
}
