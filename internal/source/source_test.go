package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

func TestNewCodeFileNormalizesCRLF(t *testing.T) {
	f := source.NewCodeFile("<test>", "let x = 1\r\nlet y = 2\r\n")
	assert.Equal(t, "let x = 1\nlet y = 2\n", f.Text)
}

func TestLineColFindsLineAndColumn(t *testing.T) {
	f := source.NewCodeFile("<test>", "abc\ndef\nghi\n")
	line, col := f.LineCol(4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	line, col = f.LineCol(0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}

func TestLineTextReturnsLineWithoutNewline(t *testing.T) {
	f := source.NewCodeFile("<test>", "abc\ndef\nghi\n")
	assert.Equal(t, "def", f.LineText(2))
	assert.Equal(t, "ghi", f.LineText(3))
	assert.Equal(t, "", f.LineText(99))
}

func TestLocationStringFormatsFileLineCol(t *testing.T) {
	f := source.NewCodeFile("main.nico", "let x = 1\n")
	loc := source.NewLocation(f, 4, 1)
	assert.Equal(t, "main.nico:1:5", loc.String())
}

func TestLocationStringFallsBackToInputForNilFile(t *testing.T) {
	var loc source.Location
	assert.Equal(t, "<input>:0:0", loc.String())
}

func TestLocationMergeSpansBoth(t *testing.T) {
	f := source.NewCodeFile("<test>", "let x = 1 + 2\n")
	left := source.NewLocation(f, 8, 1)
	right := source.NewLocation(f, 12, 1)

	merged := left.Merge(right)
	assert.Equal(t, 8, merged.Offset)
	assert.Equal(t, 5, merged.Length)
}

func TestLocationMergeHandlesNilFileOnEitherSide(t *testing.T) {
	f := source.NewCodeFile("<test>", "abc\n")
	withFile := source.NewLocation(f, 0, 1)
	var empty source.Location

	assert.Equal(t, withFile, empty.Merge(withFile))
	assert.Equal(t, withFile, withFile.Merge(empty))
}
