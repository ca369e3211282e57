// Package source holds the source-text buffer and the location spans that
// every downstream token, AST node, and diagnostic anchors to (spec.md
// §3.1). Grounded on the teacher's use of text/scanner.Position in
// gql/ast.go, generalized into an explicit struct carrying an offset and a
// length so diagnostics can underline multi-character spans (spec.md §7).
package source

import "strings"

// CodeFile is a single compilation unit: a file path (or "<repl>") and its
// full, newline-normalized text. Its lifetime must exceed every Location,
// Token, and AST node it produces (spec.md §5 "Shared resources").
type CodeFile struct {
	Path string
	Text string

	// lineStarts[i] is the byte offset of the first character of line i+1.
	lineStarts []int
}

// NewCodeFile builds a CodeFile, normalizing "\r\n" to "\n" per spec.md §6.4.
func NewCodeFile(path, text string) *CodeFile {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	f := &CodeFile{Path: path, Text: text}
	f.indexLines()
	return f
}

func (f *CodeFile) indexLines() {
	f.lineStarts = []int{0}
	for i, ch := range f.Text {
		if ch == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
}

// LineCol converts a byte offset into a 1-based (line, column) pair.
func (f *CodeFile) LineCol(offset int) (line, col int) {
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - f.lineStarts[lo] + 1
}

// LineText returns the full text of the given 1-based line number, without
// its trailing newline.
func (f *CodeFile) LineText(line int) string {
	if line < 1 || line > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[line-1]
	end := len(f.Text)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
	}
	if end < start {
		end = start
	}
	return f.Text[start:end]
}

// Location binds to a CodeFile plus a (start offset, length) span, caching
// the derived line/column for caret-underlining (spec.md §3.1, §7).
type Location struct {
	File   *CodeFile
	Offset int
	Length int
	Line   int
	Column int
}

// NewLocation computes the line/column for a span and returns a Location.
func NewLocation(file *CodeFile, offset, length int) Location {
	line, col := 0, 0
	if file != nil {
		line, col = file.LineCol(offset)
	}
	return Location{File: file, Offset: offset, Length: length, Line: line, Column: col}
}

// String renders "file:line:col", the form used in every diagnostic (spec.md
// §7 "User-visible form").
func (l Location) String() string {
	path := "<input>"
	if l.File != nil && l.File.Path != "" {
		path = l.File.Path
	}
	return path + ":" + itoa(l.Line) + ":" + itoa(l.Column)
}

// Merge returns the smallest Location spanning both l and other, used to
// report multi-token constructs (e.g. a whole call expression).
func (l Location) Merge(other Location) Location {
	if l.File == nil {
		return other
	}
	if other.File == nil {
		return l
	}
	start := l.Offset
	if other.Offset < start {
		start = other.Offset
	}
	end := l.Offset + l.Length
	if e := other.Offset + other.Length; e > end {
		end = e
	}
	return NewLocation(l.File, start, end-start)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
