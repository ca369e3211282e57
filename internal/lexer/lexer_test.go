package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/lexer"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
	"github.com/Brian-Magnuson/nico-sub000/internal/token"
)

func scan(t *testing.T, text string) ([]token.Token, *diag.Logger, lexer.Incomplete) {
	t.Helper()
	f := source.NewCodeFile("<test>", text)
	logger := diag.NewLogger()
	lx := lexer.New(f, logger)
	toks, incomplete := lx.Scan()
	return toks, logger, incomplete
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanSimpleExpression(t *testing.T) {
	toks, logger, incomplete := scan(t, "let x = 1 + 2\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, lexer.NotIncomplete, incomplete)
	assert.Equal(t, []token.Kind{
		token.KwLet, token.Identifier, token.Eq, token.IntDefault,
		token.Plus, token.IntDefault, token.Eof,
	}, kinds(toks))
}

func TestScanIndentDedent(t *testing.T) {
	src := "if true:\n    print 1\nprint 2\n"
	toks, logger, incomplete := scan(t, src)
	assert.False(t, logger.HasErrors())
	assert.Equal(t, lexer.NotIncomplete, incomplete)
	assert.Equal(t, []token.Kind{
		token.KwIf, token.KwTrue, token.Indent,
		token.KwPrint, token.IntDefault,
		token.Dedent,
		token.KwPrint, token.IntDefault,
		token.Eof,
	}, kinds(toks))
}

func TestScanNestedDedentsAtEof(t *testing.T) {
	src := "if true:\n    if true:\n        print 1\n"
	toks, _, incomplete := scan(t, src)
	assert.Equal(t, lexer.NotIncomplete, incomplete)
	ks := kinds(toks)
	dedents := 0
	for _, k := range ks {
		if k == token.Dedent {
			dedents++
		}
	}
	assert.Equal(t, 2, dedents)
	assert.Equal(t, token.Eof, ks[len(ks)-1])
}

func TestScanGroupingSuppressesNewline(t *testing.T) {
	toks, logger, incomplete := scan(t, "let x = (1 +\n    2)\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, lexer.NotIncomplete, incomplete)
	assert.Equal(t, []token.Kind{
		token.KwLet, token.Identifier, token.Eq, token.LeftParen,
		token.IntDefault, token.Plus, token.IntDefault, token.RightParen, token.Eof,
	}, kinds(toks))
}

func TestScanTrailingColonIsIncomplete(t *testing.T) {
	_, _, incomplete := scan(t, "if true:")
	assert.Equal(t, lexer.TrailingColon, incomplete)
}

func TestScanUnclosedGroupingIsIncomplete(t *testing.T) {
	_, _, incomplete := scan(t, "let x = (1 + 2\n")
	assert.Equal(t, lexer.UnbalancedGrouping, incomplete)
}

func TestScanUnclosedBlockCommentIsIncomplete(t *testing.T) {
	_, logger, incomplete := scan(t, "/* never closed\n")
	assert.Equal(t, lexer.UnclosedComment, incomplete)
	assert.True(t, logger.HasErrors())
}

func TestScanNestedBlockComments(t *testing.T) {
	toks, logger, incomplete := scan(t, "/* outer /* inner */ still outer */ let x = 1\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, lexer.NotIncomplete, incomplete)
	assert.Equal(t, []token.Kind{token.KwLet, token.Identifier, token.Eq, token.IntDefault, token.Eof}, kinds(toks))
}

func TestScanIntegerBasesAndSuffixes(t *testing.T) {
	toks, logger, _ := scan(t, "0xFF 0b101 0o17 42i64 7u8\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, int64(255), toks[0].Literal.IntValue)
	assert.Equal(t, int64(5), toks[1].Literal.IntValue)
	assert.Equal(t, int64(15), toks[2].Literal.IntValue)
	assert.Equal(t, token.IntI64, toks[3].Kind)
	assert.Equal(t, token.IntU8, toks[4].Kind)
}

func TestScanFloatLiteral(t *testing.T) {
	toks, logger, _ := scan(t, "3.14 2e10 1.5f32\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, token.FloatDefault, toks[0].Kind)
	assert.InDelta(t, 3.14, toks[0].Literal.FloatValue, 1e-9)
	assert.Equal(t, token.FloatDefault, toks[1].Kind)
	assert.Equal(t, token.FloatF32, toks[2].Kind)
}

func TestScanStringEscapes(t *testing.T) {
	toks, logger, _ := scan(t, `"hello\nworld"`+"\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, "hello\nworld", toks[0].Literal.StringValue)
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	_, logger, _ := scan(t, "\"unterminated\n")
	assert.True(t, logger.HasErrors())
	assert.Equal(t, diag.KindUnterminatedString, logger.Diagnostics()[0].Kind)
}

func TestScanTupleIndexAndDot(t *testing.T) {
	toks, logger, _ := scan(t, "t.0 x.field\n")
	assert.False(t, logger.HasErrors())
	assert.Equal(t, token.TupleIndex, toks[1].Kind)
	assert.Equal(t, int64(0), toks[1].Literal.IntValue)
	assert.Equal(t, token.Dot, toks[3].Kind)
}

func TestScanMixedIndentWarns(t *testing.T) {
	_, logger, _ := scan(t, "if true:\n\t print 1\n")
	assert.True(t, logger.HasErrors())
}
