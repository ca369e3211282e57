// Package parser implements Nico's recursive-descent, precedence-climbing
// parser (spec.md §4.2), turning a token stream into the ast.Statement /
// ast.Expression / ast.Annotation tree.
//
// Grounded on the general shape of gql/ast_util.go's addFuncall, which
// matches positional and named call arguments against a function's
// formal-argument list using a "remaining slots" bitmap — that bitmap
// technique lives in internal/check/overload.go; finishCall below only
// enforces that positional arguments precede named ones (spec.md §4.2
// "Positional and named arguments"). The statement/expression grammar
// itself has no GQL analogue (GQL parses query expressions via goyacc,
// not statements) and is built directly from spec.md §4.2 and
// original_source/src/parser/parser.cpp's operator-precedence table.
package parser

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/token"
)

// Parser consumes a finished token slice (from internal/lexer) and
// produces a statement list for one compilation unit or REPL entry.
type Parser struct {
	toks   []token.Token
	pos    int
	logger *diag.Logger

	// errored marks that the construct currently being parsed has already
	// reported a diagnostic, so a further `expect` failure before the next
	// reset point is treated as a symptom of the same error rather than a
	// new one (spec.md §4.2 "Recovery": one malformed construct, one
	// diagnostic).
	errored bool

	// incomplete marks that parsing ran out of tokens mid-construct (an
	// `expect` or `primary` found Eof where more input was required)
	// rather than hitting a malformed one. A REPL driver uses this,
	// alongside the lexer's own Incomplete signal, to ask for another
	// line of input instead of reporting an error (spec.md §4.2, §4.6).
	incomplete bool
}

// Incomplete reports whether ParseProgram ran out of tokens while still
// expecting more input, as opposed to encountering malformed input it
// could otherwise fully consume.
func (p *Parser) Incomplete() bool { return p.incomplete }

// New creates a Parser over toks, reporting errors to logger.
func New(toks []token.Token, logger *diag.Logger) *Parser {
	return &Parser{toks: toks, logger: logger}
}

// ParseProgram parses a full sequence of top-level statements up to Eof.
func (p *Parser) ParseProgram() []ast.Statement {
	var stmts []ast.Statement
	for !p.check(token.Eof) {
		before := len(p.logger.Diagnostics())
		stmts = append(stmts, p.statement())
		if len(p.logger.Diagnostics()) > before {
			p.synchronize()
		}
	}
	return stmts
}

// synchronize skips tokens left unconsumed by a malformed statement until
// it reaches something that looks like the start of the next one (or a
// block/file boundary), so one bad construct produces a single
// diagnostic instead of cascading through every `expect` call that sees
// its stray tokens (spec.md §4.2 "Recovery").
func (p *Parser) synchronize() {
	for !p.check(token.Eof) && !p.check(token.Dedent) {
		switch p.peek().Kind {
		case token.KwLet, token.KwVar, token.KwStatic, token.KwFunc, token.KwStruct,
			token.KwClass, token.KwNamespace, token.KwLoad, token.KwPrint, token.KwReturn,
			token.KwYield, token.KwBreak, token.KwContinue, token.KwDealloc, token.KwUnsafe,
			token.KwPass, token.KwExtern:
			return
		}
		p.advance()
	}
}

// --- token-stream primitives ---

func (p *Parser) peek() token.Token  { return p.toks[p.pos] }
func (p *Parser) previous() token.Token { return p.toks[p.pos-1] }
func (p *Parser) check(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) advance() token.Token {
	if !p.check(token.Eof) {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	// The lexer turns a block-opening ':' into the block's Indent token,
	// so an Indent satisfies an expected ':' and is left for block().
	if k == token.Colon && p.check(token.Indent) {
		return p.peek()
	}
	if p.check(token.Eof) {
		p.incomplete = true
	}
	if !p.errored {
		p.logger.Report(diag.KindExpectedToken, p.peek().Loc, "%s (got %s)", msg, p.peek().Kind)
		p.errored = true
	}
	return p.peek()
}

// --- statements ---

func (p *Parser) statement() ast.Statement {
	p.errored = false
	switch {
	case p.match(token.KwLet):
		return p.letStatement()
	case p.match(token.KwVar):
		return p.varStatement()
	case p.match(token.KwStatic):
		return p.staticStatement()
	case p.match(token.KwFunc):
		return p.funcStatement()
	case p.match(token.KwStruct, token.KwClass):
		return p.structStatement(p.previous().Kind == token.KwClass)
	case p.match(token.KwNamespace):
		return p.namespaceStatement()
	case p.match(token.KwLoad):
		return p.loadStatement()
	case p.match(token.KwPrint):
		return p.printStatement()
	case p.match(token.KwPass):
		return &ast.PassStatement{}
	case p.match(token.KwBreak):
		return &ast.BreakStatement{}
	case p.match(token.KwContinue):
		return &ast.ContinueStatement{}
	case p.match(token.KwReturn):
		return p.returnStatement()
	case p.match(token.KwYield):
		return p.yieldStatement()
	case p.match(token.KwDealloc):
		return p.deallocStatement()
	case p.match(token.KwUnsafe):
		return p.unsafeStatement()
	default:
		start := p.peek().Loc
		e := p.expression()
		return &ast.ExprStatement{Value: e, Base: ast.Base{Loc: start}}
	}
}

func (p *Parser) letStatement() ast.Statement {
	name := p.expect(token.Identifier, "expected a name after 'let'")
	var annotation ast.Annotation
	if p.match(token.Colon) {
		annotation = p.annotation()
	}
	p.expect(token.Eq, "'let' requires an initializer")
	value := p.expression()
	return &ast.LetStatement{Name: name.Lexeme, Ann: annotation, Value: value}
}

func (p *Parser) varStatement() ast.Statement {
	name := p.expect(token.Identifier, "expected a name after 'var'")
	var annotation ast.Annotation
	if p.match(token.Colon) {
		annotation = p.annotation()
	}
	var value ast.Expression
	if p.match(token.Eq) {
		value = p.expression()
	}
	return &ast.VarStatement{Name: name.Lexeme, Ann: annotation, Value: value}
}

func (p *Parser) staticStatement() ast.Statement {
	name := p.expect(token.Identifier, "expected a name after 'static'")
	var annotation ast.Annotation
	if p.match(token.Colon) {
		annotation = p.annotation()
	}
	p.expect(token.Eq, "'static' requires an initializer")
	value := p.expression()
	return &ast.StaticStatement{Name: name.Lexeme, Ann: annotation, Value: value}
}

func (p *Parser) funcParams() []ast.FuncParam {
	p.expect(token.LeftParen, "expected '(' to begin a parameter list")
	var params []ast.FuncParam
	for !p.check(token.RightParen) && !p.check(token.Eof) {
		p.errored = false
		name := p.expect(token.Identifier, "expected a parameter name")
		p.expect(token.Colon, "expected ':' before a parameter's type")
		ann := p.annotation()
		var def ast.Expression
		if p.match(token.Eq) {
			def = p.expression()
		}
		params = append(params, ast.FuncParam{Name: name.Lexeme, Ann: ann, Default: def})
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RightParen, "expected ')' to close a parameter list")
	return params
}

func (p *Parser) funcStatement() ast.Statement {
	name := p.expect(token.Identifier, "expected a function name")
	params := p.funcParams()
	var ret ast.Annotation
	if p.match(token.Arrow) {
		ret = p.annotation()
	}
	if p.match(token.KwExtern) {
		externName := name.Lexeme
		if p.check(token.StringLit) {
			externName = p.advance().Literal.StringValue
		}
		return &ast.FuncStatement{Name: name.Lexeme, Params: params, ReturnAnn: ret, IsExtern: true, ExternName: externName}
	}
	p.expect(token.Colon, "expected ':' to begin a function body")
	body := p.block()
	return &ast.FuncStatement{Name: name.Lexeme, Params: params, ReturnAnn: ret, Body: body}
}

func (p *Parser) structStatement(isClass bool) ast.Statement {
	name := p.expect(token.Identifier, "expected a struct/class name")
	p.expect(token.Colon, "expected ':' to begin a struct/class body")
	p.expect(token.Indent, "expected an indented struct/class body")
	var fields []ast.StructField
	var methods []*ast.FuncStatement
	for !p.check(token.Dedent) && !p.check(token.Eof) {
		p.errored = false
		if p.match(token.KwFunc) {
			m := p.funcStatement().(*ast.FuncStatement)
			methods = append(methods, m)
			continue
		}
		fname := p.expect(token.Identifier, "expected a field name")
		p.expect(token.Colon, "expected ':' before a field's type")
		fann := p.annotation()
		fields = append(fields, ast.StructField{Name: fname.Lexeme, Ann: fann})
	}
	p.expect(token.Dedent, "expected dedent to close a struct/class body")
	return &ast.StructStatement{Name: name.Lexeme, IsClass: isClass, Fields: fields, Methods: methods}
}

func (p *Parser) namespaceStatement() ast.Statement {
	name := p.expect(token.Identifier, "expected a namespace name")
	for p.match(token.Dot) {
		part := p.expect(token.Identifier, "expected a namespace path segment")
		name.Lexeme += "." + part.Lexeme
	}
	p.expect(token.Colon, "expected ':' to begin a namespace body")
	body := p.block()
	return &ast.NamespaceStatement{Name: name.Lexeme, Body: body}
}

func (p *Parser) loadStatement() ast.Statement {
	path := p.expect(token.StringLit, "expected a string path after 'load'")
	return &ast.LoadStatement{Path: path.Literal.StringValue}
}

func (p *Parser) printStatement() ast.Statement {
	return &ast.PrintStatement{Value: p.expression()}
}

func (p *Parser) returnStatement() ast.Statement {
	if p.atStatementEnd() {
		return &ast.ReturnStatement{}
	}
	return &ast.ReturnStatement{Value: p.expression()}
}

func (p *Parser) yieldStatement() ast.Statement {
	return &ast.YieldStatement{Value: p.expression()}
}

func (p *Parser) deallocStatement() ast.Statement {
	return &ast.DeallocStatement{Target: p.expression()}
}

func (p *Parser) unsafeStatement() ast.Statement {
	p.expect(token.Colon, "expected ':' to begin an unsafe block")
	return &ast.UnsafeStatement{Body: p.block()}
}

// atStatementEnd reports whether the current position is a natural
// statement boundary (Dedent or Eof), used for the bare `return` form.
func (p *Parser) atStatementEnd() bool {
	return p.check(token.Dedent) || p.check(token.Eof)
}

// block parses an Indent ... Dedent sequence of statements (spec.md §4.2
// "Blocks").
func (p *Parser) block() []ast.Statement {
	p.expect(token.Indent, "expected an indented block")
	var stmts []ast.Statement
	for !p.check(token.Dedent) && !p.check(token.Eof) {
		before := len(p.logger.Diagnostics())
		stmts = append(stmts, p.statement())
		if len(p.logger.Diagnostics()) > before {
			p.synchronize()
		}
	}
	p.expect(token.Dedent, "expected dedent to close a block")
	return stmts
}

// --- expressions: precedence climbing ---

func (p *Parser) expression() ast.Expression {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expression {
	target := p.or()
	compound := map[token.Kind]string{
		token.PlusEq: "+", token.MinusEq: "-", token.StarEq: "*",
		token.SlashEq: "/", token.PercentEq: "%",
	}
	if p.check(token.Eq) {
		p.advance()
		value := p.assignment()
		return &ast.AssignExpr{Target: target, Value: value}
	}
	if op, ok := compound[p.peek().Kind]; ok {
		p.advance()
		value := p.assignment()
		// Desugar `target op= value` into `target = target op value`
		// (spec.md §4.2 "Compound assignment desugaring").
		desugared := &ast.BinaryExpr{Op: op, Left: target, Right: value}
		return &ast.AssignExpr{Target: target, Value: desugared}
	}
	return target
}

func (p *Parser) or() ast.Expression {
	left := p.and()
	for p.match(token.KwOr) {
		right := p.and()
		left = &ast.BinaryExpr{Op: "or", Left: left, Right: right}
	}
	return left
}

func (p *Parser) and() ast.Expression {
	left := p.not()
	for p.match(token.KwAnd) {
		right := p.not()
		left = &ast.BinaryExpr{Op: "and", Left: left, Right: right}
	}
	return left
}

func (p *Parser) not() ast.Expression {
	if p.match(token.KwNot) {
		operand := p.not()
		return &ast.UnaryExpr{Op: "not", Operand: operand}
	}
	return p.comparison()
}

var comparisonOps = map[token.Kind]string{
	token.EqEq: "==", token.BangEq: "!=", token.Gt: ">", token.GtEq: ">=",
	token.Lt: "<", token.LtEq: "<=",
}

func (p *Parser) comparison() ast.Expression {
	left := p.additive()
	for {
		op, ok := comparisonOps[p.peek().Kind]
		if !ok {
			break
		}
		p.advance()
		right := p.additive()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) additive() ast.Expression {
	left := p.multiplicative()
	for p.check(token.Plus) || p.check(token.Minus) {
		op := "+"
		if p.check(token.Minus) {
			op = "-"
		}
		p.advance()
		right := p.multiplicative()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) multiplicative() ast.Expression {
	left := p.unary()
	ops := map[token.Kind]string{token.Star: "*", token.Slash: "/", token.Percent: "%"}
	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			break
		}
		p.advance()
		right := p.unary()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) unary() ast.Expression {
	switch {
	case p.match(token.Minus):
		return &ast.UnaryExpr{Op: "-", Operand: p.unary()}
	case p.match(token.Caret):
		return &ast.DerefExpr{Operand: p.unary()}
	case p.match(token.Amp):
		return &ast.UnaryExpr{Op: "&", Operand: p.unary()}
	case p.match(token.At):
		return &ast.UnaryExpr{Op: "@", Operand: p.unary()}
	default:
		return p.cast()
	}
}

func (p *Parser) cast() ast.Expression {
	e := p.postfix()
	for p.match(token.KwAs) {
		ann := p.annotation()
		e = &ast.CastExpr{Value: e, Ann: ann}
	}
	return e
}

func (p *Parser) postfix() ast.Expression {
	e := p.primary()
	for {
		switch {
		case p.match(token.LeftParen):
			e = p.finishCall(e)
		case p.match(token.LeftSquare):
			idx := p.expression()
			p.expect(token.RightSquare, "expected ']' to close an index expression")
			e = &ast.IndexExpr{Target: e, Index: idx}
		case p.check(token.Dot):
			p.advance()
			name := p.expect(token.Identifier, "expected a field name after '.'")
			e = &ast.FieldExpr{Target: e, Field: name.Lexeme}
		case p.check(token.TupleIndex):
			tok := p.advance()
			e = &ast.TupleIndexExpr{Target: e, Index: tok.Literal.IntValue}
		default:
			return e
		}
	}
}

// finishCall parses a call's argument list. It only enforces the
// syntactic rule that positional arguments precede named ones; matching
// arguments against a callee's formal parameters (where the
// remaining-slots bitmap from gql/ast_util.go's addFuncall is put to
// use) happens later, in internal/check/overload.go.
func (p *Parser) finishCall(callee ast.Expression) ast.Expression {
	var args []ast.Argument
	seenNamed := false
	for !p.check(token.RightParen) && !p.check(token.Eof) {
		if p.check(token.Identifier) && p.peekAhead(1).Kind == token.Eq {
			name := p.advance()
			p.advance() // '='
			value := p.expression()
			args = append(args, ast.Argument{Name: name.Lexeme, Value: value})
			seenNamed = true
		} else {
			if seenNamed {
				p.logger.Report(diag.KindPosArgumentAfterNamedArgument, p.peek().Loc, "positional argument after a named argument")
			}
			value := p.expression()
			args = append(args, ast.Argument{Value: value})
		}
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RightParen, "expected ')' to close a call")
	return &ast.CallExpr{Callee: callee, Args: args}
}

func (p *Parser) peekAhead(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *Parser) primary() ast.Expression {
	switch {
	case p.match(token.IntDefault, token.IntI8, token.IntI16, token.IntI32, token.IntI64,
		token.IntU8, token.IntU16, token.IntU32, token.IntU64):
		t := p.previous()
		return &ast.IntLiteral{Value: t.Literal.IntValue, Suffix: suffixOf(t.Kind)}
	case p.match(token.FloatDefault, token.FloatF32, token.FloatF64):
		t := p.previous()
		return &ast.FloatLiteral{Value: t.Literal.FloatValue, Suffix: suffixOf(t.Kind)}
	case p.match(token.StringLit):
		return &ast.StringLiteral{Value: p.previous().Literal.StringValue}
	case p.match(token.KwTrue):
		return &ast.BoolLiteral{Value: true}
	case p.match(token.KwFalse):
		return &ast.BoolLiteral{Value: false}
	case p.match(token.KwNullptr):
		return &ast.NullptrLiteral{}
	case p.match(token.KwSizeOf):
		p.expect(token.LeftParen, "expected '(' after 'sizeof'")
		ann := p.annotation()
		p.expect(token.RightParen, "expected ')' to close 'sizeof'")
		return &ast.SizeOfExpr{Ann: ann}
	case p.match(token.KwAlloc):
		ann := p.annotation()
		var with ast.Expression
		if p.match(token.KwWith) {
			with = p.expression()
		}
		return &ast.AllocExpr{Ann: ann, With: with}
	case p.match(token.KwIf):
		return p.ifExpr()
	case p.match(token.KwLoop):
		p.expect(token.Colon, "expected ':' to begin a 'loop' body")
		return &ast.LoopExpr{Body: p.blockExpr()}
	case p.match(token.KwWhile):
		return p.whileExpr(false)
	case p.match(token.KwDo):
		return p.doWhileExpr()
	case p.match(token.KwFor):
		return p.forExpr()
	case p.match(token.KwFunc):
		return p.funcExpr()
	case p.match(token.LeftSquare):
		return p.arrayLiteral()
	case p.match(token.LeftParen):
		return p.parenOrTuple()
	case p.check(token.Identifier):
		return p.identOrObject()
	default:
		tok := p.peek()
		if tok.Kind == token.Eof {
			p.incomplete = true
		}
		p.logger.Report(diag.KindNotAnExpression, tok.Loc, "expected an expression, found %s", tok.Kind)
		p.advance()
		return &ast.NullptrLiteral{}
	}
}

func suffixOf(k token.Kind) string {
	switch k {
	case token.IntI8:
		return "i8"
	case token.IntI16:
		return "i16"
	case token.IntI32:
		return "i32"
	case token.IntI64:
		return "i64"
	case token.IntU8:
		return "u8"
	case token.IntU16:
		return "u16"
	case token.IntU32:
		return "u32"
	case token.IntU64:
		return "u64"
	case token.FloatF32:
		return "f32"
	case token.FloatF64:
		return "f64"
	default:
		return ""
	}
}

func (p *Parser) ifExpr() ast.Expression {
	cond := p.expression()
	p.expect(token.Colon, "expected ':' to begin an 'if' body")
	then := p.blockExpr()
	var elseBranch ast.Expression
	if p.match(token.KwElse) {
		if p.match(token.KwIf) {
			elseBranch = p.ifExpr()
		} else {
			p.expect(token.Colon, "expected ':' to begin an 'else' body")
			elseBranch = p.blockExpr()
		}
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileExpr(doFirst bool) ast.Expression {
	cond := p.expression()
	p.expect(token.Colon, "expected ':' to begin a 'while' body")
	body := p.blockExpr()
	return &ast.WhileExpr{Cond: cond, Body: body, IsDoFirst: doFirst}
}

func (p *Parser) doWhileExpr() ast.Expression {
	p.expect(token.Colon, "expected ':' to begin a 'do' body")
	body := p.blockExpr()
	p.expect(token.KwWhile, "expected 'while' to close a 'do' loop")
	cond := p.expression()
	return &ast.WhileExpr{Cond: cond, Body: body, IsDoFirst: true}
}

func (p *Parser) forExpr() ast.Expression {
	name := p.expect(token.Identifier, "expected a loop variable name after 'for'")
	p.expect(token.KwOf, "expected 'of' after a 'for' loop variable")
	iterable := p.expression()
	p.expect(token.Colon, "expected ':' to begin a 'for' body")
	body := p.blockExpr()
	return &ast.ForExpr{Name: name.Lexeme, Iterable: iterable, Body: body}
}

func (p *Parser) funcExpr() ast.Expression {
	params := p.funcParams()
	var ret ast.Annotation
	if p.match(token.Arrow) {
		ret = p.annotation()
	}
	p.expect(token.Colon, "expected ':' to begin an anonymous function body")
	body := p.block()
	return &ast.FuncExpr{Params: params, ReturnAnn: ret, Body: body}
}

// blockExpr wraps an indented statement block as an expression whose
// value is whatever the block `yield`s (spec.md §3.2 "Block expressions").
func (p *Parser) blockExpr() ast.Expression {
	return &ast.BlockExpr{Body: p.block()}
}

func (p *Parser) arrayLiteral() ast.Expression {
	var elems []ast.Expression
	for !p.check(token.RightSquare) && !p.check(token.Eof) {
		elems = append(elems, p.expression())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RightSquare, "expected ']' to close an array literal")
	return &ast.ArrayLiteral{Elements: elems}
}

func (p *Parser) parenOrTuple() ast.Expression {
	if p.match(token.RightParen) {
		return &ast.TupleLiteral{}
	}
	first := p.expression()
	if !p.check(token.Comma) {
		p.expect(token.RightParen, "expected ')' to close a parenthesized expression")
		return first
	}
	elems := []ast.Expression{first}
	for p.match(token.Comma) {
		if p.check(token.RightParen) {
			break
		}
		elems = append(elems, p.expression())
	}
	p.expect(token.RightParen, "expected ')' to close a tuple literal")
	return &ast.TupleLiteral{Elements: elems}
}

// identOrObject parses a single identifier, then checks for a following
// '{' to disambiguate an ObjectLiteral from a plain reference (spec.md
// §4.2 "Object literals").
func (p *Parser) identOrObject() ast.Expression {
	first := p.advance()
	parts := []string{first.Lexeme}
	// A following '.' is left to postfix() and becomes a FieldExpr.
	// internal/check resolves a FieldExpr only as a struct field access,
	// so a dotted path through a namespace does not resolve in expression
	// position; only annotations (namedAnnotation) take dotted names.
	if p.check(token.LeftBrace) {
		p.advance()
		var fields []ast.ObjectField
		for !p.check(token.RightBrace) && !p.check(token.Eof) {
			name := p.expect(token.Identifier, "expected a field name in an object literal")
			p.expect(token.Colon, "expected ':' after an object literal field name")
			value := p.expression()
			fields = append(fields, ast.ObjectField{Name: name.Lexeme, Value: value})
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.RightBrace, "expected '}' to close an object literal")
		return &ast.ObjectLiteral{Ann: &ast.NamedAnnotation{Parts: parts}, Fields: fields}
	}
	return &ast.IdentExpr{Parts: parts}
}

// --- annotations ---

func (p *Parser) annotation() ast.Annotation {
	switch {
	case p.match(token.At):
		return &ast.PointerAnnotation{Elem: p.annotation()}
	case p.match(token.Amp):
		return &ast.RefAnnotation{Elem: p.annotation()}
	case p.match(token.LeftSquare):
		elem := p.annotation()
		var size *int64
		if p.match(token.Semicolon) {
			n := p.expect(token.IntDefault, "expected an array size")
			v := n.Literal.IntValue
			size = &v
		}
		p.expect(token.RightSquare, "expected ']' to close an array type")
		return &ast.ArrayAnnotation{Elem: elem, Size: size}
	case p.match(token.LeftParen):
		return p.tupleOrFuncAnnotation()
	case p.check(token.Identifier):
		return p.namedAnnotation()
	default:
		tok := p.peek()
		p.logger.Report(diag.KindNotAType, tok.Loc, "expected a type, found %s", tok.Kind)
		p.advance()
		return &ast.NamedAnnotation{Parts: []string{"unit"}}
	}
}

func (p *Parser) tupleOrFuncAnnotation() ast.Annotation {
	var elems []ast.Annotation
	for !p.check(token.RightParen) && !p.check(token.Eof) {
		elems = append(elems, p.annotation())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RightParen, "expected ')' to close a tuple/function parameter type list")
	if p.match(token.Arrow) {
		ret := p.annotation()
		return &ast.FuncAnnotation{Params: elems, Return: ret}
	}
	return &ast.TupleAnnotation{Elems: elems}
}

func (p *Parser) namedAnnotation() ast.Annotation {
	first := p.advance()
	parts := []string{first.Lexeme}
	for p.match(token.Dot) {
		next := p.expect(token.Identifier, "expected a name segment after '.'")
		parts = append(parts, next.Lexeme)
	}
	return &ast.NamedAnnotation{Parts: parts}
}
