// Package token defines the lexical token kinds produced by internal/lexer
// (spec.md §4.1 "Token taxonomy").
//
// Grounded on src/lexer/token.h from the original Nico compiler (see
// original_source/ in the retrieved pack): the same base/symbol/keyword
// groupings are kept, generalized from a C++ enum class into a plain Go
// iota, and extended with the literal-width, TupleIndex, and ArraySize
// kinds spec.md adds.
package token

import "github.com/Brian-Magnuson/nico-sub000/internal/source"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	Invalid Kind = iota
	Eof

	Indent
	Dedent

	// Grouping
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	LeftSquare
	RightSquare

	Comma
	Semicolon
	Dot
	Colon
	ColonColon
	Arrow    // ->
	FatArrow // =>

	// Operators
	Plus
	PlusEq
	Minus
	MinusEq
	Star
	StarEq
	Slash
	SlashEq
	Percent
	PercentEq
	Caret
	Amp
	At

	Bang
	BangEq
	EqEq
	Gt
	GtEq
	Lt
	LtEq
	Eq

	// Keywords
	KwAnd
	KwOr
	KwNot
	KwIf
	KwElse
	KwCond
	KwLoop
	KwWhile
	KwDo
	KwBreak
	KwContinue
	KwReturn
	KwYield

	KwLet
	KwVar
	KwStatic
	KwFunc
	KwStruct
	KwClass
	KwNamespace
	KwExtern
	KwPrint
	KwPass

	KwAs
	KwSizeOf
	KwAlloc
	KwDealloc
	KwWith
	KwFor
	KwOf
	KwUnsafe
	KwLoad

	// Literals
	Identifier
	IntDefault
	IntI8
	IntI16
	IntI32
	IntI64
	IntU8
	IntU16
	IntU32
	IntU64
	FloatDefault
	FloatF32
	FloatF64
	StringLit
	TupleIndex
	ArraySize

	KwTrue
	KwFalse
	KwNullptr
	KwInf
	KwInf32
	KwInf64
	KwNan
	KwNan32
	KwNan64
)

var names = map[Kind]string{
	Invalid: "invalid", Eof: "eof", Indent: "indent", Dedent: "dedent",
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	LeftSquare: "[", RightSquare: "]", Comma: ",", Semicolon: ";",
	Dot: ".", Colon: ":", ColonColon: "::", Arrow: "->", FatArrow: "=>",
	Plus: "+", PlusEq: "+=", Minus: "-", MinusEq: "-=", Star: "*", StarEq: "*=",
	Slash: "/", SlashEq: "/=", Percent: "%", PercentEq: "%=", Caret: "^",
	Amp: "&", At: "@", Bang: "!", BangEq: "!=", EqEq: "==", Gt: ">", GtEq: ">=",
	Lt: "<", LtEq: "<=", Eq: "=",
	KwAnd: "and", KwOr: "or", KwNot: "not", KwIf: "if", KwElse: "else",
	KwCond: "cond", KwLoop: "loop", KwWhile: "while", KwDo: "do",
	KwBreak: "break", KwContinue: "continue", KwReturn: "return", KwYield: "yield",
	KwLet: "let", KwVar: "var", KwStatic: "static", KwFunc: "func",
	KwStruct: "struct", KwClass: "class", KwNamespace: "namespace",
	KwExtern: "extern", KwPrint: "print", KwPass: "pass", KwAs: "as",
	KwSizeOf: "sizeof", KwAlloc: "alloc", KwDealloc: "dealloc", KwWith: "with",
	KwFor: "for", KwOf: "of", KwUnsafe: "unsafe", KwLoad: "load",
	Identifier: "identifier", IntDefault: "int", IntI8: "i8-lit", IntI16: "i16-lit",
	IntI32: "i32-lit", IntI64: "i64-lit", IntU8: "u8-lit", IntU16: "u16-lit",
	IntU32: "u32-lit", IntU64: "u64-lit", FloatDefault: "float",
	FloatF32: "f32-lit", FloatF64: "f64-lit", StringLit: "string",
	TupleIndex: "tuple-index", ArraySize: "array-size",
	KwTrue: "true", KwFalse: "false", KwNullptr: "nullptr",
	KwInf: "inf", KwInf32: "inf32", KwInf64: "inf64",
	KwNan: "nan", KwNan32: "nan32", KwNan64: "nan64",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "?"
}

// Keywords maps reserved words to their Kind. Any identifier matching one of
// these is lexed as the keyword, never as Identifier.
var Keywords = map[string]Kind{
	"and": KwAnd, "or": KwOr, "not": KwNot, "if": KwIf, "else": KwElse,
	"cond": KwCond, "loop": KwLoop, "while": KwWhile, "do": KwDo,
	"break": KwBreak, "continue": KwContinue, "return": KwReturn, "yield": KwYield,
	"let": KwLet, "var": KwVar, "static": KwStatic, "func": KwFunc,
	"struct": KwStruct, "class": KwClass, "namespace": KwNamespace,
	"extern": KwExtern, "print": KwPrint, "pass": KwPass, "as": KwAs,
	"sizeof": KwSizeOf, "alloc": KwAlloc, "dealloc": KwDealloc, "with": KwWith,
	"for": KwFor, "of": KwOf, "unsafe": KwUnsafe, "load": KwLoad,
	"true": KwTrue, "false": KwFalse, "nullptr": KwNullptr,
	"inf": KwInf, "inf32": KwInf32, "inf64": KwInf64,
	"nan": KwNan, "nan32": KwNan32, "nan64": KwNan64,
}

// Literal holds a parsed literal value for a token, when applicable.
type Literal struct {
	// Filled in by the lexer for IntXxx, FloatXxx, StringLit and
	// TupleIndex tokens.
	IntValue    int64
	FloatValue  float64
	StringValue string
	HasValue    bool
}

// Token is a single lexical unit: a kind, its source span, the raw lexeme
// view, and an optional parsed literal value (spec.md §3.1).
type Token struct {
	Kind    Kind
	Loc     source.Location
	Lexeme  string
	Literal Literal
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Lexeme + ")"
}
