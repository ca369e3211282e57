package symbol

// Reserved names (spec.md §3.4 invariant 2). They are not installed into
// the symbol tree; Reserved reports them, and the checker rejects them as
// let/var/static names. Function, struct and namespace declarations are
// not checked against this list.
var (
	I8  = Intern("i8")
	I16 = Intern("i16")
	I32 = Intern("i32")
	I64 = Intern("i64")
	U8  = Intern("u8")
	U16 = Intern("u16")
	U32 = Intern("u32")
	U64 = Intern("u64")
	F32 = Intern("f32")
	F64 = Intern("f64")
	Bool = Intern("bool")
	Str  = Intern("str")
	Anyptr = Intern("anyptr")

	True    = Intern("true")
	False   = Intern("false")
	Nullptr = Intern("nullptr")

	KwLet      = Intern("let")
	KwVar      = Intern("var")
	KwStatic   = Intern("static")
	KwFunc     = Intern("func")
	KwPrint    = Intern("print")
	KwDealloc  = Intern("dealloc")
	KwPass     = Intern("pass")
	KwYield    = Intern("yield")
	KwBreak    = Intern("break")
	KwReturn   = Intern("return")
	KwContinue = Intern("continue")
	KwNamespace = Intern("namespace")
	KwExtern   = Intern("extern")
	KwIf       = Intern("if")
	KwElse     = Intern("else")
	KwLoop     = Intern("loop")
	KwWhile    = Intern("while")
	KwDo       = Intern("do")
	KwAs       = Intern("as")
	KwOr       = Intern("or")
	KwAnd      = Intern("and")
	KwNot      = Intern("not")
	KwSizeOf   = Intern("sizeof")
	KwAlloc    = Intern("alloc")
	KwWith     = Intern("with")
	KwFor      = Intern("for")
	KwOf       = Intern("of")
	KwUnsafe   = Intern("unsafe")
	KwStruct   = Intern("struct")
	KwClass    = Intern("class")
	KwLoad     = Intern("load")
)

// primitiveNames lists the builtin type names (spec.md §4.3). The checker
// resolves these names through its own table, not through tree nodes.
var primitiveNames = []ID{I8, I16, I32, I64, U8, U16, U32, U64, F32, F64, Bool, Str, Anyptr}

// PrimitiveNames returns the interned names of every builtin type.
func PrimitiveNames() []ID {
	out := make([]ID, len(primitiveNames))
	copy(out, primitiveNames)
	return out
}

var reserved = map[ID]bool{
	I8: true, I16: true, I32: true, I64: true,
	U8: true, U16: true, U32: true, U64: true,
	F32: true, F64: true, Bool: true, Str: true, Anyptr: true,
	True: true, False: true, Nullptr: true,
	KwLet: true, KwVar: true, KwStatic: true, KwFunc: true, KwPrint: true,
	KwDealloc: true, KwPass: true, KwYield: true, KwBreak: true, KwReturn: true,
	KwContinue: true, KwNamespace: true, KwExtern: true, KwIf: true, KwElse: true,
	KwLoop: true, KwWhile: true, KwDo: true, KwAs: true, KwOr: true, KwAnd: true,
	KwNot: true, KwSizeOf: true, KwAlloc: true, KwWith: true, KwFor: true,
	KwOf: true, KwUnsafe: true, KwStruct: true, KwClass: true, KwLoad: true,
}

// Reserved reports whether name can never be used as a declared identifier.
func Reserved(id ID) bool {
	return reserved[id]
}
