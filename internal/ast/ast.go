// Package ast defines the expression-oriented syntax tree produced by
// internal/parser (spec.md §3.2).
//
// Grounded on gql/ast.go's ASTNode interface (a small common method set
// implemented by many concrete node structs, each carrying its own
// scanner.Position) — generalized from GQL's single expression-only tree
// into three tagged-variant families (Statement, Expression, Annotation)
// since Nico's grammar is statement-oriented at the top level, matching
// the shape in original_source/include/nico/frontend/utils/ast_node.h.
package ast

import "github.com/Brian-Magnuson/nico-sub000/internal/source"

// Node is implemented by every statement, expression, and annotation node.
type Node interface {
	Location() source.Location
}

// Statement is the tagged-variant family for top-level and block-level
// constructs (spec.md §3.2 "Statement").
type Statement interface {
	Node
	stmtNode()
}

// Expression is the tagged-variant family for value-producing constructs
// (spec.md §3.2 "Expression").
type Expression interface {
	Node
	exprNode()
}

// Annotation is the tagged-variant family for type annotations written in
// source (spec.md §3.2 "Annotation"), resolved into internal/types.Type by
// the checker.
type Annotation interface {
	Node
	annNode()
}

// Base carries the source span common to every node; embed it to satisfy
// Node. Exported so internal/parser can populate it directly.
type Base struct {
	Loc source.Location
}

func (b Base) Location() source.Location { return b.Loc }

// ---- Statements ----

// LetStatement declares an immutable binding: let name [: Annotation] = Value.
type LetStatement struct {
	Base
	Name  string
	Ann   Annotation // nil if omitted
	Value Expression
}

func (*LetStatement) stmtNode() {}

// VarStatement declares a mutable binding: var name [: Annotation] [= Value].
type VarStatement struct {
	Base
	Name  string
	Ann   Annotation
	Value Expression // nil if omitted
}

func (*VarStatement) stmtNode() {}

// StaticStatement declares a namespace-scoped static binding.
type StaticStatement struct {
	Base
	Name  string
	Ann   Annotation
	Value Expression
}

func (*StaticStatement) stmtNode() {}

// FuncParam is one formal parameter of a FuncStatement.
type FuncParam struct {
	Name    string
	Ann     Annotation
	Default Expression // nil if required
}

// FuncStatement declares a named function.
type FuncStatement struct {
	Base
	Name       string
	Params     []FuncParam
	ReturnAnn  Annotation // nil means inferred unit
	Body       []Statement
	IsExtern   bool
	ExternName string

	// OverloadIndex is the position of this declaration's own signature
	// within its name's OverloadedFunc.Candidates, filled in by the
	// checker's declare pass. Needed because every overload of a name is
	// declared before any overload's body is checked, so a body-checking
	// pass can't assume its own signature is the last candidate.
	OverloadIndex int
}

func (*FuncStatement) stmtNode() {}

// StructField is one field of a struct/class declaration.
type StructField struct {
	Name string
	Ann  Annotation
}

// StructStatement declares a struct or class type.
type StructStatement struct {
	Base
	Name     string
	IsClass  bool
	Fields   []StructField
	Methods  []*FuncStatement
}

func (*StructStatement) stmtNode() {}

// NamespaceStatement groups declarations under a dotted name.
type NamespaceStatement struct {
	Base
	Name string
	Body []Statement
}

func (*NamespaceStatement) stmtNode() {}

// LoadStatement pulls in another compilation unit: load "path".
type LoadStatement struct {
	Base
	Path string
}

func (*LoadStatement) stmtNode() {}

// ExprStatement wraps an expression used in statement position.
type ExprStatement struct {
	Base
	Value Expression
}

func (*ExprStatement) stmtNode() {}

// PrintStatement is the built-in print statement.
type PrintStatement struct {
	Base
	Value Expression
}

func (*PrintStatement) stmtNode() {}

// PassStatement is a no-op placeholder statement.
type PassStatement struct {
	Base
}

func (*PassStatement) stmtNode() {}

// BreakStatement exits the nearest enclosing loop.
type BreakStatement struct {
	Base
}

func (*BreakStatement) stmtNode() {}

// ContinueStatement restarts the nearest enclosing loop.
type ContinueStatement struct {
	Base
}

func (*ContinueStatement) stmtNode() {}

// ReturnStatement exits the nearest enclosing function.
type ReturnStatement struct {
	Base
	Value Expression // nil for a bare return
}

func (*ReturnStatement) stmtNode() {}

// YieldStatement produces the value of the enclosing block expression.
type YieldStatement struct {
	Base
	Value Expression
}

func (*YieldStatement) stmtNode() {}

// DeallocStatement frees a raw pointer: dealloc expr.
type DeallocStatement struct {
	Base
	Target Expression
}

func (*DeallocStatement) stmtNode() {}

// UnsafeStatement marks a block as permitting pointer dereference/dealloc.
type UnsafeStatement struct {
	Base
	Body []Statement
}

func (*UnsafeStatement) stmtNode() {}

// ---- Expressions ----

// IdentExpr references a (possibly dotted) name.
type IdentExpr struct {
	Base
	Parts []string
}

func (*IdentExpr) exprNode() {}

// IntLiteral is an integer literal expression.
type IntLiteral struct {
	Base
	Value  int64
	Suffix string // "" for default-width
}

func (*IntLiteral) exprNode() {}

// FloatLiteral is a floating-point literal expression.
type FloatLiteral struct {
	Base
	Value  float64
	Suffix string
}

func (*FloatLiteral) exprNode() {}

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) exprNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Base
	Value bool
}

func (*BoolLiteral) exprNode() {}

// NullptrLiteral is the `nullptr` constant.
type NullptrLiteral struct {
	Base
}

func (*NullptrLiteral) exprNode() {}

// UnaryExpr is a prefix operator applied to an operand: -x, not x, or the
// address-of forms &x/@x (spec.md §3.2 "Address{op∈{@,&}}").
type UnaryExpr struct {
	Base
	Op      string
	Operand Expression
}

func (*UnaryExpr) exprNode() {}

// DerefExpr is the pointer-dereference prefix operator `^x` (spec.md §3.2
// "Deref"), kept distinct from UnaryExpr since its grammar position and
// checking rules (requires a typed pointer, gated by unsafe-context) are
// its own.
type DerefExpr struct {
	Base
	Operand Expression
}

func (*DerefExpr) exprNode() {}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Base
	Op    string
	Left  Expression
	Right Expression
}

func (*BinaryExpr) exprNode() {}

// AssignExpr assigns Value to Target, having already desugared any
// compound-assignment operator (spec.md §4.2 "Compound assignment
// desugaring") into an equivalent BinaryExpr on Value.
type AssignExpr struct {
	Base
	Target Expression
	Value  Expression
}

func (*AssignExpr) exprNode() {}

// Argument is one call argument, named or positional.
type Argument struct {
	Name  string // "" if positional
	Value Expression
}

// CallExpr invokes Callee with Args.
type CallExpr struct {
	Base
	Callee Expression
	Args   []Argument
}

func (*CallExpr) exprNode() {}

// IndexExpr indexes into Target with Index.
type IndexExpr struct {
	Base
	Target Expression
	Index  Expression
}

func (*IndexExpr) exprNode() {}

// FieldExpr accesses a named member of Target: target.field.
type FieldExpr struct {
	Base
	Target Expression
	Field  string
}

func (*FieldExpr) exprNode() {}

// TupleIndexExpr accesses a positional tuple member: target.0.
type TupleIndexExpr struct {
	Base
	Target Expression
	Index  int64
}

func (*TupleIndexExpr) exprNode() {}

// CastExpr is `value as Type`.
type CastExpr struct {
	Base
	Value Expression
	Ann   Annotation
}

func (*CastExpr) exprNode() {}

// SizeOfExpr is `sizeof(Type)`.
type SizeOfExpr struct {
	Base
	Ann Annotation
}

func (*SizeOfExpr) exprNode() {}

// AllocExpr is `alloc Type` or `alloc Type with initExpr`.
type AllocExpr struct {
	Base
	Ann  Annotation
	With Expression // nil if omitted
}

func (*AllocExpr) exprNode() {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Base
	Elements []Expression
}

func (*ArrayLiteral) exprNode() {}

// TupleLiteral is `(e1, e2, ...)`; `()` gives an empty TupleLiteral and
// `(e,)` a one-element one.
type TupleLiteral struct {
	Base
	Elements []Expression
}

func (*TupleLiteral) exprNode() {}

// ObjectField is one field initializer in an ObjectLiteral.
type ObjectField struct {
	Name  string
	Value Expression
}

// ObjectLiteral constructs a struct/class value: Type{field: value, ...}.
type ObjectLiteral struct {
	Base
	Ann    Annotation
	Fields []ObjectField
}

func (*ObjectLiteral) exprNode() {}

// BlockExpr is a sequence of statements used in expression position,
// whose value is the last `yield`ed value (or unit).
type BlockExpr struct {
	Base
	Body []Statement
}

func (*BlockExpr) exprNode() {}

// IfExpr is `if cond: thenBranch [else: elseBranch]`, usable as an
// expression when both branches yield a value.
type IfExpr struct {
	Base
	Cond   Expression
	Then   Expression
	Else   Expression // nil if omitted
}

func (*IfExpr) exprNode() {}

// LoopExpr is the unconditional `loop:` form.
type LoopExpr struct {
	Base
	Body Expression
}

func (*LoopExpr) exprNode() {}

// WhileExpr is `while cond: body` or `do: body while cond`.
type WhileExpr struct {
	Base
	Cond     Expression
	Body     Expression
	IsDoFirst bool
}

func (*WhileExpr) exprNode() {}

// ForExpr is `for name of iterable: body`.
type ForExpr struct {
	Base
	Name     string
	Iterable Expression
	Body     Expression
}

func (*ForExpr) exprNode() {}

// FuncExpr is an anonymous function literal.
type FuncExpr struct {
	Base
	Params    []FuncParam
	ReturnAnn Annotation
	Body      []Statement
}

func (*FuncExpr) exprNode() {}

// ---- Annotations ----

// NamedAnnotation references a type by (possibly dotted) name, e.g. i32,
// MyStruct, my.namespace.Thing.
type NamedAnnotation struct {
	Base
	Parts []string
}

func (*NamedAnnotation) annNode() {}

// PointerAnnotation is `@T`, a raw typed pointer.
type PointerAnnotation struct {
	Base
	Elem Annotation
}

func (*PointerAnnotation) annNode() {}

// RefAnnotation is `&T`, a reference.
type RefAnnotation struct {
	Base
	Elem Annotation
}

func (*RefAnnotation) annNode() {}

// ArrayAnnotation is `[T; N]` (sized, N >= 0) or `[T]` (unsized, N == nil).
type ArrayAnnotation struct {
	Base
	Elem Annotation
	Size *int64
}

func (*ArrayAnnotation) annNode() {}

// TupleAnnotation is `(T1, T2, ...)`.
type TupleAnnotation struct {
	Base
	Elems []Annotation
}

func (*TupleAnnotation) annNode() {}

// FuncAnnotation is `(T1, T2) -> R`.
type FuncAnnotation struct {
	Base
	Params []Annotation
	Return Annotation
}

func (*FuncAnnotation) annNode() {}
