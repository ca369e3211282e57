package check

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
	"github.com/Brian-Magnuson/nico-sub000/internal/symtab"
	"github.com/Brian-Magnuson/nico-sub000/internal/types"
)

// Checker runs the two-phase check described in spec.md §4.4: a global
// pass that declares every top-level name (so forward references within
// a compilation unit resolve) before a second pass type-checks statement
// and expression bodies against the now-complete symbol tree.
//
// Grounded on original_source/src/frontend/components/{global_checker.cpp,
// local_checker.cpp}: the original splits exactly this way (a
// declaration-collecting GlobalChecker, then a body-walking LocalChecker
// sharing one SymbolTree); the split is kept, renamed to Go method
// receivers on one Checker rather than two classes, since both phases
// share all their helper logic (annotation resolution, diagnostics).
type Checker struct {
	Tree   *symtab.Tree
	Logger *diag.Logger

	// loopDepth / funcReturns track the innermost enclosing loop/function
	// for break/continue/return/yield validation (spec.md §4.5
	// "Scope-kind restrictions").
	loopDepth   int
	funcReturns []types.Type
	unsafeDepth int
}

// NewChecker creates a Checker over a fresh symbol tree.
func NewChecker(logger *diag.Logger) *Checker {
	return &Checker{Tree: symtab.NewTree(), Logger: logger}
}

// CheckProgram runs both phases over a full statement list.
func (c *Checker) CheckProgram(stmts []ast.Statement) {
	c.declarePass(stmts)
	for _, s := range stmts {
		c.checkStmt(s)
	}
}

// declarePass recursively registers every declaration in stmts into the
// current scope, without checking initializer expressions, so that later
// statements (and the body pass) can reference names declared afterward
// in source order within the same scope (spec.md §4.3 "Forward
// reference").
func (c *Checker) declarePass(stmts []ast.Statement) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.FuncStatement:
			c.declareFunc(n)
		case *ast.StructStatement:
			c.declareStruct(n)
		case *ast.NamespaceStatement:
			id := symbol.Intern(n.Name)
			c.Tree.Push(id, symtab.NamespaceScope)
			c.declarePass(n.Body)
			c.Tree.Pop()
		case *ast.LetStatement:
			c.declareBinding(n.Name, false)
		case *ast.VarStatement:
			c.declareBinding(n.Name, true)
		case *ast.StaticStatement:
			c.declareBinding(n.Name, true)
		}
	}
}

func (c *Checker) declareBinding(name string, mutable bool) {
	id := symbol.Intern(name)
	if symbol.Reserved(id) {
		c.Logger.Report(diag.KindNameReserved, noLoc(), "%q is a reserved name", name)
		return
	}
	node, ok := c.Tree.Declare(id)
	if !ok {
		c.Logger.Report(diag.KindNameAlreadyExists, noLoc(), "%q is already declared in this scope", name)
		return
	}
	node.Mutable = mutable
}

// declareFunc registers n's signature as one more candidate of n.Name's
// OverloadedFunc, and tags n itself with the index of the candidate it
// produced (n.OverloadIndex) so checkFunc can later look up n's own
// signature instead of assuming it was declared last (spec.md §4.5
// "Overload resolution" requires each declaration to type-check its body
// against its own parameter/return types, not another overload's).
func (c *Checker) declareFunc(n *ast.FuncStatement) {
	id := symbol.Intern(n.Name)
	sig := c.signatureOf(n)
	existing, found := c.Tree.Current().Children[id]
	if !found {
		node, _ := c.Tree.Declare(id)
		node.Type = types.OverloadedFunc{Name: n.Name, Candidates: []types.Func{sig}}
		n.OverloadIndex = 0
		return
	}
	overloaded, ok := existing.Type.(types.OverloadedFunc)
	if !ok {
		c.Logger.Report(diag.KindFunctionOverloadConflict, noLoc(), "%q is already declared as a non-function", n.Name)
		return
	}
	if earlier, ok := registerOverload(overloaded.Candidates, sig); !ok {
		c.Logger.Report(diag.KindFunctionOverloadConflict, noLoc(), "%q's overload conflicts with the earlier declaration %s", n.Name, overloaded.Candidates[earlier])
		return
	}
	n.OverloadIndex = len(overloaded.Candidates)
	overloaded.Candidates = append(overloaded.Candidates, sig)
	existing.Type = overloaded
}

func (c *Checker) signatureOf(n *ast.FuncStatement) types.Func {
	params := make([]types.Param, len(n.Params))
	required := len(n.Params)
	for i, p := range n.Params {
		params[i] = types.Param{Name: p.Name, Type: c.resolveAnnotation(p.Ann)}
		if p.Default != nil && required == len(n.Params) {
			required = i
		}
	}
	var ret types.Type = types.Unit{}
	if n.ReturnAnn != nil {
		ret = c.resolveAnnotation(n.ReturnAnn)
	}
	return types.Func{Params: params, Required: required, Return: ret}
}

func (c *Checker) declareStruct(n *ast.StructStatement) {
	id := symbol.Intern(n.Name)
	named := &types.Named{Name: n.Name, IsClass: n.IsClass}
	node, ok := c.Tree.Declare(id)
	if !ok {
		c.Logger.Report(diag.KindNameAlreadyExists, noLoc(), "%q is already declared in this scope", n.Name)
		return
	}
	node.Type = named
	c.Tree.Push(id, symtab.StructScope)
	for _, f := range n.Fields {
		fieldID := symbol.Intern(f.Name)
		fieldNode, ok := c.Tree.Declare(fieldID)
		if !ok {
			c.Logger.Report(diag.KindNameAlreadyExists, noLoc(), "field %q is already declared", f.Name)
			continue
		}
		ft := c.resolveAnnotation(f.Ann)
		fieldNode.Type = ft
		named.Fields = append(named.Fields, types.Field{Name: f.Name, Type: ft})
	}
	for _, m := range n.Methods {
		c.declareFunc(m)
	}
	c.Tree.Pop()
}

// resolveAnnotation turns a parsed ast.Annotation into a types.Type,
// looking up Named types through the symbol tree (spec.md §4.4
// "Annotation resolution").
func (c *Checker) resolveAnnotation(a ast.Annotation) types.Type {
	switch n := a.(type) {
	case nil:
		return types.Unit{}
	case *ast.NamedAnnotation:
		return c.resolveNamedAnnotation(n)
	case *ast.PointerAnnotation:
		return types.Pointer{Elem: c.resolveAnnotation(n.Elem)}
	case *ast.RefAnnotation:
		return types.Reference{Elem: c.resolveAnnotation(n.Elem)}
	case *ast.ArrayAnnotation:
		return types.Array{Elem: c.resolveAnnotation(n.Elem), Size: n.Size}
	case *ast.TupleAnnotation:
		elems := make([]types.Type, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = c.resolveAnnotation(e)
		}
		return types.Tuple{Elems: elems}
	case *ast.FuncAnnotation:
		params := make([]types.Param, len(n.Params))
		for i, p := range n.Params {
			params[i] = types.Param{Type: c.resolveAnnotation(p)}
		}
		return types.Func{Params: params, Required: len(params), Return: c.resolveAnnotation(n.Return)}
	default:
		return types.Unit{}
	}
}

var primitiveAnnotations = map[string]types.Type{
	"i8": types.Int{Kind: types.I8}, "i16": types.Int{Kind: types.I16},
	"i32": types.Int{Kind: types.I32}, "i64": types.Int{Kind: types.I64},
	"u8": types.Int{Kind: types.U8}, "u16": types.Int{Kind: types.U16},
	"u32": types.Int{Kind: types.U32}, "u64": types.Int{Kind: types.U64},
	"f32": types.Float{Kind: types.F32}, "f64": types.Float{Kind: types.F64},
	"bool": types.Bool{}, "str": types.Str{}, "unit": types.Unit{},
	"anyptr": types.Anyptr{},
}

func (c *Checker) resolveNamedAnnotation(n *ast.NamedAnnotation) types.Type {
	if len(n.Parts) == 1 {
		if t, ok := primitiveAnnotations[n.Parts[0]]; ok {
			return t
		}
	}
	ids := make([]symbol.ID, len(n.Parts))
	for i, p := range n.Parts {
		ids[i] = symbol.Intern(p)
	}
	node, ok := c.Tree.LookupQualified(ids)
	if !ok {
		c.Logger.Report(diag.KindUndeclaredName, noLoc(), "undeclared type %q", joinParts(n.Parts))
		return types.Unit{}
	}
	if node.Type == nil {
		c.Logger.Report(diag.KindNotAType, noLoc(), "%q does not name a type", joinParts(n.Parts))
		return types.Unit{}
	}
	return node.Type
}

func joinParts(parts []string) string {
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out
}

// noLoc is used at call sites not anchored to one specific AST node (a
// whole declaration rather than a single token); diagnostics still carry
// a Kind and Message even with a zero-value Location.
func noLoc() source.Location { return source.Location{} }
