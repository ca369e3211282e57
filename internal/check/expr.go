package check

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
	"github.com/Brian-Magnuson/nico-sub000/internal/symtab"
	"github.com/Brian-Magnuson/nico-sub000/internal/types"
)

// checkExpr type-checks e against the current scope and returns its
// static type (spec.md §4.4 "Expression checking").
func (c *Checker) checkExpr(e ast.Expression) types.Type {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return intLiteralType(n.Suffix)
	case *ast.FloatLiteral:
		return floatLiteralType(n.Suffix)
	case *ast.StringLiteral:
		return types.Str{}
	case *ast.BoolLiteral:
		return types.Bool{}
	case *ast.NullptrLiteral:
		return types.Nullptr{}
	case *ast.IdentExpr:
		return c.checkIdent(n)
	case *ast.UnaryExpr:
		return c.checkUnary(n)
	case *ast.DerefExpr:
		return c.checkDeref(n)
	case *ast.BinaryExpr:
		return c.checkBinary(n)
	case *ast.AssignExpr:
		return c.checkAssign(n)
	case *ast.CallExpr:
		return c.checkCall(n)
	case *ast.IndexExpr:
		return c.checkIndex(n)
	case *ast.FieldExpr:
		return c.checkField(n)
	case *ast.TupleIndexExpr:
		return c.checkTupleIndex(n)
	case *ast.CastExpr:
		c.checkExpr(n.Value)
		return c.resolveAnnotation(n.Ann)
	case *ast.SizeOfExpr:
		t := c.resolveAnnotation(n.Ann)
		if !t.Sized() {
			c.Logger.Report(diag.KindSizeOfUnsized, noLoc(), "sizeof requires a sized type, found %s", t)
		}
		return types.Int{Kind: types.U64}
	case *ast.AllocExpr:
		return c.checkAlloc(n)
	case *ast.ArrayLiteral:
		return c.checkArrayLiteral(n)
	case *ast.TupleLiteral:
		elems := make([]types.Type, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = c.checkExpr(el)
		}
		return types.Tuple{Elems: elems}
	case *ast.ObjectLiteral:
		return c.checkObjectLiteral(n)
	case *ast.BlockExpr:
		return c.checkBlockExpr(n)
	case *ast.IfExpr:
		return c.checkIf(n)
	case *ast.LoopExpr:
		return c.checkLoopLike(n.Body)
	case *ast.WhileExpr:
		return c.checkWhile(n)
	case *ast.ForExpr:
		return c.checkFor(n)
	case *ast.FuncExpr:
		return c.checkFuncExpr(n)
	default:
		return types.Unit{}
	}
}

func intLiteralType(suffix string) types.Type {
	switch suffix {
	case "i8":
		return types.Int{Kind: types.I8}
	case "i16":
		return types.Int{Kind: types.I16}
	case "i64":
		return types.Int{Kind: types.I64}
	case "u8":
		return types.Int{Kind: types.U8}
	case "u16":
		return types.Int{Kind: types.U16}
	case "u32":
		return types.Int{Kind: types.U32}
	case "u64":
		return types.Int{Kind: types.U64}
	default:
		return types.Int{Kind: types.I32}
	}
}

func floatLiteralType(suffix string) types.Type {
	if suffix == "f32" {
		return types.Float{Kind: types.F32}
	}
	return types.Float{Kind: types.F64}
}

func (c *Checker) checkIdent(n *ast.IdentExpr) types.Type {
	ids := make([]symbol.ID, len(n.Parts))
	for i, p := range n.Parts {
		ids[i] = symbol.Intern(p)
	}
	found, ok := c.Tree.LookupQualified(ids)
	if !ok {
		c.Logger.Report(diag.KindUndeclaredName, noLoc(), "undeclared name %q", joinParts(n.Parts))
		return types.Unit{}
	}
	if found.Type == nil {
		c.Logger.Report(diag.KindUndeclaredName, noLoc(), "%q is not yet fully declared", joinParts(n.Parts))
		return types.Unit{}
	}
	return found.Type
}

func (c *Checker) checkUnary(n *ast.UnaryExpr) types.Type {
	operandType := c.checkExpr(n.Operand)
	switch n.Op {
	case "-":
		if !types.IsNumeric(operandType) {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "unary '-' is not defined for %s", operandType)
		}
		if it, ok := operandType.(types.Int); ok && it.Kind >= types.U8 {
			c.Logger.Report(diag.KindNegativeOnUnsignedType, noLoc(), "unary '-' on unsigned type %s", operandType)
		}
		return operandType
	case "not":
		if _, ok := operandType.(types.Bool); !ok {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "'not' requires bool, found %s", operandType)
		}
		return types.Bool{}
	case "&", "@":
		// Address{op∈{@,&}}: both forms take the address of an lvalue
		// (spec.md §3.2, §4.5 "Address @/&"). `&` is parsed but its
		// codegen form is not yet implemented by any backend (spec.md
		// §9); the checker accepts it identically to `@`.
		if !c.isLValue(n.Operand) {
			c.Logger.Report(diag.KindNotAPossibleLValue, noLoc(), "cannot take the address of this expression")
		}
		return types.Pointer{Elem: operandType}
	default:
		return types.Unit{}
	}
}

func (c *Checker) checkDeref(n *ast.DerefExpr) types.Type {
	operandType := c.checkExpr(n.Operand)
	if c.unsafeDepth == 0 {
		c.Logger.Report(diag.KindPtrDerefOutsideUnsafeBlock, noLoc(), "pointer dereference requires an unsafe block")
	}
	ptr, ok := operandType.(types.Pointer)
	if !ok {
		c.Logger.Report(diag.KindPtrDerefNonTyped, noLoc(), "cannot dereference non-pointer type %s", operandType)
		return types.Unit{}
	}
	return ptr.Elem
}

func (c *Checker) isLValue(e ast.Expression) bool {
	switch e.(type) {
	case *ast.IdentExpr, *ast.FieldExpr, *ast.IndexExpr, *ast.TupleIndexExpr, *ast.DerefExpr:
		return true
	default:
		return false
	}
}

var logicalOps = map[string]bool{"and": true, "or": true}
var comparisonOpSet = map[string]bool{"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}

func (c *Checker) checkBinary(n *ast.BinaryExpr) types.Type {
	left := c.checkExpr(n.Left)
	right := c.checkExpr(n.Right)
	switch {
	case logicalOps[n.Op]:
		if _, ok := left.(types.Bool); !ok {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "%q requires bool operands", n.Op)
		}
		if _, ok := right.(types.Bool); !ok {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "%q requires bool operands", n.Op)
		}
		return types.Bool{}
	case comparisonOpSet[n.Op]:
		if !types.Equal(left, right) && !(types.IsNumeric(left) && types.IsNumeric(right)) {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "cannot compare %s and %s", left, right)
		}
		return types.Bool{}
	default: // + - * / %
		if !types.IsNumeric(left) || !types.IsNumeric(right) {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "operator %q is not defined for %s and %s", n.Op, left, right)
			return left
		}
		if !types.Equal(left, right) {
			c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "mismatched operand types %s and %s", left, right)
		}
		return left
	}
}

func (c *Checker) checkAssign(n *ast.AssignExpr) types.Type {
	targetType := c.checkExpr(n.Target)
	valueType := c.checkExpr(n.Value)
	if !c.isLValue(n.Target) {
		c.Logger.Report(diag.KindNotAPossibleLValue, noLoc(), "left-hand side of assignment is not assignable")
	} else if ident, ok := n.Target.(*ast.IdentExpr); ok {
		ids := make([]symbol.ID, len(ident.Parts))
		for i, p := range ident.Parts {
			ids[i] = symbol.Intern(p)
		}
		if node, ok := c.Tree.LookupQualified(ids); ok && !node.Mutable {
			c.Logger.Report(diag.KindAssignToImmutable, noLoc(), "cannot assign to immutable binding %q", joinParts(ident.Parts))
		}
	}
	if !types.AssignableTo(valueType, targetType) {
		c.Logger.Report(diag.KindAssignmentTypeMismatch, noLoc(), "cannot assign %s to %s", valueType, targetType)
	}
	return types.Unit{}
}

func (c *Checker) checkCall(n *ast.CallExpr) types.Type {
	calleeType := c.checkExpr(n.Callee)
	argTypes := make([]types.Type, len(n.Args))
	for i, a := range n.Args {
		argTypes[i] = c.checkExpr(a.Value)
	}
	switch ft := calleeType.(type) {
	case types.Func:
		return ft.Return
	case types.OverloadedFunc:
		match, idx, ok := ResolveOverload(ft.Candidates, argTypes, n.Args)
		if !ok {
			if countMatches(ft.Candidates, argTypes, n.Args) == 0 {
				c.Logger.Report(diag.KindNoMatchingFunctionOverload, noLoc(), "no overload of %q matches this call", ft.Name)
			} else {
				c.Logger.Report(diag.KindMultipleMatchingFunctionOverloads, noLoc(), "call to %q is ambiguous", ft.Name)
			}
			return types.Unit{}
		}
		_ = idx
		return match.Return
	default:
		c.Logger.Report(diag.KindNotACallable, noLoc(), "%s is not callable", calleeType)
		return types.Unit{}
	}
}

func countMatches(candidates []types.Func, argTypes []types.Type, args []ast.Argument) int {
	count := 0
	for _, cand := range candidates {
		if matchCandidate(cand, argTypes, args) {
			count++
		}
	}
	return count
}

func (c *Checker) checkIndex(n *ast.IndexExpr) types.Type {
	targetType := c.checkExpr(n.Target)
	indexType := c.checkExpr(n.Index)
	if !types.IsInteger(indexType) {
		c.Logger.Report(diag.KindIndexWrongKind, noLoc(), "array index must be an integer, found %s", indexType)
	}
	switch t := targetType.(type) {
	case types.Array:
		return t.Elem
	case types.Pointer:
		return t.Elem
	default:
		c.Logger.Report(diag.KindIndexWrongKind, noLoc(), "%s cannot be indexed", targetType)
		return types.Unit{}
	}
}

func (c *Checker) checkField(n *ast.FieldExpr) types.Type {
	targetType := c.checkExpr(n.Target)
	named, ok := asNamed(targetType)
	if !ok {
		c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "%s has no field %q", targetType, n.Field)
		return types.Unit{}
	}
	for _, f := range named.Fields {
		if f.Name == n.Field {
			return f.Type
		}
	}
	c.Logger.Report(diag.KindUndeclaredName, noLoc(), "%s has no field %q", named.Name, n.Field)
	return types.Unit{}
}

func asNamed(t types.Type) (*types.Named, bool) {
	switch v := t.(type) {
	case *types.Named:
		return v, true
	case types.Reference:
		return asNamed(v.Elem)
	default:
		return nil, false
	}
}

func (c *Checker) checkTupleIndex(n *ast.TupleIndexExpr) types.Type {
	targetType := c.checkExpr(n.Target)
	tup, ok := targetType.(types.Tuple)
	if !ok || n.Index < 0 || int(n.Index) >= len(tup.Elems) {
		c.Logger.Report(diag.KindIndexOutOfBounds, noLoc(), "tuple index %d out of bounds for %s", n.Index, targetType)
		return types.Unit{}
	}
	return tup.Elems[n.Index]
}

func (c *Checker) checkAlloc(n *ast.AllocExpr) types.Type {
	t := c.resolveAnnotation(n.Ann)
	if !t.Sized() {
		c.Logger.Report(diag.KindUnsizedTypeAllocation, noLoc(), "cannot allocate unsized type %s", t)
	}
	if n.With != nil {
		withType := c.checkExpr(n.With)
		if !types.AssignableTo(withType, t) {
			c.Logger.Report(diag.KindLetTypeMismatch, noLoc(), "alloc initializer of type %s does not match %s", withType, t)
		}
	}
	return types.Pointer{Elem: t}
}

func (c *Checker) checkArrayLiteral(n *ast.ArrayLiteral) types.Type {
	if len(n.Elements) == 0 {
		return types.Array{Elem: types.Unit{}, Size: int64Ptr(0)}
	}
	elem := c.checkExpr(n.Elements[0])
	for _, e := range n.Elements[1:] {
		t := c.checkExpr(e)
		if !types.Equal(t, elem) {
			c.Logger.Report(diag.KindArrayElementTypeMismatch, noLoc(), "array element type %s does not match %s", t, elem)
		}
	}
	size := int64(len(n.Elements))
	return types.Array{Elem: elem, Size: &size}
}

func int64Ptr(n int64) *int64 { return &n }

func (c *Checker) checkObjectLiteral(n *ast.ObjectLiteral) types.Type {
	t := c.resolveAnnotation(n.Ann)
	named, ok := asNamed(t)
	if !ok {
		c.Logger.Report(diag.KindNotAType, noLoc(), "%s is not a struct/class type", t)
		return t
	}
	for _, f := range n.Fields {
		valueType := c.checkExpr(f.Value)
		var fieldType types.Type
		found := false
		for _, nf := range named.Fields {
			if nf.Name == f.Name {
				fieldType = nf.Type
				found = true
				break
			}
		}
		if !found {
			c.Logger.Report(diag.KindUndeclaredName, noLoc(), "%s has no field %q", named.Name, f.Name)
			continue
		}
		if !types.AssignableTo(valueType, fieldType) {
			c.Logger.Report(diag.KindLetTypeMismatch, noLoc(), "field %q expects %s, found %s", f.Name, fieldType, valueType)
		}
	}
	return named
}

func (c *Checker) checkBlockExpr(n *ast.BlockExpr) types.Type {
	c.Tree.Push(symbol.Invalid, symtab.LocalScope)
	defer c.Tree.Pop()
	c.declarePass(n.Body)
	var yielded types.Type = types.Unit{}
	for _, s := range n.Body {
		if y, ok := s.(*ast.YieldStatement); ok {
			yielded = c.checkExpr(y.Value)
			continue
		}
		c.checkStmt(s)
	}
	return yielded
}

func (c *Checker) checkIf(n *ast.IfExpr) types.Type {
	condType := c.checkExpr(n.Cond)
	if _, ok := condType.(types.Bool); !ok {
		c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "'if' condition must be bool, found %s", condType)
	}
	thenType := c.checkExpr(n.Then)
	if n.Else == nil {
		return types.Unit{}
	}
	elseType := c.checkExpr(n.Else)
	if !types.Equal(thenType, elseType) {
		return types.Unit{}
	}
	return thenType
}

func (c *Checker) checkLoopLike(body ast.Expression) types.Type {
	c.loopDepth++
	defer func() { c.loopDepth-- }()
	return c.checkExpr(body)
}

func (c *Checker) checkWhile(n *ast.WhileExpr) types.Type {
	condType := c.checkExpr(n.Cond)
	if _, ok := condType.(types.Bool); !ok {
		c.Logger.Report(diag.KindNoOperatorOverload, noLoc(), "loop condition must be bool, found %s", condType)
	}
	bodyType := c.checkLoopLike(n.Body)
	if _, ok := bodyType.(types.Unit); !ok {
		c.Logger.Report(diag.KindWhileLoopYieldingNonUnit, noLoc(), "while/do-while body must yield unit, found %s", bodyType)
	}
	return types.Unit{}
}

func (c *Checker) checkFor(n *ast.ForExpr) types.Type {
	c.checkExpr(n.Iterable)
	c.Tree.Push(symbol.Invalid, symtab.LocalScope)
	defer c.Tree.Pop()
	id := symbol.Intern(n.Name)
	node, _ := c.Tree.Declare(id)
	node.Type = types.Unit{} // element type inference left to the array/iterator elem type
	return c.checkLoopLike(n.Body)
}

func (c *Checker) checkFuncExpr(n *ast.FuncExpr) types.Type {
	sig := c.signatureOf(&ast.FuncStatement{Params: n.Params, ReturnAnn: n.ReturnAnn})
	c.Tree.Push(symbol.Invalid, symtab.FunctionScope)
	defer c.Tree.Pop()
	for i, p := range n.Params {
		pid := symbol.Intern(p.Name)
		node, _ := c.Tree.Declare(pid)
		node.Type = sig.Params[i].Type
		node.Mutable = true
	}
	c.funcReturns = append(c.funcReturns, sig.Return)
	defer func() { c.funcReturns = c.funcReturns[:len(c.funcReturns)-1] }()
	c.declarePass(n.Body)
	for _, s := range n.Body {
		c.checkStmt(s)
	}
	return sig
}
