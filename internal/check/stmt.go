package check

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
	"github.com/Brian-Magnuson/nico-sub000/internal/symtab"
	"github.com/Brian-Magnuson/nico-sub000/internal/types"
)

// checkStmt type-checks a single statement, assuming declarePass has
// already registered every name the statement could forward-reference
// (spec.md §4.4 "Statement checking").
func (c *Checker) checkStmt(s ast.Statement) {
	switch n := s.(type) {
	case *ast.LetStatement:
		c.checkLet(n)
	case *ast.VarStatement:
		c.checkVar(n)
	case *ast.StaticStatement:
		c.checkStatic(n)
	case *ast.FuncStatement:
		c.checkFunc(n)
	case *ast.StructStatement:
		c.checkStruct(n)
	case *ast.NamespaceStatement:
		c.checkNamespace(n)
	case *ast.LoadStatement:
		// Resolving the loaded module's own declarations is the
		// frontend pipeline's job (internal/frontend); by the time a
		// checker sees a LoadStatement the referenced unit's top-level
		// names are already merged into the global scope.
	case *ast.ExprStatement:
		c.checkExpr(n.Value)
	case *ast.PrintStatement:
		c.checkExpr(n.Value)
	case *ast.PassStatement:
		// no-op
	case *ast.BreakStatement:
		if c.loopDepth == 0 {
			c.Logger.Report(diag.KindBreakOutsideLoop, noLoc(), "'break' outside a loop")
		}
	case *ast.ContinueStatement:
		if c.loopDepth == 0 {
			c.Logger.Report(diag.KindContinueOutsideLoop, noLoc(), "'continue' outside a loop")
		}
	case *ast.ReturnStatement:
		c.checkReturn(n)
	case *ast.YieldStatement:
		// checkBlockExpr handles the yields directly in a block
		// expression's body. A yield that reaches here is reported when it
		// is outside every function; inside a function body it is accepted
		// and its value is checked, but not against the return type.
		if len(c.funcReturns) == 0 {
			c.Logger.Report(diag.KindYieldOutsideLocalScope, noLoc(), "'yield' outside a block expression")
		}
		c.checkExpr(n.Value)
	case *ast.DeallocStatement:
		c.checkDealloc(n)
	case *ast.UnsafeStatement:
		c.unsafeDepth++
		c.Tree.Push(symbol.Invalid, symtab.LocalScope)
		for _, inner := range n.Body {
			c.checkStmt(inner)
		}
		c.Tree.Pop()
		c.unsafeDepth--
	}
}

func (c *Checker) checkLet(n *ast.LetStatement) {
	valueType := c.checkExpr(n.Value)
	declared := valueType
	if n.Ann != nil {
		declared = c.resolveAnnotation(n.Ann)
		if !types.AssignableTo(valueType, declared) {
			c.Logger.Report(diag.KindLetTypeMismatch, noLoc(), "cannot initialize %q of type %s with %s", n.Name, declared, valueType)
		}
	}
	c.setDeclaredType(n.Name, declared, false)
}

func (c *Checker) checkVar(n *ast.VarStatement) {
	var declared types.Type = types.Unit{}
	if n.Ann != nil {
		declared = c.resolveAnnotation(n.Ann)
	}
	if n.Value != nil {
		valueType := c.checkExpr(n.Value)
		if n.Ann == nil {
			declared = valueType
		} else if !types.AssignableTo(valueType, declared) {
			c.Logger.Report(diag.KindLetTypeMismatch, noLoc(), "cannot initialize %q of type %s with %s", n.Name, declared, valueType)
		}
	}
	c.setDeclaredType(n.Name, declared, true)
}

func (c *Checker) checkStatic(n *ast.StaticStatement) {
	valueType := c.checkExpr(n.Value)
	declared := valueType
	if n.Ann != nil {
		declared = c.resolveAnnotation(n.Ann)
		if !types.AssignableTo(valueType, declared) {
			c.Logger.Report(diag.KindLetTypeMismatch, noLoc(), "cannot initialize %q of type %s with %s", n.Name, declared, valueType)
		}
	}
	c.setDeclaredType(n.Name, declared, true)
}

// setDeclaredType fills in the Type of a binding that declarePass
// already created as a bare leaf node.
func (c *Checker) setDeclaredType(name string, t types.Type, mutable bool) {
	id := symbol.Intern(name)
	node, ok := c.Tree.Current().Children[id]
	if !ok {
		return // declaration itself failed in declarePass; already reported
	}
	node.Type = t
	node.Mutable = mutable
}

func (c *Checker) checkFunc(n *ast.FuncStatement) {
	id := symbol.Intern(n.Name)
	node, ok := c.Tree.Current().Children[id]
	if !ok {
		return
	}
	overloaded, ok := node.Type.(types.OverloadedFunc)
	if !ok {
		return
	}
	if n.OverloadIndex < 0 || n.OverloadIndex >= len(overloaded.Candidates) {
		return
	}
	sig := overloaded.Candidates[n.OverloadIndex]
	if n.IsExtern {
		return
	}
	// An anonymous scope: the node under id keeps the OverloadedFunc that
	// later calls and the other overloads' checkFunc still look up.
	c.Tree.Push(symbol.Invalid, symtab.FunctionScope)
	defer c.Tree.Pop()
	for i, p := range n.Params {
		pid := symbol.Intern(p.Name)
		pnode, ok := c.Tree.Declare(pid)
		if !ok {
			c.Logger.Report(diag.KindDuplicateParameterName, noLoc(), "duplicate parameter name %q", p.Name)
			continue
		}
		pnode.Type = sig.Params[i].Type
		pnode.Mutable = true
		if p.Default != nil {
			defType := c.checkExpr(p.Default)
			if !types.AssignableTo(defType, sig.Params[i].Type) {
				c.Logger.Report(diag.KindDefaultArgTypeMismatch, noLoc(), "default value for %q has type %s, expected %s", p.Name, defType, sig.Params[i].Type)
			}
		}
	}
	c.funcReturns = append(c.funcReturns, sig.Return)
	defer func() { c.funcReturns = c.funcReturns[:len(c.funcReturns)-1] }()
	c.declarePass(n.Body)
	for _, s := range n.Body {
		c.checkStmt(s)
	}
}

func (c *Checker) checkReturn(n *ast.ReturnStatement) {
	if len(c.funcReturns) == 0 {
		c.Logger.Report(diag.KindReturnOutsideFunction, noLoc(), "'return' outside a function")
		return
	}
	expected := c.funcReturns[len(c.funcReturns)-1]
	var actual types.Type = types.Unit{}
	if n.Value != nil {
		actual = c.checkExpr(n.Value)
	}
	if !types.AssignableTo(actual, expected) {
		c.Logger.Report(diag.KindFunctionReturnTypeMismatch, noLoc(), "returned %s, expected %s", actual, expected)
	}
}

func (c *Checker) checkStruct(n *ast.StructStatement) {
	id := symbol.Intern(n.Name)
	if _, ok := c.Tree.Current().Children[id]; !ok {
		return
	}
	c.Tree.Push(id, symtab.StructScope)
	defer c.Tree.Pop()
	for _, m := range n.Methods {
		c.checkFunc(m)
	}
}

func (c *Checker) checkNamespace(n *ast.NamespaceStatement) {
	id := symbol.Intern(n.Name)
	c.Tree.Push(id, symtab.NamespaceScope)
	defer c.Tree.Pop()
	for _, s := range n.Body {
		c.checkStmt(s)
	}
}

func (c *Checker) checkDealloc(n *ast.DeallocStatement) {
	if c.unsafeDepth == 0 {
		c.Logger.Report(diag.KindDeallocOutsideUnsafeBlock, noLoc(), "'dealloc' requires an unsafe block")
	}
	targetType := c.checkExpr(n.Target)
	if _, ok := targetType.(types.Nullptr); ok {
		c.Logger.Report(diag.KindDeallocNullptr, noLoc(), "cannot dealloc a nullptr literal")
		return
	}
	if _, ok := targetType.(types.Pointer); !ok {
		c.Logger.Report(diag.KindDeallocNonRawPointer, noLoc(), "'dealloc' requires a raw pointer, found %s", targetType)
	}
}
