package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
	"github.com/Brian-Magnuson/nico-sub000/internal/symtab"
)

func TestDeclareAndLookup(t *testing.T) {
	tree := symtab.NewTree()
	x := symbol.Intern("x")
	_, ok := tree.Declare(x)
	assert.True(t, ok)
	_, ok = tree.Declare(x)
	assert.False(t, ok, "redeclaration in the same scope must fail")

	found, ok := tree.Lookup(x)
	assert.True(t, ok)
	assert.Equal(t, x, found.ID)
}

func TestUpwardLookupAcrossScopes(t *testing.T) {
	tree := symtab.NewTree()
	outer := symbol.Intern("outer_var")
	tree.Declare(outer)

	fn := symbol.Intern("my_func")
	tree.Push(fn, symtab.FunctionScope)
	defer tree.Pop()

	found, ok := tree.Lookup(outer)
	assert.True(t, ok)
	assert.Equal(t, outer, found.ID)
}

func TestQualifiedLookupIsDownwardAfterFirstPart(t *testing.T) {
	tree := symtab.NewTree()
	ns := symbol.Intern("geo")
	tree.Push(ns, symtab.NamespaceScope)
	inner := symbol.Intern("Point")
	tree.Declare(inner)
	tree.Pop()

	found, ok := tree.LookupQualified([]symbol.ID{ns, inner})
	assert.True(t, ok)
	assert.Equal(t, inner, found.ID)

	_, ok = tree.LookupQualified([]symbol.ID{ns, symbol.Intern("NoSuchThing")})
	assert.False(t, ok)
}

func TestQualifiedLookupBacktracksPastFailedDownwardMatch(t *testing.T) {
	tree := symtab.NewTree()
	geo := symbol.Intern("geo")
	point := symbol.Intern("Point")

	// Outer namespace "geo" with a "Point" child, declared at global scope.
	tree.Push(geo, symtab.NamespaceScope)
	tree.Declare(point)
	tree.Pop()

	// A nearer "geo" leaf (no children) shadows the namespace from within
	// a function scope — its downward match for "Point" must fail, and
	// resolution must resume the upward search rather than give up there.
	fn := symbol.Intern("f")
	tree.Push(fn, symtab.FunctionScope)
	tree.Declare(geo)
	defer tree.Pop()

	found, ok := tree.LookupQualified([]symbol.ID{geo, point})
	assert.True(t, ok, "must backtrack past the nearer geo leaf to the outer geo namespace")
	assert.Equal(t, point, found.ID)
}

func TestInScopeKindStopsAtFunctionBoundary(t *testing.T) {
	tree := symtab.NewTree()
	loopSym := symbol.Intern("__loop")
	tree.Push(loopSym, symtab.LocalScope)
	assert.True(t, tree.InScopeKind(symtab.LocalScope))
	tree.Pop()

	fn := symbol.Intern("f")
	tree.Push(fn, symtab.FunctionScope)
	assert.False(t, tree.InScopeKind(symtab.LocalScope), "a loop scope outside this function must not leak in")
	tree.Pop()
}

func TestEnclosingFunction(t *testing.T) {
	tree := symtab.NewTree()
	fn := symbol.Intern("f")
	node := tree.Push(fn, symtab.FunctionScope)
	body := symbol.Intern("__body")
	tree.Push(body, symtab.LocalScope)

	found, ok := tree.EnclosingFunction()
	assert.True(t, ok)
	assert.Equal(t, node, found)
}
