package symtab

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
)

// Tree is the whole symbol tree for one compilation, rooted at Global.
// It is threaded explicitly through the checker rather than held in a
// package-level variable (spec.md §9 "Global mutable state").
type Tree struct {
	Global  *Node
	current *Node
}

// NewTree creates a Tree with an empty global scope.
func NewTree() *Tree {
	root := NewNode(symbol.Invalid, GlobalScope)
	return &Tree{Global: root, current: root}
}

// Current returns the scope currently being declared/resolved into.
func (t *Tree) Current() *Node { return t.current }

// Push enters the child scope keyed by id under the current node and
// makes it current, creating the child if it does not exist yet. An
// existing child (a reopened namespace, or the node a struct name was
// declared as) is re-entered with its Type and children kept;
// symbol.Invalid always gets a fresh anonymous scope. The caller is
// responsible for calling Pop when the scope ends.
func (t *Tree) Push(id symbol.ID, kind ScopeKind) *Node {
	n, ok := t.current.Children[id]
	if !ok || id == symbol.Invalid {
		n = NewNode(id, kind)
		n.Parent = t.current
		t.current.Children[id] = n
	}
	n.Kind = kind
	t.current = n
	return n
}

// Pop returns to the parent of the current scope.
func (t *Tree) Pop() {
	if t.current.Parent != nil {
		t.current = t.current.Parent
	}
}

// Declare adds a leaf (non-scope) node for id as a child of the current
// scope. It returns false if id is already declared directly in the
// current scope (spec.md §4.3 "Redeclaration").
func (t *Tree) Declare(id symbol.ID) (*Node, bool) {
	if _, exists := t.current.Children[id]; exists {
		return nil, false
	}
	n := NewNode(id, NoScope)
	n.Parent = t.current
	t.current.Children[id] = n
	return n, true
}

// Lookup resolves a single-part name starting at the current scope and
// walking upward through enclosing scopes to Global (spec.md §4.3
// "Upward resolution"). It does not look inside sibling or child scopes.
func (t *Tree) Lookup(id symbol.ID) (*Node, bool) {
	for scope := t.current; scope != nil; scope = scope.Parent {
		if n, ok := scope.Children[id]; ok {
			return n, true
		}
	}
	return nil, false
}

// LookupQualified resolves a multi-part dotted name (spec.md §4.3
// "Multi-part name resolution"): starting from the current scope, search
// upward for a scope/entry whose name matches parts[0], then try to match
// parts[1:] strictly downward through its children. If that downward match
// fails, resolution resumes the upward search at the ancestor above the
// candidate just tried, rather than failing outright — a nearer p1
// candidate whose subtree doesn't contain the rest of the name must not
// shadow a further-out p1 candidate that does. Failure is only reported
// once every enclosing scope up to Global has been tried.
func (t *Tree) LookupQualified(parts []symbol.ID) (*Node, bool) {
	if len(parts) == 0 {
		return nil, false
	}
	for scope := t.current; scope != nil; scope = scope.Parent {
		cand, ok := scope.Children[parts[0]]
		if !ok {
			continue
		}
		if node, ok := lookupDownward(cand, parts[1:]); ok {
			return node, true
		}
	}
	return nil, false
}

// lookupDownward resolves parts as a chain of child lookups starting at
// node, failing as soon as any part is missing.
func lookupDownward(node *Node, parts []symbol.ID) (*Node, bool) {
	for _, part := range parts {
		child, ok := node.Children[part]
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// InScopeKind reports whether the current scope, or an enclosing scope
// reached before a FunctionScope, NamespaceScope or GlobalScope boundary,
// is of the given kind; a boundary scope itself counts when it is of that
// kind (spec.md §4.5 "Scope-kind restrictions"). The checker tracks
// break/continue/return placement with its own counters, not with this.
func (t *Tree) InScopeKind(kind ScopeKind) bool {
	for scope := t.current; scope != nil; scope = scope.Parent {
		if scope.Kind == kind {
			return true
		}
		if scope.Kind == FunctionScope || scope.Kind == NamespaceScope || scope.Kind == GlobalScope {
			return false
		}
	}
	return false
}

// EnclosingFunction returns the nearest enclosing FunctionScope node, if
// any (spec.md §4.5).
func (t *Tree) EnclosingFunction() (*Node, bool) {
	for scope := t.current; scope != nil; scope = scope.Parent {
		if scope.Kind == FunctionScope {
			return scope, true
		}
	}
	return nil, false
}
