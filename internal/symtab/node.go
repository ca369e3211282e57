// Package symtab implements the symbol tree: the scope-nested structure
// that backs name declaration and multi-part name resolution (spec.md
// §3.4, §4.3).
//
// Grounded on original_source/include/nico/frontend/utils/symbol_node.h
// (the Node::* class hierarchy) and symbol_tree.h (the SymbolTree class)
// from the original compiler: the node kinds and the tree's lookup
// contract are carried over directly, reworked from a C++ pointer-owning
// tree into Go structs linked by plain pointers with a symbol.ID key,
// following the interning style already established in internal/symbol
// (itself adapted from gql/symbol).
package symtab

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
	"github.com/Brian-Magnuson/nico-sub000/internal/types"
)

// ScopeKind classifies what a Node's children are allowed to be and how
// lookup traverses through it (spec.md §3.4 "Scope kinds").
type ScopeKind int

const (
	// NoScope marks a leaf declaration (a variable, parameter, or field)
	// that introduces no scope of its own.
	NoScope ScopeKind = iota
	// GlobalScope is the single root scope of a compilation.
	GlobalScope
	// NamespaceScope holds declarations under a `namespace` block.
	NamespaceScope
	// StructScope holds the fields and methods of a struct/class.
	StructScope
	// FunctionScope holds a function's parameters and local declarations.
	FunctionScope
	// LocalScope is a nested block scope (if/loop/while bodies, etc.).
	LocalScope
)

// Node is one entry in the symbol tree: a declared name plus whatever
// scope it introduces for its children, if any.
type Node struct {
	ID     symbol.ID
	Kind   ScopeKind
	Parent *Node
	// Children are looked up by the declared (unqualified) name's
	// symbol.ID; a name with multiple overloads still has one Node here,
	// whose Type is an OverloadedFunc (spec.md §3.4 "Overload groups").
	Children map[symbol.ID]*Node

	// Type is set once the node's declaration has been checked: the
	// binding's type for variables/parameters, the signature (or
	// OverloadedFunc) for functions, and the struct type for struct
	// scopes.
	Type types.Type

	// Mutable marks `var`/parameter bindings vs. `let`/`static` ones
	// (spec.md §3.3 "Assign to immutable").
	Mutable bool

	// IsReserved marks built-in primitive/keyword names that may never be
	// redeclared (spec.md §4.3 "Reserved scope").
	IsReserved bool
}

// NewNode creates a detached Node under no parent; callers attach it via
// Tree.Declare.
func NewNode(id symbol.ID, kind ScopeKind) *Node {
	return &Node{ID: id, Kind: kind, Children: make(map[symbol.ID]*Node)}
}

// IsScope reports whether this node introduces a scope of its own
// (namespaces, structs, functions, and local blocks do; plain variable
// and field nodes do not).
func (n *Node) IsScope() bool { return n.Kind != NoScope }
