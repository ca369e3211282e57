// Package types implements Nico's closed type lattice: numeric types, raw
// typed pointers, references, nullptr, arrays, tuples, unit, structs,
// function types, overloaded-function types, and named types, along with
// assignability and "sizedness" (spec.md §3.3).
//
// Grounded on original_source/include/nico/frontend/utils/type_node.h (the
// Type::* class hierarchy in the original compiler): the variant set and
// the assignability contract are carried over field-for-field, reworked
// from a C++ virtual-dispatch hierarchy into a small closed Go interface
// with a type switch, matching how gql/value_type.go models its own
// closed ValueType enum (ScalarValue / ArrayValue / StructValue, etc.)
// in this corpus.
package types

import (
	"fmt"
	"strings"

	"github.com/Brian-Magnuson/nico-sub000/internal/hash"
)

// Type is implemented by every member of the closed type lattice. The
// interface is sealed via the unexported sealed() method: only types
// defined in this package may implement it.
type Type interface {
	fmt.Stringer
	sealed()
	// Sized reports whether a value of this type has a compile-time-known
	// size, required for allocation, array element types, and by-value
	// struct fields (spec.md §3.3 "Sizedness").
	Sized() bool
}

type sealedType struct{}

func (sealedType) sealed() {}

// IntKind enumerates the fixed-width signed/unsigned integer families.
type IntKind int

const (
	I8 IntKind = iota
	I16
	I32
	I64
	U8
	U16
	U32
	U64
)

func (k IntKind) String() string {
	names := [...]string{"i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64"}
	return names[k]
}

func (k IntKind) signed() bool { return k <= I64 }

func (k IntKind) width() int {
	widths := [...]int{8, 16, 32, 64, 8, 16, 32, 64}
	return widths[k]
}

// Int is a fixed-width integer type.
type Int struct {
	sealedType
	Kind IntKind
}

func (t Int) String() string { return t.Kind.String() }
func (Int) Sized() bool      { return true }

// FloatKind enumerates the floating-point widths.
type FloatKind int

const (
	F32 FloatKind = iota
	F64
)

func (k FloatKind) String() string {
	if k == F32 {
		return "f32"
	}
	return "f64"
}

// Float is a floating-point type.
type Float struct {
	sealedType
	Kind FloatKind
}

func (t Float) String() string { return t.Kind.String() }
func (Float) Sized() bool      { return true }

// Bool is the boolean type.
type Bool struct{ sealedType }

func (Bool) String() string { return "bool" }
func (Bool) Sized() bool    { return true }

// Str is the built-in string type (spec.md §3.3 "Built-in types"). It is
// sized.
type Str struct{ sealedType }

func (Str) String() string { return "str" }
func (Str) Sized() bool    { return true }

// Unit is the zero-information type, the value of statements and
// branches that yield nothing.
type Unit struct{ sealedType }

func (Unit) String() string { return "unit" }
func (Unit) Sized() bool    { return true }

// Nullptr is the type of the `nullptr` literal, assignable to any Pointer
// type but to no other type (spec.md §3.3 "Assignability").
type Nullptr struct{ sealedType }

func (Nullptr) String() string { return "nullptr_t" }
func (Nullptr) Sized() bool    { return true }

// Anyptr is the type of an untyped raw pointer (spec.md §3.3), written
// `anyptr` in annotations.
type Anyptr struct{ sealedType }

func (Anyptr) String() string { return "anyptr" }
func (Anyptr) Sized() bool    { return true }

// Pointer is a raw typed pointer `@T`. Pointers are always sized
// regardless of whether Elem is sized (a pointer is just an address).
type Pointer struct {
	sealedType
	Elem Type
}

func (t Pointer) String() string { return "@" + t.Elem.String() }
func (Pointer) Sized() bool      { return true }

// Reference is `&T`: a non-null, non-reseatable alias to an existing
// storage location, distinct from Pointer in assignability (spec.md §3.3
// "References vs pointers").
type Reference struct {
	sealedType
	Elem Type
}

func (t Reference) String() string { return "&" + t.Elem.String() }
func (Reference) Sized() bool      { return true }

// Array is `[T; N]` when Size != nil (sized) or `[T]` when Size == nil
// (unsized, spec.md §3.3 "Sizedness": an unsized array cannot be
// allocated by value, only behind a Pointer/Reference).
type Array struct {
	sealedType
	Elem Type
	Size *int64
}

func (t Array) String() string {
	if t.Size != nil {
		return fmt.Sprintf("[%s; %d]", t.Elem.String(), *t.Size)
	}
	return "[" + t.Elem.String() + "]"
}

func (t Array) Sized() bool { return t.Size != nil && t.Elem.Sized() }

// Tuple is a fixed-arity heterogeneous product type `(T1, T2, ...)`.
type Tuple struct {
	sealedType
	Elems []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t Tuple) Sized() bool {
	for _, e := range t.Elems {
		if !e.Sized() {
			return false
		}
	}
	return true
}

// Field is one member of a Named struct/class type.
type Field struct {
	Name string
	Type Type
}

// Named is a user-declared struct or class type, identified by its
// declaration site rather than structurally (spec.md §3.3 "Nominal
// typing").
type Named struct {
	sealedType
	Name    string
	IsClass bool
	Fields  []Field
}

func (t *Named) String() string { return t.Name }
func (t *Named) Sized() bool {
	for _, f := range t.Fields {
		if !f.Type.Sized() {
			return false
		}
	}
	return true
}

// Param is one formal parameter of a Func signature: its declared name,
// used for named-argument matching during overload resolution (spec.md
// §4.5 "Argument matching"), and its resolved type.
type Param struct {
	Name string
	Type Type
}

// Func is a single function signature `(T1, T2) -> R`.
type Func struct {
	sealedType
	Params []Param
	// Required is the count of leading Params with no default argument;
	// Params[Required:] all have defaults (spec.md §4.5 "Overload
	// resolution").
	Required int
	Return   Type
}

func (t Func) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.Type.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + t.Return.String()
}

func (Func) Sized() bool { return true }

// OverloadedFunc groups every Func signature declared under one name
// (spec.md §3.3 "Overloaded-function types", §4.5).
type OverloadedFunc struct {
	sealedType
	Name        string
	Candidates  []Func
}

func (t OverloadedFunc) String() string {
	parts := make([]string, len(t.Candidates))
	for i, c := range t.Candidates {
		parts[i] = c.String()
	}
	return t.Name + "{" + strings.Join(parts, " | ") + "}"
}

func (OverloadedFunc) Sized() bool { return true }

// Equal reports structural equality, except for Named types which compare
// by declaration identity (pointer equality), matching the original
// compiler's nominal-typing rule.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case *Named:
		bv, ok := b.(*Named)
		return ok && av == bv
	case Pointer:
		bv, ok := b.(Pointer)
		return ok && Equal(av.Elem, bv.Elem)
	case Reference:
		bv, ok := b.(Reference)
		return ok && Equal(av.Elem, bv.Elem)
	case Array:
		bv, ok := b.(Array)
		if !ok || !Equal(av.Elem, bv.Elem) {
			return false
		}
		if (av.Size == nil) != (bv.Size == nil) {
			return false
		}
		return av.Size == nil || *av.Size == *bv.Size
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Func:
		bv, ok := b.(Func)
		if !ok || len(av.Params) != len(bv.Params) || av.Required != bv.Required || !Equal(av.Return, bv.Return) {
			return false
		}
		for i := range av.Params {
			if !Equal(av.Params[i].Type, bv.Params[i].Type) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// IsNumeric reports whether t is an Int or Float.
func IsNumeric(t Type) bool {
	switch t.(type) {
	case Int, Float:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is an Int.
func IsInteger(t Type) bool {
	_, ok := t.(Int)
	return ok
}

// AssignableTo reports whether a value of type from can be assigned where
// a value of type to is expected (spec.md §3.3 "Assignability" — an
// asymmetric relation, not full equality):
//
//   - identical types are always assignable;
//   - Nullptr is assignable to any Pointer; apart from that, a Pointer
//     is assignable only to an identical Pointer;
//   - an unsized Array [T] is assignable only to an identical [T];
//   - a sized Array [T; N] is assignable to the unsized [T] (decay),
//     mirroring the original compiler's array-to-slice decay rule;
//   - a Reference &T is assignable wherever T is expected (auto-deref),
//     but T is not assignable to &T (no implicit address-of).
func AssignableTo(from, to Type) bool {
	if Equal(from, to) {
		return true
	}
	if _, ok := from.(Nullptr); ok {
		if _, ok := to.(Pointer); ok {
			return true
		}
	}
	if ref, ok := from.(Reference); ok {
		if AssignableTo(ref.Elem, to) {
			return true
		}
	}
	if fa, ok := from.(Array); ok {
		if ta, ok := to.(Array); ok && ta.Size == nil && Equal(fa.Elem, ta.Elem) {
			return true
		}
	}
	return false
}

// CanonicalHash hashes t's canonical string form. A *Named type folds in
// its node identity (pointer address) rather than just its field list, so
// two distinct struct definitions with identical field layouts never
// collide on the same hash, matching the original compiler's type cache
// keying on the node pointer rather than structural content. Used by the
// checker's overload registration (paramSetHash in
// internal/check/overload.go) to hash each parameter's type.
func CanonicalHash(t Type) hash.Hash {
	if named, ok := t.(*Named); ok {
		return hash.String("struct:" + t.String()).Merge(hash.String(fmt.Sprintf("%p", named)))
	}
	return hash.String(t.String())
}
