// Package check implements the type checker: global declaration
// collection, expression/statement type-checking, and overload
// resolution (spec.md §4.4, §4.5).
//
// Grounded on gql/func.go's FormalArg/FuncCallback model and
// gql/ast_util.go's addFuncall, which matches a call's positional and
// named arguments against one candidate's formal argument list using a
// "remaining slots" bitmap — kept here almost unchanged, generalized
// from GQL's single-candidate matching into Nico's "exactly one
// candidate must match" resolution rule (spec.md §4.5 "Overload
// resolution").
package check

import (
	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/hash"
	"github.com/Brian-Magnuson/nico-sub000/internal/types"
)

// matchCandidate reports whether a call's arguments can bind to cand's
// formal parameters: every required parameter must be filled exactly
// once, either positionally or by name, no name may be used twice or for
// a parameter already filled positionally, and every filled slot's
// argument type must be assignable to that parameter's type (spec.md
// §4.5 "Argument matching").
func matchCandidate(cand types.Func, argTypes []types.Type, args []ast.Argument) bool {
	n := len(cand.Params)
	if n > 64 {
		return false // beyond the bitmap width; not a realistic signature
	}
	var remaining uint64 = (1 << uint(n)) - 1 // bit i set => slot i still open
	pos := 0
	for i, arg := range args {
		slot := pos
		if arg.Name != "" {
			slot = indexOf(cand.Params, arg.Name)
		}
		if slot < 0 || slot >= n {
			return false
		}
		bit := uint64(1) << uint(slot)
		if remaining&bit == 0 {
			return false
		}
		if !types.AssignableTo(argTypes[i], cand.Params[slot].Type) {
			return false
		}
		remaining &^= bit
		if arg.Name == "" {
			pos++
		}
	}
	// Every slot still open after matching must have a default, i.e. lie
	// at index >= cand.Required.
	for i := 0; i < n; i++ {
		bit := uint64(1) << uint(i)
		if remaining&bit != 0 && i < cand.Required {
			return false
		}
	}
	return true
}

func indexOf(params []types.Param, name string) int {
	for i, p := range params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// ResolveOverload finds the single Func among candidates whose formal
// parameters match args both in shape (arity, names) and in type
// (argTypes[i] assignable to the bound parameter's type). It returns
// ok=false both when no candidate matches and when more than one does —
// the caller reports the appropriate diag.Kind in either case (spec.md
// §4.5 "Exactly one candidate").
func ResolveOverload(candidates []types.Func, argTypes []types.Type, args []ast.Argument) (types.Func, int, bool) {
	matchIdx := -1
	matches := 0
	for i, cand := range candidates {
		if matchCandidate(cand, argTypes, args) {
			matches++
			matchIdx = i
		}
	}
	if matches != 1 {
		return types.Func{}, -1, false
	}
	return candidates[matchIdx], matchIdx, true
}

// paramSetHash hashes params[:k] as an order-independent "name:type" set,
// using types.CanonicalHash for each parameter's type so two params with
// structurally equal types hash identically regardless of how each Named
// type was resolved. hash.Hash.Add is commutative, matching the set (not
// sequence) semantics of spec.md §4.5's "parameter-names-with-types set".
func paramSetHash(params []types.Param) hash.Hash {
	var h hash.Hash
	for _, p := range params {
		h = h.Add(hash.String(p.Name + ":" + types.CanonicalHash(p.Type).String()))
	}
	return h
}

// conflictsWith reports whether cand and other share a callable arity
// (an argument count satisfiable by both, given defaults) whose full
// parameter-name:type set is identical between the two — spec.md §4.5
// "Overload registration"'s disjointness rule, restated as: two
// signatures conflict if some arity is a member of both candidates'
// "effectively callable" arity ranges and the params at that arity are
// the same set. Hashing lets this run in the bucketed lookup
// registerOverload performs instead of an O(params²) structural walk per
// new declaration.
func conflictsWith(cand, other types.Func) bool {
	lo, hi := cand.Required, len(cand.Params)
	if other.Required > lo {
		lo = other.Required
	}
	if len(other.Params) < hi {
		hi = len(other.Params)
	}
	for k := lo; k <= hi; k++ {
		if paramSetHash(cand.Params[:k]) == paramSetHash(other.Params[:k]) {
			return true
		}
	}
	return false
}

// registerOverload reports whether sig may join existing as one more
// candidate of the same name. It first checks the common case — an exact
// re-declaration at the same minimum arity — via a hash.Bucket-sharded
// lookup over existing's own minimum-arity signatures, then falls back to
// the full conflictsWith scan (which alone is authoritative: it is the
// only check that also catches a conflict arising from an *overlapping*
// arity reached only through one side's defaults) so the bucketed lookup
// is a real accelerator, never a source of missed conflicts (spec.md
// §4.5 "Overload registration").
func registerOverload(existing []types.Func, sig types.Func) (conflict int, ok bool) {
	const seed = 0x6e69636f // "nico"
	numBuckets := len(existing) + 1
	sigHash := paramSetHash(sig.Params[:sig.Required])
	buckets := make(map[int][]int, len(existing))
	for i, cand := range existing {
		if cand.Required != sig.Required {
			continue
		}
		h := paramSetHash(cand.Params[:cand.Required])
		b := h.Bucket(seed, numBuckets)
		buckets[b] = append(buckets[b], i)
	}
	for _, i := range buckets[sigHash.Bucket(seed, numBuckets)] {
		if paramSetHash(existing[i].Params[:existing[i].Required]) == sigHash {
			return i, false
		}
	}
	for i, cand := range existing {
		if conflictsWith(sig, cand) {
			return i, false
		}
	}
	return -1, true
}
