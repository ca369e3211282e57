package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/types"
)

func TestSizedness(t *testing.T) {
	assert.True(t, types.Int{Kind: types.I32}.Sized())
	unsized := types.Array{Elem: types.Int{Kind: types.I32}}
	assert.False(t, unsized.Sized())
	var n int64 = 4
	sized := types.Array{Elem: types.Int{Kind: types.I32}, Size: &n}
	assert.True(t, sized.Sized())
	assert.True(t, types.Pointer{Elem: unsized}.Sized())
}

func TestNullptrAssignableToPointerOnly(t *testing.T) {
	ptr := types.Pointer{Elem: types.Int{Kind: types.I32}}
	assert.True(t, types.AssignableTo(types.Nullptr{}, ptr))
	assert.False(t, types.AssignableTo(types.Nullptr{}, types.Int{Kind: types.I32}))
}

func TestArrayDecay(t *testing.T) {
	elem := types.Int{Kind: types.I32}
	var n int64 = 3
	sized := types.Array{Elem: elem, Size: &n}
	unsized := types.Array{Elem: elem}
	assert.True(t, types.AssignableTo(sized, unsized))
	assert.False(t, types.AssignableTo(unsized, sized))
}

func TestReferenceAutoDeref(t *testing.T) {
	i32 := types.Int{Kind: types.I32}
	ref := types.Reference{Elem: i32}
	assert.True(t, types.AssignableTo(ref, i32))
	assert.False(t, types.AssignableTo(i32, ref))
}

func TestNamedComparesByIdentity(t *testing.T) {
	a := &types.Named{Name: "Point"}
	b := &types.Named{Name: "Point"}
	assert.True(t, types.Equal(a, a))
	assert.False(t, types.Equal(a, b))
}

func TestFuncEquality(t *testing.T) {
	i32 := types.Int{Kind: types.I32}
	f1 := types.Func{Params: []types.Param{{Name: "a", Type: i32}}, Required: 1, Return: i32}
	f2 := types.Func{Params: []types.Param{{Name: "b", Type: i32}}, Required: 1, Return: i32}
	assert.True(t, types.Equal(f1, f2))
}

func TestCanonicalHashStableForEqualTypes(t *testing.T) {
	i32 := types.Int{Kind: types.I32}
	assert.Equal(t, types.CanonicalHash(i32), types.CanonicalHash(types.Int{Kind: types.I32}))
}

func TestCanonicalHashDistinguishesIdenticalNamedFields(t *testing.T) {
	a := &types.Named{Name: "Point", Fields: []types.Field{{Name: "x", Type: types.Int{Kind: types.I32}}}}
	b := &types.Named{Name: "Point", Fields: []types.Field{{Name: "x", Type: types.Int{Kind: types.I32}}}}
	assert.NotEqual(t, types.CanonicalHash(a), types.CanonicalHash(b))
}
