package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/symbol"
)

func TestInternDedups(t *testing.T) {
	a := symbol.Intern("foobar")
	b := symbol.Intern("foobar")
	assert.Equal(t, a, b)
	assert.Equal(t, "foobar", a.Str())
}

func TestInternDistinct(t *testing.T) {
	a := symbol.Intern("alpha123")
	b := symbol.Intern("beta123")
	assert.NotEqual(t, a, b)
}

func TestReservedNames(t *testing.T) {
	assert.True(t, symbol.Reserved(symbol.I32))
	assert.True(t, symbol.Reserved(symbol.True))
	assert.True(t, symbol.Reserved(symbol.Nullptr))
	assert.False(t, symbol.Reserved(symbol.Intern("my_var")))
}

func TestLookup(t *testing.T) {
	id := symbol.Intern("lookup_me")
	found, ok := symbol.Lookup("lookup_me")
	assert.True(t, ok)
	assert.Equal(t, id, found)
	_, ok = symbol.Lookup("never_interned_xyz")
	assert.False(t, ok)
}
