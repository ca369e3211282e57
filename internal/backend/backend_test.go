package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/backend"
	"github.com/Brian-Magnuson/nico-sub000/internal/diag"
)

func TestNullBackendIsANoOp(t *testing.T) {
	var target backend.Target = backend.NullBackend{}
	mod := target.NewModule("unit")
	assert.Equal(t, "unit", mod.Name())
	target.Generate(mod, diag.NewLogger())
	target.Reset()
}
