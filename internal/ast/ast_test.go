package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Brian-Magnuson/nico-sub000/internal/ast"
	"github.com/Brian-Magnuson/nico-sub000/internal/source"
)

func TestBaseLocationReturnsEmbeddedLoc(t *testing.T) {
	file := source.NewCodeFile("<test>", "let x = 1\n")
	loc := source.NewLocation(file, 4, 1)

	let := &ast.LetStatement{Base: ast.Base{Loc: loc}, Name: "x"}

	var node ast.Node = let
	assert.Equal(t, loc, node.Location())
}

func TestStatementExpressionAnnotationFamiliesAreDisjoint(t *testing.T) {
	var stmt ast.Statement = &ast.VarStatement{Name: "y"}
	var expr ast.Expression = &ast.IntLiteral{}

	_, stmtIsExpr := stmt.(ast.Expression)
	assert.False(t, stmtIsExpr)

	_, exprIsStmt := expr.(ast.Statement)
	assert.False(t, exprIsStmt)
}

func TestIdentExprCarriesQualifiedParts(t *testing.T) {
	ident := &ast.IdentExpr{Parts: []string{"foo", "bar"}}
	assert.Equal(t, []string{"foo", "bar"}, ident.Parts)
}
