package swiftprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johndpope/SwiftRewriter/internal/swiftast"
)

func TestExprString_OctalIntLiteralRendersWithSwiftPrefix(t *testing.T) {
	e := swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: "010", NumberBase: swiftast.NumBaseOctal}
	assert.Equal(t, "0o10", exprString(&e))
}

func TestExprString_HexIntLiteralRendersWithSwiftPrefix(t *testing.T) {
	e := swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: "0x1A", NumberBase: swiftast.NumBaseHex}
	assert.Equal(t, "0x1A", exprString(&e))
}

func TestExprString_BinaryIntLiteralRendersWithSwiftPrefix(t *testing.T) {
	e := swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: "0b101", NumberBase: swiftast.NumBaseBinary}
	assert.Equal(t, "0b101", exprString(&e))
}

func TestExprString_DecimalIntLiteralPassesThroughUnchanged(t *testing.T) {
	e := swiftast.Expr{Kind: swiftast.ExprIntLiteral, IntText: "42", NumberBase: swiftast.NumBaseDecimal}
	assert.Equal(t, "42", exprString(&e))
}
