package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelope_TakesMinFromMaxTo(t *testing.T) {
	a := &Pos{From: 5, To: 10}
	b := &Pos{From: 2, To: 7}

	got := Envelope(a, b)

	assert.Equal(t, &Pos{From: 2, To: 10}, got)
}

func TestEnvelope_NilOperandsPassThrough(t *testing.T) {
	a := &Pos{From: 1, To: 2}

	assert.Equal(t, a, Envelope(a, nil))
	assert.Equal(t, a, Envelope(nil, a))
	assert.Nil(t, Envelope(nil, nil))
}

func TestEnvelopeAll_FoldsAcrossManySpans(t *testing.T) {
	got := EnvelopeAll(
		&Pos{From: 4, To: 6},
		nil,
		&Pos{From: 0, To: 3},
		&Pos{From: 8, To: 9},
	)

	assert.Equal(t, &Pos{From: 0, To: 9}, got)
}

func TestProgram_PosIsEnvelopeOfChildren(t *testing.T) {
	left := &Identifier{Name: "y", Span: &Pos{From: 0, To: 1}}
	right := &Identifier{Name: "x", Span: &Pos{From: 2, To: 3}}
	expr := &BinaryExpression{Op: "=", Left: left, Right: right, Span: &Pos{From: 0, To: 3}}
	stmt := &ExprStatement{Expr: expr, Span: expr.Span}
	prog := &Program{Children: []Statement{stmt}, Span: EnvelopeAll(stmt.Pos())}

	assert.Equal(t, &Pos{From: 0, To: 3}, prog.Pos())
}

func TestStatementVariants_SatisfyStatementInterface(t *testing.T) {
	var stmts []Statement = []Statement{
		&ExprStatement{},
		&Text{},
		&Table{},
		&Image{},
		&Folder{},
		&Settings{},
		&Ticker{},
	}

	assert.Len(t, stmts, 7)
}

func TestExpressionVariants_SatisfyExpressionInterface(t *testing.T) {
	var exprs []Expression = []Expression{
		&Number{},
		&Identifier{},
		&String{},
		&PrefixExpression{},
		&PostfixExpression{},
		&BinaryExpression{},
		&DoubleInequality{},
		&SequenceExpression{},
		&RangeExpression{},
		&ListExpression{},
		&ListComprehension{},
		&ListAccessExpression{},
		&MemberExpression{},
		&CallExpression{},
		&PrimeExpression{},
		&DerivativeExpression{},
		&RepeatedExpression{},
		&PiecewiseExpression{},
		&UpdateRule{},
		&AssignmentExpression{},
		&Substitution{},
	}

	assert.Len(t, exprs, 21)
}
