package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/names"
)

func mustProgram(t *testing.T, src string, set names.Set) *ast.Program {
	t.Helper()

	diags, prog := Parse([]byte(src), set)
	assert.Empty(t, diags, "unexpected diagnostics for %q: %v", src, diags)

	return prog
}

func TestParse_SimpleAssignment(t *testing.T) {
	prog := mustProgram(t, "y=x", names.NewSet())

	assert.Len(t, prog.Children, 1)
	stmt := prog.Children[0].(*ast.ExprStatement)
	bin := stmt.Expr.(*ast.BinaryExpression)
	assert.Equal(t, "=", bin.Op)
	assert.Equal(t, "y", bin.Left.(*ast.Identifier).Name)
	assert.Equal(t, "x", bin.Right.(*ast.Identifier).Name)
}

func TestParse_FunctionDefinitionAndRightAssociativePow(t *testing.T) {
	prog := mustProgram(t, "f(x)=x^2+1", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	bin := stmt.Expr.(*ast.BinaryExpression)
	assert.Equal(t, "=", bin.Op)

	call := bin.Left.(*ast.CallExpression)
	assert.Equal(t, "f", call.Callee.(*ast.Identifier).Name)
	assert.Len(t, call.Arguments, 1)

	add := bin.Right.(*ast.BinaryExpression)
	assert.Equal(t, "+", add.Op)
	pow := add.Left.(*ast.BinaryExpression)
	assert.Equal(t, "^", pow.Op)

	_, prog2 := Parse([]byte("a^b^c"), names.NewSet())
	outer := prog2.Children[0].(*ast.ExprStatement).Expr.(*ast.BinaryExpression)
	assert.Equal(t, "a", outer.Left.(*ast.Identifier).Name)
	inner := outer.Right.(*ast.BinaryExpression)
	assert.Equal(t, "b", inner.Left.(*ast.Identifier).Name)
	assert.Equal(t, "c", inner.Right.(*ast.Identifier).Name)
}

func TestParse_PiecewiseThreeBranches(t *testing.T) {
	prog := mustProgram(t, "{x>3:5, x<=0:-1, x}", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	pw := stmt.Expr.(*ast.PiecewiseExpression)
	assert.Len(t, pw.Branches, 3)

	assert.Equal(t, ">", pw.Branches[0].Condition.(*ast.BinaryExpression).Op)
	assert.Equal(t, "<=", pw.Branches[1].Condition.(*ast.BinaryExpression).Op)
	assert.Equal(t, "else", pw.Branches[2].Condition.(*ast.Identifier).Name)
}

func TestParse_ListComprehension(t *testing.T) {
	prog := mustProgram(t, "[a+b for a=[0,5,10], b=[1...5]]", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	comp := stmt.Expr.(*ast.ListComprehension)
	assert.Len(t, comp.Assignments, 2)

	aList := comp.Assignments[0].Right.(*ast.ListExpression)
	assert.Len(t, aList.Values, 3)

	bRange := comp.Assignments[1].Right.(*ast.RangeExpression)
	assert.Len(t, bRange.StartValues, 1)
	assert.Len(t, bRange.EndValues, 1)
}

func TestParse_RegressionParameters(t *testing.T) {
	prog := mustProgram(t, "y1 ~ m*x1+b #{ m=1.5, b=2.3 }", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	assert.Equal(t, "~", stmt.Expr.(*ast.BinaryExpression).Op)
	assert.NotNil(t, stmt.Parameters)
	assert.Len(t, stmt.Parameters.Entries, 2)
	assert.Equal(t, "m", stmt.Parameters.Entries[0].Variable.Name)
}

func TestParse_DoubleInequality(t *testing.T) {
	prog := mustProgram(t, "1 <= x < -y", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	di := stmt.Expr.(*ast.DoubleInequality)
	assert.Equal(t, "<=", di.LeftOp)
	assert.Equal(t, "<", di.RightOp)
}

func TestParse_ChainedMismatchedDirectionIsFatalButRecovers(t *testing.T) {
	diags, prog := Parse([]byte("1 < x > y"), names.NewSet())

	assert.NotEmpty(t, diags)
	assert.NotNil(t, prog)
}

func TestParse_ImplicitSubscript(t *testing.T) {
	prog := mustProgram(t, "xyz", names.NewSet())

	id := prog.Children[0].(*ast.ExprStatement).Expr.(*ast.Identifier)
	assert.Equal(t, "x_yz", id.Name)
}

func TestParse_ExplicitSubscriptOnOperatorNameNotReshuffled(t *testing.T) {
	set := names.NewSet([]string{"sin"})
	prog := mustProgram(t, "sin_2", set)

	id := prog.Children[0].(*ast.ExprStatement).Expr.(*ast.Identifier)
	assert.Equal(t, "sin_2", id.Name)
}

func TestParse_ExtraSemicolonsAreAbsorbed(t *testing.T) {
	prog := mustProgram(t, "foo; ;; bar=1", names.NewSet())

	assert.Len(t, prog.Children, 2)
}

func TestParse_NeverPanics(t *testing.T) {
	inputs := []string{
		"", "   ", ";;;", "$$$", "(", ")", "[", "{", "f(", "1 + ", "a = = b",
		"table { x }", "folder \"t\" { }", "image \"x\"", "settings", "ticker dt",
		"a with", "a #{", "a @{", "1'''", "x.", "a[",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() {
			Parse([]byte(in), names.NewSet())
		}, in)
	}
}

func TestParse_EmptyProgramWarns(t *testing.T) {
	diags, prog := Parse([]byte(""), names.NewSet())

	assert.Len(t, diags, 1)
	assert.Equal(t, "Program is empty. Try typing: y=x", diags[0].Message)
	assert.Empty(t, prog.Children)
}

func TestParse_SpansAreWithinSourceBoundsAndEnvelopeChildren(t *testing.T) {
	src := "f(x)=x^2+1"
	_, prog := Parse([]byte(src), names.NewSet())

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}

		if pos := n.Pos(); pos != nil {
			assert.GreaterOrEqual(t, pos.From, 0)
			assert.LessOrEqual(t, pos.To, len(src))
			assert.LessOrEqual(t, pos.From, pos.To)
		}
	}

	walk(prog)
	stmt := prog.Children[0].(*ast.ExprStatement)
	walk(stmt)

	bin := stmt.Expr.(*ast.BinaryExpression)
	walk(bin.Left)
	walk(bin.Right)

	assert.Equal(t, bin.Left.Pos().From, stmt.Span.From)
	assert.Equal(t, bin.Right.Pos().To, stmt.Span.To)
}

func TestParse_TableKeepsExpressionColumns(t *testing.T) {
	diags, prog := Parse([]byte("table { a=1 }"), names.NewSet())

	assert.Empty(t, diags)
	tbl := prog.Children[0].(*ast.Table)
	assert.Len(t, tbl.Columns, 1)
}

func TestParse_FolderCollectsChildren(t *testing.T) {
	prog := mustProgram(t, `folder "Stuff" { a=1; b=2 }`, names.NewSet())

	f := prog.Children[0].(*ast.Folder)
	assert.Equal(t, "Stuff", f.Title)
	assert.Len(t, f.Children, 2)
}

func TestParse_StyleAttachmentFinalizesStatementFirst(t *testing.T) {
	prog := mustProgram(t, `y=x @{ color: "red" }`, names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	assert.NotNil(t, stmt.Style)
	assert.Equal(t, "color", stmt.Style.Entries[0].Property)
}

func TestParse_ResidualVariableRewrite(t *testing.T) {
	prog := mustProgram(t, "R = y1 ~ m*x1+b", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	assert.NotNil(t, stmt.ResidualVariable)
	assert.Equal(t, "R", stmt.ResidualVariable.Name)
	assert.Equal(t, "~", stmt.Expr.(*ast.BinaryExpression).Op)
}

func TestParse_SubstitutionAfterWith(t *testing.T) {
	prog := mustProgram(t, "f(x) with x=1", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	sub := stmt.Expr.(*ast.Substitution)
	assert.Len(t, sub.Assignments, 1)
	assert.Equal(t, "x", sub.Assignments[0].Left.(*ast.Identifier).Name)
}

func TestParse_DerivativeNotation(t *testing.T) {
	prog := mustProgram(t, "(d/d x) x^2", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	d := stmt.Expr.(*ast.DerivativeExpression)
	assert.Equal(t, "x", d.Variable.Name)
}

func TestParse_PrimeNotation(t *testing.T) {
	prog := mustProgram(t, "f''(x)", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	pr := stmt.Expr.(*ast.PrimeExpression)
	assert.Equal(t, uint32(2), pr.Order)
}

func TestParse_SingleElementListAccessCollapses(t *testing.T) {
	prog := mustProgram(t, "L[[i]]", names.NewSet())

	stmt := prog.Children[0].(*ast.ExprStatement)
	acc := stmt.Expr.(*ast.ListAccessExpression)
	_, isList := acc.Index.(*ast.ListExpression)
	assert.False(t, isList)
	assert.Equal(t, "i", acc.Index.(*ast.Identifier).Name)
}
