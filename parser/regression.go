/*
File   : graphscript/parser/regression.go
Package: parser

Regression parameters, "#{ ... }", spec §4.10.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

// parseRegressionParams handles "#{" as a consequent: left must
// finalize to an ExprStatement whose expression is a "~" binary
// expression, and the parsed entries attach to it as Parameters.
func parseRegressionParams(p *Parser, left ast.Node, openTok lexer.Token, _ bool) ast.Node {
	stmt := finalizeStatement(p, left)

	exprStmt, ok := stmt.(*ast.ExprStatement)
	if !ok {
		p.state.PushFatalError("Regression parameters must follow a '~' expression.", left.Pos())
	}

	if bin, ok := exprStmt.Expr.(*ast.BinaryExpression); !ok || bin.Op != "~" {
		p.state.PushFatalError("Regression parameters must follow a '~' expression.", left.Pos())
	}

	assignments := parseAssignmentSequence(p, "A regression parameter")
	closeTok := p.state.Consume("}")

	entries := make([]*ast.RegressionEntry, len(assignments))
	for i, a := range assignments {
		entries[i] = &ast.RegressionEntry{
			Variable: a.Left.(*ast.Identifier), Value: a.Right,
			Span: a.Span,
		}
	}

	exprStmt.Parameters = &ast.RegressionParameters{
		Entries: entries,
		Span:    ast.Envelope(spanOf(openTok), spanOf(closeTok)),
	}

	return exprStmt
}
