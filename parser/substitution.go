/*
File   : graphscript/parser/substitution.go
Package: parser

The "with" substitution operator, spec §4.11.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

func parseSubstitution(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	body := left.(ast.Expression)
	assignments := parseAssignmentSequence(p, "A substitution assignment")

	span := body.Pos()
	if n := len(assignments); n > 0 {
		span = ast.Envelope(body.Pos(), assignments[n-1].Pos())
	}

	return &ast.Substitution{Body: body, Assignments: assignments, Span: span}
}
