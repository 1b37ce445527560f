/*
File   : graphscript/parser/lists.go
Package: parser

List literals, ranges, list comprehensions, and list indexing, spec §4.5.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

func peekIs(p *Parser, lexeme string) bool {
	peek := p.state.Peek()

	return peek.Kind == lexer.Punct && peek.Lexeme == lexeme
}

// parseListLike handles "[": a list literal, a range, or a
// comprehension, disambiguated by what follows the bare sequence of
// starting values.
func parseListLike(p *Parser, openTok lexer.Token) ast.Node {
	var start []ast.Expression
	if !peekIs(p, "]") {
		start = parseBareSequence(p)
	}

	switch {
	case peekIs(p, "..."):
		p.state.Consume("...")

		if peekIs(p, ",") {
			p.state.Consume(",")
		}

		var end []ast.Expression
		if !peekIs(p, "]") {
			end = parseBareSequence(p)
		}

		closeTok := p.state.Consume("]")

		return &ast.RangeExpression{
			StartValues: start, EndValues: end,
			Span: ast.Envelope(spanOf(openTok), spanOf(closeTok)),
		}

	case peekIs(p, "]"):
		closeTok := p.state.Consume("]")

		return &ast.ListExpression{Values: start, Span: ast.Envelope(spanOf(openTok), spanOf(closeTok))}

	case p.state.Peek().Kind == lexer.Keyword && p.state.Peek().Lexeme == "for":
		p.state.Consume("for")

		if len(start) != 1 {
			p.state.PushFatalError("Expected exactly one starting expression before 'for'.", spanOf(openTok))
		}

		assignments := parseAssignmentSequence(p, "A list comprehension assignment")
		closeTok := p.state.Consume("]")

		return &ast.ListComprehension{
			Expr: start[0], Assignments: assignments,
			Span: ast.Envelope(spanOf(openTok), spanOf(closeTok)),
		}

	default:
		p.state.PushFatalError("Expected ']'", spanOf(p.state.Peek()))

		return nil
	}
}

// parseListAccess handles "[" as a consequent: indexing. A
// single-element list literal index collapses to that element (spec §9).
func parseListAccess(p *Parser, left ast.Node, openTok lexer.Token, _ bool) ast.Node {
	leftExpr := left.(ast.Expression)

	index := p.parseMain(bpTop, false).(ast.Expression)
	closeTok := p.state.Consume("]")

	if lit, ok := index.(*ast.ListExpression); ok && len(lit.Values) == 1 {
		index = lit.Values[0]
	}

	return &ast.ListAccessExpression{
		Expr: leftExpr, Index: index,
		Span: ast.Envelope(leftExpr.Pos(), spanOf(closeTok)),
	}
}
