/*
File   : graphscript/parser/calls.go
Package: parser

Function calls and prime (derivative) notation, spec §4.8.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

// parseCall handles "(" as a consequent: the callee must already be an
// Identifier or MemberExpression.
func parseCall(p *Parser, left ast.Node, openTok lexer.Token, _ bool) ast.Node {
	callee, ok := left.(ast.Expression)
	if !ok || !isValidCallee(callee) {
		p.state.PushFatalError("Call target must be an identifier or member access.", left.Pos())
	}

	return parseCallArguments(p, callee, openTok)
}

func isValidCallee(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	default:
		return false
	}
}

// parseCallArguments consumes the argument list and closing ")" after
// an already-matched opening paren, given a validated callee.
func parseCallArguments(p *Parser, callee ast.Expression, openTok lexer.Token) *ast.CallExpression {
	var args []ast.Expression

	if !(p.state.Peek().Kind == lexer.Punct && p.state.Peek().Lexeme == ")") {
		args = parseBareSequence(p)
	}

	closeTok := p.state.Consume(")")

	return &ast.CallExpression{
		Callee: callee, Arguments: args,
		Span: ast.Envelope(callee.Pos(), spanOf(closeTok)),
	}
}

// parsePrime handles a run of "'" tokens following an Identifier. The
// run must be terminated by "(", turning into a function call that is
// then wrapped in a PrimeExpression.
func parsePrime(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	id, ok := left.(*ast.Identifier)
	if !ok {
		p.state.PushFatalError("Prime notation can only be applied to an identifier.", left.Pos())
	}

	order := uint32(len(tok.Lexeme))

	for p.state.Peek().Kind == lexer.Prime {
		more := p.state.Consume("")
		order += uint32(len(more.Lexeme))
	}

	openTok := p.state.Consume("(")
	call := parseCallArguments(p, id, openTok)

	return &ast.PrimeExpression{Expr: call, Order: order, Span: ast.Envelope(id.Pos(), call.Pos())}
}

// parseBareSequence parses a comma-separated list of expressions,
// stopping at ")", "]", "}", "...", or eof, without ever wrapping the
// items in a SequenceExpression (spec glossary: "bare sequence").
func parseBareSequence(p *Parser) []ast.Expression {
	var items []ast.Expression

	for {
		items = append(items, p.parseMain(bpSeq, false).(ast.Expression))

		if p.state.Peek().Kind == lexer.Punct && p.state.Peek().Lexeme == "," {
			p.state.Consume(",")

			if peekIs(p, "...") {
				break
			}

			continue
		}

		break
	}

	return items
}

// parseAssignmentSequence parses a comma-separated run of "name = value"
// items, used by list comprehensions, substitutions, and regression
// parameters. Anything else is a fatal error naming context.
func parseAssignmentSequence(p *Parser, context string) []*ast.BinaryExpression {
	var out []*ast.BinaryExpression

	for {
		expr := p.parseMain(bpSeq, false).(ast.Expression)

		bin, ok := expr.(*ast.BinaryExpression)
		if !ok || bin.Op != "=" {
			p.state.PushFatalError(context+" must be of the form name = value.", expr.Pos())
		}

		if _, ok := bin.Left.(*ast.Identifier); !ok {
			p.state.PushFatalError(context+" must assign to an identifier.", bin.Left.Pos())
		}

		out = append(out, bin)

		if p.state.Peek().Kind == lexer.Punct && p.state.Peek().Lexeme == "," {
			p.state.Consume(",")

			continue
		}

		break
	}

	return out
}
