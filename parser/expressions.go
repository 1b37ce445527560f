/*
File   : graphscript/parser/expressions.go
Package: parser

The core initial and consequent parselets: literals, identifiers,
parenthesized/derivative grouping, prefix negation, and the plain
arithmetic/member/postfix operators.
*/
package parser

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
	"github.com/arolyn-dev/graphscript/names"
)

func (p *Parser) registerInitialParselets() {
	p.registerInitial(lexer.Number, parseNumber)
	p.registerInitial(lexer.String, parseString)
	p.registerInitial(lexer.ID, parseIdentifier)

	p.registerInitialPunct(parseParenOrDerivative, "(")
	p.registerInitialPunct(parsePrefixMinus, "-")
	p.registerInitialPunct(parseListLike, "[")
	p.registerInitialPunct(parsePiecewise, "{")
	p.registerInitialPunct(parseStyleMapping, "@{")

	p.registerInitialKeyword(parseRepeated, "sum", "product", "integral")
	p.registerInitialKeyword(parseTable, "table")
	p.registerInitialKeyword(parseFolder, "folder")
	p.registerInitialKeyword(parseImage, "image")
	p.registerInitialKeyword(parseSettings, "settings")
	p.registerInitialKeyword(parseTicker, "ticker")
}

func (p *Parser) registerConsequentParselets() {
	p.registerConsequentPunct(parseBinary, "+", "-", "*", "/")
	p.registerConsequentPunct(parsePow, "^")
	p.registerConsequentPunct(parseCall, "(")
	p.registerConsequentKind(lexer.Prime, parsePrime)
	p.registerConsequentPunct(parsePostfixFactorial, "!")
	p.registerConsequentPunct(parseMember, ".")
	p.registerConsequentPunct(parseListAccess, "[")
	p.registerConsequentPunct(parseComparison, "<", "<=", "=", ">=", ">")
	p.registerConsequentPunct(parseUpdateRule, "->")
	p.registerConsequentPunct(parseSequence, ",")
	p.registerConsequentPunct(parseStyleAttach, "@{")
	p.registerConsequentPunct(parseSimilarity, "~")
	p.registerConsequentPunct(parseRegressionParams, "#{")
	p.registerConsequentKeyword(parseSubstitution, "with")
}

func parseNumber(p *Parser, tok lexer.Token) ast.Node {
	v, err := strconv.ParseFloat(tok.Lexeme, 64)
	if err != nil {
		p.state.PushFatalError(fmt.Sprintf("Invalid number literal %q.", tok.Lexeme), spanOf(tok))
	}

	return &ast.Number{Value: v, Span: spanOf(tok)}
}

func parseString(p *Parser, tok lexer.Token) ast.Node {
	return &ast.String{Value: decodeStringLiteral(p, tok), Span: spanOf(tok)}
}

// decodeStringLiteral decodes a "..." lexeme using JSON string semantics
// (spec §6: "\n", "\t", "\"", "\\", "\uXXXX" are recognised).
func decodeStringLiteral(p *Parser, tok lexer.Token) string {
	var v string
	if err := json.Unmarshal([]byte(tok.Lexeme), &v); err != nil {
		p.state.PushFatalError(fmt.Sprintf("Invalid string literal %s.", tok.Lexeme), spanOf(tok))
	}

	return v
}

func parseIdentifier(p *Parser, tok lexer.Token) ast.Node {
	return p.identifierFromToken(tok)
}

// identifierFromToken normalizes tok's lexeme (spec §4.4), pushing an
// error diagnostic (not fatal) on a malformed name and substituting
// "error" as the spec directs.
func (p *Parser) identifierFromToken(tok lexer.Token) *ast.Identifier {
	result := names.Normalize(tok.Lexeme, p.names)
	if result.Err != "" {
		p.state.PushError(result.Err, spanOf(tok))
	}

	return &ast.Identifier{Name: result.Name, Span: spanOf(tok)}
}

func mustIdentifier(p *Parser, node ast.Node, context string) *ast.Identifier {
	id, ok := node.(*ast.Identifier)
	if !ok {
		p.state.PushFatalError(fmt.Sprintf("%s must be an identifier.", context), node.Pos())
	}

	return id
}

// parseParenOrDerivative handles "(": either the "(d/d x) expr"
// differentiation form, or a plain grouped sub-expression.
func parseParenOrDerivative(p *Parser, openTok lexer.Token) ast.Node {
	if p.state.Peek().Kind == lexer.Punct && p.state.Peek().Lexeme == "d/d" {
		p.state.Consume("d/d")

		varTok := p.state.ConsumeType(lexer.ID)
		variable := p.identifierFromToken(varTok)

		p.state.Consume(")")

		body := p.parseMain(bpDerivative, false).(ast.Expression)

		return &ast.DerivativeExpression{
			Expr: body, Variable: variable,
			Span: ast.Envelope(spanOf(openTok), body.Pos()),
		}
	}

	inner := p.parseMain(bpTop, false)
	closeTok := p.state.Consume(")")
	span := ast.Envelope(spanOf(openTok), spanOf(closeTok))

	if seq, ok := inner.(*ast.SequenceExpression); ok {
		seq.ParenWrapped = true
		seq.Span = span

		return seq
	}

	if expr, ok := inner.(ast.Expression); ok {
		return reSpan(expr, span)
	}

	p.state.PushFatalError("Expected an expression inside '('.", span)

	return nil
}

// reSpan returns expr with its outer span widened to span. Every
// Expression's Span is a *Pos field, so a type switch can set it
// directly without rebuilding the node.
func reSpan(expr ast.Expression, span *ast.Pos) ast.Expression {
	switch n := expr.(type) {
	case *ast.Number:
		n.Span = span
	case *ast.Identifier:
		n.Span = span
	case *ast.String:
		n.Span = span
	case *ast.PrefixExpression:
		n.Span = span
	case *ast.PostfixExpression:
		n.Span = span
	case *ast.BinaryExpression:
		n.Span = span
	case *ast.DoubleInequality:
		n.Span = span
	case *ast.ListExpression:
		n.Span = span
	case *ast.RangeExpression:
		n.Span = span
	case *ast.ListComprehension:
		n.Span = span
	case *ast.ListAccessExpression:
		n.Span = span
	case *ast.MemberExpression:
		n.Span = span
	case *ast.CallExpression:
		n.Span = span
	case *ast.PrimeExpression:
		n.Span = span
	case *ast.DerivativeExpression:
		n.Span = span
	case *ast.RepeatedExpression:
		n.Span = span
	case *ast.PiecewiseExpression:
		n.Span = span
	case *ast.UpdateRule:
		n.Span = span
	case *ast.AssignmentExpression:
		n.Span = span
	case *ast.Substitution:
		n.Span = span
	}

	return expr
}

func parsePrefixMinus(p *Parser, tok lexer.Token) ast.Node {
	operand := p.parseMain(bpPrefix, false).(ast.Expression)

	return &ast.PrefixExpression{Op: "-", Expr: operand, Span: ast.Envelope(spanOf(tok), operand.Pos())}
}

func parseBinary(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	lbp, _ := consequentBp(tok.Kind, tok.Lexeme)
	right := p.parseMain(lbp, false).(ast.Expression)
	leftExpr := left.(ast.Expression)

	return &ast.BinaryExpression{
		Op: tok.Lexeme, Left: leftExpr, Right: right,
		Span: ast.Envelope(leftExpr.Pos(), right.Pos()),
	}
}

// parsePow is right-associative: the right operand recurses at bp-1.
func parsePow(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	right := p.parseMain(bpPow-1, false).(ast.Expression)
	leftExpr := left.(ast.Expression)

	return &ast.BinaryExpression{
		Op: "^", Left: leftExpr, Right: right,
		Span: ast.Envelope(leftExpr.Pos(), right.Pos()),
	}
}

func parsePostfixFactorial(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	leftExpr := left.(ast.Expression)

	return &ast.PostfixExpression{Op: "factorial", Expr: leftExpr, Span: ast.Envelope(leftExpr.Pos(), spanOf(tok))}
}

func parseMember(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	propTok := p.state.ConsumeType(lexer.ID)
	prop := p.identifierFromToken(propTok)
	leftExpr := left.(ast.Expression)

	return &ast.MemberExpression{Object: leftExpr, Property: prop, Span: ast.Envelope(leftExpr.Pos(), prop.Pos())}
}

// parseSequence implements the right-associative "," operator. If the
// next token is "..." the sequence terminates and left is returned
// alone, letting the range-literal parselet see the ellipsis.
func parseSequence(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	if p.state.Peek().Kind == lexer.Punct && p.state.Peek().Lexeme == "..." {
		return left
	}

	right := p.parseMain(bpSeq-1, false).(ast.Expression)
	leftExpr := left.(ast.Expression)

	return &ast.SequenceExpression{
		Left: leftExpr, Right: right, ParenWrapped: false,
		Span: ast.Envelope(leftExpr.Pos(), right.Pos()),
	}
}

func parseSimilarity(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	right := p.parseMain(bpSim, false).(ast.Expression)
	leftExpr := left.(ast.Expression)

	return &ast.BinaryExpression{
		Op: "~", Left: leftExpr, Right: right,
		Span: ast.Envelope(leftExpr.Pos(), right.Pos()),
	}
}

func parseUpdateRule(p *Parser, left ast.Node, tok lexer.Token, _ bool) ast.Node {
	variable := mustIdentifier(p, left, "Left side of '->'")
	expr := p.parseMain(bpUpdateRule, false).(ast.Expression)

	return &ast.UpdateRule{Variable: variable, Expr: expr, Span: ast.Envelope(variable.Pos(), expr.Pos())}
}
