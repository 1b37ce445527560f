/*
File   : graphscript/parser/piecewise.go
Package: parser

Piecewise expressions, spec §4.6.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

// isComparison reports whether expr is a DoubleInequality, a
// BinaryExpression with a comparison operator, or the "else" identifier
// (spec glossary: "Comparison").
func isComparison(expr ast.Expression) bool {
	switch n := expr.(type) {
	case *ast.DoubleInequality:
		return true
	case *ast.BinaryExpression:
		switch n.Op {
		case "<", "<=", "=", ">=", ">":
			return true
		}

		return false
	case *ast.Identifier:
		return n.Name == "else"
	default:
		return false
	}
}

func one(span *ast.Pos) ast.Expression {
	return &ast.Number{Value: 1, Span: span}
}

func parsePiecewise(p *Parser, openTok lexer.Token) ast.Node {
	var branches []*ast.PiecewiseBranch

	for {
		cond := p.parseMain(bpSeq, false).(ast.Expression)
		peek := p.state.Peek()

		switch {
		case peek.Kind == lexer.Punct && peek.Lexeme == "}":
			closeTok := p.state.Consume("}")

			if !isComparison(cond) {
				// A bare expression immediately closed by "}" is
				// reinterpreted as the else branch (spec §9), confirmed by
				// the worked example "{x>3:5, x<=0:-1, x}" whose trailing
				// "x" becomes (else, x) regardless of its position.
				branches = append(branches, &ast.PiecewiseBranch{
					Condition:  &ast.Identifier{Name: "else", Span: cond.Pos()},
					Consequent: cond,
					Span:       cond.Pos(),
				})

				return &ast.PiecewiseExpression{Branches: branches, Span: ast.Envelope(spanOf(openTok), spanOf(closeTok))}
			}

			branches = append(branches, &ast.PiecewiseBranch{Condition: cond, Consequent: one(cond.Pos()), Span: cond.Pos()})

			return &ast.PiecewiseExpression{Branches: branches, Span: ast.Envelope(spanOf(openTok), spanOf(closeTok))}

		case peek.Kind == lexer.Punct && peek.Lexeme == ":":
			p.state.Consume(":")
			consequent := p.parseMain(bpSeq, false).(ast.Expression)

			if !isComparison(cond) {
				p.state.PushFatalError("Expected a comparison before ':'.", cond.Pos())
			}

			branches = append(branches, &ast.PiecewiseBranch{Condition: cond, Consequent: consequent, Span: ast.Envelope(cond.Pos(), consequent.Pos())})

			peek = p.state.Peek()
			if peek.Kind == lexer.Punct && peek.Lexeme == "," {
				p.state.Consume(",")

				continue
			}

			closeTok := p.state.Consume("}")

			return &ast.PiecewiseExpression{Branches: branches, Span: ast.Envelope(spanOf(openTok), spanOf(closeTok))}

		case peek.Kind == lexer.Punct && peek.Lexeme == ",":
			if !isComparison(cond) {
				p.state.PushFatalError("Expected a comparison before ','.", cond.Pos())
			}

			branches = append(branches, &ast.PiecewiseBranch{Condition: cond, Consequent: one(cond.Pos()), Span: cond.Pos()})
			p.state.Consume(",")

			continue

		default:
			p.state.PushFatalError("Unexpected character in Piecewise", cond.Pos())

			return nil
		}
	}
}
