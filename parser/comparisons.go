/*
File   : graphscript/parser/comparisons.go
Package: parser

Comparisons and double inequalities, spec §4.9.
*/
package parser

import (
	"fmt"

	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

func direction(op string) int {
	switch op {
	case "<", "<=":
		return 1
	case ">", ">=":
		return -1
	default:
		return 0
	}
}

func isChainableComparison(peek lexer.Token) bool {
	if peek.Kind != lexer.Punct {
		return false
	}

	switch peek.Lexeme {
	case "<", "<=", ">=", ">":
		return true
	default:
		return false
	}
}

// parseComparison handles <, <=, =, >=, > as a consequent. topLevelEq
// lowers the right-operand binding power for a statement-top "=" so
// that "A = a -> a+1, b -> b+1" parses as "A = (a->a+1, b->b+1)".
func parseComparison(p *Parser, left ast.Node, tok lexer.Token, topLevelEq bool) ast.Node {
	leftExpr := left.(ast.Expression)

	rbp := bpRel
	if topLevelEq && tok.Lexeme == "=" {
		rbp = bpSeq - 1
	}

	right := p.parseMain(rbp, false).(ast.Expression)

	if isChainableComparison(p.state.Peek()) {
		op2tok := p.state.Consume("")
		right2 := p.parseMain(bpRel, false).(ast.Expression)

		d1, d2 := direction(tok.Lexeme), direction(op2tok.Lexeme)
		if d1 == 0 || d1 != d2 {
			p.state.PushFatalError(
				fmt.Sprintf("Cannot chain %s with %s", op2tok.Lexeme, tok.Lexeme),
				ast.Envelope(leftExpr.Pos(), right2.Pos()),
			)
		}

		return &ast.DoubleInequality{
			Left: leftExpr, LeftOp: tok.Lexeme, Middle: right, RightOp: op2tok.Lexeme, Right: right2,
			Span: ast.Envelope(leftExpr.Pos(), right2.Pos()),
		}
	}

	return &ast.BinaryExpression{
		Op: tok.Lexeme, Left: leftExpr, Right: right,
		Span: ast.Envelope(leftExpr.Pos(), right.Pos()),
	}
}
