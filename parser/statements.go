/*
File   : graphscript/parser/statements.go
Package: parser

The statement loop and statement finalization, spec §4.12. This file
owns the single recovery frame: parseOneStatement is the only place
that recovers the bailout signal raised by State.PushFatalError.
*/
package parser

import (
	"fmt"

	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/diag"
	"github.com/arolyn-dev/graphscript/lexer"
)

func (p *Parser) parseProgram() *ast.Program {
	stmts := p.parseStatements(true)

	if p.state.Peek().Kind != lexer.EOF {
		p.state.PushError("Didn't reach end", spanOf(p.state.Peek()))
	}

	var span *ast.Pos
	for _, s := range stmts {
		span = ast.Envelope(span, s.Pos())
	}

	if len(stmts) == 0 && p.state.DiagCount() == 0 {
		p.state.PushWarning("Program is empty. Try typing: y=x", &diag.Span{From: 0, To: 0})
	}

	return &ast.Program{Children: stmts, Span: span}
}

// parseStatements parses statements until "}" (when !isTop) or eof.
// At the top level, a stray "}" is an error that gets skipped rather
// than ending the loop.
func (p *Parser) parseStatements(isTop bool) []ast.Statement {
	var stmts []ast.Statement

	for {
		for p.state.Peek().Kind == lexer.Semi {
			p.state.Consume("")
		}

		peek := p.state.Peek()

		if peek.Kind == lexer.Punct && peek.Lexeme == "}" {
			if isTop {
				p.state.PushError("Unexpected '}'", spanOf(peek))
				p.state.Consume("}")

				continue
			}

			return stmts
		}

		if peek.Kind == lexer.EOF {
			return stmts
		}

		if stmt, ok := p.parseOneStatement(); ok && stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
}

// parseOneStatement parses and finalizes a single statement, recovering
// from a bailout by resynchronizing at the next statement boundary. Any
// other panic is not ours and propagates untouched.
func (p *Parser) parseOneStatement() (stmt ast.Statement, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isBailout := r.(bailout); isBailout {
				p.state.ScanToNextStatement()
				stmt, ok = nil, false

				return
			}

			panic(r)
		}
	}()

	node := p.parseMain(bpTop, true)
	final := finalizeStatement(p, node)

	switch peek := p.state.Peek(); {
	case peek.Kind == lexer.Semi:
		p.state.Consume("")
	case peek.Kind == lexer.EOF:
	case peek.Kind == lexer.Punct && peek.Lexeme == "}":
	default:
		p.state.PushError(fmt.Sprintf("Expected end of statement but got %q.", peek.Lexeme), spanOf(peek))
	}

	return final, true
}

// finalizeStatement converts a parsed node into a Statement (spec
// §4.12 step 5). Anything that cannot be turned into a statement (a
// Program, a bare StyleMapping, ...) is a fatal error.
func finalizeStatement(p *Parser, node ast.Node) ast.Statement {
	if stmt, ok := node.(ast.Statement); ok {
		return stmt
	}

	expr, ok := node.(ast.Expression)
	if !ok {
		p.state.PushFatalError("This cannot be used as a statement.", node.Pos())

		return nil
	}

	if str, ok := expr.(*ast.String); ok {
		return &ast.Text{Value: str.Value, Span: str.Span}
	}

	return finalizeExprStatement(expr)
}

// finalizeExprStatement implements the "residualVariable" rewrite: a
// statement of the shape "name = (lhs ~ rhs)" becomes an ExprStatement
// over the "~" expression with residualVariable set to name, and a bare
// top-level "~" expression carries its own left identifier as the
// residual variable the same way.
func finalizeExprStatement(expr ast.Expression) *ast.ExprStatement {
	if outer, ok := expr.(*ast.BinaryExpression); ok && outer.Op == "=" {
		if id, ok := outer.Left.(*ast.Identifier); ok {
			if inner, ok := outer.Right.(*ast.BinaryExpression); ok && inner.Op == "~" {
				return &ast.ExprStatement{Expr: inner, ResidualVariable: id, Span: outer.Span}
			}
		}
	}

	stmt := &ast.ExprStatement{Expr: expr, Span: expr.Pos()}

	if bin, ok := expr.(*ast.BinaryExpression); ok && bin.Op == "~" {
		if id, ok := bin.Left.(*ast.Identifier); ok {
			stmt.ResidualVariable = id
		}
	}

	return stmt
}
