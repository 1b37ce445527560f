/*
File   : graphscript/parser/keywords.go
Package: parser

The keyword-led initial parselets: repeated operators (sum, product,
integral) and the document-structure statements (table, folder, image,
settings, ticker), spec §4.3.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

func parseRepeated(p *Parser, tok lexer.Token) ast.Node {
	idxTok := p.state.ConsumeType(lexer.ID)
	index := p.identifierFromToken(idxTok)

	p.state.Consume("=")
	p.state.Consume("(")

	start := p.parseMain(bpTop, false).(ast.Expression)
	p.state.Consume("...")
	end := p.parseMain(bpTop, false).(ast.Expression)
	p.state.Consume(")")

	term := p.parseMain(bpAdd, false).(ast.Expression)

	return &ast.RepeatedExpression{
		Name: tok.Lexeme, Index: index, Start: start, End: end, Expr: term,
		Span: ast.Envelope(spanOf(tok), term.Pos()),
	}
}

func parseTable(p *Parser, tok lexer.Token) ast.Node {
	p.state.Consume("{")
	stmts := p.parseStatements(false)
	closeTok := p.state.Consume("}")

	var columns []*ast.ExprStatement
	for _, s := range stmts {
		col, ok := s.(*ast.ExprStatement)
		if !ok {
			p.state.PushError("A table column must be a plain expression.", s.Pos())

			continue
		}

		columns = append(columns, col)
	}

	return &ast.Table{Columns: columns, Span: ast.Envelope(spanOf(tok), spanOf(closeTok))}
}

func parseFolder(p *Parser, tok lexer.Token) ast.Node {
	titleTok := p.state.ConsumeType(lexer.String)
	title := decodeStringLiteral(p, titleTok)

	p.state.Consume("{")
	children := p.parseStatements(false)
	closeTok := p.state.Consume("}")

	return &ast.Folder{Title: title, Children: children, Span: ast.Envelope(spanOf(tok), spanOf(closeTok))}
}

func parseImage(p *Parser, tok lexer.Token) ast.Node {
	nameTok := p.state.ConsumeType(lexer.String)
	name := decodeStringLiteral(p, nameTok)

	return &ast.Image{Name: name, Span: ast.Envelope(spanOf(tok), spanOf(nameTok))}
}

func parseSettings(p *Parser, tok lexer.Token) ast.Node {
	return &ast.Settings{Span: spanOf(tok)}
}

func parseTicker(p *Parser, tok lexer.Token) ast.Node {
	handler := p.parseMain(bpMeta, false).(ast.Expression)

	return &ast.Ticker{Handler: handler, Span: ast.Envelope(spanOf(tok), handler.Pos())}
}
