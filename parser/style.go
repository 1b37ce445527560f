/*
File   : graphscript/parser/style.go
Package: parser

Style mapping literals and the "@{" style-attachment operator, spec
§4.7 and §4.3. The style-attach parselet finalizes its left operand as a
statement before attaching style, per the open question in spec §9:
downstream consumers depend on the statement flavor surviving.
*/
package parser

import (
	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/lexer"
)

func parseStyleMapping(p *Parser, openTok lexer.Token) ast.Node {
	mapping := parseStyleMappingBody(p, openTok)

	return mapping
}

func parseStyleMappingBody(p *Parser, openTok lexer.Token) *ast.StyleMapping {
	var entries []*ast.MappingEntry

	for !peekIs(p, "}") {
		keyTok := p.state.ConsumeType(lexer.ID)
		p.state.Consume(":")
		value := p.parseMain(bpSeq, false)

		entries = append(entries, &ast.MappingEntry{
			Property: keyTok.Lexeme, Value: value,
			Span: ast.Envelope(spanOf(keyTok), value.Pos()),
		})

		if peekIs(p, ",") {
			p.state.Consume(",")

			continue
		}

		break
	}

	closeTok := p.state.Consume("}")

	return &ast.StyleMapping{Entries: entries, Span: ast.Envelope(spanOf(openTok), spanOf(closeTok))}
}

// parseStyleAttach handles "@{" as a consequent: finalize left as a
// statement, parse a style mapping, and attach it.
func parseStyleAttach(p *Parser, left ast.Node, openTok lexer.Token, _ bool) ast.Node {
	stmt := finalizeStatement(p, left)
	style := parseStyleMappingBody(p, openTok)

	attachStyle(stmt, style)

	return stmt
}

func attachStyle(stmt ast.Statement, style *ast.StyleMapping) {
	switch s := stmt.(type) {
	case *ast.ExprStatement:
		s.Style = style
	case *ast.Text:
		s.Style = style
	case *ast.Table:
		s.Style = style
	case *ast.Image:
		s.Style = style
	case *ast.Folder:
		s.Style = style
	case *ast.Settings:
		s.Style = style
	case *ast.Ticker:
		s.Style = style
	}
}
