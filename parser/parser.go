/*
File   : graphscript/parser/parser.go
Package: parser

Package parser implements a Pratt (precedence-climbing) parser for the
graphing-calculator expression language: a lexer-driven dispatch of
initial parselets (for tokens that begin an expression or statement) and
consequent parselets (for infix/postfix/mixfix continuations), each
tagged with a binding power.

The parser never discards the program on the first error: a fatal
failure unwinds only to the nearest statement boundary via the bailout
signal in state.go, where the statement loop resynchronizes on the next
semicolon and keeps going.
*/
package parser

import (
	"fmt"

	"github.com/arolyn-dev/graphscript/ast"
	"github.com/arolyn-dev/graphscript/diag"
	"github.com/arolyn-dev/graphscript/lexer"
	"github.com/arolyn-dev/graphscript/names"
)

// initialParselet handles a token that opens an expression or statement.
type initialParselet func(p *Parser, tok lexer.Token) ast.Node

// consequentParselet handles a token that extends an already-parsed
// left operand. topLevelEq is true only for the "=" continuation of the
// outermost parseMain call of a statement (spec §4.3).
type consequentParselet func(p *Parser, left ast.Node, tok lexer.Token, topLevelEq bool) ast.Node

// Parser holds one parse's dispatch tables, lexer state, and the
// identifier normalization set. Create one with New per call to Parse;
// nothing here is reused across parses.
type Parser struct {
	state *State
	names names.Set

	initialByKind  map[lexer.Kind]initialParselet
	initialPunct   map[string]initialParselet
	initialKeyword map[string]initialParselet

	consequentByKind  map[lexer.Kind]consequentParselet
	consequentPunct   map[string]consequentParselet
	consequentKeyword map[string]consequentParselet
}

// New creates a Parser over src, reporting diagnostics into diags and
// resolving identifiers against set.
func New(src string, set names.Set, diags *diag.Bag) *Parser {
	p := &Parser{
		state: NewState(src, diags),
		names: set,

		initialByKind:  make(map[lexer.Kind]initialParselet),
		initialPunct:   make(map[string]initialParselet),
		initialKeyword: make(map[string]initialParselet),

		consequentByKind:  make(map[lexer.Kind]consequentParselet),
		consequentPunct:   make(map[string]consequentParselet),
		consequentKeyword: make(map[string]consequentParselet),
	}

	p.registerInitialParselets()
	p.registerConsequentParselets()

	return p
}

// Parse runs a complete parse of source against set, returning the
// ordered diagnostics and a best-effort Program. It never panics: the
// only non-local control flow inside a parse (the bailout signal) is
// caught at the statement loop.
func Parse(source []byte, set names.Set) ([]diag.Diagnostic, *ast.Program) {
	var diags diag.Bag
	p := New(string(source), set, &diags)

	program := p.parseProgram()

	return diags.All(), program
}

func (p *Parser) registerInitial(kind lexer.Kind, fn initialParselet) {
	p.initialByKind[kind] = fn
}

func (p *Parser) registerInitialPunct(fn initialParselet, lexemes ...string) {
	for _, l := range lexemes {
		p.initialPunct[l] = fn
	}
}

func (p *Parser) registerInitialKeyword(fn initialParselet, lexemes ...string) {
	for _, l := range lexemes {
		p.initialKeyword[l] = fn
	}
}

func (p *Parser) registerConsequentPunct(fn consequentParselet, lexemes ...string) {
	for _, l := range lexemes {
		p.consequentPunct[l] = fn
	}
}

func (p *Parser) registerConsequentKeyword(fn consequentParselet, lexemes ...string) {
	for _, l := range lexemes {
		p.consequentKeyword[l] = fn
	}
}

func (p *Parser) registerConsequentKind(kind lexer.Kind, fn consequentParselet) {
	p.consequentByKind[kind] = fn
}

func (p *Parser) initialFor(tok lexer.Token) initialParselet {
	switch tok.Kind {
	case lexer.Punct:
		return p.initialPunct[tok.Lexeme]
	case lexer.Keyword:
		return p.initialKeyword[tok.Lexeme]
	default:
		return p.initialByKind[tok.Kind]
	}
}

func (p *Parser) consequentFor(tok lexer.Token) consequentParselet {
	switch tok.Kind {
	case lexer.Punct:
		return p.consequentPunct[tok.Lexeme]
	case lexer.Keyword:
		return p.consequentKeyword[tok.Lexeme]
	default:
		return p.consequentByKind[tok.Kind]
	}
}

// parseMain is the heart of the dispatcher: consume one leading token
// via its initial parselet, then keep extending the result through
// consequent parselets as long as the next token's binding power beats
// lastBp.
func (p *Parser) parseMain(lastBp bindingPower, isStatementTop bool) ast.Node {
	tok := p.state.Consume("")

	initial := p.initialFor(tok)
	if initial == nil {
		p.state.PushFatalError(fmt.Sprintf("Unexpected text: %q.", tok.Lexeme), spanOf(tok))
	}

	left := initial(p, tok)

	for {
		peek := p.state.Peek()

		bp, ok := consequentBp(peek.Kind, peek.Lexeme)
		if !ok || bp <= lastBp {
			break
		}

		topLevelEq := isStatementTop && peek.Kind == lexer.Punct && peek.Lexeme == "="

		tok2 := p.state.Consume("")
		cons := p.consequentFor(tok2)
		if cons == nil {
			break
		}

		left = cons(p, left, tok2, topLevelEq)
	}

	return left
}

func spanOf(tok lexer.Token) *diag.Span {
	return &diag.Span{From: tok.Offset, To: tok.End()}
}
