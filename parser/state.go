/*
File   : graphscript/parser/state.go
Package: parser

State owns the lexer, a one-token lookahead slot, and the diagnostics
buffer for a single parse. It raises the only non-local control-flow
signal in the system: a fatal error unwinds the Go call stack via
panic(bailout{}) up to the statement loop in statements.go, which is the
sole place that recovers it. Any other panic is not a bailout and
re-propagates untouched.
*/
package parser

import (
	"fmt"

	"github.com/arolyn-dev/graphscript/diag"
	"github.com/arolyn-dev/graphscript/lexer"
)

// bailout is the non-local control-flow signal used to abort the
// current statement. It carries no data; the diagnostic explaining why
// has already been pushed to the Bag before the panic.
type bailout struct{}

// State wraps a Lexer with one-token lookahead and the shared
// diagnostics sink. Space, comment, and invalid tokens are never
// surfaced to the Pratt dispatcher: next() skips them transparently,
// recording one error per invalid occurrence.
type State struct {
	lex     *lexer.Lexer
	lookahd lexer.Token
	diags   *diag.Bag
}

// NewState creates a State reading from src and reporting into diags.
func NewState(src string, diags *diag.Bag) *State {
	s := &State{lex: lexer.New(src), diags: diags}
	s.lookahd = s.next()

	return s
}

// next pulls the next semantically meaningful token from the lexer,
// skipping space/comment tokens and reporting+skipping invalid ones.
func (s *State) next() lexer.Token {
	for {
		tok := s.lex.Next()

		switch tok.Kind {
		case lexer.Space, lexer.Comment:
			continue
		case lexer.Invalid:
			s.pushError(fmt.Sprintf("Invalid character %s", tok.Lexeme), &diag.Span{From: tok.Offset, To: tok.End()})

			continue
		}

		return tok
	}
}

// Peek returns the buffered lookahead token without consuming it.
func (s *State) Peek() lexer.Token { return s.lookahd }

// Consume returns the buffered token and advances the lookahead by one.
// If expected is non-empty and the buffered token's lexeme differs, it
// records an error and keeps consuming tokens until a match or eof —
// reaching eof is fatal.
func (s *State) Consume(expected string) lexer.Token {
	if expected != "" {
		for s.lookahd.Lexeme != expected {
			if s.lookahd.Kind == lexer.EOF {
				s.pushFatalError(fmt.Sprintf("Expected %q but reached end of input.", expected), s.spanOf(s.lookahd))
			}

			s.pushError(fmt.Sprintf("Expected %q but got %q. Skipping it.", expected, s.lookahd.Lexeme), s.spanOf(s.lookahd))
			s.advance()
		}
	}

	tok := s.lookahd
	s.advance()

	return tok
}

// ConsumeType behaves like Consume but matches on token kind.
func (s *State) ConsumeType(kind lexer.Kind) lexer.Token {
	for s.lookahd.Kind != kind {
		if s.lookahd.Kind == lexer.EOF {
			s.pushFatalError(fmt.Sprintf("Expected %s but reached end of input.", kind), s.spanOf(s.lookahd))
		}

		s.pushError(fmt.Sprintf("Expected %s but got %s %q. Skipping it.", kind, s.lookahd.Kind, s.lookahd.Lexeme), s.spanOf(s.lookahd))
		s.advance()
	}

	tok := s.lookahd
	s.advance()

	return tok
}

func (s *State) advance() { s.lookahd = s.next() }

// ScanToNextStatement discards tokens up to and including the next semi
// (or eof). It is used only by the statement loop's recovery path.
func (s *State) ScanToNextStatement() {
	for s.lookahd.Kind != lexer.Semi && s.lookahd.Kind != lexer.EOF {
		s.advance()
	}

	if s.lookahd.Kind == lexer.Semi {
		s.advance()
	}
}

// DiagCount returns how many diagnostics have been recorded so far.
func (s *State) DiagCount() int { return s.diags.Len() }

func (s *State) spanOf(tok lexer.Token) *diag.Span {
	return &diag.Span{From: tok.Offset, To: tok.End()}
}

// PushError records an error diagnostic without aborting the statement.
func (s *State) PushError(message string, span *diag.Span) {
	s.pushError(message, span)
}

// PushWarning records a warning diagnostic.
func (s *State) PushWarning(message string, span *diag.Span) {
	s.diags.Warning(message, span)
}

func (s *State) pushError(message string, span *diag.Span) {
	s.diags.Error(message, span)
}

// PushFatalError records an error diagnostic and aborts the current
// statement via the bailout signal. It never returns.
func (s *State) PushFatalError(message string, span *diag.Span) {
	s.pushFatalError(message, span)
}

func (s *State) pushFatalError(message string, span *diag.Span) {
	s.diags.Error(message, span)
	panic(bailout{})
}
