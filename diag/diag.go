/*
File   : graphscript/diag/diag.go
Package: diag

An append-only diagnostics sink shared by the lexer's invalid-character
reports and every stage of the parser (spec §2 component 2, §6). A parse
never raises these as Go errors; it collects them and keeps going.
*/
package diag

import (
	"fmt"

	"github.com/arolyn-dev/graphscript/ast"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Span is a half-open byte range into the source, {from, to}. It is the
// same type as ast.Pos, so node positions and diagnostic spans mix freely.
type Span = ast.Pos

// Diagnostic is one reported problem: its severity, a human-readable
// message, and an optional source span (nil when no single span applies;
// the empty-program warning carries {0,0}).
type Diagnostic struct {
	Severity Severity
	Message  string
	Span     *Span
}

func (d Diagnostic) String() string {
	if d.Span == nil {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}

	return fmt.Sprintf("%s [%d,%d): %s", d.Severity, d.Span.From, d.Span.To, d.Message)
}

// Bag accumulates Diagnostics in emission order. The zero value is ready
// to use.
type Bag struct {
	items []Diagnostic
}

// Error appends an error diagnostic.
func (b *Bag) Error(message string, span *Span) {
	b.items = append(b.items, Diagnostic{Severity: Error, Message: message, Span: span})
}

// Errorf appends a formatted error diagnostic.
func (b *Bag) Errorf(span *Span, format string, args ...any) {
	b.Error(fmt.Sprintf(format, args...), span)
}

// Warning appends a warning diagnostic.
func (b *Bag) Warning(message string, span *Span) {
	b.items = append(b.items, Diagnostic{Severity: Warning, Message: message, Span: span})
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}

	return false
}

// Len returns the number of diagnostics recorded so far.
func (b *Bag) Len() int { return len(b.items) }

// All returns the recorded diagnostics in emission order. The returned
// slice is owned by the caller; Bag keeps appending to its own backing
// array independently.
func (b *Bag) All() []Diagnostic {
	out := make([]Diagnostic, len(b.items))
	copy(out, b.items)

	return out
}
