/*
File   : graphscript/lexer/token.go
Package: lexer
*/
package lexer

import "fmt"

// Kind classifies a lexical token. The categories mirror the shape of
// the grammar rather than any single punctuation mark: most punctuation
// strings share the Punct kind and are disambiguated by Lexeme.
type Kind int

const (
	EOF     Kind = iota // synthesized at the end of input, repeatedly at the same offset
	Comment             // "// ..." to end of line, not including the newline
	Number              // 3, 3.14, .5, 1e10
	Punct               // any of the fixed punctuation strings
	ID                  // [A-Za-z][A-Za-z0-9_]*, not a reserved word
	Keyword             // ID lexeme promoted because it matches a reserved word
	String              // "..." with backslash escapes
	Prime               // a run of one or more '
	Semi                // ';' or a whitespace run containing 2+ newlines
	Space               // any other run of whitespace
	Invalid             // a single unrecognized character (one UTF-8 encoded rune)
)

var kindNames = [...]string{
	EOF:     "EOF",
	Comment: "Comment",
	Number:  "Number",
	Punct:   "Punct",
	ID:      "ID",
	Keyword: "Keyword",
	String:  "String",
	Prime:   "Prime",
	Semi:    "Semi",
	Space:   "Space",
	Invalid: "Invalid",
}

// String implements fmt.Stringer, mostly for diagnostics and test output.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit: its classification, its exact source text,
// and enough position data to report useful diagnostics and to compute
// AST node spans.
type Token struct {
	Kind       Kind
	Lexeme     string
	Offset     int // byte offset of the first byte of Lexeme
	Line       int // 1-based
	Column     int // 0-based, counted in bytes within the line
	LineBreaks int // number of '\n' contained in Lexeme (0 for most tokens)
}

// End returns the byte offset one past the last byte of the token.
func (t Token) End() int {
	return t.Offset + len(t.Lexeme)
}

// keywords is the reserved-word table from spec §4.1. Any identifier
// lexeme matching one of these is promoted from ID to Keyword.
var keywords = map[string]bool{
	"table":    true,
	"image":    true,
	"settings": true,
	"folder":   true,
	"ticker":   true,
	"for":      true,
	"integral": true,
	"sum":      true,
	"product":  true,
	"of":       true,
	"with":     true,
}

// IsKeyword reports whether lexeme is a reserved word.
func IsKeyword(lexeme string) bool {
	return keywords[lexeme]
}
