/*
File   : graphscript/names/names.go
Package: names

The non-subscripting set and the "implicit subscript" identifier
normalization rule (spec §4.4). The set is injected into the parser
rather than embedded as a global registry: the caller builds it once as
a hashed set of strings, and it is only read, so it can be shared across
parses.
*/
package names

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a hashed set of identifier names.
type Set struct {
	members map[string]struct{}
}

// NewSet builds a Set from the fragile built-ins, the reserved
// identifiers, and any externally supplied auto-operator/auto-command
// names.
func NewSet(externalNames ...[]string) Set {
	s := Set{members: make(map[string]struct{})}

	for _, n := range fragileBuiltins {
		s.members[n] = struct{}{}
	}

	for _, n := range reservedIdentifiers {
		s.members[n] = struct{}{}
	}

	for _, group := range externalNames {
		for _, n := range group {
			s.members[n] = struct{}{}
		}
	}

	return s
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s.members[name]

	return ok
}

// fragileBuiltins are multi-letter built-in names that must never be
// implicitly subscripted even though they don't come from the external
// operator/command tables (spec §4.4(c)).
var fragileBuiltins = []string{
	"polyGamma", "argmin", "argmax", "uniquePerm", "rtxsqpone", "rtxsqmone", "hypot",
}

// reservedIdentifiers are never implicitly subscripted (spec §4.4(d)).
var reservedIdentifiers = []string{"index", "dt", "else", "true", "false"}

// namesFile is the on-disk shape of the external auto-operator/
// auto-command name table.
type namesFile struct {
	Operators []string `yaml:"operators"`
	Commands  []string `yaml:"commands"`
}

// LoadSet reads the external auto-operator/auto-command name table from
// a YAML file shaped like:
//
//	operators: [sin, cos, ...]
//	commands: [mod, floor, ...]
//
// and combines it with the fixed fragile/reserved names into a Set.
func LoadSet(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("names: reading %s: %w", path, err)
	}

	var parsed namesFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return Set{}, fmt.Errorf("names: parsing %s: %w", path, err)
	}

	return NewSet(parsed.Operators, parsed.Commands), nil
}

// Normalization is the outcome of Normalize: either a usable name or an
// error message to be reported as a diagnostic.
type Normalization struct {
	Name string
	Err  string
}

// Normalize applies the implicit-subscript rule (spec §4.4) to a raw
// lexeme matching [A-Za-z][A-Za-z0-9_]*.
func Normalize(lexeme string, set Set) Normalization {
	parts := strings.Split(lexeme, "_")

	switch len(parts) {
	case 1:
		if len(lexeme) == 1 || set.Contains(lexeme) {
			return Normalization{Name: lexeme}
		}

		return Normalization{Name: string(lexeme[0]) + "_" + lexeme[1:]}

	case 2:
		main, sub := parts[0], parts[1]

		if sub == "" {
			return Normalization{Name: "error", Err: "Cannot end with '_'"}
		}

		if strings.ContainsAny(main, "0123456789") {
			return Normalization{Name: "error", Err: "Digits are not allowed before '_'"}
		}

		return Normalization{Name: main + "_" + sub}

	default:
		return Normalization{Name: "error", Err: "Identifier may contain at most one '_'"}
	}
}
