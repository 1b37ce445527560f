/*
File   : graphscript/parser/precedence.go
Package: parser

The binding-power ladder from low to high. Integer gaps between levels
let a right-associative operator recurse at bp-1 instead of needing a
separate "minus epsilon" representation.
*/
package parser

import "github.com/arolyn-dev/graphscript/lexer"

type bindingPower int

const (
	bpLowest bindingPower = iota * 10
	bpTop                 // the threshold parseMain is entered with at statement top level
	bpMeta                // @{ ... } and #{ ... }
	bpSeq                 // ,
	bpRel                 // < <= = >= >
	bpSim                 // ~
	bpUpdateRule          // ->
	bpSubstitution        // with
	bpDerivative          // implicit binding power of a (d/d x) body
	bpAdd                 // + -
	bpMul                 // * /
	bpPrefix              // unary -
	bpPow                 // ^
	bpPostfix             // !
	bpCall                // ( and '
	bpAccess              // [
	bpMember              // .
)

// consequentBp reports the binding power of a token that can extend an
// already-parsed left operand, and whether any consequent parselet
// applies to it at all. Punctuation that is declared a non-operator
// (spec §4.3: "...", "]", "}", ")", ":", "{", "d/d") returns (0, false)
// and therefore always terminates the enclosing expression.
func consequentBp(kind lexer.Kind, lexeme string) (bindingPower, bool) {
	switch kind {
	case lexer.Prime:
		return bpCall, true
	case lexer.Punct:
		switch lexeme {
		case "+", "-":
			return bpAdd, true
		case "*", "/":
			return bpMul, true
		case "^":
			return bpPow, true
		case "(", "'":
			return bpCall, true
		case "!":
			return bpPostfix, true
		case ".":
			return bpMember, true
		case "[":
			return bpAccess, true
		case "<", "<=", "=", ">=", ">":
			return bpRel, true
		case "->":
			return bpUpdateRule, true
		case ",":
			return bpSeq, true
		case "@{":
			return bpMeta, true
		case "~":
			return bpSim, true
		case "#{":
			return bpMeta, true
		}
	case lexer.Keyword:
		if lexeme == "with" {
			return bpSubstitution, true
		}
	}

	return 0, false
}
