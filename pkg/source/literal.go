package source

import (
	"go/ast"
	"go/constant"
	"go/token"
	"strconv"
)

// CanonicalLiteral returns the normalized textual rendering of a basic
// literal, independent of how it was written in the source. String and rune
// literals are re-quoted with standard escaping, integers are rendered in
// decimal. Literal kinds without a stable canonical form (floats, imaginary
// numbers) report ok=false and callers fall back to the raw source text.
func CanonicalLiteral(lit *ast.BasicLit) (text string, ok bool) {
	v := constant.MakeFromLiteral(lit.Value, lit.Kind, 0)
	if v.Kind() == constant.Unknown {
		return "", false
	}

	switch lit.Kind {
	case token.STRING:
		return strconv.Quote(constant.StringVal(v)), true
	case token.CHAR:
		r, exact := constant.Int64Val(v)
		if !exact {
			return "", false
		}
		return strconv.QuoteRune(rune(r)), true
	case token.INT:
		return v.ExactString(), true
	default:
		return "", false
	}
}
