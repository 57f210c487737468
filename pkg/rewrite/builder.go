package rewrite

import (
	"fmt"
	"go/ast"

	"github.com/yaklabco/callshift/pkg/config"
	"github.com/yaklabco/callshift/pkg/source"
)

// BuildEdit renders the replacement text and target byte range for a
// classified call site. The left operand is always the literal source text
// of its expression; the right operand uses the canonical rendering when it
// is a basic literal, normalizing quoting and escaping differences.
//
// The ternary form replaces the full call expression. The binary form
// replaces the span from the receiver's start to the call's end, so the
// receiver text is consumed by the edit instead of being duplicated in
// front of it.
func BuildEdit(snap *source.Snapshot, rule config.Rule, site CallSite, shape Shape) (start, end int, text string, err error) {
	var left, right ast.Expr

	switch shape {
	case ShapeTernary:
		left, right = site.Args[0], site.Args[1]
		start, end = snap.Offsets(site.Call)
	case ShapeBinary:
		left, right = site.Receiver, site.Args[0]
		start, _ = snap.Offsets(site.Receiver)
		_, end = snap.Offsets(site.Call)
	default:
		return 0, 0, "", fmt.Errorf("cannot build edit for %s call site", shape)
	}

	text = fmt.Sprintf("%s(%s).%s(%s)",
		rule.Outer, snap.Text(left), rule.Inner, operandText(snap, right))
	return start, end, text, nil
}

// operandText renders a right-hand operand: canonical form for basic
// literals, raw source text for everything else.
func operandText(snap *source.Snapshot, expr ast.Expr) string {
	if lit, ok := expr.(*ast.BasicLit); ok {
		if canonical, ok := source.CanonicalLiteral(lit); ok {
			return canonical
		}
	}
	return snap.Text(expr)
}
