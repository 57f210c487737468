package rewrite

// Shape identifies which rewrite template a call site needs.
type Shape int

const (
	// ShapeUndetermined means the call fits neither recognized form.
	// It is never skipped per-call: one undetermined site invalidates the
	// whole file's batch, because silently skipping a call the engine does
	// not understand would leave the codebase half-migrated.
	ShapeUndetermined Shape = iota

	// ShapeTernary is a call with exactly two explicit arguments; the two
	// arguments become the left and right operands of the replacement.
	ShapeTernary

	// ShapeBinary is a call with exactly one explicit argument and a value
	// receiver; receiver and argument become left and right operands.
	ShapeBinary
)

// String returns the shape name for messages.
func (s Shape) String() string {
	switch s {
	case ShapeTernary:
		return "ternary"
	case ShapeBinary:
		return "binary"
	default:
		return "undetermined"
	}
}

// Classify determines a site's shape. The argument count is checked first:
// two explicit arguments is always the ternary form, receiver or not.
func Classify(site CallSite) Shape {
	if len(site.Args) == 2 {
		return ShapeTernary
	}
	if len(site.Args) == 1 && site.Receiver != nil {
		return ShapeBinary
	}
	return ShapeUndetermined
}
