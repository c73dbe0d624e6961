// Package sig is the Signature Model: it builds a FunctionSignature from a
// syntactic declaration and an optional enclosing-type context, resolving
// parameter and result types through a symbol table.  Signatures built here
// feed directly into the Lowering Engine (package lower).
package sig

import "abilower/stypes"

// Convention classifies how a value is passed: by value (copied/borrowed in
// directly), by mutable reference (inout), or -- for results only -- the
// single "direct" convention every original result uses.
type Convention int

const (
	ByValue Convention = iota
	Inout
	Direct
)

func (c Convention) String() string {
	switch c {
	case ByValue:
		return "byValue"
	case Inout:
		return "inout"
	default:
		return "direct"
	}
}

// Parameter is used both for a declaration's original parameters and,
// reused verbatim, for the flat list of cdecl parameters a lowering
// produces -- an original parameter and a cdecl parameter have the same
// shape, so there is no separate type for the two.
type Parameter struct {
	Convention Convention

	// ArgumentLabel is the label used at the call site (eg. `by` in
	// `translated(by:)`).  Empty for cdecl parameters and for original
	// parameters declared with no label (`_`).
	ArgumentLabel string

	// ParameterName is the local binding name.
	ParameterName string

	Type stypes.Type

	// IsPrimitive is set by the Lowering Engine on cdecl parameters that
	// passed a well-known primitive type through unchanged.  It is unused
	// (false) on original, not-yet-lowered parameters.
	IsPrimitive bool
}

// ResultSpec is a signature's result: a convention (always Direct for an
// original signature) paired with a type.
type ResultSpec struct {
	Convention Convention
	Type       stypes.Type
}

// Signature is a declaration's original signature, or -- reused verbatim --
// the flattened C-ABI signature of a lowering's cdecl thunk.
type Signature struct {
	// IsStaticOrClass is true for declarations with no implicit self (free
	// functions, and static/class methods).
	IsStaticOrClass bool

	// SelfParameter is present for instance methods, initializers, and
	// instance property accessors.  Always nil on a cdecl signature.
	SelfParameter *Parameter

	Parameters []*Parameter

	Result ResultSpec
}
