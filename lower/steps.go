package lower

import "abilower/stypes"

// ConversionStep is the closed tagged variant describing how one original
// argument (or the result) is reconstructed, inside the thunk body, from
// the flat cdecl parameters a lowering produced for it.  Every lowering
// function below builds one of these alongside the cdecl parameter list it
// returns; the Thunk Body Assembler (package thunk) walks the tree to
// render the actual reconstruction expression.
type ConversionStep interface {
	isStep()
}

// Placeholder reconstructs to exactly the named cdecl parameter, unchanged.
// This is the leaf of every conversion tree: primitives, and the raw
// pointer/count cdecl parameters that other steps wrap.
type Placeholder struct {
	CdeclName string
}

func (*Placeholder) isStep() {}

// Component names the two pieces a buffer-pointer lowering can explode
// into.  The round-trip law requires these to be exhaustive and
// non-overlapping; no third component ever appears.
type Component string

const (
	ComponentPointer Component = "pointer"
	ComponentCount   Component = "count"
)

// ExplodedComponent picks out one of the (at most two) cdecl parameters a
// buffer-pointer lowering produced from a single original parameter.
type ExplodedComponent struct {
	Step      ConversionStep
	Component Component
}

func (*ExplodedComponent) isStep() {}

// TypedPointer reinterprets a raw pointer as a pointer to ElemType. Used for
// the typed pointer families, buffer or not (element type from the generic
// argument), and for a value-type nominal passed indirectly (element type is
// the nominal itself).
type TypedPointer struct {
	Step     ConversionStep
	ElemType stypes.Type
}

func (*TypedPointer) isStep() {}

// Pointee dereferences a typed pointer to produce the value it points to.
type Pointee struct {
	Step ConversionStep
}

func (*Pointee) isStep() {}

// PassIndirectly marks that the wrapped step's result should be passed to
// the original call by reference rather than by value -- used for a value
// type (struct/enum/protocol) received as a pointer but required by the
// original signature as a plain value convention.
type PassIndirectly struct {
	Step ConversionStep
}

func (*PassIndirectly) isStep() {}

// UnsafeCastPointer reinterprets a raw pointer as TargetType without going
// through a typed intermediate -- used for every class/actor value (reference
// types), self included, and for metatype parameters.
type UnsafeCastPointer struct {
	Step       ConversionStep
	TargetType stypes.Type
}

func (*UnsafeCastPointer) isStep() {}

// LabeledArgument is one argument of an Initialize step: the original
// argument label paired with the step that reconstructs its value.
type LabeledArgument struct {
	Label string
	Step  ConversionStep
}

// Initialize reconstructs a value by invoking TargetType's initializer with
// the given reconstructed arguments -- lowerPointerFamily constructs one of
// these per buffer-pointer parameter, with two labeled arguments ("start"
// from the pointer component, "count" from the count component), to
// re-synthesize the pointer-family value the flat cdecl pair replaced.
type Initialize struct {
	TargetType stypes.Type
	Args       []LabeledArgument
}

func (*Initialize) isStep() {}

// Tuplify reconstructs a tuple value from the reconstruction steps of its
// elements, in order.
type Tuplify struct {
	Elements []ConversionStep
}

func (*Tuplify) isStep() {}
