// Package stypes is the canonical representation of Language S types: the
// leaf layer of the lowering pipeline.  It is a closed tagged variant over
// nominal, tuple, metatype, function, and optional types, together with the
// nominal-kind classification and pointer-family recognition that the
// Lowering Engine dispatches on.
package stypes

import "strings"

// Type is the interface implemented by every member of the type tagged
// variant.  New cases are added here, not by introducing unrelated types
// elsewhere -- pattern-match exhaustiveness over the cases below is the
// primary correctness tool for the Lowering Engine.
type Type interface {
	// Repr returns a human-readable representation of the type, used in
	// diagnostics and in rendered thunk/C declaration text.
	Repr() string

	// equals reports true equality (not coercion) between two types.  It is
	// only meaningful when called on like-kinded operands.
	equals(other Type) bool
}

// Equals reports whether two types are identical.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// -----------------------------------------------------------------------------

// NominalKind classifies the kind of declaration a Nominal type refers to.
type NominalKind int

const (
	KindClass NominalKind = iota
	KindActor
	KindStruct
	KindEnum
	KindProtocol
)

func (k NominalKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindActor:
		return "actor"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// IsReferenceKind returns true for the two reference-semantic nominal kinds:
// class and actor.  These are lowered by reinterpreting a pointer-sized word
// as an object reference rather than by indirecting through storage.
func (k NominalKind) IsReferenceKind() bool {
	return k == KindClass || k == KindActor
}

// -----------------------------------------------------------------------------

// TypeDecl is a handle into the symbol table identifying one declared
// nominal type.  TypeDecls are owned by the symbol table; every other
// structure in this package only ever holds a pointer to one -- there are no
// cycles in the type graph because Nominal never embeds a TypeDecl by value.
type TypeDecl struct {
	Name       string
	ModuleName string
	Parent     *TypeDecl
	Kind       NominalKind
}

// IsStdlibRoot reports whether this declaration is a non-nested declaration
// in the standard library module, which is the shape every well-known
// nominal (primitives, pointer families) takes.
func (d *TypeDecl) IsStdlibRoot(stdlibModule string) bool {
	return d.ModuleName == stdlibModule && d.Parent == nil
}

// -----------------------------------------------------------------------------

// Nominal is a reference to a declared type, optionally applied to generic
// arguments (used only by the pointer-family element type, eg. the `T` in
// `UnsafePointer<T>`).
type Nominal struct {
	Decl        *TypeDecl
	GenericArgs []Type
}

func (n *Nominal) Repr() string {
	if len(n.GenericArgs) == 0 {
		return n.Decl.Name
	}

	args := make([]string, len(n.GenericArgs))
	for i, a := range n.GenericArgs {
		args[i] = a.Repr()
	}

	return n.Decl.Name + "<" + strings.Join(args, ", ") + ">"
}

func (n *Nominal) equals(other Type) bool {
	on, ok := other.(*Nominal)
	if !ok || n.Decl != on.Decl || len(n.GenericArgs) != len(on.GenericArgs) {
		return false
	}

	for i, a := range n.GenericArgs {
		if !Equals(a, on.GenericArgs[i]) {
			return false
		}
	}

	return true
}

// ElementType returns the sole generic argument of a single-parameter
// generic nominal (eg. the `T` of `UnsafePointer<T>`), panicking if there
// is none; any arguments after the first are ignored. Callers must only use
// this on pointer families that the well-known registry marked as requiring
// an element type.
func (n *Nominal) ElementType() Type {
	return n.GenericArgs[0]
}

// -----------------------------------------------------------------------------

// Tuple is an ordered sequence of element types.  The empty tuple is the
// canonical representation of void.
type Tuple struct {
	Elements []Type
}

// Void is the canonical empty tuple.
func Void() *Tuple {
	return &Tuple{}
}

// IsVoid reports whether t is the canonical empty tuple.
func IsVoid(t Type) bool {
	tup, ok := t.(*Tuple)
	return ok && len(tup.Elements) == 0
}

func (t *Tuple) Repr() string {
	if len(t.Elements) == 0 {
		return "()"
	}

	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.Repr()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

func (t *Tuple) equals(other Type) bool {
	ot, ok := other.(*Tuple)
	if !ok || len(t.Elements) != len(ot.Elements) {
		return false
	}

	for i, e := range t.Elements {
		if !Equals(e, ot.Elements[i]) {
			return false
		}
	}

	return true
}

// -----------------------------------------------------------------------------

// Metatype is the "type of a type": the first-class value representing the
// type identity of Instance.
type Metatype struct {
	Instance Type
}

func (m *Metatype) Repr() string {
	return m.Instance.Repr() + ".Type"
}

func (m *Metatype) equals(other Type) bool {
	om, ok := other.(*Metatype)
	return ok && Equals(m.Instance, om.Instance)
}

// -----------------------------------------------------------------------------

// Function represents a closure/function-typed value.  It is never
// supported by the Lowering Engine; it exists in the type model purely so
// the engine can recognize and reject it by type switch.
type Function struct {
	ParamTypes []Type
	ResultType Type
}

func (f *Function) Repr() string {
	parts := make([]string, len(f.ParamTypes))
	for i, p := range f.ParamTypes {
		parts[i] = p.Repr()
	}

	return "(" + strings.Join(parts, ", ") + ") -> " + f.ResultType.Repr()
}

func (f *Function) equals(other Type) bool {
	of, ok := other.(*Function)
	if !ok || len(f.ParamTypes) != len(of.ParamTypes) {
		return false
	}

	for i, p := range f.ParamTypes {
		if !Equals(p, of.ParamTypes[i]) {
			return false
		}
	}

	return Equals(f.ResultType, of.ResultType)
}

// -----------------------------------------------------------------------------

// Optional represents an optional-wrapped type.  Like Function, it is never
// supported by the Lowering Engine.
type Optional struct {
	Wrapped Type
}

func (o *Optional) Repr() string {
	return o.Wrapped.Repr() + "?"
}

func (o *Optional) equals(other Type) bool {
	oo, ok := other.(*Optional)
	return ok && Equals(o.Wrapped, oo.Wrapped)
}
