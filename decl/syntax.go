// Package decl is the minimal syntax-tree surface the Lowering Engine and
// Declaration Visitor operate over: a fixture representation of the
// declarations a Language S module exposes, plus the SymbolTable that
// resolves syntactic type references into the canonical type model.
//
// This is deliberately not a full parser/AST -- parsing and semantic
// checking of Language S source is assumed to be already-done upstream
// work, and this package only names the shape the Lowering Engine consumes.
// Call sites that would normally build this tree from source text build it
// directly instead.
package decl

import "abilower/stypes"

// Visibility mirrors Language S's access levels, restricted to the two that
// importability actually branches on.
type Visibility int

const (
	VisInternal Visibility = iota
	VisPublic
)

// TypeRef is a syntactic reference to a type: either a name to resolve
// against the symbol table (possibly with generic arguments), or one of the
// two compound forms -- tuple and function -- allowed on a parameter or
// result.
type TypeRef struct {
	// Name is the referenced type's name, eg. "Int32" or "Counter".  Empty
	// for the tuple and function forms.
	Name string

	// ModuleName names the module Name was written against. SymbolTable
	// does not read it: Name always resolves through the well-known registry
	// first and then the module's own declarations.
	ModuleName string

	GenericArgs []*TypeRef

	// TupleElements, if non-nil (even if empty, for void), makes this a
	// tuple type reference instead of a nominal one.
	TupleElements []*TypeRef

	// IsOptional wraps the resolved type in Optional.
	IsOptional bool

	// FunctionParams/FunctionResult, if FunctionResult is non-nil, make this
	// a function type reference.
	FunctionParams []*TypeRef
	FunctionResult *TypeRef
}

// ParamSyntax is one parameter of a function, initializer, or subscript.
type ParamSyntax struct {
	ArgumentLabel string
	ParameterName string
	Type          *TypeRef
	IsInout       bool
}

// FuncSyntax is a free function, instance method, or static/class method.
type FuncSyntax struct {
	Name       string
	Visibility Visibility
	IsStatic   bool

	// IsMutating marks an instance method declared `mutating` on a value
	// type (struct/enum/protocol). It has no effect on a reference type
	// (class/actor), whose self is always passed as a pointer regardless.
	IsMutating bool

	Params []*ParamSyntax
	Result *TypeRef // nil means void
}

// InitSyntax is a type's initializer.
type InitSyntax struct {
	Visibility Visibility
	Params     []*ParamSyntax
	IsFailable bool
}

// PropertySyntax is a stored or computed property.  Global (module-level)
// properties use this same shape with EnclosingType left unset by the
// visitor's traversal context rather than by a field here.
type PropertySyntax struct {
	Name       string
	Visibility Visibility
	IsStatic   bool
	Type       *TypeRef // nil means the property has no type annotation
	HasSetter  bool

	// MangledName, if non-empty, is a caller-supplied cdecl symbol name for
	// this property's getter, overriding the one cdeclSymbolName would
	// otherwise synthesize. A setter, when present, gets MangledName with
	// "_set" appended so the two accessors don't collide.
	MangledName string
}

// TypeDeclSyntax is a class, actor, struct, enum, or protocol declaration,
// together with the members nested inside it.
type TypeDeclSyntax struct {
	Name       string
	Visibility Visibility
	Kind       stypes.NominalKind

	Funcs      []*FuncSyntax
	Inits      []*InitSyntax
	Properties []*PropertySyntax

	// Extension marks this declaration as an extension block rather than a
	// primary type declaration.  An extension member is importable only if
	// both the member itself and the extended type are public -- the
	// extension block's own visibility doesn't independently gate anything.
	Extension bool
}

// Module is the top-level fixture: every type declared at module scope plus
// every property declared directly at module scope (global properties).
type Module struct {
	Name             string
	Types            []*TypeDeclSyntax
	GlobalProperties []*PropertySyntax
}
