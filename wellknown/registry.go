// Package wellknown holds the small, process-wide table of standard-library
// nominal declarations that the Lowering Engine dispatches on by name: the
// pointer-family types and the primitive numeric types.  The table is built
// once at process start and never mutated afterward: the only shared state
// during lowering is read-only.
package wellknown

import "abilower/stypes"

// StdlibModule is the module name well-known nominals are declared in.
const StdlibModule = "Swift"

// PrimitiveKind enumerates the primitive numeric/boolean kinds recognized by
// the Lowering Engine.  Int/UInt are distinguished from the fixed-width
// kinds because they lower to the host's pointer-sized integer rather than
// to a type of their own fixed width.
type PrimitiveKind int

const (
	PrimInt8 PrimitiveKind = iota
	PrimUInt8
	PrimInt16
	PrimUInt16
	PrimInt32
	PrimUInt32
	PrimInt64
	PrimUInt64
	PrimInt
	PrimUInt
	PrimFloat
	PrimDouble
	PrimBool
)

// PointerFamily classifies one of the raw/typed/buffer pointer nominals by
// the three orthogonal axes the Lowering Engine branches on.
type PointerFamily struct {
	// RequiresElementType is true for the typed and buffer-typed families
	// (UnsafePointer<T> and friends) which carry a generic element type.
	RequiresElementType bool

	// Mutable is true for the "Mutable" spellings, which lower to
	// UnsafeMutableRawPointer rather than UnsafeRawPointer at the cdecl
	// level.
	Mutable bool

	// HasCount is true for the buffer-pointer families, which lower to two
	// cdecl parameters (`_pointer`, `_count`) instead of one.
	HasCount bool
}

// Registry is the immutable set of well-known declarations and their
// classifications, along with the TypeDecl handles that Nominal types in
// the type model point to.
type Registry struct {
	PointerFamilies map[string]PointerFamily
	Primitives      map[string]PrimitiveKind

	// Decls maps every well-known name (pointer family or primitive) to the
	// TypeDecl handle the symbol table should hand back when it resolves
	// that name at the top level of the standard library module.
	Decls map[string]*stypes.TypeDecl
}

// New builds the well-known registry.  It is meant to be called exactly
// once at process start; the returned Registry is safe to share across
// goroutines without locking since nothing mutates it afterward.
func New() *Registry {
	r := &Registry{
		PointerFamilies: map[string]PointerFamily{
			"UnsafeRawPointer":               {RequiresElementType: false, Mutable: false, HasCount: false},
			"UnsafeMutableRawPointer":        {RequiresElementType: false, Mutable: true, HasCount: false},
			"UnsafePointer":                  {RequiresElementType: true, Mutable: false, HasCount: false},
			"UnsafeMutablePointer":           {RequiresElementType: true, Mutable: true, HasCount: false},
			"UnsafeBufferPointer":            {RequiresElementType: true, Mutable: false, HasCount: true},
			"UnsafeMutableBufferPointer":     {RequiresElementType: true, Mutable: true, HasCount: true},
			"UnsafeRawBufferPointer":         {RequiresElementType: false, Mutable: false, HasCount: true},
			"UnsafeMutableRawBufferPointer":  {RequiresElementType: false, Mutable: true, HasCount: true},
		},
		Primitives: map[string]PrimitiveKind{
			"Int8":   PrimInt8,
			"UInt8":  PrimUInt8,
			"Int16":  PrimInt16,
			"UInt16": PrimUInt16,
			"Int32":  PrimInt32,
			"UInt32": PrimUInt32,
			"Int64":  PrimInt64,
			"UInt64": PrimUInt64,
			"Int":    PrimInt,
			"UInt":   PrimUInt,
			"Float":  PrimFloat,
			"Double": PrimDouble,
			"Bool":   PrimBool,
		},
		Decls: make(map[string]*stypes.TypeDecl),
	}

	for name := range r.PointerFamilies {
		r.Decls[name] = &stypes.TypeDecl{Name: name, ModuleName: StdlibModule, Kind: stypes.KindStruct}
	}

	for name := range r.Primitives {
		r.Decls[name] = &stypes.TypeDecl{Name: name, ModuleName: StdlibModule, Kind: stypes.KindStruct}
	}

	return r
}

// LookupPointerFamily returns the pointer-family classification for decl, if
// decl is a well-known pointer family declared at the root of the standard
// library module.
func (r *Registry) LookupPointerFamily(decl *stypes.TypeDecl) (PointerFamily, bool) {
	if !decl.IsStdlibRoot(StdlibModule) {
		return PointerFamily{}, false
	}

	pf, ok := r.PointerFamilies[decl.Name]
	return pf, ok
}

// LookupPrimitive returns the primitive kind for decl, if decl is a
// well-known primitive declared at the root of the standard library module.
func (r *Registry) LookupPrimitive(decl *stypes.TypeDecl) (PrimitiveKind, bool) {
	if !decl.IsStdlibRoot(StdlibModule) {
		return 0, false
	}

	pk, ok := r.Primitives[decl.Name]
	return pk, ok
}
