package decl

import (
	"fmt"

	"abilower/stypes"
	"abilower/wellknown"
)

// SymbolTable resolves syntactic type references into the canonical type
// model, tracking every TypeDecl handle declared by the module under
// lowering alongside the well-known registry's handles.  It is built once
// per module and read-only for the rest of the pipeline -- the same
// read-only-after-construction discipline the well-known registry follows.
type SymbolTable struct {
	moduleName string
	wk         *wellknown.Registry

	// decls maps a declared type's simple name to its TypeDecl, scoped to
	// this module.  Language S allows nested types in principle, but the
	// declarations this module lowers are only ever found at module scope,
	// so a flat map is sufficient.
	decls map[string]*stypes.TypeDecl

	// public records which declared names are publicly visible.
	public map[string]bool
}

// NewSymbolTable builds a symbol table for moduleName, seeded with the
// well-known registry's declarations so that resolution of stdlib type names
// (Int32, UnsafePointer, ...) falls out of the same lookup path as
// resolution of the module's own declarations.
func NewSymbolTable(moduleName string, wk *wellknown.Registry) *SymbolTable {
	return &SymbolTable{
		moduleName: moduleName,
		wk:         wk,
		decls:      make(map[string]*stypes.TypeDecl),
		public:     make(map[string]bool),
	}
}

// DeclareType registers a type declared by the module under lowering,
// returning the TypeDecl handle other structures should point at.
func (st *SymbolTable) DeclareType(td *TypeDeclSyntax) *stypes.TypeDecl {
	decl := &stypes.TypeDecl{
		Name:       td.Name,
		ModuleName: st.moduleName,
		Kind:       td.Kind,
	}

	st.decls[td.Name] = decl
	st.public[td.Name] = td.Visibility == VisPublic

	return decl
}

// LookupTypeDecl resolves a bare name to a TypeDecl, checking the
// well-known registry before the module's own declarations -- Language S
// does not allow a module to shadow a standard-library name, so this order
// is just a lookup-cost optimization, not one any caller depends on.
func (st *SymbolTable) LookupTypeDecl(name string) (*stypes.TypeDecl, bool) {
	if d, ok := st.wk.Decls[name]; ok {
		return d, true
	}

	d, ok := st.decls[name]
	return d, ok
}

// IsPublicType reports whether the named module-local type declaration is
// public.  Well-known stdlib declarations are always importable and report
// true unconditionally.
func (st *SymbolTable) IsPublicType(name string) bool {
	if _, ok := st.wk.Decls[name]; ok {
		return true
	}

	return st.public[name]
}

// ResolveType turns a syntactic type reference into a canonical type,
// failing with an UnresolvedType-flavored error if ref names a declaration
// this symbol table has never heard of.
func (st *SymbolTable) ResolveType(ref *TypeRef) (stypes.Type, error) {
	if ref == nil {
		return stypes.Void(), nil
	}

	switch {
	case ref.FunctionResult != nil:
		params := make([]stypes.Type, len(ref.FunctionParams))
		for i, p := range ref.FunctionParams {
			t, err := st.ResolveType(p)
			if err != nil {
				return nil, err
			}
			params[i] = t
		}

		result, err := st.ResolveType(ref.FunctionResult)
		if err != nil {
			return nil, err
		}

		return st.wrapOptional(ref, &stypes.Function{ParamTypes: params, ResultType: result})

	case ref.TupleElements != nil:
		elems := make([]stypes.Type, len(ref.TupleElements))
		for i, e := range ref.TupleElements {
			t, err := st.ResolveType(e)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}

		return st.wrapOptional(ref, &stypes.Tuple{Elements: elems})

	default:
		decl, ok := st.LookupTypeDecl(ref.Name)
		if !ok {
			return nil, fmt.Errorf("unresolved type %q", ref.Name)
		}

		var args []stypes.Type
		for _, a := range ref.GenericArgs {
			t, err := st.ResolveType(a)
			if err != nil {
				return nil, err
			}
			args = append(args, t)
		}

		return st.wrapOptional(ref, &stypes.Nominal{Decl: decl, GenericArgs: args})
	}
}

func (st *SymbolTable) wrapOptional(ref *TypeRef, t stypes.Type) (stypes.Type, error) {
	if ref.IsOptional {
		return &stypes.Optional{Wrapped: t}, nil
	}

	return t, nil
}

// Registry exposes the well-known registry this symbol table was built
// against, for callers (eg. package sig) that need to classify a resolved
// type's declaration without going back through name lookup.
func (st *SymbolTable) Registry() *wellknown.Registry {
	return st.wk
}
