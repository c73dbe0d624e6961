package decl

import (
	"testing"

	"abilower/stypes"
	"abilower/wellknown"
)

func TestResolveWellKnownPrimitive(t *testing.T) {
	st := NewSymbolTable("App", wellknown.New())

	typ, err := st.ResolveType(&TypeRef{Name: "Int32"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, ok := typ.(*stypes.Nominal)
	if !ok || n.Decl.Name != "Int32" {
		t.Fatalf("got %#v, want Nominal(Int32)", typ)
	}
}

func TestResolveUnknownNameFails(t *testing.T) {
	st := NewSymbolTable("App", wellknown.New())

	if _, err := st.ResolveType(&TypeRef{Name: "Nonexistent"}); err == nil {
		t.Fatal("expected an error resolving an unknown type name")
	}
}

func TestResolveNilIsVoid(t *testing.T) {
	st := NewSymbolTable("App", wellknown.New())

	typ, err := st.ResolveType(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !stypes.IsVoid(typ) {
		t.Fatalf("a nil type reference (no return clause) should resolve to void, got %s", typ.Repr())
	}
}

func TestDeclareAndResolveModuleType(t *testing.T) {
	st := NewSymbolTable("App", wellknown.New())

	decl := st.DeclareType(&TypeDeclSyntax{Name: "Point", Visibility: VisPublic, Kind: stypes.KindStruct})

	typ, err := st.ResolveType(&TypeRef{Name: "Point"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, ok := typ.(*stypes.Nominal)
	if !ok || n.Decl != decl {
		t.Fatalf("expected the resolved Nominal to point at the declared handle")
	}

	if !st.IsPublicType("Point") {
		t.Fatal("Point was declared public")
	}
}

func TestResolveGenericPointerFamily(t *testing.T) {
	st := NewSymbolTable("App", wellknown.New())

	typ, err := st.ResolveType(&TypeRef{
		Name:        "UnsafePointer",
		GenericArgs: []*TypeRef{{Name: "Int32"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := typ.(*stypes.Nominal)
	if n.Decl.Name != "UnsafePointer" {
		t.Fatalf("got %s", typ.Repr())
	}

	if n.ElementType().Repr() != "Int32" {
		t.Fatalf("expected element type Int32, got %s", n.ElementType().Repr())
	}
}

func TestResolveOptionalAndTuple(t *testing.T) {
	st := NewSymbolTable("App", wellknown.New())

	typ, err := st.ResolveType(&TypeRef{
		IsOptional:    true,
		TupleElements: []*TypeRef{{Name: "Int32"}, {Name: "Int32"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opt, ok := typ.(*stypes.Optional)
	if !ok {
		t.Fatalf("expected an Optional, got %#v", typ)
	}

	if _, ok := opt.Wrapped.(*stypes.Tuple); !ok {
		t.Fatalf("expected the wrapped type to be a Tuple, got %#v", opt.Wrapped)
	}
}
