package cabi

import (
	"testing"

	"abilower/sig"
	"abilower/stypes"
	"abilower/wellknown"

	lltypes "github.com/llir/llvm/ir/types"
)

func TestProjectPrimitiveSignature(t *testing.T) {
	wk := wellknown.New()

	i32 := &stypes.Nominal{Decl: wk.Decls["Int32"]}

	cdecl := &sig.Signature{
		Parameters: []*sig.Parameter{
			{ParameterName: "x", Type: i32, IsPrimitive: true},
			{ParameterName: "y", Type: i32, IsPrimitive: true},
		},
		Result: sig.ResultSpec{Type: i32},
	}

	fn, err := Project(wk, "add_c", cdecl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fn.ResultType != lltypes.I32 {
		t.Fatalf("expected I32 result, got %v", fn.ResultType)
	}

	if len(fn.Parameters) != 2 || fn.Parameters[0].Type != lltypes.I32 {
		t.Fatalf("unexpected parameters: %+v", fn.Parameters)
	}

	if got, want := fn.Render(), "int32_t add_c(int32_t x, int32_t y);"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestProjectVoidSignature(t *testing.T) {
	wk := wellknown.New()

	cdecl := &sig.Signature{Result: sig.ResultSpec{Type: stypes.Void()}}

	fn, err := Project(wk, "bump_c", cdecl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := fn.Render(), "void bump_c(void);"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestProjectPointerFamilyIsOpaquePointer(t *testing.T) {
	wk := wellknown.New()
	rawPtrDecl := wk.Decls["UnsafeRawPointer"]

	cdecl := &sig.Signature{
		Parameters: []*sig.Parameter{
			{ParameterName: "p_pointer", Type: &stypes.Nominal{Decl: rawPtrDecl}},
		},
		Result: sig.ResultSpec{Type: stypes.Void()},
	}

	fn, err := Project(wk, "store_c", cdecl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fn.Parameters[0].Type != lltypes.I8Ptr {
		t.Fatalf("expected an opaque pointer, got %v", fn.Parameters[0].Type)
	}

	if got, want := fn.Render(), "void store_c(void* p_pointer);"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestProjectRejectsNonCRepresentableType(t *testing.T) {
	wk := wellknown.New()

	userDecl := &stypes.TypeDecl{Name: "Point", ModuleName: "App", Kind: stypes.KindStruct}
	cdecl := &sig.Signature{
		Parameters: []*sig.Parameter{{ParameterName: "p", Type: &stypes.Nominal{Decl: userDecl}}},
		Result:     sig.ResultSpec{Type: stypes.Void()},
	}

	if _, err := Project(wk, "bad_c", cdecl); err == nil {
		t.Fatal("a bare user-module nominal should never reach the cdecl layer; expected an error")
	}
}

func TestPrimitiveCTypeMapping(t *testing.T) {
	cases := []struct {
		pk           wellknown.PrimitiveKind
		wantType     lltypes.Type
		wantSpelling string
	}{
		{wellknown.PrimInt8, lltypes.I8, "int8_t"},
		{wellknown.PrimUInt8, lltypes.I8, "uint8_t"},
		{wellknown.PrimInt16, lltypes.I16, "int16_t"},
		{wellknown.PrimUInt16, lltypes.I16, "uint16_t"},
		{wellknown.PrimInt32, lltypes.I32, "int32_t"},
		{wellknown.PrimUInt32, lltypes.I32, "uint32_t"},
		{wellknown.PrimInt64, lltypes.I64, "int64_t"},
		{wellknown.PrimUInt64, lltypes.I64, "uint64_t"},
		{wellknown.PrimInt, lltypes.I64, "intptr_t"},
		{wellknown.PrimUInt, lltypes.I64, "uintptr_t"},
		{wellknown.PrimFloat, lltypes.Float, "float"},
		{wellknown.PrimDouble, lltypes.Double, "double"},
		{wellknown.PrimBool, lltypes.I1, "bool"},
	}

	for _, c := range cases {
		gotType, gotSpelling := primitiveCType(c.pk)
		if gotType != c.wantType {
			t.Fatalf("primitiveCType(%v) type = %v, want %v", c.pk, gotType, c.wantType)
		}
		if gotSpelling != c.wantSpelling {
			t.Fatalf("primitiveCType(%v) spelling = %q, want %q", c.pk, gotSpelling, c.wantSpelling)
		}
	}
}

// Int64 and UInt64 both project onto the same I64 LLVM-lattice type as Int
// and UInt, but must render with their own fixed-width C spellings rather
// than collapsing onto intptr_t.
func TestRenderDistinguishesInt64FromPlatformInt(t *testing.T) {
	wk := wellknown.New()
	i64 := &stypes.Nominal{Decl: wk.Decls["Int64"]}
	u64 := &stypes.Nominal{Decl: wk.Decls["UInt64"]}

	cdecl := &sig.Signature{
		Parameters: []*sig.Parameter{
			{ParameterName: "a", Type: i64, IsPrimitive: true},
			{ParameterName: "b", Type: u64, IsPrimitive: true},
		},
		Result: sig.ResultSpec{Type: i64},
	}

	fn, err := Project(wk, "wide_add_c", cdecl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := fn.Render(), "int64_t wide_add_c(int64_t a, uint64_t b);"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

// An unsigned primitive renders with its own unsigned C spelling rather
// than the signed spelling of its same-width counterpart.
func TestRenderUsesUnsignedSpellingForUnsignedPrimitives(t *testing.T) {
	wk := wellknown.New()
	u8 := &stypes.Nominal{Decl: wk.Decls["UInt8"]}

	cdecl := &sig.Signature{
		Parameters: []*sig.Parameter{{ParameterName: "b", Type: u8, IsPrimitive: true}},
		Result:     sig.ResultSpec{Type: stypes.Void()},
	}

	fn, err := Project(wk, "byte_store_c", cdecl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := fn.Render(), "void byte_store_c(uint8_t b);"; got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}
