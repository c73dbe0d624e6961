package lower

import (
	"testing"

	"abilower/decl"
	"abilower/sig"
	"abilower/stypes"
	"abilower/wellknown"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	wk := wellknown.New()
	return NewContext(wk, decl.NewSymbolTable("App", wk))
}

func int32Type(ctx *Context) stypes.Type {
	d, _ := ctx.Sym.LookupTypeDecl("Int32")
	return &stypes.Nominal{Decl: d}
}

// Scenario 1: public func add(_ x: Int32, _ y: Int32) -> Int32
func TestLowerSignature_Add(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	original := &sig.Signature{
		Parameters: []*sig.Parameter{
			{Convention: sig.ByValue, ParameterName: "x", Type: i32},
			{Convention: sig.ByValue, ParameterName: "y", Type: i32},
		},
		Result: sig.ResultSpec{Convention: sig.Direct, Type: i32},
	}

	lfs, err := LowerSignature(ctx, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lfs.Cdecl.Parameters) != 2 {
		t.Fatalf("expected 2 cdecl parameters, got %d", len(lfs.Cdecl.Parameters))
	}

	if lfs.Result.Indirect {
		t.Fatal("a primitive result should be direct")
	}

	if !lfs.Cdecl.Parameters[0].IsPrimitive {
		t.Fatal("x should lower to a primitive cdecl parameter")
	}
}

// Scenario 2: public func store(into p: UnsafeMutablePointer<Int32>, value: Int32)
func TestLowerSignature_Store(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	ptrDecl, _ := ctx.Sym.LookupTypeDecl("UnsafeMutablePointer")
	ptrType := &stypes.Nominal{Decl: ptrDecl, GenericArgs: []stypes.Type{i32}}

	original := &sig.Signature{
		Parameters: []*sig.Parameter{
			{Convention: sig.ByValue, ArgumentLabel: "into", ParameterName: "p", Type: ptrType},
			{Convention: sig.ByValue, ParameterName: "value", Type: i32},
		},
		Result: sig.ResultSpec{Convention: sig.Direct, Type: stypes.Void()},
	}

	lfs, err := LowerSignature(ctx, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lfs.Cdecl.Parameters) != 2 {
		t.Fatalf("expected 2 cdecl parameters (p_pointer, value), got %d", len(lfs.Cdecl.Parameters))
	}

	if lfs.Cdecl.Parameters[0].ParameterName != "p_pointer" {
		t.Fatalf("expected p_pointer, got %s", lfs.Cdecl.Parameters[0].ParameterName)
	}

	if lfs.Result.Indirect || !stypes.IsVoid(lfs.Result.CdeclType) {
		t.Fatal("a void result should stay direct with a void cdecl type")
	}

	tp, ok := lfs.Parameters[0].CdeclToOriginal.(*TypedPointer)
	if !ok {
		t.Fatalf("expected TypedPointer reconstruction for p, got %#v", lfs.Parameters[0].CdeclToOriginal)
	}
	if !stypes.Equals(tp.ElemType, i32) {
		t.Fatalf("expected TypedPointer element type Int32, got %s", tp.ElemType.Repr())
	}
}

// Scenario 3: public func sum(_ b: UnsafeBufferPointer<Int32>) -> Int
func TestLowerSignature_Sum(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)
	intType, _ := ctx.Sym.LookupTypeDecl("Int")

	bufDecl, _ := ctx.Sym.LookupTypeDecl("UnsafeBufferPointer")
	bufType := &stypes.Nominal{Decl: bufDecl, GenericArgs: []stypes.Type{i32}}

	original := &sig.Signature{
		Parameters: []*sig.Parameter{
			{Convention: sig.ByValue, ParameterName: "b", Type: bufType},
		},
		Result: sig.ResultSpec{Convention: sig.Direct, Type: &stypes.Nominal{Decl: intType}},
	}

	lfs, err := LowerSignature(ctx, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lfs.Cdecl.Parameters) != 2 {
		t.Fatalf("expected 2 cdecl parameters (b_pointer, b_count), got %d", len(lfs.Cdecl.Parameters))
	}

	if lfs.Cdecl.Parameters[1].ParameterName != "b_count" {
		t.Fatalf("expected b_count, got %s", lfs.Cdecl.Parameters[1].ParameterName)
	}

	if lfs.Result.Indirect {
		t.Fatal("Int is a primitive result, should stay direct")
	}

	init, ok := lfs.Parameters[0].CdeclToOriginal.(*Initialize)
	if !ok {
		t.Fatalf("expected an Initialize reconstruction for b, got %#v", lfs.Parameters[0].CdeclToOriginal)
	}
	if len(init.Args) != 2 || init.Args[0].Label != "start" || init.Args[1].Label != "count" {
		t.Fatalf("expected start/count labeled args, got %+v", init.Args)
	}
}

// Scenario 4: a struct method returning the struct by value forces an
// indirect result.
func TestLowerSignature_PointTranslated(t *testing.T) {
	ctx := newTestContext(t)
	pointDecl := ctx.Sym.DeclareType(&decl.TypeDeclSyntax{Name: "Point", Visibility: decl.VisPublic, Kind: stypes.KindStruct})
	pointType := &stypes.Nominal{Decl: pointDecl}

	original := &sig.Signature{
		SelfParameter: &sig.Parameter{Convention: sig.ByValue, ParameterName: "self", Type: pointType},
		Parameters: []*sig.Parameter{
			{Convention: sig.ByValue, ArgumentLabel: "by", ParameterName: "d", Type: pointType},
		},
		Result: sig.ResultSpec{Convention: sig.Direct, Type: pointType},
	}

	lfs, err := LowerSignature(ctx, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !lfs.Result.Indirect {
		t.Fatal("returning a struct by value should select the indirect-result path")
	}

	if !stypes.IsVoid(lfs.Cdecl.Result.Type) {
		t.Fatal("an indirect result's cdecl type should be void")
	}

	// Assembly order: d, then the indirect result parameter, then self.
	names := make([]string, len(lfs.Cdecl.Parameters))
	for i, p := range lfs.Cdecl.Parameters {
		names[i] = p.ParameterName
	}

	want := []string{"d", "_result", "self"}
	if len(names) != len(want) {
		t.Fatalf("got parameters %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got parameters %v, want %v", names, want)
		}
	}

	if lfs.Self == nil {
		t.Fatal("expected a self lowering")
	}
}

// Scenario 5: public class Counter { public func bump() }
func TestLowerSignature_CounterBump(t *testing.T) {
	ctx := newTestContext(t)
	counterDecl := ctx.Sym.DeclareType(&decl.TypeDeclSyntax{Name: "Counter", Visibility: decl.VisPublic, Kind: stypes.KindClass})
	counterType := &stypes.Nominal{Decl: counterDecl}

	original := &sig.Signature{
		SelfParameter: &sig.Parameter{Convention: sig.ByValue, ParameterName: "self", Type: counterType},
		Result:        sig.ResultSpec{Convention: sig.Direct, Type: stypes.Void()},
	}

	lfs, err := LowerSignature(ctx, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lfs.Cdecl.Parameters) != 1 || lfs.Cdecl.Parameters[0].ParameterName != "self" {
		t.Fatalf("expected a single self cdecl parameter, got %+v", lfs.Cdecl.Parameters)
	}

	if _, ok := lfs.Self.CdeclToOriginal.(*UnsafeCastPointer); !ok {
		t.Fatalf("a class self should reconstruct via UnsafeCastPointer, got %#v", lfs.Self.CdeclToOriginal)
	}
}

// A mutating method's self on a value type lowers to a mutable raw pointer
// rather than the read-only one a non-mutating self would use, so writes
// made through it are observable by the caller after the call returns.
func TestLowerSignature_MutatingSelfLowersToMutablePointer(t *testing.T) {
	ctx := newTestContext(t)
	pointDecl := ctx.Sym.DeclareType(&decl.TypeDeclSyntax{Name: "Point", Visibility: decl.VisPublic, Kind: stypes.KindStruct})
	pointType := &stypes.Nominal{Decl: pointDecl}

	original := &sig.Signature{
		SelfParameter: &sig.Parameter{Convention: sig.Inout, ParameterName: "self", Type: pointType},
		Parameters: []*sig.Parameter{
			{Convention: sig.ByValue, ArgumentLabel: "by", ParameterName: "d", Type: pointType},
		},
		Result: sig.ResultSpec{Convention: sig.Direct, Type: stypes.Void()},
	}

	lfs, err := LowerSignature(ctx, original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selfCdecl := lfs.Cdecl.Parameters[len(lfs.Cdecl.Parameters)-1]
	n, ok := selfCdecl.Type.(*stypes.Nominal)
	if !ok || n.Decl.Name != "UnsafeMutableRawPointer" {
		t.Fatalf("expected a mutating self to lower to UnsafeMutableRawPointer, got %#v", selfCdecl.Type)
	}
}

func TestLowerParameter_RejectsFunctionAndOptional(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	for _, bad := range []stypes.Type{
		&stypes.Function{ParamTypes: []stypes.Type{i32}, ResultType: i32},
		&stypes.Optional{Wrapped: i32},
	} {
		if _, err := LowerParameter(ctx, "x", sig.ByValue, bad); err == nil {
			t.Fatalf("expected %s to be rejected", bad.Repr())
		}
	}
}

func TestLowerParameter_InoutPrimitiveRejected(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	_, err := LowerParameter(ctx, "x", sig.Inout, i32)
	if err == nil {
		t.Fatal("expected inout on a primitive to be rejected")
	}

	le, ok := err.(*LoweringError)
	if !ok || le.Kind != InoutNotSupported {
		t.Fatalf("expected an InoutNotSupported LoweringError, got %#v", err)
	}
}

func TestLowerParameter_Metatype(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	lowered, err := LowerParameter(ctx, "t", sig.ByValue, &stypes.Metatype{Instance: i32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lowered.CdeclParameters) != 1 {
		t.Fatalf("expected exactly 1 cdecl parameter for a metatype, got %d", len(lowered.CdeclParameters))
	}

	if _, ok := lowered.CdeclToOriginal.(*UnsafeCastPointer); !ok {
		t.Fatalf("expected UnsafeCastPointer reconstruction, got %#v", lowered.CdeclToOriginal)
	}
}

func TestLowerParameter_TupleFlattening(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	tup := &stypes.Tuple{Elements: []stypes.Type{i32, i32, i32}}

	lowered, err := LowerParameter(ctx, "args", sig.ByValue, tup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lowered.CdeclParameters) != 3 {
		t.Fatalf("expected 3 flattened cdecl parameters, got %d", len(lowered.CdeclParameters))
	}

	names := []string{lowered.CdeclParameters[0].ParameterName, lowered.CdeclParameters[1].ParameterName, lowered.CdeclParameters[2].ParameterName}
	want := []string{"args_0", "args_1", "args_2"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}

	tuplify, ok := lowered.CdeclToOriginal.(*Tuplify)
	if !ok || len(tuplify.Elements) != 3 {
		t.Fatalf("expected a 3-element Tuplify, got %#v", lowered.CdeclToOriginal)
	}
}

// The tuple-of-primitives-as-indirect-result edge case: re-lowering the
// result under inout recurses into a primitive tuple element, which
// correctly surfaces InoutNotSupported rather than being special-cased
// away (see DESIGN.md).
func TestLowerResult_TupleOfPrimitivesRejectsUnderInout(t *testing.T) {
	ctx := newTestContext(t)
	i32 := int32Type(ctx)

	tup := &stypes.Tuple{Elements: []stypes.Type{i32, i32}}

	_, err := LowerResult(ctx, tup)
	if err == nil {
		t.Fatal("expected the indirect re-lowering of a primitive-tuple result to fail with InoutNotSupported")
	}

	le, ok := err.(*LoweringError)
	if !ok || le.Kind != InoutNotSupported {
		t.Fatalf("expected InoutNotSupported, got %#v", err)
	}
}
