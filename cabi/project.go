// Package cabi is the C Projection: it maps a lowered (still S-typed) cdecl
// Signature onto a pure C function declaration -- fixed-width C types in,
// a CFunction description of the textual declaration out.  The type lattice
// is represented with github.com/llir/llvm's ir/types package rather than a
// hand-rolled enum: the subset of C types a cdecl thunk can ever produce
// (fixed-width integers, float/double, a pointer, void) coincides exactly
// with LLVM's own scalar/pointer/void types, and reusing that package here
// is also what lets the ABI Verification Module (package abiverify) build a
// real *ir.Module out of the same values this package produces.
package cabi

import (
	"fmt"

	"abilower/sig"
	"abilower/stypes"
	"abilower/wellknown"

	lltypes "github.com/llir/llvm/ir/types"
)

// CFunction is the output of the C Projection: enough to render a C
// function declaration and to build an ABI-verification stub.
type CFunction struct {
	Name       string
	ResultType lltypes.Type
	// ResultSpelling is the exact C spelling for ResultType, eg. "uint64_t"
	// where ResultType is only the width-equivalent lltypes.I64. Empty
	// means Render should fall back to cTypeName's generic spelling for
	// ResultType (true of every non-primitive cdecl type).
	ResultSpelling string
	Parameters     []CParameter
	IsVariadic     bool
}

// CParameter is one parameter of a CFunction: its source name (for
// readability in the rendered declaration) and its C type.
type CParameter struct {
	Name string
	Type lltypes.Type
	// Spelling is CFunction.ResultSpelling's counterpart for a parameter.
	Spelling string
}

// ctx bundles the tables projectType needs to recognize which well-known
// nominal a cdecl parameter's type refers to.
type ctx struct {
	wk *wellknown.Registry
}

// Project translates a cdecl Signature into a CFunction named name.
func Project(wk *wellknown.Registry, name string, cdecl *sig.Signature) (*CFunction, error) {
	c := &ctx{wk: wk}

	params := make([]CParameter, len(cdecl.Parameters))
	for i, p := range cdecl.Parameters {
		t, spelling, err := c.projectType(p.Type)
		if err != nil {
			return nil, err
		}

		// Array-to-pointer decay would apply here if the lowering ever
		// produced an array-typed cdecl parameter; it never does, since
		// every parameter-lowering case in package lower bottoms out in a
		// primitive, Int, or a raw pointer. The case is kept only so a
		// future array-typed cdecl parameter has an obvious place to plug
		// into.
		t = decay(t)

		params[i] = CParameter{Name: p.ParameterName, Type: t, Spelling: spelling}
	}

	resultType, resultSpelling, err := c.projectType(cdecl.Result.Type)
	if err != nil {
		return nil, err
	}

	return &CFunction{
		Name:           name,
		ResultType:     resultType,
		ResultSpelling: resultSpelling,
		Parameters:     params,
	}, nil
}

func decay(t lltypes.Type) lltypes.Type {
	return t
}

// projectType maps one cdecl type -- always a primitive Nominal, the Int
// Nominal, a pointer-family Nominal, or the empty Tuple -- to its C
// equivalent, alongside the exact C spelling primitiveCType's fixed-width
// lltypes.Type can't itself carry (Int64 and UInt64 both project onto
// lltypes.I64, and every unsigned kind projects onto the same signed
// integer type as its signed counterpart). The spelling return is empty
// for every non-primitive case, where cTypeName's generic spelling from
// the lltypes.Type alone is already exact. Any other shape reaching this
// function is a Lowering Engine invariant violation: the cdecl signature
// is documented to only ever contain C-representable types.
func (c *ctx) projectType(t stypes.Type) (lltypes.Type, string, error) {
	if stypes.IsVoid(t) {
		return lltypes.Void, "", nil
	}

	n, ok := t.(*stypes.Nominal)
	if !ok || !n.Decl.IsStdlibRoot(wellknown.StdlibModule) {
		return nil, "", fmt.Errorf("cabi: %s is not a C-representable cdecl type", t.Repr())
	}

	if pk, ok := c.wk.LookupPrimitive(n.Decl); ok {
		lt, spelling := primitiveCType(pk)
		return lt, spelling, nil
	}

	if _, ok := c.wk.LookupPointerFamily(n.Decl); ok {
		return lltypes.I8Ptr, "", nil
	}

	return nil, "", fmt.Errorf("cabi: %s is not a C-representable cdecl type", t.Repr())
}

// primitiveCType maps a primitive kind to its fixed-width LLVM-lattice
// equivalent (used by the ABI Verification Module) and to its exact C
// spelling (used by Render). Int and UInt map to the host's pointer-sized
// integer -- represented on the LLVM lattice as I64, the width of every
// platform this engine targets, and spelled intptr_t/uintptr_t rather than
// int64_t/uint64_t to keep the platform-native intent visible in the
// rendered declaration; a 32-bit host would need a build-tag variant,
// which is out of scope.
func primitiveCType(pk wellknown.PrimitiveKind) (lltypes.Type, string) {
	switch pk {
	case wellknown.PrimInt8:
		return lltypes.I8, "int8_t"
	case wellknown.PrimUInt8:
		return lltypes.I8, "uint8_t"
	case wellknown.PrimInt16:
		return lltypes.I16, "int16_t"
	case wellknown.PrimUInt16:
		return lltypes.I16, "uint16_t"
	case wellknown.PrimInt32:
		return lltypes.I32, "int32_t"
	case wellknown.PrimUInt32:
		return lltypes.I32, "uint32_t"
	case wellknown.PrimInt64:
		return lltypes.I64, "int64_t"
	case wellknown.PrimUInt64:
		return lltypes.I64, "uint64_t"
	case wellknown.PrimInt:
		return lltypes.I64, "intptr_t"
	case wellknown.PrimUInt:
		return lltypes.I64, "uintptr_t"
	case wellknown.PrimFloat:
		return lltypes.Float, "float"
	case wellknown.PrimDouble:
		return lltypes.Double, "double"
	case wellknown.PrimBool:
		return lltypes.I1, "bool"
	default:
		return lltypes.Void, "void"
	}
}
