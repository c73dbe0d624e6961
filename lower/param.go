package lower

import (
	"fmt"

	"abilower/sig"
	"abilower/stypes"
	"abilower/wellknown"
)

// LoweredParameters is the result of lowering one original parameter (or
// self, or the result): the flat cdecl parameters it contributes, and the
// single ConversionStep tree that reconstructs the original value from
// them.
type LoweredParameters struct {
	CdeclToOriginal ConversionStep
	CdeclParameters []*sig.Parameter
}

// rawPointerType returns the Nominal handle for UnsafeMutableRawPointer or
// UnsafeRawPointer, according to mutable.
func rawPointerType(ctx *Context, mutable bool) stypes.Type {
	name := "UnsafeRawPointer"
	if mutable {
		name = "UnsafeMutableRawPointer"
	}

	decl, ok := ctx.Sym.LookupTypeDecl(name)
	if !ok {
		panic("well-known registry missing " + name)
	}

	return &stypes.Nominal{Decl: decl}
}

func intType(ctx *Context) stypes.Type {
	decl, ok := ctx.Sym.LookupTypeDecl("Int")
	if !ok {
		panic("well-known registry missing Int")
	}

	return &stypes.Nominal{Decl: decl}
}

// LowerParameter lowers one original parameter (or self), named name, under
// the given convention. It is the central dispatch of the Lowering Engine:
// every other entry point (self lowering, result lowering, tuple element
// recursion) funnels through this function.
func LowerParameter(ctx *Context, name string, convention sig.Convention, t stypes.Type) (*LoweredParameters, error) {
	switch v := t.(type) {
	case *stypes.Function:
		return nil, unhandledType(t.Repr())

	case *stypes.Optional:
		return nil, unhandledType(t.Repr())

	case *stypes.Metatype:
		return lowerMetatype(ctx, name, v)

	case *stypes.Nominal:
		return lowerNominal(ctx, name, convention, v)

	case *stypes.Tuple:
		return lowerTuple(ctx, name, convention, v)

	default:
		return nil, unhandledType(t.Repr())
	}
}

func lowerMetatype(ctx *Context, name string, m *stypes.Metatype) (*LoweredParameters, error) {
	cdecl := &sig.Parameter{
		Convention:    sig.ByValue,
		ParameterName: name,
		Type:          rawPointerType(ctx, false),
	}

	return &LoweredParameters{
		CdeclToOriginal: &UnsafeCastPointer{Step: &Placeholder{CdeclName: name}, TargetType: m.Instance},
		CdeclParameters: []*sig.Parameter{cdecl},
	}, nil
}

func lowerNominal(ctx *Context, name string, convention sig.Convention, n *stypes.Nominal) (*LoweredParameters, error) {
	if n.Decl.IsStdlibRoot(wellknown.StdlibModule) {
		if pk, ok := ctx.WK.LookupPrimitive(n.Decl); ok {
			return lowerPrimitive(name, convention, n, pk)
		}

		if pf, ok := ctx.WK.LookupPointerFamily(n.Decl); ok {
			return lowerPointerFamily(ctx, name, convention, n, pf)
		}
	}

	return lowerOtherNominal(ctx, name, convention, n)
}

func lowerPrimitive(name string, convention sig.Convention, n *stypes.Nominal, _ wellknown.PrimitiveKind) (*LoweredParameters, error) {
	if convention == sig.Inout {
		return nil, inoutNotSupported(n.Repr())
	}

	cdecl := &sig.Parameter{
		Convention:    convention,
		ParameterName: name,
		Type:          n,
		IsPrimitive:   true,
	}

	return &LoweredParameters{
		CdeclToOriginal: &Placeholder{CdeclName: name},
		CdeclParameters: []*sig.Parameter{cdecl},
	}, nil
}

func lowerPointerFamily(ctx *Context, name string, convention sig.Convention, n *stypes.Nominal, pf wellknown.PointerFamily) (*LoweredParameters, error) {
	rawPtr := rawPointerType(ctx, pf.Mutable)
	pointerName := name + "_pointer"

	pointerParam := &sig.Parameter{
		Convention:    convention,
		ParameterName: pointerName,
		Type:          rawPtr,
	}

	var cdeclParams []*sig.Parameter
	var countParam *sig.Parameter

	if pf.HasCount {
		countParam = &sig.Parameter{
			Convention:    convention,
			ParameterName: name + "_count",
			Type:          intType(ctx),
		}
		cdeclParams = []*sig.Parameter{pointerParam, countParam}
	} else {
		cdeclParams = []*sig.Parameter{pointerParam}
	}

	// The bare placeholder is only ever the direct reconstruction when the
	// family has no count -- wrapping it in ExplodedComponent("pointer") is
	// only meaningful once a sibling "count" component exists alongside it.
	bare := ConversionStep(&Placeholder{CdeclName: pointerName})

	var step ConversionStep

	switch {
	case !pf.RequiresElementType && !pf.HasCount:
		step = bare

	case pf.RequiresElementType && !pf.HasCount:
		step = &TypedPointer{Step: bare, ElemType: n.ElementType()}

	default:
		pointerComponent := ConversionStep(&ExplodedComponent{Step: bare, Component: ComponentPointer})
		countComponent := ConversionStep(&ExplodedComponent{
			Step:      &Placeholder{CdeclName: countParam.ParameterName},
			Component: ComponentCount,
		})

		startStep := pointerComponent
		if pf.RequiresElementType {
			startStep = &TypedPointer{Step: pointerComponent, ElemType: n.ElementType()}
		}

		step = &Initialize{
			TargetType: n,
			Args: []LabeledArgument{
				{Label: "start", Step: startStep},
				{Label: "count", Step: countComponent},
			},
		}
	}

	return &LoweredParameters{CdeclToOriginal: step, CdeclParameters: cdeclParams}, nil
}

func lowerOtherNominal(ctx *Context, name string, convention sig.Convention, n *stypes.Nominal) (*LoweredParameters, error) {
	mutable := convention == sig.Inout

	cdecl := &sig.Parameter{
		Convention:    sig.ByValue,
		ParameterName: name,
		Type:          rawPointerType(ctx, mutable),
	}

	placeholder := ConversionStep(&Placeholder{CdeclName: name})

	var step ConversionStep
	if n.Decl.Kind.IsReferenceKind() {
		step = &UnsafeCastPointer{Step: placeholder, TargetType: n}
	} else {
		step = &PassIndirectly{Step: &Pointee{Step: &TypedPointer{Step: placeholder, ElemType: n}}}
	}

	return &LoweredParameters{
		CdeclToOriginal: step,
		CdeclParameters: []*sig.Parameter{cdecl},
	}, nil
}

func lowerTuple(ctx *Context, name string, convention sig.Convention, t *stypes.Tuple) (*LoweredParameters, error) {
	var cdeclParams []*sig.Parameter
	steps := make([]ConversionStep, len(t.Elements))

	for i, elem := range t.Elements {
		elemName := fmt.Sprintf("%s_%d", name, i)

		lowered, err := LowerParameter(ctx, elemName, convention, elem)
		if err != nil {
			return nil, err
		}

		steps[i] = lowered.CdeclToOriginal
		cdeclParams = append(cdeclParams, lowered.CdeclParameters...)
	}

	return &LoweredParameters{
		CdeclToOriginal: &Tuplify{Elements: steps},
		CdeclParameters: cdeclParams,
	}, nil
}
