package lower

import (
	"abilower/sig"
)

// LoweredFunctionSignature is the engine's final output for one declaration:
// the original signature, the assembled cdecl signature, the per-parameter
// lowerings (in original order, excluding self), the self lowering if any,
// and the result lowering.
type LoweredFunctionSignature struct {
	Original *sig.Signature
	Cdecl    *sig.Signature

	Parameters []*LoweredParameters
	Self       *LoweredParameters // nil when Original.SelfParameter is nil
	Result     *LoweredResult
}

// LowerSignature lowers every piece of original -- its parameters, its
// implicit self if present, and its result -- and assembles the flat cdecl
// signature in this fixed order: parameters, then any indirect-result
// parameters, then self appended last.
func LowerSignature(ctx *Context, original *sig.Signature) (*LoweredFunctionSignature, error) {
	paramLowerings := make([]*LoweredParameters, len(original.Parameters))
	var cdeclParams []*sig.Parameter

	for i, p := range original.Parameters {
		name := p.ParameterName
		if name == "" {
			name = p.ArgumentLabel
		}

		lowered, err := LowerParameter(ctx, name, p.Convention, p.Type)
		if err != nil {
			return nil, err
		}

		paramLowerings[i] = lowered
		cdeclParams = append(cdeclParams, lowered.CdeclParameters...)
	}

	result, err := LowerResult(ctx, original.Result.Type)
	if err != nil {
		return nil, err
	}

	if result.Indirect {
		cdeclParams = append(cdeclParams, result.Lowered.CdeclParameters...)
	}

	var selfLowering *LoweredParameters
	if original.SelfParameter != nil {
		name := original.SelfParameter.ParameterName
		if name == "" {
			name = "self"
		}

		selfLowering, err = LowerParameter(ctx, name, original.SelfParameter.Convention, original.SelfParameter.Type)
		if err != nil {
			return nil, err
		}

		cdeclParams = append(cdeclParams, selfLowering.CdeclParameters...)
	}

	cdecl := &sig.Signature{
		Parameters: cdeclParams,
		Result:     sig.ResultSpec{Convention: sig.Direct, Type: result.CdeclType},
	}

	return &LoweredFunctionSignature{
		Original:   original,
		Cdecl:      cdecl,
		Parameters: paramLowerings,
		Self:       selfLowering,
		Result:     result,
	}, nil
}
