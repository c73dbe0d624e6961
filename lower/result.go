package lower

import (
	"abilower/sig"
	"abilower/stypes"
)

// LoweredResult is the outcome of result lowering: whether the result is
// returned directly or indirectly, the lowered parameters contributing to
// whichever mode applies, and the cdecl result type itself.
type LoweredResult struct {
	Indirect  bool
	Lowered   *LoweredParameters
	CdeclType stypes.Type
}

// LowerResult implements the four-step algorithm: lower as a byValue
// parameter named "_result" first, then decide between direct and indirect
// return based on how many cdecl parameters that produced.
//
// Per the design notes, step 4's re-lowering under inout deliberately reuses
// the ordinary mutable-pointer parameter path and is never special-cased --
// a result type that itself rejects inout (a tuple containing a primitive)
// correctly surfaces InoutNotSupported rather than being silently patched
// around.
func LowerResult(ctx *Context, resultType stypes.Type) (*LoweredResult, error) {
	direct, err := LowerParameter(ctx, "_result", sig.ByValue, resultType)
	if err != nil {
		return nil, err
	}

	switch len(direct.CdeclParameters) {
	case 0:
		return &LoweredResult{
			Indirect:  false,
			Lowered:   direct,
			CdeclType: stypes.Void(),
		}, nil

	case 1:
		if direct.CdeclParameters[0].IsPrimitive {
			return &LoweredResult{
				Indirect:  false,
				Lowered:   direct,
				CdeclType: direct.CdeclParameters[0].Type,
			}, nil
		}
	}

	indirect, err := LowerParameter(ctx, "_result", sig.Inout, resultType)
	if err != nil {
		return nil, err
	}

	return &LoweredResult{
		Indirect:  true,
		Lowered:   indirect,
		CdeclType: stypes.Void(),
	}, nil
}
