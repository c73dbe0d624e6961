package sig

import (
	"fmt"

	"abilower/decl"
	"abilower/stypes"
)

// EnclosingContext describes the type a member declaration is nested in, so
// Build can decide whether to synthesize an implicit self parameter and
// what type it carries.
type EnclosingContext struct {
	Decl *stypes.TypeDecl
}

// selfParameter builds the implicit self parameter for an instance member,
// under the given convention. A reference-typed self (class/actor) is
// always byValue -- the Lowering Engine's own per-nominal-kind dispatch
// reinterprets it as a pointer regardless of convention. A value-typed self
// (struct/enum/protocol) is byValue unless the member mutates it, in which
// case the caller passes Inout so the engine lowers self to a mutable
// pointer instead of a read-only one.
func selfParameter(enc *EnclosingContext, convention Convention) *Parameter {
	return &Parameter{
		Convention:    convention,
		ParameterName: "self",
		Type:          &stypes.Nominal{Decl: enc.Decl},
	}
}

// selfConvention picks the convention an instance member's self parameter
// should carry: Inout when the member mutates a value-typed enclosing
// declaration, ByValue otherwise (including every reference-typed self,
// which is always read as a plain pointer regardless of mutation).
func selfConvention(enc *EnclosingContext, mutating bool) Convention {
	if mutating && !enc.Decl.Kind.IsReferenceKind() {
		return Inout
	}

	return ByValue
}

func buildParams(st *decl.SymbolTable, params []*decl.ParamSyntax) ([]*Parameter, error) {
	out := make([]*Parameter, len(params))

	for i, p := range params {
		t, err := st.ResolveType(p.Type)
		if err != nil {
			return nil, err
		}

		conv := ByValue
		if p.IsInout {
			conv = Inout
		}

		out[i] = &Parameter{
			Convention:    conv,
			ArgumentLabel: p.ArgumentLabel,
			ParameterName: p.ParameterName,
			Type:          t,
		}
	}

	return out, nil
}

// Build constructs the signature of a free function or method.  enc is nil
// for free functions and static/class methods; non-nil (with fn.IsStatic
// false implied by the caller) for instance methods.
func Build(st *decl.SymbolTable, fn *decl.FuncSyntax, enc *EnclosingContext) (*Signature, error) {
	params, err := buildParams(st, fn.Params)
	if err != nil {
		return nil, err
	}

	resultType, err := st.ResolveType(fn.Result)
	if err != nil {
		return nil, err
	}

	sig := &Signature{
		IsStaticOrClass: enc == nil || fn.IsStatic,
		Parameters:      params,
		Result:          ResultSpec{Convention: Direct, Type: resultType},
	}

	if enc != nil && !fn.IsStatic {
		sig.SelfParameter = selfParameter(enc, selfConvention(enc, fn.IsMutating))
	}

	return sig, nil
}

// BuildInit constructs the signature of an initializer.  An initializer has
// an implicit self just like an instance method, but its "result" is always
// the enclosing type itself (init returns the newly-constructed instance).
// self is always byValue here: an initializer constructs a fresh value
// rather than mutating an existing one.
func BuildInit(st *decl.SymbolTable, init *decl.InitSyntax, enc *EnclosingContext) (*Signature, error) {
	params, err := buildParams(st, init.Params)
	if err != nil {
		return nil, err
	}

	return &Signature{
		SelfParameter: selfParameter(enc, ByValue),
		Parameters:    params,
		Result:        ResultSpec{Convention: Direct, Type: &stypes.Nominal{Decl: enc.Decl}},
	}, nil
}

// errMissingPropertyType is returned for a property with no explicit type
// annotation: rejected rather than silently defaulted to void. See
// DESIGN.md for the rationale.
var errMissingPropertyType = fmt.Errorf("property has no type annotation")

// BuildPropertyGetter constructs the synthetic zero-parameter signature of
// a property's getter.
func BuildPropertyGetter(st *decl.SymbolTable, prop *decl.PropertySyntax, enc *EnclosingContext) (*Signature, error) {
	if prop.Type == nil {
		return nil, errMissingPropertyType
	}

	t, err := st.ResolveType(prop.Type)
	if err != nil {
		return nil, err
	}

	sig := &Signature{
		IsStaticOrClass: enc == nil || prop.IsStatic,
		Result:          ResultSpec{Convention: Direct, Type: t},
	}

	if enc != nil && !prop.IsStatic {
		sig.SelfParameter = selfParameter(enc, ByValue)
	}

	return sig, nil
}

// BuildPropertySetter constructs the synthetic one-parameter (newValue),
// void-result signature of a property's setter. Setting a property always
// mutates self, so a value-typed self is Inout here regardless of any
// explicit mutating marker.
func BuildPropertySetter(st *decl.SymbolTable, prop *decl.PropertySyntax, enc *EnclosingContext) (*Signature, error) {
	if prop.Type == nil {
		return nil, errMissingPropertyType
	}

	t, err := st.ResolveType(prop.Type)
	if err != nil {
		return nil, err
	}

	sig := &Signature{
		IsStaticOrClass: enc == nil || prop.IsStatic,
		Parameters: []*Parameter{
			{Convention: ByValue, ParameterName: "newValue", Type: t},
		},
		Result: ResultSpec{Convention: Direct, Type: stypes.Void()},
	}

	if enc != nil && !prop.IsStatic {
		sig.SelfParameter = selfParameter(enc, selfConvention(enc, true))
	}

	return sig, nil
}
