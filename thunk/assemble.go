package thunk

import (
	"fmt"
	"strings"

	"abilower/lower"
	"abilower/stypes"
)

// ReturnMode classifies how the thunk hands its result back to the caller.
type ReturnMode int

const (
	// ReturnVoid: both the cdecl and original results are void. Emit the
	// call as a statement and nothing else.
	ReturnVoid ReturnMode = iota

	// ReturnIndirect: the cdecl result is void but the original result is
	// not -- the thunk must write into the caller-supplied out-pointer.
	ReturnIndirect

	// ReturnDirect: the call's value is the cdecl return value.
	ReturnDirect
)

// Body is the assembled thunk body: the call expression plus how to return
// its value.
type Body struct {
	Mode ReturnMode

	// CallExpr is the full call, eg. "add(x, y)" or
	// "unsafeCast(self, Counter.self).bump()" -- receiver-qualified already
	// if self is present.
	CallExpr string

	// IndirectTarget is set only when Mode == ReturnIndirect: the lvalue
	// the call's value should be assigned into.
	IndirectTarget string
}

// Render renders b as a single statement of thunk-body source text.
func (b *Body) Render() string {
	switch b.Mode {
	case ReturnIndirect:
		return fmt.Sprintf("%s = %s", b.IndirectTarget, b.CallExpr)
	case ReturnDirect:
		return "return " + b.CallExpr
	default:
		return b.CallExpr
	}
}

// Assemble builds the thunk body for methodName, given its lowered
// signature. lfs.Original.Parameters supplies the argument labels in
// original declaration order (lfs.Parameters holds the reconstructions in
// the same order, but carries no label -- labels live on the un-lowered
// Signature).
func Assemble(lfs *lower.LoweredFunctionSignature, methodName string) *Body {
	args := make([]string, len(lfs.Parameters))
	for i, lowered := range lfs.Parameters {
		expr := RenderValue(lowered.CdeclToOriginal)

		label := ""
		if i < len(lfs.Original.Parameters) {
			label = lfs.Original.Parameters[i].ArgumentLabel
		}

		if label != "" {
			args[i] = fmt.Sprintf("%s: %s", label, expr)
		} else {
			args[i] = expr
		}
	}

	call := fmt.Sprintf("%s(%s)", methodName, strings.Join(args, ", "))

	if lfs.Self != nil {
		selfExpr := RenderValue(lfs.Self.CdeclToOriginal)
		call = fmt.Sprintf("%s.%s(%s)", selfExpr, methodName, strings.Join(args, ", "))
	}

	body := &Body{CallExpr: call}

	switch {
	case !lfs.Result.Indirect && stypes.IsVoid(lfs.Result.CdeclType):
		body.Mode = ReturnVoid

	case lfs.Result.Indirect:
		body.Mode = ReturnIndirect
		body.IndirectTarget = RenderLValue(lfs.Result.Lowered.CdeclToOriginal)

	default:
		body.Mode = ReturnDirect
	}

	return body
}
