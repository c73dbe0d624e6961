// Package thunk is the Thunk Body Assembler: it consumes a
// lower.LoweredFunctionSignature and produces the expression tree -- call
// arguments, receiver, and return-mode -- for the cdecl thunk's body.
// Actual pretty-printing into source text is a mechanical traversal (out of
// scope per the engine's own charter); the Render* helpers below exist only
// so tests and callers have something human-readable to assert against.
package thunk

import (
	"fmt"
	"strings"

	"abilower/lower"
)

// RenderValue renders step as a value expression: the thing you would
// write to produce the reconstructed original value at a call site.
func RenderValue(step lower.ConversionStep) string {
	switch s := step.(type) {
	case *lower.Placeholder:
		return s.CdeclName

	case *lower.ExplodedComponent:
		// The underlying Placeholder already carries the specific cdecl
		// parameter name for this component (eg. "b_count" rather than
		// "b"); the wrapper exists for the round-trip bookkeeping, not to
		// change the rendering.
		return RenderValue(s.Step)

	case *lower.TypedPointer:
		return fmt.Sprintf("(%s as %s)", RenderValue(s.Step), s.ElemType.Repr())

	case *lower.Pointee:
		return fmt.Sprintf("(%s).pointee", RenderValue(s.Step))

	case *lower.PassIndirectly:
		// Transparent in value position: the struct/enum/protocol value was
		// already produced by the inner Pointee dereference.  The "pass the
		// address of" behavior only matters when this step is the target of
		// an indirect-result assignment -- see RenderLValue.
		return RenderValue(s.Step)

	case *lower.UnsafeCastPointer:
		return fmt.Sprintf("unsafeCast(%s, %s.self)", RenderValue(s.Step), s.TargetType.Repr())

	case *lower.Initialize:
		args := make([]string, len(s.Args))
		for i, a := range s.Args {
			args[i] = fmt.Sprintf("%s: %s", a.Label, RenderValue(a.Step))
		}
		return fmt.Sprintf("%s(%s)", s.TargetType.Repr(), strings.Join(args, ", "))

	case *lower.Tuplify:
		elems := make([]string, len(s.Elements))
		for i, e := range s.Elements {
			elems[i] = RenderValue(e)
		}
		return "(" + strings.Join(elems, ", ") + ")"

	default:
		return "<?>"
	}
}

// RenderLValue renders step as an assignable location -- used only for the
// indirect-result target, where the thunk must write the call's value into
// caller-supplied storage rather than read a value out of it.
//
// Address-of and dereference cancel textually: "the address of this
// struct's pointee" is just the typed pointer itself, so RenderLValue skips
// straight past a PassIndirectly(Pointee(...)) pair rather than rendering
// both an explicit "&" and a dereference.
func RenderLValue(step lower.ConversionStep) string {
	pi, ok := step.(*lower.PassIndirectly)
	if !ok {
		return "&" + RenderValue(step)
	}

	if pointee, ok := pi.Step.(*lower.Pointee); ok {
		return RenderValue(pointee.Step)
	}

	return "&" + RenderValue(pi.Step)
}
