package cabi

import (
	"strings"

	lltypes "github.com/llir/llvm/ir/types"
)

// cTypeName renders t's generic C spelling from the LLVM-lattice type
// alone, for the cases where that spelling is already exact (void, bool,
// float, double, pointer) -- the fixed-width integer cases are ambiguous
// at this level (I64 is Int64, UInt64, Int, or UInt) and are spelled
// precisely instead via CParameter.Spelling/CFunction.ResultSpelling,
// which Render prefers when set. It only ever sees the closed set of types
// projectType can produce, so the switch is exhaustive over that set
// rather than over every possible lltypes.Type.
func cTypeName(t lltypes.Type) string {
	switch t {
	case lltypes.Void:
		return "void"
	case lltypes.I1:
		return "bool"
	case lltypes.I8:
		return "int8_t"
	case lltypes.I16:
		return "int16_t"
	case lltypes.I32:
		return "int32_t"
	case lltypes.I64:
		return "intptr_t"
	case lltypes.Float:
		return "float"
	case lltypes.Double:
		return "double"
	case lltypes.I8Ptr:
		return "void*"
	default:
		return "void*"
	}
}

// spelling returns exact over generic: exact is populated for every
// primitive kind, which covers the fixed-width integer kinds cTypeName
// can't disambiguate on its own, and is empty for pointers and void.
func spelling(t lltypes.Type, exact string) string {
	if exact != "" {
		return exact
	}
	return cTypeName(t)
}

// Render produces the C declaration text for f, eg.
// "int32_t add_c(int32_t x, int32_t y);".
func (f *CFunction) Render() string {
	var b strings.Builder

	b.WriteString(spelling(f.ResultType, f.ResultSpelling))
	b.WriteByte(' ')
	b.WriteString(f.Name)
	b.WriteByte('(')

	if len(f.Parameters) == 0 {
		b.WriteString("void")
	} else {
		for i, p := range f.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(spelling(p.Type, p.Spelling))
			b.WriteByte(' ')
			b.WriteString(p.Name)
		}
	}

	if f.IsVariadic {
		b.WriteString(", ...")
	}

	b.WriteString(");")

	return b.String()
}
