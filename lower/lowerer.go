// Package lower is the Lowering Engine: the core of the pipeline, responsible
// for turning one declaration's Signature into a LoweredSignature of
// flattened, C-ABI-representable cdecl parameters together with the
// ConversionStep trees that describe how to reconstruct each original
// argument from its cdecl pieces inside the thunk body.
//
// Lowering is purely functional: a *Context carries the read-only well-known
// registry and symbol table every declaration lowers against, and nothing in
// this package retains state across calls.  Concurrent lowering of distinct
// declarations needs no synchronization as a result.
package lower

import (
	"abilower/decl"
	"abilower/wellknown"
)

// Context bundles the read-only tables a lowering needs: the well-known
// registry for classifying stdlib nominals, and the symbol table the
// declaration being lowered was resolved against.
type Context struct {
	WK  *wellknown.Registry
	Sym *decl.SymbolTable
}

// NewContext builds a lowering Context.
func NewContext(wk *wellknown.Registry, sym *decl.SymbolTable) *Context {
	return &Context{WK: wk, Sym: sym}
}
