// Package abiverify is the ABI Verification Module: a sanity check that
// builds a throwaway *ir.Module of external `declare`s from a batch of
// projected C functions, using the real github.com/llir/llvm IR builder
// rather than re-deriving its own notion of what's representable. The one
// check Verify itself makes is that no two functions share a cdecl symbol
// name; the module is otherwise built as given.
package abiverify

import (
	"fmt"

	"abilower/cabi"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
)

// Verify builds a module declaring every function in fns as an external
// symbol and reports a non-nil error at the first duplicate name.
func Verify(fns []*cabi.CFunction) (*ir.Module, error) {
	mod := ir.NewModule()

	seen := make(map[string]bool, len(fns))

	for _, f := range fns {
		if seen[f.Name] {
			return nil, fmt.Errorf("abiverify: duplicate cdecl symbol %q", f.Name)
		}
		seen[f.Name] = true

		params := make([]*ir.Param, len(f.Parameters))
		for i, p := range f.Parameters {
			params[i] = ir.NewParam(p.Name, p.Type)
		}

		fn := mod.NewFunc(f.Name, f.ResultType, params...)
		fn.Linkage = enum.LinkageExternal
	}

	return mod, nil
}
