// Package visitor is the Declaration Visitor: a read-only traversal of a
// decl.Module that identifies importable declarations (public types,
// methods, initializers, and properties), builds each one's Signature, and
// hands it to the Lowering Engine. It carries the current enclosing-type
// context as it descends and never mutates the syntax tree it walks.
package visitor

import (
	"fmt"

	"abilower/decl"
	"abilower/lower"
	"abilower/report"
	"abilower/sig"
)

// Lowering pairs one importable declaration's assembled pieces together,
// the unit of output the visitor hands back per successfully-lowered
// declaration.
type Lowering struct {
	// Location names the declaration for diagnostics, eg. "Counter.bump",
	// "Counter.init", or "Point.x.get" for a property accessor.
	Location string

	MethodName string
	Signature  *lower.LoweredFunctionSignature

	// SymbolName, when non-empty, overrides the cdecl symbol name the
	// driver would otherwise synthesize from the enclosing type and method
	// names -- set only for a property declared with a mangled-name
	// override.
	SymbolName string
}

// Result is the visitor's full output for one module: every successfully
// lowered declaration, bucketed by enclosing type name ("" for module
// scope).
type Result struct {
	ByType map[string][]*Lowering
}

func newResult() *Result {
	return &Result{ByType: make(map[string][]*Lowering)}
}

func (r *Result) add(typeName string, l *Lowering) {
	r.ByType[typeName] = append(r.ByType[typeName], l)
}

// Visit walks mod and lowers every importable declaration it finds. It
// never aborts early: a failing declaration is reported via the report
// package and skipped, and its siblings are still visited.
func Visit(ctx *lower.Context, mod *decl.Module) *Result {
	result := newResult()

	for _, prop := range mod.GlobalProperties {
		report.ReportLoweringError(prop.Name, string(lower.GlobalPropertyUnsupported),
			"global properties are not supported by the Lowering Engine")
	}

	for _, td := range mod.Types {
		visitType(ctx, td, result)
	}

	return result
}

func visitType(ctx *lower.Context, td *decl.TypeDeclSyntax, result *Result) {
	// An extension member is importable only if both the member and the
	// extended type are public; the extension block's own visibility (if
	// any) never independently gates anything.
	typePublic := ctx.Sym.IsPublicType(td.Name)
	if !typePublic {
		return
	}

	if td.Visibility != decl.VisPublic && !td.Extension {
		return
	}

	declHandle, ok := ctx.Sym.LookupTypeDecl(td.Name)
	if !ok {
		report.ReportICE("visitor: enclosing type %q not found in symbol table", td.Name)
	}

	enc := &sig.EnclosingContext{Decl: declHandle}

	for _, fn := range td.Funcs {
		if fn.Visibility != decl.VisPublic {
			continue
		}
		visitFunc(ctx, td.Name, fn, enc, result)
	}

	for _, init := range td.Inits {
		if init.Visibility != decl.VisPublic {
			continue
		}
		visitInit(ctx, td.Name, init, enc, result)
	}

	for _, prop := range td.Properties {
		if prop.Visibility != decl.VisPublic {
			continue
		}
		visitProperty(ctx, td.Name, prop, enc, result)
	}
}

func visitFunc(ctx *lower.Context, typeName string, fn *decl.FuncSyntax, enc *sig.EnclosingContext, result *Result) {
	location := fn.Name
	if typeName != "" {
		location = typeName + "." + fn.Name
	}

	var encForBuild *sig.EnclosingContext
	if !fn.IsStatic {
		encForBuild = enc
	}

	s, err := sig.Build(ctx.Sym, fn, encForBuild)
	if err != nil {
		report.ReportLoweringError(location, string(lower.UnresolvedType), err.Error())
		return
	}

	lowerAndCollect(ctx, typeName, location, fn.Name, "", s, result)
}

func visitInit(ctx *lower.Context, typeName string, init *decl.InitSyntax, enc *sig.EnclosingContext, result *Result) {
	location := typeName + ".init"

	if init.IsFailable {
		report.ReportLoweringWarning(location, "FailableInitializerSkipped",
			"failable initializers are not supported by the Lowering Engine")
		return
	}

	s, err := sig.BuildInit(ctx.Sym, init, enc)
	if err != nil {
		report.ReportLoweringError(location, string(lower.UnresolvedType), err.Error())
		return
	}

	lowerAndCollect(ctx, typeName, location, typeName, "", s, result)
}

func visitProperty(ctx *lower.Context, typeName string, prop *decl.PropertySyntax, enc *sig.EnclosingContext, result *Result) {
	location := fmt.Sprintf("%s.%s", typeName, prop.Name)

	var encForBuild *sig.EnclosingContext
	if !prop.IsStatic {
		encForBuild = enc
	}

	getter, err := sig.BuildPropertyGetter(ctx.Sym, prop, encForBuild)
	if err != nil {
		report.ReportLoweringError(location, string(lower.UnresolvedType), err.Error())
		return
	}

	getterSymbol := prop.MangledName
	lowerAndCollect(ctx, typeName, location+".get", prop.Name+"_get", getterSymbol, getter, result)

	if !prop.HasSetter {
		return
	}

	setter, err := sig.BuildPropertySetter(ctx.Sym, prop, encForBuild)
	if err != nil {
		report.ReportLoweringError(location, string(lower.UnresolvedType), err.Error())
		return
	}

	var setterSymbol string
	if prop.MangledName != "" {
		setterSymbol = prop.MangledName + "_set"
	}

	lowerAndCollect(ctx, typeName, location+".set", prop.Name+"_set", setterSymbol, setter, result)
}

func lowerAndCollect(ctx *lower.Context, typeName, location, methodName, symbolName string, s *sig.Signature, result *Result) {
	lowered, err := lower.LowerSignature(ctx, s)
	if err != nil {
		if le, ok := err.(*lower.LoweringError); ok {
			report.ReportLoweringError(location, string(le.Kind), le.Error())
		} else {
			report.ReportLoweringError(location, "UnhandledType", err.Error())
		}
		return
	}

	result.add(typeName, &Lowering{
		Location:   location,
		MethodName: methodName,
		Signature:  lowered,
		SymbolName: symbolName,
	})
}
