package cmd

import (
	"fmt"
	"path/filepath"

	"abilower/abiverify"
	"abilower/cabi"
	"abilower/config"
	"abilower/decl"
	"abilower/lower"
	"abilower/report"
	"abilower/thunk"
	"abilower/visitor"
	"abilower/wellknown"
)

// Driver represents the overall state of one run: the loaded project, the
// fixture module it lowers, and the tables every lowering shares.
type Driver struct {
	rootAbsPath string
	project     *config.Project

	wk  *wellknown.Registry
	sym *decl.SymbolTable
}

// NewDriver creates a driver rooted at rootRelPath.
func NewDriver(rootRelPath string) *Driver {
	rootAbsPath, err := filepath.Abs(rootRelPath)
	if err != nil {
		report.ReportICE("error calculating absolute path: %s", err.Error())
	}

	return &Driver{rootAbsPath: rootAbsPath}
}

// LoadProject loads the project file at the driver's root path and
// initializes the well-known registry and symbol table.
func (d *Driver) LoadProject() bool {
	project, err := config.Load(d.rootAbsPath)
	if err != nil {
		fmt.Println(err.Error())
		return false
	}

	d.project = project
	report.Init(project.LogLevel)

	d.wk = wellknown.New()
	d.sym = decl.NewSymbolTable(project.Name, d.wk)

	return true
}

// Run lowers mod's declarations and prints every generated thunk, C
// declaration, and diagnostic. It returns false if any declaration-level
// error was reported.
func (d *Driver) Run(mod *decl.Module) bool {
	for _, td := range mod.Types {
		d.sym.DeclareType(td)
	}

	ctx := lower.NewContext(d.wk, d.sym)
	result := visitor.Visit(ctx, mod)

	var cfns []*cabi.CFunction

	for typeName, lowerings := range result.ByType {
		for _, lw := range lowerings {
			symbolName := lw.SymbolName
			if symbolName == "" {
				symbolName = cdeclSymbolName(typeName, lw.MethodName)
			}

			cfn, err := cabi.Project(d.wk, symbolName, lw.Signature.Cdecl)
			if err != nil {
				report.ReportICE("cabi projection of %s failed: %s", lw.Location, err.Error())
			}

			body := thunk.Assemble(lw.Signature, lw.MethodName)

			fmt.Printf("// %s\n%s\n%s;\n\n", lw.Location, cfn.Render(), body.Render())

			cfns = append(cfns, cfn)
		}
	}

	if _, err := abiverify.Verify(cfns); err != nil {
		report.ReportICE("%s", err.Error())
	}

	report.FlushWarnings()

	return report.ShouldProceed()
}

// cdeclSymbolName synthesizes the deterministic, stable cdecl symbol name
// this module owns: the enclosing type name, if any, prefixed onto the
// member name and suffixed with "_c".
func cdeclSymbolName(typeName, methodName string) string {
	if typeName == "" {
		return methodName + "_c"
	}

	return typeName + "_" + methodName + "_c"
}
