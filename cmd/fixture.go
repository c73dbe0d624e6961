package cmd

import (
	"abilower/decl"
	"abilower/stypes"
)

// Fixture stands in for the external syntax-tree/symbol-table collaborator
// the engine normally consumes: a small set of hand-built declaration
// modules exercising the engine's end-to-end scenarios.
func Fixture(name string) (*decl.Module, bool) {
	switch name {
	case "add":
		return addModule(), true
	case "store":
		return storeModule(), true
	case "sum":
		return sumModule(), true
	case "point":
		return pointModule(), true
	case "mutate":
		return mutateModule(), true
	case "counter":
		return counterModule(), true
	case "parse-init":
		return parseInitModule(), true
	default:
		return nil, false
	}
}

func namedRef(name string) *decl.TypeRef { return &decl.TypeRef{Name: name} }

func genericRef(name string, arg *decl.TypeRef) *decl.TypeRef {
	return &decl.TypeRef{Name: name, GenericArgs: []*decl.TypeRef{arg}}
}

// addModule: public func add(_ x: Int32, _ y: Int32) -> Int32
func addModule() *decl.Module {
	return &decl.Module{
		Name: "AddFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Name:       "",
				Visibility: decl.VisPublic,
				Kind:       stypes.KindStruct,
				Funcs: []*decl.FuncSyntax{
					{
						Name:       "add",
						Visibility: decl.VisPublic,
						IsStatic:   true,
						Params: []*decl.ParamSyntax{
							{ParameterName: "x", Type: namedRef("Int32")},
							{ParameterName: "y", Type: namedRef("Int32")},
						},
						Result: namedRef("Int32"),
					},
				},
			},
		},
	}
}

// storeModule: public func store(into p: UnsafeMutablePointer<Int32>, value: Int32)
func storeModule() *decl.Module {
	return &decl.Module{
		Name: "StoreFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Visibility: decl.VisPublic,
				Kind:       stypes.KindStruct,
				Funcs: []*decl.FuncSyntax{
					{
						Name:       "store",
						Visibility: decl.VisPublic,
						IsStatic:   true,
						Params: []*decl.ParamSyntax{
							{ArgumentLabel: "into", ParameterName: "p", Type: genericRef("UnsafeMutablePointer", namedRef("Int32"))},
							{ParameterName: "value", Type: namedRef("Int32")},
						},
					},
				},
			},
		},
	}
}

// sumModule: public func sum(_ b: UnsafeBufferPointer<Int32>) -> Int
func sumModule() *decl.Module {
	return &decl.Module{
		Name: "SumFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Visibility: decl.VisPublic,
				Kind:       stypes.KindStruct,
				Funcs: []*decl.FuncSyntax{
					{
						Name:       "sum",
						Visibility: decl.VisPublic,
						IsStatic:   true,
						Params: []*decl.ParamSyntax{
							{ParameterName: "b", Type: genericRef("UnsafeBufferPointer", namedRef("Int32"))},
						},
						Result: namedRef("Int"),
					},
				},
			},
		},
	}
}

// pointModule: public struct Point { public var x: Double; public var y:
// Double }, with a method returning Point by value (forces an indirect
// result). x carries a mangled-name override, exercising the caller-chosen
// cdecl symbol name path.
func pointModule() *decl.Module {
	return &decl.Module{
		Name: "PointFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Name:       "Point",
				Visibility: decl.VisPublic,
				Kind:       stypes.KindStruct,
				Properties: []*decl.PropertySyntax{
					{Name: "x", Visibility: decl.VisPublic, Type: namedRef("Double"), HasSetter: true, MangledName: "point_x_raw"},
					{Name: "y", Visibility: decl.VisPublic, Type: namedRef("Double"), HasSetter: true},
				},
				Funcs: []*decl.FuncSyntax{
					{
						Name:       "translated",
						Visibility: decl.VisPublic,
						Params: []*decl.ParamSyntax{
							{ArgumentLabel: "by", ParameterName: "d", Type: namedRef("Point")},
						},
						Result: namedRef("Point"),
					},
				},
			},
		},
	}
}

// mutateModule: public struct Point { public var x: Double; public var y:
// Double; public mutating func translate(by d: Point) } -- a mutating
// method on a value type, exercising self: Inout.
func mutateModule() *decl.Module {
	return &decl.Module{
		Name: "MutateFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Name:       "Point",
				Visibility: decl.VisPublic,
				Kind:       stypes.KindStruct,
				Properties: []*decl.PropertySyntax{
					{Name: "x", Visibility: decl.VisPublic, Type: namedRef("Double"), HasSetter: true},
					{Name: "y", Visibility: decl.VisPublic, Type: namedRef("Double"), HasSetter: true},
				},
				Funcs: []*decl.FuncSyntax{
					{
						Name:       "translate",
						Visibility: decl.VisPublic,
						IsMutating: true,
						Params: []*decl.ParamSyntax{
							{ArgumentLabel: "by", ParameterName: "d", Type: namedRef("Point")},
						},
					},
				},
			},
		},
	}
}

// counterModule: public class Counter { public func bump() }
func counterModule() *decl.Module {
	return &decl.Module{
		Name: "CounterFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Name:       "Counter",
				Visibility: decl.VisPublic,
				Kind:       stypes.KindClass,
				Funcs: []*decl.FuncSyntax{
					{Name: "bump", Visibility: decl.VisPublic},
				},
			},
		},
	}
}

// parseInitModule: public init?(parsing s: String) -- exercises the
// failable-initializer skip path.
func parseInitModule() *decl.Module {
	return &decl.Module{
		Name: "ParseInitFixture",
		Types: []*decl.TypeDeclSyntax{
			{
				Name:       "Parser",
				Visibility: decl.VisPublic,
				Kind:       stypes.KindStruct,
				Inits: []*decl.InitSyntax{
					{
						Visibility: decl.VisPublic,
						IsFailable: true,
						Params: []*decl.ParamSyntax{
							{ArgumentLabel: "parsing", ParameterName: "s", Type: namedRef("String")},
						},
					},
				},
			},
		},
	}
}
