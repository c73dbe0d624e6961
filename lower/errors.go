package lower

import "fmt"

// ErrorKind enumerates the recoverable failure modes the Lowering Engine
// can report for one declaration.  Every kind here corresponds to a named
// error in the error-handling design; ImproperResultLowering is kept in
// this list for completeness, but no code path in this package constructs
// a LoweringError of that kind or reports it in any other way.
type ErrorKind string

const (
	UnhandledType          ErrorKind = "UnhandledType"
	InoutNotSupported      ErrorKind = "InoutNotSupported"
	UnresolvedType         ErrorKind = "UnresolvedType"
	ImproperResultLowering ErrorKind = "ImproperResultLowering"

	// GlobalPropertyUnsupported reports a module-scope property, which the
	// Lowering Engine never attempts to lower (see DESIGN.md) -- the
	// visitor treats it as a recoverable, structured error rather than an
	// internal error.
	GlobalPropertyUnsupported ErrorKind = "GlobalPropertyUnsupported"
)

// LoweringError is the error value one failed lowering surfaces to its
// caller.  It implements the standard error interface so it composes with
// ordinary Go error handling, while still letting callers recover the
// structured kind when they need to (eg. to pick a report.Report* call).
type LoweringError struct {
	Kind ErrorKind
	Type string // Repr() of the offending type, when there is one.
	Msg  string
}

func (e *LoweringError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}

	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Type, e.Msg)
}

func unhandledType(repr string) error {
	return &LoweringError{Kind: UnhandledType, Type: repr, Msg: "not representable at the C ABI boundary"}
}

func inoutNotSupported(repr string) error {
	return &LoweringError{Kind: InoutNotSupported, Type: repr, Msg: "inout is not supported on a primitive scalar"}
}
