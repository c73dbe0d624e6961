package report

import (
	"fmt"
	"os"
)

// LoweringMessage is a diagnostic tied to one declaration being lowered:
// either a recoverable error (a declaration was skipped) or a user warning
// (eg. a failable initializer was skipped).
type LoweringMessage struct {
	// Location names the declaration the message concerns, eg.
	// "Counter.bump" or "Point.x.get".
	Location string

	// Kind is one of the lower package's error-kind names (UnhandledType,
	// InoutNotSupported, UnresolvedType, GlobalPropertyUnsupported) or a
	// warning kind (FailableInitializerSkipped).
	Kind string

	Message string
	IsError bool
}

func (lm *LoweringMessage) isError() bool { return lm.IsError }

func (lm *LoweringMessage) display() {
	label, text := warnLabel, warnText
	tag := "warning"
	if lm.IsError {
		label, text = errorLabel, errorText
		tag = "error"
	}

	label.Printf(" %s ", lm.Kind)
	text.Printf(" %s: %s: %s\n", lm.Location, tag, lm.Message)
}

// ReportLoweringError reports that a declaration failed to lower.  Logging
// here happens at the reporter's configured level, but the caller in the
// visitor package always skips the declaration regardless of log level.
func ReportLoweringError(location, kind, message string) {
	rep.handle(&LoweringMessage{Location: location, Kind: kind, Message: message, IsError: true})
}

// ReportLoweringWarning reports a user warning, eg. a failable initializer
// being skipped.
func ReportLoweringWarning(location, kind, message string) {
	rep.handle(&LoweringMessage{Location: location, Kind: kind, Message: message, IsError: false})
}

// ReportICE reports an internal compiler error: an invariant the Lowering
// Engine believes can never be violated by well-formed input was violated
// anyway.  This is always fatal and always displayed regardless of log
// level.
func ReportICE(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "internal error: %s\n", fmt.Sprintf(format, args...))
	os.Exit(2)
}
