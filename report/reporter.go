// Package report is the diagnostics sink for the lowering pipeline: a
// leveled, mutex-guarded global reporter. A recoverable failure during
// lowering of one declaration travels back from package lower to the
// visitor as a value; the visitor records it here as an error, alongside
// user warnings, and ShouldProceed tells the driver whether any error was
// recorded. ICEs are printed and exit the process immediately.
package report

import (
	"sync"

	"github.com/pterm/pterm"
)

// Enumeration of the supported log levels.
const (
	LogLevelSilent  = iota // No output at all.
	LogLevelError          // Only errors.
	LogLevelWarn           // Errors and warnings.
	LogLevelVerbose        // Errors, warnings, and informational messages (default).
)

// Reporter accumulates and displays diagnostics produced while lowering a
// batch of declarations.  It may be shared across goroutines -- lowering
// itself is embarrassingly parallel across declarations, and every
// goroutine reports through the same Reporter.
type Reporter struct {
	m *sync.Mutex

	logLevel   int
	errorCount int

	warnings []Message
}

// rep is the global reporter used by the package-level Report* functions.
var rep *Reporter

// Init initializes the global reporter at the given log level.  Calling it
// again resets accumulated state, which is useful between test cases and
// between CLI runs over successive modules.
func Init(logLevel int) {
	rep = &Reporter{m: &sync.Mutex{}, logLevel: logLevel}
}

// ShouldProceed reports whether any error-level diagnostic has been
// reported since the last Init call.
func ShouldProceed() bool {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.errorCount == 0
}

// FlushWarnings displays every accumulated warning, in the order reported.
// It should be called once lowering of a batch has finished.
func FlushWarnings() {
	rep.m.Lock()
	defer rep.m.Unlock()

	if rep.logLevel < LogLevelWarn {
		return
	}

	for _, w := range rep.warnings {
		w.display()
	}
}

func (r *Reporter) handle(msg Message) {
	r.m.Lock()
	defer r.m.Unlock()

	if msg.isError() {
		r.errorCount++

		if r.logLevel > LogLevelSilent {
			msg.display()
		}
	} else {
		r.warnings = append(r.warnings, msg)
	}
}

// Message is the interface implemented by every kind of diagnostic this
// package can emit.
type Message interface {
	isError() bool
	display()
}

// -----------------------------------------------------------------------------

// styles pairs a background style for the label with a foreground color
// for the message body.
var (
	errorLabel = pterm.NewStyle(pterm.BgRed, pterm.FgBlack)
	warnLabel  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	infoLabel  = pterm.NewStyle(pterm.BgLightBlue, pterm.FgBlack)

	errorText = pterm.NewStyle(pterm.FgRed)
	warnText  = pterm.NewStyle(pterm.FgYellow)
)
