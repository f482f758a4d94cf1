package action

import (
	"io"
	"os"

	"github.com/sethvargo/go-githubactions"
)

// Stdout receives workflow commands. Tests swap it out.
var Stdout io.Writer = os.Stdout

// current binds the toolkit to Stdout at call time so a swapped writer is
// picked up.
func current() *githubactions.Action {
	return githubactions.New(githubactions.WithWriter(Stdout))
}

// Info prints a plain log line.
func Info(format string, args ...any) {
	current().Infof(format, args...)
}

// Debug is only shown when step debug logging is enabled on the run.
func Debug(format string, args ...any) {
	current().Debugf(format, args...)
}

func Warning(format string, args ...any) {
	current().Warningf(format, args...)
}

func Error(format string, args ...any) {
	current().Errorf(format, args...)
}

// Group starts a collapsible section in the job log.
func Group(title string) {
	current().Group(title)
}

func EndGroup() {
	current().EndGroup()
}

// SetFailed reports msg as the step's failure annotation.
func SetFailed(msg string) {
	Error("%s", msg)
}
