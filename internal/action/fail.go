package action

// Fail reports a failure annotation and exits the process with status 1.
func Fail(format string, args ...any) {
	current().Fatalf(format, args...)
}
