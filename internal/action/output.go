package action

// SetOutput records a step output. With GITHUB_OUTPUT set the value is
// appended to that file as a heredoc, otherwise the legacy ::set-output
// command is printed.
func SetOutput(name, value string) {
	current().SetOutput(name, value)
}
