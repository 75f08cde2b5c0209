package domain

// Command is an external process invocation.
type Command struct {
	Args []string
	Dir  string
	Env  map[string]string
	// Critical makes a non-zero exit an error. Otherwise it is only logged.
	Critical bool
}

// CommandResult is the outcome of a finished command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the command exited with status zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}
