package models

// CommandOutput is the raw envelope returned by a single secrets-manager
// command invocation: the textual result and any error lines emitted by the
// tool. Both slices empty is a valid no-op outcome, not an error.
type CommandOutput struct {
	// ResultLines is the stdout of the command, split into lines.
	ResultLines []string

	// ErrorLines is the stderr of the command, split into lines. Non-empty
	// means the operation did not take effect remotely.
	ErrorLines []string
}

// Failed reports whether the invocation produced error output.
func (o CommandOutput) Failed() bool {
	return len(o.ErrorLines) > 0
}

// FirstError returns the first error line, or an empty string when the
// invocation succeeded.
func (o CommandOutput) FirstError() string {
	if len(o.ErrorLines) == 0 {
		return ""
	}
	return o.ErrorLines[0]
}
