package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSilent signals an exit status of 1 without any error output. Usage
// has already been shown by the time it is returned.
var ErrSilent = errors.New("SilentError")

// FlagError wraps an error raised while parsing command-line flags.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string {
	return e.err.Error()
}

func (e *FlagError) Unwrap() error {
	return e.err
}

// UnknownCommandError is returned when the first argument names no command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q for \"notifications\"", e.Name)
}

// NotImplementedError is returned by commands that are wired into the CLI
// but have no implementation yet.
type NotImplementedError struct {
	Command string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("UNIMPLEMENTED: the %s command is not available yet", e.Command)
}

// PrintError writes err as a single line. Inside a GitHub Actions run the
// line uses the workflow error-annotation syntax so it surfaces in the job
// summary.
func PrintError(w io.Writer, err error) {
	if os.Getenv("GITHUB_ACTIONS") != "" {
		fmt.Fprintf(w, "::error::%v\n", err)
		return
	}
	fmt.Fprintf(w, "%v\n", err)
}
