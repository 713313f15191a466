package main

import (
	"errors"
	"fmt"
	"go/scanner"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/rogpeppe/loosen"
	"github.com/rogpeppe/loosen/gen"
)

const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitConfig indicates an invalid configuration file or log destination.
	ExitConfig = 1

	// ExitInput indicates input that cannot be processed: bad arguments,
	// unparsable source or functions that cannot be loosened.
	ExitInput = 4

	// ExitInternal indicates any other failure.
	ExitInternal = 10
)

// userError is an error reported to the user along with
// its cause and a possible fix.
type userError struct {
	Message  string
	Cause    string
	Fix      string
	ExitCode int
	Err      error
}

func (e *userError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *userError) Unwrap() error {
	return e.Err
}

func configError(msg, cause, fix string, err error) *userError {
	return &userError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitConfig,
		Err:      err,
	}
}

func inputError(msg, cause, fix string, err error) *userError {
	return &userError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInput,
		Err:      err,
	}
}

func internalError(msg, cause, fix string, err error) *userError {
	return &userError{
		Message:  msg,
		Cause:    cause,
		Fix:      fix,
		ExitCode: ExitInternal,
		Err:      err,
	}
}

// classify converts an error from the generator into a *userError.
func classify(err error) *userError {
	var (
		uerr *userError
		lerr *loosen.Error
		serr scanner.ErrorList
	)
	switch {
	case errors.As(err, &uerr):
		return uerr
	case errors.As(err, &lerr):
		return inputError("some functions cannot be loosened", err.Error(), "remove the //loosen:loose directive or change the function's signature", nil)
	case errors.Is(err, gen.ErrNotFound):
		return inputError("cannot find functions named by --funcs", err.Error(), "", nil)
	case errors.As(err, &serr):
		return inputError("cannot parse Go source", err.Error(), "", nil)
	case errors.Is(err, fs.ErrNotExist):
		return inputError("no such file", "", "", err)
	}
	return internalError("cannot generate code", "", "", err)
}

var (
	colorError = color.New(color.FgRed, color.Bold)
	colorCause = color.New(color.FgYellow)
	colorFix   = color.New(color.FgGreen)
)

// format returns the error formatted for a terminal. Each line of a
// multi-line cause is printed on its own line.
func (e *userError) format(noColor bool) string {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	if noColor || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	var out strings.Builder
	out.WriteString(colorError.Sprint("Error: "))
	out.WriteString(e.Error())
	out.WriteString("\n")
	if e.Cause != "" {
		for i, line := range strings.Split(e.Cause, "\n") {
			if i == 0 {
				out.WriteString(colorCause.Sprint("Cause: "))
			} else {
				out.WriteString("       ")
			}
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	if e.Fix != "" {
		out.WriteString(colorFix.Sprint("Fix:   "))
		out.WriteString(e.Fix)
		out.WriteString("\n")
	}
	return out.String()
}

// report writes err to w and returns the exit code for it.
func report(w io.Writer, err error, noColor bool) int {
	uerr := classify(err)
	io.WriteString(w, uerr.format(noColor))
	return uerr.ExitCode
}
