package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// NewRootCommand builds the bishin command tree. outW receives command
// output (the job summary); logW receives log lines.
func NewRootCommand(outW, logW io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "bishin",
		Short:         "Discover shell test suites and generate runnable jobs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(logW)

	root.PersistentFlags().String("log-format", "text",
		"Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().String("log-level", "info",
		"Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	root.AddCommand(newRunCommand(outW, logW))
	return root
}

// logFlags extracts and validates the shared logging flags.
func logFlags(cmd *cobra.Command) (format, level string, err error) {
	format, err = cmd.Flags().GetString("log-format")
	if err != nil {
		return "", "", err
	}
	format = strings.ToLower(format)
	if format != "text" && format != "json" {
		return "", "", &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	level, err = cmd.Flags().GetString("log-level")
	if err != nil {
		return "", "", err
	}
	level = strings.ToLower(level)
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return "", "", &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return format, level, nil
}

// usageError wraps a flag retrieval failure. These indicate a programming
// error in flag registration, not user input.
func usageError(err error) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf("failed to read command flags: %v", err)}
}
