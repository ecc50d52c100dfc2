// Package cli parses the formbridge command line into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/formbridge/internal/app"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly, or
// an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("formbridge", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
formbridge - invoke typed operations against a hosted platform endpoint.

Usage:
  formbridge [options] OPERATION [NAME:KIND=VALUE ...]

Arguments:
  OPERATION
    Name of the server-side operation to invoke.
  NAME:KIND=VALUE
    One operation parameter, e.g. Count:Integer=3 or
    Target:EntityReference=5f2c...:account.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "client.hcl", "Path to the HCL client configuration file.")
	cFlag := flagSet.String("c", "", "Path to the HCL client configuration file (shorthand).")
	functionFlag := flagSet.Bool("function", false, "Invoke the operation as a function instead of an action.")
	boundFlag := flagSet.String("bound", "", "Bind the operation to a record, given as ID:ENTITYTYPE.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No operation provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	configPath := *configFlag
	if *cFlag != "" {
		configPath = *cFlag
	}

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		Operation:  flagSet.Arg(0),
		Parameters: flagSet.Args()[1:],
		AsFunction: *functionFlag,
		Bound:      *boundFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "operation", config.Operation)
	return config, false, nil
}
