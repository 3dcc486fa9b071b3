// Package logger holds the CLI's process-wide logger and the cobra hooks which
// configure it from the --log-level and --log-output flags.
package logger

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pokt-network/cw721/cmd/flags"
	"github.com/pokt-network/cw721/pkg/polylog"
	"github.com/pokt-network/cw721/pkg/polylog/polyzero"
)

var (
	// LogLevel is bound to the --log-level flag.
	LogLevel = flags.DefaultLogLevel

	// LogOutput is bound to the --log-output flag.
	LogOutput = flags.DefaultLogOutput

	// Logger is the logger used by CLI commands. It is replaced in PreRunESetup.
	Logger polylog.Logger = polyzero.NewLogger(
		polyzero.WithLevel(polyzero.InfoLevel),
		polyzero.WithOutput(os.Stderr),
	)

	// logFile is the file opened for --log-output, if any.
	logFile *os.File
)

// PreRunESetup is intended to be used as a cobra PreRunE (or
// PersistentPreRunE) function. It builds Logger from LogLevel and LogOutput
// and attaches it to the command's context.
func PreRunESetup(cmd *cobra.Command, _ []string) error {
	logWriter := os.Stderr
	if LogOutput != flags.DefaultLogOutput {
		var err error
		logWriter, err = os.OpenFile(LogOutput, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return flags.ErrFlagInvalidValue.Wrapf("--%s: %s", flags.FlagLogOutput, err)
		}
	}
	if err := Close(); err != nil {
		return err
	}
	if logWriter != os.Stderr {
		logFile = logWriter
	}

	Logger = polyzero.NewLogger(
		polyzero.WithLevel(polyzero.ParseLevel(LogLevel)),
		polyzero.WithOutput(logWriter),
		polyzero.WithTimestamp(),
	)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(Logger.WithContext(ctx))

	return nil
}

// PostRunECleanup is intended to be used as a cobra PostRunE (or
// PersistentPostRunE) function. It closes the --log-output file.
func PostRunECleanup(_ *cobra.Command, _ []string) error {
	return Close()
}

// Close closes the --log-output file, if one is open, and points Logger back
// at stderr. It is safe to call more than once.
func Close() error {
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil
	Logger = polyzero.NewLogger(
		polyzero.WithLevel(polyzero.ParseLevel(LogLevel)),
		polyzero.WithOutput(os.Stderr),
	)
	return err
}
