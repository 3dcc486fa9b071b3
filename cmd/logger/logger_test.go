package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/cw721/cmd/flags"
	"github.com/pokt-network/cw721/pkg/polylog"
)

func TestLogOutputFile_ClosedAfterRun(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, Close())
		LogLevel = flags.DefaultLogLevel
		LogOutput = flags.DefaultLogOutput
	})

	tests := []struct {
		desc   string
		runErr error
	}{
		{desc: "successful run"},
		{desc: "failed run", runErr: errors.New("run failed")},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "cw721.log")
			LogLevel = "debug"
			LogOutput = logPath

			cmd := &cobra.Command{
				Use:                "test",
				PersistentPreRunE:  PreRunESetup,
				PersistentPostRunE: PostRunECleanup,
				RunE: func(cmd *cobra.Command, _ []string) error {
					require.NotNil(t, logFile)
					polylog.Ctx(cmd.Context()).Debug().Msg("written to log file")
					return test.runErr
				},
			}
			cmd.SetArgs([]string{})

			err := cmd.Execute()
			if test.runErr != nil {
				require.ErrorIs(t, err, test.runErr)
				// Post-run hooks are skipped on error; callers close explicitly.
				require.NotNil(t, logFile)
				require.NoError(t, Close())
			} else {
				require.NoError(t, err)
			}
			require.Nil(t, logFile)

			logBz, err := os.ReadFile(logPath)
			require.NoError(t, err)
			require.Contains(t, string(logBz), "written to log file")

			// Closing again is a no-op.
			require.NoError(t, Close())
		})
	}
}

func TestPreRunESetup_StderrOutput(t *testing.T) {
	t.Cleanup(func() {
		LogLevel = flags.DefaultLogLevel
		LogOutput = flags.DefaultLogOutput
	})
	LogOutput = flags.DefaultLogOutput

	cmd := &cobra.Command{Use: "test"}
	require.NoError(t, PreRunESetup(cmd, nil))
	require.Nil(t, logFile)
	require.NoError(t, PostRunECleanup(cmd, nil))
}
